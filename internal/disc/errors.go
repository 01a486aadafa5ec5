package disc

import "errors"

// -- Sentinels --

var (
	ErrPathNotFound      = errors.New("input path does not exist")
	ErrOutputExists      = errors.New("output file already exists")
	ErrInvalidExtension  = errors.New("input file extension not recognized for this operation")
	ErrArityMismatch     = errors.New("directory input requires a directory output")
	ErrExtensionMismatch = errors.New("output extension does not match resolved format")
	ErrUnknownFormat     = errors.New("unknown format")
)
