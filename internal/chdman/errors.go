package chdman

import "errors"

// -- Sentinels --

var (
	// ErrMetadataParse indicates info output yielded no key/value rows.
	// chdman's text output is treated as an untrusted protocol; an
	// empty record means the format drifted, not that the file is empty.
	ErrMetadataParse = errors.New("no parseable fields in info output")

	// ErrFormatUnknown indicates no metadata line carried a recognized
	// format tag.
	ErrFormatUnknown = errors.New("unable to infer image format")
)
