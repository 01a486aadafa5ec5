package disc

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Class is the role a path plays in a batch operation, judged purely
// by extension.
type Class int

const (
	ClassUnrecognized Class = iota
	ClassSource            // uncompressed disc image (cue/gdi/iso)
	ClassContainer         // compressed container (chd)
)

// Ext returns the path's extension normalized to lower case with
// surrounding whitespace removed.
func Ext(path string) string {
	return strings.ToLower(strings.TrimSpace(filepath.Ext(path)))
}

// Classify reports the role of a path from its extension.
func Classify(path string) Class {
	switch ext := Ext(path); {
	case ext == ContainerExt:
		return ClassContainer
	case sourceExts[ext]:
		return ClassSource
	default:
		return ClassUnrecognized
	}
}

// IsSource reports whether the path carries a recognized disc-image
// source extension.
func IsSource(path string) bool {
	return sourceExts[Ext(path)]
}

// IsTrackList reports whether the path carries a track-list (table of
// contents) extension.
func IsTrackList(path string) bool {
	return trackListExts[Ext(path)]
}

// IsContainer reports whether the path carries the container extension.
func IsContainer(path string) bool {
	return Ext(path) == ContainerExt
}

// Stem returns the file name without its extension.
func Stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// DeriveOutput computes the concrete output file for a single-file
// operation. A supplied output already carrying targetExt is used
// verbatim; anything else is treated as a directory and the result is
// <output>/<input stem><targetExt>.
func DeriveOutput(input, output, targetExt string) string {
	if Ext(output) == targetExt {
		return output
	}
	return filepath.Join(output, Stem(input)+targetExt)
}

// DeriveImageOutput computes the extracted-image path for a decompress
// operation. A supplied output already carrying a disc-image extension
// is an explicit target and is used verbatim, except that a cd target
// must carry the canonical track-list extension. Anything else is
// treated as a directory.
func DeriveImageOutput(input, output string, format Format) (string, error) {
	ext, ok := format.OutputExt()
	if !ok {
		return "", fmt.Errorf("%w: no output extension for %q", ErrUnknownFormat, format)
	}
	if IsSource(output) {
		if format == FormatCD && Ext(output) != ext {
			return "", fmt.Errorf("%w: cd extraction requires a %s target, got %s", ErrExtensionMismatch, ext, output)
		}
		return output, nil
	}
	return filepath.Join(output, Stem(input)+ext), nil
}

// CheckSourceExt validates a compress input extension.
func CheckSourceExt(path string) error {
	if !IsSource(path) {
		return fmt.Errorf("%w: %s", ErrInvalidExtension, path)
	}
	return nil
}

// CheckContainerExt validates a decompress or info input extension.
func CheckContainerExt(path string) error {
	if !IsContainer(path) {
		return fmt.Errorf("%w: %s", ErrInvalidExtension, path)
	}
	return nil
}
