// Package disc classifies disc-image paths and resolves CHD container
// formats. It owns the extension tables shared by the compress,
// decompress and info operations.
package disc

import (
	"fmt"
	"strings"
)

// Format identifies a CHD container format. FormatAuto is a
// compress-time placeholder resolved to a concrete format before the
// external tool is invoked.
type Format string

const (
	FormatAuto Format = "auto"
	FormatCD   Format = "cd"
	FormatDVD  Format = "dvd"
	FormatHD   Format = "hd"
	FormatLD   Format = "ld"
	FormatRaw  Format = "raw"
)

// ContainerExt is the extension of the compressed container produced
// by compress and consumed by decompress.
const ContainerExt = ".chd"

// sourceExts are the recognized compress inputs. trackListExts is the
// subset whose files are textual tables of contents referencing a
// separate binary dump.
var (
	sourceExts    = map[string]bool{".cue": true, ".gdi": true, ".iso": true}
	trackListExts = map[string]bool{".cue": true, ".gdi": true}
)

// formatExts maps a concrete format to the canonical extension of its
// extracted image.
var formatExts = map[Format]string{
	FormatCD:  ".cue",
	FormatDVD: ".iso",
	FormatHD:  ".img",
	FormatLD:  ".avi",
	FormatRaw: ".raw",
}

// tagFormats maps chdman metadata tags to the format of the original
// medium. Only tags observed in chdman info output are listed.
var tagFormats = map[string]Format{
	"CHT2": FormatCD,
	"DVD":  FormatDVD,
}

// ParseFormat validates a user-supplied format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatAuto, FormatCD, FormatDVD, FormatHD, FormatLD, FormatRaw:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// OutputExt returns the canonical extracted-image extension for a
// concrete format. FormatAuto has no extension.
func (f Format) OutputExt() (string, bool) {
	ext, ok := formatExts[f]
	return ext, ok
}

// FormatForTag maps an upper-cased chdman metadata tag to the format
// of the original medium.
func FormatForTag(tag string) (Format, bool) {
	f, ok := tagFormats[strings.ToUpper(strings.TrimSpace(tag))]
	return f, ok
}
