package disc

import "fmt"

// AutoPolicy selects the rule used to resolve FormatAuto for raw image
// files. Track-list sources resolve to cd under every policy.
type AutoPolicy string

const (
	// AutoByExtension maps .iso to dvd unconditionally.
	AutoByExtension AutoPolicy = "extension"
	// AutoBySize maps .iso by file size against a CD-capacity
	// threshold: at or above -> dvd, below -> cd.
	AutoBySize AutoPolicy = "size"
)

// CDThresholdBytes is the capacity of one CD in bytes, used as the
// dvd-vs-cd cutoff under AutoBySize.
const CDThresholdBytes int64 = 783216000

// ParseAutoPolicy validates a configured policy name.
func ParseAutoPolicy(s string) (AutoPolicy, error) {
	switch p := AutoPolicy(s); p {
	case AutoByExtension, AutoBySize:
		return p, nil
	default:
		return "", fmt.Errorf("%w: auto policy %q", ErrUnknownFormat, s)
	}
}

// ResolveAuto resolves FormatAuto for a compress input. size is the
// input file's length in bytes and is only consulted under AutoBySize.
// Formats other than FormatAuto pass through untouched.
func ResolveAuto(format Format, path string, size int64, policy AutoPolicy, threshold int64) (Format, error) {
	if format != FormatAuto {
		return format, nil
	}
	if err := CheckSourceExt(path); err != nil {
		return "", err
	}
	if IsTrackList(path) {
		return FormatCD, nil
	}
	switch policy {
	case AutoBySize:
		if size >= threshold {
			return FormatDVD, nil
		}
		return FormatCD, nil
	default:
		return FormatDVD, nil
	}
}
