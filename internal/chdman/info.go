package chdman

import (
	"fmt"
	"strings"

	"github.com/Cyclone1070/chdbatch/internal/disc"
	"github.com/mitchellh/mapstructure"
)

const (
	metadataPrefix = "Metadata:"
	tagMarker      = "Tag='"
)

// Field is one "Key: Value" line from chdman info output.
type Field struct {
	Key   string
	Value string
}

// Record is an ordered set of info fields. Order matters: batch info
// output prints the first record's keys as a shared header row.
type Record struct {
	Fields []Field
}

// ParseRecord extracts the "Key: Value" lines from info stdout,
// splitting each on the first colon and trimming both sides. Lines
// without a colon-space separator are dropped. Zero matching lines is
// a parse failure, not an empty record.
func ParseRecord(stdout string) (*Record, error) {
	rec := &Record{}
	for _, line := range strings.Split(stdout, "\n") {
		if !strings.Contains(line, ": ") {
			continue
		}
		key, value, _ := strings.Cut(line, ":")
		rec.Fields = append(rec.Fields, Field{
			Key:   strings.TrimSpace(key),
			Value: strings.TrimSpace(value),
		})
	}
	if len(rec.Fields) == 0 {
		return nil, ErrMetadataParse
	}
	return rec, nil
}

// Keys returns the field names in output order.
func (r *Record) Keys() []string {
	keys := make([]string, len(r.Fields))
	for i, f := range r.Fields {
		keys[i] = f.Key
	}
	return keys
}

// Values returns the field values in output order.
func (r *Record) Values() []string {
	values := make([]string, len(r.Fields))
	for i, f := range r.Fields {
		values[i] = f.Value
	}
	return values
}

// Decode maps the record onto a tagged struct. Later duplicates of a
// key win, matching a plain map build.
func (r *Record) Decode(out any) error {
	m := make(map[string]string, len(r.Fields))
	for _, f := range r.Fields {
		m[f.Key] = f.Value
	}
	if err := mapstructure.Decode(m, out); err != nil {
		return fmt.Errorf("decoding info record: %w", err)
	}
	return nil
}

// InfoRecord carries the well-known fields of a chdman info record. All
// values stay textual; chdman prints sizes with unit suffixes and
// ratios with percent signs.
type InfoRecord struct {
	InputFile   string `mapstructure:"Input file"`
	FileVersion string `mapstructure:"File Version"`
	LogicalSize string `mapstructure:"Logical size"`
	HunkSize    string `mapstructure:"Hunk Size"`
	TotalHunks  string `mapstructure:"Total Hunks"`
	UnitSize    string `mapstructure:"Unit Size"`
	TotalUnits  string `mapstructure:"Total Units"`
	Compression string `mapstructure:"Compression"`
	CHDSize     string `mapstructure:"CHD size"`
	Ratio       string `mapstructure:"Ratio"`
	SHA1        string `mapstructure:"SHA1"`
	DataSHA1    string `mapstructure:"Data SHA1"`
}

// DecodeInfo maps a parsed record onto InfoRecord and verifies the mandatory
// Input file field. Colon-separated rows that decode to an empty input
// path mean the output format drifted, and the record cannot be
// trusted.
func DecodeInfo(rec *Record) (*InfoRecord, error) {
	var info InfoRecord
	if err := rec.Decode(&info); err != nil {
		return nil, err
	}
	if info.InputFile == "" {
		return nil, fmt.Errorf("%w: missing Input file field", ErrMetadataParse)
	}
	return &info, nil
}

// ScanTag recovers the original medium format from info stdout. It
// scans Metadata: lines for a quoted Tag token, upper-cases it and
// maps it through the known-tag table; the first recognized tag wins.
func ScanTag(stdout string) (disc.Format, error) {
	for _, line := range strings.Split(stdout, "\n") {
		if !strings.HasPrefix(line, metadataPrefix) {
			continue
		}
		_, rest, found := strings.Cut(line, tagMarker)
		if !found {
			continue
		}
		tag, _, found := strings.Cut(rest, "'")
		if !found {
			continue
		}
		if format, ok := disc.FormatForTag(tag); ok {
			return format, nil
		}
	}
	return "", ErrFormatUnknown
}
