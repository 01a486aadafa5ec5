package disc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want Format
	}{
		{"auto", FormatAuto},
		{"cd", FormatCD},
		{"DVD", FormatDVD},
		{" hd ", FormatHD},
		{"ld", FormatLD},
		{"raw", FormatRaw},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}
}

func TestParseFormat_Unknown(t *testing.T) {
	_, err := ParseFormat("bluray")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestOutputExt(t *testing.T) {
	ext, ok := FormatCD.OutputExt()
	require.True(t, ok)
	assert.Equal(t, ".cue", ext)

	ext, ok = FormatDVD.OutputExt()
	require.True(t, ok)
	assert.Equal(t, ".iso", ext)

	_, ok = FormatAuto.OutputExt()
	assert.False(t, ok, "auto has no canonical extension")
}

func TestFormatForTag(t *testing.T) {
	f, ok := FormatForTag("CHT2")
	require.True(t, ok)
	assert.Equal(t, FormatCD, f)

	// Tags are matched case-insensitively after normalization.
	f, ok = FormatForTag(" dvd ")
	require.True(t, ok)
	assert.Equal(t, FormatDVD, f)

	_, ok = FormatForTag("AVLD")
	assert.False(t, ok)
}
