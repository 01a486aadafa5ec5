package chdman

import (
	"testing"

	"github.com/Cyclone1070/chdbatch/internal/disc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleInfoOutput = `chdman - MAME Compressed Hunks of Data (CHD) manager 0.250 (mame0250)
Input file:   game.chd
File Version: 5
Logical size: 747,435,024 bytes
Hunk Size:    19,584 bytes
Total Hunks:  38,166
Unit Size:    2,448 bytes
Total Units:  305,325
Compression:  cdlz (CD LZMA), cdzl (CD Deflate), cdfl (CD FLAC)
CHD size:     458,155,659 bytes
Ratio:        61.3%
SHA1:         d1e2a3d4c5b6a7980123456789abcdef01234567
Data SHA1:    0123456789abcdef0123456789abcdef01234567
Metadata:     Tag='CHT2'  Index=0  Length=92 bytes
              TRACK:1 TYPE:MODE2_RAW SUBTYPE:NONE FRAMES:305325
`

func TestParseRecord(t *testing.T) {
	rec, err := ParseRecord(sampleInfoOutput)
	require.NoError(t, err)

	keys := rec.Keys()
	assert.Equal(t, "Input file", keys[0])
	assert.Contains(t, keys, "File Version")
	assert.Contains(t, keys, "Ratio")
	// The Metadata line also carries ": " and is kept, as in the
	// original tabular output.
	assert.Contains(t, keys, "Metadata")

	values := rec.Values()
	assert.Equal(t, "game.chd", values[0])
	assert.Len(t, values, len(keys))
}

func TestParseRecord_DropsBannerAndContinuations(t *testing.T) {
	rec, err := ParseRecord(sampleInfoOutput)
	require.NoError(t, err)

	for _, key := range rec.Keys() {
		assert.NotContains(t, key, "chdman - MAME")
		assert.NotContains(t, key, "TRACK")
	}
}

func TestParseRecord_NoRows(t *testing.T) {
	_, err := ParseRecord("garbage output\nwith no fields\n")
	assert.ErrorIs(t, err, ErrMetadataParse)

	_, err = ParseRecord("")
	assert.ErrorIs(t, err, ErrMetadataParse)
}

func TestRecord_Decode(t *testing.T) {
	rec, err := ParseRecord(sampleInfoOutput)
	require.NoError(t, err)

	var info InfoRecord
	require.NoError(t, rec.Decode(&info))

	assert.Equal(t, "game.chd", info.InputFile)
	assert.Equal(t, "5", info.FileVersion)
	assert.Equal(t, "747,435,024 bytes", info.LogicalSize)
	assert.Equal(t, "61.3%", info.Ratio)
	assert.Equal(t, "d1e2a3d4c5b6a7980123456789abcdef01234567", info.SHA1)
}

func TestDecodeInfo(t *testing.T) {
	rec, err := ParseRecord(sampleInfoOutput)
	require.NoError(t, err)

	info, err := DecodeInfo(rec)
	require.NoError(t, err)
	assert.Equal(t, "game.chd", info.InputFile)
	assert.Equal(t, "458,155,659 bytes", info.CHDSize)
}

func TestDecodeInfo_MissingInputFile(t *testing.T) {
	// Rows parse but the mandatory field is gone: drifted output must
	// not pass as a valid record.
	rec, err := ParseRecord("Something else: value\nRatio:        61.3%\n")
	require.NoError(t, err)

	_, err = DecodeInfo(rec)
	assert.ErrorIs(t, err, ErrMetadataParse)
}

func TestScanTag_CD(t *testing.T) {
	format, err := ScanTag(sampleInfoOutput)
	require.NoError(t, err)
	assert.Equal(t, disc.FormatCD, format)
}

func TestScanTag_DVD(t *testing.T) {
	out := "Metadata:     Tag='DVD'  Index=0  Length=12 bytes\n"
	format, err := ScanTag(out)
	require.NoError(t, err)
	assert.Equal(t, disc.FormatDVD, format)
}

func TestScanTag_FirstRecognizedWins(t *testing.T) {
	out := "Metadata:     Tag='AVLD'  Index=0\n" +
		"Metadata:     Tag='CHT2'  Index=1\n" +
		"Metadata:     Tag='DVD'  Index=2\n"
	format, err := ScanTag(out)
	require.NoError(t, err)
	assert.Equal(t, disc.FormatCD, format)
}

func TestScanTag_Idempotent(t *testing.T) {
	first, err := ScanTag(sampleInfoOutput)
	require.NoError(t, err)
	second, err := ScanTag(sampleInfoOutput)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestScanTag_NoTag(t *testing.T) {
	_, err := ScanTag("Input file:   game.chd\n")
	assert.ErrorIs(t, err, ErrFormatUnknown)

	// A metadata line with an unrecognized tag is not enough.
	_, err = ScanTag("Metadata:     Tag='AVLD'  Index=0\n")
	assert.ErrorIs(t, err, ErrFormatUnknown)

	// Unterminated tag token.
	_, err = ScanTag("Metadata:     Tag='CHT2\n")
	assert.ErrorIs(t, err, ErrFormatUnknown)
}
