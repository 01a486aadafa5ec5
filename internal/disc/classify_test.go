package disc

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExt_Normalization(t *testing.T) {
	assert.Equal(t, ".cue", Ext("Game.CUE"))
	assert.Equal(t, ".chd", Ext("/roms/out/game.chd"))
	assert.Equal(t, "", Ext("noext"))
}

func TestClassify(t *testing.T) {
	tests := []struct {
		path string
		want Class
	}{
		{"game.cue", ClassSource},
		{"game.GDI", ClassSource},
		{"movie.iso", ClassSource},
		{"game.chd", ClassContainer},
		{"game.bin", ClassUnrecognized},
		{"readme.txt", ClassUnrecognized},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Classify(tt.path), tt.path)
	}
}

func TestIsTrackList(t *testing.T) {
	assert.True(t, IsTrackList("game.cue"))
	assert.True(t, IsTrackList("game.gdi"))
	assert.False(t, IsTrackList("movie.iso"))
	assert.False(t, IsTrackList("game.chd"))
}

func TestDeriveOutput_ExplicitFile(t *testing.T) {
	// An output already carrying the target extension is used verbatim.
	got := DeriveOutput("in/game.cue", "out/custom.chd", ".chd")
	assert.Equal(t, "out/custom.chd", got)
}

func TestDeriveOutput_Directory(t *testing.T) {
	got := DeriveOutput("in/game.cue", "out", ".chd")
	assert.Equal(t, filepath.Join("out", "game.chd"), got)

	got = DeriveOutput("/roms/psx/game.chd", "/images", ".cue")
	assert.Equal(t, filepath.Join("/images", "game.cue"), got)
}

func TestDeriveImageOutput_Directory(t *testing.T) {
	got, err := DeriveImageOutput("game.chd", "img", FormatCD)
	assert.NoError(t, err)
	assert.Equal(t, filepath.Join("img", "game.cue"), got)

	got, err = DeriveImageOutput("movie.chd", "img", FormatDVD)
	assert.NoError(t, err)
	assert.Equal(t, filepath.Join("img", "movie.iso"), got)
}

func TestDeriveImageOutput_ExplicitTarget(t *testing.T) {
	got, err := DeriveImageOutput("game.chd", "custom.cue", FormatCD)
	assert.NoError(t, err)
	assert.Equal(t, "custom.cue", got)

	// An explicit dvd target with any disc-image extension is used verbatim.
	got, err = DeriveImageOutput("movie.chd", "custom.iso", FormatDVD)
	assert.NoError(t, err)
	assert.Equal(t, "custom.iso", got)
}

func TestDeriveImageOutput_CDTargetMustBeCue(t *testing.T) {
	_, err := DeriveImageOutput("game.chd", "game.iso", FormatCD)
	assert.ErrorIs(t, err, ErrExtensionMismatch)

	_, err = DeriveImageOutput("game.chd", "game.gdi", FormatCD)
	assert.ErrorIs(t, err, ErrExtensionMismatch)
}

func TestDeriveImageOutput_NoExtensionForAuto(t *testing.T) {
	_, err := DeriveImageOutput("game.chd", "img", FormatAuto)
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestCheckSourceExt(t *testing.T) {
	assert.NoError(t, CheckSourceExt("game.cue"))
	assert.ErrorIs(t, CheckSourceExt("game.chd"), ErrInvalidExtension)
	assert.ErrorIs(t, CheckSourceExt("notes.txt"), ErrInvalidExtension)
}

func TestCheckContainerExt(t *testing.T) {
	assert.NoError(t, CheckContainerExt("game.chd"))
	assert.ErrorIs(t, CheckContainerExt("game.cue"), ErrInvalidExtension)
}
