package chdman

import (
	"path/filepath"
	"testing"

	"github.com/Cyclone1070/chdbatch/internal/disc"
	"github.com/stretchr/testify/assert"
)

func TestCreate(t *testing.T) {
	inv := Create("/opt/chdman", disc.FormatCD, "game.cue", "out/game.chd")

	assert.Equal(t, []string{
		"/opt/chdman", "createcd", "--input", "game.cue", "--output", "out/game.chd",
	}, inv.Argv())
	assert.Equal(t, "/opt/chdman createcd --input game.cue --output out/game.chd", inv.String())
}

func TestCreate_DVD(t *testing.T) {
	inv := Create("chdman", disc.FormatDVD, "movie.iso", "movie.chd")
	assert.Equal(t, "createdvd", inv.Args[0])
}

func TestExtract_CDAddsOutputBin(t *testing.T) {
	inv := Extract("chdman", disc.FormatCD, "game.chd", filepath.Join("out", "game.cue"))

	assert.Equal(t, []string{
		"chdman", "extractcd",
		"--input", "game.chd",
		"--output", filepath.Join("out", "game.cue"),
		"--outputbin", filepath.Join("out", "game.bin"),
	}, inv.Argv())
}

func TestExtract_DVDNoOutputBin(t *testing.T) {
	inv := Extract("chdman", disc.FormatDVD, "movie.chd", "out/movie.iso")

	assert.NotContains(t, inv.Args, "--outputbin")
	assert.Equal(t, "extractdvd", inv.Args[0])
}

func TestInfo(t *testing.T) {
	inv := Info("chdman", "game.chd", false)
	assert.Equal(t, []string{"chdman", "info", "--input", "game.chd"}, inv.Argv())

	inv = Info("chdman", "game.chd", true)
	assert.Equal(t, []string{"chdman", "info", "--input", "game.chd", "--verbose"}, inv.Argv())
}
