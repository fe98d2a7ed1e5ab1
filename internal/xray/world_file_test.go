package xray

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecopia-map/xray_tiler/internal/geometry"
)

func TestWorldFilePath(t *testing.T) {
	assert.Equal(t, "tile.pgw", WorldFilePath("tile.png"))
	assert.Equal(t, filepath.Join("out", "tile.pgw"), WorldFilePath(filepath.Join("out", "tile.png")))
	assert.Equal(t, "tile.bmp.wld", WorldFilePath("tile.bmp"))
}

func TestWriteWorldFile(t *testing.T) {
	outputPath := filepath.Join(t.TempDir(), "tile.png")
	volume := geometry.NewBoundingBox(100, 110, 200, 220, 0, 5)

	err := WriteWorldFile(outputPath, volume, RasterDimensions{Width: 200, Height: 400})
	require.NoError(t, err)

	raw, err := os.ReadFile(WorldFilePath(outputPath))
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(raw)), "\n")
	require.Len(t, lines, 6)
	assert.Equal(t, "0.05", lines[0], "x pixel size")
	assert.Equal(t, "0", lines[1])
	assert.Equal(t, "0", lines[2])
	assert.Equal(t, "-0.05", lines[3], "y pixel size, negative")
	assert.Equal(t, "100.025", lines[4], "x of the upper left pixel center")
	assert.Equal(t, "219.975", lines[5], "y of the upper left pixel center")
}

func TestWriteWorldFileRejectsZeroRaster(t *testing.T) {
	outputPath := filepath.Join(t.TempDir(), "tile.png")
	volume := geometry.NewBoundingBox(0, 10, 0, 10, 0, 5)

	err := WriteWorldFile(outputPath, volume, RasterDimensions{})
	assert.Error(t, err)
}
