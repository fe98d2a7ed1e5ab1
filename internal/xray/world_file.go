package xray

import (
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/ecopia-map/xray_tiler/internal/geometry"
)

// Returns the world file path for the given image path, e.g. tile.png ->
// tile.pgw
func WorldFilePath(outputPath string) string {
	if strings.HasSuffix(strings.ToLower(outputPath), ".png") {
		return outputPath[:len(outputPath)-4] + ".pgw"
	}
	return outputPath + ".wld"
}

// Writes an ESRI world file georeferencing the tile drawn over the given
// volume: pixel sizes, zero rotation terms and the coordinates of the center
// of the upper left pixel, one decimal value per line.
func WriteWorldFile(outputPath string, volume *geometry.BoundingBox, dimensions RasterDimensions) error {
	if dimensions.IsZero() {
		return errors.New("cannot georeference a zero sized raster")
	}

	two := decimal.NewFromInt(2)
	pixelSizeX := decimal.NewFromFloat(volume.Dx() / float64(dimensions.Width))
	pixelSizeY := decimal.NewFromFloat(volume.Dy() / float64(dimensions.Height))
	originX := decimal.NewFromFloat(volume.Xmin).Add(pixelSizeX.Div(two))
	originY := decimal.NewFromFloat(volume.Ymax).Sub(pixelSizeY.Div(two))

	lines := []string{
		pixelSizeX.String(),
		"0",
		"0",
		pixelSizeY.Neg().String(),
		originX.String(),
		originY.String(),
	}
	content := strings.Join(lines, "\n") + "\n"
	return errors.Wrapf(os.WriteFile(WorldFilePath(outputPath), []byte(content), 0644), "cannot write world file for %s", outputPath)
}
