package xray

import (
	"image/color"
	"path/filepath"

	"github.com/fogleman/gg"
	"github.com/pkg/errors"

	"github.com/ecopia-map/xray_tiler/internal/data"
	"github.com/ecopia-map/xray_tiler/internal/geometry"
	"github.com/ecopia-map/xray_tiler/tools"
)

// PointSource is the point data consumed by XrayFromPoints
type PointSource interface {
	ForEachPointInVolume(volume *geometry.BoundingBox, fn func(point *data.Point) error) error
}

// State handed over from a previous generation pass of the same tile. When
// provided, the strategy of the previous pass keeps accumulating on top of
// its existing per pixel state instead of starting fresh.
type TilePriorState struct {
	Strategy ColoringStrategy
}

// Projects every point of the source inside the given volume onto the ground
// plane, colors the resulting raster with the given strategy, fills pixels
// without points with the background color and writes the image to
// outputPath as PNG.
//
// Returns false, writing nothing, when the raster is zero sized, the volume
// is empty or no point fell inside it. Pixel coordinates are derived from the
// XY extent of the volume, with image rows growing towards decreasing Y.
func XrayFromPoints(
	source PointSource,
	priorState *TilePriorState,
	volume *geometry.BoundingBox,
	outputPath string,
	dimensions RasterDimensions,
	strategy ColoringStrategy,
	background color.NRGBA,
) (bool, error) {
	if dimensions.IsZero() || volume.IsEmpty() || volume.Dx() <= 0 || volume.Dy() <= 0 {
		return false, nil
	}
	if priorState != nil && priorState.Strategy != nil {
		strategy = priorState.Strategy
	}

	scaleX := float64(dimensions.Width) / volume.Dx()
	scaleY := float64(dimensions.Height) / volume.Dy()

	numPoints := int64(0)
	err := source.ForEachPointInVolume(volume, func(point *data.Point) error {
		px := uint32((point.X - volume.Xmin) * scaleX)
		if px >= dimensions.Width {
			px = dimensions.Width - 1
		}
		py := uint32((volume.Ymax - point.Y) * scaleY)
		if py >= dimensions.Height {
			py = dimensions.Height - 1
		}
		strategy.ProcessPoint(px, py, point)
		numPoints++
		return nil
	})
	if err != nil {
		return false, errors.Wrap(err, "cannot stream points for xray tile")
	}
	if numPoints == 0 {
		return false, nil
	}

	return true, writeImage(outputPath, dimensions, strategy, background)
}

func writeImage(outputPath string, dimensions RasterDimensions, strategy ColoringStrategy, background color.NRGBA) error {
	dc := gg.NewContext(int(dimensions.Width), int(dimensions.Height))
	dc.SetColor(background)
	dc.Clear()

	for py := uint32(0); py < dimensions.Height; py++ {
		for px := uint32(0); px < dimensions.Width; px++ {
			if pixelColor, ok := strategy.PixelColor(px, py); ok {
				dc.SetColor(pixelColor)
				dc.SetPixel(int(px), int(py))
			}
		}
	}

	if err := tools.CreateDirectoryIfDoesNotExist(filepath.Dir(outputPath)); err != nil {
		return errors.Wrapf(err, "cannot create output folder for %s", outputPath)
	}
	return errors.Wrapf(dc.SavePNG(outputPath), "cannot write xray tile to %s", outputPath)
}
