package xray

import (
	"math"

	"github.com/ecopia-map/xray_tiler/internal/geometry"
)

// Pixel size of the output tile
type RasterDimensions struct {
	Width  uint32
	Height uint32
}

func (d RasterDimensions) IsZero() bool {
	return d.Width == 0 || d.Height == 0
}

// Converts the requested rectangle and the physical resolution (meters per
// pixel) into pixel dimensions. Rounding is always upward so the tile fully
// covers the request, which means the rendered area can slightly exceed the
// requested one along each axis. Degenerate or inverted rectangles yield zero
// sized dimensions, which the generation step treats as "no points".
// The resolution must have been validated as strictly positive beforehand.
func ComputeRasterDimensions(rect *geometry.Rect, resolution float64) RasterDimensions {
	return RasterDimensions{
		Width:  pixelCount(rect.Dx(), resolution),
		Height: pixelCount(rect.Dy(), resolution),
	}
}

func pixelCount(extent float64, resolution float64) uint32 {
	pixels := math.Ceil(extent / resolution)
	if pixels <= 0 || math.IsNaN(pixels) {
		return 0
	}
	// converting an out of range float to uint32 is unspecified, saturate
	// instead
	if pixels >= math.MaxUint32 {
		return math.MaxUint32
	}
	return uint32(pixels)
}
