package tiler

import (
	"github.com/ecopia-map/xray_tiler/internal/xray"
)

// Contains the options needed to render a single xray tile
type XrayOptions struct {
	OctreeLocations     []string                  // Input octree locations, local folders or gs:// / http(s):// URLs
	OutputFilename      string                    // Output PNG file to write
	Resolution          float64                   // Size of 1 pixel in meters
	MinX                float64                   // Requested region minimum x in meters
	MinY                float64                   // Requested region minimum y in meters
	MaxX                float64                   // Requested region maximum x in meters
	MaxY                float64                   // Requested region maximum y in meters
	ColoringStrategy    xray.ColoringStrategyKind // Pixel coloring policy and its parameters
	TileBackgroundColor xray.TileBackgroundColor  // Fill color for pixels without points
	ZOffset             float64                   // Z offset in meters to apply to source points
	WriteWorldFile      bool                      // Write a world file georeference next to the PNG
}

func (opt *XrayOptions) Copy() *XrayOptions {
	newOpt := &XrayOptions{
		OutputFilename:      opt.OutputFilename,
		Resolution:          opt.Resolution,
		MinX:                opt.MinX,
		MinY:                opt.MinY,
		MaxX:                opt.MaxX,
		MaxY:                opt.MaxY,
		ColoringStrategy:    opt.ColoringStrategy,
		TileBackgroundColor: opt.TileBackgroundColor,
		ZOffset:             opt.ZOffset,
		WriteWorldFile:      opt.WriteWorldFile,
	}
	newOpt.OctreeLocations = append(newOpt.OctreeLocations, opt.OctreeLocations...)
	return newOpt
}
