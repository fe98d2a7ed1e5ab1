package pkg

import (
	"github.com/golang/glog"

	"github.com/ecopia-map/xray_tiler/internal/geometry"
	"github.com/ecopia-map/xray_tiler/internal/octree"
	"github.com/ecopia-map/xray_tiler/internal/point_cloud"
	"github.com/ecopia-map/xray_tiler/internal/tiler"
	"github.com/ecopia-map/xray_tiler/internal/xray"
	"github.com/ecopia-map/xray_tiler/tools"
)

type IXrayTiler interface {
	RunTiler(opts *tiler.XrayOptions) error
}

// Renders a single xray tile from one or more octree data sources. The run is
// strictly linear: open sources, resolve the region of interest, size the
// raster, render, report.
type XrayTiler struct {
	octreeFactory *octree.OctreeFactory
}

func NewXrayTiler(octreeFactory *octree.OctreeFactory) IXrayTiler {
	return &XrayTiler{
		octreeFactory: octreeFactory,
	}
}

func (t *XrayTiler) RunTiler(opts *tiler.XrayOptions) error {
	tools.LogOutput("Opening", len(opts.OctreeLocations), "octree data source(s)...")
	client, err := point_cloud.NewPointCloudClient(opts.OctreeLocations, t.octreeFactory)
	if err != nil {
		return err
	}
	sourceBox := client.BoundingBox()
	glog.Infoln("source srid:", client.Srid())
	glog.Infoln("source bounding box:", tools.FmtJSONString(sourceBox))
	glog.Infoln("total points available:", client.TotalNumberOfPoints())

	requestRect := geometry.NewRect(opts.MinX, opts.MaxX, opts.MinY, opts.MaxY)
	volume := geometry.NewBoundingBoxFromRectIntersection(requestRect, sourceBox)
	dimensions := xray.ComputeRasterDimensions(requestRect, opts.Resolution)
	glog.Infof("resolved volume: %s, raster: %dx%d", tools.FmtJSONString(volume), dimensions.Width, dimensions.Height)

	tools.LogOutput("> rendering", dimensions.Width, "x", dimensions.Height, "tile...")
	written, err := xray.XrayFromPoints(
		client,
		nil,
		volume,
		opts.OutputFilename,
		dimensions,
		opts.ColoringStrategy.NewStrategy(),
		opts.TileBackgroundColor.Color(),
	)
	if err != nil {
		return err
	}
	if !written {
		tools.LogOutput("No points in bounding box. No output written.")
		return nil
	}

	if opts.WriteWorldFile {
		if err := xray.WriteWorldFile(opts.OutputFilename, volume, dimensions); err != nil {
			return err
		}
		tools.LogOutput("> georeference written to " + xray.WorldFilePath(opts.OutputFilename))
	}
	tools.LogOutput("> tile written to " + opts.OutputFilename)
	return nil
}
