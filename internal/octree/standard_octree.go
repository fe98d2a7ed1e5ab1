package octree

import (
	"io"

	"github.com/pkg/errors"

	"github.com/ecopia-map/xray_tiler/internal/converters"
	"github.com/ecopia-map/xray_tiler/internal/data"
	"github.com/ecopia-map/xray_tiler/internal/geometry"
)

// fetcher retrieves the raw bytes of an octree from its storage backend,
// hiding whether the octree lives on the local filesystem or behind a
// remote location scheme.
type fetcher interface {
	readMeta() ([]byte, error)
	readNode(id string) (io.ReadCloser, error)
}

// Octree reader over any storage backend exposed as a fetcher. Node bounding
// boxes are derived from the root extent, so pruning needs no extra metadata.
type StandardOctree struct {
	location           string
	meta               *Meta
	boundingBox        *geometry.BoundingBox
	fetch              fetcher
	elevationCorrector converters.ElevationCorrector
}

func newStandardOctree(location string, fetch fetcher, elevationCorrector converters.ElevationCorrector) (*StandardOctree, error) {
	raw, err := fetch.readMeta()
	if err != nil {
		return nil, errors.Wrapf(err, "cannot read octree metadata from %s", location)
	}
	meta, err := ParseMeta(raw)
	if err != nil {
		return nil, errors.Wrapf(err, "octree at %s", location)
	}
	box := meta.BoundingBox.ToBoundingBox()
	if elevationCorrector != nil {
		box = geometry.NewBoundingBox(
			box.Xmin, box.Xmax,
			box.Ymin, box.Ymax,
			elevationCorrector.CorrectElevation(box.Xmid, box.Ymid, box.Zmin),
			elevationCorrector.CorrectElevation(box.Xmid, box.Ymid, box.Zmax),
		)
	}
	return &StandardOctree{
		location:           location,
		meta:               meta,
		boundingBox:        box,
		fetch:              fetch,
		elevationCorrector: elevationCorrector,
	}, nil
}

func (o *StandardOctree) Location() string {
	return o.location
}

func (o *StandardOctree) BoundingBox() *geometry.BoundingBox {
	return o.boundingBox
}

func (o *StandardOctree) Srid() int {
	return o.meta.Srid
}

func (o *StandardOctree) TotalNumberOfPoints() int64 {
	return o.meta.NumPoints
}

// Streams every point inside the volume, skipping nodes whose boxes do not
// intersect it. Elevation correction is applied before the volume filter so
// callers only ever observe corrected coordinates.
func (o *StandardOctree) ForEachPoint(volume *geometry.BoundingBox, fn func(point *data.Point) error) error {
	if volume.IsEmpty() {
		return nil
	}
	for _, node := range o.meta.Nodes {
		nodeBox, err := NodeBoundingBox(o.boundingBox, node.ID)
		if err != nil {
			return errors.Wrapf(err, "octree at %s", o.location)
		}
		if !nodeBox.IntersectsWith(volume) {
			continue
		}
		if err := o.forEachNodePoint(node.ID, volume, fn); err != nil {
			return err
		}
	}
	return nil
}

func (o *StandardOctree) forEachNodePoint(id string, volume *geometry.BoundingBox, fn func(point *data.Point) error) error {
	blob, err := o.fetch.readNode(id)
	if err != nil {
		return errors.Wrapf(err, "cannot read octree node %s from %s", id, o.location)
	}
	defer func() { _ = blob.Close() }()

	err = DecodePoints(blob, func(point *data.Point) error {
		if o.elevationCorrector != nil {
			point.Z = o.elevationCorrector.CorrectElevation(point.X, point.Y, point.Z)
		}
		if !volume.Contains(point.X, point.Y, point.Z) {
			return nil
		}
		return fn(point)
	})
	return errors.Wrapf(err, "octree node %s from %s", id, o.location)
}
