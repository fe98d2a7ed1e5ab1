package octree

import (
	"github.com/ecopia-map/xray_tiler/internal/data"
	"github.com/ecopia-map/xray_tiler/internal/geometry"
)

// An octree data source, i.e. a spatially indexed point cloud that can be
// streamed by volume. Implementations differ only in the storage backend the
// octree is fetched from.
type IOctree interface {
	// Location the octree was opened from, for diagnostics
	Location() string
	// Spatial extent of all points stored in the octree
	BoundingBox() *geometry.BoundingBox
	// EPSG srid of the coordinate reference system the points are expressed in
	Srid() int
	TotalNumberOfPoints() int64
	// Streams every point falling inside the given volume. Nodes whose
	// bounding boxes do not intersect the volume are never read.
	ForEachPoint(volume *geometry.BoundingBox, fn func(point *data.Point) error) error
}
