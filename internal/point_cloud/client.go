package point_cloud

import (
	"github.com/pkg/errors"

	"github.com/ecopia-map/xray_tiler/internal/data"
	"github.com/ecopia-map/xray_tiler/internal/geometry"
	"github.com/ecopia-map/xray_tiler/internal/octree"
)

// PointCloudClient unions one or more octree data sources behind a single
// bounding box and point stream. All handles are acquired up front, a failure
// to open any location fails the construction.
type PointCloudClient struct {
	octrees     []octree.IOctree
	boundingBox *geometry.BoundingBox
	srid        int
}

func NewPointCloudClient(locations []string, factory *octree.OctreeFactory) (*PointCloudClient, error) {
	if len(locations) == 0 {
		return nil, errors.New("at least one octree location is required")
	}

	octrees := make([]octree.IOctree, 0, len(locations))
	boxes := make([]*geometry.BoundingBox, 0, len(locations))
	srid := 0
	for _, location := range locations {
		tree, err := factory.CreateOctreeFromLocation(location)
		if err != nil {
			return nil, errors.Wrapf(err, "cannot open octree %s", location)
		}
		// bounding boxes can only be merged when every source shares one
		// coordinate reference system
		if srid == 0 {
			srid = tree.Srid()
		} else if tree.Srid() != srid {
			return nil, errors.Errorf("octree %s uses srid %d, the other sources use srid %d", location, tree.Srid(), srid)
		}
		octrees = append(octrees, tree)
		boxes = append(boxes, tree.BoundingBox())
	}

	return &PointCloudClient{
		octrees:     octrees,
		boundingBox: geometry.MergeBoundingBoxes(boxes),
		srid:        srid,
	}, nil
}

// Spatial extent of all points available across the underlying sources
func (c *PointCloudClient) BoundingBox() *geometry.BoundingBox {
	return c.boundingBox
}

// EPSG srid shared by all the underlying sources
func (c *PointCloudClient) Srid() int {
	return c.srid
}

func (c *PointCloudClient) TotalNumberOfPoints() int64 {
	total := int64(0)
	for _, tree := range c.octrees {
		total += tree.TotalNumberOfPoints()
	}
	return total
}

func (c *PointCloudClient) NumberOfSources() int {
	return len(c.octrees)
}

// Streams every point of every source falling inside the given volume
func (c *PointCloudClient) ForEachPointInVolume(volume *geometry.BoundingBox, fn func(point *data.Point) error) error {
	for _, tree := range c.octrees {
		if !tree.BoundingBox().IntersectsWith(volume) {
			continue
		}
		if err := tree.ForEachPoint(volume, fn); err != nil {
			return err
		}
	}
	return nil
}
