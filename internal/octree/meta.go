package octree

import (
	"encoding/json"

	"github.com/pkg/errors"

	"github.com/ecopia-map/xray_tiler/internal/geometry"
)

const (
	// Name of the metadata document stored at the root of every octree location
	MetaFileName = "meta.json"
	// Folder holding the per node point blobs, relative to the octree root
	NodesFolderName = "nodes"

	supportedMetaVersion = 1

	// Id of the root node. Children append their octant digit to the parent id.
	RootNodeID = "r"
)

// Metadata document describing an on-disk octree: format version, the EPSG
// srid of the coordinate reference system the points are expressed in, the
// overall extent and the list of nodes holding point data.
type Meta struct {
	Version     int             `json:"version"`
	Srid        int             `json:"srid"`
	NumPoints   int64           `json:"num_points"`
	BoundingBox MetaBoundingBox `json:"bounding_box"`
	Nodes       []NodeEntry     `json:"nodes"`
}

type MetaBoundingBox struct {
	Xmin float64 `json:"xmin"`
	Xmax float64 `json:"xmax"`
	Ymin float64 `json:"ymin"`
	Ymax float64 `json:"ymax"`
	Zmin float64 `json:"zmin"`
	Zmax float64 `json:"zmax"`
}

type NodeEntry struct {
	// Octant path from the root, e.g. "r", "r0", "r07"
	ID        string `json:"id"`
	NumPoints int64  `json:"num_points"`
}

func (b *MetaBoundingBox) ToBoundingBox() *geometry.BoundingBox {
	return geometry.NewBoundingBox(b.Xmin, b.Xmax, b.Ymin, b.Ymax, b.Zmin, b.Zmax)
}

func NewMetaBoundingBox(box *geometry.BoundingBox) MetaBoundingBox {
	return MetaBoundingBox{
		Xmin: box.Xmin,
		Xmax: box.Xmax,
		Ymin: box.Ymin,
		Ymax: box.Ymax,
		Zmin: box.Zmin,
		Zmax: box.Zmax,
	}
}

// Parses and validates an octree metadata document
func ParseMeta(raw []byte) (*Meta, error) {
	var meta Meta
	if err := json.Unmarshal(raw, &meta); err != nil {
		return nil, errors.Wrap(err, "malformed octree metadata")
	}
	if meta.Version != supportedMetaVersion {
		return nil, errors.Errorf("unsupported octree metadata version %d", meta.Version)
	}
	if meta.Srid <= 0 {
		return nil, errors.New("octree metadata declares no srid")
	}
	box := meta.BoundingBox
	if box.Xmin > box.Xmax || box.Ymin > box.Ymax || box.Zmin > box.Zmax {
		return nil, errors.New("octree metadata declares an inverted bounding box")
	}
	for _, node := range meta.Nodes {
		if !isValidNodeID(node.ID) {
			return nil, errors.Errorf("invalid octree node id %q", node.ID)
		}
	}
	return &meta, nil
}

func isValidNodeID(id string) bool {
	if len(id) == 0 || id[0] != RootNodeID[0] {
		return false
	}
	for _, digit := range id[1:] {
		if digit < '0' || digit > '7' {
			return false
		}
	}
	return true
}

// Derives the bounding box of the node with the given id by descending the
// octant path from the root box.
func NodeBoundingBox(root *geometry.BoundingBox, id string) (*geometry.BoundingBox, error) {
	if !isValidNodeID(id) {
		return nil, errors.Errorf("invalid octree node id %q", id)
	}
	box := root
	for _, digit := range id[1:] {
		octant := uint8(digit - '0')
		box = geometry.NewBoundingBoxFromParent(box, &octant)
	}
	return box, nil
}
