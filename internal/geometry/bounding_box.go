package geometry

import "math"

// Axis aligned box in 3D space. Coordinates are expressed in meters in a
// cartesian metric reference system.
type BoundingBox struct {
	Xmin float64
	Xmax float64
	Ymin float64
	Ymax float64
	Zmin float64
	Zmax float64
	Xmid float64
	Ymid float64
	Zmid float64
}

// Instantiates a new BoundingBox from the given extremes
func NewBoundingBox(xmin, xmax, ymin, ymax, zmin, zmax float64) *BoundingBox {
	return &BoundingBox{
		Xmin: xmin,
		Xmax: xmax,
		Ymin: ymin,
		Ymax: ymax,
		Zmin: zmin,
		Zmax: zmax,
		Xmid: (xmin + xmax) / 2,
		Ymid: (ymin + ymax) / 2,
		Zmid: (zmin + zmax) / 2,
	}
}

// Returns the bounding box of the given octant of the parent box. The octant
// index uses bit 1 for the upper X half, bit 2 for the upper Y half and
// bit 4 for the upper Z half.
func NewBoundingBoxFromParent(parent *BoundingBox, octant *uint8) *BoundingBox {
	xmin, xmax := parent.Xmin, parent.Xmid
	if *octant&1 == 1 {
		xmin, xmax = parent.Xmid, parent.Xmax
	}
	ymin, ymax := parent.Ymin, parent.Ymid
	if *octant&2 == 2 {
		ymin, ymax = parent.Ymid, parent.Ymax
	}
	zmin, zmax := parent.Zmin, parent.Zmid
	if *octant&4 == 4 {
		zmin, zmax = parent.Zmid, parent.Zmax
	}
	return NewBoundingBox(xmin, xmax, ymin, ymax, zmin, zmax)
}

// Returns the box whose X and Y bounds are the intersection of the given
// rectangle with the given box and whose Z bounds are taken verbatim from the
// box. When rectangle and box do not overlap along an axis the returned box
// has min greater than max on that axis, which downstream code treats as an
// empty region.
func NewBoundingBoxFromRectIntersection(rect *Rect, box *BoundingBox) *BoundingBox {
	return NewBoundingBox(
		math.Max(rect.Xmin, box.Xmin),
		math.Min(rect.Xmax, box.Xmax),
		math.Max(rect.Ymin, box.Ymin),
		math.Min(rect.Ymax, box.Ymax),
		box.Zmin,
		box.Zmax,
	)
}

// Returns the smallest box enclosing all the given boxes. Returns nil for an
// empty input.
func MergeBoundingBoxes(boxes []*BoundingBox) *BoundingBox {
	if len(boxes) == 0 {
		return nil
	}
	merged := boxes[0]
	for _, box := range boxes[1:] {
		merged = NewBoundingBox(
			math.Min(merged.Xmin, box.Xmin),
			math.Max(merged.Xmax, box.Xmax),
			math.Min(merged.Ymin, box.Ymin),
			math.Max(merged.Ymax, box.Ymax),
			math.Min(merged.Zmin, box.Zmin),
			math.Max(merged.Zmax, box.Zmax),
		)
	}
	return merged
}

func (b *BoundingBox) Dx() float64 {
	return b.Xmax - b.Xmin
}

func (b *BoundingBox) Dy() float64 {
	return b.Ymax - b.Ymin
}

func (b *BoundingBox) Dz() float64 {
	return b.Zmax - b.Zmin
}

// An empty box has min greater than max on at least one axis. Such boxes are
// a valid representation of a non overlapping intersection.
func (b *BoundingBox) IsEmpty() bool {
	return b.Xmin > b.Xmax || b.Ymin > b.Ymax || b.Zmin > b.Zmax
}

func (b *BoundingBox) IntersectsWith(other *BoundingBox) bool {
	if b.IsEmpty() || other.IsEmpty() {
		return false
	}
	return b.Xmin <= other.Xmax && b.Xmax >= other.Xmin &&
		b.Ymin <= other.Ymax && b.Ymax >= other.Ymin &&
		b.Zmin <= other.Zmax && b.Zmax >= other.Zmin
}

func (b *BoundingBox) Contains(x, y, z float64) bool {
	return x >= b.Xmin && x <= b.Xmax &&
		y >= b.Ymin && y <= b.Ymax &&
		z >= b.Zmin && z <= b.Zmax
}
