package geometry

// Axis aligned rectangle in the XY ground plane, in meters. Used to express
// the region requested for a tile.
type Rect struct {
	Xmin float64
	Xmax float64
	Ymin float64
	Ymax float64
}

func NewRect(xmin, xmax, ymin, ymax float64) *Rect {
	return &Rect{
		Xmin: xmin,
		Xmax: xmax,
		Ymin: ymin,
		Ymax: ymax,
	}
}

func (r *Rect) Dx() float64 {
	return r.Xmax - r.Xmin
}

func (r *Rect) Dy() float64 {
	return r.Ymax - r.Ymin
}
