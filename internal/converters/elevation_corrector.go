package converters

// ElevationCorrector adjusts the elevation of a point before it enters the
// rendering pipeline, e.g. to compensate a constant vertical datum offset.
type ElevationCorrector interface {
	CorrectElevation(x, y, z float64) float64
}
