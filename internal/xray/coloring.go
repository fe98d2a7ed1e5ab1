package xray

import (
	"image/color"
	"math"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
	"gonum.org/v1/gonum/stat"

	"github.com/ecopia-map/xray_tiler/internal/data"
)

type ColoringStrategyName string

const (
	StrategyXray                    ColoringStrategyName = "xray"
	StrategyColored                 ColoringStrategyName = "colored"
	StrategyColoredWithIntensity    ColoringStrategyName = "colored_with_intensity"
	StrategyColoredWithHeightStddev ColoringStrategyName = "colored_with_height_stddev"
)

// Parses a coloring strategy token. Unknown tokens yield the empty value,
// which configuration validation rejects.
func ParseColoringStrategyName(value string) ColoringStrategyName {
	normalizedValue := ColoringStrategyName(strings.Trim(strings.ToLower(value), " "))
	switch normalizedValue {
	case StrategyXray, StrategyColored, StrategyColoredWithIntensity, StrategyColoredWithHeightStddev:
		return normalizedValue
	}
	return ""
}

// Selects one pixel coloring policy together with its parameters. The
// numeric fields are only meaningful for the variant they are named after.
// Configuration validation guarantees the required parameters were provided
// for the selected variant; the flag layer independently defaults them to 1.0
// so a bypassed validation still yields a runnable configuration.
type ColoringStrategyKind struct {
	Name ColoringStrategyName

	// colored_with_intensity: intensity range used for color scaling
	MinIntensity float32
	MaxIntensity float32

	// colored_with_height_stddev: stddev at which pixels appear saturated
	MaxStddev float32
}

// Instantiates the stateful strategy consumed by one generation call. The
// returned instance owns its per pixel accumulators and must not be shared
// between concurrent renders.
func (k *ColoringStrategyKind) NewStrategy() ColoringStrategy {
	switch k.Name {
	case StrategyColored:
		return newColoredStrategy()
	case StrategyColoredWithIntensity:
		return newColoredWithIntensityStrategy(k.MinIntensity, k.MaxIntensity)
	case StrategyColoredWithHeightStddev:
		return newColoredWithHeightStddevStrategy(k.MaxStddev)
	default:
		return newXrayStrategy()
	}
}

// A ColoringStrategy accumulates the points binned into each pixel and
// decides the final pixel colors of a tile.
type ColoringStrategy interface {
	// Accounts the given point to the pixel at px, py
	ProcessPoint(px, py uint32, point *data.Point)
	// Returns the color of the pixel at px, py and whether any point was
	// binned into it. Pixels without points get the tile background instead.
	PixelColor(px, py uint32) (color.NRGBA, bool)
}

type pixelIndex struct {
	x uint32
	y uint32
}

// Point count beyond which an xray pixel appears fully saturated
const xraySaturationPointCount = 256

// Grayscale by point density: the more points project into a pixel the
// darker it gets, on a log curve so sparse areas stay distinguishable.
type xrayStrategy struct {
	counts map[pixelIndex]uint32
}

func newXrayStrategy() *xrayStrategy {
	return &xrayStrategy{counts: make(map[pixelIndex]uint32)}
}

func (s *xrayStrategy) ProcessPoint(px, py uint32, point *data.Point) {
	s.counts[pixelIndex{px, py}]++
}

func (s *xrayStrategy) PixelColor(px, py uint32) (color.NRGBA, bool) {
	count := s.counts[pixelIndex{px, py}]
	if count == 0 {
		return color.NRGBA{}, false
	}
	brightness := 1.0 - math.Log(1+float64(count))/math.Log(1+xraySaturationPointCount)
	if brightness < 0 {
		brightness = 0
	}
	gray := uint8(math.Round(brightness * 255))
	return color.NRGBA{R: gray, G: gray, B: gray, A: 255}, true
}

type colorAccumulator struct {
	sumR, sumG, sumB uint64
	sumIntensity     uint64
	count            uint64
}

func (a *colorAccumulator) add(point *data.Point) {
	a.sumR += uint64(point.R)
	a.sumG += uint64(point.G)
	a.sumB += uint64(point.B)
	a.sumIntensity += uint64(point.Intensity)
	a.count++
}

func (a *colorAccumulator) meanColor() (float64, float64, float64) {
	return float64(a.sumR) / float64(a.count),
		float64(a.sumG) / float64(a.count),
		float64(a.sumB) / float64(a.count)
}

func (a *colorAccumulator) meanIntensity() float64 {
	return float64(a.sumIntensity) / float64(a.count)
}

// Mean RGB of the points projected into each pixel
type coloredStrategy struct {
	pixels map[pixelIndex]*colorAccumulator
}

func newColoredStrategy() *coloredStrategy {
	return &coloredStrategy{pixels: make(map[pixelIndex]*colorAccumulator)}
}

func (s *coloredStrategy) accumulate(px, py uint32, point *data.Point) *colorAccumulator {
	acc := s.pixels[pixelIndex{px, py}]
	if acc == nil {
		acc = &colorAccumulator{}
		s.pixels[pixelIndex{px, py}] = acc
	}
	acc.add(point)
	return acc
}

func (s *coloredStrategy) ProcessPoint(px, py uint32, point *data.Point) {
	s.accumulate(px, py, point)
}

func (s *coloredStrategy) PixelColor(px, py uint32) (color.NRGBA, bool) {
	acc := s.pixels[pixelIndex{px, py}]
	if acc == nil {
		return color.NRGBA{}, false
	}
	r, g, b := acc.meanColor()
	return color.NRGBA{R: uint8(math.Round(r)), G: uint8(math.Round(g)), B: uint8(math.Round(b)), A: 255}, true
}

// Mean RGB scaled by the pixel mean intensity normalized to the configured
// intensity range
type coloredWithIntensityStrategy struct {
	coloredStrategy
	minIntensity float64
	maxIntensity float64
}

func newColoredWithIntensityStrategy(minIntensity, maxIntensity float32) *coloredWithIntensityStrategy {
	return &coloredWithIntensityStrategy{
		coloredStrategy: coloredStrategy{pixels: make(map[pixelIndex]*colorAccumulator)},
		minIntensity:    float64(minIntensity),
		maxIntensity:    float64(maxIntensity),
	}
}

func (s *coloredWithIntensityStrategy) PixelColor(px, py uint32) (color.NRGBA, bool) {
	acc := s.pixels[pixelIndex{px, py}]
	if acc == nil {
		return color.NRGBA{}, false
	}
	factor := 1.0
	if s.maxIntensity > s.minIntensity {
		factor = (acc.meanIntensity() - s.minIntensity) / (s.maxIntensity - s.minIntensity)
		factor = clamp(factor, 0, 1)
	}
	r, g, b := acc.meanColor()
	return color.NRGBA{
		R: uint8(math.Round(r * factor)),
		G: uint8(math.Round(g * factor)),
		B: uint8(math.Round(b * factor)),
		A: 255,
	}, true
}

// Heat ramp over the standard deviation of point heights per pixel: flat
// areas render blue, areas at or above the configured stddev render red.
type coloredWithHeightStddevStrategy struct {
	maxStddev float64
	heights   map[pixelIndex][]float64
}

func newColoredWithHeightStddevStrategy(maxStddev float32) *coloredWithHeightStddevStrategy {
	return &coloredWithHeightStddevStrategy{
		maxStddev: float64(maxStddev),
		heights:   make(map[pixelIndex][]float64),
	}
}

func (s *coloredWithHeightStddevStrategy) ProcessPoint(px, py uint32, point *data.Point) {
	s.heights[pixelIndex{px, py}] = append(s.heights[pixelIndex{px, py}], point.Z)
}

func (s *coloredWithHeightStddevStrategy) PixelColor(px, py uint32) (color.NRGBA, bool) {
	heights := s.heights[pixelIndex{px, py}]
	if len(heights) == 0 {
		return color.NRGBA{}, false
	}
	stddev := 0.0
	if len(heights) > 1 {
		stddev = stat.StdDev(heights, nil)
	}
	saturation := 0.0
	if s.maxStddev > 0 {
		saturation = clamp(stddev/s.maxStddev, 0, 1)
	}
	// hue 240 is blue, hue 0 is red
	r, g, b := colorful.Hsv(240*(1-saturation), 1, 1).RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}, true
}

func clamp(value, low, high float64) float64 {
	return math.Min(math.Max(value, low), high)
}
