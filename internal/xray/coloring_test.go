package xray

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecopia-map/xray_tiler/internal/data"
)

func TestParseColoringStrategyName(t *testing.T) {
	tests := []struct {
		value    string
		expected ColoringStrategyName
	}{
		{"xray", StrategyXray},
		{"colored", StrategyColored},
		{"colored_with_intensity", StrategyColoredWithIntensity},
		{"colored_with_height_stddev", StrategyColoredWithHeightStddev},
		{" XRay ", StrategyXray},
		{"density", ""},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, ParseColoringStrategyName(tt.value), "value %q", tt.value)
	}
}

func TestNewStrategySelectsVariant(t *testing.T) {
	tests := []struct {
		kind     ColoringStrategyKind
		expected interface{}
	}{
		{ColoringStrategyKind{Name: StrategyXray}, &xrayStrategy{}},
		{ColoringStrategyKind{Name: StrategyColored}, &coloredStrategy{}},
		{ColoringStrategyKind{Name: StrategyColoredWithIntensity, MinIntensity: 1, MaxIntensity: 1}, &coloredWithIntensityStrategy{}},
		{ColoringStrategyKind{Name: StrategyColoredWithHeightStddev, MaxStddev: 1}, &coloredWithHeightStddevStrategy{}},
	}
	for _, tt := range tests {
		assert.IsType(t, tt.expected, tt.kind.NewStrategy(), "kind %s", tt.kind.Name)
	}
}

func TestXrayStrategyDensityShading(t *testing.T) {
	strategy := newXrayStrategy()
	point := data.NewPoint(0, 0, 0, 0, 0, 0, 0, 0)

	_, ok := strategy.PixelColor(0, 0)
	assert.False(t, ok, "untouched pixel has no color")

	strategy.ProcessPoint(0, 0, point)
	sparse, ok := strategy.PixelColor(0, 0)
	require.True(t, ok)

	for i := 0; i < 99; i++ {
		strategy.ProcessPoint(1, 0, point)
	}
	dense, ok := strategy.PixelColor(1, 0)
	require.True(t, ok)

	assert.Greater(t, sparse.R, dense.R, "denser pixels render darker")
	assert.Equal(t, sparse.R, sparse.G)
	assert.Equal(t, sparse.R, sparse.B)
	assert.Equal(t, uint8(255), sparse.A)
}

func TestXrayStrategySaturates(t *testing.T) {
	strategy := newXrayStrategy()
	point := data.NewPoint(0, 0, 0, 0, 0, 0, 0, 0)
	for i := 0; i < 10*xraySaturationPointCount; i++ {
		strategy.ProcessPoint(0, 0, point)
	}

	saturated, ok := strategy.PixelColor(0, 0)
	require.True(t, ok)
	assert.Equal(t, uint8(0), saturated.R, "pixels beyond the saturation count are black")
}

func TestColoredStrategyAveragesColors(t *testing.T) {
	strategy := newColoredStrategy()
	strategy.ProcessPoint(2, 3, data.NewPoint(0, 0, 0, 200, 100, 0, 0, 0))
	strategy.ProcessPoint(2, 3, data.NewPoint(0, 0, 0, 100, 200, 50, 0, 0))

	pixel, ok := strategy.PixelColor(2, 3)
	require.True(t, ok)
	assert.Equal(t, color.NRGBA{R: 150, G: 150, B: 25, A: 255}, pixel)

	_, ok = strategy.PixelColor(3, 2)
	assert.False(t, ok)
}

func TestColoredWithIntensityStrategyScalesByIntensity(t *testing.T) {
	strategy := newColoredWithIntensityStrategy(0, 200)
	strategy.ProcessPoint(0, 0, data.NewPoint(0, 0, 0, 200, 200, 200, 100, 0))

	pixel, ok := strategy.PixelColor(0, 0)
	require.True(t, ok)
	// mean intensity 100 over range [0, 200] halves each channel
	assert.Equal(t, color.NRGBA{R: 100, G: 100, B: 100, A: 255}, pixel)
}

func TestColoredWithIntensityStrategyClampsOutOfRange(t *testing.T) {
	strategy := newColoredWithIntensityStrategy(10, 20)
	strategy.ProcessPoint(0, 0, data.NewPoint(0, 0, 0, 200, 100, 50, 255, 0))
	strategy.ProcessPoint(1, 0, data.NewPoint(0, 0, 0, 200, 100, 50, 0, 0))

	bright, ok := strategy.PixelColor(0, 0)
	require.True(t, ok)
	assert.Equal(t, color.NRGBA{R: 200, G: 100, B: 50, A: 255}, bright, "intensity above the range keeps full color")

	dark, ok := strategy.PixelColor(1, 0)
	require.True(t, ok)
	assert.Equal(t, color.NRGBA{R: 0, G: 0, B: 0, A: 255}, dark, "intensity below the range blacks the pixel out")
}

func TestColoredWithIntensityStrategyDegenerateRange(t *testing.T) {
	// min == max is what the defensive 1.0/1.0 fallback produces; color
	// scaling must degrade to a no-op rather than divide by zero
	strategy := newColoredWithIntensityStrategy(1, 1)
	strategy.ProcessPoint(0, 0, data.NewPoint(0, 0, 0, 120, 60, 30, 7, 0))

	pixel, ok := strategy.PixelColor(0, 0)
	require.True(t, ok)
	assert.Equal(t, color.NRGBA{R: 120, G: 60, B: 30, A: 255}, pixel)
}

func TestColoredWithHeightStddevStrategy(t *testing.T) {
	strategy := newColoredWithHeightStddevStrategy(2)

	// single point: stddev 0, pure blue
	strategy.ProcessPoint(0, 0, data.NewPoint(0, 0, 5, 0, 0, 0, 0, 0))
	flat, ok := strategy.PixelColor(0, 0)
	require.True(t, ok)
	assert.Equal(t, color.NRGBA{R: 0, G: 0, B: 255, A: 255}, flat)

	// large spread clamps to max stddev, pure red
	strategy.ProcessPoint(1, 0, data.NewPoint(0, 0, 0, 0, 0, 0, 0, 0))
	strategy.ProcessPoint(1, 0, data.NewPoint(0, 0, 100, 0, 0, 0, 0, 0))
	steep, ok := strategy.PixelColor(1, 0)
	require.True(t, ok)
	assert.Equal(t, color.NRGBA{R: 255, G: 0, B: 0, A: 255}, steep)

	_, ok = strategy.PixelColor(9, 9)
	assert.False(t, ok)
}
