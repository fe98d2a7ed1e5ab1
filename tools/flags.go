package tools

import (
	"flag"
)

// Holds the parsed command line configuration of the xray tile tool. All
// fields are pointers into the flag set; OctreeLocations carries the
// positional arguments and Passed records which flags were set explicitly,
// which the conditional-requirement validation relies on.
type FlagsForXrayTile struct {
	OutputFilename      *string
	Resolution          *float64
	ColoringStrategy    *string
	MinIntensity        *float64
	MaxIntensity        *float64
	MaxStddev           *float64
	MinX                *float64
	MinY                *float64
	MaxX                *float64
	MaxY                *float64
	TileBackgroundColor *string
	ZOffset             *float64
	WorldFile           *bool
	Silent              *bool
	LogTimestamp        *bool
	Help                *bool
	Version             *bool

	OctreeLocations []string
	Passed          map[string]bool
}

// Reports whether the given flag was set explicitly on the command line
func (f *FlagsForXrayTile) IsFlagPassed(name string) bool {
	return f.Passed[name]
}

func ParseFlagsForXrayTile() *FlagsForXrayTile {
	outputFilename := defineStringFlag("output_filename", "o", "output.png", "Output filename to write into.")
	resolution := defineFloat64Flag("resolution", "", 0.05, "Size of 1px in meters.")
	coloringStrategy := defineStringFlag("coloring_strategy", "", "xray", "Coloring strategy, one of 'xray', 'colored', 'colored_with_intensity', 'colored_with_height_stddev'.")
	minIntensity := defineFloat64Flag("min_intensity", "", 1.0, "Minimum intensity of all points for color scaling. Only used for 'colored_with_intensity'.")
	maxIntensity := defineFloat64Flag("max_intensity", "", 1.0, "Maximum intensity of all points for color scaling. Only used for 'colored_with_intensity'.")
	maxStddev := defineFloat64Flag("max_stddev", "", 1.0, "Maximum stddev for colored_with_height_stddev. Every stddev above this will be clamped to this value and appear saturated in the X-Rays. Only used for 'colored_with_height_stddev'.")
	minX := defineFloat64Flag("min_x", "", 0, "Bounding box minimum x in meters.")
	minY := defineFloat64Flag("min_y", "", 0, "Bounding box minimum y in meters.")
	maxX := defineFloat64Flag("max_x", "", 0, "Bounding box maximum x in meters.")
	maxY := defineFloat64Flag("max_y", "", 0, "Bounding box maximum y in meters.")
	tileBackgroundColor := defineStringFlag("tile_background_color", "", "white", "Background color of the tile, one of 'white', 'transparent'.")
	zOffset := defineFloat64Flag("z_offset", "z", 0, "Vertical offset to apply to points, in meters.")
	worldFile := defineBoolFlag("world_file", "w", false, "Writes a world file georeference next to the output image.")
	silent := defineBoolFlag("silent", "s", false, "Use to suppress all the non-error messages.")
	logTimestamp := defineBoolFlag("timestamp", "t", false, "Adds timestamp to log messages.")
	help := defineBoolFlag("help", "h", false, "Displays this help.")
	version := defineBoolFlag("version", "v", false, "Displays the version of xray_tiler.")

	flag.Parse()

	passed := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) {
		passed[f.Name] = true
	})

	return &FlagsForXrayTile{
		OutputFilename:      outputFilename,
		Resolution:          resolution,
		ColoringStrategy:    coloringStrategy,
		MinIntensity:        minIntensity,
		MaxIntensity:        maxIntensity,
		MaxStddev:           maxStddev,
		MinX:                minX,
		MinY:                minY,
		MaxX:                maxX,
		MaxY:                maxY,
		TileBackgroundColor: tileBackgroundColor,
		ZOffset:             zOffset,
		WorldFile:           worldFile,
		Silent:              silent,
		LogTimestamp:        logTimestamp,
		Help:                help,
		Version:             version,
		OctreeLocations:     flag.Args(),
		Passed:              passed,
	}
}

func defineStringFlag(name string, shortHand string, defaultValue string, usage string) *string {
	var output string
	flag.StringVar(&output, name, defaultValue, usage)
	if shortHand != name && shortHand != "" {
		flag.StringVar(&output, shortHand, defaultValue, usage+" (shorthand for "+name+")")
	}

	return &output
}

func defineFloat64Flag(name string, shortHand string, defaultValue float64, usage string) *float64 {
	var output float64
	flag.Float64Var(&output, name, defaultValue, usage)
	if shortHand != name && shortHand != "" {
		flag.Float64Var(&output, shortHand, defaultValue, usage+" (shorthand for "+name+")")
	}
	return &output
}

func defineBoolFlag(name string, shortHand string, defaultValue bool, usage string) *bool {
	var output bool
	flag.BoolVar(&output, name, defaultValue, usage)
	if shortHand != name && shortHand != "" {
		flag.BoolVar(&output, shortHand, defaultValue, usage+" (shorthand for "+name+")")
	}
	return &output
}
