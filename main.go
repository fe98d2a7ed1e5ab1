/*
 * This file is part of the Go Cesium Point Cloud Tiler distribution (https://github.com/mfbonfigli/gocesiumtiler).
 * Copyright (c) 2019 Massimo Federico Bonfigli - m.federico.bonfigli@gmail.com
 *
 * This program is free software; you can redistribute it and/or modify it
 * under the terms of the GNU Lesser General Public License Version 3 as
 * published by the Free Software Foundation;
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the GNU
 * Lesser General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General Public License
 * along with this program. If not, see <http://www.gnu.org/licenses/>.
 *
 * This software also uses third party components. You can find information
 * on their credits and licensing in the file LICENSE-3RD-PARTIES.md that
 * you should have received togheter with the source code.
 */

package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/ecopia-map/xray_tiler/internal/converters/elevation/offset_elevation_corrector"
	"github.com/ecopia-map/xray_tiler/internal/octree"
	"github.com/ecopia-map/xray_tiler/internal/tiler"
	"github.com/ecopia-map/xray_tiler/internal/xray"
	"github.com/ecopia-map/xray_tiler/pkg"
	"github.com/ecopia-map/xray_tiler/tools"
)

const VERSION = "1.0.0"

const logo = `
                             _   _ _
 __  ___ __ __ _ _   _      | |_(_) | ___ _ __
 \ \/ / '__/ _  | | | |_____| __| | |/ _ \ '__|
  >  <| | | (_| | |_| |_____| |_| | |  __/ |
 /_/\_\_|  \__,_|\__, |      \__|_|_|\___|_|
                 |___/  An orthographic point cloud X-Ray tile generator
                        Copyright YYYY - Ecopia Map
`

func main() {
	log.SetPrefix("[xray-tiler] ")
	log.SetFlags(log.LUTC | log.Ldate | log.Lmicroseconds | log.Lshortfile)

	flags := tools.ParseFlagsForXrayTile()

	// Prints the command line flag description
	if *flags.Help {
		showHelp()
		return
	}

	if *flags.Version {
		printVersion()
		return
	}

	// set logging and timestamp logging
	if *flags.Silent {
		tools.DisableLogger()
	} else {
		printLogo()
	}
	if !*flags.LogTimestamp {
		tools.DisableLoggerTimestamp()
	}

	// Put args inside a XrayOptions struct
	opts := &tiler.XrayOptions{
		OctreeLocations: flags.OctreeLocations,
		OutputFilename:  *flags.OutputFilename,
		Resolution:      *flags.Resolution,
		MinX:            *flags.MinX,
		MinY:            *flags.MinY,
		MaxX:            *flags.MaxX,
		MaxY:            *flags.MaxY,
		ColoringStrategy: parseColoringStrategyKind(flags),
		TileBackgroundColor: xray.ParseTileBackgroundColor(*flags.TileBackgroundColor),
		ZOffset:             *flags.ZOffset,
		WriteWorldFile:      *flags.WorldFile,
	}

	// Validate XrayOptions
	if msg, res := validateOptions(opts, flags); !res {
		log.Fatal("Error parsing input parameters: " + msg)
	}

	elevationCorrector := offset_elevation_corrector.NewOffsetElevationCorrector(opts.ZOffset)
	octreeFactory := octree.NewOctreeFactory(elevationCorrector).
		Register(octree.GCSLocationPrefix, octree.NewGCSOctree).
		Register(octree.HTTPLocationPrefix, octree.NewHTTPOctree).
		Register(octree.HTTPSLocationPrefix, octree.NewHTTPOctree)

	// Starts the tiler
	err := pkg.NewXrayTiler(octreeFactory).RunTiler(opts)

	if err != nil {
		log.Fatal("Error while generating xray tile: ", err)
	} else {
		tools.LogOutput("Tile generation completed")
	}
}

// Builds the coloring strategy variant from the parsed flags. The numeric
// parameters default to 1.0 at the flag layer; validateOptions separately
// enforces that they were passed for the variant that needs them.
func parseColoringStrategyKind(flags *tools.FlagsForXrayTile) xray.ColoringStrategyKind {
	kind := xray.ColoringStrategyKind{
		Name: xray.ParseColoringStrategyName(*flags.ColoringStrategy),
	}
	switch kind.Name {
	case xray.StrategyColoredWithIntensity:
		kind.MinIntensity = float32(*flags.MinIntensity)
		kind.MaxIntensity = float32(*flags.MaxIntensity)
	case xray.StrategyColoredWithHeightStddev:
		kind.MaxStddev = float32(*flags.MaxStddev)
	}
	return kind
}

// Validates the input options provided to the command line tool, checking
// enumeration tokens, the requested region and the conditionally required
// strategy parameters before any data source is accessed
func validateOptions(opts *tiler.XrayOptions, flags *tools.FlagsForXrayTile) (string, bool) {
	if len(opts.OctreeLocations) == 0 {
		return "at least one octree location must be provided", false
	}
	if opts.Resolution <= 0 {
		return "resolution must be strictly positive", false
	}
	if opts.ColoringStrategy.Name == "" {
		return "coloring_strategy should be one of xray, colored, colored_with_intensity, colored_with_height_stddev", false
	}
	if opts.TileBackgroundColor == "" {
		return "tile_background_color should be either white or transparent", false
	}

	for _, name := range []string{"min_x", "min_y", "max_x", "max_y"} {
		if !flags.IsFlagPassed(name) {
			return name + " is required", false
		}
	}
	if opts.MinX > opts.MaxX || opts.MinY > opts.MaxY {
		return "bounding box min cannot exceed max", false
	}

	if opts.ColoringStrategy.Name == xray.StrategyColoredWithIntensity {
		if !flags.IsFlagPassed("min_intensity") || !flags.IsFlagPassed("max_intensity") {
			return "min_intensity and max_intensity are required for colored_with_intensity", false
		}
	}
	if opts.ColoringStrategy.Name == xray.StrategyColoredWithHeightStddev {
		if !flags.IsFlagPassed("max_stddev") {
			return "max_stddev is required for colored_with_height_stddev", false
		}
	}

	return "", true
}

func printLogo() {
	fmt.Println(strings.ReplaceAll(logo, "YYYY", strconv.Itoa(time.Now().Year())))
}

func showHelp() {
	printLogo()
	fmt.Println("***")
	fmt.Println("xray_tiler renders a single orthographic X-Ray PNG tile from one or more point cloud octrees")
	printVersion()
	fmt.Println("***")
	fmt.Println("")
	fmt.Println("Usage: xray_tiler [flags] octree_location [octree_location...]")
	fmt.Println("")
	fmt.Println("Command line flags: ")
	flag.CommandLine.SetOutput(os.Stdout)
	flag.PrintDefaults()
}

func printVersion() {
	fmt.Println("v." + VERSION)
}
