package xray

import (
	"image/color"
	"strings"
)

type TileBackgroundColor string

const (
	TileBackgroundWhite       TileBackgroundColor = "white"
	TileBackgroundTransparent TileBackgroundColor = "transparent"
)

// The two background constants in 8 bit per channel representation
var (
	White       = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	Transparent = color.NRGBA{}
)

func (e TileBackgroundColor) String() string {
	return string(e)
}

// Parses a background color token. Unknown tokens yield the empty value,
// which configuration validation rejects.
func ParseTileBackgroundColor(value string) TileBackgroundColor {
	normalizedValue := strings.Trim(strings.ToLower(value), " ")
	if normalizedValue == "white" {
		return TileBackgroundWhite
	} else if normalizedValue == "transparent" {
		return TileBackgroundTransparent
	}
	return ""
}

func (e TileBackgroundColor) Color() color.NRGBA {
	if e == TileBackgroundWhite {
		return White
	}
	return Transparent
}
