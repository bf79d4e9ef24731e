package palette

import "strings"

// Shade is one of the four colour indices a background pixel can
// resolve to.
type Shade uint8

const (
	White Shade = iota
	Light
	Dark
	Black
)

func (s Shade) String() string {
	switch s {
	case White:
		return "white"
	case Light:
		return "light"
	case Dark:
		return "dark"
	case Black:
		return "black"
	}
	return "unknown"
}

// Palette represents a palette. A palette is an array of 4 RGB values,
// indexed by Shade.
type Palette struct {
	Name   string
	Colors [4][3]uint8
}

// RGB returns the colour of the given shade.
func (p Palette) RGB(s Shade) [3]uint8 {
	return p.Colors[s&3]
}

// Greyscale is the default palette, with evenly spaced greys.
var Greyscale = Palette{
	Name: "greyscale",
	Colors: [4][3]uint8{
		{0xFF, 0xFF, 0xFF},
		{0xAA, 0xAA, 0xAA},
		{0x55, 0x55, 0x55},
		{0x00, 0x00, 0x00},
	},
}

// Green attempts to emulate the colour palette as it would have
// appeared on the original Game Boy.
var Green = Palette{
	Name: "green",
	Colors: [4][3]uint8{
		{0x9B, 0xBC, 0x0F},
		{0x8B, 0xAC, 0x0F},
		{0x30, 0x62, 0x30},
		{0x0F, 0x38, 0x0F},
	},
}

// Palettes is a list of all available palettes.
var Palettes = []Palette{Greyscale, Green}

// ByName returns the palette with the given name, falling back to
// Greyscale when no palette matches.
func ByName(name string) Palette {
	for _, p := range Palettes {
		if p.Name == strings.ToLower(name) {
			return p
		}
	}
	return Greyscale
}
