package palette

import (
	"fmt"
	"image/color"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

const (
	DefaultBackgroundHex = "#8C1D40"
	DefaultTextHex       = "#000000"

	// AccentHex is the gold used for the warm emboss treatment.
	AccentHex = "#FFC627"
	WhiteHex  = "#FFFFFF"
)

var (
	DefaultBackground = MustParseHex(DefaultBackgroundHex)
	DefaultText       = MustParseHex(DefaultTextHex)
	Accent            = MustParseHex(AccentHex)
	White             = MustParseHex(WhiteHex)
	Black             = color.NRGBA{A: 0xFF}
)

// Swatch is one entry offered by a color picker.
type Swatch struct {
	Name string `json:"name"`
	Hex  string `json:"hex"`
}

// BackgroundSwatches is the enumerated background palette, in display order.
var BackgroundSwatches = []Swatch{
	{Name: "maroon", Hex: DefaultBackgroundHex},
	{Name: "gold", Hex: AccentHex},
	{Name: "white", Hex: WhiteHex},
	{Name: "black", Hex: "#000000"},
	{Name: "sky", Hex: "#00A3E0"},
	{Name: "copper", Hex: "#B87333"},
}

// TextSwatches is the enumerated text palette, in display order.
var TextSwatches = []Swatch{
	{Name: "black", Hex: DefaultTextHex},
	{Name: "white", Hex: WhiteHex},
	{Name: "gold", Hex: AccentHex},
	{Name: "maroon", Hex: DefaultBackgroundHex},
}

// ParseHex parses "#RRGGBB" or "#RGB" into an opaque color.
func ParseHex(s string) (color.NRGBA, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("parse color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 0xFF}, nil
}

// MustParseHex is ParseHex for package-level constants.
func MustParseHex(s string) color.NRGBA {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Hex formats c as upper-case "#RRGGBB", ignoring alpha.
func Hex(c color.NRGBA) string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// SameColor compares the opaque RGB channels of two colors.
func SameColor(a, b color.NRGBA) bool {
	return a.R == b.R && a.G == b.G && a.B == b.B
}
