package text

import (
	"image/color"
	"strings"

	"github.com/fogleman/gg"

	"github.com/rook-computer/platemaker/internal/palette"
)

const (
	embossOffset    = 1.4
	embossEdgeWidth = 1.3
)

// Tone is the set of translucent colors layered around a glyph fill.
type Tone struct {
	Highlight color.NRGBA
	Shadow    color.NRGBA
	Edge      color.NRGBA
}

var (
	whiteTone = Tone{
		Highlight: color.NRGBA{R: 255, G: 255, B: 255, A: 140},
		Shadow:    color.NRGBA{R: 0, G: 0, B: 0, A: 150},
		Edge:      color.NRGBA{R: 0, G: 0, B: 0, A: 110},
	}
	accentTone = Tone{
		Highlight: color.NRGBA{R: 255, G: 236, B: 179, A: 150},
		Shadow:    color.NRGBA{R: 92, G: 52, B: 0, A: 130},
		Edge:      color.NRGBA{R: 110, G: 64, B: 0, A: 120},
	}
	genericTone = Tone{
		Highlight: color.NRGBA{R: 255, G: 255, B: 255, A: 70},
		Shadow:    color.NRGBA{R: 0, G: 0, B: 0, A: 90},
		Edge:      color.NRGBA{R: 0, G: 0, B: 0, A: 80},
	}
)

// ToneFor maps a text color onto its emboss tone: white and the accent gold
// get dedicated tones, every other color shares a low-contrast one.
func ToneFor(base color.NRGBA) Tone {
	switch {
	case palette.SameColor(base, palette.White):
		return whiteTone
	case palette.SameColor(base, palette.Accent):
		return accentTone
	default:
		return genericTone
	}
}

// DrawEmbossed paints s centered on centerX with a raised look: highlight
// up-left, shadow down-right, a thin edge stroke, then the base fill on top.
// Blank text is drawn as a single space so every line goes through the same
// draw calls.
func DrawEmbossed(dc *gg.Context, s string, centerX, y float64, face *Face, base color.NRGBA, anchor Anchor) {
	if strings.TrimSpace(s) == "" {
		s = " "
	}
	tone := ToneFor(base)
	glyphs, width := face.Outline(s)
	x := centerX - width/2
	baseline := face.Baseline(y, anchor)

	fill := func(c color.Color, dx, dy float64) {
		dc.ClearPath()
		glyphs.Trace(dc, x+dx, baseline+dy)
		dc.SetColor(c)
		dc.Fill()
	}

	fill(tone.Highlight, -embossOffset, -embossOffset)
	fill(tone.Shadow, embossOffset, embossOffset)

	dc.ClearPath()
	glyphs.Trace(dc, x, baseline)
	dc.SetColor(tone.Edge)
	dc.SetLineWidth(embossEdgeWidth)
	dc.Stroke()

	fill(base, 0, 0)
}
