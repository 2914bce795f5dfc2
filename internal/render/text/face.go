package text

import (
	"fmt"
	"strings"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/rook-computer/platemaker/internal/render/shape"
)

// Anchor selects how the y coordinate passed to DrawEmbossed is interpreted.
type Anchor int

const (
	// AnchorBaseline puts the alphabetic baseline at y.
	AnchorBaseline Anchor = iota
	// AnchorMiddle centers the em box vertically on y.
	AnchorMiddle
)

// Face is a TrueType font at a fixed pixel size. Condense scales glyph
// outlines and advances horizontally (1 = as designed), which lets a regular
// face stand in for an extra-condensed plate font.
type Face struct {
	font     *truetype.Font
	size     float64
	condense float64
	scale    fixed.Int26_6
	ascent   float64
	descent  float64
}

// ParseFont parses TrueType bytes.
func ParseFont(data []byte) (*truetype.Font, error) {
	f, err := truetype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse truetype: %w", err)
	}
	return f, nil
}

// NewFace sizes f at sizePx pixels (72 DPI, so points equal pixels).
// A non-positive condense is treated as 1.
func NewFace(f *truetype.Font, sizePx, condense float64) *Face {
	if condense <= 0 {
		condense = 1
	}
	metrics := truetype.NewFace(f, &truetype.Options{Size: sizePx, DPI: 72, Hinting: font.HintingNone}).Metrics()
	return &Face{
		font:     f,
		size:     sizePx,
		condense: condense,
		scale:    fixed.Int26_6(sizePx * 64),
		ascent:   fromFixed(metrics.Ascent),
		descent:  fromFixed(metrics.Descent),
	}
}

// ParseFace is ParseFont followed by NewFace.
func ParseFace(data []byte, sizePx, condense float64) (*Face, error) {
	f, err := ParseFont(data)
	if err != nil {
		return nil, err
	}
	return NewFace(f, sizePx, condense), nil
}

// Size returns the pixel size.
func (f *Face) Size() float64 { return f.size }

// Baseline converts an anchored y into the baseline y.
func (f *Face) Baseline(y float64, anchor Anchor) float64 {
	if anchor == AnchorMiddle {
		return y + (f.ascent-f.descent)/2
	}
	return y
}

// Measure returns the advance width of s in pixels.
func (f *Face) Measure(s string) float64 {
	_, width := f.layout(s, false)
	return width
}

// Outline returns the glyph outlines of s with the pen starting at (0, 0) on
// the baseline, and the total advance width.
func (f *Face) Outline(s string) (shape.Path, float64) {
	return f.layout(s, true)
}

func (f *Face) layout(s string, withOutlines bool) (shape.Path, float64) {
	var (
		path    shape.Path
		glyph   truetype.GlyphBuf
		penX    float64
		prev    truetype.Index
		hasPrev bool
	)
	for _, r := range s {
		idx := f.font.Index(r)
		if hasPrev {
			penX += fromFixed(f.font.Kern(f.scale, prev, idx)) * f.condense
		}
		if withOutlines && !isBlank(r) {
			if err := glyph.Load(f.font, f.scale, idx, font.HintingNone); err == nil {
				start := 0
				for _, end := range glyph.Ends {
					f.appendContour(&path, glyph.Points[start:end], penX)
					start = end
				}
			}
		}
		penX += fromFixed(f.font.HMetric(f.scale, idx).AdvanceWidth) * f.condense
		prev, hasPrev = idx, true
	}
	return path, penX
}

// appendContour converts one closed TrueType contour into path segments.
// TrueType outlines are quadratic; two consecutive off-curve points imply an
// on-curve point halfway between them.
func (f *Face) appendContour(path *shape.Path, ps []truetype.Point, penX float64) {
	if len(ps) == 0 {
		return
	}
	pt := func(p truetype.Point) shape.Point {
		return shape.Point{X: penX + fromFixed(p.X)*f.condense, Y: -fromFixed(p.Y)}
	}
	onCurve := func(p truetype.Point) bool { return p.Flags&0x01 != 0 }

	start := pt(ps[0])
	others := ps[1:]
	if !onCurve(ps[0]) {
		last := ps[len(ps)-1]
		if onCurve(last) {
			start = pt(last)
			others = ps[:len(ps)-1]
		} else {
			lp := pt(last)
			start = shape.Point{X: (start.X + lp.X) / 2, Y: (start.Y + lp.Y) / 2}
			others = ps
		}
	}

	path.MoveTo(start.X, start.Y)
	q0, on0 := start, true
	for _, p := range others {
		q, on := pt(p), onCurve(p)
		switch {
		case on && on0:
			path.LineTo(q.X, q.Y)
		case on && !on0:
			path.QuadraticTo(q0.X, q0.Y, q.X, q.Y)
		case !on && !on0:
			mid := shape.Point{X: (q0.X + q.X) / 2, Y: (q0.Y + q.Y) / 2}
			path.QuadraticTo(q0.X, q0.Y, mid.X, mid.Y)
		}
		q0, on0 = q, on
	}
	if on0 {
		path.LineTo(start.X, start.Y)
	} else {
		path.QuadraticTo(q0.X, q0.Y, start.X, start.Y)
	}
	path.ClosePath()
}

func isBlank(r rune) bool { return strings.TrimSpace(string(r)) == "" }

func fromFixed(v fixed.Int26_6) float64 { return float64(v) / 64 }
