package text

import (
	"bytes"
	"image"
	"image/color"
	"testing"

	"github.com/fogleman/gg"
	"golang.org/x/image/font/gofont/gobold"

	"github.com/rook-computer/platemaker/internal/palette"
	"github.com/rook-computer/platemaker/internal/render/shape"
)

func testFace(t *testing.T, size, condense float64) *Face {
	t.Helper()
	face, err := ParseFace(gobold.TTF, size, condense)
	if err != nil {
		t.Fatalf("ParseFace: %v", err)
	}
	return face
}

func TestToneFor(t *testing.T) {
	tests := []struct {
		name string
		base color.NRGBA
		want Tone
	}{
		{"white", palette.White, whiteTone},
		{"accent", palette.Accent, accentTone},
		{"black", palette.Black, genericTone},
		{"maroon", palette.DefaultBackground, genericTone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ToneFor(tt.base); got != tt.want {
				t.Errorf("ToneFor(%s) = %+v, want %+v", palette.Hex(tt.base), got, tt.want)
			}
		})
	}
}

func TestToneLayersAreTranslucent(t *testing.T) {
	for _, tone := range []Tone{whiteTone, accentTone, genericTone} {
		for _, c := range []color.NRGBA{tone.Highlight, tone.Shadow, tone.Edge} {
			if c.A == 0 || c.A == 0xFF {
				t.Errorf("tone color %+v should be translucent", c)
			}
		}
	}
}

func TestMeasureCondense(t *testing.T) {
	normal := testFace(t, 72, 1)
	narrow := testFace(t, 72, 0.5)
	w := normal.Measure("ASU123")
	if w <= 0 {
		t.Fatalf("expected positive width, got %v", w)
	}
	if n := narrow.Measure("ASU123"); n >= w {
		t.Errorf("condensed width %v should be less than %v", n, w)
	}
	if normal.Measure("") != 0 {
		t.Error("empty string should have zero width")
	}
}

func TestOutlineProducesClosedContours(t *testing.T) {
	path, width := testFace(t, 48, 1).Outline("A")
	if path.Empty() || width <= 0 {
		t.Fatalf("expected outline for A, got %d segments width %v", len(path.Segments), width)
	}
	if path.Segments[len(path.Segments)-1].Op != shape.OpClose {
		t.Errorf("last contour should be closed")
	}
	blank, _ := testFace(t, 48, 1).Outline(" ")
	if !blank.Empty() {
		t.Errorf("space should have no outline, got %d segments", len(blank.Segments))
	}
}

func TestBaselineMiddleIsBelowCenter(t *testing.T) {
	face := testFace(t, 100, 1)
	if got := face.Baseline(300, AnchorBaseline); got != 300 {
		t.Errorf("baseline anchor moved y: %v", got)
	}
	if got := face.Baseline(300, AnchorMiddle); got <= 300 {
		t.Errorf("middle anchor should put the baseline below y, got %v", got)
	}
}

func render(face *Face, s string, base color.NRGBA) *image.RGBA {
	dc := gg.NewContext(200, 100)
	dc.SetColor(color.NRGBA{R: 0x8C, G: 0x1D, B: 0x40, A: 0xFF})
	dc.Clear()
	DrawEmbossed(dc, s, 100, 50, face, base, AnchorMiddle)
	return dc.Image().(*image.RGBA)
}

func TestDrawEmbossedPaintsAndIsIdempotent(t *testing.T) {
	face := testFace(t, 48, 1)
	first := render(face, "AZ", palette.White)
	second := render(face, "AZ", palette.White)
	if !bytes.Equal(first.Pix, second.Pix) {
		t.Fatal("rendering the same text twice produced different pixels")
	}

	blank := render(face, "", palette.White)
	if bytes.Equal(first.Pix, blank.Pix) {
		t.Error("expected glyph pixels to differ from a blank line")
	}

	// The glyph fill is on top, so some pixel must carry the base color.
	found := false
	for i := 0; i+3 < len(first.Pix); i += 4 {
		if first.Pix[i] == 0xFF && first.Pix[i+1] == 0xFF && first.Pix[i+2] == 0xFF {
			found = true
			break
		}
	}
	if !found {
		t.Error("no pixel painted in the base color")
	}
}

func TestDrawEmbossedBlankLeavesBackground(t *testing.T) {
	img := render(testFace(t, 48, 1), "   ", palette.Black)
	c := img.RGBAAt(100, 50)
	if c.R != 0x8C || c.G != 0x1D || c.B != 0x40 {
		t.Errorf("blank line should not paint, got %+v", c)
	}
}
