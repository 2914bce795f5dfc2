package render

import (
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"

	"github.com/rook-computer/platemaker/internal/plate"
	"github.com/rook-computer/platemaker/internal/render/layout"
	"github.com/rook-computer/platemaker/internal/render/shape"
	"github.com/rook-computer/platemaker/internal/render/text"
)

// Stage is one step of a render pass. Stages always run in declaration order.
type Stage int

const (
	StageClear Stage = iota
	StageFillBackground
	StageClipAndDrawOverlay
	StageStrokeBorder
	StageRenderLine1
	StageRenderLine2
	StageRenderLine3
	StageDone
)

var stageNames = [...]string{"clear", "fill-background", "clip-and-draw-overlay", "stroke-border", "render-line1", "render-line2", "render-line3", "done"}

func (s Stage) String() string {
	if s < 0 || int(s) >= len(stageNames) {
		return "unknown"
	}
	return stageNames[s]
}

// Compositor draws complete plate frames. It is not safe for concurrent use;
// callers serialize renders.
type Compositor struct {
	fonts Fonts

	// OnStage, when set, is called as each stage starts.
	OnStage func(Stage)
}

func NewCompositor(fonts Fonts) *Compositor {
	return &Compositor{fonts: fonts}
}

// SetNumberFace swaps the plate-number face, e.g. once a custom font loads.
func (c *Compositor) SetNumberFace(face *text.Face) {
	if face != nil {
		c.fonts.Number = face
	}
}

// NewSurface allocates a canvas-sized drawing surface.
func NewSurface() *gg.Context {
	return gg.NewContext(CanvasWidth, CanvasHeight)
}

// Frame renders p into a fresh surface and returns its pixels.
func (c *Compositor) Frame(p plate.Plate, overlay image.Image) *image.RGBA {
	dc := NewSurface()
	c.Render(dc, p, overlay)
	return dc.Image().(*image.RGBA)
}

// Render runs one full pass over dc: clear, fill the plate body, draw the
// overlay clipped to the body, stroke the border, then the three text lines.
// A nil overlay skips the overlay stage's drawing.
func (c *Compositor) Render(dc *gg.Context, p plate.Plate, overlay image.Image) {
	width := float64(dc.Width())
	height := float64(dc.Height())
	body := layout.Inset(layout.Rect{W: width, H: height}, PlateMargin)
	outline := shape.RoundedRect(body.X, body.Y, body.W, body.H, CornerRadius)
	number := plate.NormalizeNumber(p.Number)

	c.enter(StageClear)
	dc.ResetClip()
	dc.ClearPath()
	dc.SetColor(color.Transparent)
	dc.Clear()

	c.enter(StageFillBackground)
	outline.Trace(dc, 0, 0)
	dc.SetColor(p.Background)
	dc.Fill()

	c.enter(StageClipAndDrawOverlay)
	if overlay != nil {
		dc.Push()
		outline.Trace(dc, 0, 0)
		dc.Clip()
		drawCover(dc, overlay, layout.Rect{W: width, H: height})
		dc.Pop()
	}

	c.enter(StageStrokeBorder)
	dc.ClearPath()
	outline.Trace(dc, 0, 0)
	dc.SetLineWidth(BorderWidth)
	dc.SetColor(BorderColor)
	dc.Stroke()

	c.enter(StageRenderLine1)
	text.DrawEmbossed(dc, p.Line1, width/2, HeaderBaseline, c.fonts.Header, p.Text, text.AnchorBaseline)

	c.enter(StageRenderLine2)
	text.DrawEmbossed(dc, p.Line2, width/2, FooterBaseline, c.fonts.Footer, p.Text, text.AnchorBaseline)

	c.enter(StageRenderLine3)
	text.DrawEmbossed(dc, number, width/2, height/2, c.fonts.Number, p.Text, text.AnchorMiddle)

	c.enter(StageDone)
}

func (c *Compositor) enter(stage Stage) {
	if c.OnStage != nil {
		c.OnStage(stage)
	}
}

// drawCover resamples img to its cover-fit placement over target and draws it
// through the current clip.
func drawCover(dc *gg.Context, img image.Image, target layout.Rect) {
	bounds := img.Bounds()
	if bounds.Dx() <= 0 || bounds.Dy() <= 0 {
		return
	}
	place := layout.Cover(float64(bounds.Dx()), float64(bounds.Dy()), target)
	w := int(math.Ceil(place.W))
	h := int(math.Ceil(place.H))
	if w <= 0 || h <= 0 {
		return
	}
	scaled := imaging.Resize(img, w, h, imaging.Linear)
	dc.DrawImage(scaled, int(math.Floor(place.X)), int(math.Floor(place.Y)))
}
