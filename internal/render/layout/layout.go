package layout

import "image"

// Rect is an axis-aligned rectangle in floating-point canvas pixels.
type Rect struct {
	X, Y float64
	W, H float64
}

// FromImageRect converts an integer image rectangle.
func FromImageRect(rect image.Rectangle) Rect {
	rect = rect.Canon()
	return Rect{X: float64(rect.Min.X), Y: float64(rect.Min.Y), W: float64(rect.Dx()), H: float64(rect.Dy())}
}

// Max returns the bottom-right corner.
func (r Rect) Max() (x, y float64) { return r.X + r.W, r.Y + r.H }

// Inset shrinks rect by paddingPx on all sides.
// The result never has negative width or height.
func Inset(rect Rect, paddingPx float64) Rect {
	if paddingPx <= 0 {
		return rect
	}
	return Normalize(Rect{X: rect.X + paddingPx, Y: rect.Y + paddingPx, W: rect.W - 2*paddingPx, H: rect.H - 2*paddingPx})
}

// Normalize collapses negative extents to zero, keeping the rect centered
// where its size went negative.
func Normalize(rect Rect) Rect {
	if rect.W < 0 {
		rect.X += rect.W / 2
		rect.W = 0
	}
	if rect.H < 0 {
		rect.Y += rect.H / 2
		rect.H = 0
	}
	return rect
}

// Cover returns where to draw an imageWidth×imageHeight image so that it fully
// covers target while keeping its aspect ratio (CSS "background-size: cover").
// The overflow is split evenly on both sides of the cropped axis. Cover only
// computes placement; callers clip to the target shape themselves.
//
// A zero-sized image has no aspect ratio; target is returned unchanged.
func Cover(imageWidth, imageHeight float64, target Rect) Rect {
	if imageWidth <= 0 || imageHeight <= 0 || target.H <= 0 {
		return target
	}
	imageRatio := imageWidth / imageHeight
	targetRatio := target.W / target.H

	out := target
	if imageRatio > targetRatio {
		// Relatively wider: match height, crop left/right.
		out.W = target.H * imageRatio
		out.X = target.X - (out.W-target.W)/2
	} else {
		out.H = target.W / imageRatio
		out.Y = target.Y - (out.H-target.H)/2
	}
	return out
}
