package shape

import "math"

// ClampRadius limits radius to [0, min(width, height)/2]. Larger radii would
// make the corner curves overlap and the outline self-intersect.
func ClampRadius(width, height, radius float64) float64 {
	limit := math.Min(width, height) / 2
	if limit < 0 {
		limit = 0
	}
	if radius > limit {
		radius = limit
	}
	if radius < 0 {
		radius = 0
	}
	return radius
}

// RoundedRect builds a closed rounded-rectangle outline: four straight edges
// and four quadratic corners, traversed clockwise starting on the top edge
// just right of the top-left corner.
//
// The radius is clamped with ClampRadius, so callers may pass the nominal
// plate radius even when the surface is smaller than 2×radius.
func RoundedRect(x, y, width, height, radius float64) Path {
	radius = ClampRadius(width, height, radius)
	right := x + width
	bottom := y + height

	var p Path
	p.MoveTo(x+radius, y)
	p.LineTo(right-radius, y)
	p.QuadraticTo(right, y, right, y+radius)
	p.LineTo(right, bottom-radius)
	p.QuadraticTo(right, bottom, right-radius, bottom)
	p.LineTo(x+radius, bottom)
	p.QuadraticTo(x, bottom, x, bottom-radius)
	p.LineTo(x, y+radius)
	p.QuadraticTo(x, y, x+radius, y)
	p.ClosePath()
	return p
}
