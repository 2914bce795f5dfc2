package render

import "image/color"

// Logical canvas size of a plate frame.
const (
	CanvasWidth  = 1200
	CanvasHeight = 600
)

// Plate geometry and typography, in canvas pixels.
const (
	PlateMargin  = 10
	CornerRadius = 48
	BorderWidth  = 8

	HeaderSize     = 72
	HeaderBaseline = 108

	NumberSize = 352
	// NumberCondense narrows the bundled fallback face to roughly the width
	// of an extra-condensed plate typeface.
	NumberCondense = 0.62

	FooterSize     = 54
	FooterBaseline = 548
)

var BorderColor = color.NRGBA{A: 0xFF}
