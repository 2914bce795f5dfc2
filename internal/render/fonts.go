package render

import (
	"fmt"

	"github.com/rook-computer/platemaker/internal/assets"
	"github.com/rook-computer/platemaker/internal/render/text"
)

// Fonts holds the three faces a plate is drawn with.
type Fonts struct {
	Header *text.Face
	Number *text.Face
	Footer *text.Face
}

// DefaultFonts builds the faces from the bundled fonts.
func DefaultFonts() (Fonts, error) {
	header, err := text.ParseFace(assets.HeaderFontTTF, HeaderSize, 1)
	if err != nil {
		return Fonts{}, fmt.Errorf("header font: %w", err)
	}
	number, err := text.ParseFace(assets.NumberFontTTF, NumberSize, NumberCondense)
	if err != nil {
		return Fonts{}, fmt.Errorf("number font: %w", err)
	}
	footer, err := text.ParseFace(assets.FooterFontTTF, FooterSize, 1)
	if err != nil {
		return Fonts{}, fmt.Errorf("footer font: %w", err)
	}
	return Fonts{Header: header, Number: number, Footer: footer}, nil
}

// MustDefaultFonts panics if the bundled fonts fail to parse, which only
// happens with a corrupt build.
func MustDefaultFonts() Fonts {
	fonts, err := DefaultFonts()
	if err != nil {
		panic(err)
	}
	return fonts
}

// NumberFace parses a custom plate-number font. Custom fonts are expected to
// be condensed already, so no horizontal scaling is applied.
func NumberFace(data []byte) (*text.Face, error) {
	face, err := text.ParseFace(data, NumberSize, 1)
	if err != nil {
		return nil, fmt.Errorf("number font: %w", err)
	}
	return face, nil
}
