package state

import (
	"github.com/rook-computer/platemaker/internal/palette"
	"github.com/rook-computer/platemaker/internal/plate"
)

// Plate resolves the inputs into render-ready values: the number is
// normalized and each color group falls back to its default when nothing
// matching is selected.
func (in Inputs) Plate() plate.Plate {
	return plate.Plate{
		Line1:      in.Line1,
		Line2:      in.Line2,
		Number:     plate.NormalizeNumber(in.Line3),
		Background: palette.ResolveBackgroundColor(palette.OptionsFrom(palette.BackgroundSwatches, in.Background)),
		Text:       palette.ResolveTextColor(palette.OptionsFrom(palette.TextSwatches, in.TextColor)),
	}
}
