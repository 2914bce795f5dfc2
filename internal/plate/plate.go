// Package plate holds the resolved, render-ready description of a plate and
// the plate-number rules shared by the renderer and the exporter.
package plate

import (
	"image/color"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/rook-computer/platemaker/internal/palette"
)

// MaxNumberLen is the longest plate number that is rendered or exported.
const MaxNumberLen = 6

// NormalizeNumber upper-cases s and keeps at most MaxNumberLen runes.
// Upper-casing happens first so expansions such as "ß" → "SS" cannot push
// the result past the limit.
func NormalizeNumber(s string) string {
	// A Caser keeps state, so each call gets its own.
	return Truncate(cases.Upper(language.Und).String(s), MaxNumberLen)
}

// Truncate keeps the first n runes of s.
func Truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}

// Plate is one fully resolved frame description.
type Plate struct {
	Line1      string
	Line2      string
	Number     string
	Background color.NRGBA
	Text       color.NRGBA
}

// Default returns an empty plate in the default colors.
func Default() Plate {
	return Plate{Background: palette.DefaultBackground, Text: palette.DefaultText}
}

// Normalized returns a copy with Number passed through NormalizeNumber.
func (p Plate) Normalized() Plate {
	p.Number = NormalizeNumber(p.Number)
	return p
}
