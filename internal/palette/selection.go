package palette

import "image/color"

// Option is one member of a mutually exclusive color choice.
type Option struct {
	Name     string
	Color    color.NRGBA
	Selected bool
}

// OptionsFrom builds an option group from swatches, marking the swatch whose
// name or hex equals selected. An empty selected leaves every option unselected.
func OptionsFrom(swatches []Swatch, selected string) []Option {
	out := make([]Option, 0, len(swatches))
	for _, s := range swatches {
		c, err := ParseHex(s.Hex)
		if err != nil {
			continue
		}
		isSelected := selected != "" && (selected == s.Name || sameHex(selected, c))
		out = append(out, Option{Name: s.Name, Color: c, Selected: isSelected})
	}
	return out
}

func sameHex(value string, c color.NRGBA) bool {
	parsed, err := ParseHex(value)
	if err != nil {
		return false
	}
	return SameColor(parsed, c)
}

// Resolve returns the color of the first selected option in enumeration
// order, or fallback when none is selected.
func Resolve(options []Option, fallback color.NRGBA) color.NRGBA {
	for _, opt := range options {
		if opt.Selected {
			return opt.Color
		}
	}
	return fallback
}

// ResolveBackgroundColor falls back to maroon (#8C1D40).
func ResolveBackgroundColor(options []Option) color.NRGBA {
	return Resolve(options, DefaultBackground)
}

// ResolveTextColor falls back to black (#000000).
func ResolveTextColor(options []Option) color.NRGBA {
	return Resolve(options, DefaultText)
}

// SelectedName returns the name of the option Resolve would pick, or "".
func SelectedName(options []Option) string {
	for _, opt := range options {
		if opt.Selected {
			return opt.Name
		}
	}
	return ""
}
