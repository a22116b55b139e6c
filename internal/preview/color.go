package preview

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lox/taruca/internal/card"
)

// Blend mixes accent over bg at the given opacity and returns a hex color.
// Values that do not parse as colors are passed through as the accent.
func Blend(bg, accent string, opacity float64) string {
	b, err := colorful.Hex(bg)
	if err != nil {
		return accent
	}
	a, err := colorful.Hex(accent)
	if err != nil {
		return accent
	}
	return b.BlendRgb(a, opacity).Clamped().Hex()
}

// Contrast returns the WCAG contrast ratio between the record's text and
// background colors. ok is false when either color does not parse.
func Contrast(r card.Record) (ratio float64, ok bool) {
	fg, err := colorful.Hex(r.TextColor)
	if err != nil {
		return 0, false
	}
	bg, err := colorful.Hex(r.BackgroundColor)
	if err != nil {
		return 0, false
	}

	l1, l2 := luminance(fg), luminance(bg)
	if l1 < l2 {
		l1, l2 = l2, l1
	}
	return (l1 + 0.05) / (l2 + 0.05), true
}

func luminance(c colorful.Color) float64 {
	r, g, b := c.LinearRgb()
	return 0.2126*r + 0.7152*g + 0.0722*b
}
