package card

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

var (
	// ErrUnknownScheme is returned when no preset has the requested label.
	ErrUnknownScheme = errors.New("unknown color scheme")
	// ErrUnknownFont is returned when no preset matches the requested font.
	ErrUnknownFont = errors.New("unknown font")
)

// ColorScheme is a named bundle of background, text and accent colors.
type ColorScheme struct {
	Label      string
	Background string
	Text       string
	Accent     string
}

// FontOption is a named typographic preset.
type FontOption struct {
	Label  string
	Family FontFamily
}

var schemes = []ColorScheme{
	{Label: "Classic Blue", Background: "#1e40af", Text: "#ffffff", Accent: "#3b82f6"},
	{Label: "Professional Gray", Background: "#374151", Text: "#ffffff", Accent: "#9ca3af"},
	{Label: "Modern Black", Background: "#000000", Text: "#ffffff", Accent: "#fbbf24"},
	{Label: "Clean White", Background: "#ffffff", Text: "#1f2937", Accent: "#3b82f6"},
	{Label: "Elegant Navy", Background: "#1e3a8a", Text: "#ffffff", Accent: "#60a5fa"},
	{Label: "Creative Purple", Background: "#7c3aed", Text: "#ffffff", Accent: "#a78bfa"},
}

var fonts = []FontOption{
	{Label: "Inter", Family: FontSans},
	{Label: "Serif", Family: FontSerif},
	{Label: "Mono", Family: FontMono},
}

// Schemes returns the fixed color schemes in display order.
func Schemes() []ColorScheme {
	return slices.Clone(schemes)
}

// Fonts returns the fixed font presets in display order.
func Fonts() []FontOption {
	return slices.Clone(fonts)
}

// SchemeByLabel finds a scheme by label, ignoring case.
func SchemeByLabel(label string) (ColorScheme, error) {
	for _, s := range schemes {
		if strings.EqualFold(s.Label, strings.TrimSpace(label)) {
			return s, nil
		}
	}
	return ColorScheme{}, fmt.Errorf("%w: %q", ErrUnknownScheme, label)
}

// FontByFamily finds a font preset by its family token.
func FontByFamily(family FontFamily) (FontOption, error) {
	for _, f := range fonts {
		if f.Family == family {
			return f, nil
		}
	}
	return FontOption{}, fmt.Errorf("%w: %q", ErrUnknownFont, family)
}

// FontByName accepts either a preset label ("Serif") or a family token
// ("font-serif").
func FontByName(name string) (FontOption, error) {
	name = strings.TrimSpace(name)
	for _, f := range fonts {
		if strings.EqualFold(f.Label, name) || strings.EqualFold(string(f.Family), name) {
			return f, nil
		}
	}
	return FontOption{}, fmt.Errorf("%w: %q", ErrUnknownFont, name)
}

// Matches reports whether r currently carries exactly this scheme's colors.
func (s ColorScheme) Matches(r Record) bool {
	return strings.EqualFold(r.BackgroundColor, s.Background) &&
		strings.EqualFold(r.TextColor, s.Text) &&
		strings.EqualFold(r.AccentColor, s.Accent)
}
