package preview

import "github.com/lox/taruca/internal/card"

// fontStyle is how a font preset shows up in a terminal, which has one
// typeface: serif leans on italics, mono spaces the name out and quiets the
// contact block.
type fontStyle struct {
	italic       bool
	letterSpaced bool
	faintBody    bool
}

func styleFor(family card.FontFamily) fontStyle {
	switch family {
	case card.FontSerif:
		return fontStyle{italic: true}
	case card.FontMono:
		return fontStyle{letterSpaced: true, faintBody: true}
	default:
		return fontStyle{}
	}
}
