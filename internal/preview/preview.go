// Package preview draws a card record as a block of styled terminal cells.
//
// Rendering is a pure function of the record: the same record and options
// always produce the same string, so callers simply re-render after every
// change.
package preview

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/lox/taruca/internal/card"
)

const (
	// DefaultWidth and DefaultHeight approximate a 3.5" x 2" card with
	// terminal cells roughly twice as tall as they are wide.
	DefaultWidth  = 44
	DefaultHeight = 12

	MinWidth  = 24
	MinHeight = 8

	padX = 2
	padY = 1

	// The accent corner covers 20/96 of the width and 20/56 of the height.
	accentWidthRatio  = 20.0 / 96.0
	accentHeightRatio = 20.0 / 56.0
	accentOpacity     = 0.2
)

// Option adjusts rendering.
type Option func(*options)

type options struct {
	width    int
	height   int
	renderer *lipgloss.Renderer
}

// WithSize sets the card size in cells. Sizes below MinWidth x MinHeight are
// raised to the minimum.
func WithSize(width, height int) Option {
	return func(o *options) {
		o.width = max(width, MinWidth)
		o.height = max(height, MinHeight)
	}
}

// WithRenderer renders with r instead of the default lipgloss renderer.
func WithRenderer(r *lipgloss.Renderer) Option {
	return func(o *options) {
		o.renderer = r
	}
}

// Caption describes the physical size the preview stands in for.
func Caption() string {
	return `Standard business card size: 3.5" × 2" (89mm × 51mm)`
}

// Render draws r. The result is exactly height lines of width cells.
func Render(r card.Record, opts ...Option) string {
	o := options{
		width:    DefaultWidth,
		height:   DefaultHeight,
		renderer: lipgloss.DefaultRenderer(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	c := newCanvas(r, o)
	rows := make([]string, o.height)
	for y := range rows {
		rows[y] = c.row(y, c.lines[y])
	}
	return strings.Join(rows, "\n")
}

type line struct {
	text  string
	style lipgloss.Style
}

type canvas struct {
	width  int
	height int

	accentW int
	accentH int

	base   lipgloss.Style
	corner lipgloss.Style
	lines  []line
}

func newCanvas(r card.Record, o options) *canvas {
	rnd := o.renderer
	base := rnd.NewStyle().
		Background(lipgloss.Color(r.BackgroundColor)).
		Foreground(lipgloss.Color(r.TextColor))

	c := &canvas{
		width:   o.width,
		height:  o.height,
		accentW: max(3, int(float64(o.width)*accentWidthRatio+0.5)),
		accentH: max(2, int(float64(o.height)*accentHeightRatio+0.5)),
		base:    base,
		corner:  rnd.NewStyle().Background(lipgloss.Color(Blend(r.BackgroundColor, r.AccentColor, accentOpacity))),
		lines:   make([]line, o.height),
	}

	font := styleFor(r.FontFamily)
	name := base.Bold(true)
	title := base
	company := base.Foreground(lipgloss.Color(r.AccentColor)).Bold(true)
	contact := base
	if font.italic {
		name, title, company, contact = name.Italic(true), title.Italic(true), company.Italic(true), contact.Italic(true)
	}
	if font.faintBody {
		contact = contact.Faint(true)
	}

	nameText := clean(r.Name)
	if font.letterSpaced {
		nameText = letterSpace(nameText)
	}

	c.lines[padY] = line{nameText, name}
	c.lines[padY+1] = line{clean(r.Title), title}
	c.lines[padY+2] = line{clean(r.Company), company}

	bottom := o.height - padY - 3
	for i, text := range r.ContactLines() {
		c.lines[bottom+i] = line{clean(text), contact}
	}
	return c
}

// row lays out one line of the card: left padding, the text, background
// fill and, in the top rows, the accent corner.
func (c *canvas) row(y int, ln line) string {
	corner := c.cornerCells(y)
	left := c.width - corner

	gap := padX
	if corner > 0 {
		gap = 1
	}

	text := ""
	if avail := left - padX - gap; avail > 0 && ln.text != "" {
		text = ansi.Truncate(ln.text, avail, "…")
	}

	var b strings.Builder
	b.WriteString(c.fill(padX))
	if text != "" {
		b.WriteString(ln.style.Render(text))
	}
	b.WriteString(c.fill(left - padX - ansi.StringWidth(text)))
	if corner > 0 {
		b.WriteString(c.corner.Render(strings.Repeat(" ", corner)))
	}
	return b.String()
}

// cornerCells returns how many cells of row y, counted from the right edge,
// fall inside the quarter disc anchored at the top-right corner.
func (c *canvas) cornerCells(y int) int {
	if y >= c.accentH {
		return 0
	}
	dy := (float64(y) + 0.5) / float64(c.accentH)
	n := 0
	for k := 0; k < c.accentW; k++ {
		dx := (float64(k) + 0.5) / float64(c.accentW)
		if dx*dx+dy*dy > 1 {
			break
		}
		n++
	}
	return n
}

func (c *canvas) fill(n int) string {
	if n <= 0 {
		return ""
	}
	return c.base.Render(strings.Repeat(" ", n))
}

// clean flattens C0 and C1 control characters so a value always occupies
// one row and never reaches the terminal as a control sequence.
func clean(s string) string {
	return strings.Map(func(r rune) rune {
		if r < 0x20 || (r >= 0x7f && r <= 0x9f) {
			return ' '
		}
		return r
	}, s)
}

func letterSpace(s string) string {
	runes := []rune(s)
	if len(runes) < 2 {
		return s
	}
	var b strings.Builder
	for i, r := range runes {
		if i > 0 {
			b.WriteRune(' ')
		}
		b.WriteRune(r)
	}
	return b.String()
}
