package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/lox/taruca/internal/card"
)

// pickerIndex moves a cursor over n items and reports a choice made with the
// select key or a 1-based digit.
func (m *Model) pickerIndex(msg tea.KeyMsg, cursor, n int) (next int, chosen bool) {
	switch {
	case key.Matches(msg, m.keys.Left):
		return (cursor - 1 + n) % n, false
	case key.Matches(msg, m.keys.Right):
		return (cursor + 1) % n, false
	case key.Matches(msg, m.keys.Select):
		return cursor, true
	}
	if d, err := strconv.Atoi(msg.String()); err == nil && d >= 1 && d <= n {
		return d - 1, true
	}
	return cursor, false
}

func (m *Model) updateSchemePicker(msg tea.KeyMsg) {
	var chosen bool
	m.schemeCursor, chosen = m.pickerIndex(msg, m.schemeCursor, len(m.schemes))
	if chosen {
		m.store.ApplyScheme(m.schemes[m.schemeCursor])
	}
}

func (m *Model) updateFontPicker(msg tea.KeyMsg) {
	var chosen bool
	m.fontCursor, chosen = m.pickerIndex(msg, m.fontCursor, len(m.fonts))
	if chosen {
		m.store.SetFont(m.fonts[m.fontCursor])
	}
}

func (m *Model) renderSchemePicker() string {
	focused := m.focus == m.schemeFocus()
	record := m.store.Record()

	var rows []string
	for i, s := range m.schemes {
		marker := "  "
		if focused && i == m.schemeCursor {
			marker = "▸ "
		}

		swatch := lipgloss.NewStyle().
			Background(lipgloss.Color(s.Background)).
			Foreground(lipgloss.Color(s.Text)).
			Width(22).
			Padding(0, 1).
			Render(fmt.Sprintf("%d %s", i+1, s.Label))

		row := marker + swatch + " " + dot(s.Background) + dot(s.Accent) + dot(s.Text)
		if s.Matches(record) {
			row += " ✓"
		}
		rows = append(rows, row)
	}
	return renderPanel("Color Schemes", strings.Join(rows, "\n"), focused)
}

func (m *Model) renderFontPicker() string {
	focused := m.focus == m.fontFocus()
	current := m.store.Record().FontFamily

	var opts []string
	for i, f := range m.fonts {
		label := f.Label
		if f.Family == current {
			label = "[" + label + "]"
		} else {
			label = " " + label + " "
		}
		style := lipgloss.NewStyle()
		switch f.Family {
		case card.FontSerif:
			style = style.Italic(true)
		case card.FontMono:
			style = style.Faint(true)
		}
		if focused && i == m.fontCursor {
			style = style.Foreground(focusColor).Bold(true)
		}
		opts = append(opts, style.Render(label))
	}

	content := LabelStyle.Render("Font Family") + "\n" + strings.Join(opts, "  ")
	return renderPanel("Typography", content, focused)
}

func dot(color string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render("●")
}
