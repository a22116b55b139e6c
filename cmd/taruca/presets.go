package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"

	"github.com/lox/taruca/internal/card"
)

type SchemesCmd struct{}

func (c *SchemesCmd) Run(globals *Globals) error {
	return listSchemes(os.Stdout)
}

func listSchemes(w io.Writer) error {
	for _, s := range card.Schemes() {
		swatch := lipgloss.NewStyle().
			Background(lipgloss.Color(s.Background)).
			Foreground(lipgloss.Color(s.Text)).
			Width(20).
			Render(" " + s.Label)
		accent := lipgloss.NewStyle().Foreground(lipgloss.Color(s.Accent)).Render("●")
		if _, err := fmt.Fprintf(w, "%s %s  bg %s  text %s  accent %s\n",
			swatch, accent, s.Background, s.Text, s.Accent); err != nil {
			return err
		}
	}
	return nil
}

type FontsCmd struct{}

func (c *FontsCmd) Run(globals *Globals) error {
	return listFonts(os.Stdout)
}

func listFonts(w io.Writer) error {
	current := card.DefaultRecord().FontFamily
	for _, f := range card.Fonts() {
		marker := " "
		if f.Family == current {
			marker = "*"
		}
		if _, err := fmt.Fprintf(w, "%s %-6s %s\n", marker, f.Label, f.Family); err != nil {
			return err
		}
	}
	return nil
}
