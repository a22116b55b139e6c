package main

import (
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/lox/taruca/internal/card"
	"github.com/lox/taruca/internal/preview"
)

type PreviewCmd struct {
	Set    map[string]string `short:"s" help:"Set a card field, e.g. --set name='Jane Roe' (repeatable)"`
	Scheme string            `help:"Color scheme label (see the schemes command)"`
	Font   string            `help:"Font preset label or family (Inter, Serif, Mono)"`
	Width  int               `default:"44" help:"Card width in cells"`
	Height int               `default:"12" help:"Card height in cells"`
}

func (c *PreviewCmd) Run(globals *Globals) error {
	return c.render(os.Stdout)
}

// render builds the card from the flags and writes it to w. The scheme and
// font are applied before --set so individual colors can still be overridden.
func (c *PreviewCmd) render(w io.Writer) error {
	store := card.NewStore()

	if c.Scheme != "" {
		scheme, err := card.SchemeByLabel(c.Scheme)
		if err != nil {
			return err
		}
		store.ApplyScheme(scheme)
	}

	if c.Font != "" {
		font, err := card.FontByName(c.Font)
		if err != nil {
			return err
		}
		store.SetFont(font)
	}

	names := make([]string, 0, len(c.Set))
	for name := range c.Set {
		names = append(names, name)
	}
	slices.Sort(names)
	for _, name := range names {
		field, err := card.ParseField(name)
		if err != nil {
			return err
		}
		if err := store.UpdateField(field, c.Set[name]); err != nil {
			return err
		}
	}

	out := preview.Render(store.Record(), preview.WithSize(c.Width, c.Height))
	_, err := fmt.Fprintf(w, "%s\n%s\n", out, preview.Caption())
	return err
}
