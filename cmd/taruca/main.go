package main

import (
	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// version is set by ldflags during build
var version = "dev"

// Globals are flags shared by every command.
type Globals struct {
	NoColor bool `kong:"help='Disable colors in all output'"`
}

type CLI struct {
	Globals

	Version kong.VersionFlag `short:"v" help:"Show version"`
	Edit    EditCmd          `cmd:"" default:"1" help:"Open the interactive card editor"`
	Preview PreviewCmd       `cmd:"" help:"Render a card to stdout and exit"`
	Schemes SchemesCmd       `cmd:"" help:"List the color schemes"`
	Fonts   FontsCmd         `cmd:"" help:"List the font presets"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("taruca"),
		kong.Description("Design a business card in your terminal"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)

	if cli.NoColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	err := ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}
