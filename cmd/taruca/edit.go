package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/lox/taruca/internal/card"
	"github.com/lox/taruca/internal/config"
	"github.com/lox/taruca/internal/tui"
)

type EditCmd struct {
	Config      string `kong:"short='c',default='taruca.hcl',help='Path to HCL configuration file'"`
	LogLevel    string `kong:"help='Log level (overrides config)'"`
	LogFile     string `kong:"help='Log file path (overrides config)'"`
	NoAltScreen bool   `kong:"help='Draw inline instead of using the alternate screen'"`
}

func (c *EditCmd) Run(globals *Globals) error {
	cfg, err := config.Load(c.Config)
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	// Apply command line overrides
	if c.LogLevel != "" {
		cfg.Log.Level = c.LogLevel
	}
	if c.LogFile != "" {
		cfg.Log.File = c.LogFile
	}
	if c.NoAltScreen {
		altScreen := false
		cfg.UI.AltScreen = &altScreen
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger, closeLog, err := setupLogger(cfg.Log.Level, cfg.Log.File)
	if err != nil {
		return err
	}
	defer closeLog()

	logger = logger.With("session", uuid.NewString())
	logger.Info("Starting editor",
		"config", c.Config,
		"alt_screen", cfg.UseAltScreen(),
		"no_color", globals.NoColor)

	store := card.NewStore(card.WithLogger(logger))
	model := tui.NewModelWithOptions(store, logger, tui.Options{
		NoticeTTL:     cfg.NoticeDuration(),
		PreviewWidth:  cfg.UI.PreviewWidth,
		PreviewHeight: cfg.UI.PreviewHeight,
	})

	opts := []tea.ProgramOption{tea.WithoutSignalHandler()}
	if cfg.UseAltScreen() {
		opts = append(opts, tea.WithAltScreen())
	}
	program := tea.NewProgram(model, opts...)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		defer stop()
		if _, err := program.Run(); err != nil {
			return fmt.Errorf("error running TUI: %w", err)
		}
		return nil
	})
	group.Go(func() error {
		<-groupCtx.Done()
		program.Quit()
		return nil
	})

	err = group.Wait()
	logger.Info("Editor closed", "error", err)
	return err
}
