// Package config loads the editor's HCL configuration.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/taruca/internal/preview"
)

// Config represents the complete editor configuration. It only covers the
// terminal and logging; card content always starts from the built-in defaults.
type Config struct {
	UI  UISettings  `hcl:"ui,block"`
	Log LogSettings `hcl:"log,block"`
}

// UISettings contains user interface settings
type UISettings struct {
	AltScreen     *bool `hcl:"alt_screen,optional"`
	NoticeSeconds int   `hcl:"notice_seconds,optional"`
	PreviewWidth  int   `hcl:"preview_width,optional"`
	PreviewHeight int   `hcl:"preview_height,optional"`
}

// LogSettings controls where and how much the editor logs
type LogSettings struct {
	Level string `hcl:"level,optional"`
	File  string `hcl:"file,optional"`
}

// Default returns the default configuration
func Default() *Config {
	altScreen := true
	return &Config{
		UI: UISettings{
			AltScreen:     &altScreen,
			NoticeSeconds: 5,
			PreviewWidth:  preview.DefaultWidth,
			PreviewHeight: preview.DefaultHeight,
		},
		Log: LogSettings{
			Level: "warn",
			File:  "taruca.log",
		},
	}
}

// Load reads configuration from an HCL file. A missing file yields the
// defaults.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	// Both blocks are optional in the file, so decode into a wrapper that
	// accepts zero or one of each.
	var raw struct {
		UI  *UISettings  `hcl:"ui,block"`
		Log *LogSettings `hcl:"log,block"`
	}
	diags = gohcl.DecodeBody(file.Body, nil, &raw)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	var config Config
	if raw.UI != nil {
		config.UI = *raw.UI
	}
	if raw.Log != nil {
		config.Log = *raw.Log
	}
	config.applyDefaults()

	return &config, nil
}

func (c *Config) applyDefaults() {
	defaults := Default()

	if c.UI.AltScreen == nil {
		c.UI.AltScreen = defaults.UI.AltScreen
	}
	if c.UI.NoticeSeconds == 0 {
		c.UI.NoticeSeconds = defaults.UI.NoticeSeconds
	}
	if c.UI.PreviewWidth == 0 {
		c.UI.PreviewWidth = defaults.UI.PreviewWidth
	}
	if c.UI.PreviewHeight == 0 {
		c.UI.PreviewHeight = defaults.UI.PreviewHeight
	}
	if c.Log.Level == "" {
		c.Log.Level = defaults.Log.Level
	}
	if c.Log.File == "" {
		c.Log.File = defaults.Log.File
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.UI.NoticeSeconds <= 0 {
		return fmt.Errorf("notice seconds must be positive")
	}

	if c.UI.PreviewWidth < preview.MinWidth || c.UI.PreviewHeight < preview.MinHeight {
		return fmt.Errorf("preview size must be at least %dx%d, got %dx%d",
			preview.MinWidth, preview.MinHeight, c.UI.PreviewWidth, c.UI.PreviewHeight)
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.Log.Level] {
		return fmt.Errorf("invalid log level: %s", c.Log.Level)
	}

	if c.Log.File == "" {
		return fmt.Errorf("log file is required")
	}

	return nil
}

// NoticeDuration is how long a notice stays on screen.
func (c *Config) NoticeDuration() time.Duration {
	return time.Duration(c.UI.NoticeSeconds) * time.Second
}

// UseAltScreen reports whether the editor takes over the full terminal.
func (c *Config) UseAltScreen() bool {
	return c.UI.AltScreen == nil || *c.UI.AltScreen
}
