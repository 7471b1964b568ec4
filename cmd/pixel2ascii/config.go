package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/codegangsta/cli"
	"github.com/kevin-cantwell/pixel2ascii"
)

const maxWidth = 5000

// Config holds the parsed command line.
type Config struct {
	Input         string
	Width         int
	Aspect        float64
	NoAspect      bool
	Fit           bool
	Invert        bool
	Color         bool
	Background    bool
	NoColor       bool
	Charset       string
	charsetIsSet  bool
	CharsetPreset string
	presetIsSet   bool
	Output        string
	Quiet         bool
}

func configFromContext(c *cli.Context) Config {
	return Config{
		Input:         c.Args().First(),
		Width:         c.Int("width"),
		Aspect:        c.Float64("aspect"),
		NoAspect:      c.Bool("no-aspect"),
		Fit:           c.Bool("fit"),
		Invert:        c.Bool("invert"),
		Color:         c.Bool("color"),
		Background:    c.Bool("bg"),
		NoColor:       c.Bool("no-color"),
		Charset:       c.String("charset"),
		charsetIsSet:  c.IsSet("charset"),
		CharsetPreset: c.String("charset-preset"),
		presetIsSet:   c.IsSet("charset-preset"),
		Output:        c.String("output"),
		Quiet:         c.Bool("quiet"),
	}
}

// Validate checks the configuration before any image is touched. Checks run
// in a fixed order and the first failure is returned.
func (cfg Config) Validate() error {
	if cfg.Input == "" {
		return errors.New("missing INPUT argument")
	}
	fi, err := os.Stat(cfg.Input)
	if err != nil {
		return fmt.Errorf("input path '%s' does not exist", cfg.Input)
	}
	if !fi.Mode().IsRegular() {
		return fmt.Errorf("input path '%s' is not a file", cfg.Input)
	}

	if cfg.Width <= 0 {
		return errors.New("--width must be > 0")
	}
	if cfg.Width > maxWidth {
		return fmt.Errorf("--width is unreasonably large; maximum is %d", maxWidth)
	}

	// The core works in float32, so the aspect must survive the conversion.
	if !(float32(cfg.Aspect) > 0) {
		return errors.New("--aspect must be > 0")
	}

	if cfg.Background && !cfg.Color {
		return errors.New("--bg requires --color to be set")
	}

	if cfg.charsetIsSet || cfg.Charset != "" {
		if len([]rune(strings.TrimSpace(cfg.Charset))) < 2 {
			return errors.New("--charset must contain at least 2 non-whitespace characters")
		}
		if cfg.presetIsSet {
			return errors.New("--charset cannot be used with --charset-preset")
		}
	}

	if _, err := pixel2ascii.ParsePreset(cfg.CharsetPreset); err != nil {
		return err
	}
	return nil
}

// ColorMode resolves the color flags. --no-color wins over --color, and
// --bg only applies while color is on.
func (cfg Config) ColorMode() pixel2ascii.ColorMode {
	if cfg.NoColor || !cfg.Color {
		return pixel2ascii.ColorNone
	}
	if cfg.Background {
		return pixel2ascii.ColorBackground
	}
	return pixel2ascii.ColorForeground
}

// EffectiveAspect is 1.0 (square blocks) under --no-aspect.
func (cfg Config) EffectiveAspect() float32 {
	if cfg.NoAspect {
		return 1.0
	}
	return float32(cfg.Aspect)
}

// Chars returns the resolved character ramp. Call after Validate.
func (cfg Config) Chars() []rune {
	preset, err := pixel2ascii.ParsePreset(cfg.CharsetPreset)
	if err != nil {
		preset = pixel2ascii.PresetDefault
	}
	return pixel2ascii.ResolveCharset(cfg.Charset, preset)
}

// Options converts the configuration into encoder options. width is passed
// separately because --fit may replace the configured one.
func (cfg Config) Options(width int, logger pixel2ascii.Logger) []pixel2ascii.Option {
	opts := []pixel2ascii.Option{
		pixel2ascii.WithWidth(width),
		pixel2ascii.WithAspect(cfg.EffectiveAspect()),
		pixel2ascii.WithCharset(cfg.Chars()),
		pixel2ascii.WithLogger(logger),
	}
	if cfg.Invert {
		opts = append(opts, pixel2ascii.WithInvert())
	}
	switch cfg.ColorMode() {
	case pixel2ascii.ColorForeground:
		opts = append(opts, pixel2ascii.WithColor())
	case pixel2ascii.ColorBackground:
		opts = append(opts, pixel2ascii.WithBackground())
	}
	return opts
}
