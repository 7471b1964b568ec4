package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/codegangsta/cli"
	"github.com/kevin-cantwell/pixel2ascii"
	"golang.org/x/term"
)

func main() {
	app := cli.NewApp()
	app.Version = "0.1.0"
	app.Name = "pixel2ascii"
	app.Usage = "Convert images to ASCII art"
	app.UsageText = "pixel2ascii [options] INPUT"
	app.Author = "Kevin Cantwell"
	app.Email = "kevin.cantwell@gmail.com"
	app.Flags = []cli.Flag{
		cli.IntFlag{
			Name:  "width, w",
			Usage: "Maximum ASCII character `WIDTH` (must be > 0).",
			Value: pixel2ascii.DefaultWidth,
		},
		cli.Float64Flag{
			Name:  "aspect",
			Usage: "Character width/height `RATIO`. Ignored when --no-aspect is set.",
			Value: pixel2ascii.DefaultAspect,
		},
		cli.BoolFlag{
			Name:  "no-aspect",
			Usage: "Disable aspect correction (block height = block width).",
		},
		cli.BoolFlag{
			Name:  "fit",
			Usage: "Use the terminal's column count as the width when writing to a terminal.",
		},
		cli.BoolFlag{
			Name:  "invert",
			Usage: "Invert luminance mapping.",
		},
		cli.BoolFlag{
			Name:  "color, c",
			Usage: "Enable ANSI truecolor foreground.",
		},
		cli.BoolFlag{
			Name:  "bg",
			Usage: "Use background color mode instead of foreground (requires --color).",
		},
		cli.BoolFlag{
			Name:  "no-color",
			Usage: "Force grayscale output (overrides --color).",
		},
		cli.StringFlag{
			Name:  "charset",
			Usage: "Custom `CHARSET` ordered from dark to light. Must be at least 2 characters.",
		},
		cli.StringFlag{
			Name:  "charset-preset",
			Usage: "`PRESET` to use: " + presetNames() + " (mutually exclusive with --charset).",
			Value: string(pixel2ascii.PresetDefault),
		},
		cli.StringFlag{
			Name:  "output, o",
			Usage: "Write output to `FILE` instead of stdout.",
		},
		cli.BoolFlag{
			Name:  "quiet",
			Usage: "Disable non-error logs.",
		},
	}
	app.Action = func(c *cli.Context) error {
		cfg := configFromContext(c)
		if err := cfg.Validate(); err != nil {
			return cli.NewExitError("error: "+err.Error(), 2)
		}
		if err := run(cfg); err != nil {
			return cli.NewExitError("error: "+err.Error(), 1)
		}
		return nil
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cfg Config) error {
	info := log.New(os.Stderr, "pixel2ascii: ", 0)
	if cfg.Quiet {
		info.SetOutput(io.Discard)
	}
	warn := log.New(os.Stderr, "pixel2ascii: ", 0)

	var out io.Writer = os.Stdout
	if cfg.Output != "" {
		f, err := os.Create(cfg.Output)
		if err != nil {
			return fmt.Errorf("failed to create output: %w", err)
		}
		defer f.Close()
		out = f
	}

	width := cfg.Width
	if cfg.Fit {
		if cols, ok := terminalColumns(out); ok {
			width = cols
		} else {
			info.Printf("--fit ignored: output is not a terminal")
		}
	}

	info.Printf("input=%s width=%d aspect=%g invert=%t color=%v charset_len=%d",
		cfg.Input, width, cfg.EffectiveAspect(), cfg.Invert, cfg.ColorMode(), len(cfg.Chars()))

	enc := pixel2ascii.NewEncoder(out, cfg.Options(width, warn)...)

	if pixel2ascii.IsGIF(cfg.Input) {
		frames, err := pixel2ascii.LoadGIF(cfg.Input)
		if err != nil {
			return err
		}
		info.Printf("playing %d frames", len(frames))
		return pixel2ascii.NewAnimator(enc, nil).Animate(frames)
	}

	img, err := pixel2ascii.Load(cfg.Input)
	if err != nil {
		return err
	}
	if err := enc.Encode(img); err != nil {
		return err
	}
	_, err = io.WriteString(out, "\n")
	return err
}

// terminalColumns reports the width of w when it is a terminal.
func terminalColumns(w io.Writer) (int, bool) {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return 0, false
	}
	cols, _, err := term.GetSize(int(f.Fd()))
	if err != nil || cols <= 0 {
		return 0, false
	}
	if cols > maxWidth {
		cols = maxWidth
	}
	return cols, true
}

func presetNames() string {
	var names []string
	for _, p := range pixel2ascii.Presets() {
		names = append(names, string(p))
	}
	return strings.Join(names, ", ")
}
