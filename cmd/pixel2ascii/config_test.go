package main

import (
	"image"
	"math"
	"os"
	"path/filepath"

	"github.com/kevin-cantwell/pixel2ascii"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Config", func() {
	var (
		dir string
		cfg Config
	)

	BeforeEach(func() {
		var err error
		dir, err = os.MkdirTemp("", "pixel2ascii-cmd")
		Expect(err).NotTo(HaveOccurred())
		input := filepath.Join(dir, "in.png")
		Expect(os.WriteFile(input, []byte("png"), 0644)).NotTo(HaveOccurred())

		cfg = Config{
			Input:         input,
			Width:         pixel2ascii.DefaultWidth,
			Aspect:        pixel2ascii.DefaultAspect,
			CharsetPreset: "default",
		}
	})

	AfterEach(func() {
		os.RemoveAll(dir)
	})

	Describe("Validate", func() {
		It("accepts the defaults", func() {
			Expect(cfg.Validate()).NotTo(HaveOccurred())
		})

		It("requires an input", func() {
			cfg.Input = ""
			Expect(cfg.Validate()).To(MatchError("missing INPUT argument"))
		})

		It("rejects a missing input", func() {
			cfg.Input = filepath.Join(dir, "missing.png")
			Expect(cfg.Validate().Error()).To(ContainSubstring("does not exist"))
		})

		It("rejects a directory", func() {
			cfg.Input = dir
			Expect(cfg.Validate().Error()).To(ContainSubstring("is not a file"))
		})

		It("bounds the width", func() {
			cfg.Width = 0
			Expect(cfg.Validate()).To(MatchError("--width must be > 0"))
			cfg.Width = 5001
			Expect(cfg.Validate()).To(MatchError("--width is unreasonably large; maximum is 5000"))
			cfg.Width = 5000
			Expect(cfg.Validate()).NotTo(HaveOccurred())
		})

		It("requires a positive aspect", func() {
			cfg.Aspect = 0
			Expect(cfg.Validate()).To(MatchError("--aspect must be > 0"))
			cfg.Aspect = -1
			Expect(cfg.Validate()).To(HaveOccurred())
			cfg.Aspect = math.NaN()
			Expect(cfg.Validate()).To(MatchError("--aspect must be > 0"))
		})

		It("rejects an aspect that vanishes in float32", func() {
			cfg.Aspect = 1e-50
			Expect(cfg.Validate()).To(MatchError("--aspect must be > 0"))
		})

		It("accepts a tiny aspect that still converts", func() {
			cfg.Aspect = 1e-38
			Expect(cfg.Validate()).NotTo(HaveOccurred())
			w, h := pixel2ascii.BlockSize(100, 10, cfg.EffectiveAspect())
			Expect(w).To(Equal(10))
			Expect(h).To(BeNumerically(">=", 1))
		})

		It("requires --color for --bg", func() {
			cfg.Background = true
			Expect(cfg.Validate()).To(MatchError("--bg requires --color to be set"))
			cfg.Color = true
			Expect(cfg.Validate()).NotTo(HaveOccurred())
		})

		It("requires two non-whitespace charset characters", func() {
			cfg.Charset = "  @  "
			Expect(cfg.Validate()).To(HaveOccurred())
			cfg.Charset = "░ "
			Expect(cfg.Validate()).To(HaveOccurred())
			cfg.Charset = "█░"
			Expect(cfg.Validate()).NotTo(HaveOccurred())
		})

		It("rejects --charset together with --charset-preset", func() {
			cfg.Charset = "@#"
			cfg.presetIsSet = true
			Expect(cfg.Validate()).To(MatchError("--charset cannot be used with --charset-preset"))
		})

		It("rejects an explicitly empty charset", func() {
			cfg.Charset = ""
			cfg.charsetIsSet = true
			Expect(cfg.Validate()).To(MatchError("--charset must contain at least 2 non-whitespace characters"))
		})

		It("rejects unknown presets", func() {
			cfg.CharsetPreset = "fancy"
			Expect(cfg.Validate()).To(HaveOccurred())
		})

		It("checks the input before anything else", func() {
			cfg.Input = ""
			cfg.Width = 0
			cfg.Aspect = 0
			Expect(cfg.Validate()).To(MatchError("missing INPUT argument"))
		})
	})

	Describe("derived settings", func() {
		It("lets --no-color override --color", func() {
			cfg.Color = true
			Expect(cfg.ColorMode()).To(Equal(pixel2ascii.ColorForeground))
			cfg.NoColor = true
			Expect(cfg.ColorMode()).To(Equal(pixel2ascii.ColorNone))
		})

		It("uses background mode only with color on", func() {
			cfg.Color = true
			cfg.Background = true
			Expect(cfg.ColorMode()).To(Equal(pixel2ascii.ColorBackground))
			cfg.NoColor = true
			Expect(cfg.ColorMode()).To(Equal(pixel2ascii.ColorNone))
		})

		It("forces square blocks with --no-aspect", func() {
			Expect(cfg.EffectiveAspect()).To(BeNumerically("~", 0.5, 1e-6))
			cfg.NoAspect = true
			Expect(cfg.EffectiveAspect()).To(BeNumerically("==", 1))
		})

		It("resolves the charset", func() {
			Expect(cfg.Chars()).To(Equal([]rune("@%#*+=-:. ")))
			cfg.CharsetPreset = "blocks"
			Expect(cfg.Chars()).To(Equal([]rune("█▓▒░ ")))
			cfg.Charset = "ab"
			Expect(cfg.Chars()).To(Equal([]rune("ab")))
		})

		It("builds options that drive the encoder", func() {
			cfg.Invert = true
			cfg.Charset = "@ "
			enc := pixel2ascii.NewEncoder(nil, cfg.Options(1, nil)...)
			Expect(enc.Glyphs()).To(HaveLen(2))

			white := image.NewNRGBA(image.Rect(0, 0, 2, 2))
			for i := range white.Pix {
				white.Pix[i] = 0xff
			}
			Expect(enc.Frame(white)).To(Equal("@\n"))
		})
	})
})
