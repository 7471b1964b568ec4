package pixel2ascii

import (
	"image"
	"io"

	"github.com/disintegration/imaging"
)

const (
	DefaultWidth  = 100
	DefaultAspect = 0.5
)

type Option func(enc *Encoder)

// WithWidth sets the number of characters per output row.
func WithWidth(width int) Option {
	return func(enc *Encoder) {
		enc.width = width
	}
}

// WithAspect sets the character width/height ratio. Values below 1 make
// blocks taller than they are wide.
func WithAspect(aspect float32) Option {
	return func(enc *Encoder) {
		enc.aspect = aspect
	}
}

// If used, luminance is inverted before choosing characters.
func WithInvert() Option {
	return func(enc *Encoder) {
		enc.invert = true
	}
}

// WithColor wraps every character in a truecolor foreground escape.
func WithColor() Option {
	return func(enc *Encoder) {
		enc.mode = ColorForeground
	}
}

// WithBackground colors the cell background instead of the character.
func WithBackground() Option {
	return func(enc *Encoder) {
		enc.mode = ColorBackground
	}
}

// WithCharset sets the character ramp, ordered from dark to light.
func WithCharset(chars []rune) Option {
	return func(enc *Encoder) {
		enc.chars = chars
	}
}

// WithFont replaces the built-in 8x8 font used to measure glyphs.
func WithFont(font FontFunc) Option {
	return func(enc *Encoder) {
		enc.font = font
	}
}

// WithLogger routes diagnostics, such as characters missing from the font.
func WithLogger(logger Logger) Option {
	return func(enc *Encoder) {
		enc.logger = logger
	}
}

// Encoder converts images to text and writes them to an io.Writer. The glyph
// table is built once in NewEncoder and shared, read-only, by every image
// the encoder converts.
type Encoder struct {
	writer io.Writer // Output
	width  int       // Characters per row
	aspect float32   // Character width/height
	invert bool      // Invert luminance
	mode   ColorMode
	chars  []rune
	font   FontFunc
	logger Logger
	glyphs []Glyph
}

func NewEncoder(w io.Writer, opts ...Option) *Encoder {
	enc := Encoder{
		writer: w,
		width:  DefaultWidth,
		aspect: DefaultAspect,
		mode:   ColorNone,
		chars:  []rune(PresetDefault.Chars()),
		font:   Font8x8,
		logger: nopLogger{},
	}
	for _, opt := range opts {
		opt(&enc)
	}
	enc.glyphs = BuildGlyphs(enc.chars, enc.font, enc.logger)
	return &enc
}

// Glyphs returns the encoder's intensity table.
func (enc *Encoder) Glyphs() []Glyph {
	return enc.glyphs
}

// Frame converts img to text without writing it.
func (enc *Encoder) Frame(img image.Image) string {
	rgb := toNRGBA(img)
	blockW, blockH := BlockSize(rgb.Bounds().Dx(), enc.width, enc.aspect)
	grid := SampleBlocks(rgb, blockW, blockH, enc.invert)
	return Render(grid, enc.glyphs, enc.mode)
}

// Encode converts img and writes the text to the encoder's writer.
func (enc *Encoder) Encode(img image.Image) error {
	_, err := io.WriteString(enc.writer, enc.Frame(img))
	return err
}

// ImageToASCII runs the whole pipeline on a single image.
func ImageToASCII(img image.Image, opts ...Option) string {
	return NewEncoder(io.Discard, opts...).Frame(img)
}

// FramesToASCII converts each frame in order with one shared glyph table.
func FramesToASCII(frames []image.Image, opts ...Option) []string {
	enc := NewEncoder(io.Discard, opts...)
	out := make([]string, 0, len(frames))
	for _, frame := range frames {
		out = append(out, enc.Frame(frame))
	}
	return out
}

// toNRGBA returns img as non-premultiplied 8-bit RGBA, converting only when
// needed.
func toNRGBA(img image.Image) *image.NRGBA {
	if nrgba, ok := img.(*image.NRGBA); ok {
		return nrgba
	}
	return imaging.Clone(img)
}
