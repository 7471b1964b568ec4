package pixel2ascii

import (
	"strconv"
	"strings"
)

const (
	ESC = "\033"

	resetSeq = ESC + "[0m"
)

// ColorMode selects how rendered characters are colorized.
type ColorMode int

const (
	// ColorNone emits bare characters.
	ColorNone ColorMode = iota
	// ColorForeground wraps each character in a 24-bit foreground escape.
	ColorForeground
	// ColorBackground wraps each character in a 24-bit background escape.
	ColorBackground
)

func (m ColorMode) String() string {
	switch m {
	case ColorForeground:
		return "foreground"
	case ColorBackground:
		return "background"
	}
	return "none"
}

// Render turns a sampled grid into text, one line per row. In the color
// modes every character carries its own escape and reset; runs of equal
// color are not merged.
func Render(grid [][]Sample, glyphs []Glyph, mode ColorMode) string {
	var sb strings.Builder
	for _, row := range grid {
		for _, s := range row {
			r := MatchRune(s.Lum, glyphs)
			switch mode {
			case ColorForeground:
				writeColored(&sb, "38", s, r)
			case ColorBackground:
				writeColored(&sb, "48", s, r)
			default:
				sb.WriteRune(r)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func writeColored(sb *strings.Builder, layer string, s Sample, r rune) {
	sb.WriteString(ESC + "[" + layer + ";2;")
	sb.WriteString(strconv.Itoa(int(s.R)))
	sb.WriteByte(';')
	sb.WriteString(strconv.Itoa(int(s.G)))
	sb.WriteByte(';')
	sb.WriteString(strconv.Itoa(int(s.B)))
	sb.WriteByte('m')
	sb.WriteRune(r)
	sb.WriteString(resetSeq)
}
