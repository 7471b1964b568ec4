package pixel2ascii

import "fmt"

// Preset names a built-in character ramp.
type Preset string

const (
	PresetDefault Preset = "default"
	PresetDense   Preset = "dense"
	PresetBlocks  Preset = "blocks"
)

var presets = map[Preset]string{
	PresetDefault: "@%#*+=-:. ",
	PresetDense:   "@M#W$9876543210?!abc;:+=-,._ ",
	PresetBlocks:  "█▓▒░ ",
}

// Presets lists the preset names in display order.
func Presets() []Preset {
	return []Preset{PresetDefault, PresetDense, PresetBlocks}
}

// ParsePreset resolves a preset by name.
func ParsePreset(name string) (Preset, error) {
	p := Preset(name)
	if _, ok := presets[p]; !ok {
		return "", fmt.Errorf("unknown charset preset %q (want one of %v)", name, Presets())
	}
	return p, nil
}

// Chars returns the preset's characters ordered from dark to light.
func (p Preset) Chars() string {
	return presets[p]
}

// ResolveCharset picks the custom charset when one was given and the preset
// otherwise.
func ResolveCharset(custom string, p Preset) []rune {
	if custom != "" {
		return []rune(custom)
	}
	if s, ok := presets[p]; ok {
		return []rune(s)
	}
	return []rune(presets[PresetDefault])
}
