package palette

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownPreset is returned when a preset name is not recognised.
var ErrUnknownPreset = errors.New("unknown preset")

// Preset is a named seed colour.
type Preset struct {
	Name string `json:"name"`
	Seed string `json:"seed"`
}

// presets are listed in display order.
var presets = []Preset{
	{Name: "blue", Seed: "#3B82F6"},
	{Name: "purple", Seed: "#8B5CF6"},
	{Name: "pink", Seed: "#EC4899"},
	{Name: "red", Seed: "#EF4444"},
	{Name: "orange", Seed: "#F97316"},
	{Name: "yellow", Seed: "#EAB308"},
	{Name: "green", Seed: "#22C55E"},
	{Name: "teal", Seed: "#14B8A6"},
	{Name: "cyan", Seed: "#06B6D4"},
}

// Presets returns a copy of the built-in presets.
func Presets() []Preset {
	out := make([]Preset, len(presets))
	copy(out, presets)
	return out
}

// PresetSeed returns the seed colour for a preset name (case-insensitive).
func PresetSeed(name string) (string, error) {
	for _, p := range presets {
		if strings.EqualFold(p.Name, name) {
			return p.Seed, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownPreset, name)
}

// FromPreset generates the palette pair for a named preset.
func FromPreset(name string) (Pair, error) {
	seed, err := PresetSeed(name)
	if err != nil {
		return Pair{}, err
	}
	return Generate(seed), nil
}
