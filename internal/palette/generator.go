package palette

import (
	"math"

	"github.com/jmylchreest/shade/internal/colour"
)

// Standard semantic hues in degrees.
const (
	successHue = 142 // Green
	warningHue = 45  // Yellow/Orange
	errorHue   = 0   // Red
)

// maxGraySaturation keeps the neutral ramp near grey.
const maxGraySaturation = 15

// defaultGray is used when GrayScale is given no seed.
var defaultGray = colour.HSL{H: 220, S: 10, L: 50}

// grayLadder pairs each stop's lightness with the fraction of the base
// saturation it carries. The light end is desaturated further so near-white
// stays neutral.
var grayLadder = [11]struct {
	lightness float64
	satFactor float64
}{
	{98, 0.3}, {96, 0.4}, {91, 0.5}, {85, 0.6}, {70, 0.7}, {55, 0.8},
	{45, 0.9}, {35, 1.0}, {25, 1.0}, {15, 1.0}, {8, 1.0},
}

// GrayScale builds the neutral ramp from the hue of seed.
// An empty seed selects a cool neutral (hue 220, saturation 10).
func GrayScale(seed string) ColorScale {
	base := defaultGray
	if seed != "" {
		base = colour.HexToHSL(seed)
	}
	sat := math.Min(base.S, maxGraySaturation)

	var hex [11]string
	for i, step := range grayLadder {
		hex[i] = colour.HSLToHex(colour.HSL{H: base.H, S: sat * step.satFactor, L: step.lightness})
	}

	return ColorScale{
		Shade50: hex[0], Shade100: hex[1], Shade200: hex[2], Shade300: hex[3],
		Shade400: hex[4], Shade500: hex[5], Shade600: hex[6], Shade700: hex[7],
		Shade800: hex[8], Shade900: hex[9], Shade950: hex[10],
	}
}

// AccentShades derives light-mode accents. Darker shades are floored so they
// never collapse into black.
func AccentShades(seed string) AccentColors {
	hsl := colour.HexToHSL(seed)

	return AccentColors{
		Subtle:   shade(hsl.H, math.Min(hsl.S, 30), 97),
		Muted:    shade(hsl.H, hsl.S*0.9, 80),
		Default:  colour.NormalizeHex(seed),
		Emphasis: shade(hsl.H, hsl.S*1.1, math.Max(hsl.L-10, 30)),
		Text:     shade(hsl.H, hsl.S*1.2, math.Max(hsl.L-20, 25)),
	}
}

// DarkAccentShades derives dark-mode accents, which lighten toward the text
// shade instead of darkening.
func DarkAccentShades(seed string) AccentColors {
	hsl := colour.HexToHSL(seed)

	return AccentColors{
		Subtle:   shade(hsl.H, hsl.S*0.8, 20),
		Muted:    shade(hsl.H, hsl.S*0.9, 40),
		Default:  colour.NormalizeHex(seed),
		Emphasis: shade(hsl.H, hsl.S*0.9, math.Min(hsl.L+15, 75)),
		Text:     shade(hsl.H, hsl.S*0.7, math.Min(hsl.L+30, 85)),
	}
}

// Semantic derives light-mode status colours. Info follows the seed hue.
func Semantic(seed string) SemanticColors {
	hsl := colour.HexToHSL(seed)

	return SemanticColors{
		Success:      shade(successHue, 72, 50),
		SuccessMuted: shade(successHue, 55, 92),
		Warning:      shade(warningHue, 92, 55),
		WarningMuted: shade(warningHue, 80, 92),
		Error:        shade(errorHue, 84, 60),
		ErrorMuted:   shade(errorHue, 80, 93),
		Info:         colour.NormalizeHex(seed),
		InfoMuted:    shade(hsl.H, hsl.S*0.6, 92),
	}
}

// DarkSemantic derives dark-mode status colours with dark muted backgrounds.
func DarkSemantic(seed string) SemanticColors {
	hsl := colour.HexToHSL(seed)

	return SemanticColors{
		Success:      shade(successHue, 72, 50),
		SuccessMuted: shade(successHue, 60, 25),
		Warning:      shade(warningHue, 92, 55),
		WarningMuted: shade(warningHue, 70, 25),
		Error:        shade(errorHue, 84, 60),
		ErrorMuted:   shade(errorHue, 70, 30),
		Info:         colour.NormalizeHex(seed),
		InfoMuted:    shade(hsl.H, hsl.S*0.7, 30),
	}
}

// Generate derives the light and dark palettes for seed. The gray ramp is
// tinted with the seed hue and shared by both modes.
func Generate(seed string) Pair {
	hue := colour.HexToHSL(seed).H
	gray := GrayScale(colour.HSLToHex(colour.HSL{H: hue, S: 10, L: 50}))

	return Pair{
		Light: ColorPalette{
			Gray:     gray,
			Accent:   AccentShades(seed),
			Semantic: Semantic(seed),
		},
		Dark: ColorPalette{
			Gray:     gray,
			Accent:   DarkAccentShades(seed),
			Semantic: DarkSemantic(seed),
		},
	}
}

// shade clamps saturation and lightness before converting to hex.
func shade(h, s, l float64) string {
	return colour.HSLToHex(colour.HSL{
		H: h,
		S: math.Max(0, math.Min(100, s)),
		L: math.Max(0, math.Min(100, l)),
	})
}
