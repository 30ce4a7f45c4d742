package colour

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// ErrInvalidHex is returned when a string is not a 6-digit hex colour.
var ErrInvalidHex = errors.New("invalid hex colour")

// hexPattern is the canonical form accepted at the application boundary.
var hexPattern = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// ValidateHex reports whether s is a #RRGGBB colour. The leading hash is required.
func ValidateHex(s string) error {
	if !hexPattern.MatchString(s) {
		return fmt.Errorf("%w: %q (expected #RRGGBB)", ErrInvalidHex, s)
	}
	return nil
}

// ParseHex parses a 6-digit hex colour, with or without the leading hash.
// Short forms such as #RGB are rejected.
func ParseHex(hex string) (RGB, error) {
	s := strings.TrimPrefix(hex, "#")
	if len(s) != 6 {
		return RGB{}, fmt.Errorf("%w: %q", ErrInvalidHex, hex)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return RGB{}, fmt.Errorf("%w: %q", ErrInvalidHex, hex)
	}
	return RGB{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}

// HexToRGB parses a hex colour. Malformed input yields black; callers that
// need to distinguish invalid input should use ParseHex or ValidateHex.
func HexToRGB(hex string) RGB {
	rgb, err := ParseHex(hex)
	if err != nil {
		return RGB{}
	}
	return rgb
}

// RGBToHex formats rgb as uppercase #RRGGBB.
func RGBToHex(rgb RGB) string {
	return rgb.Hex()
}

// NormalizeHex returns hex in canonical uppercase #RRGGBB form.
func NormalizeHex(hex string) string {
	return HexToRGB(hex).Hex()
}

// RGBToHSL converts RGB to HSL.
// Achromatic colours have hue and saturation of zero.
func RGBToHSL(rgb RGB) HSL {
	r := float64(rgb.R) / 255.0
	g := float64(rgb.G) / 255.0
	b := float64(rgb.B) / 255.0

	maxVal := math.Max(r, math.Max(g, b))
	minVal := math.Min(r, math.Min(g, b))
	delta := maxVal - minVal

	l := (maxVal + minVal) / 2.0

	if delta == 0 {
		return HSL{H: 0, S: 0, L: l * 100}
	}

	var s float64
	if l > 0.5 {
		s = delta / (2.0 - maxVal - minVal)
	} else {
		s = delta / (maxVal + minVal)
	}

	var h float64
	switch maxVal {
	case r:
		h = (g - b) / delta
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/delta + 2
	case b:
		h = (r-g)/delta + 4
	}

	return HSL{H: h * 60, S: s * 100, L: l * 100}
}

// HSLToRGB converts HSL to RGB. Hue is wrapped into [0, 360) and saturation
// and lightness are clamped to [0, 100] before conversion.
func HSLToRGB(hsl HSL) RGB {
	h := normaliseHue(hsl.H)
	s := clampPercent(hsl.S) / 100
	l := clampPercent(hsl.L) / 100

	if s == 0 {
		// Achromatic (grey).
		v := channel(l * 255)
		return RGB{R: v, G: v, B: v}
	}

	var q float64
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q

	return RGB{
		R: channel(hueToRGB(p, q, h+120) * 255),
		G: channel(hueToRGB(p, q, h) * 255),
		B: channel(hueToRGB(p, q, h-120) * 255),
	}
}

// hueToRGB is a helper for HSL to RGB conversion. t is in degrees.
func hueToRGB(p, q, t float64) float64 {
	t = normaliseHue(t)

	if t < 60 {
		return p + (q-p)*t/60
	}
	if t < 180 {
		return q
	}
	if t < 240 {
		return p + (q-p)*(240-t)/60
	}
	return p
}

// HexToHSL converts a hex colour to HSL.
func HexToHSL(hex string) HSL {
	return RGBToHSL(HexToRGB(hex))
}

// HSLToHex converts HSL to a #RRGGBB hex colour.
func HSLToHex(hsl HSL) string {
	return HSLToRGB(hsl).Hex()
}
