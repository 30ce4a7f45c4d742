package colour

import (
	"fmt"
	"image/color"
	"math"
)

// Luminance calculates the relative luminance of a colour according to WCAG 2.1.
// Returns a value between 0 (darkest) and 1 (lightest).
// https://www.w3.org/TR/WCAG21/#dfn-relative-luminance.
func Luminance(c color.Color) float64 {
	r, g, b, _ := c.RGBA()
	// Convert from 16-bit to 8-bit.
	rf := float64(r>>8) / 255.0
	gf := float64(g>>8) / 255.0
	bf := float64(b>>8) / 255.0

	// Apply gamma correction.
	rf = gammaCorrect(rf)
	gf = gammaCorrect(gf)
	bf = gammaCorrect(bf)

	return 0.2126*rf + 0.7152*gf + 0.0722*bf
}

// LuminanceHex returns the relative luminance of a hex colour.
func LuminanceHex(hex string) float64 {
	return Luminance(HexToRGB(hex))
}

// gammaCorrect expands a gamma-encoded sRGB component.
func gammaCorrect(v float64) float64 {
	if v <= 0.03928 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// Contrast calculates the contrast ratio between two colours according to WCAG 2.1.
// Returns a value between 1 and 21, where 21 is maximum contrast (black vs white).
// https://www.w3.org/TR/WCAG21/#dfn-contrast-ratio.
func Contrast(c1, c2 color.Color) float64 {
	return contrastFromLuminance(Luminance(c1), Luminance(c2))
}

// ContrastRatio returns the contrast ratio between two hex colours.
// The result does not depend on argument order.
func ContrastRatio(fg, bg string) float64 {
	return contrastFromLuminance(LuminanceHex(fg), LuminanceHex(bg))
}

func contrastFromLuminance(l1, l2 float64) float64 {
	// Ensure l1 is the lighter colour.
	if l1 < l2 {
		l1, l2 = l2, l1
	}
	return (l1 + 0.05) / (l2 + 0.05)
}

// FormatContrastRatio formats a ratio for display, e.g. "4.5:1".
func FormatContrastRatio(ratio float64) string {
	return fmt.Sprintf("%.1f:1", ratio)
}

// IsLightColor reports whether hex is light enough to carry dark text.
func IsLightColor(hex string) bool {
	return LuminanceHex(hex) > 0.179
}

// TextColorForBackground returns black for light backgrounds and white otherwise.
func TextColorForBackground(bg string) string {
	if IsLightColor(bg) {
		return Black
	}
	return White
}
