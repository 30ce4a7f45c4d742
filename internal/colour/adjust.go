package colour

// AdjustLightness shifts the HSL lightness of hex by delta percentage points.
// Negative deltas darken. The result is clamped to [0, 100].
func AdjustLightness(hex string, delta float64) string {
	hsl := HexToHSL(hex)
	hsl.L = clampPercent(hsl.L + delta)
	return HSLToHex(hsl)
}

// AdjustSaturation shifts the HSL saturation of hex by delta percentage points.
func AdjustSaturation(hex string, delta float64) string {
	hsl := HexToHSL(hex)
	hsl.S = clampPercent(hsl.S + delta)
	return HSLToHex(hsl)
}

// RotateHue rotates the hue of hex by degrees, wrapping modulo 360.
func RotateHue(hex string, degrees float64) string {
	hsl := HexToHSL(hex)
	hsl.H = normaliseHue(hsl.H + degrees + 360)
	return HSLToHex(hsl)
}

// MixColors linearly interpolates a and b per RGB channel.
// weight is the fraction of a retained: 1 returns a, 0 returns b.
func MixColors(a, b string, weight float64) string {
	c1 := HexToRGB(a)
	c2 := HexToRGB(b)

	mix := func(x, y uint8) uint8 {
		return channel(float64(x)*weight + float64(y)*(1-weight))
	}

	return RGB{
		R: mix(c1.R, c2.R),
		G: mix(c1.G, c2.G),
		B: mix(c1.B, c2.B),
	}.Hex()
}

// Complementary returns the colour opposite hex on the colour wheel.
func Complementary(hex string) string {
	return RotateHue(hex, 180)
}

// Analogous returns the two colours 30° either side of hex.
func Analogous(hex string) [2]string {
	return [2]string{RotateHue(hex, -30), RotateHue(hex, 30)}
}

// Triadic returns the two colours 120° either side of hex.
func Triadic(hex string) [2]string {
	return [2]string{RotateHue(hex, -120), RotateHue(hex, 120)}
}

// SplitComplementary returns the two colours adjacent to the complement of hex.
func SplitComplementary(hex string) [2]string {
	return [2]string{RotateHue(hex, 150), RotateHue(hex, 210)}
}
