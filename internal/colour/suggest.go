package colour

// Search parameters for SuggestAccessibleAlternative.
const (
	suggestStep          = 5.0
	suggestMaxIterations = 20
)

// SuggestAccessibleAlternative returns a foreground that meets target against bg.
//
// If fg already passes it is returned unchanged. Otherwise the lightness of fg
// is shifted in steps of 5 points, up to 20 steps, keeping hue and saturation.
// A foreground with higher luminance than the background is darkened; any
// other foreground is lightened. If no step reaches the target, whichever of
// white or black contrasts more with bg is returned.
//
// Only AA and AAA are meaningful targets; anything other than AAA is treated as AA.
func SuggestAccessibleAlternative(fg, bg string, target Level) string {
	targetRatio := ThresholdAANormal
	if target == LevelAAA {
		targetRatio = ThresholdAAANormal
	}

	if ContrastRatio(fg, bg) >= targetRatio {
		return fg
	}

	step := suggestStep
	if LuminanceHex(fg) > LuminanceHex(bg) {
		step = -suggestStep
	}

	adjustment := 0.0
	for range suggestMaxIterations {
		adjustment += step
		candidate := AdjustLightness(fg, adjustment)
		if ContrastRatio(candidate, bg) >= targetRatio {
			return candidate
		}
	}

	return bestExtreme(bg)
}

// bestExtreme returns white or black, whichever contrasts more with bg.
func bestExtreme(bg string) string {
	if ContrastRatio(White, bg) > ContrastRatio(Black, bg) {
		return White
	}
	return Black
}
