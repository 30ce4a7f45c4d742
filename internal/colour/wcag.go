package colour

import (
	"errors"
	"fmt"
	"strings"
)

// Reference colours used as fallbacks and semantic backdrops.
const (
	White = "#FFFFFF"
	Black = "#000000"
)

// WCAG 2.1 contrast thresholds. Large text is 18pt, or 14pt bold, and above.
const (
	ThresholdAANormal  = 4.5
	ThresholdAALarge   = 3.0
	ThresholdAAANormal = 7.0
	ThresholdAAALarge  = 4.5
)

// Level is a WCAG conformance level for a contrast ratio.
type Level string

// Conformance levels, strictest first.
const (
	LevelAAA     Level = "AAA"
	LevelAA      Level = "AA"
	LevelAALarge Level = "AA-Large"
	LevelFail    Level = "Fail"
)

// ErrUnknownLevel is returned by ParseTargetLevel for unsupported names.
var ErrUnknownLevel = errors.New("unknown WCAG level")

// String returns the level name.
func (l Level) String() string {
	return string(l)
}

// MinRatio returns the smallest contrast ratio that reaches l.
func (l Level) MinRatio() float64 {
	switch l {
	case LevelAAA:
		return ThresholdAAANormal
	case LevelAA:
		return ThresholdAANormal
	case LevelAALarge:
		return ThresholdAALarge
	default:
		return 1
	}
}

// ParseTargetLevel parses a suggestion target. Only AA and AAA are targets.
func ParseTargetLevel(s string) (Level, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "", "AA":
		return LevelAA, nil
	case "AAA":
		return LevelAAA, nil
	default:
		return "", fmt.Errorf("%w: %q (valid: AA, AAA)", ErrUnknownLevel, s)
	}
}

// WCAGLevel classifies a contrast ratio. Every ratio maps to exactly one level.
func WCAGLevel(ratio float64) Level {
	switch {
	case ratio >= ThresholdAAANormal:
		return LevelAAA
	case ratio >= ThresholdAANormal:
		return LevelAA
	case ratio >= ThresholdAALarge:
		return LevelAALarge
	default:
		return LevelFail
	}
}

// WCAGResult is the detailed evaluation of one foreground/background pair.
type WCAGResult struct {
	Level          Level   `json:"level"`
	Ratio          float64 `json:"ratio"`
	PassesAA       bool    `json:"passesAA"`
	PassesAAA      bool    `json:"passesAAA"`
	PassesAALarge  bool    `json:"passesAALarge"`
	PassesAAALarge bool    `json:"passesAAALarge"`
}

// EvaluateWCAG measures fg against bg and reports which thresholds pass.
func EvaluateWCAG(fg, bg string) WCAGResult {
	ratio := ContrastRatio(fg, bg)
	return WCAGResult{
		Level:          WCAGLevel(ratio),
		Ratio:          ratio,
		PassesAA:       ratio >= ThresholdAANormal,
		PassesAAA:      ratio >= ThresholdAAANormal,
		PassesAALarge:  ratio >= ThresholdAALarge,
		PassesAAALarge: ratio >= ThresholdAAALarge,
	}
}
