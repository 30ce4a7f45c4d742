package audit

import "github.com/jmylchreest/shade/internal/colour"

// ColorPair is an arbitrary foreground/background combination to analyse.
type ColorPair struct {
	Name       string `json:"name,omitempty"`
	Foreground string `json:"foreground"`
	Background string `json:"background"`
}

// PairAnalysis is the contrast verdict for one ColorPair.
type PairAnalysis struct {
	Name       string       `json:"name,omitempty"`
	Foreground string       `json:"foreground"`
	Background string       `json:"background"`
	Ratio      float64      `json:"ratio"`
	Level      colour.Level `json:"level"`
	Suggestion string       `json:"suggestion,omitempty"`
}

// AnalyzePairs measures each pair. Pairs below AA get an AA suggestion.
func AnalyzePairs(pairs []ColorPair) []PairAnalysis {
	out := make([]PairAnalysis, 0, len(pairs))
	for _, p := range pairs {
		ratio := colour.ContrastRatio(p.Foreground, p.Background)
		a := PairAnalysis{
			Name:       p.Name,
			Foreground: p.Foreground,
			Background: p.Background,
			Ratio:      ratio,
			Level:      colour.WCAGLevel(ratio),
		}
		if a.Level == colour.LevelFail || a.Level == colour.LevelAALarge {
			a.Suggestion = colour.SuggestAccessibleAlternative(p.Foreground, p.Background, colour.LevelAA)
		}
		out = append(out, a)
	}
	return out
}
