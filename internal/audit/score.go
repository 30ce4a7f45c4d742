package audit

// Score weights.
const (
	maxScore       = 100
	errorPenalty   = 15
	warningPenalty = 5
)

// Summary aggregates an audit for display.
type Summary struct {
	Errors   int  `json:"errors"`
	Warnings int  `json:"warnings"`
	Score    int  `json:"score"`
	Perfect  bool `json:"perfect"`
}

// Score returns max(0, 100 - 15*errors - 5*warnings). Scores are clamped,
// so palettes with many errors all score zero.
func Score(issues []Issue) int {
	return Summarize(issues).Score
}

// Summarize counts issues by severity and derives the score.
func Summarize(issues []Issue) Summary {
	var s Summary
	for _, is := range issues {
		switch is.Severity {
		case SeverityError:
			s.Errors++
		case SeverityWarning:
			s.Warnings++
		}
	}
	s.Score = max(0, maxScore-errorPenalty*s.Errors-warningPenalty*s.Warnings)
	s.Perfect = len(issues) == 0
	return s
}
