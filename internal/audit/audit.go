// Package audit checks palettes against WCAG 2.1 contrast requirements.
package audit

import (
	"fmt"

	"github.com/jmylchreest/shade/internal/colour"
	"github.com/jmylchreest/shade/internal/palette"
)

// Severity grades an issue.
type Severity string

const (
	// SeverityError marks a pair that fails AA even for large text.
	SeverityError Severity = "error"
	// SeverityWarning marks a pair that only passes for large text.
	SeverityWarning Severity = "warning"
)

// IssueType identifies which battery produced an issue.
type IssueType string

const (
	TypeTextOnBackground IssueType = "text-on-background"
	TypeSemantic         IssueType = "semantic"
)

// Issue is one contrast problem found in a palette.
type Issue struct {
	ID         string       `json:"id"`
	Type       IssueType    `json:"type"`
	Severity   Severity     `json:"severity"`
	Foreground string       `json:"foreground"`
	Background string       `json:"background"`
	Ratio      float64      `json:"ratio"`
	Level      colour.Level `json:"level"`
	Message    string       `json:"message"`
	// Suggestion passes AA against Background. Empty when none is offered.
	Suggestion string `json:"suggestion,omitempty"`
}

// textCheck is a foreground/background pair to measure.
type textCheck struct {
	id   string
	name string
	fg   string
	bg   string
}

// textChecks returns the pairs checked for mode, in report order.
func textChecks(p palette.ColorPalette, mode palette.Mode) []textCheck {
	bg := p.Gray.Shade50
	if mode == palette.ModeDark {
		bg = p.Gray.Shade950
	}

	checks := []textCheck{
		{id: "text-dark-on-bg", name: "Dark text on background", fg: p.Gray.Shade900, bg: bg},
		{id: "text-muted-on-bg", name: "Muted text on background", fg: p.Gray.Shade700, bg: bg},
		{id: "accent-text-on-bg", name: "Accent text on background", fg: p.Accent.Text, bg: bg},
		{id: "accent-text-on-subtle", name: "Accent text on accent subtle", fg: p.Accent.Text, bg: p.Accent.Subtle},
	}

	if mode == palette.ModeDark {
		checks = append(checks,
			textCheck{id: "text-light-on-bg", name: "Light text on background", fg: p.Gray.Shade100, bg: bg},
			textCheck{id: "text-muted-light-on-bg", name: "Muted light text on background", fg: p.Gray.Shade300, bg: bg},
		)
	}
	return checks
}

// semanticCheck is a semantic base colour measured against white and black.
type semanticCheck struct {
	id    string
	name  string
	color string
}

func semanticChecks(s palette.SemanticColors) []semanticCheck {
	return []semanticCheck{
		{id: "semantic-success", name: "Success", color: s.Success},
		{id: "semantic-warning", name: "Warning", color: s.Warning},
		{id: "semantic-error", name: "Error", color: s.Error},
		{id: "semantic-info", name: "Info", color: s.Info},
	}
}

// severityFor maps a level to a severity. ok is false for passing levels.
func severityFor(level colour.Level) (sev Severity, ok bool) {
	switch level {
	case colour.LevelFail:
		return SeverityError, true
	case colour.LevelAALarge:
		return SeverityWarning, true
	default:
		return "", false
	}
}

// Audit runs the contrast battery for mode against p.
//
// Text checks compare body, muted and accent text with the mode's background
// (gray.50 in light mode, gray.950 in dark mode) and accent text with the
// subtle accent; dark mode adds the light gray text stops. Each semantic base
// colour is measured against whichever of white or black gives it more
// contrast. Text issues carry an AA suggestion; semantic issues do not.
func Audit(p palette.ColorPalette, mode palette.Mode) []Issue {
	var issues []Issue

	for _, c := range textChecks(p, mode) {
		ratio := colour.ContrastRatio(c.fg, c.bg)
		level := colour.WCAGLevel(ratio)
		sev, ok := severityFor(level)
		if !ok {
			continue
		}

		issues = append(issues, Issue{
			ID:         c.id,
			Type:       TypeTextOnBackground,
			Severity:   sev,
			Foreground: c.fg,
			Background: c.bg,
			Ratio:      ratio,
			Level:      level,
			Message:    textMessage(c.name, sev, ratio),
			Suggestion: colour.SuggestAccessibleAlternative(c.fg, c.bg, colour.LevelAA),
		})
	}

	// Semantic colours use the same Fail/AA-Large severity mapping as text
	// checks: below 3:1 is an error and below 4.5:1 a warning.
	for _, c := range semanticChecks(p.Semantic) {
		onWhite := colour.ContrastRatio(c.color, colour.White)
		onBlack := colour.ContrastRatio(c.color, colour.Black)

		bg, ratio := colour.White, onWhite
		if onBlack > onWhite {
			bg, ratio = colour.Black, onBlack
		}

		level := colour.WCAGLevel(ratio)
		sev, ok := severityFor(level)
		if !ok {
			continue
		}

		issues = append(issues, Issue{
			ID:         c.id,
			Type:       TypeSemantic,
			Severity:   sev,
			Foreground: c.color,
			Background: bg,
			Ratio:      ratio,
			Level:      level,
			Message:    fmt.Sprintf("%s color may be hard to see (%s)", c.name, colour.FormatContrastRatio(ratio)),
		})
	}

	return issues
}

func textMessage(name string, sev Severity, ratio float64) string {
	if sev == SeverityError {
		return fmt.Sprintf("%s fails WCAG AA (%s)", name, colour.FormatContrastRatio(ratio))
	}
	return fmt.Sprintf("%s only passes for large text (%s)", name, colour.FormatContrastRatio(ratio))
}
