package audit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmylchreest/shade/internal/colour"
	"github.com/jmylchreest/shade/internal/palette"
)

func TestAuditGeneratedLightPaletteIsClean(t *testing.T) {
	for _, p := range palette.Presets() {
		pair := palette.Generate(p.Seed)
		assert.Empty(t, Audit(pair.Light, palette.ModeLight), "preset %s", p.Name)
	}
}

func TestAuditDarkTextOnNearWhite(t *testing.T) {
	p := palette.Generate("#3B82F6").Light
	p.Gray.Shade900 = "#111827"

	assert.Empty(t, Audit(p, palette.ModeLight))
}

func TestAuditLightGrayMutedTextFails(t *testing.T) {
	p := palette.Generate("#3B82F6").Light
	p.Gray.Shade50 = "#FFFFFF"
	p.Gray.Shade700 = "#CCCCCC"

	issues := Audit(p, palette.ModeLight)
	require.Len(t, issues, 1)

	is := issues[0]
	assert.Equal(t, "text-muted-on-bg", is.ID)
	assert.Equal(t, TypeTextOnBackground, is.Type)
	assert.Equal(t, SeverityError, is.Severity)
	assert.Equal(t, colour.LevelFail, is.Level)
	assert.Equal(t, "#CCCCCC", is.Foreground)
	assert.Equal(t, "#FFFFFF", is.Background)
	assert.InDelta(t, 1.606, is.Ratio, 0.001)
	assert.Equal(t, "Muted text on background fails WCAG AA (1.6:1)", is.Message)
	require.NotEmpty(t, is.Suggestion)
	// Lightening toward white cannot reach AA, so the search falls back to black.
	assert.Equal(t, colour.Black, is.Suggestion)
	assert.GreaterOrEqual(t, colour.ContrastRatio(is.Suggestion, is.Background), colour.ThresholdAANormal)
}

func TestAuditLargeTextOnlyIsWarning(t *testing.T) {
	p := palette.Generate("#3B82F6").Light
	p.Gray.Shade50 = "#FFFFFF"
	p.Gray.Shade700 = "#888888"

	issues := Audit(p, palette.ModeLight)
	require.Len(t, issues, 1)
	assert.Equal(t, SeverityWarning, issues[0].Severity)
	assert.Equal(t, colour.LevelAALarge, issues[0].Level)
	assert.Equal(t, "Muted text on background only passes for large text (3.5:1)", issues[0].Message)
	assert.Equal(t, colour.Black, issues[0].Suggestion)
}

func TestAuditDarkModeChecks(t *testing.T) {
	p := palette.Generate("#3B82F6").Dark

	issues := Audit(p, palette.ModeDark)

	// Dark gray stops measured against the dark background fail; the light
	// text stops added for dark mode pass.
	ids := make([]string, 0, len(issues))
	for _, is := range issues {
		ids = append(ids, is.ID)
		assert.Equal(t, p.Gray.Shade950, is.Background)
		assert.Equal(t, SeverityError, is.Severity)
		assert.GreaterOrEqual(t, colour.ContrastRatio(is.Suggestion, is.Background), colour.ThresholdAANormal, is.ID)
	}
	assert.Equal(t, []string{"text-dark-on-bg", "text-muted-on-bg"}, ids)
	assert.Equal(t, colour.White, issues[0].Suggestion)
}

func TestAuditDarkModeFlagsLightStops(t *testing.T) {
	p := palette.Generate("#3B82F6").Dark
	p.Gray.Shade100 = "#2A2A2A"

	var found bool
	for _, is := range Audit(p, palette.ModeDark) {
		if is.ID == "text-light-on-bg" {
			found = true
			assert.Equal(t, "#2A2A2A", is.Foreground)
		}
	}
	assert.True(t, found, "expected text-light-on-bg issue")

	// Light mode never checks the light stops.
	for _, is := range Audit(p, palette.ModeLight) {
		assert.NotEqual(t, "text-light-on-bg", is.ID)
	}
}

func TestAuditSemanticUsesBetterBackdrop(t *testing.T) {
	p := palette.Generate("#3B82F6").Light
	// Mid grey is the worst case; it still clears AA against black.
	p.Semantic.Success = "#767676"
	p.Semantic.Info = "#777777"

	for _, is := range Audit(p, palette.ModeLight) {
		assert.NotEqual(t, TypeSemantic, is.Type, "unexpected semantic issue %+v", is)
	}
}

func TestSeverityFor(t *testing.T) {
	tests := []struct {
		level colour.Level
		want  Severity
		ok    bool
	}{
		{colour.LevelFail, SeverityError, true},
		{colour.LevelAALarge, SeverityWarning, true},
		{colour.LevelAA, "", false},
		{colour.LevelAAA, "", false},
	}
	for _, tt := range tests {
		got, ok := severityFor(tt.level)
		assert.Equal(t, tt.want, got, tt.level)
		assert.Equal(t, tt.ok, ok, tt.level)
	}
}
