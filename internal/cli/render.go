package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/jmylchreest/shade/internal/audit"
	"github.com/jmylchreest/shade/internal/colour"
	"github.com/jmylchreest/shade/internal/config"
)

// styler decorates table cells. When disabled every method returns plain text.
type styler struct {
	enabled  bool
	renderer *lipgloss.Renderer

	errorLabel   *color.Color
	warningLabel *color.Color
	passLabel    *color.Color
	heading      *color.Color
}

func newStyler(w io.Writer, mode string) *styler {
	enabled := colorEnabled(w, mode)

	r := lipgloss.NewRenderer(w)
	if enabled {
		r.SetColorProfile(termenv.TrueColor)
	} else {
		r.SetColorProfile(termenv.Ascii)
	}

	s := &styler{
		enabled:      enabled,
		renderer:     r,
		errorLabel:   color.New(color.FgRed, color.Bold),
		warningLabel: color.New(color.FgYellow),
		passLabel:    color.New(color.FgGreen),
		heading:      color.New(color.Bold),
	}
	for _, c := range []*color.Color{s.errorLabel, s.warningLabel, s.passLabel, s.heading} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return s
}

// colorEnabled resolves auto against NO_COLOR and whether w is a terminal.
func colorEnabled(w io.Writer, mode string) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// swatch renders a small block filled with hex. Empty when disabled.
func (s *styler) swatch(hex string) string {
	if !s.enabled {
		return ""
	}
	return s.renderer.NewStyle().
		Background(lipgloss.Color(hex)).
		Foreground(lipgloss.Color(colour.TextColorForBackground(hex))).
		Render(" Aa ")
}

// sample renders fg text on bg. Empty when disabled.
func (s *styler) sample(fg, bg string) string {
	if !s.enabled {
		return ""
	}
	return s.renderer.NewStyle().
		Background(lipgloss.Color(bg)).
		Foreground(lipgloss.Color(fg)).
		Render(" Sample ")
}

func (s *styler) severity(sev audit.Severity) string {
	if sev == audit.SeverityError {
		return s.errorLabel.Sprint(string(sev))
	}
	return s.warningLabel.Sprint(string(sev))
}

func (s *styler) level(l colour.Level) string {
	switch l {
	case colour.LevelFail:
		return s.errorLabel.Sprint(l.String())
	case colour.LevelAALarge:
		return s.warningLabel.Sprint(l.String())
	default:
		return s.passLabel.Sprint(l.String())
	}
}

func (s *styler) pass(ok bool) string {
	if ok {
		return s.passLabel.Sprint("pass")
	}
	return s.errorLabel.Sprint("fail")
}

func (s *styler) title(w io.Writer, format string, args ...any) {
	_, _ = s.heading.Fprintf(w, format+"\n", args...)
}

// withSwatch appends a swatch column header when swatches are rendered.
func (s *styler) withSwatch(headers ...string) []string {
	if s.enabled {
		return append(headers, "Swatch")
	}
	return headers
}

// swatchRow appends the swatch for hex when swatches are rendered.
func (s *styler) swatchRow(hex string, cells ...string) []string {
	if s.enabled {
		return append(cells, s.swatch(hex))
	}
	return cells
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}
