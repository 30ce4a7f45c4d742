// Package palette derives complete light and dark colour token sets from a
// single seed colour.
package palette

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jmylchreest/shade/internal/colour"
)

// Mode selects which of the two parallel palettes is in use.
type Mode string

const (
	ModeLight Mode = "light"
	ModeDark  Mode = "dark"
)

// ErrUnknownMode is returned by ParseMode for anything other than light or dark.
var ErrUnknownMode = errors.New("unknown colour mode")

// ParseMode parses a mode name. An empty string selects light.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "light":
		return ModeLight, nil
	case "dark":
		return ModeDark, nil
	default:
		return "", fmt.Errorf("%w: %q (valid: light, dark)", ErrUnknownMode, s)
	}
}

// String returns the mode name.
func (m Mode) String() string { return string(m) }

// ColorScale is the eleven-stop neutral ramp, lightest (50) to darkest (950).
type ColorScale struct {
	Shade50  string `json:"50"`
	Shade100 string `json:"100"`
	Shade200 string `json:"200"`
	Shade300 string `json:"300"`
	Shade400 string `json:"400"`
	Shade500 string `json:"500"`
	Shade600 string `json:"600"`
	Shade700 string `json:"700"`
	Shade800 string `json:"800"`
	Shade900 string `json:"900"`
	Shade950 string `json:"950"`
}

// Token is a single named colour within a palette group.
type Token struct {
	Group string `json:"group"`
	Name  string `json:"name"`
	Hex   string `json:"hex"`
}

// Path returns the dotted token path, e.g. "gray.500".
func (t Token) Path() string {
	return t.Group + "." + t.Name
}

// Stops returns the scale in ladder order.
func (s ColorScale) Stops() []Token {
	return []Token{
		{Group: "gray", Name: "50", Hex: s.Shade50},
		{Group: "gray", Name: "100", Hex: s.Shade100},
		{Group: "gray", Name: "200", Hex: s.Shade200},
		{Group: "gray", Name: "300", Hex: s.Shade300},
		{Group: "gray", Name: "400", Hex: s.Shade400},
		{Group: "gray", Name: "500", Hex: s.Shade500},
		{Group: "gray", Name: "600", Hex: s.Shade600},
		{Group: "gray", Name: "700", Hex: s.Shade700},
		{Group: "gray", Name: "800", Hex: s.Shade800},
		{Group: "gray", Name: "900", Hex: s.Shade900},
		{Group: "gray", Name: "950", Hex: s.Shade950},
	}
}

// AccentColors are the five accent intensities derived from the seed.
type AccentColors struct {
	Subtle   string `json:"subtle"`
	Muted    string `json:"muted"`
	Default  string `json:"default"`
	Emphasis string `json:"emphasis"`
	Text     string `json:"text"`
}

// Tokens returns the accents in increasing intensity.
func (a AccentColors) Tokens() []Token {
	return []Token{
		{Group: "accent", Name: "subtle", Hex: a.Subtle},
		{Group: "accent", Name: "muted", Hex: a.Muted},
		{Group: "accent", Name: "default", Hex: a.Default},
		{Group: "accent", Name: "emphasis", Hex: a.Emphasis},
		{Group: "accent", Name: "text", Hex: a.Text},
	}
}

// SemanticColors pairs each status role with a muted background tint.
type SemanticColors struct {
	Success      string `json:"success"`
	SuccessMuted string `json:"successMuted"`
	Warning      string `json:"warning"`
	WarningMuted string `json:"warningMuted"`
	Error        string `json:"error"`
	ErrorMuted   string `json:"errorMuted"`
	Info         string `json:"info"`
	InfoMuted    string `json:"infoMuted"`
}

// Tokens returns the semantic colours, each base followed by its muted tint.
func (s SemanticColors) Tokens() []Token {
	return []Token{
		{Group: "semantic", Name: "success", Hex: s.Success},
		{Group: "semantic", Name: "successMuted", Hex: s.SuccessMuted},
		{Group: "semantic", Name: "warning", Hex: s.Warning},
		{Group: "semantic", Name: "warningMuted", Hex: s.WarningMuted},
		{Group: "semantic", Name: "error", Hex: s.Error},
		{Group: "semantic", Name: "errorMuted", Hex: s.ErrorMuted},
		{Group: "semantic", Name: "info", Hex: s.Info},
		{Group: "semantic", Name: "infoMuted", Hex: s.InfoMuted},
	}
}

// ColorPalette is the complete token set for one mode.
type ColorPalette struct {
	Gray     ColorScale     `json:"gray"`
	Accent   AccentColors   `json:"accent"`
	Semantic SemanticColors `json:"semantic"`
}

// Tokens returns every colour in the palette: gray, then accent, then semantic.
func (p ColorPalette) Tokens() []Token {
	tokens := p.Gray.Stops()
	tokens = append(tokens, p.Accent.Tokens()...)
	return append(tokens, p.Semantic.Tokens()...)
}

// Validate checks that every token is a #RRGGBB colour.
func (p ColorPalette) Validate() error {
	var errs []error
	for _, tok := range p.Tokens() {
		if err := colour.ValidateHex(tok.Hex); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", tok.Path(), err))
		}
	}
	return errors.Join(errs...)
}

// Pair holds the light and dark palettes generated from one seed.
type Pair struct {
	Light ColorPalette `json:"light"`
	Dark  ColorPalette `json:"dark"`
}

// ForMode returns the palette for m. Unknown modes select light.
func (p Pair) ForMode(m Mode) ColorPalette {
	if m == ModeDark {
		return p.Dark
	}
	return p.Light
}
