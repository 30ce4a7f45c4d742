package palette

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmylchreest/shade/internal/colour"
)

func TestParseMode(t *testing.T) {
	tests := []struct {
		in      string
		want    Mode
		wantErr bool
	}{
		{in: "", want: ModeLight},
		{in: "light", want: ModeLight},
		{in: "DARK", want: ModeDark},
		{in: "auto", wantErr: true},
	}
	for _, tt := range tests {
		got, err := ParseMode(tt.in)
		if tt.wantErr {
			assert.ErrorIs(t, err, ErrUnknownMode)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}

func TestTokensCoverEveryField(t *testing.T) {
	p := Generate("#14B8A6").Light
	tokens := p.Tokens()
	assert.Len(t, tokens, 11+5+8)
	assert.Equal(t, "gray.50", tokens[0].Path())
	assert.Equal(t, "accent.subtle", tokens[11].Path())
	assert.Equal(t, "semantic.infoMuted", tokens[len(tokens)-1].Path())
}

func TestValidateReportsEveryBadToken(t *testing.T) {
	p := Generate("#14B8A6").Light
	p.Gray.Shade700 = "#CCC"
	p.Accent.Text = "blue"

	err := p.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, colour.ErrInvalidHex))
	assert.Contains(t, err.Error(), "gray.700")
	assert.Contains(t, err.Error(), "accent.text")
}

func TestPaletteJSONShape(t *testing.T) {
	data, err := json.Marshal(Generate("#3B82F6"))
	require.NoError(t, err)

	var raw map[string]map[string]map[string]string
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Equal(t, "#FAFAFA", raw["light"]["gray"]["50"])
	assert.Equal(t, "#3B82F6", raw["dark"]["accent"]["default"])
	assert.Equal(t, "#DFF6E8", raw["light"]["semantic"]["successMuted"])
}

func TestPairForMode(t *testing.T) {
	pair := Generate("#F97316")
	assert.Equal(t, pair.Light, pair.ForMode(ModeLight))
	assert.Equal(t, pair.Dark, pair.ForMode(ModeDark))
}
