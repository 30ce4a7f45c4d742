package colour

import (
	"errors"
	"testing"
)

func TestWCAGLevel(t *testing.T) {
	tests := []struct {
		ratio float64
		want  Level
	}{
		{1, LevelFail},
		{2.99, LevelFail},
		{3.0, LevelAALarge},
		{4.49, LevelAALarge},
		{4.49999, LevelAALarge},
		{4.5, LevelAA},
		{6.99, LevelAA},
		{7.0, LevelAAA},
		{21, LevelAAA},
	}

	for _, tt := range tests {
		t.Run(tt.want.String(), func(t *testing.T) {
			if got := WCAGLevel(tt.ratio); got != tt.want {
				t.Errorf("WCAGLevel(%v) = %s, want %s", tt.ratio, got, tt.want)
			}
		})
	}
}

func TestWCAGLevelIsMonotonic(t *testing.T) {
	rank := map[Level]int{LevelFail: 0, LevelAALarge: 1, LevelAA: 2, LevelAAA: 3}
	prev := rank[WCAGLevel(1)]
	for r := 1.0; r <= 21; r += 0.01 {
		cur := rank[WCAGLevel(r)]
		if cur < prev {
			t.Fatalf("WCAGLevel decreased at ratio %v", r)
		}
		prev = cur
	}
}

func TestLevelMinRatio(t *testing.T) {
	for _, l := range []Level{LevelAAA, LevelAA, LevelAALarge} {
		if got := WCAGLevel(l.MinRatio()); got != l {
			t.Errorf("WCAGLevel(%s.MinRatio()) = %s", l, got)
		}
	}
}

func TestParseTargetLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    Level
		wantErr bool
	}{
		{in: "", want: LevelAA},
		{in: "AA", want: LevelAA},
		{in: "aaa", want: LevelAAA},
		{in: " AAA ", want: LevelAAA},
		{in: "AA-Large", wantErr: true},
		{in: "A", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseTargetLevel(tt.in)
		if tt.wantErr {
			if !errors.Is(err, ErrUnknownLevel) {
				t.Errorf("ParseTargetLevel(%q) error = %v, want ErrUnknownLevel", tt.in, err)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("ParseTargetLevel(%q) = %s, %v; want %s", tt.in, got, err, tt.want)
		}
	}
}

func TestEvaluateWCAG(t *testing.T) {
	res := EvaluateWCAG("#767676", White)
	if res.Level != LevelAA || !res.PassesAA || res.PassesAAA || !res.PassesAALarge || !res.PassesAAALarge {
		t.Errorf("EvaluateWCAG(#767676, white) = %+v", res)
	}

	res = EvaluateWCAG("#CCCCCC", White)
	if res.Level != LevelFail || res.PassesAA || res.PassesAALarge {
		t.Errorf("EvaluateWCAG(#CCCCCC, white) = %+v", res)
	}
}
