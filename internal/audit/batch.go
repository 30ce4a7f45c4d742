package audit

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/jmylchreest/shade/internal/palette"
)

// Target names a palette and the mode to audit it in.
type Target struct {
	Name    string
	Palette palette.ColorPalette
	Mode    palette.Mode
}

// Report is the audit outcome for one Target.
type Report struct {
	Name    string       `json:"name"`
	Mode    palette.Mode `json:"mode"`
	Issues  []Issue      `json:"issues"`
	Summary Summary      `json:"summary"`
}

// AuditAll audits every target concurrently. Reports are returned in the
// order of targets. Cancelling ctx stops work that has not started.
func AuditAll(ctx context.Context, targets []Target) ([]Report, error) {
	reports := make([]Report, len(targets))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, t := range targets {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return fmt.Errorf("audit of %s canceled: %w", t.Name, err)
			}
			issues := Audit(t.Palette, t.Mode)
			reports[i] = Report{
				Name:    t.Name,
				Mode:    t.Mode,
				Issues:  issues,
				Summary: Summarize(issues),
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}
