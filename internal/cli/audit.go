package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/shade/internal/audit"
	"github.com/jmylchreest/shade/internal/colour"
	"github.com/jmylchreest/shade/internal/palette"
)

// errAuditFailed is returned by audit --strict when any report has errors.
var errAuditFailed = errors.New("palette audit found contrast errors")

type auditOptions struct {
	preset     string
	mode       string
	file       string
	allPresets bool
	strict     bool
}

func newAuditCmd(a *app) *cobra.Command {
	opts := &auditOptions{}

	cmd := &cobra.Command{
		Use:   "audit [seed]",
		Short: "Check a palette against WCAG contrast requirements",
		Long: `Audit generated or saved palettes for text contrast and semantic colour
visibility. Each failing pair is reported with a suggested replacement, and
every palette receives a score out of 100.

Use --file to audit a palette saved with 'shade generate -o json'.`,
		Example: `  shade audit 3B82F6
  shade audit --all-presets --mode dark
  shade generate 3B82F6 -o json > palette.json && shade audit --file palette.json --strict`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			targets, err := a.auditTargets(args, opts)
			if err != nil {
				return err
			}

			a.logger.Debug("auditing palettes", "targets", len(targets))
			reports, err := audit.AuditAll(cmd.Context(), targets)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if a.jsonOutput() {
				if err := writeJSON(out, reports); err != nil {
					return err
				}
			} else {
				for i, r := range reports {
					if i > 0 {
						fmt.Fprintln(out)
					}
					if err := a.renderReport(out, r); err != nil {
						return err
					}
				}
			}

			if opts.strict {
				for _, r := range reports {
					if r.Summary.Errors > 0 {
						return errAuditFailed
					}
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.preset, "preset", "p", "", "audit a named preset")
	cmd.Flags().StringVarP(&opts.mode, "mode", "m", "", "palette mode (light, dark, both)")
	cmd.Flags().StringVar(&opts.file, "file", "", "audit a palette JSON file")
	cmd.Flags().BoolVar(&opts.allPresets, "all-presets", false, "audit every built-in preset")
	cmd.Flags().BoolVar(&opts.strict, "strict", false, "exit non-zero when any contrast error is found")
	cmd.MarkFlagsMutuallyExclusive("preset", "file", "all-presets")

	return cmd
}

func (a *app) auditTargets(args []string, opts *auditOptions) ([]audit.Target, error) {
	modes, err := a.resolveModes(opts.mode)
	if err != nil {
		return nil, err
	}

	if (opts.allPresets || opts.file != "") && len(args) > 0 {
		return nil, errors.New("a seed argument cannot be combined with --file or --all-presets")
	}

	var targets []audit.Target
	add := func(name string, pair palette.Pair) {
		for _, m := range modes {
			targets = append(targets, audit.Target{Name: name, Palette: pair.ForMode(m), Mode: m})
		}
	}

	switch {
	case opts.allPresets:
		for _, p := range palette.Presets() {
			add(p.Name, a.gen.Generate(p.Seed))
		}
	case opts.file != "":
		pair, err := loadPaletteFile(opts.file)
		if err != nil {
			return nil, err
		}
		add(filepath.Base(opts.file), pair)
	default:
		seed, err := a.resolveSeed(args, opts.preset)
		if err != nil {
			return nil, err
		}
		name := seed
		if opts.preset != "" {
			name = opts.preset
		}
		add(name, a.gen.Generate(seed))
	}

	return targets, nil
}

// loadPaletteFile reads either a light/dark pair or a single palette. A single
// palette is used for both modes.
func loadPaletteFile(path string) (palette.Pair, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return palette.Pair{}, fmt.Errorf("failed to read palette file: %w", err)
	}

	var pair palette.Pair
	if err := json.Unmarshal(data, &pair); err != nil {
		return palette.Pair{}, fmt.Errorf("failed to parse palette file %s: %w", path, err)
	}

	if pair.Light.Gray.Shade50 == "" && pair.Dark.Gray.Shade50 == "" {
		var single palette.ColorPalette
		if err := json.Unmarshal(data, &single); err != nil {
			return palette.Pair{}, fmt.Errorf("failed to parse palette file %s: %w", path, err)
		}
		pair = palette.Pair{Light: single, Dark: single}
	}

	if err := errors.Join(
		prefixErr("light", pair.Light.Validate()),
		prefixErr("dark", pair.Dark.Validate()),
	); err != nil {
		return palette.Pair{}, fmt.Errorf("invalid palette file %s: %w", path, err)
	}

	return pair, nil
}

func prefixErr(prefix string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", prefix, err)
}

func (a *app) renderReport(w io.Writer, r audit.Report) error {
	a.style.title(w, "%s (%s): score %d/100", r.Name, r.Mode, r.Summary.Score)

	if r.Summary.Perfect {
		_, err := fmt.Fprintf(w, "%s no contrast issues found\n", a.style.pass(true))
		return err
	}

	table := NewTable("Severity", "Check", "Ratio", "Foreground", "Background", "Suggestion")
	table.SetAlign(2, AlignRight)
	for _, is := range r.Issues {
		table.AddRow(
			a.style.severity(is.Severity),
			is.ID,
			colour.FormatContrastRatio(is.Ratio),
			is.Foreground,
			is.Background,
			is.Suggestion,
		)
	}
	if _, err := table.WriteTo(w); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, "%d error(s), %d warning(s)\n", r.Summary.Errors, r.Summary.Warnings)
	return err
}
