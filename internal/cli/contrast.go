package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/shade/internal/audit"
	"github.com/jmylchreest/shade/internal/colour"
)

type contrastResult struct {
	Foreground string `json:"foreground"`
	Background string `json:"background"`
	colour.WCAGResult
}

func newContrastCmd(a *app) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "contrast <foreground> <background>",
		Short: "Measure the WCAG contrast ratio of two colours",
		Long: `Measure the WCAG 2.1 contrast ratio of a foreground and background colour
and report which conformance thresholds it meets.

With --file, a JSON array of {"name", "foreground", "background"} objects is
measured instead, and failing pairs get an AA suggestion.`,
		Example: `  shade contrast 767676 FFFFFF
  shade contrast --file pairs.json -o json`,
		Args: func(cmd *cobra.Command, args []string) error {
			if file != "" {
				return cobra.NoArgs(cmd, args)
			}
			return cobra.ExactArgs(2)(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if file != "" {
				return a.runPairs(cmd, file)
			}

			fg, err := parseHex(args[0])
			if err != nil {
				return fmt.Errorf("foreground: %w", err)
			}
			bg, err := parseHex(args[1])
			if err != nil {
				return fmt.Errorf("background: %w", err)
			}

			res := contrastResult{Foreground: fg, Background: bg, WCAGResult: colour.EvaluateWCAG(fg, bg)}
			out := cmd.OutOrStdout()
			if a.jsonOutput() {
				return writeJSON(out, res)
			}

			table := NewTable("Property", "Value")
			table.AddRow("Foreground", fg)
			table.AddRow("Background", bg)
			table.AddRow("Ratio", colour.FormatContrastRatio(res.Ratio))
			table.AddRow("Level", a.style.level(res.Level))
			table.AddRow("AA normal text", a.style.pass(res.PassesAA))
			table.AddRow("AA large text", a.style.pass(res.PassesAALarge))
			table.AddRow("AAA normal text", a.style.pass(res.PassesAAA))
			table.AddRow("AAA large text", a.style.pass(res.PassesAAALarge))
			if s := a.style.sample(fg, bg); s != "" {
				table.AddRow("Sample", s)
			}
			_, err = table.WriteTo(out)
			return err
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "measure colour pairs from a JSON file")

	return cmd
}

func (a *app) runPairs(cmd *cobra.Command, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read pairs file: %w", err)
	}

	var pairs []audit.ColorPair
	if err := json.Unmarshal(data, &pairs); err != nil {
		return fmt.Errorf("failed to parse pairs file %s: %w", path, err)
	}

	var errs []error
	for i := range pairs {
		p := &pairs[i]
		fg, ferr := parseHex(p.Foreground)
		bg, berr := parseHex(p.Background)
		if err := errors.Join(ferr, berr); err != nil {
			errs = append(errs, fmt.Errorf("pair %d: %w", i, err))
			continue
		}
		p.Foreground, p.Background = fg, bg
	}
	if err := errors.Join(errs...); err != nil {
		return err
	}

	results := audit.AnalyzePairs(pairs)
	a.logger.Debug("analysed colour pairs", "pairs", len(results))

	out := cmd.OutOrStdout()
	if a.jsonOutput() {
		return writeJSON(out, results)
	}

	table := NewTable("Name", "Foreground", "Background", "Ratio", "Level", "Suggestion")
	table.SetAlign(3, AlignRight)
	for _, r := range results {
		table.AddRow(r.Name, r.Foreground, r.Background, colour.FormatContrastRatio(r.Ratio), a.style.level(r.Level), r.Suggestion)
	}
	_, err = table.WriteTo(out)
	return err
}

type suggestResult struct {
	Foreground    string       `json:"foreground"`
	Background    string       `json:"background"`
	Target        colour.Level `json:"target"`
	Suggestion    string       `json:"suggestion"`
	OriginalRatio float64      `json:"originalRatio"`
	Ratio         float64      `json:"ratio"`
	Level         colour.Level `json:"level"`
	Changed       bool         `json:"changed"`
}

func newSuggestCmd(a *app) *cobra.Command {
	var level string

	cmd := &cobra.Command{
		Use:   "suggest <foreground> <background>",
		Short: "Suggest an accessible replacement foreground colour",
		Long: `Adjust the foreground's lightness in steps of 5 until the pair meets the
target WCAG level. A foreground with higher luminance than the background is
darkened, otherwise it is lightened. If no step works within 20 tries, white
or black is suggested, whichever contrasts more.`,
		Example: `  shade suggest 222222 333333
  shade suggest 3B82F6 1E293B --level AAA`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			fg, err := parseHex(args[0])
			if err != nil {
				return fmt.Errorf("foreground: %w", err)
			}
			bg, err := parseHex(args[1])
			if err != nil {
				return fmt.Errorf("background: %w", err)
			}
			target, err := a.resolveLevel(level)
			if err != nil {
				return err
			}

			suggestion := colour.SuggestAccessibleAlternative(fg, bg, target)
			ratio := colour.ContrastRatio(suggestion, bg)
			res := suggestResult{
				Foreground:    fg,
				Background:    bg,
				Target:        target,
				Suggestion:    suggestion,
				OriginalRatio: colour.ContrastRatio(fg, bg),
				Ratio:         ratio,
				Level:         colour.WCAGLevel(ratio),
				Changed:       suggestion != fg,
			}
			a.logger.Debug("suggested colour", "fg", fg, "bg", bg, "target", target, "suggestion", suggestion)

			out := cmd.OutOrStdout()
			if a.jsonOutput() {
				return writeJSON(out, res)
			}

			table := NewTable(a.style.withSwatch("Colour", "Hex", "Ratio", "Level")...)
			table.SetAlign(2, AlignRight)
			table.AddRow(a.style.swatchRow(fg, "Original", fg, colour.FormatContrastRatio(res.OriginalRatio), a.style.level(colour.WCAGLevel(res.OriginalRatio)))...)
			table.AddRow(a.style.swatchRow(suggestion, "Suggested", suggestion, colour.FormatContrastRatio(ratio), a.style.level(res.Level))...)
			if _, err := table.WriteTo(out); err != nil {
				return err
			}
			if !res.Changed {
				fmt.Fprintf(out, "%s already meets %s\n", fg, target)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&level, "level", "l", "", "target WCAG level (AA, AAA)")

	return cmd
}
