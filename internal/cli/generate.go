package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/shade/internal/palette"
)

func newGenerateCmd(a *app) *cobra.Command {
	var preset, mode string

	cmd := &cobra.Command{
		Use:   "generate [seed]",
		Short: "Generate light and dark palettes from a seed colour",
		Long: `Generate a palette from a seed colour given as #RRGGBB (the '#' is optional).

Without a seed the --preset flag or the configured seed is used. The gray
scale is tinted with the seed's hue and shared by both modes.`,
		Example: `  shade generate 3B82F6
  shade generate --preset purple --mode dark
  shade generate "#10B981" -o json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			seed, err := a.resolveSeed(args, preset)
			if err != nil {
				return err
			}
			modes, err := a.resolveModes(mode)
			if err != nil {
				return err
			}

			pair := a.gen.Generate(seed)
			a.logger.Debug("generated palette", "seed", seed, "modes", len(modes))

			out := cmd.OutOrStdout()
			if a.jsonOutput() {
				if len(modes) == 1 {
					return writeJSON(out, pair.ForMode(modes[0]))
				}
				return writeJSON(out, pair)
			}

			for i, m := range modes {
				if i > 0 {
					fmt.Fprintln(out)
				}
				if err := a.renderPalette(out, seed, m, pair.ForMode(m)); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&preset, "preset", "p", "", "use a named preset as the seed")
	cmd.Flags().StringVarP(&mode, "mode", "m", "", "palette mode (light, dark, both)")

	return cmd
}

func (a *app) renderPalette(w io.Writer, seed string, m palette.Mode, p palette.ColorPalette) error {
	a.style.title(w, "%s palette (seed %s)", m, seed)

	table := NewTable(a.style.withSwatch("Token", "Hex")...)
	for _, tok := range p.Tokens() {
		table.AddRow(a.style.swatchRow(tok.Hex, tok.Path(), tok.Hex)...)
	}
	_, err := table.WriteTo(w)
	return err
}
