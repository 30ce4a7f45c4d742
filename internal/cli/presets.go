package cli

import (
	"github.com/spf13/cobra"

	"github.com/jmylchreest/shade/internal/palette"
)

func newPresetsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "List the built-in seed presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			presets := palette.Presets()
			out := cmd.OutOrStdout()
			if a.jsonOutput() {
				return writeJSON(out, presets)
			}

			table := NewTable(a.style.withSwatch("Name", "Seed")...)
			for _, p := range presets {
				table.AddRow(a.style.swatchRow(p.Seed, p.Name, p.Seed)...)
			}
			_, err := table.WriteTo(out)
			return err
		},
	}
}
