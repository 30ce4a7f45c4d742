package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/shade/internal/config"
)

func newConfigCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect shade configuration",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "show",
			Short: "Print the effective configuration",
			Long: `Print the configuration after merging defaults, the config file and
SHADE_* environment variables.`,
			Args: cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				out := cmd.OutOrStdout()
				if a.jsonOutput() {
					return writeJSON(out, a.cfg)
				}

				table := NewTable("Key", "Value")
				table.AddRow("seed", a.cfg.Seed)
				table.AddRow("mode", a.cfg.Mode)
				table.AddRow("target_level", a.cfg.TargetLevel)
				table.AddRow("format", a.cfg.Format)
				table.AddRow("color", a.cfg.Color)
				table.AddRow("log_level", a.cfg.LogLevel)
				_, err := table.WriteTo(out)
				return err
			},
		},
		&cobra.Command{
			Use:   "path",
			Short: "Print the default config file location",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				path := a.configPath
				if path == "" {
					path = filepath.Join(config.DefaultDir(), "shade.yaml")
				}
				_, err := fmt.Fprintln(cmd.OutOrStdout(), path)
				return err
			},
		},
	)

	return cmd
}
