// Package cli provides the command-line interface for shade.
package cli

import (
	"errors"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/shade/internal/colour"
	"github.com/jmylchreest/shade/internal/config"
	"github.com/jmylchreest/shade/internal/logging"
	"github.com/jmylchreest/shade/internal/palette"
	"github.com/jmylchreest/shade/internal/version"
)

// app holds state shared by every subcommand. It is populated by the root
// command's PersistentPreRunE once flags are parsed.
type app struct {
	configPath string
	verbose    bool
	quiet      bool
	format     string
	color      string

	cfg    *config.Config
	logger hclog.Logger
	gen    *palette.Generator
	style  *styler
}

// NewRootCmd builds the shade command tree. Each call returns an independent
// tree, so tests can execute commands without sharing flag state.
func NewRootCmd() *cobra.Command {
	a := &app{logger: logging.Discard()}

	cmd := &cobra.Command{
		Use:   "shade",
		Short: "An accessible colour palette generator",
		Long: `Shade derives light and dark UI palettes from a single seed colour and
audits them against WCAG 2.1 contrast requirements.

Palettes contain an eleven-stop gray scale, an accent ramp and semantic
success, warning, error and info colours.`,
		Version:      version.Short(),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/shade/shade.yaml)")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "enable verbose output")
	flags.BoolVarP(&a.quiet, "quiet", "q", false, "suppress non-error output")
	flags.StringVarP(&a.format, "format", "o", "", "output format (table, json)")
	flags.StringVar(&a.color, "color", "", "colour output (auto, always, never)")

	cmd.SetVersionTemplate(version.String() + "\n")

	cmd.AddCommand(
		newGenerateCmd(a),
		newAuditCmd(a),
		newContrastCmd(a),
		newSuggestCmd(a),
		newConvertCmd(a),
		newHarmonyCmd(a),
		newPresetsCmd(a),
		newConfigCmd(a),
		newVersionCmd(a),
	)

	return cmd
}

func (a *app) init(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("format") {
		cfg.Format = a.format
	}
	if cmd.Flags().Changed("color") {
		cfg.Color = a.color
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	a.cfg = cfg
	a.logger = logging.New(logging.Options{
		Level:   cfg.LogLevel,
		Verbose: a.verbose,
		Quiet:   a.quiet,
		Output:  cmd.ErrOrStderr(),
	})
	a.gen = palette.NewGenerator(palette.NewMemoryCache())
	a.style = newStyler(cmd.OutOrStdout(), cfg.Color)

	a.logger.Debug("configuration loaded",
		"config", a.configPath, "format", cfg.Format, "color", cfg.Color, "target_level", cfg.TargetLevel)

	return nil
}

func (a *app) jsonOutput() bool {
	return a.cfg.Format == config.FormatJSON
}

// parseHex accepts a hex colour with or without the leading '#', since an
// unquoted '#' starts a shell comment.
func parseHex(s string) (string, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	if err := colour.ValidateHex(s); err != nil {
		return "", err
	}
	return colour.NormalizeHex(s), nil
}

// resolveSeed picks the seed from an argument, a preset or the config.
func (a *app) resolveSeed(args []string, preset string) (string, error) {
	switch {
	case len(args) > 0 && preset != "":
		return "", errors.New("a seed argument cannot be combined with --preset")
	case len(args) > 0:
		return parseHex(args[0])
	case preset != "":
		return palette.PresetSeed(preset)
	default:
		return colour.NormalizeHex(a.cfg.Seed), nil
	}
}

// resolveModes expands a mode flag, falling back to the configured mode.
func (a *app) resolveModes(flag string) ([]palette.Mode, error) {
	m := flag
	if m == "" {
		m = a.cfg.Mode
	}
	if m == "both" {
		return []palette.Mode{palette.ModeLight, palette.ModeDark}, nil
	}
	mode, err := palette.ParseMode(m)
	if err != nil {
		return nil, err
	}
	return []palette.Mode{mode}, nil
}

func (a *app) resolveLevel(flag string) (colour.Level, error) {
	if flag == "" {
		flag = a.cfg.TargetLevel
	}
	return colour.ParseTargetLevel(flag)
}
