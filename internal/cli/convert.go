package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/shade/internal/colour"
)

type colourInfo struct {
	Hex       string     `json:"hex"`
	RGB       colour.RGB `json:"rgb"`
	HSL       colour.HSL `json:"hsl"`
	Luminance float64    `json:"luminance"`
	Light     bool       `json:"light"`
	TextColor string     `json:"textColor"`
}

func newConvertCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "convert <hex>",
		Short:   "Show a colour in RGB and HSL with its luminance",
		Example: `  shade convert 3B82F6`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hex, err := parseHex(args[0])
			if err != nil {
				return err
			}

			rgb := colour.HexToRGB(hex)
			info := colourInfo{
				Hex:       hex,
				RGB:       rgb,
				HSL:       colour.RGBToHSL(rgb),
				Luminance: colour.Luminance(rgb),
				Light:     colour.IsLightColor(hex),
				TextColor: colour.TextColorForBackground(hex),
			}

			out := cmd.OutOrStdout()
			if a.jsonOutput() {
				return writeJSON(out, info)
			}

			table := NewTable("Property", "Value")
			table.AddRow("Hex", info.Hex)
			table.AddRow("RGB", info.RGB.String())
			table.AddRow("HSL", info.HSL.String())
			table.AddRow("Luminance", strconv.FormatFloat(info.Luminance, 'f', 4, 64))
			table.AddRow("Light", strconv.FormatBool(info.Light))
			table.AddRow("Text colour", info.TextColor)
			if s := a.style.swatch(hex); s != "" {
				table.AddRow("Swatch", s)
			}
			_, err = table.WriteTo(out)
			return err
		},
	}
}

type harmony struct {
	Name   string   `json:"name"`
	Colors []string `json:"colors"`
}

func harmoniesFor(hex string) []harmony {
	analogous := colour.Analogous(hex)
	triadic := colour.Triadic(hex)
	split := colour.SplitComplementary(hex)
	return []harmony{
		{Name: "complementary", Colors: []string{colour.Complementary(hex)}},
		{Name: "analogous", Colors: analogous[:]},
		{Name: "triadic", Colors: triadic[:]},
		{Name: "split-complementary", Colors: split[:]},
	}
}

func newHarmonyCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "harmony <hex>",
		Short:   "Show complementary, analogous and triadic colours",
		Example: `  shade harmony 3B82F6 -o json`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hex, err := parseHex(args[0])
			if err != nil {
				return err
			}

			hs := harmoniesFor(hex)
			out := cmd.OutOrStdout()
			if a.jsonOutput() {
				return writeJSON(out, struct {
					Base      string    `json:"base"`
					Harmonies []harmony `json:"harmonies"`
				}{hex, hs})
			}

			table := NewTable(a.style.withSwatch("Harmony", "Hex")...)
			table.AddRow(a.style.swatchRow(hex, "base", hex)...)
			for _, h := range hs {
				for i, c := range h.Colors {
					name := h.Name
					if len(h.Colors) > 1 {
						name = fmt.Sprintf("%s %d", h.Name, i+1)
					}
					table.AddRow(a.style.swatchRow(c, name, c)...)
				}
			}
			_, err = table.WriteTo(out)
			return err
		},
	}
}
