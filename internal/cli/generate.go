package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/jmylchreest/colormaestro/internal/generator"
	"github.com/jmylchreest/colormaestro/internal/plugin/input"
	"github.com/jmylchreest/colormaestro/internal/plugin/input/shared/seed"
)

// generateOptions holds the generate command flags.
type generateOptions struct {
	input         string
	paletteType   string
	harmony       string
	colors        int
	outputs       []string
	dark          bool
	seed          int64
	seedMode      string
	accessibility bool
	moodsFile     string
	dryRun        bool
}

func newGenerateCmd(a *app) *cobra.Command {
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate [INPUT]",
		Short: "Generate a colour palette from a base colour",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runGenerate(cmd, args, opts)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.input, "input", "i", "", "Input plugin (default: inferred from arguments)")
	f.StringVarP(&opts.paletteType, "type", "t", a.cfg.Type, "Palette type: ui, harmony, mono, accessible")
	f.StringVar(&opts.harmony, "harmony", a.cfg.Harmony, "Harmony type: complementary, analogous, triadic, tetradic")
	f.IntVarP(&opts.colors, "colors", "n", a.cfg.Colors, "Number of colours to generate")
	f.StringSliceVarP(&opts.outputs, "outputs", "o", a.cfg.Outputs, "Output plugins (comma-separated or 'all')")
	f.BoolVar(&opts.dark, "dark", a.cfg.Dark, "Generate dark mode neutrals (ui palettes)")
	f.Int64Var(&opts.seed, "seed", 0, "Seed for random inputs (implies --seed-mode manual)")
	f.StringVar(&opts.seedMode, "seed-mode", a.cfg.SeedMode, "Seed mode: random, manual, input")
	f.BoolVar(&opts.accessibility, "accessibility", false, "Print a WCAG contrast report for the palette")
	f.StringVar(&opts.moodsFile, "moods-file", a.cfg.MoodsFile, "YAML file overriding the built-in mood table")
	f.BoolVar(&opts.dryRun, "dry-run", false, "Preview without writing files")

	for _, plugin := range a.plugins.AllInputPlugins() {
		plugin.RegisterFlags(cmd)
	}
	for _, plugin := range a.plugins.AllOutputPlugins() {
		plugin.RegisterFlags(cmd)
	}

	cmd.Long = a.buildGenerateHelp()
	return cmd
}

// runGenerate executes the generate command.
func (a *app) runGenerate(cmd *cobra.Command, args []string, opts *generateOptions) error {
	cmd.Flags().Visit(func(f *pflag.Flag) {
		a.logger.Debug("flag set", "name", f.Name, "value", f.Value.String())
	})

	req, err := opts.request()
	if err != nil {
		return err
	}

	moods, err := loadMoods(opts.moodsFile)
	if err != nil {
		return err
	}

	inputName := opts.input
	if inputName == "" {
		inputName = inferInput(cmd, args)
	}
	inputPlugin, err := a.plugins.GetInputPlugin(inputName)
	if err != nil {
		return err
	}
	if err := inputPlugin.Validate(); err != nil {
		return fmt.Errorf("input plugin validation failed: %w", err)
	}

	seedValue, err := opts.resolveSeed(cmd, inputPlugin, args)
	if err != nil {
		return err
	}
	a.logger.Debug("resolved seed", "input", inputName, "seed", seedValue)

	base, err := inputPlugin.Generate(cmd.Context(), input.GenerateOptions{
		Args:   args,
		Rand:   seed.NewRand(seedValue),
		Moods:  moods,
		Logger: a.logger.Named("input"),
	})
	if err != nil {
		return fmt.Errorf("failed to generate base colour: %w", err)
	}
	a.status(cmd, "✓ Base colour: %s (input: %s)\n", base.Hex(), inputName)

	result, err := generator.NewEngine(a.logger.Named("generator")).Generate(base, req)
	if err != nil {
		return fmt.Errorf("failed to generate palette: %w", err)
	}
	a.status(cmd, "✓ Generated %s palette (%d colours)\n", result.Type, result.Palette.Len())

	if acc := result.Accessibility; acc != nil && !acc.Compliant() {
		positions := make([]string, len(acc.Fallbacks))
		for i, idx := range acc.Fallbacks {
			positions[i] = fmt.Sprintf("%d", idx)
		}
		a.status(cmd, "⚠ No compliant candidate for position(s) %s; best-effort colours used\n",
			strings.Join(positions, ", "))
	}

	if err := a.runOutputs(cmd, result.Palette, opts.outputs, opts.dryRun); err != nil {
		return err
	}

	if opts.accessibility {
		writeAccessibilityReport(cmd.OutOrStdout(), result.Palette)
	}

	return nil
}

// request builds the generator request from the flags.
func (o *generateOptions) request() (generator.Request, error) {
	paletteType, err := generator.ParseType(o.paletteType)
	if err != nil {
		return generator.Request{}, err
	}
	harmony, err := generator.ParseHarmony(o.harmony)
	if err != nil {
		return generator.Request{}, err
	}

	req := generator.Request{
		Type:    paletteType,
		Harmony: harmony,
		Count:   o.colors,
		Dark:    o.dark,
	}
	return req, req.Validate()
}

// resolveSeed picks the seed for the input plugin's random source.
// An explicit --seed always selects manual mode.
func (o *generateOptions) resolveSeed(cmd *cobra.Command, plugin input.Plugin, args []string) (int64, error) {
	mode, err := seed.ParseMode(o.seedMode)
	if err != nil {
		return 0, err
	}
	cfg := seed.Config{Mode: mode}
	if cmd.Flags().Changed("seed") {
		cfg.Mode = seed.ModeManual
	}
	if cfg.Mode == seed.ModeManual {
		if !cmd.Flags().Changed("seed") {
			return 0, fmt.Errorf("--seed is required with --seed-mode manual")
		}
		cfg.Value = &o.seed
	}
	return seed.Calculate(seedKey(plugin, args), cfg)
}

// buildGenerateHelp dynamically builds the help text with enabled plugins.
func (a *app) buildGenerateHelp() string {
	var b strings.Builder
	b.WriteString(`Generate a colour palette from a base colour and render it with output plugins.

INPUT is a hex colour (#3A86FF). Without INPUT the base colour is drawn at
random, or from a mood profile when --mood.name is given.

Input Plugins:
`)
	writePluginList(&b, a.plugins.ListInputPlugins(), func(name string) string {
		p, _ := a.plugins.GetInputPlugin(name)
		return p.Description()
	})

	b.WriteString("\nOutput Plugins:\n")
	writePluginList(&b, a.plugins.ListOutputPlugins(), func(name string) string {
		p, _ := a.plugins.GetOutputPlugin(name)
		return p.Description()
	})
	b.WriteString(`  all          - Run all enabled output plugins

Examples:
  # UI palette for a brand colour
  colormaestro generate '#3A86FF'

  # Six triadic colours as CSS variables and JSON
  colormaestro generate '#3A86FF' -t harmony --harmony triadic -n 6 -o css,json

  # Reproducible calm palette with a contrast report
  colormaestro generate --mood.name calm --seed 42 --accessibility

  # Accessible palette rendered to an image
  colormaestro generate '#ff006e' -t accessible -o png --png.file palette.png`)

	return b.String()
}

func writePluginList(b *strings.Builder, names []string, describe func(string) string) {
	if len(names) == 0 {
		b.WriteString("  (no enabled plugins)\n")
		return
	}
	for _, name := range names {
		fmt.Fprintf(b, "  %-12s - %s\n", name, describe(name))
	}
}
