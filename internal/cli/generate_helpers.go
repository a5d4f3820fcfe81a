package cli

import (
	"fmt"
	"io"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/colormaestro/internal/colour"
	"github.com/jmylchreest/colormaestro/internal/plugin/input"
	"github.com/jmylchreest/colormaestro/internal/plugin/output"
)

// seedKeyer is implemented by input plugins that describe their input for input-based seeding.
type seedKeyer interface {
	SeedKey() string
}

// inferInput picks the input plugin when --input is not given.
func inferInput(cmd *cobra.Command, args []string) string {
	switch {
	case len(args) > 0, cmd.Flags().Changed("hex.colour"):
		return "hex"
	case cmd.Flags().Changed("mood.name"):
		return "mood"
	default:
		return "random"
	}
}

// seedKey describes the plugin input for input-based seeding.
func seedKey(plugin input.Plugin, args []string) string {
	if k, ok := plugin.(seedKeyer); ok {
		return k.SeedKey()
	}
	return plugin.Name() + ":" + strings.Join(args, " ")
}

// status prints a progress line to stderr unless --quiet is set.
func (a *app) status(cmd *cobra.Command, format string, args ...any) {
	if a.quiet {
		return
	}
	fmt.Fprintf(cmd.ErrOrStderr(), format, args...)
}

// selectOutputs resolves output plugin names; "all" selects every enabled plugin.
func (a *app) selectOutputs(names []string) ([]output.Plugin, error) {
	if slices.Contains(names, "all") {
		names = a.plugins.ListOutputPlugins()
	}

	var plugins []output.Plugin
	seen := make(map[string]bool)
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true

		plugin, err := a.plugins.GetOutputPlugin(name)
		if err != nil {
			return nil, err
		}
		plugins = append(plugins, plugin)
	}

	if len(plugins) == 0 {
		return nil, fmt.Errorf("no output plugins selected")
	}
	return plugins, nil
}

// runOutputs renders the palette with each selected output plugin.
// Content keyed output.Stdout goes to the command's stdout; everything else is
// written below the plugin's output directory.
func (a *app) runOutputs(cmd *cobra.Command, palette *colour.Palette, names []string, dryRun bool) error {
	plugins, err := a.selectOutputs(names)
	if err != nil {
		return err
	}

	successCount := 0
	for _, plugin := range plugins {
		if err := plugin.Validate(); err != nil {
			a.status(cmd, "⚠ Skipping %s: %v\n", plugin.Name(), err)
			continue
		}

		a.logger.Debug("running output plugin", "plugin", plugin.Name())
		if provider, ok := plugin.(templateProvider); ok {
			provider.Loader().WithLogger(a.logger.Named("templates"))
		}
		files, err := plugin.Generate(palette)
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "✗ %s failed: %v\n", plugin.Name(), err)
			continue
		}

		if err := a.writeOutputs(cmd, plugin, files, dryRun); err != nil {
			return err
		}
		successCount++
	}

	if successCount == 0 {
		return fmt.Errorf("no output plugins succeeded")
	}
	if !dryRun {
		a.status(cmd, "✓ Done! Generated %d output plugin(s)\n", successCount)
	}
	return nil
}

// writeOutputs writes one plugin's files in name order.
func (a *app) writeOutputs(cmd *cobra.Command, plugin output.Plugin, files map[string][]byte, dryRun bool) error {
	outputDir := plugin.DefaultOutputDir()
	for _, filename := range slices.Sorted(maps.Keys(files)) {
		content := files[filename]
		if filename == output.Stdout {
			if _, err := cmd.OutOrStdout().Write(content); err != nil {
				return fmt.Errorf("failed to write %s output: %w", plugin.Name(), err)
			}
			continue
		}

		fullPath := filepath.Join(outputDir, filename)
		if dryRun {
			a.status(cmd, "  Would write: %s (%d bytes)\n", fullPath, len(content))
			continue
		}
		if err := writeFile(fullPath, content); err != nil {
			return fmt.Errorf("failed to write %s: %w", fullPath, err)
		}
		a.status(cmd, "  ├─ %s (%d bytes)\n", fullPath, len(content))
	}
	return nil
}

// writeFile writes content to a file, creating directories as needed.
func writeFile(path string, content []byte) error {
	// Expand ~ to home directory
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get home directory: %w", err)
		}
		path = filepath.Join(home, path[2:])
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	if err := os.WriteFile(path, content, 0o644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}

// writeAccessibilityReport prints text and pairwise contrast tables for the palette.
func writeAccessibilityReport(w io.Writer, palette *colour.Palette) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Accessibility Check Results:")
	fmt.Fprintln(w)

	writeTextContrast(w, palette.Roles())

	pairs := colour.CheckPalette(palette)
	if len(pairs) == 0 {
		return
	}

	fmt.Fprintln(w)
	pairTable := NewTable([]string{"Pair", "Ratio", "AA", "AAA"})
	for _, pair := range pairs {
		pairTable.AddRow([]string{
			colour.RoleName(pair.I) + " / " + colour.RoleName(pair.J),
			formatRatio(pair.Result.Ratio),
			passFail(pair.Result.PassesAA),
			passFail(pair.Result.PassesAAA),
		})
	}
	fmt.Fprint(w, pairTable.Render())
}

// writeTextContrast prints each colour's contrast against white and black text.
func writeTextContrast(w io.Writer, colours []colour.NamedColour) {
	tbl := NewTable([]string{"Role", "Hex", "On White", "AA", "AAA", "On Black", "AA", "AAA", "Text"})
	for _, named := range colours {
		tc := colour.TextContrast(named.RGB)
		tbl.AddRow([]string{
			named.Role,
			named.RGB.Hex(),
			formatRatio(tc.White.Ratio), passFail(tc.White.PassesAA), passFail(tc.White.PassesAAA),
			formatRatio(tc.Black.Ratio), passFail(tc.Black.PassesAA), passFail(tc.Black.PassesAAA),
			textName(tc.Recommended),
		})
	}
	fmt.Fprint(w, tbl.Render())
}

func formatRatio(ratio float64) string {
	return fmt.Sprintf("%.2f:1", ratio)
}

func passFail(ok bool) string {
	if ok {
		return "PASS"
	}
	return "FAIL"
}

func textName(c colour.RGB) string {
	if c == colour.White {
		return "white"
	}
	return "black"
}
