// Package cli provides the command-line interface for colormaestro.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/colormaestro/internal/config"
	"github.com/jmylchreest/colormaestro/internal/mood"
	"github.com/jmylchreest/colormaestro/internal/plugin/manager"
	"github.com/jmylchreest/colormaestro/internal/version"
)

// app holds state shared by all commands of one root command.
type app struct {
	cfg     config.Config
	cfgErr  error
	plugins *manager.Manager
	logger  hclog.Logger

	verbose bool
	quiet   bool
}

// NewRootCmd builds the command tree. Each call creates fresh plugin
// instances, so flag bindings never leak between invocations.
func NewRootCmd() *cobra.Command {
	a := &app{logger: hclog.NewNullLogger()}
	a.cfg, a.cfgErr = config.Load()
	a.plugins = manager.NewBuilder().
		WithConfig(manager.Config{
			DisabledPlugins: a.cfg.DisabledPlugins,
			EnabledPlugins:  a.cfg.EnabledPlugins,
		}).
		Build()

	rootCmd := &cobra.Command{
		Use:   "colormaestro",
		Short: "Generate colour palettes from a single base colour",
		Long: `colormaestro turns one base colour into a structured palette.

The base colour comes from a hex value, a mood or a random draw. Palettes
follow a harmonic rule, vary one hue monochromatically, target WCAG contrast
or form a small UI scheme. Output plugins render the result to the terminal,
JSON, CSS, Tailwind or a PNG swatch image.`,
		Version:      version.Short(),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if a.cfgErr != nil {
				return fmt.Errorf("failed to load configuration: %w", a.cfgErr)
			}
			a.logger = newLogger(cmd.ErrOrStderr(), a.verbose, a.quiet)
			return nil
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&a.quiet, "quiet", "q", false, "suppress non-error output")
	rootCmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	rootCmd.SetVersionTemplate(version.String() + "\n")

	rootCmd.AddCommand(newGenerateCmd(a))
	rootCmd.AddCommand(newContrastCmd(a))
	rootCmd.AddCommand(newMoodsCmd(a))
	rootCmd.AddCommand(newPluginsCmd(a))
	rootCmd.AddCommand(newTemplatesCmd(a))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// Execute runs the root command. This is called by main.main().
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// newLogger builds the command logger writing to w.
func newLogger(w io.Writer, verbose, quiet bool) hclog.Logger {
	level := hclog.Info
	switch {
	case verbose:
		level = hclog.Debug
	case quiet:
		level = hclog.Error
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   "colormaestro",
		Output: w,
		Level:  level,
	})
}

// loadMoods returns the mood table from path, or the built-in table when path is empty.
func loadMoods(path string) (*mood.Table, error) {
	if path == "" {
		return mood.DefaultTable(), nil
	}
	table, err := mood.LoadTable(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load moods file: %w", err)
	}
	return table, nil
}

func newVersionCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including build date, commit hash, and Go version.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !asJSON {
				fmt.Fprintln(cmd.OutOrStdout(), version.String())
				return nil
			}
			data, err := version.JSON()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print version information as JSON")
	return cmd
}
