package cli

import (
	"errors"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/colormaestro/internal/plugin/output"
	tmplloader "github.com/jmylchreest/colormaestro/internal/plugin/output/template"
)

// templateProvider is implemented by output plugins that render embedded templates.
type templateProvider interface {
	Loader() *tmplloader.Loader
}

type templateOptions struct {
	plugins  []string
	force    bool
	location string
}

func newTemplatesCmd(a *app) *cobra.Command {
	opts := &templateOptions{}

	cmd := &cobra.Command{
		Use:   "templates",
		Short: "Manage output plugin templates",
		Long: `Manage output plugin templates including listing and dumping embedded templates.

Templates can be customised by extracting them to
~/.config/colormaestro/templates/{plugin-name}/ and modifying them. Custom
templates are used instead of the embedded ones.

Examples:
  colormaestro templates list
  colormaestro templates dump -o css,tailwind
  colormaestro templates dump -o css --force`,
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List available plugin templates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runTemplatesList(cmd, opts)
		},
	}
	listCmd.Flags().StringSliceVarP(&opts.plugins, "output-plugins", "o", nil, "comma-separated list of output plugins (default: all)")

	dumpCmd := &cobra.Command{
		Use:   "dump",
		Short: "Dump embedded templates to files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runTemplatesDump(cmd, opts)
		},
	}
	dumpCmd.Flags().StringSliceVarP(&opts.plugins, "output-plugins", "o", nil, "comma-separated list of output plugins (default: all)")
	dumpCmd.Flags().BoolVarP(&opts.force, "force", "f", false, "overwrite existing custom templates")
	dumpCmd.Flags().StringVarP(&opts.location, "location", "l", "", "custom location to dump templates (default: ~/.config/colormaestro/templates)")

	cmd.AddCommand(listCmd, dumpCmd)
	return cmd
}

// templateLoaders returns the loaders of the selected template-backed plugins, by plugin name.
func (a *app) templateLoaders(names []string) (map[string]*tmplloader.Loader, error) {
	plugins := a.plugins.AllOutputPlugins()
	if len(names) > 0 {
		filtered := make(map[string]output.Plugin, len(names))
		for _, name := range names {
			plugin, ok := plugins[name]
			if !ok {
				return nil, fmt.Errorf("plugin %q not found", name)
			}
			filtered[name] = plugin
		}
		plugins = filtered
	}

	loaders := make(map[string]*tmplloader.Loader)
	for name, plugin := range plugins {
		if provider, ok := plugin.(templateProvider); ok {
			loaders[name] = provider.Loader().WithLogger(a.logger.Named("templates"))
		}
	}
	return loaders, nil
}

func (a *app) runTemplatesList(cmd *cobra.Command, opts *templateOptions) error {
	loaders, err := a.templateLoaders(opts.plugins)
	if err != nil {
		return err
	}
	w := cmd.OutOrStdout()
	if len(loaders) == 0 {
		fmt.Fprintln(w, "No template-backed plugins found")
		return nil
	}

	fmt.Fprintln(w, "Available plugin templates:")
	fmt.Fprintln(w)

	hasCustomTemplates := false
	for _, name := range slices.Sorted(maps.Keys(loaders)) {
		loader := loaders[name]
		templates, err := loader.ListEmbeddedTemplates()
		if err != nil {
			return fmt.Errorf("failed to list templates for %s: %w", name, err)
		}

		fmt.Fprintf(w, "Plugin: %s\n", name)
		fmt.Fprintf(w, "  Custom template directory: %s\n", loader.CustomDir())
		fmt.Fprintln(w, "  Templates:")
		for _, tmpl := range templates {
			marker := ""
			if loader.HasCustomTemplate(tmpl) {
				marker = "*"
				hasCustomTemplates = true
			}
			fmt.Fprintf(w, "    - %s%s\n", tmpl, marker)
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintln(w, "To customise a template, use: colormaestro templates dump -o <plugin-name>")
	if hasCustomTemplates {
		fmt.Fprintln(w, "Templates with active overrides are shown with an asterisk (*).")
	}
	return nil
}

func (a *app) runTemplatesDump(cmd *cobra.Command, opts *templateOptions) error {
	loaders, err := a.templateLoaders(opts.plugins)
	if err != nil {
		return err
	}
	if len(loaders) == 0 {
		return fmt.Errorf("no template-backed plugins found")
	}

	customBase := opts.location
	if strings.HasPrefix(customBase, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get home directory: %w", err)
		}
		customBase = filepath.Join(home, customBase[2:])
	}

	w := cmd.OutOrStdout()
	totalDumped := 0
	for _, name := range slices.Sorted(maps.Keys(loaders)) {
		loader := loaders[name]
		if customBase != "" {
			loader.WithCustomBase(customBase)
		}

		fmt.Fprintf(w, "Dumping templates for %s...\n", name)
		dumped, err := loader.DumpAllTemplates(opts.force)
		for _, path := range dumped {
			fmt.Fprintf(w, "  ├─ %s\n", path)
		}
		totalDumped += len(dumped)

		if err == nil {
			continue
		}
		if !errors.Is(err, tmplloader.ErrTemplateExists) {
			return fmt.Errorf("failed to dump templates for %s: %w", name, err)
		}
		for _, line := range strings.Split(err.Error(), "\n") {
			fmt.Fprintf(w, "  ⊘ %s\n", line)
		}
	}

	if totalDumped == 0 {
		fmt.Fprintln(w, "No templates were dumped. Custom templates may already exist.")
		fmt.Fprintln(w, "Use --force to overwrite existing templates.")
		return nil
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "✓ Dumped %d template(s)\n", totalDumped)
	return nil
}
