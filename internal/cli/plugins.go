package cli

import (
	"fmt"
	"maps"
	"slices"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/colormaestro/internal/plugin/manager"
)

func newPluginsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plugins",
		Short: "Manage plugins",
		Long: `Inspect the built-in input and output plugins.

Plugins are enabled unless disabled through COLORMAESTRO_DISABLED_PLUGINS.
Setting COLORMAESTRO_ENABLED_PLUGINS switches to whitelist mode. Entries are
plain names ("png"), qualified names ("output:png") or "all".`,
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List all available plugins",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tbl := NewTable([]string{"S", "TYPE", "PLUGIN", "DESCRIPTION"})

			inputs := a.plugins.AllInputPlugins()
			for _, name := range slices.Sorted(maps.Keys(inputs)) {
				p := inputs[name]
				tbl.AddRow([]string{statusFlag(a.plugins.IsInputEnabled(p)), manager.TypeInput, name, p.Description()})
			}
			outputs := a.plugins.AllOutputPlugins()
			for _, name := range slices.Sorted(maps.Keys(outputs)) {
				p := outputs[name]
				tbl.AddRow([]string{statusFlag(a.plugins.IsOutputEnabled(p)), manager.TypeOutput, name, p.Description()})
			}

			tbl.EnableTerminalAwareWidth(3, 40)

			w := cmd.OutOrStdout()
			fmt.Fprint(w, tbl.Render())
			fmt.Fprintln(w)
			fmt.Fprintln(w, "S = Status: E (enabled), D (disabled)")
			return nil
		},
	})

	return cmd
}

func statusFlag(enabled bool) string {
	if enabled {
		return "E"
	}
	return "D"
}
