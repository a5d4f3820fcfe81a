// Package output provides the interface and base types for output plugins.
package output

import (
	"maps"
	"slices"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/colormaestro/internal/colour"
)

// Stdout is the file name an output plugin returns for content that belongs
// on standard output rather than on disk.
const Stdout = "-"

// Plugin represents an output plugin that renders a palette.
type Plugin interface {
	// Name returns the plugin's name (e.g., "css", "tailwind").
	Name() string

	// Description returns a human-readable description of the plugin.
	Description() string

	// Generate renders the palette.
	// Returns map of filename -> content to support plugins that generate multiple files.
	Generate(palette *colour.Palette) (map[string][]byte, error)

	// RegisterFlags registers plugin-specific flags with cobra command.
	RegisterFlags(cmd *cobra.Command)

	// Validate checks if the plugin configuration is valid.
	Validate() error

	// DefaultOutputDir returns the directory relative file names are written to.
	DefaultOutputDir() string
}

// Registry holds all registered output plugins.
type Registry struct {
	plugins map[string]Plugin
}

// NewRegistry creates a new plugin registry.
func NewRegistry() *Registry {
	return &Registry{
		plugins: make(map[string]Plugin),
	}
}

// Register adds a plugin to the registry.
func (r *Registry) Register(plugin Plugin) {
	r.plugins[plugin.Name()] = plugin
}

// Get retrieves a plugin by name.
func (r *Registry) Get(name string) (Plugin, bool) {
	plugin, ok := r.plugins[name]
	return plugin, ok
}

// List returns all registered plugin names, sorted.
func (r *Registry) List() []string {
	return slices.Sorted(maps.Keys(r.plugins))
}

// All returns all registered plugins (including disabled ones).
func (r *Registry) All() map[string]Plugin {
	// Return a copy to prevent external modification
	return maps.Clone(r.plugins)
}
