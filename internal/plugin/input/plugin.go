// Package input provides the interface and base types for input plugins.
// An input plugin produces the single base colour a palette is generated from.
package input

import (
	"context"
	"maps"
	"math/rand"
	"slices"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/colormaestro/internal/colour"
	"github.com/jmylchreest/colormaestro/internal/mood"
)

// GenerateOptions holds options passed to input plugins during generation.
type GenerateOptions struct {
	// Args are the positional command-line arguments.
	Args []string

	// Rand is the random source for plugins that sample colours.
	Rand *rand.Rand

	// Moods is the mood table used by mood-driven plugins.
	Moods *mood.Table

	// Logger receives plugin diagnostics.
	Logger hclog.Logger
}

// Plugin represents an input plugin that produces a base colour.
type Plugin interface {
	// Name returns the plugin's name (e.g., "hex", "mood").
	Name() string

	// Description returns a human-readable description of the plugin.
	Description() string

	// Generate produces the base colour from plugin-specific inputs.
	Generate(ctx context.Context, opts GenerateOptions) (colour.RGB, error)

	// RegisterFlags registers plugin-specific flags with cobra command.
	RegisterFlags(cmd *cobra.Command)

	// Validate checks if the plugin has all required inputs configured.
	Validate() error
}

// Registry holds all registered input plugins.
type Registry struct {
	plugins map[string]Plugin
}

// NewRegistry creates a new input plugin registry.
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

// Log returns opts.Logger, or a null logger when unset.
func (opts GenerateOptions) Log() hclog.Logger {
	if opts.Logger == nil {
		return hclog.NewNullLogger()
	}
	return opts.Logger
}
