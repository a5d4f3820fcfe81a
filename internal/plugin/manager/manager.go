// Package manager provides plugin management with configuration support.
package manager

import (
	"fmt"
	"slices"

	"github.com/jmylchreest/colormaestro/internal/plugin/input"
	"github.com/jmylchreest/colormaestro/internal/plugin/input/hex"
	"github.com/jmylchreest/colormaestro/internal/plugin/input/mood"
	"github.com/jmylchreest/colormaestro/internal/plugin/input/random"
	"github.com/jmylchreest/colormaestro/internal/plugin/output"
	"github.com/jmylchreest/colormaestro/internal/plugin/output/css"
	"github.com/jmylchreest/colormaestro/internal/plugin/output/html"
	"github.com/jmylchreest/colormaestro/internal/plugin/output/json"
	"github.com/jmylchreest/colormaestro/internal/plugin/output/png"
	"github.com/jmylchreest/colormaestro/internal/plugin/output/svg"
	"github.com/jmylchreest/colormaestro/internal/plugin/output/tailwind"
	"github.com/jmylchreest/colormaestro/internal/plugin/output/terminal"
)

// Plugin types used in qualified names ("output:png").
const (
	TypeInput  = "input"
	TypeOutput = "output"
)

// Config holds plugin configuration.
type Config struct {
	// DisabledPlugins is a list of plugin names to disable.
	// Entries are bare ("png") or qualified ("output:png"); "all" disables everything.
	DisabledPlugins []string

	// EnabledPlugins is a list of plugin names to explicitly enable.
	// If set, only these plugins are enabled (whitelist mode).
	EnabledPlugins []string
}

// Builder provides a fluent interface for constructing a Manager with configuration.
type Builder struct {
	config         Config
	inputRegistry  *input.Registry
	outputRegistry *output.Registry
	custom         bool
}

// NewBuilder creates a new Manager builder with default settings.
func NewBuilder() *Builder {
	return &Builder{
		inputRegistry:  input.NewRegistry(),
		outputRegistry: output.NewRegistry(),
	}
}

// WithConfig sets the configuration for the manager.
func (b *Builder) WithConfig(config Config) *Builder {
	b.config = config
	return b
}

// WithCustomRegistries allows providing custom plugin registries (useful for testing).
// Built-in plugins are not registered into custom registries.
func (b *Builder) WithCustomRegistries(inputReg *input.Registry, outputReg *output.Registry) *Builder {
	b.inputRegistry = inputReg
	b.outputRegistry = outputReg
	b.custom = true
	return b
}

// Build constructs the Manager with the configured settings.
func (b *Builder) Build() *Manager {
	m := &Manager{
		config:         b.config,
		inputRegistry:  b.inputRegistry,
		outputRegistry: b.outputRegistry,
	}

	if !b.custom {
		m.registerBuiltinPlugins()
	}

	return m
}

// Manager manages plugin enable/disable state and owns plugin registries.
type Manager struct {
	config         Config
	inputRegistry  *input.Registry
	outputRegistry *output.Registry
}

// registerBuiltinPlugins registers all built-in plugins.
func (m *Manager) registerBuiltinPlugins() {
	// Register input plugins.
	m.inputRegistry.Register(hex.New())
	m.inputRegistry.Register(mood.New())
	m.inputRegistry.Register(random.New())

	// Register output plugins.
	m.outputRegistry.Register(terminal.New())
	m.outputRegistry.Register(json.New())
	m.outputRegistry.Register(css.New())
	m.outputRegistry.Register(tailwind.New())
	m.outputRegistry.Register(png.New())
	m.outputRegistry.Register(svg.New())
	m.outputRegistry.Register(html.New())
}

// InputRegistry returns the input plugin registry.
func (m *Manager) InputRegistry() *input.Registry {
	return m.inputRegistry
}

// OutputRegistry returns the output plugin registry.
func (m *Manager) OutputRegistry() *output.Registry {
	return m.outputRegistry
}

// GetInputPlugin returns an enabled input plugin by name.
func (m *Manager) GetInputPlugin(name string) (input.Plugin, error) {
	plugin, ok := m.inputRegistry.Get(name)
	if !ok {
		return nil, fmt.Errorf("unknown input plugin: %s (available: %v)", name, m.ListInputPlugins())
	}
	if !m.isEnabled(TypeInput, name) {
		return nil, fmt.Errorf("input plugin %s is disabled", name)
	}
	return plugin, nil
}

// GetOutputPlugin returns an enabled output plugin by name.
func (m *Manager) GetOutputPlugin(name string) (output.Plugin, error) {
	plugin, ok := m.outputRegistry.Get(name)
	if !ok {
		return nil, fmt.Errorf("unknown output plugin: %s (available: %v)", name, m.ListOutputPlugins())
	}
	if !m.isEnabled(TypeOutput, name) {
		return nil, fmt.Errorf("output plugin %s is disabled", name)
	}
	return plugin, nil
}

// IsInputEnabled reports whether an input plugin is enabled.
func (m *Manager) IsInputEnabled(plugin input.Plugin) bool {
	return m.isEnabled(TypeInput, plugin.Name())
}

// IsOutputEnabled reports whether an output plugin is enabled.
func (m *Manager) IsOutputEnabled(plugin output.Plugin) bool {
	return m.isEnabled(TypeOutput, plugin.Name())
}

// isEnabled checks if a plugin is enabled based on configuration.
// Built-in plugins are enabled unless disabled or left out of a whitelist.
func (m *Manager) isEnabled(pluginType, name string) bool {
	fullName := pluginType + ":" + name
	matches := func(entry string) bool {
		return entry == fullName || entry == name
	}

	// Check if "all" is explicitly disabled (takes precedence over everything).
	if slices.Contains(m.config.DisabledPlugins, "all") {
		return false
	}

	// Check if explicitly disabled.
	if slices.ContainsFunc(m.config.DisabledPlugins, matches) {
		return false
	}

	if len(m.config.EnabledPlugins) == 0 || slices.Contains(m.config.EnabledPlugins, "all") {
		return true
	}

	// Whitelist mode.
	return slices.ContainsFunc(m.config.EnabledPlugins, matches)
}

// ListInputPlugins returns the sorted names of enabled input plugins.
func (m *Manager) ListInputPlugins() []string {
	var names []string
	for _, name := range m.inputRegistry.List() {
		if m.isEnabled(TypeInput, name) {
			names = append(names, name)
		}
	}
	return names
}

// ListOutputPlugins returns the sorted names of enabled output plugins.
func (m *Manager) ListOutputPlugins() []string {
	var names []string
	for _, name := range m.outputRegistry.List() {
		if m.isEnabled(TypeOutput, name) {
			names = append(names, name)
		}
	}
	return names
}

// AllInputPlugins returns all registered input plugins (including disabled ones).
func (m *Manager) AllInputPlugins() map[string]input.Plugin {
	return m.inputRegistry.All()
}

// AllOutputPlugins returns all registered output plugins (including disabled ones).
func (m *Manager) AllOutputPlugins() map[string]output.Plugin {
	return m.outputRegistry.All()
}

// GetConfig returns the current configuration.
func (m *Manager) GetConfig() Config {
	return m.config
}
