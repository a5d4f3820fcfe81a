package manager

import (
	"context"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmylchreest/colormaestro/internal/colour"
	"github.com/jmylchreest/colormaestro/internal/plugin/input"
	"github.com/jmylchreest/colormaestro/internal/plugin/output"
)

// Mock input plugin for testing.
type mockInputPlugin struct {
	name string
}

func (m *mockInputPlugin) Name() string        { return m.name }
func (m *mockInputPlugin) Description() string { return "mock input" }
func (m *mockInputPlugin) Generate(_ context.Context, _ input.GenerateOptions) (colour.RGB, error) {
	return colour.RGB{}, nil
}
func (m *mockInputPlugin) RegisterFlags(_ *cobra.Command) {}
func (m *mockInputPlugin) Validate() error                { return nil }

// Mock output plugin for testing.
type mockOutputPlugin struct {
	name string
}

func (m *mockOutputPlugin) Name() string        { return m.name }
func (m *mockOutputPlugin) Description() string { return "mock output" }
func (m *mockOutputPlugin) Generate(_ *colour.Palette) (map[string][]byte, error) {
	return nil, nil
}
func (m *mockOutputPlugin) DefaultOutputDir() string       { return "." }
func (m *mockOutputPlugin) RegisterFlags(_ *cobra.Command) {}
func (m *mockOutputPlugin) Validate() error                { return nil }

func newMockManager(config Config) *Manager {
	inputReg := input.NewRegistry()
	inputReg.Register(&mockInputPlugin{name: "alpha"})
	inputReg.Register(&mockInputPlugin{name: "beta"})

	outputReg := output.NewRegistry()
	outputReg.Register(&mockOutputPlugin{name: "alpha"})
	outputReg.Register(&mockOutputPlugin{name: "gamma"})

	return NewBuilder().
		WithConfig(config).
		WithCustomRegistries(inputReg, outputReg).
		Build()
}

func TestBuildRegistersBuiltins(t *testing.T) {
	m := NewBuilder().Build()

	assert.Equal(t, []string{"hex", "mood", "random"}, m.ListInputPlugins())
	assert.Equal(t, []string{"css", "html", "json", "png", "svg", "tailwind", "terminal"}, m.ListOutputPlugins())
	assert.Len(t, m.AllOutputPlugins(), 7)
}

func TestBuildWithCustomRegistries(t *testing.T) {
	m := newMockManager(Config{})

	assert.Equal(t, []string{"alpha", "beta"}, m.ListInputPlugins())
	assert.Equal(t, []string{"alpha", "gamma"}, m.ListOutputPlugins())
}

func TestIsEnabled(t *testing.T) {
	tests := []struct {
		name       string
		config     Config
		pluginType string
		plugin     string
		want       bool
	}{
		{name: "enabled by default", pluginType: TypeOutput, plugin: "gamma", want: true},
		{name: "disabled by bare name", config: Config{DisabledPlugins: []string{"gamma"}}, pluginType: TypeOutput, plugin: "gamma"},
		{name: "qualified disable only hits its type", config: Config{DisabledPlugins: []string{"output:alpha"}}, pluginType: TypeInput, plugin: "alpha", want: true},
		{name: "qualified disable", config: Config{DisabledPlugins: []string{"output:alpha"}}, pluginType: TypeOutput, plugin: "alpha"},
		{name: "disable all", config: Config{DisabledPlugins: []string{"all"}, EnabledPlugins: []string{"gamma"}}, pluginType: TypeOutput, plugin: "gamma"},
		{name: "whitelist includes", config: Config{EnabledPlugins: []string{"input:beta"}}, pluginType: TypeInput, plugin: "beta", want: true},
		{name: "whitelist excludes", config: Config{EnabledPlugins: []string{"input:beta"}}, pluginType: TypeInput, plugin: "alpha"},
		{name: "whitelist all", config: Config{EnabledPlugins: []string{"all"}}, pluginType: TypeInput, plugin: "alpha", want: true},
		{name: "disable beats whitelist", config: Config{EnabledPlugins: []string{"beta"}, DisabledPlugins: []string{"beta"}}, pluginType: TypeInput, plugin: "beta"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newMockManager(tt.config)
			assert.Equal(t, tt.want, m.isEnabled(tt.pluginType, tt.plugin))
		})
	}
}

func TestGetPlugins(t *testing.T) {
	m := newMockManager(Config{DisabledPlugins: []string{"gamma"}})

	p, err := m.GetInputPlugin("alpha")
	require.NoError(t, err)
	assert.Equal(t, "alpha", p.Name())
	assert.True(t, m.IsInputEnabled(p))

	_, err = m.GetInputPlugin("missing")
	assert.ErrorContains(t, err, "unknown input plugin")

	_, err = m.GetOutputPlugin("gamma")
	assert.ErrorContains(t, err, "disabled")

	out, err := m.GetOutputPlugin("alpha")
	require.NoError(t, err)
	assert.True(t, m.IsOutputEnabled(out))

	assert.Equal(t, []string{"alpha"}, m.ListOutputPlugins())
	assert.Len(t, m.AllOutputPlugins(), 2)
	assert.Equal(t, []string{"gamma"}, m.GetConfig().DisabledPlugins)
}
