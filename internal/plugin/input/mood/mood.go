// Package mood provides an input plugin that samples the base colour from a mood profile.
package mood

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/colormaestro/internal/colour"
	moods "github.com/jmylchreest/colormaestro/internal/mood"
	"github.com/jmylchreest/colormaestro/internal/plugin/input"
	"github.com/jmylchreest/colormaestro/internal/plugin/input/shared/seed"
)

// Plugin implements the input.Plugin interface for mood-driven base colours.
type Plugin struct {
	name string
}

// New creates a new mood input plugin.
func New() *Plugin {
	return &Plugin{}
}

// Name returns the plugin name.
func (p *Plugin) Name() string {
	return "mood"
}

// Description returns the plugin description.
func (p *Plugin) Description() string {
	return "Sample a base colour from a named mood (professional, calm, ...)"
}

// RegisterFlags registers plugin-specific flags with the cobra command.
func (p *Plugin) RegisterFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&p.name, "mood.name", "", "Mood to sample the base colour from")
}

// Validate checks if the plugin has all required inputs configured.
func (p *Plugin) Validate() error {
	if p.name == "" {
		return fmt.Errorf("--mood.name is required")
	}
	return nil
}

// SetName sets the mood name, as --mood.name would.
func (p *Plugin) SetName(name string) {
	p.name = name
}

// SeedKey describes the input for input-derived seeds.
func (p *Plugin) SeedKey() string {
	return "mood:" + p.name
}

// Generate samples a base colour from the configured mood.
// The built-in table is used when opts.Moods is nil.
func (p *Plugin) Generate(_ context.Context, opts input.GenerateOptions) (colour.RGB, error) {
	if err := p.Validate(); err != nil {
		return colour.RGB{}, err
	}

	table := opts.Moods
	if table == nil {
		table = moods.DefaultTable()
	}
	rng := opts.Rand
	if rng == nil {
		rng = seed.NewRand(seed.GenerateRandomSeed())
	}

	rgb, err := moods.NewSampler(table, rng).GenerateBaseColor(p.name)
	if err != nil {
		return colour.RGB{}, err
	}

	opts.Log().Debug("sampled mood colour", "mood", p.name, "hex", rgb.Hex())
	return rgb, nil
}
