// Package random provides an input plugin that draws a vivid random base colour.
package random

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/colormaestro/internal/colour"
	"github.com/jmylchreest/colormaestro/internal/plugin/input"
	"github.com/jmylchreest/colormaestro/internal/plugin/input/shared/seed"
)

// Plugin implements the input.Plugin interface for random base colours.
type Plugin struct{}

// New creates a new random input plugin.
func New() *Plugin {
	return &Plugin{}
}

// Name returns the plugin name.
func (p *Plugin) Name() string {
	return "random"
}

// Description returns the plugin description.
func (p *Plugin) Description() string {
	return "Draw a random vivid base colour (use --seed to reproduce)"
}

// RegisterFlags registers plugin-specific flags with the cobra command.
func (p *Plugin) RegisterFlags(_ *cobra.Command) {}

// Validate checks if the plugin has all required inputs configured.
func (p *Plugin) Validate() error {
	return nil
}

// Generate draws a base colour from opts.Rand.
func (p *Plugin) Generate(_ context.Context, opts input.GenerateOptions) (colour.RGB, error) {
	rng := opts.Rand
	if rng == nil {
		rng = seed.NewRand(seed.GenerateRandomSeed())
	}

	rgb := colour.RandomColor(rng)
	opts.Log().Debug("drew random colour", "hex", rgb.Hex())
	return rgb, nil
}
