// Package hex provides an input plugin that takes the base colour as a hex string.
package hex

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/colormaestro/internal/colour"
	"github.com/jmylchreest/colormaestro/internal/plugin/input"
)

// ErrNoColour is returned when neither the flag nor a positional argument supplies a colour.
var ErrNoColour = errors.New("no base colour given")

// Plugin implements the input.Plugin interface for hex colour strings.
type Plugin struct {
	colour string
}

// New creates a new hex input plugin.
func New() *Plugin {
	return &Plugin{}
}

// Name returns the plugin name.
func (p *Plugin) Name() string {
	return "hex"
}

// Description returns the plugin description.
func (p *Plugin) Description() string {
	return "Use a hex colour (e.g. #3a86ff or f80) as the base colour"
}

// RegisterFlags registers plugin-specific flags with the cobra command.
func (p *Plugin) RegisterFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&p.colour, "hex.colour", "", "Base colour as hex (alternative to the positional argument)")
}

// Validate checks if the plugin has all required inputs configured.
func (p *Plugin) Validate() error {
	if p.colour != "" && !colour.IsValidHex(p.colour) {
		return fmt.Errorf("%w: %q", colour.ErrInvalidFormat, p.colour)
	}
	return nil
}

// SetColour sets the hex string, as --hex.colour would.
func (p *Plugin) SetColour(s string) {
	p.colour = s
}

// Generate parses the configured colour, falling back to the first positional argument.
func (p *Plugin) Generate(_ context.Context, opts input.GenerateOptions) (colour.RGB, error) {
	value := p.colour
	if value == "" && len(opts.Args) > 0 {
		value = opts.Args[0]
	}
	if value == "" {
		return colour.RGB{}, ErrNoColour
	}

	rgb, err := colour.ParseHex(value)
	if err != nil {
		return colour.RGB{}, err
	}

	opts.Log().Debug("parsed base colour", "input", value, "hex", rgb.Hex())
	return rgb, nil
}
