// Package json provides an output plugin that renders a palette as JSON.
package json

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/colormaestro/internal/colour"
	"github.com/jmylchreest/colormaestro/internal/plugin/output"
)

// Plugin implements the output.Plugin interface for JSON.
type Plugin struct {
	file string
}

// New creates a new JSON output plugin.
func New() *Plugin {
	return &Plugin{}
}

// Name returns the plugin name.
func (p *Plugin) Name() string {
	return "json"
}

// Description returns the plugin description.
func (p *Plugin) Description() string {
	return "Generate JSON with role names, hex, RGB and HSV values"
}

// RegisterFlags registers plugin-specific flags with the cobra command.
func (p *Plugin) RegisterFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&p.file, "json.file", "", "Write JSON to this file (default: stdout)")
}

// Validate checks if the plugin configuration is valid.
func (p *Plugin) Validate() error {
	if p.file != "" && filepath.Ext(p.file) != ".json" {
		return fmt.Errorf("invalid file: %s (must end in .json)", p.file)
	}
	return nil
}

// DefaultOutputDir returns the default output directory for this plugin.
func (p *Plugin) DefaultOutputDir() string {
	if p.file != "" {
		return filepath.Dir(p.file)
	}
	return "."
}

// Generate renders the palette as indented JSON.
func (p *Plugin) Generate(palette *colour.Palette) (map[string][]byte, error) {
	if palette == nil || palette.Len() == 0 {
		return nil, fmt.Errorf("palette cannot be empty")
	}

	data, err := palette.ToJSON()
	if err != nil {
		return nil, fmt.Errorf("failed to marshal palette: %w", err)
	}
	data = append(data, '\n')

	name := output.Stdout
	if p.file != "" {
		name = filepath.Base(p.file)
	}
	return map[string][]byte{name: data}, nil
}
