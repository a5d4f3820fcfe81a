// Package css provides an output plugin that renders a palette as CSS custom properties.
package css

import (
	"bytes"
	"embed"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
	"text/template"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/colormaestro/internal/colour"
	"github.com/jmylchreest/colormaestro/internal/plugin/output"
	"github.com/jmylchreest/colormaestro/internal/plugin/output/common"
	tmplloader "github.com/jmylchreest/colormaestro/internal/plugin/output/template"
)

//go:embed *.tmpl
var templates embed.FS

const variablesTemplate = "variables.css.tmpl"

// darkModeMinColours is the palette size from which a dark scheme override is emitted.
const darkModeMinColours = 5

var prefixPattern = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9-]*$`)

// Plugin implements the output.Plugin interface for CSS variables.
type Plugin struct {
	file   string
	prefix string
	loader *tmplloader.Loader
}

// New creates a new CSS output plugin.
func New() *Plugin {
	return &Plugin{
		prefix: "color",
		loader: tmplloader.New("css", templates),
	}
}

// Name returns the plugin name.
func (p *Plugin) Name() string {
	return "css"
}

// Description returns the plugin description.
func (p *Plugin) Description() string {
	return "Generate CSS custom properties with semantic mappings"
}

// Loader returns the template loader, for listing and dumping templates.
func (p *Plugin) Loader() *tmplloader.Loader {
	return p.loader
}

// RegisterFlags registers plugin-specific flags with the cobra command.
func (p *Plugin) RegisterFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&p.file, "css.file", "", "Write CSS to this file (default: stdout)")
	cmd.Flags().StringVar(&p.prefix, "css.prefix", "color", "Custom property prefix")
}

// Validate checks if the plugin configuration is valid.
func (p *Plugin) Validate() error {
	if !prefixPattern.MatchString(p.prefix) {
		return fmt.Errorf("invalid prefix: %q (letters, digits and '-' only)", p.prefix)
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

// Var is a single custom property and its colour.
type Var struct {
	Name string
	RGB  colour.RGB
}

// Data holds data for the CSS template.
type Data struct {
	Palette  *colour.Palette
	Prefix   string
	Vars     []Var
	DarkMode bool
}

// Generate renders the palette as CSS variables.
func (p *Plugin) Generate(palette *colour.Palette) (map[string][]byte, error) {
	if palette == nil || palette.Len() == 0 {
		return nil, fmt.Errorf("palette cannot be empty")
	}

	tmplContent, _, err := p.loader.Load(variablesTemplate)
	if err != nil {
		return nil, err
	}

	tmpl, err := template.New(variablesTemplate).Funcs(common.TemplateFuncs()).Parse(string(tmplContent))
	if err != nil {
		return nil, fmt.Errorf("failed to parse CSS template: %w", err)
	}

	data := Data{
		Palette:  palette,
		Prefix:   p.prefix,
		Vars:     make([]Var, 0, palette.Len()),
		DarkMode: palette.Len() >= darkModeMinColours,
	}
	for _, named := range palette.Roles() {
		data.Vars = append(data.Vars, Var{Name: VarName(p.prefix, named.Role), RGB: named.RGB})
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to execute CSS template: %w", err)
	}

	name := output.Stdout
	if p.file != "" {
		name = filepath.Base(p.file)
	}
	return map[string][]byte{name: buf.Bytes()}, nil
}

// VarName returns the custom property for a role: "--color-primary",
// and "--color-4" for numbered roles.
func VarName(prefix, role string) string {
	return "--" + prefix + "-" + strings.TrimPrefix(role, "color-")
}
