// Package html provides an output plugin that renders a palette as an HTML preview page.
package html

import (
	"bytes"
	"embed"
	"fmt"
	htmltemplate "html/template"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/colormaestro/internal/colour"
	"github.com/jmylchreest/colormaestro/internal/plugin/output/common"
	tmplloader "github.com/jmylchreest/colormaestro/internal/plugin/output/template"
)

//go:embed *.tmpl
var templates embed.FS

const previewTemplate = "preview.html.tmpl"

// Plugin implements the output.Plugin interface for HTML previews.
type Plugin struct {
	file   string
	title  string
	demo   bool
	loader *tmplloader.Loader
}

// New creates a new HTML output plugin.
func New() *Plugin {
	return &Plugin{
		file:   "palette.html",
		title:  "Color Palette",
		loader: tmplloader.New("html", templates),
	}
}

// Name returns the plugin name.
func (p *Plugin) Name() string {
	return "html"
}

// Description returns the plugin description.
func (p *Plugin) Description() string {
	return "Generate an HTML preview page with optional UI component samples"
}

// Loader returns the template loader, for listing and dumping templates.
func (p *Plugin) Loader() *tmplloader.Loader {
	return p.loader
}

// RegisterFlags registers plugin-specific flags with the cobra command.
func (p *Plugin) RegisterFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&p.file, "html.file", "palette.html", "Output page path")
	cmd.Flags().StringVar(&p.title, "html.title", "Color Palette", "Page title")
	cmd.Flags().BoolVar(&p.demo, "html.demo", false, "Include sample UI components using the palette")
}

// SetDemo enables the UI component samples.
func (p *Plugin) SetDemo(demo bool) {
	p.demo = demo
}

// Validate checks if the plugin configuration is valid.
func (p *Plugin) Validate() error {
	switch strings.ToLower(filepath.Ext(p.file)) {
	case ".html", ".htm":
		return nil
	default:
		return fmt.Errorf("invalid file: %s (must end in .html)", p.file)
	}
}

// DefaultOutputDir returns the default output directory for this plugin.
func (p *Plugin) DefaultOutputDir() string {
	return filepath.Dir(p.file)
}

// Swatch is one palette entry on the page.
type Swatch struct {
	Name string
	RGB  colour.RGB
}

// Data holds data for the HTML template.
type Data struct {
	Title    string
	Palette  *colour.Palette
	Swatches []Swatch
	Demo     bool
}

// Generate renders the preview page.
func (p *Plugin) Generate(palette *colour.Palette) (map[string][]byte, error) {
	if palette == nil || palette.Len() == 0 {
		return nil, fmt.Errorf("palette cannot be empty")
	}

	tmplContent, _, err := p.loader.Load(previewTemplate)
	if err != nil {
		return nil, err
	}

	funcs := htmltemplate.FuncMap(common.TemplateFuncs())
	tmpl, err := htmltemplate.New(previewTemplate).Funcs(funcs).Parse(string(tmplContent))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML template: %w", err)
	}

	data := Data{
		Title:    p.title,
		Palette:  palette,
		Swatches: make([]Swatch, 0, palette.Len()),
		Demo:     p.demo,
	}
	for _, named := range palette.Roles() {
		data.Swatches = append(data.Swatches, Swatch{Name: displayName(named.Role), RGB: named.RGB})
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to execute HTML template: %w", err)
	}

	return map[string][]byte{filepath.Base(p.file): buf.Bytes()}, nil
}

// displayName turns a role into a swatch caption: "primary" -> "Primary",
// "color-4" -> "Color 4".
func displayName(role string) string {
	name := strings.ReplaceAll(role, "-", " ")
	return strings.ToUpper(name[:1]) + name[1:]
}
