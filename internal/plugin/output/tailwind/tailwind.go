// Package tailwind provides a Tailwind CSS / shadcn/ui output plugin.
package tailwind

import (
	"bytes"
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"text/template"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/colormaestro/internal/colour"
	"github.com/jmylchreest/colormaestro/internal/plugin/output/common"
	tmplloader "github.com/jmylchreest/colormaestro/internal/plugin/output/template"
)

//go:embed *.tmpl
var templates embed.FS

// Template files.
const (
	configTemplate = "tailwind.config.js.tmpl"
	cssTemplate    = "globals.css.tmpl"
)

// shadeSteps are the Tailwind shade names generated for the primary colour,
// lightest first.
var shadeSteps = []string{"50", "100", "200", "300", "400", "500", "600", "700", "800", "900"}

// Plugin implements the output.Plugin interface for Tailwind CSS.
type Plugin struct {
	format    string // "config" or "css"
	outputDir string
	loader    *tmplloader.Loader
}

// New creates a new Tailwind CSS output plugin.
func New() *Plugin {
	return NewWithFormat("config")
}

// NewWithFormat creates a new Tailwind CSS output plugin with a specific format.
func NewWithFormat(format string) *Plugin {
	return &Plugin{
		format: format,
		loader: tmplloader.New("tailwind", templates),
	}
}

// Name returns the plugin name.
func (p *Plugin) Name() string {
	return "tailwind"
}

// Description returns the plugin description.
func (p *Plugin) Description() string {
	return "Generate a Tailwind CSS config or shadcn/ui theme variables"
}

// Loader returns the template loader, for listing and dumping templates.
func (p *Plugin) Loader() *tmplloader.Loader {
	return p.loader
}

// RegisterFlags registers plugin-specific flags with the cobra command.
func (p *Plugin) RegisterFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&p.format, "tailwind.format", "config", "Output format (config or css)")
	cmd.Flags().StringVar(&p.outputDir, "tailwind.output-dir", "", "Output directory (default: current directory)")
}

// Validate checks if the plugin configuration is valid.
func (p *Plugin) Validate() error {
	if p.format != "css" && p.format != "config" {
		return fmt.Errorf("invalid format: %s (must be 'config' or 'css')", p.format)
	}
	return nil
}

// DefaultOutputDir returns the default output directory for this plugin.
func (p *Plugin) DefaultOutputDir() string {
	if p.outputDir != "" {
		return p.outputDir
	}

	if p.format == "config" {
		return "."
	}

	// For CSS, try to detect if we're in a Next.js project
	if _, err := os.Stat("app"); err == nil {
		return "app"
	}
	if _, err := os.Stat("src"); err == nil {
		return filepath.Join("src", "app")
	}

	return "."
}

// Generate renders the Tailwind configuration from the palette.
func (p *Plugin) Generate(palette *colour.Palette) (map[string][]byte, error) {
	if palette == nil || palette.Len() == 0 {
		return nil, fmt.Errorf("palette cannot be empty")
	}

	if p.format == "css" {
		content, err := p.render(cssTemplate, prepareCSSData(palette))
		if err != nil {
			return nil, err
		}
		return map[string][]byte{"globals.css": content}, nil
	}

	content, err := p.render(configTemplate, prepareConfigData(palette))
	if err != nil {
		return nil, err
	}
	return map[string][]byte{"tailwind.config.js": content}, nil
}

func (p *Plugin) render(name string, data any) ([]byte, error) {
	tmplContent, _, err := p.loader.Load(name)
	if err != nil {
		return nil, err
	}

	tmpl, err := template.New(name).Funcs(common.TemplateFuncs()).Parse(string(tmplContent))
	if err != nil {
		return nil, fmt.Errorf("failed to parse template %s: %w", name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to execute template %s: %w", name, err)
	}

	return buf.Bytes(), nil
}

// Shade is one step of the primary colour scale.
type Shade struct {
	Name   string
	Colour colour.RGB
}

// ConfigData holds data for the config template.
type ConfigData struct {
	Palette *colour.Palette
	Shades  []Shade
}

// CSSTheme holds the surface colours of one colour scheme.
type CSSTheme struct {
	Background colour.RGB
	Foreground colour.RGB
	Border     colour.RGB
}

// CSSData holds data for the CSS template.
type CSSData struct {
	Palette *colour.Palette
	Light   CSSTheme
	Dark    CSSTheme
}

func prepareConfigData(palette *colour.Palette) ConfigData {
	return ConfigData{
		Palette: palette,
		Shades:  PrimaryShades(palette.Colors[0]),
	}
}

func prepareCSSData(palette *colour.Palette) CSSData {
	primary := palette.Colors[0]
	return CSSData{
		Palette: palette,
		Light: CSSTheme{
			Background: colour.White,
			Foreground: withLightness(primary, 0.1),
			Border:     withLightness(primary, 0.9),
		},
		Dark: CSSTheme{
			Background: colour.RGB{R: 18, G: 18, B: 18},
			Foreground: colour.White,
			Border:     withLightness(primary, 0.2),
		},
	}
}

// PrimaryShades builds the 50..900 scale of base. Lightness runs from 0.95
// down in steps of 0.08; light shades are desaturated and dark shades
// slightly saturated for a more natural scale.
func PrimaryShades(base colour.RGB) []Shade {
	hsl := colour.RGBToHSL(base)

	shades := make([]Shade, len(shadeSteps))
	for i, name := range shadeSteps {
		l := colour.Clamp(0.95-float64(i)*0.08, 0.05, 0.95)

		s := hsl.S
		switch {
		case l > 0.8:
			s = max(0.05, hsl.S*0.7)
		case l < 0.3:
			s = min(1.0, hsl.S*1.2)
		}

		shades[i] = Shade{Name: name, Colour: colour.HSLToRGB(colour.HSL{H: hsl.H, S: s, L: l})}
	}
	return shades
}

func withLightness(c colour.RGB, l float64) colour.RGB {
	hsl := colour.RGBToHSL(c)
	hsl.L = l
	return colour.HSLToRGB(hsl)
}
