// Package svg provides an output plugin that renders palette swatches as an SVG image.
// It uses the same layout as the png output.
package svg

import (
	"bytes"
	"embed"
	"fmt"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/colormaestro/internal/colour"
	"github.com/jmylchreest/colormaestro/internal/plugin/output/common"
	"github.com/jmylchreest/colormaestro/internal/plugin/output/png"
	tmplloader "github.com/jmylchreest/colormaestro/internal/plugin/output/template"
)

//go:embed *.tmpl
var templates embed.FS

const paletteTemplate = "palette.svg.tmpl"

// Plugin implements the output.Plugin interface for SVG swatch images.
type Plugin struct {
	file   string
	width  int
	height int
	loader *tmplloader.Loader
}

// New creates a new SVG output plugin.
func New() *Plugin {
	return &Plugin{
		file:   "palette.svg",
		width:  png.DefaultWidth,
		height: png.DefaultHeight,
		loader: tmplloader.New("svg", templates),
	}
}

// Name returns the plugin name.
func (p *Plugin) Name() string {
	return "svg"
}

// Description returns the plugin description.
func (p *Plugin) Description() string {
	return "Render the palette as an SVG image of labelled swatches"
}

// Loader returns the template loader, for listing and dumping templates.
func (p *Plugin) Loader() *tmplloader.Loader {
	return p.loader
}

// RegisterFlags registers plugin-specific flags with the cobra command.
func (p *Plugin) RegisterFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&p.file, "svg.file", "palette.svg", "Output image path")
	cmd.Flags().IntVar(&p.width, "svg.width", png.DefaultWidth, "Image width")
	cmd.Flags().IntVar(&p.height, "svg.height", png.DefaultHeight, "Image height")
}

// Validate checks if the plugin configuration is valid.
func (p *Plugin) Validate() error {
	if !strings.EqualFold(filepath.Ext(p.file), ".svg") {
		return fmt.Errorf("invalid file: %s (must end in .svg)", p.file)
	}
	if p.height < png.MinHeight {
		return fmt.Errorf("invalid height: %d (minimum %d)", p.height, png.MinHeight)
	}
	if p.width < png.MinWidth {
		return fmt.Errorf("invalid width: %d (minimum %d)", p.width, png.MinWidth)
	}
	return nil
}

// DefaultOutputDir returns the default output directory for this plugin.
func (p *Plugin) DefaultOutputDir() string {
	return filepath.Dir(p.file)
}

// Swatch is one palette entry positioned on the canvas.
type Swatch struct {
	Role    string
	RGB     colour.RGB
	Label   string
	X       int
	Width   int
	CentreX float64
}

// Data holds data for the SVG template.
type Data struct {
	Width        int
	Height       int
	Padding      int
	SwatchHeight int
	RoleY        int
	HexY         int
	RGBY         int
	Background   colour.RGB
	Outline      colour.RGB
	Swatches     []Swatch
}

// Generate renders the palette image.
func (p *Plugin) Generate(palette *colour.Palette) (map[string][]byte, error) {
	if palette == nil || palette.Len() == 0 {
		return nil, fmt.Errorf("palette cannot be empty")
	}

	data, err := layout(palette, p.width, p.height)
	if err != nil {
		return nil, err
	}

	tmplContent, _, err := p.loader.Load(paletteTemplate)
	if err != nil {
		return nil, err
	}
	tmpl, err := template.New(paletteTemplate).Funcs(common.TemplateFuncs()).Parse(string(tmplContent))
	if err != nil {
		return nil, fmt.Errorf("failed to parse SVG template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to execute SVG template: %w", err)
	}

	return map[string][]byte{filepath.Base(p.file): buf.Bytes()}, nil
}

// layout positions the swatches exactly as png.Render draws them.
func layout(palette *colour.Palette, width, height int) (Data, error) {
	swatchWidth, err := png.SwatchWidth(width, palette.Len())
	if err != nil {
		return Data{}, err
	}

	data := Data{
		Width:        width,
		Height:       height,
		Padding:      png.SwatchPadding,
		SwatchHeight: png.SwatchHeight - png.SwatchPadding,
		RoleY:        png.SwatchHeight/2 - 10,
		HexY:         png.SwatchHeight + 20,
		RGBY:         png.SwatchHeight + 40,
		Background:   png.BackgroundColour,
		Outline:      png.OutlineColour,
		Swatches:     make([]Swatch, 0, palette.Len()),
	}
	for i, named := range palette.Roles() {
		x := png.SwatchX(i, swatchWidth)
		data.Swatches = append(data.Swatches, Swatch{
			Role:    named.Role,
			RGB:     named.RGB,
			Label:   png.RGBLabel(named.RGB),
			X:       x,
			Width:   swatchWidth,
			CentreX: float64(x) + float64(swatchWidth)/2,
		})
	}
	return data, nil
}
