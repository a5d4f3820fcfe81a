// Package png provides an output plugin that renders palette swatches as a PNG image.
package png

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/jmylchreest/colormaestro/internal/colour"
)

// Swatch layout, shared with the svg output.
const (
	DefaultWidth  = 800
	DefaultHeight = 400

	SwatchHeight  = 300
	SwatchPadding = 2

	// MinHeight leaves room for the hex and RGB labels below the swatches.
	MinHeight = SwatchHeight + 50
	MinWidth  = 100
)

var (
	BackgroundColour = colour.RGB{R: 240, G: 240, B: 240}
	OutlineColour    = colour.RGB{R: 200, G: 200, B: 200}
)

// SwatchWidth returns the width of each of n swatches laid side by side.
func SwatchWidth(width, n int) (int, error) {
	if n < 1 {
		return 0, fmt.Errorf("palette cannot be empty")
	}
	w := (width - (n+1)*SwatchPadding) / n
	if w < 1 {
		return 0, fmt.Errorf("image width %d is too small for %d colours", width, n)
	}
	return w, nil
}

// SwatchX returns the left edge of swatch i.
func SwatchX(i, swatchWidth int) int {
	return SwatchPadding + i*(swatchWidth+SwatchPadding)
}

// Plugin implements the output.Plugin interface for PNG swatch images.
type Plugin struct {
	file   string
	width  int
	height int
}

// New creates a new PNG output plugin.
func New() *Plugin {
	return &Plugin{
		file:   "palette.png",
		width:  DefaultWidth,
		height: DefaultHeight,
	}
}

// Name returns the plugin name.
func (p *Plugin) Name() string {
	return "png"
}

// Description returns the plugin description.
func (p *Plugin) Description() string {
	return "Render the palette as a PNG image of labelled swatches"
}

// RegisterFlags registers plugin-specific flags with the cobra command.
func (p *Plugin) RegisterFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&p.file, "png.file", "palette.png", "Output image path")
	cmd.Flags().IntVar(&p.width, "png.width", DefaultWidth, "Image width in pixels")
	cmd.Flags().IntVar(&p.height, "png.height", DefaultHeight, "Image height in pixels")
}

// Validate checks if the plugin configuration is valid.
func (p *Plugin) Validate() error {
	if !strings.EqualFold(filepath.Ext(p.file), ".png") {
		return fmt.Errorf("invalid file: %s (must end in .png)", p.file)
	}
	if p.height < MinHeight {
		return fmt.Errorf("invalid height: %d (minimum %d)", p.height, MinHeight)
	}
	if p.width < MinWidth {
		return fmt.Errorf("invalid width: %d (minimum %d)", p.width, MinWidth)
	}
	return nil
}

// DefaultOutputDir returns the default output directory for this plugin.
func (p *Plugin) DefaultOutputDir() string {
	return filepath.Dir(p.file)
}

// Generate renders the palette image.
func (p *Plugin) Generate(palette *colour.Palette) (map[string][]byte, error) {
	if palette == nil || palette.Len() == 0 {
		return nil, fmt.Errorf("palette cannot be empty")
	}

	img, err := Render(palette, p.width, p.height)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode png: %w", err)
	}

	return map[string][]byte{filepath.Base(p.file): buf.Bytes()}, nil
}

// Render draws equal-width swatches side by side on a light grey canvas.
// Each swatch carries its role name in the recommended text colour, with
// the hex and RGB values printed underneath.
func Render(palette *colour.Palette, width, height int) (*image.RGBA, error) {
	swatchWidth, err := SwatchWidth(width, palette.Len())
	if err != nil {
		return nil, err
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(BackgroundColour), image.Point{}, draw.Src)

	for i, named := range palette.Roles() {
		c := named.RGB
		x := SwatchX(i, swatchWidth)
		rect := image.Rect(x, SwatchPadding, x+swatchWidth, SwatchHeight)

		draw.Draw(img, rect, image.NewUniform(OutlineColour), image.Point{}, draw.Src)
		draw.Draw(img, rect.Inset(1), image.NewUniform(c), image.Point{}, draw.Src)

		text := colour.TextContrast(c).Recommended
		drawCentred(img, named.Role, x, swatchWidth, SwatchHeight/2-10, text)
		drawCentred(img, c.Hex(), x, swatchWidth, SwatchHeight+20, colour.Black)
		drawCentred(img, RGBLabel(c), x, swatchWidth, SwatchHeight+40, colour.Black)
	}

	return img, nil
}

// RGBLabel is the decimal caption printed under each swatch.
func RGBLabel(c colour.RGB) string {
	return fmt.Sprintf("RGB: %d, %d, %d", c.R, c.G, c.B)
}

// drawCentred draws s horizontally centred in [x, x+w) with its baseline at y.
func drawCentred(img draw.Image, s string, x, w, y int, c colour.RGB) {
	face := basicfont.Face7x13
	textWidth := font.MeasureString(face, s).Round()

	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.P(x+(w-textWidth)/2, y),
	}
	d.DrawString(s)
}
