// Package terminal provides an output plugin that renders palette swatches in the terminal.
package terminal

import (
	"bytes"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/jmylchreest/colormaestro/internal/colour"
	"github.com/jmylchreest/colormaestro/internal/plugin/output"
)

// Colour modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

const (
	swatchWide   = "██████████"
	swatchNarrow = "████"

	// narrowWidth is the terminal width below which narrow swatches are used.
	narrowWidth = 50
)

// Plugin implements the output.Plugin interface for terminal previews.
type Plugin struct {
	colorMode string
	demo      bool

	// fd is the file descriptor probed for colour support and width.
	fd int
}

// New creates a new terminal output plugin.
func New() *Plugin {
	return &Plugin{
		colorMode: ColorAuto,
		fd:        int(os.Stdout.Fd()), // #nosec G115 -- file descriptors fit in int
	}
}

// Name returns the plugin name.
func (p *Plugin) Name() string {
	return "terminal"
}

// Description returns the plugin description.
func (p *Plugin) Description() string {
	return "Preview the palette as coloured swatches in the terminal"
}

// RegisterFlags registers plugin-specific flags with the cobra command.
func (p *Plugin) RegisterFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&p.colorMode, "terminal.color", ColorAuto, "Colour output (auto, always, never)")
	cmd.Flags().BoolVar(&p.demo, "terminal.demo", false, "Show sample UI components using the palette")
}

// Validate checks if the plugin configuration is valid.
func (p *Plugin) Validate() error {
	if !slices.Contains([]string{ColorAuto, ColorAlways, ColorNever}, p.colorMode) {
		return fmt.Errorf("invalid colour mode: %s (must be auto, always or never)", p.colorMode)
	}
	return nil
}

// DefaultOutputDir returns the default output directory for this plugin.
// Terminal output goes to stdout; the directory is unused.
func (p *Plugin) DefaultOutputDir() string {
	return "."
}

// SetColorMode sets the colour mode, as --terminal.color would.
func (p *Plugin) SetColorMode(mode string) {
	p.colorMode = mode
}

// SetDemo enables the UI component samples.
func (p *Plugin) SetDemo(demo bool) {
	p.demo = demo
}

// Generate renders the palette preview.
func (p *Plugin) Generate(palette *colour.Palette) (map[string][]byte, error) {
	if palette == nil || palette.Len() == 0 {
		return nil, fmt.Errorf("palette cannot be empty")
	}

	var buf bytes.Buffer
	r := lipgloss.NewRenderer(&buf)
	r.SetColorProfile(p.profile())

	swatch := swatchWide
	if width, _, err := term.GetSize(p.fd); err == nil && width < narrowWidth {
		swatch = swatchNarrow
	}

	fmt.Fprint(&buf, "\nColor Palette:\n\n")
	for _, named := range palette.Roles() {
		c := named.RGB
		block := r.NewStyle().Foreground(lipgloss.Color(c.Hex())).Render(swatch)
		fmt.Fprintf(&buf, "%s  %s  RGB: %d, %d, %d  %s\n", block, c.Hex(), c.R, c.G, c.B, named.Role)
	}

	if p.demo {
		p.renderDemo(&buf, r, palette)
	}

	return map[string][]byte{output.Stdout: buf.Bytes()}, nil
}

// renderDemo draws a button in the primary colour and a strip of all colours.
func (p *Plugin) renderDemo(buf *bytes.Buffer, r *lipgloss.Renderer, palette *colour.Palette) {
	primary := palette.Colors[0]
	text := colour.TextContrast(primary).Recommended

	button := r.NewStyle().
		Background(lipgloss.Color(primary.Hex())).
		Foreground(lipgloss.Color(text.Hex())).
		Padding(0, 2).
		Render("BUTTON")

	fmt.Fprint(buf, "\nUI Component Samples:\n\n")
	fmt.Fprintf(buf, "Button:\n%s\n", button)

	if palette.Len() < 3 {
		return
	}

	var strip strings.Builder
	for _, c := range palette.Colors {
		strip.WriteString(r.NewStyle().Background(lipgloss.Color(c.Hex())).Render("    "))
	}
	fmt.Fprintf(buf, "\nColor blocks:\n%s\n", strip.String())
}

// profile resolves the colour mode to a termenv profile.
func (p *Plugin) profile() termenv.Profile {
	switch p.colorMode {
	case ColorAlways:
		return termenv.TrueColor
	case ColorNever:
		return termenv.Ascii
	}

	if !term.IsTerminal(p.fd) {
		return termenv.Ascii
	}
	return termenv.EnvColorProfile()
}
