// Package colour provides the colour model, colour space conversions and
// WCAG contrast evaluation used by the palette generators.
package colour

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ErrInvalidFormat is returned when a hex colour string is malformed.
var ErrInvalidFormat = errors.New("invalid hex colour")

var hexPattern = regexp.MustCompile(`^#?([0-9A-Fa-f]{3}|[0-9A-Fa-f]{6})$`)

// RGB represents a color in RGB format.
// It is the sole value type passed between generators; equality is structural.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// Well-known reference colours used for text contrast.
var (
	White = RGB{R: 255, G: 255, B: 255}
	Black = RGB{R: 0, G: 0, B: 0}
)

// String returns the RGB color as a string in the format "rgb(r, g, b)".
func (rgb RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", rgb.R, rgb.G, rgb.B)
}

// Hex returns the RGB color as a lowercase hex string (e.g., "#1a2b3c").
func (rgb RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", rgb.R, rgb.G, rgb.B)
}

// RGBA implements color.Color so an RGB can be drawn directly.
func (rgb RGB) RGBA() (r, g, b, a uint32) {
	r = uint32(rgb.R)
	r |= r << 8
	g = uint32(rgb.G)
	g |= g << 8
	b = uint32(rgb.B)
	b |= b << 8
	return r, g, b, 0xffff
}

// Sum returns the sum of the three channels, a cheap brightness proxy.
func (rgb RGB) Sum() int {
	return int(rgb.R) + int(rgb.G) + int(rgb.B)
}

// IsValidHex reports whether s is a 3 or 6 digit hex colour with optional '#'.
func IsValidHex(s string) bool {
	return hexPattern.MatchString(s)
}

// ParseHex parses a 3 or 6 digit hex colour string with an optional leading '#'.
// Shorthand values are expanded by doubling each digit ("#fa0" -> "#ffaa00").
func ParseHex(s string) (RGB, error) {
	if !IsValidHex(s) {
		return RGB{}, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}

	hex := strings.TrimPrefix(s, "#")
	if len(hex) == 3 {
		var b strings.Builder
		for _, c := range hex {
			b.WriteRune(c)
			b.WriteRune(c)
		}
		hex = b.String()
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return RGB{}, fmt.Errorf("%w: %q: %v", ErrInvalidFormat, s, err)
	}

	return RGB{
		R: uint8(v >> 16), // #nosec G115 -- masked to 8 bits
		G: uint8(v >> 8),  // #nosec G115 -- masked to 8 bits
		B: uint8(v),       // #nosec G115 -- masked to 8 bits
	}, nil
}

// Palette is an ordered sequence of colours. Position is meaningful: see RoleName.
type Palette struct {
	Colors []RGB
}

// NewPalette creates a new Palette with the given colors.
func NewPalette(colors []RGB) *Palette {
	return &Palette{
		Colors: colors,
	}
}

// Len returns the number of colors in the palette.
func (p *Palette) Len() int {
	return len(p.Colors)
}

// ToHex converts the palette colors to hex strings.
// Returns a slice of hex color codes (e.g., ["#1a2b3c", "#4d5e6f"]).
func (p *Palette) ToHex() []string {
	hexColors := make([]string, len(p.Colors))
	for i, c := range p.Colors {
		hexColors[i] = c.Hex()
	}
	return hexColors
}

// Get returns the color at the specified index.
// Returns an error if the index is out of bounds.
func (p *Palette) Get(index int) (RGB, error) {
	if index < 0 || index >= len(p.Colors) {
		return RGB{}, fmt.Errorf("index out of bounds: %d (palette has %d colors)", index, len(p.Colors))
	}
	return p.Colors[index], nil
}

// All returns an iterator over all colors in the palette.
func (p *Palette) All() func(func(int, RGB) bool) {
	return func(yield func(int, RGB) bool) {
		for i, c := range p.Colors {
			if !yield(i, c) {
				return
			}
		}
	}
}

// Role names for the leading palette positions.
const (
	RolePrimary   = "primary"
	RoleSecondary = "secondary"
	RoleAccent    = "accent"
)

// RoleName maps a palette index to its role name. Formatters use this
// mapping; generators only rely on ordering.
func RoleName(index int) string {
	switch index {
	case 0:
		return RolePrimary
	case 1:
		return RoleSecondary
	case 2:
		return RoleAccent
	default:
		return fmt.Sprintf("color-%d", index+1)
	}
}

// RoleIndex is the inverse of RoleName. It reports false for names that
// are not role names.
func RoleIndex(name string) (int, bool) {
	switch name {
	case RolePrimary:
		return 0, true
	case RoleSecondary:
		return 1, true
	case RoleAccent:
		return 2, true
	}

	n, ok := strings.CutPrefix(name, "color-")
	if !ok {
		return 0, false
	}
	i, err := strconv.Atoi(n)
	if err != nil || i < 4 {
		return 0, false
	}
	return i - 1, true
}

// ByRole returns the colour holding the named role.
func (p *Palette) ByRole(name string) (RGB, bool) {
	i, ok := RoleIndex(name)
	if !ok || i >= len(p.Colors) {
		return RGB{}, false
	}
	return p.Colors[i], true
}

// NamedColour is a palette entry paired with its role name.
type NamedColour struct {
	Role string
	RGB  RGB
}

// Roles returns every colour of the palette with its role name.
func (p *Palette) Roles() []NamedColour {
	named := make([]NamedColour, len(p.Colors))
	for i, c := range p.Colors {
		named[i] = NamedColour{Role: RoleName(i), RGB: c}
	}
	return named
}

// HSVJSON is the HSV view of a colour in JSON output (degrees and percent).
type HSVJSON struct {
	H float64 `json:"h"`
	S float64 `json:"s"`
	V float64 `json:"v"`
}

// ColorJSON represents a color in JSON output format.
type ColorJSON struct {
	Name string  `json:"name"`
	Hex  string  `json:"hex"`
	RGB  RGB     `json:"rgb"`
	HSV  HSVJSON `json:"hsv"`
}

// PaletteJSON represents the palette in JSON format.
type PaletteJSON struct {
	Count   int         `json:"count"`
	Palette []ColorJSON `json:"palette"`
}

// ToJSON converts the palette to JSON format.
func (p *Palette) ToJSON() ([]byte, error) {
	colors := make([]ColorJSON, len(p.Colors))
	for i, named := range p.Roles() {
		info := Info(named.RGB)
		colors[i] = ColorJSON{
			Name: named.Role,
			Hex:  info.Hex,
			RGB:  named.RGB,
			HSV: HSVJSON{
				H: round2(info.HueDegrees),
				S: round2(info.SaturationPercent),
				V: round2(info.ValuePercent),
			},
		}
	}

	return json.MarshalIndent(PaletteJSON{
		Count:   len(p.Colors),
		Palette: colors,
	}, "", "  ")
}

// String returns a human-readable string representation of the palette.
func (p *Palette) String() string {
	if len(p.Colors) == 0 {
		return "Empty palette"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Palette with %d colors:\n", len(p.Colors))
	for i, c := range p.Colors {
		fmt.Fprintf(&b, "  %2d: %-10s %s (%s)\n", i+1, RoleName(i), c.Hex(), c.String())
	}
	return b.String()
}
