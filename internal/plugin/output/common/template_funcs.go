// Package common provides shared utilities for output plugins.
package common

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/jmylchreest/colormaestro/internal/colour"
)

// TemplateFuncs returns standard template functions for all output plugins.
// The role functions take the *colour.Palette being rendered.
func TemplateFuncs() template.FuncMap {
	return template.FuncMap{
		// Role access.
		"get":   getRoleFunc,
		"has":   hasRoleFunc,
		"roles": rolesFunc,
		"count": countFunc,

		// Format conversion.
		"hex":        hexFunc,
		"hexNoHash":  hexNoHashFunc,
		"rgb":        rgbFunc,
		"rgbDecimal": rgbDecimalFunc,
		"hsl":        hslFunc,

		// Derived colours.
		"textColour": textColourFunc,
		"brightness": brightnessFunc,

		// JavaScript object keys.
		"jsKey": jsKeyFunc,

		// String manipulation (custom wrappers for pipe-friendly argument order).
		"trimPrefix": trimPrefixFunc,
		"replace":    replaceFunc,
		"toLower":    strings.ToLower,
		"toUpper":    strings.ToUpper,
	}
}

// getRoleFunc returns a colour by role name. Returns an error if the palette
// is too short to hold the role.
func getRoleFunc(p *colour.Palette, role string) (colour.RGB, error) {
	c, ok := p.ByRole(role)
	if !ok {
		return colour.RGB{}, fmt.Errorf("role %q not found (palette has %d colors)", role, p.Len())
	}
	return c, nil
}

// hasRoleFunc checks if a role exists in the palette.
func hasRoleFunc(p *colour.Palette, role string) bool {
	_, ok := p.ByRole(role)
	return ok
}

// rolesFunc returns every colour with its role name in palette order.
func rolesFunc(p *colour.Palette) []colour.NamedColour {
	return p.Roles()
}

// countFunc returns the total number of colours in the palette.
func countFunc(p *colour.Palette) int {
	return p.Len()
}

// hexFunc returns colour in #rrggbb format.
func hexFunc(c colour.RGB) string {
	return c.Hex()
}

// hexNoHashFunc returns colour in rrggbb format (no # prefix).
func hexNoHashFunc(c colour.RGB) string {
	return strings.TrimPrefix(c.Hex(), "#")
}

// rgbFunc returns colour in CSS rgb(r, g, b) format.
func rgbFunc(c colour.RGB) string {
	return c.String()
}

// rgbDecimalFunc returns colour in "r, g, b" format, for rgba(var(--x-rgb), a).
func rgbDecimalFunc(c colour.RGB) string {
	return fmt.Sprintf("%d, %d, %d", c.R, c.G, c.B)
}

// hslFunc returns colour in the shadcn/ui "hue saturation% lightness%" format.
func hslFunc(c colour.RGB) string {
	hsl := colour.RGBToHSL(c)
	return fmt.Sprintf("%.1f %.1f%% %.1f%%", hsl.H*360, hsl.S*100, hsl.L*100)
}

// textColourFunc returns the recommended text colour (black or white) on c.
func textColourFunc(c colour.RGB) colour.RGB {
	return colour.TextContrast(c).Recommended
}

// brightnessFunc scales the lightness of c (pipe-friendly argument order).
//
//	{{ get . "primary" | brightness 0.8 | hex }}
func brightnessFunc(factor float64, c colour.RGB) colour.RGB {
	return colour.AdjustBrightness(c, factor)
}

// jsKeyFunc quotes an object key when it is not a plain identifier.
func jsKeyFunc(key string) string {
	if strings.ContainsAny(key, "-. ") {
		return "'" + key + "'"
	}
	return key
}

// trimPrefixFunc removes a prefix from a string (pipe-friendly argument order).
// Unlike strings.TrimPrefix, this takes prefix first so it works in pipes:
//
//	{{ value | trimPrefix "#" }}
func trimPrefixFunc(prefix, s string) string {
	return strings.TrimPrefix(s, prefix)
}

// replaceFunc replaces all occurrences of old with new (pipe-friendly argument order).
//
//	{{ value | replace "-" "_" }}
func replaceFunc(old, new, s string) string {
	return strings.ReplaceAll(s, old, new)
}
