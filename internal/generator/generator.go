// Package generator turns a base colour into an ordered palette following a
// structural rule: colour harmony, monochromatic variation, WCAG accessibility
// or a UI role layout.
//
// Every generator is a pure function of its inputs and is safe for concurrent use.
package generator

import (
	"errors"
	"fmt"
	"slices"

	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/colormaestro/internal/colour"
)

var (
	// ErrInvalidCount is returned when fewer than one colour is requested.
	ErrInvalidCount = errors.New("invalid colour count")

	// ErrUnsupportedHarmony is returned for an unrecognised harmony type.
	ErrUnsupportedHarmony = errors.New("unsupported harmony")

	// ErrUnsupportedType is returned for an unrecognised palette type.
	ErrUnsupportedType = errors.New("unsupported palette type")
)

// Type selects the generator used to build a palette.
type Type string

const (
	// TypeUI builds primary/secondary/accent plus neutrals.
	TypeUI Type = "ui"
	// TypeHarmony builds a palette from a colour wheel relationship.
	TypeHarmony Type = "harmony"
	// TypeMono builds same-hue variations.
	TypeMono Type = "mono"
	// TypeAccessible builds a palette by contrast-maximising search.
	TypeAccessible Type = "accessible"
)

// ValidTypes returns the supported palette types.
func ValidTypes() []Type {
	return []Type{TypeUI, TypeHarmony, TypeMono, TypeAccessible}
}

// ParseType converts a string to a Type.
func ParseType(s string) (Type, error) {
	t := Type(s)
	if slices.Contains(ValidTypes(), t) {
		return t, nil
	}
	return "", fmt.Errorf("%w: %s (valid: %v)", ErrUnsupportedType, s, ValidTypes())
}

// Request describes the palette to generate from a base colour.
type Request struct {
	Type    Type
	Harmony Harmony // used by TypeHarmony
	Count   int
	Dark    bool // used by TypeUI
}

// Validate checks the request without generating anything.
func (r Request) Validate() error {
	if r.Count < 1 {
		return fmt.Errorf("%w: must be at least 1, got %d", ErrInvalidCount, r.Count)
	}
	if _, err := ParseType(string(r.Type)); err != nil {
		return err
	}
	if r.Type == TypeHarmony {
		if _, err := ParseHarmony(string(r.Harmony)); err != nil {
			return err
		}
	}
	return nil
}

// Result is a generated palette plus quality diagnostics.
type Result struct {
	Type    Type
	Palette *colour.Palette

	// Accessibility is set for TypeAccessible only.
	Accessibility *AccessibleResult
}

// Engine dispatches requests to the generators and logs their decisions.
type Engine struct {
	logger hclog.Logger
}

// NewEngine creates an Engine. A nil logger discards output.
func NewEngine(logger hclog.Logger) *Engine {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Engine{logger: logger}
}

// Generate builds the palette described by req from base.
func (e *Engine) Generate(base colour.RGB, req Request) (*Result, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	e.logger.Debug("generating palette", "type", req.Type, "count", req.Count, "base", base.Hex())

	res := &Result{Type: req.Type}
	var err error
	switch req.Type {
	case TypeHarmony:
		res.Palette, err = HarmonyPalette(base, req.Harmony, req.Count)
	case TypeMono:
		res.Palette, err = Monochromatic(base, req.Count)
	case TypeAccessible:
		res.Accessibility, err = accessible(base, req.Count, e.logger)
		if err == nil {
			res.Palette = res.Accessibility.Palette
		}
	default:
		res.Palette, err = UI(base, req.Count, req.Dark)
	}
	if err != nil {
		return nil, err
	}

	e.logger.Debug("generated palette", "colours", res.Palette.ToHex())
	return res, nil
}

func checkCount(count int) error {
	if count < 1 {
		return fmt.Errorf("%w: must be at least 1, got %d", ErrInvalidCount, count)
	}
	return nil
}

// hsv is shorthand for converting a normalised HSV triple to RGB.
func hsv(h, s, v float64) colour.RGB {
	return colour.HSVToRGB(colour.HSV{H: h, S: s, V: v})
}
