package generator

import (
	"fmt"
	"math"
	"slices"

	"github.com/jmylchreest/colormaestro/internal/colour"
)

// Harmony is a fixed geometric relationship between hues.
type Harmony string

// Supported harmonies.
const (
	Complementary Harmony = "complementary"
	Analogous     Harmony = "analogous"
	Triadic       Harmony = "triadic"
	Tetradic      Harmony = "tetradic"
)

// AnalogousStep is the hue step between analogous neighbours (about 30°).
const AnalogousStep = 0.08

// ValidHarmonies returns the supported harmony types.
func ValidHarmonies() []Harmony {
	return []Harmony{Complementary, Analogous, Triadic, Tetradic}
}

// ParseHarmony converts a string to a Harmony.
func ParseHarmony(s string) (Harmony, error) {
	h := Harmony(s)
	if slices.Contains(ValidHarmonies(), h) {
		return h, nil
	}
	return "", fmt.Errorf("%w: %s (valid: %v)", ErrUnsupportedHarmony, s, ValidHarmonies())
}

// harmonicRule lists hue offsets (in turns) from the base, and how far the
// fill phase spreads saturation and value around the base.
type harmonicRule struct {
	offsets []float64
	satSpan float64
	valSpan float64
}

var harmonicRules = map[Harmony]harmonicRule{
	Complementary: {offsets: []float64{0.5}, satSpan: 0.6, valSpan: 0.4},
	Triadic:       {offsets: []float64{1.0 / 3.0, 2.0 / 3.0}, satSpan: 0.4, valSpan: 0.2},
	Tetradic:      {offsets: []float64{0.25, 0.5, 0.75}, satSpan: 0.4, valSpan: 0.2},
}

// Fill phase bounds.
const (
	fillMinSaturation = 0.2
	fillMinValue      = 0.3
)

// HarmonyPalette returns exactly count colours with base at index 0.
//
// Complementary, triadic and tetradic palettes first emit the harmonic hues
// at the base's saturation and value, then cycle through the harmonic hues
// again with saturation and value swept linearly across a bounded range.
// Analogous palettes step outward from the base hue on alternating sides.
func HarmonyPalette(base colour.RGB, harmony Harmony, count int) (*colour.Palette, error) {
	if err := checkCount(count); err != nil {
		return nil, err
	}

	if harmony == Analogous {
		return analogous(base, count), nil
	}

	rule, ok := harmonicRules[harmony]
	if !ok {
		return nil, fmt.Errorf("%w: %s (valid: %v)", ErrUnsupportedHarmony, harmony, ValidHarmonies())
	}

	b := colour.RGBToHSV(base)
	hues := make([]float64, 0, len(rule.offsets)+1)
	hues = append(hues, b.H)
	for _, off := range rule.offsets {
		hues = append(hues, colour.WrapHue(b.H+off))
	}

	colors := make([]colour.RGB, 0, count)
	colors = append(colors, base)
	for _, h := range hues[1:] {
		if len(colors) == count {
			break
		}
		colors = append(colors, hsv(h, b.S, b.V))
	}

	remaining := count - len(hues)
	for i := 0; i < remaining; i++ {
		t := float64(i) / float64(remaining)
		s := colour.Clamp(b.S-rule.satSpan/2+rule.satSpan*t, fillMinSaturation, 1.0)
		v := colour.Clamp(b.V-rule.valSpan/2+rule.valSpan*t, fillMinValue, 1.0)
		colors = append(colors, hsv(hues[i%len(hues)], s, v))
	}

	return colour.NewPalette(colors), nil
}

// analogous steps 0.08 turns outward from the base hue, right then left,
// with a small saturation and value jitter per step.
func analogous(base colour.RGB, count int) *colour.Palette {
	b := colour.RGBToHSV(base)

	colors := make([]colour.RGB, 0, count)
	colors = append(colors, base)
	for i := 1; i < count; i++ {
		var h float64
		if i%2 == 1 {
			h = b.H + AnalogousStep*float64((i+1)/2)
		} else {
			h = b.H - AnalogousStep*float64(i/2)
		}

		s := math.Min(1.0, b.S*(1.0+float64(i%3-1)*0.1))
		v := math.Min(1.0, b.V*(1.0+(float64(i%2)-0.5)*0.1))
		colors = append(colors, hsv(colour.WrapHue(h), s, v))
	}

	return colour.NewPalette(colors)
}
