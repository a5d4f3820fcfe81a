package colour

import (
	"math"
)

// WCAG thresholds for normal-size text.
const (
	ThresholdAA  = 4.5
	ThresholdAAA = 7.0
)

// Luminance calculates the relative luminance of a colour according to WCAG 2.0.
// Returns a value between 0 (darkest) and 1 (lightest).
// https://www.w3.org/TR/WCAG20/#relativeluminancedef.
func Luminance(c RGB) float64 {
	r, g, b := unit(c)

	// Apply gamma correction.
	r = gammaCorrect(r)
	g = gammaCorrect(g)
	b = gammaCorrect(b)

	return 0.2126*r + 0.7152*g + 0.0722*b
}

// gammaCorrect expands an sRGB channel to linear light.
func gammaCorrect(v float64) float64 {
	if v <= 0.03928 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// ContrastRatio calculates the contrast ratio between two colours according to WCAG 2.0.
// Returns a value between 1 and 21 and is symmetric in its arguments.
// https://www.w3.org/TR/WCAG20/#contrast-ratiodef.
func ContrastRatio(c1, c2 RGB) float64 {
	l1 := Luminance(c1)
	l2 := Luminance(c2)

	// Ensure l1 is the lighter colour.
	if l1 < l2 {
		l1, l2 = l2, l1
	}

	return (l1 + 0.05) / (l2 + 0.05)
}

// ContrastResult is the WCAG verdict for a pair of colours.
type ContrastResult struct {
	Ratio     float64 `json:"ratio"`
	PassesAA  bool    `json:"passes_aa"`
	PassesAAA bool    `json:"passes_aaa"`
}

// Evaluate computes the contrast ratio of c1 and c2 with AA/AAA verdicts.
func Evaluate(c1, c2 RGB) ContrastResult {
	ratio := ContrastRatio(c1, c2)
	return ContrastResult{
		Ratio:     ratio,
		PassesAA:  ratio >= ThresholdAA,
		PassesAAA: ratio >= ThresholdAAA,
	}
}

// PairContrast is the contrast between two palette positions (I < J).
type PairContrast struct {
	I, J   int
	A, B   RGB
	Result ContrastResult
}

// CheckPalette evaluates every unordered pair of palette colours.
func CheckPalette(p *Palette) []PairContrast {
	n := len(p.Colors)
	pairs := make([]PairContrast, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			pairs = append(pairs, PairContrast{
				I:      i,
				J:      j,
				A:      p.Colors[i],
				B:      p.Colors[j],
				Result: Evaluate(p.Colors[i], p.Colors[j]),
			})
		}
	}
	return pairs
}

// TextContrastResult holds a colour's contrast against white and black text.
type TextContrastResult struct {
	White       ContrastResult
	Black       ContrastResult
	Recommended RGB
}

// TextContrast evaluates c against white and black text and recommends one:
// whichever alone passes AA, otherwise whichever has the higher ratio.
func TextContrast(c RGB) TextContrastResult {
	res := TextContrastResult{
		White: Evaluate(c, White),
		Black: Evaluate(c, Black),
	}

	switch {
	case res.White.PassesAA && !res.Black.PassesAA:
		res.Recommended = White
	case res.Black.PassesAA && !res.White.PassesAA:
		res.Recommended = Black
	case res.White.Ratio > res.Black.Ratio:
		res.Recommended = White
	default:
		res.Recommended = Black
	}
	return res
}

// HueDistance returns the shortest distance between two hues in turns, in [0, 0.5].
func HueDistance(h1, h2 float64) float64 {
	diff := math.Abs(WrapHue(h1) - WrapHue(h2))
	if diff > 0.5 {
		diff = 1 - diff // Handle wraparound
	}
	return diff
}
