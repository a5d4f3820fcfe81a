package generator

import (
	"math"

	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/colormaestro/internal/colour"
)

// Contrast targets used by the accessible search.
const (
	MinComplementContrast = colour.ThresholdAA
	MinFillContrast       = 3.0
)

// Candidate grids, iterated saturation-major. The first best candidate wins ties.
var (
	searchSaturations  = []float64{0.7, 0.8, 0.9, 1.0}
	complementValues   = []float64{0.3, 0.4, 0.5, 0.6, 0.7, 0.8, 0.9}
	fillSearchValues   = []float64{0.3, 0.5, 0.7, 0.9}
	fallbackSaturation = 0.8
)

// AccessibleResult is an accessible palette with its search diagnostics.
type AccessibleResult struct {
	Palette *colour.Palette

	// BaseAdjusted is true when index 0 was replaced by a higher contrast variant.
	BaseAdjusted bool

	// Fallbacks lists the palette indices that were filled without meeting
	// their contrast target.
	Fallbacks []int
}

// Compliant reports whether every searched slot met its contrast target.
func (r *AccessibleResult) Compliant() bool {
	return len(r.Fallbacks) == 0
}

// Accessible builds count colours by greedy contrast search.
//
// The base may first be nudged towards higher text contrast. Index 1 is the
// complementary hue with the highest contrast against the base (at least 4.5).
// Each later index takes an evenly spaced hue and the candidate maximising
// its minimum contrast against all placed colours (at least 3.0). Slots with
// no qualifying candidate get a best-effort colour and are listed in Fallbacks.
func Accessible(base colour.RGB, count int) (*AccessibleResult, error) {
	return accessible(base, count, hclog.NewNullLogger())
}

func accessible(base colour.RGB, count int, logger hclog.Logger) (*AccessibleResult, error) {
	if err := checkCount(count); err != nil {
		return nil, err
	}

	b := colour.RGBToHSV(base)
	res := &AccessibleResult{}

	if adjusted, ok := adjustBase(base, b); ok {
		logger.Debug("adjusted base colour for text contrast", "from", base.Hex(), "to", adjusted.Hex())
		base = adjusted
		res.BaseAdjusted = true
	}

	colors := make([]colour.RGB, 0, count)
	colors = append(colors, base)

	if count > 1 {
		hComp := colour.WrapHue(b.H + 0.5)
		comp, ok := bestCandidate(hComp, complementValues, MinComplementContrast, func(c colour.RGB) float64 {
			return colour.ContrastRatio(base, c)
		})
		if !ok {
			v := 0.9
			if b.V >= 0.5 {
				v = 0.1
			}
			comp = hsv(hComp, b.S, v)
			res.Fallbacks = append(res.Fallbacks, 1)
			logger.Warn("no complementary colour meets contrast target, using fallback",
				"target", MinComplementContrast, "colour", comp.Hex())
		}
		colors = append(colors, comp)
	}

	for i := 2; i < count; i++ {
		h := colour.WrapHue(b.H + float64(i)/float64(count-1))
		placed := colors
		c, ok := bestCandidate(h, fillSearchValues, MinFillContrast, func(c colour.RGB) float64 {
			return minContrast(c, placed)
		})
		if !ok {
			v := 0.4
			if i%2 == 0 {
				v = 0.8
			}
			c = hsv(h, fallbackSaturation, v)
			res.Fallbacks = append(res.Fallbacks, i)
			logger.Warn("no colour meets contrast target, using fallback",
				"index", i, "target", MinFillContrast, "colour", c.Hex())
		}
		colors = append(colors, c)
	}

	res.Palette = colour.NewPalette(colors)
	return res, nil
}

// adjustBase raises saturation and pushes value towards the weaker of white
// and black text when the base passes AA against neither. The adjustment is
// kept only if it improves the better of the two contrasts.
func adjustBase(base colour.RGB, b colour.HSV) (colour.RGB, bool) {
	withWhite := colour.ContrastRatio(base, colour.White)
	withBlack := colour.ContrastRatio(base, colour.Black)
	if withWhite >= colour.ThresholdAA || withBlack >= colour.ThresholdAA {
		return base, false
	}

	s := math.Min(1.0, b.S+0.2)
	var v float64
	if withWhite > withBlack {
		v = math.Min(0.9, b.V+0.3)
	} else {
		v = math.Max(0.1, b.V-0.3)
	}
	adjusted := hsv(b.H, s, v)

	before := math.Max(withWhite, withBlack)
	after := math.Max(colour.ContrastRatio(adjusted, colour.White), colour.ContrastRatio(adjusted, colour.Black))
	if after > before {
		return adjusted, true
	}
	return base, false
}

// bestCandidate searches saturation × values at hue h for the highest score
// not below minScore. Ties keep the first candidate in iteration order.
func bestCandidate(h float64, values []float64, minScore float64, score func(colour.RGB) float64) (colour.RGB, bool) {
	var best colour.RGB
	bestScore := 0.0
	found := false

	for _, s := range searchSaturations {
		for _, v := range values {
			c := hsv(h, s, v)
			sc := score(c)
			if sc > bestScore && sc >= minScore {
				best, bestScore, found = c, sc, true
			}
		}
	}
	return best, found
}

// minContrast returns the lowest contrast of c against any colour in placed.
func minContrast(c colour.RGB, placed []colour.RGB) float64 {
	lowest := math.Inf(1)
	for _, p := range placed {
		lowest = math.Min(lowest, colour.ContrastRatio(c, p))
	}
	return lowest
}
