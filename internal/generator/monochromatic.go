package generator

import (
	"sort"

	"github.com/jmylchreest/colormaestro/internal/colour"
)

// Monochromatic sweep bounds.
const (
	monoSpread        = 0.3
	monoMinSaturation = 0.1
	monoMinValue      = 0.3
)

// Monochromatic returns count variations of the base hue.
//
// Even positions sweep saturation from s-0.3 to s+0.3 at fixed value; odd
// positions sweep value from v-0.3 to v+0.3 at fixed saturation. The result
// is sorted brightest first by channel sum, so index 0 is not necessarily
// the base colour. A count of 1 returns the base unchanged.
func Monochromatic(base colour.RGB, count int) (*colour.Palette, error) {
	if err := checkCount(count); err != nil {
		return nil, err
	}
	if count == 1 {
		return colour.NewPalette([]colour.RGB{base}), nil
	}

	b := colour.RGBToHSV(base)
	colors := make([]colour.RGB, count)
	for i := range colors {
		t := float64(i) / float64(count-1)
		s, v := b.S, b.V
		if i%2 == 0 {
			s = colour.Clamp(b.S-monoSpread+2*monoSpread*t, monoMinSaturation, 1.0)
		} else {
			v = colour.Clamp(b.V-monoSpread+2*monoSpread*t, monoMinValue, 1.0)
		}
		colors[i] = hsv(b.H, s, v)
	}

	sort.SliceStable(colors, func(i, j int) bool {
		return colors[i].Sum() > colors[j].Sum()
	})

	return colour.NewPalette(colors), nil
}
