package generator

import (
	"math"

	"github.com/jmylchreest/colormaestro/internal/colour"
)

// UI returns a UI palette: the base as primary, a softened complement as
// secondary, a brighter triadic accent, then neutrals tinted with the base
// hue. Dark palettes sweep neutrals from dark to light, light palettes the
// reverse.
func UI(base colour.RGB, count int, dark bool) (*colour.Palette, error) {
	if err := checkCount(count); err != nil {
		return nil, err
	}

	b := colour.RGBToHSV(base)

	secondaryV := math.Max(0.8, b.V-0.05)
	if b.V < 0.8 {
		secondaryV = math.Min(0.95, b.V+0.05)
	}
	secondary := hsv(colour.WrapHue(b.H+0.5), math.Max(0.15, b.S-0.1), secondaryV)
	accent := hsv(colour.WrapHue(b.H+0.33), math.Min(1.0, b.S+0.1), math.Min(1.0, b.V+0.05))

	colors := []colour.RGB{base, secondary, accent}
	if count <= len(colors) {
		return colour.NewPalette(colors[:count]), nil
	}

	neutrals := count - len(colors)
	neutralS := math.Min(0.08, b.S*0.2)
	for i := 0; i < neutrals; i++ {
		offset := float64(i) * 0.6 / float64(neutrals)
		v := 0.9 - offset
		if dark {
			v = 0.3 + offset
		}
		colors = append(colors, hsv(b.H, neutralS, v))
	}

	return colour.NewPalette(colors), nil
}
