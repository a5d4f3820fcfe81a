package colour

import (
	"math"
	"math/rand"
)

// HSV is a normalised hue/saturation/value triple, each component in [0,1].
// It is a derived view of an RGB and is never cached.
type HSV struct {
	H, S, V float64
}

// HSL is a normalised hue/saturation/lightness triple, each component in [0,1].
type HSL struct {
	H, S, L float64
}

// RGBToHSV converts an 8-bit colour to normalised HSV.
func RGBToHSV(c RGB) HSV {
	r, g, b := unit(c)

	maxVal := math.Max(r, math.Max(g, b))
	minVal := math.Min(r, math.Min(g, b))
	if maxVal == minVal {
		return HSV{H: 0, S: 0, V: maxVal}
	}

	return HSV{
		H: hue(r, g, b, maxVal, minVal),
		S: (maxVal - minVal) / maxVal,
		V: maxVal,
	}
}

// HSVToRGB converts normalised HSV to an 8-bit colour. Channels are
// truncated, so an RGB->HSV->RGB round trip is exact within one unit.
func HSVToRGB(hsv HSV) RGB {
	h, s, v := WrapHue(hsv.H), clamp01(hsv.S), clamp01(hsv.V)
	if s == 0 {
		return RGB{R: toByte(v), G: toByte(v), B: toByte(v)}
	}

	i := int(h * 6.0)
	f := h*6.0 - float64(i)
	p := v * (1.0 - s)
	q := v * (1.0 - s*f)
	t := v * (1.0 - s*(1.0-f))

	var r, g, b float64
	switch i % 6 {
	case 0:
		r, g, b = v, t, p
	case 1:
		r, g, b = q, v, p
	case 2:
		r, g, b = p, v, t
	case 3:
		r, g, b = p, q, v
	case 4:
		r, g, b = t, p, v
	default:
		r, g, b = v, p, q
	}

	return RGB{R: toByte(r), G: toByte(g), B: toByte(b)}
}

// RGBToHSL converts an 8-bit colour to normalised HSL.
func RGBToHSL(c RGB) HSL {
	r, g, b := unit(c)

	maxVal := math.Max(r, math.Max(g, b))
	minVal := math.Min(r, math.Min(g, b))
	l := (maxVal + minVal) / 2.0
	if maxVal == minVal {
		return HSL{H: 0, S: 0, L: l}
	}

	delta := maxVal - minVal
	var s float64
	if l <= 0.5 {
		s = delta / (maxVal + minVal)
	} else {
		s = delta / (2.0 - maxVal - minVal)
	}

	return HSL{H: hue(r, g, b, maxVal, minVal), S: s, L: l}
}

// HSLToRGB converts normalised HSL to an 8-bit colour (truncating channels).
func HSLToRGB(hsl HSL) RGB {
	h, s, l := WrapHue(hsl.H), clamp01(hsl.S), clamp01(hsl.L)
	if s == 0 {
		// Achromatic (grey).
		return RGB{R: toByte(l), G: toByte(l), B: toByte(l)}
	}

	var q float64
	if l <= 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q

	return RGB{
		R: toByte(hueToRGB(p, q, h+1.0/3.0)),
		G: toByte(hueToRGB(p, q, h)),
		B: toByte(hueToRGB(p, q, h-1.0/3.0)),
	}
}

// hueToRGB is a helper for HSL to RGB conversion.
func hueToRGB(p, q, t float64) float64 {
	t = WrapHue(t)

	if t < 1.0/6.0 {
		return p + (q-p)*t*6
	}
	if t < 0.5 {
		return q
	}
	if t < 2.0/3.0 {
		return p + (q-p)*(2.0/3.0-t)*6
	}
	return p
}

// hue computes the normalised hue shared by the HSV and HSL models.
func hue(r, g, b, maxVal, minVal float64) float64 {
	delta := maxVal - minVal
	rc := (maxVal - r) / delta
	gc := (maxVal - g) / delta
	bc := (maxVal - b) / delta

	var h float64
	switch maxVal {
	case r:
		h = bc - gc
	case g:
		h = 2.0 + rc - bc
	default:
		h = 4.0 + gc - rc
	}
	return WrapHue(h / 6.0)
}

// WrapHue folds a hue expressed in turns into [0,1).
func WrapHue(h float64) float64 {
	h -= math.Floor(h)
	if h >= 1 {
		return 0
	}
	return h
}

// RandomColor draws a vivid colour: hue uniform in [0,1), saturation in
// [0.7,1.0] and value in [0.8,1.0].
func RandomColor(rng *rand.Rand) RGB {
	return HSVToRGB(HSV{
		H: rng.Float64(),
		S: Uniform(rng, 0.7, 1.0),
		V: Uniform(rng, 0.8, 1.0),
	})
}

// Uniform returns a value drawn uniformly from [lo, hi].
func Uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + (hi-lo)*rng.Float64()
}

// AdjustBrightness scales the HSL lightness of c by factor.
// factor < 1 darkens, factor > 1 lightens; lightness is clamped to [0,1].
func AdjustBrightness(c RGB, factor float64) RGB {
	hsl := RGBToHSL(c)
	hsl.L = clamp01(hsl.L * factor)
	return HSLToRGB(hsl)
}

// ColourInfo summarises a colour in the units shown to users.
type ColourInfo struct {
	Hex               string
	RGB               RGB
	HSV               HSV
	HueDegrees        float64
	SaturationPercent float64
	ValuePercent      float64
}

// Info returns the hex, RGB and HSV (degrees/percent) views of c.
func Info(c RGB) ColourInfo {
	hsv := RGBToHSV(c)
	return ColourInfo{
		Hex:               c.Hex(),
		RGB:               c,
		HSV:               hsv,
		HueDegrees:        hsv.H * 360,
		SaturationPercent: hsv.S * 100,
		ValuePercent:      hsv.V * 100,
	}
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func clamp01(v float64) float64 {
	return Clamp(v, 0, 1)
}

func unit(c RGB) (r, g, b float64) {
	return float64(c.R) / 255.0, float64(c.G) / 255.0, float64(c.B) / 255.0
}

// toByte truncates a [0,1] channel to 8 bits.
func toByte(v float64) uint8 {
	return uint8(clamp01(v) * 255) // #nosec G115 -- clamped to [0,255]
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
