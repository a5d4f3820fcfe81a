package generator

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmylchreest/colormaestro/internal/colour"
)

func TestParseHarmony(t *testing.T) {
	for _, h := range ValidHarmonies() {
		got, err := ParseHarmony(string(h))
		require.NoError(t, err)
		assert.Equal(t, h, got)
	}

	_, err := ParseHarmony("split-complementary")
	assert.True(t, errors.Is(err, ErrUnsupportedHarmony))
}

func TestHarmonyPaletteLengthAndBase(t *testing.T) {
	for _, h := range ValidHarmonies() {
		for count := 1; count <= 9; count++ {
			t.Run(fmt.Sprintf("%s/%d", h, count), func(t *testing.T) {
				p, err := HarmonyPalette(blue, h, count)
				require.NoError(t, err)
				require.Equal(t, count, p.Len())
				assert.Equal(t, blue, p.Colors[0])
			})
		}
	}
}

func TestHarmonyPaletteComplementary(t *testing.T) {
	for name, base := range map[string]colour.RGB{"blue": blue, "red": red, "green": green, "purple": purple} {
		t.Run(name, func(t *testing.T) {
			for count := 2; count <= 6; count++ {
				p, err := HarmonyPalette(base, Complementary, count)
				require.NoError(t, err)
				assert.Equal(t, base, p.Colors[0])
				assert.InDelta(t, 0.5, colour.HueDistance(hueOf(p.Colors[0]), hueOf(p.Colors[1])), 0.01)
			}
		})
	}
}

func TestHarmonyPaletteTriadicScenario(t *testing.T) {
	base, err := colour.ParseHex("#3A86FF")
	require.NoError(t, err)

	p, err := HarmonyPalette(base, Triadic, 6)
	require.NoError(t, err)
	require.Equal(t, 6, p.Len())
	assert.Equal(t, colour.RGB{R: 58, G: 134, B: 255}, p.Colors[0])

	h := hueOf(base)
	assert.InDelta(t, 0, colour.HueDistance(hueOf(p.Colors[1]), h+1.0/3.0), 0.01)
	assert.InDelta(t, 0, colour.HueDistance(hueOf(p.Colors[2]), h+2.0/3.0), 0.01)
}

func TestHarmonyPaletteTetradicHues(t *testing.T) {
	p, err := HarmonyPalette(purple, Tetradic, 7)
	require.NoError(t, err)

	h := hueOf(purple)
	for i, off := range []float64{0.25, 0.5, 0.75} {
		assert.InDelta(t, 0, colour.HueDistance(hueOf(p.Colors[i+1]), h+off), 0.01, "index %d", i+1)
	}

	unique := map[colour.RGB]bool{}
	for _, c := range p.Colors {
		unique[c] = true
	}
	assert.GreaterOrEqual(t, len(unique), 4)
}

func TestHarmonyPaletteFillStaysInBounds(t *testing.T) {
	for _, h := range []Harmony{Complementary, Triadic, Tetradic} {
		p, err := HarmonyPalette(colour.RGB{R: 30, G: 20, B: 25}, h, 12)
		require.NoError(t, err)

		harmonic := len(harmonicRules[h].offsets) + 1
		for _, c := range p.Colors[harmonic:] {
			hsv := colour.RGBToHSV(c)
			assert.GreaterOrEqual(t, hsv.S, fillMinSaturation-0.01, "%s fill %v", h, c)
			assert.GreaterOrEqual(t, hsv.V, fillMinValue-0.01, "%s fill %v", h, c)
		}
	}
}

func TestHarmonyPaletteFillCyclesHarmonicHues(t *testing.T) {
	p, err := HarmonyPalette(green, Triadic, 6)
	require.NoError(t, err)

	// Fill colours 3, 4, 5 reuse hues 0, 1, 2 with shifted saturation/value.
	for i := 3; i < 6; i++ {
		assert.InDelta(t, 0, colour.HueDistance(hueOf(p.Colors[i]), hueOf(p.Colors[i-3])), 0.01)
		assert.NotEqual(t, p.Colors[i-3], p.Colors[i])
	}
}

func TestHarmonyPaletteTruncatesHarmonicSet(t *testing.T) {
	p, err := HarmonyPalette(blue, Tetradic, 2)
	require.NoError(t, err)
	require.Equal(t, 2, p.Len())
	assert.InDelta(t, 0, colour.HueDistance(hueOf(p.Colors[1]), hueOf(blue)+0.25), 0.01)
}

func TestHarmonyPaletteAnalogous(t *testing.T) {
	p, err := HarmonyPalette(red, Analogous, 5)
	require.NoError(t, err)
	require.Equal(t, 5, p.Len())
	assert.Equal(t, red, p.Colors[0])

	h := hueOf(red)
	want := []float64{h + 0.08, h - 0.08, h + 0.16, h - 0.16}
	for i, w := range want {
		assert.InDelta(t, 0, colour.HueDistance(hueOf(p.Colors[i+1]), w), 0.01, "index %d", i+1)
	}

	unique := map[colour.RGB]bool{}
	for _, c := range p.Colors {
		unique[c] = true
	}
	assert.Len(t, unique, 5)
}

func TestHarmonyPaletteErrors(t *testing.T) {
	_, err := HarmonyPalette(blue, Complementary, 0)
	assert.True(t, errors.Is(err, ErrInvalidCount))

	_, err = HarmonyPalette(blue, "split", 3)
	assert.True(t, errors.Is(err, ErrUnsupportedHarmony))
}
