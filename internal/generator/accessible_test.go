package generator

import (
	"errors"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmylchreest/colormaestro/internal/colour"
)

func TestAccessibleLength(t *testing.T) {
	for name, base := range sampleColours {
		t.Run(name, func(t *testing.T) {
			for count := 1; count <= 8; count++ {
				res, err := Accessible(base, count)
				require.NoError(t, err)
				assert.Equal(t, count, res.Palette.Len())
			}
		})
	}
}

func TestAccessibleKeepsBase(t *testing.T) {
	res, err := Accessible(blue, 5)
	require.NoError(t, err)

	assert.False(t, res.BaseAdjusted)
	assert.Equal(t, blue, res.Palette.Colors[0])

	pairs := colour.CheckPalette(res.Palette)
	assert.True(t, slices.ContainsFunc(pairs, func(p colour.PairContrast) bool { return p.Result.PassesAA }))
}

func TestAccessibleMeetsTargetsOutsideFallbacks(t *testing.T) {
	for name, base := range sampleColours {
		t.Run(name, func(t *testing.T) {
			res, err := Accessible(base, 6)
			require.NoError(t, err)
			colors := res.Palette.Colors

			if !slices.Contains(res.Fallbacks, 1) {
				assert.GreaterOrEqual(t, colour.ContrastRatio(colors[0], colors[1]), MinComplementContrast)
			}
			for i := 2; i < len(colors); i++ {
				if slices.Contains(res.Fallbacks, i) {
					continue
				}
				assert.GreaterOrEqual(t, minContrast(colors[i], colors[:i]), MinFillContrast, "index %d", i)
			}
			assert.Equal(t, len(res.Fallbacks) == 0, res.Compliant())
		})
	}
}

func TestAccessibleComplementFallback(t *testing.T) {
	res, err := Accessible(grey, 3)
	require.NoError(t, err)

	require.Equal(t, 3, res.Palette.Len())
	assert.False(t, res.Compliant())
	assert.Contains(t, res.Fallbacks, 1)
	// Grey has no saturation and value >= 0.5, so the fallback is the dark extreme.
	assert.Equal(t, colour.RGB{R: 25, G: 25, B: 25}, res.Palette.Colors[1])
}

func TestAccessibleFromBlack(t *testing.T) {
	res, err := Accessible(colour.Black, 4)
	require.NoError(t, err)

	assert.Equal(t, colour.Black, res.Palette.Colors[0])
	assert.GreaterOrEqual(t, colour.ContrastRatio(colour.Black, res.Palette.Colors[1]), MinComplementContrast)
	assert.InDelta(t, 0, colour.HueDistance(hueOf(res.Palette.Colors[1]), 0.5), 0.01)
}

func TestAccessibleSingleColour(t *testing.T) {
	res, err := Accessible(purple, 1)
	require.NoError(t, err)
	assert.Equal(t, []colour.RGB{purple}, res.Palette.Colors)
	assert.True(t, res.Compliant())
}

func TestAccessibleInvalidCount(t *testing.T) {
	_, err := Accessible(blue, 0)
	assert.True(t, errors.Is(err, ErrInvalidCount))
}

func TestAdjustBaseOnlyWhenNeitherTextColourPasses(t *testing.T) {
	// Every colour passes AA against white or black, so the base is kept.
	for r := 0; r <= 255; r += 51 {
		for g := 0; g <= 255; g += 51 {
			for b := 0; b <= 255; b += 51 {
				c := colour.RGB{R: uint8(r), G: uint8(g), B: uint8(b)}
				got, adjusted := adjustBase(c, colour.RGBToHSV(c))
				assert.False(t, adjusted)
				assert.Equal(t, c, got)
			}
		}
	}
}

func TestBestCandidateTieBreak(t *testing.T) {
	c, ok := bestCandidate(0.25, fillSearchValues, 1, func(colour.RGB) float64 { return 5 })
	require.True(t, ok)
	assert.Equal(t, hsv(0.25, searchSaturations[0], fillSearchValues[0]), c)

	_, ok = bestCandidate(0.25, fillSearchValues, 10, func(colour.RGB) float64 { return 5 })
	assert.False(t, ok)
}
