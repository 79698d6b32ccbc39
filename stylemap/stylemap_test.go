package stylemap

import (
	"testing"

	fontkit "github.com/Aloxaf/font-kit"
	"github.com/stretchr/testify/assert"
)

func TestLookupExactEntries(t *testing.T) {
	table := WeightTable()
	for _, p := range table {
		assert.Equal(t, p.Y, Lookup(p.X, table), "entry %v must be reproduced exactly", p)
	}
}

func TestLookupInterpolatesAndClamps(t *testing.T) {
	table := []Point{{0, 10}, {1, 20}, {3, 60}}
	assert.InDelta(t, 15, Lookup(0.5, table), 1e-6)
	assert.InDelta(t, 40, Lookup(2, table), 1e-6)
	assert.Equal(t, float32(10), Lookup(-5, table))
	assert.Equal(t, float32(60), Lookup(99, table))
	assert.Equal(t, float32(0), Lookup(1, nil))
}

func TestFindIndex(t *testing.T) {
	xs := []float32{-1, 0, 2}
	assert.Equal(t, float32(0), FindIndex(-3, xs))
	assert.Equal(t, float32(1), FindIndex(0, xs))
	assert.InDelta(t, 0.5, FindIndex(-0.5, xs), 1e-6)
	assert.InDelta(t, 1.25, FindIndex(0.5, xs), 1e-6)
	assert.Equal(t, float32(2), FindIndex(7, xs))
}

func TestLookupIndex(t *testing.T) {
	ys := []float32{1, 2, 4}
	assert.Equal(t, float32(1), LookupIndex(-1, ys))
	assert.Equal(t, float32(2), LookupIndex(1, ys))
	assert.InDelta(t, 3, LookupIndex(1.5, ys), 1e-6)
	assert.Equal(t, float32(4), LookupIndex(5, ys))
}

func TestCoreTextWeights(t *testing.T) {
	assert.Equal(t, fontkit.Weight(100), WeightFromNormalized(-0.7))
	assert.Equal(t, fontkit.Weight(400), WeightFromNormalized(0))
	assert.Equal(t, fontkit.Weight(700), WeightFromNormalized(0.4))
	assert.Equal(t, fontkit.Weight(900), WeightFromNormalized(0.8))
	assert.InDelta(t, 450, float32(WeightFromNormalized(0.1)), 1e-3)
	assert.Equal(t, fontkit.Weight(100), WeightFromNormalized(-1), "clamped below")
	assert.Equal(t, fontkit.Weight(900), WeightFromNormalized(1), "clamped above")

	assert.Equal(t, float32(0), NormalizedFromWeight(fontkit.WeightNormal))
	assert.InDelta(t, 0.4, NormalizedFromWeight(fontkit.WeightBold), 1e-6)
}

func TestCoreTextStretches(t *testing.T) {
	assert.Equal(t, fontkit.StretchNormal, StretchFromNormalized(0))
	assert.Equal(t, fontkit.StretchUltraCondensed, StretchFromNormalized(-1))
	assert.Equal(t, fontkit.StretchUltraExpanded, StretchFromNormalized(1))
	assert.InDelta(t, 1.7, float32(StretchFromNormalized(0.85)), 1e-5)
}

func TestOS2Classes(t *testing.T) {
	assert.Equal(t, fontkit.StretchUltraCondensed, StretchFromWidthClass(1))
	assert.Equal(t, fontkit.StretchNormal, StretchFromWidthClass(5))
	assert.Equal(t, fontkit.StretchUltraExpanded, StretchFromWidthClass(9))
	assert.Equal(t, fontkit.StretchCondensed, StretchFromWidthClass(3))
	assert.Equal(t, fontkit.StretchNormal, StretchFromWidthClass(0), "unset width class")
	assert.Equal(t, fontkit.StretchNormal, StretchFromWidthClass(10))
	assert.Equal(t, fontkit.StretchNormal, StretchFromWidthClass(42))

	assert.Equal(t, fontkit.WeightNormal, WeightFromWeightClass(0))
	assert.Equal(t, fontkit.WeightBold, WeightFromWeightClass(700))
	assert.Equal(t, fontkit.Weight(1000), WeightFromWeightClass(1200))
}
