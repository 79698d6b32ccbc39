/*
Package stylemap converts native style-axis values of font services and font
tables to the CSS numeric scales used by fontkit.

All conversions are piecewise-linear interpolations over small tables. Values
outside of a table's range are clamped to the nearest endpoint; there is no
extrapolation.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package stylemap

import (
	fontkit "github.com/Aloxaf/font-kit"
)

// Point is a table entry mapping a native value X to a CSS value Y.
type Point struct {
	X, Y float32
}

// Lookup interpolates the value at x within table, which must be sorted
// ascending by X. Entries of the table are reproduced exactly.
func Lookup(x float32, table []Point) float32 {
	if len(table) == 0 {
		return 0
	}
	if x <= table[0].X {
		return table[0].Y
	}
	for i := 1; i < len(table); i++ {
		p0, p1 := table[i-1], table[i]
		if x == p1.X {
			return p1.Y
		}
		if x < p1.X {
			return p0.Y + (x-p0.X)/(p1.X-p0.X)*(p1.Y-p0.Y)
		}
	}
	return table[len(table)-1].Y
}

// FindIndex returns the fractional index of x within xs, which must be
// sorted ascending. x below the first entry yields 0, x above the last
// entry yields len(xs)-1.
func FindIndex(x float32, xs []float32) float32 {
	if len(xs) == 0 {
		return 0
	}
	if x <= xs[0] {
		return 0
	}
	for i := 1; i < len(xs); i++ {
		if x == xs[i] {
			return float32(i)
		}
		if x < xs[i] {
			return float32(i-1) + (x-xs[i-1])/(xs[i]-xs[i-1])
		}
	}
	return float32(len(xs) - 1)
}

// LookupIndex returns the value at fractional index i of ys, interpolating
// linearly between neighbouring entries. i is clamped to the index range.
func LookupIndex(i float32, ys []float32) float32 {
	if len(ys) == 0 {
		return 0
	}
	if i <= 0 {
		return ys[0]
	}
	last := len(ys) - 1
	if i >= float32(last) {
		return ys[last]
	}
	lo := int(i)
	t := i - float32(lo)
	if t == 0 {
		return ys[lo]
	}
	return ys[lo] + t*(ys[lo+1]-ys[lo])
}

// WeightMapping holds the CoreText normalized weights for CSS weights
// 100, 200, … 900.
var WeightMapping = []float32{-0.7, -0.5, -0.23, 0.0, 0.2, 0.3, 0.4, 0.6, 0.8}

// StretchMapping holds the CSS stretch values for OS/2 width classes 1…9,
// which CoreText maps to normalized widths -1…1 in steps of 0.25.
var StretchMapping = []float32{
	float32(fontkit.StretchUltraCondensed),
	float32(fontkit.StretchExtraCondensed),
	float32(fontkit.StretchCondensed),
	float32(fontkit.StretchSemiCondensed),
	float32(fontkit.StretchNormal),
	float32(fontkit.StretchSemiExpanded),
	float32(fontkit.StretchExpanded),
	float32(fontkit.StretchExtraExpanded),
	float32(fontkit.StretchUltraExpanded),
}

// WeightTable returns WeightMapping as a point table, suitable for Lookup.
func WeightTable() []Point {
	t := make([]Point, len(WeightMapping))
	for i, v := range WeightMapping {
		t[i] = Point{X: v, Y: float32(i*100 + 100)}
	}
	return t
}

// WeightFromNormalized converts a CoreText normalized weight (-1…1) to
// a CSS weight.
func WeightFromNormalized(v float32) fontkit.Weight {
	return fontkit.Weight(FindIndex(v, WeightMapping)*100 + 100)
}

// NormalizedFromWeight converts a CSS weight to a CoreText normalized weight.
func NormalizedFromWeight(w fontkit.Weight) float32 {
	return LookupIndex((float32(w)-100)/100, WeightMapping)
}

// StretchFromNormalized converts a CoreText normalized width (-1…1) to
// a CSS stretch.
func StretchFromNormalized(w float32) fontkit.Stretch {
	return fontkit.Stretch(LookupIndex((w+1)*4, StretchMapping))
}

// StretchFromWidthClass converts an OS/2 usWidthClass (1…9) to a CSS stretch.
// Classes outside 1…9, including an unset class of 0, yield the normal stretch.
func StretchFromWidthClass(class uint16) fontkit.Stretch {
	if class < 1 || class > 9 {
		return fontkit.StretchNormal
	}
	return fontkit.Stretch(LookupIndex(float32(class-1), StretchMapping))
}

// WeightFromWeightClass converts an OS/2 usWeightClass to a CSS weight.
// A class of 0 denotes an unset value and yields the normal weight.
func WeightFromWeightClass(class uint16) fontkit.Weight {
	switch {
	case class == 0:
		return fontkit.WeightNormal
	case class > 1000:
		return 1000
	}
	return fontkit.Weight(class)
}
