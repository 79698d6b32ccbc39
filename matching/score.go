package matching

import (
	fontkit "github.com/Aloxaf/font-kit"
)

// FindBestMatch returns the index of the candidate best matching query.
// Of several equally good candidates, the first one wins. An empty list
// of candidates results in fontkit.ErrNotFound.
func FindBestMatch(candidates []fontkit.Properties, query fontkit.Properties) (int, error) {
	if len(candidates) == 0 {
		return -1, fontkit.ErrNotFound
	}
	set := make([]int, len(candidates))
	for i := range set {
		set[i] = i
	}
	// style
	style := matchStyle(candidates, set, query.Style)
	set = narrow(set, func(i int) bool { return candidates[i].Style == style })
	// stretch
	stretch := matchStretch(candidates, set, query.Stretch)
	set = narrow(set, func(i int) bool { return candidates[i].Stretch == stretch })
	// weight
	weight := matchWeight(candidates, set, query.Weight)
	set = narrow(set, func(i int) bool { return candidates[i].Weight == weight })
	tracer().Debugf("best match for %v is #%d = %v", query, set[0], candidates[set[0]])
	return set[0], nil
}

// narrow keeps the members of set satisfying keep, in order. If none does
// (possible only for NaN properties), set is returned unchanged.
func narrow(set []int, keep func(int) bool) []int {
	var r []int
	for _, i := range set {
		if keep(i) {
			r = append(r, i)
		}
	}
	if len(r) == 0 {
		return set
	}
	return r
}

var stylePreference = map[fontkit.Style][3]fontkit.Style{
	fontkit.StyleNormal:  {fontkit.StyleNormal, fontkit.StyleOblique, fontkit.StyleItalic},
	fontkit.StyleItalic:  {fontkit.StyleItalic, fontkit.StyleOblique, fontkit.StyleNormal},
	fontkit.StyleOblique: {fontkit.StyleOblique, fontkit.StyleItalic, fontkit.StyleNormal},
}

func matchStyle(candidates []fontkit.Properties, set []int, query fontkit.Style) fontkit.Style {
	prefs, ok := stylePreference[query]
	if !ok {
		prefs = stylePreference[fontkit.StyleNormal]
	}
	for _, style := range prefs {
		for _, i := range set {
			if candidates[i].Style == style {
				return style
			}
		}
	}
	return query
}

// closest finds the value nearest to target among the values of set which
// satisfy `in`.
func closest[T ~float32](values func(int) T, set []int, target T, in func(T) bool) (T, bool) {
	var best T
	found := false
	for _, i := range set {
		v := values(i)
		if !in(v) {
			continue
		}
		if !found || abs(v-target) < abs(best-target) {
			best, found = v, true
		}
	}
	return best, found
}

func abs[T ~float32](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

func matchStretch(candidates []fontkit.Properties, set []int, query fontkit.Stretch) fontkit.Stretch {
	stretch := func(i int) fontkit.Stretch { return candidates[i].Stretch }
	narrower := func(s fontkit.Stretch) bool { return s <= query }
	wider := func(s fontkit.Stretch) bool { return s >= query }
	first, second := narrower, wider
	if query > fontkit.StretchNormal {
		first, second = wider, narrower
	}
	if s, ok := closest(stretch, set, query, first); ok {
		return s
	}
	s, _ := closest(stretch, set, query, second)
	return s
}

func matchWeight(candidates []fontkit.Properties, set []int, query fontkit.Weight) fontkit.Weight {
	weight := func(i int) fontkit.Weight { return candidates[i].Weight }
	var steps []func(fontkit.Weight) bool
	switch {
	case query >= 400 && query <= 500:
		steps = append(steps,
			func(w fontkit.Weight) bool { return w >= query && w <= 500 },
			func(w fontkit.Weight) bool { return w < query },
			func(w fontkit.Weight) bool { return w > 500 },
		)
	case query < 400:
		steps = append(steps,
			func(w fontkit.Weight) bool { return w <= query },
			func(w fontkit.Weight) bool { return w > query },
		)
	default:
		steps = append(steps,
			func(w fontkit.Weight) bool { return w >= query },
			func(w fontkit.Weight) bool { return w < query },
		)
	}
	for _, in := range steps {
		if w, ok := closest(weight, set, query, in); ok {
			return w
		}
	}
	return query
}
