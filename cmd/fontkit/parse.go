package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	fontkit "github.com/Aloxaf/font-kit"
)

var weightNames = map[string]fontkit.Weight{
	"thin":       fontkit.WeightThin,
	"extralight": fontkit.WeightExtraLight,
	"light":      fontkit.WeightLight,
	"normal":     fontkit.WeightNormal,
	"regular":    fontkit.WeightNormal,
	"medium":     fontkit.WeightMedium,
	"semibold":   fontkit.WeightSemiBold,
	"bold":       fontkit.WeightBold,
	"extrabold":  fontkit.WeightExtraBold,
	"black":      fontkit.WeightBlack,
}

var stretchNames = map[string]fontkit.Stretch{
	"ultra-condensed": fontkit.StretchUltraCondensed,
	"extra-condensed": fontkit.StretchExtraCondensed,
	"condensed":       fontkit.StretchCondensed,
	"semi-condensed":  fontkit.StretchSemiCondensed,
	"normal":          fontkit.StretchNormal,
	"semi-expanded":   fontkit.StretchSemiExpanded,
	"expanded":        fontkit.StretchExpanded,
	"extra-expanded":  fontkit.StretchExtraExpanded,
	"ultra-expanded":  fontkit.StretchUltraExpanded,
}

func parseWeight(s string) (fontkit.Weight, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if w, ok := weightNames[strings.ReplaceAll(s, "-", "")]; ok {
		return w, nil
	}
	n, err := strconv.ParseFloat(s, 32)
	if err != nil || n < 1 || n > 1000 {
		return 0, fmt.Errorf("invalid weight %q (expected 1…1000 or a name like bold)", s)
	}
	return fontkit.Weight(n), nil
}

func parseStretch(s string) (fontkit.Stretch, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if st, ok := stretchNames[s]; ok {
		return st, nil
	}
	scale := 1.0
	if strings.HasSuffix(s, "%") {
		s, scale = strings.TrimSuffix(s, "%"), 0.01
	}
	n, err := strconv.ParseFloat(s, 32)
	if err != nil || n*scale < 0.5 || n*scale > 2 {
		return 0, fmt.Errorf("invalid stretch %q (expected 50%%…200%% or a name like condensed)", s)
	}
	return fontkit.Stretch(n * scale), nil
}

func parseFamilies(s string) ([]fontkit.FamilySpec, error) {
	parts := splitCSV(s)
	if len(parts) == 0 {
		return nil, errors.New("no font family given")
	}
	families := make([]fontkit.FamilySpec, len(parts))
	for i, p := range parts {
		families[i] = fontkit.ParseFamilySpec(p)
	}
	return families, nil
}

// parseChar accepts a single character or a codepoint like U+0041 or 0x41.
func parseChar(s string) (rune, error) {
	if utf8.RuneCountInString(s) == 1 {
		r, _ := utf8.DecodeRuneInString(s)
		return r, nil
	}
	hex := s
	switch {
	case strings.HasPrefix(hex, "U+"), strings.HasPrefix(hex, "u+"):
		hex = hex[2:]
	case strings.HasPrefix(hex, "0x"), strings.HasPrefix(hex, "0X"):
		hex = hex[2:]
	default:
		return 0, fmt.Errorf("invalid character %q", s)
	}
	u, err := strconv.ParseUint(hex, 16, 32)
	if err != nil || u > utf8.MaxRune {
		return 0, fmt.Errorf("invalid codepoint %q", s)
	}
	return rune(u), nil
}

// parseQuery reads a query line of the form
//
//	family[,family…] [weight] [style] [stretch]
//
// Properties may be given in any order; omitted ones are CSS defaults.
// Family names containing spaces have to be quoted.
func parseQuery(line string) (fontkit.Spec, error) {
	fields, err := splitQuoted(line)
	if err != nil {
		return fontkit.Spec{}, err
	}
	if len(fields) == 0 {
		return fontkit.Spec{}, errors.New("empty query")
	}
	families, err := parseFamilies(fields[0])
	if err != nil {
		return fontkit.Spec{}, err
	}
	props := fontkit.DefaultProperties()
	for _, f := range fields[1:] {
		if style, err := fontkit.ParseStyle(f); err == nil {
			props = props.WithStyle(style)
		} else if w, err := parseWeight(f); err == nil {
			props = props.WithWeight(w)
		} else if st, err := parseStretch(f); err == nil {
			props = props.WithStretch(st)
		} else {
			return fontkit.Spec{}, fmt.Errorf("cannot interpret %q as style, weight or stretch", f)
		}
	}
	return fontkit.NewSpec(props, families...), nil
}

// splitQuoted splits at spaces outside of double quotes. Quotes are kept,
// as ParseFamilySpec strips them.
func splitQuoted(line string) ([]string, error) {
	var fields []string
	var sb strings.Builder
	quoted := false
	for _, r := range line {
		switch {
		case r == '"':
			quoted = !quoted
			sb.WriteRune(r)
		case r == ' ' && !quoted:
			if sb.Len() > 0 {
				fields = append(fields, sb.String())
				sb.Reset()
			}
		default:
			sb.WriteRune(r)
		}
	}
	if quoted {
		return nil, errors.New("unbalanced quotes")
	}
	if sb.Len() > 0 {
		fields = append(fields, sb.String())
	}
	return fields, nil
}
