package main

import (
	"fmt"

	fontkit "github.com/Aloxaf/font-kit"
	"github.com/Aloxaf/font-kit/matching"
	"github.com/pterm/pterm"
	"github.com/thatisuday/commando"
)

func runFamiliesCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	setVerbosity(flags)
	load := mustLoader(flags)
	src := mustSource(flags, load)
	families, err := src.AllFamilies()
	if err != nil {
		fatalf("%v", err)
	}
	data := [][]string{{"Family", "Fonts"}}
	for _, name := range families {
		fh, err := src.SelectFamilyByName(name)
		if err != nil {
			tracer().Errorf("family %q: %v", name, err)
			continue
		}
		data = append(data, []string{name, fmt.Sprintf("%d", len(fh.Fonts))})
	}
	_ = pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	pterm.Info.Printf("%d families, %d fonts\n", len(families), src.Len())
	if skipped := src.Skipped(); len(skipped) > 0 {
		pterm.Warning.Printf("%d font files could not be loaded\n", len(skipped))
	}
}

func runMatchCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	setVerbosity(flags)
	families, err := parseFamilies(args["families"].Value)
	if err != nil {
		fatalf("%v", err)
	}
	props := fontkit.DefaultProperties()
	if props.Weight, err = parseWeight(mustFlagString(flags["weight"], "weight")); err != nil {
		fatalf("%v", err)
	}
	if props.Style, err = fontkit.ParseStyle(mustFlagString(flags["style"], "style")); err != nil {
		fatalf("%v", err)
	}
	if props.Stretch, err = parseStretch(mustFlagString(flags["stretch"], "stretch")); err != nil {
		fatalf("%v", err)
	}
	m := newMatcher(flags)
	if err := printMatch(m, fontkit.NewSpec(props, families...)); err != nil {
		fatalf("%v", err)
	}
}

// printMatch selects the best match for spec and prints it.
func printMatch(m *matching.Matcher, spec fontkit.Spec) error {
	h, err := m.SelectBestMatch(spec)
	if err != nil {
		return err
	}
	face, err := m.Loader()(h)
	if err != nil {
		return fmt.Errorf("cannot load %v: %w", h, err)
	}
	pterm.Info.Printf("%v %v\n", spec.Families, spec.Properties)
	printFaceNames(h, face)
	return nil
}

func printFaceNames(h fontkit.Handle, face fontkit.Face) {
	data := [][]string{
		{"Handle", h.String()},
		{"PostScript name", face.PostScriptName()},
		{"Full name", face.FullName()},
		{"Family", face.FamilyName()},
		{"Style", face.StyleName()},
		{"Properties", face.Properties().String()},
	}
	if h.IsPath() {
		data = append(data, []string{"Path", h.Path()})
	}
	_ = pterm.DefaultTable.WithData(data).Render()
}
