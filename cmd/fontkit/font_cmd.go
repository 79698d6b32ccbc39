package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	fontkit "github.com/Aloxaf/font-kit"
	"github.com/Aloxaf/font-kit/internal/fontload"
	"github.com/Aloxaf/font-kit/ot"
	"github.com/Aloxaf/font-kit/otquery"
	"github.com/pterm/pterm"
	"github.com/thatisuday/commando"
)

func mustFontPath(args map[string]commando.ArgValue) string {
	path := strings.TrimSpace(args["font"].Value)
	if path == "" {
		fatalf("font path is required")
	}
	return path
}

func runInfoCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	setVerbosity(flags)
	path := mustFontPath(args)
	index := mustFlagInt(flags["index"], "index")
	if index < 0 {
		fatalf("--index must be >= 0")
	}
	load := mustLoader(flags)
	h := fontkit.PathHandle(path, uint32(index))
	face, err := load(h)
	if err != nil {
		fatalf("cannot load %v: %v", h, err)
	}
	printFaceNames(h, face)
	m := face.Metrics()
	data := [][]string{
		{"Metric", "Value"},
		{"Units per em", fmt.Sprintf("%d", m.UnitsPerEm)},
		{"Ascent", fmt.Sprintf("%g", m.Ascent)},
		{"Descent", fmt.Sprintf("%g", m.Descent)},
		{"Line gap", fmt.Sprintf("%g", m.LineGap)},
		{"Underline position", fmt.Sprintf("%g", m.UnderlinePosition)},
		{"Underline thickness", fmt.Sprintf("%g", m.UnderlineThickness)},
		{"Cap height", fmt.Sprintf("%g", m.CapHeight)},
		{"x-height", fmt.Sprintf("%g", m.XHeight)},
		{"Glyphs", fmt.Sprintf("%d", face.GlyphCount())},
		{"Monospace", fmt.Sprintf("%v", face.IsMonospace())},
	}
	_ = pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	//
	raw, err := fontload.ReadFile(path)
	if err != nil {
		fatalf("%v", err)
	}
	buf, err := fontload.Unpacked(raw, uint32(index))
	if err != nil {
		fatalf("%v", err)
	}
	otf, err := ot.Parse(buf)
	if err != nil {
		fatalf("%v", err)
	}
	tags := otf.TableTags()
	names := make([]string, len(tags))
	for i, tag := range tags {
		names[i] = tag.String()
	}
	pterm.Info.Printf("%s, tables: %s\n", otquery.FontType(otf), strings.Join(names, " "))
	for _, w := range otf.Warnings() {
		pterm.Warning.Println(w.String())
	}
}

func runSniffCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	setVerbosity(flags)
	path := mustFontPath(args)
	data, err := fontload.ReadFile(path)
	if err != nil {
		fatalf("%v", err)
	}
	ct, err := ot.Sniff(data)
	if err != nil {
		fatalf("%v", err)
	}
	fmt.Printf("%s: %v\n", path, ct)
	if ct.IsCollection {
		offsets, err := ot.CollectionOffsets(data)
		if err != nil {
			fatalf("%v", err)
		}
		for i, off := range offsets {
			fmt.Printf("  font #%d at offset %d\n", i, off)
		}
	}
}

func runUnpackCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	setVerbosity(flags)
	path := mustFontPath(args)
	index, err := strconv.ParseUint(strings.TrimSpace(args["index"].Value), 10, 32)
	if err != nil {
		fatalf("invalid font index %q", args["index"].Value)
	}
	outPath := strings.TrimSpace(args["out"].Value)
	if outPath == "" {
		fatalf("output path is required")
	}
	data, err := fontload.ReadFile(path)
	if err != nil {
		fatalf("%v", err)
	}
	if err := ot.Unpack(data, uint32(index)); err != nil {
		fatalf("%v", err)
	}
	// table offsets stay relative to the start of the collection
	if err := os.WriteFile(outPath, data, 0o644); err != nil {
		fatalf("cannot write %s: %v", outPath, err)
	}
	fmt.Printf("wrote %s (font #%d of %s)\n", outPath, index, path)
}
