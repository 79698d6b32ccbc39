/*
Command fontkit locates, inspects and renders fonts.

	fontkit families [-d dirs]
	fontkit match <families> [-w weight] [-s style] [-x stretch] [-d dirs]
	fontkit info <font> [-i index] [-b backend]
	fontkit sniff <font>
	fontkit unpack <font> <index> <out>
	fontkit render <font> <char> [-p size] [-o out.png] [-f format]
	fontkit query [-d dirs]

Without -d, the fonts installed on the system are used. Default families
for generic names may be set with environment variables FONTKIT_SERIF,
FONTKIT_SANS_SERIF, FONTKIT_MONOSPACE, FONTKIT_CURSIVE and FONTKIT_FANTASY.
*/
package main

import (
	"fmt"
	"os"
	"strings"

	fontkit "github.com/Aloxaf/font-kit"
	"github.com/Aloxaf/font-kit/loaders/gotext"
	"github.com/Aloxaf/font-kit/loaders/xsfnt"
	"github.com/Aloxaf/font-kit/matching"
	"github.com/Aloxaf/font-kit/sources/fs"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/thatisuday/commando"
)

// tracer traces with key 'fontkit.cli'
func tracer() tracing.Trace {
	return tracing.Select("fontkit.cli")
}

func main() {
	conf := configure()
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Printf("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())
	initDisplay()

	commando.
		SetExecutableName("fontkit").
		SetVersion("v0.1.0").
		SetDescription("CLI for locating, matching and inspecting fonts.")

	commando.
		Register(nil).
		AddFlag("verbose,V", "display additional output", commando.Bool, nil)

	commando.
		Register("families").
		SetDescription("List the font families found in font directories or on the system.").
		SetShortDescription("list families").
		AddFlag("dir,d", "comma separated font directories (default: system fonts)", commando.String, "-").
		AddFlag("backend,b", "font backend: xsfnt|gotext", commando.String, "xsfnt").
		AddFlag("verbose,V", "display additional output", commando.Bool, nil).
		SetAction(runFamiliesCommand)

	commando.
		Register("match").
		SetDescription("Select the font best matching a list of families and style properties.").
		SetShortDescription("match a font").
		AddArgument("families", "comma separated families, generic names like sans-serif allowed", "").
		AddFlag("weight,w", "CSS weight, numeric or name (e.g. 700, bold)", commando.String, "400").
		AddFlag("style,s", "normal|italic|oblique", commando.String, "normal").
		AddFlag("stretch,x", "CSS stretch, factor, percentage or name (e.g. 0.75, 75%, condensed)", commando.String, "1").
		AddFlag("dir,d", "comma separated font directories (default: system fonts)", commando.String, "-").
		AddFlag("backend,b", "font backend: xsfnt|gotext", commando.String, "xsfnt").
		AddFlag("verbose,V", "display additional output", commando.Bool, nil).
		SetAction(runMatchCommand)

	commando.
		Register("info").
		SetDescription("Print names, style properties and metrics of a font.").
		SetShortDescription("font information").
		AddArgument("font", "font file path", "").
		AddFlag("index,i", "index of the font in a collection", commando.Int, 0).
		AddFlag("backend,b", "font backend: xsfnt|gotext", commando.String, "xsfnt").
		AddFlag("verbose,V", "display additional output", commando.Bool, nil).
		SetAction(runInfoCommand)

	commando.
		Register("sniff").
		SetDescription("Tell if a file is a single font or a collection.").
		SetShortDescription("container type").
		AddArgument("font", "font file path", "").
		AddFlag("verbose,V", "display additional output", commando.Bool, nil).
		SetAction(runSniffCommand)

	commando.
		Register("unpack").
		SetDescription("Extract a font from a collection into a file of its own.").
		SetShortDescription("unpack a collection").
		AddArgument("font", "font collection file path", "").
		AddArgument("index", "index of the font in the collection", "").
		AddArgument("out", "output file path", "").
		AddFlag("verbose,V", "display additional output", commando.Bool, nil).
		SetAction(runUnpackCommand)

	commando.
		Register("render").
		SetDescription("Rasterize the glyph of a character to a PNG image.").
		SetShortDescription("render a glyph").
		AddArgument("font", "font file path", "").
		AddArgument("char", "character or codepoint (e.g. A, U+0041)", "").
		AddFlag("index,i", "index of the font in a collection", commando.Int, 0).
		AddFlag("size,p", "point size (1 point = 1 pixel)", commando.Int, 64).
		AddFlag("output,o", "output PNG file", commando.String, "fontkit-render.png").
		AddFlag("format,f", "canvas format: a8|rgb24|rgba32", commando.String, "a8").
		AddFlag("aa,a", "anti-aliasing: bilevel|grayscale|subpixel", commando.String, "grayscale").
		AddFlag("backend,b", "font backend: xsfnt|gotext", commando.String, "xsfnt").
		AddFlag("verbose,V", "display additional output", commando.Bool, nil).
		SetAction(runRenderCommand)

	commando.
		Register("query").
		SetDescription("Interactively match fonts. Quit with <ctrl>D.").
		SetShortDescription("interactive matching").
		AddFlag("dir,d", "comma separated font directories (default: system fonts)", commando.String, "-").
		AddFlag("backend,b", "font backend: xsfnt|gotext", commando.String, "xsfnt").
		AddFlag("verbose,V", "display additional output", commando.Bool, nil).
		SetAction(runQueryCommand)

	commando.Parse(nil)
}

// configure collects settings from the environment.
func configure() testconfig.Conf {
	conf := testconfig.Conf{
		"tracing.adapter":        "go",
		"trace.fontkit":          "Error",
		"trace.fontkit.cli":      "Info",
		"trace.fontkit.ot":       "Error",
		"trace.fontkit.loader":   "Error",
		"trace.fontkit.source":   "Error",
		"trace.fontkit.matching": "Error",
	}
	for _, g := range fontkit.GenericFamilies() {
		env := "FONTKIT_" + strings.ToUpper(strings.ReplaceAll(g.String(), "-", "_"))
		if name := os.Getenv(env); name != "" {
			conf[matching.ConfigKey(g)] = name
		}
	}
	config = conf
	return conf
}

var config testconfig.Conf

func setVerbosity(flags map[string]commando.FlagValue) {
	if !mustFlagBool(flags["verbose"], "verbose") {
		return
	}
	for _, key := range []string{"fontkit", "fontkit.cli", "fontkit.ot", "fontkit.loader",
		"fontkit.source", "fontkit.matching"} {
		tracing.Select(key).SetTraceLevel(tracing.LevelDebug)
	}
}

// --- Backends and sources --------------------------------------------------

func loaderFor(backend string) (fontkit.Loader, error) {
	switch strings.ToLower(strings.TrimSpace(backend)) {
	case "", "xsfnt", "sfnt":
		return xsfnt.Load, nil
	case "gotext", "go-text":
		return gotext.Load, nil
	}
	return nil, fmt.Errorf("unsupported backend %q (expected xsfnt|gotext)", backend)
}

func mustLoader(flags map[string]commando.FlagValue) fontkit.Loader {
	backend, err := flags["backend"].GetString()
	if err != nil {
		fatalf("invalid --backend flag: %v", err)
	}
	load, err := loaderFor(backend)
	if err != nil {
		fatalf("%v", err)
	}
	return load
}

func mustSource(flags map[string]commando.FlagValue, load fontkit.Loader) *fs.Source {
	dirs, err := flags["dir"].GetString()
	if err != nil {
		fatalf("invalid --dir flag: %v", err)
	}
	if dirs = strings.TrimSpace(dirs); dirs == "-" || dirs == "" {
		tracer().Infof("indexing system fonts")
		return fs.NewSystem(load)
	}
	src, err := fs.New(load, splitCSV(dirs)...)
	if err != nil {
		fatalf("%v", err)
	}
	return src
}

func newMatcher(flags map[string]commando.FlagValue) *matching.Matcher {
	load := mustLoader(flags)
	src := mustSource(flags, load)
	return matching.NewMatcher(src, load,
		matching.WithDefaultFamilies(matching.DefaultFamiliesFromConfig(config)))
}

// --- Helpers ---------------------------------------------------------------

func mustFlagInt(flag commando.FlagValue, name string) int {
	n, err := flag.GetInt()
	if err != nil {
		fatalf("invalid --%s flag: %v", name, err)
	}
	return n
}

func mustFlagBool(flag commando.FlagValue, name string) bool {
	b, err := flag.GetBool()
	if err != nil {
		fatalf("invalid --%s flag: %v", name, err)
	}
	return b
}

func mustFlagString(flag commando.FlagValue, name string) string {
	s, err := flag.GetString()
	if err != nil {
		fatalf("invalid --%s flag: %v", name, err)
	}
	return strings.TrimSpace(s)
}

func splitCSV(s string) []string {
	var parts []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	return parts
}

func fatalf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(os.Stderr, "fontkit: "+format+"\n", args...)
	os.Exit(1)
}
