package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Aloxaf/font-kit/matching"
	"github.com/chzyer/readline"
	"github.com/pterm/pterm"
	"github.com/thatisuday/commando"
)

func runQueryCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	setVerbosity(flags)
	m := newMatcher(flags)
	repl, err := readline.New("fontkit > ")
	if err != nil {
		tracer().Errorf(err.Error())
		fatalf("cannot start interactive mode: %v", err)
	}
	defer repl.Close()
	intp := &Intp{repl: repl, matcher: m}
	pterm.Info.Println("Quit with <ctrl>D") // inform user how to stop the CLI
	intp.REPL()
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// Intp is our interpreter object
type Intp struct {
	repl    *readline.Instance
	matcher *matching.Matcher
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		if quit := intp.execute(line); quit {
			break
		}
	}
	pterm.Info.Println("Good bye!")
}

const (
	opQuery = iota
	opQuit
	opHelp
	opFamilies
	opPostScript
	opDefaults
)

var opMap = map[string]int{
	"quit":     opQuit,
	"exit":     opQuit,
	"help":     opHelp,
	"families": opFamilies,
	"ps":       opPostScript,
	"defaults": opDefaults,
}

// parseCommand splits a line into an op-code and its argument. Lines not
// starting with a command word are queries.
func parseCommand(line string) (int, string) {
	word, arg, _ := strings.Cut(line, " ")
	if op, ok := opMap[strings.ToLower(word)]; ok {
		return op, strings.TrimSpace(arg)
	}
	return opQuery, line
}

func (intp *Intp) execute(line string) (quit bool) {
	op, arg := parseCommand(line)
	tracer().Debugf("op %d, arg %q", op, arg)
	var err error
	switch op {
	case opQuit:
		return true
	case opHelp:
		help()
	case opFamilies:
		err = intp.families(arg)
	case opPostScript:
		err = intp.postscript(arg)
	case opDefaults:
		intp.defaults()
	default:
		err = intp.query(arg)
	}
	if err != nil {
		pterm.Error.Println(err)
	}
	return false
}

func (intp *Intp) query(line string) error {
	spec, err := parseQuery(line)
	if err != nil {
		return err
	}
	return printMatch(intp.matcher, spec)
}

func (intp *Intp) families(prefix string) error {
	families, err := intp.matcher.Source().AllFamilies()
	if err != nil {
		return err
	}
	prefix = strings.ToLower(prefix)
	for _, name := range families {
		if strings.HasPrefix(strings.ToLower(name), prefix) {
			pterm.Println(name)
		}
	}
	return nil
}

func (intp *Intp) postscript(name string) error {
	if name == "" {
		return fmt.Errorf("usage: ps <PostScript name>")
	}
	h, err := intp.matcher.SelectByPostScriptName(name)
	if err != nil {
		return err
	}
	face, err := intp.matcher.Loader()(h)
	if err != nil {
		return err
	}
	printFaceNames(h, face)
	return nil
}

func (intp *Intp) defaults() {
	df := intp.matcher.DefaultFamilies()
	data := [][]string{{"Generic", "Family"}}
	for g, name := range df {
		data = append(data, []string{g.String(), name})
	}
	sort.Slice(data[1:], func(i, j int) bool { return data[i+1][0] < data[j+1][0] })
	_ = pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func help() {
	pterm.Info.Println("Queries")
	pterm.Println(`
	family[,family…] [weight] [style] [stretch]

	Families are tried in order; generic names (serif, sans-serif, monospace,
	cursive, fantasy) resolve to the default families. Quote names with spaces:
	"Go Mono",monospace bold

	Weight is 1…1000 or a name (thin … black), style is normal, italic or
	oblique, stretch is a percentage (50%…200%) or a name (condensed, …).

	Commands:
	  families [prefix]   list families
	  ps <name>           find a font by PostScript name
	  defaults            show default families
	  quit                leave
	`)
}
