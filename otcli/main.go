package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/otlayoutcore"
	"github.com/npillmayer/otlayoutcore/ot"
	"github.com/npillmayer/otlayoutcore/otlayout"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
)

// tracer traces with key 'tyse.fonts'
func tracer() tracing.Trace {
	return tracing.Select("tyse.fonts")
}

func main() {
	initDisplay()

	// set up logging
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter":     "go",
		"trace.tyse.fonts":    "Info",
		"trace.font.opentype": "Error",
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Printf("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())

	// command line flags
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	fontfile := flag.String("font", "", "Font file to load")
	flag.Parse()
	tracer().SetTraceLevel(tracing.LevelError)    // will set the correct level later
	pterm.Info.Println("Welcome to OpenType CLI") // colored welcome message
	//
	// set up REPL
	repl, err := readline.New("ot > ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	intp := &Intp{repl: repl}
	//
	// load font to use
	if err := intp.loadFont(*fontfile); err != nil { // font name provided by flag
		tracer().Errorf(err.Error())
		os.Exit(4)
	}
	//
	// start receiving commands
	pterm.Info.Println("Quit with <ctrl>D") // inform user how to stop the CLI
	switch *tlevel {
	case "Debug":
		tracer().SetTraceLevel(tracing.LevelDebug)
	case "Info":
		tracer().SetTraceLevel(tracing.LevelInfo)
	case "Error":
		tracer().SetTraceLevel(tracing.LevelError)
	default:
		tracer().Errorf("Invalid trace level: %s", *tlevel)
		os.Exit(5)
	}
	tracer().Infof("Trace level is %s", *tlevel)
	intp.REPL() // go into interactive mode
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

// Intp is our interpreter object. It keeps a selection path
// table → script → language system → feature.
type Intp struct {
	font    *opentype.Font
	repl    *readline.Instance
	layout  *otlayout.Layout
	table   ot.Tag
	script  ot.Tag
	lang    ot.Tag
	feature ot.Tag
}

func (intp *Intp) String() string {
	if intp == nil || intp.layout == nil {
		return "()"
	}
	sb := strings.Builder{}
	sb.WriteString(fmt.Sprintf("( table=%s )", intp.table))
	for _, tag := range []ot.Tag{intp.script, intp.lang, intp.feature} {
		if tag == 0 {
			break
		}
		sb.WriteString(fmt.Sprintf(" -> %s", tag))
	}
	return sb.String()
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		pterm.Println(intp.String())
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		cmd, err := parseCommand(line)
		if err != nil {
			tracer().Errorf(err.Error())
			continue
		}
		err, quit := intp.execute(cmd)
		if err != nil {
			tracer().Errorf(err.Error())
			continue
		}
		if quit {
			break
		}
	}
	pterm.Info.Println("Good bye!")
}

// Op is a single step of a command line, e.g. "scripts:latn".
type Op struct {
	code int
	arg  string
}

// Command is a sequence of steps, separated by blanks.
type Command struct {
	count int
	op    [32]Op
}

const NOOP = -1
const (
	// op-code QUIT will not have arguments
	QUIT int = iota
	// op-codes below may have arguments
	HELP
	TABLE
	SCRIPTS
	LANGS
	FEATURES
	LOOKUPS
	CLASS
	CARETS
	INFO
	WARNINGS
)

var opMap = map[string]int{
	"quit":     QUIT,
	"help":     HELP,
	"table":    TABLE,
	"scripts":  SCRIPTS,
	"langs":    LANGS,
	"features": FEATURES,
	"lookups":  LOOKUPS,
	"class":    CLASS,
	"carets":   CARETS,
	"info":     INFO,
	"warnings": WARNINGS,
}

var opNames = []string{
	"quit",
	"help",
	"table",
	"scripts",
	"langs",
	"features",
	"lookups",
	"class",
	"carets",
	"info",
	"warnings",
}

// parseCommand splits a command line into steps. Unknown commands are
// turned into a help request.
func parseCommand(line string) (*Command, error) {
	command := &Command{}
	for i := range command.op {
		command.op[i].code = NOOP
	}
	steps := strings.Fields(line)
	if len(steps) > len(command.op) {
		return nil, fmt.Errorf("too many steps in command: %d", len(steps))
	}
	command.count = len(steps)
	for i, step := range steps {
		c := strings.SplitN(step, ":", 2) // e.g.  "scripts:latn" or "lookups:5" or "help:lang"
		code, ok := opMap[strings.ToLower(c[0])]
		if !ok {
			code = HELP
		}
		command.op[i].code = code
		if code == QUIT {
			return command, nil
		}
		if len(c) > 1 {
			command.op[i].arg = c[1]
			tracer().Debugf("%s: looking for '%s'", opNames[code], c[1])
		}
	}
	return command, nil
}

var commandFn = map[int]func(*Intp, *Op) (error, bool){
	QUIT:     quitOp,
	HELP:     helpOp,
	TABLE:    tableOp,
	SCRIPTS:  scriptsOp,
	LANGS:    langsOp,
	FEATURES: featuresOp,
	LOOKUPS:  lookupsOp,
	CLASS:    classOp,
	CARETS:   caretsOp,
	INFO:     infoOp,
	WARNINGS: warningsOp,
}

func (intp *Intp) execute(cmd *Command) (err error, stop bool) {
	tracer().Debugf("cmd = %v", cmd.op[:cmd.count])
	for _, c := range cmd.op {
		if c.code == NOOP {
			break
		}
		f, ok := commandFn[c.code]
		if !ok {
			pterm.Error.Printf("unknown command code: %d\n", c.code)
			return nil, false
		}
		err, stop = f(intp, &c)
		if err != nil {
			pterm.Error.Println(err)
			return
		}
		if stop {
			return
		}
	}
	return
}

func quitOp(intp *Intp, op *Op) (error, bool) {
	pterm.Println("Goodbye!")
	return nil, true
}

// --- Font Loading ----------------------------------------------------------

func (intp *Intp) loadFont(fontfile string) (err error) {
	if fontfile == "" {
		return errors.New("no font file given, use flag -font")
	}
	if intp.font, err = opentype.LoadOpenTypeFont(fontfile); err != nil {
		tracer().Errorf("cannot load font %s: %s", fontfile, err)
		return err
	}
	tracer().Infof("parsed OpenType font = %s", intp.font.Name)
	pterm.Printf("font tables: %v\n", intp.font.OT.TableTags())
	return nil
}

// ---------------------------------------------------------------------------

var ErrNoTable = errors.New("no table set")

func (intp *Intp) checkTable() error {
	if intp.layout == nil {
		return ErrNoTable
	}
	return nil
}

// clearPath resets the selection below the table.
func (intp *Intp) clearPath() {
	intp.script, intp.lang, intp.feature = 0, 0, 0
}
