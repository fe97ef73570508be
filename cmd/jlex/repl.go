package main

import (
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/jlex/scanner"
	"github.com/pterm/pterm"
)

// Intp is our interactive session object
type Intp struct {
	opts  *options
	repl  *readline.Instance
	diag  *scanner.Collector
	count int // lines scanned
}

// interactive starts an interactive session, where users may enter jlex input
// line by line. Every line is scanned on its own.
func interactive(opts *options) int {
	initDisplay()
	repl, err := readline.New("jlex> ")
	if err != nil {
		tracer().Errorf("cannot start interactive mode: %v", err)
		return 1
	}
	defer repl.Close()
	intp := &Intp{
		opts: opts,
		repl: repl,
		diag: scanner.NewCollector(),
	}
	pterm.Info.Println("Welcome to jlex, engine is " + opts.engine)
	tracer().Infof("Quit with <ctrl>D") // inform user how to stop the CLI
	intp.REPL()
	return 0
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
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
		intp.Eval(line)
	}
	println("Good bye!")
}

// Eval scans a line of input and prints tokens and diagnostics.
func (intp *Intp) Eval(line string) {
	intp.count++
	intp.diag.Reset()
	tokenizer, err := intp.opts.tokenizer("repl", []byte(line), intp.diag)
	if err != nil {
		pterm.Error.Println(err.Error())
		return
	}
	tokens := tokenizer.ScanTokens()
	for _, d := range intp.diag.Diagnostics() {
		pterm.Error.Println(d.Error())
	}
	if intp.opts.format == "tree" {
		writeTree(nil, "line "+strconv.Itoa(intp.count), tokens)
		return
	}
	for _, token := range tokens {
		pterm.Info.Println(token.String())
	}
}
