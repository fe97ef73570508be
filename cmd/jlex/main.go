package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/npillmayer/jlex"
	"github.com/npillmayer/jlex/scanner"
	"github.com/npillmayer/jlex/scanner/lexmach"
	"github.com/npillmayer/schuko"
	"github.com/npillmayer/schuko/schukonf/koanfadapter"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
)

// Exit codes, following BSD sysexits.
const (
	exitUsage   = 64
	exitNoInput = 65
)

// tracerKeys are the tracers of all jlex packages.
var tracerKeys = []string{"root", "jlex.cli", "jlex.scanner", "jlex.lexmach"}

var errUsage = errors.New("usage")

// options are the settings of a jlex run, from configuration and flags.
type options struct {
	program     string
	path        string
	engine      string // hand | dfa
	format      string // plain | json | tree | digest
	lexemes     bool
	trace       string
	traceSet    bool // -trace given on the command line
	interactive bool
}

func main() {
	conf := koanfadapter.New(nil, "jlex", []string{"nt"})
	conf.InitDefaults()
	opts, err := parseArgs(os.Args, conf, os.Stderr)
	if err != nil {
		os.Exit(exitUsage)
	}
	setupTracing(conf, traceLevels(conf, opts.trace, opts.traceSet))
	if opts.interactive {
		os.Exit(interactive(opts))
	}
	os.Exit(execute(opts, os.Stdout, os.Stderr))
}

// parseArgs reads flags and the file argument. Flag defaults are taken from
// conf. Usage errors are reported to stderr and returned as errUsage.
func parseArgs(args []string, conf schuko.Configuration, stderr io.Writer) (*options, error) {
	program := "jlex"
	if len(args) > 0 {
		program = args[0]
		args = args[1:]
	}
	opts := &options{program: program}
	fs := flag.NewFlagSet(program, flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.engine, "engine", confString(conf, "engine", "hand"), "Scanner engine [hand|dfa]")
	fs.StringVar(&opts.format, "format", confString(conf, "format", "plain"), "Output format [plain|json|tree|digest]")
	fs.BoolVar(&opts.lexemes, "lexemes", conf.GetBool("lexemes"), "Tokens carry their source text")
	fs.StringVar(&opts.trace, "trace", confString(conf, "tracelevel.root", "Error"), "Trace level [Debug|Info|Error]")
	fs.BoolVar(&opts.interactive, "i", false, "Interactive mode")
	if err := fs.Parse(args); err != nil {
		return nil, usage(stderr, program)
	}
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "trace" {
			opts.traceSet = true
		}
	})
	switch {
	case opts.interactive:
		if fs.NArg() != 0 {
			fmt.Fprintln(stderr, "Interactive mode does not take a file argument")
			return nil, usage(stderr, program)
		}
	case fs.NArg() == 1:
		opts.path = fs.Arg(0)
	default:
		return nil, usage(stderr, program)
	}
	if opts.engine != "hand" && opts.engine != "dfa" {
		fmt.Fprintf(stderr, "Unknown engine %q\n", opts.engine)
		return nil, usage(stderr, program)
	}
	if _, ok := formatters[opts.format]; !ok {
		fmt.Fprintf(stderr, "Unknown format %q\n", opts.format)
		return nil, usage(stderr, program)
	}
	return opts, nil
}

func usage(stderr io.Writer, program string) error {
	fmt.Fprintf(stderr, "Usage: %s <file_path>\n", program)
	return errUsage
}

func confString(conf schuko.Configuration, key, dflt string) string {
	if conf.IsSet(key) {
		return conf.GetString(key)
	}
	return dflt
}

// traceLevels returns the trace level settings to apply on top of conf. A
// level given explicitly on the command line holds for all jlex tracers.
// Otherwise level only fills in tracers without a configured level.
func traceLevels(conf schuko.Configuration, level string, explicit bool) map[string]string {
	levels := make(map[string]string, len(tracerKeys))
	for _, key := range tracerKeys {
		key = "tracelevel." + key
		if explicit || !conf.IsSet(key) {
			levels[key] = level
		}
	}
	return levels
}

// setupTracing installs Go logging as the tracing backend and applies the
// trace levels to the configuration.
func setupTracing(conf *koanfadapter.KConf, levels map[string]string) {
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	for key, level := range levels {
		conf.Set(key, level)
	}
	if err := trace2go.ConfigureRoot(conf, "tracelevel", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Fprintf(os.Stderr, "cannot configure tracing: %v\n", err)
		return
	}
	tracing.SetTraceSelector(trace2go.Selector())
	tracer().Infof("Trace level is %s", conf.GetString("tracelevel.jlex.cli"))
}

// execute scans the input file and writes the token stream to stdout.
// Lexical errors go to stderr.
func execute(opts *options, stdout, stderr io.Writer) int {
	f, err := os.Open(opts.path)
	if err != nil {
		tracer().Debugf("open: %v", err)
		fmt.Fprintf(stderr, "Could not open %s for reading!\n", opts.path)
		return exitNoInput
	}
	defer f.Close()
	input, err := io.ReadAll(f)
	if err != nil {
		tracer().Debugf("read: %v", err)
		fmt.Fprintf(stderr, "Could not open %s for reading!\n", opts.path)
		return exitNoInput
	}
	sink := scanner.StreamSink{W: stderr}
	tokenizer, err := opts.tokenizer(opts.path, input, sink)
	if err != nil {
		tracer().Errorf("cannot create scanner: %v", err)
		return 1
	}
	tokens := tokenizer.ScanTokens()
	tracer().Infof("%d tokens scanned from %s", len(tokens), opts.path)
	if err := formatters[opts.format](stdout, opts.path, tokens); err != nil {
		tracer().Errorf("cannot write tokens: %v", err)
		return 1
	}
	return 0
}

// tokenizer creates a scanner for input, using the engine selected by opts.
func (opts *options) tokenizer(sourceID string, input []byte, sink scanner.Sink) (jlex.Tokenizer, error) {
	scopts := []scanner.Option{
		scanner.Diagnostics(sink),
		scanner.KeepLexemes(opts.lexemes),
	}
	if opts.engine == "dfa" {
		lm, err := dfa()
		if err != nil {
			return nil, err
		}
		return lm.Scanner(input, scopts...)
	}
	return scanner.StringScanner(sourceID, string(input), scopts...), nil
}

var lmOnce sync.Once // monitors one-time compilation of the DFA
var lmAdapter *lexmach.LMAdapter
var lmErr error

func dfa() (*lexmach.LMAdapter, error) {
	lmOnce.Do(func() {
		lmAdapter, lmErr = lexmach.NewLMAdapter()
	})
	return lmAdapter, lmErr
}
