/*
Package scanner implements the scanner for jlex input.

The scanner reads its input completely into memory and then walks a cursor over
the bytes of the input, producing a sequence of jlex.Tokens in a single pass.
Lexical errors are not returned to the caller, but reported to a diagnostics
sink. Scanning continues after an error, with the exception of unterminated
strings, which by construction exhaust the input.

	sc := scanner.StringScanner("example", `{"k":"v"}`)
	for _, token := range sc.ScanTokens() {
		fmt.Println(token)
	}

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2026 Norbert Pillmayer <norbert@pillmayer.com>

*/
package scanner

import (
	"fmt"
	"io"
	"os"

	"github.com/npillmayer/jlex"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'jlex.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("jlex.scanner")
}

// Scanner is a single-use scanner for jlex input. Create one with NewScanner
// or StringScanner.
type Scanner struct {
	sourceID string
	cur      cursor
	tokens   []jlex.Token
	settings Settings
	done     bool // ScanTokens has been called
}

var _ jlex.Tokenizer = (*Scanner)(nil)

// NewScanner creates a scanner for the complete content of input. sourceID
// identifies the input in traces.
func NewScanner(sourceID string, input io.Reader, opts ...Option) (*Scanner, error) {
	buf, err := io.ReadAll(input)
	if err != nil {
		return nil, fmt.Errorf("scanner cannot read input %q: %w", sourceID, err)
	}
	return StringScanner(sourceID, string(buf), opts...), nil
}

// StringScanner creates a scanner for an input string.
func StringScanner(sourceID string, input string, opts ...Option) *Scanner {
	s := &Scanner{
		sourceID: sourceID,
		cur:      newCursor(input),
		settings: Apply(opts...),
	}
	tracer().Debugf("scanner for %q created, %d bytes", sourceID, len(s.cur.src))
	return s
}

// ScanTokens scans the whole input and returns the token sequence, terminated
// by an EndOfInput token.
//
// A scanner is consumed by ScanTokens. Subsequent calls will not scan again, but
// return a copy of the sequence of the first call.
func (s *Scanner) ScanTokens() []jlex.Token {
	if s.done {
		tracer().Infof("scanner for %q already consumed", s.sourceID)
		return append([]jlex.Token(nil), s.tokens...)
	}
	s.done = true
	for !s.cur.atEnd() {
		s.cur.start = s.cur.current
		s.scanToken()
	}
	s.cur.start = s.cur.current
	s.addToken(jlex.EndOfInput, "")
	tracer().Debugf("scanner for %q reached end of input: %d tokens, %d lines",
		s.sourceID, len(s.tokens), s.cur.line)
	return append([]jlex.Token(nil), s.tokens...)
}

// scanToken consumes one byte and dispatches on its category.
func (s *Scanner) scanToken() {
	r := s.cur.advance()
	cat, kind := categorize(r)
	switch cat {
	case catPunct:
		s.addToken(kind, "")
	case catQuote:
		s.string()
	case catSpace:
	case catNewline:
		s.cur.line++
	default:
		tracer().Debugf("unexpected byte %#02x at line %d", r, s.cur.line)
		Error(s.settings.Sink, s.cur.line, "Unexpected character.")
	}
}

func (s *Scanner) string() {
	literal, ok := scanString(&s.cur)
	if !ok {
		Error(s.settings.Sink, s.cur.line, "Unterminated string.")
		return
	}
	s.addToken(jlex.String, literal)
}

func (s *Scanner) addToken(kind jlex.TokType, literal string) {
	lexeme := ""
	if s.settings.KeepLexemes {
		lexeme = s.cur.lexeme()
	}
	token := jlex.MakeToken(kind, lexeme, literal, s.cur.line).WithSpan(s.cur.span())
	tracer().Debugf("token %v %v", token, token.Span())
	s.tokens = append(s.tokens, token)
}

// --- Scanner options -------------------------------------------------------

// Settings is the configuration shared by all scanner engines of jlex.
type Settings struct {
	Sink        Sink // receives lexical errors
	KeepLexemes bool // fill in matched source text as lexemes
}

// Option configures a scanner.
type Option func(*Settings)

// Apply creates settings from default values and a list of options.
// The default sink writes to os.Stderr.
func Apply(opts ...Option) Settings {
	s := Settings{
		Sink: StreamSink{W: os.Stderr},
	}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// Diagnostics sets the sink for lexical errors. A nil sink restores the default.
func Diagnostics(sink Sink) Option {
	return func(s *Settings) {
		if sink == nil {
			s.Sink = StreamSink{W: os.Stderr}
			return
		}
		s.Sink = sink
	}
}

// KeepLexemes sets or clears option KeepLexemes. By default, tokens carry an
// empty lexeme, as their text is implicit from the token category. With
// KeepLexemes set, tokens carry the matched source text, quotes included.
func KeepLexemes(b bool) Option {
	return func(s *Settings) {
		s.KeepLexemes = b
	}
}
