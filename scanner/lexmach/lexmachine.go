package lexmach

import (
	"bytes"

	"github.com/npillmayer/jlex"
	"github.com/npillmayer/jlex/scanner"
	"github.com/npillmayer/schuko/tracing"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// tracer traces with key 'jlex.lexmach'.
func tracer() tracing.Trace {
	return tracing.Select("jlex.lexmach")
}

// unterminated is the token ID for a string running up to the end of input.
const unterminated = -1

// The tokens representing literal one-byte lexemes
var literals = []string{"{", "}", "[", "]", ",", ":"}

// LMAdapter is a lexmachine adapter to use lexmachine as a jlex scanner.
type LMAdapter struct {
	Lexer *lexmachine.Lexer
}

// NewLMAdapter creates a new lexmachine adapter and compiles the DFA for jlex
// tokens. Literals get the same token categories as with package scanner.
//
// NewLMAdapter will return an error if compiling the DFA failed.
func NewLMAdapter() (*LMAdapter, error) {
	adapter := &LMAdapter{}
	adapter.Lexer = lexmachine.NewLexer()
	for _, lit := range literals {
		kind, _ := scanner.Punctuation(rune(lit[0]))
		adapter.Lexer.Add([]byte("\\"+lit), MakeToken(int(kind)))
	}
	adapter.Lexer.Add([]byte(`\"[^"]*\"`), MakeToken(int(jlex.String)))
	adapter.Lexer.Add([]byte(`\"[^"]*`), MakeToken(unterminated))
	adapter.Lexer.Add([]byte(`( |\t|\r|\n)+`), Skip)
	if err := adapter.Lexer.Compile(); err != nil {
		tracer().Errorf("Error compiling DFA: %v", err)
		return nil, err
	}
	return adapter, nil
}

// Scanner creates a scanner for a given input. The scanner will implement the
// jlex.Tokenizer interface.
func (lm *LMAdapter) Scanner(input []byte, opts ...scanner.Option) (*LMScanner, error) {
	s, err := lm.Lexer.Scanner(input)
	if err != nil {
		return nil, err
	}
	return &LMScanner{
		scanner:  s,
		settings: scanner.Apply(opts...),
		line:     1,
	}, nil
}

// LMScanner is a scanner type for lexmachine scanners, implementing the
// jlex.Tokenizer interface. Like scanner.Scanner it is meant for a single
// call to ScanTokens.
type LMScanner struct {
	scanner  *lexmachine.Scanner
	settings scanner.Settings
	tokens   []jlex.Token
	done     bool
	pos      int // byte offset up to which lines are counted
	line     int // line at pos
}

var _ jlex.Tokenizer = (*LMScanner)(nil)

// ScanTokens is part of the jlex.Tokenizer interface.
func (lms *LMScanner) ScanTokens() []jlex.Token {
	if lms.done {
		tracer().Infof("lexmachine scanner already consumed")
		return append([]jlex.Token(nil), lms.tokens...)
	}
	lms.done = true
	text := lms.scanner.Text
	for {
		tok, err, eof := lms.scanner.Next()
		if eof {
			break
		}
		if err != nil {
			lms.skip(err)
			continue
		}
		token := tok.(*lexmachine.Token)
		start := lms.countTo(token.TC)
		end := lms.countTo(token.TC + len(token.Lexeme))
		switch token.Type {
		case unterminated:
			scanner.Error(lms.settings.Sink, lms.line, "Unterminated string.")
		case int(jlex.String):
			literal := string(token.Lexeme[1 : len(token.Lexeme)-1])
			lms.addToken(jlex.String, token.Lexeme, literal, jlex.Span{start, end})
		default:
			lms.addToken(jlex.TokType(token.Type), token.Lexeme, "", jlex.Span{start, end})
		}
	}
	end := lms.countTo(len(text))
	lms.addToken(jlex.EndOfInput, nil, "", jlex.Span{end, end})
	return append([]jlex.Token(nil), lms.tokens...)
}

// skip reports unconsumed input as an unexpected character and moves the
// scanner behind the offending byte.
func (lms *LMScanner) skip(err error) {
	ui, is := err.(*machines.UnconsumedInput)
	if !is {
		tracer().Errorf("scanner error: %v", err)
		lms.scanner.TC = len(lms.scanner.Text)
		return
	}
	lms.countTo(ui.StartTC)
	tracer().Debugf("unconsumed input at %d: %v", ui.StartTC, err)
	scanner.Error(lms.settings.Sink, lms.line, "Unexpected character.")
	lms.scanner.TC = ui.StartTC + 1
	lms.countTo(lms.scanner.TC)
}

// countTo advances line counting to byte offset tc and returns tc as a span
// position.
func (lms *LMScanner) countTo(tc int) uint64 {
	if tc > lms.pos {
		lms.line += bytes.Count(lms.scanner.Text[lms.pos:tc], []byte{'\n'})
		lms.pos = tc
	}
	return uint64(tc)
}

func (lms *LMScanner) addToken(kind jlex.TokType, lexeme []byte, literal string, span jlex.Span) {
	lx := ""
	if lms.settings.KeepLexemes {
		lx = string(lexeme)
	}
	token := jlex.MakeToken(kind, lx, literal, lms.line).WithSpan(span)
	tracer().Debugf("token %v %v", token, token.Span())
	lms.tokens = append(lms.tokens, token)
}

// ---------------------------------------------------------------------------

// Skip is a pre-defined action which ignores the scanned match.
func Skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

// MakeToken is a pre-defined action which wraps a scanned match into a token.
func MakeToken(id int) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(id, string(m.Bytes), m), nil
	}
}
