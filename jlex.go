package jlex

import (
	"fmt"
	"strconv"
)

// --- Token categories ------------------------------------------------------

// TokType is a category type for a Token. The ordinal value of a TokType is part
// of a token's textual representation, therefore the order of the constants must
// not change.
type TokType int

// Token categories. Number, Bool and Nil are reserved; no scanner produces them.
const (
	LeftParen  TokType = iota // '[' (sic)
	RightParen                // ']'
	LeftBrace                 // '{'
	RightBrace                // '}'
	Comma                     // ','
	DoubleQuote               // reserved
	Colon                     // ':'
	String                    // "…"
	Number                    // reserved
	Bool                      // reserved
	Nil                       // reserved
	EndOfInput                // end of input sentinel
)

var tokTypeNames = [...]string{
	"LeftParen", "RightParen", "LeftBrace", "RightBrace", "Comma", "DoubleQuote",
	"Colon", "String", "Number", "Bool", "Nil", "EndOfInput",
}

func (t TokType) String() string {
	if t < 0 || int(t) >= len(tokTypeNames) {
		return "TokType(" + strconv.Itoa(int(t)) + ")"
	}
	return tokTypeNames[t]
}

// MarshalText encodes a token category by name.
func (t TokType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// --- Tokens ----------------------------------------------------------------

// Token represents one lexical unit of the input. Tokens are values and never
// change after construction.
//
// An example would be a token for a string:
//
//    TokType = String       // category
//    Lexeme  = ""           // structural text is implicit from the category
//    Literal = "abc"        // text between the quotes, not unescaped
//    Line    = 3            // line of the input the token ended on
//    Span    = 17…22        // occured from byte offset 17 in the input
//
type Token struct {
	kind    TokType
	lexeme  string
	literal string
	line    int
	span    Span
}

// MakeToken creates a token. No validation is performed.
func MakeToken(kind TokType, lexeme, literal string, line int) Token {
	return Token{
		kind:    kind,
		lexeme:  lexeme,
		literal: literal,
		line:    line,
	}
}

// WithSpan returns a copy of t, covering span s of the input.
func (t Token) WithSpan(s Span) Token {
	t.span = s
	return t
}

func (t Token) TokType() TokType {
	return t.kind
}

func (t Token) Lexeme() string {
	return t.lexeme
}

// Literal is the value payload of a token. It is empty for every category
// except String.
func (t Token) Literal() string {
	return t.literal
}

// Line is the 1-based input line.
func (t Token) Line() int {
	return t.line
}

func (t Token) Span() Span {
	return t.span
}

// String renders a token as
//
//    Token<{ordinal}, {lexeme}, {literal}, {line}>
//
// Downstream tooling parses this format; it must not change.
func (t Token) String() string {
	return fmt.Sprintf("Token<%d, %s, %s, %d>", int(t.kind), t.lexeme, t.literal, t.line)
}

// Tokenizer is the interface every scanner engine implements.
// ScanTokens returns the complete token sequence, terminated by a single
// EndOfInput token.
type Tokenizer interface {
	ScanTokens() []Token
}

// --- Spans ------------------------------------------------------------

// Span is a small type for capturing a run of input bytes. A span denotes a
// start position and the position just behind the end.
type Span [2]uint64 // (x…y)

// From returns the start value of a span.
func (s Span) From() uint64 {
	return s[0]
}

// To returns the end value of a span.
func (s Span) To() uint64 {
	return s[1]
}

// Len returns the length of (x…y)
func (s Span) Len() uint64 {
	return s[1] - s[0]
}

func (s Span) IsNull() bool {
	return s == Span{}
}

func (s Span) Extend(other Span) Span {
	if other[0] < s[0] {
		s[0] = other[0]
	}
	if other[1] > s[1] {
		s[1] = other[1]
	}
	return s
}

func (s Span) String() string {
	return fmt.Sprintf("(%d…%d)", s[0], s[1])
}
