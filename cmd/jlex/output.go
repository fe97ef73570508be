package main

import (
	"fmt"
	"io"

	"github.com/cnf/structhash"
	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
	"github.com/npillmayer/jlex"
	"github.com/pterm/pterm"
)

// formatter writes a token stream in a specific output format.
type formatter func(w io.Writer, sourceID string, tokens []jlex.Token) error

var formatters = map[string]formatter{
	"plain":  writePlain,
	"json":   writeJSON,
	"tree":   writeTree,
	"digest": writeDigest,
}

// writePlain writes one token per line, in the canonical token format.
func writePlain(w io.Writer, _ string, tokens []jlex.Token) error {
	for _, token := range tokens {
		if _, err := fmt.Fprintln(w, token.String()); err != nil {
			return err
		}
	}
	return nil
}

// tokenRecord is the exported form of a token, for JSON output and digests.
type tokenRecord struct {
	Kind    jlex.TokType `json:"kind"`
	Ordinal int          `json:"ordinal"`
	Lexeme  string       `json:"lexeme"`
	Literal string       `json:"literal"`
	Line    int          `json:"line"`
	Span    jlex.Span    `json:"span"`
}

func records(tokens []jlex.Token) []tokenRecord {
	recs := make([]tokenRecord, len(tokens))
	for i, t := range tokens {
		recs[i] = tokenRecord{
			Kind:    t.TokType(),
			Ordinal: int(t.TokType()),
			Lexeme:  t.Lexeme(),
			Literal: t.Literal(),
			Line:    t.Line(),
			Span:    t.Span(),
		}
	}
	return recs
}

func writeJSON(w io.Writer, _ string, tokens []jlex.Token) error {
	if err := json.MarshalWrite(w, records(tokens), jsontext.WithIndent("  "), jsontext.AllowInvalidUTF8(true)); err != nil {
		return fmt.Errorf("cannot encode tokens: %w", err)
	}
	_, err := io.WriteString(w, "\n")
	return err
}

// writeDigest writes a hash of the token stream. Equal token streams have
// equal digests.
func writeDigest(w io.Writer, _ string, tokens []jlex.Token) error {
	digest, err := tokenDigest(tokens)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, digest)
	return err
}

func tokenDigest(tokens []jlex.Token) (string, error) {
	stream := struct {
		Tokens []tokenRecord
	}{
		Tokens: records(tokens),
	}
	digest, err := structhash.Hash(stream, 1)
	if err != nil {
		return "", fmt.Errorf("cannot hash tokens: %w", err)
	}
	return digest, nil
}

// writeTree prints the token stream as a tree on the terminal, with objects
// and arrays as sub-trees. pterm always prints to stdout, w is ignored.
func writeTree(_ io.Writer, sourceID string, tokens []jlex.Token) error {
	pterm.Println(sourceID)
	root := pterm.NewTreeFromLeveledList(leveledTokens(tokens))
	pterm.DefaultTree.WithRoot(root).Render()
	return nil
}

// leveledTokens assigns a nesting level to each token. Opening braces and
// brackets stay on the level of their container, their contents go one level
// deeper.
func leveledTokens(tokens []jlex.Token) pterm.LeveledList {
	var ll pterm.LeveledList
	level := 0
	for _, token := range tokens {
		switch token.TokType() {
		case jlex.RightBrace, jlex.RightParen:
			if level > 0 {
				level--
			}
		}
		ll = append(ll, pterm.LeveledListItem{
			Level: level,
			Text:  treeText(token),
		})
		switch token.TokType() {
		case jlex.LeftBrace, jlex.LeftParen:
			level++
		}
	}
	return ll
}

func treeText(token jlex.Token) string {
	if token.TokType() == jlex.String {
		return fmt.Sprintf("%s %q (line %d)", token.TokType(), token.Literal(), token.Line())
	}
	return fmt.Sprintf("%s (line %d)", token.TokType(), token.Line())
}
