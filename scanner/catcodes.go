package scanner

import "github.com/npillmayer/jlex"

// --- Category codes --------------------------------------------------------

// CatCode is the category of an input byte, as far as dispatching in the
// scanner is concerned.
type CatCode int16

const (
	illegalCatCode CatCode = iota // no token starts with this byte
	catPunct                      // single byte structural token
	catQuote                      // start of a string
	catSpace                      // skipped
	catNewline                    // skipped, counts lines
)

type catEntry struct {
	cat  CatCode
	kind jlex.TokType
}

// catcodeTable is keyed by exact byte value; all entries are ASCII, so every
// byte of a multi-byte UTF-8 sequence is illegal. Brackets map to LeftParen and
// RightParen; consumers of the token stream rely on these ordinals.
var catcodeTable = map[rune]catEntry{
	'{':  {catPunct, jlex.LeftBrace},
	'}':  {catPunct, jlex.RightBrace},
	'[':  {catPunct, jlex.LeftParen},
	']':  {catPunct, jlex.RightParen},
	',':  {catPunct, jlex.Comma},
	':':  {catPunct, jlex.Colon},
	'"':  {cat: catQuote},
	' ':  {cat: catSpace},
	'\r': {cat: catSpace},
	'\t': {cat: catSpace},
	'\n': {cat: catNewline},
}

// categorize returns the category code for r and, for catPunct, the token
// category to emit.
func categorize(r rune) (CatCode, jlex.TokType) {
	if e, ok := catcodeTable[r]; ok {
		return e.cat, e.kind
	}
	return illegalCatCode, 0
}

// Punctuation returns the token category a structural character is scanned as.
func Punctuation(r rune) (jlex.TokType, bool) {
	cat, kind := categorize(r)
	return kind, cat == catPunct
}
