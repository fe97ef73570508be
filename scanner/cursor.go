package scanner

import "github.com/npillmayer/jlex"

// EOF is returned by peek and advance at the end of input.
const EOF rune = -1

// cursor is the state of a scan over an in-memory byte buffer.
// Bytes are read one at a time and never decoded, so every byte of a
// multi-byte or invalid UTF-8 sequence is a character of its own.
// Invariant: 0 ≤ start ≤ current ≤ len(src), line ≥ 1.
type cursor struct {
	src     string
	start   int // first byte of the current token
	current int // next byte to read
	line    int
}

func newCursor(src string) cursor {
	return cursor{src: src, line: 1}
}

func (c *cursor) atEnd() bool {
	return c.current >= len(c.src)
}

// peek returns the next byte as a rune in [0, 255], or EOF.
func (c *cursor) peek() rune {
	if c.atEnd() {
		return EOF
	}
	return rune(c.src[c.current])
}

func (c *cursor) advance() rune {
	r := c.peek()
	if r != EOF {
		c.current++
	}
	return r
}

func (c *cursor) lexeme() string {
	return c.src[c.start:c.current]
}

func (c *cursor) span() jlex.Span {
	return jlex.Span{uint64(c.start), uint64(c.current)}
}

// scanString scans the rest of a string, starting right after the opening quote
// at c.start. Newlines within the string are counted. If the input ends before a
// closing quote, scanString returns false and leaves the cursor at the end of
// input.
//
// The literal is the exact bytes between the quotes; escape sequences are not
// interpreted.
func scanString(c *cursor) (string, bool) {
	for c.peek() != '"' && !c.atEnd() {
		if c.peek() == '\n' {
			c.line++
		}
		c.advance()
	}
	if c.atEnd() {
		return "", false
	}
	c.advance() // closing quote
	return c.src[c.start+1 : c.current-1], true
}
