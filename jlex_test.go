package jlex

import "testing"

func TestTokTypeOrdinals(t *testing.T) {
	for i, kind := range []TokType{LeftParen, RightParen, LeftBrace, RightBrace, Comma,
		DoubleQuote, Colon, String, Number, Bool, Nil, EndOfInput} {
		if int(kind) != i {
			t.Errorf("expected %s to have ordinal %d, has %d", kind, i, int(kind))
		}
	}
	if s := TokType(42).String(); s != "TokType(42)" {
		t.Errorf("unexpected name for unknown category: %q", s)
	}
}

func TestTokenString(t *testing.T) {
	for i, test := range []struct {
		token Token
		out   string
	}{
		{MakeToken(LeftBrace, "", "", 1), "Token<2, , , 1>"},
		{MakeToken(String, "", "abc", 3), "Token<7, , abc, 3>"},
		{MakeToken(EndOfInput, "", "", 12), "Token<11, , , 12>"},
		{MakeToken(LeftParen, "[", "", 0), "Token<0, [, , 0>"},
		{MakeToken(Colon, "", "", -4), "Token<6, , , -4>"},
	} {
		if s := test.token.String(); s != test.out {
			t.Errorf("test %d: expected %q, have %q", i, test.out, s)
		}
	}
}

func TestTokenWithSpanKeepsOriginal(t *testing.T) {
	tok := MakeToken(String, "", "k", 1)
	spanned := tok.WithSpan(Span{4, 7})
	if !tok.Span().IsNull() {
		t.Errorf("expected original token to stay without span, has %v", tok.Span())
	}
	if spanned.Span().Len() != 3 || spanned.Span().From() != 4 {
		t.Errorf("expected span (4…7), have %v", spanned.Span())
	}
	if spanned.String() != tok.String() {
		t.Errorf("span must not change rendering: %q vs %q", spanned, tok)
	}
}

func TestSpanExtend(t *testing.T) {
	s := Span{5, 8}.Extend(Span{2, 6})
	if s != (Span{2, 8}) {
		t.Errorf("expected (2…8), have %v", s)
	}
	if s.String() != "(2…8)" {
		t.Errorf("unexpected span rendering %q", s.String())
	}
}
