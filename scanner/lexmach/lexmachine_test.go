package lexmach

import (
	"reflect"
	"testing"

	"github.com/npillmayer/jlex"
	"github.com/npillmayer/jlex/scanner"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

var inputStrings = []string{
	``,
	`{"k":"v"}`,
	"{ } [ ] , :",
	`"abc"`,
	"\"ab\ncd\"",
	`"unterminated`,
	"@{",
	"[12, true, null]",
	"{\n\"a\"\n:\n@\n}",
	"[\n\"abc\ndef",
	`"héllo" é ["wörld"]`,
	"\"a\"x\"",
	"{\"a\": [\"b\", @, \"c\n\"],\r\n\t\"d\": 1}\n\"open",
	"\xff\"\xfe\"",
	"\"\xff\xfe\"",
}

var tokenCounts = []int{1, 6, 7, 2, 2, 1, 2, 5, 5, 2, 5, 2, 14, 2, 2}

func TestLM(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "jlex.lexmach")
	defer teardown()
	//
	LM, err := NewLMAdapter()
	if err != nil {
		t.Fatal(err)
	}
	for i, input := range inputStrings {
		t.Logf("------+-----------------+--------")
		sc, err := LM.Scanner([]byte(input), scanner.Diagnostics(scanner.NewCollector()))
		if err != nil {
			t.Fatal(err)
		}
		tokens := sc.ScanTokens()
		for _, token := range tokens {
			t.Logf(" %4d | %15q | @%5d", token.TokType(), token.Literal(), token.Span().From())
		}
		if len(tokens) != tokenCounts[i] {
			t.Errorf("Expected token count for #%d to be %d, is %d", i, tokenCounts[i], len(tokens))
		}
	}
	t.Logf("------+-----------------+--------")
}

// Both engines have to agree on tokens, spans and diagnostics.
func TestLMAgreesWithScanner(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "jlex.lexmach", "jlex.scanner")
	defer teardown()
	//
	LM, err := NewLMAdapter()
	if err != nil {
		t.Fatal(err)
	}
	for i, input := range inputStrings {
		for _, keep := range []bool{false, true} {
			handDiag, lmDiag := scanner.NewCollector(), scanner.NewCollector()
			hand := scanner.StringScanner("hand", input,
				scanner.Diagnostics(handDiag), scanner.KeepLexemes(keep)).ScanTokens()
			sc, err := LM.Scanner([]byte(input),
				scanner.Diagnostics(lmDiag), scanner.KeepLexemes(keep))
			if err != nil {
				t.Fatal(err)
			}
			lm := sc.ScanTokens()
			if !reflect.DeepEqual(hand, lm) {
				t.Errorf("test %d (lexemes=%v): engines disagree\n hand: %v\n   lm: %v", i, keep, hand, lm)
			}
			if !reflect.DeepEqual(handDiag.Diagnostics(), lmDiag.Diagnostics()) {
				t.Errorf("test %d: diagnostics disagree\n hand: %v\n   lm: %v",
					i, handDiag.Diagnostics(), lmDiag.Diagnostics())
			}
		}
	}
}

func TestLMSingleUse(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "jlex.lexmach")
	defer teardown()
	//
	LM, err := NewLMAdapter()
	if err != nil {
		t.Fatal(err)
	}
	sc, err := LM.Scanner([]byte(`["x"]`))
	if err != nil {
		t.Fatal(err)
	}
	first := sc.ScanTokens()
	second := sc.ScanTokens()
	if len(second) != 4 || !reflect.DeepEqual(first, second) {
		t.Errorf("expected second call to return the first sequence, have %v", second)
	}
	if second[3].TokType() != jlex.EndOfInput {
		t.Errorf("expected EndOfInput at the end, have %v", second[3])
	}
}

func TestLMKeepsRawBytes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "jlex.lexmach")
	defer teardown()
	//
	LM, err := NewLMAdapter()
	if err != nil {
		t.Fatal(err)
	}
	diag := scanner.NewCollector()
	sc, err := LM.Scanner([]byte("\"\xff\xfe\" é"), scanner.Diagnostics(diag), scanner.KeepLexemes(true))
	if err != nil {
		t.Fatal(err)
	}
	tokens := sc.ScanTokens()
	if len(tokens) != 2 || tokens[0].Literal() != "\xff\xfe" || tokens[0].Lexeme() != "\"\xff\xfe\"" {
		t.Fatalf("expected string literal with bytes ff fe, have %v", tokens)
	}
	if tokens[0].Span() != (jlex.Span{0, 4}) || tokens[1].Span() != (jlex.Span{7, 7}) {
		t.Errorf("expected byte offsets (0…4) and (7…7), have %v and %v", tokens[0].Span(), tokens[1].Span())
	}
	if diag.Len() != 2 {
		t.Errorf("expected one unexpected character per byte of 'é', have %d", diag.Len())
	}
}
