package scanner

import (
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func symbols(toks []Token) []Symbol {
	syms := make([]Symbol, len(toks))
	for i, t := range toks {
		syms[i] = t.Symbol()
	}
	return syms
}

func equalSymbols(a, b []Symbol) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestScanExpression(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sdt.scanner")
	defer teardown()
	//
	toks := Scan("1 + 2 * 3")
	expected := []Symbol{Number, Plus, Number, Times, Number, EndOfInput}
	if !equalSymbols(symbols(toks), expected) {
		t.Errorf("expected %v, have %v", expected, symbols(toks))
	}
	if toks[0].Category() != CatNumber || toks[1].Category() != CatOperator {
		t.Errorf("unexpected categories %v, %v", toks[0].Category(), toks[1].Category())
	}
}

func TestScanWithoutSpaces(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sdt.scanner")
	defer teardown()
	//
	var inputs = []struct {
		line string
		syms []Symbol
	}{
		{"(1+2)*3", []Symbol{Lparen, Number, Plus, Number, Rparen, Times, Number, EndOfInput}},
		{"a:=b<=c", []Symbol{Identifier, Becomes, Identifier, Leq, Identifier, EndOfInput}},
		{"x>=1;y#2.", []Symbol{Identifier, Geq, Number, Semicolon, Identifier, Neq, Number, Period, EndOfInput}},
		{"a<b,c>d", []Symbol{Identifier, Lss, Identifier, Comma, Identifier, Gtr, Identifier, EndOfInput}},
		{"", []Symbol{EndOfInput}},
	}
	for i, input := range inputs {
		toks := Scan(input.line)
		if !equalSymbols(symbols(toks), input.syms) {
			t.Errorf("#%d %q: expected %v, have %v", i, input.line, input.syms, symbols(toks))
		}
	}
}

func TestScanKeywords(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sdt.scanner")
	defer teardown()
	//
	toks := Scan("VAR x; BEGIN while odd x do x := x - 1 END ender")
	expected := []Symbol{VarSym, Identifier, Semicolon, BeginSym, WhileSym, OddSym,
		Identifier, DoSym, Identifier, Becomes, Identifier, Minus, Number, EndSym,
		Identifier, EndOfInput}
	if !equalSymbols(symbols(toks), expected) {
		t.Errorf("expected %v, have %v", expected, symbols(toks))
	}
	if toks[0].Lexeme() != "var" {
		t.Errorf("expected lexeme to be lower-cased, have %q", toks[0].Lexeme())
	}
	if toks[0].Category() != CatKeyword {
		t.Errorf("expected keyword category for 'var', have %v", toks[0].Category())
	}
}

func TestScanAllKeywords(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sdt.scanner")
	defer teardown()
	//
	for _, kw := range keywords {
		toks := Scan(kw.text)
		if toks[0].Symbol() != kw.sym {
			t.Errorf("expected %q to be %v, have %v", kw.text, kw.sym, toks[0].Symbol())
		}
	}
}

func TestScanErrorContinues(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sdt.scanner")
	defer teardown()
	//
	var reported []error
	sc := New(WithErrorHandler(func(err error) {
		reported = append(reported, err)
	}))
	sc.ScanLine("1a + b_c + 7")
	toks := sc.Tokens()
	expected := []Symbol{Error, Plus, Error, Plus, Number, EndOfInput}
	if !equalSymbols(symbols(toks), expected) {
		t.Errorf("expected %v, have %v", expected, symbols(toks))
	}
	if sc.ErrorCount() != 2 || len(reported) != 2 {
		t.Fatalf("expected 2 lexical errors, have %d", len(reported))
	}
	var lexerr *LexicalError
	if !errors.As(reported[0], &lexerr) || lexerr.Word != "1a" {
		t.Errorf("expected lexical error for '1a', have %v", reported[0])
	}
	if !toks[0].IsError() || toks[0].Category() != CatError {
		t.Errorf("expected error token, have %v", toks[0])
	}
}

func TestScanMultipleLines(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sdt.scanner")
	defer teardown()
	//
	sc := New()
	if err := sc.ScanReader(strings.NewReader("1 +\n(2\n*3)")); err != nil {
		t.Fatal(err)
	}
	toks := sc.Tokens()
	if len(toks) != 8 {
		t.Fatalf("expected 8 tokens, have %d", len(toks))
	}
	if toks[2].Line() != 2 || toks[5].Line() != 3 {
		t.Errorf("unexpected line numbers %d, %d", toks[2].Line(), toks[5].Line())
	}
	eoi := toks[len(toks)-1]
	if eoi.Symbol() != EndOfInput || eoi.Category() != CatError || eoi.Lexeme() != "" {
		t.Errorf("unexpected end marker %v", eoi)
	}
	if sc.Lines() != 3 {
		t.Errorf("expected 3 lines, have %d", sc.Lines())
	}
}

func TestTokensAreCopied(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sdt.scanner")
	defer teardown()
	//
	sc := New()
	sc.ScanLine("a")
	first := sc.Tokens()
	sc.ScanLine("b")
	second := sc.Tokens()
	if len(first) != 2 || len(second) != 3 {
		t.Errorf("expected 2 and 3 tokens, have %d and %d", len(first), len(second))
	}
	if first[1].Symbol() != EndOfInput {
		t.Errorf("earlier token slice has been modified: %v", first)
	}
}

func TestReport(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sdt.scanner")
	defer teardown()
	//
	var b strings.Builder
	if err := WriteReport(&b, Scan("x * 12")); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimRight(b.String(), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 report lines, have %d", len(lines))
	}
	if f := strings.Fields(lines[2]); len(f) != 3 || f[0] != "12" || f[1] != "Number" || f[2] != "Number" {
		t.Errorf("unexpected report line %q", lines[2])
	}
	if f := strings.Fields(lines[3]); len(f) != 3 || f[0] != "<EndOfInput>" || f[2] != "EndOfInput" {
		t.Errorf("unexpected report line for end marker %q", lines[3])
	}
	if strings.HasPrefix(lines[3], " ") {
		t.Errorf("report line for end marker has an empty text column")
	}
}

func TestScanLongLine(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sdt.scanner")
	defer teardown()
	//
	terms := 20001
	line := strings.Repeat("1 + ", terms-1) + "1"
	sc := New()
	if err := sc.ScanReader(strings.NewReader(line + "\n2\r\n")); err != nil {
		t.Fatal(err)
	}
	toks := sc.Tokens()
	if len(toks) != 2*terms-1+2 {
		t.Fatalf("expected %d tokens, have %d", 2*terms-1+2, len(toks))
	}
	if sc.Lines() != 2 || toks[len(toks)-2].Lexeme() != "2" || toks[len(toks)-2].Line() != 2 {
		t.Errorf("unexpected last token %v in line %d", toks[len(toks)-2], toks[len(toks)-2].Line())
	}
	if sc.ErrorCount() != 0 {
		t.Errorf("expected no lexical errors, have %d", sc.ErrorCount())
	}
}

func TestScanStringTrailingNewline(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sdt.scanner")
	defer teardown()
	//
	toks := ScanString("1 + 2\n")
	if eoi := toks[len(toks)-1]; eoi.Line() != 1 {
		t.Errorf("expected end marker in line 1, have line %d", eoi.Line())
	}
	toks = ScanString("1 +\n2\n")
	if eoi := toks[len(toks)-1]; eoi.Line() != 2 {
		t.Errorf("expected end marker in line 2, have line %d", eoi.Line())
	}
}
