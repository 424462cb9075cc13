package grammar

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/sdt/scanner"
)

func TestExpressionGrammar(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sdt.grammar")
	defer teardown()
	//
	g, err := Expressions()
	if err != nil {
		t.Fatal(err)
	}
	if g.Size() != ExpressionRules {
		t.Errorf("expected %d productions, have %d", ExpressionRules, g.Size())
	}
	if g.Start != Expr {
		t.Errorf("expected start symbol Expr, have %v", g.Start)
	}
	p, ok := g.Rule(ExprTailEnd)
	if !ok || !p.IsEpsilon() || p.LHS != ExprTail {
		t.Errorf("expected ExprTail ➞ ε for id 12, have %v", p)
	}
	p, _ = g.Rule(FactorParens)
	if kinds := p.NonTerminals(); len(kinds) != 1 || kinds[0] != Expr {
		t.Errorf("expected non-terminals [Expr] in %v, have %v", p, kinds)
	}
}

func TestBuilderErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sdt.grammar")
	defer teardown()
	//
	b := NewBuilder("dup")
	b.LHS(Expr).N(Term).End(1)
	b.LHS(Term).T(scanner.Number).End(1)
	if _, err := b.Grammar(); err == nil {
		t.Errorf("expected error for duplicate production id")
	}
	b = NewBuilder("undefined")
	b.LHS(Expr).N(Term).End(1)
	if _, err := b.Grammar(); err == nil {
		t.Errorf("expected error for non-terminal without productions")
	}
	b = NewBuilder("empty-rhs")
	b.LHS(Expr).End(1)
	if _, err := b.Grammar(); err == nil {
		t.Errorf("expected error for empty right hand side")
	}
}

func TestFirstAndFollow(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sdt.grammar")
	defer teardown()
	//
	g, _ := Expressions()
	ga := Analyze(g)
	var sets = []struct {
		kind     Kind
		first    []scanner.Symbol
		follow   []scanner.Symbol
		nullable bool
	}{
		{Expr, []scanner.Symbol{scanner.Plus, scanner.Minus, scanner.Lparen, scanner.Number, scanner.Identifier},
			[]scanner.Symbol{scanner.Rparen, scanner.EndOfInput}, false},
		{Sign, []scanner.Symbol{scanner.Plus, scanner.Minus},
			[]scanner.Symbol{scanner.Lparen, scanner.Number, scanner.Identifier}, true},
		{TermTail, []scanner.Symbol{scanner.Times, scanner.Slash},
			[]scanner.Symbol{scanner.Plus, scanner.Minus, scanner.Rparen, scanner.EndOfInput}, true},
	}
	for _, s := range sets {
		if ga.Nullable(s.kind) != s.nullable {
			t.Errorf("nullable(%s) should be %v", s.kind, s.nullable)
		}
		if !sameSymbols(ga.First(s.kind), s.first) {
			t.Errorf("FIRST(%s) = %v, expected %v", s.kind, ga.First(s.kind), s.first)
		}
		if !sameSymbols(ga.Follow(s.kind), s.follow) {
			t.Errorf("FOLLOW(%s) = %v, expected %v", s.kind, ga.Follow(s.kind), s.follow)
		}
	}
}

func sameSymbols(a, b []scanner.Symbol) bool {
	if len(a) != len(b) {
		return false
	}
	set := make(map[scanner.Symbol]bool)
	for _, s := range a {
		set[s] = true
	}
	for _, s := range b {
		if !set[s] {
			return false
		}
	}
	return true
}

// Selection sets of the expression grammar, by production id.
var selections = map[int][]scanner.Symbol{
	ExprRule:         {scanner.Plus, scanner.Minus, scanner.Identifier, scanner.Number, scanner.Lparen},
	SignAddOp:        {scanner.Plus, scanner.Minus},
	SignNone:         {scanner.Identifier, scanner.Number, scanner.Lparen},
	ExprTailMore:     {scanner.Plus, scanner.Minus},
	ExprTailEnd:      {scanner.Rparen, scanner.EndOfInput},
	TermRule:         {scanner.Identifier, scanner.Number, scanner.Lparen},
	TermTailMore:     {scanner.Times, scanner.Slash},
	TermTailEnd:      {scanner.Plus, scanner.Minus, scanner.Rparen, scanner.EndOfInput},
	FactorIdentifier: {scanner.Identifier},
	FactorNumber:     {scanner.Number},
	FactorParens:     {scanner.Lparen},
	AddOpPlus:        {scanner.Plus},
	AddOpMinus:       {scanner.Minus},
	MulOpTimes:       {scanner.Times},
	MulOpSlash:       {scanner.Slash},
}

func TestSelectionTable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sdt.grammar")
	defer teardown()
	//
	table := ExpressionTable()
	if len(table.Conflicts()) != 0 {
		t.Fatalf("expression grammar has conflicts: %v", table.Conflicts())
	}
	count := 0
	table.Grammar().EachRule(func(p Production) {
		for _, la := range selections[p.ID] {
			count++
			sel, ok := Select(p.LHS, la)
			if !ok || sel.ID != p.ID {
				t.Errorf("Select(%s, %s) should be %d, is %v (%v)", p.LHS, la, p.ID, sel.ID, ok)
			}
		}
	})
	entries := 0
	table.Each(func(Kind, scanner.Symbol, Production) { entries++ })
	if entries != count {
		t.Errorf("table has %d entries, expected %d", entries, count)
	}
}

func TestSelectNoProduction(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sdt.grammar")
	defer teardown()
	//
	var misses = []struct {
		k  Kind
		la scanner.Symbol
	}{
		{Factor, scanner.Plus},
		{Expr, scanner.Rparen},
		{MulOp, scanner.Plus},
		{ExprTail, scanner.Number},
		{Term, scanner.Error},
		{Factor, scanner.Symbol(-1)},
	}
	for _, m := range misses {
		if p, ok := Select(m.k, m.la); ok {
			t.Errorf("Select(%s, %s) should fail, selected %v", m.k, m.la, p)
		}
	}
	if exp := ExpressionTable().Expected(Factor); len(exp) != 3 {
		t.Errorf("expected 3 lookaheads for Factor, have %v", exp)
	}
}

func TestConflictDetection(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sdt.grammar")
	defer teardown()
	//
	b := NewBuilder("ambiguous")
	b.LHS(Expr).N(Term).End(1)
	b.LHS(Expr).T(scanner.Number).End(2)
	b.LHS(Term).T(scanner.Number).End(3)
	g, err := b.Grammar()
	if err != nil {
		t.Fatal(err)
	}
	table, err := BuildTable(Analyze(g))
	var cerr *ConflictError
	if !errors.As(err, &cerr) {
		t.Fatalf("expected conflict error, have %v", err)
	}
	if len(cerr.Conflicts) != 1 || cerr.Conflicts[0].Lookahead != scanner.Number {
		t.Errorf("expected one conflict on Number, have %v", cerr.Conflicts)
	}
	if p, ok := table.Select(Expr, scanner.Number); !ok || p.ID != 1 {
		t.Errorf("conflicting entry should select the first production, selected %v", p)
	}
}

func TestEBNF(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sdt.grammar")
	defer teardown()
	//
	g, err := CheckEBNF()
	if err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"Expr", "Term", "Factor", "AddOp", "MulOp", "identifier", "number"} {
		if g[name] == nil {
			t.Errorf("EBNF lacks production %s", name)
		}
	}
}
