package grammar

import (
	"fmt"
	"sync"

	"github.com/npillmayer/sdt/scanner"
)

// Production ids of the expression grammar. They are the ids of the semantic
// actions as well.
const (
	ExprRule         = 1
	SignAddOp        = 2
	SignNone         = 3
	TermRule         = 4
	FactorNumber     = 5
	FactorParens     = 6
	AddOpPlus        = 7
	AddOpMinus       = 8
	MulOpTimes       = 9
	MulOpSlash       = 10
	ExprTailMore     = 11
	ExprTailEnd      = 12
	TermTailMore     = 13
	TermTailEnd      = 14
	FactorIdentifier = 15
)

// ExpressionRules is the number of productions of the expression grammar.
const ExpressionRules = 15

// Expressions creates the expression grammar.
func Expressions() (*Grammar, error) {
	b := NewBuilder("expressions")
	b.LHS(Expr).N(Sign).N(Term).N(ExprTail).End(ExprRule)
	b.LHS(Sign).N(AddOp).End(SignAddOp)
	b.LHS(Sign).Epsilon(SignNone)
	b.LHS(ExprTail).N(AddOp).N(Term).N(ExprTail).End(ExprTailMore)
	b.LHS(ExprTail).Epsilon(ExprTailEnd)
	b.LHS(Term).N(Factor).N(TermTail).End(TermRule)
	b.LHS(TermTail).N(MulOp).N(Factor).N(TermTail).End(TermTailMore)
	b.LHS(TermTail).Epsilon(TermTailEnd)
	b.LHS(Factor).T(scanner.Number).End(FactorNumber)
	b.LHS(Factor).T(scanner.Lparen).N(Expr).T(scanner.Rparen).End(FactorParens)
	b.LHS(Factor).T(scanner.Identifier).End(FactorIdentifier)
	b.LHS(AddOp).T(scanner.Plus).End(AddOpPlus)
	b.LHS(AddOp).T(scanner.Minus).End(AddOpMinus)
	b.LHS(MulOp).T(scanner.Times).End(MulOpTimes)
	b.LHS(MulOp).T(scanner.Slash).End(MulOpSlash)
	return b.Grammar()
}

var expressions struct {
	once  sync.Once
	table *Table
}

// ExpressionTable returns the selection table of the expression grammar. It
// is built once and shared; tables are read-only after construction.
// ExpressionTable panics if the grammar cannot be built, which is a
// programming error.
func ExpressionTable() *Table {
	expressions.once.Do(func() {
		g, err := Expressions()
		if err != nil {
			panic(fmt.Errorf("cannot create expression grammar: %w", err))
		}
		g.Dump()
		t, err := BuildTable(Analyze(g))
		if err != nil {
			panic(fmt.Errorf("cannot create selection table: %w", err))
		}
		t.Dump()
		expressions.table = t
	})
	return expressions.table
}

// Select returns the production of the expression grammar to expand for
// non-terminal k and lookahead la, if any.
func Select(k Kind, la scanner.Symbol) (Production, bool) {
	return ExpressionTable().Select(k, la)
}
