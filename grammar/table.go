package grammar

import (
	"fmt"
	"strings"

	"github.com/npillmayer/sdt/grammar/sparse"
	"github.com/npillmayer/sdt/scanner"
)

// Table is an LL(1) selection table: for a non-terminal kind and a lookahead
// symbol it names the production to expand.
type Table struct {
	ga        *Analysis
	matrix    *sparse.IntMatrix // rows: kinds, columns: scanner symbols
	conflicts []Conflict
}

// Conflict is an LL(1) conflict: two productions for the same non-terminal
// are selected by the same lookahead.
type Conflict struct {
	Kind      Kind
	Lookahead scanner.Symbol
	First     int // production id
	Second    int // production id
}

func (c Conflict) String() string {
	return fmt.Sprintf("%s/%s: productions %d and %d", c.Kind, c.Lookahead, c.First, c.Second)
}

// ConflictError is returned by BuildTable for grammars which are not LL(1).
type ConflictError struct {
	Grammar   string
	Conflicts []Conflict
}

func (e *ConflictError) Error() string {
	c := make([]string, len(e.Conflicts))
	for i, conflict := range e.Conflicts {
		c[i] = conflict.String()
	}
	return fmt.Sprintf("grammar %s is not LL(1): %s", e.Grammar, strings.Join(c, "; "))
}

// BuildTable creates the selection table for an analyzed grammar. For every
// production A ➞ α, the production is entered for all terminals of
// FIRST(α) and, if α is nullable, for all terminals of FOLLOW(A).
//
// If the grammar has conflicts, BuildTable returns the table together with
// a *ConflictError. Selection then uses the first production entered.
func BuildTable(ga *Analysis) (*Table, error) {
	t := &Table{
		ga:     ga,
		matrix: sparse.NewIntMatrix(KindCount, scanner.SymbolCount, sparse.DefaultNullValue),
	}
	ga.g.EachRule(func(p Production) {
		set, nullable := ga.firstOfSeq(p.RHS)
		for _, la := range symbolsOf(set) {
			t.enter(p, la)
		}
		if nullable {
			for _, la := range ga.Follow(p.LHS) {
				t.enter(p, la)
			}
		}
	})
	if len(t.conflicts) > 0 {
		return t, &ConflictError{Grammar: ga.g.Name, Conflicts: t.conflicts}
	}
	return t, nil
}

func (t *Table) enter(p Production, la scanner.Symbol) {
	tracer().Debugf("    table entry [%s,%s] = %d", p.LHS, la, p.ID)
	if t.matrix.Add(int(p.LHS), int(la), int32(p.ID)) {
		a, _ := t.matrix.Values(int(p.LHS), int(la))
		c := Conflict{Kind: p.LHS, Lookahead: la, First: int(a), Second: p.ID}
		tracer().Errorf("LL(1) conflict %v", c)
		t.conflicts = append(t.conflicts, c)
	}
}

// Analysis returns the grammar analysis the table has been built from.
func (t *Table) Analysis() *Analysis {
	return t.ga
}

// Grammar returns the grammar of the table.
func (t *Table) Grammar() *Grammar {
	return t.ga.g
}

// Conflicts returns the LL(1) conflicts found during construction.
func (t *Table) Conflicts() []Conflict {
	return t.conflicts
}

// Select returns the production to expand for non-terminal k if the
// lookahead is la. The second return value is false if there is no such
// production, which callers treat as a syntax error.
func (t *Table) Select(k Kind, la scanner.Symbol) (Production, bool) {
	if int(la) < 0 || int(la) >= scanner.SymbolCount {
		return Production{}, false
	}
	id := t.matrix.Value(int(k), int(la))
	if id == t.matrix.NullValue() {
		return Production{}, false
	}
	return t.ga.g.Rule(int(id))
}

// Expected returns the lookahead symbols for which k has a production.
func (t *Table) Expected(k Kind) []scanner.Symbol {
	var syms []scanner.Symbol
	t.matrix.Each(func(i, j int, a, b int32) {
		if i == int(k) {
			syms = append(syms, scanner.Symbol(j))
		}
	})
	return syms
}

// Each calls f for every table entry, ordered by kind, then lookahead.
func (t *Table) Each(f func(k Kind, la scanner.Symbol, p Production)) {
	t.matrix.Each(func(i, j int, a, b int32) {
		p, _ := t.ga.g.Rule(int(a))
		f(Kind(i), scanner.Symbol(j), p)
	})
}

// Dump traces the table at debug level.
func (t *Table) Dump() {
	tracer().Debugf("--- selection table %s ---------------------", t.ga.g.Name)
	t.Each(func(k Kind, la scanner.Symbol, p Production) {
		tracer().Debugf("  [%-8s %-10s] %v", k, la, p)
	})
	tracer().Debugf("-----------------------------------------------")
}
