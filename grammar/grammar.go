package grammar

import (
	"bytes"
	"fmt"

	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/npillmayer/sdt/scanner"
)

// Production is a grammar rule with an explicit id. Productions are shared
// read-only values; clients must not modify the RHS.
type Production struct {
	ID  int
	LHS Kind
	RHS []Symbol
}

// IsEpsilon is true for a production LHS ➞ ε.
func (p Production) IsEpsilon() bool {
	return len(p.RHS) == 1 && p.RHS[0].IsEpsilon()
}

// NonTerminals returns the kinds of non-terminals on the right hand side,
// from left to right.
func (p Production) NonTerminals() []Kind {
	var kinds []Kind
	for _, sym := range p.RHS {
		if sym.IsNonTerminal() {
			kinds = append(kinds, sym.Kind())
		}
	}
	return kinds
}

func (p Production) String() string {
	var b bytes.Buffer
	b.WriteString(fmt.Sprintf("%d: %s ➞", p.ID, p.LHS))
	for _, sym := range p.RHS {
		b.WriteByte(' ')
		b.WriteString(sym.String())
	}
	return b.String()
}

// Grammar is a set of productions with a start symbol. Grammars are
// immutable once built.
type Grammar struct {
	Name  string
	Start Kind
	rules []Production
	byID  map[int]int // production id -> index into rules
}

// Size returns the number of productions.
func (g *Grammar) Size() int {
	return len(g.rules)
}

// Rule returns the production with the given id.
func (g *Grammar) Rule(id int) (Production, bool) {
	inx, ok := g.byID[id]
	if !ok {
		return Production{}, false
	}
	return g.rules[inx], true
}

// Rules returns all productions in the order they have been defined.
func (g *Grammar) Rules() []Production {
	r := make([]Production, len(g.rules))
	copy(r, g.rules)
	return r
}

// EachRule iterates over the productions in the order they have been defined.
func (g *Grammar) EachRule(f func(Production)) {
	for _, p := range g.rules {
		f(p)
	}
}

// Dump traces the grammar at debug level.
func (g *Grammar) Dump() {
	tracer().Debugf("--- grammar %s -------------------------------", g.Name)
	for _, p := range g.rules {
		tracer().Debugf("  %v", p)
	}
	tracer().Debugf("-----------------------------------------------")
}

// --- Builder ---------------------------------------------------------------

// Builder collects productions. The LHS of the first production is the
// start symbol.
type Builder struct {
	name  string
	rules *arraylist.List
	err   error
}

// NewBuilder creates a builder for a named grammar.
func NewBuilder(name string) *Builder {
	return &Builder{
		name:  name,
		rules: arraylist.New(),
	}
}

// RuleBuilder collects the right hand side of a single production.
type RuleBuilder struct {
	b   *Builder
	lhs Kind
	rhs []Symbol
}

// LHS starts a new production.
func (b *Builder) LHS(k Kind) *RuleBuilder {
	return &RuleBuilder{b: b, lhs: k}
}

// N appends a non-terminal.
func (rb *RuleBuilder) N(k Kind) *RuleBuilder {
	rb.rhs = append(rb.rhs, N(k))
	return rb
}

// T appends a terminal.
func (rb *RuleBuilder) T(sym scanner.Symbol) *RuleBuilder {
	rb.rhs = append(rb.rhs, T(sym))
	return rb
}

// End closes the production and assigns it an id.
func (rb *RuleBuilder) End(id int) {
	if len(rb.rhs) == 0 {
		rb.b.fail(fmt.Errorf("production %d for %s has empty right hand side, use Epsilon", id, rb.lhs))
		return
	}
	rb.b.rules.Add(Production{ID: id, LHS: rb.lhs, RHS: rb.rhs})
}

// Epsilon closes the production as an ε-production.
func (rb *RuleBuilder) Epsilon(id int) {
	if len(rb.rhs) != 0 {
		rb.b.fail(fmt.Errorf("ε-production %d for %s has symbols", id, rb.lhs))
		return
	}
	rb.b.rules.Add(Production{ID: id, LHS: rb.lhs, RHS: []Symbol{Epsilon}})
}

func (b *Builder) fail(err error) {
	tracer().Errorf(err.Error())
	if b.err == nil {
		b.err = err
	}
}

// Grammar checks the collected productions and returns the grammar. It is
// an error to use a production id twice or to reference a non-terminal
// without productions.
func (b *Builder) Grammar() (*Grammar, error) {
	if b.err != nil {
		return nil, b.err
	}
	if b.rules.Empty() {
		return nil, fmt.Errorf("grammar %s has no productions", b.name)
	}
	g := &Grammar{
		Name:  b.name,
		rules: make([]Production, 0, b.rules.Size()),
		byID:  make(map[int]int, b.rules.Size()),
	}
	defined := make(map[Kind]bool)
	it := b.rules.Iterator()
	for it.Next() {
		p := it.Value().(Production)
		if len(g.rules) == 0 {
			g.Start = p.LHS
		}
		if _, dup := g.byID[p.ID]; dup {
			return nil, fmt.Errorf("grammar %s: duplicate production id %d", b.name, p.ID)
		}
		g.byID[p.ID] = len(g.rules)
		g.rules = append(g.rules, p)
		defined[p.LHS] = true
	}
	for _, p := range g.rules {
		for _, k := range p.NonTerminals() {
			if !defined[k] {
				return nil, fmt.Errorf("grammar %s: non-terminal %s has no productions", b.name, k)
			}
		}
	}
	return g, nil
}
