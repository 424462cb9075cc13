package grammar

import (
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/npillmayer/sdt/scanner"
)

// Analysis holds the FIRST and FOLLOW sets of a grammar.
//
// Refer to "Crafting A Compiler" by Charles N. Fisher & Richard J. LeBlanc, Jr.
// Section 4.5 (FIRST and FOLLOW sets).
type Analysis struct {
	g        *Grammar
	nullable [KindCount]bool
	first    [KindCount]*treeset.Set
	follow   [KindCount]*treeset.Set
}

func symbolComparator(a, b interface{}) int {
	return int(a.(scanner.Symbol)) - int(b.(scanner.Symbol))
}

func newSymbolSet() *treeset.Set {
	return treeset.NewWith(symbolComparator)
}

// Analyze computes FIRST and FOLLOW sets for all non-terminals of g.
func Analyze(g *Grammar) *Analysis {
	a := &Analysis{g: g}
	for k := 0; k < KindCount; k++ {
		a.first[k] = newSymbolSet()
		a.follow[k] = newSymbolSet()
	}
	a.computeFirst()
	a.computeFollow()
	return a
}

// Grammar returns the analyzed grammar.
func (a *Analysis) Grammar() *Grammar {
	return a.g
}

// Nullable is true if k derives ε.
func (a *Analysis) Nullable(k Kind) bool {
	return a.nullable[k]
}

// First returns FIRST(k) in symbol order. ε is not part of the set; use
// Nullable.
func (a *Analysis) First(k Kind) []scanner.Symbol {
	return symbolsOf(a.first[k])
}

// Follow returns FOLLOW(k) in symbol order.
func (a *Analysis) Follow(k Kind) []scanner.Symbol {
	return symbolsOf(a.follow[k])
}

// FirstOf returns the terminals which may start seq and whether seq may
// derive ε. Action symbols are transparent.
func (a *Analysis) FirstOf(seq []Symbol) ([]scanner.Symbol, bool) {
	set, nullable := a.firstOfSeq(seq)
	return symbolsOf(set), nullable
}

func (a *Analysis) firstOfSeq(seq []Symbol) (*treeset.Set, bool) {
	set := newSymbolSet()
	for _, sym := range seq {
		switch {
		case sym.IsAction() || sym.IsEpsilon():
			continue
		case sym.IsTerminal():
			set.Add(sym.Terminal())
			return set, false
		default:
			set.Add(a.first[sym.Kind()].Values()...)
			if !a.nullable[sym.Kind()] {
				return set, false
			}
		}
	}
	return set, true
}

func (a *Analysis) computeFirst() {
	for changed := true; changed; {
		changed = false
		a.g.EachRule(func(p Production) {
			set, nullable := a.firstOfSeq(p.RHS)
			first := a.first[p.LHS]
			size := first.Size()
			first.Add(set.Values()...)
			if first.Size() != size {
				changed = true
			}
			if nullable && !a.nullable[p.LHS] {
				a.nullable[p.LHS] = true
				changed = true
			}
		})
	}
}

func (a *Analysis) computeFollow() {
	a.follow[a.g.Start].Add(scanner.EndOfInput)
	for changed := true; changed; {
		changed = false
		a.g.EachRule(func(p Production) {
			for i, sym := range p.RHS {
				if !sym.IsNonTerminal() {
					continue
				}
				follow := a.follow[sym.Kind()]
				size := follow.Size()
				set, nullable := a.firstOfSeq(p.RHS[i+1:])
				follow.Add(set.Values()...)
				if nullable {
					follow.Add(a.follow[p.LHS].Values()...)
				}
				if follow.Size() != size {
					changed = true
				}
			}
		})
	}
}

func symbolsOf(set *treeset.Set) []scanner.Symbol {
	syms := make([]scanner.Symbol, 0, set.Size())
	for _, v := range set.Values() {
		syms = append(syms, v.(scanner.Symbol))
	}
	return syms
}
