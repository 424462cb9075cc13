/*
Package grammar holds the expression grammar of the translator and its LL(1)
selection table.

The grammar is

	Expr      ➞ Sign Term ExprTail                      (1)
	Sign      ➞ AddOp (2)  |  ε (3)
	ExprTail  ➞ AddOp Term ExprTail (11)  |  ε (12)
	Term      ➞ Factor TermTail                         (4)
	TermTail  ➞ MulOp Factor TermTail (13)  |  ε (14)
	Factor    ➞ number (5)  |  ( Expr ) (6)  |  identifier (15)
	AddOp     ➞ + (7)  |  - (8)
	MulOp     ➞ * (9)  |  / (10)

Numbers in parentheses are production ids. They double as ids of the
semantic actions attached to each production.

Grammars are created with a builder:

	b := grammar.NewBuilder("expressions")
	b.LHS(grammar.Expr).N(grammar.Sign).N(grammar.Term).N(grammar.ExprTail).End(1)
	b.LHS(grammar.Sign).Epsilon(3)
	…
	g, err := b.Grammar()

The selection table is not written by hand but computed from FIRST and
FOLLOW sets (see Analyze and BuildTable). Table construction reports LL(1)
conflicts. Selecting a production for a non-terminal and a lookahead symbol
either yields the production or reports that there is none; the latter is a
syntax error for the caller to handle.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package grammar

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'sdt.grammar'.
func tracer() tracing.Trace {
	return tracing.Select("sdt.grammar")
}
