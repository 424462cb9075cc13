package grammar

import (
	"fmt"

	"github.com/npillmayer/sdt/scanner"
)

// Kind is the kind of a non-terminal.
type Kind int8

// Non-terminals of the expression grammar.
const (
	Expr Kind = iota
	Sign
	ExprTail
	Term
	TermTail
	Factor
	AddOp
	MulOp
)

// KindCount is the number of non-terminal kinds.
const KindCount = int(MulOp) + 1

var kindNames = [KindCount]string{"Expr", "Sign", "ExprTail", "Term", "TermTail", "Factor", "AddOp", "MulOp"}

func (k Kind) String() string {
	if k < 0 || int(k) >= KindCount {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// IsOperator is true for kinds which synthesize an operator instead of a
// value: Sign, AddOp and MulOp.
func (k Kind) IsOperator() bool {
	return k == Sign || k == AddOp || k == MulOp
}

// --- Grammar symbols -------------------------------------------------------

// Class tells apart the three flavours of grammar symbols.
type Class int8

// Classes of grammar symbols.
const (
	Terminal Class = iota
	NonTerminal
	Action
)

// Symbol is a symbol on the right hand side of a production. It is either a
// terminal (a scanner symbol), a non-terminal (a kind) or an action
// pseudo-symbol, which schedules a semantic action.
type Symbol struct {
	class  Class
	term   scanner.Symbol
	kind   Kind
	action int
}

// T creates a terminal symbol.
func T(sym scanner.Symbol) Symbol {
	return Symbol{class: Terminal, term: sym}
}

// N creates a non-terminal symbol.
func N(k Kind) Symbol {
	return Symbol{class: NonTerminal, kind: k}
}

// A creates an action symbol for production id.
func A(id int) Symbol {
	return Symbol{class: Action, action: id}
}

// Epsilon is the terminal used as the only right hand side symbol of an
// ε-production.
var Epsilon = T(scanner.Empty)

// Class returns the class of a symbol.
func (s Symbol) Class() Class { return s.class }

// IsTerminal is true for terminals, including ε.
func (s Symbol) IsTerminal() bool { return s.class == Terminal }

// IsNonTerminal is true for non-terminals.
func (s Symbol) IsNonTerminal() bool { return s.class == NonTerminal }

// IsAction is true for action pseudo-symbols.
func (s Symbol) IsAction() bool { return s.class == Action }

// IsEpsilon is true for ε.
func (s Symbol) IsEpsilon() bool { return s.class == Terminal && s.term == scanner.Empty }

// Terminal returns the scanner symbol of a terminal.
func (s Symbol) Terminal() scanner.Symbol { return s.term }

// Kind returns the kind of a non-terminal.
func (s Symbol) Kind() Kind { return s.kind }

// Action returns the production id of an action symbol.
func (s Symbol) Action() int { return s.action }

func (s Symbol) String() string {
	switch s.class {
	case NonTerminal:
		return s.kind.String()
	case Action:
		return fmt.Sprintf("@%d", s.action)
	}
	if s.IsEpsilon() {
		return "ε"
	}
	return s.term.String()
}
