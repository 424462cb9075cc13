package translate

import (
	"errors"

	"github.com/npillmayer/sdt/grammar"
	"github.com/npillmayer/sdt/scanner"
	"github.com/npillmayer/sdt/tac"
)

// action is a semantic action. It reads the attribute records of group g
// and writes g.owner.
type action func(c *Compilation, g *group) error

// actions is indexed by production id.
var actions = [grammar.ExpressionRules + 1]action{
	grammar.ExprRule:         exprAction,
	grammar.SignAddOp:        signAction,
	grammar.SignNone:         operatorAction(scanner.Plus),
	grammar.TermRule:         termAction,
	grammar.FactorNumber:     leafAction(scanner.Number),
	grammar.FactorParens:     parensAction,
	grammar.AddOpPlus:        operatorAction(scanner.Plus),
	grammar.AddOpMinus:       operatorAction(scanner.Minus),
	grammar.MulOpTimes:       operatorAction(scanner.Times),
	grammar.MulOpSlash:       operatorAction(scanner.Slash),
	grammar.ExprTailMore:     exprTailAction,
	grammar.ExprTailEnd:      identityAction(0, tac.AdditiveIdentity),
	grammar.TermTailMore:     termTailAction,
	grammar.TermTailEnd:      identityAction(1, tac.MultiplicativeIdentity),
	grammar.FactorIdentifier: leafAction(scanner.Identifier),
}

// runAction executes the semantic action of the production of g.
func runAction(c *Compilation, g *group) error {
	id := g.prod.ID
	if id <= 0 || id >= len(actions) || actions[id] == nil {
		return &InternalError{Production: id, Msg: "no semantic action"}
	}
	if g.owner == nil {
		return &InternalError{Production: id, Msg: "attribute group has no owner"}
	}
	if err := actions[id](c, g); err != nil {
		var ie *InternalError
		if errors.As(err, &ie) && ie.Production == 0 {
			ie.Production = id
		}
		return err
	}
	return nil
}

// Expr ➞ Sign Term ExprTail
func exprAction(c *Compilation, g *group) error {
	sign, err := g.operator(grammar.Sign)
	if err != nil {
		return err
	}
	return sumOf(c, g, sign)
}

// ExprTail ➞ AddOp Term ExprTail
func exprTailAction(c *Compilation, g *group) error {
	op, err := g.operator(grammar.AddOp)
	if err != nil {
		return err
	}
	return sumOf(c, g, op)
}

func sumOf(c *Compilation, g *group, op scanner.Symbol) error {
	term, err := g.member(grammar.Term)
	if err != nil {
		return err
	}
	tail, err := g.member(grammar.ExprTail)
	if err != nil {
		return err
	}
	return c.sum(g.owner, op, term, tail)
}

// Term ➞ Factor TermTail
func termAction(c *Compilation, g *group) error {
	return productOf(c, g, scanner.Times)
}

// TermTail ➞ MulOp Factor TermTail
func termTailAction(c *Compilation, g *group) error {
	op, err := g.operator(grammar.MulOp)
	if err != nil {
		return err
	}
	return productOf(c, g, op)
}

func productOf(c *Compilation, g *group, op scanner.Symbol) error {
	factor, err := g.member(grammar.Factor)
	if err != nil {
		return err
	}
	tail, err := g.member(grammar.TermTail)
	if err != nil {
		return err
	}
	return c.product(g.owner, op, factor, tail)
}

// Factor ➞ ( Expr )
func parensAction(c *Compilation, g *group) error {
	inner, err := g.member(grammar.Expr)
	if err != nil {
		return err
	}
	v, place, err := inner.operand()
	if err != nil {
		return err
	}
	return g.owner.synthesize(v, place)
}

// Sign ➞ AddOp
func signAction(c *Compilation, g *group) error {
	op, err := g.operator(grammar.AddOp)
	if err != nil {
		return err
	}
	return g.owner.setOperator(op)
}

// Sign ➞ ε, AddOp ➞ + | -, MulOp ➞ * | /
func operatorAction(op scanner.Symbol) action {
	return func(c *Compilation, g *group) error {
		return g.owner.setOperator(op)
	}
}

// Factor ➞ number | identifier
func leafAction(sym scanner.Symbol) action {
	return func(c *Compilation, g *group) error {
		lit, err := c.take(sym)
		if err != nil {
			return err
		}
		return g.owner.synthesize(lit.value, lit.text)
	}
}

// ExprTail ➞ ε, TermTail ➞ ε
func identityAction(v float64, place string) action {
	return func(c *Compilation, g *group) error {
		return g.owner.synthesize(v, place)
	}
}
