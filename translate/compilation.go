package translate

import (
	"fmt"
	"strconv"

	"github.com/npillmayer/sdt/scanner"
	"github.com/npillmayer/sdt/tac"
)

// IdentifierPlaceholder is the value of identifiers without a binding. The
// machine of package tac uses the same value.
const IdentifierPlaceholder = tac.IdentifierPlaceholder

// Compilation is the state of a single translation run, shared between the
// parser and the semantic actions. It is never shared between runs.
type Compilation struct {
	code     tac.Code
	temps    tac.Temps
	held     *literal // one-shot holding area for the last matched literal
	optimize bool
	bindings map[string]float64
}

// literal is a matched number or identifier, waiting for its leaf action.
type literal struct {
	sym   scanner.Symbol
	text  string
	value float64
}

// Code returns the code emitted so far.
func (c *Compilation) Code() *tac.Code {
	return &c.code
}

// Optimizing is true if identity elimination is enabled.
func (c *Compilation) Optimizing() bool {
	return c.optimize
}

// hold stores a matched literal for the next leaf action.
func (c *Compilation) hold(tok scanner.Token, pos int) error {
	if c.held != nil {
		return internalf("literal %q has not been consumed", c.held.text)
	}
	lit := &literal{sym: tok.Symbol(), text: tok.Lexeme()}
	switch tok.Symbol() {
	case scanner.Number:
		v, err := strconv.ParseFloat(tok.Lexeme(), 64)
		if err != nil {
			return fmt.Errorf("line %d, token %d: numeral %s: %w", tok.Line(), pos+1, tok.Lexeme(), err)
		}
		lit.value = v
	case scanner.Identifier:
		lit.value = IdentifierPlaceholder
		if v, ok := c.bindings[tok.Lexeme()]; ok {
			lit.value = v
		}
	default:
		return internalf("cannot hold %v", tok)
	}
	c.held = lit
	return nil
}

// take removes the held literal, which has to be of symbol sym.
func (c *Compilation) take(sym scanner.Symbol) (literal, error) {
	if c.held == nil {
		return literal{}, internalf("no %s literal held", sym)
	}
	lit := *c.held
	c.held = nil
	if lit.sym != sym {
		return literal{}, internalf("expected %s literal, holding %s", sym, lit.sym)
	}
	return lit, nil
}

// emit appends an instruction with a fresh temporary as destination and
// returns the temporary.
func (c *Compilation) emit(op tac.Op, left, right string) string {
	dest := c.temps.Next()
	c.code.Emit(op, left, right, dest)
	return dest
}

// sum synthesizes owner := (op term) + tail for op ∈ {+, -}.
func (c *Compilation) sum(owner *Instance, op scanner.Symbol, term, tail *Instance) error {
	tv, tp, err := term.operand()
	if err != nil {
		return err
	}
	hv, hp, err := tail.operand()
	if err != nil {
		return err
	}
	value, place := tv, tp
	switch op {
	case scanner.Plus:
	case scanner.Minus:
		value = -tv
		place = c.emit(tac.Sub, tac.AdditiveIdentity, tp)
	default:
		return internalf("%s is not an additive operator", op)
	}
	value += hv
	if !c.optimize || hp != tac.AdditiveIdentity {
		place = c.emit(tac.Add, place, hp)
	}
	return owner.synthesize(value, place)
}

// product synthesizes owner := factor * tail for op = *, and
// owner := (1 / factor) * tail for op = /.
func (c *Compilation) product(owner *Instance, op scanner.Symbol, factor, tail *Instance) error {
	fv, fp, err := factor.operand()
	if err != nil {
		return err
	}
	hv, hp, err := tail.operand()
	if err != nil {
		return err
	}
	value, place := fv, fp
	switch op {
	case scanner.Times:
	case scanner.Slash:
		value = 1 / fv
		place = c.emit(tac.Div, tac.MultiplicativeIdentity, fp)
	default:
		return internalf("%s is not a multiplicative operator", op)
	}
	value *= hv
	if !c.optimize || hp != tac.MultiplicativeIdentity {
		place = c.emit(tac.Mul, place, hp)
	}
	return owner.synthesize(value, place)
}
