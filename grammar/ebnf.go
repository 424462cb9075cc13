package grammar

import (
	"fmt"
	"strings"

	"golang.org/x/exp/ebnf"
)

// EBNF describes the language accepted by the expression grammar, in the
// notation of package golang.org/x/exp/ebnf. Productions with lower-case
// names are lexical. Input is lower-cased before it is scanned.
const EBNF = `
Expr       = [ AddOp ] Term { AddOp Term } .
Term       = Factor { MulOp Factor } .
Factor     = identifier | number | "(" Expr ")" .
AddOp      = "+" | "-" .
MulOp      = "*" | "/" .
identifier = letter { letter | digit } .
number     = digit { digit } .
letter     = "a" … "z" .
digit      = "0" … "9" .
`

// CheckEBNF parses the EBNF description and verifies that every production
// is defined and reachable from Expr.
func CheckEBNF() (ebnf.Grammar, error) {
	g, err := ebnf.Parse("expressions.ebnf", strings.NewReader(EBNF))
	if err != nil {
		return nil, fmt.Errorf("cannot parse EBNF: %w", err)
	}
	if err = ebnf.Verify(g, Expr.String()); err != nil {
		return nil, fmt.Errorf("EBNF does not verify: %w", err)
	}
	return g, nil
}
