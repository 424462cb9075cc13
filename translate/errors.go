package translate

import (
	"fmt"
	"strings"

	"github.com/npillmayer/sdt/grammar"
	"github.com/npillmayer/sdt/scanner"
)

// SyntaxError is returned if the input does not conform to the grammar:
// either a terminal on the symbol stack does not match the lookahead, or a
// non-terminal has no production for the lookahead. Analysis stops at the
// first syntax error.
type SyntaxError struct {
	Pos       int              // index of the offending token
	Found     scanner.Token    // offending token
	Expected  []scanner.Symbol // symbols acceptable at Pos
	Expanding bool             // error occurred while expanding NonTerm
	NonTerm   grammar.Kind     // non-terminal without production
}

func (e *SyntaxError) Error() string {
	exp := make([]string, len(e.Expected))
	for i, sym := range e.Expected {
		exp[i] = sym.String()
	}
	var found string
	if e.Found.Symbol() == scanner.EndOfInput {
		found = scanner.EndOfInput.String()
	} else {
		found = fmt.Sprintf("%s %q", e.Found.Symbol(), e.Found.Lexeme())
	}
	msg := fmt.Sprintf("syntax error in line %d at token %d: expected %s, found %s",
		e.Found.Line(), e.Pos+1, strings.Join(exp, " | "), found)
	if e.Expanding {
		msg += fmt.Sprintf(" (no production for %s)", e.NonTerm)
	}
	return msg
}

// InternalError signals an inconsistency of the translator itself, e.g. a
// missing attribute record or an attribute assigned twice. It never results
// from bad input.
type InternalError struct {
	Production int // production whose action failed, 0 if unknown
	Msg        string
}

func (e *InternalError) Error() string {
	if e.Production == 0 {
		return "internal error: " + e.Msg
	}
	return fmt.Sprintf("internal error in action %d: %s", e.Production, e.Msg)
}

func internalf(format string, args ...interface{}) *InternalError {
	return &InternalError{Msg: fmt.Sprintf(format, args...)}
}
