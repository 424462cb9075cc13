package scanner

import (
	"fmt"
	"strings"
	"sync"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// The classifier DFA is compiled once and shared between scanners. Classifying
// a word creates a fresh lexmachine.Scanner, so sharing is safe.
var classifier struct {
	once  sync.Once
	lexer *lexmachine.Lexer
	err   error
}

func classifierLexer() (*lexmachine.Lexer, error) {
	classifier.once.Do(func() {
		lexer := lexmachine.NewLexer()
		// keywords are added before identifiers: for matches of equal length
		// lexmachine prefers the pattern added first
		for _, kw := range keywords {
			lexer.Add([]byte(kw.text), makeToken(kw.sym))
		}
		for _, op := range operators {
			lexer.Add([]byte(literal(op.text)), makeToken(op.sym))
		}
		for _, d := range delimiters {
			lexer.Add([]byte(literal(d.text)), makeToken(d.sym))
		}
		lexer.Add([]byte(`[0-9]+`), makeToken(Number))
		lexer.Add([]byte(`[a-z]([a-z]|[0-9])*`), makeToken(Identifier))
		if err := lexer.Compile(); err != nil {
			tracer().Errorf("error compiling DFA: %v", err)
			classifier.err = err
			return
		}
		classifier.lexer = lexer
	})
	return classifier.lexer, classifier.err
}

// literal escapes every character of lit for use in a lexmachine pattern.
func literal(lit string) string {
	return "\\" + strings.Join(strings.Split(lit, ""), "\\")
}

// makeToken is a lexmachine action which tags a match with sym.
func makeToken(sym Symbol) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(int(sym), string(m.Bytes), m), nil
	}
}

// classify determines the symbol of a single word. A word is classified only
// if exactly one token of the DFA covers all of it; otherwise classify
// returns Error together with a LexicalError.
func classify(word string, line int) (Symbol, error) {
	lexer, err := classifierLexer()
	if err != nil {
		return Error, err
	}
	s, err := lexer.Scanner([]byte(word))
	if err != nil {
		return Error, err
	}
	tok, err, eof := s.Next()
	if err != nil || eof {
		return Error, &LexicalError{Word: word, Line: line}
	}
	t := tok.(*lexmachine.Token)
	if len(t.Lexeme) != len(word) {
		return Error, &LexicalError{Word: word, Line: line}
	}
	return Symbol(t.Type), nil
}

// LexicalError is reported for words which are not part of the language.
// Lexical errors are not fatal.
type LexicalError struct {
	Word string
	Line int
}

func (e *LexicalError) Error() string {
	return fmt.Sprintf("line %d: unrecognized word %q", e.Line, e.Word)
}
