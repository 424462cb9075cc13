package scanner

import (
	"fmt"
	"io"
)

// WriteReport writes one line per token to w, of the form
//
//     <text> <category> <symbol>
//
// The end marker has no text and is reported as <EndOfInput>.
func WriteReport(w io.Writer, tokens []Token) error {
	for _, t := range tokens {
		text := t.lexeme
		if t.sym == EndOfInput {
			text = t.String()
		}
		if _, err := fmt.Fprintf(w, "%-12s %-11s %s\n", text, t.cat, t.sym); err != nil {
			return err
		}
	}
	return nil
}
