package scanner

import "strings"

// normalize surrounds every operator and delimiter of line with spaces.
// Operators are tested before delimiters, each in table order, so "<="
// wins over "<".
func normalize(line string) string {
	var b strings.Builder
	b.Grow(len(line) * 2)
	for i := 0; i < len(line); {
		if line[i] == ' ' {
			b.WriteByte(' ')
			i++
			continue
		}
		lx, ok := prefixLexeme(line[i:], operators)
		if !ok {
			lx, ok = prefixLexeme(line[i:], delimiters)
		}
		if ok {
			b.WriteByte(' ')
			b.WriteString(lx)
			b.WriteByte(' ')
			i += len(lx)
			continue
		}
		b.WriteByte(line[i])
		i++
	}
	return b.String()
}

// prefixLexeme returns the first lexeme of table which s starts with.
func prefixLexeme(s string, table []lexeme) (string, bool) {
	for _, lx := range table {
		if strings.HasPrefix(s, lx.text) {
			return lx.text, true
		}
	}
	return "", false
}
