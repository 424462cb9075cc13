/*
Package scanner turns source lines into classified lexical tokens.

Scanning a line happens in three steps. First, operators and delimiters are
surrounded by spaces, so that "a:=(b+1)" reads as "a := ( b + 1 )".
Relational two-character operators are recognized before their one-character
prefixes. Second, the line is lower-cased and split at white space. Third,
every word is classified by a lexmachine DFA: keyword, operator, delimiter,
numeral (digits only) or identifier (a letter followed by letters or digits).
Words which cannot be classified are tagged with category Error and reported
to the scanner's error handler; scanning continues after them.

After all lines have been consumed, the token sequence is terminated by a
single EndOfInput token.

	sc := scanner.New()
	sc.ScanLine("x := 1 + 2 * 3")
	for _, tok := range sc.Tokens() {
	    fmt.Println(tok)
	}

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package scanner

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'sdt.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("sdt.scanner")
}
