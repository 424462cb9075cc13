/*
Package translate implements a predictive parser which translates arithmetic
expressions into three-address code while parsing.

The parser is driven by two stacks. The symbol stack holds grammar symbols
still to be processed: terminals to match, non-terminals to expand and
action symbols, which trigger the semantic action of a production after its
right hand side has been processed. The attribute stack holds attribute
groups, one per expanded production, each with an attribute record
(Instance) for every non-terminal of the production's right hand side.
Semantic actions read the records of their own group and write the record
of the production's left hand side, which lives in the enclosing group.
Attributes thus flow upwards without any recursion on the Go call stack.

Semantic actions compute a value and a place for every expression. Places
are numerals, identifiers or temporaries T1, T2, …. Whenever an operation
is needed, an instruction is emitted into the code buffer and a fresh
temporary becomes the place of the result. With identity elimination
enabled (the default), additions of the sentinel place "0" and
multiplications by the sentinel place "1" are not emitted.

	res, err := translate.TranslateString("(1+2)*3")
	// res.Value == 9, res.Code:
	//   + 1 2 T1
	//   * T1 3 T2

Every run owns its state (code buffer, temporaries, stacks), so independent
translations may run concurrently.

Configuration

Defaults are read from the global configuration (package gconf):

	disable-identity-elimination   bool   emit every instruction
	panic-on-internal-error        bool   panic instead of returning an InternalError

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package translate

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'sdt.translate'.
func tracer() tracing.Trace {
	return tracing.Select("sdt.translate")
}
