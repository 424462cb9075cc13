/*
Package tac implements three-address code.

An instruction has an operator, two operands and a destination:

	+ x T1 T2      // T2 := x + T1

Operands are numerals, identifiers or temporaries. Temporaries are named
T1, T2, … and are numbered per compilation run. Code is collected in an
append-only Code buffer. A Machine runs a code buffer and answers the value
of any place, which is how generated code can be checked against the
value a translator computes while it parses.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package tac

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'sdt.tac'.
func tracer() tracing.Trace {
	return tracing.Select("sdt.tac")
}
