/*
Command sdt translates arithmetic expressions into three-address code.

Sub-commands:

	sdt scan      [file]     classify the words of the input
	sdt translate [files…]   translate expressions, one per input
	sdt grammar              print rules, FIRST/FOLLOW sets and the selection table
	sdt repl                 translate interactively

Input is read from stdin if no file is given; `translate -e` and `scan -e`
take an expression from the command line. Identifiers may be given values
with `--let a=3,b=4`.


License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'sdt.cmd'
func tracer() tracing.Trace {
	return tracing.Select("sdt.cmd")
}
