/*
Package sdt is a small compiler front end for arithmetic expressions.

It scans source lines into classified tokens and runs a predictive, table
driven parser over them. The parser translates expressions into
three-address code while it parses (syntax directed translation) and
eliminates additive and multiplicative identities on the fly. Package
structure is as follows:

■ scanner: Package scanner splits lines into words and classifies them as
keywords, operators, delimiters, numerals or identifiers.

■ grammar: Package grammar holds the expression grammar, computes its
LL(1) selection table and answers "which production for this lookahead".

■ translate: Package translate is the parsing and translation engine, with
a symbol stack, a stack of attribute groups and the semantic actions.

■ tac: Package tac implements three-address instructions, a code buffer and
a small machine to run generated code.

■ runtime: Package runtime provides scopes and symbol tables for the
machine's variables.

■ cmd/sdt: Command sdt scans, translates and inspects expressions from the
command line or interactively.

The base package contains data types which are used throughout all the other packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package sdt
