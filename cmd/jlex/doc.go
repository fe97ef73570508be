/*
Command jlex prints the token stream of a jlex input file.

	jlex [flags] <file_path>

Each token is printed on a line of its own, lexical errors are reported on
stderr. jlex exits with code 64 if not called with exactly one file argument,
and with code 65 if the file cannot be read. Lexical errors do not change the
exit code.

Flags select the scanner engine (-engine hand|dfa), the output format
(-format plain|json|tree|digest), whether tokens carry their source text
(-lexemes) and the trace level (-trace Debug|Info|Error). With -i, jlex starts an
interactive session, scanning every line entered.

Defaults for all flags may be set in a NestedText configuration file, located
at the user's configuration directory, e.g. ~/.config/jlex/config.nt:

	engine: dfa
	format: plain
	tracelevel:
	    root: Error

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2026 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'jlex.cli'
func tracer() tracing.Trace {
	return tracing.Select("jlex.cli")
}
