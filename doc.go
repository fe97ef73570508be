/*
Package jlex is the lexical front end for a JSON-like text format.

It converts raw character input into an ordered sequence of typed tokens:
structural punctuation and quoted strings. Package structure is as follows:

■ scanner: Package scanner implements a hand-written scanner over an in-memory
byte buffer, together with diagnostics sinks for lexical errors.

■ scanner/lexmach: Package lexmach implements the same token language on top of
a lexmachine DFA.

■ cmd/jlex: A command line tool which prints the token stream of a file.

The base package contains the token model, which is shared by all the other packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2026 Norbert Pillmayer <norbert@pillmayer.com>

*/
package jlex
