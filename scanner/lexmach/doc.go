/*
Package lexmach provides a second scanner engine for jlex, built with the
lexmachine scanner generator.

For more information on lexmachine, see e.g.
https://hackthology.com/how-to-tokenize-complex-strings-with-lexmachine.html

The engine compiles a DFA for the jlex token language once and creates a
scanner per input. Its token stream is the same as the one of package scanner,
including line numbers, spans and diagnostics. It is useful for cross-checking
the hand-written scanner and for large inputs.

	LM, err := lexmach.NewLMAdapter()
	if err != nil {
		// do error handling
	}

A scanner is instantiated for each concrete input sequence.
The scanner implements the jlex.Tokenizer interface.

	scan, err := LM.Scanner([]byte(`{"k":"v"}`), scanner.Diagnostics(mySink))
	if err != nil {
		// do error handling
	}
	tokens := scan.ScanTokens()

________________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2026 Norbert Pillmayer <norbert@pillmayer.com>

*/
package lexmach
