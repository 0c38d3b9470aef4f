package main

import "github.com/cmm-lang/cmm/compiler/internal/term"

func usage() {
	term.Eprintln("cmmc — cmm compiler front end")
	term.Eprintln("")
	term.Eprintln("Usage:")
	term.Eprintln("  cmmc <command> [args]")
	term.Eprintln("")
	term.Eprintln("Commands:")
	term.Eprintln("  version                Print version")
	term.Eprintln("  help                   Show this help")
	term.Eprintln("  lex <file>             Scan a .cmm file and print its tokens")
	term.Eprintln("  parse <file>           Parse a .cmm file and print the AST outline")
	term.Eprintln("  check [--quiet] <file> Parse and type-check a .cmm file, print diagnostics")
	term.Eprintln("")
	term.Eprintln("Exit status is 0 on success, 1 when diagnostics were reported,")
	term.Eprintln("and 2 on usage or I/O errors.")
}
