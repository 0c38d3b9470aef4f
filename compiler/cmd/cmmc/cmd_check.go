package main

import (
	"strings"

	"github.com/cmm-lang/cmm/compiler/internal/build"
	"github.com/cmm-lang/cmm/compiler/internal/term"
)

/* ---------- check ---------- */

func cmdCheck(args []string) int {
	quiet := false
	var file string
	for _, s := range args {
		switch {
		case s == "--quiet":
			quiet = true
		case !strings.HasPrefix(s, "-") && file == "":
			file = s
		default:
			term.Eprintln("usage: cmmc check [--quiet] <file.cmm>")
			return 2
		}
	}
	if file == "" {
		term.Eprintln("usage: cmmc check [--quiet] <file.cmm>")
		return 2
	}

	_, errs, err := build.LoadFile(file)
	if err != nil {
		term.Eprintf("cmmc: %v\n", err)
		return 2
	}
	if !quiet {
		reportDiags(errs)
	}
	if errs.HasErrors() {
		return 1
	}
	term.Printf("%s: ok\n", file)
	return 0
}
