package main

import (
	"os"

	"github.com/cmm-lang/cmm/compiler/internal/ast"
	"github.com/cmm-lang/cmm/compiler/internal/build"
	"github.com/cmm-lang/cmm/compiler/internal/term"
)

/* ---------- parse ---------- */

func cmdParse(path string) int {
	data, err := os.ReadFile(path)
	if err != nil {
		term.Eprintf("cmmc: %v\n", err)
		return 2
	}
	f, errs := build.ParseSource(path, string(data))
	term.Printf("%s", ast.DumpString(f))
	reportDiags(errs)
	if errs.HasErrors() {
		return 1
	}
	return 0
}
