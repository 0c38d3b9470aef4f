package main

import (
	"os"

	"github.com/cmm-lang/cmm/compiler/internal/diag"
	"github.com/cmm-lang/cmm/compiler/internal/scanner"
	"github.com/cmm-lang/cmm/compiler/internal/term"
	"github.com/cmm-lang/cmm/compiler/internal/token"
)

/* ---------- lex ---------- */

func cmdLex(path string) int {
	data, err := os.ReadFile(path)
	if err != nil {
		term.Eprintf("cmmc: %v\n", err)
		return 2
	}
	src := string(data)
	errs := diag.NewReminder()
	file := token.NewFile(path, len(src))
	s := scanner.New(file, src, errs)
	for {
		pos, tok, lit := s.Scan()
		if tok == token.EOF {
			break
		}
		p := file.PositionFor(pos)
		if tok.IsLiteral() {
			term.Printf("%d:%d\t%s\t%s\n", p.Line, p.Column, tok, lit)
		} else {
			term.Printf("%d:%d\t%s\n", p.Line, p.Column, tok)
		}
	}
	reportDiags(errs)
	if errs.HasErrors() {
		return 1
	}
	return 0
}

func reportDiags(errs *diag.Reminder) {
	for _, d := range errs.All() {
		ce := diag.CodeFor(d.Kind)
		if d.Pos.IsValid() {
			term.Eprintf("%s %s: %s\n", ce.ID, d.Pos, d.Msg)
		} else {
			term.Eprintf("%s: %s\n", ce.ID, d.Msg)
		}
	}
}
