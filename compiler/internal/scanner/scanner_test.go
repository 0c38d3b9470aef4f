package scanner

import (
	"testing"

	"github.com/cmm-lang/cmm/compiler/internal/diag"
	"github.com/cmm-lang/cmm/compiler/internal/token"
)

func scanAll(t *testing.T, src string) ([]token.Token, []string, *diag.Reminder) {
	t.Helper()
	errs := diag.NewReminder()
	file := token.NewFile("test.cmm", len(src))
	s := New(file, src, errs)
	var toks []token.Token
	var lits []string
	for {
		_, tok, lit := s.Scan()
		if tok == token.EOF {
			break
		}
		toks = append(toks, tok)
		lits = append(lits, lit)
	}
	return toks, lits, errs
}

func TestScanDeclaration(t *testing.T) {
	toks, lits, errs := scanAll(t, "const int a = 10;")
	if errs.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", errs.All())
	}
	want := []token.Token{token.CONST, token.INT, token.IDENT, token.ASSIGN, token.INTLIT, token.SEMICOLON}
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(toks), len(want), toks)
	}
	for i, tok := range want {
		if toks[i] != tok {
			t.Fatalf("token %d: got %s, want %s", i, toks[i], tok)
		}
	}
	if lits[2] != "a" || lits[4] != "10" {
		t.Fatalf("unexpected literals: %v", lits)
	}
}

func TestScanOperators(t *testing.T) {
	type tc struct {
		src string
		tok token.Token
	}
	cases := []tc{
		{"<", token.LSS},
		{"<=", token.LEQ},
		{">", token.GTR},
		{">=", token.GEQ},
		{"==", token.EQL},
		{"!=", token.NEQ},
		{"=", token.ASSIGN},
		{":", token.COLON},
		{"+", token.ADD},
		{"/", token.QUO},
	}
	for _, c := range cases {
		t.Run(c.src, func(t *testing.T) {
			toks, _, errs := scanAll(t, c.src)
			if errs.HasErrors() {
				t.Fatalf("unexpected diagnostics: %v", errs.All())
			}
			if len(toks) != 1 || toks[0] != c.tok {
				t.Fatalf("got %v, want [%s]", toks, c.tok)
			}
		})
	}
}

func TestScanLiteralsKeepQuotes(t *testing.T) {
	toks, lits, errs := scanAll(t, `'a' "hello"`)
	if errs.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", errs.All())
	}
	if toks[0] != token.CHARLIT || lits[0] != "'a'" {
		t.Fatalf("char literal: got %s %q", toks[0], lits[0])
	}
	if toks[1] != token.STRLIT || lits[1] != `"hello"` {
		t.Fatalf("string literal: got %s %q", toks[1], lits[1])
	}
}

func TestScanEscapesInLiterals(t *testing.T) {
	toks, lits, errs := scanAll(t, `"a\"b" '\n'`)
	if errs.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", errs.All())
	}
	if toks[0] != token.STRLIT || lits[0] != `"a\"b"` {
		t.Fatalf("string literal: got %s %q", toks[0], lits[0])
	}
	// an escape pair is one body character, so '\n' is a legal char literal
	if toks[1] != token.CHARLIT || lits[1] != `'\n'` {
		t.Fatalf("char literal: got %s %q", toks[1], lits[1])
	}
}

func TestScanEmptyLiterals(t *testing.T) {
	for _, src := range []string{"''", `""`} {
		t.Run(src, func(t *testing.T) {
			toks, _, errs := scanAll(t, src)
			if len(toks) != 1 {
				t.Fatalf("got %d tokens, want 1", len(toks))
			}
			all := errs.All()
			if len(all) != 1 || all[0].Kind != diag.EmptyCharOrStringLit {
				t.Fatalf("diagnostics: %v", all)
			}
		})
	}
}

func TestScanBangAloneIsIllegal(t *testing.T) {
	toks, _, errs := scanAll(t, "a ! b")
	want := []token.Token{token.IDENT, token.ILLEGAL, token.IDENT}
	if len(toks) != len(want) {
		t.Fatalf("got %v", toks)
	}
	for i, tok := range want {
		if toks[i] != tok {
			t.Fatalf("token %d: got %s, want %s", i, toks[i], tok)
		}
	}
	all := errs.All()
	if len(all) != 1 || all[0].Kind != diag.UnsupportedConstruct {
		t.Fatalf("diagnostics: %v", all)
	}
}

func TestScanKeywordsVsIdents(t *testing.T) {
	toks, _, errs := scanAll(t, "while whilex _if main")
	if errs.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", errs.All())
	}
	want := []token.Token{token.WHILE, token.IDENT, token.IDENT, token.MAIN}
	for i, tok := range want {
		if toks[i] != tok {
			t.Fatalf("token %d: got %s, want %s", i, toks[i], tok)
		}
	}
}

func TestScanPositionsAcrossLines(t *testing.T) {
	src := "int a;\nint b;"
	errs := diag.NewReminder()
	file := token.NewFile("test.cmm", len(src))
	s := New(file, src, errs)
	var positions []token.Position
	for {
		pos, tok, _ := s.Scan()
		if tok == token.EOF {
			break
		}
		positions = append(positions, file.PositionFor(pos))
	}
	if got := positions[0]; got.Line != 1 || got.Column != 1 {
		t.Fatalf("first token at %s", got)
	}
	// "b" is the 5th token, on line 2 column 5.
	if got := positions[4]; got.Line != 2 || got.Column != 5 {
		t.Fatalf("token b at %s", got)
	}
	if file.LineCount() != 2 {
		t.Fatalf("line count %d", file.LineCount())
	}
}

func TestScanAlwaysProgresses(t *testing.T) {
	src := "@ # $ ?"
	toks, _, errs := scanAll(t, src)
	if len(toks) != 4 {
		t.Fatalf("got %d tokens, want 4 illegal tokens", len(toks))
	}
	for i, tok := range toks {
		if tok != token.ILLEGAL {
			t.Fatalf("token %d: got %s, want ILLEGAL", i, tok)
		}
	}
	if !errs.HasErrors() {
		t.Fatal("expected diagnostics for unknown bytes")
	}
}
