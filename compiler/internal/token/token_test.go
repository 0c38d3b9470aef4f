package token

import "testing"

func TestLookup(t *testing.T) {
	type tc struct {
		ident string
		want  Token
	}
	cases := []tc{
		{"const", CONST},
		{"main", MAIN},
		{"printf", PRINTF},
		{"foobar", IDENT},
		{"whilex", IDENT},
	}
	for _, c := range cases {
		if got := Lookup(c.ident); got != c.want {
			t.Errorf("Lookup(%q) = %s, want %s", c.ident, got, c.want)
		}
	}
}

func TestPrecedence(t *testing.T) {
	if LSS.Precedence() != 1 || NEQ.Precedence() != 1 {
		t.Fatal("relational precedence")
	}
	if ADD.Precedence() != 2 || MUL.Precedence() != 3 {
		t.Fatal("arithmetic precedence")
	}
	if SEMICOLON.Precedence() != LowestPrecedence || EOF.Precedence() != LowestPrecedence {
		t.Fatal("non-operators must have lowest precedence")
	}
}

func TestClassifiers(t *testing.T) {
	if !INTLIT.IsLiteral() || CONST.IsLiteral() {
		t.Fatal("IsLiteral")
	}
	if !WHILE.IsKeyword() || IDENT.IsKeyword() {
		t.Fatal("IsKeyword")
	}
	if !LBRACE.IsOperator() || RETURN.IsOperator() {
		t.Fatal("IsOperator")
	}
	if !EQL.IsRelational() || ASSIGN.IsRelational() {
		t.Fatal("IsRelational")
	}
}

func TestPositionFor(t *testing.T) {
	src := "ab\ncd\n"
	f := NewFile("t.cmm", len(src))
	f.AddLine(3)
	f.AddLine(6)
	p := f.PositionFor(4)
	if p.Line != 2 || p.Column != 2 {
		t.Fatalf("offset 4 resolved to %s", p)
	}
	if got := f.PositionFor(0); got.Line != 1 || got.Column != 1 {
		t.Fatalf("offset 0 resolved to %s", got)
	}
	if f.PositionFor(-1).IsValid() || f.PositionFor(len(src)+1).IsValid() {
		t.Fatal("out-of-range offsets must resolve to NoPos")
	}
}

func TestAddLineIgnoresNonMonotonic(t *testing.T) {
	f := NewFile("t.cmm", 10)
	f.AddLine(4)
	f.AddLine(4)
	f.AddLine(2)
	f.AddLine(11)
	if f.LineCount() != 2 {
		t.Fatalf("line count %d, want 2", f.LineCount())
	}
}
