package diag

import (
	"testing"

	"github.com/cmm-lang/cmm/compiler/internal/token"
)

func at(line, col int) token.Position {
	return token.Position{Filename: "test.cmm", Line: line, Column: col}
}

func TestLastWriteWinsPerPosition(t *testing.T) {
	r := NewReminder()
	r.Emit(at(3, 7), Undefine, "first")
	r.Emit(at(3, 7), Redefine, "second")
	if r.Len() != 1 {
		t.Fatalf("len = %d, want 1", r.Len())
	}
	d := r.All()[0]
	if d.Kind != Redefine || d.Msg != "second" {
		t.Fatalf("kept %s %q, want the later write", d.Kind, d.Msg)
	}
}

func TestAllSortedBySourceOrder(t *testing.T) {
	r := NewReminder()
	r.Emit(at(5, 1), Undefine, "c")
	r.Emit(at(1, 9), Undefine, "a")
	r.Emit(at(1, 2), Undefine, "b")
	all := r.All()
	if len(all) != 3 {
		t.Fatalf("len = %d", len(all))
	}
	if all[0].Pos.Line != 1 || all[0].Pos.Column != 2 {
		t.Fatalf("first diagnostic at %s", all[0].Pos)
	}
	if all[2].Pos.Line != 5 {
		t.Fatalf("last diagnostic at %s", all[2].Pos)
	}
}

func TestLooseDiagnosticsNeverDeduplicated(t *testing.T) {
	r := NewReminder()
	r.Emit(token.NoPos, UnsupportedConstruct, "one")
	r.Emit(token.NoPos, UnsupportedConstruct, "two")
	r.Emit(at(2, 2), Undefine, "positioned")
	if r.Len() != 3 {
		t.Fatalf("len = %d, want 3", r.Len())
	}
	all := r.All()
	// positioned first, loose in emission order after
	if all[0].Kind != Undefine {
		t.Fatalf("first is %s", all[0].Kind)
	}
	if all[1].Msg != "one" || all[2].Msg != "two" {
		t.Fatalf("loose order: %v", all[1:])
	}
}

func TestHasErrors(t *testing.T) {
	r := NewReminder()
	if r.HasErrors() {
		t.Fatal("fresh sink reports errors")
	}
	r.Emit(at(1, 1), SemicolonExpected, "x")
	if !r.HasErrors() {
		t.Fatal("sink with one diagnostic reports none")
	}
}

func TestDiagnosticError(t *testing.T) {
	d := Diagnostic{Pos: at(2, 4), Kind: Undefine, Msg: "'x' undeclared"}
	if got := d.Error(); got != "(2, 4): 'x' undeclared" {
		t.Fatalf("Error() = %q", got)
	}
}

func TestCatalogCoversEveryKind(t *testing.T) {
	kinds := []Kind{
		EmptyCharOrStringLit, Redefine, Undefine, ArgNumberNotMatched,
		ArgTypeNotMatched, CondValueNotMatched, ReturnValueNotAllowed,
		ReturnValueRequired, IndexTypeNotAllowed, UpdateConstValue,
		SemicolonExpected, RParenExpected, RBracketExpected,
		CompositeLitSizeError, SwitchTypeError, DefaultExpected,
		UnsupportedConstruct,
	}
	seen := map[string]bool{}
	for _, k := range kinds {
		ce := CodeFor(k)
		if ce.ID == "" || ce.ID == "CM0000" {
			t.Errorf("kind %s has no catalog entry", k)
			continue
		}
		if seen[ce.ID] {
			t.Errorf("code %s assigned twice", ce.ID)
		}
		seen[ce.ID] = true
	}
}
