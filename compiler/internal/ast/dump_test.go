package ast

import (
	"strings"
	"testing"

	"github.com/cmm-lang/cmm/compiler/internal/token"
)

func TestTypeString(t *testing.T) {
	arr := &ArrayType{Size: 2, Item: &ArrayType{Size: 3, Item: &CharType{}}}
	if got := TypeString(arr); got != "char[2][3]" {
		t.Fatalf("TypeString = %q", got)
	}
	if got := TypeString(&VoidType{}); got != "void" {
		t.Fatalf("TypeString = %q", got)
	}
}

func TestDumpString(t *testing.T) {
	f := &File{
		Name: "t.cmm",
		Decls: []Decl{
			&FuncDecl{
				RetType: &IntType{},
				Name:    &Ident{Name: "inc"},
				Params: &FieldList{Fields: []*Field{
					{Type: &IntType{}, Name: &Ident{Name: "n"}},
				}},
				Body: &BlockStmt{Stmts: []Stmt{
					&ReturnStmt{Result: &BinaryExpr{
						Op: token.ADD,
						X:  &Ident{Name: "n"},
						Y:  &BasicLit{Tok: token.INTLIT, Val: "1"},
					}},
				}},
			},
		},
	}
	out := DumpString(f)
	for _, want := range []string{
		"File t.cmm",
		"func inc int",
		"param n int",
		"ReturnStmt",
		"BinaryExpr +",
		"Lit INTLIT 1",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("outline missing %q:\n%s", want, out)
		}
	}
}
