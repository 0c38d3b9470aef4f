package check

import (
	"github.com/cmm-lang/cmm/compiler/internal/ast"
)

// Shared sentinel nodes for inferred types. They carry no position and
// are never inserted into the AST, only compared against it.
var (
	badType    ast.Type = &ast.BadType{}
	intType    ast.Type = &ast.IntType{}
	charType   ast.Type = &ast.CharType{}
	stringType ast.Type = &ast.StringType{}
)

func isBadType(t ast.Type) bool {
	_, ok := t.(*ast.BadType)
	return ok
}

func isIntType(t ast.Type) bool {
	_, ok := t.(*ast.IntType)
	return ok
}

func isVoidType(t ast.Type) bool {
	_, ok := t.(*ast.VoidType)
	return ok
}

// isBasicType reports whether t is int or char, the two value types a
// variable, case label, or comparison operand may have.
func isBasicType(t ast.Type) bool {
	switch t.(type) {
	case *ast.IntType, *ast.CharType:
		return true
	}
	return false
}

// sameType is structural equality: basic types match by kind, arrays by
// size and item type, dimension by dimension. Bad types equal nothing,
// including each other.
func sameType(a, b ast.Type) bool {
	switch a := a.(type) {
	case *ast.IntType:
		return isIntType(b)
	case *ast.CharType:
		_, ok := b.(*ast.CharType)
		return ok
	case *ast.VoidType:
		return isVoidType(b)
	case *ast.StringType:
		_, ok := b.(*ast.StringType)
		return ok
	case *ast.ArrayType:
		bb, ok := b.(*ast.ArrayType)
		return ok && a.Size == bb.Size && sameType(a.Item, bb.Item)
	}
	return false
}
