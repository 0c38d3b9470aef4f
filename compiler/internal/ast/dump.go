package ast

import (
	"fmt"
	"io"
	"strings"
)

// DumpFile writes an indented outline of the tree to w, one node per
// line. It is the output of 'cmmc parse' and what the parser tests
// assert against.
func DumpFile(w io.Writer, f *File) {
	d := dumper{w: w}
	d.printf(0, "File %s", f.Name)
	for _, decl := range f.Decls {
		d.decl(1, decl)
	}
}

// DumpString renders the outline of a file into a string.
func DumpString(f *File) string {
	var sb strings.Builder
	DumpFile(&sb, f)
	return sb.String()
}

type dumper struct {
	w io.Writer
}

func (d *dumper) printf(depth int, format string, args ...any) {
	fmt.Fprintf(d.w, "%s%s\n", strings.Repeat("  ", depth), fmt.Sprintf(format, args...))
}

// TypeString renders a type node as compact source-like text,
// e.g. "int", "char[2][3]", "void".
func TypeString(t Type) string {
	switch t := t.(type) {
	case *BadType:
		return "<bad>"
	case *VoidType:
		return "void"
	case *CharType:
		return "char"
	case *IntType:
		return "int"
	case *StringType:
		return "string"
	case *ArrayType:
		dims := ""
		var item Type = t
		for {
			at, ok := item.(*ArrayType)
			if !ok {
				break
			}
			dims += fmt.Sprintf("[%d]", at.Size)
			item = at.Item
		}
		return TypeString(item) + dims
	default:
		return "<unknown>"
	}
}

func (d *dumper) decl(depth int, decl Decl) {
	switch decl := decl.(type) {
	case *BadDecl:
		d.printf(depth, "BadDecl %s", decl.DeclPos)
	case *VarDecl:
		d.printf(depth, "VarDecl")
		for _, sub := range decl.Decls {
			d.decl(depth+1, sub)
		}
	case *SingleVarDecl:
		kw := "var"
		if decl.IsConst {
			kw = "const"
		}
		d.printf(depth, "%s %s %s", kw, decl.Name.Name, TypeString(decl.DeclType))
		if decl.Val != nil {
			d.expr(depth+1, decl.Val)
		}
	case *FuncDecl:
		d.printf(depth, "func %s %s", decl.Name.Name, TypeString(decl.RetType))
		for _, p := range decl.Params.Fields {
			d.printf(depth+1, "param %s %s", p.Name.Name, TypeString(p.Type))
		}
		d.stmt(depth+1, decl.Body)
	default:
		d.printf(depth, "UnknownDecl")
	}
}

func (d *dumper) stmt(depth int, stmt Stmt) {
	switch stmt := stmt.(type) {
	case *BadStmt:
		d.printf(depth, "BadStmt %s", stmt.StmtPos)
	case *DeclStmt:
		d.decl(depth, stmt.Decl)
	case *EmptyStmt:
		d.printf(depth, "EmptyStmt")
	case *ExprStmt:
		d.printf(depth, "ExprStmt")
		d.expr(depth+1, stmt.X)
	case *AssignStmt:
		d.printf(depth, "AssignStmt")
		d.expr(depth+1, stmt.Lhs)
		d.expr(depth+1, stmt.Rhs)
	case *ReturnStmt:
		d.printf(depth, "ReturnStmt")
		if stmt.Result != nil {
			d.expr(depth+1, stmt.Result)
		}
	case *BlockStmt:
		d.printf(depth, "BlockStmt")
		for _, s := range stmt.Stmts {
			d.stmt(depth+1, s)
		}
	case *IfStmt:
		d.printf(depth, "IfStmt")
		d.expr(depth+1, stmt.Cond)
		d.stmt(depth+1, stmt.Body)
		if stmt.Else != nil {
			d.printf(depth+1, "Else")
			d.stmt(depth+2, stmt.Else)
		}
	case *SwitchStmt:
		d.printf(depth, "SwitchStmt")
		d.expr(depth+1, stmt.Cond)
		for _, c := range stmt.Cases {
			d.stmt(depth+1, c)
		}
	case *CaseStmt:
		if stmt.Cond == nil {
			d.printf(depth, "DefaultCase")
		} else {
			d.printf(depth, "CaseStmt")
			d.expr(depth+1, stmt.Cond)
		}
		for _, s := range stmt.Body {
			d.stmt(depth+1, s)
		}
	case *ForStmt:
		d.printf(depth, "ForStmt")
		if stmt.Init != nil {
			d.stmt(depth+1, stmt.Init)
		}
		if stmt.Cond != nil {
			d.expr(depth+1, stmt.Cond)
		}
		if stmt.Step != nil {
			d.stmt(depth+1, stmt.Step)
		}
		d.stmt(depth+1, stmt.Body)
	case *WhileStmt:
		d.printf(depth, "WhileStmt")
		d.expr(depth+1, stmt.Cond)
		d.stmt(depth+1, stmt.Body)
	case *ScanStmt:
		d.printf(depth, "ScanStmt")
		d.expr(depth+1, stmt.Var)
	case *PrintfStmt:
		d.printf(depth, "PrintfStmt")
		for _, a := range stmt.Args {
			d.expr(depth+1, a)
		}
	default:
		d.printf(depth, "UnknownStmt")
	}
}

func (d *dumper) expr(depth int, expr Expr) {
	switch expr := expr.(type) {
	case *BadExpr:
		d.printf(depth, "BadExpr %s", expr.ExprPos)
	case *Ident:
		d.printf(depth, "Ident %s", expr.Name)
	case *BasicLit:
		d.printf(depth, "Lit %s %s", expr.Tok, expr.Val)
	case *CompositeLit:
		d.printf(depth, "CompositeLit")
		for _, it := range expr.Items {
			d.expr(depth+1, it)
		}
	case *ParenExpr:
		d.printf(depth, "ParenExpr")
		d.expr(depth+1, expr.X)
	case *IndexExpr:
		d.printf(depth, "IndexExpr")
		d.expr(depth+1, expr.X)
		d.expr(depth+1, expr.Index)
	case *CallExpr:
		d.printf(depth, "CallExpr")
		d.expr(depth+1, expr.Fun)
		for _, a := range expr.Args {
			d.expr(depth+1, a)
		}
	case *UnaryExpr:
		d.printf(depth, "UnaryExpr %s", expr.Op)
		d.expr(depth+1, expr.X)
	case *BinaryExpr:
		d.printf(depth, "BinaryExpr %s", expr.Op)
		d.expr(depth+1, expr.X)
		d.expr(depth+1, expr.Y)
	default:
		d.printf(depth, "UnknownExpr")
	}
}
