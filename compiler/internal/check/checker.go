// Package check implements the semantic pass over a parsed cmm file.
//
// The checker walks the tree depth first exactly once, driving the symbol
// table: every function body and every nested block opens a code block on
// entry and closes it on exit. Functions become visible in declaration
// order, so a function may call itself but not one declared later in the
// file. The pass is best effort: a subtree that already failed to type
// stops producing follow-on diagnostics.
package check

import (
	"github.com/cmm-lang/cmm/compiler/internal/ast"
	"github.com/cmm-lang/cmm/compiler/internal/diag"
	"github.com/cmm-lang/cmm/compiler/internal/symtab"
	"github.com/cmm-lang/cmm/compiler/internal/token"
)

type checker struct {
	tab  *symtab.Table
	errs *diag.Reminder
}

// Check runs the semantic pass over f, reporting into errs. It accepts
// degraded trees: Bad* nodes are skipped without further diagnostics.
func Check(f *ast.File, errs *diag.Reminder) {
	c := &checker{tab: symtab.New(), errs: errs}
	for _, d := range f.Decls {
		c.checkDecl(d)
	}
}

func (c *checker) emit(pos token.Position, kind diag.Kind, msg string) {
	c.errs.Emit(pos, kind, msg)
}

// withBlock runs body inside a fresh code block. Closing is deferred so
// the block cannot leak, whatever path body takes.
func (c *checker) withBlock(body func()) {
	c.tab.CreateCodeBlock()
	defer c.tab.DestroyCodeBlock()
	body()
}

func (c *checker) checkDecl(d ast.Decl) {
	switch d := d.(type) {
	case *ast.BadDecl:
		// already reported by the parser
	case *ast.VarDecl:
		for _, sub := range d.Decls {
			c.checkDecl(sub)
		}
	case *ast.SingleVarDecl:
		c.checkVar(d)
	case *ast.FuncDecl:
		c.checkFunc(d)
	}
}

// checkVar registers one variable and validates its initializer. The
// binding is added before the initializer is checked, so the initializer
// resolves names in own-scope-first order.
func (c *checker) checkVar(d *ast.SingleVarDecl) {
	name := d.Name.Name
	if name == "" {
		return
	}
	if c.tab.IsVarExistedInCurrentCodeBlock(name) {
		c.emit(d.DeclPos, diag.Redefine, "'"+name+"' redefined")
		return
	}
	if isBadType(d.DeclType) {
		return
	}
	c.tab.AddVar(name, d.DeclType, d.IsConst)
	if d.Val == nil {
		return
	}

	if declared, ok := d.DeclType.(*ast.ArrayType); ok {
		lit, ok := d.Val.(*ast.CompositeLit)
		if !ok {
			c.emit(d.Val.Pos(), diag.CompositeLitSizeError, "array initializer must be a brace list")
			return
		}
		inferred, ok := inferCompositeType(lit)
		if !ok || !sameType(inferred, declared) {
			c.emit(d.DeclPos, diag.CompositeLitSizeError,
				"initializer shape does not match '"+ast.TypeString(declared)+"'")
		}
		return
	}

	if _, ok := d.Val.(*ast.CompositeLit); ok {
		c.emit(d.Val.Pos(), diag.UnsupportedConstruct, "brace initializer on a scalar variable")
		return
	}
	t := c.typeOf(d.Val)
	if !isBadType(t) && !sameType(t, d.DeclType) {
		c.emit(d.Val.Pos(), diag.UnsupportedConstruct,
			"cannot initialize "+ast.TypeString(d.DeclType)+" with "+ast.TypeString(t))
	}
}

// checkFunc registers the function, then checks its parameters and body
// in one shared code block. Registration happens before the body so
// self-recursive calls resolve.
func (c *checker) checkFunc(d *ast.FuncDecl) {
	name := d.Name.Name
	if name != "" {
		if c.tab.IsFuncExisted(name) || c.tab.IsVarExistedInCurrentCodeBlock(name) {
			c.emit(d.DeclPos, diag.Redefine, "'"+name+"' redefined")
		} else {
			c.tab.AddFunc(d)
		}
	}
	c.withBlock(func() {
		for _, p := range d.Params.Fields {
			if p.Name.Name == "" || isBadType(p.Type) {
				continue
			}
			if c.tab.IsVarExistedInCurrentCodeBlock(p.Name.Name) {
				c.emit(p.FieldPos, diag.Redefine, "parameter '"+p.Name.Name+"' redefined")
				continue
			}
			c.tab.AddVar(p.Name.Name, p.Type, false)
		}
		body, ok := d.Body.(*ast.BlockStmt)
		if !ok {
			return
		}
		for _, s := range body.Stmts {
			c.checkStmt(s)
		}
		c.checkReturns(d, body.Stmts)
	})
}

// checkReturns enforces the return rule over the body's immediate
// statements only; returns inside nested blocks do not count. Violations
// are reported against the declaration, not the return.
func (c *checker) checkReturns(d *ast.FuncDecl, stmts []ast.Stmt) {
	void := isVoidType(d.RetType)
	matched := false
	for _, s := range stmts {
		ret, ok := s.(*ast.ReturnStmt)
		if !ok || ret.Result == nil {
			continue
		}
		if void {
			c.emit(d.DeclPos, diag.ReturnValueNotAllowed,
				"void function '"+d.Name.Name+"' must not return a value")
			continue
		}
		if t := c.typeOf(ret.Result); sameType(t, d.RetType) {
			matched = true
		}
	}
	if !void && !matched {
		c.emit(d.DeclPos, diag.ReturnValueRequired,
			"function '"+d.Name.Name+"' must return "+ast.TypeString(d.RetType))
	}
}
