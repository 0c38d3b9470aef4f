package check

import (
	"strconv"

	"github.com/cmm-lang/cmm/compiler/internal/ast"
	"github.com/cmm-lang/cmm/compiler/internal/diag"
	"github.com/cmm-lang/cmm/compiler/internal/token"
)

// typeOf infers the type of an expression, emitting diagnostics for
// violations found on the way. A subtree that already failed yields the
// bad type and produces no further diagnostics upward.
func (c *checker) typeOf(e ast.Expr) ast.Type {
	switch e := e.(type) {
	case *ast.BadExpr:
		return badType
	case *ast.Ident:
		id, ok := c.tab.GetVar(e.Name)
		if !ok {
			c.emit(e.ExprPos, diag.Undefine, "'"+e.Name+"' undeclared")
			return badType
		}
		return id.Type
	case *ast.BasicLit:
		switch e.Tok {
		case token.INTLIT:
			return intType
		case token.CHARLIT:
			return charType
		case token.STRLIT:
			return stringType
		}
		return badType
	case *ast.CompositeLit:
		c.emit(e.ExprPos, diag.UnsupportedConstruct, "brace literal only allowed as an array initializer")
		return badType
	case *ast.ParenExpr:
		return c.typeOf(e.X)
	case *ast.UnaryExpr:
		t := c.typeOf(e.X)
		if isBadType(t) {
			return badType
		}
		if !isIntType(t) {
			c.emit(e.ExprPos, diag.UnsupportedConstruct, "operand of unary '"+e.Op.String()+"' must be int")
			return badType
		}
		return intType
	case *ast.BinaryExpr:
		return c.typeOfBinary(e)
	case *ast.IndexExpr:
		return c.typeOfIndex(e)
	case *ast.CallExpr:
		return c.typeOfCall(e)
	}
	return badType
}

// typeOfBinary types an arithmetic binary expression. Relational
// operators are rejected here; they are legal only as the top of a
// condition. The result type is the left operand's type, no promotion.
func (c *checker) typeOfBinary(e *ast.BinaryExpr) ast.Type {
	if e.Op.IsRelational() {
		c.emit(e.ExprPos, diag.UnsupportedConstruct, "comparison not allowed inside an expression")
		return badType
	}
	tx := c.typeOf(e.X)
	c.typeOf(e.Y)
	if isBadType(tx) {
		return badType
	}
	return tx
}

// typeOfIndex walks nested index nodes back to the base identifier,
// counting dereferences. The base must name an array with at least that
// many dimensions and every index must be an int. Indexing fewer
// dimensions than declared is a partial index and yields the remaining
// array type.
func (c *checker) typeOfIndex(e *ast.IndexExpr) ast.Type {
	var idxs []ast.Expr
	var base ast.Expr = e
	for {
		ie, ok := base.(*ast.IndexExpr)
		if !ok {
			break
		}
		idxs = append(idxs, ie.Index)
		base = ie.X
	}

	for _, idx := range idxs {
		if t := c.typeOf(idx); !isBadType(t) && !isIntType(t) {
			c.emit(idx.Pos(), diag.IndexTypeNotAllowed, "array index must be int")
		}
	}

	name, ok := base.(*ast.Ident)
	if !ok {
		if _, bad := base.(*ast.BadExpr); !bad {
			c.emit(base.Pos(), diag.IndexTypeNotAllowed, "only named arrays can be indexed")
		}
		return badType
	}
	id, ok := c.tab.GetVar(name.Name)
	if !ok {
		c.emit(name.ExprPos, diag.Undefine, "'"+name.Name+"' undeclared")
		return badType
	}

	t := id.Type
	for range idxs {
		at, ok := t.(*ast.ArrayType)
		if !ok {
			c.emit(e.ExprPos, diag.IndexTypeNotAllowed,
				"'"+name.Name+"' indexed with more dimensions than its type "+ast.TypeString(id.Type))
			return badType
		}
		t = at.Item
	}
	return t
}

// typeOfCall resolves the callee in the flat function table and matches
// arguments against parameters positionally, with no implicit conversion.
func (c *checker) typeOfCall(e *ast.CallExpr) ast.Type {
	name, ok := e.Fun.(*ast.Ident)
	if !ok {
		if _, bad := e.Fun.(*ast.BadExpr); !bad {
			c.emit(e.Fun.Pos(), diag.UnsupportedConstruct, "only named functions can be called")
		}
		for _, a := range e.Args {
			c.typeOf(a)
		}
		return badType
	}
	fn, ok := c.tab.GetFunc(name.Name)
	if !ok {
		c.emit(name.ExprPos, diag.Undefine, "function '"+name.Name+"' undeclared")
		for _, a := range e.Args {
			c.typeOf(a)
		}
		return badType
	}

	params := fn.Params.Fields
	if len(e.Args) != len(params) {
		c.emit(e.ExprPos, diag.ArgNumberNotMatched,
			"'"+name.Name+"' takes "+strconv.Itoa(len(params))+" arguments, got "+strconv.Itoa(len(e.Args)))
	}
	n := len(e.Args)
	if len(params) < n {
		n = len(params)
	}
	for i := 0; i < n; i++ {
		at := c.typeOf(e.Args[i])
		if !isBadType(at) && !sameType(at, params[i].Type) {
			c.emit(e.Args[i].Pos(), diag.ArgTypeNotMatched,
				"argument "+strconv.Itoa(i+1)+" of '"+name.Name+"' must be "+ast.TypeString(params[i].Type))
		}
	}
	for i := n; i < len(e.Args); i++ {
		c.typeOf(e.Args[i])
	}
	return fn.RetType
}

// inferCompositeType infers an array type from a brace initializer,
// breadth first by nesting depth. Every literal at one depth must have
// the same item count, and the deepest items must all be scalar literals
// of one kind. Any unevenness makes the whole inference fail.
func inferCompositeType(lit *ast.CompositeLit) (ast.Type, bool) {
	level := []*ast.CompositeLit{lit}
	var dims []int
	for {
		n := len(level[0].Items)
		if n == 0 {
			return nil, false
		}
		for _, node := range level {
			if len(node.Items) != n {
				return nil, false
			}
		}
		dims = append(dims, n)

		switch level[0].Items[0].(type) {
		case *ast.CompositeLit:
			var next []*ast.CompositeLit
			for _, node := range level {
				for _, item := range node.Items {
					sub, ok := item.(*ast.CompositeLit)
					if !ok {
						return nil, false
					}
					next = append(next, sub)
				}
			}
			level = next
		case *ast.BasicLit:
			kind := level[0].Items[0].(*ast.BasicLit).Tok
			for _, node := range level {
				for _, item := range node.Items {
					bl, ok := item.(*ast.BasicLit)
					if !ok || bl.Tok != kind {
						return nil, false
					}
				}
			}
			var base ast.Type
			switch kind {
			case token.INTLIT:
				base = &ast.IntType{}
			case token.CHARLIT:
				base = &ast.CharType{}
			default:
				return nil, false
			}
			t := base
			for i := len(dims) - 1; i >= 0; i-- {
				t = &ast.ArrayType{Size: dims[i], Item: t}
			}
			return t, true
		default:
			return nil, false
		}
	}
}
