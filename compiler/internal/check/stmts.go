package check

import (
	"github.com/cmm-lang/cmm/compiler/internal/ast"
	"github.com/cmm-lang/cmm/compiler/internal/diag"
)

func (c *checker) checkStmt(s ast.Stmt) {
	switch s := s.(type) {
	case *ast.BadStmt, *ast.EmptyStmt:
		// nothing to check
	case *ast.DeclStmt:
		c.checkDecl(s.Decl)
	case *ast.ExprStmt:
		c.typeOf(s.X)
	case *ast.AssignStmt:
		c.checkAssign(s)
	case *ast.ReturnStmt:
		if s.Result != nil {
			c.typeOf(s.Result)
		}
	case *ast.BlockStmt:
		c.withBlock(func() {
			for _, sub := range s.Stmts {
				c.checkStmt(sub)
			}
		})
	case *ast.IfStmt:
		c.checkCond(s.Cond)
		c.checkStmt(s.Body)
		if s.Else != nil {
			c.checkStmt(s.Else)
		}
	case *ast.WhileStmt:
		c.checkCond(s.Cond)
		c.checkStmt(s.Body)
	case *ast.ForStmt:
		if s.Init != nil {
			c.checkStmt(s.Init)
		}
		if s.Cond != nil {
			c.checkCond(s.Cond)
		}
		if s.Step != nil {
			c.checkStmt(s.Step)
		}
		c.checkStmt(s.Body)
	case *ast.SwitchStmt:
		c.checkSwitch(s)
	case *ast.ScanStmt:
		c.checkScan(s)
	case *ast.PrintfStmt:
		for _, a := range s.Args {
			c.typeOf(a)
		}
	}
}

// checkAssign validates the left side and types the right. The left side
// must be a declared, non-const identifier or an index expression.
func (c *checker) checkAssign(s *ast.AssignStmt) {
	switch lhs := s.Lhs.(type) {
	case *ast.BadExpr:
	case *ast.Ident:
		if id, ok := c.tab.GetVar(lhs.Name); !ok {
			c.emit(lhs.ExprPos, diag.Undefine, "'"+lhs.Name+"' undeclared")
		} else if id.IsConst {
			c.emit(lhs.ExprPos, diag.UpdateConstValue, "cannot assign to const '"+lhs.Name+"'")
		}
	case *ast.IndexExpr:
		c.typeOf(lhs)
	default:
		c.emit(s.Lhs.Pos(), diag.UnsupportedConstruct, "left side of assignment must be a variable")
	}
	c.typeOf(s.Rhs)
}

// checkCond enforces the condition shape: after stripping parentheses the
// expression must be one relational comparison whose operands share one
// basic type. Arithmetic and bare expressions are rejected here, the
// inverse of the arithmetic-binary rule.
func (c *checker) checkCond(e ast.Expr) {
	x := e
	for {
		paren, ok := x.(*ast.ParenExpr)
		if !ok {
			break
		}
		x = paren.X
	}
	if _, ok := x.(*ast.BadExpr); ok {
		return
	}
	cmp, ok := x.(*ast.BinaryExpr)
	if !ok || !cmp.Op.IsRelational() {
		c.emit(e.Pos(), diag.CondValueNotMatched, "condition must be a relational comparison")
		return
	}
	tx := c.typeOf(cmp.X)
	ty := c.typeOf(cmp.Y)
	if isBadType(tx) || isBadType(ty) {
		return
	}
	if !isBasicType(tx) || !isBasicType(ty) || !sameType(tx, ty) {
		c.emit(e.Pos(), diag.CondValueNotMatched,
			"cannot compare "+ast.TypeString(tx)+" with "+ast.TypeString(ty))
	}
}

// checkSwitch enforces one shared int or char type across the switch
// expression and every case label, and exactly one default case.
func (c *checker) checkSwitch(s *ast.SwitchStmt) {
	ct := c.typeOf(s.Cond)
	condOK := isBasicType(ct)
	if !condOK && !isBadType(ct) {
		c.emit(s.Cond.Pos(), diag.SwitchTypeError, "switch expression must be int or char")
	}
	defaults := 0
	for _, cs := range s.Cases {
		kase, ok := cs.(*ast.CaseStmt)
		if !ok {
			continue
		}
		if kase.Cond == nil {
			defaults++
		} else if lt := c.typeOf(kase.Cond); condOK && !isBadType(lt) && !sameType(lt, ct) {
			c.emit(kase.Cond.Pos(), diag.SwitchTypeError,
				"case type "+ast.TypeString(lt)+" differs from switch type "+ast.TypeString(ct))
		}
		for _, sub := range kase.Body {
			c.checkStmt(sub)
		}
	}
	if defaults != 1 {
		c.emit(s.StmtPos, diag.DefaultExpected, "switch needs exactly one default case")
	}
}

// checkScan requires the scan target to be a declared, mutable variable.
func (c *checker) checkScan(s *ast.ScanStmt) {
	switch v := s.Var.(type) {
	case *ast.BadExpr:
	case *ast.Ident:
		if id, ok := c.tab.GetVar(v.Name); !ok {
			c.emit(v.ExprPos, diag.Undefine, "'"+v.Name+"' undeclared")
		} else if id.IsConst {
			c.emit(v.ExprPos, diag.UpdateConstValue, "cannot scan into const '"+v.Name+"'")
		}
	default:
		c.emit(s.Var.Pos(), diag.UnsupportedConstruct, "scanf target must be a variable")
	}
}
