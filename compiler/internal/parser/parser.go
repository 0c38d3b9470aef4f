// Package parser builds a cmm AST from a token stream by recursive
// descent with one token of lookahead.
//
// The parser never backtracks and never aborts: on a local mismatch it
// records one diagnostic, consumes one token, and continues. Parse always
// returns a complete file tree, with Bad* placeholders standing in for
// whatever could not be built.
package parser

import (
	"strconv"

	"github.com/cmm-lang/cmm/compiler/internal/ast"
	"github.com/cmm-lang/cmm/compiler/internal/diag"
	"github.com/cmm-lang/cmm/compiler/internal/scanner"
	"github.com/cmm-lang/cmm/compiler/internal/token"
)

// Parser holds the parsing state for one source file.
type Parser struct {
	file *token.File
	scan *scanner.Scanner
	errs *diag.Reminder

	offset int
	tok    token.Token
	lit    string
}

// New returns a Parser over src, reporting into errs.
func New(file *token.File, src string, errs *diag.Reminder) *Parser {
	p := &Parser{file: file, scan: scanner.New(file, src, errs), errs: errs}
	p.next()
	return p
}

// next advances to the next token. Bytes the scanner could not tokenize
// were already reported there, so ILLEGAL tokens are dropped here.
func (p *Parser) next() {
	for {
		p.offset, p.tok, p.lit = p.scan.Scan()
		if p.tok != token.ILLEGAL {
			return
		}
	}
}

func (p *Parser) pos() token.Position { return p.file.PositionFor(p.offset) }

func (p *Parser) accept(tok token.Token) bool {
	if p.tok == tok {
		p.next()
		return true
	}
	return false
}

// expect consumes the current token no matter what. A mismatch records a
// diagnostic whose kind derives from the expected token; consuming anyway
// is the parser's only recovery mechanism.
func (p *Parser) expect(tok token.Token) {
	if p.tok != tok {
		kind := diag.UnsupportedConstruct
		switch tok {
		case token.SEMICOLON:
			kind = diag.SemicolonExpected
		case token.RPAREN:
			kind = diag.RParenExpected
		case token.RBRACK:
			kind = diag.RBracketExpected
		}
		p.errs.Emit(p.pos(), kind, "'"+tok.String()+"' expected, found '"+p.tok.String()+"'")
	}
	p.next()
}

func (p *Parser) expectIdent() *ast.Ident {
	id := &ast.Ident{ExprPos: p.pos(), Name: p.lit}
	if p.tok != token.IDENT {
		p.errs.Emit(p.pos(), diag.UnsupportedConstruct, "identifier expected, found '"+p.tok.String()+"'")
	}
	p.next()
	return id
}

// Parse consumes the whole token stream and returns the file tree. It
// never returns nil and never panics on user input.
func (p *Parser) Parse() *ast.File {
	f := &ast.File{Name: p.file.Name}
	for p.tok != token.EOF {
		f.Decls = append(f.Decls, p.parseDecl())
	}
	return f
}

/*** DECLARATIONS ***/

func (p *Parser) parseDecl() ast.Decl {
	declPos := p.pos()
	isConst := p.accept(token.CONST)

	switch p.tok {
	case token.VOID:
		ret := &ast.VoidType{TypePos: p.pos()}
		p.next()
		var name *ast.Ident
		if p.tok == token.MAIN {
			name = &ast.Ident{ExprPos: p.pos(), Name: p.lit}
			p.next()
		} else {
			name = p.expectIdent()
		}
		return p.parseFuncDecl(declPos, ret, name)
	case token.INT, token.CHAR:
		base := p.parseBasicType()
		name := p.expectIdent()
		if !isConst && p.tok == token.LPAREN {
			return p.parseFuncDecl(declPos, base, name)
		}
		return p.parseVarDecl(declPos, isConst, base, name)
	}

	p.errs.Emit(declPos, diag.UnsupportedConstruct, "declaration expected, found '"+p.tok.String()+"'")
	p.next()
	return &ast.BadDecl{DeclPos: declPos}
}

func (p *Parser) parseBasicType() ast.Type {
	pos := p.pos()
	switch p.tok {
	case token.INT:
		p.next()
		return &ast.IntType{TypePos: pos}
	case token.CHAR:
		p.next()
		return &ast.CharType{TypePos: pos}
	}
	p.errs.Emit(pos, diag.UnsupportedConstruct, "type expected, found '"+p.tok.String()+"'")
	p.next()
	return &ast.BadType{TypePos: pos}
}

// cloneBasic gives each declarator in a list its own type node; AST nodes
// are never shared between parents.
func cloneBasic(t ast.Type) ast.Type {
	switch t := t.(type) {
	case *ast.IntType:
		c := *t
		return &c
	case *ast.CharType:
		c := *t
		return &c
	}
	return &ast.BadType{TypePos: t.Pos()}
}

func (p *Parser) parseVarDecl(pos token.Position, isConst bool, base ast.Type, name *ast.Ident) ast.Decl {
	decl := &ast.VarDecl{DeclPos: pos}
	decl.Decls = append(decl.Decls, p.parseSingleVarDecl(isConst, base, name))
	for p.accept(token.COMMA) {
		name := p.expectIdent()
		decl.Decls = append(decl.Decls, p.parseSingleVarDecl(isConst, cloneBasic(base), name))
	}
	p.expect(token.SEMICOLON)
	return decl
}

func (p *Parser) parseSingleVarDecl(isConst bool, base ast.Type, name *ast.Ident) ast.Decl {
	d := &ast.SingleVarDecl{
		DeclPos:  name.ExprPos,
		IsConst:  isConst,
		DeclType: p.parseArrayDims(base),
		Name:     name,
	}
	if p.accept(token.ASSIGN) {
		if p.tok == token.LBRACE {
			d.Val = p.parseCompositeLit()
		} else {
			d.Val = p.parseExpr()
		}
	}
	return d
}

// parseArrayDims parses zero or more '[' INTLIT ']' dimensions and wraps
// item in a right-nested Array chain, outermost dimension first.
func (p *Parser) parseArrayDims(item ast.Type) ast.Type {
	type dim struct {
		pos  token.Position
		size int
	}
	var dims []dim
	for p.tok == token.LBRACK {
		d := dim{pos: p.pos()}
		p.next()
		if p.tok == token.INTLIT {
			d.size, _ = strconv.Atoi(p.lit)
			p.next()
		} else {
			p.errs.Emit(p.pos(), diag.UnsupportedConstruct, "array size must be an integer literal")
			p.next()
		}
		p.expect(token.RBRACK)
		dims = append(dims, d)
	}
	typ := item
	for i := len(dims) - 1; i >= 0; i-- {
		typ = &ast.ArrayType{TypePos: dims[i].pos, Size: dims[i].size, Item: typ}
	}
	return typ
}

// parseCompositeLit parses a brace initializer of arbitrary nesting depth
// with an explicit stack of open literals: push on '{', append items to
// the top, pop on '}'. Item and brace tokens interleave arbitrarily, so
// one loop with a stack covers every nesting level.
func (p *Parser) parseCompositeLit() ast.Expr {
	pos := p.pos()
	if p.tok != token.LBRACE {
		p.errs.Emit(pos, diag.UnsupportedConstruct, "'{' expected in array initializer")
		p.next()
		return &ast.BadExpr{ExprPos: pos}
	}
	root := &ast.CompositeLit{ExprPos: pos}
	stack := []*ast.CompositeLit{root}
	p.next()
	for len(stack) > 0 {
		switch p.tok {
		case token.LBRACE:
			lit := &ast.CompositeLit{ExprPos: p.pos()}
			top := stack[len(stack)-1]
			top.Items = append(top.Items, lit)
			stack = append(stack, lit)
			p.next()
		case token.RBRACE:
			stack = stack[:len(stack)-1]
			p.next()
		case token.COMMA:
			p.next()
		case token.EOF:
			p.errs.Emit(p.pos(), diag.UnsupportedConstruct, "array initializer not closed")
			stack = nil
		default:
			top := stack[len(stack)-1]
			top.Items = append(top.Items, p.parseExpr())
		}
	}
	return root
}

func (p *Parser) parseFuncDecl(pos token.Position, ret ast.Type, name *ast.Ident) ast.Decl {
	return &ast.FuncDecl{
		DeclPos: pos,
		RetType: ret,
		Name:    name,
		Params:  p.parseFieldList(),
		Body:    p.parseBlockStmt(),
	}
}

func (p *Parser) parseFieldList() *ast.FieldList {
	list := &ast.FieldList{ListPos: p.pos()}
	p.expect(token.LPAREN)
	if p.tok != token.RPAREN && p.tok != token.LBRACE && p.tok != token.EOF {
		for {
			fieldPos := p.pos()
			typ := p.parseBasicType()
			name := p.expectIdent()
			list.Fields = append(list.Fields, &ast.Field{FieldPos: fieldPos, Type: typ, Name: name})
			if !p.accept(token.COMMA) {
				break
			}
		}
	}
	p.expect(token.RPAREN)
	return list
}

/*** STATEMENTS ***/

func (p *Parser) parseBlockStmt() ast.Stmt {
	pos := p.pos()
	if p.tok != token.LBRACE {
		p.errs.Emit(pos, diag.UnsupportedConstruct, "'{' expected, found '"+p.tok.String()+"'")
		p.next()
		return &ast.BadStmt{StmtPos: pos}
	}
	p.next()
	block := &ast.BlockStmt{StmtPos: pos}
	for p.tok != token.RBRACE && p.tok != token.EOF {
		block.Stmts = append(block.Stmts, p.parseStmt())
	}
	p.expect(token.RBRACE)
	return block
}

func (p *Parser) parseStmt() ast.Stmt {
	switch p.tok {
	case token.LBRACE:
		return p.parseBlockStmt()
	case token.SEMICOLON:
		s := &ast.EmptyStmt{StmtPos: p.pos()}
		p.next()
		return s
	case token.CONST, token.INT, token.CHAR:
		pos := p.pos()
		return &ast.DeclStmt{StmtPos: pos, Decl: p.parseDecl()}
	case token.IF:
		return p.parseIfStmt()
	case token.WHILE:
		return p.parseWhileStmt()
	case token.FOR:
		return p.parseForStmt()
	case token.SWITCH:
		return p.parseSwitchStmt()
	case token.SCANF:
		return p.parseScanStmt()
	case token.PRINTF:
		return p.parsePrintfStmt()
	case token.RETURN:
		return p.parseReturnStmt()
	}
	s := p.parseSimpleStmt()
	p.expect(token.SEMICOLON)
	return s
}

// parseSimpleStmt parses an assignment or a bare expression, without the
// trailing ';'. The for statement reuses it for its init and step slots.
func (p *Parser) parseSimpleStmt() ast.Stmt {
	pos := p.pos()
	lhs := p.parseExpr()
	if p.accept(token.ASSIGN) {
		return &ast.AssignStmt{StmtPos: pos, Lhs: lhs, Rhs: p.parseExpr()}
	}
	return &ast.ExprStmt{StmtPos: pos, X: lhs}
}

func (p *Parser) parseIfStmt() ast.Stmt {
	pos := p.pos()
	p.next()
	p.expect(token.LPAREN)
	s := &ast.IfStmt{StmtPos: pos, Cond: p.parseExpr()}
	p.expect(token.RPAREN)
	s.Body = p.parseStmt()
	if p.accept(token.ELSE) {
		s.Else = p.parseStmt()
	}
	return s
}

func (p *Parser) parseWhileStmt() ast.Stmt {
	pos := p.pos()
	p.next()
	p.expect(token.LPAREN)
	s := &ast.WhileStmt{StmtPos: pos, Cond: p.parseExpr()}
	p.expect(token.RPAREN)
	s.Body = p.parseStmt()
	return s
}

func (p *Parser) parseForStmt() ast.Stmt {
	pos := p.pos()
	p.next()
	p.expect(token.LPAREN)
	s := &ast.ForStmt{StmtPos: pos}
	if p.tok != token.SEMICOLON {
		s.Init = p.parseSimpleStmt()
	}
	p.expect(token.SEMICOLON)
	if p.tok != token.SEMICOLON {
		s.Cond = p.parseExpr()
	}
	p.expect(token.SEMICOLON)
	if p.tok != token.RPAREN {
		s.Step = p.parseSimpleStmt()
	}
	p.expect(token.RPAREN)
	s.Body = p.parseStmt()
	return s
}

func (p *Parser) parseSwitchStmt() ast.Stmt {
	pos := p.pos()
	p.next()
	p.expect(token.LPAREN)
	s := &ast.SwitchStmt{StmtPos: pos, Cond: p.parseExpr()}
	p.expect(token.RPAREN)
	if p.tok != token.LBRACE {
		p.errs.Emit(p.pos(), diag.UnsupportedConstruct, "'{' expected after switch")
		p.next()
		return s
	}
	p.next()
	for p.tok != token.RBRACE && p.tok != token.EOF {
		if p.tok != token.CASE && p.tok != token.DEFAULT {
			p.errs.Emit(p.pos(), diag.UnsupportedConstruct, "'case' or 'default' expected, found '"+p.tok.String()+"'")
			p.next()
			continue
		}
		s.Cases = append(s.Cases, p.parseCaseStmt())
	}
	p.expect(token.RBRACE)
	return s
}

func (p *Parser) parseCaseStmt() ast.Stmt {
	c := &ast.CaseStmt{StmtPos: p.pos()}
	if p.tok == token.CASE {
		p.next()
		c.Cond = p.parseExpr()
	} else {
		p.next() // default
	}
	p.expect(token.COLON)
	for p.tok != token.CASE && p.tok != token.DEFAULT && p.tok != token.RBRACE && p.tok != token.EOF {
		c.Body = append(c.Body, p.parseStmt())
	}
	return c
}

func (p *Parser) parseScanStmt() ast.Stmt {
	pos := p.pos()
	p.next()
	p.expect(token.LPAREN)
	s := &ast.ScanStmt{StmtPos: pos, Var: p.parseExpr()}
	p.expect(token.RPAREN)
	p.expect(token.SEMICOLON)
	return s
}

func (p *Parser) parsePrintfStmt() ast.Stmt {
	pos := p.pos()
	p.next()
	p.expect(token.LPAREN)
	s := &ast.PrintfStmt{StmtPos: pos}
	if p.tok != token.RPAREN && p.tok != token.EOF {
		for {
			s.Args = append(s.Args, p.parseExpr())
			if !p.accept(token.COMMA) {
				break
			}
		}
	}
	p.expect(token.RPAREN)
	p.expect(token.SEMICOLON)
	return s
}

func (p *Parser) parseReturnStmt() ast.Stmt {
	pos := p.pos()
	p.next()
	s := &ast.ReturnStmt{StmtPos: pos}
	if p.tok != token.SEMICOLON {
		s.Result = p.parseExpr()
	}
	p.expect(token.SEMICOLON)
	return s
}

/*** EXPRESSIONS ***/

func (p *Parser) parseExpr() ast.Expr {
	return p.parseBinaryExpr(token.LowestPrecedence + 1)
}

// parseBinaryExpr is standard left-associative precedence climbing: parse
// a unary operand, then keep consuming operators that bind at least as
// tightly as minPrec, recursing one level tighter for the right side.
func (p *Parser) parseBinaryExpr(minPrec int) ast.Expr {
	x := p.parseUnaryExpr()
	for {
		op := p.tok
		prec := op.Precedence()
		if prec < minPrec {
			return x
		}
		p.next()
		y := p.parseBinaryExpr(prec + 1)
		x = &ast.BinaryExpr{ExprPos: x.Pos(), Op: op, X: x, Y: y}
	}
}

// parseUnaryExpr recurses on itself so chains of signs nest, e.g. - -x.
func (p *Parser) parseUnaryExpr() ast.Expr {
	if p.tok == token.ADD || p.tok == token.SUB {
		u := &ast.UnaryExpr{ExprPos: p.pos(), Op: p.tok}
		p.next()
		u.X = p.parseUnaryExpr()
		return u
	}
	return p.parsePrimaryExpr()
}

// parsePrimaryExpr parses an operand and then attaches any number of
// calls and index accesses to it.
func (p *Parser) parsePrimaryExpr() ast.Expr {
	x := p.parseOperand()
	for {
		switch p.tok {
		case token.LPAREN:
			call := &ast.CallExpr{ExprPos: x.Pos(), Fun: x}
			p.next()
			if p.tok != token.RPAREN && p.tok != token.EOF {
				for {
					call.Args = append(call.Args, p.parseExpr())
					if !p.accept(token.COMMA) {
						break
					}
				}
			}
			p.expect(token.RPAREN)
			x = call
		case token.LBRACK:
			p.next()
			idx := &ast.IndexExpr{ExprPos: x.Pos(), X: x, Index: p.parseExpr()}
			p.expect(token.RBRACK)
			x = idx
		default:
			return x
		}
	}
}

func (p *Parser) parseOperand() ast.Expr {
	pos := p.pos()
	switch p.tok {
	case token.IDENT:
		x := &ast.Ident{ExprPos: pos, Name: p.lit}
		p.next()
		return x
	case token.INTLIT, token.CHARLIT, token.STRLIT:
		x := &ast.BasicLit{ExprPos: pos, Tok: p.tok, Val: p.lit}
		p.next()
		return x
	case token.LPAREN:
		p.next()
		x := &ast.ParenExpr{ExprPos: pos, X: p.parseExpr()}
		p.expect(token.RPAREN)
		return x
	}
	p.errs.Emit(pos, diag.UnsupportedConstruct, "expression expected, found '"+p.tok.String()+"'")
	p.next()
	return &ast.BadExpr{ExprPos: pos}
}
