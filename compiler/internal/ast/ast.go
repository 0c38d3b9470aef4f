package ast

import (
	"github.com/cmm-lang/cmm/compiler/internal/token"
)

// There are four families of nodes: type nodes, expression nodes,
// statement nodes, and declaration nodes. Every node records the position
// of the first character of its source text for diagnostics. A parsed
// tree is always fully formed: where the parser cannot build a real node
// it substitutes the family's Bad* placeholder, so traversals never meet
// a nil required child. Optional children (an else branch, a return
// value, for-loop slots, the condition of a default case) may be nil.

// Node is implemented by all AST nodes.
type Node interface {
	Pos() token.Position
}

// Type is implemented by all type nodes.
type Type interface {
	Node
	typeNode()
}

// Expr is implemented by all expression nodes.
type Expr interface {
	Node
	exprNode()
}

// Stmt is implemented by all statement nodes.
type Stmt interface {
	Node
	stmtNode()
}

// Decl is implemented by all declaration nodes.
type Decl interface {
	Node
	declNode()
}

/*** TYPES ***/

// BadType is a placeholder for a malformed type.
type BadType struct{ TypePos token.Position }

// VoidType is the 'void' result type.
type VoidType struct{ TypePos token.Position }

// CharType is the basic type 'char'.
type CharType struct{ TypePos token.Position }

// IntType is the basic type 'int'.
type IntType struct{ TypePos token.Position }

// StringType is the type of string literals. It cannot be declared; it
// exists so printf format arguments infer to something.
type StringType struct{ TypePos token.Position }

// ArrayType is a fixed-size array dimension wrapping an item type.
// Multi-dimensional arrays are right-nested chains, outermost dimension
// first: int a[2][3] is Array(2, Array(3, Int)).
type ArrayType struct {
	TypePos token.Position
	Size    int
	Item    Type
}

func (t *BadType) Pos() token.Position    { return t.TypePos }
func (t *VoidType) Pos() token.Position   { return t.TypePos }
func (t *CharType) Pos() token.Position   { return t.TypePos }
func (t *IntType) Pos() token.Position    { return t.TypePos }
func (t *StringType) Pos() token.Position { return t.TypePos }
func (t *ArrayType) Pos() token.Position  { return t.TypePos }

func (*BadType) typeNode()    {}
func (*VoidType) typeNode()   {}
func (*CharType) typeNode()   {}
func (*IntType) typeNode()    {}
func (*StringType) typeNode() {}
func (*ArrayType) typeNode()  {}

/*** EXPRESSIONS ***/

// BadExpr is a placeholder for an expression containing syntax errors for
// which no correct expression node can be created.
type BadExpr struct{ ExprPos token.Position }

// Ident represents an identifier, e.g. x.
type Ident struct {
	ExprPos token.Position
	Name    string
}

// BasicLit is a literal of basic type: INTLIT, CHARLIT, or STRLIT.
// Val keeps the raw source text, quotes included for char and string.
type BasicLit struct {
	ExprPos token.Position
	Tok     token.Token
	Val     string
}

// CompositeLit is a brace-delimited array initializer,
// e.g. {1, 2, 3} or {{1,2,3}, {4,5,6}}.
type CompositeLit struct {
	ExprPos token.Position
	Items   []Expr
}

// ParenExpr is a parenthesized expression, e.g. (x + y).
type ParenExpr struct {
	ExprPos token.Position
	X       Expr
}

// IndexExpr is an expression followed by an index, e.g. x[i].
type IndexExpr struct {
	ExprPos token.Position
	X       Expr
	Index   Expr
}

// CallExpr is an expression followed by an argument list, e.g. f(1, 'c').
type CallExpr struct {
	ExprPos token.Position
	Fun     Expr
	Args    []Expr
}

// UnaryExpr is a sign-prefixed expression, e.g. -x.
type UnaryExpr struct {
	ExprPos token.Position
	Op      token.Token
	X       Expr
}

// BinaryExpr is a binary expression, e.g. a + b.
type BinaryExpr struct {
	ExprPos token.Position
	Op      token.Token
	X, Y    Expr
}

func (e *BadExpr) Pos() token.Position      { return e.ExprPos }
func (e *Ident) Pos() token.Position        { return e.ExprPos }
func (e *BasicLit) Pos() token.Position     { return e.ExprPos }
func (e *CompositeLit) Pos() token.Position { return e.ExprPos }
func (e *ParenExpr) Pos() token.Position    { return e.ExprPos }
func (e *IndexExpr) Pos() token.Position    { return e.ExprPos }
func (e *CallExpr) Pos() token.Position     { return e.ExprPos }
func (e *UnaryExpr) Pos() token.Position    { return e.ExprPos }
func (e *BinaryExpr) Pos() token.Position   { return e.ExprPos }

func (*BadExpr) exprNode()      {}
func (*Ident) exprNode()        {}
func (*BasicLit) exprNode()     {}
func (*CompositeLit) exprNode() {}
func (*ParenExpr) exprNode()    {}
func (*IndexExpr) exprNode()    {}
func (*CallExpr) exprNode()     {}
func (*UnaryExpr) exprNode()    {}
func (*BinaryExpr) exprNode()   {}

/*** STATEMENTS ***/

// BadStmt is a placeholder for a statement containing syntax errors for
// which no correct statement node can be created.
type BadStmt struct{ StmtPos token.Position }

// DeclStmt is a declaration in a statement list, e.g. int x = 1;.
type DeclStmt struct {
	StmtPos token.Position
	Decl    Decl
}

// EmptyStmt is a lone ';'. Its position is that of the semicolon.
type EmptyStmt struct{ StmtPos token.Position }

// ExprStmt is a stand-alone expression in a statement list.
type ExprStmt struct {
	StmtPos token.Position
	X       Expr
}

// AssignStmt is an assignment, e.g. x = y; or a[i] = y;.
type AssignStmt struct {
	StmtPos token.Position
	Lhs     Expr
	Rhs     Expr
}

// ReturnStmt is a return statement. Result is nil for a bare return.
type ReturnStmt struct {
	StmtPos token.Position
	Result  Expr
}

// BlockStmt is a braced statement list.
type BlockStmt struct {
	StmtPos token.Position
	Stmts   []Stmt
}

// IfStmt is an if statement with an optional else branch.
type IfStmt struct {
	StmtPos token.Position
	Cond    Expr
	Body    Stmt
	Else    Stmt // nil when absent
}

// CaseStmt is one arm of a switch. Cond is nil for the default case.
type CaseStmt struct {
	StmtPos token.Position
	Cond    Expr
	Body    []Stmt
}

// SwitchStmt is an expression switch. Cases holds CaseStmt nodes only.
type SwitchStmt struct {
	StmtPos token.Position
	Cond    Expr
	Cases   []Stmt
}

// ForStmt is a three-slot for loop. Any slot may be nil.
type ForStmt struct {
	StmtPos token.Position
	Init    Stmt
	Cond    Expr
	Step    Stmt
	Body    Stmt
}

// WhileStmt is a while loop.
type WhileStmt struct {
	StmtPos token.Position
	Cond    Expr
	Body    Stmt
}

// ScanStmt reads a value into a variable, e.g. scanf(x);.
type ScanStmt struct {
	StmtPos token.Position
	Var     Expr
}

// PrintfStmt writes its arguments, e.g. printf("%d", x);.
type PrintfStmt struct {
	StmtPos token.Position
	Args    []Expr
}

func (s *BadStmt) Pos() token.Position    { return s.StmtPos }
func (s *DeclStmt) Pos() token.Position   { return s.StmtPos }
func (s *EmptyStmt) Pos() token.Position  { return s.StmtPos }
func (s *ExprStmt) Pos() token.Position   { return s.StmtPos }
func (s *AssignStmt) Pos() token.Position { return s.StmtPos }
func (s *ReturnStmt) Pos() token.Position { return s.StmtPos }
func (s *BlockStmt) Pos() token.Position  { return s.StmtPos }
func (s *IfStmt) Pos() token.Position     { return s.StmtPos }
func (s *CaseStmt) Pos() token.Position   { return s.StmtPos }
func (s *SwitchStmt) Pos() token.Position { return s.StmtPos }
func (s *ForStmt) Pos() token.Position    { return s.StmtPos }
func (s *WhileStmt) Pos() token.Position  { return s.StmtPos }
func (s *ScanStmt) Pos() token.Position   { return s.StmtPos }
func (s *PrintfStmt) Pos() token.Position { return s.StmtPos }

func (*BadStmt) stmtNode()    {}
func (*DeclStmt) stmtNode()   {}
func (*EmptyStmt) stmtNode()  {}
func (*ExprStmt) stmtNode()   {}
func (*AssignStmt) stmtNode() {}
func (*ReturnStmt) stmtNode() {}
func (*BlockStmt) stmtNode()  {}
func (*IfStmt) stmtNode()     {}
func (*CaseStmt) stmtNode()   {}
func (*SwitchStmt) stmtNode() {}
func (*ForStmt) stmtNode()    {}
func (*WhileStmt) stmtNode()  {}
func (*ScanStmt) stmtNode()   {}
func (*PrintfStmt) stmtNode() {}

/*** FIELDS ***/

// Field is a single parameter declaration in a function signature.
type Field struct {
	FieldPos token.Position
	Type     Type
	Name     *Ident
}

func (f *Field) Pos() token.Position { return f.FieldPos }

// FieldList is a parenthesized list of Fields.
type FieldList struct {
	ListPos token.Position
	Fields  []*Field
}

func (f *FieldList) Pos() token.Position { return f.ListPos }

/*** DECLARATIONS ***/

// BadDecl is a placeholder for a declaration containing syntax errors for
// which no correct declaration node can be created.
type BadDecl struct{ DeclPos token.Position }

// SingleVarDecl declares one variable, e.g. const int a = 10;.
// Val is nil when there is no initializer.
type SingleVarDecl struct {
	DeclPos  token.Position
	IsConst  bool
	DeclType Type
	Name     *Ident
	Val      Expr
}

// VarDecl is a comma-separated variable declaration list,
// e.g. const int x = 1, b = 2;.
type VarDecl struct {
	DeclPos token.Position
	Decls   []Decl
}

// FuncDecl is a function declaration, e.g. int foobar(int x) {...}.
type FuncDecl struct {
	DeclPos token.Position
	RetType Type
	Name    *Ident
	Params  *FieldList
	Body    Stmt
}

func (d *BadDecl) Pos() token.Position       { return d.DeclPos }
func (d *SingleVarDecl) Pos() token.Position { return d.DeclPos }
func (d *VarDecl) Pos() token.Position       { return d.DeclPos }
func (d *FuncDecl) Pos() token.Position      { return d.DeclPos }

func (*BadDecl) declNode()       {}
func (*SingleVarDecl) declNode() {}
func (*VarDecl) declNode()       {}
func (*FuncDecl) declNode()      {}

/*** FILE ***/

// File is the root of a parsed source file.
type File struct {
	Name  string
	Decls []Decl
}
