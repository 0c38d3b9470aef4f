package parser

import (
	"testing"

	"github.com/cmm-lang/cmm/compiler/internal/ast"
	"github.com/cmm-lang/cmm/compiler/internal/diag"
	"github.com/cmm-lang/cmm/compiler/internal/token"
)

func parseSrc(t *testing.T, src string) (*ast.File, *diag.Reminder) {
	t.Helper()
	errs := diag.NewReminder()
	file := token.NewFile("test.cmm", len(src))
	f := New(file, src, errs).Parse()
	if f == nil {
		t.Fatal("Parse returned nil file")
	}
	return f, errs
}

func parseClean(t *testing.T, src string) *ast.File {
	t.Helper()
	f, errs := parseSrc(t, src)
	if errs.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", errs.All())
	}
	return f
}

func mainWrap(body string) string {
	return "void main() {\n" + body + "\n}"
}

func mainBody(t *testing.T, f *ast.File) []ast.Stmt {
	t.Helper()
	fn, ok := f.Decls[len(f.Decls)-1].(*ast.FuncDecl)
	if !ok {
		t.Fatalf("last decl is %T, want FuncDecl", f.Decls[len(f.Decls)-1])
	}
	block, ok := fn.Body.(*ast.BlockStmt)
	if !ok {
		t.Fatalf("body is %T, want BlockStmt", fn.Body)
	}
	return block.Stmts
}

func TestParseVarDeclList(t *testing.T) {
	f := parseClean(t, "const int x = 1, b = 2;")
	if len(f.Decls) != 1 {
		t.Fatalf("got %d decls", len(f.Decls))
	}
	list, ok := f.Decls[0].(*ast.VarDecl)
	if !ok || len(list.Decls) != 2 {
		t.Fatalf("decl 0: %T", f.Decls[0])
	}
	for i, name := range []string{"x", "b"} {
		d := list.Decls[i].(*ast.SingleVarDecl)
		if !d.IsConst || d.Name.Name != name {
			t.Fatalf("declarator %d: const=%v name=%s", i, d.IsConst, d.Name.Name)
		}
		if _, ok := d.DeclType.(*ast.IntType); !ok {
			t.Fatalf("declarator %d type %T", i, d.DeclType)
		}
		if _, ok := d.Val.(*ast.BasicLit); !ok {
			t.Fatalf("declarator %d val %T", i, d.Val)
		}
	}
	d0 := list.Decls[0].(*ast.SingleVarDecl)
	d1 := list.Decls[1].(*ast.SingleVarDecl)
	if d0.DeclType == d1.DeclType {
		t.Fatal("declarators must not share type nodes")
	}
}

func TestParseArrayDims(t *testing.T) {
	f := parseClean(t, "int a[2][3];")
	d := f.Decls[0].(*ast.VarDecl).Decls[0].(*ast.SingleVarDecl)
	outer, ok := d.DeclType.(*ast.ArrayType)
	if !ok || outer.Size != 2 {
		t.Fatalf("outer: %T", d.DeclType)
	}
	inner, ok := outer.Item.(*ast.ArrayType)
	if !ok || inner.Size != 3 {
		t.Fatalf("inner: %T", outer.Item)
	}
	if _, ok := inner.Item.(*ast.IntType); !ok {
		t.Fatalf("base: %T", inner.Item)
	}
}

func TestParseNestedCompositeLit(t *testing.T) {
	f := parseClean(t, "int a[2][3] = {{1, 2, 3}, {4, 5, 6}};")
	d := f.Decls[0].(*ast.VarDecl).Decls[0].(*ast.SingleVarDecl)
	lit, ok := d.Val.(*ast.CompositeLit)
	if !ok || len(lit.Items) != 2 {
		t.Fatalf("initializer: %T", d.Val)
	}
	for i, item := range lit.Items {
		row, ok := item.(*ast.CompositeLit)
		if !ok || len(row.Items) != 3 {
			t.Fatalf("row %d: %T with %d items", i, item, len(row.Items))
		}
	}
}

func TestParsePrecedence(t *testing.T) {
	// 1 + 2 * 3 < x  parses as  ((1 + (2*3)) < x)
	f := parseClean(t, mainWrap("a = 1 + 2 * 3 < x;"))
	asg := mainBody(t, f)[0].(*ast.AssignStmt)
	lt, ok := asg.Rhs.(*ast.BinaryExpr)
	if !ok || lt.Op != token.LSS {
		t.Fatalf("top op: %T", asg.Rhs)
	}
	plus, ok := lt.X.(*ast.BinaryExpr)
	if !ok || plus.Op != token.ADD {
		t.Fatalf("left of <: %T", lt.X)
	}
	times, ok := plus.Y.(*ast.BinaryExpr)
	if !ok || times.Op != token.MUL {
		t.Fatalf("right of +: %T", plus.Y)
	}
}

func TestParseLeftAssociativity(t *testing.T) {
	// a - b - c  parses as  ((a-b) - c)
	f := parseClean(t, mainWrap("x = a - b - c;"))
	asg := mainBody(t, f)[0].(*ast.AssignStmt)
	outer := asg.Rhs.(*ast.BinaryExpr)
	if outer.Op != token.SUB {
		t.Fatalf("outer op %s", outer.Op)
	}
	inner, ok := outer.X.(*ast.BinaryExpr)
	if !ok || inner.Op != token.SUB {
		t.Fatalf("left child: %T", outer.X)
	}
	if _, ok := outer.Y.(*ast.Ident); !ok {
		t.Fatalf("right child: %T", outer.Y)
	}
}

func TestParseUnaryChain(t *testing.T) {
	f := parseClean(t, mainWrap("x = - -y;"))
	asg := mainBody(t, f)[0].(*ast.AssignStmt)
	u1 := asg.Rhs.(*ast.UnaryExpr)
	u2, ok := u1.X.(*ast.UnaryExpr)
	if !ok || u1.Op != token.SUB || u2.Op != token.SUB {
		t.Fatalf("unary chain: %T", u1.X)
	}
}

func TestParseCallAndIndex(t *testing.T) {
	f := parseClean(t, mainWrap("x = f(a, 1)[2];"))
	asg := mainBody(t, f)[0].(*ast.AssignStmt)
	idx, ok := asg.Rhs.(*ast.IndexExpr)
	if !ok {
		t.Fatalf("rhs: %T", asg.Rhs)
	}
	call, ok := idx.X.(*ast.CallExpr)
	if !ok || len(call.Args) != 2 {
		t.Fatalf("base: %T", idx.X)
	}
	if id, ok := call.Fun.(*ast.Ident); !ok || id.Name != "f" {
		t.Fatalf("callee: %T", call.Fun)
	}
}

func TestParseControlFlow(t *testing.T) {
	src := mainWrap(`
if (a < b) x = 1; else x = 2;
while (a < b) x = x + 1;
for (i = 0; i < 10; i = i + 1) x = x + i;
switch (c) {
case 1: x = 1;
case 2: x = 2;
default: x = 0;
}
scanf(n);
printf("%d", n);
return;`)
	f := parseClean(t, src)
	stmts := mainBody(t, f)
	if len(stmts) != 7 {
		t.Fatalf("got %d statements", len(stmts))
	}
	ifs := stmts[0].(*ast.IfStmt)
	if ifs.Else == nil {
		t.Fatal("else branch missing")
	}
	fors := stmts[2].(*ast.ForStmt)
	if fors.Init == nil || fors.Cond == nil || fors.Step == nil {
		t.Fatal("for slots missing")
	}
	sw := stmts[3].(*ast.SwitchStmt)
	if len(sw.Cases) != 3 {
		t.Fatalf("got %d cases", len(sw.Cases))
	}
	last := sw.Cases[2].(*ast.CaseStmt)
	if last.Cond != nil {
		t.Fatal("default case must have nil cond")
	}
	pf := stmts[5].(*ast.PrintfStmt)
	if len(pf.Args) != 2 {
		t.Fatalf("printf args: %d", len(pf.Args))
	}
	ret := stmts[6].(*ast.ReturnStmt)
	if ret.Result != nil {
		t.Fatal("bare return must have nil result")
	}
}

func TestParseFuncDecl(t *testing.T) {
	f := parseClean(t, "int add(int a, char b) { return a; }\nvoid main() { }")
	fn := f.Decls[0].(*ast.FuncDecl)
	if fn.Name.Name != "add" {
		t.Fatalf("name %s", fn.Name.Name)
	}
	if _, ok := fn.RetType.(*ast.IntType); !ok {
		t.Fatalf("ret type %T", fn.RetType)
	}
	if len(fn.Params.Fields) != 2 {
		t.Fatalf("params: %d", len(fn.Params.Fields))
	}
	if _, ok := fn.Params.Fields[1].Type.(*ast.CharType); !ok {
		t.Fatalf("param 1 type %T", fn.Params.Fields[1].Type)
	}
	mainFn := f.Decls[1].(*ast.FuncDecl)
	if mainFn.Name.Name != "main" {
		t.Fatalf("main name %s", mainFn.Name.Name)
	}
}

func TestMissingSemicolonStillYieldsCompleteFile(t *testing.T) {
	f, errs := parseSrc(t, "int x")
	if len(f.Decls) != 1 {
		t.Fatalf("got %d decls", len(f.Decls))
	}
	list, ok := f.Decls[0].(*ast.VarDecl)
	if !ok || len(list.Decls) != 1 {
		t.Fatalf("decl 0: %T", f.Decls[0])
	}
	if list.Decls[0].(*ast.SingleVarDecl).Name.Name != "x" {
		t.Fatal("declarator lost")
	}
	all := errs.All()
	if len(all) != 1 || all[0].Kind != diag.SemicolonExpected {
		t.Fatalf("diagnostics: %v", all)
	}
}

func TestBadOperandProducesBadExpr(t *testing.T) {
	f, errs := parseSrc(t, mainWrap("x = ;"))
	asg := mainBody(t, f)[0].(*ast.AssignStmt)
	if _, ok := asg.Rhs.(*ast.BadExpr); !ok {
		t.Fatalf("rhs: %T", asg.Rhs)
	}
	if !errs.HasErrors() {
		t.Fatal("expected a diagnostic")
	}
}

func TestParseNeverReturnsNilChildren(t *testing.T) {
	// Deliberately broken inputs; parsing must terminate with a full tree.
	srcs := []string{
		"int",
		"int a[;",
		"void main() { if (x }",
		"void main() { switch (x) { foo } }",
		"int a[2] = {1, {2};",
		"} } }",
	}
	for _, src := range srcs {
		t.Run(src, func(t *testing.T) {
			f, errs := parseSrc(t, src)
			if !errs.HasErrors() {
				t.Fatal("expected diagnostics")
			}
			for _, d := range f.Decls {
				if d == nil {
					t.Fatal("nil decl in file")
				}
			}
		})
	}
}
