// Package symtab implements the scope-aware symbol table the checker
// drives. Two structures cover the two lookups the checker needs: a stack
// of per-block membership maps answers "is this name declared in the
// current block", and a per-name stack of bindings answers "which
// declaration does this name resolve to here". Opening and closing code
// blocks keeps the two in sync.
package symtab

import (
	"github.com/cmm-lang/cmm/compiler/internal/ast"
)

// Identifier is one variable or constant binding. ID is unique across the
// whole table and never reused, so later stages can tell apart bindings
// that shadow each other under one name.
type Identifier struct {
	ID      int
	Name    string
	Type    ast.Type
	IsConst bool
}

// Table is the symbol table. Functions live in a single flat namespace
// beside the block-scoped variables; the two namespaces collide only at
// the global block.
type Table struct {
	nextID int

	blocks []map[string]*Identifier // membership per open block, innermost last
	byName map[string][]*Identifier // visible bindings per name, innermost last

	funcs map[string]*ast.FuncDecl
}

// New returns a table with the global code block already open.
func New() *Table {
	t := &Table{
		byName: map[string][]*Identifier{},
		funcs:  map[string]*ast.FuncDecl{},
	}
	t.CreateCodeBlock()
	return t
}

// CreateCodeBlock opens a nested code block. Bindings added from now on
// belong to it.
func (t *Table) CreateCodeBlock() {
	t.blocks = append(t.blocks, map[string]*Identifier{})
}

// DestroyCodeBlock closes the innermost code block, removing exactly the
// bindings declared in it. Bindings those shadowed become visible again.
// Closing with no block open is a checker bug and panics.
func (t *Table) DestroyCodeBlock() {
	if len(t.blocks) == 0 {
		panic("symtab: DestroyCodeBlock without open block")
	}
	top := t.blocks[len(t.blocks)-1]
	t.blocks = t.blocks[:len(t.blocks)-1]
	for name := range top {
		stack := t.byName[name]
		stack = stack[:len(stack)-1]
		if len(stack) == 0 {
			delete(t.byName, name)
		} else {
			t.byName[name] = stack
		}
	}
}

// AddVar binds name in the current code block and returns the new
// binding. It does not check for collisions; callers decide whether a
// prior binding is a redefinition or a legal shadow.
func (t *Table) AddVar(name string, typ ast.Type, isConst bool) *Identifier {
	id := &Identifier{ID: t.nextID, Name: name, Type: typ, IsConst: isConst}
	t.nextID++
	t.blocks[len(t.blocks)-1][name] = id
	t.byName[name] = append(t.byName[name], id)
	return id
}

// IsVarExistedInCurrentCodeBlock reports whether name is already taken in
// the innermost block. Function names count: they share the global block
// with global variables.
func (t *Table) IsVarExistedInCurrentCodeBlock(name string) bool {
	if _, ok := t.blocks[len(t.blocks)-1][name]; ok {
		return true
	}
	if len(t.blocks) == 1 {
		_, ok := t.funcs[name]
		return ok
	}
	return false
}

// GetVar resolves name to its innermost visible binding.
func (t *Table) GetVar(name string) (*Identifier, bool) {
	stack := t.byName[name]
	if len(stack) == 0 {
		return nil, false
	}
	return stack[len(stack)-1], true
}

// AddFunc registers a function declaration. Functions become visible the
// moment they are added, before their body is checked, so a function may
// call itself but not one declared later.
func (t *Table) AddFunc(decl *ast.FuncDecl) {
	t.funcs[decl.Name.Name] = decl
}

// GetFunc resolves a function name.
func (t *Table) GetFunc(name string) (*ast.FuncDecl, bool) {
	f, ok := t.funcs[name]
	return f, ok
}

// IsFuncExisted reports whether name is a registered function.
func (t *Table) IsFuncExisted(name string) bool {
	_, ok := t.funcs[name]
	return ok
}

// Depth returns the number of open code blocks. The global block counts,
// so a freshly created table has depth 1.
func (t *Table) Depth() int { return len(t.blocks) }
