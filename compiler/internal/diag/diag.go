package diag

import (
	"fmt"
	"sort"

	"github.com/cmm-lang/cmm/compiler/internal/token"
)

// Kind tags a diagnostic with the language rule it violates.
type Kind int

const (
	// EmptyCharOrStringLit: a char or string literal has no body.
	EmptyCharOrStringLit Kind = iota + 1
	// Redefine: the same identifier is declared twice in one code block.
	Redefine
	// Undefine: an identifier is used without a visible declaration.
	Undefine
	// ArgNumberNotMatched: call argument count differs from the signature.
	ArgNumberNotMatched
	// ArgTypeNotMatched: a call argument type differs from its parameter.
	ArgTypeNotMatched
	// CondValueNotMatched: a condition is not a well-typed relational test.
	CondValueNotMatched
	// ReturnValueNotAllowed: a void function returns a value.
	ReturnValueNotAllowed
	// ReturnValueRequired: a non-void function lacks a matching return.
	ReturnValueRequired
	// IndexTypeNotAllowed: indexing a non-array, too deep, or with a non-int.
	IndexTypeNotAllowed
	// UpdateConstValue: a const identifier is written.
	UpdateConstValue
	// SemicolonExpected: ';' is missing.
	SemicolonExpected
	// RParenExpected: ')' is missing.
	RParenExpected
	// RBracketExpected: ']' is missing.
	RBracketExpected
	// CompositeLitSizeError: array initializer shape or element kind does
	// not match the declared type, e.g. int a[2][3] = {{1,2,3},{1,2}}.
	CompositeLitSizeError
	// SwitchTypeError: switch/case expression types are invalid or unequal.
	SwitchTypeError
	// DefaultExpected: a switch has zero or more than one default case.
	DefaultExpected
	// UnsupportedConstruct: anything the grammar or type rules have no
	// dedicated kind for.
	UnsupportedConstruct
)

var kindNames = map[Kind]string{
	EmptyCharOrStringLit:  "EmptyCharOrStringLit",
	Redefine:              "Redefine",
	Undefine:              "Undefine",
	ArgNumberNotMatched:   "ArgNumberNotMatched",
	ArgTypeNotMatched:     "ArgTypeNotMatched",
	CondValueNotMatched:   "CondValueNotMatched",
	ReturnValueNotAllowed: "ReturnValueNotAllowed",
	ReturnValueRequired:   "ReturnValueRequired",
	IndexTypeNotAllowed:   "IndexTypeNotAllowed",
	UpdateConstValue:      "UpdateConstValue",
	SemicolonExpected:     "SemicolonExpected",
	RParenExpected:        "RParenExpected",
	RBracketExpected:      "RBracketExpected",
	CompositeLitSizeError: "CompositeLitSizeError",
	SwitchTypeError:       "SwitchTypeError",
	DefaultExpected:       "DefaultExpected",
	UnsupportedConstruct:  "UnsupportedConstruct",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "Unknown"
}

// Diagnostic is a compiler message with a kind tag and a source position.
type Diagnostic struct {
	Pos  token.Position
	Kind Kind
	Msg  string
}

func (d Diagnostic) Error() string {
	if !d.Pos.IsValid() {
		return d.Msg
	}
	return fmt.Sprintf("%s: %s", d.Pos, d.Msg)
}

type posKey struct{ line, col int }

// Reminder is the shared diagnostic sink for the parser and the checker.
// It is append-only with one writer at a time. Diagnostics are keyed by
// exact source position: a second diagnostic at the same position replaces
// the first. Diagnostics without a valid position accumulate separately
// and are never deduplicated.
type Reminder struct {
	byPos map[posKey]Diagnostic
	loose []Diagnostic
}

// NewReminder returns an empty sink.
func NewReminder() *Reminder {
	return &Reminder{byPos: map[posKey]Diagnostic{}}
}

// Emit records one diagnostic. Last write wins per position.
func (r *Reminder) Emit(pos token.Position, kind Kind, msg string) {
	d := Diagnostic{Pos: pos, Kind: kind, Msg: msg}
	if !pos.IsValid() {
		r.loose = append(r.loose, d)
		return
	}
	r.byPos[posKey{pos.Line, pos.Column}] = d
}

// Len returns the number of recorded diagnostics after deduplication.
func (r *Reminder) Len() int { return len(r.byPos) + len(r.loose) }

// HasErrors reports whether anything was recorded.
func (r *Reminder) HasErrors() bool { return r.Len() > 0 }

// All returns positioned diagnostics in source order, followed by the
// unpositioned ones in emission order.
func (r *Reminder) All() []Diagnostic {
	out := make([]Diagnostic, 0, r.Len())
	for _, d := range r.byPos {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Pos.Before(out[j].Pos) })
	return append(out, r.loose...)
}
