// Package build ties the front-end phases together: it loads a source
// file and runs it through the scanner, parser, and checker, handing the
// caller the finished tree and the diagnostic sink the phases shared.
package build

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cmm-lang/cmm/compiler/internal/ast"
	"github.com/cmm-lang/cmm/compiler/internal/check"
	"github.com/cmm-lang/cmm/compiler/internal/diag"
	"github.com/cmm-lang/cmm/compiler/internal/parser"
	"github.com/cmm-lang/cmm/compiler/internal/token"
)

// Ext is the source file extension.
const Ext = ".cmm"

// ParseSource parses src without semantic checking.
func ParseSource(name, src string) (*ast.File, *diag.Reminder) {
	errs := diag.NewReminder()
	file := token.NewFile(name, len(src))
	f := parser.New(file, src, errs).Parse()
	return f, errs
}

// CheckSource parses and checks src. The returned Reminder holds the
// diagnostics of every phase.
func CheckSource(name, src string) (*ast.File, *diag.Reminder) {
	f, errs := ParseSource(name, src)
	check.Check(f, errs)
	return f, errs
}

// LoadFile reads path and runs the full front end over it. The error is
// non-nil only for I/O problems; language errors land in the Reminder.
func LoadFile(path string) (*ast.File, *diag.Reminder, error) {
	if !strings.HasSuffix(path, Ext) {
		return nil, nil, fmt.Errorf("%s: not a %s file", path, Ext)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}
	f, errs := CheckSource(filepath.Base(path), string(data))
	return f, errs, nil
}
