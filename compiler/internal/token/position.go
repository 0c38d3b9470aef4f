package token

import (
	"fmt"
	"sort"
)

// NoOffset marks a byte offset that does not exist.
const NoOffset = -1

// Position describes a location in a source file. Line and Column are
// 1-based; Offset is the 0-based byte offset.
type Position struct {
	Filename string
	Offset   int
	Line     int
	Column   int
}

// NoPos is the zero position, used for diagnostics that have no meaningful
// location.
var NoPos = Position{Filename: "", Offset: NoOffset, Line: -1, Column: -1}

// IsValid reports whether the position points into a file.
func (p Position) IsValid() bool { return p.Line > 0 }

func (p Position) String() string {
	return fmt.Sprintf("(%d, %d)", p.Line, p.Column)
}

// Before reports whether p is strictly before q in source order,
// comparing by line then column.
func (p Position) Before(q Position) bool {
	if p.Line == q.Line {
		return p.Column < q.Column
	}
	return p.Line < q.Line
}

// File maps byte offsets to line/column positions via a monotonically
// growing line-offset table. The scanner registers each line start as it
// crosses a newline; PositionFor is a pure function of the table.
type File struct {
	Name string
	Size int

	lines []int // offset of the first byte of each line
}

// NewFile returns a File ready to accumulate line offsets.
func NewFile(name string, size int) *File {
	return &File{Name: name, Size: size, lines: []int{0}}
}

// AddLine records offset as the start of a new line. The offset must be
// larger than the previous line start and no larger than the file size;
// anything else is ignored.
func (f *File) AddLine(offset int) {
	if offset <= f.lines[len(f.lines)-1] || offset > f.Size {
		return
	}
	f.lines = append(f.lines, offset)
}

// PositionFor resolves a byte offset to a Position. Offsets outside the
// file yield NoPos.
func (f *File) PositionFor(offset int) Position {
	if offset < 0 || offset > f.Size {
		return NoPos
	}
	i := sort.SearchInts(f.lines, offset+1) - 1
	return Position{
		Filename: f.Name,
		Offset:   offset,
		Line:     i + 1,
		Column:   offset - f.lines[i] + 1,
	}
}

// LineCount returns the number of lines registered so far.
func (f *File) LineCount() int { return len(f.lines) }
