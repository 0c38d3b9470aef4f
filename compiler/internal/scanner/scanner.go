// Package scanner turns cmm source text into a token stream.
//
// The scanner is byte driven: cmm source is ASCII and every token starts
// with an unambiguous byte. Char and string literals keep their quotes in
// the literal text. Lexical errors go to the shared diagnostic sink and
// the scanner always makes progress, so the parser never sees the same
// byte twice.
package scanner

import (
	"github.com/cmm-lang/cmm/compiler/internal/diag"
	"github.com/cmm-lang/cmm/compiler/internal/token"
)

// Scanner holds the scanning state for one source file.
type Scanner struct {
	file *token.File
	src  string
	errs *diag.Reminder

	offset int
}

// New returns a Scanner over src. Line starts are registered on file as
// the scanner crosses newlines, so positions for already-scanned offsets
// are always resolvable.
func New(file *token.File, src string, errs *diag.Reminder) *Scanner {
	return &Scanner{file: file, src: src, errs: errs}
}

func (s *Scanner) emit(offset int, kind diag.Kind, msg string) {
	s.errs.Emit(s.file.PositionFor(offset), kind, msg)
}

func (s *Scanner) peek() byte {
	if s.offset >= len(s.src) {
		return 0
	}
	return s.src[s.offset]
}

func (s *Scanner) skipSpace() {
	for s.offset < len(s.src) {
		switch s.src[s.offset] {
		case ' ', '\t', '\r':
			s.offset++
		case '\n':
			s.offset++
			s.file.AddLine(s.offset)
		default:
			return
		}
	}
}

// Scan returns the next token together with the byte offset of its first
// character and its literal text. At end of input it returns EOF; callers
// may keep calling Scan and will keep getting EOF.
func (s *Scanner) Scan() (pos int, tok token.Token, lit string) {
	s.skipSpace()

	pos = s.offset
	if s.offset >= len(s.src) {
		return pos, token.EOF, ""
	}

	ch := s.src[s.offset]
	switch {
	case isLetter(ch):
		lit = s.scanIdent()
		return pos, token.Lookup(lit), lit
	case isDigit(ch):
		return pos, token.INTLIT, s.scanNumber()
	case ch == '\'':
		return pos, token.CHARLIT, s.scanQuoted('\'')
	case ch == '"':
		return pos, token.STRLIT, s.scanQuoted('"')
	}

	s.offset++
	switch ch {
	case '+':
		return pos, token.ADD, "+"
	case '-':
		return pos, token.SUB, "-"
	case '*':
		return pos, token.MUL, "*"
	case '/':
		return pos, token.QUO, "/"
	case '<':
		if s.peek() == '=' {
			s.offset++
			return pos, token.LEQ, "<="
		}
		return pos, token.LSS, "<"
	case '>':
		if s.peek() == '=' {
			s.offset++
			return pos, token.GEQ, ">="
		}
		return pos, token.GTR, ">"
	case '=':
		if s.peek() == '=' {
			s.offset++
			return pos, token.EQL, "=="
		}
		return pos, token.ASSIGN, "="
	case '!':
		if s.peek() == '=' {
			s.offset++
			return pos, token.NEQ, "!="
		}
		// '!' is only legal as the first half of '!='.
		s.emit(pos, diag.UnsupportedConstruct, "unexpected character '!'")
		return pos, token.ILLEGAL, "!"
	case ':':
		return pos, token.COLON, ":"
	case ';':
		return pos, token.SEMICOLON, ";"
	case ',':
		return pos, token.COMMA, ","
	case '(':
		return pos, token.LPAREN, "("
	case ')':
		return pos, token.RPAREN, ")"
	case '[':
		return pos, token.LBRACK, "["
	case ']':
		return pos, token.RBRACK, "]"
	case '{':
		return pos, token.LBRACE, "{"
	case '}':
		return pos, token.RBRACE, "}"
	}

	s.emit(pos, diag.UnsupportedConstruct, "unexpected character "+quoteByte(ch))
	return pos, token.ILLEGAL, string(ch)
}

func (s *Scanner) scanIdent() string {
	start := s.offset
	for s.offset < len(s.src) && isIdentPart(s.src[s.offset]) {
		s.offset++
	}
	return s.src[start:s.offset]
}

func (s *Scanner) scanNumber() string {
	start := s.offset
	for s.offset < len(s.src) && isDigit(s.src[s.offset]) {
		s.offset++
	}
	return s.src[start:s.offset]
}

// scanQuoted scans a char or string literal delimited by quote. The
// literal text keeps both quotes, a backslash escapes the following
// character, and an escape pair counts as one body character. The body
// may not be empty, a char body must be exactly one character, and a
// literal left open at a newline or at end of input stops there.
func (s *Scanner) scanQuoted(quote byte) string {
	start := s.offset
	s.offset++ // opening quote
	body := 0
	closed := false
	for s.offset < len(s.src) {
		ch := s.src[s.offset]
		if ch == '\n' {
			break
		}
		s.offset++
		if ch == quote {
			closed = true
			break
		}
		if ch == '\\' && s.offset < len(s.src) && s.src[s.offset] != '\n' {
			s.offset++
		}
		body++
	}
	if body == 0 {
		s.emit(start, diag.EmptyCharOrStringLit, "empty literal")
	} else if quote == '\'' && body > 1 {
		s.emit(start, diag.UnsupportedConstruct, "char literal holds more than one character")
	}
	if !closed {
		s.emit(start, diag.UnsupportedConstruct, "literal not terminated")
	}
	return s.src[start:s.offset]
}

func isLetter(ch byte) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z' || ch == '_'
}

func isDigit(ch byte) bool { return '0' <= ch && ch <= '9' }

func isIdentPart(ch byte) bool { return isLetter(ch) || isDigit(ch) }

func quoteByte(ch byte) string { return "'" + string(ch) + "'" }
