package token

// Token enumerates the lexical tokens of the cmm language.
type Token int

const (
	ILLEGAL Token = iota

	literalBeg
	IDENT   // foobar
	INTLIT  // 12345
	CHARLIT // 'a'
	STRLIT  // "abc"
	literalEnd

	keywordBeg
	CONST   // const
	INT     // int
	CHAR    // char
	VOID    // void
	MAIN    // main
	IF      // if
	ELSE    // else
	SWITCH  // switch
	CASE    // case
	DEFAULT // default
	WHILE   // while
	FOR     // for
	SCANF   // scanf
	PRINTF  // printf
	RETURN  // return
	keywordEnd

	operatorBeg
	ADD // +
	SUB // -
	MUL // *
	QUO // /

	LSS // <
	LEQ // <=
	GTR // >
	GEQ // >=
	EQL // ==
	NEQ // !=

	COLON     // :
	ASSIGN    // =
	SEMICOLON // ;
	COMMA     // ,
	LPAREN    // (
	RPAREN    // )
	LBRACK    // [
	RBRACK    // ]
	LBRACE    // {
	RBRACE    // }
	operatorEnd

	EOF
)

// LowestPrecedence is the precedence of non-operators.
const LowestPrecedence = 0

var names = map[Token]string{
	ILLEGAL: "ILLEGAL",

	IDENT:   "IDENT",
	INTLIT:  "INTLIT",
	CHARLIT: "CHARLIT",
	STRLIT:  "STRLIT",

	CONST:   "const",
	INT:     "int",
	CHAR:    "char",
	VOID:    "void",
	MAIN:    "main",
	IF:      "if",
	ELSE:    "else",
	SWITCH:  "switch",
	CASE:    "case",
	DEFAULT: "default",
	WHILE:   "while",
	FOR:     "for",
	SCANF:   "scanf",
	PRINTF:  "printf",
	RETURN:  "return",

	ADD: "+",
	SUB: "-",
	MUL: "*",
	QUO: "/",

	LSS: "<",
	LEQ: "<=",
	GTR: ">",
	GEQ: ">=",
	EQL: "==",
	NEQ: "!=",

	COLON:     ":",
	ASSIGN:    "=",
	SEMICOLON: ";",
	COMMA:     ",",
	LPAREN:    "(",
	RPAREN:    ")",
	LBRACK:    "[",
	RBRACK:    "]",
	LBRACE:    "{",
	RBRACE:    "}",

	EOF: "EOF",
}

func (t Token) String() string {
	if s, ok := names[t]; ok {
		return s
	}
	return "token(?)"
}

var keywords map[string]Token

func init() {
	keywords = make(map[string]Token, keywordEnd-keywordBeg)
	for t := keywordBeg + 1; t < keywordEnd; t++ {
		keywords[names[t]] = t
	}
}

// Lookup maps an identifier to its keyword token, or IDENT if it is not a
// keyword.
func Lookup(ident string) Token {
	if t, ok := keywords[ident]; ok {
		return t
	}
	return IDENT
}

// IsLiteral reports whether t is an identifier or a basic literal token.
func (t Token) IsLiteral() bool { return literalBeg < t && t < literalEnd }

// IsKeyword reports whether t is a keyword token.
func (t Token) IsKeyword() bool { return keywordBeg < t && t < keywordEnd }

// IsOperator reports whether t is an operator or delimiter token.
func (t Token) IsOperator() bool { return operatorBeg < t && t < operatorEnd }

// IsRelational reports whether t is one of < <= > >= == !=.
func (t Token) IsRelational() bool { return LSS <= t && t <= NEQ }

// Precedence returns the binding strength of a binary operator: relational
// operators bind weakest (1), then additive (2), then multiplicative (3).
// Every other token returns LowestPrecedence.
func (t Token) Precedence() int {
	switch t {
	case LSS, LEQ, GTR, GEQ, EQL, NEQ:
		return 1
	case ADD, SUB:
		return 2
	case MUL, QUO:
		return 3
	}
	return LowestPrecedence
}
