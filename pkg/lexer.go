package tipo

import (
	"fmt"
	"io"
	"strings"
)

type TokenType uint64
type stateFunc func(l *Lexer) stateFunc

const (
	EOF byte = 0

	TokenEOF TokenType = iota
	TokenUnknown

	TokenFn
	TokenInt
	TokenFloat
	TokenString
	TokenBool
	TokenReturn
	TokenIf
	TokenElse
	TokenFor
	TokenWhile
	TokenBreak
	TokenContinue

	TokenIntLit
	TokenFloatLit
	TokenStringLit
	TokenBoolLit

	TokenIdentifier
	TokenInvalidIdentifier

	TokenAssign
	TokenEquals
	TokenIncrement
	TokenPlusAssign
	TokenPlus
	TokenMinus
	TokenMulti
	TokenDiv
	TokenMod
	TokenLess
	TokenGreater
	TokenLessEq
	TokenGreaterEq
	TokenNotEq
	TokenAnd
	TokenOr
	TokenNot
	TokenBitAnd
	TokenBitOr
	TokenBitXor
	TokenBitNot
	TokenShiftLeft
	TokenShiftRight

	TokenOpenParentheses
	TokenCloseParentheses
	TokenOpenCurly
	TokenCloseCurly
	TokenOpenBracket
	TokenCloseBracket
	TokenComma
	TokenSemicolon
	TokenColon
	TokenQuestion
	TokenDot

	TokenComment
)

var keywordTable = map[string]TokenType{
	"fn":       TokenFn,
	"int":      TokenInt,
	"float":    TokenFloat,
	"string":   TokenString,
	"bool":     TokenBool,
	"return":   TokenReturn,
	"if":       TokenIf,
	"else":     TokenElse,
	"for":      TokenFor,
	"while":    TokenWhile,
	"break":    TokenBreak,
	"continue": TokenContinue,
	"true":     TokenBoolLit,
	"false":    TokenBoolLit,
}

var operatorTable = map[string]TokenType{
	"=":  TokenAssign,
	"==": TokenEquals,
	"++": TokenIncrement,
	"+=": TokenPlusAssign,
	"+":  TokenPlus,
	"-":  TokenMinus,
	"*":  TokenMulti,
	"/":  TokenDiv,
	"%":  TokenMod,
	"<":  TokenLess,
	">":  TokenGreater,
	"!":  TokenNot,
	"&":  TokenBitAnd,
	"|":  TokenBitOr,
	"^":  TokenBitXor,
	"~":  TokenBitNot,
	"(":  TokenOpenParentheses,
	")":  TokenCloseParentheses,
	"{":  TokenOpenCurly,
	"}":  TokenCloseCurly,
	"[":  TokenOpenBracket,
	"]":  TokenCloseBracket,
	",":  TokenComma,
	";":  TokenSemicolon,
	":":  TokenColon,
	"?":  TokenQuestion,
	".":  TokenDot,
}

var tokenNames = map[TokenType]string{
	TokenEOF:               "EOF",
	TokenUnknown:           "UNKNOWN",
	TokenFn:                "FN",
	TokenInt:               "INT",
	TokenFloat:             "FLOAT",
	TokenString:            "STRING",
	TokenBool:              "BOOL",
	TokenReturn:            "RETURN",
	TokenIf:                "IF",
	TokenElse:              "ELSE",
	TokenFor:               "FOR",
	TokenWhile:             "WHILE",
	TokenBreak:             "BREAK",
	TokenContinue:          "CONTINUE",
	TokenIntLit:            "INTLIT",
	TokenFloatLit:          "FLOATLIT",
	TokenStringLit:         "STRINGLIT",
	TokenBoolLit:           "BOOLLIT",
	TokenIdentifier:        "IDENTIFIER",
	TokenInvalidIdentifier: "INVALID_IDENTIFIER",
	TokenAssign:            "ASSIGN",
	TokenEquals:            "EQUALS",
	TokenIncrement:         "INCREMENT",
	TokenPlusAssign:        "PLUS_ASSIGN",
	TokenPlus:              "PLUS",
	TokenMinus:             "MINUS",
	TokenMulti:             "MULT",
	TokenDiv:               "DIV",
	TokenMod:               "MOD",
	TokenLess:              "LT",
	TokenGreater:           "GT",
	TokenLessEq:            "LTE",
	TokenGreaterEq:         "GTE",
	TokenNotEq:             "NEQ",
	TokenAnd:               "AND",
	TokenOr:                "OR",
	TokenNot:               "NOT",
	TokenBitAnd:            "BITAND",
	TokenBitOr:             "BITOR",
	TokenBitXor:            "BITXOR",
	TokenBitNot:            "BITNOT",
	TokenShiftLeft:         "LSHIFT",
	TokenShiftRight:        "RSHIFT",
	TokenOpenParentheses:   "PARENL",
	TokenCloseParentheses:  "PARENR",
	TokenOpenCurly:         "BRACEL",
	TokenCloseCurly:        "BRACER",
	TokenOpenBracket:       "BRACKL",
	TokenCloseBracket:      "BRACKR",
	TokenComma:             "COMMA",
	TokenSemicolon:         "SEMICOLON",
	TokenColon:             "COLON",
	TokenQuestion:          "QUESTION",
	TokenDot:               "DOT",
	TokenComment:           "COMMENT",
}

func (t TokenType) String() string {
	if name, ok := tokenNames[t]; ok {
		return name
	}

	return "UNKNOWN"
}

type Token struct {
	Typ    TokenType
	Value  string
	Line   int
	Column int
}

func (t Token) String() string {
	if t.Typ == TokenEOF {
		return "EOF"
	}

	return fmt.Sprintf("%s(%q)", t.Typ, t.Value)
}

type Lexer struct {
	src       string
	pos       int
	line      int
	col       int
	startLine int
	startCol  int
	tokens    []Token
}

func NewLexer(source string) *Lexer {
	return &Lexer{
		src:  source,
		line: 1,
		col:  1,
	}
}

func NewLexerFromReader(r io.Reader) (*Lexer, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read source: %w", err)
	}

	return NewLexer(string(src)), nil
}

// Tokenize scans source in a single pass and returns its tokens. The
// sequence ends with exactly one EOF token unless scanning aborted on a
// malformed number, in which case the EOF token is missing.
func Tokenize(source string) []Token {
	return NewLexer(source).Run()
}

func (l *Lexer) Run() []Token {
	for state := defaultState; state != nil; {
		state = state(l)
	}

	return l.tokens
}

func defaultState(l *Lexer) stateFunc {
	for {
		l.mark()

		switch c := l.peek(); {
		case c == EOF:
			l.emmitValue(TokenEOF, "")
			return nil
		case isSpace(c):
			if l.next() == '\n' {
				l.line++
				l.col = 1
			}
			continue
		case isDigit(c):
			return numberState
		case c == '"':
			return stringState
		case isLetter(c):
			return identifierState
		default:
			return symbolState
		}
	}
}

func numberState(l *Lexer) stateFunc {
	var num strings.Builder
	dotSeen := false

	for {
		if c := l.peek(); isDigit(c) {
			num.WriteByte(l.next())
		} else if c == '.' {
			if dotSeen {
				// Second decimal point: take the rest of the run and
				// stop scanning entirely. No EOF token follows.
				for c := l.peek(); isDigit(c) || c == '.'; c = l.peek() {
					num.WriteByte(l.next())
				}
				l.emmitValue(TokenInvalidIdentifier, num.String())
				return nil
			}
			dotSeen = true
			num.WriteByte(l.next())
		} else {
			break
		}
	}

	// A run like 123abc is one malformed token, not a number and an
	// identifier. Bytes above 127 start a fresh identifier instead.
	if c := l.peek(); isAlpha(c) || c == '_' {
		for c := l.peek(); isAlpha(c) || isDigit(c) || c == '_'; c = l.peek() {
			num.WriteByte(l.next())
		}

		return l.emmitValue(TokenInvalidIdentifier, num.String())
	}

	if dotSeen {
		return l.emmitValue(TokenFloatLit, num.String())
	}

	return l.emmitValue(TokenIntLit, num.String())
}

func stringState(l *Lexer) stateFunc {
	l.next() // Skip the leading double-quote

	var str strings.Builder
	for c := l.peek(); c != '"' && c != EOF; c = l.peek() {
		c = l.next()
		if c == '\\' && l.peek() != EOF {
			switch esc := l.next(); esc {
			case 'n':
				str.WriteByte('\n')
			case 't':
				str.WriteByte('\t')
			case 'r':
				str.WriteByte('\r')
			default:
				str.WriteByte(esc)
			}
		} else {
			str.WriteByte(c)
		}
	}

	l.next() // Closing quote, if the string was terminated

	return l.emmitValue(TokenStringLit, str.String())
}

func identifierState(l *Lexer) stateFunc {
	var id strings.Builder
	for c := l.peek(); isLetter(c) || isDigit(c); c = l.peek() {
		id.WriteByte(l.next())
	}

	if t, ok := keywordTable[id.String()]; ok {
		return l.emmitValue(t, id.String())
	}

	return l.emmitValue(TokenIdentifier, id.String())
}

func symbolState(l *Lexer) stateFunc {
	c := l.next()

	if c == '/' && l.peek() == '/' {
		l.next() // Skip
		return lineCommentState
	}

	if c == '/' && l.peek() == '*' {
		l.next() // Skip
		return blockCommentState
	}

	if c == '=' || c == '+' { // Some operators can be two characters
		if t, ok := operatorTable[string(c)+string(l.peek())]; ok {
			val := string(c) + string(l.next())
			return l.emmitValue(t, val)
		}
	}

	if t, ok := operatorTable[string(c)]; ok {
		return l.emmitValue(t, string(c))
	}

	return l.emmitValue(TokenUnknown, string(c))
}

func lineCommentState(l *Lexer) stateFunc {
	var text strings.Builder
	for c := l.peek(); c != '\n' && c != EOF; c = l.peek() {
		text.WriteByte(l.next())
	}

	return l.emmitValue(TokenComment, text.String())
}

func blockCommentState(l *Lexer) stateFunc {
	var text strings.Builder
	for {
		switch c := l.peek(); {
		case c == EOF:
			// Unterminated: keep whatever accumulated
			return l.emmitValue(TokenComment, text.String())
		case c == '*' && l.peekNext() == '/':
			l.next()
			l.next() // Skip the closing */
			return l.emmitValue(TokenComment, text.String())
		case c == '\n':
			l.next()
			l.line++
			l.col = 1
			text.WriteByte('\n')
		default:
			text.WriteByte(l.next())
		}
	}
}

func (l *Lexer) mark() {
	l.startLine = l.line
	l.startCol = l.col
}

func (l *Lexer) emmitValue(t TokenType, val string) stateFunc {
	l.tokens = append(l.tokens, Token{
		Typ:    t,
		Value:  val,
		Line:   l.startLine,
		Column: l.startCol,
	})

	return defaultState
}

func (l *Lexer) peek() byte {
	if l.pos >= len(l.src) {
		return EOF
	}

	return l.src[l.pos]
}

func (l *Lexer) peekNext() byte {
	if l.pos+1 >= len(l.src) {
		return EOF
	}

	return l.src[l.pos+1]
}

func (l *Lexer) next() byte {
	c := l.peek()
	if c == EOF {
		return EOF
	}

	l.pos++
	l.col++

	return c
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\v' || c == '\f'
}

func isAlpha(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
}

func isLetter(c byte) bool {
	return isAlpha(c) || c == '_' || c > 127
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}
