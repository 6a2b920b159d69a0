package tipo

import "fmt"

type ErrorKind int

const (
	ErrUnexpectedEOF ErrorKind = iota
	ErrFailedToFindToken
	ErrExpectedTypeToken
	ErrExpectedIdentifier
	ErrUnexpectedToken
	ErrExpectedFloatLit
	ErrExpectedIntLit
	ErrExpectedStringLit
	ErrExpectedBoolLit
	ErrExpectedExpr
)

var errorKindNames = map[ErrorKind]string{
	ErrUnexpectedEOF:      "UnexpectedEOF",
	ErrFailedToFindToken:  "FailedToFindToken",
	ErrExpectedTypeToken:  "ExpectedTypeToken",
	ErrExpectedIdentifier: "ExpectedIdentifier",
	ErrUnexpectedToken:    "UnexpectedToken",
	ErrExpectedFloatLit:   "ExpectedFloatLit",
	ErrExpectedIntLit:     "ExpectedIntLit",
	ErrExpectedStringLit:  "ExpectedStringLit",
	ErrExpectedBoolLit:    "ExpectedBoolLit",
	ErrExpectedExpr:       "ExpectedExpr",
}

func (k ErrorKind) String() string {
	if name, ok := errorKindNames[k]; ok {
		return name
	}

	return "UnknownError"
}

// ParseError is the single error a parse call surfaces: the violation
// kind, the offending token, and a human-readable message.
type ParseError struct {
	Kind    ErrorKind
	Token   Token
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s at line %d, column %d: %s (near %s)",
		e.Kind, e.Token.Line, e.Token.Column, e.Message, e.Token)
}

// literalTable maps a declared type to the literal token it accepts and
// the error raised when another literal kind shows up instead.
var literalTable = map[string]struct {
	typ  TokenType
	kind ErrorKind
	msg  string
}{
	"int":    {TokenIntLit, ErrExpectedIntLit, "expected integer literal"},
	"float":  {TokenFloatLit, ErrExpectedFloatLit, "expected float literal"},
	"string": {TokenStringLit, ErrExpectedStringLit, "expected string literal"},
	"bool":   {TokenBoolLit, ErrExpectedBoolLit, "expected boolean literal"},
}

var eofToken = Token{Typ: TokenEOF}

type Parser struct {
	tokens []Token
	index  int
}

func NewParser(tokens []Token) *Parser {
	return &Parser{
		tokens: tokens,
	}
}

// Parse runs the grammar over tokens and returns the program's statements
// in source order, or the first violation as a *ParseError. No statements
// are returned on failure.
func Parse(tokens []Token) ([]Stmt, error) {
	return NewParser(tokens).Run()
}

func (p *Parser) Run() ([]Stmt, error) {
	var stmts []Stmt
	for !p.isAtEnd() {
		stmt, err := p.statement()
		if err != nil {
			return nil, err
		}

		stmts = append(stmts, stmt)
	}

	return stmts, nil
}

func (p *Parser) statement() (Stmt, error) {
	switch tok := p.current(); tok.Typ {
	case TokenInt, TokenFloat, TokenString, TokenBool:
		return p.varDecl()
	default:
		return nil, p.errorf(ErrExpectedTypeToken, tok, "expected a type at start of statement")
	}
}

func (p *Parser) varDecl() (Stmt, error) {
	typ := p.next() // Type keyword

	if !p.check(TokenIdentifier) {
		return nil, p.errorf(ErrExpectedIdentifier, p.current(), "expected variable name after type")
	}
	name := p.next().Value

	var init Expr
	if p.match(TokenAssign) {
		var err error
		init, err = p.expression(typ.Value)
		if err != nil {
			return nil, err
		}
	}

	if err := p.expect(TokenSemicolon, ErrFailedToFindToken, "expected ';' after variable declaration"); err != nil {
		return nil, err
	}

	return &VarDecl{
		Type: typ.Value,
		Name: name,
		Init: init,
	}, nil
}

func (p *Parser) expression(declType string) (Expr, error) {
	want := literalTable[declType]

	switch tok := p.current(); tok.Typ {
	case TokenIntLit, TokenFloatLit, TokenStringLit, TokenBoolLit:
		if tok.Typ != want.typ {
			return nil, p.errorf(want.kind, tok, want.msg)
		}
		p.next()

		return &LiteralExpr{
			Value: tok.Value,
			Type:  declType,
		}, nil
	case TokenIdentifier:
		// Identifiers pass for any declared type; nothing resolves them
		p.next()

		return &Identifier{
			Name: tok.Value,
		}, nil
	default:
		return nil, p.errorf(ErrExpectedExpr, tok, "expected an expression after '='")
	}
}

func (p *Parser) current() Token {
	if p.index >= len(p.tokens) {
		// Aborted scans ship no EOF token; stand one in
		return eofToken
	}

	return p.tokens[p.index]
}

func (p *Parser) next() Token {
	tok := p.current()
	if !p.isAtEnd() {
		p.index++
	}

	return tok
}

func (p *Parser) isAtEnd() bool {
	return p.current().Typ == TokenEOF
}

func (p *Parser) check(typ TokenType) bool {
	return p.current().Typ == typ
}

func (p *Parser) match(typ TokenType) bool {
	if p.check(typ) {
		p.next()
		return true
	}

	return false
}

func (p *Parser) expect(typ TokenType, kind ErrorKind, msg string) error {
	if !p.check(typ) {
		return p.errorf(kind, p.current(), msg)
	}
	p.next()

	return nil
}

func (p *Parser) errorf(kind ErrorKind, tok Token, format string, args ...interface{}) error {
	return &ParseError{
		Kind:    kind,
		Token:   tok,
		Message: fmt.Sprintf(format, args...),
	}
}
