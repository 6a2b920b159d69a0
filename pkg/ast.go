package tipo

import "fmt"

// Expr is an initializer expression: a literal or a bare identifier.
type Expr interface {
	String() string
	exprNode()
}

// Stmt is a top-level statement. Variable declarations are the only kind.
type Stmt interface {
	String() string
	stmtNode()
}

type LiteralExpr struct {
	Value string
	Type  string
}

func (e *LiteralExpr) String() string {
	return fmt.Sprintf("Literal(%s: %s)", e.Type, e.Value)
}

func (e *LiteralExpr) exprNode() {}

type Identifier struct {
	Name string
}

func (e *Identifier) String() string {
	return fmt.Sprintf("Identifier(%s)", e.Name)
}

func (e *Identifier) exprNode() {}

type VarDecl struct {
	Type string
	Name string
	Init Expr
}

func (s *VarDecl) String() string {
	if s.Init == nil {
		return fmt.Sprintf("VarDecl(%s %s)", s.Type, s.Name)
	}

	return fmt.Sprintf("VarDecl(%s %s = %s)", s.Type, s.Name, s.Init)
}

func (s *VarDecl) stmtNode() {}
