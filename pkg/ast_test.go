package tipo

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestNodeString(t *testing.T) {
	cases := []struct {
		node   interface{ String() string }
		expect string
	}{
		{&LiteralExpr{"42", "int"}, "Literal(int: 42)"},
		{&LiteralExpr{"hello", "string"}, "Literal(string: hello)"},
		{&Identifier{"x"}, "Identifier(x)"},
		{&VarDecl{"int", "x", nil}, "VarDecl(int x)"},
		{&VarDecl{"int", "x", &LiteralExpr{"42", "int"}}, "VarDecl(int x = Literal(int: 42))"},
		{&VarDecl{"bool", "b", &Identifier{"other"}}, "VarDecl(bool b = Identifier(other))"},
	}

	for _, c := range cases {
		assert.Equal(t, c.expect, c.node.String())
	}
}
