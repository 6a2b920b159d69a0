package tipo

import (
	"fmt"
	"io"
	"os"
)

type Compiler struct{}

func NewCompiler() *Compiler {
	return &Compiler{}
}

// Compile tokenizes and parses source, returning the program's statements.
func (c *Compiler) Compile(source string) ([]Stmt, error) {
	return Parse(Tokenize(source))
}

func (c *Compiler) CompileFile(path string) ([]Stmt, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	return c.Compile(string(src))
}

func (c *Compiler) CompileFromReader(reader io.Reader) ([]Stmt, error) {
	lexer, err := NewLexerFromReader(reader)
	if err != nil {
		return nil, err
	}

	return Parse(lexer.Run())
}

// EmitIR compiles source and lowers it to LLVM IR text.
func (c *Compiler) EmitIR(source string) (string, error) {
	stmts, err := c.Compile(source)
	if err != nil {
		return "", err
	}

	mod, err := NewLLVMIRBuilder().Build(stmts)
	if err != nil {
		return "", err
	}

	return mod.String(), nil
}
