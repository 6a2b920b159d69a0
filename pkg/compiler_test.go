package tipo

import (
	"go.tipo.dev/internal/test"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompilerCompile(t *testing.T) {
	stmts, err := NewCompiler().Compile("int x = 42;")
	require.NoError(t, err)

	assert.Equal(t, []Stmt{
		&VarDecl{"int", "x", &LiteralExpr{"42", "int"}},
	}, stmts)
}

func TestCompilerCompileError(t *testing.T) {
	stmts, err := NewCompiler().Compile("bool flag = 123;")
	assert.Nil(t, stmts)

	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, ErrExpectedBoolLit, perr.Kind)
}

func TestCompilerCompileFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "main.tp")
	require.NoError(t, os.WriteFile(path, []byte("bool ok = true;"), 0644))

	stmts, err := NewCompiler().CompileFile(path)
	require.NoError(t, err)

	assert.Equal(t, []Stmt{
		&VarDecl{"bool", "ok", &LiteralExpr{"true", "bool"}},
	}, stmts)
}

func TestCompilerCompileFileMissing(t *testing.T) {
	_, err := NewCompiler().CompileFile(filepath.Join(t.TempDir(), "missing.tp"))
	assert.Error(t, err)
}

func TestCompilerCompileFromReader(t *testing.T) {
	stmts, err := NewCompiler().CompileFromReader(strings.NewReader("int x;"))
	require.NoError(t, err)

	assert.Equal(t, []Stmt{
		&VarDecl{"int", "x", nil},
	}, stmts)
}

func TestCompilerEmitIR(t *testing.T) {
	out, err := NewCompiler().EmitIR("int x = 1; string s = \"ok\";")
	require.NoError(t, err)

	assert.Contains(t, out, "@x = global i32 1")
	assert.Contains(t, out, `@s = global [3 x i8] c"ok\00"`)
}

func TestCompilerEmitIRParseError(t *testing.T) {
	_, err := NewCompiler().EmitIR("int x = ;")

	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, ErrExpectedExpr, perr.Kind)
}

func benchmarkCompiler(size int, b *testing.B) {
	for n := 0; n < b.N; n++ {
		// Setup
		b.StopTimer()
		src := test.GetRandomSource(size)
		c := NewCompiler()
		b.StartTimer()

		var err error
		benchAST, err = c.Compile(src)
		if err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkCompiler100(b *testing.B) {
	benchmarkCompiler(100, b)
}

func BenchmarkCompiler1000(b *testing.B) {
	benchmarkCompiler(1000, b)
}

func BenchmarkCompiler10000(b *testing.B) {
	benchmarkCompiler(10000, b)
}
