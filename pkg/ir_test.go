package tipo

import (
	"github.com/llir/llvm/ir/constant"
	"github.com/llir/llvm/ir/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestValueLookup(t *testing.T) {
	vals := NewValueLookup()

	val1 := constant.NewInt(types.I32, 1)
	val2 := constant.NewInt(types.I32, 2)

	vals.Set("id1", val1)
	vals.Set("id2", val2)

	got1, ok := vals.Get("id1")
	require.True(t, ok)
	assert.Equal(t, val1, got1)

	got2, ok := vals.Get("id2")
	require.True(t, ok)
	assert.Equal(t, val2, got2)

	_, ok = vals.Get("id3")
	assert.False(t, ok)
}

func TestValueLookupInherit(t *testing.T) {
	vals1 := NewValueLookup()

	val1 := constant.NewInt(types.I32, 1)
	val2 := constant.NewInt(types.I32, 2)

	vals1.Set("id1", val1)
	vals1.Set("id2", val2)

	vals2 := NewValueLookup()

	val3 := constant.NewInt(types.I32, 3)
	val4 := constant.NewInt(types.I32, 4)

	vals2.Set("id1", val3)
	vals2.Set("id4", val4)

	vals1.Inherit(vals2)

	got1, _ := vals1.Get("id1")
	got2, _ := vals1.Get("id2")
	got4, _ := vals1.Get("id4")

	assert.Equal(t, val3, got1)
	assert.Equal(t, val2, got2)
	assert.Equal(t, val4, got4)
}

func TestIRBuilderGlobals(t *testing.T) {
	stmts, err := Parse(Tokenize("int x = 42; bool flag = true; string s = \"hi\"; float pi = 2.5; int z;"))
	require.NoError(t, err)

	mod, err := NewLLVMIRBuilder().Build(stmts)
	require.NoError(t, err)

	got := mod.String()
	assert.Contains(t, got, "@x = global i32 42")
	assert.Contains(t, got, "@flag = global i1 true")
	assert.Contains(t, got, `@s = global [3 x i8] c"hi\00"`)
	assert.Contains(t, got, "@pi = global double")
	assert.Contains(t, got, "@z = global i32 0")
}

func TestIRBuilderIdentifierInitializer(t *testing.T) {
	stmts, err := Parse(Tokenize("int a = 7; int b = a; int c = missing;"))
	require.NoError(t, err)

	mod, err := NewLLVMIRBuilder().Build(stmts)
	require.NoError(t, err)

	got := mod.String()
	assert.Contains(t, got, "@a = global i32 7")
	// b copies a's initial constant; c names nothing and zeroes out
	assert.Contains(t, got, "@b = global i32 7")
	assert.Contains(t, got, "@c = global i32 0")
}

func TestIRBuilderZeroValues(t *testing.T) {
	stmts, err := Parse(Tokenize("int i; bool b; string s;"))
	require.NoError(t, err)

	mod, err := NewLLVMIRBuilder().Build(stmts)
	require.NoError(t, err)

	got := mod.String()
	assert.Contains(t, got, "@i = global i32 0")
	assert.Contains(t, got, "@b = global i1 false")
	assert.Contains(t, got, `@s = global [1 x i8] c"\00"`)
}

func TestIRBuilderRejectsHugeIntConstant(t *testing.T) {
	stmts, err := Parse(Tokenize("int x = 99999999999999999999;"))
	require.NoError(t, err)

	_, err = NewLLVMIRBuilder().Build(stmts)
	assert.Error(t, err)
}
