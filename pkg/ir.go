package tipo

import (
	"fmt"
	"github.com/llir/llvm/ir"
	"github.com/llir/llvm/ir/constant"
	"github.com/llir/llvm/ir/types"
	"strconv"
)

type ValueLookup struct {
	vals map[string]constant.Constant
}

func NewValueLookup() *ValueLookup {
	return &ValueLookup{
		vals: make(map[string]constant.Constant),
	}
}

func (l *ValueLookup) Inherit(t2 *ValueLookup) {
	for k, v := range t2.vals {
		l.Set(k, v)
	}
}

func (l *ValueLookup) Get(id string) (constant.Constant, bool) {
	val, ok := l.vals[id]
	return val, ok
}

func (l *ValueLookup) Set(id string, val constant.Constant) {
	l.vals[id] = val
}

type LLVMIRBuilder struct {
	mod    *ir.Module
	values *ValueLookup
}

func NewLLVMIRBuilder() *LLVMIRBuilder {
	return &LLVMIRBuilder{
		mod:    ir.NewModule(),
		values: NewValueLookup(),
	}
}

// Build lowers a parsed program to an LLVM module. Every declaration
// becomes a global definition holding its initial constant.
func (b *LLVMIRBuilder) Build(stmts []Stmt) (*ir.Module, error) {
	for _, stmt := range stmts {
		switch s := stmt.(type) {
		case *VarDecl:
			if err := b.global(s); err != nil {
				return nil, err
			}
		}
	}

	return b.mod, nil
}

func (b *LLVMIRBuilder) global(decl *VarDecl) error {
	init, err := b.initializer(decl)
	if err != nil {
		return err
	}

	b.mod.NewGlobalDef(decl.Name, init)
	b.values.Set(decl.Name, init)

	return nil
}

func (b *LLVMIRBuilder) initializer(decl *VarDecl) (constant.Constant, error) {
	switch e := decl.Init.(type) {
	case nil:
		return zeroValue(decl.Type), nil
	case *LiteralExpr:
		return b.loadLiteral(e)
	case *Identifier:
		// An identifier takes the named variable's initial constant.
		// Unknown names get the zero value, as the grammar never
		// checks that the reference resolves.
		// TODO: resolve forward references
		if v, ok := b.values.Get(e.Name); ok {
			return v, nil
		}

		return zeroValue(decl.Type), nil
	default:
		return nil, fmt.Errorf("unsupported initializer: %s", e)
	}
}

func (b *LLVMIRBuilder) loadLiteral(expr *LiteralExpr) (constant.Constant, error) {
	switch expr.Type {
	case "int":
		v, err := strconv.ParseInt(expr.Value, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("invalid int constant %q: %w", expr.Value, err)
		}

		return constant.NewInt(types.I32, v), nil
	case "float":
		v, err := strconv.ParseFloat(expr.Value, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid float constant %q: %w", expr.Value, err)
		}

		return constant.NewFloat(types.Double, v), nil
	case "bool":
		return constant.NewBool(expr.Value == "true"), nil
	case "string":
		return constant.NewCharArrayFromString(expr.Value + "\x00"), nil
	default:
		return nil, fmt.Errorf("unknown literal type: %s", expr.Type)
	}
}

func zeroValue(typ string) constant.Constant {
	switch typ {
	case "float":
		return constant.NewFloat(types.Double, 0)
	case "bool":
		return constant.NewBool(false)
	case "string":
		return constant.NewCharArrayFromString("\x00")
	default:
		return constant.NewInt(types.I32, 0)
	}
}
