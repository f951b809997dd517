package llvmgen

import (
	"github.com/llir/llvm/ir/constant"
	"github.com/llir/llvm/ir/types"

	"github.com/pontaoski/chic/errors"
	vt "github.com/pontaoski/chic/types"
)

var llvmTypes = map[vt.VarType]types.Type{
	vt.I8:   types.I8,
	vt.U8:   types.I8,
	vt.I16:  types.I16,
	vt.U16:  types.I16,
	vt.I32:  types.I32,
	vt.U32:  types.I32,
	vt.I64:  types.I64,
	vt.U64:  types.I64,
	vt.F32:  types.Float,
	vt.F64:  types.Double,
	vt.Str:  types.I8Ptr,
	vt.None: types.Void,
}

func llvmType(t vt.VarType) types.Type {
	lt, ok := llvmTypes[t]
	if !ok {
		panic(errors.RenderError{Node: t.String(), Reason: "no LLVM equivalent"})
	}
	return lt
}

func bits(t vt.VarType) int {
	switch t {
	case vt.I8, vt.U8:
		return 8
	case vt.I16, vt.U16:
		return 16
	case vt.I32, vt.U32:
		return 32
	}
	return 64
}

func zero(t vt.VarType) constant.Constant {
	switch {
	case t.IsInteger():
		return constant.NewInt(llvmType(t).(*types.IntType), 0)
	case t.IsFloat():
		return constant.NewFloat(llvmType(t).(*types.FloatType), 0)
	case t == vt.Str:
		return constant.NewNull(types.I8Ptr)
	}
	panic(errors.RenderError{Node: t.String(), Reason: "has no zero value"})
}

// formatSpecifier is the printf conversion used for a value after it has
// gone through variadic promotion.
func formatSpecifier(t vt.VarType) (string, error) {
	switch {
	case t.IsSigned():
		return "%lld", nil
	case t.IsUnsigned():
		return "%llu", nil
	case t.IsFloat():
		return "%f", nil
	case t == vt.Str:
		return "%s", nil
	}
	return "", errors.RenderError{Node: t.String(), Reason: "cannot be printed"}
}
