package llvmgen

import (
	"github.com/llir/llvm/ir"
	"github.com/llir/llvm/ir/types"
)

type builtins struct {
	printf *ir.Func
	pow    *ir.Func
	floor  *ir.Func
}

func (b builtins) names() map[string]*ir.Func {
	return map[string]*ir.Func{
		"printf": b.printf,
		"pow":    b.pow,
		"floor":  b.floor,
	}
}

func addBuiltins(m *ir.Module) builtins {
	printf := m.NewFunc("printf", types.I32, ir.NewParam("format", types.I8Ptr))
	printf.Sig.Variadic = true

	return builtins{
		printf: printf,
		pow:    m.NewFunc("pow", types.Double, ir.NewParam("x", types.Double), ir.NewParam("y", types.Double)),
		floor:  m.NewFunc("floor", types.Double, ir.NewParam("x", types.Double)),
	}
}
