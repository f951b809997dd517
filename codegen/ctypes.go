package codegen

import (
	"github.com/pontaoski/chic/errors"
	"github.com/pontaoski/chic/types"
)

type cType struct {
	keyword string
	zero    string
	format  string
}

var cTypes = map[types.VarType]cType{
	types.I8:   {"signed char ", "0", "%hhd"},
	types.I16:  {"short ", "0", "%hd"},
	types.I32:  {"long ", "0", "%ld"},
	types.I64:  {"long long ", "0", "%lld"},
	types.U8:   {"unsigned char ", "0", "%hhu"},
	types.U16:  {"unsigned short ", "0", "%hu"},
	types.U32:  {"unsigned long ", "0", "%lu"},
	types.U64:  {"unsigned long long ", "0", "%llu"},
	types.F32:  {"float ", "0.0f", "%f"},
	types.F64:  {"double ", "0.0", "%lf"},
	types.Str:  {"char* ", `""`, "%s"},
	types.None: {"void ", "", ""},
}

func lookupCType(t types.VarType) (cType, error) {
	if t == types.Auto {
		return cType{}, errors.RenderError{Node: t.String(), Reason: "auto type was never resolved"}
	}
	ct, ok := cTypes[t]
	if !ok {
		return cType{}, errors.RenderError{Node: t.String(), Reason: "no C equivalent"}
	}
	return ct, nil
}

// TypeKeyword returns the C spelling of t, including its trailing space.
func TypeKeyword(t types.VarType) (string, error) {
	ct, err := lookupCType(t)
	return ct.keyword, err
}

func ZeroValue(t types.VarType) (string, error) {
	ct, err := lookupCType(t)
	if err == nil && t == types.None {
		err = errors.RenderError{Node: t.String(), Reason: "none has no value"}
	}
	return ct.zero, err
}

// FormatSpecifier returns the printf conversion for t.
func FormatSpecifier(t types.VarType) (string, error) {
	ct, err := lookupCType(t)
	if err == nil && t == types.None {
		err = errors.RenderError{Node: t.String(), Reason: "none cannot be printed"}
	}
	return ct.format, err
}
