package types

type Keyword int

const (
	NoKeyword Keyword = iota

	KwI8
	KwI16
	KwI32
	KwI64
	KwU8
	KwU16
	KwU32
	KwU64
	KwF32
	KwF64
	KwStr
	KwAuto
	KwNone

	KwIf
	KwElif
	KwElse
	KwWhile
	KwFor
	KwTo
	KwEnd
	KwFn
	KwReturn

	KwAnd
	KwOr
	KwNot
)

var Keywords = map[string]Keyword{
	"i8":     KwI8,
	"i16":    KwI16,
	"i32":    KwI32,
	"i64":    KwI64,
	"u8":     KwU8,
	"u16":    KwU16,
	"u32":    KwU32,
	"u64":    KwU64,
	"f32":    KwF32,
	"f64":    KwF64,
	"str":    KwStr,
	"auto":   KwAuto,
	"none":   KwNone,
	"if":     KwIf,
	"elif":   KwElif,
	"else":   KwElse,
	"while":  KwWhile,
	"for":    KwFor,
	"to":     KwTo,
	"end":    KwEnd,
	"fn":     KwFn,
	"return": KwReturn,
	"and":    KwAnd,
	"or":     KwOr,
	"not":    KwNot,
}

func (k Keyword) String() string {
	for name, kw := range Keywords {
		if kw == k {
			return name
		}
	}
	return "<no keyword>"
}

// IsType reports whether the keyword names a declarable type (including auto).
func (k Keyword) IsType() bool {
	return k >= KwI8 && k <= KwNone
}

// OpensBlock reports whether the keyword starts a construct closed by `end`.
func (k Keyword) OpensBlock() bool {
	switch k {
	case KwIf, KwWhile, KwFor, KwFn:
		return true
	}
	return false
}
