package types

type VarType int

const (
	None VarType = iota
	I8
	I16
	I32
	I64
	U8
	U16
	U32
	U64
	F32
	F64
	Str
	Auto
)

var varTypeNames = [...]string{
	None: "none",
	I8:   "i8",
	I16:  "i16",
	I32:  "i32",
	I64:  "i64",
	U8:   "u8",
	U16:  "u16",
	U32:  "u32",
	U64:  "u64",
	F32:  "f32",
	F64:  "f64",
	Str:  "str",
	Auto: "auto",
}

func (v VarType) String() string {
	if v < 0 || int(v) >= len(varTypeNames) {
		return "<invalid type>"
	}
	return varTypeNames[v]
}

// rank orders the numeric types for promotion. Signed and unsigned types
// interleave rather than following bit width.
var rank = map[VarType]int{
	None: 0,
	I8:   1,
	U8:   2,
	I16:  3,
	U16:  4,
	I32:  5,
	U32:  6,
	F32:  7,
	I64:  8,
	U64:  9,
	F64:  10,
}

func (v VarType) Rank() (int, bool) {
	r, ok := rank[v]
	return r, ok
}

func (v VarType) IsNumeric() bool {
	return v >= I8 && v <= F64
}

func (v VarType) IsInteger() bool {
	return v >= I8 && v <= U64
}

func (v VarType) IsSigned() bool {
	return v >= I8 && v <= I64
}

func (v VarType) IsUnsigned() bool {
	return v >= U8 && v <= U64
}

func (v VarType) IsFloat() bool {
	return v == F32 || v == F64
}

// Promote returns the higher ranked of a and b. Str only combines with
// itself; any other pairing that falls outside the rank table yields None.
func Promote(a, b VarType) VarType {
	if a == Str || b == Str {
		if a == b {
			return Str
		}
		return None
	}
	ra, okA := a.Rank()
	rb, okB := b.Rank()
	if !okA || !okB {
		return None
	}
	if ra >= rb {
		return a
	}
	return b
}

func FromKeyword(k Keyword) VarType {
	switch k {
	case KwI8:
		return I8
	case KwI16:
		return I16
	case KwI32:
		return I32
	case KwI64:
		return I64
	case KwU8:
		return U8
	case KwU16:
		return U16
	case KwU32:
		return U32
	case KwU64:
		return U64
	case KwF32:
		return F32
	case KwF64:
		return F64
	case KwStr:
		return Str
	case KwAuto:
		return Auto
	}
	return None
}
