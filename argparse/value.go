package argparse

import (
	"strconv"
	"unicode/utf8"
)

// VarType is the declared type of a parameter.
type VarType int

const (
	VarInt VarType = iota
	VarUint
	VarString
	VarBool
	VarInt32
	VarUint32
	VarFloat
	VarDouble
	VarFlag
	VarInt64
	VarUint64
)

var varTypeNames = [...]string{
	VarInt:    "int",
	VarUint:   "uint",
	VarString: "string",
	VarBool:   "bool",
	VarInt32:  "int32",
	VarUint32: "uint32",
	VarFloat:  "float",
	VarDouble: "double",
	VarFlag:   "flag",
	VarInt64:  "int64",
	VarUint64: "uint64",
}

func (t VarType) String() string {
	if t < 0 || int(t) >= len(varTypeNames) {
		return "VarType(" + strconv.Itoa(int(t)) + ")"
	}
	return varTypeNames[t]
}

// tag is the bracketed type shown in help output. Flags have none.
func (t VarType) tag() string {
	switch t {
	case VarFlag:
		return ""
	case VarBool:
		return "[0/1]"
	default:
		return "[" + t.String() + "]"
	}
}

// Value holds one typed literal. Only the member selected by Type is meaningful.
type Value struct {
	typ    VarType
	i      int64
	u      uint64
	f      float64
	b      bool
	s      string
	maxLen int
}

func IntValue(v int) Value        { return Value{typ: VarInt, i: int64(v)} }
func UintValue(v uint) Value      { return Value{typ: VarUint, u: uint64(v)} }
func Int32Value(v int32) Value    { return Value{typ: VarInt32, i: int64(v)} }
func Uint32Value(v uint32) Value  { return Value{typ: VarUint32, u: uint64(v)} }
func Int64Value(v int64) Value    { return Value{typ: VarInt64, i: v} }
func Uint64Value(v uint64) Value  { return Value{typ: VarUint64, u: v} }
func FloatValue(v float32) Value  { return Value{typ: VarFloat, f: float64(v)} }
func DoubleValue(v float64) Value { return Value{typ: VarDouble, f: v} }
func BoolValue(v bool) Value      { return Value{typ: VarBool, b: v} }
func FlagValue(v bool) Value      { return Value{typ: VarFlag, b: v} }

// StringValue holds s for a destination that keeps at most maxLen-1 bytes.
func StringValue(s string, maxLen int) Value {
	return Value{typ: VarString, s: s, maxLen: maxLen}
}

func (v Value) Type() VarType  { return v.typ }
func (v Value) Int() int64     { return v.i }
func (v Value) Uint() uint64   { return v.u }
func (v Value) Float() float64 { return v.f }
func (v Value) Bool() bool     { return v.b }
func (v Value) Text() string   { return v.s }
func (v Value) MaxLen() int    { return v.maxLen }

// truncate cuts s to at most n bytes without splitting a UTF-8 sequence.
func truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}

// binding is a typed destination cell. The set of implementations is closed;
// each Add method pairs one with a Value of the same VarType.
type binding interface {
	varType() VarType
	isNil() bool
	assign(v Value)
	convert(tok string) error
}

type signed interface{ ~int | ~int32 | ~int64 }

type unsigned interface{ ~uint | ~uint32 | ~uint64 }

type floating interface{ ~float32 | ~float64 }

type signedBinding[T signed] struct {
	dst  *T
	typ  VarType
	bits int
}

func (b signedBinding[T]) varType() VarType { return b.typ }
func (b signedBinding[T]) isNil() bool      { return b.dst == nil }
func (b signedBinding[T]) assign(v Value)   { *b.dst = T(v.i) }

func (b signedBinding[T]) convert(tok string) error {
	n, err := parseInt(tok, b.bits)
	if err != nil {
		return err
	}
	*b.dst = T(n)
	return nil
}

type unsignedBinding[T unsigned] struct {
	dst  *T
	typ  VarType
	bits int
}

func (b unsignedBinding[T]) varType() VarType { return b.typ }
func (b unsignedBinding[T]) isNil() bool      { return b.dst == nil }
func (b unsignedBinding[T]) assign(v Value)   { *b.dst = T(v.u) }

func (b unsignedBinding[T]) convert(tok string) error {
	n, err := parseUint(tok, b.bits)
	if err != nil {
		return err
	}
	*b.dst = T(n)
	return nil
}

type floatBinding[T floating] struct {
	dst  *T
	typ  VarType
	bits int
}

func (b floatBinding[T]) varType() VarType { return b.typ }
func (b floatBinding[T]) isNil() bool      { return b.dst == nil }
func (b floatBinding[T]) assign(v Value)   { *b.dst = T(v.f) }

func (b floatBinding[T]) convert(tok string) error {
	f, err := parseFloat(tok, b.bits)
	if err != nil {
		return err
	}
	*b.dst = T(f)
	return nil
}

type boolBinding struct{ dst *bool }

func (b boolBinding) varType() VarType { return VarBool }
func (b boolBinding) isNil() bool      { return b.dst == nil }
func (b boolBinding) assign(v Value)   { *b.dst = v.b }

func (b boolBinding) convert(tok string) error {
	v, err := parseBool(tok)
	if err != nil {
		return err
	}
	*b.dst = v
	return nil
}

// flagBinding is a switch: any occurrence sets it, no value token is consumed.
type flagBinding struct{ dst *bool }

func (b flagBinding) varType() VarType     { return VarFlag }
func (b flagBinding) isNil() bool          { return b.dst == nil }
func (b flagBinding) assign(v Value)       { *b.dst = v.b }
func (b flagBinding) convert(string) error { *b.dst = true; return nil }

type stringBinding struct {
	dst    *string
	maxLen int
}

func (b stringBinding) varType() VarType { return VarString }
func (b stringBinding) isNil() bool      { return b.dst == nil }
func (b stringBinding) assign(v Value)   { *b.dst = truncate(v.s, b.maxLen-1) }

func (b stringBinding) convert(tok string) error {
	*b.dst = truncate(tok, b.maxLen-1)
	return nil
}
