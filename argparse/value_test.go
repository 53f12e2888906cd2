package argparse

import "testing"

func TestValue_Constructors(t *testing.T) {
	tests := []struct {
		v    Value
		typ  VarType
		text string
	}{
		{IntValue(-1), VarInt, "int"},
		{UintValue(1), VarUint, "uint"},
		{Int32Value(-32), VarInt32, "int32"},
		{Uint32Value(32), VarUint32, "uint32"},
		{Int64Value(-64), VarInt64, "int64"},
		{Uint64Value(64), VarUint64, "uint64"},
		{FloatValue(1.5), VarFloat, "float"},
		{DoubleValue(2.5), VarDouble, "double"},
		{BoolValue(true), VarBool, "bool"},
		{FlagValue(false), VarFlag, "flag"},
		{StringValue("hi", 4), VarString, "string"},
	}
	for _, tt := range tests {
		if tt.v.Type() != tt.typ {
			t.Errorf("Expected type %s, got %s", tt.typ, tt.v.Type())
		}
		if tt.v.Type().String() != tt.text {
			t.Errorf("Expected name %q, got %q", tt.text, tt.v.Type().String())
		}
	}

	if IntValue(-1).Int() != -1 || Uint64Value(64).Uint() != 64 || DoubleValue(2.5).Float() != 2.5 {
		t.Error("numeric members not preserved")
	}
	if s := StringValue("hi", 4); s.Text() != "hi" || s.MaxLen() != 4 {
		t.Errorf("Expected string value hi/4, got %q/%d", s.Text(), s.MaxLen())
	}
	if !BoolValue(true).Bool() {
		t.Error("bool member not preserved")
	}
	if VarType(99).String() != "VarType(99)" {
		t.Errorf("Unexpected name for unknown type: %s", VarType(99))
	}
}

func TestBindings_AssignDefaults(t *testing.T) {
	var (
		i   int
		u32 uint32
		f   float32
		s   string
		b   bool
	)
	signedBinding[int]{dst: &i, typ: VarInt, bits: 64}.assign(IntValue(-7))
	unsignedBinding[uint32]{dst: &u32, typ: VarUint32, bits: 32}.assign(Uint32Value(7))
	floatBinding[float32]{dst: &f, typ: VarFloat, bits: 32}.assign(FloatValue(0.25))
	stringBinding{dst: &s, maxLen: 3}.assign(StringValue("abc", 3))
	flagBinding{dst: &b}.assign(FlagValue(true))

	if i != -7 || u32 != 7 || f != 0.25 || s != "ab" || !b {
		t.Errorf("Unexpected assigned values: %d %d %g %q %v", i, u32, f, s, b)
	}
}
