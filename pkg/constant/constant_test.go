package constant

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kartiknair/lltext/pkg/types"
	"github.com/kartiknair/lltext/pkg/value"
)

func TestConstantString(t *testing.T) {
	tests := []struct {
		name string
		c    Constant
		want string
	}{
		{"true", True, "true"},
		{"false", False, "false"},
		{"int", NewInt(10), "10"},
		{"negative int", NewInt(-42), "-42"},
		{"zero int", &Int{}, "0"},
		{"float", NewFloat(10.5), "1.05e+01"},
		{"whole float", NewFloat(1), "1.0e+00"},
		{"zero float", NewFloat(0), "0.0e+00"},
		{"negative float", NewFloat(-0.25), "-2.5e-01"},
		{"inf", NewFloat(math.Inf(1)), "0x7FF0000000000000"},
		{"nan", NewFloat(math.Float64frombits(0x7FF8000000000000)), "0x7FF8000000000000"},
		{"null", NewNull(), "null"},
		{"poison", NewPoison(), "poison"},
		{"undef", NewUndef(), "undef"},
		{"blockaddress", NewBlockAddress("f", "b"), "blockaddress(@f, %b)"},
		{
			"struct",
			NewStruct(
				Element{Type: types.I32, Value: NewInt(1)},
				Element{Type: types.Ptr, Value: NewNull()},
			),
			"{ i32 1, ptr null }",
		},
		{
			"array",
			NewArray(
				Element{Type: types.I8, Value: NewInt(1)},
				Element{Type: types.I8, Value: NewInt(2)},
			),
			"[ i8 1, i8 2 ]",
		},
		{
			"vector",
			NewVector(
				Element{Type: types.I1, Value: True},
				Element{Type: types.I1, Value: False},
			),
			"< i1 true, i1 false >",
		},
		{"empty struct", NewStruct(), "{}"},
		{"empty array", NewArray(), "[]"},
		{"empty vector", NewVector(), "<>"},
		{
			"nested",
			NewStruct(
				Element{Type: types.Ptr, Value: value.NewGlobal("g")},
				Element{Type: types.NewArray(types.I8), Value: NewArray(Element{Type: types.I8, Value: NewInt(0)})},
			),
			"{ ptr @g, [i8] [ i8 0 ] }",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.c.String())
		})
	}
}

func TestNewIntFromBig(t *testing.T) {
	hi := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 127), big.NewInt(1))
	c, err := NewIntFromBig(hi)
	require.NoError(t, err)
	assert.Equal(t, "170141183460469231731687303715884105727", c.String())

	lo := new(big.Int).Neg(new(big.Int).Lsh(big.NewInt(1), 127))
	c, err = NewIntFromBig(lo)
	require.NoError(t, err)
	assert.Equal(t, "-170141183460469231731687303715884105728", c.String())

	_, err = NewIntFromBig(new(big.Int).Add(hi, big.NewInt(1)))
	assert.Error(t, err)
	_, err = NewIntFromBig(new(big.Int).Sub(lo, big.NewInt(1)))
	assert.Error(t, err)
	_, err = NewIntFromBig(nil)
	assert.Error(t, err)
}

func TestNewIntFromBigCopies(t *testing.T) {
	x := big.NewInt(5)
	c, err := NewIntFromBig(x)
	require.NoError(t, err)
	x.SetInt64(6)
	assert.Equal(t, "5", c.String())
}

func TestAggregateOrderPreserved(t *testing.T) {
	elems := []Element{
		{Type: types.I32, Value: NewInt(3)},
		{Type: types.I32, Value: NewInt(1)},
		{Type: types.I32, Value: NewInt(3)},
	}
	assert.Equal(t, "[ i32 3, i32 1, i32 3 ]", NewArray(elems...).String())
}

func TestConstantsAreValues(t *testing.T) {
	var v value.Value = NewInt(1)
	_, ok := v.(Constant)
	assert.True(t, ok)
	assert.Same(t, True, NewBool(true))
	assert.Same(t, False, NewBool(false))
}
