// Package constant implements compile-time constant operands.
package constant

import (
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/kartiknair/lltext/pkg/types"
	"github.com/kartiknair/lltext/pkg/value"
)

// Constant is a value known at compile time. Every constant is usable
// wherever a value.Value is expected.
type Constant interface {
	value.Value
	isConstant()
}

type Bool struct {
	value.IsValue
	X bool
}

// Int is a 128-bit signed integer constant.
type Int struct {
	value.IsValue
	X *big.Int
}

type Float struct {
	value.IsValue
	X float64
}

type Null struct {
	value.IsValue
}

type Poison struct {
	value.IsValue
}

type Undef struct {
	value.IsValue
}

// Element is one typed member of an aggregate constant. Element types are
// stated per element and are not checked against each other.
type Element struct {
	Type  types.Type
	Value value.Value
}

type Struct struct {
	value.IsValue
	Elems []Element
}

type Array struct {
	value.IsValue
	Elems []Element
}

type Vector struct {
	value.IsValue
	Elems []Element
}

type BlockAddress struct {
	value.IsValue
	Func  string
	Block string
}

func (*Bool) isConstant()         {}
func (*Int) isConstant()          {}
func (*Float) isConstant()        {}
func (*Null) isConstant()         {}
func (*Poison) isConstant()       {}
func (*Undef) isConstant()        {}
func (*Struct) isConstant()       {}
func (*Array) isConstant()        {}
func (*Vector) isConstant()       {}
func (*BlockAddress) isConstant() {}

var (
	_ Constant = (*Bool)(nil)
	_ Constant = (*Int)(nil)
	_ Constant = (*Float)(nil)
	_ Constant = (*Null)(nil)
	_ Constant = (*Poison)(nil)
	_ Constant = (*Undef)(nil)
	_ Constant = (*Struct)(nil)
	_ Constant = (*Array)(nil)
	_ Constant = (*Vector)(nil)
	_ Constant = (*BlockAddress)(nil)
)

var (
	True  = &Bool{X: true}
	False = &Bool{X: false}
)

var (
	minInt128 = new(big.Int).Neg(new(big.Int).Lsh(big.NewInt(1), 127))
	maxInt128 = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 127), big.NewInt(1))
)

func NewBool(x bool) *Bool {
	if x {
		return True
	}
	return False
}

func NewInt(x int64) *Int {
	return &Int{X: big.NewInt(x)}
}

// NewIntFromBig copies x into a new constant. Values that do not fit in 128
// signed bits are rejected.
func NewIntFromBig(x *big.Int) (*Int, error) {
	if x == nil {
		return nil, errors.New("nil integer")
	}
	if x.Cmp(minInt128) < 0 || x.Cmp(maxInt128) > 0 {
		return nil, errors.Newf("integer constant %s does not fit in 128 bits", x)
	}
	return &Int{X: new(big.Int).Set(x)}, nil
}

func NewFloat(x float64) *Float {
	return &Float{X: x}
}

func NewNull() *Null {
	return &Null{}
}

func NewPoison() *Poison {
	return &Poison{}
}

func NewUndef() *Undef {
	return &Undef{}
}

func NewStruct(elems ...Element) *Struct {
	return &Struct{Elems: append([]Element(nil), elems...)}
}

func NewArray(elems ...Element) *Array {
	return &Array{Elems: append([]Element(nil), elems...)}
}

func NewVector(elems ...Element) *Vector {
	return &Vector{Elems: append([]Element(nil), elems...)}
}

func NewBlockAddress(fn, block string) *BlockAddress {
	return &BlockAddress{Func: fn, Block: block}
}

func (b *Bool) String() string {
	if b.X {
		return "true"
	}
	return "false"
}

// String renders a zero Int, one with a nil X, as 0.
func (i *Int) String() string {
	if i.X == nil {
		return "0"
	}
	return i.X.String()
}

func (f *Float) String() string {
	return FormatFloat(f.X)
}

// FormatFloat renders x the way LLVM's lexer expects decimal floating-point
// literals: a mantissa with a decimal point and an exponent, e.g. 1.05e+01.
// Infinities and NaNs have no decimal form and are written as the 64-bit
// hexadecimal pattern.
func FormatFloat(x float64) string {
	if math.IsInf(x, 0) || math.IsNaN(x) {
		return fmt.Sprintf("0x%016X", math.Float64bits(x))
	}
	s := strconv.FormatFloat(x, 'e', -1, 64)
	mant, exp, _ := strings.Cut(s, "e")
	if !strings.Contains(mant, ".") {
		mant += ".0"
	}
	return mant + "e" + exp
}

func (*Null) String() string {
	return "null"
}

func (*Poison) String() string {
	return "poison"
}

func (*Undef) String() string {
	return "undef"
}

func (e Element) String() string {
	return fmt.Sprintf("%s %s", e.Type, e.Value)
}

func aggregate(lbrace, rbrace string, elems []Element) string {
	if len(elems) == 0 {
		return lbrace + rbrace
	}
	parts := make([]string, len(elems))
	for i, e := range elems {
		parts[i] = e.String()
	}
	return lbrace + " " + strings.Join(parts, ", ") + " " + rbrace
}

func (s *Struct) String() string {
	return aggregate("{", "}", s.Elems)
}

func (a *Array) String() string {
	return aggregate("[", "]", a.Elems)
}

func (v *Vector) String() string {
	return aggregate("<", ">", v.Elems)
}

func (b *BlockAddress) String() string {
	return fmt.Sprintf("blockaddress(@%s, %%%s)", b.Func, b.Block)
}
