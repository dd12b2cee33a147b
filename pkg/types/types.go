// Package types holds the closed set of IR types and their textual form.
package types

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
)

// MaxIntBits is the widest integer type LLVM accepts.
const MaxIntBits = 1 << 23

type Type interface {
	isType()
	Equals(Type) bool
	String() string
}

type VoidType struct{}

type FuncType struct {
	RetType Type
	Params  []Type
}

type IntType struct {
	BitSize int64
}

type FloatKind int

const (
	FloatKindHalf FloatKind = iota
	FloatKindBFloat
	FloatKindFloat
	FloatKindDouble
	FloatKindFP128
	FloatKindX86_FP80
	FloatKindPPC_FP128
)

type FloatType struct {
	Kind FloatKind
}

type X86AMXType struct{}

// PointerType is an opaque pointer; it carries no pointee.
type PointerType struct{}

type TargetType struct {
	Name string
}

type VectorType struct {
	Len      uint64
	ElemType Type
}

type LabelType struct{}

type TokenType struct{}

type MetadataType struct{}

type ArrayType struct {
	ElemType Type
}

type StructType struct {
	Fields []Type
}

type OpaqueType struct{}

func (*VoidType) isType()     {}
func (*FuncType) isType()     {}
func (*IntType) isType()      {}
func (*FloatType) isType()    {}
func (*X86AMXType) isType()   {}
func (*PointerType) isType()  {}
func (*TargetType) isType()   {}
func (*VectorType) isType()   {}
func (*LabelType) isType()    {}
func (*TokenType) isType()    {}
func (*MetadataType) isType() {}
func (*ArrayType) isType()    {}
func (*StructType) isType()   {}
func (*OpaqueType) isType()   {}

var (
	Void = &VoidType{}

	I1   = &IntType{BitSize: 1}
	I8   = &IntType{BitSize: 8}
	I16  = &IntType{BitSize: 16}
	I32  = &IntType{BitSize: 32}
	I64  = &IntType{BitSize: 64}
	I128 = &IntType{BitSize: 128}

	Half      = &FloatType{Kind: FloatKindHalf}
	BFloat    = &FloatType{Kind: FloatKindBFloat}
	Float     = &FloatType{Kind: FloatKindFloat}
	Double    = &FloatType{Kind: FloatKindDouble}
	FP128     = &FloatType{Kind: FloatKindFP128}
	X86_FP80  = &FloatType{Kind: FloatKindX86_FP80}
	PPC_FP128 = &FloatType{Kind: FloatKindPPC_FP128}

	X86AMX   = &X86AMXType{}
	Ptr      = &PointerType{}
	Label    = &LabelType{}
	Token    = &TokenType{}
	Metadata = &MetadataType{}
	Opaque   = &OpaqueType{}
)

// NewInt returns an integer type of the given width. Widths outside
// 1..MaxIntBits are rejected.
func NewInt(bitSize int64) (*IntType, error) {
	if bitSize <= 0 {
		return nil, errors.Newf("integer bit width must be positive, got %d", bitSize)
	}
	if bitSize > MaxIntBits {
		return nil, errors.Newf("integer bit width %d exceeds maximum %d", bitSize, MaxIntBits)
	}
	return &IntType{BitSize: bitSize}, nil
}

// MustInt is like NewInt but panics on an invalid width.
func MustInt(bitSize int64) *IntType {
	t, err := NewInt(bitSize)
	if err != nil {
		panic(err)
	}
	return t
}

func NewFunc(ret Type, params ...Type) *FuncType {
	return &FuncType{RetType: ret, Params: append([]Type(nil), params...)}
}

func NewVector(n uint64, elem Type) *VectorType {
	return &VectorType{Len: n, ElemType: elem}
}

func NewArray(elem Type) *ArrayType {
	return &ArrayType{ElemType: elem}
}

func NewStruct(fields ...Type) *StructType {
	return &StructType{Fields: append([]Type(nil), fields...)}
}

func NewTarget(name string) *TargetType {
	return &TargetType{Name: name}
}

// Equal reports whether a and b describe the same type. Nil only equals nil.
func Equal(a, b Type) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equals(b)
}

func equalAll(a, b []Type) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}

func joinTypes(ts []Type) string {
	parts := make([]string, len(ts))
	for i, t := range ts {
		parts[i] = t.String()
	}
	return strings.Join(parts, ", ")
}

func (*VoidType) Equals(t Type) bool {
	_, ok := t.(*VoidType)
	return ok
}

func (*VoidType) String() string {
	return "void"
}

func (f *FuncType) Equals(t Type) bool {
	if other, ok := t.(*FuncType); ok {
		return Equal(f.RetType, other.RetType) && equalAll(f.Params, other.Params)
	}

	return false
}

func (f *FuncType) String() string {
	return fmt.Sprintf("%s(%s)", f.RetType, joinTypes(f.Params))
}

func (i *IntType) Equals(t Type) bool {
	if other, ok := t.(*IntType); ok {
		return i.BitSize == other.BitSize
	}

	return false
}

func (i *IntType) String() string {
	return fmt.Sprintf("i%d", i.BitSize)
}

func (f *FloatType) Equals(t Type) bool {
	if other, ok := t.(*FloatType); ok {
		return f.Kind == other.Kind
	}

	return false
}

func (f *FloatType) String() string {
	return f.Kind.String()
}

func (k FloatKind) String() string {
	switch k {
	case FloatKindHalf:
		return "half"
	case FloatKindBFloat:
		return "bfloat"
	case FloatKindFloat:
		return "float"
	case FloatKindDouble:
		return "double"
	case FloatKindFP128:
		return "fp128"
	case FloatKindX86_FP80:
		return "x86_fp80"
	case FloatKindPPC_FP128:
		return "ppc_fp128"
	}

	panic(fmt.Sprintf("invalid float kind %d", int(k)))
}

func (*X86AMXType) Equals(t Type) bool {
	_, ok := t.(*X86AMXType)
	return ok
}

func (*X86AMXType) String() string {
	return "x86_amx"
}

func (*PointerType) Equals(t Type) bool {
	_, ok := t.(*PointerType)
	return ok
}

func (*PointerType) String() string {
	return "ptr"
}

func (tt *TargetType) Equals(t Type) bool {
	if other, ok := t.(*TargetType); ok {
		return tt.Name == other.Name
	}

	return false
}

func (tt *TargetType) String() string {
	return fmt.Sprintf("target(%q)", tt.Name)
}

func (v *VectorType) Equals(t Type) bool {
	if other, ok := t.(*VectorType); ok {
		return v.Len == other.Len && Equal(v.ElemType, other.ElemType)
	}

	return false
}

func (v *VectorType) String() string {
	return fmt.Sprintf("[%d x %s]", v.Len, v.ElemType)
}

func (*LabelType) Equals(t Type) bool {
	_, ok := t.(*LabelType)
	return ok
}

func (*LabelType) String() string {
	return "label"
}

func (*TokenType) Equals(t Type) bool {
	_, ok := t.(*TokenType)
	return ok
}

func (*TokenType) String() string {
	return "token"
}

func (*MetadataType) Equals(t Type) bool {
	_, ok := t.(*MetadataType)
	return ok
}

func (*MetadataType) String() string {
	return "metadata"
}

func (a *ArrayType) Equals(t Type) bool {
	if other, ok := t.(*ArrayType); ok {
		return Equal(a.ElemType, other.ElemType)
	}

	return false
}

// String omits the element count.
func (a *ArrayType) String() string {
	return fmt.Sprintf("[%s]", a.ElemType)
}

func (s *StructType) Equals(t Type) bool {
	if other, ok := t.(*StructType); ok {
		return equalAll(s.Fields, other.Fields)
	}

	return false
}

func (s *StructType) String() string {
	if len(s.Fields) == 0 {
		return "struct"
	}
	return "struct " + joinTypes(s.Fields)
}

func (*OpaqueType) Equals(t Type) bool {
	_, ok := t.(*OpaqueType)
	return ok
}

func (*OpaqueType) String() string {
	return "opaque"
}
