package ir

import (
	"fmt"
	"strings"

	"github.com/kartiknair/lltext/pkg/enum"
	"github.com/kartiknair/lltext/pkg/types"
	"github.com/kartiknair/lltext/pkg/value"
)

// Instruction is a single IR instruction. String renders it as one line
// without indentation.
type Instruction interface {
	isInstruction()
	String() string
}

// Terminator is an instruction that ends a basic block.
type Terminator interface {
	Instruction
	isTerminator()
}

// Label names a basic block.
type Label struct {
	Name string
}

// String renders the label as a branch operand.
func (l Label) String() string {
	return "label %" + l.Name
}

type Ret struct {
	Type  types.Type
	Value value.Value
}

type RetVoid struct{}

type Br struct {
	Cond  value.Value
	True  Label
	False Label
}

type SwitchCase struct {
	Type   types.Type
	Value  value.Value
	Target value.Value
}

type Switch struct {
	Type    types.Type
	Value   value.Value
	Default Label
	Cases   []SwitchCase
}

type Unreachable struct{}

type FNeg struct {
	Dst   *value.Register
	Type  types.Type
	Value value.Value
}

type BinaryOp int

const (
	OpAdd BinaryOp = iota
	OpFAdd
	OpSub
	OpFSub
	OpMul
	OpFMul
	OpUDiv
	OpSDiv
	OpFDiv
	OpURem
	OpSRem
	OpFRem
	OpShl
	OpLShr
	OpAShr
	OpAnd
	OpOr
	OpXor
)

// BinaryInst covers every two-operand arithmetic and bitwise opcode: one
// destination, two sources, one set of wrap flags.
type BinaryInst struct {
	Op    BinaryOp
	Dst   *value.Register
	Type  types.Type
	X     value.Value
	Y     value.Value
	Flags enum.ArithFlags
}

type ExtractElement struct {
	Dst       *value.Register
	VecType   types.Type
	Vec       value.Value
	IndexType types.Type
	Index     value.Value
}

type InsertElement struct {
	Dst       *value.Register
	VecType   types.Type
	Vec       value.Value
	ElemType  types.Type
	Elem      value.Value
	IndexType types.Type
	Index     value.Value
}

type ExtractValue struct {
	Dst   *value.Register
	Type  types.Type
	Agg   value.Value
	Index int32
}

type InsertValue struct {
	Dst      *value.Register
	Type     types.Type
	Agg      value.Value
	ElemType types.Type
	Elem     value.Value
	Index    int32
}

type Alloca struct {
	Dst  *value.Register
	Type types.Type
}

type AllocaMultiple struct {
	Dst   *value.Register
	Type  types.Type
	Count int32
}

type Load struct {
	Dst  *value.Register
	Type types.Type
	Ptr  value.Value
}

type Store struct {
	Ptr  value.Value
	Type types.Type
	Val  value.Value
}

func (*Ret) isInstruction()            {}
func (*RetVoid) isInstruction()        {}
func (*Br) isInstruction()             {}
func (*Switch) isInstruction()         {}
func (*Unreachable) isInstruction()    {}
func (*FNeg) isInstruction()           {}
func (*BinaryInst) isInstruction()     {}
func (*ExtractElement) isInstruction() {}
func (*InsertElement) isInstruction()  {}
func (*ExtractValue) isInstruction()   {}
func (*InsertValue) isInstruction()    {}
func (*Alloca) isInstruction()         {}
func (*AllocaMultiple) isInstruction() {}
func (*Load) isInstruction()           {}
func (*Store) isInstruction()          {}

func (*Ret) isTerminator()         {}
func (*RetVoid) isTerminator()     {}
func (*Br) isTerminator()          {}
func (*Switch) isTerminator()      {}
func (*Unreachable) isTerminator() {}

// Every variant must render.
var (
	_ Terminator = (*Ret)(nil)
	_ Terminator = (*RetVoid)(nil)
	_ Terminator = (*Br)(nil)
	_ Terminator = (*Switch)(nil)
	_ Terminator = (*Unreachable)(nil)

	_ Instruction = (*FNeg)(nil)
	_ Instruction = (*BinaryInst)(nil)
	_ Instruction = (*ExtractElement)(nil)
	_ Instruction = (*InsertElement)(nil)
	_ Instruction = (*ExtractValue)(nil)
	_ Instruction = (*InsertValue)(nil)
	_ Instruction = (*Alloca)(nil)
	_ Instruction = (*AllocaMultiple)(nil)
	_ Instruction = (*Load)(nil)
	_ Instruction = (*Store)(nil)
)

// IsTerminator reports whether inst ends a basic block.
func IsTerminator(inst Instruction) bool {
	_, ok := inst.(Terminator)
	return ok
}

// tokens joins the non-empty parts with single spaces.
func tokens(parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, " ")
}

func assign(dst *value.Register, rest ...string) string {
	return tokens(append([]string{dst.String(), "="}, rest...)...)
}

func typed(t types.Type, v value.Value) string {
	return fmt.Sprintf("%s %s", t, v)
}

func NewRet(t types.Type, v value.Value) *Ret {
	return &Ret{Type: t, Value: v}
}

func (r *Ret) String() string {
	return "ret " + typed(r.Type, r.Value)
}

func NewRetVoid() *RetVoid {
	return &RetVoid{}
}

func (*RetVoid) String() string {
	return "ret void"
}

func NewBr(cond value.Value, t, f Label) *Br {
	return &Br{Cond: cond, True: t, False: f}
}

func (b *Br) String() string {
	return fmt.Sprintf("br i1 %s, %s, %s", b.Cond, b.True, b.False)
}

func NewSwitch(t types.Type, v value.Value, def Label, cases ...SwitchCase) *Switch {
	return &Switch{Type: t, Value: v, Default: def, Cases: append([]SwitchCase(nil), cases...)}
}

func (c SwitchCase) String() string {
	return fmt.Sprintf("%s, label %s", typed(c.Type, c.Value), c.Target)
}

func (s *Switch) String() string {
	cases := make([]string, len(s.Cases))
	for i, c := range s.Cases {
		cases[i] = c.String()
	}
	table := "[]"
	if len(cases) > 0 {
		table = "[ " + strings.Join(cases, " ") + " ]"
	}
	return fmt.Sprintf("switch %s, %s %s", typed(s.Type, s.Value), s.Default, table)
}

func NewUnreachable() *Unreachable {
	return &Unreachable{}
}

func (*Unreachable) String() string {
	return "unreachable"
}

func NewFNeg(dst *value.Register, t types.Type, v value.Value) *FNeg {
	return &FNeg{Dst: dst, Type: t, Value: v}
}

func (f *FNeg) String() string {
	return assign(f.Dst, "fneg", typed(f.Type, f.Value))
}

func (op BinaryOp) String() string {
	switch op {
	case OpAdd:
		return "add"
	case OpFAdd:
		return "fadd"
	case OpSub:
		return "sub"
	case OpFSub:
		return "fsub"
	case OpMul:
		return "mul"
	case OpFMul:
		return "fmul"
	case OpUDiv:
		return "udiv"
	case OpSDiv:
		return "sdiv"
	case OpFDiv:
		return "fdiv"
	case OpURem:
		return "urem"
	case OpSRem:
		return "srem"
	case OpFRem:
		return "frem"
	case OpShl:
		return "shl"
	case OpLShr:
		return "lshr"
	case OpAShr:
		return "ashr"
	case OpAnd:
		return "and"
	case OpOr:
		return "or"
	case OpXor:
		return "xor"
	}

	panic(fmt.Sprintf("invalid binary op %d", int(op)))
}

func NewBinary(op BinaryOp, dst *value.Register, t types.Type, x, y value.Value, flags enum.ArithFlags) *BinaryInst {
	return &BinaryInst{Op: op, Dst: dst, Type: t, X: x, Y: y, Flags: flags}
}

func NewAdd(dst *value.Register, t types.Type, x, y value.Value, flags enum.ArithFlags) *BinaryInst {
	return NewBinary(OpAdd, dst, t, x, y, flags)
}

func NewFAdd(dst *value.Register, t types.Type, x, y value.Value, flags enum.ArithFlags) *BinaryInst {
	return NewBinary(OpFAdd, dst, t, x, y, flags)
}

func NewSub(dst *value.Register, t types.Type, x, y value.Value, flags enum.ArithFlags) *BinaryInst {
	return NewBinary(OpSub, dst, t, x, y, flags)
}

func NewFSub(dst *value.Register, t types.Type, x, y value.Value, flags enum.ArithFlags) *BinaryInst {
	return NewBinary(OpFSub, dst, t, x, y, flags)
}

func NewMul(dst *value.Register, t types.Type, x, y value.Value, flags enum.ArithFlags) *BinaryInst {
	return NewBinary(OpMul, dst, t, x, y, flags)
}

func NewFMul(dst *value.Register, t types.Type, x, y value.Value, flags enum.ArithFlags) *BinaryInst {
	return NewBinary(OpFMul, dst, t, x, y, flags)
}

func NewUDiv(dst *value.Register, t types.Type, x, y value.Value, flags enum.ArithFlags) *BinaryInst {
	return NewBinary(OpUDiv, dst, t, x, y, flags)
}

func NewSDiv(dst *value.Register, t types.Type, x, y value.Value, flags enum.ArithFlags) *BinaryInst {
	return NewBinary(OpSDiv, dst, t, x, y, flags)
}

func NewFDiv(dst *value.Register, t types.Type, x, y value.Value, flags enum.ArithFlags) *BinaryInst {
	return NewBinary(OpFDiv, dst, t, x, y, flags)
}

func NewURem(dst *value.Register, t types.Type, x, y value.Value, flags enum.ArithFlags) *BinaryInst {
	return NewBinary(OpURem, dst, t, x, y, flags)
}

func NewSRem(dst *value.Register, t types.Type, x, y value.Value, flags enum.ArithFlags) *BinaryInst {
	return NewBinary(OpSRem, dst, t, x, y, flags)
}

func NewFRem(dst *value.Register, t types.Type, x, y value.Value, flags enum.ArithFlags) *BinaryInst {
	return NewBinary(OpFRem, dst, t, x, y, flags)
}

func NewShl(dst *value.Register, t types.Type, x, y value.Value, flags enum.ArithFlags) *BinaryInst {
	return NewBinary(OpShl, dst, t, x, y, flags)
}

func NewLShr(dst *value.Register, t types.Type, x, y value.Value, flags enum.ArithFlags) *BinaryInst {
	return NewBinary(OpLShr, dst, t, x, y, flags)
}

func NewAShr(dst *value.Register, t types.Type, x, y value.Value, flags enum.ArithFlags) *BinaryInst {
	return NewBinary(OpAShr, dst, t, x, y, flags)
}

func NewAnd(dst *value.Register, t types.Type, x, y value.Value, flags enum.ArithFlags) *BinaryInst {
	return NewBinary(OpAnd, dst, t, x, y, flags)
}

func NewOr(dst *value.Register, t types.Type, x, y value.Value, flags enum.ArithFlags) *BinaryInst {
	return NewBinary(OpOr, dst, t, x, y, flags)
}

func NewXor(dst *value.Register, t types.Type, x, y value.Value, flags enum.ArithFlags) *BinaryInst {
	return NewBinary(OpXor, dst, t, x, y, flags)
}

// String renders "%dst = <op> [flags] <type> <x>, <y>". Flags are written
// as given, whether or not the opcode accepts them.
func (b *BinaryInst) String() string {
	return assign(b.Dst, b.Op.String(), b.Flags.String(), b.Type.String(), fmt.Sprintf("%s, %s", b.X, b.Y))
}

func NewExtractElement(dst *value.Register, vecType types.Type, vec value.Value, indexType types.Type, index value.Value) *ExtractElement {
	return &ExtractElement{Dst: dst, VecType: vecType, Vec: vec, IndexType: indexType, Index: index}
}

func (e *ExtractElement) String() string {
	return assign(e.Dst, "extractelement", typed(e.VecType, e.Vec)+",", typed(e.IndexType, e.Index))
}

func NewInsertElement(dst *value.Register, vecType types.Type, vec value.Value, elemType types.Type, elem value.Value, indexType types.Type, index value.Value) *InsertElement {
	return &InsertElement{
		Dst:       dst,
		VecType:   vecType,
		Vec:       vec,
		ElemType:  elemType,
		Elem:      elem,
		IndexType: indexType,
		Index:     index,
	}
}

func (e *InsertElement) String() string {
	return assign(e.Dst, "insertelement", typed(e.VecType, e.Vec)+",", typed(e.ElemType, e.Elem)+",", typed(e.IndexType, e.Index))
}

func NewExtractValue(dst *value.Register, t types.Type, agg value.Value, index int32) *ExtractValue {
	return &ExtractValue{Dst: dst, Type: t, Agg: agg, Index: index}
}

func (e *ExtractValue) String() string {
	return assign(e.Dst, "extractvalue", typed(e.Type, e.Agg)+",", fmt.Sprint(e.Index))
}

func NewInsertValue(dst *value.Register, t types.Type, agg value.Value, elemType types.Type, elem value.Value, index int32) *InsertValue {
	return &InsertValue{Dst: dst, Type: t, Agg: agg, ElemType: elemType, Elem: elem, Index: index}
}

func (e *InsertValue) String() string {
	return assign(e.Dst, "insertvalue", typed(e.Type, e.Agg)+",", typed(e.ElemType, e.Elem)+",", fmt.Sprint(e.Index))
}

func NewAlloca(dst *value.Register, t types.Type) *Alloca {
	return &Alloca{Dst: dst, Type: t}
}

func (a *Alloca) String() string {
	return assign(a.Dst, "alloca", a.Type.String())
}

func NewAllocaMultiple(dst *value.Register, t types.Type, count int32) *AllocaMultiple {
	return &AllocaMultiple{Dst: dst, Type: t, Count: count}
}

func (a *AllocaMultiple) String() string {
	return assign(a.Dst, "alloca", a.Type.String()+",", fmt.Sprintf("i32 %d", a.Count))
}

func NewLoad(dst *value.Register, t types.Type, ptr value.Value) *Load {
	return &Load{Dst: dst, Type: t, Ptr: ptr}
}

func (l *Load) String() string {
	return assign(l.Dst, "load", l.Type.String()+",", typed(types.Ptr, l.Ptr))
}

func NewStore(ptr value.Value, t types.Type, val value.Value) *Store {
	return &Store{Ptr: ptr, Type: t, Val: val}
}

func (s *Store) String() string {
	return fmt.Sprintf("store %s, %s", typed(s.Type, s.Val), typed(types.Ptr, s.Ptr))
}
