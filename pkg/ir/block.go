package ir

import (
	"strings"

	"github.com/kartiknair/lltext/pkg/enum"
	"github.com/kartiknair/lltext/pkg/types"
	"github.com/kartiknair/lltext/pkg/value"
)

const indent = "    "

// Block is a labelled, ordered run of instructions. A well-formed block ends
// in a terminator; the model does not check this.
type Block struct {
	Label Label
	Insts []Instruction
}

func NewBlock(name string, insts ...Instruction) *Block {
	return &Block{Label: Label{Name: name}, Insts: append([]Instruction(nil), insts...)}
}

func (b *Block) String() string {
	lines := make([]string, len(b.Insts))
	for i, inst := range b.Insts {
		lines[i] = indent + inst.String()
	}
	return b.Label.Name + ":\n" + strings.Join(lines, "\n")
}

// Term returns the final instruction if it is a terminator.
func (b *Block) Term() (Terminator, bool) {
	if len(b.Insts) == 0 {
		return nil, false
	}
	term, ok := b.Insts[len(b.Insts)-1].(Terminator)
	return term, ok
}

func appendInst[T Instruction](b *Block, inst T) T {
	b.Insts = append(b.Insts, inst)
	return inst
}

func (b *Block) NewRet(t types.Type, v value.Value) *Ret {
	return appendInst(b, NewRet(t, v))
}

func (b *Block) NewRetVoid() *RetVoid {
	return appendInst(b, NewRetVoid())
}

func (b *Block) NewBr(cond value.Value, t, f Label) *Br {
	return appendInst(b, NewBr(cond, t, f))
}

func (b *Block) NewSwitch(t types.Type, v value.Value, def Label, cases ...SwitchCase) *Switch {
	return appendInst(b, NewSwitch(t, v, def, cases...))
}

func (b *Block) NewUnreachable() *Unreachable {
	return appendInst(b, NewUnreachable())
}

func (b *Block) NewFNeg(dst *value.Register, t types.Type, v value.Value) *FNeg {
	return appendInst(b, NewFNeg(dst, t, v))
}

func (b *Block) NewBinary(op BinaryOp, dst *value.Register, t types.Type, x, y value.Value, flags enum.ArithFlags) *BinaryInst {
	return appendInst(b, NewBinary(op, dst, t, x, y, flags))
}

func (b *Block) NewExtractElement(dst *value.Register, vecType types.Type, vec value.Value, indexType types.Type, index value.Value) *ExtractElement {
	return appendInst(b, NewExtractElement(dst, vecType, vec, indexType, index))
}

func (b *Block) NewInsertElement(dst *value.Register, vecType types.Type, vec value.Value, elemType types.Type, elem value.Value, indexType types.Type, index value.Value) *InsertElement {
	return appendInst(b, NewInsertElement(dst, vecType, vec, elemType, elem, indexType, index))
}

func (b *Block) NewExtractValue(dst *value.Register, t types.Type, agg value.Value, index int32) *ExtractValue {
	return appendInst(b, NewExtractValue(dst, t, agg, index))
}

func (b *Block) NewInsertValue(dst *value.Register, t types.Type, agg value.Value, elemType types.Type, elem value.Value, index int32) *InsertValue {
	return appendInst(b, NewInsertValue(dst, t, agg, elemType, elem, index))
}

func (b *Block) NewAlloca(dst *value.Register, t types.Type) *Alloca {
	return appendInst(b, NewAlloca(dst, t))
}

func (b *Block) NewAllocaMultiple(dst *value.Register, t types.Type, count int32) *AllocaMultiple {
	return appendInst(b, NewAllocaMultiple(dst, t, count))
}

func (b *Block) NewLoad(dst *value.Register, t types.Type, ptr value.Value) *Load {
	return appendInst(b, NewLoad(dst, t, ptr))
}

func (b *Block) NewStore(ptr value.Value, t types.Type, val value.Value) *Store {
	return appendInst(b, NewStore(ptr, t, val))
}
