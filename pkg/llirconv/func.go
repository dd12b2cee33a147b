package llirconv

import (
	"math"

	"github.com/cockroachdb/errors"
	llir "github.com/llir/llvm/ir"
	llconstant "github.com/llir/llvm/ir/constant"
	llvalue "github.com/llir/llvm/ir/value"

	"github.com/kartiknair/lltext/pkg/constant"
	"github.com/kartiknair/lltext/pkg/enum"
	"github.com/kartiknair/lltext/pkg/ir"
	"github.com/kartiknair/lltext/pkg/types"
	"github.com/kartiknair/lltext/pkg/value"
)

// Module converts the functions of m. Globals, type definitions and metadata
// are not part of the model and are skipped.
func Module(m *llir.Module) (*ir.Module, error) {
	out := ir.NewModule()
	for _, f := range m.Funcs {
		conv, err := Func(f)
		if err != nil {
			return nil, errors.Wrapf(err, "function @%s", f.Name())
		}
		out.Funcs = append(out.Funcs, conv)
	}
	return out, nil
}

// Func converts a function declaration or definition. Unnamed parameters,
// blocks and results receive llir's sequential IDs first.
func Func(f *llir.Func) (*ir.Func, error) {
	if err := f.AssignIDs(); err != nil {
		return nil, errors.Wrap(err, "assign ids")
	}
	if f.Sig.Variadic {
		return nil, errors.New("variadic functions are not supported")
	}

	ret, err := Type(f.Sig.RetType)
	if err != nil {
		return nil, errors.Wrap(err, "return type")
	}
	linkage, err := Linkage(f.Linkage)
	if err != nil {
		return nil, err
	}

	out := &ir.Func{
		Name:        f.Name(),
		RetType:     ret,
		Linkage:     linkage,
		CallingConv: CallingConv(f.CallingConv),
	}
	for _, p := range f.Params {
		t, err := Type(p.Typ)
		if err != nil {
			return nil, errors.Wrapf(err, "param %%%s", p.Name())
		}
		out.Params = append(out.Params, ir.NewParam(t, p.Name()))
	}
	for _, b := range f.Blocks {
		conv, err := Block(b)
		if err != nil {
			return nil, errors.Wrapf(err, "block %%%s", b.Name())
		}
		out.Blocks = append(out.Blocks, conv)
	}
	return out, nil
}

func Block(b *llir.Block) (*ir.Block, error) {
	out := ir.NewBlock(b.Name())
	for i, inst := range b.Insts {
		conv, err := Inst(inst)
		if err != nil {
			return nil, errors.Wrapf(err, "instruction %d", i)
		}
		out.Insts = append(out.Insts, conv)
	}
	if b.Term != nil {
		term, err := Term(b.Term)
		if err != nil {
			return nil, errors.Wrap(err, "terminator")
		}
		out.Insts = append(out.Insts, term)
	}
	return out, nil
}

func operand(v llvalue.Value) (types.Type, value.Value, error) {
	if v == nil {
		return nil, nil, errors.New("missing operand")
	}
	t, err := Type(v.Type())
	if err != nil {
		return nil, nil, err
	}
	conv, err := Value(v)
	if err != nil {
		return nil, nil, err
	}
	return t, conv, nil
}

func dst(n named) *value.Register {
	return value.NewRegister(n.Name())
}

func binary(op ir.BinaryOp, n named, x, y llvalue.Value, fl enum.ArithFlags) (ir.Instruction, error) {
	t, xv, err := operand(x)
	if err != nil {
		return nil, errors.Wrapf(err, "%s lhs", op)
	}
	_, yv, err := operand(y)
	if err != nil {
		return nil, errors.Wrapf(err, "%s rhs", op)
	}
	return ir.NewBinary(op, dst(n), t, xv, yv, fl), nil
}

func aggIndex(indices []uint64) (int32, error) {
	if len(indices) != 1 {
		return 0, errors.Newf("%d aggregate indices, only one is supported", len(indices))
	}
	if indices[0] > math.MaxInt32 {
		return 0, errors.Newf("aggregate index %d out of range", indices[0])
	}
	return int32(indices[0]), nil
}

// Inst converts a non-terminator instruction. Fast-math and exact flags are
// dropped.
func Inst(inst llir.Instruction) (ir.Instruction, error) {
	switch inst := inst.(type) {
	case *llir.InstFNeg:
		t, x, err := operand(inst.X)
		if err != nil {
			return nil, errors.Wrap(err, "fneg")
		}
		return ir.NewFNeg(dst(inst), t, x), nil
	case *llir.InstAdd:
		return binary(ir.OpAdd, inst, inst.X, inst.Y, flags(inst.OverflowFlags))
	case *llir.InstFAdd:
		return binary(ir.OpFAdd, inst, inst.X, inst.Y, enum.WrapAllowed)
	case *llir.InstSub:
		return binary(ir.OpSub, inst, inst.X, inst.Y, flags(inst.OverflowFlags))
	case *llir.InstFSub:
		return binary(ir.OpFSub, inst, inst.X, inst.Y, enum.WrapAllowed)
	case *llir.InstMul:
		return binary(ir.OpMul, inst, inst.X, inst.Y, flags(inst.OverflowFlags))
	case *llir.InstFMul:
		return binary(ir.OpFMul, inst, inst.X, inst.Y, enum.WrapAllowed)
	case *llir.InstUDiv:
		return binary(ir.OpUDiv, inst, inst.X, inst.Y, enum.WrapAllowed)
	case *llir.InstSDiv:
		return binary(ir.OpSDiv, inst, inst.X, inst.Y, enum.WrapAllowed)
	case *llir.InstFDiv:
		return binary(ir.OpFDiv, inst, inst.X, inst.Y, enum.WrapAllowed)
	case *llir.InstURem:
		return binary(ir.OpURem, inst, inst.X, inst.Y, enum.WrapAllowed)
	case *llir.InstSRem:
		return binary(ir.OpSRem, inst, inst.X, inst.Y, enum.WrapAllowed)
	case *llir.InstFRem:
		return binary(ir.OpFRem, inst, inst.X, inst.Y, enum.WrapAllowed)
	case *llir.InstShl:
		return binary(ir.OpShl, inst, inst.X, inst.Y, flags(inst.OverflowFlags))
	case *llir.InstLShr:
		return binary(ir.OpLShr, inst, inst.X, inst.Y, enum.WrapAllowed)
	case *llir.InstAShr:
		return binary(ir.OpAShr, inst, inst.X, inst.Y, enum.WrapAllowed)
	case *llir.InstAnd:
		return binary(ir.OpAnd, inst, inst.X, inst.Y, enum.WrapAllowed)
	case *llir.InstOr:
		return binary(ir.OpOr, inst, inst.X, inst.Y, enum.WrapAllowed)
	case *llir.InstXor:
		return binary(ir.OpXor, inst, inst.X, inst.Y, enum.WrapAllowed)
	case *llir.InstExtractElement:
		vt, vec, err := operand(inst.X)
		if err != nil {
			return nil, errors.Wrap(err, "extractelement vector")
		}
		it, idx, err := operand(inst.Index)
		if err != nil {
			return nil, errors.Wrap(err, "extractelement index")
		}
		return ir.NewExtractElement(dst(inst), vt, vec, it, idx), nil
	case *llir.InstInsertElement:
		vt, vec, err := operand(inst.X)
		if err != nil {
			return nil, errors.Wrap(err, "insertelement vector")
		}
		et, elem, err := operand(inst.Elem)
		if err != nil {
			return nil, errors.Wrap(err, "insertelement element")
		}
		it, idx, err := operand(inst.Index)
		if err != nil {
			return nil, errors.Wrap(err, "insertelement index")
		}
		return ir.NewInsertElement(dst(inst), vt, vec, et, elem, it, idx), nil
	case *llir.InstExtractValue:
		at, agg, err := operand(inst.X)
		if err != nil {
			return nil, errors.Wrap(err, "extractvalue aggregate")
		}
		idx, err := aggIndex(inst.Indices)
		if err != nil {
			return nil, err
		}
		return ir.NewExtractValue(dst(inst), at, agg, idx), nil
	case *llir.InstInsertValue:
		at, agg, err := operand(inst.X)
		if err != nil {
			return nil, errors.Wrap(err, "insertvalue aggregate")
		}
		et, elem, err := operand(inst.Elem)
		if err != nil {
			return nil, errors.Wrap(err, "insertvalue element")
		}
		idx, err := aggIndex(inst.Indices)
		if err != nil {
			return nil, err
		}
		return ir.NewInsertValue(dst(inst), at, agg, et, elem, idx), nil
	case *llir.InstAlloca:
		return alloca(inst)
	case *llir.InstLoad:
		t, err := Type(inst.ElemType)
		if err != nil {
			return nil, errors.Wrap(err, "load type")
		}
		ptr, err := Value(inst.Src)
		if err != nil {
			return nil, errors.Wrap(err, "load source")
		}
		return ir.NewLoad(dst(inst), t, ptr), nil
	case *llir.InstStore:
		t, val, err := operand(inst.Src)
		if err != nil {
			return nil, errors.Wrap(err, "store value")
		}
		ptr, err := Value(inst.Dst)
		if err != nil {
			return nil, errors.Wrap(err, "store destination")
		}
		return ir.NewStore(ptr, t, val), nil
	}

	return nil, errors.Newf("unsupported instruction %T", inst)
}

func alloca(inst *llir.InstAlloca) (ir.Instruction, error) {
	t, err := Type(inst.ElemType)
	if err != nil {
		return nil, errors.Wrap(err, "alloca type")
	}
	if inst.NElems == nil {
		return ir.NewAlloca(dst(inst), t), nil
	}

	n, ok := inst.NElems.(*llconstant.Int)
	if !ok {
		return nil, errors.Newf("alloca with non-constant count %T", inst.NElems)
	}
	if !n.X.IsInt64() || n.X.Int64() < 0 || n.X.Int64() > math.MaxInt32 {
		return nil, errors.Newf("alloca count %s out of range", n.X)
	}
	return ir.NewAllocaMultiple(dst(inst), t, int32(n.X.Int64())), nil
}

// Term converts a block terminator. An unconditional branch becomes a
// conditional one on true with both targets equal.
func Term(term llir.Terminator) (ir.Instruction, error) {
	switch term := term.(type) {
	case *llir.TermRet:
		if term.X == nil {
			return ir.NewRetVoid(), nil
		}
		t, v, err := operand(term.X)
		if err != nil {
			return nil, errors.Wrap(err, "ret")
		}
		return ir.NewRet(t, v), nil
	case *llir.TermBr:
		target, err := label(term.Target)
		if err != nil {
			return nil, err
		}
		return ir.NewBr(constant.True, target, target), nil
	case *llir.TermCondBr:
		cond, err := Value(term.Cond)
		if err != nil {
			return nil, errors.Wrap(err, "br condition")
		}
		t, err := label(term.TargetTrue)
		if err != nil {
			return nil, err
		}
		f, err := label(term.TargetFalse)
		if err != nil {
			return nil, err
		}
		return ir.NewBr(cond, t, f), nil
	case *llir.TermSwitch:
		t, x, err := operand(term.X)
		if err != nil {
			return nil, errors.Wrap(err, "switch value")
		}
		def, err := label(term.TargetDefault)
		if err != nil {
			return nil, err
		}
		cases := make([]ir.SwitchCase, len(term.Cases))
		for i, c := range term.Cases {
			ct, cv, err := operand(c.X)
			if err != nil {
				return nil, errors.Wrapf(err, "switch case %d", i)
			}
			target, err := label(c.Target)
			if err != nil {
				return nil, errors.Wrapf(err, "switch case %d", i)
			}
			cases[i] = ir.SwitchCase{Type: ct, Value: cv, Target: value.NewRegister(target.Name)}
		}
		return ir.NewSwitch(t, x, def, cases...), nil
	case *llir.TermUnreachable:
		return ir.NewUnreachable(), nil
	}

	return nil, errors.Newf("unsupported terminator %T", term)
}
