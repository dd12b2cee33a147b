package llirconv

import (
	"math"

	"github.com/cockroachdb/errors"
	llir "github.com/llir/llvm/ir"
	llconstant "github.com/llir/llvm/ir/constant"
	llvalue "github.com/llir/llvm/ir/value"

	"github.com/kartiknair/lltext/pkg/constant"
	"github.com/kartiknair/lltext/pkg/ir"
	"github.com/kartiknair/lltext/pkg/value"
)

// named is satisfied by every llir entity with a local or global identifier.
type named interface {
	Name() string
}

// Value converts an operand. Globals and functions become value.Global,
// constants are converted with Constant, and any other named value
// (parameters, instruction results) becomes a value.Register.
func Value(v llvalue.Value) (value.Value, error) {
	switch v := v.(type) {
	case nil:
		return nil, errors.New("nil value")
	case *llir.Global:
		return value.NewGlobal(v.Name()), nil
	case *llir.Func:
		return value.NewGlobal(v.Name()), nil
	case llconstant.Constant:
		return Constant(v)
	case named:
		return value.NewRegister(v.Name()), nil
	}

	return nil, errors.Newf("unsupported value %T", v)
}

func label(v llvalue.Value) (ir.Label, error) {
	if n, ok := v.(named); ok {
		return ir.Label{Name: n.Name()}, nil
	}
	return ir.Label{}, errors.Newf("branch target %T is not a block", v)
}

// Constant converts a constant operand. i1 integers become booleans and
// character arrays become C strings.
func Constant(c llconstant.Constant) (value.Value, error) {
	switch c := c.(type) {
	case *llconstant.Int:
		if c.Typ.BitSize == 1 {
			return constant.NewBool(c.X.Sign() != 0), nil
		}
		return constant.NewIntFromBig(c.X)
	case *llconstant.Float:
		if c.NaN {
			return constant.NewFloat(math.NaN()), nil
		}
		x, _ := c.X.Float64()
		return constant.NewFloat(x), nil
	case *llconstant.Null:
		return constant.NewNull(), nil
	case *llconstant.Undef:
		return constant.NewUndef(), nil
	case *llconstant.Poison:
		return constant.NewPoison(), nil
	case *llconstant.CharArray:
		return &value.CString{Data: append([]byte(nil), c.X...)}, nil
	case *llconstant.Struct:
		elems, err := elements(c.Fields)
		if err != nil {
			return nil, errors.Wrap(err, "struct constant")
		}
		return constant.NewStruct(elems...), nil
	case *llconstant.Array:
		elems, err := elements(c.Elems)
		if err != nil {
			return nil, errors.Wrap(err, "array constant")
		}
		return constant.NewArray(elems...), nil
	case *llconstant.Vector:
		elems, err := elements(c.Elems)
		if err != nil {
			return nil, errors.Wrap(err, "vector constant")
		}
		return constant.NewVector(elems...), nil
	case *llconstant.BlockAddress:
		fn, ok := c.Func.(named)
		if !ok {
			return nil, errors.Newf("blockaddress of %T", c.Func)
		}
		block, err := label(c.Block)
		if err != nil {
			return nil, err
		}
		return constant.NewBlockAddress(fn.Name(), block.Name), nil
	}

	return nil, errors.Newf("unsupported constant %T", c)
}

func elements(cs []llconstant.Constant) ([]constant.Element, error) {
	out := make([]constant.Element, len(cs))
	for i, c := range cs {
		t, err := Type(c.Type())
		if err != nil {
			return nil, errors.Wrapf(err, "element %d", i)
		}
		v, err := Value(c)
		if err != nil {
			return nil, errors.Wrapf(err, "element %d", i)
		}
		out[i] = constant.Element{Type: t, Value: v}
	}
	return out, nil
}
