// Package llirconv imports entities built with github.com/llir/llvm into the
// lltext model, so front-ends that already construct IR with llir can render
// it through this emitter.
//
// Struct packing, type names and pointer address spaces are dropped; the
// model has no place for them. Variadic signatures, constant expressions and
// instructions outside the model are reported as errors.
package llirconv

import (
	"github.com/cockroachdb/errors"
	lltypes "github.com/llir/llvm/ir/types"

	"github.com/kartiknair/lltext/pkg/types"
)

func Type(t lltypes.Type) (types.Type, error) {
	switch t := t.(type) {
	case *lltypes.VoidType:
		return types.Void, nil
	case *lltypes.FuncType:
		if t.Variadic {
			return nil, errors.Newf("variadic function type %v", t)
		}
		ret, err := Type(t.RetType)
		if err != nil {
			return nil, errors.Wrap(err, "return type")
		}
		params, err := typeList(t.Params)
		if err != nil {
			return nil, err
		}
		return types.NewFunc(ret, params...), nil
	case *lltypes.IntType:
		return types.NewInt(int64(t.BitSize))
	case *lltypes.FloatType:
		return floatType(t)
	case *lltypes.PointerType:
		return types.Ptr, nil
	case *lltypes.VectorType:
		elem, err := Type(t.ElemType)
		if err != nil {
			return nil, errors.Wrap(err, "vector element")
		}
		return types.NewVector(t.Len, elem), nil
	case *lltypes.LabelType:
		return types.Label, nil
	case *lltypes.TokenType:
		return types.Token, nil
	case *lltypes.MetadataType:
		return types.Metadata, nil
	case *lltypes.ArrayType:
		elem, err := Type(t.ElemType)
		if err != nil {
			return nil, errors.Wrap(err, "array element")
		}
		return types.NewArray(elem), nil
	case *lltypes.StructType:
		if t.Opaque {
			return types.Opaque, nil
		}
		fields, err := typeList(t.Fields)
		if err != nil {
			return nil, err
		}
		return types.NewStruct(fields...), nil
	}

	return nil, errors.Newf("unsupported type %T", t)
}

func typeList(ts []lltypes.Type) ([]types.Type, error) {
	out := make([]types.Type, len(ts))
	for i, t := range ts {
		conv, err := Type(t)
		if err != nil {
			return nil, errors.Wrapf(err, "element %d", i)
		}
		out[i] = conv
	}
	return out, nil
}

func floatType(t *lltypes.FloatType) (types.Type, error) {
	switch t.Kind {
	case lltypes.FloatKindHalf:
		return types.Half, nil
	case lltypes.FloatKindFloat:
		return types.Float, nil
	case lltypes.FloatKindDouble:
		return types.Double, nil
	case lltypes.FloatKindFP128:
		return types.FP128, nil
	case lltypes.FloatKindX86_FP80:
		return types.X86_FP80, nil
	case lltypes.FloatKindPPC_FP128:
		return types.PPC_FP128, nil
	}

	return nil, errors.Newf("unsupported float kind %v", t.Kind)
}
