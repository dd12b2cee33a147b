package ir

import (
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kartiknair/lltext/pkg/constant"
	"github.com/kartiknair/lltext/pkg/enum"
	"github.com/kartiknair/lltext/pkg/types"
)

func newGoldie(t *testing.T) *goldie.Goldie {
	t.Helper()

	return goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
}

func mainFunc() *Func {
	return &Func{
		Name:    "main",
		RetType: types.I32,
		Linkage: enum.LinkagePrivate,
		Blocks: []*Block{
			NewBlock("entry",
				NewAlloca(reg("1"), types.I32),
				NewStore(reg("1"), types.I32, constant.NewInt(10)),
				NewLoad(reg("2"), types.I32, reg("1")),
				NewRet(types.I32, reg("2")),
			),
		},
	}
}

func TestMainFunction(t *testing.T) {
	want := strings.Join([]string{
		"define private i32 @main {",
		"entry:",
		"    %1 = alloca i32",
		"    store i32 10, ptr %1",
		"    %2 = load i32, ptr %1",
		"    ret i32 %2",
		"}",
	}, "\n")

	assert.Equal(t, want, mainFunc().String())
}

func TestBlockString(t *testing.T) {
	insts := []Instruction{
		NewAlloca(reg("1"), types.I32),
		NewRetVoid(),
		NewAlloca(reg("1"), types.I32),
	}
	b := NewBlock("bb0", insts...)

	want := "bb0:\n"
	for i, inst := range insts {
		if i > 0 {
			want += "\n"
		}
		want += "    " + inst.String()
	}
	assert.Equal(t, want, b.String())

	assert.Equal(t, "empty:\n", NewBlock("empty").String())
}

func TestBlockTerm(t *testing.T) {
	f := mainFunc()
	for _, b := range f.Blocks {
		term, ok := b.Term()
		require.True(t, ok, "block %s does not end in a terminator", b.Label.Name)
		assert.Equal(t, "ret i32 %2", term.String())
	}

	_, ok := NewBlock("empty").Term()
	assert.False(t, ok)

	_, ok = NewBlock("open", NewAlloca(reg("x"), types.I8)).Term()
	assert.False(t, ok)
}

func TestDeclaration(t *testing.T) {
	tests := []struct {
		name string
		f    *Func
		want string
	}{
		{
			"bare",
			NewFunc("abort", types.Void),
			"declare void @abort()",
		},
		{
			"params",
			NewFunc("puts", types.I32, NewParam(types.Ptr, "s")),
			"declare i32 @puts(ptr %s)",
		},
		{
			"linkage and cc",
			&Func{
				Name:        "f",
				RetType:     types.Double,
				Params:      []*Param{NewParam(types.I32, "a"), NewParam(types.Float, "b")},
				Linkage:     enum.LinkageExternWeak,
				CallingConv: enum.CallConvFast,
			},
			"declare extern_weak fastcc double @f(i32 %a, float %b)",
		},
		{
			"cc only",
			&Func{Name: "g", RetType: types.Void, CallingConv: enum.Numbered(64)},
			"declare cc 64 void @g()",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.True(t, tc.f.IsDeclaration())
			got := tc.f.String()
			assert.Equal(t, tc.want, got)
			assert.NotContains(t, got, "{")
			assert.NotContains(t, got, "  ")
		})
	}
}

func TestDefinitionAlwaysHasBody(t *testing.T) {
	for _, l := range []enum.Linkage{enum.LinkageNone, enum.LinkageInternal, enum.LinkageWeakODR} {
		f := &Func{Name: "f", RetType: types.Void, Linkage: l, CallingConv: enum.CallConvC11}
		f.NewBlock("entry").NewRetVoid()

		got := f.String()
		assert.False(t, f.IsDeclaration())
		assert.True(t, strings.HasPrefix(got, "define "), got)
		assert.True(t, strings.HasSuffix(got, "\n}"), got)
		header := strings.SplitN(got, "\n", 2)[0]
		assert.NotContains(t, header, "  ")
	}
}

func TestC11AndNumbered11RenderAlike(t *testing.T) {
	named := NewFunc("f", types.Void)
	named.CallingConv = enum.CallConvC11
	numbered := NewFunc("f", types.Void)
	numbered.CallingConv = enum.Numbered(11)

	assert.Equal(t, "declare cc 11 void @f()", named.String())
	assert.Equal(t, named.String(), numbered.String())
}

func TestSig(t *testing.T) {
	f := NewFunc("f", types.I32, NewParam(types.I8, "a"), NewParam(types.Ptr, "b"))
	assert.Equal(t, "i32(i8, ptr)", f.Sig().String())
}

func TestFunctionGolden(t *testing.T) {
	f := &Func{
		Name:        "clamp",
		RetType:     types.I32,
		Params:      []*Param{NewParam(types.I1, "over"), NewParam(types.I32, "x"), NewParam(types.I32, "max")},
		Linkage:     enum.LinkageInternal,
		CallingConv: enum.CallConvFast,
	}

	entry := f.NewBlock("entry")
	entry.NewBr(reg("over"), Label{"high"}, Label{"ok"})

	high := f.NewBlock("high")
	high.NewRet(types.I32, reg("max"))

	ok := f.NewBlock("ok")
	ok.NewBinary(OpMul, reg("twice"), types.I32, reg("x"), constant.NewInt(2), enum.NoSignedWrap)
	ok.NewBinary(OpAShr, reg("half"), types.I32, reg("twice"), constant.NewInt(1), enum.WrapAllowed)
	ok.NewRet(types.I32, reg("half"))

	g := newGoldie(t)
	g.Assert(t, "clamp", []byte(f.String()+"\n"))
}

func TestAggregateFunctionGolden(t *testing.T) {
	vec := types.NewVector(4, types.Float)
	pair := types.NewStruct(types.I32, types.Double)

	f := NewFunc("shuffle", types.Float, NewParam(vec, "v"), NewParam(pair, "p"))
	b := f.NewBlock("entry")
	b.NewAllocaMultiple(reg("scratch"), types.Float, 4)
	b.NewExtractElement(reg("e"), vec, reg("v"), types.I32, constant.NewInt(2))
	b.NewFNeg(reg("n"), types.Float, reg("e"))
	b.NewInsertElement(reg("w"), vec, reg("v"), types.Float, reg("n"), types.I32, constant.NewInt(0))
	b.NewExtractValue(reg("d"), pair, reg("p"), 1)
	b.NewInsertValue(reg("q"), pair, reg("p"), types.I32, constant.NewInt(-1), 0)
	b.NewStore(reg("scratch"), types.Float, constant.NewFloat(0.5))
	b.NewLoad(reg("r"), types.Float, reg("scratch"))
	b.NewBinary(OpFAdd, reg("s"), types.Float, reg("r"), reg("n"), enum.WrapAllowed)
	b.NewRet(types.Float, reg("s"))

	g := newGoldie(t)
	g.Assert(t, "shuffle", []byte(f.String()+"\n"))
}
