package ir

import (
	"bytes"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/kartiknair/lltext/pkg/constant"
	"github.com/kartiknair/lltext/pkg/enum"
	"github.com/kartiknair/lltext/pkg/types"
)

func sampleModule() *Module {
	m := NewModule()

	puts := m.NewFunc("puts", types.I32, NewParam(types.Ptr, "s"))
	puts.Linkage = enum.LinkageExternal

	sel := m.NewFunc("select", types.I32, NewParam(types.I1, "c"), NewParam(types.I32, "a"), NewParam(types.I32, "b"))
	sel.Linkage = enum.LinkageInternal
	sel.CallingConv = enum.CallConvFast
	sel.NewBlock("entry").NewBr(reg("c"), Label{"then"}, Label{"else"})
	sel.NewBlock("then").NewRet(types.I32, reg("a"))
	els := sel.NewBlock("else")
	els.NewBinary(OpSub, reg("d"), types.I32, reg("b"), reg("a"), enum.NoSignedWrap)
	els.NewRet(types.I32, reg("d"))

	dispatch := m.NewFunc("dispatch", types.Void, NewParam(types.I32, "k"))
	dispatch.CallingConv = enum.Numbered(11)
	dispatch.NewBlock("entry").NewSwitch(types.I32, reg("k"), Label{"other"},
		SwitchCase{Type: types.I32, Value: constant.NewInt(0), Target: reg("zero")},
		SwitchCase{Type: types.I32, Value: constant.NewInt(1), Target: reg("one")},
	)
	dispatch.NewBlock("zero").NewRetVoid()
	dispatch.NewBlock("one").NewRetVoid()
	dispatch.NewBlock("other").NewUnreachable()

	m.NewFunc("abort", types.Void)

	return m
}

func TestModuleGolden(t *testing.T) {
	g := newGoldie(t)
	g.Assert(t, "module", []byte(sampleModule().String()))
}

func TestEmptyModule(t *testing.T) {
	assert.Equal(t, "", NewModule().String())
}

func TestModuleFunc(t *testing.T) {
	m := sampleModule()

	f, ok := m.Func("dispatch")
	require.True(t, ok)
	assert.Len(t, f.Blocks, 4)

	_, ok = m.Func("missing")
	assert.False(t, ok)
}

func TestModuleWriteTo(t *testing.T) {
	m := sampleModule()

	var buf bytes.Buffer
	n, err := m.WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, int64(buf.Len()), n)
	assert.Equal(t, m.String(), buf.String())
}

func TestWellFormedBlocksEndInTerminator(t *testing.T) {
	for _, f := range sampleModule().Funcs {
		for _, b := range f.Blocks {
			_, ok := b.Term()
			assert.True(t, ok, "%s: block %s", f.Name, b.Label.Name)
		}
	}
}

func TestRenderDeterministic(t *testing.T) {
	m := sampleModule()
	want := m.String()
	assert.Equal(t, want, m.String())

	var g errgroup.Group
	for i := 0; i < 32; i++ {
		g.Go(func() error {
			if got := m.String(); got != want {
				return errors.Newf("concurrent render differs:\n%s", got)
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
}
