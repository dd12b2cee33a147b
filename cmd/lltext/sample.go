package main

import (
	"github.com/cockroachdb/errors"
	llir "github.com/llir/llvm/ir"
	llconstant "github.com/llir/llvm/ir/constant"
	llenum "github.com/llir/llvm/ir/enum"
	lltypes "github.com/llir/llvm/ir/types"

	"github.com/kartiknair/lltext/pkg/constant"
	"github.com/kartiknair/lltext/pkg/enum"
	"github.com/kartiknair/lltext/pkg/ir"
	"github.com/kartiknair/lltext/pkg/llirconv"
	"github.com/kartiknair/lltext/pkg/types"
	"github.com/kartiknair/lltext/pkg/value"
)

// sampleModule builds a module that declares puts and defines a main that
// stores 10 into a stack slot and returns it.
func sampleModule() *ir.Module {
	m := ir.NewModule()
	m.NewFunc("puts", types.I32, ir.NewParam(types.Ptr, "s"))

	fn := m.NewFunc("main", types.I32)
	fn.Linkage = enum.LinkagePrivate

	slot := value.NewRegister("1")
	loaded := value.NewRegister("2")

	entry := fn.NewBlock("entry")
	entry.NewAlloca(slot, types.I32)
	entry.NewStore(slot, types.I32, constant.NewInt(10))
	entry.NewLoad(loaded, types.I32, slot)
	entry.NewRet(types.I32, loaded)

	return m
}

// sampleLLIR builds the same program with llir and imports it. llir numbers
// unnamed values from zero.
func sampleLLIR() (*ir.Module, error) {
	m := llir.NewModule()
	m.NewFunc("puts", lltypes.I32, llir.NewParam("s", lltypes.I8Ptr))

	fn := m.NewFunc("main", lltypes.I32)
	fn.Linkage = llenum.LinkagePrivate

	entry := fn.NewBlock("entry")
	slot := entry.NewAlloca(lltypes.I32)
	entry.NewStore(llconstant.NewInt(lltypes.I32, 10), slot)
	loaded := entry.NewLoad(lltypes.I32, slot)
	entry.NewRet(loaded)

	conv, err := llirconv.Module(m)
	if err != nil {
		return nil, errors.Wrap(err, "import llir module")
	}
	return conv, nil
}
