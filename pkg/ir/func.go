package ir

import (
	"fmt"
	"strings"

	"github.com/kartiknair/lltext/pkg/enum"
	"github.com/kartiknair/lltext/pkg/types"
	"github.com/kartiknair/lltext/pkg/value"
)

type Param struct {
	Type types.Type
	Reg  *value.Register
}

func NewParam(t types.Type, name string) *Param {
	return &Param{Type: t, Reg: value.NewRegister(name)}
}

func (p *Param) String() string {
	return typed(p.Type, p.Reg)
}

// Func is a function definition, or a declaration when it has no blocks.
// Zero Linkage and CallingConv are left out of the output. A definition with
// parameters lists them after the name instead of using the bare @name form.
type Func struct {
	Name        string
	RetType     types.Type
	Params      []*Param
	Blocks      []*Block
	Linkage     enum.Linkage
	CallingConv enum.CallingConv
}

func NewFunc(name string, ret types.Type, params ...*Param) *Func {
	return &Func{Name: name, RetType: ret, Params: append([]*Param(nil), params...)}
}

func (f *Func) IsDeclaration() bool {
	return len(f.Blocks) == 0
}

// Sig returns the function's signature type.
func (f *Func) Sig() *types.FuncType {
	params := make([]types.Type, len(f.Params))
	for i, p := range f.Params {
		params[i] = p.Type
	}
	return types.NewFunc(f.RetType, params...)
}

func (f *Func) NewBlock(name string) *Block {
	b := NewBlock(name)
	f.Blocks = append(f.Blocks, b)
	return b
}

func (f *Func) paramList() string {
	params := make([]string, len(f.Params))
	for i, p := range f.Params {
		params[i] = p.String()
	}
	return "(" + strings.Join(params, ", ") + ")"
}

// String renders
//
//	declare [linkage] [cc] <ret> @name(<params>)
//
// for a declaration, and
//
//	define [linkage] [cc] <ret> @name[(<params>)] {
//	<blocks>
//	}
//
// for a definition. A definition without parameters has no parameter list.
func (f *Func) String() string {
	if f.IsDeclaration() {
		return tokens("declare", f.Linkage.String(), f.CallingConv.String(), f.RetType.String(), "@"+f.Name+f.paramList())
	}

	head := "@" + f.Name
	if len(f.Params) > 0 {
		head += f.paramList()
	}

	blocks := make([]string, len(f.Blocks))
	for i, b := range f.Blocks {
		blocks[i] = b.String()
	}

	return fmt.Sprintf(
		"%s\n%s\n}",
		tokens("define", f.Linkage.String(), f.CallingConv.String(), f.RetType.String(), head, "{"),
		strings.Join(blocks, "\n"),
	)
}
