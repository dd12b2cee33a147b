// Package ir models instructions, basic blocks, functions and modules, and
// renders them as LLVM-style text.
//
// Rendering only reads the tree, so any entity may be rendered from several
// goroutines at once. Nothing is validated: names, operand types and block
// structure are written as given.
package ir

import (
	"io"
	"strings"

	"github.com/kartiknair/lltext/pkg/types"
)

type Module struct {
	Funcs []*Func
}

func NewModule() *Module {
	return &Module{}
}

func (m *Module) NewFunc(name string, ret types.Type, params ...*Param) *Func {
	f := NewFunc(name, ret, params...)
	m.Funcs = append(m.Funcs, f)
	return f
}

// Func returns the first function with the given name. Names are not
// required to be unique.
func (m *Module) Func(name string) (*Func, bool) {
	for _, f := range m.Funcs {
		if f.Name == name {
			return f, true
		}
	}
	return nil, false
}

// String joins the functions with a blank line. A non-empty module ends in a
// newline.
func (m *Module) String() string {
	if len(m.Funcs) == 0 {
		return ""
	}
	funcs := make([]string, len(m.Funcs))
	for i, f := range m.Funcs {
		funcs[i] = f.String()
	}
	return strings.Join(funcs, "\n\n") + "\n"
}

func (m *Module) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, m.String())
	return int64(n), err
}
