// Package value defines operand references: globals, registers and C strings.
// Constants live in package constant and satisfy Value as well.
package value

import (
	"fmt"
	"strings"
)

// Value is anything that can appear as an instruction operand. String
// returns the operand text, without a type prefix.
type Value interface {
	isValue()
	String() string
}

// Global refers to a module-level symbol by name.
type Global struct {
	Name string
}

// Register refers to a local SSA value by name. Two registers with the same
// name denote the same value; uniqueness is up to the caller.
type Register struct {
	Name string
}

type CString struct {
	Data []byte
}

func (*Global) isValue()   {}
func (*Register) isValue() {}
func (*CString) isValue()  {}

// IsValue lets other packages join the closed set of operands.
type IsValue struct{}

func (IsValue) isValue() {}

func NewGlobal(name string) *Global {
	return &Global{Name: name}
}

func NewRegister(name string) *Register {
	return &Register{Name: name}
}

func NewCString(s string) *CString {
	return &CString{Data: []byte(s)}
}

func (g *Global) String() string {
	return "@" + g.Name
}

func (g *Global) Equals(other *Global) bool {
	return other != nil && g.Name == other.Name
}

func (r *Register) String() string {
	return "%" + r.Name
}

func (r *Register) Equals(other *Register) bool {
	return other != nil && r.Name == other.Name
}

func (c *CString) String() string {
	return "c" + Quote(c.Data)
}

// Quote renders b as an LLVM string literal. Printable ASCII other than the
// quote and the backslash is kept; every other byte becomes \XX.
func Quote(b []byte) string {
	var out strings.Builder
	out.WriteByte('"')
	for _, c := range b {
		if ' ' <= c && c <= '~' && c != '"' && c != '\\' {
			out.WriteByte(c)
		} else {
			fmt.Fprintf(&out, "\\%02X", c)
		}
	}
	out.WriteByte('"')
	return out.String()
}
