package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValueString(t *testing.T) {
	tests := []struct {
		v    Value
		want string
	}{
		{NewGlobal("main"), "@main"},
		{NewRegister("1"), "%1"},
		{NewRegister("x.addr"), "%x.addr"},
		{NewCString("Hello world!\x00"), `c"Hello world!\00"`},
		{NewCString("a\nb"), `c"a\0Ab"`},
		{NewCString(`say "hi" \o/`), `c"say \22hi\22 \5Co/"`},
		{&CString{Data: []byte{0xff, 0x7f}}, `c"\FF\7F"`},
		{NewCString(""), `c""`},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, tc.v.String())
	}
}

func TestIdentityByName(t *testing.T) {
	assert.True(t, NewRegister("a").Equals(NewRegister("a")))
	assert.False(t, NewRegister("a").Equals(NewRegister("b")))
	assert.False(t, NewRegister("a").Equals(nil))
	assert.True(t, NewGlobal("f").Equals(&Global{Name: "f"}))
}

func TestUnsanitizedNames(t *testing.T) {
	// Names are rendered as given.
	assert.Equal(t, "%a b", NewRegister("a b").String())
}
