// Package enum holds the keyword-valued attributes of functions and
// instructions.
package enum

import "fmt"

// Linkage is the linkage type of a global symbol. The zero value means no
// linkage keyword is written.
type Linkage int

const (
	LinkageNone Linkage = iota

	LinkagePrivate
	LinkageInternal
	LinkageAvailableExternally
	LinkageLinkOnce
	LinkageWeak
	LinkageCommon
	LinkageAppending
	LinkageExternWeak
	LinkageLinkOnceODR
	LinkageWeakODR
	LinkageExternal
)

func (l Linkage) String() string {
	switch l {
	case LinkageNone:
		return ""
	case LinkagePrivate:
		return "private"
	case LinkageInternal:
		return "internal"
	case LinkageAvailableExternally:
		return "available_externally"
	case LinkageLinkOnce:
		return "linkonce"
	case LinkageWeak:
		return "weak"
	case LinkageCommon:
		return "common"
	case LinkageAppending:
		return "appending"
	case LinkageExternWeak:
		return "extern_weak"
	case LinkageLinkOnceODR:
		return "linkonce_odr"
	case LinkageWeakODR:
		return "weak_odr"
	case LinkageExternal:
		return "external"
	}

	panic(fmt.Sprintf("invalid linkage %d", int(l)))
}

// CallingConvKind names a calling convention. CallingConvNumbered stands for
// the generic "cc N" form.
type CallingConvKind int

const (
	CallingConvNone CallingConvKind = iota

	CallingConvC
	CallingConvFast
	CallingConvCold
	CallingConvGHC
	CallingConvC11
	CallingConvAnyReg
	CallingConvPreserveMost
	CallingConvPreserveAll
	CallingConvPreserveNone
	CallingConvCXXFastTLS
	CallingConvTail
	CallingConvSwift
	CallingConvSwiftTail
	CallingConvCFGuardCheck
	CallingConvNumbered
)

// CallingConv is a calling convention. N is only meaningful for
// CallingConvNumbered. The zero value means no convention keyword is written.
type CallingConv struct {
	Kind CallingConvKind
	N    uint64
}

var (
	CallConvNone         = CallingConv{}
	CallConvC            = CallingConv{Kind: CallingConvC}
	CallConvFast         = CallingConv{Kind: CallingConvFast}
	CallConvCold         = CallingConv{Kind: CallingConvCold}
	CallConvGHC          = CallingConv{Kind: CallingConvGHC}
	CallConvC11          = CallingConv{Kind: CallingConvC11}
	CallConvAnyReg       = CallingConv{Kind: CallingConvAnyReg}
	CallConvPreserveMost = CallingConv{Kind: CallingConvPreserveMost}
	CallConvPreserveAll  = CallingConv{Kind: CallingConvPreserveAll}
	CallConvPreserveNone = CallingConv{Kind: CallingConvPreserveNone}
	CallConvCXXFastTLS   = CallingConv{Kind: CallingConvCXXFastTLS}
	CallConvTail         = CallingConv{Kind: CallingConvTail}
	CallConvSwift        = CallingConv{Kind: CallingConvSwift}
	CallConvSwiftTail    = CallingConv{Kind: CallingConvSwiftTail}
	CallConvCFGuardCheck = CallingConv{Kind: CallingConvCFGuardCheck}
)

// Numbered returns the generic "cc n" convention.
func Numbered(n uint64) CallingConv {
	return CallingConv{Kind: CallingConvNumbered, N: n}
}

func (cc CallingConv) String() string {
	switch cc.Kind {
	case CallingConvNone:
		return ""
	case CallingConvC:
		return "ccc"
	case CallingConvFast:
		return "fastcc"
	case CallingConvCold:
		return "coldcc"
	case CallingConvGHC:
		return "ghccc"
	case CallingConvC11:
		return "cc 11"
	case CallingConvAnyReg:
		return "anyregcc"
	case CallingConvPreserveMost:
		return "preserve_mostcc"
	case CallingConvPreserveAll:
		return "preserve_allcc"
	case CallingConvPreserveNone:
		return "preserve_nonecc"
	case CallingConvCXXFastTLS:
		return "cxx_fast_tlscc"
	case CallingConvTail:
		return "tailcc"
	case CallingConvSwift:
		return "swiftcc"
	case CallingConvSwiftTail:
		return "swifttailcc"
	case CallingConvCFGuardCheck:
		return "cfguard_checkcc"
	case CallingConvNumbered:
		return fmt.Sprintf("cc %d", cc.N)
	}

	panic(fmt.Sprintf("invalid calling convention kind %d", int(cc.Kind)))
}

// ID returns the numeric LLVM identifier of the convention, the N of its
// "cc N" spelling. An absent convention is the C convention.
func (cc CallingConv) ID() uint64 {
	switch cc.Kind {
	case CallingConvNone, CallingConvC:
		return 0
	case CallingConvFast:
		return 8
	case CallingConvCold:
		return 9
	case CallingConvGHC:
		return 10
	case CallingConvC11:
		return 11
	case CallingConvAnyReg:
		return 13
	case CallingConvPreserveMost:
		return 14
	case CallingConvPreserveAll:
		return 15
	case CallingConvSwift:
		return 16
	case CallingConvCXXFastTLS:
		return 17
	case CallingConvTail:
		return 18
	case CallingConvCFGuardCheck:
		return 19
	case CallingConvSwiftTail:
		return 20
	case CallingConvPreserveNone:
		return 21
	case CallingConvNumbered:
		return cc.N
	}

	panic(fmt.Sprintf("invalid calling convention kind %d", int(cc.Kind)))
}

// Equivalent reports whether cc and other select the same convention, e.g.
// the named C11 convention and Numbered(11).
func (cc CallingConv) Equivalent(other CallingConv) bool {
	return cc.ID() == other.ID()
}

// ArithFlags are the wrap flags of integer arithmetic instructions.
type ArithFlags int

const (
	WrapAllowed ArithFlags = iota
	NoUnsignedWrap
	NoSignedWrap
	NoSignedOrUnsignedWrap
)

func (f ArithFlags) String() string {
	switch f {
	case WrapAllowed:
		return ""
	case NoUnsignedWrap:
		return "nuw"
	case NoSignedWrap:
		return "nsw"
	case NoSignedOrUnsignedWrap:
		return "nsw nuw"
	}

	panic(fmt.Sprintf("invalid arithmetic flags %d", int(f)))
}
