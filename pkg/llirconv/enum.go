package llirconv

import (
	"github.com/cockroachdb/errors"
	llenum "github.com/llir/llvm/ir/enum"

	"github.com/kartiknair/lltext/pkg/enum"
)

func Linkage(l llenum.Linkage) (enum.Linkage, error) {
	switch l {
	case llenum.LinkageNone:
		return enum.LinkageNone, nil
	case llenum.LinkagePrivate:
		return enum.LinkagePrivate, nil
	case llenum.LinkageInternal:
		return enum.LinkageInternal, nil
	case llenum.LinkageAvailableExternally:
		return enum.LinkageAvailableExternally, nil
	case llenum.LinkageLinkOnce:
		return enum.LinkageLinkOnce, nil
	case llenum.LinkageWeak:
		return enum.LinkageWeak, nil
	case llenum.LinkageCommon:
		return enum.LinkageCommon, nil
	case llenum.LinkageAppending:
		return enum.LinkageAppending, nil
	case llenum.LinkageExternWeak:
		return enum.LinkageExternWeak, nil
	case llenum.LinkageLinkOnceODR:
		return enum.LinkageLinkOnceODR, nil
	case llenum.LinkageWeakODR:
		return enum.LinkageWeakODR, nil
	case llenum.LinkageExternal:
		return enum.LinkageExternal, nil
	}

	return enum.LinkageNone, errors.Newf("unsupported linkage %v", l)
}

// CallingConv maps an llir calling convention. llir moves ccc to 1 so that
// zero can mean "none"; every other value is the LLVM number, and conventions
// without a keyword here come out in the numbered form.
func CallingConv(cc llenum.CallingConv) enum.CallingConv {
	switch cc {
	case llenum.CallingConvNone:
		return enum.CallConvNone
	case llenum.CallingConvC:
		return enum.CallConvC
	case llenum.CallingConvFast:
		return enum.CallConvFast
	case llenum.CallingConvCold:
		return enum.CallConvCold
	case llenum.CallingConvGHC:
		return enum.CallConvGHC
	case llenum.CallingConvHiPE:
		return enum.CallConvC11
	case llenum.CallingConvAnyReg:
		return enum.CallConvAnyReg
	case llenum.CallingConvPreserveMost:
		return enum.CallConvPreserveMost
	case llenum.CallingConvPreserveAll:
		return enum.CallConvPreserveAll
	case llenum.CallingConvSwift:
		return enum.CallConvSwift
	case llenum.CallingConvCXXFastTLS:
		return enum.CallConvCXXFastTLS
	case llenum.CallingConvTail:
		return enum.CallConvTail
	case llenum.CallingConvCFGuardCheck:
		return enum.CallConvCFGuardCheck
	}

	return enum.Numbered(uint64(cc))
}

func flags(fs []llenum.OverflowFlag) enum.ArithFlags {
	var nsw, nuw bool
	for _, f := range fs {
		switch f {
		case llenum.OverflowFlagNSW:
			nsw = true
		case llenum.OverflowFlagNUW:
			nuw = true
		}
	}

	switch {
	case nsw && nuw:
		return enum.NoSignedOrUnsignedWrap
	case nsw:
		return enum.NoSignedWrap
	case nuw:
		return enum.NoUnsignedWrap
	}
	return enum.WrapAllowed
}
