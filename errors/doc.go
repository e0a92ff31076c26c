// Package errors provides the error taxonomy of the UDMF safety layer.
//
// Every boundary status is converted at the call site:
//
//	StatusErr          -> KindInternal
//	StatusInvalidParam -> KindInvalidParam
//	anything else      -> KindUnknown (Code carries the raw value)
//
// StatusOK is never an error; FromStatus panics on it. Use Check when the
// status may be a success:
//
//	if err := errors.Check("record.add-general-entry", st); err != nil {
//		return err
//	}
//
// Errors built locally (embedded NUL in a string argument, null handle from
// a constructor) use the same kinds, so callers test with errors.Is against
// the sentinels:
//
//	if errors.Is(err, udmferrors.ErrInvalidParam) { ... }
//
// The Builder is available for structured construction:
//
//	err := errors.New("plain-text.set-content", errors.KindInvalidParam).
//		Detail("content too long").
//		Build()
package errors
