package errors

import (
	"fmt"
	"strings"

	"github.com/wippyai/udmf/abi"
)

// Kind categorizes the error
type Kind string

const (
	KindInternal     Kind = "internal"      // boundary reported generic failure
	KindInvalidParam Kind = "invalid_param" // unmarshallable or rejected argument
	KindUnknown      Kind = "unknown_code"  // status outside the known set
)

// Sentinels for errors.Is. They match any *Error of the same Kind.
var (
	ErrInternal     = &Error{Kind: KindInternal}
	ErrInvalidParam = &Error{Kind: KindInvalidParam}
	ErrUnknown      = &Error{Kind: KindUnknown}
)

// Error is the structured error returned by every fallible operation.
type Error struct {
	Value  any
	Cause  error
	Op     string
	Kind   Kind
	Detail string
	Code   uint32
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	if e.Op != "" {
		b.WriteByte('[')
		b.WriteString(e.Op)
		b.WriteString("] ")
	}
	b.WriteString(string(e.Kind))

	if e.Code != 0 {
		fmt.Fprintf(&b, " (code %d)", e.Code)
	}

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target is an *Error of the same Kind
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Kind == t.Kind
	}
	return false
}

// Status returns the boundary status this error corresponds to.
func (e *Error) Status() abi.Status {
	switch e.Kind {
	case KindInvalidParam:
		return abi.StatusInvalidParam
	case KindUnknown:
		return abi.Status(e.Code)
	default:
		return abi.StatusErr
	}
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(op string, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Op:   op,
			Kind: kind,
		},
	}
}

// Code sets the boundary status code
func (b *Builder) Code(code uint32) *Builder {
	b.err.Code = code
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// FromStatus converts a non-success boundary status.
// Passing StatusOK is a caller bug and panics.
func FromStatus(op string, st abi.Status) *Error {
	switch st {
	case abi.StatusOK:
		panic("errors: StatusOK is not an error")
	case abi.StatusErr:
		return &Error{Op: op, Kind: KindInternal, Code: uint32(st)}
	case abi.StatusInvalidParam:
		return &Error{Op: op, Kind: KindInvalidParam, Code: uint32(st)}
	default:
		return &Error{Op: op, Kind: KindUnknown, Code: uint32(st)}
	}
}

// Check returns nil for StatusOK and the converted error otherwise.
func Check(op string, st abi.Status) error {
	if st == abi.StatusOK {
		return nil
	}
	return FromStatus(op, st)
}

// Convenience constructors for common error patterns

// NullHandle creates the error for a constructor that returned a null handle
func NullHandle(op string, kind abi.Kind) *Error {
	return &Error{
		Op:     op,
		Kind:   KindInternal,
		Detail: fmt.Sprintf("boundary returned null %s handle", kind),
	}
}

// EmbeddedNUL creates the error for a string that cannot be NUL-terminated
func EmbeddedNUL(op string, s string, at int) *Error {
	preview := s
	if len(preview) > 32 {
		preview = preview[:32]
	}
	return &Error{
		Op:     op,
		Kind:   KindInvalidParam,
		Detail: fmt.Sprintf("embedded NUL at byte %d in %q", at, preview),
		Value:  s,
	}
}

// NilType creates the error for a missing type identifier
func NilType(op string) *Error {
	return &Error{
		Op:     op,
		Kind:   KindInvalidParam,
		Detail: "nil type",
	}
}

// Marshal wraps a failure to stage an argument in boundary memory
func Marshal(op string, cause error) *Error {
	return &Error{
		Op:     op,
		Kind:   KindInternal,
		Detail: "stage argument",
		Cause:  cause,
	}
}

// Memory wraps a failure to read a result from boundary memory
func Memory(op string, cause error) *Error {
	return &Error{
		Op:     op,
		Kind:   KindInternal,
		Detail: "read result",
		Cause:  cause,
	}
}
