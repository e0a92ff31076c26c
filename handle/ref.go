// Package handle wraps raw library handles with an ownership mode.
//
// An owning Ref destroys its handle exactly once, on Close. A borrowed Ref
// aliases a handle owned by some container object and never destroys it;
// it must not be used after the container is closed.
//
// There is no finalizer. Owners must be closed explicitly:
//
//	ref, err := handle.New(lib, abi.KindRecord)
//	if err != nil {
//		return err
//	}
//	defer ref.Close()
package handle

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/wippyai/udmf/abi"
	"github.com/wippyai/udmf/errors"
)

// Ref is a raw handle plus its ownership mode. A Ref is not safe for
// concurrent use.
type Ref struct {
	lib   abi.Lifecycle
	raw   abi.Handle
	kind  abi.Kind
	owned bool
}

// New creates a library object of the given kind and returns an owning Ref.
func New(lib abi.Lifecycle, kind abi.Kind) (*Ref, error) {
	return Own(lib, kind, lib.Create(kind))
}

// Own adopts raw, a handle the caller received from a create call and
// has not shared. A null raw is reported as an internal error.
func Own(lib abi.Lifecycle, kind abi.Kind, raw abi.Handle) (*Ref, error) {
	if raw == 0 {
		return nil, errors.NullHandle("handle.Own", kind)
	}
	Logger().Debug("handle created",
		zap.Stringer("kind", kind),
		zap.Uint32("handle", uint32(raw)))
	return &Ref{lib: lib, raw: raw, kind: kind, owned: true}, nil
}

// Borrow wraps raw without taking ownership. The caller guarantees that
// the owner of raw outlives the returned Ref.
func Borrow(kind abi.Kind, raw abi.Handle) *Ref {
	return &Ref{raw: raw, kind: kind}
}

// Raw returns the wrapped handle, or 0 after Close.
func (r *Ref) Raw() abi.Handle {
	return r.raw
}

func (r *Ref) Kind() abi.Kind {
	return r.kind
}

func (r *Ref) Owned() bool {
	return r.owned
}

// Close destroys the handle if r owns it. Closing a borrowed or already
// closed Ref does nothing. After Close, Raw returns 0.
func (r *Ref) Close() error {
	if r == nil {
		return nil
	}
	raw := r.raw
	r.raw = 0
	if !r.owned || raw == 0 {
		return nil
	}
	r.lib.Destroy(r.kind, raw)
	Logger().Debug("handle destroyed",
		zap.Stringer("kind", r.kind),
		zap.Uint32("handle", uint32(raw)))
	return nil
}

func (r *Ref) String() string {
	mode := "borrowed"
	if r.owned {
		mode = "owned"
	}
	return fmt.Sprintf("%s#%d(%s)", r.kind, r.raw, mode)
}
