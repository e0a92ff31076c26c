package udmf

import (
	"go.uber.org/zap"

	"github.com/wippyai/udmf/abi"
	"github.com/wippyai/udmf/errors"
	"github.com/wippyai/udmf/handle"
	"github.com/wippyai/udmf/marshal"
	"github.com/wippyai/udmf/udt"
)

// payload is the owning handle shared by every structured payload type.
type payload struct {
	lib abi.Library
	ref *handle.Ref
}

func newPayload(lib abi.Library, kind abi.Kind) (payload, error) {
	ref, err := handle.New(lib, kind)
	if err != nil {
		return payload{}, err
	}
	return payload{lib: lib, ref: ref}, nil
}

// Close destroys the payload. Closing twice is a no-op.
func (p *payload) Close() error {
	return p.ref.Close()
}

func (p *payload) kind() abi.Kind {
	return p.ref.Kind()
}

// str returns "" for unset attributes. An unreadable result also reads
// as "" and is logged.
func (p *payload) str(f abi.Field) string {
	ptr := p.lib.PayloadGetString(p.kind(), p.ref.Raw(), f)
	s, err := marshal.ReadString(p.lib.Memory(), ptr)
	if err != nil {
		Logger().Warn("unreadable payload string",
			zap.Stringer("kind", p.kind()),
			zap.Uint32("field", uint32(f)),
			zap.Uint32("ptr", uint32(ptr)),
			zap.Error(err))
		return ""
	}
	return s
}

// setStr leaves the current value in place when v cannot be encoded.
func (p *payload) setStr(op string, f abi.Field, v string) error {
	a := marshal.NewArena(p.lib)
	defer a.Release()

	ptr, err := a.String(op, v)
	if err != nil {
		return err
	}
	return errors.Check(op, p.lib.PayloadSetString(p.kind(), p.ref.Raw(), f, ptr))
}

func (p *payload) bytes(op string, f abi.Field) ([]byte, error) {
	ptr, n, st := p.lib.PayloadGetBytes(p.kind(), p.ref.Raw(), f)
	if err := errors.Check(op, st); err != nil {
		return nil, err
	}
	b, err := marshal.ReadBytes(p.lib.Memory(), ptr, n)
	if err != nil {
		return nil, errors.Memory(op, err)
	}
	return b, nil
}

func (p *payload) setBytes(op string, f abi.Field, b []byte) error {
	a := marshal.NewArena(p.lib)
	defer a.Release()

	ptr, n, err := a.Bytes(op, b)
	if err != nil {
		return err
	}
	return errors.Check(op, p.lib.PayloadSetBytes(p.kind(), p.ref.Raw(), f, ptr, n))
}

// entryType is the type the payload was stored under, or nil when the
// library does not report one.
func (p *payload) entryType() udt.Type {
	s := p.str(abi.FieldType)
	if s == "" {
		return nil
	}
	return udt.Parse(s)
}
