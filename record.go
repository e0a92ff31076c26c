package udmf

import (
	"github.com/wippyai/udmf/abi"
	"github.com/wippyai/udmf/errors"
	"github.com/wippyai/udmf/handle"
	"github.com/wippyai/udmf/marshal"
	"github.com/wippyai/udmf/udt"
)

// UnifiedRecord holds typed entries: raw byte buffers keyed by type and
// structured payloads. Adding an entry copies it; the caller keeps
// ownership of what it passed in. Adding a second entry of a type
// already present replaces the first.
type UnifiedRecord struct {
	lib abi.Library
	ref *handle.Ref
}

// NewUnifiedRecord creates an empty record owned by the caller.
func NewUnifiedRecord(lib abi.Library) (*UnifiedRecord, error) {
	ref, err := handle.New(lib, abi.KindRecord)
	if err != nil {
		return nil, err
	}
	return &UnifiedRecord{lib: lib, ref: ref}, nil
}

// Close destroys the record if this value owns it. Records returned by
// UnifiedData.Records are borrowed and Close leaves them alone.
func (r *UnifiedRecord) Close() error {
	return r.ref.Close()
}

// Owned reports whether closing r destroys the underlying record.
func (r *UnifiedRecord) Owned() bool {
	return r.ref.Owned()
}

// Types lists the entry types of the record in insertion order.
func (r *UnifiedRecord) Types() ([]udt.Type, error) {
	p, n := r.lib.RecordGetTypes(r.ref.Raw())
	types, err := marshal.NewList(r.lib.Memory(), p, n, marshal.TypeEntry, nil).Collect()
	if err != nil {
		return nil, errors.Memory("UnifiedRecord.Types", err)
	}
	return types, nil
}

func (r *UnifiedRecord) AddGeneralEntry(t udt.Type, data []byte) error {
	const op = "UnifiedRecord.AddGeneralEntry"

	a := marshal.NewArena(r.lib)
	defer a.Release()

	typeID, err := a.Type(op, t)
	if err != nil {
		return err
	}
	p, n, err := a.Bytes(op, data)
	if err != nil {
		return err
	}
	return errors.Check(op, r.lib.RecordAddGeneralEntry(r.ref.Raw(), typeID, p, n))
}

// GeneralEntry returns a copy of the bytes stored under t.
func (r *UnifiedRecord) GeneralEntry(t udt.Type) ([]byte, error) {
	const op = "UnifiedRecord.GeneralEntry"

	a := marshal.NewArena(r.lib)
	defer a.Release()

	typeID, err := a.Type(op, t)
	if err != nil {
		return nil, err
	}
	p, n, st := r.lib.RecordGetGeneralEntry(r.ref.Raw(), typeID)
	if err := errors.Check(op, st); err != nil {
		return nil, err
	}
	b, err := marshal.ReadBytes(r.lib.Memory(), p, n)
	if err != nil {
		return nil, errors.Memory(op, err)
	}
	return b, nil
}

func nilPayload(op string) error {
	return errors.New(op, errors.KindInvalidParam).Detail("nil payload").Build()
}

func (r *UnifiedRecord) add(op string, p *payload) error {
	return errors.Check(op, r.lib.RecordAddPayload(r.ref.Raw(), p.kind(), p.ref.Raw()))
}

// fetch lets the library fill a freshly created payload. The payload is
// closed again if the record has nothing of that kind.
func fetch[P interface{ Close() error }](r *UnifiedRecord, op string, out P, p *payload) (P, error) {
	if err := errors.Check(op, r.lib.RecordGetPayload(r.ref.Raw(), p.kind(), p.ref.Raw())); err != nil {
		_ = out.Close()
		var zero P
		return zero, err
	}
	return out, nil
}

func (r *UnifiedRecord) AddPlainText(p *PlainText) error {
	const op = "UnifiedRecord.AddPlainText"
	if p == nil {
		return nilPayload(op)
	}
	return r.add(op, &p.payload)
}

// PlainText returns a new caller-owned copy of the record's text entry.
func (r *UnifiedRecord) PlainText() (*PlainText, error) {
	p, err := NewPlainText(r.lib)
	if err != nil {
		return nil, err
	}
	return fetch(r, "UnifiedRecord.PlainText", p, &p.payload)
}

func (r *UnifiedRecord) AddHyperlink(h *Hyperlink) error {
	const op = "UnifiedRecord.AddHyperlink"
	if h == nil {
		return nilPayload(op)
	}
	return r.add(op, &h.payload)
}

func (r *UnifiedRecord) Hyperlink() (*Hyperlink, error) {
	h, err := NewHyperlink(r.lib)
	if err != nil {
		return nil, err
	}
	return fetch(r, "UnifiedRecord.Hyperlink", h, &h.payload)
}

func (r *UnifiedRecord) AddHTML(h *HTML) error {
	const op = "UnifiedRecord.AddHTML"
	if h == nil {
		return nilPayload(op)
	}
	return r.add(op, &h.payload)
}

func (r *UnifiedRecord) HTML() (*HTML, error) {
	h, err := NewHTML(r.lib)
	if err != nil {
		return nil, err
	}
	return fetch(r, "UnifiedRecord.HTML", h, &h.payload)
}

func (r *UnifiedRecord) AddAppItem(a *AppItem) error {
	const op = "UnifiedRecord.AddAppItem"
	if a == nil {
		return nilPayload(op)
	}
	return r.add(op, &a.payload)
}

func (r *UnifiedRecord) AppItem() (*AppItem, error) {
	a, err := NewAppItem(r.lib)
	if err != nil {
		return nil, err
	}
	return fetch(r, "UnifiedRecord.AppItem", a, &a.payload)
}

func (r *UnifiedRecord) AddFileURI(f *FileURI) error {
	const op = "UnifiedRecord.AddFileURI"
	if f == nil {
		return nilPayload(op)
	}
	return r.add(op, &f.payload)
}

func (r *UnifiedRecord) FileURI() (*FileURI, error) {
	f, err := NewFileURI(r.lib)
	if err != nil {
		return nil, err
	}
	return fetch(r, "UnifiedRecord.FileURI", f, &f.payload)
}

func (r *UnifiedRecord) AddPixelMap(m *PixelMap) error {
	const op = "UnifiedRecord.AddPixelMap"
	if m == nil {
		return nilPayload(op)
	}
	return r.add(op, &m.payload)
}

func (r *UnifiedRecord) PixelMap() (*PixelMap, error) {
	m, err := NewPixelMap(r.lib)
	if err != nil {
		return nil, err
	}
	return fetch(r, "UnifiedRecord.PixelMap", m, &m.payload)
}

func (r *UnifiedRecord) AddContentForm(c *ContentForm) error {
	const op = "UnifiedRecord.AddContentForm"
	if c == nil {
		return nilPayload(op)
	}
	return r.add(op, &c.payload)
}

func (r *UnifiedRecord) ContentForm() (*ContentForm, error) {
	c, err := NewContentForm(r.lib)
	if err != nil {
		return nil, err
	}
	return fetch(r, "UnifiedRecord.ContentForm", c, &c.payload)
}

// AddArrayBuffer stores b's bytes under t, which may be any type,
// including a custom one.
func (r *UnifiedRecord) AddArrayBuffer(t udt.Type, b *ArrayBuffer) error {
	const op = "UnifiedRecord.AddArrayBuffer"
	if b == nil {
		return nilPayload(op)
	}

	a := marshal.NewArena(r.lib)
	defer a.Release()

	typeID, err := a.Type(op, t)
	if err != nil {
		return err
	}
	return errors.Check(op, r.lib.RecordAddArrayBuffer(r.ref.Raw(), typeID, b.ref.Raw()))
}

// ArrayBuffer returns the buffer stored under t. Its Type reports t.
func (r *UnifiedRecord) ArrayBuffer(t udt.Type) (*ArrayBuffer, error) {
	const op = "UnifiedRecord.ArrayBuffer"

	a := marshal.NewArena(r.lib)
	defer a.Release()

	typeID, err := a.Type(op, t)
	if err != nil {
		return nil, err
	}
	b, err := NewArrayBuffer(r.lib)
	if err != nil {
		return nil, err
	}
	if err := errors.Check(op, r.lib.RecordGetArrayBuffer(r.ref.Raw(), typeID, b.ref.Raw())); err != nil {
		_ = b.Close()
		return nil, err
	}
	return b, nil
}
