// Package utd queries the uniform data type catalog.
//
// A TypeDescriptor is a read-only view of one catalog entry. It owns a
// library handle and must be closed. The reverse lookups return type
// sequences that are not tied to any descriptor.
package utd

import (
	"go.uber.org/zap"

	"github.com/wippyai/udmf/abi"
	"github.com/wippyai/udmf/errors"
	"github.com/wippyai/udmf/handle"
	"github.com/wippyai/udmf/marshal"
	"github.com/wippyai/udmf/udt"
)

// TypeDescriptor describes one uniform data type.
type TypeDescriptor struct {
	lib abi.Library
	ref *handle.Ref
}

// New returns the descriptor for t. It fails with an internal error if
// the catalog has no entry for t, and with an invalid-parameter error if
// t cannot be passed to the library.
func New(lib abi.Library, t udt.Type) (*TypeDescriptor, error) {
	const op = "utd.New"

	a := marshal.NewArena(lib)
	defer a.Release()

	p, err := a.Type(op, t)
	if err != nil {
		return nil, err
	}
	raw := lib.UtdCreate(p)
	if raw == 0 {
		return nil, errors.New(op, errors.KindInternal).
			Value(t).
			Detail("no catalog entry for %q", t.String()).
			Build()
	}
	ref, err := handle.Own(lib, abi.KindDescriptor, raw)
	if err != nil {
		return nil, err
	}
	return &TypeDescriptor{lib: lib, ref: ref}, nil
}

// Close releases the descriptor. Lists obtained from it must not be used
// afterwards.
func (d *TypeDescriptor) Close() error {
	return d.ref.Close()
}

func (d *TypeDescriptor) str(f abi.Field) string {
	ptr := d.lib.UtdGetString(d.ref.Raw(), f)
	s, err := marshal.ReadString(d.lib.Memory(), ptr)
	if err != nil {
		Logger().Warn("unreadable descriptor string",
			zap.Uint32("field", uint32(f)),
			zap.Uint32("ptr", uint32(ptr)),
			zap.Error(err))
		return ""
	}
	return s
}

// TypeID returns the type this descriptor describes.
func (d *TypeDescriptor) TypeID() udt.Type {
	return udt.Parse(d.str(abi.FieldTypeID))
}

func (d *TypeDescriptor) Description() string {
	return d.str(abi.FieldDescription)
}

func (d *TypeDescriptor) ReferenceURL() string {
	return d.str(abi.FieldReferenceURL)
}

// IconFile returns the resource name of the type's default icon.
func (d *TypeDescriptor) IconFile() string {
	return d.str(abi.FieldIconFile)
}

// MimeTypes lists the MIME types of the type. The list is owned by the
// descriptor.
func (d *TypeDescriptor) MimeTypes() *marshal.List[string] {
	p, n := d.lib.UtdGetList(d.ref.Raw(), abi.FieldMimeTypes)
	return marshal.NewList(d.lib.Memory(), p, n, marshal.StringEntry, nil)
}

// FilenameExtensions lists the extensions of the type, with leading dot.
func (d *TypeDescriptor) FilenameExtensions() *marshal.List[string] {
	p, n := d.lib.UtdGetList(d.ref.Raw(), abi.FieldFilenameExtensions)
	return marshal.NewList(d.lib.Memory(), p, n, marshal.StringEntry, nil)
}

// BelongingToTypes lists the direct supertypes recorded in the catalog.
func (d *TypeDescriptor) BelongingToTypes() *marshal.List[udt.Type] {
	p, n := d.lib.UtdGetList(d.ref.Raw(), abi.FieldBelongingTo)
	return marshal.NewList(d.lib.Memory(), p, n, marshal.TypeEntry, nil)
}

// relation passes the descriptor's own identifier back to the library
// as is, together with other's identifier.
func (d *TypeDescriptor) relation(other udt.Type, pred func(self, other abi.Ptr) bool) bool {
	self := d.lib.UtdGetString(d.ref.Raw(), abi.FieldTypeID)
	if self == 0 {
		return false
	}

	a := marshal.NewArena(d.lib)
	defer a.Release()

	p, err := a.Type("utd.relation", other)
	if err != nil {
		return false
	}
	return pred(self, p)
}

// BelongsTo reports whether the catalog places this type under other.
// Whether that includes indirect supertypes is up to the catalog.
func (d *TypeDescriptor) BelongsTo(other udt.Type) bool {
	return d.relation(other, d.lib.UtdBelongsTo)
}

// IsLower reports whether this type is a strict subtype of other.
func (d *TypeDescriptor) IsLower(other udt.Type) bool {
	return d.relation(other, d.lib.UtdIsLower)
}

// IsHigher reports whether this type is a strict supertype of other.
func (d *TypeDescriptor) IsHigher(other udt.Type) bool {
	return d.relation(other, d.lib.UtdIsHigher)
}

// Equals reports whether both descriptors describe the same type.
func (d *TypeDescriptor) Equals(other *TypeDescriptor) bool {
	if other == nil {
		return false
	}
	return d.lib.UtdEquals(d.ref.Raw(), other.ref.Raw())
}
