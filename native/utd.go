package native

import (
	"go.uber.org/zap"

	"github.com/wippyai/udmf/abi"
)

// UtdCreate returns a descriptor for a catalog type, or 0 if the catalog
// has no entry for it.
func (l *Library) UtdCreate(typeID abi.Ptr) abi.Handle {
	l.mu.Lock()
	defer l.mu.Unlock()

	id, ok := l.readString(typeID)
	if !ok {
		return 0
	}
	e, ok := l.catalog.Lookup(id)
	if !ok {
		return 0
	}
	return l.table.Insert(abi.KindDescriptor, &descriptor{entry: e, mem: newOwned(l.heap)})
}

func (l *Library) UtdGetString(h abi.Handle, f abi.Field) abi.Ptr {
	l.mu.Lock()
	defer l.mu.Unlock()

	d, ok := lookup[*descriptor](l, h, abi.KindDescriptor)
	if !ok {
		return 0
	}
	var s string
	switch f {
	case abi.FieldTypeID:
		s = d.entry.ID
	case abi.FieldDescription:
		s = d.entry.Description
	case abi.FieldReferenceURL:
		s = d.entry.ReferenceURL
	case abi.FieldIconFile:
		s = d.entry.IconFile
	default:
		l.log.Warn("string field not defined for descriptor", zap.Uint32("field", uint32(f)))
		return 0
	}
	return l.cachedString(&d.mem, f, s)
}

func (l *Library) UtdGetList(h abi.Handle, f abi.Field) (abi.Ptr, uint32) {
	l.mu.Lock()
	defer l.mu.Unlock()

	d, ok := lookup[*descriptor](l, h, abi.KindDescriptor)
	if !ok {
		return 0, 0
	}
	var ss []string
	switch f {
	case abi.FieldMimeTypes:
		ss = d.entry.MimeTypes
	case abi.FieldFilenameExtensions:
		ss = d.entry.FilenameExtensions
	case abi.FieldBelongingTo:
		ss = d.entry.BelongingTo
	default:
		l.log.Warn("list field not defined for descriptor", zap.Uint32("field", uint32(f)))
		return 0, 0
	}
	return l.cachedList(&d.mem, f, ss)
}

func (l *Library) typePair(a, b abi.Ptr) (string, string, bool) {
	x, ok := l.readString(a)
	if !ok {
		return "", "", false
	}
	y, ok := l.readString(b)
	return x, y, ok
}

// UtdBelongsTo reports whether typeID is other or one of its transitive
// subtypes.
func (l *Library) UtdBelongsTo(typeID, other abi.Ptr) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	a, b, ok := l.typePair(typeID, other)
	return ok && l.catalog.BelongsTo(a, b)
}

// UtdIsLower reports whether typeID is a strict subtype of other.
func (l *Library) UtdIsLower(typeID, other abi.Ptr) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	a, b, ok := l.typePair(typeID, other)
	return ok && a != b && l.catalog.BelongsTo(a, b)
}

// UtdIsHigher reports whether typeID is a strict supertype of other.
func (l *Library) UtdIsHigher(typeID, other abi.Ptr) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	a, b, ok := l.typePair(typeID, other)
	return ok && a != b && l.catalog.BelongsTo(b, a)
}

func (l *Library) UtdEquals(a, b abi.Handle) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	x, ok := lookup[*descriptor](l, a, abi.KindDescriptor)
	if !ok {
		return false
	}
	y, ok := lookup[*descriptor](l, b, abi.KindDescriptor)
	return ok && x.entry.ID == y.entry.ID
}

func (l *Library) UtdTypesByFilenameExtension(ext abi.Ptr) (abi.Ptr, uint32) {
	return l.reverseLookup(ext, l.catalog.ByExtension)
}

func (l *Library) UtdTypesByMimeType(mime abi.Ptr) (abi.Ptr, uint32) {
	return l.reverseLookup(mime, l.catalog.ByMimeType)
}

// reverseLookup returns a caller-owned list, released by
// UtdDestroyStringList.
func (l *Library) reverseLookup(key abi.Ptr, find func(string) []string) (abi.Ptr, uint32) {
	l.mu.Lock()
	defer l.mu.Unlock()

	s, ok := l.readString(key)
	if !ok {
		return 0, 0
	}
	ids := find(s)
	if len(ids) == 0 {
		return 0, 0
	}
	blocks, err := l.heap.putStringList(ids)
	if err != nil {
		l.log.Error("lookup result", zap.Error(err))
		return 0, 0
	}
	l.lists[blocks[0].ptr] = blocks
	return blocks[0].ptr, uint32(len(ids))
}

func (l *Library) UtdDestroyStringList(list abi.Ptr, count uint32) {
	if list == 0 {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	blocks, ok := l.lists[list]
	if !ok {
		l.log.Warn("destroy of unknown list", zap.Uint32("ptr", uint32(list)))
		return
	}
	if want := uint32(len(blocks) - 1); count != want {
		l.log.Warn("destroy list count mismatch",
			zap.Uint32("count", count), zap.Uint32("want", want))
	}
	delete(l.lists, list)
	l.heap.release(blocks)
}
