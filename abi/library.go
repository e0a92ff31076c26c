package abi

// Memory is the library's linear memory as seen from the caller.
// Read returns a view of the bytes as of the call. Callers must not write
// through it; once memory grows it no longer tracks later writes.
type Memory interface {
	Read(offset Ptr, length uint32) ([]byte, error)
	Write(offset Ptr, data []byte) error
	ReadU8(offset Ptr) (uint8, error)
	ReadU32(offset Ptr) (uint32, error)
	WriteU32(offset Ptr, value uint32) error
	Size() uint32
}

// Allocator allocates memory in library memory for call arguments.
type Allocator interface {
	Alloc(size, align uint32) (Ptr, error)
	Free(ptr Ptr, size, align uint32)
}

// Lifecycle creates and destroys objects. Create returns 0 on failure.
// Destroy must be called at most once per created handle.
type Lifecycle interface {
	Create(kind Kind) Handle
	Destroy(kind Kind, h Handle)
}

// DataAPI operates on a data store.
type DataAPI interface {
	// DataAddRecord copies the record's entries into a new record owned by data.
	DataAddRecord(data, record Handle) Status
	DataHasType(data Handle, typeID Ptr) bool
	// DataGetTypes returns a string list owned by data.
	DataGetTypes(data Handle) (list Ptr, count uint32)
	// DataGetRecords returns a handle list owned by data. The records are
	// owned by data as well.
	DataGetRecords(data Handle) (list Ptr, count uint32)
}

// RecordAPI operates on a record.
type RecordAPI interface {
	// RecordGetTypes returns a string list owned by the record.
	RecordGetTypes(record Handle) (list Ptr, count uint32)
	RecordAddGeneralEntry(record Handle, typeID Ptr, data Ptr, size uint32) Status
	// RecordGetGeneralEntry returns bytes valid until the next call on record.
	RecordGetGeneralEntry(record Handle, typeID Ptr) (data Ptr, size uint32, st Status)
	// RecordAddPayload copies a structured payload of the given kind into record.
	RecordAddPayload(record Handle, kind Kind, payload Handle) Status
	// RecordGetPayload fills a caller-created payload of the given kind.
	RecordGetPayload(record Handle, kind Kind, payload Handle) Status
	RecordAddArrayBuffer(record Handle, typeID Ptr, buffer Handle) Status
	RecordGetArrayBuffer(record Handle, typeID Ptr, buffer Handle) Status
}

// PayloadAPI reads and writes structured payload attributes. The kind must
// match the handle's kind or the call is rejected.
type PayloadAPI interface {
	// PayloadGetString returns a string owned by the payload, or 0 if unset.
	PayloadGetString(kind Kind, h Handle, f Field) Ptr
	PayloadSetString(kind Kind, h Handle, f Field, value Ptr) Status
	// PayloadGetBytes returns bytes valid until the next call on h.
	PayloadGetBytes(kind Kind, h Handle, f Field) (data Ptr, size uint32, st Status)
	PayloadSetBytes(kind Kind, h Handle, f Field, data Ptr, size uint32) Status
	// PixelMapGet returns the pixelmap handle attached to a PixelMap payload.
	PixelMapGet(h Handle) Handle
	PixelMapSet(h Handle, pixelmap Handle) Status
}

// UtdAPI queries the type catalog.
type UtdAPI interface {
	// UtdCreate returns 0 if the catalog has no entry for typeID.
	UtdCreate(typeID Ptr) Handle
	// UtdGetString returns a string owned by the descriptor, or 0.
	UtdGetString(h Handle, f Field) Ptr
	// UtdGetList returns a string list owned by the descriptor.
	UtdGetList(h Handle, f Field) (list Ptr, count uint32)
	UtdBelongsTo(typeID, other Ptr) bool
	UtdIsLower(typeID, other Ptr) bool
	UtdIsHigher(typeID, other Ptr) bool
	UtdEquals(a, b Handle) bool
	// UtdTypesByFilenameExtension returns a caller-owned list.
	UtdTypesByFilenameExtension(ext Ptr) (list Ptr, count uint32)
	// UtdTypesByMimeType returns a caller-owned list.
	UtdTypesByMimeType(mime Ptr) (list Ptr, count uint32)
	UtdDestroyStringList(list Ptr, count uint32)
}

// Library is the complete boundary.
type Library interface {
	Memory() Memory
	Allocator() Allocator
	Lifecycle
	DataAPI
	RecordAPI
	PayloadAPI
	UtdAPI
}
