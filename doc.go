// Package udmf is a memory-safe Go layer over a handle-based unified data
// library: the exchange format behind drag-and-drop, clipboard and share
// sheets.
//
// The library hands out raw handles for its objects and exchanges strings
// and buffers through its own memory. This package and its subpackages
// wrap that boundary so that every handle is destroyed exactly once, every
// string crosses it NUL-terminated and every returned buffer is copied
// before the library may reuse it.
//
// # Packages
//
//	udmf/          UnifiedData, UnifiedRecord and the structured payloads
//	├── udt/       Type identifiers: 137 well-known types plus Custom
//	├── utd/       Type descriptors and reverse lookups in the catalog
//	├── abi/       The boundary: handles, pointers, status codes, Library
//	├── handle/    Owned and borrowed handle references
//	├── marshal/   Argument staging, result copies and lazy lists
//	├── errors/    Structured errors mapped from status codes
//	├── resource/  Handle tables with pinning and lifecycle events
//	└── native/    An in-process Library backed by wazero memory
//
// # Quick Start
//
//	lib, err := native.New(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer lib.Close(ctx)
//
//	text, _ := udmf.NewPlainText(lib)
//	defer text.Close()
//	_ = text.SetContent("Hello UDMF")
//
//	rec, _ := udmf.NewUnifiedRecord(lib)
//	defer rec.Close()
//	_ = rec.AddPlainText(text)
//
//	data, _ := udmf.NewUnifiedData(lib)
//	defer data.Close()
//	_ = data.AddRecord(rec)
//
//	fmt.Println(data.HasType(udt.PlainText)) // true
//
// # Ownership
//
// Constructors return owning values. Close releases them and is safe to
// call twice. Records returned by UnifiedData.Records are borrowed from
// the store: closing them is a no-op and they must not outlive it.
// Payloads returned by record getters are fresh copies owned by the
// caller.
//
// Nothing is released by the garbage collector. A value that is never
// closed leaks its library object until the library itself is closed.
//
// # Errors
//
// Every fallible call returns an *errors.Error. Use errors.Is with
// errors.ErrInternal or errors.ErrInvalidParam to classify it. String
// getters do not fail: an unset attribute reads as "". String setters
// reject a value with an embedded NUL before calling the library, so the
// stored value is unchanged.
//
// # Thread Safety
//
// Values in this package are not safe for concurrent use. The native
// Library serializes its own calls and guards its memory against growth,
// so distinct values may be used from different goroutines.
package udmf
