// Package abi defines the boundary contract between the safety layer and a
// native, handle-based data-interchange library.
//
// Everything crossing the boundary is a plain number:
//
//	Handle - opaque object reference, 0 is null
//	Ptr    - offset into the library's linear memory, 0 is null
//	Status - result code of mutating calls
//
// Strings are NUL-terminated byte sequences in library memory. Lists are
// arrays of little-endian u32 values (string pointers, or handles for record
// enumeration) paired with a count.
//
// # Memory ownership
//
// Arguments are staged by the caller through Allocator and freed after the
// call returns. Results follow per-call rules that the wrapper packages
// preserve exactly:
//
//	string getters      - valid for the lifetime of the queried object
//	object-owned lists  - valid for the lifetime of the queried object, never released
//	caller-owned lists  - released with UtdDestroyStringList
//	byte getters        - valid only until the next call on that object
//
// The package holds no implementation; see package native for an
// in-process reference library.
package abi
