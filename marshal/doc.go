// Package marshal moves strings, byte buffers and lists across the
// library boundary.
//
// Arguments are staged in library memory through an Arena and freed after
// the call. Results are read out of library memory: ReadString and
// ReadBytes copy, BorrowString aliases library memory and must not be
// retained. List walks a library-owned array of u32 entries lazily.
//
// A null pointer result means "no value": strings read as "" and byte
// buffers as an empty slice.
package marshal
