// Package native is an in-process implementation of the library
// boundary described by package abi.
//
// The platform data management library is not available off device, so
// this package serves the same contract from Go: objects live in a
// handle table, every string, buffer and list result is written into a
// wazero linear memory and handed back as a pointer, and arguments are
// read out of that memory. The type catalog is YAML, embedded by default:
//
//	lib, err := native.New(ctx)
//	if err != nil {
//		return err
//	}
//	defer lib.Close(ctx)
//
//	rec, err := udmf.NewUnifiedRecord(lib)
//
// Misuse the platform library would silently tolerate (destroying an
// unknown handle, destroying a record that a data store owns, freeing an
// unknown list) is logged at warn level and otherwise ignored.
package native
