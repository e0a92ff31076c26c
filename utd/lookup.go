package utd

import (
	"mime"
	"path/filepath"

	"github.com/gabriel-vasile/mimetype"

	"github.com/wippyai/udmf/abi"
	"github.com/wippyai/udmf/marshal"
	"github.com/wippyai/udmf/udt"
)

func reverse(lib abi.Library, key string, query func(abi.Ptr) (abi.Ptr, uint32)) *marshal.List[udt.Type] {
	a := marshal.NewArena(lib)
	defer a.Release()

	p, err := a.String("utd.reverse", key)
	if err != nil {
		return marshal.Empty[udt.Type]()
	}
	list, n := query(p)
	return marshal.NewList(lib.Memory(), list, n, marshal.TypeEntry, func() {
		lib.UtdDestroyStringList(list, n)
	})
}

// TypesByFilenameExtension returns the types registered for ext, such
// as ".txt". The list holds library memory until it is exhausted or
// closed. An ext that cannot be passed to the library yields an empty
// list.
func TypesByFilenameExtension(lib abi.Library, ext string) *marshal.List[udt.Type] {
	return reverse(lib, ext, lib.UtdTypesByFilenameExtension)
}

// TypesByMimeType returns the types registered for a MIME type, such as
// "text/plain". Release rules are those of TypesByFilenameExtension.
func TypesByMimeType(lib abi.Library, mimeType string) *marshal.List[udt.Type] {
	return reverse(lib, mimeType, lib.UtdTypesByMimeType)
}

// TypesByPath returns the types registered for the extension of path.
func TypesByPath(lib abi.Library, path string) *marshal.List[udt.Type] {
	ext := filepath.Ext(path)
	if ext == "" {
		return marshal.Empty[udt.Type]()
	}
	return TypesByFilenameExtension(lib, ext)
}

// TypesByContent sniffs the MIME type of data and returns the types
// registered for it. When the catalog knows nothing about the detected
// type, its more general parents are tried in turn ("text/x-go" falls
// back to "text/plain").
func TypesByContent(lib abi.Library, data []byte) *marshal.List[udt.Type] {
	for m := mimetype.Detect(data); m != nil; m = m.Parent() {
		base, _, err := mime.ParseMediaType(m.String())
		if err != nil {
			continue
		}
		list := TypesByMimeType(lib, base)
		if list.Len() > 0 {
			return list
		}
		list.Close()
	}
	return marshal.Empty[udt.Type]()
}
