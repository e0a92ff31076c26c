package marshal

import (
	"bytes"
	"fmt"
	"unsafe"

	"github.com/wippyai/udmf/abi"
)

func cstring(mem abi.Memory, p abi.Ptr) ([]byte, error) {
	size := mem.Size()
	if uint32(p) >= size {
		return nil, fmt.Errorf("string pointer out of bounds: ptr=%d, size=%d", p, size)
	}
	view, err := mem.Read(p, size-uint32(p))
	if err != nil {
		return nil, err
	}
	n := bytes.IndexByte(view, 0)
	if n < 0 {
		return nil, fmt.Errorf("unterminated string at ptr=%d", p)
	}
	return view[:n], nil
}

// ReadString copies the NUL-terminated string at p. A null p reads as "".
func ReadString(mem abi.Memory, p abi.Ptr) (string, error) {
	if p == 0 {
		return "", nil
	}
	b, err := cstring(mem, p)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// BorrowString returns the NUL-terminated string at p without copying.
// The result aliases library memory: it is only valid until the next
// library call and must be cloned before it is retained.
func BorrowString(mem abi.Memory, p abi.Ptr) (string, error) {
	if p == 0 {
		return "", nil
	}
	b, err := cstring(mem, p)
	if err != nil || len(b) == 0 {
		return "", err
	}
	return unsafe.String(&b[0], len(b)), nil
}

// ReadBytes copies size bytes at p. A null p or zero size reads as an
// empty, non-nil slice.
func ReadBytes(mem abi.Memory, p abi.Ptr, size uint32) ([]byte, error) {
	if p == 0 || size == 0 {
		return []byte{}, nil
	}
	view, err := mem.Read(p, size)
	if err != nil {
		return nil, err
	}
	return bytes.Clone(view), nil
}
