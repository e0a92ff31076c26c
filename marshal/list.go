package marshal

import (
	"iter"

	"github.com/wippyai/udmf/abi"
)

// Decoder converts one non-null list entry.
type Decoder[T any] func(mem abi.Memory, entry uint32) (T, error)

// List is a lazy, single-pass sequence over a library array of u32
// entries (string pointers or handles). Null entries are skipped.
//
// When the array is caller-owned the list carries a release hook. The
// hook runs once: when iteration reaches the end, when a range loop over
// All stops early, or on Close, whichever comes first.
type List[T any] struct {
	mem     abi.Memory
	decode  Decoder[T]
	release func()
	err     error
	array   abi.Ptr
	count   uint32
	next    uint32
}

// NewList returns a list over count entries starting at array. release
// may be nil; it is not run for a null array.
func NewList[T any](mem abi.Memory, array abi.Ptr, count uint32, decode Decoder[T], release func()) *List[T] {
	if array == 0 {
		count = 0
		release = nil
	}
	return &List[T]{
		mem:     mem,
		decode:  decode,
		release: release,
		array:   array,
		count:   count,
	}
}

// Empty returns a list that yields nothing.
func Empty[T any]() *List[T] {
	return &List[T]{}
}

// Len returns the number of entries not yet visited, null ones included.
func (l *List[T]) Len() int {
	return int(l.count - l.next)
}

// Next returns the next non-null entry. It returns false at the end of the
// list or after a read error; check Err.
func (l *List[T]) Next() (T, bool) {
	var zero T
	for l.err == nil && l.next < l.count {
		entry, err := l.mem.ReadU32(l.array + abi.Ptr(l.next*4))
		l.next++
		if err != nil {
			l.err = err
			break
		}
		if entry == 0 {
			continue
		}
		v, err := l.decode(l.mem, entry)
		if err != nil {
			l.err = err
			break
		}
		return v, true
	}
	l.Close()
	return zero, false
}

// Err returns the first error met while reading entries.
func (l *List[T]) Err() error {
	return l.err
}

// All returns an iterator over the remaining entries.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		defer l.Close()
		for {
			v, ok := l.Next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

// Collect drains the list into a slice.
func (l *List[T]) Collect() ([]T, error) {
	out := make([]T, 0, l.Len())
	for v := range l.All() {
		out = append(out, v)
	}
	return out, l.err
}

// Close stops iteration and runs the release hook if it has not run.
func (l *List[T]) Close() {
	l.next = l.count
	if r := l.release; r != nil {
		l.release = nil
		r()
	}
}

// StringEntry decodes an entry as a pointer to a NUL-terminated string.
func StringEntry(mem abi.Memory, entry uint32) (string, error) {
	return ReadString(mem, abi.Ptr(entry))
}

// HandleEntry decodes an entry as an object handle.
func HandleEntry(_ abi.Memory, entry uint32) (abi.Handle, error) {
	return abi.Handle(entry), nil
}
