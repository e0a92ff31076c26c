package resource

import (
	"errors"
	"sync"

	"github.com/wippyai/udmf/abi"
)

var ErrClosed = errors.New("resource backend closed")

// LocalBackend is an in-memory resource backend with pin tracking.
type LocalBackend struct {
	entries  []entry
	freeList []abi.Handle
	mu       sync.RWMutex
	closed   bool
}

type entry struct {
	value    any
	kind     abi.Kind
	pinCount uint32
	valid    bool
}

// NewLocalBackend creates a new in-memory backend.
func NewLocalBackend() *LocalBackend {
	return &LocalBackend{
		entries:  make([]entry, 0, 64),
		freeList: make([]abi.Handle, 0, 16),
	}
}

// Create stores a value and returns a handle.
func (b *LocalBackend) Create(kind abi.Kind, value any) (abi.Handle, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return 0, ErrClosed
	}

	e := entry{
		kind:  kind,
		value: value,
		valid: true,
	}

	if len(b.freeList) > 0 {
		handle := b.freeList[len(b.freeList)-1]
		b.freeList = b.freeList[:len(b.freeList)-1]
		b.entries[handle-1] = e
		return handle, nil
	}

	b.entries = append(b.entries, e)
	return abi.Handle(len(b.entries)), nil
}

// lookup returns the live entry for handle. Callers hold b.mu.
func (b *LocalBackend) lookup(handle abi.Handle) *entry {
	if handle == 0 {
		return nil
	}
	idx := handle - 1
	if int(idx) >= len(b.entries) {
		return nil
	}
	e := &b.entries[idx]
	if !e.valid {
		return nil
	}
	return e
}

// Get retrieves a value by handle.
func (b *LocalBackend) Get(handle abi.Handle) (any, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	e := b.lookup(handle)
	if e == nil {
		return nil, false
	}
	return e.value, true
}

// Drop removes a resource and returns (value, true) if destructor should be called.
func (b *LocalBackend) Drop(handle abi.Handle) (any, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	e := b.lookup(handle)
	if e == nil || e.pinCount > 0 {
		return nil, false
	}

	value := e.value
	e.valid = false
	e.value = nil
	b.freeList = append(b.freeList, handle)
	return value, true
}

// Pinned reports whether handle is live and pinned.
func (b *LocalBackend) Pinned(handle abi.Handle) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()

	e := b.lookup(handle)
	return e != nil && e.pinCount > 0
}

// Close releases all resources.
func (b *LocalBackend) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return nil
	}
	b.closed = true

	for i := range b.entries {
		if b.entries[i].valid {
			if d, ok := b.entries[i].value.(Dropper); ok {
				d.Drop()
			}
			b.entries[i].valid = false
			b.entries[i].value = nil
		}
	}

	b.entries = nil
	b.freeList = nil
	return nil
}

// Pin increments the pin count for a handle.
func (b *LocalBackend) Pin(handle abi.Handle) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	e := b.lookup(handle)
	if e == nil {
		return false
	}
	e.pinCount++
	return true
}

// Unpin decrements the pin count for a handle.
func (b *LocalBackend) Unpin(handle abi.Handle) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	e := b.lookup(handle)
	if e == nil || e.pinCount == 0 {
		return false
	}
	e.pinCount--
	return true
}

// Kind returns the kind of a handle.
func (b *LocalBackend) Kind(handle abi.Handle) (abi.Kind, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	e := b.lookup(handle)
	if e == nil {
		return 0, false
	}
	return e.kind, true
}

// Len returns the number of active resources.
func (b *LocalBackend) Len() int {
	return b.count(func(entry) bool { return true })
}

// LenOf returns the number of active resources of one kind.
func (b *LocalBackend) LenOf(kind abi.Kind) int {
	return b.count(func(e entry) bool { return e.kind == kind })
}

func (b *LocalBackend) count(match func(entry) bool) int {
	b.mu.RLock()
	defer b.mu.RUnlock()

	count := 0
	for _, e := range b.entries {
		if e.valid && match(e) {
			count++
		}
	}
	return count
}

// Each iterates over all active resources.
func (b *LocalBackend) Each(fn func(abi.Handle, abi.Kind, any) bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for i, e := range b.entries {
		if e.valid {
			if !fn(abi.Handle(i+1), e.kind, e.value) {
				break
			}
		}
	}
}
