package resource

import (
	"sync"

	"github.com/wippyai/udmf/abi"
)

// UnifiedTable implements the Table interface using a LocalBackend for storage.
type UnifiedTable struct {
	backend   *LocalBackend
	observers []Observer
	obsMu     sync.RWMutex
	closed    bool
	closeMu   sync.RWMutex
}

// NewTable creates a new unified table with a LocalBackend.
func NewTable() *UnifiedTable {
	return &UnifiedTable{
		backend: NewLocalBackend(),
	}
}

// Insert adds a value and returns its handle.
func (t *UnifiedTable) Insert(kind abi.Kind, value any) abi.Handle {
	t.closeMu.RLock()
	if t.closed {
		t.closeMu.RUnlock()
		return 0
	}
	t.closeMu.RUnlock()

	handle, err := t.backend.Create(kind, value)
	if err != nil {
		return 0
	}

	t.notify(Event{
		Type:   EventCreated,
		Handle: handle,
		Kind:   kind,
		Value:  value,
	})

	return handle
}

// Get retrieves a value by handle.
func (t *UnifiedTable) Get(handle abi.Handle) (any, bool) {
	return t.backend.Get(handle)
}

// GetTyped retrieves a value only if it has the expected kind.
func (t *UnifiedTable) GetTyped(handle abi.Handle, kind abi.Kind) (any, bool) {
	actual, ok := t.backend.Kind(handle)
	if !ok || actual != kind {
		return nil, false
	}
	return t.backend.Get(handle)
}

// Kind returns the kind a handle was inserted with.
func (t *UnifiedTable) Kind(handle abi.Handle) (abi.Kind, bool) {
	return t.backend.Kind(handle)
}

// Remove drops a resource and returns (value, true) if found and not pinned.
func (t *UnifiedTable) Remove(handle abi.Handle) (any, bool) {
	kind, _ := t.backend.Kind(handle)
	value, ok := t.backend.Drop(handle)
	if !ok {
		return nil, false
	}

	if d, ok := value.(Dropper); ok {
		d.Drop()
	}

	t.notify(Event{
		Type:   EventDropped,
		Handle: handle,
		Kind:   kind,
		Value:  value,
	})

	return value, true
}

// Pin marks handle as owned by another resource.
func (t *UnifiedTable) Pin(handle abi.Handle) bool {
	return t.pinEvent(handle, EventPinned, t.backend.Pin)
}

// Unpin releases one pin on handle.
func (t *UnifiedTable) Unpin(handle abi.Handle) bool {
	return t.pinEvent(handle, EventUnpinned, t.backend.Unpin)
}

func (t *UnifiedTable) pinEvent(handle abi.Handle, typ EventType, op func(abi.Handle) bool) bool {
	if !op(handle) {
		return false
	}
	kind, _ := t.backend.Kind(handle)
	t.notify(Event{Type: typ, Handle: handle, Kind: kind})
	return true
}

// Pinned reports whether handle is pinned.
func (t *UnifiedTable) Pinned(handle abi.Handle) bool {
	return t.backend.Pinned(handle)
}

// Subscribe adds an observer for lifecycle events.
func (t *UnifiedTable) Subscribe(o Observer) {
	t.obsMu.Lock()
	defer t.obsMu.Unlock()
	t.observers = append(t.observers, o)
}

// Unsubscribe removes an observer.
func (t *UnifiedTable) Unsubscribe(o Observer) {
	t.obsMu.Lock()
	defer t.obsMu.Unlock()
	for i, obs := range t.observers {
		if obs == o {
			t.observers = append(t.observers[:i], t.observers[i+1:]...)
			return
		}
	}
}

// Len returns the number of active resources.
func (t *UnifiedTable) Len() int {
	return t.backend.Len()
}

// LenOf returns the number of active resources of one kind.
func (t *UnifiedTable) LenOf(kind abi.Kind) int {
	return t.backend.LenOf(kind)
}

// Clear drops all unpinned resources, then whatever they released.
func (t *UnifiedTable) Clear() {
	for {
		// Collect handles first to avoid holding lock during Remove
		var handles []abi.Handle
		t.backend.Each(func(h abi.Handle, _ abi.Kind, _ any) bool {
			handles = append(handles, h)
			return true
		})
		removed := 0
		for _, h := range handles {
			if _, ok := t.Remove(h); ok {
				removed++
			}
		}
		if removed == 0 {
			return
		}
	}
}

// Close releases all resources and stops accepting operations.
func (t *UnifiedTable) Close() error {
	t.closeMu.Lock()
	t.closed = true
	t.closeMu.Unlock()

	return t.backend.Close()
}

func (t *UnifiedTable) notify(e Event) {
	t.obsMu.RLock()
	defer t.obsMu.RUnlock()
	for _, o := range t.observers {
		o.OnResourceEvent(e)
	}
}

// Lookup returns the value for handle if it has the given kind and
// dynamic type T.
func Lookup[T any](t *UnifiedTable, handle abi.Handle, kind abi.Kind) (T, bool) {
	var zero T
	v, ok := t.GetTyped(handle, kind)
	if !ok {
		return zero, false
	}
	typed, ok := v.(T)
	if !ok {
		return zero, false
	}
	return typed, true
}
