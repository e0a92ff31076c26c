package resource

import "github.com/wippyai/udmf/abi"

// Event types for resource lifecycle notifications.
type EventType uint8

const (
	EventCreated EventType = iota
	EventDropped
	EventPinned
	EventUnpinned
)

func (t EventType) String() string {
	switch t {
	case EventCreated:
		return "created"
	case EventDropped:
		return "dropped"
	case EventPinned:
		return "pinned"
	case EventUnpinned:
		return "unpinned"
	}
	return "unknown"
}

// Event represents a resource lifecycle event.
type Event struct {
	Value  any
	Handle abi.Handle
	Kind   abi.Kind
	Type   EventType
}

// Observer receives notifications about resource lifecycle events.
type Observer interface {
	OnResourceEvent(Event)
}

// Backend provides the underlying storage mechanism for resources.
type Backend interface {
	// Create stores a value and returns a handle.
	Create(kind abi.Kind, value any) (abi.Handle, error)

	// Get retrieves a value by handle.
	Get(handle abi.Handle) (any, bool)

	// Drop removes a resource and returns (value, true) if destructor should be called.
	// Returns (nil, false) if handle is invalid or pinned.
	Drop(handle abi.Handle) (any, bool)

	// Close releases all resources held by the backend.
	Close() error
}

// Table manages resources with kind information and observer support.
type Table interface {
	// Insert adds a value and returns its handle.
	Insert(kind abi.Kind, value any) abi.Handle

	// Get retrieves a value by handle.
	Get(handle abi.Handle) (any, bool)

	// GetTyped retrieves a value only if it has the expected kind.
	GetTyped(handle abi.Handle, kind abi.Kind) (any, bool)

	// Remove drops a resource and returns (value, true) if found.
	Remove(handle abi.Handle) (any, bool)

	// Pin marks a resource as owned by another resource. Pinned
	// resources cannot be removed until every pin is released.
	Pin(handle abi.Handle) bool

	// Unpin releases one pin.
	Unpin(handle abi.Handle) bool

	// Subscribe adds an observer for lifecycle events.
	Subscribe(Observer)

	// Unsubscribe removes an observer.
	Unsubscribe(Observer)

	// Len returns the number of active resources.
	Len() int

	// LenOf returns the number of active resources of one kind.
	LenOf(kind abi.Kind) int

	// Clear drops all resources.
	Clear()

	// Close releases all resources and stops accepting operations.
	Close() error
}

// Dropper is optionally implemented by resource values that need cleanup.
type Dropper interface {
	Drop()
}
