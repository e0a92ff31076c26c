package marshal

import (
	"strings"
	"sync"

	"github.com/wippyai/udmf/abi"
	"github.com/wippyai/udmf/errors"
)

type allocation struct {
	ptr   abi.Ptr
	size  uint32
	align uint32
}

// Arena stages call arguments in library memory. Everything staged is
// freed together by Release.
type Arena struct {
	mem         abi.Memory
	alloc       abi.Allocator
	allocations []allocation
}

var arenaPool = sync.Pool{
	New: func() any {
		return &Arena{allocations: make([]allocation, 0, 4)}
	},
}

const maxPooledArenaCapacity = 64

// Host is the part of the library an Arena needs.
type Host interface {
	Memory() abi.Memory
	Allocator() abi.Allocator
}

// NewArena returns an empty arena over lib's memory.
func NewArena(lib Host) *Arena {
	a := arenaPool.Get().(*Arena)
	a.mem = lib.Memory()
	a.alloc = lib.Allocator()
	return a
}

// CheckCString returns an InvalidParam error if s cannot be passed as a
// NUL-terminated string.
func CheckCString(op, s string) error {
	if i := strings.IndexByte(s, 0); i >= 0 {
		return errors.EmbeddedNUL(op, s, i)
	}
	return nil
}

// String copies s into library memory with a NUL terminator.
func (a *Arena) String(op, s string) (abi.Ptr, error) {
	if err := CheckCString(op, s); err != nil {
		return 0, err
	}
	size := uint32(len(s)) + 1
	ptr, err := a.stage(op, size, 1)
	if err != nil {
		return 0, err
	}
	buf := make([]byte, size)
	copy(buf, s)
	if err := a.mem.Write(ptr, buf); err != nil {
		return 0, errors.Marshal(op, err)
	}
	return ptr, nil
}

// Bytes copies b into library memory. An empty b stages nothing and
// returns a null pointer.
func (a *Arena) Bytes(op string, b []byte) (abi.Ptr, uint32, error) {
	if len(b) == 0 {
		return 0, 0, nil
	}
	ptr, err := a.stage(op, uint32(len(b)), 1)
	if err != nil {
		return 0, 0, err
	}
	if err := a.mem.Write(ptr, b); err != nil {
		return 0, 0, errors.Marshal(op, err)
	}
	return ptr, uint32(len(b)), nil
}

func (a *Arena) stage(op string, size, align uint32) (abi.Ptr, error) {
	ptr, err := a.alloc.Alloc(size, align)
	if err != nil {
		return 0, errors.Marshal(op, err)
	}
	a.allocations = append(a.allocations, allocation{ptr: ptr, size: size, align: align})
	return ptr, nil
}

// Count returns the number of live staged allocations.
func (a *Arena) Count() int {
	return len(a.allocations)
}

// Free returns every staged allocation to the library allocator.
func (a *Arena) Free() {
	for _, al := range a.allocations {
		if al.ptr != 0 {
			a.alloc.Free(al.ptr, al.size, al.align)
		}
	}
	a.allocations = a.allocations[:0]
}

// Release frees staged memory and returns the arena to the pool. The arena
// must not be used afterwards.
func (a *Arena) Release() {
	a.Free()
	a.mem = nil
	a.alloc = nil
	// Only pool small arenas to prevent memory bloat
	if cap(a.allocations) > maxPooledArenaCapacity {
		return
	}
	arenaPool.Put(a)
}
