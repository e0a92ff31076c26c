package native

import (
	"encoding/binary"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/wippyai/udmf/abi"
)

const (
	pageSize   = 65536
	heapBase   = 8 // keeps 0 free as the null pointer
	blockAlign = 8
)

var errHeapExhausted = errors.New("library heap exhausted")

// heap is a size-class allocator over the library's linear memory.
// Freed blocks are reused for allocations of the same rounded size.
type heap struct {
	mem       *memory
	free      map[uint32][]abi.Ptr
	live      map[abi.Ptr]uint32
	log       *zap.Logger
	liveBytes uint64
	next      uint32
	mu        sync.Mutex
}

func newHeap(mem *memory, log *zap.Logger) *heap {
	return &heap{
		mem:  mem,
		free: make(map[uint32][]abi.Ptr),
		live: make(map[abi.Ptr]uint32),
		log:  log,
		next: heapBase,
	}
}

// Alloc implements abi.Allocator.
func (h *heap) Alloc(size, align uint32) (abi.Ptr, error) {
	if align > blockAlign {
		return 0, fmt.Errorf("unsupported alignment %d", align)
	}
	n := roundUp(max(size, 1), blockAlign)
	if n < size {
		return 0, errHeapExhausted
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	var ptr abi.Ptr
	if list := h.free[n]; len(list) > 0 {
		ptr = list[len(list)-1]
		h.free[n] = list[:len(list)-1]
	} else {
		end := uint64(h.next) + uint64(n)
		if end > 1<<32 {
			return 0, errHeapExhausted
		}
		if !h.mem.grow(end) {
			return 0, errHeapExhausted
		}
		ptr = abi.Ptr(h.next)
		h.next = uint32(end)
	}

	h.live[ptr] = n
	h.liveBytes += uint64(n)
	return ptr, nil
}

// Free implements abi.Allocator. Unknown pointers are logged and ignored.
func (h *heap) Free(ptr abi.Ptr, _, _ uint32) {
	if ptr == 0 {
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	n, ok := h.live[ptr]
	if !ok {
		h.log.Warn("free of unknown block", zap.Uint32("ptr", uint32(ptr)))
		return
	}
	delete(h.live, ptr)
	h.liveBytes -= uint64(n)
	h.free[n] = append(h.free[n], ptr)
}

func (h *heap) stats() (blocks int, bytes uint64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.live), h.liveBytes
}

func roundUp(v, to uint32) uint32 {
	return (v + to - 1) &^ (to - 1)
}

// block is one heap allocation owned by a library object.
type block struct {
	ptr  abi.Ptr
	size uint32
}

func (h *heap) release(blocks []block) {
	for _, b := range blocks {
		h.Free(b.ptr, b.size, blockAlign)
	}
}

func (h *heap) putBytes(data []byte, terminate bool) (block, error) {
	size := uint32(len(data))
	if terminate {
		size++
	}
	if size == 0 {
		return block{}, nil
	}
	ptr, err := h.Alloc(size, 1)
	if err != nil {
		return block{}, err
	}
	buf := data
	if terminate {
		buf = make([]byte, size)
		copy(buf, data)
	}
	if err := h.mem.Write(ptr, buf); err != nil {
		h.Free(ptr, size, 1)
		return block{}, err
	}
	return block{ptr: ptr, size: size}, nil
}

func (h *heap) putString(s string) (block, error) {
	return h.putBytes([]byte(s), true)
}

// putArray writes a u32 array. The array block comes first in the result.
func (h *heap) putArray(entries []uint32, owned []block) ([]block, error) {
	size := uint32(4 * len(entries))
	ptr, err := h.Alloc(size, 4)
	if err != nil {
		h.release(owned)
		return nil, err
	}
	buf := make([]byte, size)
	for i, e := range entries {
		binary.LittleEndian.PutUint32(buf[4*i:], e)
	}
	if err := h.mem.Write(ptr, buf); err != nil {
		h.Free(ptr, size, 4)
		h.release(owned)
		return nil, err
	}
	return append([]block{{ptr: ptr, size: size}}, owned...), nil
}

// putStringList writes each string and an array of pointers to them.
// An empty list allocates nothing.
func (h *heap) putStringList(ss []string) ([]block, error) {
	if len(ss) == 0 {
		return nil, nil
	}
	blocks := make([]block, 0, len(ss)+1)
	entries := make([]uint32, len(ss))
	for i, s := range ss {
		b, err := h.putString(s)
		if err != nil {
			h.release(blocks)
			return nil, err
		}
		blocks = append(blocks, b)
		entries[i] = uint32(b.ptr)
	}
	return h.putArray(entries, blocks)
}

func (h *heap) putHandleList(hs []abi.Handle) ([]block, error) {
	if len(hs) == 0 {
		return nil, nil
	}
	entries := make([]uint32, len(hs))
	for i, v := range hs {
		entries[i] = uint32(v)
	}
	return h.putArray(entries, nil)
}

// owned tracks heap blocks that belong to one object, by attribute key.
// Replacing a key frees its previous blocks.
type owned struct {
	heap   *heap
	blocks map[any][]block
}

func newOwned(h *heap) owned {
	return owned{heap: h, blocks: make(map[any][]block)}
}

func (o *owned) set(key any, blocks []block) {
	o.drop(key)
	if len(blocks) > 0 {
		o.blocks[key] = blocks
	}
}

func (o *owned) get(key any) ([]block, bool) {
	b, ok := o.blocks[key]
	return b, ok
}

func (o *owned) drop(key any) {
	if b, ok := o.blocks[key]; ok {
		o.heap.release(b)
		delete(o.blocks, key)
	}
}

func (o *owned) releaseAll() {
	for key := range o.blocks {
		o.drop(key)
	}
}
