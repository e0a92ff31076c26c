package native

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/tetratelabs/wazero"
	"go.uber.org/zap"

	"github.com/wippyai/udmf/abi"
	"github.com/wippyai/udmf/marshal"
	"github.com/wippyai/udmf/resource"
)

// Library is an in-process implementation of abi.Library. Its memory is
// a wazero linear memory, so everything the caller exchanges with it goes
// through pointers and lengths exactly as with the platform library.
//
// All methods are safe for concurrent use.
type Library struct {
	runtime wazero.Runtime
	catalog *Catalog
	mem     *memory
	heap    *heap
	table   *resource.UnifiedTable
	lists   map[abi.Ptr][]block
	log     *zap.Logger
	mu      sync.Mutex
	id      uuid.UUID
	closed  bool
}

var _ abi.Library = (*Library)(nil)

// New creates a library with the built-in catalog.
func New(ctx context.Context) (*Library, error) {
	return NewWithConfig(ctx, nil)
}

// NewWithConfig creates a library with custom configuration.
func NewWithConfig(ctx context.Context, cfg *Config) (*Library, error) {
	src := defaultCatalog
	pages := uint32(defaultInitialPages)
	var limit uint32
	log := Logger()

	if cfg != nil {
		if cfg.Catalog != nil {
			src = cfg.Catalog
		}
		if cfg.InitialPages > 0 {
			pages = cfg.InitialPages
		}
		limit = cfg.MemoryLimitPages
		if cfg.Logger != nil {
			log = cfg.Logger
		}
	}
	if limit > 0 && pages > limit {
		return nil, fmt.Errorf("initial pages %d exceed memory limit %d", pages, limit)
	}

	catalog, err := ParseCatalog(src)
	if err != nil {
		return nil, err
	}

	runtimeCfg := wazero.NewRuntimeConfig()
	if limit > 0 {
		runtimeCfg = runtimeCfg.WithMemoryLimitPages(limit)
	}
	runtime := wazero.NewRuntimeWithConfig(ctx, runtimeCfg)

	mod, err := runtime.Instantiate(ctx, heapModule(pages, limit))
	if err != nil {
		_ = runtime.Close(ctx)
		return nil, fmt.Errorf("instantiate heap: %w", err)
	}
	mem := mod.ExportedMemory("memory")
	if mem == nil {
		_ = runtime.Close(ctx)
		return nil, fmt.Errorf("heap module exports no memory")
	}

	id := uuid.New()
	log = log.With(zap.String("library", id.String()))

	m := &memory{mem: mem}
	l := &Library{
		runtime: runtime,
		catalog: catalog,
		mem:     m,
		heap:    newHeap(m, log),
		table:   resource.NewTable(),
		lists:   make(map[abi.Ptr][]block),
		log:     log,
		id:      id,
	}
	l.table.Subscribe(&eventLogger{log: log})

	log.Debug("library ready",
		zap.Int("types", catalog.Len()),
		zap.Uint32("pages", pages))
	return l, nil
}

// Close destroys every live object and releases the memory.
func (l *Library) Close(ctx context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return nil
	}
	l.closed = true

	if n := l.table.Len(); n > 0 {
		l.log.Debug("closing with live objects", zap.Int("objects", n))
	}
	l.table.Clear()
	_ = l.table.Close()
	for _, blocks := range l.lists {
		l.heap.release(blocks)
	}
	l.lists = nil

	return l.runtime.Close(ctx)
}

// ID identifies this library instance in logs.
func (l *Library) ID() uuid.UUID {
	return l.id
}

// Catalog returns the type catalog the library serves.
func (l *Library) Catalog() *Catalog {
	return l.catalog
}

// Subscribe adds an observer for object lifecycle events.
func (l *Library) Subscribe(o resource.Observer) {
	l.table.Subscribe(o)
}

// Unsubscribe removes an observer.
func (l *Library) Unsubscribe(o resource.Observer) {
	l.table.Unsubscribe(o)
}

// Stats is a snapshot of live library state.
type Stats struct {
	Objects    int
	Records    int
	Lists      int
	HeapBlocks int
	HeapBytes  uint64
}

// Stats reports live objects and memory. A caller that has closed every
// owner and released every list sees zero objects and zero heap blocks.
func (l *Library) Stats() Stats {
	l.mu.Lock()
	lists := len(l.lists)
	l.mu.Unlock()

	blocks, bytes := l.heap.stats()
	return Stats{
		Objects:    l.table.Len(),
		Records:    l.table.LenOf(abi.KindRecord),
		Lists:      lists,
		HeapBlocks: blocks,
		HeapBytes:  bytes,
	}
}

func (l *Library) Memory() abi.Memory {
	return l.mem
}

func (l *Library) Allocator() abi.Allocator {
	return l.heap
}

// Create implements abi.Lifecycle. Descriptors are created by UtdCreate.
func (l *Library) Create(kind abi.Kind) abi.Handle {
	var v any
	switch {
	case kind == abi.KindData:
		v = &data{table: l.table, mem: newOwned(l.heap)}
	case kind == abi.KindRecord:
		v = newRecord(l.heap)
	case kind.IsPayload():
		v = newPayload(kind, l.heap)
	case kind == abi.KindPixelmapNative:
		v = &pixelmap{}
	default:
		l.log.Warn("create of unsupported kind", zap.Stringer("kind", kind))
		return 0
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	return l.table.Insert(kind, v)
}

// Destroy implements abi.Lifecycle. Unknown handles, kind mismatches and
// records owned by a data store are logged and left alone.
func (l *Library) Destroy(kind abi.Kind, h abi.Handle) {
	l.mu.Lock()
	defer l.mu.Unlock()

	actual, ok := l.table.Kind(h)
	switch {
	case !ok:
		l.log.Warn("destroy of unknown handle",
			zap.Stringer("kind", kind), zap.Uint32("handle", uint32(h)))
	case actual != kind:
		l.log.Warn("destroy with mismatched kind",
			zap.Stringer("kind", kind), zap.Stringer("actual", actual),
			zap.Uint32("handle", uint32(h)))
	case l.table.Pinned(h):
		l.log.Warn("destroy of object owned by a data store",
			zap.Stringer("kind", kind), zap.Uint32("handle", uint32(h)))
	default:
		l.table.Remove(h)
	}
}

// readString reads a required string argument.
func (l *Library) readString(p abi.Ptr) (string, bool) {
	if p == 0 {
		return "", false
	}
	s, err := marshal.ReadString(l.mem, p)
	if err != nil {
		l.log.Warn("bad string argument", zap.Uint32("ptr", uint32(p)), zap.Error(err))
		return "", false
	}
	return s, true
}

// cachedString returns the object-owned copy of s under key, writing it
// on first use. Empty strings read as absent.
func (l *Library) cachedString(o *owned, key any, s string) abi.Ptr {
	if s == "" {
		return 0
	}
	if b, ok := o.get(key); ok {
		return b[0].ptr
	}
	b, err := l.heap.putString(s)
	if err != nil {
		l.log.Error("string result", zap.Error(err))
		return 0
	}
	o.set(key, []block{b})
	return b.ptr
}

// cachedList is cachedString for string lists.
func (l *Library) cachedList(o *owned, key any, ss []string) (abi.Ptr, uint32) {
	if len(ss) == 0 {
		return 0, 0
	}
	if b, ok := o.get(key); ok {
		return b[0].ptr, uint32(len(ss))
	}
	blocks, err := l.heap.putStringList(ss)
	if err != nil {
		l.log.Error("list result", zap.Error(err))
		return 0, 0
	}
	o.set(key, blocks)
	return blocks[0].ptr, uint32(len(ss))
}

func lookup[T any](l *Library, h abi.Handle, kind abi.Kind) (T, bool) {
	return resource.Lookup[T](l.table, h, kind)
}
