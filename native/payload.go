package native

import (
	"go.uber.org/zap"

	"github.com/wippyai/udmf/abi"
)

func (l *Library) payload(kind abi.Kind, h abi.Handle) (*payload, bool) {
	if !kind.IsPayload() {
		return nil, false
	}
	return lookup[*payload](l, h, kind)
}

// PayloadGetString returns a payload-owned string. FieldType reads the
// entry type the payload is stored under.
func (l *Library) PayloadGetString(kind abi.Kind, h abi.Handle, f abi.Field) abi.Ptr {
	l.mu.Lock()
	defer l.mu.Unlock()

	p, ok := l.payload(kind, h)
	if !ok {
		return 0
	}
	if f == abi.FieldType {
		return l.cachedString(&p.mem, f, p.entryType())
	}
	if !p.hasString(f) {
		l.log.Warn("string field not defined for payload",
			zap.Stringer("kind", kind), zap.Uint32("field", uint32(f)))
		return 0
	}
	return l.cachedString(&p.mem, f, p.state.strs[f])
}

func (l *Library) PayloadSetString(kind abi.Kind, h abi.Handle, f abi.Field, value abi.Ptr) abi.Status {
	l.mu.Lock()
	defer l.mu.Unlock()

	p, ok := l.payload(kind, h)
	if !ok || !p.hasString(f) {
		return abi.StatusInvalidParam
	}
	s, ok := l.readString(value)
	if !ok {
		return abi.StatusInvalidParam
	}
	p.state.strs[f] = s
	p.mem.drop(f)
	return abi.StatusOK
}

// PayloadGetBytes returns bytes valid until the next call on h.
func (l *Library) PayloadGetBytes(kind abi.Kind, h abi.Handle, f abi.Field) (abi.Ptr, uint32, abi.Status) {
	l.mu.Lock()
	defer l.mu.Unlock()

	p, ok := l.payload(kind, h)
	if !ok || !p.hasBytes(f) {
		return 0, 0, abi.StatusInvalidParam
	}
	b, err := l.heap.putBytes(p.state.bytes[f], false)
	if err != nil {
		l.log.Error("bytes result", zap.Error(err))
		return 0, 0, abi.StatusErr
	}
	p.mem.set(f, []block{b})
	return b.ptr, b.size, abi.StatusOK
}

func (l *Library) PayloadSetBytes(kind abi.Kind, h abi.Handle, f abi.Field, p abi.Ptr, size uint32) abi.Status {
	l.mu.Lock()
	defer l.mu.Unlock()

	pl, ok := l.payload(kind, h)
	if !ok || !pl.hasBytes(f) {
		return abi.StatusInvalidParam
	}
	buf, ok := l.readBytes(p, size)
	if !ok {
		return abi.StatusInvalidParam
	}
	pl.state.bytes[f] = buf
	pl.mem.drop(f)
	return abi.StatusOK
}

func (l *Library) PixelMapGet(h abi.Handle) abi.Handle {
	l.mu.Lock()
	defer l.mu.Unlock()

	p, ok := l.payload(abi.KindPixelMap, h)
	if !ok {
		return 0
	}
	return p.state.pixelmap
}

// PixelMapSet attaches a live pixel buffer. A null or unknown pixel
// buffer is rejected and the current one is kept.
func (l *Library) PixelMapSet(h, pm abi.Handle) abi.Status {
	l.mu.Lock()
	defer l.mu.Unlock()

	p, ok := l.payload(abi.KindPixelMap, h)
	if !ok || pm == 0 {
		return abi.StatusInvalidParam
	}
	if _, ok := l.table.GetTyped(pm, abi.KindPixelmapNative); !ok {
		return abi.StatusInvalidParam
	}
	p.state.pixelmap = pm
	return abi.StatusOK
}
