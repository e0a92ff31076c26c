package native

import (
	"bytes"

	"go.uber.org/zap"

	"github.com/wippyai/udmf/abi"
)

func (l *Library) DataAddRecord(dh, rh abi.Handle) abi.Status {
	l.mu.Lock()
	defer l.mu.Unlock()

	d, ok := lookup[*data](l, dh, abi.KindData)
	if !ok {
		return abi.StatusInvalidParam
	}
	r, ok := lookup[*record](l, rh, abi.KindRecord)
	if !ok {
		return abi.StatusInvalidParam
	}

	h := l.table.Insert(abi.KindRecord, r.clone(l.heap))
	if h == 0 {
		return abi.StatusErr
	}
	l.table.Pin(h)
	d.records = append(d.records, h)
	d.mem.drop(keyRecords)
	return abi.StatusOK
}

func (l *Library) DataHasType(dh abi.Handle, typeID abi.Ptr) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	d, ok := lookup[*data](l, dh, abi.KindData)
	if !ok {
		return false
	}
	id, ok := l.readString(typeID)
	if !ok {
		return false
	}
	for _, rh := range d.records {
		if r, ok := lookup[*record](l, rh, abi.KindRecord); ok && r.find(id) != nil {
			return true
		}
	}
	return false
}

// DataGetTypes lists entry types across all records, first occurrence
// order, without duplicates.
func (l *Library) DataGetTypes(dh abi.Handle) (abi.Ptr, uint32) {
	l.mu.Lock()
	defer l.mu.Unlock()

	d, ok := lookup[*data](l, dh, abi.KindData)
	if !ok {
		return 0, 0
	}
	var ids []string
	seen := make(map[string]bool)
	for _, rh := range d.records {
		r, ok := lookup[*record](l, rh, abi.KindRecord)
		if !ok {
			continue
		}
		for _, id := range r.types() {
			if !seen[id] {
				seen[id] = true
				ids = append(ids, id)
			}
		}
	}
	// records can change through borrowed handles
	d.mem.drop(keyTypes)
	return l.cachedList(&d.mem, keyTypes, ids)
}

func (l *Library) DataGetRecords(dh abi.Handle) (abi.Ptr, uint32) {
	l.mu.Lock()
	defer l.mu.Unlock()

	d, ok := lookup[*data](l, dh, abi.KindData)
	if !ok || len(d.records) == 0 {
		return 0, 0
	}
	if b, ok := d.mem.get(keyRecords); ok {
		return b[0].ptr, uint32(len(d.records))
	}
	blocks, err := l.heap.putHandleList(d.records)
	if err != nil {
		l.log.Error("record list result", zap.Error(err))
		return 0, 0
	}
	d.mem.set(keyRecords, blocks)
	return blocks[0].ptr, uint32(len(d.records))
}

func (l *Library) RecordGetTypes(rh abi.Handle) (abi.Ptr, uint32) {
	l.mu.Lock()
	defer l.mu.Unlock()

	r, ok := lookup[*record](l, rh, abi.KindRecord)
	if !ok {
		return 0, 0
	}
	return l.cachedList(&r.mem, keyTypes, r.types())
}

// readBytes copies a byte argument. A null pointer is only accepted for
// an empty buffer.
func (l *Library) readBytes(p abi.Ptr, size uint32) ([]byte, bool) {
	if size == 0 {
		return []byte{}, true
	}
	if p == 0 {
		return nil, false
	}
	view, err := l.mem.Read(p, size)
	if err != nil {
		l.log.Warn("bad buffer argument", zap.Uint32("ptr", uint32(p)), zap.Error(err))
		return nil, false
	}
	return bytes.Clone(view), true
}

func (l *Library) RecordAddGeneralEntry(rh abi.Handle, typeID, p abi.Ptr, size uint32) abi.Status {
	l.mu.Lock()
	defer l.mu.Unlock()

	r, ok := lookup[*record](l, rh, abi.KindRecord)
	if !ok {
		return abi.StatusInvalidParam
	}
	id, ok := l.readString(typeID)
	if !ok || id == "" {
		return abi.StatusInvalidParam
	}
	buf, ok := l.readBytes(p, size)
	if !ok {
		return abi.StatusInvalidParam
	}

	r.put(entry{
		typeID: id,
		state:  payloadState{bytes: map[abi.Field][]byte{abi.FieldData: buf}},
	})
	return abi.StatusOK
}

// RecordGetGeneralEntry returns the bytes of a general or array buffer
// entry. Structured entries have no byte form.
func (l *Library) RecordGetGeneralEntry(rh abi.Handle, typeID abi.Ptr) (abi.Ptr, uint32, abi.Status) {
	l.mu.Lock()
	defer l.mu.Unlock()

	r, ok := lookup[*record](l, rh, abi.KindRecord)
	if !ok {
		return 0, 0, abi.StatusInvalidParam
	}
	id, ok := l.readString(typeID)
	if !ok {
		return 0, 0, abi.StatusInvalidParam
	}
	e := r.find(id)
	if e == nil || (e.kind != 0 && e.kind != abi.KindArrayBuffer) {
		return 0, 0, abi.StatusErr
	}

	b, err := l.heap.putBytes(e.state.bytes[abi.FieldData], false)
	if err != nil {
		l.log.Error("entry result", zap.Error(err))
		return 0, 0, abi.StatusErr
	}
	r.mem.set(keyEntryData, []block{b})
	return b.ptr, b.size, abi.StatusOK
}

func (l *Library) RecordAddPayload(rh abi.Handle, kind abi.Kind, ph abi.Handle) abi.Status {
	l.mu.Lock()
	defer l.mu.Unlock()

	typeID, ok := payloadTypeIDs[kind]
	if !ok {
		return abi.StatusInvalidParam
	}
	r, ok := lookup[*record](l, rh, abi.KindRecord)
	if !ok {
		return abi.StatusInvalidParam
	}
	p, ok := lookup[*payload](l, ph, kind)
	if !ok {
		return abi.StatusInvalidParam
	}

	r.put(entry{typeID: typeID, kind: kind, state: p.state.clone()})
	return abi.StatusOK
}

func (l *Library) RecordGetPayload(rh abi.Handle, kind abi.Kind, ph abi.Handle) abi.Status {
	l.mu.Lock()
	defer l.mu.Unlock()

	typeID, ok := payloadTypeIDs[kind]
	if !ok {
		return abi.StatusInvalidParam
	}
	r, ok := lookup[*record](l, rh, abi.KindRecord)
	if !ok {
		return abi.StatusInvalidParam
	}
	p, ok := lookup[*payload](l, ph, kind)
	if !ok {
		return abi.StatusInvalidParam
	}

	e := r.find(typeID)
	if e == nil || e.kind != kind {
		return abi.StatusErr
	}
	p.restore(e.state)
	return abi.StatusOK
}

func (l *Library) RecordAddArrayBuffer(rh abi.Handle, typeID abi.Ptr, bh abi.Handle) abi.Status {
	l.mu.Lock()
	defer l.mu.Unlock()

	r, ok := lookup[*record](l, rh, abi.KindRecord)
	if !ok {
		return abi.StatusInvalidParam
	}
	id, ok := l.readString(typeID)
	if !ok || id == "" {
		return abi.StatusInvalidParam
	}
	p, ok := lookup[*payload](l, bh, abi.KindArrayBuffer)
	if !ok {
		return abi.StatusInvalidParam
	}

	r.put(entry{typeID: id, kind: abi.KindArrayBuffer, state: p.state.clone()})
	return abi.StatusOK
}

// RecordGetArrayBuffer fills bh from an array buffer or general entry.
func (l *Library) RecordGetArrayBuffer(rh abi.Handle, typeID abi.Ptr, bh abi.Handle) abi.Status {
	l.mu.Lock()
	defer l.mu.Unlock()

	r, ok := lookup[*record](l, rh, abi.KindRecord)
	if !ok {
		return abi.StatusInvalidParam
	}
	id, ok := l.readString(typeID)
	if !ok {
		return abi.StatusInvalidParam
	}
	p, ok := lookup[*payload](l, bh, abi.KindArrayBuffer)
	if !ok {
		return abi.StatusInvalidParam
	}

	e := r.find(id)
	if e == nil || (e.kind != 0 && e.kind != abi.KindArrayBuffer) {
		return abi.StatusErr
	}
	p.restore(e.state)
	p.typeID = id
	return abi.StatusOK
}
