package native

import (
	"bytes"
	"sync"
	"testing"

	"github.com/wippyai/udmf/abi"
)

func TestMemory_ReadWrite(t *testing.T) {
	_, mem, _ := newTestHeap(t, 1, 0)
	m := &memory{mem: mem}

	data := []byte{1, 2, 3, 4}
	if err := m.Write(8, data); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	read, err := m.Read(8, 4)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	for i, b := range read {
		if b != data[i] {
			t.Errorf("byte %d: expected %d, got %d", i, data[i], b)
		}
	}

	if v, err := m.ReadU8(9); err != nil || v != 2 {
		t.Errorf("ReadU8: got %d, %v", v, err)
	}
	if m.Size() != pageSize {
		t.Errorf("Size: expected %d, got %d", pageSize, m.Size())
	}
}

func TestMemory_IntegerReadWrite(t *testing.T) {
	_, mem, _ := newTestHeap(t, 1, 0)
	m := &memory{mem: mem}

	if err := m.WriteU32(16, 0xDEADBEEF); err != nil {
		t.Fatalf("WriteU32 failed: %v", err)
	}
	v, err := m.ReadU32(16)
	if err != nil {
		t.Fatalf("ReadU32 failed: %v", err)
	}
	if v != 0xDEADBEEF {
		t.Errorf("expected 0xDEADBEEF, got 0x%X", v)
	}

	// little endian
	if b, _ := m.ReadU8(16); b != 0xEF {
		t.Errorf("expected low byte 0xEF, got 0x%X", b)
	}
}

func TestMemory_OutOfBounds(t *testing.T) {
	_, mem, _ := newTestHeap(t, 1, 0)
	m := &memory{mem: mem}

	tests := []struct {
		name string
		fn   func() error
	}{
		{"read", func() error { _, err := m.Read(pageSize, 1); return err }},
		{"write", func() error { return m.Write(pageSize, []byte{1}) }},
		{"read u8", func() error { _, err := m.ReadU8(pageSize); return err }},
		{"read u32", func() error { _, err := m.ReadU32(pageSize - 2); return err }},
		{"write u32", func() error { return m.WriteU32(abi.Ptr(pageSize-2), 1) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.fn(); err == nil {
				t.Error("expected out of bounds error")
			}
		})
	}
}

func TestMemory_AccessDuringGrow(t *testing.T) {
	h, _, _ := newTestHeap(t, 1, 0)

	want := []byte("survives growth")
	b, err := h.putBytes(want, false)
	if err != nil {
		t.Fatalf("putBytes failed: %v", err)
	}

	var wg sync.WaitGroup
	wg.Go(func() {
		for range 16 {
			if _, err := h.Alloc(pageSize, 8); err != nil {
				t.Errorf("Alloc failed: %v", err)
				return
			}
		}
	})
	wg.Go(func() {
		for i := range 256 {
			if err := h.mem.WriteU32(b.ptr, uint32(i)); err != nil {
				t.Errorf("WriteU32 failed: %v", err)
				return
			}
			if err := h.mem.Write(b.ptr, want[:4]); err != nil {
				t.Errorf("Write failed: %v", err)
				return
			}
			if _, err := h.mem.Read(b.ptr, b.size); err != nil {
				t.Errorf("Read failed: %v", err)
				return
			}
		}
	})
	wg.Wait()

	got, err := h.mem.Read(b.ptr, b.size)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if !bytes.Equal(got, want) {
		t.Errorf("expected %q, got %q", want, got)
	}
	if size := h.mem.Size(); size < 17*pageSize {
		t.Errorf("expected memory to grow past %d, got %d", 17*pageSize, size)
	}
}
