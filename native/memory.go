package native

import (
	"fmt"
	"sync"

	"github.com/tetratelabs/wazero/api"

	"github.com/wippyai/udmf/abi"
)

// memory adapts wazero api.Memory to abi.Memory.
//
// mu guards the buffer itself, not its contents: every access holds the
// read lock and grow holds the write lock, so a grow never moves the
// buffer under a concurrent access. Views returned by Read keep the bytes
// they saw; nothing writes through them.
type memory struct {
	mem api.Memory
	mu  sync.RWMutex
}

func (m *memory) Read(offset abi.Ptr, length uint32) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	data, ok := m.mem.Read(uint32(offset), length)
	if !ok {
		return nil, fmt.Errorf("memory read out of bounds: offset=%d, length=%d", offset, length)
	}
	return data, nil
}

func (m *memory) Write(offset abi.Ptr, data []byte) error {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if !m.mem.Write(uint32(offset), data) {
		return fmt.Errorf("memory write out of bounds: offset=%d, length=%d", offset, len(data))
	}
	return nil
}

func (m *memory) ReadU8(offset abi.Ptr) (uint8, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	v, ok := m.mem.ReadByte(uint32(offset))
	if !ok {
		return 0, fmt.Errorf("memory read out of bounds: offset=%d", offset)
	}
	return v, nil
}

func (m *memory) ReadU32(offset abi.Ptr) (uint32, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	v, ok := m.mem.ReadUint32Le(uint32(offset))
	if !ok {
		return 0, fmt.Errorf("memory read out of bounds: offset=%d", offset)
	}
	return v, nil
}

func (m *memory) WriteU32(offset abi.Ptr, value uint32) error {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if !m.mem.WriteUint32Le(uint32(offset), value) {
		return fmt.Errorf("memory write out of bounds: offset=%d", offset)
	}
	return nil
}

func (m *memory) Size() uint32 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.mem.Size()
}

// grow extends the memory so it holds at least end bytes.
func (m *memory) grow(end uint64) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	cur := uint64(m.mem.Size())
	if end <= cur {
		return true
	}
	pages := uint32((end - cur + pageSize - 1) / pageSize)
	_, ok := m.mem.Grow(pages)
	return ok
}
