package drive

import (
	"errors"
	"strconv"

	"github.com/calvinmclean/joydrive"
)

// ErrAddressRange is returned by MemoryStorage for addresses past the end of the image
var ErrAddressRange = errors.New("address out of range")

// MemoryStorage is a Storage backed by a byte slice. A new image reads as erased EEPROM
type MemoryStorage struct {
	data []byte

	// WriteErr, if set, is returned by every Put call without changing the image
	WriteErr error
}

// NewMemoryStorage creates an erased image of the given size
func NewMemoryStorage(size int) *MemoryStorage {
	data := make([]byte, size)
	for i := range data {
		data[i] = joydrive.ErasedByte
	}
	return &MemoryStorage{data: data}
}

func (m *MemoryStorage) Get(addr uint16) (byte, error) {
	if int(addr) >= len(m.data) {
		return 0, errors.New("read " + strconv.Itoa(int(addr)) + ": " + ErrAddressRange.Error())
	}
	return m.data[addr], nil
}

func (m *MemoryStorage) Put(addr uint16, value byte) error {
	if m.WriteErr != nil {
		return m.WriteErr
	}
	if int(addr) >= len(m.data) {
		return errors.New("write " + strconv.Itoa(int(addr)) + ": " + ErrAddressRange.Error())
	}
	m.data[addr] = value
	return nil
}

// Bytes returns a copy of the image
func (m *MemoryStorage) Bytes() []byte {
	out := make([]byte, len(m.data))
	copy(out, m.data)
	return out
}
