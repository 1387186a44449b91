package sim

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/asdine/storm/v3"

	"github.com/calvinmclean/joydrive"
	"github.com/calvinmclean/joydrive/drive"
)

const eepromBucket = "eeprom"

// Storage is a drive.Storage that persists the EEPROM image in a storm database, one
// key per address. Addresses that were never written read as erased
type Storage struct {
	db *storm.DB
}

var _ drive.Storage = &Storage{}

// OpenStorage opens or creates the database at path, creating the parent directory if needed
func OpenStorage(path string) (*Storage, error) {
	dir := filepath.Dir(path)
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		err = os.MkdirAll(dir, 0o755)
		if err != nil {
			return nil, fmt.Errorf("error creating storage directory: %w", err)
		}
	}

	db, err := storm.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening storage: %w", err)
	}

	return &Storage{db: db}, nil
}

func (s *Storage) Get(addr uint16) (byte, error) {
	var value byte
	err := s.db.Get(eepromBucket, addr, &value)
	if errors.Is(err, storm.ErrNotFound) {
		return joydrive.ErasedByte, nil
	}
	if err != nil {
		return 0, fmt.Errorf("error reading address %d: %w", addr, err)
	}
	return value, nil
}

func (s *Storage) Put(addr uint16, value byte) error {
	err := s.db.Set(eepromBucket, addr, value)
	if err != nil {
		return fmt.Errorf("error writing address %d: %w", addr, err)
	}
	return nil
}

func (s *Storage) Close() error {
	return s.db.Close()
}
