package sim

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calvinmclean/joydrive"
	"github.com/calvinmclean/joydrive/drive"
)

func TestStorage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "eeprom.db")

	s, err := OpenStorage(path)
	require.NoError(t, err)

	b, err := s.Get(joydrive.AddrMagic)
	require.NoError(t, err)
	assert.Equal(t, joydrive.ErasedByte, b)

	require.NoError(t, s.Put(joydrive.AddrX, 42))
	b, err = s.Get(joydrive.AddrX)
	require.NoError(t, err)
	assert.Equal(t, byte(42), b)

	require.NoError(t, s.Close())

	t.Run("PersistsAcrossReopen", func(t *testing.T) {
		s, err := OpenStorage(path)
		require.NoError(t, err)
		defer s.Close()

		b, err := s.Get(joydrive.AddrX)
		require.NoError(t, err)
		assert.Equal(t, byte(42), b)
	})
}

func TestStorageCalibrationRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "eeprom.db")

	s, err := OpenStorage(path)
	require.NoError(t, err)

	d := drive.New(NewBoard(false, false), s, nil)
	assert.Equal(t, joydrive.Calibration{XCenter: 127, YCenter: 127}, d.Calibration())

	d.SetCenter(90, 160)
	require.NoError(t, d.StoreCalibration())
	require.NoError(t, s.Close())

	s, err = OpenStorage(path)
	require.NoError(t, err)
	defer s.Close()

	d = drive.New(NewBoard(false, false), s, nil)
	assert.Equal(t, joydrive.Calibration{XCenter: 90, YCenter: 160, StoredX: 90, StoredY: 160}, d.Calibration())

	require.NoError(t, d.EraseCalibration())
	d = drive.New(NewBoard(false, false), s, nil)
	assert.Equal(t, joydrive.Calibration{XCenter: 127, YCenter: 127}, d.Calibration())
}
