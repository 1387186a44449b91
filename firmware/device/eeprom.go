//go:build tinygo

package device

import (
	"errors"
	"machine"
	"time"

	"tinygo.org/x/drivers/at24cx"

	"github.com/calvinmclean/joydrive/drive"
)

const defaultWriteDelay = 5 * time.Millisecond

// EEPROM stores the calibration record on an AT24Cxx I2C EEPROM
type EEPROM struct {
	dev        at24cx.Device
	writeDelay time.Duration
}

var _ drive.Storage = &EEPROM{}

// NewEEPROM configures the I2C bus and the EEPROM
func NewEEPROM(cfg EEPROMConfig) (*EEPROM, error) {
	if cfg.Bus == nil {
		return nil, errors.New("missing EEPROM I2C bus")
	}

	err := cfg.Bus.Configure(machine.I2CConfig{
		SDA: cfg.SDA,
		SCL: cfg.SCL,
	})
	if err != nil {
		return nil, errors.New("error configuring I2C: " + err.Error())
	}

	if cfg.WriteDelay == 0 {
		cfg.WriteDelay = defaultWriteDelay
	}

	dev := at24cx.New(cfg.Bus)
	dev.Configure(at24cx.Config{PageSize: cfg.PageSize})

	return &EEPROM{
		dev:        dev,
		writeDelay: cfg.WriteDelay,
	}, nil
}

func (e *EEPROM) Get(addr uint16) (byte, error) {
	return e.dev.ReadByte(addr)
}

// Put writes a single byte and waits for the write cycle to complete
func (e *EEPROM) Put(addr uint16, value byte) error {
	err := e.dev.WriteByte(addr, value)
	if err != nil {
		return err
	}
	time.Sleep(e.writeDelay)
	return nil
}
