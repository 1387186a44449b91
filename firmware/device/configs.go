//go:build tinygo

package device

import (
	"machine"
	"time"
)

// PinConfig has the digital control line assignments
type PinConfig struct {
	EstopIn   machine.Pin
	EstopOut  machine.Pin
	SelectIn  machine.Pin
	SelectOut machine.Pin
}

// JoystickConfig has the PWM slice and pins used for the simulated joystick axes. Both
// pins must belong to PWM
type JoystickConfig struct {
	PWM    PWM
	XPin   machine.Pin
	YPin   machine.Pin
	Period uint64
}

// EEPROMConfig has values for the external I2C EEPROM holding the calibration record
type EEPROMConfig struct {
	Bus      *machine.I2C
	SDA      machine.Pin
	SCL      machine.Pin
	PageSize uint16
	// WriteDelay is the time the EEPROM needs to finish an internal write cycle
	WriteDelay time.Duration
}
