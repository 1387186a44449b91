//go:build tinygo

package device

import (
	"errors"
	"machine"

	"github.com/calvinmclean/joydrive/drive"
)

const defaultPWMPeriod = 1e9 / 1000 // 1kHz

// PWM is the subset of a TinyGo PWM peripheral needed to drive the joystick axes
type PWM interface {
	Configure(config machine.PWMConfig) error
	Channel(pin machine.Pin) (uint8, error)
	Top() uint32
	Set(channel uint8, value uint32)
}

// Device is the drive.Board for the joystick emulator. The control lines are plain GPIO
// and the axes are two channels of one PWM slice, filtered externally to an analog level
type Device struct {
	pins     [4]machine.Pin
	pwm      PWM
	channels [2]uint8
}

var _ drive.Board = &Device{}

// New configures the control line pins and the joystick PWM
func New(pinCfg PinConfig, joyCfg JoystickConfig) (*Device, error) {
	if joyCfg.PWM == nil {
		return nil, errors.New("missing joystick PWM")
	}
	if joyCfg.Period == 0 {
		joyCfg.Period = defaultPWMPeriod
	}

	d := &Device{
		pwm: joyCfg.PWM,
	}

	d.pins[drive.LineEstopIn] = pinCfg.EstopIn
	d.pins[drive.LineEstopOut] = pinCfg.EstopOut
	d.pins[drive.LineSelectIn] = pinCfg.SelectIn
	d.pins[drive.LineSelectOut] = pinCfg.SelectOut

	pinCfg.EstopIn.Configure(machine.PinConfig{Mode: machine.PinInputPullup})
	pinCfg.SelectIn.Configure(machine.PinConfig{Mode: machine.PinInputPullup})
	pinCfg.EstopOut.Configure(machine.PinConfig{Mode: machine.PinOutput})
	pinCfg.SelectOut.Configure(machine.PinConfig{Mode: machine.PinOutput})

	err := d.pwm.Configure(machine.PWMConfig{Period: joyCfg.Period})
	if err != nil {
		return nil, errors.New("error configuring PWM: " + err.Error())
	}

	d.channels[drive.AxisX], err = d.pwm.Channel(joyCfg.XPin)
	if err != nil {
		return nil, errors.New("error getting X channel: " + err.Error())
	}
	d.channels[drive.AxisY], err = d.pwm.Channel(joyCfg.YPin)
	if err != nil {
		return nil, errors.New("error getting Y channel: " + err.Error())
	}

	return d, nil
}

// SetAxis sets the duty cycle of an axis to value/255
func (d *Device) SetAxis(axis drive.Axis, value uint8) {
	top := uint64(d.pwm.Top())
	d.pwm.Set(d.channels[axis], uint32(top*uint64(value)/255))
}

func (d *Device) SetLine(line drive.Line, high bool) {
	d.pins[line].Set(high)
}

func (d *Device) Line(line drive.Line) bool {
	return d.pins[line].Get()
}
