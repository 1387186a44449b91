//go:build tinygo

package main

import (
	"machine"
	"time"

	"github.com/calvinmclean/joydrive"
	"github.com/calvinmclean/joydrive/drive"
	"github.com/calvinmclean/joydrive/firmware/device"
)

const pollInterval = 10 * time.Millisecond

func main() {
	pinCfg := device.PinConfig{
		EstopIn:   machine.GP4,
		EstopOut:  machine.GP5,
		SelectIn:  machine.GP6,
		SelectOut: machine.GP7,
	}

	joyCfg := device.JoystickConfig{
		PWM:  machine.PWM4,
		XPin: machine.GP8,
		YPin: machine.GP9,
	}

	eepromCfg := device.EEPROMConfig{
		Bus:      machine.I2C0,
		SDA:      machine.GP0,
		SCL:      machine.GP1,
		PageSize: 32,
	}

	board, err := device.New(pinCfg, joyCfg)
	if err != nil {
		panic(err)
	}

	eeprom, err := device.NewEEPROM(eepromCfg)
	if err != nil {
		panic(err)
	}

	led := machine.LED
	led.Configure(machine.PinConfig{Mode: machine.PinOutput})

	var d *drive.Drive
	d = drive.New(board, eeprom, func() {
		// LED is lit while the joystick is deflected or the estop input is high
		status := d.Status()
		led.Set(status.Has(joydrive.StatusMoving) || status.Has(joydrive.StatusEstopIn))
		println("status:", status.String())
	})

	cal := d.Calibration()
	println("calibration:", cal.XCenter, cal.YCenter, "stored:", cal.StoredX, cal.StoredY)

	for {
		d.Update()
		time.Sleep(pollInterval)
	}
}
