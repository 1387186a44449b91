package drive

import (
	"errors"
	"math"

	"github.com/calvinmclean/joydrive"
)

// Output levels for the control lines. The estop output is active low
const (
	estopActive   = false
	estopInactive = true
)

// Drive emulates a two-axis joystick around a calibrated center and manages the
// estop/select control lines. It is not safe for concurrent use; the owner is
// expected to call Update periodically so input transitions are observed
type Drive struct {
	board   Board
	storage Storage
	notify  func()

	status joydrive.Status

	xCenter uint8
	yCenter uint8
	storedX uint8
	storedY uint8

	xPosition int8
	yPosition int8
	xValue    uint8
	yValue    uint8

	verbose bool
}

// New sets the control outputs to their idle levels, loads calibration from storage
// and centers the joystick. notify is called synchronously whenever the observable
// state changes and must not call back into SetPosition, Select, Estop, Reset or Update
func New(board Board, storage Storage, notify func()) *Drive {
	if notify == nil {
		notify = func() {}
	}

	d := &Drive{
		board:   board,
		storage: storage,
		notify:  notify,
	}

	board.SetLine(LineSelectOut, false)
	board.SetLine(LineEstopOut, estopInactive)
	d.status = joydrive.StatusEstopOut

	if !d.LoadCalibration() {
		d.xCenter = joydrive.XDefault
		d.yCenter = joydrive.YDefault
	}

	d.setPosition(0, 0)

	return d
}

// Verbose enables logging of every operation to the console
func (d *Drive) Verbose() {
	d.verbose = true
	println("drive: set verbose mode")
}

// LoadCalibration reads the calibration record from storage. It returns false and leaves
// the current calibration alone if the record is missing or unreadable
func (d *Drive) LoadCalibration() bool {
	magic, err := d.storage.Get(joydrive.AddrMagic)
	if err != nil {
		d.logErr("error reading calibration magic", err)
		return false
	}
	if magic != joydrive.CalibrationMagic {
		if d.verbose {
			println("drive: no calibration stored")
		}
		return false
	}

	x, err := d.storage.Get(joydrive.AddrX)
	if err != nil {
		d.logErr("error reading x calibration", err)
		return false
	}
	y, err := d.storage.Get(joydrive.AddrY)
	if err != nil {
		d.logErr("error reading y calibration", err)
		return false
	}

	d.storedX, d.storedY = x, y
	d.xCenter, d.yCenter = x, y

	if d.verbose {
		println("drive: loaded calibration", x, y)
	}
	return true
}

// StoreCalibration writes the current center values to storage. The live centers are
// never changed, so a failed write only affects the stored record
func (d *Drive) StoreCalibration() error {
	if d.verbose {
		println("drive: StoreCalibration", d.xCenter, d.yCenter)
	}

	d.storedX = d.xCenter
	d.storedY = d.yCenter

	return d.writeRecord(joydrive.CalibrationMagic, d.storedX, d.storedY)
}

// EraseCalibration resets the stored record to the erased pattern. The live centers are kept
func (d *Drive) EraseCalibration() error {
	if d.verbose {
		println("drive: EraseCalibration")
	}

	d.storedX = 0
	d.storedY = 0

	return d.writeRecord(joydrive.ErasedByte, joydrive.ErasedByte, joydrive.ErasedByte)
}

// writeRecord invalidates the magic before touching the data bytes and only writes a valid
// magic once both bytes are stored, so an interrupted write never leaves a loadable record
func (d *Drive) writeRecord(magic, x, y uint8) error {
	err := d.storage.Put(joydrive.AddrMagic, joydrive.ErasedByte)
	if err != nil {
		return errors.New("error invalidating calibration magic: " + err.Error())
	}
	err = d.storage.Put(joydrive.AddrX, x)
	if err != nil {
		return errors.New("error writing x calibration: " + err.Error())
	}
	err = d.storage.Put(joydrive.AddrY, y)
	if err != nil {
		return errors.New("error writing y calibration: " + err.Error())
	}
	if magic == joydrive.ErasedByte {
		return nil
	}
	err = d.storage.Put(joydrive.AddrMagic, magic)
	if err != nil {
		return errors.New("error writing calibration magic: " + err.Error())
	}
	return nil
}

// SetCenter changes both center values and returns the joystick to center
func (d *Drive) SetCenter(x, y uint8) {
	d.xCenter = x
	d.yCenter = y
	d.Center()
}

// SetXCenter changes the X center value and returns the joystick to center
func (d *Drive) SetXCenter(x uint8) {
	d.xCenter = x
	d.Center()
}

// SetYCenter changes the Y center value and returns the joystick to center
func (d *Drive) SetYCenter(y uint8) {
	d.yCenter = y
	d.Center()
}

// Center returns the simulated joystick to its center position
func (d *Drive) Center() {
	d.SetPosition(0, 0)
}

// SetPosition scales x and y from the full int8 range onto the travel envelope and drives
// the outputs. Out of range values are clamped. notify is always called
func (d *Drive) SetPosition(x, y int8) {
	if d.verbose {
		println("drive: SetPosition", x, y)
	}
	d.setPosition(x, y)
	d.notify()
}

func (d *Drive) setPosition(x, y int8) {
	mx := scale(x)
	my := scale(y)

	d.status = d.status.With(joydrive.StatusMoving, mx != 0 || my != 0)

	d.xPosition = int8(clamp(mx, -joydrive.Travel, joydrive.Travel))
	d.yPosition = int8(clamp(my, -joydrive.Travel, joydrive.Travel))

	d.xValue = uint8(clamp(int(d.xCenter)+int(d.xPosition), 0, math.MaxUint8))
	d.yValue = uint8(clamp(int(d.yCenter)+int(d.yPosition), 0, math.MaxUint8))

	d.board.SetAxis(AxisX, d.xValue)
	d.board.SetAxis(AxisY, d.yValue)
}

// Select drives the select output line and always calls notify
func (d *Drive) Select(enabled bool) {
	if d.verbose {
		println("drive: Select", enabled)
	}
	d.board.SetLine(LineSelectOut, enabled)
	d.status = d.status.With(joydrive.StatusSelectOut, enabled)
	d.notify()
}

// Estop asserts the estop output and forces the joystick to center
func (d *Drive) Estop() {
	if d.verbose {
		println("drive: Estop")
	}
	d.board.SetLine(LineEstopOut, estopActive)
	d.status |= joydrive.StatusEstopOut
	d.Center()
}

// Reset centers the joystick and releases the estop output. The calibration is not changed
func (d *Drive) Reset() {
	if d.verbose {
		println("drive: Reset")
	}
	d.setPosition(0, 0)
	d.board.SetLine(LineEstopOut, estopInactive)
	d.status &^= joydrive.StatusEstopOut
	d.notify()
}

// Update polls the estop and select inputs. notify is only called if the status changed
func (d *Drive) Update() {
	prev := d.status

	d.status = d.status.
		With(joydrive.StatusEstopIn, d.board.Line(LineEstopIn)).
		With(joydrive.StatusSelectIn, d.board.Line(LineSelectIn))

	if d.status != prev {
		if d.verbose {
			println("drive: status changed", prev.String(), "->", d.status.String())
		}
		d.notify()
	}
}

// Status returns the current status bits
func (d *Drive) Status() joydrive.Status {
	return d.status
}

// Position returns the current joystick position relative to center
func (d *Drive) Position() joydrive.Position {
	return joydrive.Position{X: d.xPosition, Y: d.yPosition}
}

// RawPosition returns the values currently written to the PWM outputs
func (d *Drive) RawPosition() joydrive.RawPosition {
	return joydrive.RawPosition{X: d.xValue, Y: d.yValue}
}

// Calibration returns the live and stored center values
func (d *Drive) Calibration() joydrive.Calibration {
	return joydrive.Calibration{
		XCenter: d.xCenter,
		YCenter: d.yCenter,
		StoredX: d.storedX,
		StoredY: d.storedY,
	}
}

func (d *Drive) logErr(msg string, err error) {
	if d.verbose {
		println("drive:", msg+":", err.Error())
	}
}

// scale maps v from [-128, 127] onto [-Travel, Travel]
func scale(v int8) int {
	const inMin, inMax = math.MinInt8, math.MaxInt8
	return (int(v)-inMin)*(2*joydrive.Travel)/(inMax-inMin) - joydrive.Travel
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
