package drive

// Axis selects one of the two joystick PWM outputs
type Axis uint8

const (
	AxisX Axis = iota
	AxisY
)

// Line selects a digital control line
type Line uint8

const (
	LineEstopIn Line = iota
	LineEstopOut
	LineSelectIn
	LineSelectOut
)

func (l Line) String() string {
	switch l {
	case LineEstopIn:
		return "EstopIn"
	case LineEstopOut:
		return "EstopOut"
	case LineSelectIn:
		return "SelectIn"
	case LineSelectOut:
		return "SelectOut"
	default:
		return "Unknown"
	}
}

// Board is the physical I/O used by the Drive. SetAxis writes a PWM duty value,
// SetLine drives an output line and Line reads an input line level
type Board interface {
	SetAxis(axis Axis, value uint8)
	SetLine(line Line, high bool)
	Line(line Line) bool
}

// Storage is byte-addressed persistent memory, such as an EEPROM
type Storage interface {
	Get(addr uint16) (byte, error)
	Put(addr uint16, value byte) error
}
