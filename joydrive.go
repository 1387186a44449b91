package joydrive

// Travel is the logical deflection limit, in either direction, around center
const Travel = 70

// Default center values used when no calibration record is stored
const (
	XDefault uint8 = 127
	YDefault uint8 = 127
)

// Calibration record layout in persistent storage
const (
	CalibrationMagic uint8 = 0x23
	ErasedByte       uint8 = 0xFF

	AddrMagic uint16 = 0
	AddrX     uint16 = 1
	AddrY     uint16 = 2
)

// Status is the bitset reported by the drive. Each bit is an independent flag
type Status uint8

const (
	StatusEstopIn Status = 1 << iota
	StatusEstopOut
	StatusSelectIn
	StatusSelectOut
	StatusMoving
)

var statusNames = []struct {
	flag Status
	name string
}{
	{StatusEstopIn, "ESTOP_IN"},
	{StatusEstopOut, "ESTOP_OUT"},
	{StatusSelectIn, "SELECT_IN"},
	{StatusSelectOut, "SELECT_OUT"},
	{StatusMoving, "MOVING"},
}

// Has reports whether every bit in flag is set
func (s Status) Has(flag Status) bool {
	return s&flag == flag
}

// With returns s with flag set or cleared
func (s Status) With(flag Status, set bool) Status {
	if set {
		return s | flag
	}
	return s &^ flag
}

func (s Status) String() string {
	if s == 0 {
		return "IDLE"
	}

	out := ""
	for _, n := range statusNames {
		if !s.Has(n.flag) {
			continue
		}
		if out != "" {
			out += "|"
		}
		out += n.name
	}
	return out
}

// Position is the simulated joystick deflection relative to center
type Position struct {
	X int8
	Y int8
}

// RawPosition holds the output values currently driven on the X and Y PWM channels
type RawPosition struct {
	X uint8
	Y uint8
}

// Calibration is a snapshot of the live center values and the values last written to storage
type Calibration struct {
	XCenter uint8
	YCenter uint8
	StoredX uint8
	StoredY uint8
}
