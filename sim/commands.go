package sim

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/calvinmclean/joydrive/drive"
)

// Simulator owns a Drive attached to a simulated Board and counts its notifications
type Simulator struct {
	Drive *drive.Drive
	Board *Board

	Notifications int
}

// NewSimulator builds a Drive on board and storage that counts its notifications
func NewSimulator(board *Board, storage drive.Storage, verbose bool) *Simulator {
	s := &Simulator{Board: board}
	s.Drive = drive.New(board, storage, s.notify)
	if verbose {
		s.Drive.Verbose()
	}
	return s
}

func (s *Simulator) notify() {
	s.Notifications++
}

// Summary describes the current drive state on one line
func (s *Simulator) Summary() string {
	pos := s.Drive.Position()
	raw := s.Drive.RawPosition()
	cal := s.Drive.Calibration()
	return fmt.Sprintf(
		"pos=(%d,%d) raw=(%d,%d) center=(%d,%d) stored=(%d,%d) status=%s notifications=%d",
		pos.X, pos.Y, raw.X, raw.Y, cal.XCenter, cal.YCenter, cal.StoredX, cal.StoredY,
		s.Drive.Status(), s.Notifications,
	)
}

// Exec runs the named command
func (s *Simulator) Exec(name string, args ...string) error {
	cmd, ok := commandMap[name]
	if !ok {
		return fmt.Errorf("unknown command: %q", name)
	}
	if len(args) != len(cmd.Args) {
		return fmt.Errorf("usage: %s", cmd.Usage())
	}
	return cmd.Run(s, args)
}

// Command is a named shell command run against a Simulator
type Command struct {
	Name        string
	Args        []string
	Run         func(*Simulator, []string) error
	Description string
}

// Usage returns the command name followed by its argument names
func (c *Command) Usage() string {
	out := c.Name
	for _, a := range c.Args {
		out += " <" + a + ">"
	}
	return out
}

var (
	PositionCommand = &Command{
		Name: "pos",
		Args: []string{"x", "y"},
		Run: func(s *Simulator, args []string) error {
			x, err := parsePosition(args[0])
			if err != nil {
				return err
			}
			y, err := parsePosition(args[1])
			if err != nil {
				return err
			}
			s.Drive.SetPosition(x, y)
			return nil
		},
		Description: "Set the joystick position. Values outside -128..127 are clamped.",
	}
	CenterCommand = &Command{
		Name: "center",
		Args: []string{"x", "y"},
		Run: func(s *Simulator, args []string) error {
			x, err := parseCenter(args[0])
			if err != nil {
				return err
			}
			y, err := parseCenter(args[1])
			if err != nil {
				return err
			}
			s.Drive.SetCenter(x, y)
			return nil
		},
		Description: "Set both calibration center values (0-255) and return to center.",
	}
	XCenterCommand = &Command{
		Name: "xcenter",
		Args: []string{"x"},
		Run: func(s *Simulator, args []string) error {
			x, err := parseCenter(args[0])
			if err != nil {
				return err
			}
			s.Drive.SetXCenter(x)
			return nil
		},
		Description: "Set the X calibration center value (0-255).",
	}
	YCenterCommand = &Command{
		Name: "ycenter",
		Args: []string{"y"},
		Run: func(s *Simulator, args []string) error {
			y, err := parseCenter(args[0])
			if err != nil {
				return err
			}
			s.Drive.SetYCenter(y)
			return nil
		},
		Description: "Set the Y calibration center value (0-255).",
	}
	StoreCommand = &Command{
		Name: "store",
		Run: func(s *Simulator, _ []string) error {
			return s.Drive.StoreCalibration()
		},
		Description: "Write the current center values to the EEPROM.",
	}
	EraseCommand = &Command{
		Name: "erase",
		Run: func(s *Simulator, _ []string) error {
			return s.Drive.EraseCalibration()
		},
		Description: "Erase the calibration record. The live center values are kept.",
	}
	LoadCommand = &Command{
		Name: "load",
		Run: func(s *Simulator, _ []string) error {
			if !s.Drive.LoadCalibration() {
				return errors.New("no valid calibration stored")
			}
			return nil
		},
		Description: "Reload the center values from the EEPROM.",
	}
	SelectCommand = &Command{
		Name: "select",
		Args: []string{"on|off"},
		Run: func(s *Simulator, args []string) error {
			on, err := parseLevel(args[0])
			if err != nil {
				return err
			}
			s.Drive.Select(on)
			return nil
		},
		Description: "Drive the select output.",
	}
	EstopCommand = &Command{
		Name: "estop",
		Run: func(s *Simulator, _ []string) error {
			s.Drive.Estop()
			return nil
		},
		Description: "Assert the estop output and return to center.",
	}
	ResetCommand = &Command{
		Name: "reset",
		Run: func(s *Simulator, _ []string) error {
			s.Drive.Reset()
			return nil
		},
		Description: "Return to center and release the estop output.",
	}
	InputCommand = &Command{
		Name: "input",
		Args: []string{"estop|select", "high|low"},
		Run: func(s *Simulator, args []string) error {
			var line drive.Line
			switch args[0] {
			case "estop":
				line = drive.LineEstopIn
			case "select":
				line = drive.LineSelectIn
			default:
				return fmt.Errorf("invalid input line: %q", args[0])
			}

			high, err := parseLevel(args[1])
			if err != nil {
				return err
			}
			s.Board.SetInput(line, high)
			return nil
		},
		Description: "Change a simulated input line level. Run update to poll it.",
	}
	UpdateCommand = &Command{
		Name: "update",
		Run: func(s *Simulator, _ []string) error {
			s.Drive.Update()
			return nil
		},
		Description: "Poll the input lines.",
	}
	StatusCommand = &Command{
		Name:        "status",
		Run:         func(s *Simulator, _ []string) error { return nil },
		Description: "Print the current state.",
	}
)

var commands = []*Command{
	PositionCommand,
	CenterCommand,
	XCenterCommand,
	YCenterCommand,
	StoreCommand,
	EraseCommand,
	LoadCommand,
	SelectCommand,
	EstopCommand,
	ResetCommand,
	InputCommand,
	UpdateCommand,
	StatusCommand,
}

var commandMap = func() map[string]*Command {
	m := make(map[string]*Command, len(commands))
	for _, cmd := range commands {
		m[cmd.Name] = cmd
	}
	return m
}()

// parsePosition parses a signed position and clamps it to the int8 range
func parsePosition(in string) (int8, error) {
	v, err := strconv.ParseInt(in, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid position %q: %w", in, err)
	}
	v = max(math.MinInt8, min(math.MaxInt8, v))
	return int8(v), nil
}

func parseCenter(in string) (uint8, error) {
	v, err := strconv.ParseUint(in, 10, 8)
	if err != nil {
		return 0, fmt.Errorf("invalid center value %q: %w", in, err)
	}
	return uint8(v), nil
}

func parseLevel(in string) (bool, error) {
	switch in {
	case "on", "high", "1", "true":
		return true, nil
	case "off", "low", "0", "false":
		return false, nil
	default:
		return false, fmt.Errorf("invalid level: %q", in)
	}
}
