package sim

import (
	"github.com/calvinmclean/joydrive/drive"
)

// Board is a drive.Board that keeps line levels and axis values in memory. Input lines
// are changed with SetInput to simulate the external device
type Board struct {
	Axes  [2]uint8
	Lines [4]bool

	// AxisWrites counts every SetAxis call
	AxisWrites int
}

var _ drive.Board = &Board{}

// NewBoard creates a Board with the input lines at the given levels
func NewBoard(estopIn, selectIn bool) *Board {
	b := &Board{}
	b.Lines[drive.LineEstopIn] = estopIn
	b.Lines[drive.LineSelectIn] = selectIn
	return b
}

func (b *Board) SetAxis(axis drive.Axis, value uint8) {
	b.Axes[axis] = value
	b.AxisWrites++
}

func (b *Board) SetLine(line drive.Line, high bool) {
	b.Lines[line] = high
}

func (b *Board) Line(line drive.Line) bool {
	return b.Lines[line]
}

// SetInput changes the level of an input line. Only LineEstopIn and LineSelectIn are inputs
func (b *Board) SetInput(line drive.Line, high bool) bool {
	if line != drive.LineEstopIn && line != drive.LineSelectIn {
		return false
	}
	b.Lines[line] = high
	return true
}
