package joydrive

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusString(t *testing.T) {
	tests := []struct {
		status   Status
		expected string
	}{
		{0, "IDLE"},
		{StatusEstopOut, "ESTOP_OUT"},
		{StatusEstopIn | StatusMoving, "ESTOP_IN|MOVING"},
		{StatusEstopIn | StatusEstopOut | StatusSelectIn | StatusSelectOut | StatusMoving, "ESTOP_IN|ESTOP_OUT|SELECT_IN|SELECT_OUT|MOVING"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.status.String())
		})
	}
}

func TestStatusWith(t *testing.T) {
	s := StatusEstopOut.With(StatusMoving, true)
	assert.True(t, s.Has(StatusMoving))
	assert.True(t, s.Has(StatusEstopOut|StatusMoving))
	assert.False(t, s.Has(StatusSelectOut))

	s = s.With(StatusEstopOut, false)
	assert.Equal(t, StatusMoving, s)
}

func TestStatusBits(t *testing.T) {
	assert.Equal(t, Status(0x01), StatusEstopIn)
	assert.Equal(t, Status(0x02), StatusEstopOut)
	assert.Equal(t, Status(0x04), StatusSelectIn)
	assert.Equal(t, Status(0x08), StatusSelectOut)
	assert.Equal(t, Status(0x10), StatusMoving)
}
