package shift_test

import (
	"testing"

	"github.com/yoshiboykidd/karinto-castmanager-sub000/internal/shift"

	"github.com/stretchr/testify/assert"
)

func TestPadTime(t *testing.T) {
	assert.Equal(t, "09:30", shift.PadTime("9:30"))
	assert.Equal(t, "11:00", shift.PadTime("11:00"))
	assert.Equal(t, "OFF", shift.PadTime("OFF"))
	assert.Equal(t, "23:30", shift.PadTime(" 23:30 "))
}

func TestValidTime(t *testing.T) {
	assert.True(t, shift.ValidTime("11:00"))
	assert.True(t, shift.ValidTime("OFF"))
	assert.False(t, shift.ValidTime("9:30"))
	assert.False(t, shift.ValidTime(""))
	assert.False(t, shift.ValidTime("25:0"))
}

func TestInverted(t *testing.T) {
	cases := []struct {
		start, end string
		want       bool
	}{
		{"11:00", "23:30", false},
		{"00:00", "00:01", false},
		{"20:00", "10:00", true},
		{"11:00", "11:00", true},
		{"OFF", "OFF", false},
		{"OFF", "10:00", false},
		{"10:00", "OFF", false},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, shift.Inverted(c.start, c.end), "%s-%s", c.start, c.end)
	}
}
