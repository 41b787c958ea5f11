package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeOfDay(t *testing.T) {
	tod, err := NewTimeOfDay(8, 30)
	require.NoError(t, err)
	assert.Equal(t, 8, tod.Hour())
	assert.Equal(t, 30, tod.Minute())

	_, err = NewTimeOfDay(24, 0)
	assert.ErrorIs(t, err, ErrInvalidTimeOfDay)

	_, err = NewTimeOfDay(10, 60)
	assert.ErrorIs(t, err, ErrInvalidTimeOfDay)
}

func TestParse(t *testing.T) {
	tests := []struct {
		input string
		want  TimeOfDay
	}{
		{"8:00 AM", TimeOfDay(8 * 60)},
		{"08:00 AM", TimeOfDay(8 * 60)},
		{"12:00 PM", TimeOfDay(12 * 60)},
		{"12:00 AM", TimeOfDay(0)},
		{"5:00 PM", TimeOfDay(17 * 60)},
		{"08:00", TimeOfDay(8 * 60)},
		{"17:30", TimeOfDay(17*60 + 30)},
	}
	for _, tc := range tests {
		got, err := Parse(tc.input)
		require.NoError(t, err, "input %q", tc.input)
		assert.Equal(t, tc.want, got, "input %q", tc.input)
	}

	_, err := Parse("not a time")
	assert.ErrorIs(t, err, ErrInvalidTimeOfDay)
}

func TestLabel(t *testing.T) {
	tests := []struct {
		tod  TimeOfDay
		want string
	}{
		{TimeOfDay(8 * 60), "8:00 AM"},
		{TimeOfDay(9 * 60), "9:00 AM"},
		{TimeOfDay(12 * 60), "12:00 PM"},
		{TimeOfDay(13 * 60), "1:00 PM"},
		{TimeOfDay(17 * 60), "5:00 PM"},
		{TimeOfDay(0), "12:00 AM"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, tc.tod.Label())
	}
}

func TestString(t *testing.T) {
	assert.Equal(t, "08:00", TimeOfDay(8*60).String())
	assert.Equal(t, "17:30", TimeOfDay(17*60+30).String())
}

func TestLabelRoundTrip(t *testing.T) {
	for minutes := 0; minutes < 24*60; minutes += 30 {
		tod := TimeOfDay(minutes)
		parsed, err := Parse(tod.Label())
		require.NoError(t, err)
		assert.Equal(t, tod, parsed)
	}
}

func TestAddMinutesAndOrdering(t *testing.T) {
	start := TimeOfDay(17 * 60)
	end := start.AddMinutes(60)
	assert.Equal(t, TimeOfDay(18*60), end)
	assert.True(t, start.Before(end))
	assert.True(t, end.After(start))

	late := TimeOfDay(23*60 + 30)
	assert.False(t, late.AddMinutes(60).Valid())
}

func TestScan(t *testing.T) {
	var tod TimeOfDay
	require.NoError(t, tod.Scan("08:00:00"))
	assert.Equal(t, TimeOfDay(8*60), tod)

	require.NoError(t, tod.Scan([]byte("17:00:00")))
	assert.Equal(t, TimeOfDay(17*60), tod)

	assert.Error(t, tod.Scan(42))
}

func TestValue(t *testing.T) {
	v, err := TimeOfDay(9 * 60).Value()
	require.NoError(t, err)
	assert.Equal(t, "09:00", v)

	_, err = TimeOfDay(-1).Value()
	assert.ErrorIs(t, err, ErrInvalidTimeOfDay)
}
