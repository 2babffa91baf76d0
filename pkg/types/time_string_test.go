package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    TimeString
		wantErr bool
	}{
		{name: "hh:mm", input: "10:00", want: "10:00"},
		{name: "hh:mm:ss normalized", input: "20:30:00", want: "20:30"},
		{name: "single digit hour", input: "9:05", want: "09:05"},
		{name: "surrounding spaces", input: " 11:15 ", want: "11:15"},
		{name: "empty", input: "", wantErr: true},
		{name: "garbage", input: "abc", wantErr: true},
		{name: "hour out of range", input: "24:00", wantErr: true},
		{name: "minute out of range", input: "10:60", wantErr: true},
		{name: "too many parts", input: "10:00:00:00", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidTimeString)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeString_Minutes(t *testing.T) {
	m, err := TimeString("20:30").Minutes()
	require.NoError(t, err)
	assert.Equal(t, 1230, m)

	_, err = TimeString("").Minutes()
	assert.Error(t, err)
}

func TestTimeString_AddMinutes(t *testing.T) {
	got, err := TimeString("21:30").AddMinutes(30)
	require.NoError(t, err)
	assert.Equal(t, TimeString("22:00"), got)

	_, err = TimeString("23:45").AddMinutes(30)
	assert.ErrorIs(t, err, ErrTimeOutOfRange)
}

func TestTimeString_Compare(t *testing.T) {
	assert.True(t, TimeString("10:00").IsBefore("10:30"))
	assert.False(t, TimeString("10:30").IsBefore("10:30"))
	assert.True(t, TimeString("11:00").IsAfter("10:59"))
	assert.False(t, TimeString("bad").IsBefore("10:00"))
	assert.False(t, TimeString("bad").IsAfter("10:00"))
}

func TestFromMinutes(t *testing.T) {
	got, err := FromMinutes(600)
	require.NoError(t, err)
	assert.Equal(t, TimeString("10:00"), got)

	_, err = FromMinutes(-1)
	assert.ErrorIs(t, err, ErrTimeOutOfRange)
	_, err = FromMinutes(24 * 60)
	assert.ErrorIs(t, err, ErrTimeOutOfRange)
}

func TestTimeString_Scan(t *testing.T) {
	var ts TimeString

	require.NoError(t, ts.Scan([]byte("19:00:00")))
	assert.Equal(t, TimeString("19:00"), ts)

	require.NoError(t, ts.Scan("not a time"))
	assert.Equal(t, TimeString("not a time"), ts)
	assert.Error(t, ts.Validate())

	require.NoError(t, ts.Scan(nil))
	assert.True(t, ts.IsZero())

	require.NoError(t, ts.Scan(time.Date(2026, 5, 1, 13, 45, 0, 0, time.UTC)))
	assert.Equal(t, TimeString("13:45"), ts)

	assert.Error(t, ts.Scan(42))
}

func TestTimeString_Value(t *testing.T) {
	v, err := TimeString("10:00").Value()
	require.NoError(t, err)
	assert.Equal(t, "10:00", v)

	v, err = TimeString("").Value()
	require.NoError(t, err)
	assert.Nil(t, v)
}
