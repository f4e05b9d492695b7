package types

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeString_Validate(t *testing.T) {
	valid := []string{"00:00", "09:30", "12:00", "23:59"}
	for _, s := range valid {
		assert.NoError(t, TimeString(s).Validate(), s)
	}

	invalid := []string{"", "24:00", "25:00", "12:60", "9:30", "09:5", "0930", " 09:30", "ab:cd"}
	for _, s := range invalid {
		err := TimeString(s).Validate()
		assert.ErrorIs(t, err, ErrInvalidTimeString, s)
	}
}

func TestTimeString_To12Hour(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"00:00", "12:00 AM"},
		{"00:30", "12:30 AM"},
		{"09:05", "9:05 AM"},
		{"11:59", "11:59 AM"},
		{"12:00", "12:00 PM"},
		{"14:00", "2:00 PM"},
		{"23:59", "11:59 PM"},
	}

	for _, tt := range tests {
		got, err := TimeString(tt.in).To12Hour()
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := TimeString("25:00").To12Hour()
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestTimeString_TwelveHourRoundTrip(t *testing.T) {
	for hour := 0; hour < 24; hour++ {
		for _, minute := range []int{0, 1, 30, 59} {
			original := TimeString(fmt.Sprintf("%02d:%02d", hour, minute))

			display, err := original.To12Hour()
			require.NoError(t, err)

			var hour12, min12 int
			var period string
			_, err = fmt.Sscanf(display, "%d:%d %s", &hour12, &min12, &period)
			require.NoError(t, err)

			back, err := FromTwelveHour(hour12, min12, period)
			require.NoError(t, err)
			assert.Equal(t, original, back, display)
		}
	}
}

func TestFromTwelveHour_Invalid(t *testing.T) {
	_, err := FromTwelveHour(0, 0, PeriodAM)
	assert.ErrorIs(t, err, ErrInvalidPeriod)

	_, err = FromTwelveHour(13, 0, PeriodPM)
	assert.ErrorIs(t, err, ErrInvalidPeriod)

	_, err = FromTwelveHour(10, 0, "XM")
	assert.ErrorIs(t, err, ErrInvalidPeriod)
}

func TestTimeString_Parts(t *testing.T) {
	hour, minute, err := TimeString("07:45").Parts()
	require.NoError(t, err)
	assert.Equal(t, 7, hour)
	assert.Equal(t, 45, minute)
}
