package schedule

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimeOfDay(t *testing.T) {
	cases := []struct {
		input string
		want  TimeOfDay
		ok    bool
	}{
		{"08:00:00", 8 * 3600, true},
		{"08:00", 8 * 3600, true},
		{"17:30:15", 17*3600 + 30*60 + 15, true},
		{"00:00:00", 0, true},
		{"23:59:59", 23*3600 + 59*60 + 59, true},
		{"24:00", 0, false},
		{"8am", 0, false},
		{"", 0, false},
	}
	for _, c := range cases {
		got, err := ParseTimeOfDay(c.input)
		if c.ok {
			require.NoError(t, err, "input %q", c.input)
			assert.Equal(t, c.want, got, "input %q", c.input)
		} else {
			assert.Error(t, err, "input %q", c.input)
		}
	}
}

func TestTimeOfDayString(t *testing.T) {
	got, err := ParseTimeOfDay("09:05:01")
	require.NoError(t, err)
	assert.Equal(t, "09:05:01", got.String())
}

func TestTimeOfDayHoursMinutes(t *testing.T) {
	half := TimeOfDay(8*3600 + 30*60)
	assert.InDelta(t, 8.5, half.Hours(), 0.0001)
	assert.InDelta(t, 510.0, half.Minutes(), 0.0001)
}

func TestTimeOfDayJSONRoundTrip(t *testing.T) {
	original, err := ParseTimeOfDay("13:45:00")
	require.NoError(t, err)

	data, err := json.Marshal(original)
	require.NoError(t, err)
	assert.Equal(t, `"13:45:00"`, string(data))

	var decoded TimeOfDay
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, original, decoded)
}

func TestTimeOfDayScan(t *testing.T) {
	var tod TimeOfDay

	require.NoError(t, tod.Scan("08:15:00"))
	assert.Equal(t, TimeOfDay(8*3600+15*60), tod)

	require.NoError(t, tod.Scan([]byte("12:00:00")))
	assert.Equal(t, TimeOfDay(12*3600), tod)

	require.NoError(t, tod.Scan(time.Date(2000, 1, 1, 16, 45, 30, 0, time.UTC)))
	assert.Equal(t, TimeOfDay(16*3600+45*60+30), tod)

	assert.Error(t, tod.Scan(42))
}

func TestWeeklyScheduleForDate(t *testing.T) {
	ws := Default()

	// 2025-03-03 is a Monday, 2025-03-08 a Saturday.
	assert.True(t, ws.ForDate(time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)).Active)
	assert.False(t, ws.ForDate(time.Date(2025, 3, 8, 0, 0, 0, 0, time.UTC)).Active)
	assert.False(t, ws.ForDate(time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC)).Active)
}

func TestDefaultSchedule(t *testing.T) {
	ws := Default()
	require.NoError(t, ws.Validate())

	mon := ws.Monday
	require.True(t, mon.Active)
	assert.Equal(t, "08:00:00", mon.Start.String())
	assert.Equal(t, "17:00:00", mon.End.String())
	assert.Equal(t, "12:00:00", mon.LunchStart.String())
	assert.Equal(t, "13:00:00", mon.LunchEnd.String())
}

func TestWeeklyScheduleValidate(t *testing.T) {
	t.Run("inactive days need no times", func(t *testing.T) {
		var ws WeeklySchedule
		assert.NoError(t, ws.Validate())
	})

	t.Run("active day missing times", func(t *testing.T) {
		ws := Default()
		ws.Wednesday.LunchEnd = nil
		err := ws.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "wednesday")
	})

	t.Run("lunch outside work hours", func(t *testing.T) {
		ws := Default()
		ws.Friday.LunchEnd = tod("18:00:00")
		err := ws.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "friday")
	})

	t.Run("lunch start after lunch end", func(t *testing.T) {
		ws := Default()
		ws.Monday.LunchStart = tod("13:30:00")
		ws.Monday.LunchEnd = tod("13:00:00")
		assert.Error(t, ws.Validate())
	})
}

func TestWeeklyScheduleJSONRoundTrip(t *testing.T) {
	original := Default()

	data, err := json.Marshal(original)
	require.NoError(t, err)

	var decoded WeeklySchedule
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, original, decoded)
}
