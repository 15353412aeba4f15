package reporttime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func karachi(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("Asia/Karachi")
	require.NoError(t, err)
	return loc
}

func TestParseSlackTS(t *testing.T) {
	ts, ok := ParseSlackTS("1704099600.000200")
	require.True(t, ok)
	assert.Equal(t, int64(1704099600), ts.Unix())

	_, ok = ParseSlackTS("not-a-number")
	assert.False(t, ok)

	_, ok = ParseSlackTS("")
	assert.False(t, ok)
}

func TestDateAndClockIn(t *testing.T) {
	loc := karachi(t)

	// 2024-01-01 21:00 UTC is 2024-01-02 02:00 in Karachi (UTC+5).
	utc := time.Date(2024, 1, 1, 21, 0, 0, 0, time.UTC)
	assert.Equal(t, "2024-01-02", DateIn(utc, loc))
	assert.Equal(t, "02:00", ClockIn(utc, loc))
	assert.Equal(t, 2, HourIn(utc, loc))
}

func TestPrevDate(t *testing.T) {
	loc := karachi(t)
	assert.Equal(t, "2024-01-01", PrevDate("2024-01-02", loc))
	assert.Equal(t, "2023-12-31", PrevDate("2024-01-01", loc))
	assert.Equal(t, "2024-02-29", PrevDate("2024-03-01", loc))
	// Unparseable input falls through unchanged.
	assert.Equal(t, "bogus", PrevDate("bogus", loc))
}

func TestHoursBetween(t *testing.T) {
	in := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	out := in.Add(8*time.Hour + 20*time.Minute)
	assert.Equal(t, 8.33, HoursBetween(in, out))

	assert.Equal(t, 0.0, HoursBetween(in, in))
}

func TestStartOfDay(t *testing.T) {
	loc := karachi(t)
	start, err := StartOfDay("2024-01-15", loc)
	require.NoError(t, err)
	assert.Equal(t, "2024-01-15 00:00", start.Format("2006-01-02 15:04"))
	assert.Equal(t, loc, start.Location())

	_, err = StartOfDay("15-01-2024", loc)
	assert.Error(t, err)
}

func TestNoonOfNextDay(t *testing.T) {
	loc := karachi(t)
	noon, err := NoonOfNextDay("2024-01-15", loc)
	require.NoError(t, err)
	assert.Equal(t, "2024-01-16 12:00", noon.Format("2006-01-02 15:04"))

	// Month boundary.
	noon, err = NoonOfNextDay("2024-01-31", loc)
	require.NoError(t, err)
	assert.Equal(t, "2024-02-01 12:00", noon.Format("2006-01-02 15:04"))

	_, err = NoonOfNextDay("bogus", loc)
	assert.Error(t, err)
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 4.5, Round2(4.499999999))
	assert.Equal(t, 0.33, Round2(1.0/3.0))
}
