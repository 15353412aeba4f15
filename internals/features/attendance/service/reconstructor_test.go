package service

import (
	"fmt"
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

// ts builds a Slack-style timestamp for a wall-clock time in loc.
func ts(t *testing.T, loc *time.Location, value string) string {
	t.Helper()
	parsed, err := time.ParseInLocation("2006-01-02 15:04", value, loc)
	require.NoError(t, err)
	return fmt.Sprintf("%d.000000", parsed.Unix())
}

func checkin(t *testing.T, loc *time.Location, user, at string) Event {
	return Event{UserID: user, UserName: user + " name", MessageType: "checkin", Timestamp: ts(t, loc, at)}
}

func checkout(t *testing.T, loc *time.Location, user, at string) Event {
	return Event{UserID: user, UserName: user + " name", MessageType: "checkout", Timestamp: ts(t, loc, at)}
}

func singleRecord(t *testing.T, users []UserAttendance) *AttendanceRecord {
	t.Helper()
	require.Len(t, users, 1)
	require.Len(t, users[0].Records, 1)
	return users[0].Records[0]
}

func TestFullDay(t *testing.T) {
	loc := karachi(t)
	r := NewReconstructor(loc)

	users := r.Records([]Event{
		checkin(t, loc, "U1", "2024-01-01 09:00"),
		checkout(t, loc, "U1", "2024-01-01 17:00"),
	})

	rec := singleRecord(t, users)
	assert.Equal(t, "2024-01-01", rec.Date)
	assert.Equal(t, StatusFullDay, rec.Status)
	assert.Equal(t, 8.0, rec.WorkDurationHours)
	assert.False(t, rec.CheckoutNextDay)
	require.NotNil(t, rec.CheckInTime)
	require.NotNil(t, rec.CheckOutTime)
	assert.Equal(t, "09:00", *rec.CheckInTime)
	assert.Equal(t, "17:00", *rec.CheckOutTime)

	assert.Equal(t, 1, users[0].FullDays)
	assert.Equal(t, 1, users[0].TotalDays)
}

func TestHalfDay(t *testing.T) {
	loc := karachi(t)
	r := NewReconstructor(loc)

	users := r.Records([]Event{
		checkin(t, loc, "U1", "2024-01-01 09:00"),
		checkout(t, loc, "U1", "2024-01-01 13:30"),
	})

	rec := singleRecord(t, users)
	assert.Equal(t, StatusHalfDay, rec.Status)
	assert.Equal(t, 4.5, rec.WorkDurationHours)
	assert.Equal(t, 1, users[0].HalfDays)
}

func TestDayOffBelowThreshold(t *testing.T) {
	loc := karachi(t)
	r := NewReconstructor(loc)

	users := r.Records([]Event{
		checkin(t, loc, "U1", "2024-01-01 09:00"),
		checkout(t, loc, "U1", "2024-01-01 10:30"),
	})

	rec := singleRecord(t, users)
	assert.Equal(t, StatusDayOff, rec.Status)
	assert.Equal(t, 1.5, rec.WorkDurationHours)
	assert.Equal(t, 1, users[0].DaysOff)
}

func TestThresholdBoundaries(t *testing.T) {
	loc := karachi(t)
	r := NewReconstructor(loc)

	// Exactly 3 hours is a half day, exactly 6 a full day.
	users := r.Records([]Event{
		checkin(t, loc, "U1", "2024-01-01 09:00"),
		checkout(t, loc, "U1", "2024-01-01 12:00"),
		checkin(t, loc, "U1", "2024-01-02 09:00"),
		checkout(t, loc, "U1", "2024-01-02 15:00"),
	})

	require.Len(t, users, 1)
	require.Len(t, users[0].Records, 2)
	// Sorted date-descending.
	assert.Equal(t, "2024-01-02", users[0].Records[0].Date)
	assert.Equal(t, StatusFullDay, users[0].Records[0].Status)
	assert.Equal(t, "2024-01-01", users[0].Records[1].Date)
	assert.Equal(t, StatusHalfDay, users[0].Records[1].Status)
}

func TestOvernightShift(t *testing.T) {
	loc := karachi(t)
	r := NewReconstructor(loc)

	users := r.Records([]Event{
		checkin(t, loc, "U1", "2024-01-01 22:00"),
		checkout(t, loc, "U1", "2024-01-02 02:00"),
	})

	rec := singleRecord(t, users)
	assert.Equal(t, "2024-01-01", rec.Date, "record keyed to the check-in's calendar date")
	assert.True(t, rec.CheckoutNextDay)
	assert.Equal(t, 4.0, rec.WorkDurationHours)
	assert.Equal(t, StatusHalfDay, rec.Status)
}

func TestMissingCheckout(t *testing.T) {
	loc := karachi(t)
	r := NewReconstructor(loc)

	users := r.Records([]Event{
		checkin(t, loc, "U1", "2024-01-01 09:00"),
	})

	rec := singleRecord(t, users)
	assert.Equal(t, StatusMissingCheckout, rec.Status)
	assert.Nil(t, rec.CheckOutTime)
	assert.Equal(t, 0.0, rec.WorkDurationHours)
	assert.Equal(t, 1, users[0].IncompleteDays)
}

func TestEarlyMorningCheckoutClosesPreviousDay(t *testing.T) {
	loc := karachi(t)
	r := NewReconstructor(loc)

	users := r.Records([]Event{
		checkin(t, loc, "U1", "2024-01-01 09:00"),
		checkout(t, loc, "U1", "2024-01-02 01:00"),
	})

	// The 2024-01-01 record absorbs the checkout; no separate record
	// appears for 2024-01-02.
	rec := singleRecord(t, users)
	assert.Equal(t, "2024-01-01", rec.Date)
	assert.True(t, rec.CheckoutNextDay)
	assert.Equal(t, 16.0, rec.WorkDurationHours)
	assert.Equal(t, StatusFullDay, rec.Status)
}

func TestCheckoutOnlyYieldsMissingCheckin(t *testing.T) {
	loc := karachi(t)
	r := NewReconstructor(loc)

	users := r.Records([]Event{
		checkout(t, loc, "U1", "2024-01-01 17:00"),
	})

	rec := singleRecord(t, users)
	assert.Equal(t, StatusMissingCheckin, rec.Status)
	assert.Nil(t, rec.CheckInTime)
	require.NotNil(t, rec.CheckOutTime)
	assert.Equal(t, "17:00", *rec.CheckOutTime)
	assert.Equal(t, 0.0, rec.WorkDurationHours)
}

func TestExtraCheckoutAfterCompleteDay(t *testing.T) {
	loc := karachi(t)
	r := NewReconstructor(loc)

	users := r.Records([]Event{
		checkin(t, loc, "U1", "2024-01-01 09:00"),
		checkout(t, loc, "U1", "2024-01-01 17:00"),
		checkout(t, loc, "U1", "2024-01-02 01:00"),
	})

	// The complete 2024-01-01 record is not reopened; the orphan
	// becomes a missing_checkin record on its own date.
	require.Len(t, users, 1)
	require.Len(t, users[0].Records, 2)
	assert.Equal(t, "2024-01-02", users[0].Records[0].Date)
	assert.Equal(t, StatusMissingCheckin, users[0].Records[0].Status)
	assert.Equal(t, "2024-01-01", users[0].Records[1].Date)
	assert.Equal(t, StatusFullDay, users[0].Records[1].Status)
}

func TestGreedyPairingDoubleCheckin(t *testing.T) {
	loc := karachi(t)
	r := NewReconstructor(loc)

	// First check-in wins the lone checkout; dates collapse into a
	// single merged record for the day.
	users := r.Records([]Event{
		checkin(t, loc, "U1", "2024-01-01 09:00"),
		checkin(t, loc, "U1", "2024-01-01 09:30"),
		checkout(t, loc, "U1", "2024-01-01 17:00"),
	})

	rec := singleRecord(t, users)
	assert.Equal(t, StatusFullDay, rec.Status)
	assert.Equal(t, 8.0, rec.WorkDurationHours, "duration anchored to the first check-in of the date")
	assert.Contains(t, rec.Notes, "Multiple work sessions")
}

func TestDoubleCheckinWithoutCheckoutKeepsMergeNote(t *testing.T) {
	loc := karachi(t)
	r := NewReconstructor(loc)

	// Two check-ins merge into one date even when neither session ever
	// closes; the merge note survives alongside the missing-checkout one.
	users := r.Records([]Event{
		checkin(t, loc, "U1", "2024-01-01 09:00"),
		checkin(t, loc, "U1", "2024-01-01 14:00"),
	})

	rec := singleRecord(t, users)
	assert.Equal(t, StatusMissingCheckout, rec.Status)
	assert.Nil(t, rec.CheckOutTime)
	assert.Equal(t, 0.0, rec.WorkDurationHours)
	assert.Contains(t, rec.Notes, "Check-out missing but check-in recorded")
	assert.Contains(t, rec.Notes, "Multiple work sessions")
	assert.Equal(t, 1, users[0].IncompleteDays)
}

func TestGreedyPairingClaimsAcrossDays(t *testing.T) {
	loc := karachi(t)
	r := NewReconstructor(loc)

	// Greedy first-come-first-served: the day-1 check-in claims the
	// day-2 checkout, leaving the day-2 check-in orphaned. This
	// mis-pairing is the documented policy, not a bug to fix.
	users := r.Records([]Event{
		checkin(t, loc, "U1", "2024-01-01 09:00"),
		checkin(t, loc, "U1", "2024-01-02 09:00"),
		checkout(t, loc, "U1", "2024-01-02 17:00"),
	})

	require.Len(t, users, 1)
	require.Len(t, users[0].Records, 2)

	day2 := users[0].Records[0]
	day1 := users[0].Records[1]

	assert.Equal(t, "2024-01-01", day1.Date)
	assert.True(t, day1.CheckoutNextDay)
	assert.Equal(t, StatusFullDay, day1.Status)

	assert.Equal(t, "2024-01-02", day2.Date)
	assert.Equal(t, StatusMissingCheckout, day2.Status)
}

func TestMultipleSessionsSameDayMergeKeepsLaterCheckout(t *testing.T) {
	loc := karachi(t)
	r := NewReconstructor(loc)

	users := r.Records([]Event{
		checkin(t, loc, "U1", "2024-01-01 09:00"),
		checkout(t, loc, "U1", "2024-01-01 12:00"),
		checkin(t, loc, "U1", "2024-01-01 13:00"),
		checkout(t, loc, "U1", "2024-01-01 18:00"),
	})

	rec := singleRecord(t, users)
	require.NotNil(t, rec.CheckOutTime)
	assert.Equal(t, "18:00", *rec.CheckOutTime)
	assert.Equal(t, "09:00", *rec.CheckInTime)
	// First check-in to last selected checkout.
	assert.Equal(t, 9.0, rec.WorkDurationHours)
	assert.Equal(t, StatusFullDay, rec.Status)
	assert.Contains(t, rec.Notes, "Multiple work sessions")
}

func TestNoCheckoutClaimedTwice(t *testing.T) {
	loc := karachi(t)
	r := NewReconstructor(loc)

	// Three check-ins compete for one checkout; exactly one session
	// gets it, the rest stay open.
	users := r.Records([]Event{
		checkin(t, loc, "U1", "2024-01-01 09:00"),
		checkin(t, loc, "U1", "2024-01-02 09:00"),
		checkin(t, loc, "U1", "2024-01-03 09:00"),
		checkout(t, loc, "U1", "2024-01-01 17:00"),
	})

	require.Len(t, users, 1)
	require.Len(t, users[0].Records, 3)

	closed := 0
	for _, rec := range users[0].Records {
		if rec.CheckOutTime != nil {
			closed++
			assert.Equal(t, "2024-01-01", rec.Date)
		} else {
			assert.Equal(t, StatusMissingCheckout, rec.Status)
		}
	}
	assert.Equal(t, 1, closed)
}

func TestUsersWithNoEventsProduceNothing(t *testing.T) {
	loc := karachi(t)
	r := NewReconstructor(loc)

	users := r.Records(nil)
	assert.Empty(t, users)

	summary := r.Summarize(users)
	assert.Equal(t, 0, summary.TotalUsers)
	assert.Equal(t, 0, summary.TotalDaysTracked)
}

func TestMalformedTimestampsAreSkipped(t *testing.T) {
	loc := karachi(t)
	r := NewReconstructor(loc)

	users := r.Records([]Event{
		{UserID: "U1", MessageType: "checkin", Timestamp: "not-a-ts"},
		checkin(t, loc, "U1", "2024-01-01 09:00"),
		checkout(t, loc, "U1", "2024-01-01 17:00"),
	})

	rec := singleRecord(t, users)
	assert.Equal(t, StatusFullDay, rec.Status)
}

func TestUserNameFallsBackToUserID(t *testing.T) {
	loc := karachi(t)
	r := NewReconstructor(loc)

	users := r.Records([]Event{
		{UserID: "U1", MessageType: "checkin", Timestamp: ts(t, loc, "2024-01-01 09:00")},
	})

	require.Len(t, users, 1)
	assert.Equal(t, "U1", users[0].UserName)
	assert.Equal(t, "U1", users[0].Records[0].UserName)
}

func TestIdempotence(t *testing.T) {
	loc := karachi(t)
	r := NewReconstructor(loc)

	events := []Event{
		checkin(t, loc, "U2", "2024-01-01 09:00"),
		checkout(t, loc, "U2", "2024-01-01 17:00"),
		checkin(t, loc, "U1", "2024-01-01 22:00"),
		checkout(t, loc, "U1", "2024-01-02 02:00"),
		checkout(t, loc, "U3", "2024-01-02 18:00"),
	}

	first := r.Records(events)
	second := r.Records(events)
	assert.Equal(t, first, second)

	// Deterministic user ordering.
	require.Len(t, first, 3)
	assert.Equal(t, "U1", first[0].UserID)
	assert.Equal(t, "U2", first[1].UserID)
	assert.Equal(t, "U3", first[2].UserID)
}

func TestSummaryTallies(t *testing.T) {
	loc := karachi(t)
	r := NewReconstructor(loc)

	events := []Event{
		// U1: full day + half day
		checkin(t, loc, "U1", "2024-01-01 09:00"),
		checkout(t, loc, "U1", "2024-01-01 17:00"),
		checkin(t, loc, "U1", "2024-01-02 09:00"),
		checkout(t, loc, "U1", "2024-01-02 13:00"),
		// U2: day off + missing checkout
		checkin(t, loc, "U2", "2024-01-01 09:00"),
		checkout(t, loc, "U2", "2024-01-01 10:00"),
		checkin(t, loc, "U2", "2024-01-02 09:00"),
	}

	summary := r.Summarize(r.Records(events))
	assert.Equal(t, 2, summary.TotalUsers)
	assert.Equal(t, 4, summary.TotalDaysTracked)
	assert.Equal(t, 1, summary.TotalFullDays)
	assert.Equal(t, 1, summary.TotalHalfDays)
	assert.Equal(t, 1, summary.TotalDaysOff)
	assert.Equal(t, 1, summary.TotalIncompleteDays)
}

func TestEveryCheckinConsumedExactlyOnce(t *testing.T) {
	loc := karachi(t)
	r := NewReconstructor(loc)

	events := []Event{
		checkin(t, loc, "U1", "2024-01-01 09:00"),
		checkin(t, loc, "U1", "2024-01-02 09:00"),
		checkin(t, loc, "U1", "2024-01-03 09:00"),
		checkout(t, loc, "U1", "2024-01-02 17:00"),
		checkout(t, loc, "U1", "2024-01-03 17:00"),
	}

	users := r.Records(events)
	require.Len(t, users, 1)

	// Three check-ins on three dates: every one shows up in exactly
	// one record, none dropped or duplicated.
	dates := map[string]bool{}
	for _, rec := range users[0].Records {
		assert.False(t, dates[rec.Date])
		dates[rec.Date] = true
	}
	assert.Len(t, dates, 3)
}
