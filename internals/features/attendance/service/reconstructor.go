// file: internals/features/attendance/service/reconstructor.go
package service

import (
	"fmt"
	"sort"
	"time"

	"moonsys_backend/internals/helpers/reporttime"
)

// Day classification thresholds (hours). Fixed policy, not per-call.
const (
	FullDayHours = 6.0
	HalfDayHours = 3.0
)

const (
	StatusFullDay         = "full_day"
	StatusHalfDay         = "half_day"
	StatusDayOff          = "day_off"
	StatusMissingCheckout = "missing_checkout"
	StatusMissingCheckin  = "missing_checkin"
)

// Event is one check-in/check-out message as stored by the Slack
// message store. Timestamp is the Slack format: fractional Unix
// seconds as a string; it is both the ordering key and the uniqueness
// key.
type Event struct {
	UserID      string `json:"user_id"`
	UserName    string `json:"user_name"`
	MessageType string `json:"message_type"` // "checkin" | "checkout"
	Timestamp   string `json:"timestamp"`
}

type AttendanceRecord struct {
	Date              string   `json:"date"`
	UserID            string   `json:"user_id"`
	UserName          string   `json:"user_name"`
	CheckInTime       *string  `json:"check_in_time"`
	CheckOutTime      *string  `json:"check_out_time"`
	CheckoutNextDay   bool     `json:"checkout_next_day"`
	WorkDurationHours float64  `json:"work_duration_hours"`
	Status            string   `json:"status"`
	Notes             []string `json:"notes"`
}

type UserAttendance struct {
	UserID         string              `json:"user_id"`
	UserName       string              `json:"user_name"`
	Records        []*AttendanceRecord `json:"records"`
	TotalDays      int                 `json:"total_days"`
	FullDays       int                 `json:"full_days"`
	HalfDays       int                 `json:"half_days"`
	DaysOff        int                 `json:"days_off"`
	IncompleteDays int                 `json:"incomplete_days"`
}

type Summary struct {
	TotalUsers          int              `json:"total_users"`
	TotalDaysTracked    int              `json:"total_days_tracked"`
	TotalFullDays       int              `json:"total_full_days"`
	TotalHalfDays       int              `json:"total_half_days"`
	TotalDaysOff        int              `json:"total_days_off"`
	TotalIncompleteDays int              `json:"total_incomplete_days"`
	Users               []UserAttendance `json:"users"`
}

// Reconstructor turns a window of check-in/check-out events into
// per-user, per-day attendance records. It is a pure computation over
// the event slice it is handed: no I/O, no state kept between calls,
// safe to run concurrently per request. All date math uses the single
// reporting timezone.
type Reconstructor struct {
	loc *time.Location
}

func NewReconstructor(loc *time.Location) *Reconstructor {
	if loc == nil {
		loc = time.UTC
	}
	return &Reconstructor{loc: loc}
}

// event is an Event with its timestamp parsed once.
type event struct {
	Event
	ts float64
	t  time.Time
}

// workSession is one matched (or orphaned) check-in/check-out pair.
type workSession struct {
	in      event
	out     *event
	nextDay bool
}

// dayState accumulates the sessions that land on one calendar date
// before the final record is built.
type dayState struct {
	date      string
	in        *event // nil when built from an orphan check-out
	out       *event
	nextDay   bool
	multi     bool // more than one session merged into this date
	overnight bool // closed by the orphan-repair pass
}

// Records reconstructs attendance for every user present in events,
// sorted by user_id; each user's records sorted by date descending.
func (r *Reconstructor) Records(events []Event) []UserAttendance {
	type userEvents struct {
		checkins  []event
		checkouts []event
	}
	byUser := make(map[string]*userEvents)
	var userOrder []string

	// Step 1: partition by user into time-ordered lists.
	for _, e := range events {
		t, ok := reporttime.ParseSlackTS(e.Timestamp)
		if !ok {
			continue
		}
		ue := byUser[e.UserID]
		if ue == nil {
			ue = &userEvents{}
			byUser[e.UserID] = ue
			userOrder = append(userOrder, e.UserID)
		}
		ev := event{Event: e, ts: tsFloat(t), t: t}
		switch e.MessageType {
		case "checkin":
			ue.checkins = append(ue.checkins, ev)
		case "checkout":
			ue.checkouts = append(ue.checkouts, ev)
		}
	}
	sort.Strings(userOrder)

	out := make([]UserAttendance, 0, len(userOrder))
	for _, userID := range userOrder {
		ue := byUser[userID]
		sort.SliceStable(ue.checkins, func(i, j int) bool { return ue.checkins[i].ts < ue.checkins[j].ts })
		sort.SliceStable(ue.checkouts, func(i, j int) bool { return ue.checkouts[i].ts < ue.checkouts[j].ts })
		out = append(out, r.reconstructUser(userID, ue.checkins, ue.checkouts))
	}
	return out
}

func (r *Reconstructor) reconstructUser(userID string, checkins, checkouts []event) UserAttendance {
	// Step 2: greedy pairing: each check-in, in ascending order,
	// claims the earliest unclaimed check-out strictly after it.
	// First-come-first-served is the fixed policy; a double check-in
	// before a single check-out leaves the second one orphaned.
	claimed := make([]bool, len(checkouts))
	sessions := make([]workSession, 0, len(checkins))
	for i := range checkins {
		s := workSession{in: checkins[i]}
		for j := range checkouts {
			if !claimed[j] && checkouts[j].ts > checkins[i].ts {
				claimed[j] = true
				s.out = &checkouts[j]
				break
			}
		}
		// Step 3: checkout-day offset under the reporting timezone.
		if s.out != nil {
			s.nextDay = reporttime.DateIn(s.out.t, r.loc) != reporttime.DateIn(s.in.t, r.loc)
		}
		sessions = append(sessions, s)
	}

	// Step 4: per-date states keyed by the check-in's calendar date.
	// Same-day collisions merge: keep the later check-out, or the one
	// that crosses midnight when the current one does not. The first
	// check-in of the date stays the duration anchor.
	days := make(map[string]*dayState)
	var dateOrder []string
	for i := range sessions {
		s := &sessions[i]
		date := reporttime.DateIn(s.in.t, r.loc)
		st, ok := days[date]
		if !ok {
			in := s.in
			days[date] = &dayState{date: date, in: &in, out: s.out, nextDay: s.nextDay}
			dateOrder = append(dateOrder, date)
			continue
		}
		st.multi = true
		if s.out != nil && (st.out == nil || s.out.ts > st.out.ts || (s.nextDay && !st.nextDay)) {
			st.out = s.out
			st.nextDay = s.nextDay
		}
	}

	// Step 6: orphan check-out reconciliation. An early-morning
	// (before noon) orphan closes the previous date's open session if
	// that record is still missing its check-out; anything else
	// becomes a missing_checkin record on its own date.
	for j := range checkouts {
		if claimed[j] {
			continue
		}
		orphan := checkouts[j]
		date := reporttime.DateIn(orphan.t, r.loc)
		if reporttime.HourIn(orphan.t, r.loc) < 12 {
			prev := reporttime.PrevDate(date, r.loc)
			if st, ok := days[prev]; ok && st.in != nil && st.out == nil {
				st.out = &checkouts[j]
				st.nextDay = true
				st.overnight = true
				continue
			}
		}
		if _, ok := days[date]; !ok {
			days[date] = &dayState{date: date, out: &checkouts[j]}
			dateOrder = append(dateOrder, date)
		}
	}

	// Steps 5, 7, 8: build records, classify, tally.
	ua := UserAttendance{UserID: userID}
	for _, date := range dateOrder {
		rec := r.buildRecord(userID, days[date])
		ua.Records = append(ua.Records, rec)
		switch rec.Status {
		case StatusFullDay:
			ua.FullDays++
		case StatusHalfDay:
			ua.HalfDays++
		case StatusDayOff:
			ua.DaysOff++
		case StatusMissingCheckout, StatusMissingCheckin:
			ua.IncompleteDays++
		}
	}
	sort.SliceStable(ua.Records, func(i, j int) bool { return ua.Records[i].Date > ua.Records[j].Date })
	ua.TotalDays = len(ua.Records)

	ua.UserName = userID
	for _, rec := range ua.Records {
		if rec.UserName != userID && rec.UserName != "" {
			ua.UserName = rec.UserName
			break
		}
	}
	return ua
}

func (r *Reconstructor) buildRecord(userID string, st *dayState) *AttendanceRecord {
	rec := &AttendanceRecord{
		Date:   st.date,
		UserID: userID,
		Notes:  []string{},
	}
	rec.UserName = displayName(userID, st.in, st.out)

	// Orphan check-out with nothing to attach to.
	if st.in == nil {
		t := reporttime.ClockIn(st.out.t, r.loc)
		rec.CheckOutTime = &t
		rec.Status = StatusMissingCheckin
		rec.Notes = append(rec.Notes, "Check-in missing but check-out recorded")
		return rec
	}

	in := reporttime.ClockIn(st.in.t, r.loc)
	rec.CheckInTime = &in

	// Step 7: still no check-out after reconciliation.
	if st.out == nil {
		rec.Status = StatusMissingCheckout
		rec.Notes = append(rec.Notes, "Check-out missing but check-in recorded")
		if st.multi {
			rec.Notes = append(rec.Notes, "Multiple work sessions")
		}
		return rec
	}

	out := reporttime.ClockIn(st.out.t, r.loc)
	rec.CheckOutTime = &out
	rec.CheckoutNextDay = st.nextDay

	// Step 5: duration classification from the date's first check-in
	// to the selected check-out.
	hours := reporttime.HoursBetween(st.in.t, st.out.t)
	rec.WorkDurationHours = hours
	switch {
	case hours < HalfDayHours:
		rec.Status = StatusDayOff
		rec.Notes = append(rec.Notes, fmt.Sprintf("Worked only %v hours", hours))
	case hours < FullDayHours:
		rec.Status = StatusHalfDay
		rec.Notes = append(rec.Notes, fmt.Sprintf("Worked %v hours (less than %v hours)", hours, FullDayHours))
	default:
		rec.Status = StatusFullDay
		rec.Notes = append(rec.Notes, fmt.Sprintf("Worked %v hours", hours))
	}

	if st.overnight {
		// Repaired overnight shift replaces the usual annotations.
		rec.Notes = []string{fmt.Sprintf("Overnight shift: checked out at %s the next day", out)}
		return rec
	}
	if st.nextDay {
		rec.Notes = append(rec.Notes, "Overnight shift (checkout next day)")
	}
	if st.multi {
		rec.Notes = append(rec.Notes, "Multiple work sessions")
	}
	return rec
}

// Summarize tallies the per-user counts across all users.
func (r *Reconstructor) Summarize(users []UserAttendance) Summary {
	s := Summary{Users: users, TotalUsers: len(users)}
	for _, u := range users {
		s.TotalDaysTracked += u.TotalDays
		s.TotalFullDays += u.FullDays
		s.TotalHalfDays += u.HalfDays
		s.TotalDaysOff += u.DaysOff
		s.TotalIncompleteDays += u.IncompleteDays
	}
	return s
}

func displayName(userID string, evs ...*event) string {
	for _, e := range evs {
		if e != nil && e.UserName != "" {
			return e.UserName
		}
	}
	return userID
}

func tsFloat(t time.Time) float64 {
	return float64(t.UnixNano()) / 1e9
}
