package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loc(t *testing.T) *time.Location {
	t.Helper()
	l, err := time.LoadLocation("Asia/Karachi")
	require.NoError(t, err)
	return l
}

func wl(author, started string, seconds int64) Worklog {
	return Worklog{
		Author:           WorklogAuthor{DisplayName: author, AccountID: author},
		Started:          started,
		TimeSpentSeconds: seconds,
	}
}

func TestDateRangeDaily(t *testing.T) {
	l := loc(t)
	now := time.Date(2024, 3, 15, 10, 0, 0, 0, l)

	start, end := DateRange("daily", now, l)
	assert.Equal(t, "2024-03-15", start)
	assert.Equal(t, "2024-03-15", end)
}

func TestDateRangeYesterday(t *testing.T) {
	l := loc(t)
	now := time.Date(2024, 3, 1, 10, 0, 0, 0, l)

	start, end := DateRange("yesterday", now, l)
	assert.Equal(t, "2024-02-29", start)
	assert.Equal(t, "2024-02-29", end)
}

func TestDateRangeWeeklyStartsMonday(t *testing.T) {
	l := loc(t)

	// 2024-03-15 is a Friday.
	start, end := DateRange("weekly", time.Date(2024, 3, 15, 10, 0, 0, 0, l), l)
	assert.Equal(t, "2024-03-11", start)
	assert.Equal(t, "2024-03-15", end)

	// Sunday belongs to the week that started the previous Monday.
	start, end = DateRange("weekly", time.Date(2024, 3, 17, 10, 0, 0, 0, l), l)
	assert.Equal(t, "2024-03-11", start)
	assert.Equal(t, "2024-03-17", end)
}

func TestDateRangeMonthly(t *testing.T) {
	l := loc(t)

	start, end := DateRange("monthly", time.Date(2024, 3, 15, 10, 0, 0, 0, l), l)
	assert.Equal(t, "2024-03-01", start)
	assert.Equal(t, "2024-03-15", end)
}

func TestDateRangeUsesReportingTimezone(t *testing.T) {
	l := loc(t)

	// 21:00 UTC on March 15 is already March 16 in Karachi (UTC+5).
	now := time.Date(2024, 3, 15, 21, 0, 0, 0, time.UTC)
	start, _ := DateRange("daily", now, l)
	assert.Equal(t, "2024-03-16", start)
}

func TestFormatSeconds(t *testing.T) {
	assert.Equal(t, "0h 0m", FormatSeconds(0))
	assert.Equal(t, "0h 59m", FormatSeconds(3599))
	assert.Equal(t, "1h 0m", FormatSeconds(3600))
	assert.Equal(t, "2h 30m", FormatSeconds(9000))
}

func TestFilterWorklogsByDate(t *testing.T) {
	l := loc(t)

	logs := []Worklog{
		wl("alice", "2024-03-10T09:00:00.000+0500", 3600),
		wl("alice", "2024-03-12T09:00:00.000+0500", 3600),
		wl("alice", "2024-03-20T09:00:00.000+0500", 3600),
		wl("alice", "garbage", 3600),
	}

	kept := FilterWorklogsByDate(logs, "2024-03-10", "2024-03-15", l)
	require.Len(t, kept, 2)
	assert.Equal(t, "2024-03-10T09:00:00.000+0500", kept[0].Started)
	assert.Equal(t, "2024-03-12T09:00:00.000+0500", kept[1].Started)
}

func TestAggregateWorklogs(t *testing.T) {
	l := loc(t)
	est := int64(7200)

	logs := []Worklog{
		wl("alice", "2024-03-10T09:00:00.000+0500", 3600),
		wl("alice", "2024-03-10T14:00:00.000+0500", 1800),
		wl("bob", "2024-03-11T09:00:00.000+0500", 900),
	}

	stats := AggregateWorklogs(logs, "PROJ-1", "Fix login", &est, l)

	require.Contains(t, stats, "alice")
	require.Contains(t, stats, "bob")

	alice := stats["alice"]
	assert.Equal(t, int64(5400), alice.TotalTime)
	assert.Equal(t, int64(5400), alice.Tickets["PROJ-1"].Time)
	assert.Equal(t, "Fix login", alice.Tickets["PROJ-1"].Summary)
	assert.Equal(t, &est, alice.Tickets["PROJ-1"].EstimatedTime)
	assert.Equal(t, int64(5400), alice.DailyTime["2024-03-10"])

	assert.Equal(t, int64(900), stats["bob"].TotalTime)
}

func TestMergeUserStats(t *testing.T) {
	l := loc(t)
	est := int64(7200)

	target := AggregateWorklogs([]Worklog{
		wl("alice", "2024-03-10T09:00:00.000+0500", 3600),
	}, "PROJ-1", "Fix login", nil, l)

	source := AggregateWorklogs([]Worklog{
		wl("alice", "2024-03-10T14:00:00.000+0500", 1800),
		wl("bob", "2024-03-11T09:00:00.000+0500", 900),
	}, "PROJ-1", "Fix login", &est, l)

	MergeUserStats(target, source)

	alice := target["alice"]
	assert.Equal(t, int64(5400), alice.TotalTime)
	assert.Equal(t, int64(5400), alice.Tickets["PROJ-1"].Time)
	// Estimate fills in when the target had none.
	require.NotNil(t, alice.Tickets["PROJ-1"].EstimatedTime)
	assert.Equal(t, est, *alice.Tickets["PROJ-1"].EstimatedTime)
	assert.Equal(t, int64(5400), alice.DailyTime["2024-03-10"])

	require.Contains(t, target, "bob")
	assert.Equal(t, int64(900), target["bob"].TotalTime)
}

func TestBuildTicketJQL(t *testing.T) {
	assert.Equal(t,
		`updated >= "2000-01-01" ORDER BY updated DESC`,
		BuildTicketJQL(TicketFilters{}))

	assert.Equal(t,
		`assignee = "Alice" AND status = "Done" ORDER BY updated DESC`,
		BuildTicketJQL(TicketFilters{Assignee: "Alice", Status: "Done"}))

	assert.Equal(t,
		`assignee IS EMPTY ORDER BY updated DESC`,
		BuildTicketJQL(TicketFilters{Assignee: UnassignedSentinel}))

	// statusInclude beats statusExclude beats status.
	assert.Equal(t,
		`status IN ("To Do", "In Progress") ORDER BY updated DESC`,
		BuildTicketJQL(TicketFilters{
			StatusInclude: []string{"To Do", "In Progress"},
			StatusExclude: []string{"Done"},
			Status:        "Done",
		}))

	assert.Equal(t,
		`status NOT IN ("Done") ORDER BY updated DESC`,
		BuildTicketJQL(TicketFilters{StatusExclude: []string{"Done"}}))

	assert.Equal(t,
		`project = "MOON" AND priority = "High" AND issuetype = "Bug" ORDER BY updated DESC`,
		BuildTicketJQL(TicketFilters{Project: "MOON", Priority: "High", IssueType: "Bug"}))
}

func TestBuildWorklogJQL(t *testing.T) {
	assert.Equal(t,
		`worklogDate >= "2024-03-01" AND worklogDate <= "2024-03-15" ORDER BY updated DESC`,
		BuildWorklogJQL("2024-03-01", "2024-03-15", ""))

	assert.Equal(t,
		`project = MOON AND worklogDate >= "2024-03-01" AND worklogDate <= "2024-03-15" ORDER BY updated DESC`,
		BuildWorklogJQL("2024-03-01", "2024-03-15", "MOON"))
}

func TestCollectFilterOptions(t *testing.T) {
	tickets := []DetailedTicket{
		{Fields: TicketFields{
			Assignee: &TicketAssignee{DisplayName: "Bob"},
			Status:   &TicketStatus{Name: "Done"},
			Project:  &ProjectRef{Key: "MOON", Name: "Moonsys"},
			Priority: &NamedIcon{Name: "High"},
		}},
		{Fields: TicketFields{
			Assignee:  &TicketAssignee{DisplayName: "Alice"},
			Status:    &TicketStatus{Name: "To Do"},
			Project:   &ProjectRef{Key: "MOON", Name: "Moonsys"},
			IssueType: &NamedIcon{Name: "Bug"},
		}},
		{Fields: TicketFields{}},
	}

	opts := CollectFilterOptions(tickets)
	assert.Equal(t, []string{"Alice", "Bob"}, opts.Assignees)
	assert.Equal(t, []string{"Done", "To Do"}, opts.Statuses)
	require.Len(t, opts.Projects, 1)
	assert.Equal(t, "MOON", opts.Projects[0].Key)
	assert.Equal(t, []string{"High"}, opts.Priorities)
	assert.Equal(t, []string{"Bug"}, opts.IssueTypes)
}
