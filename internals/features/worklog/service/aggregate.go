// file: internals/features/worklog/service/aggregate.go
package service

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"moonsys_backend/internals/helpers/reporttime"
)

// Worklog is a single Jira worklog entry.
type Worklog struct {
	Author           WorklogAuthor `json:"author"`
	Started          string        `json:"started"`
	TimeSpentSeconds int64         `json:"timeSpentSeconds"`
}

type WorklogAuthor struct {
	DisplayName string `json:"displayName"`
	AccountID   string `json:"accountId"`
}

// TicketStats is the per-ticket slice of a user's logged time.
type TicketStats struct {
	Summary       string `json:"summary"`
	Time          int64  `json:"time"`
	EstimatedTime *int64 `json:"estimatedTime"`
}

// UserStats accumulates one user's logged time across tickets and days.
type UserStats struct {
	TotalTime int64                   `json:"totalTime"`
	Tickets   map[string]*TicketStats `json:"tickets"`
	DailyTime map[string]int64        `json:"dailyTime"`
}

// AggregatedStats is keyed by author display name.
type AggregatedStats map[string]*UserStats

var jiraTimeLayouts = []string{
	"2006-01-02T15:04:05.000-0700",
	"2006-01-02T15:04:05.000Z0700",
	time.RFC3339,
}

func parseJiraTime(s string) (time.Time, bool) {
	for _, layout := range jiraTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// DateRange resolves a reporting period to inclusive calendar-date
// bounds in loc. Weeks start on Monday, months on the 1st.
func DateRange(period string, now time.Time, loc *time.Location) (string, string) {
	day := now.In(loc)
	start, end := day, day

	switch period {
	case "yesterday":
		start = day.AddDate(0, 0, -1)
		end = start
	case "weekly":
		offset := int(day.Weekday())
		if offset == 0 {
			offset = 7
		}
		start = day.AddDate(0, 0, -(offset - 1))
	case "monthly":
		start = time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, loc)
	}

	return start.Format(reporttime.DateLayout), end.Format(reporttime.DateLayout)
}

// FormatSeconds renders a duration in seconds as "Xh Ym".
func FormatSeconds(seconds int64) string {
	hours := seconds / 3600
	minutes := (seconds % 3600) / 60
	return fmt.Sprintf("%dh %dm", hours, minutes)
}

// FilterWorklogsByDate keeps the worklogs whose start falls inside the
// inclusive [startDate, endDate] window, judged on calendar dates in loc.
func FilterWorklogsByDate(worklogs []Worklog, startDate, endDate string, loc *time.Location) []Worklog {
	kept := make([]Worklog, 0, len(worklogs))
	for _, wl := range worklogs {
		started, ok := parseJiraTime(wl.Started)
		if !ok {
			continue
		}
		date := reporttime.DateIn(started, loc)
		if date >= startDate && date <= endDate {
			kept = append(kept, wl)
		}
	}
	return kept
}

// AggregateWorklogs folds one issue's worklogs into per-user stats.
func AggregateWorklogs(worklogs []Worklog, issueKey, issueSummary string, estimatedTime *int64, loc *time.Location) AggregatedStats {
	stats := AggregatedStats{}

	for _, wl := range worklogs {
		started, ok := parseJiraTime(wl.Started)
		if !ok {
			continue
		}
		author := wl.Author.DisplayName
		date := reporttime.DateIn(started, loc)

		user := stats[author]
		if user == nil {
			user = &UserStats{Tickets: map[string]*TicketStats{}, DailyTime: map[string]int64{}}
			stats[author] = user
		}

		user.TotalTime += wl.TimeSpentSeconds

		ticket := user.Tickets[issueKey]
		if ticket == nil {
			ticket = &TicketStats{Summary: issueSummary, EstimatedTime: estimatedTime}
			user.Tickets[issueKey] = ticket
		}
		ticket.Time += wl.TimeSpentSeconds

		user.DailyTime[date] += wl.TimeSpentSeconds
	}

	return stats
}

// MergeUserStats folds source into target, summing times per user,
// ticket and day.
func MergeUserStats(target, source AggregatedStats) {
	for author, src := range source {
		dst := target[author]
		if dst == nil {
			dst = &UserStats{Tickets: map[string]*TicketStats{}, DailyTime: map[string]int64{}}
			target[author] = dst
		}

		dst.TotalTime += src.TotalTime

		for key, ticket := range src.Tickets {
			existing := dst.Tickets[key]
			if existing == nil {
				dst.Tickets[key] = ticket
				continue
			}
			existing.Time += ticket.Time
			if existing.EstimatedTime == nil && ticket.EstimatedTime != nil {
				existing.EstimatedTime = ticket.EstimatedTime
			}
		}

		for date, secs := range src.DailyTime {
			dst.DailyTime[date] += secs
		}
	}
}

// TicketFilters narrows a board-wide ticket query.
type TicketFilters struct {
	Assignee      string
	Status        string
	StatusInclude []string
	StatusExclude []string
	Project       string
	Priority      string
	IssueType     string
}

// UnassignedSentinel selects tickets without an assignee.
const UnassignedSentinel = "__UNASSIGNED__"

func (f TicketFilters) empty() bool {
	return f.Assignee == "" && f.Status == "" && len(f.StatusInclude) == 0 &&
		len(f.StatusExclude) == 0 && f.Project == "" && f.Priority == "" && f.IssueType == ""
}

func quoteList(values []string) string {
	quoted := make([]string, 0, len(values))
	for _, v := range values {
		quoted = append(quoted, `"`+v+`"`)
	}
	return strings.Join(quoted, ", ")
}

// BuildTicketJQL turns filters into a JQL query. With no filters it
// falls back to a match-everything query so pagination still works.
func BuildTicketJQL(f TicketFilters) string {
	if f.empty() {
		return `updated >= "2000-01-01" ORDER BY updated DESC`
	}

	var parts []string

	if f.Assignee == UnassignedSentinel {
		parts = append(parts, "assignee IS EMPTY")
	} else if f.Assignee != "" {
		parts = append(parts, fmt.Sprintf("assignee = %q", f.Assignee))
	}

	// statusInclude wins over statusExclude wins over the single
	// status filter.
	switch {
	case len(f.StatusInclude) > 0:
		parts = append(parts, "status IN ("+quoteList(f.StatusInclude)+")")
	case len(f.StatusExclude) > 0:
		parts = append(parts, "status NOT IN ("+quoteList(f.StatusExclude)+")")
	case f.Status != "":
		parts = append(parts, fmt.Sprintf("status = %q", f.Status))
	}

	if f.Project != "" {
		parts = append(parts, fmt.Sprintf("project = %q", f.Project))
	}
	if f.Priority != "" {
		parts = append(parts, fmt.Sprintf("priority = %q", f.Priority))
	}
	if f.IssueType != "" {
		parts = append(parts, fmt.Sprintf("issuetype = %q", f.IssueType))
	}

	return strings.Join(parts, " AND ") + " ORDER BY updated DESC"
}

// BuildWorklogJQL queries issues with worklogs inside the window,
// optionally scoped to one project.
func BuildWorklogJQL(startDate, endDate, projectKey string) string {
	jql := fmt.Sprintf("worklogDate >= %q AND worklogDate <= %q ORDER BY updated DESC", startDate, endDate)
	if projectKey != "" {
		jql = "project = " + projectKey + " AND " + jql
	}
	return jql
}

// FilterOptions are the distinct values seen across a board sample.
type FilterOptions struct {
	Assignees  []string     `json:"assignees"`
	Statuses   []string     `json:"statuses"`
	Projects   []ProjectRef `json:"projects"`
	Priorities []string     `json:"priorities"`
	IssueTypes []string     `json:"issuetypes"`
}

type ProjectRef struct {
	Key  string `json:"key"`
	Name string `json:"name"`
}

// CollectFilterOptions extracts sorted distinct filter values from a
// ticket sample.
func CollectFilterOptions(tickets []DetailedTicket) FilterOptions {
	assignees := map[string]bool{}
	statuses := map[string]bool{}
	projects := map[string]ProjectRef{}
	priorities := map[string]bool{}
	issueTypes := map[string]bool{}

	for _, t := range tickets {
		if t.Fields.Assignee != nil && t.Fields.Assignee.DisplayName != "" {
			assignees[t.Fields.Assignee.DisplayName] = true
		}
		if t.Fields.Status != nil && t.Fields.Status.Name != "" {
			statuses[t.Fields.Status.Name] = true
		}
		if t.Fields.Project != nil && t.Fields.Project.Key != "" {
			projects[t.Fields.Project.Key] = ProjectRef{Key: t.Fields.Project.Key, Name: t.Fields.Project.Name}
		}
		if t.Fields.Priority != nil && t.Fields.Priority.Name != "" {
			priorities[t.Fields.Priority.Name] = true
		}
		if t.Fields.IssueType != nil && t.Fields.IssueType.Name != "" {
			issueTypes[t.Fields.IssueType.Name] = true
		}
	}

	opts := FilterOptions{
		Assignees:  sortedKeys(assignees),
		Statuses:   sortedKeys(statuses),
		Priorities: sortedKeys(priorities),
		IssueTypes: sortedKeys(issueTypes),
		Projects:   make([]ProjectRef, 0, len(projects)),
	}
	for _, p := range projects {
		opts.Projects = append(opts.Projects, p)
	}
	sort.Slice(opts.Projects, func(i, j int) bool { return opts.Projects[i].Name < opts.Projects[j].Name })

	return opts
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
