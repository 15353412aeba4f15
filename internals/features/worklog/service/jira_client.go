// file: internals/features/worklog/service/jira_client.go
package service

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
)

// Issue is the slim issue shape used by the worklog report.
type Issue struct {
	Key    string `json:"key"`
	Fields struct {
		Summary              string `json:"summary"`
		TimeOriginalEstimate *int64 `json:"timeoriginalestimate"`
	} `json:"fields"`
}

// DetailedTicket carries the fields shown on the ticket board.
type DetailedTicket struct {
	Key    string       `json:"key"`
	ID     string       `json:"id"`
	Fields TicketFields `json:"fields"`
}

type TicketFields struct {
	Summary              string          `json:"summary"`
	Status               *TicketStatus   `json:"status"`
	Assignee             *TicketAssignee `json:"assignee"`
	Project              *ProjectRef     `json:"project"`
	Priority             *NamedIcon      `json:"priority"`
	IssueType            *NamedIcon      `json:"issuetype"`
	Created              string          `json:"created"`
	Updated              string          `json:"updated"`
	ResolutionDate       *string         `json:"resolutiondate"`
	TimeOriginalEstimate *int64          `json:"timeoriginalestimate"`
	TimeEstimate         *int64          `json:"timeestimate"`
	TimeSpent            *int64          `json:"timespent"`
}

type TicketStatus struct {
	Name           string `json:"name"`
	StatusCategory struct {
		Key  string `json:"key"`
		Name string `json:"name"`
	} `json:"statusCategory"`
}

type TicketAssignee struct {
	DisplayName  string            `json:"displayName"`
	EmailAddress string            `json:"emailAddress"`
	AvatarUrls   map[string]string `json:"avatarUrls"`
}

type NamedIcon struct {
	Name    string `json:"name"`
	IconURL string `json:"iconUrl"`
}

// TicketPage is one page of a ticket search.
type TicketPage struct {
	Issues     []DetailedTicket `json:"issues"`
	Total      int              `json:"total"`
	StartAt    int              `json:"startAt"`
	MaxResults int              `json:"maxResults"`
}

// searchResponse covers both pagination dialects of the Jira search
// API: the v3 /search/jql endpoint pages with nextPageToken/isLast,
// the v2 fallback with startAt/total.
type searchResponse struct {
	Issues        []DetailedTicket `json:"issues"`
	Total         *int             `json:"total"`
	StartAt       *int             `json:"startAt"`
	MaxResults    *int             `json:"maxResults"`
	NextPageToken string           `json:"nextPageToken"`
	IsLast        bool             `json:"isLast"`
}

const (
	searchBatchSize = 100
	// Hard stop for fetch-all pagination.
	maxFetchAllIssues = 100000
)

// JiraClient talks to a Jira Cloud site with basic auth.
type JiraClient struct {
	http *resty.Client
}

func NewJiraClient(host, email, token string) *JiraClient {
	c := resty.New().
		SetBaseURL("https://"+host).
		SetBasicAuth(email, token).
		SetHeader("Accept", "application/json").
		SetTimeout(60 * time.Second)
	return &JiraClient{http: c}
}

// search runs a JQL query against /rest/api/3/search/jql, falling back
// from POST to GET and finally to the v2 endpoint. The May 2025 API
// migration left sites answering on different combinations, so all
// three are tried in order.
func (c *JiraClient) search(ctx context.Context, jql string, fields []string, maxResults, startAt int, nextPageToken string) (*searchResponse, error) {
	body := map[string]interface{}{
		"jql":        jql,
		"fields":     fields,
		"maxResults": maxResults,
	}
	if nextPageToken != "" {
		body["nextPageToken"] = nextPageToken
	} else {
		body["startAt"] = startAt
	}

	var out searchResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		SetResult(&out).
		Post("/rest/api/3/search/jql")
	if err == nil && !resp.IsError() {
		return &out, nil
	}
	log.Printf("[WARN] jira: POST /rest/api/3/search/jql failed (status=%s), trying GET", respStatus(resp, err))

	params := map[string]string{
		"jql":        jql,
		"fields":     joinFields(fields),
		"maxResults": strconv.Itoa(maxResults),
	}
	if nextPageToken != "" {
		params["nextPageToken"] = nextPageToken
	} else {
		params["startAt"] = strconv.Itoa(startAt)
	}

	out = searchResponse{}
	resp, err = c.http.R().
		SetContext(ctx).
		SetQueryParams(params).
		SetResult(&out).
		Get("/rest/api/3/search/jql")
	if err == nil && !resp.IsError() {
		return &out, nil
	}
	log.Printf("[WARN] jira: GET /rest/api/3/search/jql failed (status=%s), trying API v2", respStatus(resp, err))

	out = searchResponse{}
	resp, err = c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"jql":        jql,
			"fields":     joinFields(fields),
			"startAt":    strconv.Itoa(startAt),
			"maxResults": strconv.Itoa(maxResults),
		}).
		SetResult(&out).
		Get("/rest/api/2/search")
	if err != nil {
		return nil, fmt.Errorf("jira search: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("jira search: status %d: %s", resp.StatusCode(), resp.String())
	}
	return &out, nil
}

func respStatus(resp *resty.Response, err error) string {
	if err != nil {
		return err.Error()
	}
	return resp.Status()
}

func joinFields(fields []string) string {
	joined := ""
	for i, f := range fields {
		if i > 0 {
			joined += ","
		}
		joined += f
	}
	return joined
}

// SearchWorklogIssues returns issues that had worklogs in the window.
func (c *JiraClient) SearchWorklogIssues(ctx context.Context, startDate, endDate, projectKey string) ([]Issue, error) {
	jql := BuildWorklogJQL(startDate, endDate, projectKey)
	fields := []string{"summary", "worklog", "assignee", "timeoriginalestimate"}

	page, err := c.search(ctx, jql, fields, searchBatchSize, 0, "")
	if err != nil {
		return nil, err
	}

	issues := make([]Issue, 0, len(page.Issues))
	for _, t := range page.Issues {
		var issue Issue
		issue.Key = t.Key
		issue.Fields.Summary = t.Fields.Summary
		issue.Fields.TimeOriginalEstimate = t.Fields.TimeOriginalEstimate
		issues = append(issues, issue)
	}
	return issues, nil
}

// WorklogsForIssue fetches every worklog on an issue. Failures degrade
// to an empty list so one broken issue cannot sink a whole report.
func (c *JiraClient) WorklogsForIssue(ctx context.Context, issueKey string) []Worklog {
	var out struct {
		Worklogs []Worklog `json:"worklogs"`
	}
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&out).
		Get("/rest/api/3/issue/" + issueKey + "/worklog")
	if err != nil || resp.IsError() {
		log.Printf("[WARN] jira: worklogs for %s failed (status=%s)", issueKey, respStatus(resp, err))
		return nil
	}
	return out.Worklogs
}

var ticketFields = []string{
	"summary", "status", "assignee", "project", "priority", "issuetype",
	"created", "updated", "resolutiondate",
	"timeoriginalestimate", "timeestimate", "timespent",
}

// Tickets fetches one page, or every page when fetchAll is set.
func (c *JiraClient) Tickets(ctx context.Context, filters TicketFilters, startAt, maxResults int, fetchAll bool) (*TicketPage, error) {
	jql := BuildTicketJQL(filters)

	if !fetchAll {
		page, err := c.search(ctx, jql, ticketFields, maxResults, startAt, "")
		if err != nil {
			return nil, err
		}
		result := &TicketPage{Issues: page.Issues, StartAt: startAt, MaxResults: maxResults}
		if page.Total != nil {
			result.Total = *page.Total
		} else {
			result.Total = len(page.Issues)
		}
		if page.StartAt != nil {
			result.StartAt = *page.StartAt
		}
		if page.MaxResults != nil {
			result.MaxResults = *page.MaxResults
		}
		return result, nil
	}

	var all []DetailedTicket
	currentStartAt := 0
	nextPageToken := ""
	total := -1

	for {
		page, err := c.search(ctx, jql, ticketFields, searchBatchSize, currentStartAt, nextPageToken)
		if err != nil {
			return nil, err
		}
		all = append(all, page.Issues...)

		if len(all) >= maxFetchAllIssues {
			log.Printf("[WARN] jira: hit %d ticket cap, stopping pagination", maxFetchAllIssues)
			break
		}

		if page.NextPageToken != "" || page.IsLast {
			// Token-paged v3 dialect.
			if page.IsLast {
				break
			}
			nextPageToken = page.NextPageToken
			continue
		}

		// Offset-paged dialect.
		if total < 0 {
			if page.Total != nil && *page.Total >= len(page.Issues) {
				total = *page.Total
			}
		}
		if len(page.Issues) < searchBatchSize {
			break
		}
		currentStartAt += searchBatchSize
		if total >= 0 && currentStartAt >= total {
			break
		}
	}

	return &TicketPage{Issues: all, Total: len(all), StartAt: 0, MaxResults: len(all)}, nil
}

// FilterOptions samples the board and returns the distinct filter
// values it saw.
func (c *JiraClient) FilterOptions(ctx context.Context) (FilterOptions, error) {
	jql := BuildTicketJQL(TicketFilters{})
	fields := []string{"assignee", "status", "project", "priority", "issuetype"}

	page, err := c.search(ctx, jql, fields, 1000, 0, "")
	if err != nil {
		return FilterOptions{}, err
	}
	return CollectFilterOptions(page.Issues), nil
}
