// file: internals/features/worklog/dto/worklog_dto.go
package dto

import "moonsys_backend/internals/features/worklog/service"

// WorklogRequest selects the reporting window.
// period=custom requires both dates.
type WorklogRequest struct {
	Period    string `query:"period" validate:"omitempty,oneof=daily yesterday weekly monthly custom"`
	StartDate string `query:"startDate" validate:"omitempty,datetime=2006-01-02"`
	EndDate   string `query:"endDate" validate:"omitempty,datetime=2006-01-02"`
}

// TicketsRequest narrows and pages the board-wide ticket listing.
// statusInclude/statusExclude arrive as repeated query params.
type TicketsRequest struct {
	Assignee   string `query:"assignee"`
	Status     string `query:"status"`
	Project    string `query:"project"`
	Priority   string `query:"priority"`
	IssueType  string `query:"issuetype"`
	StartAt    int    `query:"startAt" validate:"omitempty,min=0"`
	MaxResults int    `query:"maxResults" validate:"omitempty,min=1,max=1000"`
	FetchAll   bool   `query:"fetchAll"`
}

// WorklogResponse is the aggregated report for one window.
type WorklogResponse struct {
	Period      string                  `json:"period"`
	StartDate   string                  `json:"startDate"`
	EndDate     string                  `json:"endDate"`
	UserStats   service.AggregatedStats `json:"userStats"`
	TotalIssues int                     `json:"totalIssues"`
}
