// file: internals/features/worklog/controller/worklog_controller.go
package controller

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"moonsys_backend/internals/features/worklog/dto"
	"moonsys_backend/internals/features/worklog/service"
	helper "moonsys_backend/internals/helpers"
)

type WorklogController struct {
	Client     *service.JiraClient
	ProjectKey string
	Loc        *time.Location
}

func NewWorklogController(client *service.JiraClient, projectKey string, loc *time.Location) *WorklogController {
	return &WorklogController{Client: client, ProjectKey: projectKey, Loc: loc}
}

func (ctrl *WorklogController) requireClient() error {
	if ctrl.Client == nil {
		return fiber.NewError(fiber.StatusServiceUnavailable, "Jira is not configured")
	}
	return nil
}

/* ===================== WORKLOG REPORT ===================== */
// GET /api/worklog?period=daily|yesterday|weekly|monthly|custom
func (ctrl *WorklogController) Worklog(c *fiber.Ctx) error {
	if err := ctrl.requireClient(); err != nil {
		return err
	}

	var req dto.WorklogRequest
	if err := c.QueryParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid query")
	}
	v := validator.New()
	if err := v.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	period := req.Period
	if period == "" {
		period = "daily"
	}

	var startDate, endDate string
	if period == "custom" {
		if req.StartDate == "" || req.EndDate == "" {
			return fiber.NewError(fiber.StatusBadRequest, "custom period requires startDate and endDate")
		}
		startDate, endDate = req.StartDate, req.EndDate
	} else {
		startDate, endDate = service.DateRange(period, time.Now(), ctrl.Loc)
	}

	ctx := c.UserContext()
	issues, err := ctrl.Client.SearchWorklogIssues(ctx, startDate, endDate, ctrl.ProjectKey)
	if err != nil {
		return fiber.NewError(fiber.StatusBadGateway, "Failed to fetch work logs: "+err.Error())
	}

	allStats := service.AggregatedStats{}
	for _, issue := range issues {
		worklogs := ctrl.Client.WorklogsForIssue(ctx, issue.Key)
		filtered := service.FilterWorklogsByDate(worklogs, startDate, endDate, ctrl.Loc)
		if len(filtered) == 0 {
			continue
		}
		stats := service.AggregateWorklogs(filtered, issue.Key, issue.Fields.Summary, issue.Fields.TimeOriginalEstimate, ctrl.Loc)
		service.MergeUserStats(allStats, stats)
	}

	return helper.Success(c, "OK", dto.WorklogResponse{
		Period:      period,
		StartDate:   startDate,
		EndDate:     endDate,
		UserStats:   allStats,
		TotalIssues: len(issues),
	})
}

/* ===================== TICKET BOARD ===================== */
// GET /api/tickets
func (ctrl *WorklogController) Tickets(c *fiber.Ctx) error {
	if err := ctrl.requireClient(); err != nil {
		return err
	}

	var req dto.TicketsRequest
	if err := c.QueryParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid query")
	}
	v := validator.New()
	if err := v.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	if req.MaxResults == 0 {
		req.MaxResults = 100
	}

	filters := service.TicketFilters{
		Assignee:  req.Assignee,
		Status:    req.Status,
		Project:   req.Project,
		Priority:  req.Priority,
		IssueType: req.IssueType,
	}
	// Repeated params need the raw query args.
	c.Context().QueryArgs().VisitAll(func(key, value []byte) {
		switch string(key) {
		case "statusInclude":
			filters.StatusInclude = append(filters.StatusInclude, string(value))
		case "statusExclude":
			filters.StatusExclude = append(filters.StatusExclude, string(value))
		}
	})

	page, err := ctrl.Client.Tickets(c.UserContext(), filters, req.StartAt, req.MaxResults, req.FetchAll)
	if err != nil {
		return fiber.NewError(fiber.StatusBadGateway, "Failed to fetch tickets: "+err.Error())
	}

	return helper.Success(c, "OK", page)
}

/* ===================== FILTER OPTIONS ===================== */
// GET /api/tickets/filters
func (ctrl *WorklogController) TicketFilterOptions(c *fiber.Ctx) error {
	if err := ctrl.requireClient(); err != nil {
		return err
	}

	opts, err := ctrl.Client.FilterOptions(c.UserContext())
	if err != nil {
		return fiber.NewError(fiber.StatusBadGateway, "Failed to fetch filter options: "+err.Error())
	}
	return helper.Success(c, "OK", opts)
}
