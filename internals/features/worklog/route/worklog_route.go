package route

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"moonsys_backend/internals/configs"
	worklogCtrl "moonsys_backend/internals/features/worklog/controller"
	"moonsys_backend/internals/features/worklog/service"
)

func WorklogRoutes(r fiber.Router, loc *time.Location) {
	var client *service.JiraClient
	if configs.JiraHost != "" && configs.JiraEmail != "" && configs.JiraToken != "" {
		client = service.NewJiraClient(configs.JiraHost, configs.JiraEmail, configs.JiraToken)
	}

	ctrl := worklogCtrl.NewWorklogController(client, configs.JiraProjectKey, loc)

	r.Get("/worklog", ctrl.Worklog)
	r.Get("/tickets", ctrl.Tickets)
	r.Get("/tickets/filters", ctrl.TicketFilterOptions)
}
