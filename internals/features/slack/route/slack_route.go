package route

import (
	"github.com/gofiber/fiber/v2"
	"github.com/slack-go/slack"
	"gorm.io/gorm"

	slackCtrl "moonsys_backend/internals/features/slack/controller"
	"moonsys_backend/internals/features/slack/store"
)

// SlackEventRoutes registers the public Events API callback. It sits
// outside the JWT group: Slack authenticates with its own request
// signature.
func SlackEventRoutes(r fiber.Router, db *gorm.DB, api *slack.Client, signingSecret string) {
	ctrl := slackCtrl.NewSlackController(store.NewMessageStore(db), api, signingSecret)
	r.Post("/slack/events", ctrl.Events)
}

// SlackRoutes registers the dashboard-facing message endpoints.
func SlackRoutes(r fiber.Router, db *gorm.DB, api *slack.Client, signingSecret string) {
	ctrl := slackCtrl.NewSlackController(store.NewMessageStore(db), api, signingSecret)

	g := r.Group("/slack")
	g.Get("/messages", ctrl.List)
	g.Post("/manual-entry", ctrl.ManualEntry)
	g.Get("/test", ctrl.Test)
}
