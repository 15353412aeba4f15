// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/slack-go/slack"
	"gorm.io/gorm"

	"moonsys_backend/internals/configs"
	attendanceRoute "moonsys_backend/internals/features/attendance/route"
	fileRoute "moonsys_backend/internals/features/projects/file/route"
	projectRoute "moonsys_backend/internals/features/projects/project/route"
	taxonomyRoute "moonsys_backend/internals/features/projects/taxonomy/route"
	slackRoute "moonsys_backend/internals/features/slack/route"
	authRoute "moonsys_backend/internals/features/users/auth/route"
	worklogRoute "moonsys_backend/internals/features/worklog/route"
	authMiddleware "moonsys_backend/internals/middlewares/auth"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()
	loc := configs.ReportLocation

	var slackAPI *slack.Client
	if configs.SlackBotToken != "" {
		slackAPI = slack.New(configs.SlackBotToken)
	}

	// ===================== PUBLIC =====================
	log.Println("[INFO] Setting up public routes...")
	BaseRoutes(app, db)
	authRoute.AuthRoutes(app)
	slackRoute.SlackEventRoutes(app.Group("/api"), db, slackAPI, configs.SlackSigningSecret)

	// ===================== DASHBOARD (JWT) =====================
	log.Println("[INFO] Setting up dashboard group...")
	api := app.Group("/api",
		authMiddleware.AuthJWT(authMiddleware.AuthJWTOpts{
			Secret:              configs.JWTSecret,
			AllowCookieFallback: true,
		}),
	)

	log.Println("[INFO] Mounting attendance routes...")
	attendanceRoute.AttendanceRoutes(api, db, loc)

	log.Println("[INFO] Mounting slack routes...")
	slackRoute.SlackRoutes(api, db, slackAPI, configs.SlackSigningSecret)

	log.Println("[INFO] Mounting worklog routes...")
	worklogRoute.WorklogRoutes(api, loc)

	log.Println("[INFO] Mounting project routes...")
	projectRoute.ProjectRoutes(api, db)
	taxonomyRoute.TaxonomyRoutes(api, db)
	fileRoute.FileRoutes(api, db)

	log.Println("[INFO] Mounting session routes...")
	authRoute.SessionRoutes(api)
}
