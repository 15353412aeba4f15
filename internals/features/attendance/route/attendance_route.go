package route

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	attCtrl "moonsys_backend/internals/features/attendance/controller"
	"moonsys_backend/internals/features/slack/store"
)

func AttendanceRoutes(r fiber.Router, db *gorm.DB, loc *time.Location) {
	ctrl := attCtrl.NewAttendanceController(store.NewMessageStore(db), loc)

	g := r.Group("/attendance")
	g.Get("/", ctrl.Summary)
	g.Get("/records", ctrl.Records)
}
