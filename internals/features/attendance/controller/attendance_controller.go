// file: internals/features/attendance/controller/attendance_controller.go
package controller

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"moonsys_backend/internals/features/attendance/service"
	"moonsys_backend/internals/features/slack/store"
	helper "moonsys_backend/internals/helpers"
	"moonsys_backend/internals/helpers/reporttime"
)

type AttendanceController struct {
	Store *store.MessageStore
	Loc   *time.Location
}

func NewAttendanceController(st *store.MessageStore, loc *time.Location) *AttendanceController {
	return &AttendanceController{Store: st, Loc: loc}
}

// loadEvents performs Step 0: resolve the requested window, widen the
// end boundary to noon of the day after endDate so early-morning
// overnight checkouts are still inside the read, then hand the rows
// to the reconstructor as plain events.
func (ctrl *AttendanceController) loadEvents(c *fiber.Ctx) ([]service.Event, error) {
	var from, to *time.Time

	if startDate := strings.TrimSpace(c.Query("startDate")); startDate != "" {
		t, err := reporttime.StartOfDay(startDate, ctrl.Loc)
		if err != nil {
			return nil, fiber.NewError(fiber.StatusBadRequest, "startDate must be YYYY-MM-DD")
		}
		from = &t
	}
	if endDate := strings.TrimSpace(c.Query("endDate")); endDate != "" {
		t, err := reporttime.NoonOfNextDay(endDate, ctrl.Loc)
		if err != nil {
			return nil, fiber.NewError(fiber.StatusBadRequest, "endDate must be YYYY-MM-DD")
		}
		to = &t
	}

	rows, err := ctrl.Store.ListCheckInOut(from, to)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch check-in/out messages")
	}

	events := make([]service.Event, 0, len(rows))
	for _, row := range rows {
		name := ""
		if row.UserName != nil {
			name = *row.UserName
		}
		events = append(events, service.Event{
			UserID:      row.UserID,
			UserName:    name,
			MessageType: row.MessageType,
			Timestamp:   row.Timestamp,
		})
	}
	return events, nil
}

/* ===================== SUMMARY ===================== */
// GET /api/attendance?startDate=YYYY-MM-DD&endDate=YYYY-MM-DD
func (ctrl *AttendanceController) Summary(c *fiber.Ctx) error {
	events, err := ctrl.loadEvents(c)
	if err != nil {
		return err
	}

	rec := service.NewReconstructor(ctrl.Loc)
	summary := rec.Summarize(rec.Records(events))

	return helper.Success(c, "OK", summary)
}

/* ===================== PER-USER RECORDS ===================== */
// GET /api/attendance/records?startDate=&endDate=
func (ctrl *AttendanceController) Records(c *fiber.Ctx) error {
	events, err := ctrl.loadEvents(c)
	if err != nil {
		return err
	}

	rec := service.NewReconstructor(ctrl.Loc)
	users := rec.Records(events)

	return helper.Success(c, "OK", fiber.Map{"users": users})
}
