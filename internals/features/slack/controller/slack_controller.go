// file: internals/features/slack/controller/slack_controller.go
package controller

import (
	"log"
	"net/http"

	"github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/slack-go/slack"
	"github.com/slack-go/slack/slackevents"
	"gorm.io/datatypes"

	"moonsys_backend/internals/features/slack/dto"
	"moonsys_backend/internals/features/slack/model"
	"moonsys_backend/internals/features/slack/service"
	"moonsys_backend/internals/features/slack/store"
	helper "moonsys_backend/internals/helpers"
)

type SlackController struct {
	Store         *store.MessageStore
	API           *slack.Client
	SigningSecret string
}

func NewSlackController(st *store.MessageStore, api *slack.Client, signingSecret string) *SlackController {
	return &SlackController{Store: st, API: api, SigningSecret: signingSecret}
}

/* ===================== EVENTS CALLBACK ===================== */
// POST /api/slack/events
//
// Slack Events API entry point. Verified by the Slack request
// signature, not by the dashboard JWT.
func (ctrl *SlackController) Events(c *fiber.Ctx) error {
	body := c.Body()

	if ctrl.SigningSecret == "" {
		return fiber.NewError(fiber.StatusServiceUnavailable, "Slack signing secret not configured")
	}

	header := http.Header{}
	header.Set("X-Slack-Signature", c.Get("X-Slack-Signature"))
	header.Set("X-Slack-Request-Timestamp", c.Get("X-Slack-Request-Timestamp"))
	sv, err := slack.NewSecretsVerifier(header, ctrl.SigningSecret)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid Slack signature header")
	}
	if _, err := sv.Write(body); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Signature check failed")
	}
	if err := sv.Ensure(); err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "Slack signature mismatch")
	}

	eventsAPIEvent, err := slackevents.ParseEvent(body, slackevents.OptionNoVerifyToken())
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Unparseable event payload")
	}

	switch eventsAPIEvent.Type {
	case slackevents.URLVerification:
		var r slackevents.ChallengeResponse
		if err := sonic.Unmarshal(body, &r); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Bad challenge payload")
		}
		c.Set(fiber.HeaderContentType, fiber.MIMETextPlain)
		return c.SendString(r.Challenge)

	case slackevents.CallbackEvent:
		if ev, ok := eventsAPIEvent.InnerEvent.Data.(*slackevents.MessageEvent); ok {
			ctrl.handleMessageEvent(c, ev)
		}
		// Always ack quickly; Slack retries on non-2xx.
		return helper.Success(c, "ok", nil)
	}

	return helper.Success(c, "ignored", nil)
}

func (ctrl *SlackController) handleMessageEvent(c *fiber.Ctx, ev *slackevents.MessageEvent) {
	// Skip bot posts, edits/joins (subtypes) and empty messages.
	if ev.BotID != "" || ev.SubType != "" || ev.User == "" || ev.Text == "" {
		return
	}

	msgType := service.ParseMessageType(ev.Text)

	var userName *string
	if ctrl.API != nil {
		if info, err := ctrl.API.GetUserInfoContext(c.UserContext(), ev.User); err == nil {
			name := info.Profile.DisplayName
			if name == "" {
				name = info.RealName
			}
			if name != "" {
				userName = &name
			}
		}
	}

	raw, _ := sonic.Marshal(ev)
	msg := model.SlackMessageModel{
		MessageID:   ev.Channel + "-" + ev.TimeStamp,
		ChannelID:   ev.Channel,
		UserID:      ev.User,
		UserName:    userName,
		MessageText: ev.Text,
		MessageType: msgType,
		Timestamp:   ev.TimeStamp,
		RawEvent:    datatypes.JSON(raw),
	}
	if err := ctrl.Store.Save(&msg); err != nil {
		// Never fail the callback over a storage hiccup; Slack would
		// just retry and duplicate work.
		log.Printf("[ERROR] save slack message: %v", err)
	}
}

/* ===================== MANUAL ENTRY ===================== */
// POST /api/slack/manual-entry
func (ctrl *SlackController) ManualEntry(c *fiber.Ctx) error {
	var req dto.ManualEntryRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}

	v := validator.New()
	if err := v.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	msg := req.ToModel()
	if err := ctrl.Store.Save(&msg); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to save manual entry")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Manual entry recorded", dto.NewSlackMessageResponse(msg))
}

/* ===================== LIST ===================== */
// GET /api/slack/messages
func (ctrl *SlackController) List(c *fiber.Ctx) error {
	var req dto.ListMessagesRequest
	if err := c.QueryParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid query")
	}
	v := validator.New()
	if err := v.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	paging := helper.ResolvePaging(c, 50, 200)

	filter := store.ListFilter{}
	if req.ChannelID != nil {
		filter.ChannelID = *req.ChannelID
	}
	if req.UserID != nil {
		filter.UserID = *req.UserID
	}
	if req.MessageType != nil {
		filter.MessageType = *req.MessageType
	}

	rows, total, err := ctrl.Store.List(filter, paging.Offset, paging.Limit)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch messages")
	}

	items := make([]dto.SlackMessageResponse, 0, len(rows))
	for _, row := range rows {
		items = append(items, dto.NewSlackMessageResponse(row))
	}

	pagination := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	pagination.Count = len(items)

	return helper.Success(c, "OK", fiber.Map{
		"messages":   items,
		"pagination": pagination,
	})
}

/* ===================== CONNECTIVITY TEST ===================== */
// GET /api/slack/test
func (ctrl *SlackController) Test(c *fiber.Ctx) error {
	if ctrl.API == nil {
		return fiber.NewError(fiber.StatusServiceUnavailable, "Slack bot token not configured")
	}
	resp, err := ctrl.API.AuthTestContext(c.UserContext())
	if err != nil {
		return fiber.NewError(fiber.StatusBadGateway, "Slack auth test failed: "+err.Error())
	}
	return helper.Success(c, "Slack connection OK", fiber.Map{
		"team":    resp.Team,
		"user":    resp.User,
		"user_id": resp.UserID,
		"url":     resp.URL,
	})
}
