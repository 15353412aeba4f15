// file: internals/features/slack/dto/slack_message_dto.go
package dto

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	m "moonsys_backend/internals/features/slack/model"
)

/* =========================================================
 * REQUESTS
 * ========================================================= */

// Manual entry: an admin inserts a synthetic checkin/checkout event
// (e.g. when someone forgot to post in the channel).
type ManualEntryRequest struct {
	UserID      string  `json:"user_id" validate:"required,max=32"`
	UserName    *string `json:"user_name" validate:"omitempty,max=120"`
	MessageType string  `json:"message_type" validate:"required,oneof=checkin checkout"`
	// Slack-style fractional Unix seconds; defaults to now.
	Timestamp   *string `json:"timestamp" validate:"omitempty,max=24"`
	MessageText *string `json:"message_text" validate:"omitempty,max=500"`
}

func (r ManualEntryRequest) ToModel() m.SlackMessageModel {
	ts := fmt.Sprintf("%d.%06d", time.Now().Unix(), 0)
	if r.Timestamp != nil && *r.Timestamp != "" {
		ts = *r.Timestamp
	}
	text := r.MessageType
	if r.MessageText != nil && *r.MessageText != "" {
		text = *r.MessageText
	}
	channelName := "manual"
	return m.SlackMessageModel{
		MessageID:   "manual-" + uuid.New().String(),
		ChannelID:   "manual",
		ChannelName: &channelName,
		UserID:      r.UserID,
		UserName:    r.UserName,
		MessageText: text,
		MessageType: r.MessageType,
		Timestamp:   ts,
	}
}

// Filter / List (query)
type ListMessagesRequest struct {
	ChannelID   *string `query:"channel_id" validate:"omitempty,max=32"`
	UserID      *string `query:"user_id" validate:"omitempty,max=32"`
	MessageType *string `query:"message_type" validate:"omitempty,oneof=checkin checkout other"`
}

/* =========================================================
 * RESPONSES
 * ========================================================= */

type SlackMessageResponse struct {
	ID          uint      `json:"id"`
	MessageID   string    `json:"message_id"`
	ChannelID   string    `json:"channel_id"`
	ChannelName *string   `json:"channel_name,omitempty"`
	UserID      string    `json:"user_id"`
	UserName    *string   `json:"user_name,omitempty"`
	MessageText string    `json:"message_text"`
	MessageType string    `json:"message_type"`
	Timestamp   string    `json:"timestamp"`
	CreatedAt   time.Time `json:"created_at"`
}

func NewSlackMessageResponse(mdl m.SlackMessageModel) SlackMessageResponse {
	return SlackMessageResponse{
		ID:          mdl.ID,
		MessageID:   mdl.MessageID,
		ChannelID:   mdl.ChannelID,
		ChannelName: mdl.ChannelName,
		UserID:      mdl.UserID,
		UserName:    mdl.UserName,
		MessageText: mdl.MessageText,
		MessageType: mdl.MessageType,
		Timestamp:   mdl.Timestamp,
		CreatedAt:   mdl.CreatedAt,
	}
}
