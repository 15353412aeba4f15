package model

import (
	"time"

	"gorm.io/datatypes"
)

const (
	MessageTypeCheckin  = "checkin"
	MessageTypeCheckout = "checkout"
	MessageTypeOther    = "other"
)

// SlackMessageModel is one captured Slack message. MessageID is the
// idempotency key (channel + ts); Timestamp keeps Slack's fractional
// Unix-seconds string so it stays an exact ordering key.
type SlackMessageModel struct {
	ID          uint           `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	MessageID   string         `gorm:"uniqueIndex;size:64;not null;column:message_id" json:"message_id"`
	ChannelID   string         `gorm:"size:32;not null;index:idx_channel_id;column:channel_id" json:"channel_id"`
	ChannelName *string        `gorm:"size:120;column:channel_name" json:"channel_name,omitempty"`
	UserID      string         `gorm:"size:32;not null;index:idx_user_id;column:user_id" json:"user_id"`
	UserName    *string        `gorm:"size:120;column:user_name" json:"user_name,omitempty"`
	MessageText string         `gorm:"type:text;not null;column:message_text" json:"message_text"`
	MessageType string         `gorm:"size:16;index:idx_message_type;column:message_type" json:"message_type"`
	Timestamp   string         `gorm:"size:24;not null;index:idx_timestamp;column:timestamp" json:"timestamp"`
	RawEvent    datatypes.JSON `gorm:"column:raw_event" json:"raw_event,omitempty"`
	CreatedAt   time.Time      `gorm:"autoCreateTime;column:created_at" json:"created_at"`
}

func (SlackMessageModel) TableName() string { return "slack_messages" }
