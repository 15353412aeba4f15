// file: internals/features/slack/store/message_store.go
package store

import (
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"moonsys_backend/internals/features/slack/model"
)

// MessageStore is the data-access handle for slack_messages. It is
// constructed once with the DB pool and injected into controllers;
// the attendance reconstructor never touches it directly; it only
// sees the event slice a controller reads through this store.
type MessageStore struct {
	DB *gorm.DB
}

func NewMessageStore(db *gorm.DB) *MessageStore {
	return &MessageStore{DB: db}
}

// Save inserts a message, silently ignoring duplicates (same
// message_id) so Slack event retries stay idempotent.
func (s *MessageStore) Save(msg *model.SlackMessageModel) error {
	return s.DB.Clauses(clause.OnConflict{DoNothing: true}).Create(msg).Error
}

// ListCheckInOut returns all checkin/checkout messages inside the
// given window ordered by timestamp ascending. Boundaries are
// compared numerically; the caller is responsible for widening the
// end of the window (noon of the day after the requested end date)
// before reconstruction.
func (s *MessageStore) ListCheckInOut(from, to *time.Time) ([]model.SlackMessageModel, error) {
	q := s.DB.
		Where("message_type IN ?", []string{model.MessageTypeCheckin, model.MessageTypeCheckout})
	if from != nil {
		q = q.Where("CAST(`timestamp` AS DECIMAL(20,6)) >= ?", float64(from.Unix()))
	}
	if to != nil {
		q = q.Where("CAST(`timestamp` AS DECIMAL(20,6)) <= ?", float64(to.Unix()))
	}

	var rows []model.SlackMessageModel
	err := q.Order("CAST(`timestamp` AS DECIMAL(20,6)) ASC").Find(&rows).Error
	return rows, err
}

type ListFilter struct {
	ChannelID   string
	UserID      string
	MessageType string
}

// List returns messages newest-first with the usual paging.
func (s *MessageStore) List(f ListFilter, offset, limit int) ([]model.SlackMessageModel, int64, error) {
	q := s.DB.Model(&model.SlackMessageModel{})
	if f.ChannelID != "" {
		q = q.Where("channel_id = ?", f.ChannelID)
	}
	if f.UserID != "" {
		q = q.Where("user_id = ?", f.UserID)
	}
	if f.MessageType != "" {
		q = q.Where("message_type = ?", f.MessageType)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []model.SlackMessageModel
	err := q.Order("CAST(`timestamp` AS DECIMAL(20,6)) DESC").
		Offset(offset).Limit(limit).
		Find(&rows).Error
	return rows, total, err
}
