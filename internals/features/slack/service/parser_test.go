package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"moonsys_backend/internals/features/slack/model"
)

func TestParseMessageTypeCheckin(t *testing.T) {
	for _, text := range []string{
		"checkin", "check in", "check-in", "ci", "in",
		"good morning", "gm", "morning",
		"starting", "start", "begin",
		"here", "present", "arrived",
		"  Checkin  ", "GOOD MORNING",
	} {
		assert.Equal(t, model.MessageTypeCheckin, ParseMessageType(text), "text=%q", text)
	}
}

func TestParseMessageTypeCheckout(t *testing.T) {
	for _, text := range []string{
		"checkout", "check out", "check-out", "co", "out",
		"good night", "gn", "night",
		"done", "finished", "complete", "ending", "end",
		"leaving", "bye", "goodbye",
		"Done", " BYE ",
	} {
		assert.Equal(t, model.MessageTypeCheckout, ParseMessageType(text), "text=%q", text)
	}
}

func TestParseMessageTypeOther(t *testing.T) {
	for _, text := range []string{
		"",
		"hello team",
		"checking in now",
		"good morning everyone",
		"i am done with the report",
		"lunch break",
		"inbox",
	} {
		assert.Equal(t, model.MessageTypeOther, ParseMessageType(text), "text=%q", text)
	}
}
