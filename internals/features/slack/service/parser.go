// file: internals/features/slack/service/parser.go
package service

import (
	"regexp"
	"strings"

	"moonsys_backend/internals/features/slack/model"
)

// The whole message (trimmed, lower-cased) has to match one of these;
// partial matches inside a longer sentence stay "other".
var checkInPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^(checkin|check in|check-in|ci|in)$`),
	regexp.MustCompile(`^(good morning|gm|morning)$`),
	regexp.MustCompile(`^(starting|start|begin)$`),
	regexp.MustCompile(`^(here|present|arrived)$`),
}

var checkOutPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^(checkout|check out|check-out|co|out)$`),
	regexp.MustCompile(`^(good night|gn|night)$`),
	regexp.MustCompile(`^(done|finished|complete|ending|end)$`),
	regexp.MustCompile(`^(leaving|bye|goodbye)$`),
}

// ParseMessageType classifies a message as checkin, checkout or other.
func ParseMessageType(text string) string {
	lower := strings.ToLower(strings.TrimSpace(text))

	for _, p := range checkInPatterns {
		if p.MatchString(lower) {
			return model.MessageTypeCheckin
		}
	}
	for _, p := range checkOutPatterns {
		if p.MatchString(lower) {
			return model.MessageTypeCheckout
		}
	}
	return model.MessageTypeOther
}
