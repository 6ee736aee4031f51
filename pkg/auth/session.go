package auth

import (
	"errors"
	"regexp"
	"strings"
)

const (
	minSessionID = 3
	maxSessionID = 30
)

var (
	ErrSessionTooShort = errors.New("session id must be at least 3 characters")
	ErrSessionCharset  = errors.New("session id may only contain letters, digits, '_', '-' and '.'")

	whitespace     = regexp.MustCompile(`\s+`)
	sessionCharset = regexp.MustCompile(`^[a-z0-9_\-.]+$`)
)

// NormalizeSessionID lowercases a user supplied session id, replaces runs of
// whitespace with '_' and caps it at 30 characters.
func NormalizeSessionID(raw string) (string, error) {
	id := strings.ToLower(strings.TrimSpace(raw))
	id = whitespace.ReplaceAllString(id, "_")
	if len(id) > maxSessionID {
		id = id[:maxSessionID]
	}
	if len(id) < minSessionID {
		return "", ErrSessionTooShort
	}
	if !sessionCharset.MatchString(id) {
		return "", ErrSessionCharset
	}
	return id, nil
}
