package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"

	timehelper "github.com/nvbf/tournament-tracker/pkg/timeHelper"
)

const (
	MinSecretLength = 32
	SessionTTL      = 30 * 24 * time.Hour
)

var ErrWeakSecret = fmt.Errorf("JWT secret must be at least %d characters", MinSecretLength)

type sessionClaims struct {
	SessionID string `json:"sessionId"`
	jwt.RegisteredClaims
}

// JWT issues and verifies HS256 session tokens carrying a session id.
type JWT struct {
	secret []byte
	clock  timehelper.Clock
}

func NewJWT(secret string, clock timehelper.Clock) (*JWT, error) {
	if len(secret) < MinSecretLength {
		return nil, ErrWeakSecret
	}
	if clock == nil {
		clock = timehelper.System()
	}
	return &JWT{secret: []byte(secret), clock: clock}, nil
}

// Issue signs a token for sessionID and returns it with its expiry.
func (j *JWT) Issue(sessionID string) (string, time.Time, error) {
	now := j.clock()
	expires := now.Add(SessionTTL)
	claims := sessionClaims{
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expires),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(j.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign session token: %w", err)
	}
	return signed, expires, nil
}

func (j *JWT) Verify(_ context.Context, token string) (string, error) {
	claims := &sessionClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return j.secret, nil
	})
	if err != nil || !parsed.Valid {
		return "", ErrInvalidToken
	}
	if _, err := NormalizeSessionID(claims.SessionID); err != nil {
		return "", ErrInvalidToken
	}
	return claims.SessionID, nil
}
