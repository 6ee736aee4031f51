package session

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/xerrors"

	"github.com/nvbf/tournament-tracker/pkg/auth"
)

// Issuer signs session tokens.
type Issuer interface {
	Issue(sessionID string) (string, time.Time, error)
}

type SessionService struct {
	issuer Issuer
	logger *logrus.Logger
}

func NewSessionService(issuer Issuer, logger *logrus.Logger) *SessionService {
	return &SessionService{
		issuer: issuer,
		logger: logger,
	}
}

// Login normalizes the session id and hands out a token for it. The session
// id is the owner key of every tournament created with that token.
func (s *SessionService) Login(_ context.Context, request LoginRequest) (*LoginResponse, error) {
	sessionID, err := auth.NormalizeSessionID(request.SessionID)
	if err != nil {
		return nil, err
	}
	token, expires, err := s.issuer.Issue(sessionID)
	if err != nil {
		return nil, xerrors.Errorf("issue token for %s: %w", sessionID, err)
	}
	s.logger.WithField("session", sessionID).Info("session started")
	return &LoginResponse{Token: token, SessionID: sessionID, ExpiresAt: expires}, nil
}
