package session

import "time"

type LoginRequest struct {
	SessionID string `json:"sessionId" binding:"required"`
}

type LoginResponse struct {
	Token     string    `json:"token"`
	SessionID string    `json:"sessionId"`
	ExpiresAt time.Time `json:"expiresAt"`
}
