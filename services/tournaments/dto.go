package tournaments

import (
	"time"

	"github.com/nvbf/tournament-tracker/pkg/league"
)

type CreateRequest struct {
	Name  string `json:"name" binding:"required"`
	Sport string `json:"sport"`
}

// Summary is the list view of a tournament.
type Summary struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Sport       string    `json:"sport"`
	Teams       int       `json:"teams"`
	Matches     int       `json:"matches"`
	PublicShare bool      `json:"publicShare"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type ListResponse struct {
	Tournaments []Summary `json:"tournaments"`
	Total       int       `json:"total"`
	Page        int       `json:"page"`
	Pages       int       `json:"pages"`
}

type ShareResponse struct {
	PublicShare bool   `json:"publicShare"`
	ShareCode   string `json:"shareCode,omitempty"`
}

func toSummary(t *league.Tournament) Summary {
	return Summary{
		ID:          t.ID,
		Name:        t.Name,
		Sport:       t.Sport,
		Teams:       len(t.Teams),
		Matches:     len(t.Matches),
		PublicShare: t.PublicShare,
		UpdatedAt:   t.UpdatedAt,
	}
}
