package matches

import "github.com/nvbf/tournament-tracker/pkg/sanitize"

type AddRequest struct {
	TeamA  string       `json:"teamA" binding:"required"`
	TeamB  string       `json:"teamB" binding:"required"`
	ScoreA sanitize.Int `json:"scoreA"`
	ScoreB sanitize.Int `json:"scoreB"`
}
