package playoff

import "github.com/nvbf/tournament-tracker/pkg/sanitize"

type ResultRequest struct {
	ScoreA sanitize.Int `json:"scoreA"`
	ScoreB sanitize.Int `json:"scoreB"`
}
