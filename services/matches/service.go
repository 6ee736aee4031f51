package matches

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/nvbf/tournament-tracker/pkg/league"
	"github.com/nvbf/tournament-tracker/pkg/sanitize"
	store "github.com/nvbf/tournament-tracker/repos/tournaments"
)

type MatchesService struct {
	store  store.Store
	engine *league.Engine
	logger *logrus.Logger
}

func NewMatchesService(s store.Store, engine *league.Engine, logger *logrus.Logger) *MatchesService {
	return &MatchesService{
		store:  s,
		engine: engine,
		logger: logger,
	}
}

// ReportResult records a league match. Scores outside the allowed range are
// clamped rather than rejected.
func (s *MatchesService) ReportResult(ctx context.Context, id, owner string, request AddRequest) (*league.Tournament, error) {
	teamA := sanitize.Text(request.TeamA, league.MaxTeamName)
	teamB := sanitize.Text(request.TeamB, league.MaxTeamName)
	scoreA := sanitize.Score(int(request.ScoreA), league.MaxScore)
	scoreB := sanitize.Score(int(request.ScoreB), league.MaxScore)

	return store.Mutate(ctx, s.store, id, owner, func(t *league.Tournament) (bool, error) {
		m, err := s.engine.AddMatch(t, teamA, teamB, scoreA, scoreB)
		if err != nil {
			return false, err
		}
		s.logger.WithFields(logrus.Fields{"tournament": id, "match": m.ID}).Debug("match recorded")
		return true, nil
	})
}

// RemoveResult deletes a match and rebuilds the standings. Unknown match ids
// are not an error.
func (s *MatchesService) RemoveResult(ctx context.Context, id, owner, matchID string) (*league.Tournament, error) {
	return store.Mutate(ctx, s.store, id, owner, func(t *league.Tournament) (bool, error) {
		return s.engine.RemoveMatch(t, matchID), nil
	})
}
