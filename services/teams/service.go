package teams

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/nvbf/tournament-tracker/pkg/league"
	"github.com/nvbf/tournament-tracker/pkg/sanitize"
	store "github.com/nvbf/tournament-tracker/repos/tournaments"
)

type TeamsService struct {
	store  store.Store
	engine *league.Engine
	logger *logrus.Logger
}

func NewTeamsService(s store.Store, engine *league.Engine, logger *logrus.Logger) *TeamsService {
	return &TeamsService{
		store:  s,
		engine: engine,
		logger: logger,
	}
}

func (s *TeamsService) AddTeam(ctx context.Context, id, owner, name string) (*league.Tournament, error) {
	name = sanitize.Text(name, league.MaxTeamName)
	return store.Mutate(ctx, s.store, id, owner, func(t *league.Tournament) (bool, error) {
		_, err := s.engine.AddTeam(t, name)
		return err == nil, err
	})
}

// RemoveTeam deletes a team. Unknown team ids are not an error.
func (s *TeamsService) RemoveTeam(ctx context.Context, id, owner, teamID string) (*league.Tournament, error) {
	return store.Mutate(ctx, s.store, id, owner, func(t *league.Tournament) (bool, error) {
		removed := s.engine.RemoveTeam(t, teamID)
		if !removed {
			s.logger.WithFields(logrus.Fields{"tournament": id, "team": teamID}).Debug("team already gone")
		}
		return removed, nil
	})
}
