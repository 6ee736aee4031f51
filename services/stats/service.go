package stats

import (
	"context"

	"github.com/nvbf/tournament-tracker/pkg/league"
)

// Source loads tournaments for the owner or through a share code.
type Source interface {
	Get(ctx context.Context, id, owner string) (*league.Tournament, error)
	Public(ctx context.Context, code string) (*league.Tournament, error)
}

type StatsService struct {
	source Source
}

func NewStatsService(source Source) *StatsService {
	return &StatsService{source: source}
}

func (s *StatsService) GetStandings(ctx context.Context, id, owner string) ([]StandingRow, error) {
	t, err := s.source.Get(ctx, id, owner)
	if err != nil {
		return nil, err
	}
	return Standings(t), nil
}

func (s *StatsService) GetStats(ctx context.Context, id, owner string) (*TournamentStats, error) {
	t, err := s.source.Get(ctx, id, owner)
	if err != nil {
		return nil, err
	}
	stats := Compute(t)
	return &stats, nil
}

func (s *StatsService) PublicStandings(ctx context.Context, code string) ([]StandingRow, error) {
	t, err := s.source.Public(ctx, code)
	if err != nil {
		return nil, err
	}
	return Standings(t), nil
}

func (s *StatsService) PublicStats(ctx context.Context, code string) (*TournamentStats, error) {
	t, err := s.source.Public(ctx, code)
	if err != nil {
		return nil, err
	}
	stats := Compute(t)
	return &stats, nil
}
