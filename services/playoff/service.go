package playoff

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/nvbf/tournament-tracker/pkg/league"
	"github.com/nvbf/tournament-tracker/pkg/sanitize"
	store "github.com/nvbf/tournament-tracker/repos/tournaments"
)

type PlayoffService struct {
	store  store.Store
	engine *league.Engine
	logger *logrus.Logger
}

func NewPlayoffService(s store.Store, engine *league.Engine, logger *logrus.Logger) *PlayoffService {
	return &PlayoffService{
		store:  s,
		engine: engine,
		logger: logger,
	}
}

func (s *PlayoffService) Generate(ctx context.Context, id, owner string) (*league.Tournament, error) {
	return store.Mutate(ctx, s.store, id, owner, func(t *league.Tournament) (bool, error) {
		if err := s.engine.GenerateBracket(t); err != nil {
			return false, err
		}
		return true, nil
	})
}

func (s *PlayoffService) RecordResult(ctx context.Context, id, owner, round string, request ResultRequest) (*league.Tournament, error) {
	round = strings.ToUpper(strings.TrimSpace(round))
	scoreA := sanitize.Score(int(request.ScoreA), league.MaxScore)
	scoreB := sanitize.Score(int(request.ScoreB), league.MaxScore)

	t, err := store.Mutate(ctx, s.store, id, owner, func(t *league.Tournament) (bool, error) {
		if err := s.engine.RecordBracketResult(t, round, scoreA, scoreB); err != nil {
			return false, err
		}
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	if champion := t.Champion(); champion != "" && round == league.RoundFinal {
		s.logger.WithFields(logrus.Fields{"tournament": id, "champion": champion}).Info("tournament decided")
	}
	return t, nil
}

func (s *PlayoffService) Reset(ctx context.Context, id, owner string) (*league.Tournament, error) {
	return store.Mutate(ctx, s.store, id, owner, func(t *league.Tournament) (bool, error) {
		s.engine.ResetBracket(t)
		return true, nil
	})
}
