package playoff

import (
	"context"
	"fmt"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nvbf/tournament-tracker/pkg/league"
	store "github.com/nvbf/tournament-tracker/repos/tournaments"
)

func TestPlayoffToChampion(t *testing.T) {
	ctx := context.Background()
	logger, hook := test.NewNullLogger()
	engine := league.NewEngine(nil)
	memory := store.NewMemoryStore()

	tournament, err := engine.NewTournament("Copa", "", "ana_01")
	require.NoError(t, err)
	for i := 1; i <= 8; i++ {
		_, err := engine.AddTeam(tournament, fmt.Sprintf("Team%d", i))
		require.NoError(t, err)
	}
	require.NoError(t, memory.Create(ctx, tournament))
	s := NewPlayoffService(memory, engine, logger)

	_, err = s.RecordResult(ctx, tournament.ID, "ana_01", "F", ResultRequest{ScoreA: 1})
	assert.True(t, league.IsNotFound(err))

	_, err = s.Generate(ctx, tournament.ID, "ana_01")
	require.NoError(t, err)

	for _, round := range []string{"QF1", "QF2", "QF3", "QF4", "SF1", "SF2"} {
		_, err := s.RecordResult(ctx, tournament.ID, "ana_01", round, ResultRequest{ScoreA: 2, ScoreB: 1})
		require.NoError(t, err, round)
	}
	_, err = s.RecordResult(ctx, tournament.ID, "ana_01", "F", ResultRequest{ScoreA: 1, ScoreB: 1})
	assert.True(t, league.IsValidation(err))

	final, err := s.RecordResult(ctx, tournament.ID, "ana_01", "f", ResultRequest{ScoreA: 0, ScoreB: 3})
	require.NoError(t, err)
	assert.Equal(t, final.Playoff[6].TeamB, final.Champion())
	assert.NotEmpty(t, final.Champion())
	assert.Equal(t, "tournament decided", hook.LastEntry().Message)

	reset, err := s.Reset(ctx, tournament.ID, "ana_01")
	require.NoError(t, err)
	assert.Empty(t, reset.Playoff)
	assert.Empty(t, reset.Champion())
}
