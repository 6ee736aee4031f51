package teams

import (
	"context"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nvbf/tournament-tracker/pkg/league"
	store "github.com/nvbf/tournament-tracker/repos/tournaments"
)

func TestAddAndRemoveTeam(t *testing.T) {
	ctx := context.Background()
	logger, _ := test.NewNullLogger()
	engine := league.NewEngine(nil)
	memory := store.NewMemoryStore()
	tournament, err := engine.NewTournament("Copa", "", "ana_01")
	require.NoError(t, err)
	require.NoError(t, memory.Create(ctx, tournament))
	s := NewTeamsService(memory, engine, logger)

	updated, err := s.AddTeam(ctx, tournament.ID, "ana_01", "  Peña <Sur>  ")
	require.NoError(t, err)
	require.Len(t, updated.Teams, 1)
	assert.Equal(t, "Peña &lt;Sur&gt;", updated.Teams[0].Name)

	_, err = s.AddTeam(ctx, tournament.ID, "ana_01", "Peña <Sur>")
	assert.True(t, league.IsValidation(err))

	_, err = s.AddTeam(ctx, tournament.ID, "luis", "Otro")
	assert.ErrorIs(t, err, store.ErrNotFound)

	unchanged, err := s.RemoveTeam(ctx, tournament.ID, "ana_01", "missing")
	require.NoError(t, err)
	assert.Len(t, unchanged.Teams, 1)

	removed, err := s.RemoveTeam(ctx, tournament.ID, "ana_01", updated.Teams[0].ID)
	require.NoError(t, err)
	assert.Empty(t, removed.Teams)

	stored, err := memory.Get(ctx, tournament.ID)
	require.NoError(t, err)
	assert.Empty(t, stored.Teams)
}
