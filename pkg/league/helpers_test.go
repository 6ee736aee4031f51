package league

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	timehelper "github.com/nvbf/tournament-tracker/pkg/timeHelper"
)

var testStart = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestEngine() *Engine {
	e := NewEngine(timehelper.Stepping(testStart, time.Second))
	var seq int
	e.NewID = func() string {
		seq++
		return fmt.Sprintf("id-%03d", seq)
	}
	return e
}

func newTournamentWithTeams(t *testing.T, e *Engine, names ...string) *Tournament {
	t.Helper()
	tournament, err := e.NewTournament("Liga de prueba", "", "owner")
	require.NoError(t, err)
	for _, name := range names {
		_, err := e.AddTeam(tournament, name)
		require.NoError(t, err)
	}
	return tournament
}

func teamByName(t *testing.T, teams []Team, name string) Team {
	t.Helper()
	for _, team := range teams {
		if team.Name == name {
			return team
		}
	}
	t.Fatalf("team %q not found", name)
	return Team{}
}

func names(teams []Team) []string {
	out := make([]string, 0, len(teams))
	for _, team := range teams {
		out = append(out, team.Name)
	}
	return out
}
