package league

import (
	"encoding/json"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddMatchUpdatesStandings(t *testing.T) {
	e := newTestEngine()
	tournament := newTournamentWithTeams(t, e, "Leones", "Tigres")

	m, err := e.AddMatch(tournament, "Leones", "Tigres", 3, 1)
	require.NoError(t, err)

	assert.Equal(t, LeagueRound, m.Round)
	assert.NotEmpty(t, m.ID)
	assert.Len(t, tournament.Matches, 1)

	leones := teamByName(t, tournament.Teams, "Leones")
	tigres := teamByName(t, tournament.Teams, "Tigres")
	assert.Equal(t, 3, leones.Points)
	assert.Equal(t, 1, leones.Wins)
	assert.Equal(t, 1, tigres.Losses)
	assert.Equal(t, 3, tigres.GoalsAgainst)

	assert.Equal(t, "Leones 3–1 Tigres · Leones ganó", tournament.Activity[0].Text)
}

func TestAddMatchDrawActivity(t *testing.T) {
	e := newTestEngine()
	tournament := newTournamentWithTeams(t, e, "Leones", "Tigres")

	_, err := e.AddMatch(tournament, "Leones", "Tigres", 2, 2)
	require.NoError(t, err)

	assert.Equal(t, "Leones 2–2 Tigres · Empate", tournament.Activity[0].Text)
}

func TestAddMatchRejections(t *testing.T) {
	cases := []struct {
		name           string
		teamA, teamB   string
		scoreA, scoreB int
	}{
		{"self match", "Leones", "Leones", 1, 0},
		{"unknown home team", "Osos", "Tigres", 1, 0},
		{"unknown away team", "Leones", "Osos", 1, 0},
		{"negative score", "Leones", "Tigres", -1, 0},
		{"score too high", "Leones", "Tigres", 0, 1000},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := newTestEngine()
			tournament := newTournamentWithTeams(t, e, "Leones", "Tigres")
			before, err := json.Marshal(tournament)
			require.NoError(t, err)

			_, err = e.AddMatch(tournament, tc.teamA, tc.teamB, tc.scoreA, tc.scoreB)

			assert.True(t, IsValidation(err), "expected validation error, got %v", err)
			after, err := json.Marshal(tournament)
			require.NoError(t, err)
			assert.JSONEq(t, string(before), string(after))
		})
	}
}

func TestAddMatchCeiling(t *testing.T) {
	e := newTestEngine()
	tournament := newTournamentWithTeams(t, e, "Leones", "Tigres")
	tournament.Matches = make([]Match, MaxMatches)

	_, err := e.AddMatch(tournament, "Leones", "Tigres", 1, 0)

	assert.True(t, IsValidation(err))
	assert.Len(t, tournament.Matches, MaxMatches)
}

func TestRemoveMatchRecomputes(t *testing.T) {
	e := newTestEngine()
	tournament := newTournamentWithTeams(t, e, "A", "B", "C")
	first, err := e.AddMatch(tournament, "A", "B", 2, 0)
	require.NoError(t, err)
	_, err = e.AddMatch(tournament, "B", "C", 1, 1)
	require.NoError(t, err)

	removed := e.RemoveMatch(tournament, first.ID)

	assert.True(t, removed)
	assert.Len(t, tournament.Matches, 1)
	assert.Equal(t, Recalculate(tournament.Teams, tournament.Matches), tournament.Teams)
	assert.Zero(t, teamByName(t, tournament.Teams, "A").Points)
	assert.Equal(t, 1, teamByName(t, tournament.Teams, "B").Points)
	assert.Equal(t, "Partido A vs B eliminado", tournament.Activity[0].Text)
}

func TestRemoveMatchUnknownIDLeavesTournamentUntouched(t *testing.T) {
	e := newTestEngine()
	tournament := newTournamentWithTeams(t, e, "A", "B")
	_, err := e.AddMatch(tournament, "A", "B", 2, 1)
	require.NoError(t, err)
	before, err := json.Marshal(tournament)
	require.NoError(t, err)

	removed := e.RemoveMatch(tournament, "missing")

	assert.False(t, removed)
	after, err := json.Marshal(tournament)
	require.NoError(t, err)
	assert.Equal(t, string(before), string(after))
}

func TestIncrementalMatchesFullRecompute(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	teamNames := []string{"A", "B", "C", "D", "E", "F"}

	for round := 0; round < 50; round++ {
		e := newTestEngine()
		tournament := newTournamentWithTeams(t, e, teamNames...)

		for i := 0; i < 30; i++ {
			a := rng.Intn(len(teamNames))
			b := rng.Intn(len(teamNames) - 1)
			if b >= a {
				b++
			}
			_, err := e.AddMatch(tournament, teamNames[a], teamNames[b], rng.Intn(6), rng.Intn(6))
			require.NoError(t, err)
			require.Equal(t, Recalculate(tournament.Teams, tournament.Matches), tournament.Teams)
		}
	}
}

func FuzzAddMatchMatchesRecalculate(f *testing.F) {
	f.Add(uint8(0), uint8(1), uint16(3), uint16(1))
	f.Add(uint8(2), uint8(3), uint16(0), uint16(0))
	f.Add(uint8(1), uint8(0), uint16(999), uint16(998))

	f.Fuzz(func(t *testing.T, a, b uint8, scoreA, scoreB uint16) {
		e := newTestEngine()
		tournament := newTournamentWithTeams(t, e, "A", "B", "C", "D")
		_, err := e.AddMatch(tournament, "A", "C", 1, 1)
		require.NoError(t, err)

		teamA := tournament.Teams[int(a)%4].Name
		teamB := tournament.Teams[int(b)%4].Name
		_, err = e.AddMatch(tournament, teamA, teamB, int(scoreA), int(scoreB))
		if err != nil {
			require.True(t, IsValidation(err))
			return
		}
		require.Equal(t, Recalculate(tournament.Teams, tournament.Matches), tournament.Teams)
	})
}
