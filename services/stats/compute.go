package stats

import (
	"math"

	"github.com/nvbf/tournament-tracker/pkg/league"
)

const formLength = 5

func Standings(t *league.Tournament) []StandingRow {
	ranked := league.Rank(t.Teams)
	rows := make([]StandingRow, 0, len(ranked))
	for i, team := range ranked {
		rows = append(rows, StandingRow{
			Position:       i + 1,
			Team:           team,
			Played:         team.Wins + team.Draws + team.Losses,
			GoalDifference: team.GoalDifference(),
		})
	}
	return rows
}

func Compute(t *league.Tournament) TournamentStats {
	ranked := league.Rank(t.Teams)
	stats := TournamentStats{
		Teams:       len(t.Teams),
		GoalsByTeam: make([]TeamGoals, 0, len(ranked)),
		Form:        make([]TeamForm, 0, len(ranked)),
		Champion:    t.Champion(),
	}

	for _, m := range t.Matches {
		if m.Round != league.LeagueRound {
			continue
		}
		stats.Matches++
		stats.Goals += m.ScoreA + m.ScoreB
	}
	if stats.Matches > 0 {
		stats.GoalsPerMatch = math.Round(float64(stats.Goals)/float64(stats.Matches)*100) / 100
	}

	for _, team := range ranked {
		stats.GoalsByTeam = append(stats.GoalsByTeam, TeamGoals{
			Team:         team.Name,
			GoalsFor:     team.GoalsFor,
			GoalsAgainst: team.GoalsAgainst,
		})
		stats.Results.Wins += team.Wins
		stats.Results.Draws += team.Draws
		stats.Results.Losses += team.Losses
		stats.Form = append(stats.Form, TeamForm{Team: team.Name, Form: form(team.Name, t.Matches)})
	}
	return stats
}

func form(team string, matches []league.Match) []string {
	var played []league.Match
	for _, m := range matches {
		if m.Round == league.LeagueRound && (m.TeamA == team || m.TeamB == team) {
			played = append(played, m)
		}
	}
	if len(played) > formLength {
		played = played[len(played)-formLength:]
	}

	out := make([]string, 0, len(played))
	for _, m := range played {
		scored, conceded := m.ScoreA, m.ScoreB
		if m.TeamB == team {
			scored, conceded = m.ScoreB, m.ScoreA
		}
		switch {
		case scored > conceded:
			out = append(out, "V")
		case scored < conceded:
			out = append(out, "D")
		default:
			out = append(out, "E")
		}
	}
	return out
}
