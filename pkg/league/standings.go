package league

import (
	"sort"
	"strings"
)

func normalizeName(name string) string {
	return strings.TrimSpace(name)
}

// teamIndex maps normalized team names to their position in teams.
func teamIndex(teams []Team) map[string]int {
	idx := make(map[string]int, len(teams))
	for i, t := range teams {
		idx[normalizeName(t.Name)] = i
	}
	return idx
}

// Recalculate rebuilds every team's derived fields from the league matches.
// Matches naming a team that no longer exists are skipped. The inputs are not
// modified.
func Recalculate(teams []Team, matches []Match) []Team {
	if teams == nil {
		return nil
	}
	out := make([]Team, len(teams))
	for i, t := range teams {
		out[i] = Team{ID: t.ID, Name: t.Name}
	}

	idx := teamIndex(out)
	for _, m := range matches {
		if m.Round != LeagueRound {
			continue
		}
		a, okA := idx[normalizeName(m.TeamA)]
		b, okB := idx[normalizeName(m.TeamB)]
		if !okA || !okB {
			continue
		}
		applyResult(&out[a], &out[b], m.ScoreA, m.ScoreB)
	}
	return out
}

func applyResult(a, b *Team, scoreA, scoreB int) {
	a.GoalsFor += scoreA
	a.GoalsAgainst += scoreB
	b.GoalsFor += scoreB
	b.GoalsAgainst += scoreA

	switch {
	case scoreA > scoreB:
		a.Points += 3
		a.Wins++
		b.Losses++
	case scoreB > scoreA:
		b.Points += 3
		b.Wins++
		a.Losses++
	default:
		a.Points++
		b.Points++
		a.Draws++
		b.Draws++
	}
}

// Rank orders teams by points, then goal difference. Ties beyond that keep
// insertion order.
func Rank(teams []Team) []Team {
	ranked := make([]Team, len(teams))
	copy(ranked, teams)
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Points != ranked[j].Points {
			return ranked[i].Points > ranked[j].Points
		}
		return ranked[i].GoalDifference() > ranked[j].GoalDifference()
	})
	return ranked
}
