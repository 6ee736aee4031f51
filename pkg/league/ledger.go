package league

import "fmt"

// AddMatch appends a league match and updates both teams incrementally.
func (e *Engine) AddMatch(t *Tournament, teamA, teamB string, scoreA, scoreB int) (Match, error) {
	if len(t.Matches) >= MaxMatches {
		return Match{}, invalid("tournament already has %d matches", MaxMatches)
	}
	if normalizeName(teamA) == normalizeName(teamB) {
		return Match{}, invalid("a team cannot play against itself")
	}
	idx := teamIndex(t.Teams)
	a, ok := idx[normalizeName(teamA)]
	if !ok {
		return Match{}, invalid("unknown team %q", teamA)
	}
	b, ok := idx[normalizeName(teamB)]
	if !ok {
		return Match{}, invalid("unknown team %q", teamB)
	}
	if !validScore(scoreA) || !validScore(scoreB) {
		return Match{}, invalid("scores must be between 0 and %d", MaxScore)
	}

	m := Match{
		ID:        e.NewID(),
		TeamA:     t.Teams[a].Name,
		TeamB:     t.Teams[b].Name,
		ScoreA:    scoreA,
		ScoreB:    scoreB,
		Round:     LeagueRound,
		CreatedAt: e.now(),
	}
	t.Matches = append(t.Matches, m)
	applyResult(&t.Teams[a], &t.Teams[b], scoreA, scoreB)

	e.Record(t, fmt.Sprintf("%s %d–%d %s · %s", m.TeamA, scoreA, scoreB, m.TeamB, outcome(m)))
	e.touch(t)
	return m, nil
}

// RemoveMatch deletes a match and recomputes the standings from scratch.
// An unknown id leaves the tournament untouched.
func (e *Engine) RemoveMatch(t *Tournament, matchID string) bool {
	pos := -1
	for i, m := range t.Matches {
		if m.ID == matchID {
			pos = i
			break
		}
	}
	if pos < 0 {
		return false
	}

	removed := t.Matches[pos]
	matches := make([]Match, 0, len(t.Matches)-1)
	matches = append(matches, t.Matches[:pos]...)
	matches = append(matches, t.Matches[pos+1:]...)
	t.Matches = matches

	e.Record(t, fmt.Sprintf("Partido %s vs %s eliminado", removed.TeamA, removed.TeamB))
	t.Teams = Recalculate(t.Teams, t.Matches)
	e.touch(t)
	return true
}

func outcome(m Match) string {
	switch {
	case m.ScoreA > m.ScoreB:
		return m.TeamA + " ganó"
	case m.ScoreB > m.ScoreA:
		return m.TeamB + " ganó"
	default:
		return "Empate"
	}
}

func validScore(s int) bool {
	return s >= 0 && s <= MaxScore
}
