package league

import (
	"fmt"

	"github.com/xorcare/pointer"
)

const (
	RoundQF1   = "QF1"
	RoundQF2   = "QF2"
	RoundQF3   = "QF3"
	RoundQF4   = "QF4"
	RoundSF1   = "SF1"
	RoundSF2   = "SF2"
	RoundFinal = "F"
)

type side int

const (
	sideA side = iota
	sideB
)

type slotRef struct {
	Round string
	Side  side
}

type seeding struct {
	Round string
	SeedA int
	SeedB int
}

// topology describes one bracket variant: its rounds in display order, the
// seeded first-round pairings and where every winner advances to.
type topology struct {
	Size    int
	Rounds  []string
	Seeds   []seeding
	Advance map[string]slotRef
}

var topologies = map[int]topology{
	2: {
		Size:   2,
		Rounds: []string{RoundSF1, RoundFinal},
		Seeds: []seeding{
			{Round: RoundSF1, SeedA: 1, SeedB: 2},
		},
		Advance: map[string]slotRef{
			RoundSF1: {Round: RoundFinal, Side: sideA},
		},
	},
	4: {
		Size:   4,
		Rounds: []string{RoundQF1, RoundQF2, RoundSF1, RoundSF2, RoundFinal},
		Seeds: []seeding{
			{Round: RoundQF1, SeedA: 1, SeedB: 4},
			{Round: RoundQF2, SeedA: 2, SeedB: 3},
		},
		Advance: map[string]slotRef{
			RoundQF1: {Round: RoundSF1, Side: sideA},
			RoundQF2: {Round: RoundSF1, Side: sideB},
			RoundSF1: {Round: RoundFinal, Side: sideA},
			RoundSF2: {Round: RoundFinal, Side: sideB},
		},
	},
	8: {
		Size:   8,
		Rounds: []string{RoundQF1, RoundQF2, RoundQF3, RoundQF4, RoundSF1, RoundSF2, RoundFinal},
		Seeds: []seeding{
			{Round: RoundQF1, SeedA: 1, SeedB: 8},
			{Round: RoundQF2, SeedA: 4, SeedB: 5},
			{Round: RoundQF3, SeedA: 2, SeedB: 7},
			{Round: RoundQF4, SeedA: 3, SeedB: 6},
		},
		Advance: map[string]slotRef{
			RoundQF1: {Round: RoundSF1, Side: sideA},
			RoundQF2: {Round: RoundSF1, Side: sideB},
			RoundQF3: {Round: RoundSF2, Side: sideA},
			RoundQF4: {Round: RoundSF2, Side: sideB},
			RoundSF1: {Round: RoundFinal, Side: sideA},
			RoundSF2: {Round: RoundFinal, Side: sideB},
		},
	},
}

// BracketSize returns the bracket variant used for n teams, or 0 when n is
// too small to play a playoff.
func BracketSize(n int) int {
	switch {
	case n >= 8:
		return 8
	case n >= 4:
		return 4
	case n >= 2:
		return 2
	default:
		return 0
	}
}

// topologyFor infers the variant from an existing bracket's length.
func topologyFor(playoff []BracketMatch) (topology, bool) {
	for _, tp := range topologies {
		if len(tp.Rounds) == len(playoff) {
			return tp, true
		}
	}
	return topology{}, false
}

// GenerateBracket seeds a new bracket from the current standings, replacing
// any existing one.
func (e *Engine) GenerateBracket(t *Tournament) error {
	size := BracketSize(len(t.Teams))
	if size == 0 {
		return invalid("at least 2 teams are needed for a playoff")
	}
	tp := topologies[size]
	ranked := Rank(t.Teams)

	pairs := make(map[string]seeding, len(tp.Seeds))
	for _, s := range tp.Seeds {
		pairs[s.Round] = s
	}

	bracket := make([]BracketMatch, 0, len(tp.Rounds))
	for _, round := range tp.Rounds {
		m := BracketMatch{Round: round}
		if s, ok := pairs[round]; ok {
			m.TeamA = ranked[s.SeedA-1].Name
			m.TeamB = ranked[s.SeedB-1].Name
		}
		bracket = append(bracket, m)
	}
	t.Playoff = bracket

	e.Record(t, "Fase playoff generada")
	e.touch(t)
	return nil
}

// RecordBracketResult stores the result of a playoff round and advances the
// winner. Draws are not allowed.
func (e *Engine) RecordBracketResult(t *Tournament, round string, scoreA, scoreB int) error {
	pos := -1
	for i, m := range t.Playoff {
		if m.Round == round {
			pos = i
			break
		}
	}
	if pos < 0 {
		return &NotFoundError{Kind: "round", Key: round}
	}

	m := t.Playoff[pos]
	switch {
	case m.Played:
		return invalid("round %s has already been played", round)
	case m.TeamA == "" || m.TeamB == "":
		return invalid("round %s is still waiting for its teams", round)
	case !validScore(scoreA) || !validScore(scoreB):
		return invalid("scores must be between 0 and %d", MaxScore)
	case scoreA == scoreB:
		return invalid("a playoff match cannot end in a draw")
	}

	m.ScoreA = pointer.Int(scoreA)
	m.ScoreB = pointer.Int(scoreB)
	m.Played = true
	t.Playoff[pos] = m
	e.Record(t, fmt.Sprintf("Playoff %s: %s %d–%d %s", round, m.TeamA, scoreA, scoreB, m.TeamB))

	winner := m.Winner()
	if tp, ok := topologyFor(t.Playoff); ok {
		if dest, ok := tp.Advance[round]; ok {
			advance(t.Playoff, dest, winner)
		}
	}
	if round == RoundFinal {
		e.Record(t, "🏆 Campeón: "+winner)
	}
	e.touch(t)
	return nil
}

func advance(playoff []BracketMatch, dest slotRef, team string) {
	for i := range playoff {
		if playoff[i].Round != dest.Round {
			continue
		}
		if dest.Side == sideA {
			playoff[i].TeamA = team
		} else {
			playoff[i].TeamB = team
		}
		return
	}
}

// ResetBracket discards the bracket.
func (e *Engine) ResetBracket(t *Tournament) {
	t.Playoff = []BracketMatch{}
	e.Record(t, "Playoff reiniciado")
	e.touch(t)
}
