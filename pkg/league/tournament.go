package league

import (
	"fmt"
	"unicode/utf8"
)

// NewTournament creates an empty tournament for owner. An empty sport falls
// back to the first entry of Sports.
func (e *Engine) NewTournament(name, sport, owner string) (*Tournament, error) {
	if name == "" || utf8.RuneCountInString(name) > MaxNameLength {
		return nil, invalid("tournament name must be between 1 and %d characters", MaxNameLength)
	}
	if sport == "" {
		sport = Sports[0]
	}
	if !ValidSport(sport) {
		return nil, invalid("unknown sport %q", sport)
	}
	if owner == "" {
		return nil, invalid("tournament needs an owner")
	}

	now := e.now()
	t := &Tournament{
		ID:        e.NewID(),
		Name:      name,
		Sport:     sport,
		Owner:     owner,
		Teams:     []Team{},
		Matches:   []Match{},
		Playoff:   []BracketMatch{},
		Activity:  []Activity{},
		CreatedAt: now,
		UpdatedAt: now,
	}
	e.Record(t, fmt.Sprintf(`Torneo "%s" creado`, name))
	return t, nil
}

// AddTeam registers a new team with zeroed statistics. Kept matches of a
// removed team with the same name are only credited to it on the next full
// recompute.
func (e *Engine) AddTeam(t *Tournament, name string) (Team, error) {
	name = normalizeName(name)
	if name == "" || utf8.RuneCountInString(name) > MaxTeamName {
		return Team{}, invalid("team name must be between 1 and %d characters", MaxTeamName)
	}
	if len(t.Teams) >= MaxTeams {
		return Team{}, invalid("tournament already has %d teams", MaxTeams)
	}
	if _, exists := teamIndex(t.Teams)[name]; exists {
		return Team{}, invalid("team %q already exists", name)
	}

	team := Team{ID: e.NewID(), Name: name}
	t.Teams = append(t.Teams, team)
	e.Record(t, fmt.Sprintf(`"%s" añadido`, name))
	e.touch(t)
	return team, nil
}

// RemoveTeam drops a team by id. Matches naming it are kept. Returns false
// when no such team exists.
func (e *Engine) RemoveTeam(t *Tournament, teamID string) bool {
	for i, team := range t.Teams {
		if team.ID != teamID {
			continue
		}
		teams := make([]Team, 0, len(t.Teams)-1)
		teams = append(teams, t.Teams[:i]...)
		teams = append(teams, t.Teams[i+1:]...)
		t.Teams = teams

		e.Record(t, fmt.Sprintf(`"%s" eliminado`, team.Name))
		e.touch(t)
		return true
	}
	return false
}

// TogglePublicShare flips public read access and returns the new state.
func (e *Engine) TogglePublicShare(t *Tournament) bool {
	t.PublicShare = !t.PublicShare
	if t.PublicShare {
		e.Record(t, "Torneo compartido públicamente")
	} else {
		e.Record(t, "Torneo hecho privado")
	}
	e.touch(t)
	return t.PublicShare
}
