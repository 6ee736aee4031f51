package league

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"
)

type TournamentSuite struct {
	suite.Suite
	engine     *Engine
	tournament *Tournament
}

func (s *TournamentSuite) SetupTest() {
	s.engine = newTestEngine()
	tournament, err := s.engine.NewTournament("Liga de verano", "padel", "ana_01")
	s.Require().NoError(err)
	s.tournament = tournament
}

func (s *TournamentSuite) TestNewTournament() {
	s.Equal("id-001", s.tournament.ID)
	s.Equal("padel", s.tournament.Sport)
	s.Equal("ana_01", s.tournament.Owner)
	s.False(s.tournament.PublicShare)
	s.Empty(s.tournament.Teams)
	s.Require().Len(s.tournament.Activity, 1)
	s.Equal(`Torneo "Liga de verano" creado`, s.tournament.Activity[0].Text)
}

func (s *TournamentSuite) TestNewTournamentDefaultsAndRejections() {
	t, err := s.engine.NewTournament("Copa", "", "ana_01")
	s.Require().NoError(err)
	s.Equal("futbol", t.Sport)

	_, err = s.engine.NewTournament("Copa", "curling", "ana_01")
	s.True(IsValidation(err))

	_, err = s.engine.NewTournament("", "futbol", "ana_01")
	s.True(IsValidation(err))

	_, err = s.engine.NewTournament(strings.Repeat("x", MaxNameLength+1), "futbol", "ana_01")
	s.True(IsValidation(err))

	_, err = s.engine.NewTournament("Copa", "futbol", "")
	s.True(IsValidation(err))
}

func (s *TournamentSuite) TestReAddedTeamAdoptsKeptMatchesOnRecompute() {
	var leones Team
	for _, name := range []string{"Leones", "Tigres", "Osos"} {
		team, err := s.engine.AddTeam(s.tournament, name)
		s.Require().NoError(err)
		if name == "Leones" {
			leones = team
		}
	}
	_, err := s.engine.AddMatch(s.tournament, "Leones", "Tigres", 2, 0)
	s.Require().NoError(err)
	last, err := s.engine.AddMatch(s.tournament, "Tigres", "Osos", 1, 1)
	s.Require().NoError(err)

	s.Require().True(s.engine.RemoveTeam(s.tournament, leones.ID))
	_, err = s.engine.AddTeam(s.tournament, "Leones")
	s.Require().NoError(err)

	readded := teamByName(s.T(), s.tournament.Teams, "Leones")
	s.Zero(readded.Wins + readded.Draws + readded.Losses)
	s.Zero(readded.Points)

	s.Require().True(s.engine.RemoveMatch(s.tournament, last.ID))
	readded = teamByName(s.T(), s.tournament.Teams, "Leones")
	s.Equal(1, readded.Wins)
	s.Equal(3, readded.Points)
	s.Equal(2, readded.GoalsFor)
}

func (s *TournamentSuite) TestAddTeam() {
	team, err := s.engine.AddTeam(s.tournament, "  Leones ")
	s.Require().NoError(err)

	s.Equal("Leones", team.Name)
	s.NotEmpty(team.ID)
	s.Equal(Team{ID: team.ID, Name: "Leones"}, s.tournament.Teams[0])
	s.Equal(`"Leones" añadido`, s.tournament.Activity[0].Text)
	s.True(s.tournament.UpdatedAt.After(s.tournament.CreatedAt))
}

func (s *TournamentSuite) TestAddTeamRejectsDuplicates() {
	_, err := s.engine.AddTeam(s.tournament, "Leones")
	s.Require().NoError(err)

	_, err = s.engine.AddTeam(s.tournament, "Leones ")

	s.True(IsValidation(err))
	s.Len(s.tournament.Teams, 1)
}

func (s *TournamentSuite) TestAddTeamRejectsBadNames() {
	_, err := s.engine.AddTeam(s.tournament, "   ")
	s.True(IsValidation(err))

	_, err = s.engine.AddTeam(s.tournament, strings.Repeat("ñ", MaxTeamName+1))
	s.True(IsValidation(err))

	_, err = s.engine.AddTeam(s.tournament, strings.Repeat("ñ", MaxTeamName))
	s.NoError(err)
}

func (s *TournamentSuite) TestAddTeamCeiling() {
	for i := 0; i < MaxTeams; i++ {
		_, err := s.engine.AddTeam(s.tournament, fmt.Sprintf("Team %d", i))
		s.Require().NoError(err)
	}

	_, err := s.engine.AddTeam(s.tournament, "One too many")

	s.True(IsValidation(err))
	s.Len(s.tournament.Teams, MaxTeams)
}

func (s *TournamentSuite) TestRemoveTeamKeepsMatches() {
	leones, err := s.engine.AddTeam(s.tournament, "Leones")
	s.Require().NoError(err)
	_, err = s.engine.AddTeam(s.tournament, "Tigres")
	s.Require().NoError(err)
	_, err = s.engine.AddMatch(s.tournament, "Leones", "Tigres", 1, 0)
	s.Require().NoError(err)

	s.True(s.engine.RemoveTeam(s.tournament, leones.ID))

	s.Len(s.tournament.Teams, 1)
	s.Len(s.tournament.Matches, 1)
	s.Equal(`"Leones" eliminado`, s.tournament.Activity[0].Text)

	// The orphaned match no longer counts once standings are rebuilt.
	rebuilt := Recalculate(s.tournament.Teams, s.tournament.Matches)
	s.Zero(rebuilt[0].Losses)
}

func (s *TournamentSuite) TestRemoveTeamUnknownIsNoop() {
	activity := len(s.tournament.Activity)

	s.False(s.engine.RemoveTeam(s.tournament, "missing"))
	s.Len(s.tournament.Activity, activity)
}

func (s *TournamentSuite) TestTogglePublicShare() {
	s.True(s.engine.TogglePublicShare(s.tournament))
	s.True(s.tournament.PublicShare)
	s.Equal("Torneo compartido públicamente", s.tournament.Activity[0].Text)

	s.False(s.engine.TogglePublicShare(s.tournament))
	s.False(s.tournament.PublicShare)
	s.Equal("Torneo hecho privado", s.tournament.Activity[0].Text)
}

func TestTournamentSuite(t *testing.T) {
	suite.Run(t, new(TournamentSuite))
}
