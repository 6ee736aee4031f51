package stats

import "github.com/nvbf/tournament-tracker/pkg/league"

// StandingRow is one line of the league table.
type StandingRow struct {
	Position int `json:"position"`
	league.Team
	Played         int `json:"played"`
	GoalDifference int `json:"goalDifference"`
}

type TeamGoals struct {
	Team         string `json:"team"`
	GoalsFor     int    `json:"goalsFor"`
	GoalsAgainst int    `json:"goalsAgainst"`
}

type Results struct {
	Wins   int `json:"wins"`
	Draws  int `json:"draws"`
	Losses int `json:"losses"`
}

// TeamForm lists a team's most recent results, oldest first: V win, E draw,
// D loss.
type TeamForm struct {
	Team string   `json:"team"`
	Form []string `json:"form"`
}

type TournamentStats struct {
	Teams         int         `json:"teams"`
	Matches       int         `json:"matches"`
	Goals         int         `json:"goals"`
	GoalsPerMatch float64     `json:"goalsPerMatch"`
	GoalsByTeam   []TeamGoals `json:"goalsByTeam"`
	Results       Results     `json:"results"`
	Form          []TeamForm  `json:"form"`
	Champion      string      `json:"champion,omitempty"`
}
