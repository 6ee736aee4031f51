package league

import "time"

// LeagueRound marks a match that counts towards the standings.
const LeagueRound = "league"

const (
	MaxTeams       = 64
	MaxMatches     = 1000
	MaxActivity    = 20
	MaxTeamName    = 40
	MaxScore       = 999
	MaxTournaments = 50
	MaxNameLength  = 60
)

// Sports accepted for a tournament. The first entry is the default.
var Sports = []string{"futbol", "futbol_sala", "baloncesto", "tenis", "frontenis", "voleibol", "padel", "rugby"}

type Team struct {
	ID           string `json:"id" firestore:"id" bson:"id"`
	Name         string `json:"name" firestore:"name" bson:"name"`
	Points       int    `json:"points" firestore:"points" bson:"points"`
	Wins         int    `json:"wins" firestore:"wins" bson:"wins"`
	Draws        int    `json:"draws" firestore:"draws" bson:"draws"`
	Losses       int    `json:"losses" firestore:"losses" bson:"losses"`
	GoalsFor     int    `json:"goalsFor" firestore:"goalsFor" bson:"goalsFor"`
	GoalsAgainst int    `json:"goalsAgainst" firestore:"goalsAgainst" bson:"goalsAgainst"`
}

// GoalDifference is goals scored minus goals conceded.
func (t Team) GoalDifference() int {
	return t.GoalsFor - t.GoalsAgainst
}

type Match struct {
	ID        string    `json:"id" firestore:"id" bson:"id"`
	TeamA     string    `json:"teamA" firestore:"teamA" bson:"teamA"`
	TeamB     string    `json:"teamB" firestore:"teamB" bson:"teamB"`
	ScoreA    int       `json:"scoreA" firestore:"scoreA" bson:"scoreA"`
	ScoreB    int       `json:"scoreB" firestore:"scoreB" bson:"scoreB"`
	Round     string    `json:"round" firestore:"round" bson:"round"`
	CreatedAt time.Time `json:"createdAt" firestore:"createdAt" bson:"createdAt"`
}

// BracketMatch is one slot pairing of the playoff. An empty team name means
// the slot has not been decided yet. Scores stay nil until the match is played.
type BracketMatch struct {
	Round  string `json:"round" firestore:"round" bson:"round"`
	TeamA  string `json:"teamA" firestore:"teamA" bson:"teamA"`
	TeamB  string `json:"teamB" firestore:"teamB" bson:"teamB"`
	ScoreA *int   `json:"scoreA" firestore:"scoreA" bson:"scoreA"`
	ScoreB *int   `json:"scoreB" firestore:"scoreB" bson:"scoreB"`
	Played bool   `json:"played" firestore:"played" bson:"played"`
}

// Winner returns the winning team of a played match, or "" when undecided.
func (m BracketMatch) Winner() string {
	if !m.Played || m.ScoreA == nil || m.ScoreB == nil {
		return ""
	}
	if *m.ScoreA > *m.ScoreB {
		return m.TeamA
	}
	return m.TeamB
}

type Activity struct {
	Text string    `json:"text" firestore:"text" bson:"text"`
	Date time.Time `json:"date" firestore:"date" bson:"date"`
}

// Tournament is the aggregate persisted as one document.
type Tournament struct {
	ID          string         `json:"id" firestore:"id" bson:"_id"`
	Name        string         `json:"name" firestore:"name" bson:"name"`
	Sport       string         `json:"sport" firestore:"sport" bson:"sport"`
	Owner       string         `json:"-" firestore:"owner" bson:"owner"`
	PublicShare bool           `json:"publicShare" firestore:"publicShare" bson:"publicShare"`
	ShareSecret string         `json:"-" firestore:"shareSecret" bson:"shareSecret"`
	Teams       []Team         `json:"teams" firestore:"teams" bson:"teams"`
	Matches     []Match        `json:"matches" firestore:"matches" bson:"matches"`
	Playoff     []BracketMatch `json:"playoff" firestore:"playoff" bson:"playoff"`
	Activity    []Activity     `json:"activity" firestore:"activity" bson:"activity"`
	CreatedAt   time.Time      `json:"createdAt" firestore:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt" firestore:"updatedAt" bson:"updatedAt"`
}

// Champion returns the winner of the final once it has been played.
func (t *Tournament) Champion() string {
	for _, m := range t.Playoff {
		if m.Round == RoundFinal {
			return m.Winner()
		}
	}
	return ""
}

// ValidSport reports whether sport is one of Sports.
func ValidSport(sport string) bool {
	for _, s := range Sports {
		if s == sport {
			return true
		}
	}
	return false
}
