package models

import (
	"strconv"
	"time"
)

type TournamentGroup struct {
	ID            int64      `json:"id"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     *time.Time `json:"updated_at"`
	Name          string     `json:"name"`
	IsPlayoffs    bool       `json:"is_playoffs"`
	IsGroups      bool       `json:"is_groups"`
	ChallongeID   int64      `json:"challonge_id"`
	ChallongeSlug string     `json:"challonge_slug"`
}

type Tournament struct {
	ID            int64      `json:"id"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     *time.Time `json:"updated_at"`
	Name          string     `json:"name"`
	StartDate     time.Time  `json:"start_date"`
	EndDate       time.Time  `json:"end_date"`
	Number        int        `json:"number"`
	Description   *string    `json:"description"`
	ChallongeID   int64      `json:"challonge_id"`
	ChallongeSlug string     `json:"challonge_slug"`
	IsLeague      bool       `json:"is_league"`
	IsFinished    bool       `json:"is_finished"`

	Groups            []TournamentGroup `json:"groups,omitempty"`
	ParticipantsCount *int              `json:"participants_count"`
}

// DisplayName renders league tournaments by their own name and numbered
// tournaments as "Tournament N".
func (t *Tournament) DisplayName() string {
	if t.IsLeague {
		return t.Name
	}
	return "Tournament " + strconv.Itoa(t.Number)
}

// Standing is one row of a tournament's standings table.
type Standing struct {
	TournamentID    int64    `json:"tournament_id"`
	GroupID         int64    `json:"group_id"`
	TeamID          int64    `json:"team_id"`
	Position        int      `json:"position"`
	OverallPosition int      `json:"overall_position"`
	Matches         int      `json:"matches"`
	Win             int      `json:"win"`
	Draw            int      `json:"draw"`
	Lose            int      `json:"lose"`
	Points          float64  `json:"points"`
	Buchholz        *float64 `json:"buchholz"`
	TB              *float64 `json:"tb"`

	Team           *Team            `json:"team,omitempty"`
	Tournament     *Tournament      `json:"tournament,omitempty"`
	Group          *TournamentGroup `json:"group,omitempty"`
	MatchesHistory []Encounter      `json:"matches_history,omitempty"`
}

// OwalStandingDay is a player's result on one league day.
type OwalStandingDay struct {
	Tournament Tournament `json:"tournament"`
	Team       string     `json:"team"`
	Role       Role       `json:"role"`
	Points     float64    `json:"points"`
	Wins       int        `json:"wins"`
	Draws      int        `json:"draws"`
	Losses     int        `json:"losses"`
	WinRate    float64    `json:"win_rate"`
}

type OwalStanding struct {
	User      User                       `json:"user"`
	Role      Role                       `json:"role"`
	Days      map[string]OwalStandingDay `json:"days"`
	CountDays int                        `json:"count_days"`
	Place     int                        `json:"place"`
	Best3Days float64                    `json:"best_3_days"`
	AvgPoints float64                    `json:"avg_points"`
	Wins      int                        `json:"wins"`
	Draws     int                        `json:"draws"`
	Losses    int                        `json:"losses"`
	WinRate   float64                    `json:"win_rate"`
}

type OwalStandings struct {
	Days      []Tournament   `json:"days"`
	Standings []OwalStanding `json:"standings"`
}
