package models

import (
	"encoding/json"
	"time"
)

// Score is an aggregate home/away score for an encounter or a single match.
type Score struct {
	Home int `json:"home"`
	Away int `json:"away"`
}

func (s *Score) UnmarshalJSON(data []byte) error {
	type alias Score
	a := (*alias)(s)
	if err := json.Unmarshal(data, a); err == nil {
		return nil
	}
	return flexUnmarshal(data, a)
}

// Encounter is a best-of series between two teams within a tournament round.
// Closeness is nil when logs for the series were never parsed.
type Encounter struct {
	ID                int64      `json:"id"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         *time.Time `json:"updated_at"`
	Name              string     `json:"name"`
	HomeTeamID        int64      `json:"home_team_id"`
	AwayTeamID        int64      `json:"away_team_id"`
	Score             Score      `json:"score"`
	Round             int        `json:"round"`
	TournamentID      int64      `json:"tournament_id"`
	TournamentGroupID int64      `json:"tournament_group_id"`
	ChallongeID       int64      `json:"challonge_id"`
	ChallongeSlug     string     `json:"challonge_slug"`
	Closeness         *float64   `json:"closeness"`
	HasLogs           bool       `json:"has_logs"`

	Matches         []Match          `json:"matches,omitempty"`
	HomeTeam        *Team            `json:"home_team,omitempty"`
	AwayTeam        *Team            `json:"away_team,omitempty"`
	Tournament      *Tournament      `json:"tournament,omitempty"`
	TournamentGroup *TournamentGroup `json:"tournament_group,omitempty"`
}

// Match is one map played within an encounter.
type Match struct {
	ID          int64      `json:"id"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at"`
	HomeTeamID  int64      `json:"home_team_id"`
	AwayTeamID  int64      `json:"away_team_id"`
	Score       Score      `json:"score"`
	Time        float64    `json:"time"`
	EncounterID int64      `json:"encounter_id"`
	MapID       int64      `json:"map_id"`
	LogName     string     `json:"log_name"`

	Map       *MapInfo   `json:"map,omitempty"`
	HomeTeam  *Team      `json:"home_team,omitempty"`
	AwayTeam  *Team      `json:"away_team,omitempty"`
	Encounter *Encounter `json:"encounter,omitempty"`
}

// MatchWithStats is a match expanded with per-round statistics and hero
// picks. Stats are keyed by round number, then by stat name; Heroes by
// round number per player.
type MatchWithStats struct {
	Match
	Rounds   int            `json:"rounds"`
	HomeTeam *TeamWithStats `json:"home_team,omitempty"`
	AwayTeam *TeamWithStats `json:"away_team,omitempty"`
}

// PlayerWithStats is a roster slot with per-round log statistics attached.
type PlayerWithStats struct {
	Player
	Stats  map[int]map[string]float64 `json:"stats"`
	Heroes map[int][]Hero             `json:"heroes"`
}

type TeamWithStats struct {
	Team
	Players []PlayerWithStats `json:"players"`
}

type MapInfo struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	Slug       string    `json:"slug"`
	ImagePath  string    `json:"image_path"`
	GamemodeID int64     `json:"gamemode_id"`
	Gamemode   *Gamemode `json:"gamemode,omitempty"`
}

type Gamemode struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	ImagePath   string `json:"image_path"`
}
