package models

import (
	"strings"
	"time"
)

type UserDiscord struct {
	ID        int64      `json:"id"`
	UserID    int64      `json:"user_id"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
	Name      string     `json:"name"`
}

type UserBattleTag struct {
	ID        int64      `json:"id"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
	Name      string     `json:"name"`
	Tag       int        `json:"tag"`
	BattleTag string     `json:"battle_tag"`
}

type UserTwitch struct {
	ID        int64      `json:"id"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
	Name      string     `json:"name"`
}

type User struct {
	ID        int64      `json:"id"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
	Name      string     `json:"name"`

	Discord   []UserDiscord   `json:"discord,omitempty"`
	BattleTag []UserBattleTag `json:"battle_tag,omitempty"`
	Twitch    []UserTwitch    `json:"twitch,omitempty"`
}

// Slug is the URL-safe form of a battle tag ("name#tag" -> "name-tag").
func (u *User) Slug() string {
	return strings.ReplaceAll(u.Name, "#", "-")
}

// UserRole summarizes a user's record on one role across tournaments.
type UserRole struct {
	Role        Role `json:"role"`
	Tournaments int  `json:"tournaments"`
	MapsWon     int  `json:"maps_won"`
	Maps        int  `json:"maps"`
	Division    int  `json:"division"`
}

type UserProfile struct {
	TournamentsCount    int     `json:"tournaments_count"`
	TournamentsWon      int     `json:"tournaments_won"`
	MapsTotal           int     `json:"maps_total"`
	MapsWon             int     `json:"maps_won"`
	AvgCloseness        float64 `json:"avg_closeness"`
	AvgPlacement        float64 `json:"avg_placement"`
	AvgPlayoffPlacement float64 `json:"avg_playoff_placement"`
	AvgGroupPlacement   float64 `json:"avg_group_placement"`
	MostPlayedHero      *Hero   `json:"most_played_hero"`

	Roles          []UserRole     `json:"roles"`
	HeroStatistics []HeroPlaytime `json:"hero_statistics"`
	Tournaments    []Tournament   `json:"tournaments"`
}

// MatchWithUserStats is a match annotated with the user's lobby-wide
// performance placement and the heroes they played on it.
type MatchWithUserStats struct {
	Match
	Performance int    `json:"performance"`
	Heroes      []Hero `json:"heroes"`
}

type EncounterWithUserStats struct {
	Encounter
	Matches []MatchWithUserStats `json:"matches"`
}

type UserTournament struct {
	ID         int64    `json:"id"`
	Name       string   `json:"name"`
	Number     int      `json:"number"`
	IsLeague   bool     `json:"is_league"`
	TeamID     int64    `json:"team_id"`
	Team       string   `json:"team"`
	Players    []Player `json:"players"`
	Closeness  float64  `json:"closeness"`
	Placement  int      `json:"placement"`
	CountTeams int      `json:"count_teams"`
	Won        int      `json:"won"`
	Lost       int      `json:"lost"`
	Draw       int      `json:"draw"`
	MapsWon    int      `json:"maps_won"`
	MapsLost   int      `json:"maps_lost"`
	Division   int      `json:"division"`
	Role       Role     `json:"role"`

	Encounters []EncounterWithUserStats `json:"encounters,omitempty"`
}

// UserTournamentStat is one stat line with the user's rank among all
// participants of the tournament.
type UserTournamentStat struct {
	Value float64 `json:"value"`
	Rank  int     `json:"rank"`
	Total int     `json:"total"`
}

type UserTournamentWithStats struct {
	ID               int64   `json:"id"`
	Number           int     `json:"number"`
	Name             string  `json:"name"`
	Division         int     `json:"division"`
	Role             Role    `json:"role"`
	GroupPlacement   int     `json:"group_placement"`
	PlayoffPlacement int     `json:"playoff_placement"`
	MapsWon          int     `json:"maps_won"`
	Maps             int     `json:"maps"`
	Playtime         float64 `json:"playtime"`

	Stats map[string]UserTournamentStat `json:"stats"`
}

type UserMapRead struct {
	Map     MapInfo `json:"map"`
	Count   int     `json:"count"`
	Win     int     `json:"win"`
	Loss    int     `json:"loss"`
	Draw    int     `json:"draw"`
	WinRate float64 `json:"win_rate"`
}

type UserBestTeammate struct {
	User        User               `json:"user"`
	Tournaments int                `json:"tournaments"`
	Winrate     float64            `json:"winrate"`
	Stats       map[string]float64 `json:"stats"`
}
