package models

type TournamentStatistics struct {
	ID           int64   `json:"id"`
	Number       int     `json:"number"`
	PlayersCount int     `json:"players_count"`
	AvgSR        float64 `json:"avg_sr"`
	AvgCloseness float64 `json:"avg_closeness"`
}

type TournamentDivisionStatistics struct {
	ID            int64   `json:"id"`
	Number        int     `json:"number"`
	TankAvgDiv    float64 `json:"tank_avg_div"`
	DamageAvgDiv  float64 `json:"damage_avg_div"`
	SupportAvgDiv float64 `json:"support_avg_div"`
}

// PlayerStatistics is one row of a single-value leaderboard
// (champions count, top winrate).
type PlayerStatistics struct {
	ID    int64   `json:"id"`
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

type TournamentOverall struct {
	Tournaments int `json:"tournaments"`
	Teams       int `json:"teams"`
	Players     int `json:"players"`
	Champions   int `json:"champions"`
}
