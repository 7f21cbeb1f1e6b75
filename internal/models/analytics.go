package models

import "encoding/json"

type AnalyticsAlgorithm struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// PlayerAnalytics is a roster slot decorated with the balancer's rank
// movement inputs and the resulting shift. Points is the calculated shift,
// Shift the manual override.
type PlayerAnalytics struct {
	Player
	Move1  float64 `json:"move_1"`
	Move2  float64 `json:"move_2"`
	Points float64 `json:"points"`
	Shift  float64 `json:"shift"`
}

func (p *PlayerAnalytics) UnmarshalJSON(data []byte) error {
	type alias PlayerAnalytics
	a := (*alias)(p)
	if err := json.Unmarshal(data, a); err == nil {
		return nil
	}
	return flexUnmarshal(data, a)
}

// TeamAnalytics decorates a team with its predicted-strength shifts.
// TotalShift is BalancerShift+ManualShift; the backend sends it
// precomputed but older snapshots omit it.
type TeamAnalytics struct {
	Team
	Players       []PlayerAnalytics `json:"players"`
	BalancerShift float64           `json:"balancer_shift"`
	ManualShift   float64           `json:"manual_shift"`
	TotalShift    float64           `json:"total_shift"`
}

type TournamentAnalytics struct {
	Teams     []TeamAnalytics `json:"teams"`
	TeamsWins map[int64]int   `json:"teams_wins"`
}
