package models

import "time"

// Team is a tournament team with its roster. Placement is nil until the
// tournament finishes; Group is nil for tournaments without a group stage.
type Team struct {
	ID           int64            `json:"id"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    *time.Time       `json:"updated_at"`
	Name         string           `json:"name"`
	AvgSR        float64          `json:"avg_sr"`
	TotalSR      float64          `json:"total_sr"`
	TournamentID int64            `json:"tournament_id"`
	Players      []Player         `json:"players"`
	Tournament   *Tournament      `json:"tournament,omitempty"`
	Placement    *int             `json:"placement"`
	Group        *TournamentGroup `json:"group,omitempty"`
}
