package models

import "time"

type Achievement struct {
	ID            int64      `json:"id"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     *time.Time `json:"updated_at"`
	Name          string     `json:"name"`
	Slug          string     `json:"slug"`
	DescriptionRU string     `json:"description_ru"`
	DescriptionEN string     `json:"description_en"`
}

// AchievementRarity is an achievement with the share of users holding it.
// Rarity is a fraction; the UI renders it as a percentage.
type AchievementRarity struct {
	Achievement
	Rarity         float64      `json:"rarity"`
	Count          int          `json:"count"`
	TournamentsIDs []int64      `json:"tournaments_ids,omitempty"`
	Tournaments    []Tournament `json:"tournaments,omitempty"`
	Matches        []int64      `json:"matches,omitempty"`
}

// AchievementEarned is one holder of an achievement.
type AchievementEarned struct {
	User           User        `json:"user"`
	Count          int         `json:"count"`
	LastTournament *Tournament `json:"last_tournament"`
}
