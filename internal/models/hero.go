package models

import "time"

type Hero struct {
	ID        int64      `json:"id"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
	Name      string     `json:"name"`
	Slug      string     `json:"slug"`
	ImagePath string     `json:"image_path"`
	Role      Role       `json:"role"`
	Color     string     `json:"color"`
}

type HeroPlaytime struct {
	Hero     Hero    `json:"hero"`
	Playtime float64 `json:"playtime"`
}

type HeroBestStat struct {
	EncounterID    int64   `json:"encounter_id"`
	MapName        string  `json:"map_name"`
	MapImagePath   string  `json:"map_image_path"`
	Value          float64 `json:"value"`
	TournamentName string  `json:"tournament_name"`
	PlayerName     string  `json:"player_name"`
}

type HeroStat struct {
	Name     string       `json:"name"`
	Overall  float64      `json:"overall"`
	Best     HeroBestStat `json:"best"`
	Avg10    float64      `json:"avg_10"`
	BestAll  HeroBestStat `json:"best_all"`
	Avg10All float64      `json:"avg_10_all"`
}

type HeroWithUserStats struct {
	Hero  Hero       `json:"hero"`
	Stats []HeroStat `json:"stats"`
}
