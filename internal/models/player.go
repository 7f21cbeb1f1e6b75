package models

import (
	"encoding/json"
	"strings"
	"time"
)

// Role is a player's assigned role within a team.
type Role string

const (
	RoleTank    Role = "Tank"
	RoleDamage  Role = "Damage"
	RoleSupport Role = "Support"
)

// Player is one roster slot on a tournament team. Ranks are the balancer's
// numeric skill values; Primary/Secondary are sub-role indicators within
// Damage and Support. A substitute carries RelativePlayer, the id of the
// player it stands in for.
type Player struct {
	ID             int64      `json:"id"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      *time.Time `json:"updated_at"`
	Name           string     `json:"name"`
	Primary        bool       `json:"primary"`
	Secondary      bool       `json:"secondary"`
	Rank           int        `json:"rank"`
	Division       int        `json:"division"`
	Role           Role       `json:"role"`
	TournamentID   int64      `json:"tournament_id"`
	UserID         int64      `json:"user_id"`
	TeamID         int64      `json:"team_id"`
	IsNewcomer     bool       `json:"is_newcomer"`
	IsNewcomerRole bool       `json:"is_newcomer_role"`
	IsSubstitution bool       `json:"is_substitution"`
	RelativePlayer int64      `json:"relative_player"`

	User *User `json:"user,omitempty"`
}

// UnmarshalJSON tolerates string-encoded and null numeric fields in
// historical roster rows. Missing fields decode to zero values, the
// documented defaults for rank, flags and relative_player.
func (p *Player) UnmarshalJSON(data []byte) error {
	type alias Player
	a := (*alias)(p)
	if err := json.Unmarshal(data, a); err == nil {
		return nil
	}
	return flexUnmarshal(data, a)
}

// BattleName returns the display part of a battle tag ("name#tag" -> "name").
func (p *Player) BattleName() string {
	name, _, _ := strings.Cut(p.Name, "#")
	return name
}

// Specialization returns the sub-role label shown next to a player's name.
// Only Damage and Support roles carry one.
func (p *Player) Specialization() string {
	switch {
	case p.Role == RoleDamage && p.Primary:
		return "Hitscan"
	case p.Role == RoleDamage && p.Secondary:
		return "Projectile"
	case p.Role == RoleSupport && p.Primary:
		return "Main Heal"
	case p.Role == RoleSupport && p.Secondary:
		return "Light Heal"
	}
	return ""
}
