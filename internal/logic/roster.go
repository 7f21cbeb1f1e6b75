package logic

import (
	"sort"

	"github.com/CraazzzyyFoxx/anak-tournaments/internal/models"
)

// rolePriority orders roster rows by role. Roles outside the three known
// ones sink below Support; the backend has never sent one, but a new role
// must not interleave with known groups.
func rolePriority(r models.Role) int {
	switch r {
	case models.RoleTank:
		return 1
	case models.RoleDamage:
		return 2
	case models.RoleSupport:
		return 3
	}
	return 4
}

// OrderPlayers returns a team's roster in display order. The order is
// total and deterministic: Tank, then Damage, then Support; inside a
// role, substitutes group adjacent to and after the player they replace
// (linked via RelativePlayer), and everyone else descends by rank. The
// sort is stable so substitution pairs without an explicit tie-break keep
// their input order.
//
// A RelativePlayer pointing at a player absent from the slice still
// sorts by its numeric value; no lookup is performed. Missing fields
// compare as their zero values and never fail.
func OrderPlayers(players []models.Player) []models.Player {
	out := make([]models.Player, len(players))
	copy(out, players)

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]

		pa, pb := rolePriority(a.Role), rolePriority(b.Role)
		if pa != pb {
			return pa < pb
		}

		if a.RelativePlayer != 0 || b.RelativePlayer != 0 {
			if a.RelativePlayer != b.RelativePlayer {
				return a.RelativePlayer < b.RelativePlayer
			}
			// Same link: the original precedes its substitute
			return !a.IsSubstitution && b.IsSubstitution
		}

		if !a.IsSubstitution && !b.IsSubstitution {
			return a.Rank > b.Rank
		}

		return false
	})

	return out
}

// OrderAnalyticsPlayers orders an analytics roster by the same total
// order as OrderPlayers.
func OrderAnalyticsPlayers(players []models.PlayerAnalytics) []models.PlayerAnalytics {
	out := make([]models.PlayerAnalytics, len(players))
	copy(out, players)

	base := make([]models.Player, len(players))
	for i, p := range players {
		base[i] = p.Player
	}
	ordered := OrderPlayers(base)

	// Map ordered base rows back to their analytics rows. IDs are unique
	// within a roster.
	byID := make(map[int64][]models.PlayerAnalytics, len(players))
	for _, p := range players {
		byID[p.ID] = append(byID[p.ID], p)
	}
	for i, p := range ordered {
		rows := byID[p.ID]
		out[i] = rows[0]
		byID[p.ID] = rows[1:]
	}
	return out
}
