package aqt

import (
	"context"
	"fmt"

	"github.com/CraazzzyyFoxx/anak-tournaments/internal/models"
)

// Encounters lists encounters newest first, searchable by name and
// filterable by tournament.
func (c *Client) Encounters(ctx context.Context, page, perPage int, query string, tournamentID int64) (*models.Paginated[models.Encounter], error) {
	p := ListParams{
		Page:         page,
		PerPage:      perPage,
		Query:        query,
		Sort:         "id",
		Order:        models.SortDesc,
		Fields:       []string{"name"},
		TournamentID: tournamentID,
		Entities:     []string{"tournament", "tournament_group"},
	}
	return getPage[models.Encounter](ctx, c, "/encounters", p)
}

// Encounter fetches one encounter with teams, rosters, matches and maps
// embedded.
func (c *Client) Encounter(ctx context.Context, id int64) (*models.Encounter, error) {
	q := ListParams{Entities: []string{
		"matches", "matches.map",
		"teams", "teams.players", "teams.placement", "teams.players.user",
		"tournament", "tournament_group",
	}}.Encode()
	return get[models.Encounter](ctx, c, fmt.Sprintf("/encounters/%d", id), q)
}

// Matches lists matches with their series context embedded.
func (c *Client) Matches(ctx context.Context, page, perPage int, query string, tournamentID int64) (*models.Paginated[models.MatchWithStats], error) {
	p := ListParams{
		Page:         page,
		PerPage:      perPage,
		Query:        query,
		Sort:         "id",
		Order:        models.SortDesc,
		TournamentID: tournamentID,
		Entities: []string{
			"teams", "map", "map.gamemode",
			"encounter", "encounter.tournament", "encounter.tournament_group",
		},
	}
	return getPage[models.MatchWithStats](ctx, c, "/matches", p)
}

// Match fetches one match with per-round statistics and hero picks.
func (c *Client) Match(ctx context.Context, id int64) (*models.MatchWithStats, error) {
	q := ListParams{Entities: []string{
		"teams", "teams.players", "teams.players.user",
		"map", "map.gamemode",
		"encounter", "encounter.tournament", "encounter.tournament_group",
	}}.Encode()
	return get[models.MatchWithStats](ctx, c, fmt.Sprintf("/matches/%d", id), q)
}
