package aqt

import (
	"context"
	"fmt"
	"net/url"

	"github.com/CraazzzyyFoxx/anak-tournaments/internal/models"
)

// SearchUsers finds users by battle-tag similarity, best matches first.
func (c *Client) SearchUsers(ctx context.Context, query string, perPage int) (*models.Paginated[models.User], error) {
	p := ListParams{
		Page:    1,
		PerPage: perPage,
		Sort:    "similarity:name",
		Order:   models.SortDesc,
		Query:   query,
		Fields:  []string{"name"},
	}
	return getPage[models.User](ctx, c, "/users", p)
}

// UserByName resolves a user by the URL-safe battle-tag slug.
func (c *Client) UserByName(ctx context.Context, name string) (*models.User, error) {
	q := ListParams{Entities: []string{"twitch", "discord", "battle_tag"}}.Encode()
	return get[models.User](ctx, c, "/users/"+url.PathEscape(name), q)
}

func (c *Client) UserProfile(ctx context.Context, id int64) (*models.UserProfile, error) {
	return get[models.UserProfile](ctx, c, fmt.Sprintf("/users/%d/profile", id), nil)
}

func (c *Client) UserTournaments(ctx context.Context, id int64) ([]models.UserTournament, error) {
	return getList[models.UserTournament](ctx, c, fmt.Sprintf("/users/%d/tournaments", id), nil)
}

// UserTournament returns the user's record in one tournament, or nil when
// they did not participate.
func (c *Client) UserTournament(ctx context.Context, id, tournamentID int64) (*models.UserTournamentWithStats, error) {
	out, err := get[models.UserTournamentWithStats](ctx, c, fmt.Sprintf("/users/%d/tournaments/%d", id, tournamentID), nil)
	if IsNotFound(err) {
		return nil, nil
	}
	return out, err
}

// UserTopMaps lists the user's per-map record ordered by winrate.
func (c *Client) UserTopMaps(ctx context.Context, id int64) (*models.Paginated[models.UserMapRead], error) {
	p := ListParams{
		PerPage:  -1,
		Sort:     "winrate",
		Order:    models.SortDesc,
		Entities: []string{"heroes"},
	}
	return getPage[models.UserMapRead](ctx, c, fmt.Sprintf("/users/%d/maps", id), p)
}

func (c *Client) UserEncounters(ctx context.Context, id int64, page, perPage int, sort string, order models.SortOrder) (*models.Paginated[models.EncounterWithUserStats], error) {
	if sort == "" {
		sort = "id"
	}
	if order == "" {
		order = models.SortDesc
	}
	p := ListParams{
		Page:     page,
		PerPage:  perPage,
		Sort:     sort,
		Order:    order,
		Entities: []string{"tournament", "matches.map", "tournament_group"},
	}
	return getPage[models.EncounterWithUserStats](ctx, c, fmt.Sprintf("/users/%d/encounters", id), p)
}

func (c *Client) UserHeroes(ctx context.Context, id int64) (*models.Paginated[models.HeroWithUserStats], error) {
	p := ListParams{PerPage: -1, Sort: "id", Order: models.SortAsc}
	return getPage[models.HeroWithUserStats](ctx, c, fmt.Sprintf("/users/%d/heroes", id), p)
}

// UserBestTeammates lists the five teammates the user has the best
// record with.
func (c *Client) UserBestTeammates(ctx context.Context, id int64) (*models.Paginated[models.UserBestTeammate], error) {
	p := ListParams{PerPage: 5, Sort: "winrate", Order: models.SortDesc}
	return getPage[models.UserBestTeammate](ctx, c, fmt.Sprintf("/users/%d/teammates", id), p)
}
