package aqt

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/CraazzzyyFoxx/anak-tournaments/internal/models"
)

// Tournaments lists all tournaments, newest first, with groups and
// participant counts embedded. isLeague filters league/regular
// tournaments when non-nil.
func (c *Client) Tournaments(ctx context.Context, isLeague *bool) (*models.Paginated[models.Tournament], error) {
	p := ListParams{
		Page:     1,
		PerPage:  -1,
		Sort:     "id",
		Order:    models.SortDesc,
		Entities: []string{"groups", "participants_count"},
	}
	if isLeague != nil {
		p.Extra = url.Values{"is_league": []string{strconv.FormatBool(*isLeague)}}
	}
	return getPage[models.Tournament](ctx, c, "/tournaments", p)
}

func (c *Client) Tournament(ctx context.Context, id int64) (*models.Tournament, error) {
	q := ListParams{Entities: []string{"participants_count"}}.Encode()
	return get[models.Tournament](ctx, c, fmt.Sprintf("/tournaments/%d", id), q)
}

// Standings returns a tournament's standings with teams, groups and match
// history embedded.
func (c *Client) Standings(ctx context.Context, tournamentID int64) ([]models.Standing, error) {
	q := ListParams{Entities: []string{"group", "team", "matches_history", "team.group"}}.Encode()
	return getList[models.Standing](ctx, c, fmt.Sprintf("/tournaments/%d/standings", tournamentID), q)
}

// OwalStandings returns the weekly league's cross-day standings.
func (c *Client) OwalStandings(ctx context.Context) (*models.OwalStandings, error) {
	return get[models.OwalStandings](ctx, c, "/tournaments/owal/results", nil)
}

func (c *Client) TournamentHistory(ctx context.Context) ([]models.TournamentStatistics, error) {
	return getList[models.TournamentStatistics](ctx, c, "/tournaments/statistics/history", nil)
}

func (c *Client) TournamentDivisions(ctx context.Context) ([]models.TournamentDivisionStatistics, error) {
	return getList[models.TournamentDivisionStatistics](ctx, c, "/tournaments/statistics/division", nil)
}

func (c *Client) OverallStatistics(ctx context.Context) (*models.TournamentOverall, error) {
	return get[models.TournamentOverall](ctx, c, "/tournaments/statistics/overall", nil)
}

// PlayerLeaderboard returns a single-value player ranking. Known metrics
// are "champion" (titles won) and "winrate".
func (c *Client) PlayerLeaderboard(ctx context.Context, metric string) ([]models.PlayerStatistics, error) {
	q := url.Values{"value": []string{metric}}
	return getList[models.PlayerStatistics](ctx, c, "/tournaments/statistics/players", q)
}
