package aqt

import (
	"context"

	"github.com/CraazzzyyFoxx/anak-tournaments/internal/models"
)

// Teams lists a tournament's teams with full rosters, placements and
// groups embedded.
func (c *Client) Teams(ctx context.Context, tournamentID int64, sort string, order models.SortOrder) (*models.Paginated[models.Team], error) {
	if sort == "" {
		sort = "avg_sr"
	}
	if order == "" {
		order = models.SortAsc
	}
	p := ListParams{
		Page:         1,
		PerPage:      -1,
		Sort:         sort,
		Order:        order,
		TournamentID: tournamentID,
		Entities:     []string{"players", "players.user", "placement", "group"},
	}
	return getPage[models.Team](ctx, c, "/teams", p)
}
