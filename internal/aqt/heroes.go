package aqt

import (
	"context"
	"net/url"
	"strconv"

	"github.com/CraazzzyyFoxx/anak-tournaments/internal/models"
)

// HeroPlaytime lists hero playtime, overall or scoped to one user and/or
// tournament. A zero userID means all users.
func (c *Client) HeroPlaytime(ctx context.Context, page, perPage int, userID, tournamentID int64) (*models.Paginated[models.HeroPlaytime], error) {
	user := "all"
	if userID != 0 {
		user = strconv.FormatInt(userID, 10)
	}
	p := ListParams{
		Page:         page,
		PerPage:      perPage,
		Sort:         "playtime",
		Order:        models.SortDesc,
		TournamentID: tournamentID,
		Extra:        url.Values{"user_id": []string{user}},
	}
	return getPage[models.HeroPlaytime](ctx, c, "/heroes/statistics/playtime", p)
}
