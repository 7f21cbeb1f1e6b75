package aqt

import (
	"context"
	"fmt"

	"github.com/CraazzzyyFoxx/anak-tournaments/internal/models"
)

// Achievements lists achievements rarest-last with holder counts.
func (c *Client) Achievements(ctx context.Context, page, perPage int) (*models.Paginated[models.AchievementRarity], error) {
	p := ListParams{
		Page:     page,
		PerPage:  perPage,
		Sort:     "rarity",
		Order:    models.SortAsc,
		Entities: []string{"count"},
	}
	return getPage[models.AchievementRarity](ctx, c, "/achievements", p)
}

func (c *Client) Achievement(ctx context.Context, id int64) (*models.AchievementRarity, error) {
	return get[models.AchievementRarity](ctx, c, fmt.Sprintf("/achievements/%d", id), nil)
}

// AchievementUsers pages through an achievement's holders for the
// infinite-scroll view.
func (c *Client) AchievementUsers(ctx context.Context, id int64, page, perPage int) (*models.Paginated[models.AchievementEarned], error) {
	p := ListParams{Page: page, PerPage: perPage}
	return getPage[models.AchievementEarned](ctx, c, fmt.Sprintf("/achievements/%d/users", id), p)
}

func (c *Client) UserAchievements(ctx context.Context, userID int64) ([]models.AchievementRarity, error) {
	q := ListParams{Entities: []string{"tournaments", "matches"}}.Encode()
	return getList[models.AchievementRarity](ctx, c, fmt.Sprintf("/achievements/user/%d", userID), q)
}
