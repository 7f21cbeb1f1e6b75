package logic

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/CraazzzyyFoxx/anak-tournaments/internal/models"
)

// AchievementService builds the achievements catalogue and per-user
// achievement views.
type AchievementService interface {
	Achievements(ctx context.Context, page, perPage int) (*ListView[AchievementRow], error)
	Achievement(ctx context.Context, id int64, page, perPage int) (*AchievementView, error)
	UserAchievements(ctx context.Context, userID int64) ([]AchievementRow, error)
}

// AchievementRow carries the rarity rendered as a whole percentage.
type AchievementRow struct {
	models.AchievementRarity
	RarityPct float64 `json:"rarity_pct"`
}

// AchievementView is the detail page: the achievement plus a page of the
// users who earned it.
type AchievementView struct {
	AchievementRow
	Users *ListView[models.AchievementEarned] `json:"users"`
}

type achievementService struct {
	api    AchievementAPI
	cache  *viewCache
	logger *zap.SugaredLogger
}

func NewAchievementService(api AchievementAPI, redis RedisClient, logger *zap.SugaredLogger, ttl time.Duration) AchievementService {
	return &achievementService{
		api:    api,
		cache:  newViewCache(redis, logger, ttl),
		logger: logger,
	}
}

func (s *achievementService) Achievements(ctx context.Context, page, perPage int) (*ListView[AchievementRow], error) {
	return fetch(ctx, s.cache, "achievements", viewKey("achievements", page, perPage), func(ctx context.Context) (*ListView[AchievementRow], error) {
		p, err := s.api.Achievements(ctx, page, perPage)
		if err != nil {
			return nil, fmt.Errorf("list achievements: %w", err)
		}
		return listView(p, achievementRow), nil
	})
}

func achievementRow(a models.AchievementRarity) AchievementRow {
	return AchievementRow{
		AchievementRarity: a,
		RarityPct:         a.Rarity * 100,
	}
}

func (s *achievementService) Achievement(ctx context.Context, id int64, page, perPage int) (*AchievementView, error) {
	return fetch(ctx, s.cache, "achievement", viewKey("achievement", id, page, perPage), func(ctx context.Context) (*AchievementView, error) {
		a, err := s.api.Achievement(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("achievement %d: %w", id, err)
		}
		users, err := s.api.AchievementUsers(ctx, id, page, perPage)
		if err != nil {
			return nil, fmt.Errorf("achievement %d users: %w", id, err)
		}
		return &AchievementView{
			AchievementRow: achievementRow(*a),
			Users:          listView(users, func(u models.AchievementEarned) models.AchievementEarned { return u }),
		}, nil
	})
}

func (s *achievementService) UserAchievements(ctx context.Context, userID int64) ([]AchievementRow, error) {
	return fetch(ctx, s.cache, "user_achievements", viewKey("user_achievements", userID), func(ctx context.Context) ([]AchievementRow, error) {
		list, err := s.api.UserAchievements(ctx, userID)
		if err != nil {
			return nil, fmt.Errorf("achievements for user %d: %w", userID, err)
		}
		rows := make([]AchievementRow, 0, len(list))
		for _, a := range list {
			rows = append(rows, achievementRow(a))
		}
		return rows, nil
	})
}
