package logic

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/CraazzzyyFoxx/anak-tournaments/internal/models"
)

const heroPlaytimeLimit = 20

// StatisticsService builds the statistics dashboards: the per-tournament
// history charts and the site-wide totals.
type StatisticsService interface {
	History(ctx context.Context) (*StatisticsHistoryView, error)
	Overall(ctx context.Context) (*models.TournamentOverall, error)
	Leaderboards(ctx context.Context) (*LeaderboardsView, error)
	HeroPlaytime(ctx context.Context, tournamentID, userID int64) ([]models.HeroPlaytime, error)
}

// StatisticsHistoryView backs the trends page: one point per tournament
// in each series.
type StatisticsHistoryView struct {
	Tournaments []models.TournamentStatistics         `json:"tournaments"`
	Divisions   []models.TournamentDivisionStatistics `json:"divisions"`
}

// LeaderboardsView holds the single-value player rankings.
type LeaderboardsView struct {
	Champions []models.PlayerStatistics `json:"champions"`
	Winrate   []models.PlayerStatistics `json:"winrate"`
}

type statisticsService struct {
	api    StatisticsAPI
	cache  *viewCache
	logger *zap.SugaredLogger
}

func NewStatisticsService(api StatisticsAPI, redis RedisClient, logger *zap.SugaredLogger, ttl time.Duration) StatisticsService {
	return &statisticsService{
		api:    api,
		cache:  newViewCache(redis, logger, ttl),
		logger: logger,
	}
}

func (s *statisticsService) History(ctx context.Context) (*StatisticsHistoryView, error) {
	return fetch(ctx, s.cache, "stats_history", viewKey("stats_history"), func(ctx context.Context) (*StatisticsHistoryView, error) {
		view := &StatisticsHistoryView{}
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			history, err := s.api.TournamentHistory(gctx)
			if err != nil {
				return fmt.Errorf("tournament history: %w", err)
			}
			view.Tournaments = history
			return nil
		})
		g.Go(func() error {
			divisions, err := s.api.TournamentDivisions(gctx)
			if err != nil {
				return fmt.Errorf("division history: %w", err)
			}
			view.Divisions = divisions
			return nil
		})
		if err := g.Wait(); err != nil {
			return nil, err
		}
		return view, nil
	})
}

func (s *statisticsService) Overall(ctx context.Context) (*models.TournamentOverall, error) {
	return fetch(ctx, s.cache, "stats_overall", viewKey("stats_overall"), func(ctx context.Context) (*models.TournamentOverall, error) {
		return s.api.OverallStatistics(ctx)
	})
}

func (s *statisticsService) Leaderboards(ctx context.Context) (*LeaderboardsView, error) {
	return fetch(ctx, s.cache, "stats_leaderboards", viewKey("stats_leaderboards"), func(ctx context.Context) (*LeaderboardsView, error) {
		view := &LeaderboardsView{}
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			rows, err := s.api.PlayerLeaderboard(gctx, "champion")
			if err != nil {
				return fmt.Errorf("champions leaderboard: %w", err)
			}
			view.Champions = rows
			return nil
		})
		g.Go(func() error {
			rows, err := s.api.PlayerLeaderboard(gctx, "winrate")
			if err != nil {
				return fmt.Errorf("winrate leaderboard: %w", err)
			}
			view.Winrate = rows
			return nil
		})
		if err := g.Wait(); err != nil {
			return nil, err
		}
		return view, nil
	})
}

// HeroPlaytime returns the most played heroes, site wide or scoped to a
// tournament and user.
func (s *statisticsService) HeroPlaytime(ctx context.Context, tournamentID, userID int64) ([]models.HeroPlaytime, error) {
	p, err := fetch(ctx, s.cache, "hero_playtime", viewKey("hero_playtime", tournamentID, userID), func(ctx context.Context) (*models.Paginated[models.HeroPlaytime], error) {
		return s.api.HeroPlaytime(ctx, 1, heroPlaytimeLimit, userID, tournamentID)
	})
	if err != nil {
		return nil, fmt.Errorf("hero playtime: %w", err)
	}
	return p.Results, nil
}
