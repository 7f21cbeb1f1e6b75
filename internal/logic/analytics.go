package logic

import (
	"context"
	"fmt"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/CraazzzyyFoxx/anak-tournaments/internal/models"
)

// DefaultAlgorithm is the balancer algorithm shown when the URL does not
// name one.
const DefaultAlgorithm = "default"

// AnalyticsService builds the balancer analytics page and applies manual
// shift edits.
type AnalyticsService interface {
	View(ctx context.Context, tournamentID int64, algorithm string) (*AnalyticsView, error)
	Algorithms(ctx context.Context) ([]models.AnalyticsAlgorithm, error)
	ChangeShift(ctx context.Context, tournamentID int64, algorithm string, teamID, playerID int64, shift float64) (*models.PlayerAnalytics, error)
}

// AnalyticsPlayerRow is one roster slot with its points trend: "down"
// means the balancer underrated the player.
type AnalyticsPlayerRow struct {
	models.PlayerAnalytics
	BattleName  string `json:"battle_name"`
	PointsTrend string `json:"points_trend,omitempty"`
}

type AnalyticsTeamView struct {
	models.TeamAnalytics
	Players []AnalyticsPlayerRow `json:"players"`
	Wins    int                  `json:"wins"`
}

// PredictedRow is one row of the prediction table. Predicted is the
// team's rank by ascending total shift; Highlight is set when the actual
// placement missed the prediction by more than ten spots.
type PredictedRow struct {
	Predicted     int     `json:"predicted"`
	TeamID        int64   `json:"team_id"`
	Name          string  `json:"name"`
	BalancerShift float64 `json:"balancer_shift"`
	ManualShift   float64 `json:"manual_shift"`
	TotalShift    float64 `json:"total_shift"`
	Placement     *int    `json:"placement"`
	Highlight     Color   `json:"highlight,omitempty"`
}

type AnalyticsView struct {
	TournamentID int64               `json:"tournament_id"`
	Algorithm    string              `json:"algorithm"`
	Teams        []AnalyticsTeamView `json:"teams"`
	Predicted    []PredictedRow      `json:"predicted"`
}

type analyticsService struct {
	api    AnalyticsAPI
	cache  *viewCache
	logger *zap.SugaredLogger
	// edited is called after a successful shift change so the warmer can
	// rebuild the tournament's views. Nil disables the notification.
	edited func(tournamentID int64)
}

func NewAnalyticsService(api AnalyticsAPI, redis RedisClient, logger *zap.SugaredLogger, ttl time.Duration, edited func(int64)) AnalyticsService {
	return &analyticsService{
		api:    api,
		cache:  newViewCache(redis, logger, ttl),
		logger: logger,
		edited: edited,
	}
}

func (s *analyticsService) View(ctx context.Context, tournamentID int64, algorithm string) (*AnalyticsView, error) {
	if algorithm == "" {
		algorithm = DefaultAlgorithm
	}
	return fetch(ctx, s.cache, "analytics", viewKey("analytics", tournamentID, algorithm), func(ctx context.Context) (*AnalyticsView, error) {
		data, err := s.api.Analytics(ctx, tournamentID, algorithm)
		if err != nil {
			return nil, fmt.Errorf("analytics %d/%s: %w", tournamentID, algorithm, err)
		}
		return buildAnalyticsView(tournamentID, algorithm, data), nil
	})
}

func buildAnalyticsView(tournamentID int64, algorithm string, data *models.TournamentAnalytics) *AnalyticsView {
	view := &AnalyticsView{
		TournamentID: tournamentID,
		Algorithm:    algorithm,
		Teams:        make([]AnalyticsTeamView, 0, len(data.Teams)),
		Predicted:    make([]PredictedRow, 0, len(data.Teams)),
	}

	for _, t := range data.Teams {
		tv := AnalyticsTeamView{
			TeamAnalytics: t,
			Players:       make([]AnalyticsPlayerRow, 0, len(t.Players)),
			Wins:          data.TeamsWins[t.ID],
		}
		tv.TotalShift = totalShift(t)
		for _, p := range OrderAnalyticsPlayers(t.Players) {
			tv.Players = append(tv.Players, AnalyticsPlayerRow{
				PlayerAnalytics: p,
				BattleName:      p.BattleName(),
				PointsTrend:     PointsTrend(p.Points),
			})
		}
		view.Teams = append(view.Teams, tv)
	}

	sort.SliceStable(view.Teams, func(i, j int) bool {
		a, b := view.Teams[i], view.Teams[j]
		switch {
		case a.Placement == nil && b.Placement == nil:
			return a.Name < b.Name
		case a.Placement == nil:
			return false
		case b.Placement == nil:
			return true
		case *a.Placement != *b.Placement:
			return *a.Placement < *b.Placement
		}
		return a.Name < b.Name
	})

	predicted := make([]AnalyticsTeamView, len(view.Teams))
	copy(predicted, view.Teams)
	sort.SliceStable(predicted, func(i, j int) bool {
		if predicted[i].TotalShift != predicted[j].TotalShift {
			return predicted[i].TotalShift < predicted[j].TotalShift
		}
		return predicted[i].Name < predicted[j].Name
	})
	for i, t := range predicted {
		row := PredictedRow{
			Predicted:     i + 1,
			TeamID:        t.ID,
			Name:          t.Name,
			BalancerShift: t.BalancerShift,
			ManualShift:   t.ManualShift,
			TotalShift:    t.TotalShift,
			Placement:     t.Placement,
		}
		if t.Placement != nil {
			row.Highlight = MispredictColor(*t.Placement, row.Predicted)
		}
		view.Predicted = append(view.Predicted, row)
	}
	return view
}

// totalShift trusts the backend's precomputed value and recomputes it
// for snapshots that predate the field.
func totalShift(t models.TeamAnalytics) float64 {
	if t.TotalShift != 0 {
		return t.TotalShift
	}
	return t.BalancerShift + t.ManualShift
}

func (s *analyticsService) Algorithms(ctx context.Context) ([]models.AnalyticsAlgorithm, error) {
	page, err := fetch(ctx, s.cache, "algorithms", viewKey("algorithms"), func(ctx context.Context) (*models.Paginated[models.AnalyticsAlgorithm], error) {
		return s.api.Algorithms(ctx)
	})
	if err != nil {
		return nil, fmt.Errorf("algorithms: %w", err)
	}
	return page.Results, nil
}

// ChangeShift applies a manual shift upstream, then drops the cached
// view so the next read rebuilds from fresh data. The tournament's other
// algorithm views share the same roster, so all of them are rebuilt by
// the warmer.
func (s *analyticsService) ChangeShift(ctx context.Context, tournamentID int64, algorithm string, teamID, playerID int64, shift float64) (*models.PlayerAnalytics, error) {
	if algorithm == "" {
		algorithm = DefaultAlgorithm
	}
	updated, err := s.api.ChangeShift(ctx, teamID, playerID, shift)
	if err != nil {
		return nil, fmt.Errorf("change shift team %d player %d: %w", teamID, playerID, err)
	}

	s.cache.invalidate(ctx, viewKey("analytics", tournamentID, algorithm))
	if s.edited != nil {
		s.edited(tournamentID)
	}
	s.logger.Infow("shift changed",
		"tournament_id", tournamentID,
		"team_id", teamID,
		"player_id", playerID,
		"shift", shift,
	)
	return updated, nil
}
