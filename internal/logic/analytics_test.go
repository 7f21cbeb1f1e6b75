package logic

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/CraazzzyyFoxx/anak-tournaments/internal/models"
)

type MockAnalyticsAPI struct {
	AnalyticsFunc   func(ctx context.Context, tournamentID int64, algorithm string) (*models.TournamentAnalytics, error)
	AlgorithmsFunc  func(ctx context.Context) (*models.Paginated[models.AnalyticsAlgorithm], error)
	ChangeShiftFunc func(ctx context.Context, teamID, playerID int64, shift float64) (*models.PlayerAnalytics, error)
}

func (m *MockAnalyticsAPI) Analytics(ctx context.Context, tournamentID int64, algorithm string) (*models.TournamentAnalytics, error) {
	return m.AnalyticsFunc(ctx, tournamentID, algorithm)
}

func (m *MockAnalyticsAPI) Algorithms(ctx context.Context) (*models.Paginated[models.AnalyticsAlgorithm], error) {
	return m.AlgorithmsFunc(ctx)
}

func (m *MockAnalyticsAPI) ChangeShift(ctx context.Context, teamID, playerID int64, shift float64) (*models.PlayerAnalytics, error) {
	return m.ChangeShiftFunc(ctx, teamID, playerID, shift)
}

func place(p int) *int { return &p }

func analyticsTeam(id int64, name string, placement *int, balancer, manual, total float64) models.TeamAnalytics {
	return models.TeamAnalytics{
		Team:          models.Team{ID: id, Name: name, Placement: placement},
		BalancerShift: balancer,
		ManualShift:   manual,
		TotalShift:    total,
	}
}

func TestBuildAnalyticsView(t *testing.T) {
	data := &models.TournamentAnalytics{
		Teams: []models.TeamAnalytics{
			analyticsTeam(3, "Gamma", place(15), 1, 1, 2),
			analyticsTeam(1, "Alpha", place(1), 5, 0, 5),
			analyticsTeam(2, "Beta", place(2), -3, 1, -2),
		},
		TeamsWins: map[int64]int{1: 9, 2: 7},
	}

	view := buildAnalyticsView(7, "default", data)

	// Teams panel orders by placement
	gotTeams := []string{}
	for _, tv := range view.Teams {
		gotTeams = append(gotTeams, tv.Name)
	}
	wantTeams := []string{"Alpha", "Beta", "Gamma"}
	for i := range wantTeams {
		if gotTeams[i] != wantTeams[i] {
			t.Fatalf("team order = %v, want %v", gotTeams, wantTeams)
		}
	}
	if view.Teams[0].Wins != 9 {
		t.Errorf("Alpha wins = %d, want 9", view.Teams[0].Wins)
	}

	// Prediction table orders by ascending total shift
	if view.Predicted[0].Name != "Beta" || view.Predicted[1].Name != "Gamma" || view.Predicted[2].Name != "Alpha" {
		t.Fatalf("predicted order wrong: %+v", view.Predicted)
	}
	for i, row := range view.Predicted {
		if row.Predicted != i+1 {
			t.Errorf("row %d predicted = %d, want %d", i, row.Predicted, i+1)
		}
	}

	// Gamma placed 15th but was predicted 2nd: off by 13, highlighted
	if view.Predicted[1].Highlight == "" {
		t.Errorf("Gamma should be highlighted, got none")
	}
	if view.Predicted[0].Highlight != "" {
		t.Errorf("Beta highlighted unexpectedly: %q", view.Predicted[0].Highlight)
	}
}

func TestBuildAnalyticsViewTotalShiftFallback(t *testing.T) {
	data := &models.TournamentAnalytics{
		Teams: []models.TeamAnalytics{
			analyticsTeam(1, "Alpha", place(1), 2.5, -1, 0),
		},
	}
	view := buildAnalyticsView(7, "default", data)
	if got := view.Teams[0].TotalShift; got != 1.5 {
		t.Errorf("TotalShift = %v, want 1.5 (balancer+manual)", got)
	}
}

func TestChangeShiftNotifiesWarmer(t *testing.T) {
	api := &MockAnalyticsAPI{
		ChangeShiftFunc: func(ctx context.Context, teamID, playerID int64, shift float64) (*models.PlayerAnalytics, error) {
			return &models.PlayerAnalytics{Shift: shift}, nil
		},
	}
	var notified []int64
	svc := NewAnalyticsService(api, nil, zap.NewNop().Sugar(), time.Minute, func(id int64) {
		notified = append(notified, id)
	})

	updated, err := svc.ChangeShift(context.Background(), 7, "", 3, 42, -1.5)
	if err != nil {
		t.Fatalf("ChangeShift failed: %v", err)
	}
	if updated.Shift != -1.5 {
		t.Errorf("updated shift = %v, want -1.5", updated.Shift)
	}
	if len(notified) != 1 || notified[0] != 7 {
		t.Errorf("warmer notifications = %v, want [7]", notified)
	}
}

func TestChangeShiftUpstreamFailure(t *testing.T) {
	api := &MockAnalyticsAPI{
		ChangeShiftFunc: func(ctx context.Context, teamID, playerID int64, shift float64) (*models.PlayerAnalytics, error) {
			return nil, errors.New("forbidden")
		},
	}
	notified := 0
	svc := NewAnalyticsService(api, nil, zap.NewNop().Sugar(), time.Minute, func(int64) { notified++ })

	if _, err := svc.ChangeShift(context.Background(), 7, "default", 3, 42, 1); err == nil {
		t.Fatal("expected error from upstream")
	}
	if notified != 0 {
		t.Errorf("warmer notified %d times on failure, want 0", notified)
	}
}
