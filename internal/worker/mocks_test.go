package worker

import (
	"context"

	"github.com/CraazzzyyFoxx/anak-tournaments/internal/logic"
	"github.com/CraazzzyyFoxx/anak-tournaments/internal/models"
)

type MockTournamentService struct {
	TournamentsFunc func(ctx context.Context) (*logic.TournamentsView, error)
	StandingsFunc   func(ctx context.Context, tournamentID int64) (*logic.StandingsView, error)
}

func (m *MockTournamentService) Tournaments(ctx context.Context) (*logic.TournamentsView, error) {
	if m.TournamentsFunc != nil {
		return m.TournamentsFunc(ctx)
	}
	return &logic.TournamentsView{}, nil
}

func (m *MockTournamentService) Tournament(ctx context.Context, id int64) (*models.Tournament, error) {
	return &models.Tournament{ID: id}, nil
}

func (m *MockTournamentService) DefaultTournamentID(ctx context.Context) (int64, error) {
	return 1, nil
}

func (m *MockTournamentService) Standings(ctx context.Context, tournamentID int64) (*logic.StandingsView, error) {
	if m.StandingsFunc != nil {
		return m.StandingsFunc(ctx, tournamentID)
	}
	return &logic.StandingsView{}, nil
}

func (m *MockTournamentService) OwalStandings(ctx context.Context) (*logic.OwalStandingsView, error) {
	return &logic.OwalStandingsView{}, nil
}

type MockTeamService struct {
	TeamsFunc func(ctx context.Context, tournamentID int64) (*logic.TeamsView, error)
}

func (m *MockTeamService) Teams(ctx context.Context, tournamentID int64) (*logic.TeamsView, error) {
	if m.TeamsFunc != nil {
		return m.TeamsFunc(ctx, tournamentID)
	}
	return &logic.TeamsView{}, nil
}

type MockAnalyticsService struct {
	ViewFunc func(ctx context.Context, tournamentID int64, algorithm string) (*logic.AnalyticsView, error)
}

func (m *MockAnalyticsService) View(ctx context.Context, tournamentID int64, algorithm string) (*logic.AnalyticsView, error) {
	if m.ViewFunc != nil {
		return m.ViewFunc(ctx, tournamentID, algorithm)
	}
	return &logic.AnalyticsView{}, nil
}

func (m *MockAnalyticsService) Algorithms(ctx context.Context) ([]models.AnalyticsAlgorithm, error) {
	return nil, nil
}

func (m *MockAnalyticsService) ChangeShift(ctx context.Context, tournamentID int64, algorithm string, teamID, playerID int64, shift float64) (*models.PlayerAnalytics, error) {
	return &models.PlayerAnalytics{}, nil
}

type MockStatisticsService struct {
	HistoryFunc func(ctx context.Context) (*logic.StatisticsHistoryView, error)
	OverallFunc func(ctx context.Context) (*models.TournamentOverall, error)
}

func (m *MockStatisticsService) History(ctx context.Context) (*logic.StatisticsHistoryView, error) {
	if m.HistoryFunc != nil {
		return m.HistoryFunc(ctx)
	}
	return &logic.StatisticsHistoryView{}, nil
}

func (m *MockStatisticsService) Overall(ctx context.Context) (*models.TournamentOverall, error) {
	if m.OverallFunc != nil {
		return m.OverallFunc(ctx)
	}
	return &models.TournamentOverall{}, nil
}

func (m *MockStatisticsService) Leaderboards(ctx context.Context) (*logic.LeaderboardsView, error) {
	return &logic.LeaderboardsView{}, nil
}

func (m *MockStatisticsService) HeroPlaytime(ctx context.Context, tournamentID, userID int64) ([]models.HeroPlaytime, error) {
	return nil, nil
}
