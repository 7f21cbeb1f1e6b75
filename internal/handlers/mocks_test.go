package handlers

import (
	"context"

	"github.com/CraazzzyyFoxx/anak-tournaments/internal/logic"
	"github.com/CraazzzyyFoxx/anak-tournaments/internal/models"
)

// MockTournamentService implements logic.TournamentService for testing
type MockTournamentService struct {
	TournamentsFunc         func(ctx context.Context) (*logic.TournamentsView, error)
	TournamentFunc          func(ctx context.Context, id int64) (*models.Tournament, error)
	DefaultTournamentIDFunc func(ctx context.Context) (int64, error)
	StandingsFunc           func(ctx context.Context, tournamentID int64) (*logic.StandingsView, error)
	OwalStandingsFunc       func(ctx context.Context) (*logic.OwalStandingsView, error)
}

func (m *MockTournamentService) Tournaments(ctx context.Context) (*logic.TournamentsView, error) {
	if m.TournamentsFunc != nil {
		return m.TournamentsFunc(ctx)
	}
	return &logic.TournamentsView{}, nil
}

func (m *MockTournamentService) Tournament(ctx context.Context, id int64) (*models.Tournament, error) {
	if m.TournamentFunc != nil {
		return m.TournamentFunc(ctx, id)
	}
	return &models.Tournament{ID: id}, nil
}

func (m *MockTournamentService) DefaultTournamentID(ctx context.Context) (int64, error) {
	if m.DefaultTournamentIDFunc != nil {
		return m.DefaultTournamentIDFunc(ctx)
	}
	return 1, nil
}

func (m *MockTournamentService) Standings(ctx context.Context, tournamentID int64) (*logic.StandingsView, error) {
	if m.StandingsFunc != nil {
		return m.StandingsFunc(ctx, tournamentID)
	}
	return &logic.StandingsView{}, nil
}

func (m *MockTournamentService) OwalStandings(ctx context.Context) (*logic.OwalStandingsView, error) {
	if m.OwalStandingsFunc != nil {
		return m.OwalStandingsFunc(ctx)
	}
	return &logic.OwalStandingsView{}, nil
}

// MockTeamService implements logic.TeamService for testing
type MockTeamService struct {
	TeamsFunc func(ctx context.Context, tournamentID int64) (*logic.TeamsView, error)
}

func (m *MockTeamService) Teams(ctx context.Context, tournamentID int64) (*logic.TeamsView, error) {
	if m.TeamsFunc != nil {
		return m.TeamsFunc(ctx, tournamentID)
	}
	return &logic.TeamsView{}, nil
}

// MockEncounterService implements logic.EncounterService for testing
type MockEncounterService struct {
	EncountersFunc func(ctx context.Context, page, perPage int, query string, tournamentID int64) (*logic.ListView[logic.EncounterRow], error)
	EncounterFunc  func(ctx context.Context, id int64) (*logic.EncounterView, error)
	MatchesFunc    func(ctx context.Context, page, perPage int, query string, tournamentID int64) (*logic.ListView[logic.MatchRow], error)
	MatchFunc      func(ctx context.Context, id int64) (*logic.MatchView, error)
}

func (m *MockEncounterService) Encounters(ctx context.Context, page, perPage int, query string, tournamentID int64) (*logic.ListView[logic.EncounterRow], error) {
	if m.EncountersFunc != nil {
		return m.EncountersFunc(ctx, page, perPage, query, tournamentID)
	}
	return &logic.ListView[logic.EncounterRow]{}, nil
}

func (m *MockEncounterService) Encounter(ctx context.Context, id int64) (*logic.EncounterView, error) {
	if m.EncounterFunc != nil {
		return m.EncounterFunc(ctx, id)
	}
	return &logic.EncounterView{}, nil
}

func (m *MockEncounterService) Matches(ctx context.Context, page, perPage int, query string, tournamentID int64) (*logic.ListView[logic.MatchRow], error) {
	if m.MatchesFunc != nil {
		return m.MatchesFunc(ctx, page, perPage, query, tournamentID)
	}
	return &logic.ListView[logic.MatchRow]{}, nil
}

func (m *MockEncounterService) Match(ctx context.Context, id int64) (*logic.MatchView, error) {
	if m.MatchFunc != nil {
		return m.MatchFunc(ctx, id)
	}
	return &logic.MatchView{}, nil
}

// MockUserService implements logic.UserService for testing
type MockUserService struct {
	SearchFunc      func(ctx context.Context, query string) (*logic.ListView[models.User], error)
	ResolveFunc     func(ctx context.Context, name string) (*models.User, error)
	OverviewFunc    func(ctx context.Context, name string) (*logic.UserOverviewView, error)
	TournamentsFunc func(ctx context.Context, name string) (*logic.UserTournamentsView, error)
	TournamentFunc  func(ctx context.Context, name string, tournamentID int64) (*models.UserTournamentWithStats, error)
	EncountersFunc  func(ctx context.Context, name string, page, perPage int, sort string, order models.SortOrder) (*logic.ListView[logic.UserEncounterRow], error)
	HeroesFunc      func(ctx context.Context, name string) ([]models.HeroWithUserStats, error)
}

func (m *MockUserService) Search(ctx context.Context, query string) (*logic.ListView[models.User], error) {
	if m.SearchFunc != nil {
		return m.SearchFunc(ctx, query)
	}
	return &logic.ListView[models.User]{}, nil
}

func (m *MockUserService) Resolve(ctx context.Context, name string) (*models.User, error) {
	if m.ResolveFunc != nil {
		return m.ResolveFunc(ctx, name)
	}
	return &models.User{Name: name}, nil
}

func (m *MockUserService) Overview(ctx context.Context, name string) (*logic.UserOverviewView, error) {
	if m.OverviewFunc != nil {
		return m.OverviewFunc(ctx, name)
	}
	return &logic.UserOverviewView{}, nil
}

func (m *MockUserService) Tournaments(ctx context.Context, name string) (*logic.UserTournamentsView, error) {
	if m.TournamentsFunc != nil {
		return m.TournamentsFunc(ctx, name)
	}
	return &logic.UserTournamentsView{}, nil
}

func (m *MockUserService) Tournament(ctx context.Context, name string, tournamentID int64) (*models.UserTournamentWithStats, error) {
	if m.TournamentFunc != nil {
		return m.TournamentFunc(ctx, name, tournamentID)
	}
	return &models.UserTournamentWithStats{}, nil
}

func (m *MockUserService) Encounters(ctx context.Context, name string, page, perPage int, sort string, order models.SortOrder) (*logic.ListView[logic.UserEncounterRow], error) {
	if m.EncountersFunc != nil {
		return m.EncountersFunc(ctx, name, page, perPage, sort, order)
	}
	return &logic.ListView[logic.UserEncounterRow]{}, nil
}

func (m *MockUserService) Heroes(ctx context.Context, name string) ([]models.HeroWithUserStats, error) {
	if m.HeroesFunc != nil {
		return m.HeroesFunc(ctx, name)
	}
	return nil, nil
}

// MockAchievementService implements logic.AchievementService for testing
type MockAchievementService struct {
	AchievementsFunc     func(ctx context.Context, page, perPage int) (*logic.ListView[logic.AchievementRow], error)
	AchievementFunc      func(ctx context.Context, id int64, page, perPage int) (*logic.AchievementView, error)
	UserAchievementsFunc func(ctx context.Context, userID int64) ([]logic.AchievementRow, error)
}

func (m *MockAchievementService) Achievements(ctx context.Context, page, perPage int) (*logic.ListView[logic.AchievementRow], error) {
	if m.AchievementsFunc != nil {
		return m.AchievementsFunc(ctx, page, perPage)
	}
	return &logic.ListView[logic.AchievementRow]{}, nil
}

func (m *MockAchievementService) Achievement(ctx context.Context, id int64, page, perPage int) (*logic.AchievementView, error) {
	if m.AchievementFunc != nil {
		return m.AchievementFunc(ctx, id, page, perPage)
	}
	return &logic.AchievementView{}, nil
}

func (m *MockAchievementService) UserAchievements(ctx context.Context, userID int64) ([]logic.AchievementRow, error) {
	if m.UserAchievementsFunc != nil {
		return m.UserAchievementsFunc(ctx, userID)
	}
	return nil, nil
}

// MockStatisticsService implements logic.StatisticsService for testing
type MockStatisticsService struct {
	HistoryFunc      func(ctx context.Context) (*logic.StatisticsHistoryView, error)
	OverallFunc      func(ctx context.Context) (*models.TournamentOverall, error)
	LeaderboardsFunc func(ctx context.Context) (*logic.LeaderboardsView, error)
	HeroPlaytimeFunc func(ctx context.Context, tournamentID, userID int64) ([]models.HeroPlaytime, error)
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
	if m.LeaderboardsFunc != nil {
		return m.LeaderboardsFunc(ctx)
	}
	return &logic.LeaderboardsView{}, nil
}

func (m *MockStatisticsService) HeroPlaytime(ctx context.Context, tournamentID, userID int64) ([]models.HeroPlaytime, error) {
	if m.HeroPlaytimeFunc != nil {
		return m.HeroPlaytimeFunc(ctx, tournamentID, userID)
	}
	return nil, nil
}

// MockAnalyticsService implements logic.AnalyticsService for testing
type MockAnalyticsService struct {
	ViewFunc        func(ctx context.Context, tournamentID int64, algorithm string) (*logic.AnalyticsView, error)
	AlgorithmsFunc  func(ctx context.Context) ([]models.AnalyticsAlgorithm, error)
	ChangeShiftFunc func(ctx context.Context, tournamentID int64, algorithm string, teamID, playerID int64, shift float64) (*models.PlayerAnalytics, error)
}

func (m *MockAnalyticsService) View(ctx context.Context, tournamentID int64, algorithm string) (*logic.AnalyticsView, error) {
	if m.ViewFunc != nil {
		return m.ViewFunc(ctx, tournamentID, algorithm)
	}
	return &logic.AnalyticsView{}, nil
}

func (m *MockAnalyticsService) Algorithms(ctx context.Context) ([]models.AnalyticsAlgorithm, error) {
	if m.AlgorithmsFunc != nil {
		return m.AlgorithmsFunc(ctx)
	}
	return nil, nil
}

func (m *MockAnalyticsService) ChangeShift(ctx context.Context, tournamentID int64, algorithm string, teamID, playerID int64, shift float64) (*models.PlayerAnalytics, error) {
	if m.ChangeShiftFunc != nil {
		return m.ChangeShiftFunc(ctx, tournamentID, algorithm, teamID, playerID, shift)
	}
	return &models.PlayerAnalytics{}, nil
}

// MockWarmQueue implements WarmQueue for testing
type MockWarmQueue struct {
	Depth int
}

func (m *MockWarmQueue) QueueDepth() int { return m.Depth }

// MockUpstream implements UpstreamCheck for testing
type MockUpstream struct {
	PingFunc func(ctx context.Context) error
}

func (m *MockUpstream) Ping(ctx context.Context) error {
	if m.PingFunc != nil {
		return m.PingFunc(ctx)
	}
	return nil
}
