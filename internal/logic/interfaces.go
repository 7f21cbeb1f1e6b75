package logic

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/CraazzzyyFoxx/anak-tournaments/internal/models"
)

// RedisClient defines the interface for the Redis view cache
type RedisClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// TournamentAPI defines the upstream calls the tournament service needs
type TournamentAPI interface {
	Tournaments(ctx context.Context, isLeague *bool) (*models.Paginated[models.Tournament], error)
	Tournament(ctx context.Context, id int64) (*models.Tournament, error)
	Standings(ctx context.Context, tournamentID int64) ([]models.Standing, error)
	OwalStandings(ctx context.Context) (*models.OwalStandings, error)
}

// TeamAPI defines the upstream calls the team service needs
type TeamAPI interface {
	Teams(ctx context.Context, tournamentID int64, sort string, order models.SortOrder) (*models.Paginated[models.Team], error)
}

// EncounterAPI defines the upstream calls the encounter service needs
type EncounterAPI interface {
	Encounters(ctx context.Context, page, perPage int, query string, tournamentID int64) (*models.Paginated[models.Encounter], error)
	Encounter(ctx context.Context, id int64) (*models.Encounter, error)
	Matches(ctx context.Context, page, perPage int, query string, tournamentID int64) (*models.Paginated[models.MatchWithStats], error)
	Match(ctx context.Context, id int64) (*models.MatchWithStats, error)
}

// UserAPI defines the upstream calls the user service needs
type UserAPI interface {
	SearchUsers(ctx context.Context, query string, perPage int) (*models.Paginated[models.User], error)
	UserByName(ctx context.Context, name string) (*models.User, error)
	UserProfile(ctx context.Context, id int64) (*models.UserProfile, error)
	UserTournaments(ctx context.Context, id int64) ([]models.UserTournament, error)
	UserTournament(ctx context.Context, id, tournamentID int64) (*models.UserTournamentWithStats, error)
	UserTopMaps(ctx context.Context, id int64) (*models.Paginated[models.UserMapRead], error)
	UserEncounters(ctx context.Context, id int64, page, perPage int, sort string, order models.SortOrder) (*models.Paginated[models.EncounterWithUserStats], error)
	UserHeroes(ctx context.Context, id int64) (*models.Paginated[models.HeroWithUserStats], error)
	UserBestTeammates(ctx context.Context, id int64) (*models.Paginated[models.UserBestTeammate], error)
}

// AchievementAPI defines the upstream calls the achievement service needs
type AchievementAPI interface {
	Achievements(ctx context.Context, page, perPage int) (*models.Paginated[models.AchievementRarity], error)
	Achievement(ctx context.Context, id int64) (*models.AchievementRarity, error)
	AchievementUsers(ctx context.Context, id int64, page, perPage int) (*models.Paginated[models.AchievementEarned], error)
	UserAchievements(ctx context.Context, userID int64) ([]models.AchievementRarity, error)
}

// StatisticsAPI defines the upstream calls the statistics service needs
type StatisticsAPI interface {
	TournamentHistory(ctx context.Context) ([]models.TournamentStatistics, error)
	TournamentDivisions(ctx context.Context) ([]models.TournamentDivisionStatistics, error)
	OverallStatistics(ctx context.Context) (*models.TournamentOverall, error)
	PlayerLeaderboard(ctx context.Context, metric string) ([]models.PlayerStatistics, error)
	HeroPlaytime(ctx context.Context, page, perPage int, userID, tournamentID int64) (*models.Paginated[models.HeroPlaytime], error)
}

// AnalyticsAPI defines the upstream calls the analytics service needs
type AnalyticsAPI interface {
	Analytics(ctx context.Context, tournamentID int64, algorithm string) (*models.TournamentAnalytics, error)
	Algorithms(ctx context.Context) (*models.Paginated[models.AnalyticsAlgorithm], error)
	ChangeShift(ctx context.Context, teamID, playerID int64, shift float64) (*models.PlayerAnalytics, error)
}
