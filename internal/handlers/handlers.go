package handlers

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/CraazzzyyFoxx/anak-tournaments/internal/aqt"
	"github.com/CraazzzyyFoxx/anak-tournaments/internal/logic"
)

// MaxBodySize limits the size of request bodies to 1MB
const MaxBodySize = 1048576

// WarmQueue defines the interface for the cache warming worker pool
type WarmQueue interface {
	QueueDepth() int
}

// UpstreamCheck reports whether the backend API is reachable
type UpstreamCheck interface {
	Ping(ctx context.Context) error
}

type Config struct {
	WorkerPool WarmQueue
	Redis      *redis.Client
	Upstream   UpstreamCheck
	Tokens     *aqt.TokenSource
	Logger     *zap.Logger
	// Services
	Tournaments  logic.TournamentService
	Teams        logic.TeamService
	Encounters   logic.EncounterService
	Users        logic.UserService
	Achievements logic.AchievementService
	Statistics   logic.StatisticsService
	Analytics    logic.AnalyticsService
}

type Handler struct {
	pool         WarmQueue
	redis        *redis.Client
	upstream     UpstreamCheck
	tokens       *aqt.TokenSource
	logger       *zap.SugaredLogger
	validator    *validator.Validate
	tournaments  logic.TournamentService
	teams        logic.TeamService
	encounters   logic.EncounterService
	users        logic.UserService
	achievements logic.AchievementService
	statistics   logic.StatisticsService
	analytics    logic.AnalyticsService
}

func New(cfg Config) *Handler {
	return &Handler{
		pool:         cfg.WorkerPool,
		redis:        cfg.Redis,
		upstream:     cfg.Upstream,
		tokens:       cfg.Tokens,
		logger:       cfg.Logger.Sugar(),
		validator:    validator.New(),
		tournaments:  cfg.Tournaments,
		teams:        cfg.Teams,
		encounters:   cfg.Encounters,
		users:        cfg.Users,
		achievements: cfg.Achievements,
		statistics:   cfg.Statistics,
		analytics:    cfg.Analytics,
	}
}
