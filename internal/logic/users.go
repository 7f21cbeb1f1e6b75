package logic

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/CraazzzyyFoxx/anak-tournaments/internal/models"
)

const searchPageSize = 10

// UserService resolves players by battle tag and builds the profile
// page views.
type UserService interface {
	Search(ctx context.Context, query string) (*ListView[models.User], error)
	Resolve(ctx context.Context, name string) (*models.User, error)
	Overview(ctx context.Context, name string) (*UserOverviewView, error)
	Tournaments(ctx context.Context, name string) (*UserTournamentsView, error)
	Tournament(ctx context.Context, name string, tournamentID int64) (*models.UserTournamentWithStats, error)
	Encounters(ctx context.Context, name string, page, perPage int, sort string, order models.SortOrder) (*ListView[UserEncounterRow], error)
	Heroes(ctx context.Context, name string) ([]models.HeroWithUserStats, error)
}

// UserRoleView is a role summary with its derived winrate.
type UserRoleView struct {
	models.UserRole
	Winrate      float64 `json:"winrate"`
	WinrateColor Color   `json:"winrate_color"`
}

// UserOverviewView composes the profile tab. Sections that fail upstream
// come back empty rather than failing the page; only an unresolvable
// user is an error.
type UserOverviewView struct {
	User      models.User               `json:"user"`
	Slug      string                    `json:"slug"`
	Profile   *models.UserProfile       `json:"profile"`
	Roles     []UserRoleView            `json:"roles"`
	TopMaps   []UserMapRow              `json:"top_maps"`
	Teammates []models.UserBestTeammate `json:"teammates"`
}

type UserMapRow struct {
	models.UserMapRead
	WinrateColor Color `json:"winrate_color"`
}

// UserTournamentRow is one row of the profile's tournaments table.
type UserTournamentRow struct {
	models.UserTournament
	WinrateColor   Color `json:"winrate_color"`
	PlacementColor Color `json:"placement_color,omitempty"`
}

type UserTournamentsView struct {
	User models.User         `json:"user"`
	Rows []UserTournamentRow `json:"rows"`
}

type UserEncounterRow struct {
	models.EncounterWithUserStats
	ClosenessPct *int           `json:"closeness_pct"`
	Matches      []UserMatchRow `json:"matches"`
}

// UserMatchRow carries the per-match performance badge colors.
type UserMatchRow struct {
	models.MatchWithUserStats
	PerformanceColor ColorPair `json:"performance_color"`
}

type userService struct {
	api    UserAPI
	cache  *viewCache
	logger *zap.SugaredLogger
}

func NewUserService(api UserAPI, redis RedisClient, logger *zap.SugaredLogger, ttl time.Duration) UserService {
	return &userService{
		api:    api,
		cache:  newViewCache(redis, logger, ttl),
		logger: logger,
	}
}

// Search is never cached: it backs the typeahead box and queries are
// rarely repeated.
func (s *userService) Search(ctx context.Context, query string) (*ListView[models.User], error) {
	p, err := s.api.SearchUsers(ctx, query, searchPageSize)
	if err != nil {
		return nil, fmt.Errorf("search users: %w", err)
	}
	return listView(p, func(u models.User) models.User { return u }), nil
}

// Resolve looks a user up by battle tag. Profile URLs use the slug form
// ("name-1234"), which upstream accepts interchangeably.
func (s *userService) Resolve(ctx context.Context, name string) (*models.User, error) {
	return fetch(ctx, s.cache, "user", viewKey("user", name), func(ctx context.Context) (*models.User, error) {
		return s.api.UserByName(ctx, name)
	})
}

func (s *userService) Overview(ctx context.Context, name string) (*UserOverviewView, error) {
	user, err := s.Resolve(ctx, name)
	if err != nil {
		return nil, err
	}
	return fetch(ctx, s.cache, "user_overview", viewKey("user_overview", user.ID), func(ctx context.Context) (*UserOverviewView, error) {
		view := &UserOverviewView{User: *user, Slug: user.Slug()}

		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			profile, err := s.api.UserProfile(gctx, user.ID)
			if err != nil {
				s.logger.Warnw("profile section failed", "user_id", user.ID, "error", err)
				return nil
			}
			view.Profile = profile
			for _, r := range profile.Roles {
				row := UserRoleView{UserRole: r}
				if r.Maps > 0 {
					row.Winrate = float64(r.MapsWon) / float64(r.Maps)
				}
				row.WinrateColor = WinrateColor(row.Winrate)
				view.Roles = append(view.Roles, row)
			}
			return nil
		})
		g.Go(func() error {
			maps, err := s.api.UserTopMaps(gctx, user.ID)
			if err != nil {
				s.logger.Warnw("top maps section failed", "user_id", user.ID, "error", err)
				return nil
			}
			for _, m := range maps.Results {
				view.TopMaps = append(view.TopMaps, UserMapRow{
					UserMapRead:  m,
					WinrateColor: WinrateColor(m.WinRate),
				})
			}
			return nil
		})
		g.Go(func() error {
			mates, err := s.api.UserBestTeammates(gctx, user.ID)
			if err != nil {
				s.logger.Warnw("teammates section failed", "user_id", user.ID, "error", err)
				return nil
			}
			view.Teammates = mates.Results
			return nil
		})
		if err := g.Wait(); err != nil {
			return nil, err
		}
		return view, nil
	})
}

func (s *userService) Tournaments(ctx context.Context, name string) (*UserTournamentsView, error) {
	user, err := s.Resolve(ctx, name)
	if err != nil {
		return nil, err
	}
	return fetch(ctx, s.cache, "user_tournaments", viewKey("user_tournaments", user.ID), func(ctx context.Context) (*UserTournamentsView, error) {
		tournaments, err := s.api.UserTournaments(ctx, user.ID)
		if err != nil {
			return nil, fmt.Errorf("tournaments for user %d: %w", user.ID, err)
		}
		view := &UserTournamentsView{User: *user, Rows: make([]UserTournamentRow, 0, len(tournaments))}
		for _, t := range tournaments {
			row := UserTournamentRow{UserTournament: t}
			if maps := t.MapsWon + t.MapsLost; maps > 0 {
				row.WinrateColor = WinrateColor(float64(t.MapsWon) / float64(maps))
			}
			if t.Placement > 0 {
				row.PlacementColor = PlacementColor(t.ID, t.Placement)
			}
			view.Rows = append(view.Rows, row)
		}
		return view, nil
	})
}

func (s *userService) Tournament(ctx context.Context, name string, tournamentID int64) (*models.UserTournamentWithStats, error) {
	user, err := s.Resolve(ctx, name)
	if err != nil {
		return nil, err
	}
	return s.api.UserTournament(ctx, user.ID, tournamentID)
}

func (s *userService) Encounters(ctx context.Context, name string, page, perPage int, sort string, order models.SortOrder) (*ListView[UserEncounterRow], error) {
	user, err := s.Resolve(ctx, name)
	if err != nil {
		return nil, err
	}
	p, err := s.api.UserEncounters(ctx, user.ID, page, perPage, sort, order)
	if err != nil {
		return nil, fmt.Errorf("encounters for user %d: %w", user.ID, err)
	}
	return listView(p, userEncounterRow), nil
}

func userEncounterRow(e models.EncounterWithUserStats) UserEncounterRow {
	row := UserEncounterRow{
		EncounterWithUserStats: e,
		Matches:                make([]UserMatchRow, 0, len(e.Matches)),
	}
	if e.Closeness != nil {
		pct := int(*e.Closeness*100 + 0.5)
		row.ClosenessPct = &pct
	}
	for _, m := range e.Matches {
		row.Matches = append(row.Matches, UserMatchRow{
			MatchWithUserStats: m,
			PerformanceColor:   PerformanceColors(m.Performance),
		})
	}
	return row
}

func (s *userService) Heroes(ctx context.Context, name string) ([]models.HeroWithUserStats, error) {
	user, err := s.Resolve(ctx, name)
	if err != nil {
		return nil, err
	}
	p, err := fetch(ctx, s.cache, "user_heroes", viewKey("user_heroes", user.ID), func(ctx context.Context) (*models.Paginated[models.HeroWithUserStats], error) {
		return s.api.UserHeroes(ctx, user.ID)
	})
	if err != nil {
		return nil, fmt.Errorf("heroes for user %d: %w", user.ID, err)
	}
	return p.Results, nil
}
