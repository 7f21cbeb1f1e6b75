package logic

import (
	"context"
	"fmt"
	"sort"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/CraazzzyyFoxx/anak-tournaments/internal/models"
)

// TournamentService builds the tournament list, standings and league
// standings views.
type TournamentService interface {
	Tournaments(ctx context.Context) (*TournamentsView, error)
	Tournament(ctx context.Context, id int64) (*models.Tournament, error)
	DefaultTournamentID(ctx context.Context) (int64, error)
	Standings(ctx context.Context, tournamentID int64) (*StandingsView, error)
	OwalStandings(ctx context.Context) (*OwalStandingsView, error)
}

// TournamentCard is one tournament in the list view.
type TournamentCard struct {
	models.Tournament
	DisplayName string `json:"display_name"`
}

// TournamentsView splits the list into regular tournaments and league
// days, newest first in both.
type TournamentsView struct {
	Tournaments []TournamentCard `json:"tournaments"`
	Leagues     []TournamentCard `json:"leagues"`
}

// StandingRow is a standings row with its derived winrate color.
type StandingRow struct {
	models.Standing
	Winrate      float64 `json:"winrate"`
	WinrateColor Color   `json:"winrate_color"`
}

// StandingsGroup is one group's table, playoffs and round robin split by
// the backend flags.
type StandingsGroup struct {
	Group models.TournamentGroup `json:"group"`
	Rows  []StandingRow          `json:"rows"`
}

type StandingsView struct {
	Tournament models.Tournament `json:"tournament"`
	Groups     []StandingsGroup  `json:"groups"`
	Playoffs   []StandingsGroup  `json:"playoffs"`
}

// OwalDayCell is one day's score with its display color.
type OwalDayCell struct {
	Played bool      `json:"played"`
	Points float64   `json:"points"`
	Team   string    `json:"team,omitempty"`
	Color  ColorPair `json:"color"`
}

// OwalStandingRow is a league standings row: one cell per day column in
// the same order as OwalStandingsView.Days.
type OwalStandingRow struct {
	User         models.User   `json:"user"`
	Role         models.Role   `json:"role"`
	Place        int           `json:"place"`
	CountDays    int           `json:"count_days"`
	Best3Days    float64       `json:"best_3_days"`
	AvgPoints    float64       `json:"avg_points"`
	AvgColor     ColorPair     `json:"avg_color"`
	Winrate      float64       `json:"winrate"`
	WinrateColor Color         `json:"winrate_color"`
	Cells        []OwalDayCell `json:"cells"`
}

type OwalStandingsView struct {
	Days []models.Tournament `json:"days"`
	Rows []OwalStandingRow   `json:"rows"`
}

type tournamentService struct {
	api    TournamentAPI
	cache  *viewCache
	logger *zap.SugaredLogger
}

func NewTournamentService(api TournamentAPI, redis RedisClient, logger *zap.SugaredLogger, ttl time.Duration) TournamentService {
	return &tournamentService{
		api:    api,
		cache:  newViewCache(redis, logger, ttl),
		logger: logger,
	}
}

func (s *tournamentService) Tournaments(ctx context.Context) (*TournamentsView, error) {
	return fetch(ctx, s.cache, "tournaments", viewKey("tournaments"), func(ctx context.Context) (*TournamentsView, error) {
		page, err := s.api.Tournaments(ctx, nil)
		if err != nil {
			return nil, fmt.Errorf("list tournaments: %w", err)
		}
		view := &TournamentsView{
			Tournaments: make([]TournamentCard, 0, len(page.Results)),
			Leagues:     make([]TournamentCard, 0),
		}
		for _, t := range page.Results {
			card := TournamentCard{Tournament: t, DisplayName: t.DisplayName()}
			if t.IsLeague {
				view.Leagues = append(view.Leagues, card)
			} else {
				view.Tournaments = append(view.Tournaments, card)
			}
		}
		return view, nil
	})
}

func (s *tournamentService) Tournament(ctx context.Context, id int64) (*models.Tournament, error) {
	return fetch(ctx, s.cache, "tournament", viewKey("tournament", id), func(ctx context.Context) (*models.Tournament, error) {
		return s.api.Tournament(ctx, id)
	})
}

// DefaultTournamentID returns the tournament shown when the URL does not
// name one: the newest non-league tournament.
func (s *tournamentService) DefaultTournamentID(ctx context.Context) (int64, error) {
	view, err := s.Tournaments(ctx)
	if err != nil {
		return 0, err
	}
	if len(view.Tournaments) == 0 {
		return 0, fmt.Errorf("no tournaments available")
	}
	return view.Tournaments[0].ID, nil
}

func (s *tournamentService) Standings(ctx context.Context, tournamentID int64) (*StandingsView, error) {
	return fetch(ctx, s.cache, "standings", viewKey("standings", tournamentID), func(ctx context.Context) (*StandingsView, error) {
		var (
			tournament *models.Tournament
			standings  []models.Standing
		)
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			var err error
			tournament, err = s.api.Tournament(gctx, tournamentID)
			if err != nil {
				return fmt.Errorf("tournament %d: %w", tournamentID, err)
			}
			return nil
		})
		g.Go(func() error {
			var err error
			standings, err = s.api.Standings(gctx, tournamentID)
			if err != nil {
				return fmt.Errorf("standings %d: %w", tournamentID, err)
			}
			return nil
		})
		if err := g.Wait(); err != nil {
			return nil, err
		}

		byGroup := make(map[int64]*StandingsGroup)
		var order []int64
		for _, st := range standings {
			grp, ok := byGroup[st.GroupID]
			if !ok {
				grp = &StandingsGroup{}
				if st.Group != nil {
					grp.Group = *st.Group
				}
				byGroup[st.GroupID] = grp
				order = append(order, st.GroupID)
			}
			grp.Rows = append(grp.Rows, standingRow(st))
		}

		view := &StandingsView{Tournament: *tournament}
		for _, id := range order {
			grp := byGroup[id]
			sort.SliceStable(grp.Rows, func(i, j int) bool {
				return grp.Rows[i].Position < grp.Rows[j].Position
			})
			if grp.Group.IsPlayoffs {
				view.Playoffs = append(view.Playoffs, *grp)
			} else {
				view.Groups = append(view.Groups, *grp)
			}
		}
		return view, nil
	})
}

func standingRow(st models.Standing) StandingRow {
	row := StandingRow{Standing: st}
	if st.Matches > 0 {
		row.Winrate = float64(st.Win) / float64(st.Matches)
	}
	row.WinrateColor = WinrateColor(row.Winrate)
	return row
}

func (s *tournamentService) OwalStandings(ctx context.Context) (*OwalStandingsView, error) {
	return fetch(ctx, s.cache, "owal", viewKey("owal"), func(ctx context.Context) (*OwalStandingsView, error) {
		standings, err := s.api.OwalStandings(ctx)
		if err != nil {
			return nil, fmt.Errorf("owal standings: %w", err)
		}

		view := &OwalStandingsView{
			Days: standings.Days,
			Rows: make([]OwalStandingRow, 0, len(standings.Standings)),
		}
		for _, st := range standings.Standings {
			row := OwalStandingRow{
				User:         st.User,
				Role:         st.Role,
				Place:        st.Place,
				CountDays:    st.CountDays,
				Best3Days:    st.Best3Days,
				AvgPoints:    st.AvgPoints,
				AvgColor:     DayPointsColor(st.AvgPoints),
				Winrate:      st.WinRate,
				WinrateColor: WinrateColor(st.WinRate),
				Cells:        make([]OwalDayCell, len(standings.Days)),
			}
			for i, day := range standings.Days {
				d, ok := st.Days[day.Name]
				if !ok {
					continue
				}
				row.Cells[i] = OwalDayCell{
					Played: true,
					Points: d.Points,
					Team:   d.Team,
					Color:  DayPointsColor(d.Points),
				}
			}
			view.Rows = append(view.Rows, row)
		}
		sort.SliceStable(view.Rows, func(i, j int) bool {
			return view.Rows[i].Place < view.Rows[j].Place
		})
		return view, nil
	})
}
