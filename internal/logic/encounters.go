package logic

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/CraazzzyyFoxx/anak-tournaments/internal/models"
)

// ListView is the paginated envelope page endpoints return. HasMore
// drives the "next page" control.
type ListView[T any] struct {
	Page    int  `json:"page"`
	PerPage int  `json:"per_page"`
	Total   int  `json:"total"`
	HasMore bool `json:"has_more"`
	Results []T  `json:"results"`
}

func listView[T, U any](p *models.Paginated[T], f func(T) U) *ListView[U] {
	out := &ListView[U]{
		Page:    p.Page,
		PerPage: p.PerPage,
		Total:   p.Total,
		HasMore: p.HasMore(),
		Results: make([]U, 0, len(p.Results)),
	}
	for _, r := range p.Results {
		out.Results = append(out.Results, f(r))
	}
	return out
}

// EncounterService builds the encounter and match list and detail views.
type EncounterService interface {
	Encounters(ctx context.Context, page, perPage int, query string, tournamentID int64) (*ListView[EncounterRow], error)
	Encounter(ctx context.Context, id int64) (*EncounterView, error)
	Matches(ctx context.Context, page, perPage int, query string, tournamentID int64) (*ListView[MatchRow], error)
	Match(ctx context.Context, id int64) (*MatchView, error)
}

// EncounterRow is one list row. ClosenessPct is Closeness rendered as a
// whole percentage, nil when logs were never parsed.
type EncounterRow struct {
	models.Encounter
	ClosenessPct *int `json:"closeness_pct"`
}

type EncounterView struct {
	EncounterRow
	Matches []models.Match `json:"matches"`
}

// MatchRow is one match-list row: the map played with its series
// context embedded. Rosters belong to the detail view.
type MatchRow struct {
	models.MatchWithStats
}

// MatchView is a match with both rosters in display order.
type MatchView struct {
	models.MatchWithStats
	HomeTeam *MatchTeamView `json:"home_team,omitempty"`
	AwayTeam *MatchTeamView `json:"away_team,omitempty"`
}

type MatchTeamView struct {
	models.TeamWithStats
	Players []MatchPlayerRow `json:"players"`
}

type MatchPlayerRow struct {
	models.PlayerWithStats
	BattleName string `json:"battle_name"`
}

type encounterService struct {
	api    EncounterAPI
	cache  *viewCache
	logger *zap.SugaredLogger
}

func NewEncounterService(api EncounterAPI, redis RedisClient, logger *zap.SugaredLogger, ttl time.Duration) EncounterService {
	return &encounterService{
		api:    api,
		cache:  newViewCache(redis, logger, ttl),
		logger: logger,
	}
}

func (s *encounterService) Encounters(ctx context.Context, page, perPage int, query string, tournamentID int64) (*ListView[EncounterRow], error) {
	// Search results are not cached: the query space is unbounded and
	// upstream already answers them quickly.
	if query != "" {
		p, err := s.api.Encounters(ctx, page, perPage, query, tournamentID)
		if err != nil {
			return nil, fmt.Errorf("search encounters: %w", err)
		}
		return listView(p, encounterRow), nil
	}
	key := viewKey("encounters", tournamentID, page, perPage)
	return fetch(ctx, s.cache, "encounters", key, func(ctx context.Context) (*ListView[EncounterRow], error) {
		p, err := s.api.Encounters(ctx, page, perPage, "", tournamentID)
		if err != nil {
			return nil, fmt.Errorf("list encounters: %w", err)
		}
		return listView(p, encounterRow), nil
	})
}

func encounterRow(e models.Encounter) EncounterRow {
	row := EncounterRow{Encounter: e}
	if e.Closeness != nil {
		pct := int(*e.Closeness*100 + 0.5)
		row.ClosenessPct = &pct
	}
	return row
}

func (s *encounterService) Matches(ctx context.Context, page, perPage int, query string, tournamentID int64) (*ListView[MatchRow], error) {
	if query != "" {
		p, err := s.api.Matches(ctx, page, perPage, query, tournamentID)
		if err != nil {
			return nil, fmt.Errorf("search matches: %w", err)
		}
		return listView(p, matchRow), nil
	}
	key := viewKey("matches", tournamentID, page, perPage)
	return fetch(ctx, s.cache, "matches", key, func(ctx context.Context) (*ListView[MatchRow], error) {
		p, err := s.api.Matches(ctx, page, perPage, "", tournamentID)
		if err != nil {
			return nil, fmt.Errorf("list matches: %w", err)
		}
		return listView(p, matchRow), nil
	})
}

func matchRow(m models.MatchWithStats) MatchRow {
	row := MatchRow{MatchWithStats: m}
	if m.HomeTeam != nil {
		t := *m.HomeTeam
		t.Players = nil
		row.HomeTeam = &t
	}
	if m.AwayTeam != nil {
		t := *m.AwayTeam
		t.Players = nil
		row.AwayTeam = &t
	}
	return row
}

func (s *encounterService) Encounter(ctx context.Context, id int64) (*EncounterView, error) {
	return fetch(ctx, s.cache, "encounter", viewKey("encounter", id), func(ctx context.Context) (*EncounterView, error) {
		e, err := s.api.Encounter(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("encounter %d: %w", id, err)
		}
		return &EncounterView{
			EncounterRow: encounterRow(*e),
			Matches:      e.Matches,
		}, nil
	})
}

func (s *encounterService) Match(ctx context.Context, id int64) (*MatchView, error) {
	return fetch(ctx, s.cache, "match", viewKey("match", id), func(ctx context.Context) (*MatchView, error) {
		m, err := s.api.Match(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("match %d: %w", id, err)
		}
		view := &MatchView{MatchWithStats: *m}
		view.MatchWithStats.HomeTeam = nil
		view.MatchWithStats.AwayTeam = nil
		if m.HomeTeam != nil {
			view.HomeTeam = matchTeamView(*m.HomeTeam)
		}
		if m.AwayTeam != nil {
			view.AwayTeam = matchTeamView(*m.AwayTeam)
		}
		return view, nil
	})
}

func matchTeamView(t models.TeamWithStats) *MatchTeamView {
	base := make([]models.Player, len(t.Players))
	for i, p := range t.Players {
		base[i] = p.Player
	}
	ordered := OrderPlayers(base)

	byID := make(map[int64][]models.PlayerWithStats, len(t.Players))
	for _, p := range t.Players {
		byID[p.ID] = append(byID[p.ID], p)
	}

	view := &MatchTeamView{TeamWithStats: t, Players: make([]MatchPlayerRow, 0, len(t.Players))}
	view.TeamWithStats.Players = nil
	for _, p := range ordered {
		rows := byID[p.ID]
		view.Players = append(view.Players, MatchPlayerRow{
			PlayerWithStats: rows[0],
			BattleName:      rows[0].BattleName(),
		})
		byID[p.ID] = rows[1:]
	}
	return view
}
