package logic

import (
	"context"
	"fmt"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/CraazzzyyFoxx/anak-tournaments/internal/models"
)

// TeamService builds the teams view for a tournament page.
type TeamService interface {
	Teams(ctx context.Context, tournamentID int64) (*TeamsView, error)
}

// RosterPlayer is one row of a team card, in display order.
type RosterPlayer struct {
	models.Player
	BattleName     string `json:"battle_name"`
	Specialization string `json:"specialization"`
}

type TeamCard struct {
	models.Team
	Players        []RosterPlayer `json:"players"`
	PlacementColor Color          `json:"placement_color,omitempty"`
}

type TeamsView struct {
	TournamentID int64      `json:"tournament_id"`
	Teams        []TeamCard `json:"teams"`
}

type teamService struct {
	api    TeamAPI
	cache  *viewCache
	logger *zap.SugaredLogger
}

func NewTeamService(api TeamAPI, redis RedisClient, logger *zap.SugaredLogger, ttl time.Duration) TeamService {
	return &teamService{
		api:    api,
		cache:  newViewCache(redis, logger, ttl),
		logger: logger,
	}
}

func (s *teamService) Teams(ctx context.Context, tournamentID int64) (*TeamsView, error) {
	return fetch(ctx, s.cache, "teams", viewKey("teams", tournamentID), func(ctx context.Context) (*TeamsView, error) {
		page, err := s.api.Teams(ctx, tournamentID, "avg_sr", models.SortAsc)
		if err != nil {
			return nil, fmt.Errorf("teams for tournament %d: %w", tournamentID, err)
		}

		view := &TeamsView{
			TournamentID: tournamentID,
			Teams:        make([]TeamCard, 0, len(page.Results)),
		}
		for _, t := range page.Results {
			view.Teams = append(view.Teams, teamCard(tournamentID, t))
		}
		// Finished tournaments list by final placement, with name as the
		// tie-break; unplaced teams go last.
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
		return view, nil
	})
}

func teamCard(tournamentID int64, t models.Team) TeamCard {
	card := TeamCard{Team: t, Players: make([]RosterPlayer, 0, len(t.Players))}
	for _, p := range OrderPlayers(t.Players) {
		card.Players = append(card.Players, RosterPlayer{
			Player:         p,
			BattleName:     p.BattleName(),
			Specialization: p.Specialization(),
		})
	}
	if t.Placement != nil {
		card.PlacementColor = PlacementColor(tournamentID, *t.Placement)
	}
	return card
}
