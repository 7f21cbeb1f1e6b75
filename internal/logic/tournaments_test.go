package logic

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/CraazzzyyFoxx/anak-tournaments/internal/models"
)

type MockTournamentAPI struct {
	TournamentsFunc   func(ctx context.Context, isLeague *bool) (*models.Paginated[models.Tournament], error)
	TournamentFunc    func(ctx context.Context, id int64) (*models.Tournament, error)
	StandingsFunc     func(ctx context.Context, tournamentID int64) ([]models.Standing, error)
	OwalStandingsFunc func(ctx context.Context) (*models.OwalStandings, error)
}

func (m *MockTournamentAPI) Tournaments(ctx context.Context, isLeague *bool) (*models.Paginated[models.Tournament], error) {
	return m.TournamentsFunc(ctx, isLeague)
}

func (m *MockTournamentAPI) Tournament(ctx context.Context, id int64) (*models.Tournament, error) {
	return m.TournamentFunc(ctx, id)
}

func (m *MockTournamentAPI) Standings(ctx context.Context, tournamentID int64) ([]models.Standing, error) {
	return m.StandingsFunc(ctx, tournamentID)
}

func (m *MockTournamentAPI) OwalStandings(ctx context.Context) (*models.OwalStandings, error) {
	return m.OwalStandingsFunc(ctx)
}

func newTournamentService(api *MockTournamentAPI) TournamentService {
	return NewTournamentService(api, nil, zap.NewNop().Sugar(), time.Minute)
}

func TestTournamentsSplitsLeagues(t *testing.T) {
	api := &MockTournamentAPI{
		TournamentsFunc: func(ctx context.Context, isLeague *bool) (*models.Paginated[models.Tournament], error) {
			return &models.Paginated[models.Tournament]{
				Page: 1, PerPage: -1, Total: 3,
				Results: []models.Tournament{
					{ID: 30, Number: 30},
					{ID: 29, Name: "OWAL Season 2 | Day 4", IsLeague: true},
					{ID: 28, Number: 28},
				},
			}, nil
		},
	}
	view, err := newTournamentService(api).Tournaments(context.Background())
	if err != nil {
		t.Fatalf("Tournaments failed: %v", err)
	}
	if len(view.Tournaments) != 2 || len(view.Leagues) != 1 {
		t.Fatalf("split = %d/%d, want 2/1", len(view.Tournaments), len(view.Leagues))
	}
	if view.Tournaments[0].DisplayName != "Tournament 30" {
		t.Errorf("display name = %q", view.Tournaments[0].DisplayName)
	}
	if view.Leagues[0].DisplayName != "OWAL Season 2 | Day 4" {
		t.Errorf("league display name = %q", view.Leagues[0].DisplayName)
	}
}

func TestDefaultTournamentID(t *testing.T) {
	api := &MockTournamentAPI{
		TournamentsFunc: func(ctx context.Context, isLeague *bool) (*models.Paginated[models.Tournament], error) {
			return &models.Paginated[models.Tournament]{
				Results: []models.Tournament{
					{ID: 12, Name: "OWAL | Day 1", IsLeague: true},
					{ID: 11, Number: 11},
					{ID: 10, Number: 10},
				},
			}, nil
		},
	}
	id, err := newTournamentService(api).DefaultTournamentID(context.Background())
	if err != nil {
		t.Fatalf("DefaultTournamentID failed: %v", err)
	}
	// Newest non-league tournament, not the league day ahead of it
	if id != 11 {
		t.Errorf("default tournament = %d, want 11", id)
	}
}

func TestStandingsGroupsAndPlayoffs(t *testing.T) {
	groupA := &models.TournamentGroup{ID: 1, Name: "A", IsGroups: true}
	playoffs := &models.TournamentGroup{ID: 2, Name: "Playoffs", IsPlayoffs: true}
	api := &MockTournamentAPI{
		TournamentFunc: func(ctx context.Context, id int64) (*models.Tournament, error) {
			return &models.Tournament{ID: id, Number: 30}, nil
		},
		StandingsFunc: func(ctx context.Context, tournamentID int64) ([]models.Standing, error) {
			return []models.Standing{
				{GroupID: 1, Position: 2, Matches: 4, Win: 1, Group: groupA},
				{GroupID: 2, Position: 1, Matches: 6, Win: 5, Group: playoffs},
				{GroupID: 1, Position: 1, Matches: 4, Win: 3, Group: groupA},
			}, nil
		},
	}
	view, err := newTournamentService(api).Standings(context.Background(), 30)
	if err != nil {
		t.Fatalf("Standings failed: %v", err)
	}
	if len(view.Groups) != 1 || len(view.Playoffs) != 1 {
		t.Fatalf("groups/playoffs = %d/%d, want 1/1", len(view.Groups), len(view.Playoffs))
	}
	rows := view.Groups[0].Rows
	if rows[0].Position != 1 || rows[1].Position != 2 {
		t.Errorf("rows not sorted by position: %+v", rows)
	}
	// 3 wins of 4 matches
	if rows[0].Winrate != 0.75 {
		t.Errorf("winrate = %v, want 0.75", rows[0].Winrate)
	}
	if rows[0].WinrateColor != "#cc99ff" {
		t.Errorf("winrate color = %q, want #cc99ff", rows[0].WinrateColor)
	}
}

func TestOwalStandingsCells(t *testing.T) {
	day1 := models.Tournament{ID: 20, Name: "OWAL | Day 1", IsLeague: true}
	day2 := models.Tournament{ID: 21, Name: "OWAL | Day 2", IsLeague: true}
	api := &MockTournamentAPI{
		OwalStandingsFunc: func(ctx context.Context) (*models.OwalStandings, error) {
			return &models.OwalStandings{
				Days: []models.Tournament{day1, day2},
				Standings: []models.OwalStanding{
					{
						User:      models.User{ID: 1, Name: "player#1"},
						Place:     2,
						AvgPoints: 4.2,
						WinRate:   0.61,
						Days: map[string]models.OwalStandingDay{
							"OWAL | Day 2": {Points: 5.5, Team: "Team B"},
						},
					},
					{
						User:  models.User{ID: 2, Name: "leader#1"},
						Place: 1,
						Days:  map[string]models.OwalStandingDay{},
					},
				},
			}, nil
		},
	}
	view, err := newTournamentService(api).OwalStandings(context.Background())
	if err != nil {
		t.Fatalf("OwalStandings failed: %v", err)
	}
	if view.Rows[0].Place != 1 {
		t.Fatalf("rows not sorted by place: first is place %d", view.Rows[0].Place)
	}

	row := view.Rows[1]
	if row.Cells[0].Played {
		t.Errorf("day 1 cell should be empty")
	}
	if !row.Cells[1].Played || row.Cells[1].Points != 5.5 {
		t.Fatalf("day 2 cell = %+v", row.Cells[1])
	}
	if row.Cells[1].Color.Background != "#cbb765" {
		t.Errorf("day 2 color = %+v, want gold", row.Cells[1].Color)
	}
	if row.AvgColor.Background != "#99b0cc" {
		t.Errorf("avg color = %+v, want silver", row.AvgColor)
	}
	if row.WinrateColor != "#99ffff" {
		t.Errorf("winrate color = %q, want #99ffff", row.WinrateColor)
	}
}
