package aqt

import (
	"context"
	"net/url"
	"strconv"

	"github.com/CraazzzyyFoxx/anak-tournaments/internal/models"
)

// Analytics fetches the balancer analytics snapshot for a tournament
// under the given algorithm.
func (c *Client) Analytics(ctx context.Context, tournamentID int64, algorithm string) (*models.TournamentAnalytics, error) {
	q := url.Values{}
	q.Set("tournament_id", strconv.FormatInt(tournamentID, 10))
	if algorithm != "" {
		q.Set("algorithm", algorithm)
	}
	return get[models.TournamentAnalytics](ctx, c, "/tournaments/statistics/analytics", q)
}

func (c *Client) Algorithms(ctx context.Context) (*models.Paginated[models.AnalyticsAlgorithm], error) {
	p := ListParams{Page: 1, PerPage: -1, Sort: "id", Order: models.SortDesc}
	return getPage[models.AnalyticsAlgorithm](ctx, c, "/analytics/algorithms", p)
}

type shiftRequest struct {
	TeamID   int64   `json:"team_id"`
	PlayerID int64   `json:"player_id"`
	Shift    float64 `json:"shift"`
}

// ChangeShift patches one player's manual shift. Requires a valid
// session; the actual authorization check is the backend's.
func (c *Client) ChangeShift(ctx context.Context, teamID, playerID int64, shift float64) (*models.PlayerAnalytics, error) {
	return postAuthed[models.PlayerAnalytics](ctx, c, "/tournaments/statistics/analytics/change", shiftRequest{
		TeamID:   teamID,
		PlayerID: playerID,
		Shift:    shift,
	})
}
