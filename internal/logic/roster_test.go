package logic

import (
	"testing"

	"github.com/CraazzzyyFoxx/anak-tournaments/internal/models"
)

func names(players []models.Player) []string {
	out := make([]string, len(players))
	for i, p := range players {
		out[i] = p.Name
	}
	return out
}

func TestOrderPlayers(t *testing.T) {
	tests := []struct {
		name    string
		players []models.Player
		want    []string
	}{
		{
			name: "RolesBeforeRank",
			players: []models.Player{
				{ID: 1, Name: "heal#1", Role: models.RoleSupport, Rank: 4000},
				{ID: 2, Name: "dps#1", Role: models.RoleDamage, Rank: 2000},
				{ID: 3, Name: "tank#1", Role: models.RoleTank, Rank: 1000},
			},
			want: []string{"tank#1", "dps#1", "heal#1"},
		},
		{
			name: "RankDescendingWithinRole",
			players: []models.Player{
				{ID: 1, Name: "dps#low", Role: models.RoleDamage, Rank: 1800},
				{ID: 2, Name: "dps#high", Role: models.RoleDamage, Rank: 3200},
				{ID: 3, Name: "dps#mid", Role: models.RoleDamage, Rank: 2500},
			},
			want: []string{"dps#high", "dps#mid", "dps#low"},
		},
		{
			name: "SubstituteFollowsOriginal",
			players: []models.Player{
				{ID: 10, Name: "sub#1", Role: models.RoleDamage, Rank: 3500, IsSubstitution: true, RelativePlayer: 2},
				{ID: 2, Name: "original#1", Role: models.RoleDamage, Rank: 2000, RelativePlayer: 2},
				{ID: 3, Name: "dps#other", Role: models.RoleDamage, Rank: 2600, RelativePlayer: 3},
			},
			want: []string{"original#1", "sub#1", "dps#other"},
		},
		{
			name: "UnknownRoleSinksLast",
			players: []models.Player{
				{ID: 1, Name: "flex#1", Role: "flex", Rank: 5000},
				{ID: 2, Name: "heal#1", Role: models.RoleSupport, Rank: 2000},
				{ID: 3, Name: "tank#1", Role: models.RoleTank, Rank: 1000},
			},
			want: []string{"tank#1", "heal#1", "flex#1"},
		},
		{
			name: "EqualRankKeepsInputOrder",
			players: []models.Player{
				{ID: 1, Name: "first#1", Role: models.RoleTank, Rank: 2500},
				{ID: 2, Name: "second#1", Role: models.RoleTank, Rank: 2500},
			},
			want: []string{"first#1", "second#1"},
		},
		{
			name:    "Empty",
			players: nil,
			want:    []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := names(OrderPlayers(tt.players))
			if len(got) != len(tt.want) {
				t.Fatalf("got %d players, want %d", len(got), len(tt.want))
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("position %d: got %q, want %q (full order %v)", i, got[i], tt.want[i], got)
				}
			}
		})
	}
}

func TestOrderPlayersDoesNotMutateInput(t *testing.T) {
	players := []models.Player{
		{ID: 1, Name: "heal#1", Role: models.RoleSupport},
		{ID: 2, Name: "tank#1", Role: models.RoleTank},
	}
	OrderPlayers(players)
	if players[0].Name != "heal#1" {
		t.Errorf("input slice was reordered: %v", names(players))
	}
}

func TestOrderAnalyticsPlayers(t *testing.T) {
	players := []models.PlayerAnalytics{
		{Player: models.Player{ID: 1, Name: "heal#1", Role: models.RoleSupport, Rank: 3000}, Points: 1.5},
		{Player: models.Player{ID: 2, Name: "tank#1", Role: models.RoleTank, Rank: 2000}, Points: -0.5},
		{Player: models.Player{ID: 3, Name: "dps#1", Role: models.RoleDamage, Rank: 2500}, Points: 0},
	}
	got := OrderAnalyticsPlayers(players)
	want := []string{"tank#1", "dps#1", "heal#1"}
	for i := range want {
		if got[i].Name != want[i] {
			t.Fatalf("position %d: got %q, want %q", i, got[i].Name, want[i])
		}
	}
	// Analytics fields must travel with their player
	if got[0].Points != -0.5 {
		t.Errorf("tank row lost its points: got %v", got[0].Points)
	}
}
