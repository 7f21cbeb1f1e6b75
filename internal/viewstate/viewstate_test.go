package viewstate

import (
	"net/url"
	"testing"

	"github.com/CraazzzyyFoxx/anak-tournaments/internal/models"
)

func TestParseListDefaults(t *testing.T) {
	s := ParseList(url.Values{}, "name", models.SortAsc)
	if s.Page != 1 || s.PerPage != DefaultPerPage {
		t.Errorf("defaults = page %d per_page %d", s.Page, s.PerPage)
	}
	if s.Sort != "name" || s.Order != models.SortAsc {
		t.Errorf("sort defaults = %q %q", s.Sort, s.Order)
	}
	if !s.Canonical() {
		t.Error("empty query should be canonical")
	}
}

func TestParseListRepairs(t *testing.T) {
	tests := []struct {
		name      string
		query     url.Values
		wantPage  int
		canonical bool
	}{
		{"ValidPage", url.Values{"page": {"3"}}, 3, true},
		{"ZeroPage", url.Values{"page": {"0"}}, 1, false},
		{"NegativePage", url.Values{"page": {"-2"}}, 1, false},
		{"GarbagePage", url.Values{"page": {"abc"}}, 1, false},
		{"BadOrder", url.Values{"order": {"sideways"}}, 1, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := ParseList(tt.query, "", "")
			if s.Page != tt.wantPage {
				t.Errorf("page = %d, want %d", s.Page, tt.wantPage)
			}
			if s.Canonical() != tt.canonical {
				t.Errorf("canonical = %v, want %v", s.Canonical(), tt.canonical)
			}
		})
	}
}

func TestParseListClampsPerPage(t *testing.T) {
	s := ParseList(url.Values{"per_page": {"5000"}}, "", "")
	if s.PerPage != 100 {
		t.Errorf("per_page = %d, want 100", s.PerPage)
	}
	if s.Canonical() {
		t.Error("clamped state should not be canonical")
	}
}

func TestListStateEncodeOmitsDefaults(t *testing.T) {
	s := ParseList(url.Values{}, "", "")
	if enc := s.Encode(); len(enc) != 0 {
		t.Errorf("default state encoded %v", enc)
	}

	s = ParseList(url.Values{"page": {"2"}, "search": {"rein"}}, "", "")
	enc := s.Encode()
	if enc.Get("page") != "2" || enc.Get("search") != "rein" {
		t.Errorf("encoded %v", enc)
	}
}

func TestListStateRoundTrip(t *testing.T) {
	in := url.Values{"page": {"4"}, "per_page": {"50"}, "sort": {"closeness"}, "order": {"desc"}, "search": {"gamma"}}
	s := ParseList(in, "", "")
	if !s.Canonical() {
		t.Fatal("valid query flagged non-canonical")
	}
	again := ParseList(s.Encode(), "", "")
	if again != s {
		t.Errorf("round trip changed state: %+v -> %+v", s, again)
	}
}

func TestParseTournamentTab(t *testing.T) {
	tests := []struct {
		name      string
		tab       string
		wantTab   string
		canonical bool
	}{
		{"Overview", "overview", TabOverview, true},
		{"Teams", "teams", TabTeams, true},
		{"Standings", "standings", TabStandings, true},
		{"Missing", "", TabOverview, false},
		{"Unknown", "bracket", TabOverview, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := url.Values{}
			if tt.tab != "" {
				q.Set("tab", tt.tab)
			}
			s := ParseTournament(q)
			if s.Tab != tt.wantTab {
				t.Errorf("tab = %q, want %q", s.Tab, tt.wantTab)
			}
			if s.Canonical() != tt.canonical {
				t.Errorf("canonical = %v, want %v", s.Canonical(), tt.canonical)
			}
			if !s.Canonical() {
				if got := s.Encode().Get("tab"); got != tt.wantTab {
					t.Errorf("redirect target tab = %q", got)
				}
			}
		})
	}
}

func TestParseUserTab(t *testing.T) {
	s := ParseUser(url.Values{"tab": {"achievements"}})
	if s.Tab != UserTabAchievements || !s.Canonical() {
		t.Errorf("state = %+v", s)
	}
	s = ParseUser(url.Values{"tab": {"stats"}})
	if s.Tab != UserTabOverview || s.Canonical() {
		t.Errorf("repaired state = %+v", s)
	}
}
