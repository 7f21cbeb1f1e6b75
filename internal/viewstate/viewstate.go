// Package viewstate parses and canonicalizes the query parameters the
// site's pages carry: tabs, pagination, sorting and search. Handlers
// parse the incoming URL into a typed state; when parsing had to repair
// anything the state is marked non-canonical and the handler redirects
// to the state's own encoding, so every view has exactly one URL.
package viewstate

import (
	"net/url"
	"strconv"
	"time"

	"github.com/CraazzzyyFoxx/anak-tournaments/internal/models"
)

// SearchDebounce is how long search boxes wait after the last keystroke
// before the query fires. Served to clients in the site config payload.
const SearchDebounce = 300 * time.Millisecond

// Tournament page tabs, in sidebar order.
const (
	TabOverview  = "overview"
	TabTeams     = "teams"
	TabMatches   = "matches"
	TabHeroes    = "heroes"
	TabStandings = "standings"
)

var tournamentTabs = map[string]bool{
	TabOverview:  true,
	TabTeams:     true,
	TabMatches:   true,
	TabHeroes:    true,
	TabStandings: true,
}

// User profile page tabs.
const (
	UserTabOverview     = "overview"
	UserTabTournaments  = "tournaments"
	UserTabEncounters   = "encounters"
	UserTabHeroes       = "heroes"
	UserTabAchievements = "achievements"
)

var userTabs = map[string]bool{
	UserTabOverview:     true,
	UserTabTournaments:  true,
	UserTabEncounters:   true,
	UserTabHeroes:       true,
	UserTabAchievements: true,
}

const (
	DefaultPerPage = 20
	maxPerPage     = 100
)

// ListState is the pagination, sorting and search state of a table page.
type ListState struct {
	Page    int
	PerPage int
	Sort    string
	Order   models.SortOrder
	Query   string

	canonical bool
}

// ParseList reads a table's state from query parameters. Out-of-range
// values are clamped rather than rejected; state that was repaired is
// flagged non-canonical.
func ParseList(q url.Values, defaultSort string, defaultOrder models.SortOrder) ListState {
	s := ListState{
		Page:      1,
		PerPage:   DefaultPerPage,
		Sort:      defaultSort,
		Order:     defaultOrder,
		Query:     q.Get("search"),
		canonical: true,
	}

	if raw := q.Get("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil || page < 1 {
			s.canonical = false
		} else {
			s.Page = page
		}
	}
	if raw := q.Get("per_page"); raw != "" {
		perPage, err := strconv.Atoi(raw)
		switch {
		case err != nil || perPage < 1:
			s.canonical = false
		case perPage > maxPerPage:
			s.PerPage = maxPerPage
			s.canonical = false
		default:
			s.PerPage = perPage
		}
	}
	if raw := q.Get("sort"); raw != "" {
		s.Sort = raw
	}
	if raw := q.Get("order"); raw != "" {
		switch models.SortOrder(raw) {
		case models.SortAsc, models.SortDesc:
			s.Order = models.SortOrder(raw)
		default:
			s.canonical = false
		}
	}
	return s
}

// Canonical reports whether the state round-trips to the URL it was
// parsed from. A false value means the handler should redirect to
// Encode().
func (s ListState) Canonical() bool { return s.canonical }

// Encode renders the state as query parameters, omitting defaults so
// canonical URLs stay short.
func (s ListState) Encode() url.Values {
	q := url.Values{}
	if s.Page > 1 {
		q.Set("page", strconv.Itoa(s.Page))
	}
	if s.PerPage != DefaultPerPage {
		q.Set("per_page", strconv.Itoa(s.PerPage))
	}
	if s.Sort != "" {
		q.Set("sort", s.Sort)
	}
	if s.Order != "" {
		q.Set("order", string(s.Order))
	}
	if s.Query != "" {
		q.Set("search", s.Query)
	}
	return q
}

// TournamentState is the tournament page's tab plus its table state.
type TournamentState struct {
	Tab  string
	List ListState
}

func ParseTournament(q url.Values) TournamentState {
	s := TournamentState{
		Tab:  q.Get("tab"),
		List: ParseList(q, "", ""),
	}
	if !tournamentTabs[s.Tab] {
		s.Tab = TabOverview
		s.List.canonical = false
	}
	return s
}

func (s TournamentState) Canonical() bool { return s.List.canonical }

func (s TournamentState) Encode() url.Values {
	q := s.List.Encode()
	q.Set("tab", s.Tab)
	return q
}

// UserState is the profile page's tab plus its table state.
type UserState struct {
	Tab  string
	List ListState
}

func ParseUser(q url.Values) UserState {
	s := UserState{
		Tab:  q.Get("tab"),
		List: ParseList(q, "", ""),
	}
	if !userTabs[s.Tab] {
		s.Tab = UserTabOverview
		s.List.canonical = false
	}
	return s
}

func (s UserState) Canonical() bool { return s.List.canonical }

func (s UserState) Encode() url.Values {
	q := s.List.Encode()
	q.Set("tab", s.Tab)
	return q
}
