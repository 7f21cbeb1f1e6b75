package aqt

import (
	"net/url"
	"strconv"

	"github.com/CraazzzyyFoxx/anak-tournaments/internal/models"
)

// ListParams carries the backend's list-endpoint query conventions.
// PerPage -1 requests all rows in one page. Entities name related objects
// the backend should embed; Fields scope Query to specific columns.
// List-valued parameters encode as repeated keys.
type ListParams struct {
	Page         int
	PerPage      int
	Sort         string
	Order        models.SortOrder
	Query        string
	Fields       []string
	TournamentID int64
	Entities     []string
	Extra        url.Values
}

func (p ListParams) Encode() url.Values {
	q := url.Values{}
	if p.Page != 0 {
		q.Set("page", strconv.Itoa(p.Page))
	}
	if p.PerPage != 0 {
		q.Set("per_page", strconv.Itoa(p.PerPage))
	}
	if p.Sort != "" {
		q.Set("sort", p.Sort)
	}
	if p.Order != "" {
		q.Set("order", string(p.Order))
	}
	if p.Query != "" {
		q.Set("query", p.Query)
	}
	for _, f := range p.Fields {
		q.Add("fields", f)
	}
	if p.TournamentID != 0 {
		q.Set("tournament_id", strconv.FormatInt(p.TournamentID, 10))
	}
	for _, e := range p.Entities {
		q.Add("entities", e)
	}
	for key, vals := range p.Extra {
		for _, v := range vals {
			q.Add(key, v)
		}
	}
	return q
}
