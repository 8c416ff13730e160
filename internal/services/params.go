// Package services contains the typed wrappers around backend endpoints.
// Each service translates console operations into HTTP calls through the
// shared client and hands back plain models or *api.Error values.
package services

import (
	"net/url"
	"strconv"
)

// ListParams are the common pagination/search parameters for list endpoints.
type ListParams struct {
	Page   int
	Limit  int
	Search string
}

func (p ListParams) query() url.Values {
	q := url.Values{}
	if p.Page > 0 {
		q.Set("page", strconv.Itoa(p.Page))
	}
	if p.Limit > 0 {
		q.Set("limit", strconv.Itoa(p.Limit))
	}
	if p.Search != "" {
		q.Set("search", p.Search)
	}
	return q
}
