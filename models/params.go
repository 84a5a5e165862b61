package models

import (
	"net/http"
	"strconv"

	"gorm.io/gorm"
)

// ListParams carries pagination and filtering for list endpoints.
// IncludeDeleted makes the soft-delete scope explicit on every read path
// instead of relying on the ORM default; handlers restrict it to admins.
type ListParams struct {
	Page           int
	Limit          int
	IncludeDeleted bool
	Filters        map[string]string
}

// ParseListParams reads page/limit/include_deleted plus whitelisted filter
// columns from the query string.
func ParseListParams(r *http.Request, filterable ...string) ListParams {
	p := ListParams{Page: 1, Limit: 50, Filters: map[string]string{}}

	q := r.URL.Query()
	if v, err := strconv.Atoi(q.Get("page")); err == nil && v > 0 {
		p.Page = v
	}
	if v, err := strconv.Atoi(q.Get("limit")); err == nil && v > 0 && v <= 500 {
		p.Limit = v
	}
	p.IncludeDeleted = q.Get("include_deleted") == "true"

	for _, col := range filterable {
		if v := q.Get(col); v != "" {
			p.Filters[col] = v
		}
	}
	return p
}

func (p ListParams) Offset() int {
	return (p.Page - 1) * p.Limit
}

// Scope applies the deleted-row visibility and filters to a query.
func (p ListParams) Scope(db *gorm.DB) *gorm.DB {
	if p.IncludeDeleted {
		db = db.Unscoped()
	}
	for col, v := range p.Filters {
		db = db.Where(col+" = ?", v)
	}
	return db
}
