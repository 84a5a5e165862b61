package models

import (
	"net/http/httptest"
	"testing"
)

func TestParseListParams(t *testing.T) {
	tests := []struct {
		name       string
		url        string
		filterable []string
		want       ListParams
	}{
		{
			"defaults",
			"/api/v1/machines",
			nil,
			ListParams{Page: 1, Limit: 50, Filters: map[string]string{}},
		},
		{
			"explicit page and limit",
			"/api/v1/machines?page=3&limit=25",
			nil,
			ListParams{Page: 3, Limit: 25, Filters: map[string]string{}},
		},
		{
			"limit capped",
			"/api/v1/machines?limit=10000",
			nil,
			ListParams{Page: 1, Limit: 50, Filters: map[string]string{}},
		},
		{
			"negative page ignored",
			"/api/v1/machines?page=-1",
			nil,
			ListParams{Page: 1, Limit: 50, Filters: map[string]string{}},
		},
		{
			"include deleted",
			"/api/v1/machines?include_deleted=true",
			nil,
			ListParams{Page: 1, Limit: 50, IncludeDeleted: true, Filters: map[string]string{}},
		},
		{
			"whitelisted filter picked up",
			"/api/v1/machines?status=active&rogue=x",
			[]string{"status"},
			ListParams{Page: 1, Limit: 50, Filters: map[string]string{"status": "active"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", tt.url, nil)
			got := ParseListParams(r, tt.filterable...)
			if got.Page != tt.want.Page || got.Limit != tt.want.Limit ||
				got.IncludeDeleted != tt.want.IncludeDeleted {
				t.Errorf("ParseListParams(%q) = %+v, want %+v", tt.url, got, tt.want)
			}
			if len(got.Filters) != len(tt.want.Filters) {
				t.Fatalf("filters = %v, want %v", got.Filters, tt.want.Filters)
			}
			for k, v := range tt.want.Filters {
				if got.Filters[k] != v {
					t.Errorf("filter %q = %q, want %q", k, got.Filters[k], v)
				}
			}
		})
	}
}

func TestOffset(t *testing.T) {
	p := ListParams{Page: 3, Limit: 25}
	if got := p.Offset(); got != 50 {
		t.Errorf("Offset() = %d, want 50", got)
	}
}
