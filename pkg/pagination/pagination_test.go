// Copyright (c) 2026 Stratus. All rights reserved.
// Author: weather.platform@ardgroup.dev

package pagination_test

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ardgroup/stratus/pkg/pagination"
)

/*
TestFromRequest verifies query parsing and clamping of abusive values.
*/
func TestFromRequest(t *testing.T) {
	tests := []struct {
		name      string
		url       string
		wantPage  int
		wantLimit int
	}{
		{"defaults", "/locations", 1, 20},
		{"explicit", "/locations?page=3&limit=50", 3, 50},
		{"zero_page", "/locations?page=0", 1, 20},
		{"negative_page", "/locations?page=-2", 1, 20},
		{"excessive_limit", "/locations?limit=10000", 1, 20},
		{"garbage", "/locations?page=abc&limit=xyz", 1, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := httptest.NewRequest("GET", tt.url, nil)
			params := pagination.FromRequest(request)

			assert.Equal(t, tt.wantPage, params.Page)
			assert.Equal(t, tt.wantLimit, params.Limit)
		})
	}
}

/*
TestOffset verifies the page-to-offset arithmetic.
*/
func TestOffset(t *testing.T) {
	assert.Equal(t, 0, pagination.Params{Page: 1, Limit: 20}.Offset())
	assert.Equal(t, 20, pagination.Params{Page: 2, Limit: 20}.Offset())
	assert.Equal(t, 0, pagination.Params{Page: 0, Limit: 20}.Offset())
}

/*
TestNewMeta verifies total page calculation, including partial last pages.
*/
func TestNewMeta(t *testing.T) {
	meta := pagination.NewMeta(2, 20, 45)

	assert.Equal(t, 2, meta.Page)
	assert.Equal(t, 45, meta.Total)
	assert.Equal(t, 3, meta.TotalPages)

	empty := pagination.NewMeta(1, 20, 0)
	assert.Equal(t, 0, empty.TotalPages)
}
