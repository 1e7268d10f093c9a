package utils

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePagination(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		wantLimit  uint64
		wantOffset uint64
	}{
		{name: "defaults", query: "", wantLimit: 20, wantOffset: 0},
		{name: "explicit limit and page", query: "limit=10&page=3", wantLimit: 10, wantOffset: 20},
		{name: "limit capped at maximum", query: "limit=500", wantLimit: 100, wantOffset: 0},
		{name: "zero limit falls back to default", query: "limit=0", wantLimit: 20, wantOffset: 0},
		{name: "garbage values ignored", query: "limit=abc&page=xyz", wantLimit: 20, wantOffset: 0},
		{name: "zero page treated as first", query: "page=0", wantLimit: 20, wantOffset: 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			q, err := url.ParseQuery(tc.query)
			assert.NoError(t, err)

			limit, offset := ParsePagination(q)
			assert.Equal(t, tc.wantLimit, limit)
			assert.Equal(t, tc.wantOffset, offset)
		})
	}
}
