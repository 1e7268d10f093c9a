package utils

import (
	"net/url"
	"strconv"
)

const (
	defaultLimit = 20
	maxLimit     = 100
)

// ParsePagination reads limit/page query parameters and converts them to
// limit/offset for repository list queries.
func ParsePagination(query url.Values) (limit, offset uint64) {
	limit = defaultLimit

	if raw := query.Get("limit"); raw != "" {
		if v, err := strconv.ParseUint(raw, 10, 64); err == nil && v > 0 {
			limit = v
		}
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	page := uint64(1)
	if raw := query.Get("page"); raw != "" {
		if v, err := strconv.ParseUint(raw, 10, 64); err == nil && v > 0 {
			page = v
		}
	}

	offset = (page - 1) * limit
	return limit, offset
}
