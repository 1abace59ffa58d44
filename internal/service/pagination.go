package service

import (
	apperrors "worklink-backend/internal/errors"
)

// Pagination is the envelope returned alongside every paginated list
type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
}

const (
	defaultPage  = 1
	defaultLimit = 10
	maxLimit     = 100
)

// normalizePageLimit applies the default page/limit and caps the page size
func normalizePageLimit(page, limit int) (int, int) {
	if page < 1 {
		page = defaultPage
	}
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	return page, limit
}

// newPagination builds the pagination envelope for a page slice
func newPagination(page, limit int, total int64) Pagination {
	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return Pagination{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
	}
}

// applicationSortClauses whitelists caller-supplied sort fields for the
// application ledgers. A leading '-' means descending.
var applicationSortClauses = map[string]string{
	"":            "applied_at DESC",
	"applied_at":  "applied_at ASC",
	"-applied_at": "applied_at DESC",
	"status":      "status ASC",
	"-status":     "status DESC",
}

// resolveApplicationSort maps a sort query parameter onto a safe ORDER BY
// clause, rejecting anything outside the whitelist
func resolveApplicationSort(sort string) (string, error) {
	clause, ok := applicationSortClauses[sort]
	if !ok {
		return "", apperrors.NewValidationError("sort", "must be one of applied_at, -applied_at, status, -status")
	}
	return clause, nil
}
