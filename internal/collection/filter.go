package collection

import "strings"

// Matches reports whether a record passes the screen filter: the status
// filter is "all" or equals the record's status, and the query is empty
// or a case-insensitive substring of at least one searchable field.
// Substring, not word-boundary, to match the backend dashboard's
// behaviour exactly.
func Matches(statusFilter, query, status string, fields ...string) bool {
	if statusFilter != StatusAll && status != statusFilter {
		return false
	}
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}

// Filter returns the records passing Matches, preserving order. fields
// yields the per-entity searchable display fields for a record. Pure
// and client-local: filtering never triggers network I/O.
func Filter[R Record](items []R, statusFilter, query string, fields func(R) []string) []R {
	out := make([]R, 0, len(items))
	for _, r := range items {
		if Matches(statusFilter, query, r.RecordStatus(), fields(r)...) {
			out = append(out, r)
		}
	}
	return out
}
