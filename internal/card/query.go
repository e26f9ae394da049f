package card

import (
	"strings"
)

// Query describes a single card lookup. It is an immutable value: search
// parameter changes produce a new Query, never mutate one in place.
type Query struct {
	// Fuzzy is the name search term. Always present and non-empty.
	Fuzzy string

	// Set is an optional 3-5 letter set code.
	Set string

	// Collector is an optional collector number within the set. Together
	// with Set it selects an exact printing and takes precedence over the
	// fuzzy name.
	Collector string
}

// Exact reports whether the query selects an exact printing.
func (q Query) Exact() bool {
	return q.Set != "" && q.Collector != ""
}

// CacheKey derives the normalized cache identity for the query. Queries
// differing only in letter case or surrounding/internal whitespace produce
// the same key. Set and collector number are appended as secondary
// components only when present.
func (q Query) CacheKey() string {
	key := normalizeValue(q.Fuzzy)
	key += appendKey(q.Set)
	key += appendKey(q.Collector)
	return key
}

// normalizeValue lowercases, trims, and collapses internal whitespace runs
// to a single underscore.
func normalizeValue(value string) string {
	fields := strings.Fields(strings.ToLower(value))
	return strings.Join(fields, "_")
}

// appendKey normalizes a secondary key component, preceded by a dash, or
// returns an empty string when the component is absent.
func appendKey(value string) string {
	if value == "" {
		return ""
	}
	return "-" + normalizeValue(value)
}
