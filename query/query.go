// Package query models the parameters of a seekd search request.
//
// There are two ways to access parameters:
//
//  1. The high-level, typed accessors for the well-known catalog
//     (SetHitsPerPage, Facets, SetInsideBoundingBox, ...).
//  2. The low-level, untyped Set/Unset/Get, for parameters the SDK
//     does not model yet.
//
// Internally every parameter is a string in a single flat map; the
// typed accessors serialize into that map and parse back out of it.
// Build renders the map as a canonical URL query fragment and Parse
// inverts it.
package query

import (
	"fmt"
	"maps"
)

// Query is the parameter set for one search request. The zero value
// is not usable; construct with New, NewWithText, Parse or Clone.
//
// A Query is owned by a single goroutine. Clone before sharing across
// concurrency boundaries.
type Query struct {
	params map[string]string
}

// New returns an empty query.
func New() *Query {
	return &Query{params: make(map[string]string)}
}

// NewWithText returns a query seeded with full-text query text.
func NewWithText(text string) *Query {
	return New().SetText(text)
}

// Clone returns an independent deep copy. Mutating the copy never
// affects the original.
func (q *Query) Clone() *Query {
	return &Query{params: maps.Clone(q.params)}
}

// Equal reports whether both queries hold identical parameter maps.
// Equality ignores how the parameters were set; only the stored wire
// strings count.
func (q *Query) Equal(other *Query) bool {
	if q == nil || other == nil {
		return q == other
	}
	return maps.Equal(q.params, other.params)
}

// Set stores value under name verbatim. No validation happens at this
// layer; the typed accessors are the validating surface.
func (q *Query) Set(name, value string) *Query {
	q.params[name] = value
	return q
}

// Unset removes name. Removing an absent name is a no-op.
func (q *Query) Unset(name string) *Query {
	delete(q.params, name)
	return q
}

// Get returns the stored wire string for name.
func (q *Query) Get(name string) (string, bool) {
	v, ok := q.params[name]
	return v, ok
}

// Map returns a copy of the stored parameters.
func (q *Query) Map() map[string]string {
	return maps.Clone(q.params)
}

// Len returns the number of stored parameters.
func (q *Query) Len() int {
	return len(q.params)
}

// String returns a debug representation. Use Build for the raw URL
// query fragment.
func (q *Query) String() string {
	return fmt.Sprintf("Query{%s}", q.Build())
}
