// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"encoding/json"
	"errors"
	"fmt"
	"slices"
)

// ErrInvalidQuery is returned when inbound search parameters fail validation.
var ErrInvalidQuery = errors.New("invalid query")

// SortBy selects the catalog field results are ordered by.
type SortBy string

const (
	SortRelevance       SortBy = "relevance"
	SortLastUpdatedDate SortBy = "lastUpdatedDate"
	SortSubmittedDate   SortBy = "submittedDate"
)

// Valid reports whether s is one of the catalog's sort fields.
func (s SortBy) Valid() bool {
	switch s {
	case SortRelevance, SortLastUpdatedDate, SortSubmittedDate:
		return true
	}
	return false
}

// SortOrder selects ascending or descending result order.
type SortOrder string

const (
	SortAscending  SortOrder = "ascending"
	SortDescending SortOrder = "descending"
)

// Valid reports whether o is a known sort order.
func (o SortOrder) Valid() bool {
	return o == SortAscending || o == SortDescending
}

const (
	DefaultStart      = 0
	DefaultMaxResults = 10
)

// QueryParams holds the validated parameters of one catalog search. Values
// are immutable once built by NewQueryParams: the ID list is copied in and
// copied out.
type QueryParams struct {
	searchQuery string
	idList      []string
	start       int
	maxResults  int
	sortBy      SortBy
	sortOrder   SortOrder
}

// NewQueryParams validates its arguments and returns a QueryParams. Errors
// wrap ErrInvalidQuery and name the offending field.
func NewQueryParams(searchQuery string, idList []string, start, maxResults int, sortBy SortBy, sortOrder SortOrder) (QueryParams, error) {
	if start < 0 {
		return QueryParams{}, fmt.Errorf("%w: start must be non-negative, got %d", ErrInvalidQuery, start)
	}
	if maxResults <= 0 {
		return QueryParams{}, fmt.Errorf("%w: max_results must be positive, got %d", ErrInvalidQuery, maxResults)
	}
	if !sortBy.Valid() {
		return QueryParams{}, fmt.Errorf("%w: unknown sortBy %q", ErrInvalidQuery, sortBy)
	}
	if !sortOrder.Valid() {
		return QueryParams{}, fmt.Errorf("%w: unknown sortOrder %q", ErrInvalidQuery, sortOrder)
	}

	var ids []string
	for _, id := range idList {
		if id != "" {
			ids = append(ids, id)
		}
	}

	return QueryParams{
		searchQuery: searchQuery,
		idList:      ids,
		start:       start,
		maxResults:  maxResults,
		sortBy:      sortBy,
		sortOrder:   sortOrder,
	}, nil
}

// DefaultQueryParams returns an empty search with the default paging and sort.
func DefaultQueryParams() QueryParams {
	return QueryParams{
		start:      DefaultStart,
		maxResults: DefaultMaxResults,
		sortBy:     SortRelevance,
		sortOrder:  SortDescending,
	}
}

// ByID returns the parameters for a single-paper lookup.
func ByID(id string) (QueryParams, error) {
	if id == "" {
		return QueryParams{}, fmt.Errorf("%w: empty paper id", ErrInvalidQuery)
	}
	return NewQueryParams("", []string{id}, 0, 1, SortRelevance, SortDescending)
}

func (q QueryParams) SearchQuery() string  { return q.searchQuery }
func (q QueryParams) IDList() []string     { return slices.Clone(q.idList) }
func (q QueryParams) Start() int           { return q.start }
func (q QueryParams) MaxResults() int      { return q.maxResults }
func (q QueryParams) SortBy() SortBy       { return q.sortBy }
func (q QueryParams) SortOrder() SortOrder { return q.sortOrder }

// queryKey is the serialized form of QueryParams. encoding/json writes map
// keys in sorted order, which CacheKey relies on.
type queryKey map[string]any

// CacheKey returns a canonical serialization of q with field names in sorted
// order. Two parameter sets describing the same request produce the same key.
func (q QueryParams) CacheKey() string {
	ids := q.idList
	if ids == nil {
		ids = []string{}
	}
	k := queryKey{
		"search_query": q.searchQuery,
		"id_list":      ids,
		"start":        q.start,
		"max_results":  q.maxResults,
		"sortBy":       string(q.sortBy),
		"sortOrder":    string(q.sortOrder),
	}
	data, err := json.Marshal(k)
	if err != nil {
		// Only strings and ints are marshaled; this cannot fail.
		panic(fmt.Sprintf("marshaling cache key: %v", err))
	}
	return string(data)
}

// MarshalJSON writes the parameters using the catalog's field names.
func (q QueryParams) MarshalJSON() ([]byte, error) {
	return []byte(q.CacheKey()), nil
}

// String implements fmt.Stringer for log output.
func (q QueryParams) String() string { return q.CacheKey() }
