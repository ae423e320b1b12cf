// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// SearchMetadata describes one page of catalog results.
type SearchMetadata struct {
	// TotalResults is the catalog-reported total, independent of page size.
	TotalResults int `json:"totalResults" yaml:"total_results"`

	// StartIndex echoes the request's start.
	StartIndex int `json:"startIndex" yaml:"start_index"`

	// ItemsPerPage echoes the request's max_results.
	ItemsPerPage int `json:"itemsPerPage" yaml:"items_per_page"`
}

// SearchResult is the outcome of one successful fetch and parse. Cached
// values are shared between callers and must not be mutated.
type SearchResult struct {
	Papers   []Paper        `json:"papers" yaml:"papers"`
	Metadata SearchMetadata `json:"metadata" yaml:"metadata"`
}
