// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/paper-proxy/pkg/types"
)

// QueryFile is the on-disk form of a search and its results. A saved file
// can be reloaded to print the results again or to rerun the same query.
type QueryFile struct {
	Query   StoredQuery   `yaml:"query"`
	Papers  []types.Paper `yaml:"papers"`
	Summary QuerySummary  `yaml:"summary"`
}

// StoredQuery holds the query parameters in a serializable form.
type StoredQuery struct {
	SearchQuery string   `yaml:"search_query,omitempty"`
	IDList      []string `yaml:"id_list,omitempty"`
	Start       int      `yaml:"start"`
	MaxResults  int      `yaml:"max_results"`
	SortBy      string   `yaml:"sort_by"`
	SortOrder   string   `yaml:"sort_order"`
}

// QuerySummary stores the page metadata and when the search ran.
type QuerySummary struct {
	TotalResults int       `yaml:"total_results"`
	StartIndex   int       `yaml:"start_index"`
	ItemsPerPage int       `yaml:"items_per_page"`
	Timestamp    time.Time `yaml:"timestamp"`
}

// NewQueryFile captures q and its result.
func NewQueryFile(q types.QueryParams, res types.SearchResult) QueryFile {
	return QueryFile{
		Query: StoredQuery{
			SearchQuery: q.SearchQuery(),
			IDList:      q.IDList(),
			Start:       q.Start(),
			MaxResults:  q.MaxResults(),
			SortBy:      string(q.SortBy()),
			SortOrder:   string(q.SortOrder()),
		},
		Papers: res.Papers,
		Summary: QuerySummary{
			TotalResults: res.Metadata.TotalResults,
			StartIndex:   res.Metadata.StartIndex,
			ItemsPerPage: res.Metadata.ItemsPerPage,
			Timestamp:    time.Now().UTC(),
		},
	}
}

// WriteQueryFile saves q and its result to a YAML file.
func WriteQueryFile(path string, q types.QueryParams, res types.SearchResult) error {
	qf := NewQueryFile(q, res)
	data, err := yaml.Marshal(&qf)
	if err != nil {
		return fmt.Errorf("marshaling query file: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing query file: %w", err)
	}
	return nil
}

// ReadQueryFile loads a previously saved query file from disk.
func ReadQueryFile(path string) (*QueryFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading query file: %w", err)
	}
	var qf QueryFile
	if err := yaml.Unmarshal(data, &qf); err != nil {
		return nil, fmt.Errorf("parsing query file: %w", err)
	}
	return &qf, nil
}

// ToQuery rebuilds and validates the stored query.
func (s StoredQuery) ToQuery() (types.QueryParams, error) {
	sortBy := types.SortBy(s.SortBy)
	if sortBy == "" {
		sortBy = types.SortRelevance
	}
	sortOrder := types.SortOrder(s.SortOrder)
	if sortOrder == "" {
		sortOrder = types.SortDescending
	}
	maxResults := s.MaxResults
	if maxResults == 0 {
		maxResults = types.DefaultMaxResults
	}
	return types.NewQueryParams(s.SearchQuery, s.IDList, s.Start, maxResults, sortBy, sortOrder)
}

// Result rebuilds the saved search result.
func (qf *QueryFile) Result() types.SearchResult {
	return types.SearchResult{
		Papers: qf.Papers,
		Metadata: types.SearchMetadata{
			TotalResults: qf.Summary.TotalResults,
			StartIndex:   qf.Summary.StartIndex,
			ItemsPerPage: qf.Summary.ItemsPerPage,
		},
	}
}
