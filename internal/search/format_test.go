// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/paper-proxy/pkg/types"
)

func sampleResult() types.SearchResult {
	return types.SearchResult{
		Papers: []types.Paper{
			{
				ID:              "2301.07041v1",
				Title:           "Paper A\n  with a wrapped title",
				Published:       "2023-01-17T18:00:00Z",
				Authors:         []types.Author{{Name: "Smith"}},
				PrimaryCategory: types.Category{Term: "cs.LG"},
			},
			{
				ID:              "2206.00001v2",
				Title:           "Paper B",
				Published:       "2022-06-01T00:00:00Z",
				Authors:         []types.Author{{Name: "Jones"}, {Name: "Doe"}},
				PrimaryCategory: types.Category{Term: "hep-th"},
			},
		},
		Metadata: types.SearchMetadata{TotalResults: 1234, StartIndex: 10, ItemsPerPage: 2},
	}
}

// --- Output formatting ---

func TestFormatTable(t *testing.T) {
	var buf bytes.Buffer
	FormatTable(sampleResult(), &buf)
	s := buf.String()

	assert.Contains(t, s, "Paper A with a wrapped title")
	assert.Contains(t, s, "Paper B")
	assert.Contains(t, s, "Jones et al.")
	assert.Contains(t, s, "2023")
	assert.Contains(t, s, "hep-th")
	assert.Contains(t, s, "2 of 1234 results (starting at 10)")

	lines := strings.Split(s, "\n")
	require.GreaterOrEqual(t, len(lines), 4)
	assert.True(t, strings.HasPrefix(lines[2], "11 "), "rows are numbered from the page start")
}

func TestFormatTableEmpty(t *testing.T) {
	var buf bytes.Buffer
	FormatTable(types.SearchResult{}, &buf)
	assert.Contains(t, buf.String(), "No results")
}

func TestFormatJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, FormatJSON(sampleResult(), &buf))

	var parsed types.SearchResult
	require.NoError(t, json.Unmarshal(buf.Bytes(), &parsed))
	require.Len(t, parsed.Papers, 2)
	assert.Equal(t, "2301.07041v1", parsed.Papers[0].ID)
	assert.Equal(t, 1234, parsed.Metadata.TotalResults)
}

func TestFormatYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, FormatYAML(sampleResult(), &buf))

	assert.Contains(t, buf.String(), "total_results: 1234")

	var parsed types.SearchResult
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &parsed))
	require.Len(t, parsed.Papers, 2)
	assert.Equal(t, "hep-th", parsed.Papers[1].PrimaryCategory.Term)
}

// --- Helper functions ---

func TestFormatAuthors(t *testing.T) {
	tests := []struct {
		name    string
		authors []string
		want    string
	}{
		{"none", nil, ""},
		{"one", []string{"Ada Lovelace"}, "Ada Lovelace"},
		{"many", []string{"Ada Lovelace", "Charles Babbage"}, "Ada Lovelace et al."},
		{"long single", []string{"Bartholomew Featherstonehaugh"}, "Bartholomew Feath..."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, formatAuthors(tt.authors))
		})
	}
}

func TestYear(t *testing.T) {
	assert.Equal(t, "2023", year("2023-01-17T18:00:00Z"))
	assert.Equal(t, "", year("23"))
}

// --- Query files ---

func TestQueryFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "search.yaml")
	q, err := types.NewQueryParams("all:electron", []string{"2301.07041"}, 10, 2, types.SortSubmittedDate, types.SortAscending)
	require.NoError(t, err)

	require.NoError(t, WriteQueryFile(path, q, sampleResult()))

	qf, err := ReadQueryFile(path)
	require.NoError(t, err)
	assert.False(t, qf.Summary.Timestamp.IsZero())

	got, err := qf.Query.ToQuery()
	require.NoError(t, err)
	assert.Equal(t, q.CacheKey(), got.CacheKey())

	res := qf.Result()
	assert.Equal(t, sampleResult().Metadata, res.Metadata)
	require.Len(t, res.Papers, 2)
	assert.Equal(t, "Jones", res.Papers[1].Authors[0].Name)
}

func TestStoredQueryDefaults(t *testing.T) {
	q, err := StoredQuery{SearchQuery: "ti:attention"}.ToQuery()
	require.NoError(t, err)
	assert.Equal(t, types.DefaultMaxResults, q.MaxResults())
	assert.Equal(t, types.SortRelevance, q.SortBy())
	assert.Equal(t, types.SortDescending, q.SortOrder())
}

func TestStoredQueryInvalid(t *testing.T) {
	_, err := StoredQuery{SortBy: "popularity"}.ToQuery()
	assert.ErrorIs(t, err, types.ErrInvalidQuery)
}

func TestReadQueryFileMissing(t *testing.T) {
	_, err := ReadQueryFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
