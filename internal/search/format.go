// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/paper-proxy/pkg/types"
)

// FormatTable writes a human-readable result table to w.
func FormatTable(res types.SearchResult, w io.Writer) {
	if len(res.Papers) == 0 {
		fmt.Fprintln(w, "No results found.")
		return
	}

	fmt.Fprintf(w, "%-4s  %-16s  %-60s  %-20s  %-4s  %s\n",
		"#", "ID", "Title", "Authors", "Year", "Category")
	fmt.Fprintln(w, strings.Repeat("-", 120))

	for i, p := range res.Papers {
		fmt.Fprintf(w, "%-4d  %-16s  %-60s  %-20s  %-4s  %s\n",
			res.Metadata.StartIndex+i+1,
			truncate(p.ID, 16),
			truncate(collapseSpace(p.Title), 60),
			formatAuthors(p.AuthorNames()),
			year(p.Published),
			p.PrimaryCategory.Term)
	}

	fmt.Fprintf(w, "\n%d of %d results", len(res.Papers), res.Metadata.TotalResults)
	if res.Metadata.StartIndex > 0 {
		fmt.Fprintf(w, " (starting at %d)", res.Metadata.StartIndex)
	}
	fmt.Fprintln(w)
}

// FormatJSON writes the result as indented JSON to w.
func FormatJSON(res types.SearchResult, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(res)
}

// FormatYAML writes the result as YAML to w.
func FormatYAML(res types.SearchResult, w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(res); err != nil {
		return fmt.Errorf("encoding yaml: %w", err)
	}
	return enc.Close()
}

func formatAuthors(authors []string) string {
	switch len(authors) {
	case 0:
		return ""
	case 1:
		return truncate(authors[0], 20)
	default:
		return truncate(authors[0], 14) + " et al."
	}
}

// year returns the leading four digits of an ISO-8601 timestamp.
func year(ts string) string {
	if len(ts) < 4 {
		return ""
	}
	return ts[:4]
}

func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
