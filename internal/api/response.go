// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package api

import "github.com/pdiddy/paper-proxy/pkg/types"

// SearchResponse is the body of GET /api/papers.
type SearchResponse struct {
	Papers   []PaperSummary   `json:"papers"`
	Metadata MetadataResponse `json:"metadata"`
}

// PaperSummary is the condensed paper shape returned by search.
type PaperSummary struct {
	ID        string        `json:"id"`
	Title     string        `json:"title"`
	Summary   string        `json:"summary"`
	Authors   []AuthorName  `json:"authors"`
	Published string        `json:"published"`
	Links     []LinkSummary `json:"links"`
}

type AuthorName struct {
	Name string `json:"name"`
}

type LinkSummary struct {
	Href  string `json:"href"`
	Title string `json:"title"`
	Type  string `json:"type"`
}

// MetadataResponse describes the returned page.
type MetadataResponse struct {
	TotalResults int `json:"total_results"`
	StartIndex   int `json:"start_index"`
	ItemsPerPage int `json:"items_per_page"`
}

// MessageResponse is the body of GET /api/test.
type MessageResponse struct {
	Message string `json:"message"`
}

func newSearchResponse(res types.SearchResult) SearchResponse {
	papers := make([]PaperSummary, 0, len(res.Papers))
	for _, p := range res.Papers {
		authors := make([]AuthorName, 0, len(p.Authors))
		for _, a := range p.Authors {
			authors = append(authors, AuthorName{Name: a.Name})
		}
		links := make([]LinkSummary, 0, len(p.Links))
		for _, l := range p.Links {
			links = append(links, LinkSummary{Href: l.Href, Title: l.Title, Type: l.Type})
		}
		papers = append(papers, PaperSummary{
			ID:        p.ID,
			Title:     p.Title,
			Summary:   p.Summary,
			Authors:   authors,
			Published: p.Published,
			Links:     links,
		})
	}
	return SearchResponse{
		Papers: papers,
		Metadata: MetadataResponse{
			TotalResults: res.Metadata.TotalResults,
			StartIndex:   res.Metadata.StartIndex,
			ItemsPerPage: res.Metadata.ItemsPerPage,
		},
	}
}
