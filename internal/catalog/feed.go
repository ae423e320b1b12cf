// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"bytes"
	"encoding/xml"
	"errors"
	"io"
	"strconv"
	"strings"

	"github.com/pdiddy/paper-proxy/pkg/types"
)

// Feed is one parsed page of catalog results.
type Feed struct {
	// TotalResults is the catalog-reported number of matches.
	TotalResults int

	// StartIndex and ItemsPerPage are the values the catalog echoed back, or
	// -1 when absent. Clients see the request's values instead.
	StartIndex   int
	ItemsPerPage int

	// Papers are the entries in document order.
	Papers []types.Paper
}

// Atom feed XML structures. Tags are namespace-qualified: Atom
// (http://www.w3.org/2005/Atom), OpenSearch (http://a9.com/-/spec/opensearch/1.1/)
// and the arxiv extension namespace (http://arxiv.org/schemas/atom).
type atomFeed struct {
	XMLName      xml.Name    `xml:"http://www.w3.org/2005/Atom feed"`
	TotalResults *string     `xml:"http://a9.com/-/spec/opensearch/1.1/ totalResults"`
	StartIndex   string      `xml:"http://a9.com/-/spec/opensearch/1.1/ startIndex"`
	ItemsPerPage string      `xml:"http://a9.com/-/spec/opensearch/1.1/ itemsPerPage"`
	Entries      []atomEntry `xml:"http://www.w3.org/2005/Atom entry"`
}

type atomEntry struct {
	ID         string         `xml:"http://www.w3.org/2005/Atom id"`
	Title      string         `xml:"http://www.w3.org/2005/Atom title"`
	Summary    string         `xml:"http://www.w3.org/2005/Atom summary"`
	Published  string         `xml:"http://www.w3.org/2005/Atom published"`
	Updated    string         `xml:"http://www.w3.org/2005/Atom updated"`
	Authors    []atomAuthor   `xml:"http://www.w3.org/2005/Atom author"`
	Links      []atomLink     `xml:"http://www.w3.org/2005/Atom link"`
	Categories []atomCategory `xml:"http://www.w3.org/2005/Atom category"`
	Comment    string         `xml:"http://arxiv.org/schemas/atom comment"`
	JournalRef string         `xml:"http://arxiv.org/schemas/atom journal_ref"`
	DOI        string         `xml:"http://arxiv.org/schemas/atom doi"`
}

type atomAuthor struct {
	Name        string `xml:"http://www.w3.org/2005/Atom name"`
	Affiliation string `xml:"http://arxiv.org/schemas/atom affiliation"`
}

type atomLink struct {
	Href  string `xml:"href,attr"`
	Rel   string `xml:"rel,attr"`
	Title string `xml:"title,attr"`
	Type  string `xml:"type,attr"`
}

type atomCategory struct {
	Term    string `xml:"term,attr"`
	Scheme  string `xml:"scheme,attr"`
	Primary string `xml:"http://arxiv.org/schemas/atom primary,attr"`
}

// ParseFeed decodes one catalog response. Any entry missing a required
// field fails the whole parse; partial results are never returned. All
// failures wrap ErrMalformedResponse.
func ParseFeed(r io.Reader) (Feed, error) {
	var raw atomFeed
	dec := xml.NewDecoder(r)
	if err := dec.Decode(&raw); err != nil {
		return Feed{}, malformed("decoding feed: %v", err)
	}
	if err := checkTrailing(dec); err != nil {
		return Feed{}, err
	}

	if raw.TotalResults == nil {
		return Feed{}, malformed("missing opensearch:totalResults")
	}
	total, err := strconv.Atoi(strings.TrimSpace(*raw.TotalResults))
	if err != nil || total < 0 {
		return Feed{}, malformed("invalid opensearch:totalResults %q", *raw.TotalResults)
	}

	feed := Feed{
		TotalResults: total,
		StartIndex:   optionalInt(raw.StartIndex),
		ItemsPerPage: optionalInt(raw.ItemsPerPage),
		Papers:       make([]types.Paper, 0, len(raw.Entries)),
	}
	for i, entry := range raw.Entries {
		p, err := entry.toPaper()
		if err != nil {
			return Feed{}, malformed("entry %d: %v", i, err)
		}
		feed.Papers = append(feed.Papers, p)
	}
	return feed, nil
}

// checkTrailing reads the rest of the document after the root element.
// Only whitespace, comments and processing instructions may follow it.
func checkTrailing(dec *xml.Decoder) error {
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return malformed("after root element: %v", err)
		}
		switch t := tok.(type) {
		case xml.Comment, xml.ProcInst:
		case xml.CharData:
			if len(bytes.TrimSpace(t)) > 0 {
				return malformed("text after root element")
			}
		default:
			return malformed("content after root element")
		}
	}
}

// requiredFieldError names a missing required field within an entry.
type requiredFieldError string

func (e requiredFieldError) Error() string { return "missing " + string(e) }

func (e atomEntry) toPaper() (types.Paper, error) {
	id := extractPaperID(e.ID)
	if id == "" {
		return types.Paper{}, requiredFieldError("id")
	}
	title := strings.TrimSpace(e.Title)
	if title == "" {
		return types.Paper{}, requiredFieldError("title")
	}
	summary := strings.TrimSpace(e.Summary)
	if summary == "" {
		return types.Paper{}, requiredFieldError("summary")
	}
	if strings.TrimSpace(e.Published) == "" {
		return types.Paper{}, requiredFieldError("published")
	}
	if strings.TrimSpace(e.Updated) == "" {
		return types.Paper{}, requiredFieldError("updated")
	}

	p := types.Paper{
		ID:         id,
		Title:      title,
		Summary:    summary,
		Published:  e.Published,
		Updated:    e.Updated,
		Authors:    make([]types.Author, 0, len(e.Authors)),
		Links:      make([]types.Link, 0, len(e.Links)),
		Categories: make([]types.Category, 0, len(e.Categories)),
		Comment:    e.Comment,
		JournalRef: e.JournalRef,
		DOI:        e.DOI,
	}

	for _, a := range e.Authors {
		if strings.TrimSpace(a.Name) == "" {
			return types.Paper{}, requiredFieldError("author name")
		}
		p.Authors = append(p.Authors, types.Author{
			Name:        a.Name,
			Affiliation: a.Affiliation,
		})
	}

	for _, l := range e.Links {
		if l.Href == "" {
			return types.Paper{}, requiredFieldError("link href")
		}
		p.Links = append(p.Links, types.Link(l))
	}

	for _, c := range e.Categories {
		if c.Term == "" {
			return types.Paper{}, requiredFieldError("category term")
		}
		p.Categories = append(p.Categories, types.Category{
			Term:      c.Term,
			Scheme:    c.Scheme,
			IsPrimary: c.Primary == "true",
		})
	}

	primary, ok := types.PrimaryCategoryOf(p.Categories)
	if !ok {
		return types.Paper{}, requiredFieldError("category")
	}
	p.PrimaryCategory = primary

	return p, nil
}

// extractPaperID returns the last "/"-delimited segment of the entry's id
// (e.g. "http://arxiv.org/abs/2301.07041v1" → "2301.07041v1").
func extractPaperID(idURL string) string {
	idURL = strings.TrimSpace(idURL)
	if i := strings.LastIndex(idURL, "/"); i >= 0 {
		return idURL[i+1:]
	}
	return idURL
}

func optionalInt(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return -1
	}
	return n
}
