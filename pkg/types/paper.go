// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the data structures shared by the catalog client,
// the cache, the HTTP handlers and the CLI.
package types

// Author is one paper author as listed by the catalog.
type Author struct {
	// Name is the author's display name.
	Name string `json:"name" yaml:"name"`

	// Affiliation is the optional institution from the arxiv namespace.
	Affiliation string `json:"affiliation,omitempty" yaml:"affiliation,omitempty"`
}

// Link is one Atom link attached to a paper entry (abstract page, PDF, DOI).
type Link struct {
	Href  string `json:"href" yaml:"href"`
	Rel   string `json:"rel,omitempty" yaml:"rel,omitempty"`
	Title string `json:"title,omitempty" yaml:"title,omitempty"`
	Type  string `json:"type,omitempty" yaml:"type,omitempty"`
}

// Category is a subject classification (e.g. "cs.LG").
type Category struct {
	Term      string `json:"term" yaml:"term"`
	Scheme    string `json:"scheme,omitempty" yaml:"scheme,omitempty"`
	IsPrimary bool   `json:"isPrimary" yaml:"is_primary"`
}

// Paper is one catalog entry.
type Paper struct {
	// ID is the catalog identifier, the last path segment of the entry id
	// (e.g. "2301.07041v1").
	ID string `json:"id" yaml:"id"`

	Title   string `json:"title" yaml:"title"`
	Summary string `json:"summary" yaml:"summary"`

	// Published and Updated are ISO-8601 timestamps exactly as the catalog
	// sent them.
	Published string `json:"published" yaml:"published"`
	Updated   string `json:"updated" yaml:"updated"`

	Authors    []Author   `json:"authors" yaml:"authors"`
	Links      []Link     `json:"links" yaml:"links"`
	Categories []Category `json:"categories" yaml:"categories"`

	// PrimaryCategory is the category flagged primary, or the first category
	// when none is flagged.
	PrimaryCategory Category `json:"primaryCategory" yaml:"primary_category"`

	Comment    string `json:"comment,omitempty" yaml:"comment,omitempty"`
	JournalRef string `json:"journalRef,omitempty" yaml:"journal_ref,omitempty"`
	DOI        string `json:"doi,omitempty" yaml:"doi,omitempty"`
}

// PrimaryCategoryOf picks the first category flagged primary, falling back
// to the first category. ok is false when categories is empty.
func PrimaryCategoryOf(categories []Category) (Category, bool) {
	if len(categories) == 0 {
		return Category{}, false
	}
	for _, c := range categories {
		if c.IsPrimary {
			return c, true
		}
	}
	return categories[0], true
}

// AuthorNames returns the author names in source order.
func (p Paper) AuthorNames() []string {
	names := make([]string, 0, len(p.Authors))
	for _, a := range p.Authors {
		names = append(names, a.Name)
	}
	return names
}
