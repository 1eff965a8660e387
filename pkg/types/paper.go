// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the get-papers-list pipeline.
package types

// Author is a single entry from a paper's author list.
type Author struct {
	// Name is "LastName, ForeName", or "LastName, Initials" when no
	// forename is present.
	Name string `json:"name" yaml:"name"`

	// Affiliation is the raw affiliation text. Multiple affiliation
	// segments are joined with "; ". May be empty.
	Affiliation string `json:"affiliation" yaml:"affiliation"`
}

// Paper holds the normalized metadata for one fetched PubMed record.
type Paper struct {
	// PubmedID is the PMID. Always present; records without one are
	// dropped during parsing.
	PubmedID string `json:"pubmed_id" yaml:"pubmed_id"`

	// Title is the article title, or "No title available".
	Title string `json:"title" yaml:"title"`

	// PublicationDate is "YYYY", "YYYY-MM", "YYYY-MM-DD", or "Unknown".
	PublicationDate string `json:"publication_date" yaml:"publication_date"`

	// Authors lists the paper authors in source order.
	Authors []Author `json:"authors" yaml:"authors"`

	// CorrespondingEmail is the first email address found in any author
	// affiliation or the abstract. Empty when none was found.
	CorrespondingEmail string `json:"corresponding_email,omitempty" yaml:"corresponding_email,omitempty"`

	// NonAcademicAuthors and CompanyAffiliations are populated by the
	// affiliation filter; both are empty until a paper passes filtering.
	NonAcademicAuthors  []string `json:"non_academic_authors,omitempty" yaml:"non_academic_authors,omitempty"`
	CompanyAffiliations []string `json:"company_affiliations,omitempty" yaml:"company_affiliations,omitempty"`
}
