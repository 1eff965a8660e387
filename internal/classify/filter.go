// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package classify

import (
	"github.com/pdiddy/pubmed-papers/pkg/types"
)

// FilterPapers keeps only papers with at least one non-academic author,
// annotating each kept paper with the matching author names and the
// de-duplicated company affiliations. Papers where no author classifies
// commercial are dropped entirely, never emitted partially. Input order
// is preserved.
func (c *Classifier) FilterPapers(papers []*types.Paper) []*types.Paper {
	var filtered []*types.Paper

	for _, paper := range papers {
		var authors []string
		var companies []string
		seen := make(map[string]bool)

		for _, author := range paper.Authors {
			if !c.IsNonAcademic(author.Affiliation) {
				continue
			}
			authors = append(authors, author.Name)
			for _, company := range c.ExtractCompanies(author.Affiliation) {
				if seen[company] {
					continue
				}
				seen[company] = true
				companies = append(companies, company)
			}
		}

		if len(authors) == 0 {
			continue
		}
		paper.NonAcademicAuthors = authors
		paper.CompanyAffiliations = companies
		filtered = append(filtered, paper)
	}

	return filtered
}
