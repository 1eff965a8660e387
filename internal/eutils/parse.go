// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package eutils

import (
	"regexp"
	"strings"

	"github.com/pdiddy/pubmed-papers/pkg/types"
)

// efetch XML structures (PubmedArticleSet).
type articleSet struct {
	Articles []pubmedArticle `xml:"PubmedArticle"`
}

type pubmedArticle struct {
	Citation medlineCitation `xml:"MedlineCitation"`
}

type medlineCitation struct {
	PMID          string        `xml:"PMID"`
	DateCompleted *articleDate  `xml:"DateCompleted"`
	DateRevised   *articleDate  `xml:"DateRevised"`
	Article       articleRecord `xml:"Article"`
}

type articleRecord struct {
	Title       string       `xml:"ArticleTitle"`
	PubDate     *articleDate `xml:"Journal>JournalIssue>PubDate"`
	ArticleDate *articleDate `xml:"ArticleDate"`
	Authors     []xmlAuthor  `xml:"AuthorList>Author"`
	Abstract    []string     `xml:"Abstract>AbstractText"`
}

type articleDate struct {
	Year  string `xml:"Year"`
	Month string `xml:"Month"`
	Day   string `xml:"Day"`
}

type xmlAuthor struct {
	LastName     string   `xml:"LastName"`
	ForeName     string   `xml:"ForeName"`
	Initials     string   `xml:"Initials"`
	Affiliations []string `xml:"AffiliationInfo>Affiliation"`
}

const (
	noTitle     = "No title available"
	unknownDate = "Unknown"
)

// emailRe matches the first plausible email address in free text.
var emailRe = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)

// monthNames maps three-letter month abbreviations to zero-padded numbers.
var monthNames = map[string]string{
	"jan": "01", "feb": "02", "mar": "03", "apr": "04",
	"may": "05", "jun": "06", "jul": "07", "aug": "08",
	"sep": "09", "oct": "10", "nov": "11", "dec": "12",
}

// extractPaper converts one PubmedArticle into a Paper. Articles without
// a PMID are not representable and return ok=false; the caller skips them
// without aborting the batch.
func extractPaper(a pubmedArticle) (*types.Paper, bool) {
	if a.Citation.PMID == "" {
		return nil, false
	}

	title := a.Citation.Article.Title
	if title == "" {
		title = noTitle
	}

	return &types.Paper{
		PubmedID:           a.Citation.PMID,
		Title:              title,
		PublicationDate:    extractDate(a.Citation),
		Authors:            extractAuthors(a.Citation.Article.Authors),
		CorrespondingEmail: extractEmail(a.Citation.Article),
	}, true
}

// extractDate composes "YYYY[-MM[-DD]]" from the first date structure
// that carries a year, trying PubDate, ArticleDate, DateCompleted, and
// DateRevised in that order. A structure without a year is skipped, not
// treated as terminal. No year anywhere yields "Unknown".
func extractDate(c medlineCitation) string {
	candidates := []*articleDate{
		c.Article.PubDate,
		c.Article.ArticleDate,
		c.DateCompleted,
		c.DateRevised,
	}

	for _, d := range candidates {
		if d == nil || d.Year == "" {
			continue
		}
		parts := []string{d.Year}
		if d.Month != "" {
			parts = append(parts, monthNumber(d.Month))
		}
		if isDigits(d.Day) {
			parts = append(parts, zeroPad(d.Day))
		}
		return strings.Join(parts, "-")
	}
	return unknownDate
}

// monthNumber normalizes a month value: numeric months are zero-padded,
// month names are resolved via their three-letter abbreviation, and
// unrecognized names pass through as-is.
func monthNumber(month string) string {
	if isDigits(month) {
		return zeroPad(month)
	}
	key := strings.ToLower(month)
	if len(key) > 3 {
		key = key[:3]
	}
	if n, ok := monthNames[key]; ok {
		return n
	}
	return month
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func zeroPad(s string) string {
	if len(s) == 1 {
		return "0" + s
	}
	return s
}

// extractAuthors builds the ordered author list. Names are
// "LastName, ForeName", falling back to initials when the forename is
// absent; entries with neither a last name nor a forename/initials are
// skipped. Affiliation segments are joined with "; ".
func extractAuthors(authors []xmlAuthor) []types.Author {
	var out []types.Author
	for _, a := range authors {
		var parts []string
		if a.LastName != "" {
			parts = append(parts, a.LastName)
		}
		switch {
		case a.ForeName != "":
			parts = append(parts, a.ForeName)
		case a.Initials != "":
			parts = append(parts, a.Initials)
		}
		if len(parts) == 0 {
			continue
		}

		out = append(out, types.Author{
			Name:        strings.Join(parts, ", "),
			Affiliation: strings.Join(a.Affiliations, "; "),
		})
	}
	return out
}

// extractEmail returns the first email address found scanning every
// author affiliation in order, then the abstract text. Empty when none
// matched.
func extractEmail(a articleRecord) string {
	for _, author := range a.Authors {
		for _, affiliation := range author.Affiliations {
			if email := emailRe.FindString(affiliation); email != "" {
				return email
			}
		}
	}
	for _, text := range a.Abstract {
		if email := emailRe.FindString(text); email != "" {
			return email
		}
	}
	return ""
}
