// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package classify decides whether author affiliations denote commercial
// (pharmaceutical/biotech) organizations and extracts company names from
// them.
package classify

import (
	"regexp"
	"strings"
)

// Heuristic patterns applied after the keyword checks. All operate on the
// lowercased affiliation.
var (
	corporateSuffixRe = regexp.MustCompile(`\b(inc\.?|corp\.?|ltd\.?|llc|gmbh|ag|sa|plc)\b`)
	namedCompanyRe    = regexp.MustCompile(`\b\w+\s+(pharmaceuticals?|biotech|biotechnology)\b`)
	companyPhraseRe   = regexp.MustCompile(`\b(drug|pharmaceutical|biotech)\s+company\b`)

	segmentSplitRe = regexp.MustCompile(`[,;.]`)
	edgePunctRe    = regexp.MustCompile(`^\W+|\W+$`)
	deptPrefixRe   = regexp.MustCompile(`(?i)^(department of|dept of|division of)\s+`)
)

// Classifier classifies affiliation strings against a keyword set.
type Classifier struct {
	keywords Keywords
}

// New returns a Classifier using the given keyword sets.
func New(kw Keywords) *Classifier {
	return &Classifier{keywords: kw}
}

// IsNonAcademic reports whether the affiliation denotes a commercial
// organization. Academic keywords are checked first and veto any
// commercial signal: "Dept of Pharmaceutical Sciences, Example University"
// must classify academic. The check order is load-bearing; downstream
// filtering depends on it.
func (c *Classifier) IsNonAcademic(affiliation string) bool {
	if affiliation == "" {
		return false
	}

	lower := strings.ToLower(affiliation)

	for _, kw := range c.keywords.Academic {
		if strings.Contains(lower, kw) {
			return false
		}
	}

	for _, kw := range c.keywords.Commercial {
		if strings.Contains(lower, kw) {
			return true
		}
	}

	// Fallback heuristics for corporate names the keyword sets miss.
	return corporateSuffixRe.MatchString(lower) ||
		namedCompanyRe.MatchString(lower) ||
		companyPhraseRe.MatchString(lower)
}

// ExtractCompanies pulls cleaned company names out of an affiliation
// string. The affiliation is split on commas, semicolons, and periods;
// segments containing an academic keyword are skipped, segments containing
// a commercial keyword are cleaned and kept in original order.
// De-duplication across a paper's authors is the caller's responsibility.
func (c *Classifier) ExtractCompanies(affiliation string) []string {
	if affiliation == "" {
		return nil
	}

	var companies []string
	for _, part := range segmentSplitRe.Split(affiliation, -1) {
		part = strings.TrimSpace(part)
		lower := strings.ToLower(part)

		if containsAny(lower, c.keywords.Academic) {
			continue
		}
		if !containsAny(lower, c.keywords.Commercial) {
			continue
		}
		if company := cleanCompanyName(part); company != "" {
			companies = append(companies, company)
		}
	}
	return companies
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}

// cleanCompanyName strips surrounding punctuation and a leading
// "department of"-style prefix. If cleaning empties the string, the
// trimmed original is returned instead.
func cleanCompanyName(segment string) string {
	cleaned := strings.TrimSpace(segment)
	cleaned = edgePunctRe.ReplaceAllString(cleaned, "")
	cleaned = deptPrefixRe.ReplaceAllString(cleaned, "")
	cleaned = strings.TrimSpace(cleaned)
	if cleaned == "" {
		return strings.TrimSpace(segment)
	}
	return cleaned
}
