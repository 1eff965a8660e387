// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report serializes filtered papers into the CSV report.
package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/pdiddy/pubmed-papers/pkg/types"
)

// Headers is the fixed column set, in output order.
var Headers = []string{
	"PubmedID",
	"Title",
	"PublicationDate",
	"Non-academicAuthor(s)",
	"CompanyAffiliation(s)",
	"CorrespondingAuthorEmail",
}

// Write emits the header row followed by one row per paper, preserving
// input order.
func Write(papers []*types.Paper, w io.Writer) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(Headers); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}
	for _, paper := range papers {
		if err := cw.Write(row(paper)); err != nil {
			return fmt.Errorf("writing row for %s: %w", paper.PubmedID, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

func row(p *types.Paper) []string {
	return []string{
		p.PubmedID,
		cleanText(p.Title),
		p.PublicationDate,
		strings.Join(p.NonAcademicAuthors, "; "),
		strings.Join(p.CompanyAffiliations, "; "),
		p.CorrespondingEmail,
	}
}

// cleanText strips null bytes and collapses all whitespace runs
// (including newlines and tabs) to single spaces, so every title occupies
// one logical line. Null bytes go first: a null byte surrounded by spaces
// would otherwise survive the collapse as its own field and leave a
// double space behind.
func cleanText(s string) string {
	s = strings.ReplaceAll(s, "\x00", "")
	return strings.Join(strings.Fields(s), " ")
}
