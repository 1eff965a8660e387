// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package eutils

import (
	"encoding/xml"
	"testing"
)

func decodeArticles(t *testing.T, doc string) []pubmedArticle {
	t.Helper()
	var set articleSet
	if err := xml.Unmarshal([]byte(doc), &set); err != nil {
		t.Fatalf("unmarshal fixture: %v", err)
	}
	return set.Articles
}

const sampleArticle = `
<PubmedArticleSet>
  <PubmedArticle>
    <MedlineCitation>
      <PMID Version="1">36000001</PMID>
      <Article>
        <Journal>
          <JournalIssue>
            <PubDate><Year>2023</Year><Month>May</Month><Day>14</Day></PubDate>
          </JournalIssue>
        </Journal>
        <ArticleTitle>Targeted therapy in oncology</ArticleTitle>
        <Abstract>
          <AbstractText>Background text. Contact: corresponding@acmepharma.com for data.</AbstractText>
        </Abstract>
        <AuthorList>
          <Author>
            <LastName>Smith</LastName>
            <ForeName>Jane</ForeName>
            <Initials>J</Initials>
            <AffiliationInfo><Affiliation>Example University, Boston, MA</Affiliation></AffiliationInfo>
          </Author>
          <Author>
            <LastName>Doe</LastName>
            <Initials>JR</Initials>
            <AffiliationInfo><Affiliation>Acme Pharma Inc., San Diego, CA</Affiliation></AffiliationInfo>
            <AffiliationInfo><Affiliation>Second Street Labs Ltd.</Affiliation></AffiliationInfo>
          </Author>
          <Author>
            <CollectiveName>The Study Group</CollectiveName>
          </Author>
        </AuthorList>
      </Article>
    </MedlineCitation>
  </PubmedArticle>
</PubmedArticleSet>`

func TestExtractPaper(t *testing.T) {
	articles := decodeArticles(t, sampleArticle)
	if len(articles) != 1 {
		t.Fatalf("decoded %d articles, want 1", len(articles))
	}

	paper, ok := extractPaper(articles[0])
	if !ok {
		t.Fatal("extractPaper returned ok=false")
	}

	if paper.PubmedID != "36000001" {
		t.Errorf("PubmedID = %q, want 36000001", paper.PubmedID)
	}
	if paper.Title != "Targeted therapy in oncology" {
		t.Errorf("Title = %q", paper.Title)
	}
	if paper.PublicationDate != "2023-05-14" {
		t.Errorf("PublicationDate = %q, want 2023-05-14", paper.PublicationDate)
	}

	// The collective-name entry has no last name or forename and is skipped.
	if len(paper.Authors) != 2 {
		t.Fatalf("len(Authors) = %d, want 2", len(paper.Authors))
	}
	if paper.Authors[0].Name != "Smith, Jane" {
		t.Errorf("Authors[0].Name = %q, want \"Smith, Jane\"", paper.Authors[0].Name)
	}
	// Initials are the fallback when no forename is present.
	if paper.Authors[1].Name != "Doe, JR" {
		t.Errorf("Authors[1].Name = %q, want \"Doe, JR\"", paper.Authors[1].Name)
	}
	if want := "Acme Pharma Inc., San Diego, CA; Second Street Labs Ltd."; paper.Authors[1].Affiliation != want {
		t.Errorf("Authors[1].Affiliation = %q, want %q", paper.Authors[1].Affiliation, want)
	}
}

func TestExtractPaperNoPMID(t *testing.T) {
	const doc = `
<PubmedArticleSet>
  <PubmedArticle>
    <MedlineCitation>
      <Article><ArticleTitle>Orphan record</ArticleTitle></Article>
    </MedlineCitation>
  </PubmedArticle>
</PubmedArticleSet>`

	articles := decodeArticles(t, doc)
	if _, ok := extractPaper(articles[0]); ok {
		t.Error("extractPaper accepted a record without a PMID")
	}
}

func TestExtractPaperDefaults(t *testing.T) {
	const doc = `
<PubmedArticleSet>
  <PubmedArticle>
    <MedlineCitation><PMID>42</PMID><Article/></MedlineCitation>
  </PubmedArticle>
</PubmedArticleSet>`

	articles := decodeArticles(t, doc)
	paper, ok := extractPaper(articles[0])
	if !ok {
		t.Fatal("extractPaper returned ok=false")
	}
	if paper.Title != "No title available" {
		t.Errorf("Title = %q, want sentinel", paper.Title)
	}
	if paper.PublicationDate != "Unknown" {
		t.Errorf("PublicationDate = %q, want Unknown", paper.PublicationDate)
	}
	if paper.CorrespondingEmail != "" {
		t.Errorf("CorrespondingEmail = %q, want empty", paper.CorrespondingEmail)
	}
}

// --- dates ---

func TestExtractDate(t *testing.T) {
	tests := []struct {
		name string
		cite medlineCitation
		want string
	}{
		{
			name: "year only",
			cite: medlineCitation{Article: articleRecord{PubDate: &articleDate{Year: "2023"}}},
			want: "2023",
		},
		{
			name: "numeric month and day zero-padded",
			cite: medlineCitation{Article: articleRecord{PubDate: &articleDate{Year: "2023", Month: "5", Day: "4"}}},
			want: "2023-05-04",
		},
		{
			name: "month name abbreviation",
			cite: medlineCitation{Article: articleRecord{PubDate: &articleDate{Year: "2023", Month: "Mar"}}},
			want: "2023-03",
		},
		{
			name: "full month name resolved by prefix",
			cite: medlineCitation{Article: articleRecord{PubDate: &articleDate{Year: "2022", Month: "December", Day: "31"}}},
			want: "2022-12-31",
		},
		{
			name: "unrecognized month passes through",
			cite: medlineCitation{Article: articleRecord{PubDate: &articleDate{Year: "2021", Month: "Spring"}}},
			want: "2021-Spring",
		},
		{
			name: "non-numeric day omitted",
			cite: medlineCitation{Article: articleRecord{PubDate: &articleDate{Year: "2023", Month: "06", Day: "1st"}}},
			want: "2023-06",
		},
		{
			name: "yearless pub date falls through to article date",
			cite: medlineCitation{Article: articleRecord{
				PubDate:     &articleDate{Month: "Jan"},
				ArticleDate: &articleDate{Year: "2020", Month: "01", Day: "02"},
			}},
			want: "2020-01-02",
		},
		{
			name: "date completed as third fallback",
			cite: medlineCitation{DateCompleted: &articleDate{Year: "2019", Month: "11"}},
			want: "2019-11",
		},
		{
			name: "date revised as last fallback",
			cite: medlineCitation{DateRevised: &articleDate{Year: "2018"}},
			want: "2018",
		},
		{
			name: "no year anywhere",
			cite: medlineCitation{},
			want: "Unknown",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := extractDate(tt.cite); got != tt.want {
				t.Errorf("extractDate() = %q, want %q", got, tt.want)
			}
		})
	}
}

// --- email ---

func TestExtractEmailFromAffiliation(t *testing.T) {
	a := articleRecord{
		Authors: []xmlAuthor{
			{LastName: "Smith", Affiliations: []string{"Example University, Boston"}},
			{LastName: "Doe", Affiliations: []string{"Acme Pharma Inc. jdoe@acmepharma.com"}},
		},
		Abstract: []string{"Contact other@abstract.org for details."},
	}

	// Affiliations win over the abstract, scanned in author order.
	if got := extractEmail(a); got != "jdoe@acmepharma.com" {
		t.Errorf("extractEmail = %q, want jdoe@acmepharma.com", got)
	}
}

func TestExtractEmailFallsBackToAbstract(t *testing.T) {
	articles := decodeArticles(t, sampleArticle)
	paper, _ := extractPaper(articles[0])
	if paper.CorrespondingEmail != "corresponding@acmepharma.com" {
		t.Errorf("CorrespondingEmail = %q, want corresponding@acmepharma.com", paper.CorrespondingEmail)
	}
}

func TestExtractEmailNone(t *testing.T) {
	a := articleRecord{
		Authors:  []xmlAuthor{{LastName: "Smith", Affiliations: []string{"No contact here"}}},
		Abstract: []string{"Nothing at all."},
	}
	if got := extractEmail(a); got != "" {
		t.Errorf("extractEmail = %q, want empty", got)
	}
}
