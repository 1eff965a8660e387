// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package eutils

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/pdiddy/pubmed-papers/internal/httputil"
	"github.com/pdiddy/pubmed-papers/pkg/types"
)

// FetchDetails retrieves full metadata for the given PMIDs in batches of
// cfg.BatchSize per efetch request, pausing cfg.BatchPause between
// successive batches. Results are concatenated in the original PMID
// order. Any transport or parse failure fails the whole call; there is no
// partial-batch retry. Progress lines go to w.
func (c *Client) FetchDetails(ctx context.Context, pmids []string, w io.Writer) ([]*types.Paper, error) {
	if len(pmids) == 0 {
		return nil, nil
	}

	batches := (len(pmids) + c.cfg.BatchSize - 1) / c.cfg.BatchSize

	var papers []*types.Paper
	for i := 0; i < len(pmids); i += c.cfg.BatchSize {
		end := min(i+c.cfg.BatchSize, len(pmids))

		if i > 0 {
			if err := httputil.Pause(ctx, c.cfg.BatchPause); err != nil {
				return nil, err
			}
		}

		fmt.Fprintf(w, "fetching batch %d/%d (%d papers)\n", i/c.cfg.BatchSize+1, batches, end-i)

		batch, err := c.fetchBatch(ctx, pmids[i:end], w)
		if err != nil {
			return nil, err
		}
		papers = append(papers, batch...)
	}
	return papers, nil
}

// fetchBatch retrieves and parses one efetch request worth of articles.
func (c *Client) fetchBatch(ctx context.Context, pmids []string, w io.Writer) ([]*types.Paper, error) {
	ctx, cancel := context.WithTimeout(ctx, c.cfg.FetchTimeout)
	defer cancel()

	params := url.Values{
		"db":      {db},
		"id":      {strings.Join(pmids, ",")},
		"retmode": {"xml"},
		"rettype": {"abstract"},
	}
	c.addIdentity(params)

	resp, err := c.get(ctx, efetchBase, params)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch paper details: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to fetch paper details: HTTP %d", resp.StatusCode)
	}

	var set articleSet
	if err := xml.NewDecoder(resp.Body).Decode(&set); err != nil {
		return nil, fmt.Errorf("parsing paper details response: %w", err)
	}

	var papers []*types.Paper
	for _, article := range set.Articles {
		paper, ok := extractPaper(article)
		if !ok {
			fmt.Fprintln(w, "skipping article with no PMID")
			continue
		}
		papers = append(papers, paper)
	}
	return papers, nil
}
