// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package eutils queries the NCBI E-utilities API: esearch for PMID lists
// and efetch for full article metadata.
package eutils

import (
	"context"
	"encoding/xml"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/pdiddy/pubmed-papers/internal/httputil"
	"github.com/pdiddy/pubmed-papers/pkg/types"
)

// E-utilities endpoints. Declared as vars so tests can substitute an
// httptest server.
var (
	esearchBase = "https://eutils.ncbi.nlm.nih.gov/entrez/eutils/esearch.fcgi"
	efetchBase  = "https://eutils.ncbi.nlm.nih.gov/entrez/eutils/efetch.fcgi"
)

const db = "pubmed"

// Client is a paced HTTP client for the E-utilities API. All requests go
// through a shared rate limiter so the process as a whole stays under
// NCBI's request ceiling.
type Client struct {
	pacer *httputil.Pacer
	cfg   types.ClientConfig
}

// NewClient returns a Client using cfg. Zero-valued settings fall back
// to the defaults from types.DefaultClientConfig, so a zero ClientConfig
// still paces its requests. A negative RequestInterval or BatchPause
// disables that delay entirely; tests use this to run without sleeps.
func NewClient(cfg types.ClientConfig) *Client {
	def := types.DefaultClientConfig()
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = def.BatchSize
	}
	if cfg.SearchTimeout <= 0 {
		cfg.SearchTimeout = def.SearchTimeout
	}
	if cfg.FetchTimeout <= 0 {
		cfg.FetchTimeout = def.FetchTimeout
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = def.UserAgent
	}
	if cfg.RequestInterval == 0 {
		cfg.RequestInterval = def.RequestInterval
	}
	if cfg.BatchPause == 0 {
		cfg.BatchPause = def.BatchPause
	}
	return &Client{
		pacer: httputil.NewPacer(&http.Client{}, cfg.RequestInterval),
		cfg:   cfg,
	}
}

// esearch XML response.
type esearchResult struct {
	IDs []string `xml:"IdList>Id"`
}

// Search runs an esearch query and returns matching PMIDs, capped at
// maxResults. An empty result list is a valid outcome, not an error.
func (c *Client) Search(ctx context.Context, query string, maxResults int) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.cfg.SearchTimeout)
	defer cancel()

	params := url.Values{
		"db":      {db},
		"term":    {query},
		"retmax":  {strconv.Itoa(maxResults)},
		"retmode": {"xml"},
	}
	c.addIdentity(params)

	resp, err := c.get(ctx, esearchBase, params)
	if err != nil {
		return nil, fmt.Errorf("PubMed search failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("PubMed search failed: HTTP %d", resp.StatusCode)
	}

	var result esearchResult
	if err := xml.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("parsing PubMed search response: %w", err)
	}

	var pmids []string
	for _, id := range result.IDs {
		if id != "" {
			pmids = append(pmids, id)
		}
	}
	return pmids, nil
}

// addIdentity attaches the optional contact email and API key parameters.
func (c *Client) addIdentity(params url.Values) {
	if c.cfg.Email != "" {
		params.Set("email", c.cfg.Email)
	}
	if c.cfg.APIKey != "" {
		params.Set("api_key", c.cfg.APIKey)
	}
}

// get issues a paced GET request against base with the given parameters.
func (c *Client) get(ctx context.Context, base string, params url.Values) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, base+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", c.cfg.UserAgent)
	return c.pacer.Do(req)
}
