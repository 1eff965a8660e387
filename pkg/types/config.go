// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// ClientConfig holds settings for the NCBI E-utilities client.
type ClientConfig struct {
	// SearchTimeout is the per-request ceiling for esearch calls (default 30s).
	SearchTimeout time.Duration `json:"search_timeout" yaml:"search_timeout"`

	// FetchTimeout is the per-request ceiling for efetch calls (default 60s).
	FetchTimeout time.Duration `json:"fetch_timeout" yaml:"fetch_timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "get-papers-list/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`

	// Email is attached to every E-utilities request when set. NCBI
	// recommends identifying yourself.
	Email string `json:"email,omitempty" yaml:"email,omitempty"`

	// APIKey raises NCBI's per-second rate allowance when set.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`

	// RequestInterval is the minimum spacing between outbound requests
	// (default 340ms, staying under NCBI's 3 requests/second). Negative
	// disables pacing.
	RequestInterval time.Duration `json:"request_interval" yaml:"request_interval"`

	// BatchPause is the extra pause between successive efetch batches
	// (default 500ms). Negative disables the pause.
	BatchPause time.Duration `json:"batch_pause" yaml:"batch_pause"`

	// BatchSize is the number of PMIDs per efetch request (default 200,
	// the E-utilities maximum).
	BatchSize int `json:"batch_size" yaml:"batch_size"`
}

// DefaultClientConfig returns the client settings used when no overrides
// are supplied.
func DefaultClientConfig() ClientConfig {
	return ClientConfig{
		SearchTimeout:   30 * time.Second,
		FetchTimeout:    60 * time.Second,
		UserAgent:       "get-papers-list/0.1",
		RequestInterval: 340 * time.Millisecond,
		BatchPause:      500 * time.Millisecond,
		BatchSize:       200,
	}
}
