// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

// Exit codes for the get-papers-list CLI.
const (
	ExitSuccess     = 0   // success, including zero papers left after filtering
	ExitError       = 1   // general failure, including zero raw search matches
	ExitInterrupted = 130 // cancelled by SIGINT
)
