package cheatdex

import "context"

// HelpOutput is the raw text captured from one help acquisition strategy,
// tagged with the strategy that produced it.
type HelpOutput struct {
	Text   string
	Source string
}

// HelpStrategy attempts to capture help text for a locally installed
// command. Strategies are tried in sequence; the first one producing text
// that passes the validity heuristic wins.
type HelpStrategy interface {
	// Name identifies the strategy in diagnostics (e.g., "--help", "man").
	Name() string

	// Attempt runs the strategy. It blocks for the duration of the
	// external subprocess. Failures are recoverable: the caller advances
	// to the next strategy and keeps the distinct reason of each attempt.
	Attempt(ctx context.Context, command string) (*HelpOutput, error)
}

// Candidate is a learnable command discovered on the local system.
type Candidate struct {
	Name        string
	Description string
}

// CandidateLister enumerates commands that can be learned in a batch, e.g.
// from a manual section listing or a PATH scan.
type CandidateLister interface {
	// Source identifies the listing mechanism (e.g., "man", "path").
	Source() string

	// List returns the candidates. Order is implementation-defined but
	// stable for a given system state.
	List(ctx context.Context) ([]Candidate, error)
}
