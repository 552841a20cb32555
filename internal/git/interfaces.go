package git

import (
	"context"
	"errors"
)

// ErrSourceUnavailable indicates the history source cannot be queried
// at all (not a repository, no access). Fatal: no report is written.
var ErrSourceUnavailable = errors.New("history source unavailable")

// HistorySource supplies the ordered (newest-first) commit sequence of
// a repository, each commit with its raw metadata and raw unified-diff
// text. This abstraction allows for easier testing and alternative
// implementations.
type HistorySource interface {
	// ReadCommits returns all commits reachable from the configured
	// branch head, newest first.
	ReadCommits(ctx context.Context) ([]CommitRecord, error)
}

// Compile-time interface conformance checks.
var (
	_ HistorySource = (*HistoryReader)(nil)
	_ HistorySource = (*CLIReader)(nil)
	_ HistorySource = (*MockHistorySource)(nil)
)
