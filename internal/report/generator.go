// Package report orchestrates the history-to-Markdown pipeline:
// read commits, filter, parse diffs, normalize timestamps, render.
package report

import (
	"context"
	"fmt"
	"time"

	"github.com/masmgr/changenotes/internal/diff"
	"github.com/masmgr/changenotes/internal/filter"
	"github.com/masmgr/changenotes/internal/git"
	"github.com/masmgr/changenotes/internal/output"
	"github.com/masmgr/changenotes/internal/timestamp"
)

// Generator assembles a history report from a history source.
type Generator struct {
	Source  git.HistorySource
	Matcher filter.IdentityMatcher // nil = no author restriction
	Limit   int                    // 0 = no limit
	Include []string               // path globs; empty = all files
	Exclude []string
	Zone    *time.Location
	Title   string

	RepoPath string // display only
}

// Generate runs the pipeline and returns the assembled report. Any
// source error or malformed timestamp aborts the whole run; a run that
// matches zero commits succeeds with an empty Entries slice.
func (g *Generator) Generate(ctx context.Context) (*output.HistoryReport, error) {
	records, err := g.Source.ReadCommits(ctx)
	if err != nil {
		return nil, fmt.Errorf("read history: %w", err)
	}

	selected := filter.Select(records, g.Matcher, g.Limit)

	zone := g.Zone
	if zone == nil {
		zone = timestamp.DefaultZone()
	}

	report := &output.HistoryReport{
		RepoPath:    g.RepoPath,
		Title:       g.Title,
		Zone:        zone,
		GeneratedAt: time.Now(),
		Entries:     make([]output.Entry, 0, len(selected)),
	}

	for _, rec := range selected {
		when, err := timestamp.Parse(rec.Commit.Timestamp)
		if err != nil {
			return nil, fmt.Errorf("commit %s: %w", rec.Commit.ShortSHA(), err)
		}

		files := g.retainFiles(diff.Parse(rec.RawDiff))

		report.Entries = append(report.Entries, output.Entry{
			Commit: rec.Commit,
			When:   timestamp.Normalize(when, zone),
			Files:  files,
		})
	}

	return report, nil
}

// GenerateDocument runs the pipeline and renders the final Markdown
// document string.
func (g *Generator) GenerateDocument(ctx context.Context) (string, error) {
	report, err := g.Generate(ctx)
	if err != nil {
		return "", err
	}
	return output.RenderDocument(report), nil
}

func (g *Generator) retainFiles(files []diff.FileDiff) []diff.FileDiff {
	if len(g.Include) == 0 && len(g.Exclude) == 0 {
		return files
	}
	out := make([]diff.FileDiff, 0, len(files))
	for _, fd := range files {
		if matchesFilters(fd.Path, g.Include, g.Exclude) {
			out = append(out, fd)
		}
	}
	return out
}
