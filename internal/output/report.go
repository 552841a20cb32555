// Package output renders history reports and writes them to their
// destination.
package output

import (
	"time"

	"github.com/masmgr/changenotes/internal/diff"
	"github.com/masmgr/changenotes/internal/git"
)

// Compile-time interface conformance checks.
var (
	_ ReportWriter = (*MarkdownWriter)(nil)
	_ ReportWriter = (*ConsoleWriter)(nil)
)

// Format represents the output format type.
type Format string

const (
	FormatMarkdown Format = "markdown"
	FormatConsole  Format = "console"
)

// Options controls output behavior.
type Options struct {
	Format     Format
	OutputPath string // empty means stdout
}

// Entry is one commit's contribution to the report: the commit, its
// normalized timestamp, and the parsed per-file changes.
type Entry struct {
	Commit git.CommitInfo
	When   time.Time
	Files  []diff.FileDiff
}

// HistoryReport is the assembled report model.
type HistoryReport struct {
	RepoPath    string
	Title       string
	Zone        *time.Location
	GeneratedAt time.Time
	Entries     []Entry
}

// ReportWriter writes a history report.
type ReportWriter interface {
	Write(report *HistoryReport, options Options) error
}

// NewReportWriter creates a report writer for the specified format.
func NewReportWriter(format Format) ReportWriter {
	switch format {
	case FormatConsole:
		return &ConsoleWriter{}
	default:
		return &MarkdownWriter{}
	}
}
