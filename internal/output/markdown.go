package output

import (
	"fmt"
	"strings"

	"github.com/masmgr/changenotes/internal/diff"
	"github.com/masmgr/changenotes/internal/timestamp"
)

// DefaultTitle is the document heading used when none is configured.
const DefaultTitle = "Change Notes"

// MarkdownWriter writes the history report as the Markdown document.
type MarkdownWriter struct{}

// Write renders the full document and writes it to the configured
// destination.
func (w *MarkdownWriter) Write(report *HistoryReport, options Options) error {
	out, file, err := openOutputWriter(options.OutputPath)
	if err != nil {
		return err
	}
	if file != nil {
		defer file.Close()
	}

	if _, err := fmt.Fprint(out, RenderDocument(report)); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

// RenderDocument assembles the complete Markdown document: the title,
// then each commit block in order, separated by a horizontal rule.
func RenderDocument(report *HistoryReport) string {
	title := report.Title
	if title == "" {
		title = DefaultTitle
	}

	var b strings.Builder
	b.WriteString("# " + title + "\n\n")

	for i, entry := range report.Entries {
		if i > 0 {
			b.WriteString("---\n\n")
		}
		b.WriteString(RenderEntry(entry, report))
	}

	return strings.TrimRight(b.String(), "\n") + "\n"
}

// RenderEntry renders one commit's Markdown block: the message heading,
// the hash/timestamp line, then one diff fence per changed file. A
// commit with no retained files still gets its heading block; it simply
// has no file sections.
func RenderEntry(entry Entry, report *HistoryReport) string {
	zone := report.Zone
	if zone == nil {
		zone = timestamp.DefaultZone()
	}

	var b strings.Builder

	fmt.Fprintf(&b, "### %s\n", entry.Commit.Message)
	fmt.Fprintf(&b, "*%s — %s*\n\n",
		entry.Commit.ShortSHA(), timestamp.Format(entry.When, zone))

	for _, fd := range entry.Files {
		fmt.Fprintf(&b, "**File:** `%s`\n\n", fd.Path)
		b.WriteString("```diff\n")
		for _, c := range fd.Changes {
			b.WriteString(renderLine(c))
		}
		b.WriteString("```\n\n")
	}

	return b.String()
}

// renderLine formats a single change: "- L<old>: <text>" for removed
// lines, "+ L<new>: <text>" for added lines. Text is emitted verbatim.
func renderLine(c diff.LineChange) string {
	sign := "+"
	if c.Kind == diff.LineRemoved {
		sign = "-"
	}
	return fmt.Sprintf("%s L%d: %s\n", sign, c.Number, c.Text)
}
