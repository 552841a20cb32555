package output

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/fatih/color"

	"github.com/masmgr/changenotes/internal/diff"
	"github.com/masmgr/changenotes/internal/timestamp"
)

// ConsoleWriter prints a compact per-commit summary to stdout. It is a
// preview surface; the Markdown document remains the report format.
type ConsoleWriter struct{}

// Write outputs the report summary to the console.
func (w *ConsoleWriter) Write(report *HistoryReport, options Options) error {
	zone := report.Zone
	if zone == nil {
		zone = timestamp.DefaultZone()
	}

	title := report.Title
	if title == "" {
		title = DefaultTitle
	}
	color.Green(title)
	fmt.Printf("Repository: %s\n", report.RepoPath)
	fmt.Printf("Commits: %d\n\n", len(report.Entries))

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "Hash\tDate\tFiles\t+/-\tMessage")

	for _, entry := range report.Entries {
		added, removed := countLines(entry.Files)
		fmt.Fprintf(tw, "%s\t%s\t%d\t+%d/-%d\t%s\n",
			entry.Commit.ShortSHA(),
			timestamp.Normalize(entry.When, zone).Format("2006-01-02 15:04"),
			len(entry.Files), added, removed, entry.Commit.Message)
	}

	return tw.Flush()
}

func countLines(files []diff.FileDiff) (added, removed int) {
	for _, fd := range files {
		for _, c := range fd.Changes {
			if c.Kind == diff.LineAdded {
				added++
			} else {
				removed++
			}
		}
	}
	return added, removed
}
