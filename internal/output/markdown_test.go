package output

import (
	"strings"
	"testing"
	"time"

	"github.com/masmgr/changenotes/internal/diff"
	"github.com/masmgr/changenotes/internal/git"
	"github.com/masmgr/changenotes/internal/timestamp"
)

func sampleEntry(t *testing.T) Entry {
	t.Helper()
	when, err := timestamp.Parse("2025-09-02T12:00:00Z")
	if err != nil {
		t.Fatalf("parse timestamp: %v", err)
	}
	return Entry{
		Commit: git.CommitInfo{
			SHA:     "0123456789abcdef0123456789abcdef01234567",
			Author:  git.AuthorInfo{Name: "Alice", Email: "alice@example.com"},
			Message: "Fix parser",
		},
		When: when,
		Files: []diff.FileDiff{
			{
				Path: "main.go",
				Changes: []diff.LineChange{
					{Kind: diff.LineRemoved, Number: 11, Text: "bar"},
					{Kind: diff.LineAdded, Number: 11, Text: "baz"},
					{Kind: diff.LineAdded, Number: 12, Text: "qux"},
				},
			},
		},
	}
}

func TestRenderEntry_FixedTemplate(t *testing.T) {
	report := &HistoryReport{Zone: timestamp.DefaultZone()}

	got := RenderEntry(sampleEntry(t), report)
	want := "### Fix parser\n" +
		"*0123456 — 2025-09-02 07:00:00 -0500 (ET)*\n" +
		"\n" +
		"**File:** `main.go`\n" +
		"\n" +
		"```diff\n" +
		"- L11: bar\n" +
		"+ L11: baz\n" +
		"+ L12: qux\n" +
		"```\n" +
		"\n"

	if got != want {
		t.Errorf("RenderEntry:\n%q\nwant:\n%q", got, want)
	}
}

func TestRenderEntry_MultipleFiles(t *testing.T) {
	report := &HistoryReport{Zone: timestamp.DefaultZone()}
	entry := sampleEntry(t)
	entry.Files = append(entry.Files, diff.FileDiff{
		Path: "util.go",
		Changes: []diff.LineChange{
			{Kind: diff.LineAdded, Number: 1, Text: "package util"},
		},
	})

	got := RenderEntry(entry, report)

	if strings.Count(got, "```diff") != 2 {
		t.Errorf("expected 2 diff fences, got %d:\n%s", strings.Count(got, "```diff"), got)
	}
	if !strings.Contains(got, "**File:** `util.go`") {
		t.Errorf("missing second file section:\n%s", got)
	}
}

func TestRenderEntry_NoFilesStillRendersHeading(t *testing.T) {
	report := &HistoryReport{Zone: timestamp.DefaultZone()}
	entry := sampleEntry(t)
	entry.Files = nil

	got := RenderEntry(entry, report)
	want := "### Fix parser\n" +
		"*0123456 — 2025-09-02 07:00:00 -0500 (ET)*\n" +
		"\n"

	if got != want {
		t.Errorf("RenderEntry:\n%q\nwant:\n%q", got, want)
	}
	if strings.Contains(got, "**File:**") {
		t.Errorf("zero-file entry must have no file sections:\n%s", got)
	}
}

func TestRenderEntry_TextVerbatim(t *testing.T) {
	report := &HistoryReport{Zone: timestamp.DefaultZone()}
	entry := sampleEntry(t)
	entry.Files = []diff.FileDiff{{
		Path: "doc.md",
		Changes: []diff.LineChange{
			{Kind: diff.LineAdded, Number: 3, Text: "use `backticks`  "},
		},
	}}

	got := RenderEntry(entry, report)
	if !strings.Contains(got, "+ L3: use `backticks`  \n") {
		t.Errorf("line text must be verbatim:\n%s", got)
	}
}

func TestRenderDocument_SeparatorsAndTitle(t *testing.T) {
	report := &HistoryReport{
		Zone:    timestamp.DefaultZone(),
		Entries: []Entry{sampleEntry(t), sampleEntry(t)},
	}

	got := RenderDocument(report)

	if !strings.HasPrefix(got, "# Change Notes\n\n### Fix parser\n") {
		t.Errorf("document prefix wrong:\n%s", got)
	}
	if strings.Count(got, "---\n") != 1 {
		t.Errorf("expected exactly 1 separator between 2 entries:\n%s", got)
	}
	if !strings.HasSuffix(got, "```\n") {
		t.Errorf("document must end with a single trailing newline:\n%q", got[len(got)-10:])
	}
}

func TestRenderDocument_Empty(t *testing.T) {
	report := &HistoryReport{Zone: timestamp.DefaultZone()}

	got := RenderDocument(report)
	if got != "# Change Notes\n" {
		t.Errorf("empty report = %q, want %q", got, "# Change Notes\n")
	}
}

func TestRenderDocument_CustomTitle(t *testing.T) {
	report := &HistoryReport{Zone: timestamp.DefaultZone(), Title: "Release Log"}

	if got := RenderDocument(report); !strings.HasPrefix(got, "# Release Log\n") {
		t.Errorf("custom title not used:\n%s", got)
	}
}

// Rendering is pure: identical input yields byte-identical output.
func TestRenderDocument_Idempotent(t *testing.T) {
	report := &HistoryReport{
		Zone:        timestamp.DefaultZone(),
		GeneratedAt: time.Now(),
		Entries:     []Entry{sampleEntry(t)},
	}

	first := RenderDocument(report)
	second := RenderDocument(report)
	if first != second {
		t.Errorf("RenderDocument is not idempotent")
	}
}
