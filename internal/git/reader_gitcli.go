package git

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// CLIReader reads commit history by shelling out to the git executable.
// It is the default source: `--first-parent --unified=0` reproduce the
// exact diff shape the report numbering is defined against.
type CLIReader struct {
	opts ReadOptions
}

// NewCLIReader creates a git-CLI backed history source.
func NewCLIReader(opts ReadOptions) *CLIReader {
	return &CLIReader{opts: opts}
}

// logFormat prefixes each commit header with 0x1e (record separator)
// and NUL-separates the fields, ending with a newline. The patch body
// follows until the next record separator.
const logFormat = "%x1e%H%x00%cI%x00%an%x00%ae%x00%s%n"

// ReadCommits runs a single `git log` over the full history, newest
// first, and splits the output into per-commit records.
func (r *CLIReader) ReadCommits(ctx context.Context) ([]CommitRecord, error) {
	args := []string{
		"-C", r.opts.RepoPath,
		"log",
		"--no-color",
		"--first-parent",
		"--no-renames",
		"--unified=0",
		"--patch",
		"--pretty=format:" + logFormat,
	}

	if r.opts.Author != "" {
		args = append(args, "--author="+r.opts.Author)
	}
	if r.opts.Limit > 0 {
		args = append(args, fmt.Sprintf("-n%d", r.opts.Limit))
	}

	rev := strings.TrimSpace(r.opts.Branch)
	if rev != "" && !strings.EqualFold(rev, "HEAD") {
		args = append(args, rev)
	}

	out, err := exec.CommandContext(ctx, "git", args...).Output()
	if err != nil {
		detail := err.Error()
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && len(exitErr.Stderr) > 0 {
			detail = strings.TrimSpace(string(exitErr.Stderr))
		}
		return nil, fmt.Errorf("%w: git log: %s", ErrSourceUnavailable, detail)
	}

	return parseLogRecords(out)
}

// parseLogRecords splits raw `git log` output into commit records.
// Each record is a header line (NUL-separated fields) followed by the
// commit's patch text.
func parseLogRecords(out []byte) ([]CommitRecord, error) {
	records := bytes.Split(out, []byte{0x1e})
	results := make([]CommitRecord, 0, len(records))

	for _, rec := range records {
		if len(rec) == 0 {
			continue
		}

		header, body := splitHeaderBody(rec)
		if len(header) == 0 {
			continue
		}

		fields := bytes.SplitN(header, []byte{0x00}, 5)
		if len(fields) < 5 {
			return nil, fmt.Errorf("unexpected git log header format")
		}

		results = append(results, CommitRecord{
			Commit: CommitInfo{
				SHA:       string(fields[0]),
				Timestamp: string(fields[1]),
				Author:    AuthorInfo{Name: string(fields[2]), Email: string(fields[3])},
				Message:   string(fields[4]),
			},
			RawDiff: string(body),
		})
	}

	return results, nil
}

func splitHeaderBody(rec []byte) (header, body []byte) {
	// The pretty line is terminated by '\n'; the patch text follows.
	if idx := bytes.IndexByte(rec, '\n'); idx != -1 {
		return rec[:idx], rec[idx+1:]
	}
	return rec, nil
}
