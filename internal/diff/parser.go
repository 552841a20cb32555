package diff

import (
	"strconv"
	"strings"
)

// scanState tracks where the scanner is within the diff structure.
type scanState int

const (
	// stateBeforeFile: no file section yet, or the current section was
	// abandoned (binary patch, /dev/null target).
	stateBeforeFile scanState = iota
	// stateFileHeader: inside a file header block, before the first hunk.
	stateFileHeader
	// stateInHunk: inside a hunk body with live line counters.
	stateInHunk
)

// parser is the line-oriented scanner. It is rebuilt per Parse call;
// nothing is shared between calls.
type parser struct {
	state   scanState
	path    string
	oldLine int
	newLine int

	pending FileDiff
	out     []FileDiff
}

// Parse scans unified-diff text for a single commit and returns one
// FileDiff per changed file, in source order. Parsing is best-effort:
// unrecognized lines are treated as context and never abort the scan.
func Parse(raw string) []FileDiff {
	p := &parser{}

	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSuffix(line, "\r")
		p.scanLine(line)
	}
	p.flush()

	return p.out
}

func (p *parser) scanLine(line string) {
	switch {
	case strings.HasPrefix(line, "diff --git "):
		p.startFileHeader()
	case strings.HasPrefix(line, "--- "):
		// Old-side name; the new side identifies the file.
	case strings.HasPrefix(line, "+++ "):
		p.setPath(line[4:])
	case strings.Contains(line, "Binary files") && p.state != stateInHunk,
		strings.HasPrefix(line, "GIT binary patch"):
		p.abandonFile()
	case strings.HasPrefix(line, "@@ "):
		p.startHunk(line)
	default:
		p.scanBodyLine(line)
	}
}

// startFileHeader begins a new file section. Counters from the previous
// file must not leak into this one.
func (p *parser) startFileHeader() {
	p.flush()
	p.path = ""
	p.oldLine = 0
	p.newLine = 0
	p.state = stateFileHeader
}

// setPath records the new-side path from a "+++ " header. A /dev/null
// target (file deletion) or an unprefixed path leaves the section
// without a usable path, so its lines are skipped.
func (p *parser) setPath(name string) {
	p.flush()
	if rest, ok := strings.CutPrefix(name, "b/"); ok {
		p.path = rest
		p.pending = FileDiff{Path: rest}
	} else {
		p.path = ""
	}
	p.state = stateFileHeader
}

func (p *parser) abandonFile() {
	p.flush()
	p.path = ""
	p.state = stateBeforeFile
}

// startHunk initializes both counters from a "@@ -old[,n] +new[,m] @@"
// header. Each hunk is self-describing: counters never accumulate
// across hunks. An unparseable header invalidates the counters until
// the next valid one.
func (p *parser) startHunk(line string) {
	oldStart, newStart, ok := parseHunkHeader(line)
	if !ok {
		p.oldLine = 0
		p.newLine = 0
		p.state = stateFileHeader
		return
	}
	p.oldLine = oldStart
	p.newLine = newStart
	p.state = stateInHunk
}

func (p *parser) scanBodyLine(line string) {
	if p.state != stateInHunk || p.path == "" {
		return
	}
	// Blank lines and the no-newline marker carry no hunk content and
	// do not move either counter.
	if line == "" || strings.HasPrefix(line, `\ No newline at end of file`) {
		return
	}

	switch line[0] {
	case '+':
		p.pending.Changes = append(p.pending.Changes, LineChange{
			Kind:   LineAdded,
			Number: p.newLine,
			Text:   line[1:],
		})
		p.newLine++
	case '-':
		p.pending.Changes = append(p.pending.Changes, LineChange{
			Kind:   LineRemoved,
			Number: p.oldLine,
			Text:   line[1:],
		})
		p.oldLine++
	default:
		// Context, or an unrecognized prefix treated as context.
		p.oldLine++
		p.newLine++
	}
}

// flush emits the pending FileDiff if it collected any changes.
// Rename- or mode-only sections collect none and are dropped.
func (p *parser) flush() {
	if p.pending.Path != "" && len(p.pending.Changes) > 0 {
		p.out = append(p.out, p.pending)
	}
	p.pending = FileDiff{}
}

// parseHunkHeader extracts the old and new start lines from a hunk
// header of the form "@@ -oldStart[,oldCount] +newStart[,newCount] @@".
func parseHunkHeader(line string) (oldStart, newStart int, ok bool) {
	rest := strings.TrimPrefix(line, "@@ ")
	end := strings.Index(rest, " @@")
	if end == -1 {
		return 0, 0, false
	}

	fields := strings.Fields(rest[:end])
	if len(fields) != 2 {
		return 0, 0, false
	}

	oldStart, ok = parseHunkRange(fields[0], '-')
	if !ok {
		return 0, 0, false
	}
	newStart, ok = parseHunkRange(fields[1], '+')
	if !ok {
		return 0, 0, false
	}

	return oldStart, newStart, true
}

// parseHunkRange parses "-start[,count]" or "+start[,count]" and
// returns the start line.
func parseHunkRange(field string, sign byte) (int, bool) {
	if len(field) < 2 || field[0] != sign {
		return 0, false
	}
	num := field[1:]
	if idx := strings.IndexByte(num, ','); idx != -1 {
		num = num[:idx]
	}
	n, err := strconv.Atoi(num)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}
