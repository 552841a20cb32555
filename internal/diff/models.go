// Package diff parses unified-diff text into per-file, per-line change
// records with their original line numbers.
package diff

// LineKind distinguishes the two sides of a change.
type LineKind int

const (
	LineAdded LineKind = iota
	LineRemoved
)

// String returns a string representation of the line kind.
func (k LineKind) String() string {
	switch k {
	case LineAdded:
		return "added"
	case LineRemoved:
		return "removed"
	default:
		return "unknown"
	}
}

// LineChange is a single added or removed line. Number is 1-based:
// new-file numbering for added lines, old-file numbering for removed
// lines. Text is the literal line content without its newline.
type LineChange struct {
	Kind   LineKind
	Number int
	Text   string
}

// FileDiff holds the ordered line changes for one file within one
// commit. Path is never empty; a FileDiff is only produced when it
// carries at least one LineChange.
type FileDiff struct {
	Path    string
	Changes []LineChange
}
