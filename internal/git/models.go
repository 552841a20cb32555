package git

// CommitInfo represents the raw metadata of a Git commit as supplied by
// a history source. The timestamp is carried as the raw ISO 8601 string
// (with its originating UTC offset); parsing happens downstream so a
// malformed value can abort the run in one place.
type CommitInfo struct {
	SHA       string
	Author    AuthorInfo
	Message   string // first line of the commit message
	Timestamp string // ISO 8601, e.g. "2025-09-02T12:34:56-04:00"
}

// ShortSHA returns the truncated display form of the commit hash.
func (c CommitInfo) ShortSHA() string {
	if len(c.SHA) <= 7 {
		return c.SHA
	}
	return c.SHA[:7]
}

// AuthorInfo represents commit author information.
type AuthorInfo struct {
	Name  string
	Email string
}

// Identity returns the string the author filter matches against.
func (a AuthorInfo) Identity() string {
	return a.Email
}

// CommitRecord bundles a commit with the raw unified-diff text of its
// changes against the first parent.
type CommitRecord struct {
	Commit  CommitInfo
	RawDiff string
}

// ReadOptions configures a history source.
type ReadOptions struct {
	RepoPath string
	Branch   string
	// Author and Limit are pushed down to sources that can narrow the
	// walk early (the git CLI). The pipeline filter remains
	// authoritative either way.
	Author string
	Limit  int
}
