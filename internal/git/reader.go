package git

import (
	"context"
	"fmt"
	"strings"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// HistoryReader reads commit history in-process via go-git.
type HistoryReader struct {
	repo *gogit.Repository
	opts ReadOptions
}

// NewHistoryReader opens the repository at opts.RepoPath.
func NewHistoryReader(opts ReadOptions) (*HistoryReader, error) {
	repo, err := gogit.PlainOpen(opts.RepoPath)
	if err != nil {
		return nil, fmt.Errorf("%w: open %q: %v", ErrSourceUnavailable, opts.RepoPath, err)
	}
	return &HistoryReader{repo: repo, opts: opts}, nil
}

// ReadCommits walks the history newest-first and attaches each commit's
// unified diff against its first parent. The root commit is diffed
// against the empty tree; merge commits are diffed against parent 0,
// matching a first-parent walk.
func (r *HistoryReader) ReadCommits(ctx context.Context) ([]CommitRecord, error) {
	from, err := r.headHash()
	if err != nil {
		return nil, err
	}

	cIter, err := r.repo.Log(&gogit.LogOptions{From: from, Order: gogit.LogOrderCommitterTime})
	if err != nil {
		return nil, fmt.Errorf("%w: log: %v", ErrSourceUnavailable, err)
	}

	var results []CommitRecord

	err = cIter.ForEach(func(c *object.Commit) error {
		if err := ctx.Err(); err != nil {
			return err
		}

		rawDiff, err := r.commitPatch(c)
		if err != nil {
			return fmt.Errorf("patch %s: %w", c.Hash, err)
		}

		message := c.Message
		if idx := strings.IndexByte(message, '\n'); idx != -1 {
			message = message[:idx]
		}

		results = append(results, CommitRecord{
			Commit: CommitInfo{
				SHA:       c.Hash.String(),
				Author:    AuthorInfo{Name: c.Author.Name, Email: c.Author.Email},
				Message:   message,
				Timestamp: c.Committer.When.Format("2006-01-02T15:04:05-07:00"),
			},
			RawDiff: rawDiff,
		})

		return nil
	})
	if err != nil {
		return nil, err
	}

	return results, nil
}

func (r *HistoryReader) headHash() (plumbing.Hash, error) {
	rev := strings.TrimSpace(r.opts.Branch)
	if rev == "" || strings.EqualFold(rev, "HEAD") {
		ref, err := r.repo.Head()
		if err != nil {
			return plumbing.ZeroHash, fmt.Errorf("%w: head: %v", ErrSourceUnavailable, err)
		}
		return ref.Hash(), nil
	}

	hash, err := r.repo.ResolveRevision(plumbing.Revision(rev))
	if err != nil {
		return plumbing.ZeroHash, fmt.Errorf("%w: resolve %q: %v", ErrSourceUnavailable, rev, err)
	}
	return *hash, nil
}

// commitPatch renders the commit's changes as unified-diff text.
func (r *HistoryReader) commitPatch(c *object.Commit) (string, error) {
	tree, err := c.Tree()
	if err != nil {
		return "", err
	}

	parentTree := &object.Tree{}
	if c.NumParents() > 0 {
		parent, err := c.Parent(0)
		if err != nil {
			return "", err
		}
		parentTree, err = parent.Tree()
		if err != nil {
			return "", err
		}
	}

	changes, err := object.DiffTree(parentTree, tree)
	if err != nil {
		return "", err
	}
	patch, err := changes.Patch()
	if err != nil {
		return "", err
	}

	return patch.String(), nil
}
