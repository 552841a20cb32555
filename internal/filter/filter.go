// Package filter selects commits by author identity and count limit.
package filter

import (
	"fmt"
	"regexp"

	"github.com/masmgr/changenotes/internal/git"
)

// IdentityMatcher decides whether a commit author identity is retained.
// It is injected rather than hardcoded so a literal email and a pattern
// share one code path.
type IdentityMatcher interface {
	MatchIdentity(identity string) bool
}

// RegexpMatcher matches identities with a compiled regular expression.
// Matching is case-sensitive.
type RegexpMatcher struct {
	re *regexp.Regexp
}

// CompileIdentity compiles an identity pattern. A literal email address
// is a valid pattern.
func CompileIdentity(pattern string) (*RegexpMatcher, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("compile identity pattern %q: %w", pattern, err)
	}
	return &RegexpMatcher{re: re}, nil
}

// MatchIdentity reports whether the identity matches the pattern.
func (m *RegexpMatcher) MatchIdentity(identity string) bool {
	return m.re.MatchString(identity)
}

var _ IdentityMatcher = (*RegexpMatcher)(nil)

// Select applies the identity filter and then the count limit over an
// ordered (newest-first) commit sequence. A nil matcher and a
// non-positive limit each mean "no restriction". Input order is
// preserved.
func Select(records []git.CommitRecord, matcher IdentityMatcher, limit int) []git.CommitRecord {
	out := make([]git.CommitRecord, 0, len(records))

	for _, rec := range records {
		if matcher != nil && !matcher.MatchIdentity(rec.Commit.Author.Identity()) {
			continue
		}
		out = append(out, rec)
		if limit > 0 && len(out) == limit {
			break
		}
	}

	return out
}
