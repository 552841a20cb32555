package report

import (
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// matchesFilters checks a file path against include/exclude globs.
// Exclude wins over include; with no include patterns every path is
// accepted.
func matchesFilters(path string, include, exclude []string) bool {
	path = strings.ReplaceAll(path, "\\", "/")

	for _, pattern := range exclude {
		if matched, _ := doublestar.Match(pattern, path); matched {
			return false
		}
	}

	if len(include) == 0 {
		return true
	}

	for _, pattern := range include {
		if matched, _ := doublestar.Match(pattern, path); matched {
			return true
		}
	}

	return false
}
