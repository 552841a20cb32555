package cmd

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/masmgr/changenotes/config"
	"github.com/masmgr/changenotes/internal/filter"
	"github.com/masmgr/changenotes/internal/git"
	"github.com/masmgr/changenotes/internal/report"
	"github.com/masmgr/changenotes/internal/timestamp"
)

// CommandContext holds the resolved state for a generate run:
// configuration with flag overrides applied, the selected history
// source, and the assembled pipeline.
type CommandContext struct {
	Config    *config.Config
	RepoPath  string
	Generator *report.Generator
}

// NewCommandContext builds the pipeline from CLI flags. It performs
// configuration loading, source selection, and filter compilation.
func NewCommandContext(c *cli.Context) (*CommandContext, error) {
	cfg, err := loadConfig(c)
	if err != nil {
		return nil, err
	}

	repoPath := c.String("repo")

	readOpts := git.ReadOptions{
		RepoPath: repoPath,
		Branch:   c.String("branch"),
		Author:   cfg.Filters.Author,
		Limit:    cfg.Filters.Limit,
	}

	source, err := newSource(c.String("source"), readOpts)
	if err != nil {
		return nil, err
	}

	var matcher filter.IdentityMatcher
	if cfg.Filters.Author != "" {
		m, err := filter.CompileIdentity(cfg.Filters.Author)
		if err != nil {
			return nil, fmt.Errorf("invalid --user-id: %w", err)
		}
		matcher = m
	}

	gen := &report.Generator{
		Source:   source,
		Matcher:  matcher,
		Limit:    cfg.Filters.Limit,
		Include:  cfg.Filters.Include,
		Exclude:  cfg.Filters.Exclude,
		Zone:     timestamp.FixedZone(cfg.Timezone.Label, cfg.Timezone.OffsetMinutes),
		Title:    cfg.Report.Title,
		RepoPath: repoPath,
	}

	return &CommandContext{
		Config:    cfg,
		RepoPath:  repoPath,
		Generator: gen,
	}, nil
}

// newSource selects the history source backend.
func newSource(kind string, opts git.ReadOptions) (git.HistorySource, error) {
	switch kind {
	case "", "git":
		return git.NewCLIReader(opts), nil
	case "go-git":
		return git.NewHistoryReader(opts)
	default:
		return nil, fmt.Errorf("unknown source %q (expected git or go-git)", kind)
	}
}
