package cmd

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/masmgr/changenotes/config"
	"github.com/masmgr/changenotes/internal/output"
)

// App creates the CLI application. Bare invocation behaves like the
// generate command, so `changenotes --user-id alice@example.com` works
// without naming a subcommand.
func App() *cli.App {
	return &cli.App{
		Name:    "changenotes",
		Usage:   "Generate a Markdown change report from Git history",
		Version: "1.0.0",
		Commands: []*cli.Command{
			GenerateCmd(),
		},
		Flags:  append(commonFlags(), configFlag()),
		Action: generateAction,
	}
}

func configFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   "Path to configuration file",
	}
}

// Common flags shared by the root action and the generate command.
func commonFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "repo",
			Aliases: []string{"r"},
			Usage:   "Path to Git repository",
			Value:   ".",
		},
		&cli.StringFlag{
			Name:    "branch",
			Aliases: []string{"b"},
			Usage:   "Branch or revision to read (default: HEAD)",
		},
		&cli.StringFlag{
			Name:    "user-id",
			Aliases: []string{"u"},
			Usage:   "Author filter: an email or a regular expression over the author email",
		},
		&cli.IntFlag{
			Name:    "limit",
			Aliases: []string{"n"},
			Usage:   "Limit number of commits (most recent first)",
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "Output file path ('-' for stdout; default: history.md)",
		},
		&cli.StringSliceFlag{
			Name:  "include",
			Usage: "Glob patterns of file paths to include (can be repeated)",
		},
		&cli.StringSliceFlag{
			Name:  "exclude",
			Usage: "Glob patterns of file paths to exclude (can be repeated)",
		},
		&cli.StringFlag{
			Name:    "format",
			Aliases: []string{"f"},
			Usage:   "Output format (markdown, console)",
			Value:   "markdown",
		},
		&cli.StringFlag{
			Name:  "source",
			Usage: "History source backend (git, go-git)",
			Value: "git",
		},
		&cli.StringFlag{
			Name:  "title",
			Usage: "Report document title",
		},
	}
}

// getOutputFormat parses the output format flag.
func getOutputFormat(s string) output.Format {
	switch s {
	case "console":
		return output.FormatConsole
	default:
		return output.FormatMarkdown
	}
}

// loadConfig loads configuration and applies CLI flag overrides.
func loadConfig(c *cli.Context) (*config.Config, error) {
	cfg, err := config.LoadConfig(c.String("config"))
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if author := c.String("user-id"); author != "" {
		cfg.Filters.Author = author
	}
	if limit := c.Int("limit"); limit > 0 {
		cfg.Filters.Limit = limit
	}
	if includes := c.StringSlice("include"); len(includes) > 0 {
		cfg.Filters.Include = includes
	}
	if excludes := c.StringSlice("exclude"); len(excludes) > 0 {
		cfg.Filters.Exclude = excludes
	}
	if title := c.String("title"); title != "" {
		cfg.Report.Title = title
	}
	if out := c.String("output"); out != "" {
		cfg.Report.Output = out
	}

	return cfg, nil
}

// Run executes the CLI application.
func Run() {
	if err := App().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
