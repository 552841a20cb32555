package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"

	"github.com/masmgr/changenotes/internal/output"
)

// GenerateCmd returns the generate command.
func GenerateCmd() *cli.Command {
	return &cli.Command{
		Name:    "generate",
		Aliases: []string{"gen"},
		Usage:   "Generate the change report",
		Flags:   commonFlags(),
		Action:  generateAction,
	}
}

func generateAction(c *cli.Context) error {
	cmdCtx, err := NewCommandContext(c)
	if err != nil {
		return err
	}

	rep, err := cmdCtx.Generator.Generate(c.Context)
	if err != nil {
		return err
	}

	opts := outputOptions(c, cmdCtx)
	writer := output.NewReportWriter(opts.Format)
	if err := writer.Write(rep, opts); err != nil {
		return err
	}

	// Zero matching commits is a valid (empty) report, not an error.
	if len(rep.Entries) == 0 {
		msg := "No commits found"
		if author := cmdCtx.Config.Filters.Author; author != "" {
			msg += fmt.Sprintf(" for author filter: %q", author)
		}
		fmt.Fprintln(os.Stderr, msg+".")
	}

	if opts.Format == output.FormatMarkdown && opts.OutputPath != "" {
		color.Green("Wrote %s", opts.OutputPath)
	}

	return nil
}

// outputOptions resolves the destination: the --output flag (merged
// into config), "-" meaning stdout, and no file at all for the console
// preview format.
func outputOptions(c *cli.Context, cmdCtx *CommandContext) output.Options {
	format := getOutputFormat(c.String("format"))

	path := cmdCtx.Config.Report.Output
	if path == "-" || format == output.FormatConsole {
		path = ""
	}

	return output.Options{Format: format, OutputPath: path}
}
