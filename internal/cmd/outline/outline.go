// Package outline provides the outline command for orgc.
package outline

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/orgtools/org-cli/internal/cmd/cmdutil"
	"github.com/orgtools/org-cli/internal/view"
)

type outlineOptions struct {
	file     string
	maxLevel int
	output   string
	noColor  bool
}

// NewCmdOutline creates the outline command.
func NewCmdOutline() *cobra.Command {
	opts := &outlineOptions{}

	cmd := &cobra.Command{
		Use:   "outline <file>",
		Short: "Show the headline structure of an Org file",
		Long: `Show the headline structure of an Org file.

Each headline is printed indented by its level, with its TODO keyword,
title and tags. Use - as the file argument to read from stdin.`,
		Example: `  # Show the outline
  orgc outline notes.org

  # Only the top two levels
  orgc outline notes.org --max-level 2

  # Output as JSON
  orgc outline notes.org -o json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.file = args[0]
			opts.output, _ = cmd.Flags().GetString("output")
			opts.noColor, _ = cmd.Flags().GetBool("no-color")
			return runOutline(opts)
		},
	}

	cmd.Flags().IntVarP(&opts.maxLevel, "max-level", "l", 0, "Deepest headline level to show (0 for all)")

	return cmd
}

func runOutline(opts *outlineOptions) error {
	if err := view.ValidateFormat(opts.output); err != nil {
		return err
	}
	if opts.maxLevel < 0 {
		return fmt.Errorf("invalid max-level %d: must be zero or positive", opts.maxLevel)
	}

	cfg := cmdutil.LoadConfig()
	doc, err := cmdutil.ParseFile(opts.file, cfg)
	if err != nil {
		return err
	}

	renderer := view.NewRenderer(view.Format(opts.output), opts.noColor)

	if len(doc.Headers) == 0 {
		renderer.RenderText("No headlines found.")
		return nil
	}

	if opts.output == "" || opts.output == string(view.FormatTable) {
		for _, h := range doc.Headers {
			if opts.maxLevel > 0 && h.Level > opts.maxLevel {
				continue
			}
			done := doc.IsDoneKeyword(h.Title.Todo)
			renderer.RenderOutlineRow(h.Level, h.Title.Todo, done, h.Title.RawTitle, h.Title.Tags)
		}
		return nil
	}

	headers := []string{"LEVEL", "KEYWORD", "PRIORITY", "TITLE", "TAGS"}
	var rows [][]string
	for _, h := range doc.Headers {
		if opts.maxLevel > 0 && h.Level > opts.maxLevel {
			continue
		}
		tags := ""
		if len(h.Title.Tags) > 0 {
			tags = ":" + strings.Join(h.Title.Tags, ":") + ":"
		}
		rows = append(rows, []string{
			strconv.Itoa(h.Level),
			h.Title.Todo,
			h.Title.Priority,
			view.Truncate(h.Title.RawTitle, 60),
			tags,
		})
	}
	renderer.RenderTable(headers, rows)

	return nil
}
