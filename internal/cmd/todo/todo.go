// Package todo provides the todo command for orgc.
package todo

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/orgtools/org-cli/internal/cmd/cmdutil"
	"github.com/orgtools/org-cli/internal/view"
	"github.com/orgtools/org-cli/pkg/org"
)

type todoOptions struct {
	file    string
	keyword string
	done    bool
	open    bool
	output  string
	noColor bool
}

// NewCmdTodo creates the todo command.
func NewCmdTodo() *cobra.Command {
	opts := &todoOptions{}

	cmd := &cobra.Command{
		Use:     "todo <file>",
		Aliases: []string{"tasks"},
		Short:   "List task headlines in an Org file",
		Long: `List headlines that carry a TODO keyword, with their priority
and planning dates. Use - as the file argument to read from stdin.`,
		Example: `  # All tasks
  orgc todo notes.org

  # Only open tasks
  orgc todo notes.org --open

  # Only a specific keyword
  orgc todo notes.org --keyword WAIT`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.file = args[0]
			opts.output, _ = cmd.Flags().GetString("output")
			opts.noColor, _ = cmd.Flags().GetBool("no-color")
			return runTodo(opts)
		},
	}

	cmd.Flags().StringVarP(&opts.keyword, "keyword", "k", "", "Only tasks with this keyword")
	cmd.Flags().BoolVar(&opts.done, "done", false, "Only completed tasks")
	cmd.Flags().BoolVar(&opts.open, "open", false, "Only not yet completed tasks")

	return cmd
}

func runTodo(opts *todoOptions) error {
	if err := view.ValidateFormat(opts.output); err != nil {
		return err
	}
	if opts.done && opts.open {
		return fmt.Errorf("--done and --open are mutually exclusive")
	}

	cfg := cmdutil.LoadConfig()
	doc, err := cmdutil.ParseFile(opts.file, cfg)
	if err != nil {
		return err
	}

	renderer := view.NewRenderer(view.Format(opts.output), opts.noColor)

	headers := []string{"LEVEL", "KEYWORD", "PRIORITY", "TITLE", "SCHEDULED", "DEADLINE"}
	var rows [][]string

	for _, h := range doc.Headers {
		if h.Title.Todo == "" {
			continue
		}
		if opts.keyword != "" && h.Title.Todo != opts.keyword {
			continue
		}
		done := doc.IsDoneKeyword(h.Title.Todo)
		if opts.done && !done {
			continue
		}
		if opts.open && done {
			continue
		}

		rows = append(rows, []string{
			strconv.Itoa(h.Level),
			h.Title.Todo,
			h.Title.Priority,
			view.Truncate(h.Title.RawTitle, 60),
			planningDate(h, org.PlanningScheduled),
			planningDate(h, org.PlanningDeadline),
		})
	}

	if len(rows) == 0 {
		renderer.RenderText("No tasks found.")
		return nil
	}

	renderer.RenderTable(headers, rows)
	return nil
}

func planningDate(h *org.Header, keyword org.PlanningKeyword) string {
	for _, p := range h.Planning {
		if p.Keyword == keyword {
			return p.Timestamp.Date
		}
	}
	return ""
}
