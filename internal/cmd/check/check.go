// Package check provides the check command for orgc.
package check

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/orgtools/org-cli/internal/cmd/cmdutil"
	"github.com/orgtools/org-cli/internal/view"
	"github.com/orgtools/org-cli/pkg/org"
)

type checkOptions struct {
	files   []string
	noColor bool
}

// NewCmdCheck creates the check command.
func NewCmdCheck() *cobra.Command {
	opts := &checkOptions{}

	cmd := &cobra.Command{
		Use:   "check <file>...",
		Short: "Verify that Org files survive a parse and export cycle",
		Long: `Verify that parsing a file and exporting the result reproduces
the input byte for byte. Files using nonstandard formatting, such as
planning keywords out of SCHEDULED, DEADLINE, CLOSED order or drawer
indentation that does not follow headline level, are reported with the
position of the first difference.`,
		Example: `  # Check a single file
  orgc check notes.org

  # Check many files
  orgc check *.org`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.files = args
			opts.noColor, _ = cmd.Flags().GetBool("no-color")
			return runCheck(opts)
		},
	}

	return cmd
}

func runCheck(opts *checkOptions) error {
	cfg := cmdutil.LoadConfig()
	renderer := view.NewRenderer(view.FormatTable, opts.noColor)

	failures := 0
	for _, file := range opts.files {
		text, err := cmdutil.ReadSource(file)
		if err != nil {
			return err
		}

		doc := org.ParseWithOptions(text, org.ParseOptions{
			DefaultTodoKeywords: cfg.Keywords(),
		})
		out := org.ExportWithOptions(doc, org.ExportOptions{DontIndent: cfg.DontIndent})

		if out == text {
			renderer.Success(file)
			continue
		}

		failures++
		line, col := firstDifference(text, out)
		renderer.Error(fmt.Sprintf("%s: output differs from input at line %d, column %d", file, line, col))
	}

	if failures > 0 {
		return fmt.Errorf("%d of %d files did not round-trip", failures, len(opts.files))
	}
	return nil
}

// firstDifference returns the 1-based line and column of the first
// byte where the two strings disagree.
func firstDifference(a, b string) (int, int) {
	limit := len(a)
	if len(b) < limit {
		limit = len(b)
	}

	offset := limit
	for i := 0; i < limit; i++ {
		if a[i] != b[i] {
			offset = i
			break
		}
	}

	prefix := a[:offset]
	line := strings.Count(prefix, "\n") + 1
	col := offset - strings.LastIndex(prefix, "\n")
	return line, col
}
