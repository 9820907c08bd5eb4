// Package fmtcmd provides the fmt command for orgc.
package fmtcmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/orgtools/org-cli/internal/cmd/cmdutil"
	"github.com/orgtools/org-cli/pkg/org"
)

type fmtOptions struct {
	file       string
	write      bool
	dontIndent bool
}

// NewCmdFmt creates the fmt command.
func NewCmdFmt() *cobra.Command {
	opts := &fmtOptions{}

	cmd := &cobra.Command{
		Use:   "fmt <file>",
		Short: "Rewrite an Org file in canonical form",
		Long: `Rewrite an Org file in canonical form.

Planning keywords are ordered SCHEDULED, DEADLINE, CLOSED, timestamps
get normalized spacing, and planning lines and drawers are indented to
match their headline level. Body text is left untouched. The result is
printed to stdout unless --write is given.`,
		Example: `  # Print the formatted file
  orgc fmt notes.org

  # Rewrite in place
  orgc fmt --write notes.org

  # Keep everything flush left
  orgc fmt --dont-indent notes.org`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.file = args[0]
			return runFmt(opts)
		},
	}

	cmd.Flags().BoolVarP(&opts.write, "write", "w", false, "Write the result back to the file")
	cmd.Flags().BoolVar(&opts.dontIndent, "dont-indent", false, "Do not indent planning lines and drawers")

	return cmd
}

func runFmt(opts *fmtOptions) error {
	if opts.write && opts.file == "-" {
		return fmt.Errorf("--write cannot be used with stdin input")
	}

	cfg := cmdutil.LoadConfig()
	text, err := cmdutil.ReadSource(opts.file)
	if err != nil {
		return err
	}

	doc := org.ParseWithOptions(text, org.ParseOptions{
		DefaultTodoKeywords: cfg.Keywords(),
	})
	out := org.ExportWithOptions(doc, org.ExportOptions{
		DontIndent: opts.dontIndent || cfg.DontIndent,
	})

	if !opts.write {
		fmt.Print(out)
		return nil
	}

	if out == text {
		return nil
	}
	if err := os.WriteFile(opts.file, []byte(out), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", opts.file, err)
	}
	return nil
}
