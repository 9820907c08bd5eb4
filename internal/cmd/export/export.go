// Package export provides the export command for orgc.
package export

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/orgtools/org-cli/internal/cmd/cmdutil"
	"github.com/orgtools/org-cli/internal/convert"
)

type exportOptions struct {
	file   string
	to     string
	output string
}

// NewCmdExport creates the export command.
func NewCmdExport() *cobra.Command {
	opts := &exportOptions{}

	cmd := &cobra.Command{
		Use:   "export <file>",
		Short: "Export an Org file to markdown or HTML",
		Long: `Export an Org file to another format.

Headlines become headings, TODO keywords become task checkboxes and
inline markup is re-spelled in the target format. Use - as the file
argument to read from stdin.`,
		Example: `  # Markdown to stdout
  orgc export notes.org

  # HTML to a file
  orgc export notes.org --to html --out notes.html`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.file = args[0]
			return runExport(opts)
		},
	}

	cmd.Flags().StringVar(&opts.to, "to", "md", "Target format: md, html")
	cmd.Flags().StringVar(&opts.output, "out", "", "Output file (default stdout)")

	return cmd
}

func runExport(opts *exportOptions) error {
	if opts.to != "md" && opts.to != "html" {
		return fmt.Errorf("invalid target format %q: must be md or html", opts.to)
	}

	cfg := cmdutil.LoadConfig()
	doc, err := cmdutil.ParseFile(opts.file, cfg)
	if err != nil {
		return err
	}

	var out string
	switch opts.to {
	case "md":
		out = convert.OrgToMarkdown(doc)
	case "html":
		out, err = convert.OrgToHTML(doc)
		if err != nil {
			return fmt.Errorf("failed to render HTML: %w", err)
		}
	}

	if opts.output == "" {
		fmt.Print(out)
		return nil
	}
	if err := os.WriteFile(opts.output, []byte(out), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", opts.output, err)
	}
	return nil
}
