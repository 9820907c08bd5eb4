// Package importcmd provides the import command for orgc.
package importcmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/orgtools/org-cli/internal/cmd/cmdutil"
	"github.com/orgtools/org-cli/internal/convert"
)

type importOptions struct {
	file   string
	from   string
	output string
}

// NewCmdImport creates the import command.
func NewCmdImport() *cobra.Command {
	opts := &importOptions{}

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Convert a markdown or HTML file to Org",
		Long: `Convert a markdown or HTML file to Org outline text.

Headings become headlines, task checkboxes become TODO/DONE keywords
and inline markup is re-spelled in Org delimiters. The source format is
taken from the file extension unless --from is given. Use - as the file
argument to read from stdin.`,
		Example: `  # Markdown to Org on stdout
  orgc import notes.md

  # HTML input, written to a file
  orgc import page.html --out page.org`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.file = args[0]
			return runImport(opts)
		},
	}

	cmd.Flags().StringVar(&opts.from, "from", "", "Source format: md, html (default from extension)")
	cmd.Flags().StringVar(&opts.output, "out", "", "Output file (default stdout)")

	return cmd
}

func runImport(opts *importOptions) error {
	from := opts.from
	if from == "" {
		switch {
		case strings.HasSuffix(opts.file, ".html"), strings.HasSuffix(opts.file, ".htm"):
			from = "html"
		default:
			from = "md"
		}
	}
	if from != "md" && from != "html" {
		return fmt.Errorf("invalid source format %q: must be md or html", from)
	}

	text, err := cmdutil.ReadSource(opts.file)
	if err != nil {
		return err
	}

	var out string
	switch from {
	case "md":
		out = convert.MarkdownToOrg(text)
	case "html":
		out, err = convert.HTMLToOrg(text)
		if err != nil {
			return fmt.Errorf("failed to convert HTML: %w", err)
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
