// Package root provides the root command for the orgc CLI.
package root

import (
	"github.com/spf13/cobra"

	"github.com/orgtools/org-cli/internal/cmd/check"
	"github.com/orgtools/org-cli/internal/cmd/completion"
	"github.com/orgtools/org-cli/internal/cmd/configcmd"
	"github.com/orgtools/org-cli/internal/cmd/export"
	"github.com/orgtools/org-cli/internal/cmd/fmtcmd"
	"github.com/orgtools/org-cli/internal/cmd/importcmd"
	initcmd "github.com/orgtools/org-cli/internal/cmd/init"
	"github.com/orgtools/org-cli/internal/cmd/outline"
	"github.com/orgtools/org-cli/internal/cmd/todo"
	"github.com/orgtools/org-cli/internal/version"
)

// NewCmdRoot creates the root command for orgc.
func NewCmdRoot() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "orgc",
		Short: "A command-line toolkit for Org outline files",
		Long: `orgc parses Org outline files into a structured tree and works
with them from the command line.

It provides commands for listing headlines and tasks, normalizing file
formatting, and converting to and from markdown and HTML. Parsing is
lossless: files written with the standard conventions survive a parse
and export cycle byte for byte.

Get started by running: orgc init`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version.Version,
	}

	// Global flags
	cmd.PersistentFlags().StringP("config", "c", "", "config file (default: ~/.config/orgc/config.yml)")
	cmd.PersistentFlags().StringP("output", "o", "table", "output format: table, json, plain")
	cmd.PersistentFlags().Bool("no-color", false, "disable colored output")

	// Set version template
	cmd.SetVersionTemplate("orgc version {{.Version}} (commit: " + version.Commit + ", built: " + version.Date + ")\n")

	// Subcommands
	cmd.AddCommand(initcmd.NewCmdInit())
	cmd.AddCommand(configcmd.NewCmdConfig())
	cmd.AddCommand(outline.NewCmdOutline())
	cmd.AddCommand(todo.NewCmdTodo())
	cmd.AddCommand(check.NewCmdCheck())
	cmd.AddCommand(fmtcmd.NewCmdFmt())
	cmd.AddCommand(export.NewCmdExport())
	cmd.AddCommand(importcmd.NewCmdImport())
	cmd.AddCommand(completion.NewCmdCompletion())

	return cmd
}
