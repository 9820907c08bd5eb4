// Package init provides the init command for orgc.
package init

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/orgtools/org-cli/internal/config"
)

// NewCmdInit creates the init command.
func NewCmdInit() *cobra.Command {
	var keywords string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize orgc configuration",
		Long: `Initialize orgc with your preferred defaults.

This command will guide you through choosing the default TODO keyword
set, the output format and export indentation. The configuration will
be saved to ~/.config/orgc/config.yml. Files that carry their own
#+TODO line always win over the configured defaults.`,
		Example: `  # Interactive setup
  orgc init

  # Pre-populate the keyword set
  orgc init --keywords "TODO WAIT DONE"`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runInit(keywords)
		},
	}

	cmd.Flags().StringVar(&keywords, "keywords", "", "Default TODO keywords, space separated, last one counts as done")

	return cmd
}

func runInit(prefillKeywords string) error {
	configPath := config.DefaultConfigPath()

	// Check if config already exists
	if _, err := os.Stat(configPath); err == nil {
		var overwrite bool
		err := huh.NewConfirm().
			Title("Configuration already exists").
			Description(fmt.Sprintf("Overwrite %s?", configPath)).
			Value(&overwrite).
			Run()
		if err != nil {
			return err
		}
		if !overwrite {
			fmt.Println("Initialization cancelled.")
			return nil
		}
	}

	cfg := &config.Config{}

	keywordInput := prefillKeywords
	if keywordInput == "" {
		keywordInput = "TODO DONE"
	}
	indent := true

	// Build the form
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Default TODO keywords").
				Description("Space separated, the last keyword counts as done").
				Placeholder("TODO DONE").
				Value(&keywordInput).
				Validate(func(s string) error {
					if len(strings.Fields(s)) < 2 {
						return fmt.Errorf("need at least one open and one done keyword")
					}
					return nil
				}),

			huh.NewSelect[string]().
				Title("Output format").
				Description("Default format for outline and todo listings").
				Options(
					huh.NewOption("table", "table"),
					huh.NewOption("json", "json"),
					huh.NewOption("plain", "plain"),
				).
				Value(&cfg.OutputFormat),

			huh.NewConfirm().
				Title("Indent planning lines and drawers").
				Description("Match indentation to headline level on export").
				Value(&indent),
		),
	)

	if err := form.Run(); err != nil {
		return err
	}

	cfg.DefaultTodoKeywords = strings.Fields(keywordInput)
	cfg.DontIndent = !indent

	// Validate
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	// Save configuration
	if err := cfg.Save(configPath); err != nil {
		return err
	}

	fmt.Printf("\nConfiguration saved to %s\n", configPath)
	fmt.Println("\nYou're all set! Try running:")
	fmt.Println("  orgc outline notes.org")
	fmt.Println("  orgc todo notes.org --open")

	return nil
}
