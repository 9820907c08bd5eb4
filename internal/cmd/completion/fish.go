package completion

import (
	"github.com/spf13/cobra"
)

// NewCmdFish creates the fish completion command.
func NewCmdFish() *cobra.Command {
	return &cobra.Command{
		Use:   "fish",
		Short: "Generate fish completion script",
		Long: `Generate fish completion script for orgc.

To load completions in your current shell session:

  orgc completion fish | source

To load completions for every new session:

  orgc completion fish > ~/.config/fish/completions/orgc.fish`,
		Example: `  # Load in current session
  orgc completion fish | source

  # Install permanently
  orgc completion fish > ~/.config/fish/completions/orgc.fish`,
		Args:                  cobra.NoArgs,
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Root().GenFishCompletion(cmd.OutOrStdout(), true)
		},
	}
}
