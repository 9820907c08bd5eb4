package completion

import (
	"github.com/spf13/cobra"
)

// NewCmdBash creates the bash completion command.
func NewCmdBash() *cobra.Command {
	return &cobra.Command{
		Use:   "bash",
		Short: "Generate bash completion script",
		Long: `Generate bash completion script for orgc.

To load completions in your current shell session:

  source <(orgc completion bash)

To load completions for every new session:

  # Linux
  orgc completion bash > /etc/bash_completion.d/orgc

  # macOS (requires bash-completion)
  orgc completion bash > $(brew --prefix)/etc/bash_completion.d/orgc`,
		Example: `  # Load in current session
  source <(orgc completion bash)

  # Install permanently (Linux)
  orgc completion bash | sudo tee /etc/bash_completion.d/orgc > /dev/null

  # Install permanently (macOS with Homebrew)
  orgc completion bash > $(brew --prefix)/etc/bash_completion.d/orgc`,
		Args:                  cobra.NoArgs,
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Root().GenBashCompletion(cmd.OutOrStdout())
		},
	}
}
