// cmd/completion.go
/*
Copyright © 2025 AceTeam <dev@aceteam.ai>
*/
package cmd

import (
	"github.com/spf13/cobra"
)

var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion scripts",
	Long: `Generate shell completion scripts for fiolog.

To load completions:

Bash:
  $ source <(fiolog completion bash)

  # To load completions for each session, execute once:
  # Linux:
  $ fiolog completion bash > /etc/bash_completion.d/fiolog
  # macOS:
  $ fiolog completion bash > $(brew --prefix)/etc/bash_completion.d/fiolog

Zsh:
  # If shell completion is not already enabled in your environment,
  # you will need to enable it. You can execute the following once:
  $ echo "autoload -U compinit; compinit" >> ~/.zshrc

  # To load completions for each session, execute once:
  $ fiolog completion zsh > "${fpath[1]}/_fiolog"

  # You will need to start a new shell for this setup to take effect.

Fish:
  $ fiolog completion fish | source

  # To load completions for each session, execute once:
  $ fiolog completion fish > ~/.config/fish/completions/fiolog.fish

PowerShell:
  PS> fiolog completion powershell | Out-String | Invoke-Expression

  # To load completions for every new session, add the output to your profile:
  PS> fiolog completion powershell > fiolog.ps1
  # and source this file from your PowerShell profile.
`,
	DisableFlagsInUseLine: true,
	ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
	Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		switch args[0] {
		case "bash":
			return rootCmd.GenBashCompletionV2(out, true)
		case "zsh":
			return rootCmd.GenZshCompletion(out)
		case "fish":
			return rootCmd.GenFishCompletion(out, true)
		default:
			return rootCmd.GenPowerShellCompletionWithDesc(out)
		}
	},
}

func init() {
	rootCmd.AddCommand(completionCmd)
}
