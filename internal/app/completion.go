package app

import (
	"os"
	"strconv"

	"github.com/spf13/cobra"
)

func newCompletionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell autocompletion scripts",
		Long: `Generate autocompletion scripts for your shell.

Examples:
  # Bash (add to ~/.bashrc)
  source <(bookmgr completion bash)

  # Zsh (add to ~/.zshrc)
  source <(bookmgr completion zsh)

  # Fish
  bookmgr completion fish > ~/.config/fish/completions/bookmgr.fish

  # PowerShell
  bookmgr completion powershell | Out-String | Invoke-Expression`,
		Args:                  cobra.ExactArgs(1),
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(os.Stdout, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(os.Stdout)
			case "fish":
				return cmd.Root().GenFishCompletion(os.Stdout, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(os.Stdout)
			default:
				return cmd.Help()
			}
		},
	}

	return cmd
}

// completeBookIDs offers the ids of the books on the server, with their
// names as descriptions, for commands taking a book id.
func completeBookIDs(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 || client == nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	books, err := client.ListBooks()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	out := make([]string, 0, len(books))
	for _, b := range books {
		out = append(out, strconv.Itoa(b.ID)+"\t"+b.Name)
	}
	return out, cobra.ShellCompDirectiveNoFileComp
}
