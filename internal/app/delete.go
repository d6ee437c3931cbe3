package app

import (
	"fmt"
	"os"

	"github.com/blackwell-systems/bookmgr/internal/util"
	"github.com/spf13/cobra"
)

func newDeleteCmd() *cobra.Command {
	var skipConfirm bool

	cmd := &cobra.Command{
		Use:   "delete [id]",
		Short: "Remove a book from the catalog",
		Long: `Delete a book on the server. This cannot be undone.

Examples:
  bookmgr delete 5
  bookmgr delete 5 --yes`,
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: completeBookIDs,
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := bookIDArg(cmd, args, "Select a book to delete")
			if err != nil {
				return err
			}

			if !skipConfirm {
				if !util.IsStdinTTY() {
					return fmt.Errorf("refusing to delete book #%d without --yes in non-interactive mode", id)
				}
				prompt := fmt.Sprintf("Delete book #%d?", id)
				// The name is only for the prompt; the server decides.
				if b, err := client.FindBook(id); err == nil {
					prompt = fmt.Sprintf("Delete book #%d %q?", id, b.Name)
				}
				if !util.Confirm(os.Stdin, os.Stdout, prompt, false) {
					warn("Cancelled.")
					return nil
				}
			}

			if err := client.DeleteBook(id); err != nil {
				return fmt.Errorf("deleting book #%d: %w", id, err)
			}
			ok("Deleted book #%d", id)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&skipConfirm, "yes", "y", false, "Skip the confirmation prompt")
	return cmd
}
