package app

import (
	"fmt"

	"github.com/blackwell-systems/bookmgr/internal/api"
	"github.com/spf13/cobra"
)

func newAddCmd() *cobra.Command {
	var (
		name   string
		format string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Register a new book",
		Long: `Register a book in the catalog. The server assigns its id.

The format is a wire code or a name: AK, kindle, "Amazon Kindle", F or physical.

Examples:
  bookmgr add --name "Dune" --format physical
  bookmgr add --name "Neuromancer" --format AK`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := api.ParseFormat(format)
			if err != nil {
				return err
			}
			if err := client.CreateBook(name, f); err != nil {
				return fmt.Errorf("registering book: %w", err)
			}
			ok("Registered %q (%s)", name, f.Label())
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Book name (required)")
	cmd.Flags().StringVar(&format, "format", "kindle", "Book format: kindle or physical")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}
