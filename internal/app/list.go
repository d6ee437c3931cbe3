package app

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newListCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the books in the catalog",
		Long: `Fetch the catalog from the books API and print it.

Examples:
  bookmgr list
  bookmgr list --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			books, err := client.ListBooks()
			if err != nil {
				return fmt.Errorf("listing books: %w", err)
			}

			out := cmd.OutOrStdout()
			switch format {
			case "json":
				return writeBookJSON(out, books)
			case "table":
				if len(books) == 0 {
					fmt.Fprintln(out, "No books found.")
					return nil
				}
				writeBookTable(out, books)
				return nil
			default:
				return fmt.Errorf("unknown format %q (want table or json)", format)
			}
		},
	}

	cmd.Flags().StringVar(&format, "format", "table", "Output format: table or json")
	return cmd
}
