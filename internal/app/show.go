package app

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:               "show [id]",
		Short:             "Show one book and its review",
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: completeBookIDs,
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := bookIDArg(cmd, args, "Select a book to show")
			if err != nil {
				return err
			}
			b, err := client.FindBook(id)
			if err != nil {
				return fmt.Errorf("book #%d: %w", id, err)
			}

			header("── %s", b.Name)
			printField("id", strconv.Itoa(b.ID))
			printField("format", b.Format.Label())
			printField("rating", strconv.Itoa(b.Rating))
			if b.Comment != "" {
				printField("comment", b.Comment)
			}
			return nil
		},
	}
}
