package app

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newReviewCmd() *cobra.Command {
	var (
		rating  int
		comment string
	)

	cmd := &cobra.Command{
		Use:   "review [id]",
		Short: "Set the rating and comment of a book",
		Long: `Replace the review of a book. Both the rating and the comment are sent;
an omitted comment clears it.

Examples:
  bookmgr review 5 --rating 7 --comment "Great"`,
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: completeBookIDs,
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := bookIDArg(cmd, args, "Select a book to review")
			if err != nil {
				return err
			}
			if err := client.UpdateBook(id, rating, comment); err != nil {
				return fmt.Errorf("reviewing book #%d: %w", id, err)
			}
			ok("Review saved for book #%d", id)
			printField("rating", fmt.Sprintf("%d", rating))
			if comment != "" {
				printField("comment", comment)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&rating, "rating", 0, "Rating (integer)")
	cmd.Flags().StringVar(&comment, "comment", "", "Review comment")
	return cmd
}
