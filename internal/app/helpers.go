package app

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/blackwell-systems/bookmgr/internal/api"
	"github.com/blackwell-systems/bookmgr/internal/tui"
	xansi "github.com/charmbracelet/x/ansi"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// maxNameWidth caps the name column of the book table.
const maxNameWidth = 48

// parseBookID parses a positive book id argument.
func parseBookID(s string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid book id %q: must be a positive integer", s)
	}
	return id, nil
}

func printField(label, value string) {
	fmt.Printf("  %-14s %s\n", color.CyanString(label+":"), value)
}

// writeBookTable prints one line per book: id, name, format and rating.
func writeBookTable(w io.Writer, books []api.Book) {
	nameWidth := 4
	for _, b := range books {
		if n := xansi.StringWidth(b.Name); n > nameWidth {
			nameWidth = n
		}
	}
	if nameWidth > maxNameWidth {
		nameWidth = maxNameWidth
	}

	fmt.Fprintf(w, "  %-5s %-*s  %-14s %s\n", "ID", nameWidth, "NAME", "FORMAT", "RATING")
	for _, b := range books {
		name := xansi.Truncate(b.Name, nameWidth, "…")
		pad := strings.Repeat(" ", nameWidth-xansi.StringWidth(name))
		fmt.Fprintf(w, "  %-5s %s%s  %-14s %d\n",
			color.WhiteString(strconv.Itoa(b.ID)),
			name, pad,
			b.Format.Label(),
			b.Rating,
		)
	}
}

type bookJSON struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Format  string `json:"format"`
	Label   string `json:"format_label"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment,omitempty"`
}

// writeBookJSON prints books as an indented JSON array.
func writeBookJSON(w io.Writer, books []api.Book) error {
	out := make([]bookJSON, 0, len(books))
	for _, b := range books {
		out = append(out, bookJSON{
			ID:      b.ID,
			Name:    b.Name,
			Format:  string(b.Format),
			Label:   b.Format.Label(),
			Rating:  b.Rating,
			Comment: b.Comment,
		})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// bookIDArg returns the book id given as the first argument. Without one,
// an interactive terminal gets a picker over the catalog.
func bookIDArg(cmd *cobra.Command, args []string, title string) (int, error) {
	if len(args) > 0 {
		return parseBookID(args[0])
	}
	if !tui.ShouldUseTUI(cmd) {
		return 0, fmt.Errorf("book id required in non-interactive mode")
	}

	books, err := client.ListBooks()
	if err != nil {
		return 0, fmt.Errorf("listing books: %w", err)
	}
	if len(books) == 0 {
		return 0, fmt.Errorf("no books in the catalog")
	}
	b, err := tui.RunBookPicker(books, title)
	if err != nil {
		return 0, err
	}
	return b.ID, nil
}
