package tui

import (
	"fmt"
	"io"
	"strconv"

	"github.com/blackwell-systems/bookmgr/internal/api"
	"github.com/blackwell-systems/bookmgr/internal/tui/delegate"
	"github.com/charmbracelet/bubbles/list"
	xansi "github.com/charmbracelet/x/ansi"
)

// BookItem is one row of the catalog list. The row carries the book it was
// rendered from, so activating it always opens that book.
type BookItem struct {
	Book        api.Book
	FormatLabel string // localized label of Book.Format
}

// FilterValue implements list.Item
func (b BookItem) FilterValue() string {
	return b.Book.Name
}

// BookItems wraps books as list items. formatLabel localizes a format.
func BookItems(books []api.Book, formatLabel func(api.Format) string) []list.Item {
	items := make([]list.Item, len(books))
	for i, b := range books {
		items[i] = BookItem{Book: b, FormatLabel: formatLabel(b.Format)}
	}
	return items
}

// Column width constraints
const (
	minNameWidth = 12
	formatWidth  = 14
	ratingWidth  = 4
	columnGap    = 2
	rowPrefix    = 2 // "› " or "  "
)

// nameWidth gives the name column whatever the fixed columns leave.
func nameWidth(total int) int {
	w := total - rowPrefix - formatWidth - ratingWidth - 2*columnGap
	if w < minNameWidth {
		return minNameWidth
	}
	return w
}

func renderBookRow(w io.Writer, m list.Model, index int, item list.Item) {
	bi, ok := item.(BookItem)
	if !ok {
		return
	}

	nw := nameWidth(m.Width())
	name := xansi.Truncate(bi.Book.Name, nw, "…")
	format := xansi.Truncate(bi.FormatLabel, formatWidth, "…")
	rating := ""
	if bi.Book.Rating != 0 {
		rating = "★" + strconv.Itoa(bi.Book.Rating)
	}

	paddedName := fmt.Sprintf("%-*s", nw, name)
	rest := "  " + StyleFormat.Render(fmt.Sprintf("%-*s", formatWidth, format)) +
		"  " + StyleHelp.Render(rating)

	if index == m.Index() {
		_, _ = fmt.Fprint(w, StyleHighlight.Render("› "+paddedName)+rest)
		return
	}
	_, _ = fmt.Fprint(w, "  "+StyleNormal.Render(paddedName)+rest)
}

// NewBookList builds the list widget used by the catalog view.
func NewBookList() list.Model {
	l := list.New(nil, delegate.New(renderBookRow), 0, 0)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)
	l.DisableQuitKeybindings()
	l.Styles.NoItems = StyleHelp
	return l
}
