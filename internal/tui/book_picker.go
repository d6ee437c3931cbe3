package tui

import (
	"fmt"
	"io"

	"github.com/blackwell-systems/bookmgr/internal/api"
	"github.com/blackwell-systems/bookmgr/internal/tui/delegate"
	"github.com/blackwell-systems/bookmgr/internal/tui/picker"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	xansi "github.com/charmbracelet/x/ansi"
)

// renderBookPickerItem renders a book item in picker mode
func renderBookPickerItem(w io.Writer, m list.Model, index int, item list.Item) {
	bookItem, ok := item.(BookItem)
	if !ok {
		return
	}

	idStr := fmt.Sprintf("#%-5d", bookItem.Book.ID)
	formatInfo := StyleHelp.Render("[" + bookItem.FormatLabel + "]")

	review := fmt.Sprintf("★%d", bookItem.Book.Rating)
	if c := bookItem.Book.Comment; c != "" {
		review += " " + xansi.Truncate(c, max(m.Width()-16, 10), "…")
	}

	if index == m.Index() {
		_, _ = fmt.Fprint(w, StyleHighlight.Render("› "+idStr+" "+bookItem.Book.Name)+" "+formatInfo)
	} else {
		_, _ = fmt.Fprint(w, "  "+StyleNormal.Render(idStr)+" "+bookItem.Book.Name+" "+formatInfo)
	}
	_, _ = fmt.Fprint(w, "\n         "+StyleHelp.Render(review))
}

type bookPickerModel struct {
	base *picker.Base
}

func (m bookPickerModel) Init() tea.Cmd {
	return nil
}

func (m bookPickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return m, m.base.Update(msg)
}

func (m bookPickerModel) View() string {
	return m.base.View()
}

// newBookPicker builds the picker model over books.
func newBookPicker(books []api.Book, title string) bookPickerModel {
	items := BookItems(books, api.Format.Label)

	l := list.New(items, delegate.New(renderBookPickerItem, delegate.WithHeight(2)), 0, 0)
	if title != "" {
		l.Title = title
	} else {
		l.Title = "Select a book"
	}
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.Styles.Title = StyleHeader
	l.Styles.PaginationStyle = StyleHelp
	l.Styles.HelpStyle = StyleHelp

	keys := NewPickerKeys()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Select}
	}

	return bookPickerModel{base: picker.New(picker.Config{
		List:        l,
		QuitKeys:    keys.Quit,
		SelectKeys:  keys.Select,
		ShowBorder:  true,
		BorderStyle: StyleBorder,
	})}
}

// RunBookPicker lets the user pick one of books full-screen.
// Returns picker.ErrCanceled if the user quits instead.
func RunBookPicker(books []api.Book, title string) (api.Book, error) {
	if len(books) == 0 {
		return api.Book{}, fmt.Errorf("no books to display")
	}

	p := tea.NewProgram(newBookPicker(books, title), tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return api.Book{}, fmt.Errorf("running TUI: %w", err)
	}

	fm, ok := finalModel.(bookPickerModel)
	if !ok {
		return api.Book{}, picker.ErrCanceled
	}
	if item, ok := fm.base.Selected().(BookItem); ok {
		return item.Book, nil
	}
	if err := fm.base.Error(); err != nil {
		return api.Book{}, err
	}
	return api.Book{}, picker.ErrCanceled
}
