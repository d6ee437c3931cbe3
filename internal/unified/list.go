package unified

import (
	"fmt"
	"strings"

	"github.com/blackwell-systems/bookmgr/internal/api"
	"github.com/blackwell-systems/bookmgr/internal/locale"
	"github.com/blackwell-systems/bookmgr/internal/route"
	"github.com/blackwell-systems/bookmgr/internal/tui"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// listFocus is the control that receives keys in the list view.
type listFocus int

const (
	listFocusName listFocus = iota
	listFocusFormat
	listFocusRegister
	listFocusBooks
	listFocusCount
)

// formLines is the height of the registration form above the book list.
const formLines = 7

// listScreen is the catalog: a registration form on top of the book rows.
type listScreen struct {
	deps Deps
	gen  int

	name   textinput.Model
	format int // index into api.Formats
	books  list.Model
	focus  listFocus

	loading bool
	loadErr error
	width   int
}

func newListScreen(deps Deps, gen int) listScreen {
	name := textinput.New()
	name.Placeholder = deps.Locale.T("NamePlaceholder")
	name.CharLimit = 200
	name.Width = 40
	name.Prompt = "│ "
	name.Focus()

	return listScreen{
		deps:    deps,
		gen:     gen,
		name:    name,
		books:   tui.NewBookList(),
		focus:   listFocusName,
		loading: true,
	}
}

func (s listScreen) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, s.load())
}

// load fetches the catalog. The result replaces every row.
func (s listScreen) load() tea.Cmd {
	client, gen := s.deps.Client, s.gen
	return func() tea.Msg {
		books, err := client.ListBooks()
		return booksLoadedMsg{gen: gen, books: books, err: err}
	}
}

// reload clears the rows and fetches them again.
func (s *listScreen) reload() tea.Cmd {
	s.loading = true
	s.loadErr = nil
	s.books.SetItems(nil)
	return s.load()
}

// register submits the form as it is. Inputs are kept either way.
func (s listScreen) register() tea.Cmd {
	client, gen := s.deps.Client, s.gen
	name, format := s.name.Value(), s.selectedFormat()
	return func() tea.Msg {
		return bookCreatedMsg{gen: gen, err: client.CreateBook(name, format)}
	}
}

// selectedFormat returns the format the selector points at.
func (s listScreen) selectedFormat() api.Format {
	return api.Formats[s.format]
}

func (s listScreen) Update(msg tea.Msg) (screen, tea.Cmd) {
	loc := s.deps.Locale

	switch msg := msg.(type) {
	case booksLoadedMsg:
		s.loading = false
		if msg.err != nil {
			s.loadErr = msg.err
			s.books.SetItems(nil)
			return s, notify(tui.NotifyError, loc.T("BooksLoadFailed", locale.Data{"Error": msg.err.Error()}))
		}
		s.loadErr = nil
		cmd := s.books.SetItems(tui.BookItems(msg.books, s.deps.formatLabel))
		return s, cmd

	case bookCreatedMsg:
		var n tea.Cmd
		if msg.err == nil {
			n = notify(tui.NotifySuccess, loc.T("RegisterSuccess"))
		} else {
			n = notify(tui.NotifyError, s.deps.failureText(msg.err, "RegisterFailure"))
		}
		// The list is refreshed whatever the outcome.
		reload := s.reload()
		return s, tea.Batch(n, reload)

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	var cmd tea.Cmd
	s.name, cmd = s.name.Update(msg)
	return s, cmd
}

func (s listScreen) handleKey(msg tea.KeyMsg) (screen, tea.Cmd) {
	switch {
	case key.Matches(msg, tui.Keys.Next):
		cmd := s.setFocus(s.focus + 1)
		return s, cmd
	case key.Matches(msg, tui.Keys.Prev):
		cmd := s.setFocus(s.focus - 1)
		return s, cmd
	}

	// The name field takes every other key as text.
	if s.focus == listFocusName {
		if key.Matches(msg, tui.Keys.Activate) {
			return s, s.register()
		}
		var cmd tea.Cmd
		s.name, cmd = s.name.Update(msg)
		return s, cmd
	}

	switch {
	case key.Matches(msg, tui.Keys.Quit):
		return s, quit
	case key.Matches(msg, tui.Keys.Reload):
		cmd := s.reload()
		return s, cmd
	}

	switch s.focus {
	case listFocusFormat:
		switch {
		case key.Matches(msg, tui.Keys.Toggle):
			step := 1
			if msg.String() == "left" {
				step = len(api.Formats) - 1
			}
			s.format = (s.format + step) % len(api.Formats)
			return s, nil
		case key.Matches(msg, tui.Keys.Activate):
			return s, s.register()
		}

	case listFocusRegister:
		if key.Matches(msg, tui.Keys.Activate) {
			return s, s.register()
		}

	case listFocusBooks:
		if key.Matches(msg, tui.Keys.Activate) {
			if item, ok := s.books.SelectedItem().(tui.BookItem); ok {
				return s, navigate(route.Detail(item.Book.ID), nil)
			}
			return s, nil
		}
		var cmd tea.Cmd
		s.books, cmd = s.books.Update(msg)
		return s, cmd
	}

	return s, nil
}

// setFocus moves focus, wrapping around, and focuses or blurs the name field.
func (s *listScreen) setFocus(f listFocus) tea.Cmd {
	s.focus = (f + listFocusCount) % listFocusCount
	if s.focus == listFocusName {
		return s.name.Focus()
	}
	s.name.Blur()
	return nil
}

func (s listScreen) SetSize(width, height int) screen {
	s.width = width
	listHeight := height - formLines
	if listHeight < 3 {
		listHeight = 3
	}
	s.books.SetSize(width, listHeight)
	return s
}

func (s listScreen) View() string {
	loc := s.deps.Locale
	var b strings.Builder

	b.WriteString(tui.RenderLabel(loc.T("NameLabel"), s.focus == listFocusName))
	b.WriteString(s.name.View())
	b.WriteString("\n")

	b.WriteString(tui.RenderLabel(loc.T("FormatLabel"), s.focus == listFocusFormat))
	for i, f := range api.Formats {
		mark := "( )"
		if i == s.format {
			mark = "(•)"
		}
		opt := mark + " " + s.deps.formatLabel(f)
		if i == s.format && s.focus == listFocusFormat {
			opt = tui.StyleHighlight.Render(opt)
		} else {
			opt = tui.StyleNormal.Render(opt)
		}
		if i > 0 {
			b.WriteString("   ")
		}
		b.WriteString(opt)
	}
	b.WriteString("\n\n")

	b.WriteString(tui.StyleLabel.Render(""))
	b.WriteString(tui.RenderButton(loc.T("RegisterButton"), s.focus == listFocusRegister))
	b.WriteString("\n\n")

	heading := loc.T("BooksHeading")
	if !s.loading && s.loadErr == nil {
		heading = fmt.Sprintf("%s (%d)", heading, len(s.books.Items()))
	}
	if s.focus == listFocusBooks {
		b.WriteString(tui.StyleHighlight.Render("› " + heading))
	} else {
		b.WriteString(tui.StyleHeader.Render(heading))
	}
	b.WriteString("\n")

	switch {
	case s.loading:
		b.WriteString(tui.StyleHelp.Render(loc.T("BooksLoading")))
	case s.loadErr != nil:
		b.WriteString(tui.StyleError.Render(loc.T("BooksLoadFailed", locale.Data{"Error": s.loadErr.Error()})))
	case len(s.books.Items()) == 0:
		b.WriteString(tui.StyleHelp.Render(loc.T("BooksEmpty")))
	default:
		b.WriteString(s.books.View())
	}

	return b.String()
}

func (s listScreen) Shortcuts() []tui.ShortcutEntry {
	loc := s.deps.Locale
	entries := []tui.ShortcutEntry{
		{Key: "tab", Label: loc.T("HelpNavigate")},
		{Key: "enter", Label: loc.T("HelpActivate")},
	}
	if s.focus == listFocusFormat {
		entries = append(entries, tui.ShortcutEntry{Key: "right", Label: loc.T("HelpToggle")})
	}
	if s.focus != listFocusName {
		entries = append(entries, tui.ShortcutEntry{Key: "r", Label: loc.T("HelpReload")})
	}
	return append(entries, tui.ShortcutEntry{Label: loc.T("HelpQuit")})
}
