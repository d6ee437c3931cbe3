package unified

import (
	"strconv"
	"strings"

	"github.com/blackwell-systems/bookmgr/internal/api"
	"github.com/blackwell-systems/bookmgr/internal/locale"
	"github.com/blackwell-systems/bookmgr/internal/route"
	"github.com/blackwell-systems/bookmgr/internal/tui"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type detailFocus int

const (
	detailFocusRating detailFocus = iota
	detailFocusComment
	detailFocusSubmit
	detailFocusDelete
	detailFocusBack
	detailFocusCount
)

const commentLines = 4

// detailScreen reviews or deletes one book.
type detailScreen struct {
	deps   Deps
	gen    int
	bookID int

	// book is nil until the lookup succeeds.
	book     *api.Book
	looking  bool
	notFound bool
	lookErr  error

	rating  textinput.Model
	comment textarea.Model
	focus   detailFocus
}

func newDetailScreen(deps Deps, gen, bookID int) detailScreen {
	rating := textinput.New()
	rating.SetValue("0")
	rating.CharLimit = 11
	rating.Width = 8
	rating.Prompt = "│ "
	rating.Focus()

	comment := textarea.New()
	comment.ShowLineNumbers = false
	comment.CharLimit = 0
	comment.SetHeight(commentLines)
	comment.SetWidth(40)

	return detailScreen{
		deps:    deps,
		gen:     gen,
		bookID:  bookID,
		looking: true,
		rating:  rating,
		comment: comment,
		focus:   detailFocusRating,
	}
}

func (s detailScreen) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, s.lookup())
}

// lookup fetches the book so the view can show what is being reviewed.
func (s detailScreen) lookup() tea.Cmd {
	client, gen, id := s.deps.Client, s.gen, s.bookID
	return func() tea.Msg {
		book, err := client.FindBook(id)
		return bookFoundMsg{gen: gen, book: book, err: err}
	}
}

// submit sends the review. A rating that is not an integer is reported
// and nothing is sent.
func (s detailScreen) submit() tea.Cmd {
	rating, err := strconv.Atoi(strings.TrimSpace(s.rating.Value()))
	if err != nil {
		return notify(tui.NotifyError, s.deps.Locale.T("ConnectionError", locale.Data{"Error": err.Error()}))
	}
	client, gen, id, comment := s.deps.Client, s.gen, s.bookID, s.comment.Value()
	return func() tea.Msg {
		return reviewSubmittedMsg{gen: gen, err: client.UpdateBook(id, rating, comment)}
	}
}

func (s detailScreen) remove() tea.Cmd {
	client, gen, id := s.deps.Client, s.gen, s.bookID
	return func() tea.Msg {
		return bookDeletedMsg{gen: gen, err: client.DeleteBook(id)}
	}
}

func (s detailScreen) Update(msg tea.Msg) (screen, tea.Cmd) {
	loc := s.deps.Locale

	switch msg := msg.(type) {
	case bookFoundMsg:
		s.looking = false
		s.book, s.lookErr, s.notFound = nil, nil, false
		switch {
		case msg.err == nil:
			s.book = msg.book
		case api.IsNotFound(msg.err):
			s.notFound = true
		default:
			s.lookErr = msg.err
		}
		return s, nil

	case reviewSubmittedMsg:
		if msg.err != nil {
			return s, notify(tui.NotifyError, s.deps.failureText(msg.err, "ReviewFailure"))
		}
		s.looking = true
		return s, tea.Batch(notify(tui.NotifySuccess, loc.T("ReviewSuccess")), s.lookup())

	case bookDeletedMsg:
		if msg.err != nil {
			return s, notify(tui.NotifyError, s.deps.failureText(msg.err, "DeleteFailure"))
		}
		return s, navigate(route.List(), &tui.Notification{Kind: tui.NotifySuccess, Text: loc.T("DeleteSuccess")})

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	return s.updateInputs(msg)
}

func (s detailScreen) handleKey(msg tea.KeyMsg) (screen, tea.Cmd) {
	switch {
	case key.Matches(msg, tui.Keys.Back):
		return s, navigate(route.List(), nil)
	case key.Matches(msg, tui.Keys.Next):
		cmd := s.setFocus(s.focus + 1)
		return s, cmd
	case key.Matches(msg, tui.Keys.Prev):
		cmd := s.setFocus(s.focus - 1)
		return s, cmd
	}

	switch s.focus {
	case detailFocusRating:
		if key.Matches(msg, tui.Keys.Activate) {
			return s, s.submit()
		}
		var cmd tea.Cmd
		s.rating, cmd = s.rating.Update(msg)
		return s, cmd

	case detailFocusComment:
		// enter inserts a newline here.
		var cmd tea.Cmd
		s.comment, cmd = s.comment.Update(msg)
		return s, cmd
	}

	if !key.Matches(msg, tui.Keys.Activate) {
		return s, nil
	}
	switch s.focus {
	case detailFocusSubmit:
		return s, s.submit()
	case detailFocusDelete:
		return s, s.remove()
	case detailFocusBack:
		return s, navigate(route.List(), nil)
	}
	return s, nil
}

func (s detailScreen) updateInputs(msg tea.Msg) (screen, tea.Cmd) {
	var rcmd, ccmd tea.Cmd
	s.rating, rcmd = s.rating.Update(msg)
	s.comment, ccmd = s.comment.Update(msg)
	return s, tea.Batch(rcmd, ccmd)
}

func (s *detailScreen) setFocus(f detailFocus) tea.Cmd {
	s.focus = (f + detailFocusCount) % detailFocusCount
	s.rating.Blur()
	s.comment.Blur()
	switch s.focus {
	case detailFocusRating:
		return s.rating.Focus()
	case detailFocusComment:
		return s.comment.Focus()
	}
	return nil
}

func (s detailScreen) SetSize(width, height int) screen {
	w := width - tui.StyleLabel.GetWidth() - 2
	if w < 20 {
		w = 20
	}
	s.comment.SetWidth(w)
	return s
}

func (s detailScreen) View() string {
	loc := s.deps.Locale
	var b strings.Builder

	b.WriteString(tui.StyleHeader.Render(loc.T("ReviewHeading")))
	b.WriteString("\n")
	b.WriteString(s.bookLine())
	b.WriteString("\n\n")

	b.WriteString(tui.RenderLabel(loc.T("RatingLabel"), s.focus == detailFocusRating))
	b.WriteString(s.rating.View())
	b.WriteString("\n")

	b.WriteString(tui.RenderLabel(loc.T("CommentLabel"), s.focus == detailFocusComment))
	b.WriteString("\n")
	b.WriteString(s.comment.View())
	b.WriteString("\n\n")

	b.WriteString(tui.StyleLabel.Render(""))
	b.WriteString(tui.RenderButton(loc.T("SubmitReviewButton"), s.focus == detailFocusSubmit))
	b.WriteString("  ")
	b.WriteString(tui.RenderButton(loc.T("DeleteButton"), s.focus == detailFocusDelete))
	b.WriteString("  ")
	b.WriteString(tui.RenderButton(loc.T("BackButton"), s.focus == detailFocusBack))

	return b.String()
}

// bookLine describes the book under review, or why it cannot be shown.
func (s detailScreen) bookLine() string {
	loc := s.deps.Locale
	switch {
	case s.looking:
		return tui.StyleHelp.Render(loc.T("BookLookup", locale.Data{"ID": s.bookID}))
	case s.notFound:
		return tui.StyleError.Render(loc.T("BookNotFound", locale.Data{"ID": s.bookID}))
	case s.lookErr != nil:
		return tui.StyleError.Render(loc.T("ConnectionError", locale.Data{"Error": s.lookErr.Error()}))
	case s.book == nil:
		return ""
	}

	line := tui.StyleNormal.Render("#"+strconv.Itoa(s.book.ID)+" "+s.book.Name) +
		"  " + tui.StyleFormat.Render(s.deps.formatLabel(s.book.Format))
	current := loc.T("CurrentReview", locale.Data{"Rating": s.book.Rating})
	if s.book.Comment != "" {
		current += ": " + s.book.Comment
	}
	return line + "\n" + tui.StyleHelp.Render(current)
}

func (s detailScreen) Shortcuts() []tui.ShortcutEntry {
	loc := s.deps.Locale
	return []tui.ShortcutEntry{
		{Key: "tab", Label: loc.T("HelpNavigate")},
		{Key: "enter", Label: loc.T("HelpActivate")},
		{Key: "esc", Label: loc.T("HelpBack")},
		{Label: loc.T("HelpQuit")},
	}
}
