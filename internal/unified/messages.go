package unified

import (
	"github.com/blackwell-systems/bookmgr/internal/api"
	"github.com/blackwell-systems/bookmgr/internal/route"
	"github.com/blackwell-systems/bookmgr/internal/tui"
	tea "github.com/charmbracelet/bubbletea"
)

// NavigateMsg switches the active view. Notice, if set, is shown after the
// switch.
type NavigateMsg struct {
	Route  route.Route
	Notice *tui.Notification
}

// OpenMsg navigates to an unparsed route string such as "/review?id=5".
type OpenMsg struct {
	Path string
}

// NotifyMsg shows a notification.
type NotifyMsg struct {
	tui.Notification
}

// QuitAppMsg is emitted when the entire application should quit
type QuitAppMsg struct{}

// viewResult is implemented by API results. Each carries the generation of
// the view that issued the call so results that outlive their view are
// dropped.
type viewResult interface {
	generation() int
}

type booksLoadedMsg struct {
	gen   int
	books []api.Book
	err   error
}

type bookCreatedMsg struct {
	gen int
	err error
}

type bookFoundMsg struct {
	gen  int
	book *api.Book
	err  error
}

type reviewSubmittedMsg struct {
	gen int
	err error
}

type bookDeletedMsg struct {
	gen int
	err error
}

func (m booksLoadedMsg) generation() int     { return m.gen }
func (m bookCreatedMsg) generation() int     { return m.gen }
func (m bookFoundMsg) generation() int       { return m.gen }
func (m reviewSubmittedMsg) generation() int { return m.gen }
func (m bookDeletedMsg) generation() int     { return m.gen }

func navigate(r route.Route, notice *tui.Notification) tea.Cmd {
	return func() tea.Msg {
		return NavigateMsg{Route: r, Notice: notice}
	}
}

func notify(kind tui.NotifyKind, text string) tea.Cmd {
	return func() tea.Msg {
		return NotifyMsg{tui.Notification{Kind: kind, Text: text}}
	}
}

func quit() tea.Msg {
	return QuitAppMsg{}
}
