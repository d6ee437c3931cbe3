package unified

import (
	"github.com/blackwell-systems/bookmgr/internal/locale"
	"github.com/blackwell-systems/bookmgr/internal/route"
	"github.com/blackwell-systems/bookmgr/internal/tui"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
)

// screen is a view the router can show. Screens are values; the router
// swaps the whole value on every transition.
type screen interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (screen, tea.Cmd)
	View() string
	SetSize(width, height int) screen
	Shortcuts() []tui.ShortcutEntry
}

// Model is the view router. It owns the current route and the one screen
// built for it.
type Model struct {
	deps   Deps
	route  route.Route
	gen    int
	screen screen
	toast  tui.Toast
	width  int
	height int

	// activeCmd is the footer shortcut to highlight, cleared by a tick.
	activeCmd string

	// startNotice is shown by Init, e.g. when the start route was invalid.
	startNotice *tui.Notification
}

// New creates the router at the route given as a path-plus-query string.
// An unparsable start route falls back to the list with an error notice.
func New(deps Deps, start string) Model {
	deps = deps.withDefaults()
	m := Model{
		deps:  deps,
		toast: tui.NewToast(deps.NotifyDuration),
	}

	r, err := route.Parse(start)
	if err != nil {
		m.startNotice = &tui.Notification{Kind: tui.NotifyError, Text: m.invalidRouteText(start, err)}
		r = route.List()
	}
	m.enter(r)
	return m
}

// Route returns the current route.
func (m Model) Route() route.Route {
	return m.route
}

// Notification returns the visible notification, if any.
func (m Model) Notification() (tui.Notification, bool) {
	return m.toast.Current()
}

func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.screen.Init()}
	if m.startNotice != nil {
		n := *m.startNotice
		cmds = append(cmds, func() tea.Msg { return NotifyMsg{n} })
	}
	return tea.Batch(cmds...)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.screen = m.screen.SetSize(m.bodySize())
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, tui.Keys.ForceQuit) {
			return m, tea.Quit
		}
		var highlight tea.Cmd
		if m.isShortcut(msg.String()) {
			m.activeCmd = msg.String()
			highlight = tui.HighlightCmd()
		}
		var cmd tea.Cmd
		m.screen, cmd = m.screen.Update(msg)
		return m, tea.Batch(cmd, highlight)

	case tui.ClearActiveCmdMsg:
		m.activeCmd = ""
		return m, nil

	case QuitAppMsg:
		return m, tea.Quit

	case NavigateMsg:
		cmds := []tea.Cmd{m.navigate(msg.Route)}
		if msg.Notice != nil {
			cmds = append(cmds, m.toast.Show(*msg.Notice))
		}
		return m, tea.Batch(cmds...)

	case OpenMsg:
		r, err := route.Parse(msg.Path)
		if err != nil {
			nav := m.navigate(route.List())
			shown := m.toast.Show(tui.Notification{Kind: tui.NotifyError, Text: m.invalidRouteText(msg.Path, err)})
			return m, tea.Batch(nav, shown)
		}
		cmd := m.navigate(r)
		return m, cmd

	case NotifyMsg:
		cmd := m.toast.Show(msg.Notification)
		return m, cmd

	case tui.DismissMsg:
		m.toast = m.toast.Update(msg)
		return m, nil

	case viewResult:
		if msg.generation() != m.gen {
			m.deps.Logger.Debug("dropping result of a closed view",
				zap.Int("result_gen", msg.generation()), zap.Int("gen", m.gen))
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.screen, cmd = m.screen.Update(msg)
	return m, cmd
}

// enter replaces the active screen with a fresh one for r. Nothing from
// the previous screen survives.
func (m *Model) enter(r route.Route) {
	m.gen++
	m.deps.Logger.Debug("route change",
		zap.Stringer("from", m.route), zap.Stringer("to", r), zap.Int("gen", m.gen))
	m.route = r

	if r.IsDetail() {
		m.screen = newDetailScreen(m.deps, m.gen, r.BookID)
	} else {
		m.screen = newListScreen(m.deps, m.gen)
	}
	if m.width > 0 {
		m.screen = m.screen.SetSize(m.bodySize())
	}
}

// navigate enters r and returns the new screen's start-up command.
func (m *Model) navigate(r route.Route) tea.Cmd {
	m.enter(r)
	return m.screen.Init()
}

func (m Model) isShortcut(k string) bool {
	for _, sc := range m.screen.Shortcuts() {
		if sc.Key != "" && sc.Key == k {
			return true
		}
	}
	return false
}

func (m Model) invalidRouteText(path string, err error) string {
	return m.deps.Locale.T("InvalidRoute", locale.Data{"Route": path, "Error": err.Error()})
}

// Frame measurements used by View and bodySize.
const (
	outerPadH   = 2
	outerPadV   = 1
	innerPadH   = 1 + 2
	chromeLines = 5 // header, blank, blank, notification, footer
)

// bodySize is the space left to the screen inside the frame.
func (m Model) bodySize() (int, int) {
	h, v := tui.StyleBorder.GetFrameSize()
	width := m.width - 2*outerPadH - innerPadH - h
	height := m.height - 2*outerPadV - v - chromeLines
	if width < 20 {
		width = 20
	}
	if height < 5 {
		height = 5
	}
	return width, height
}

func (m Model) View() string {
	loc := m.deps.Locale

	header := tui.StyleHeader.Render(loc.T("AppTitle")) + "  " + tui.StyleHelp.Render(m.route.String())
	footer := tui.RenderFooterBar(m.screen.Shortcuts(), m.activeCmd)

	content := lipgloss.JoinVertical(lipgloss.Left,
		header,
		"",
		m.screen.View(),
		"",
		m.toast.View(),
		footer,
	)

	outer := lipgloss.NewStyle().Padding(outerPadV, outerPadH)
	inner := lipgloss.NewStyle().Padding(0, 2, 0, 1)
	return outer.Render(tui.StyleBorder.Render(inner.Render(content)))
}
