package unified

import (
	"sync"
	"testing"
	"time"

	"github.com/blackwell-systems/bookmgr/internal/api"
	"github.com/blackwell-systems/bookmgr/internal/apitest"
	"github.com/blackwell-systems/bookmgr/internal/locale"
	"github.com/blackwell-systems/bookmgr/internal/tui"
	tea "github.com/charmbracelet/bubbletea"
)

// cmdWait bounds how long a command may take to produce its message.
// Cursor blinks and notification timers take longer and are dropped.
const cmdWait = 300 * time.Millisecond

// drain runs cmd and returns the messages it produces, flattening batches.
func drain(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	ch := make(chan tea.Msg, 1)
	go func() { ch <- cmd() }()

	var msg tea.Msg
	select {
	case msg = <-ch:
	case <-time.After(cmdWait):
		return nil
	}

	batch, ok := msg.(tea.BatchMsg)
	if !ok {
		if msg == nil {
			return nil
		}
		return []tea.Msg{msg}
	}

	results := make([][]tea.Msg, len(batch))
	var wg sync.WaitGroup
	for i, c := range batch {
		wg.Add(1)
		go func(i int, c tea.Cmd) {
			defer wg.Done()
			results[i] = drain(c)
		}(i, c)
	}
	wg.Wait()

	var out []tea.Msg
	for _, r := range results {
		out = append(out, r...)
	}
	return out
}

// run feeds msgs to m and keeps feeding whatever the returned commands
// produce until nothing is left.
func run(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	queue := append([]tea.Msg(nil), msgs...)
	for steps := 0; len(queue) > 0; steps++ {
		if steps > 200 {
			t.Fatal("message loop did not settle")
		}
		msg := queue[0]
		queue = queue[1:]
		if _, ok := msg.(tea.QuitMsg); ok {
			continue
		}
		next, cmd := m.Update(msg)
		m = next.(Model)
		queue = append(queue, drain(cmd)...)
	}
	return m
}

// start builds a router at path against srv and runs its start-up commands.
func start(t *testing.T, srv *apitest.Server, path string) Model {
	t.Helper()
	m := New(Deps{
		Client:         api.New(srv.URL()),
		Locale:         locale.Must("en"),
		NotifyDuration: time.Hour,
	}, path)
	msgs := append([]tea.Msg{tea.WindowSizeMsg{Width: 100, Height: 40}}, drain(m.Init())...)
	return run(t, m, msgs...)
}

func keyMsg(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

func typed(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func listOf(t *testing.T, m Model) listScreen {
	t.Helper()
	s, ok := m.screen.(listScreen)
	if !ok {
		t.Fatalf("screen = %T, want listScreen", m.screen)
	}
	return s
}

func detailOf(t *testing.T, m Model) detailScreen {
	t.Helper()
	s, ok := m.screen.(detailScreen)
	if !ok {
		t.Fatalf("screen = %T, want detailScreen", m.screen)
	}
	return s
}

func listedIDs(s listScreen) []int {
	var ids []int
	for _, it := range s.books.Items() {
		ids = append(ids, it.(tui.BookItem).Book.ID)
	}
	return ids
}
