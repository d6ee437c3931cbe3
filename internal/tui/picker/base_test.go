package picker

import (
	"errors"
	"io"
	"testing"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
)

type item string

func (i item) FilterValue() string { return string(i) }

type plainDelegate struct{}

func (plainDelegate) Height() int                                  { return 1 }
func (plainDelegate) Spacing() int                                 { return 0 }
func (plainDelegate) Update(tea.Msg, *list.Model) tea.Cmd          { return nil }
func (plainDelegate) Render(io.Writer, list.Model, int, list.Item) {}

func newBase(items ...list.Item) *Base {
	l := list.New(items, plainDelegate{}, 40, 10)
	return New(Config{
		List:       l,
		QuitKeys:   key.NewBinding(key.WithKeys("q", "esc")),
		SelectKeys: key.NewBinding(key.WithKeys("enter")),
	})
}

func TestSelect(t *testing.T) {
	b := newBase(item("a"), item("b"))

	b.Update(tea.KeyMsg{Type: tea.KeyDown})
	cmd := b.Update(tea.KeyMsg{Type: tea.KeyEnter})

	if cmd == nil || !b.IsQuitting() {
		t.Fatal("enter did not quit the picker")
	}
	if got := b.Selected(); got != item("b") {
		t.Errorf("Selected() = %v, want b", got)
	}
	if b.Error() != nil {
		t.Errorf("Error() = %v, want nil", b.Error())
	}
	if b.View() != "" {
		t.Error("View() is not empty after quitting")
	}
}

func TestQuit(t *testing.T) {
	b := newBase(item("a"))

	b.Update(tea.KeyMsg{Type: tea.KeyEsc})

	if !errors.Is(b.Error(), ErrCanceled) {
		t.Errorf("Error() = %v, want ErrCanceled", b.Error())
	}
	if b.Selected() != nil {
		t.Errorf("Selected() = %v, want nil", b.Selected())
	}
}

func TestSelectOnEmptyList(t *testing.T) {
	b := newBase()

	if cmd := b.Update(tea.KeyMsg{Type: tea.KeyEnter}); cmd != nil {
		t.Error("enter on an empty list returned a command")
	}
	if b.IsQuitting() {
		t.Error("picker quit with nothing to pick")
	}
}
