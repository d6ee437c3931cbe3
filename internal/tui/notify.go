package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// NotifyKind selects how a notification is styled.
type NotifyKind int

const (
	NotifySuccess NotifyKind = iota
	NotifyError
)

// Notification is a one-line message shown under the active view.
type Notification struct {
	Kind NotifyKind
	Text string
}

// DismissMsg hides the notification it was scheduled for. Later
// notifications are left alone.
type DismissMsg struct {
	seq int
}

// Toast holds at most one notification and dismisses it after a delay.
// A newer notification replaces the current one.
type Toast struct {
	current  *Notification
	seq      int
	duration time.Duration
}

// NewToast creates a Toast whose notifications last for d.
func NewToast(d time.Duration) Toast {
	return Toast{duration: d}
}

// Show displays n and returns the command that will dismiss it.
func (t *Toast) Show(n Notification) tea.Cmd {
	t.seq++
	t.current = &n
	seq := t.seq
	return tea.Tick(t.duration, func(time.Time) tea.Msg {
		return DismissMsg{seq: seq}
	})
}

// Update handles DismissMsg.
func (t Toast) Update(msg tea.Msg) Toast {
	if d, ok := msg.(DismissMsg); ok && d.seq == t.seq {
		t.current = nil
	}
	return t
}

// Current returns the visible notification, if any.
func (t Toast) Current() (Notification, bool) {
	if t.current == nil {
		return Notification{}, false
	}
	return *t.current, true
}

// View renders the visible notification, or an empty line.
func (t Toast) View() string {
	n, ok := t.Current()
	if !ok {
		return ""
	}
	if n.Kind == NotifyError {
		return StyleError.Render("✗ " + n.Text)
	}
	return StyleSuccess.Render("✓ " + n.Text)
}
