// Package picker is the shared core of the full-screen, pick-one lists.
package picker

import (
	"errors"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ErrCanceled is returned when the user leaves without picking.
var ErrCanceled = errors.New("canceled by user")

// Config configures a base picker.
type Config struct {
	// List is the underlying bubbles list.Model
	List list.Model

	QuitKeys   key.Binding
	SelectKeys key.Binding

	BorderStyle lipgloss.Style
	ShowBorder  bool
}

// Base handles quitting, selection and sizing for a picker list.
type Base struct {
	config   Config
	list     list.Model
	selected list.Item
	quitting bool
	err      error
}

// New creates a new base picker.
func New(cfg Config) *Base {
	return &Base{
		config: cfg,
		list:   cfg.List,
	}
}

// IsQuitting returns whether the picker is quitting.
func (b *Base) IsQuitting() bool {
	return b.quitting
}

// Error returns ErrCanceled after a quit key, nil otherwise.
func (b *Base) Error() error {
	return b.err
}

// Selected returns the picked item, or nil.
func (b *Base) Selected() list.Item {
	return b.selected
}

// Update handles standard picker updates.
func (b *Base) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		// Keys belong to the filter input while it is open.
		if b.list.FilterState() == list.Filtering {
			break
		}

		switch {
		case key.Matches(msg, b.config.QuitKeys):
			b.err = ErrCanceled
			b.quitting = true
			return tea.Quit

		case key.Matches(msg, b.config.SelectKeys):
			if item := b.list.SelectedItem(); item != nil {
				b.selected = item
				b.quitting = true
				return tea.Quit
			}
			return nil
		}

	case tea.WindowSizeMsg:
		if b.config.ShowBorder {
			h, v := b.config.BorderStyle.GetFrameSize()
			b.list.SetSize(msg.Width-h, msg.Height-v)
		} else {
			b.list.SetSize(msg.Width, msg.Height)
		}
	}

	var cmd tea.Cmd
	b.list, cmd = b.list.Update(msg)
	return cmd
}

// View renders the picker.
func (b *Base) View() string {
	if b.quitting {
		return ""
	}

	view := b.list.View()
	if b.config.ShowBorder {
		return b.config.BorderStyle.Render(view)
	}
	return view
}
