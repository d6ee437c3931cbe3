package delegate

import (
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
)

// RenderFunc renders one list row.
// It receives the writer, list model, item index, and the item itself.
type RenderFunc func(w io.Writer, m list.Model, index int, item list.Item)

// Base is a list.ItemDelegate that only customizes rendering.
type Base struct {
	height   int
	spacing  int
	renderFn RenderFunc
}

// Option tweaks a Base delegate.
type Option func(*Base)

// WithHeight sets the lines each row occupies.
func WithHeight(n int) Option {
	return func(b *Base) {
		if n > 0 {
			b.height = n
		}
	}
}

// New creates a delegate with one-line rows and no spacing unless
// overridden by opts.
func New(renderFn RenderFunc, opts ...Option) Base {
	b := Base{height: 1, renderFn: renderFn}
	for _, opt := range opts {
		opt(&b)
	}
	return b
}

// Height implements list.ItemDelegate
func (d Base) Height() int {
	return d.height
}

// Spacing implements list.ItemDelegate
func (d Base) Spacing() int {
	return d.spacing
}

// Update implements list.ItemDelegate
func (d Base) Update(tea.Msg, *list.Model) tea.Cmd {
	return nil
}

// Render implements list.ItemDelegate
func (d Base) Render(w io.Writer, m list.Model, index int, item list.Item) {
	if d.renderFn != nil {
		d.renderFn(w, m, index, item)
	}
}
