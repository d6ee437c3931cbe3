package tui

import (
	"errors"
	"strings"
	"testing"

	"github.com/blackwell-systems/bookmgr/internal/api"
	"github.com/blackwell-systems/bookmgr/internal/tui/picker"
	tea "github.com/charmbracelet/bubbletea"
)

func pickerBooks() []api.Book {
	return []api.Book{
		{ID: 3, Name: "Dune", Format: api.FormatPhysical},
		{ID: 8, Name: "Solaris", Format: api.FormatKindle},
	}
}

func TestBookPicker_Select(t *testing.T) {
	var m tea.Model = newBookPicker(pickerBooks(), "Pick")
	for _, msg := range []tea.Msg{
		tea.WindowSizeMsg{Width: 80, Height: 20},
		tea.KeyMsg{Type: tea.KeyDown},
		tea.KeyMsg{Type: tea.KeyEnter},
	} {
		m, _ = m.Update(msg)
	}

	item, ok := m.(bookPickerModel).base.Selected().(BookItem)
	if !ok {
		t.Fatal("nothing selected")
	}
	if item.Book.ID != 8 {
		t.Errorf("selected id = %d, want 8", item.Book.ID)
	}
}

func TestBookPicker_Cancel(t *testing.T) {
	var m tea.Model = newBookPicker(pickerBooks(), "")
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})

	if err := m.(bookPickerModel).base.Error(); !errors.Is(err, picker.ErrCanceled) {
		t.Errorf("Error() = %v, want ErrCanceled", err)
	}
}

func TestBookPicker_View(t *testing.T) {
	var m tea.Model = newBookPicker(pickerBooks(), "")
	m, _ = m.Update(tea.WindowSizeMsg{Width: 80, Height: 20})

	view := m.View()
	for _, want := range []string{"Select a book", "#3", "Dune", "[Amazon Kindle]"} {
		if !strings.Contains(view, want) {
			t.Errorf("view does not contain %q", want)
		}
	}
}

func TestRunBookPicker_Empty(t *testing.T) {
	if _, err := RunBookPicker(nil, ""); err == nil {
		t.Error("RunBookPicker(nil) returned no error")
	}
}
