package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/bestlessonever/readiness/internal/ui/theme"
)

// MultiSelect is a checkbox option list. Space toggles, Enter confirms
// the whole set.
type MultiSelect struct {
	Options   []string
	Cursor    int
	Checked   []bool
	Confirmed bool
}

// NewMultiSelect creates a multi-select with nothing checked.
func NewMultiSelect(options []string) MultiSelect {
	return MultiSelect{
		Options: options,
		Checked: make([]bool, len(options)),
	}
}

// NewMultiSelectChecked creates a multi-select with the given indices
// pre-checked, for stepping back through the quiz.
func NewMultiSelectChecked(options []string, checked []int) MultiSelect {
	m := NewMultiSelect(options)
	for _, i := range checked {
		if i >= 0 && i < len(m.Checked) {
			m.Checked[i] = true
		}
	}
	return m
}

// Update handles navigation, toggling, and confirmation.
func (m MultiSelect) Update(msg tea.Msg) (MultiSelect, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if m.Cursor > 0 {
			m.Cursor--
		}
	case "down", "j":
		if m.Cursor < len(m.Options)-1 {
			m.Cursor++
		}
	case "space", " ":
		m.Checked[m.Cursor] = !m.Checked[m.Cursor]
	case "enter":
		if m.AnyChecked() {
			m.Confirmed = true
		}
	}

	return m, nil
}

// AnyChecked reports whether at least one option is checked.
func (m MultiSelect) AnyChecked() bool {
	for _, c := range m.Checked {
		if c {
			return true
		}
	}
	return false
}

// CheckedIndices returns the indices of all checked options in order.
func (m MultiSelect) CheckedIndices() []int {
	var out []int
	for i, c := range m.Checked {
		if c {
			out = append(out, i)
		}
	}
	return out
}

// View renders the checkbox list.
func (m MultiSelect) View() string {
	var s string
	for i, opt := range m.Options {
		box := "[ ]"
		if m.Checked[i] {
			box = "[x]"
		}
		prefix := "  "
		if i == m.Cursor {
			prefix = "▸ "
		}
		line := fmt.Sprintf("%s%s %s", prefix, box, opt)
		switch {
		case i == m.Cursor:
			s += theme.Selected.Render(line) + "\n"
		case m.Checked[i]:
			s += lipgloss.NewStyle().Foreground(theme.Success).Render(line) + "\n"
		default:
			s += theme.Unselected.Render(line) + "\n"
		}
	}
	return s
}
