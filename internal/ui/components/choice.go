package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"

	"github.com/bestlessonever/readiness/internal/ui/theme"
)

// Choice is a single-select option list. Enter confirms the highlighted
// option.
type Choice struct {
	Options   []string
	Selected  int
	Confirmed bool
}

// NewChoice creates a choice list with the first option highlighted.
func NewChoice(options []string) Choice {
	return Choice{Options: options}
}

// NewChoiceAt creates a choice list with a previously chosen option
// highlighted, for stepping back through the quiz.
func NewChoiceAt(options []string, selected int) Choice {
	if selected < 0 || selected >= len(options) {
		selected = 0
	}
	return Choice{Options: options, Selected: selected}
}

// Update handles keyboard navigation and confirmation.
func (c Choice) Update(msg tea.Msg) (Choice, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if c.Selected > 0 {
			c.Selected--
		}
	case "down", "j":
		if c.Selected < len(c.Options)-1 {
			c.Selected++
		}
	case "enter":
		c.Confirmed = true
	}

	return c, nil
}

// View renders the option list.
func (c Choice) View() string {
	var s string
	for i, opt := range c.Options {
		prefix := "  "
		if i == c.Selected {
			prefix = "▸ "
		}
		line := fmt.Sprintf("%s%s", prefix, opt)
		if i == c.Selected {
			s += theme.Selected.Render(line) + "\n"
		} else {
			s += theme.Unselected.Render(line) + "\n"
		}
	}
	return s
}
