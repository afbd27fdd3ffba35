package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/bestlessonever/readiness/internal/quiz"
	"github.com/bestlessonever/readiness/internal/router"
	"github.com/bestlessonever/readiness/internal/screen"
	"github.com/bestlessonever/readiness/internal/screens/flow"
	"github.com/bestlessonever/readiness/internal/screens/welcome"
	"github.com/bestlessonever/readiness/internal/submission"
	"github.com/bestlessonever/readiness/internal/ui/layout"
)

// Options configure the quiz program.
type Options struct {
	Manager *submission.Manager
	Variant *quiz.Variant
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	width  int
	height int
}

// newAppModel creates a new AppModel starting at the welcome screen.
func newAppModel(opts Options) AppModel {
	welcomeScreen := welcome.New(opts.Variant, func() screen.Screen {
		return flow.New(opts.Manager, opts.Variant)
	})
	return AppModel{
		router: router.New(welcomeScreen),
	}
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	right := ""
	if active != nil {
		title = active.Title()
		if hr, ok := active.(screen.HeaderRightProvider); ok {
			right = hr.HeaderRight()
		}
	}

	header := layout.RenderHeader(title, right, m.width)

	footerHints := []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if hp, ok := active.(screen.KeyHintProvider); ok {
		footerHints = hp.KeyHints()
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
