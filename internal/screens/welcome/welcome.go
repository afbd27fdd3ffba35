package welcome

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/bestlessonever/readiness/internal/quiz"
	"github.com/bestlessonever/readiness/internal/router"
	"github.com/bestlessonever/readiness/internal/screen"
	"github.com/bestlessonever/readiness/internal/ui/layout"
	"github.com/bestlessonever/readiness/internal/ui/theme"
)

const tickInterval = 400 * time.Millisecond

const noteArt = `  ♪ ♫ ♪
 ╭─────╮
 │ ♩ ♬ │
 ╰─────╯`

// pulse frames cycle the accent notes above the banner
var pulseFrames = []string{"♪", "♫"}

type tickMsg time.Time

// WelcomeScreen introduces the quiz before transitioning to the question flow.
type WelcomeScreen struct {
	variant     *quiz.Variant
	flowFactory func() screen.Screen
	tickCount   int
	started     bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen that transitions to the screen produced by
// flowFactory when the parent presses enter.
func New(variant *quiz.Variant, flowFactory func() screen.Screen) *WelcomeScreen {
	return &WelcomeScreen{
		variant:     variant,
		flowFactory: flowFactory,
	}
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		w.tickCount++
		return w, tea.Tick(tickInterval, func(t time.Time) tea.Msg {
			return tickMsg(t)
		})

	case tea.KeyPressMsg:
		if msg.String() == "enter" {
			return w, w.start()
		}
		return w, nil
	}

	return w, nil
}

func (w *WelcomeScreen) start() tea.Cmd {
	if w.started {
		return nil
	}
	w.started = true
	flowScreen := w.flowFactory()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: flowScreen}
	}
}

func (w *WelcomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Start"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (w *WelcomeScreen) View(width, height int) string {
	var sections []string

	pulse := pulseFrames[w.tickCount%len(pulseFrames)]
	art := strings.ReplaceAll(noteArt, "♪", pulse)
	sections = append(sections, lipgloss.NewStyle().Foreground(theme.Primary).Render(art))
	sections = append(sections, "")

	sections = append(sections, theme.Title.Render(w.variant.Name))
	sections = append(sections, "")

	tagline := lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Render("Is your child ready for music lessons?")
	sections = append(sections, tagline)

	detail := theme.Subtitle.Render(fmt.Sprintf(
		"%d quick questions · about 2 minutes · personalized results",
		w.variant.TotalSteps(),
	))
	sections = append(sections, detail)
	sections = append(sections, "")

	hint := theme.Hint.Render("press enter to begin")
	sections = append(sections, hint)

	content := strings.Join(sections, "\n")

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
