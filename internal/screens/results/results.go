// Package results renders a finished submission: score, readiness band,
// instrument recommendation, musical insights, and the action plan.
package results

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/bestlessonever/readiness/internal/quiz"
	"github.com/bestlessonever/readiness/internal/screen"
	"github.com/bestlessonever/readiness/internal/submission"
	"github.com/bestlessonever/readiness/internal/ui/layout"
	"github.com/bestlessonever/readiness/internal/ui/theme"
)

// ResultsScreen shows the readiness results for a complete submission.
type ResultsScreen struct {
	sub     *submission.Submission
	variant *quiz.Variant
	scroll  int
}

var _ screen.Screen = (*ResultsScreen)(nil)

// New creates a ResultsScreen for the given submission.
func New(sub *submission.Submission, variant *quiz.Variant) *ResultsScreen {
	return &ResultsScreen{sub: sub, variant: variant}
}

func (r *ResultsScreen) Title() string {
	return "Your Results"
}

func (r *ResultsScreen) Init() tea.Cmd {
	return nil
}

func (r *ResultsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Scroll"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (r *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return r, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if r.scroll > 0 {
			r.scroll--
		}
	case "down", "j":
		r.scroll++
	}
	return r, nil
}

func (r *ResultsScreen) View(width, height int) string {
	lines := strings.Split(r.render(width), "\n")

	maxScroll := len(lines) - height
	if maxScroll < 0 {
		maxScroll = 0
	}
	if r.scroll > maxScroll {
		r.scroll = maxScroll
	}

	end := r.scroll + height
	if end > len(lines) {
		end = len(lines)
	}
	return strings.Join(lines[r.scroll:end], "\n")
}

func (r *ResultsScreen) render(width int) string {
	sub := r.sub
	childName := sub.ChildName
	if childName == "" {
		childName = "Your child"
	}

	var sections []string
	add := func(s string) { sections = append(sections, s) }

	heading := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)
	label := lipgloss.NewStyle().Foreground(theme.TextDim)
	body := theme.Body.Width(width - 8)

	score := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render(fmt.Sprintf("%d", sub.Result.Score)) +
		label.Render(" / 100")
	add("")
	add(fmt.Sprintf("  %s  %s", score, heading.Render(sub.Result.BandLabel)))
	add("")
	add("  " + body.Render(sub.Result.BandDescription))
	add("")

	add("  " + heading.Render("Recommended instruments"))
	instruments := sub.Result.PrimaryInstrument
	if len(sub.Result.SecondaryInstruments) > 0 {
		instruments += label.Render("  also worth trying: ") +
			strings.Join(sub.Result.SecondaryInstruments, ", ")
	}
	add("  " + lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render(instruments))
	add("")

	if ins := sub.Insights; ins != nil {
		add("  " + heading.Render(fmt.Sprintf("%s's musical profile", childName)))
		add("  " + lipgloss.NewStyle().Foreground(theme.Success).Bold(true).Render(ins.ProfileType) +
			label.Render("  ·  ") +
			lipgloss.NewStyle().Foreground(theme.Accent).Render(ins.Superpower))
		for _, s := range ins.Strengths {
			add("  " + body.Render("★ "+s))
		}
		add("")
		add("  " + label.Render("Learning style  ") + body.Render(ins.LearningStyle))
		add("  " + label.Render("Performer type  ") + body.Render(ins.PerformerType))
		add("")
		add("  " + body.Render(ins.InstrumentReasoning))
		add("")
	}

	if len(sub.ActionPlan) > 0 {
		add("  " + heading.Render("Your 7-day action plan"))
		for i, step := range sub.ActionPlan {
			num := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(fmt.Sprintf("%d.", i+1))
			add("  " + num + " " + body.Width(width-12).Render(step))
		}
		add("")
	}

	add("  " + label.Render(fmt.Sprintf("Saved as %s · look it up anytime with `readiness results %s`", sub.ID, sub.ID)))
	add("")

	return strings.Join(sections, "\n")
}
