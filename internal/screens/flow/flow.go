// Package flow implements the quiz question screen: one question per
// step, back navigation with answers restored, a partial-lead capture
// the moment the email step is passed, and finalization into the
// results screen.
package flow

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/bestlessonever/readiness/internal/quiz"
	"github.com/bestlessonever/readiness/internal/router"
	"github.com/bestlessonever/readiness/internal/screen"
	"github.com/bestlessonever/readiness/internal/screens/results"
	"github.com/bestlessonever/readiness/internal/submission"
	"github.com/bestlessonever/readiness/internal/ui/components"
	"github.com/bestlessonever/readiness/internal/ui/layout"
	"github.com/bestlessonever/readiness/internal/ui/theme"
)

const (
	captureTimeout  = 10 * time.Second
	finalizeTimeout = 2 * time.Minute
)

type partialCapturedMsg struct {
	id  string
	err error
}

type finalizedMsg struct {
	sub *submission.Submission
	err error
}

// FlowScreen walks the parent through the variant's questions in order.
type FlowScreen struct {
	manager *submission.Manager
	variant *quiz.Variant

	answers quiz.AnswerSet
	step    int // index into variant.Questions

	choice components.Choice
	multi  components.MultiSelect
	input  components.TextInput

	partialID  string
	captured   bool
	finalizing bool
	errMsg     string
}

var _ screen.Screen = (*FlowScreen)(nil)

// New creates a FlowScreen at the first question.
func New(manager *submission.Manager, variant *quiz.Variant) *FlowScreen {
	f := &FlowScreen{
		manager: manager,
		variant: variant,
		answers: quiz.NewAnswerSet(),
	}
	f.buildComponent()
	return f
}

func (f *FlowScreen) Title() string {
	return f.variant.Name
}

func (f *FlowScreen) HeaderRight() string {
	return fmt.Sprintf("Step %d of %d", f.step+1, f.variant.TotalSteps())
}

func (f *FlowScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{}
	q := f.question()
	switch q.Kind {
	case quiz.SingleChoice:
		hints = append(hints, layout.KeyHint{Key: "↑↓", Description: "Navigate"})
		hints = append(hints, layout.KeyHint{Key: "Enter", Description: "Select"})
	case quiz.MultiSelect:
		hints = append(hints, layout.KeyHint{Key: "↑↓", Description: "Navigate"})
		hints = append(hints, layout.KeyHint{Key: "Space", Description: "Toggle"})
		hints = append(hints, layout.KeyHint{Key: "Enter", Description: "Continue"})
	default:
		hints = append(hints, layout.KeyHint{Key: "Enter", Description: "Continue"})
	}
	if f.step > 0 {
		hints = append(hints, layout.KeyHint{Key: "←", Description: "Back"})
	}
	hints = append(hints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
	return hints
}

func (f *FlowScreen) Init() tea.Cmd {
	if f.question().Kind == quiz.FreeText || f.question().Kind == quiz.Number {
		return f.input.Init()
	}
	return nil
}

func (f *FlowScreen) question() *quiz.Question {
	return &f.variant.Questions[f.step]
}

// buildComponent constructs the input component for the current question,
// restoring any previously recorded answer so stepping back is lossless.
func (f *FlowScreen) buildComponent() {
	q := f.question()
	switch q.Kind {
	case quiz.SingleChoice:
		labels := optionLabels(q)
		selected := 0
		if prev := f.answers.Token(q.Key); prev != "" {
			for i, o := range q.Options {
				if o.Token == prev {
					selected = i
					break
				}
			}
		}
		f.choice = components.NewChoiceAt(labels, selected)

	case quiz.MultiSelect:
		labels := optionLabels(q)
		var checked []int
		for _, t := range f.answers.Tokens(q.Key) {
			for i, o := range q.Options {
				if o.Token == t {
					checked = append(checked, i)
				}
			}
		}
		f.multi = components.NewMultiSelectChecked(labels, checked)

	case quiz.FreeText:
		f.input = components.NewTextInput(placeholderFor(q.Key), f.answers.Text(q.Key), false, 80)

	case quiz.Number:
		f.input = components.NewTextInput(fmt.Sprintf("%d-%d", q.Min, q.Max), f.answers.Text(q.Key), true, 2)
	}
}

func optionLabels(q *quiz.Question) []string {
	labels := make([]string, len(q.Options))
	for i, o := range q.Options {
		labels[i] = o.Label
	}
	return labels
}

func placeholderFor(key string) string {
	switch key {
	case quiz.KeyEmail:
		return "parent@example.com"
	case quiz.KeyPhone:
		return "(555) 123-4567"
	default:
		return "type here"
	}
}

func (f *FlowScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case partialCapturedMsg:
		// Lead capture is best-effort; a failed capture never interrupts
		// the quiz.
		if msg.err == nil {
			f.partialID = msg.id
		}
		return f, nil

	case finalizedMsg:
		if msg.err != nil {
			f.finalizing = false
			f.errMsg = msg.err.Error()
			return f, nil
		}
		resultsScreen := results.New(msg.sub, f.variant)
		return f, func() tea.Msg {
			return router.ReplaceScreenMsg{Screen: resultsScreen}
		}

	case tea.KeyPressMsg:
		if f.finalizing {
			return f, nil
		}
		if msg.String() == "left" && f.step > 0 {
			f.back()
			return f, f.Init()
		}
		return f.handleInput(msg)
	}

	return f, nil
}

func (f *FlowScreen) handleInput(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	q := f.question()
	f.errMsg = ""

	switch q.Kind {
	case quiz.SingleChoice:
		f.choice, _ = f.choice.Update(msg)
		if f.choice.Confirmed {
			f.answers.Set(q.Key, q.Options[f.choice.Selected].Token)
			return f, f.advance()
		}

	case quiz.MultiSelect:
		f.multi, _ = f.multi.Update(msg)
		if f.multi.Confirmed {
			tokens := make([]string, 0, len(f.multi.Options))
			for _, i := range f.multi.CheckedIndices() {
				tokens = append(tokens, q.Options[i].Token)
			}
			f.answers.SetAll(q.Key, tokens)
			return f, f.advance()
		}

	case quiz.FreeText, quiz.Number:
		if msg.String() == "enter" {
			return f.submitText(q)
		}
		var cmd tea.Cmd
		f.input, cmd = f.input.Update(msg)
		return f, cmd
	}

	return f, nil
}

func (f *FlowScreen) submitText(q *quiz.Question) (screen.Screen, tea.Cmd) {
	value := strings.TrimSpace(f.input.Value())

	valid := true
	switch {
	case q.Kind == quiz.Number:
		n, err := f.input.NumericValue()
		valid = err == nil && n >= q.Min && n <= q.Max
	case q.Key == quiz.KeyEmail:
		valid = quiz.ValidEmail(value)
	case q.Required:
		valid = value != ""
	}

	if !valid {
		f.input.Submit(false)
		f.errMsg = validationMessage(q)
		return f, nil
	}

	if value != "" {
		f.answers.Set(q.Key, value)
	}
	return f, f.advance()
}

func validationMessage(q *quiz.Question) string {
	switch {
	case q.Kind == quiz.Number:
		return fmt.Sprintf("Please enter a number between %d and %d.", q.Min, q.Max)
	case q.Key == quiz.KeyEmail:
		return "That doesn't look like an email address."
	default:
		return "This one's required."
	}
}

// advance moves to the next question, capturing a partial lead the first
// time the email step is behind us and finalizing after the last step.
func (f *FlowScreen) advance() tea.Cmd {
	f.step++

	var cmds []tea.Cmd
	if !f.captured && f.step >= f.variant.EmailStep {
		f.captured = true
		cmds = append(cmds, f.captureCmd(f.answers.Clone(), f.step))
	}

	if f.step >= f.variant.TotalSteps() {
		f.step = f.variant.TotalSteps() - 1
		f.finalizing = true
		cmds = append(cmds, f.finalizeCmd(f.partialID, f.answers.Clone()))
		return tea.Batch(cmds...)
	}

	f.buildComponent()
	cmds = append(cmds, f.Init())
	return tea.Batch(cmds...)
}

func (f *FlowScreen) back() {
	f.step--
	f.errMsg = ""
	f.buildComponent()
}

func (f *FlowScreen) captureCmd(answers quiz.AnswerSet, lastStep int) tea.Cmd {
	mgr := f.manager
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), captureTimeout)
		defer cancel()

		sub, err := mgr.CapturePartial(ctx, answers, lastStep)
		if err != nil {
			return partialCapturedMsg{err: err}
		}
		return partialCapturedMsg{id: sub.ID}
	}
}

func (f *FlowScreen) finalizeCmd(partialID string, answers quiz.AnswerSet) tea.Cmd {
	mgr := f.manager
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), finalizeTimeout)
		defer cancel()

		sub, err := mgr.Finalize(ctx, partialID, answers)
		return finalizedMsg{sub: sub, err: err}
	}
}

func (f *FlowScreen) View(width, height int) string {
	if f.finalizing {
		msg := theme.Title.Render("Scoring...") + "\n\n" +
			theme.Subtitle.Render("Building your child's personalized results")
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, msg)
	}

	q := f.question()
	var sections []string

	sections = append(sections, theme.Hint.Render(q.Subtitle))
	sections = append(sections, "")
	sections = append(sections, lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Width(width-8).
		Render(q.Prompt))
	sections = append(sections, "")

	switch q.Kind {
	case quiz.SingleChoice:
		sections = append(sections, f.choice.View())
	case quiz.MultiSelect:
		sections = append(sections, f.multi.View())
	default:
		sections = append(sections, f.input.View())
	}

	if f.errMsg != "" {
		sections = append(sections, "")
		sections = append(sections, lipgloss.NewStyle().Foreground(theme.Error).Render(f.errMsg))
	}

	content := strings.Join(sections, "\n")

	barWidth := width - 8
	if barWidth < 10 {
		barWidth = 10
	}
	percent := float64(f.step) / float64(f.variant.TotalSteps())
	bar := components.NewProgressBar("", percent, true, barWidth).View()

	body := lipgloss.Place(width, height-2, lipgloss.Center, lipgloss.Center, content)
	return body + "\n" + lipgloss.PlaceHorizontal(width, lipgloss.Center, bar)
}
