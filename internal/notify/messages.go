package notify

import (
	"context"
	"fmt"
	"strings"

	"github.com/bestlessonever/readiness/internal/quiz"
	"github.com/bestlessonever/readiness/internal/store"
	"github.com/bestlessonever/readiness/internal/submission"
)

// SendLeadAlert emails the team a full breakdown of a completed
// submission.
func (c *Client) SendLeadAlert(ctx context.Context, sub *submission.Submission) error {
	subject := fmt.Sprintf("New Music Readiness Score Submission: %s (%d/100)", orFallback(sub.ChildName, "unnamed"), sub.Result.Score)
	return c.send(ctx, c.cfg.TeamEmail, subject, buildLeadAlertBody(sub, c.resultsURL(sub.ID)))
}

// SendParentConfirmation emails the results to the parent.
func (c *Client) SendParentConfirmation(ctx context.Context, sub *submission.Submission) error {
	subject := fmt.Sprintf("%s's Music Readiness Results Are In!", orFallback(sub.ChildName, "Your child"))
	return c.send(ctx, sub.Email, subject, buildParentBody(sub, c.resultsURL(sub.ID)))
}

// SendPartialDigest emails the team a summary of stale partial leads.
func (c *Client) SendPartialDigest(ctx context.Context, leads []*store.PartialLead) error {
	subject := fmt.Sprintf("Daily Partial Quiz Digest - %d New Lead%s", len(leads), plural(len(leads)))
	return c.send(ctx, c.cfg.TeamEmail, subject, buildDigestBody(leads))
}

func (c *Client) resultsURL(id string) string {
	if c.cfg.ResultsBaseURL == "" {
		return ""
	}
	return strings.TrimRight(c.cfg.ResultsBaseURL, "/") + "/results/" + id
}

func buildLeadAlertBody(sub *submission.Submission, resultsURL string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "New Music Readiness Score submission\n\n")
	fmt.Fprintf(&b, "Contact\n")
	fmt.Fprintf(&b, "  Parent: %s\n", orFallback(sub.ParentName, "Not provided"))
	fmt.Fprintf(&b, "  Email:  %s\n", sub.Email)
	fmt.Fprintf(&b, "  Child:  %s\n\n", orFallback(sub.ChildName, "Not provided"))

	fmt.Fprintf(&b, "Score: %d/100 (%s)\n\n", sub.Result.Score, sub.Result.BandLabel)

	fmt.Fprintf(&b, "Instruments\n")
	fmt.Fprintf(&b, "  Primary: %s\n", sub.Result.PrimaryInstrument)
	fmt.Fprintf(&b, "  Also consider: %s\n\n", strings.Join(sub.Result.SecondaryInstruments, ", "))

	if v, err := quiz.Get(sub.VariantID); err == nil {
		fmt.Fprintf(&b, "Answers (%s)\n", v.Name)
		for _, q := range v.Questions {
			if q.Kind == quiz.FreeText {
				continue
			}
			tokens := sub.Answers.Tokens(q.Key)
			if len(tokens) == 0 {
				continue
			}
			labels := make([]string, len(tokens))
			for i, tok := range tokens {
				labels[i] = v.OptionLabel(q.Key, tok)
			}
			fmt.Fprintf(&b, "  %s: %s\n", q.Key, strings.Join(labels, ", "))
		}
		b.WriteString("\n")
	}

	if resultsURL != "" {
		fmt.Fprintf(&b, "Full results: %s\n", resultsURL)
	}
	return b.String()
}

func buildParentBody(sub *submission.Submission, resultsURL string) string {
	var b strings.Builder
	child := orFallback(sub.ChildName, "your child")

	fmt.Fprintf(&b, "Hi %s,\n\n", orFallback(sub.ParentName, "there"))
	fmt.Fprintf(&b, "%s's Music Readiness Score: %d out of 100\n", child, sub.Result.Score)
	fmt.Fprintf(&b, "%s\n\n", sub.Result.BandLabel)
	fmt.Fprintf(&b, "%s\n\n", sub.Result.BandDescription)

	fmt.Fprintf(&b, "Best-fit instrument: %s\n", sub.Result.PrimaryInstrument)
	fmt.Fprintf(&b, "Also consider: %s\n\n", strings.Join(sub.Result.SecondaryInstruments, ", "))

	b.WriteString("Your action plan:\n")
	for _, item := range sub.ActionPlan {
		fmt.Fprintf(&b, "  - %s\n", item)
	}
	b.WriteString("\n")

	if resultsURL != "" {
		fmt.Fprintf(&b, "View the full results: %s\n\n", resultsURL)
	}
	b.WriteString("Music Readiness Score by Best Lesson Ever\n")
	return b.String()
}

func buildDigestBody(leads []*store.PartialLead) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%d new lead%s started but didn't complete the quiz.\n", len(leads), plural(len(leads)))
	b.WriteString("These parents entered their email but didn't finish. Consider reaching out!\n\n")

	for i, lead := range leads {
		total := 0
		if v, err := quiz.Get(lead.VariantID); err == nil {
			total = v.TotalSteps()
		}
		fmt.Fprintf(&b, "%d. %s - step %d of %d - started %s\n",
			i+1, lead.Email, lead.LastStep, total,
			lead.CreatedAt.Local().Format("Jan 2, 2006 3:04 PM"))
	}

	b.WriteString("\nMusic Readiness Score by Best Lesson Ever\n")
	return b.String()
}

func orFallback(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
