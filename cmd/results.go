package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bestlessonever/readiness/internal/insights"
	"github.com/bestlessonever/readiness/internal/plan"
	"github.com/bestlessonever/readiness/internal/quiz"
	"github.com/bestlessonever/readiness/internal/store"
	"github.com/bestlessonever/readiness/internal/submission"
	"github.com/spf13/cobra"
)

var resultsCmd = &cobra.Command{
	Use:   "results <id>",
	Short: "Look up a completed submission by ID",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		manager := submission.NewManager(
			quiz.Default(),
			st.SubmissionRepo(),
			plan.NewService(nil, plan.DefaultConfig()),
			insights.NewService(nil, insights.DefaultConfig()),
			nil,
		)

		sub, err := manager.Get(cmd.Context(), args[0])
		if err != nil {
			if errors.Is(err, submission.ErrNotFound) {
				return fmt.Errorf("no completed submission with ID %q", args[0])
			}
			return err
		}

		printSubmission(sub)
		return nil
	},
}

func printSubmission(sub *submission.Submission) {
	sep := strings.Repeat("─", 60)

	fmt.Printf("ID:          %s\n", sub.ID)
	fmt.Printf("Created:     %s\n", sub.CreatedAt.Local().Format("2006-01-02 15:04:05"))
	fmt.Printf("Parent:      %s <%s>\n", sub.ParentName, sub.Email)
	if sub.ChildName != "" {
		fmt.Printf("Child:       %s\n", sub.ChildName)
	}
	fmt.Printf("Variant:     %s\n", sub.VariantID)

	fmt.Println(sep)
	fmt.Printf("Score:       %d/100 — %s\n", sub.Result.Score, sub.Result.BandLabel)
	fmt.Printf("             %s\n", sub.Result.BandDescription)
	fmt.Printf("Instrument:  %s\n", sub.Result.PrimaryInstrument)
	if len(sub.Result.SecondaryInstruments) > 0 {
		fmt.Printf("Also try:    %s\n", strings.Join(sub.Result.SecondaryInstruments, ", "))
	}

	if ins := sub.Insights; ins != nil {
		fmt.Println(sep)
		fmt.Printf("Profile:     %s (%s)\n", ins.ProfileType, ins.Superpower)
		for _, s := range ins.Strengths {
			fmt.Printf("  • %s\n", s)
		}
		fmt.Printf("Learning:    %s\n", ins.LearningStyle)
		fmt.Printf("Performer:   %s\n", ins.PerformerType)
	}

	if len(sub.ActionPlan) > 0 {
		fmt.Println(sep)
		fmt.Printf("Action plan (%s):\n", sub.PlanSource)
		for i, step := range sub.ActionPlan {
			fmt.Printf("  %d. %s\n", i+1, step)
		}
	}
}
