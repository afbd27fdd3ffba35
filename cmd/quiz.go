package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/bestlessonever/readiness/internal/app"
	"github.com/bestlessonever/readiness/internal/insights"
	"github.com/bestlessonever/readiness/internal/llm"
	"github.com/bestlessonever/readiness/internal/notify"
	"github.com/bestlessonever/readiness/internal/plan"
	"github.com/bestlessonever/readiness/internal/quiz"
	"github.com/bestlessonever/readiness/internal/store"
	"github.com/bestlessonever/readiness/internal/submission"
	"github.com/spf13/cobra"
)

var quizCmd = &cobra.Command{
	Use:   "quiz",
	Short: "Run the readiness quiz",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runQuiz(cmd)
	},
}

func init() {
	quizCmd.Flags().String("variant", "", "Quiz variant to run (classic, sampler)")
}

func runQuiz(cmd *cobra.Command) error {
	ctx := cmd.Context()

	variantID, _ := cmd.Flags().GetString("variant")
	if variantID == "" {
		variantID = quiz.DefaultVariantID
	}
	variant, err := quiz.Get(variantID)
	if err != nil {
		return fmt.Errorf("%w (available: %s)", err, strings.Join(quiz.IDs(), ", "))
	}

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve database path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	// LLM provider is optional; without one the plan and insights
	// services produce their deterministic defaults.
	provider, err := llm.NewProviderFromEnv(ctx, st.EventRepo())
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Action plans and insights will use built-in defaults.")
		provider = nil
	}

	// Email is optional too; without a Resend key the quiz runs fully
	// offline and nothing is sent.
	var notifier submission.Notifier
	if cfg, ok := notify.ConfigFromEnv(); ok {
		notifier = notify.NewClient(cfg)
	} else {
		fmt.Fprintln(os.Stderr, "Resend not configured; emails disabled.")
	}

	manager := submission.NewManager(
		variant,
		st.SubmissionRepo(),
		plan.NewService(provider, plan.DefaultConfig()),
		insights.NewService(provider, insights.DefaultConfig()),
		notifier,
	)

	return app.Run(app.Options{
		Manager: manager,
		Variant: variant,
	})
}
