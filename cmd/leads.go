package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/bestlessonever/readiness/internal/notify"
	"github.com/bestlessonever/readiness/internal/store"
	"github.com/bestlessonever/readiness/internal/submission"
	"github.com/spf13/cobra"
)

var leadsCmd = &cobra.Command{
	Use:   "leads",
	Short: "Inspect captured leads",
}

var leadsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent leads",
	RunE: func(cmd *cobra.Command, args []string) error {
		status, _ := cmd.Flags().GetString("status")
		limit, _ := cmd.Flags().GetInt("limit")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		recs, err := st.SubmissionRepo().ListRecent(cmd.Context(), status, limit)
		if err != nil {
			return fmt.Errorf("list leads: %w", err)
		}

		if len(recs) == 0 {
			fmt.Println("No leads found.")
			return nil
		}

		fmt.Printf("%-38s  %-8s  %-28s  %-5s  %-4s  %s\n",
			"ID", "Status", "Email", "Score", "Step", "Created")
		fmt.Println(strings.Repeat("─", 100))

		for _, r := range recs {
			score := "-"
			if r.Status == "complete" {
				score = fmt.Sprintf("%d", r.Score)
			}
			fmt.Printf("%-38s  %-8s  %-28s  %-5s  %-4d  %s\n",
				r.ID,
				r.Status,
				truncate(r.Email, 28),
				score,
				r.LastStep,
				r.CreatedAt.Local().Format("2006-01-02 15:04"),
			)
		}
		return nil
	},
}

var leadsDigestCmd = &cobra.Command{
	Use:   "digest",
	Short: "Email the team a digest of stale partial leads",
	Long: "Finds partial leads older than --older-than that were never completed " +
		"and never digested, emails them to the team in one digest, and marks them " +
		"so they are not reported twice.",
	RunE: func(cmd *cobra.Command, args []string) error {
		olderThan, _ := cmd.Flags().GetDuration("older-than")

		cfg, ok := notify.ConfigFromEnv()
		if !ok {
			return fmt.Errorf("READINESS_RESEND_API_KEY not set; cannot send digest")
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

		rec := submission.NewReconciler(st.SubmissionRepo(), notify.NewClient(cfg))
		count, err := rec.Run(cmd.Context(), olderThan)
		if err != nil {
			if count > 0 {
				fmt.Fprintf(os.Stderr, "digest sent for %d leads but marking failed: %v\n", count, err)
			}
			return err
		}

		if count == 0 {
			fmt.Println("No stale partial leads.")
		} else {
			fmt.Printf("Digest sent for %d lead(s).\n", count)
		}
		return nil
	},
}

func init() {
	leadsListCmd.Flags().StringP("status", "s", "", "Filter by status (partial, complete)")
	leadsListCmd.Flags().IntP("limit", "n", 20, "Number of leads to show")

	leadsDigestCmd.Flags().Duration("older-than", time.Hour, "Minimum age before a partial counts as stale")

	leadsCmd.AddCommand(leadsListCmd)
	leadsCmd.AddCommand(leadsDigestCmd)
}
