package submission

import (
	"context"
	"fmt"
	"time"

	"github.com/bestlessonever/readiness/internal/store"
)

// Reconciler sweeps stale partials into a team digest. Partials already
// covered by an earlier digest are never reported twice.
type Reconciler struct {
	repo     store.SubmissionRepo
	notifier Notifier
	now      func() time.Time
}

// NewReconciler creates a digest reconciler.
func NewReconciler(repo store.SubmissionRepo, notifier Notifier) *Reconciler {
	return &Reconciler{repo: repo, notifier: notifier, now: time.Now}
}

// Run sends a digest of partials older than olderThan and marks them
// digested. Returns the number of leads reported; zero with no error
// means there was nothing to send.
func (r *Reconciler) Run(ctx context.Context, olderThan time.Duration) (int, error) {
	cutoff := r.now().Add(-olderThan)

	leads, err := r.repo.ListStalePartials(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("digest: %w", err)
	}
	if len(leads) == 0 {
		return 0, nil
	}

	if r.notifier != nil {
		if err := r.notifier.SendPartialDigest(ctx, leads); err != nil {
			return 0, fmt.Errorf("digest: %w", err)
		}
	}

	ids := make([]string, len(leads))
	for i, lead := range leads {
		ids[i] = lead.ID
	}
	if err := r.repo.MarkDigested(ctx, ids, r.now()); err != nil {
		// The email is already out; report the marking failure so the
		// operator knows the next run may double-report.
		return len(leads), fmt.Errorf("digest: mark digested: %w", err)
	}
	return len(leads), nil
}
