package store

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when a lookup matches no record.
var ErrNotFound = errors.New("not found")

// SubmissionRecord is the persistence shape of a quiz submission, partial
// or complete. Repositories translate between this and the ent entity so
// the domain packages never import generated code.
type SubmissionRecord struct {
	ID                   string
	Status               string
	Email                string
	ParentName           string
	ChildName            string
	Source               string
	VariantID            string
	LastStep             int
	Answers              map[string][]string
	Score                int
	Band                 string
	BandLabel            string
	BandDescription      string
	PrimaryInstrument    string
	SecondaryInstruments []string
	ActionPlan           []string
	PlanSource           string
	Insights             map[string]any
	CreatedAt            time.Time
	UpdatedAt            time.Time
	DigestSentAt         *time.Time
}

// PartialLead is the slim view of a stale partial used by the digest.
type PartialLead struct {
	ID        string
	Email     string
	VariantID string
	LastStep  int
	CreatedAt time.Time
}

// SubmissionRepo manages quiz submissions through their lifecycle.
type SubmissionRepo interface {
	// InsertPartial stores a new partial-status record.
	InsertPartial(ctx context.Context, rec *SubmissionRecord) error

	// UpdateToComplete promotes an existing partial to complete in place,
	// writing the full answer set and scoring results.
	UpdateToComplete(ctx context.Context, rec *SubmissionRecord) error

	// InsertComplete stores a complete record that never had a partial.
	InsertComplete(ctx context.Context, rec *SubmissionRecord) error

	// FetchByID returns the record with the given ID, or ErrNotFound.
	FetchByID(ctx context.Context, id string) (*SubmissionRecord, error)

	// ListRecent returns the most recent records, newest first.
	// A non-empty status filters by lifecycle state.
	ListRecent(ctx context.Context, status string, limit int) ([]*SubmissionRecord, error)

	// ListStalePartials returns partials created before cutoff that have
	// not yet been included in a digest.
	ListStalePartials(ctx context.Context, cutoff time.Time) ([]*PartialLead, error)

	// MarkDigested stamps digest_sent_at on the given partials.
	MarkDigested(ctx context.Context, ids []string, at time.Time) error
}

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit   int    // max results (0 = unlimited)
	Purpose string // filter by purpose label
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	RequestBody  string
	ResponseBody string
	ErrorMessage string
}

// LLMEvent is a stored LLM request event.
type LLMEvent struct {
	ID           int
	Timestamp    time.Time
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	RequestBody  string
	ResponseBody string
	ErrorMessage string
}

// LLMUsageStat aggregates token usage for one purpose or model.
type LLMUsageStat struct {
	Purpose      string
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// EventRepo provides append and query access to LLM request events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns recent events, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]*LLMEvent, error)

	// GetLLMEvent returns the event with the given ID, or nil if missing.
	GetLLMEvent(ctx context.Context, id int) (*LLMEvent, error)

	// LLMUsageByPurpose aggregates usage grouped by purpose.
	LLMUsageByPurpose(ctx context.Context) ([]*LLMUsageStat, error)

	// LLMUsageByModel aggregates usage grouped by model.
	LLMUsageByModel(ctx context.Context) ([]*LLMUsageStat, error)
}
