package store

import (
	"context"
	"fmt"

	entsql "entgo.io/ent/dialect/sql"
	"github.com/bestlessonever/readiness/ent"
	"github.com/bestlessonever/readiness/ent/llmrequestevent"
)

// eventRepo implements EventRepo backed by ent.
type eventRepo struct {
	client *ent.Client
}

func (r *eventRepo) AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error {
	_, err := r.client.LLMRequestEvent.Create().
		SetProvider(data.Provider).
		SetModel(data.Model).
		SetPurpose(data.Purpose).
		SetInputTokens(data.InputTokens).
		SetOutputTokens(data.OutputTokens).
		SetLatencyMs(data.LatencyMs).
		SetSuccess(data.Success).
		SetRequestBody(data.RequestBody).
		SetResponseBody(data.ResponseBody).
		SetErrorMessage(data.ErrorMessage).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save LLM request event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]*LLMEvent, error) {
	q := r.client.LLMRequestEvent.Query().
		Order(ent.Desc(llmrequestevent.FieldID))

	if opts.Purpose != "" {
		q = q.Where(llmrequestevent.PurposeEQ(opts.Purpose))
	}
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query LLM events: %w", err)
	}

	out := make([]*LLMEvent, len(rows))
	for i, row := range rows {
		out[i] = toLLMEvent(row)
	}
	return out, nil
}

func (r *eventRepo) GetLLMEvent(ctx context.Context, id int) (*LLMEvent, error) {
	row, err := r.client.LLMRequestEvent.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get LLM event %d: %w", id, err)
	}
	return toLLMEvent(row), nil
}

func (r *eventRepo) LLMUsageByPurpose(ctx context.Context) ([]*LLMUsageStat, error) {
	return r.usageGroupedBy(ctx, llmrequestevent.FieldPurpose)
}

func (r *eventRepo) LLMUsageByModel(ctx context.Context) ([]*LLMUsageStat, error) {
	return r.usageGroupedBy(ctx, llmrequestevent.FieldModel)
}

func (r *eventRepo) usageGroupedBy(ctx context.Context, field string) ([]*LLMUsageStat, error) {
	var rows []struct {
		Purpose      string  `json:"purpose"`
		Model        string  `json:"model"`
		Calls        int     `json:"calls"`
		InputTokens  int     `json:"input_tokens"`
		OutputTokens int     `json:"output_tokens"`
		AvgLatency   float64 `json:"avg_latency"`
	}

	err := r.client.LLMRequestEvent.Query().
		GroupBy(field).
		Aggregate(
			func(s *entsql.Selector) string {
				return entsql.As(entsql.Count("*"), "calls")
			},
			func(s *entsql.Selector) string {
				return entsql.As(entsql.Sum(llmrequestevent.FieldInputTokens), "input_tokens")
			},
			func(s *entsql.Selector) string {
				return entsql.As(entsql.Sum(llmrequestevent.FieldOutputTokens), "output_tokens")
			},
			func(s *entsql.Selector) string {
				return entsql.As(entsql.Avg(llmrequestevent.FieldLatencyMs), "avg_latency")
			},
		).
		Scan(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("aggregate LLM usage by %s: %w", field, err)
	}

	out := make([]*LLMUsageStat, len(rows))
	for i, row := range rows {
		out[i] = &LLMUsageStat{
			Purpose:      row.Purpose,
			Model:        row.Model,
			Calls:        row.Calls,
			InputTokens:  row.InputTokens,
			OutputTokens: row.OutputTokens,
			AvgLatencyMs: int64(row.AvgLatency),
		}
	}
	return out, nil
}

func toLLMEvent(row *ent.LLMRequestEvent) *LLMEvent {
	return &LLMEvent{
		ID:           row.ID,
		Timestamp:    row.Timestamp,
		Provider:     row.Provider,
		Model:        row.Model,
		Purpose:      row.Purpose,
		InputTokens:  row.InputTokens,
		OutputTokens: row.OutputTokens,
		LatencyMs:    row.LatencyMs,
		Success:      row.Success,
		RequestBody:  row.RequestBody,
		ResponseBody: row.ResponseBody,
		ErrorMessage: row.ErrorMessage,
	}
}
