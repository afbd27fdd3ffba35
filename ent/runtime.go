// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/bestlessonever/readiness/ent/llmrequestevent"
	"github.com/bestlessonever/readiness/ent/schema"
	"github.com/bestlessonever/readiness/ent/submission"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventFields[0].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[6].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[10].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	submissionFields := schema.Submission{}.Fields()
	_ = submissionFields
	// submissionDescParentName is the schema descriptor for parent_name field.
	submissionDescParentName := submissionFields[3].Descriptor()
	// submission.DefaultParentName holds the default value on creation for the parent_name field.
	submission.DefaultParentName = submissionDescParentName.Default.(string)
	// submissionDescChildName is the schema descriptor for child_name field.
	submissionDescChildName := submissionFields[4].Descriptor()
	// submission.DefaultChildName holds the default value on creation for the child_name field.
	submission.DefaultChildName = submissionDescChildName.Default.(string)
	// submissionDescSource is the schema descriptor for source field.
	submissionDescSource := submissionFields[5].Descriptor()
	// submission.DefaultSource holds the default value on creation for the source field.
	submission.DefaultSource = submissionDescSource.Default.(string)
	// submissionDescLastStep is the schema descriptor for last_step field.
	submissionDescLastStep := submissionFields[7].Descriptor()
	// submission.DefaultLastStep holds the default value on creation for the last_step field.
	submission.DefaultLastStep = submissionDescLastStep.Default.(int)
	// submissionDescScore is the schema descriptor for score field.
	submissionDescScore := submissionFields[9].Descriptor()
	// submission.DefaultScore holds the default value on creation for the score field.
	submission.DefaultScore = submissionDescScore.Default.(int)
	// submissionDescBand is the schema descriptor for band field.
	submissionDescBand := submissionFields[10].Descriptor()
	// submission.DefaultBand holds the default value on creation for the band field.
	submission.DefaultBand = submissionDescBand.Default.(string)
	// submissionDescBandLabel is the schema descriptor for band_label field.
	submissionDescBandLabel := submissionFields[11].Descriptor()
	// submission.DefaultBandLabel holds the default value on creation for the band_label field.
	submission.DefaultBandLabel = submissionDescBandLabel.Default.(string)
	// submissionDescBandDescription is the schema descriptor for band_description field.
	submissionDescBandDescription := submissionFields[12].Descriptor()
	// submission.DefaultBandDescription holds the default value on creation for the band_description field.
	submission.DefaultBandDescription = submissionDescBandDescription.Default.(string)
	// submissionDescPrimaryInstrument is the schema descriptor for primary_instrument field.
	submissionDescPrimaryInstrument := submissionFields[13].Descriptor()
	// submission.DefaultPrimaryInstrument holds the default value on creation for the primary_instrument field.
	submission.DefaultPrimaryInstrument = submissionDescPrimaryInstrument.Default.(string)
	// submissionDescPlanSource is the schema descriptor for plan_source field.
	submissionDescPlanSource := submissionFields[16].Descriptor()
	// submission.DefaultPlanSource holds the default value on creation for the plan_source field.
	submission.DefaultPlanSource = submissionDescPlanSource.Default.(string)
	// submissionDescCreatedAt is the schema descriptor for created_at field.
	submissionDescCreatedAt := submissionFields[18].Descriptor()
	// submission.DefaultCreatedAt holds the default value on creation for the created_at field.
	submission.DefaultCreatedAt = submissionDescCreatedAt.Default.(func() time.Time)
	// submissionDescUpdatedAt is the schema descriptor for updated_at field.
	submissionDescUpdatedAt := submissionFields[19].Descriptor()
	// submission.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	submission.DefaultUpdatedAt = submissionDescUpdatedAt.Default.(func() time.Time)
	// submission.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	submission.UpdateDefaultUpdatedAt = submissionDescUpdatedAt.UpdateDefault.(func() time.Time)
}
