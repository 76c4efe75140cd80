// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/maestroworks/maestro/ent/job"
	"github.com/maestroworks/maestro/ent/pipeline"
	"github.com/maestroworks/maestro/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	jobFields := schema.Job{}.Fields()
	_ = jobFields
	// jobDescAttemptCount is the schema descriptor for attempt_count field.
	jobDescAttemptCount := jobFields[12].Descriptor()
	// job.DefaultAttemptCount holds the default value on creation for the attempt_count field.
	job.DefaultAttemptCount = jobDescAttemptCount.Default.(int)
	// jobDescCreatedAt is the schema descriptor for created_at field.
	jobDescCreatedAt := jobFields[14].Descriptor()
	// job.DefaultCreatedAt holds the default value on creation for the created_at field.
	job.DefaultCreatedAt = jobDescCreatedAt.Default.(func() time.Time)
	pipelineFields := schema.Pipeline{}.Fields()
	_ = pipelineFields
	// pipelineDescCancelRequested is the schema descriptor for cancel_requested field.
	pipelineDescCancelRequested := pipelineFields[5].Descriptor()
	// pipeline.DefaultCancelRequested holds the default value on creation for the cancel_requested field.
	pipeline.DefaultCancelRequested = pipelineDescCancelRequested.Default.(bool)
	// pipelineDescCreatedAt is the schema descriptor for created_at field.
	pipelineDescCreatedAt := pipelineFields[8].Descriptor()
	// pipeline.DefaultCreatedAt holds the default value on creation for the created_at field.
	pipeline.DefaultCreatedAt = pipelineDescCreatedAt.Default.(func() time.Time)
	// pipelineDescUpdatedAt is the schema descriptor for updated_at field.
	pipelineDescUpdatedAt := pipelineFields[9].Descriptor()
	// pipeline.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	pipeline.DefaultUpdatedAt = pipelineDescUpdatedAt.Default.(func() time.Time)
	// pipeline.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	pipeline.UpdateDefaultUpdatedAt = pipelineDescUpdatedAt.UpdateDefault.(func() time.Time)
}
