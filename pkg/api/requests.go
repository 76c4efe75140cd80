package api

// CreateJobRequest is the HTTP request body for POST /api/v1/jobs/create.
type CreateJobRequest struct {
	PipelineID  string `json:"pipeline_id,omitempty"`
	ParentJobID string `json:"parent_job_id,omitempty"`
	Role        string `json:"role"`
	Mode        string `json:"mode,omitempty"`
	Payload     string `json:"payload"`
	Context     string `json:"context,omitempty"`
	Priority    string `json:"priority,omitempty"`
	Sequence    *int   `json:"sequence,omitempty"`
	SessionID   string `json:"session_id,omitempty"`
}

// PushJobRequest is the HTTP request body for POST /api/v1/jobs/push.
// Exactly one of result or error must be set.
type PushJobRequest struct {
	JobID  string `json:"job_id"`
	Owner  string `json:"owner,omitempty"`
	Result string `json:"result,omitempty"`
	Error  string `json:"error,omitempty"`
}
