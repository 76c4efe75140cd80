package models

// ErrorKind classifies a failure so the escalator and the queue can
// decide whether to retry, escalate, or report.
type ErrorKind string

// Transient kinds — retried within the attempt budget.
const (
	ErrKindTimeout         ErrorKind = "timeout"
	ErrKindContextOverflow ErrorKind = "context_overflow"
	ErrKindBackend5xx      ErrorKind = "backend_5xx"
)

// Contract kinds — fed to the escalator.
const (
	ErrKindJSONParse     ErrorKind = "json_parse"
	ErrKindFieldTooShort ErrorKind = "field_too_short"
	ErrKindInvalidValue  ErrorKind = "invalid_value"
	ErrKindSemanticNull  ErrorKind = "semantic_null"
)

// Structural kinds — reported to the caller, never retried.
const (
	ErrKindInvalidTransition ErrorKind = "invalid_transition"
	ErrKindDuplicatePush     ErrorKind = "duplicate_push"
	ErrKindLeaseExpired      ErrorKind = "lease_expired"
)

// Fatal kinds — pipeline-level escalation, no further scheduling.
const (
	ErrKindHardFail    ErrorKind = "hard_fail"
	ErrKindCEORequired ErrorKind = "ceo_required"
)

// Transient reports whether the kind may be retried by the
// supervisor or queue without escalating.
func (k ErrorKind) Transient() bool {
	switch k {
	case ErrKindTimeout, ErrKindContextOverflow, ErrKindBackend5xx:
		return true
	}
	return false
}

// Contract reports whether the kind represents a worker-output
// contract violation handled by the escalator.
func (k ErrorKind) Contract() bool {
	switch k {
	case ErrKindJSONParse, ErrKindFieldTooShort, ErrKindInvalidValue, ErrKindSemanticNull:
		return true
	}
	return false
}
