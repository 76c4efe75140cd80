// Package escalate tracks repeated failures by signature and walks
// each signature up the self-repair → role-switch → hard-fail ladder.
package escalate

import (
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/maestroworks/maestro/pkg/models"
)

// Level is the escalation class of a failure signature. Levels only
// move up; a signature that reached hard_fail stays there.
type Level string

// Escalation levels, in order.
const (
	LevelSelfRepair Level = "self_repair"
	LevelRoleSwitch Level = "role_switch"
	LevelHardFail   Level = "hard_fail"
)

func (l Level) rank() int {
	switch l {
	case LevelSelfRepair:
		return 0
	case LevelRoleSwitch:
		return 1
	default:
		return 2
	}
}

// promptHashBytes bounds the prompt prefix that feeds the signature
// hash. Prompts differing only past this point collapse together.
const promptHashBytes = 500

// DefaultCapacity bounds the signature map.
const DefaultCapacity = 4096

// Signature is the equivalence class of a failure. Two failures
// collapse iff all four fields match.
type Signature struct {
	ErrorKind     models.ErrorKind `json:"error_kind"`
	MissingFields string           `json:"missing_fields"`
	Role          models.Role      `json:"role"`
	PromptHash    string           `json:"prompt_hash"`
}

// NewSignature builds a signature from a failure's parts. Missing
// fields are sorted so ordering never splits an equivalence class.
func NewSignature(kind models.ErrorKind, missingFields []string, role models.Role, prompt string) Signature {
	sorted := append([]string(nil), missingFields...)
	sort.Strings(sorted)

	prefix := prompt
	if len(prefix) > promptHashBytes {
		prefix = prefix[:promptHashBytes]
	}
	sum := md5.Sum([]byte(prefix))

	return Signature{
		ErrorKind:     kind,
		MissingFields: strings.Join(sorted, ","),
		Role:          role,
		PromptHash:    hex.EncodeToString(sum[:]),
	}
}

// Record is the per-signature counter and current level.
type Record struct {
	Count int   `json:"count"`
	Level Level `json:"level"`
}

// Directive tells the caller what to do after a failure.
type Directive struct {
	Level        Level
	Count        int
	RetryRole    models.Role // role to retry with; differs from the failing role after a switch
	RoleSwitched bool
	Feedback     string // preamble to prepend to the retry prompt
}

// Escalator owns the signature→record map. Process-local; Snapshot and
// Restore give best-effort continuity across restarts.
type Escalator struct {
	mu       sync.Mutex
	records  *lru.Cache[Signature, *Record]
	switched map[string]bool // pipelineID|role pairs that already switched
}

// New creates an escalator with the given signature capacity.
// Capacities below DefaultCapacity are raised to it.
func New(capacity int) (*Escalator, error) {
	if capacity < DefaultCapacity {
		capacity = DefaultCapacity
	}
	records, err := lru.New[Signature, *Record](capacity)
	if err != nil {
		return nil, fmt.Errorf("creating signature cache: %w", err)
	}
	return &Escalator{
		records:  records,
		switched: make(map[string]bool),
	}, nil
}

// OnFailure records one failure occurrence and returns the directive
// for the retry. errDetail is the failure text echoed back to the
// model on self-repair.
func (e *Escalator) OnFailure(pipelineID string, sig Signature, errDetail string) Directive {
	e.mu.Lock()
	defer e.mu.Unlock()

	rec, ok := e.records.Get(sig)
	if !ok {
		rec = &Record{Count: 0, Level: LevelSelfRepair}
		e.records.Add(sig, rec)
	}
	rec.Count++

	level := levelFor(rec.Count)

	// role_switch is allowed at most once per role per pipeline, and
	// only for switchable roles. Exhausted switches go straight to
	// hard_fail.
	var retryRole models.Role
	switched := false
	if level == LevelRoleSwitch {
		alternate, switchable := models.RoleSwitchMap[sig.Role]
		key := switchKey(pipelineID, sig.Role)
		if !switchable || e.switched[key] {
			level = LevelHardFail
		} else {
			e.switched[key] = true
			retryRole = alternate
			switched = true
		}
	}

	// Monotonic: never step below a level already reached.
	if level.rank() < rec.Level.rank() {
		level = rec.Level
	}
	rec.Level = level

	d := Directive{Level: level, Count: rec.Count, RetryRole: sig.Role, RoleSwitched: switched}
	switch level {
	case LevelSelfRepair:
		d.Feedback = fmt.Sprintf("[ERROR_FEEDBACK] The previous attempt failed: %s. Correct the output and respond again.", errDetail)
	case LevelRoleSwitch:
		d.RetryRole = retryRole
		d.Feedback = fmt.Sprintf("[ROLE_SWITCH] Taking over after repeated failures by %s: %s", sig.Role, errDetail)
	case LevelHardFail:
		d.Feedback = ""
	}

	slog.Info("Failure escalation",
		"pipeline_id", pipelineID,
		"role", sig.Role,
		"error_kind", sig.ErrorKind,
		"count", rec.Count,
		"level", level)
	return d
}

// Lookup returns the current record for a signature without mutating it.
func (e *Escalator) Lookup(sig Signature) (Record, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	rec, ok := e.records.Get(sig)
	if !ok {
		return Record{}, false
	}
	return *rec, true
}

// Len returns the number of live signatures.
func (e *Escalator) Len() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.records.Len()
}

func levelFor(count int) Level {
	switch {
	case count <= 1:
		return LevelSelfRepair
	case count == 2:
		return LevelRoleSwitch
	default:
		return LevelHardFail
	}
}

func switchKey(pipelineID string, role models.Role) string {
	return pipelineID + "|" + string(role)
}

// snapshotEntry pairs a signature with its record for persistence.
type snapshotEntry struct {
	Signature Signature `json:"signature"`
	Record    Record    `json:"record"`
}

// Snapshot writes the live records as JSON. Per-pipeline switch state
// is deliberately excluded: pipelines do not survive a restart intact.
func (e *Escalator) Snapshot(w io.Writer) error {
	e.mu.Lock()
	entries := make([]snapshotEntry, 0, e.records.Len())
	for _, sig := range e.records.Keys() {
		if rec, ok := e.records.Peek(sig); ok {
			entries = append(entries, snapshotEntry{Signature: sig, Record: *rec})
		}
	}
	e.mu.Unlock()

	return json.NewEncoder(w).Encode(entries)
}

// Restore loads records from a prior Snapshot. Unreadable input is an
// error for the caller to log; continuity is best-effort.
func (e *Escalator) Restore(r io.Reader) error {
	var entries []snapshotEntry
	if err := json.NewDecoder(r).Decode(&entries); err != nil {
		return fmt.Errorf("decoding escalator snapshot: %w", err)
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	for _, entry := range entries {
		rec := entry.Record
		e.records.Add(entry.Signature, &rec)
	}
	return nil
}
