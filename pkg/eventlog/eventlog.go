// Package eventlog provides the append-only JSONL record of every
// inter-role exchange. Records chain parent→child across a pipeline
// and are persisted one per line in UTC day files.
package eventlog

import (
	"bufio"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"
)

// Type classifies an event record.
type Type string

// Event types.
const (
	TypeRequest  Type = "request"
	TypeResponse Type = "response"
	TypeDecision Type = "decision"
	TypeState    Type = "state"
	TypeError    Type = "error"
)

// maxContentRunes caps the persisted content field. Longer payloads are
// truncated; the full text lives with the job result, not the log.
const maxContentRunes = 10000

// Event is one immutable log record.
type Event struct {
	ID            int64          `json:"id"`
	T             string         `json:"t"`
	PipelineID    string         `json:"pipeline_id"`
	JobID         string         `json:"job_id,omitempty"`
	FromRole      string         `json:"from_role"`
	ToRole        string         `json:"to_role,omitempty"`
	EventType     Type           `json:"event_type"`
	ParentEventID *int64         `json:"parent_event_id,omitempty"`
	Content       string         `json:"content"`
	Metadata      map[string]any `json:"metadata,omitempty"`
}

// Log is the append-only event store. A single mutex serializes
// appends; reads open their own handles and never block writers.
type Log struct {
	dir string

	mu     sync.Mutex
	file   *os.File
	day    string // UTC day the open file belongs to
	closed bool
	nextID int64

	corruptLines atomic.Int64
}

// New opens (or creates) the log rooted at dir. The high-water event id
// is restored by scanning the newest day file so ids stay monotonic
// across restarts.
func New(dir string) (*Log, error) {
	if err := os.MkdirAll(filepath.Join(dir, "archive"), 0o755); err != nil {
		return nil, fmt.Errorf("creating event log directory: %w", err)
	}

	l := &Log{dir: dir, nextID: 1}
	if err := l.restoreHighWater(); err != nil {
		return nil, err
	}
	slog.Info("Event log opened", "dir", dir, "next_event_id", l.nextID)
	return l, nil
}

// Close releases the open day file. Subsequent appends fail.
func (l *Log) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.closed = true
	if l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	return err
}

// CorruptLines returns the number of unparseable lines skipped by reads
// since startup.
func (l *Log) CorruptLines() int64 {
	return l.corruptLines.Load()
}

// Append assigns the next id and timestamp, truncates content, and
// writes the record as one JSON line. The write is a single write(2) of
// a full line, so records are never torn. A failed append is returned
// to the caller; nothing is dropped silently.
func (l *Log) Append(ev Event) (int64, error) {
	now := time.Now().UTC()

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return 0, fmt.Errorf("event log is closed")
	}
	if err := l.rotateLocked(now); err != nil {
		return 0, err
	}

	ev.ID = l.nextID
	ev.T = now.Format(time.RFC3339Nano)
	ev.Content = truncateRunes(ev.Content, maxContentRunes)
	if ev.ParentEventID != nil && *ev.ParentEventID >= ev.ID {
		return 0, fmt.Errorf("parent_event_id %d does not precede event %d", *ev.ParentEventID, ev.ID)
	}

	line, err := json.Marshal(ev)
	if err != nil {
		return 0, fmt.Errorf("marshaling event: %w", err)
	}
	if _, err := l.file.Write(append(line, '\n')); err != nil {
		return 0, fmt.Errorf("appending event: %w", err)
	}

	l.nextID++
	return ev.ID, nil
}

// ReadDay streams the records of one UTC day (date formatted
// YYYY-MM-DD). Corrupt lines are skipped and counted. The archive
// subtree is consulted when the day file has been migrated.
func (l *Log) ReadDay(date string) ([]Event, error) {
	path := filepath.Join(l.dir, date+".jsonl")
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		f, err = os.Open(filepath.Join(l.dir, "archive", date+".jsonl"))
	}
	if err != nil {
		return nil, fmt.Errorf("opening day file %s: %w", date, err)
	}
	defer f.Close()

	var events []Event
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for scanner.Scan() {
		var ev Event
		if err := json.Unmarshal(scanner.Bytes(), &ev); err != nil {
			l.corruptLines.Add(1)
			slog.Warn("Skipping corrupt event log line", "date", date, "error", err)
			continue
		}
		events = append(events, ev)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading day file %s: %w", date, err)
	}
	return events, nil
}

// Chain returns the ancestry of an event, root first, ending with the
// event itself. The walk follows parent_event_id backward across day
// files. A step cap guards the (structurally impossible) cycle case.
func (l *Log) Chain(eventID int64) ([]Event, error) {
	index, err := l.loadIndex()
	if err != nil {
		return nil, err
	}

	const maxChain = 100000
	var chain []Event
	id := eventID
	for steps := 0; steps < maxChain; steps++ {
		ev, ok := index[id]
		if !ok {
			if id == eventID {
				return nil, fmt.Errorf("event %d not found", id)
			}
			// The parent was archived; the chain ends at the oldest
			// live record.
			return reversed(chain), nil
		}
		chain = append(chain, ev)
		if ev.ParentEventID == nil {
			return reversed(chain), nil
		}
		id = *ev.ParentEventID
	}
	return nil, fmt.Errorf("chain walk from event %d exceeded %d steps", eventID, maxChain)
}

// reversed flips a walked chain into root-first order.
func reversed(chain []Event) []Event {
	for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
		chain[i], chain[j] = chain[j], chain[i]
	}
	return chain
}

// Days lists the dates present in the live stream, oldest first.
func (l *Log) Days() ([]string, error) {
	entries, err := os.ReadDir(l.dir)
	if err != nil {
		return nil, fmt.Errorf("listing event log: %w", err)
	}
	var days []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".jsonl") {
			continue
		}
		days = append(days, strings.TrimSuffix(e.Name(), ".jsonl"))
	}
	sort.Strings(days)
	return days, nil
}

// ArchiveBefore moves day files older than cutoff (by filename date)
// into the archive subtree. Returns the number of files moved.
func (l *Log) ArchiveBefore(cutoff time.Time) (int, error) {
	days, err := l.Days()
	if err != nil {
		return 0, err
	}

	cutoffDay := cutoff.UTC().Format("2006-01-02")
	moved := 0
	for _, day := range days {
		if day >= cutoffDay {
			continue
		}

		l.mu.Lock()
		// Never archive the file currently open for appends.
		if day == l.day {
			l.mu.Unlock()
			continue
		}
		src := filepath.Join(l.dir, day+".jsonl")
		dst := filepath.Join(l.dir, "archive", day+".jsonl")
		err := os.Rename(src, dst)
		l.mu.Unlock()

		if err != nil {
			return moved, fmt.Errorf("archiving %s: %w", day, err)
		}
		moved++
	}
	return moved, nil
}

// rotateLocked ensures the open file matches the current UTC day.
func (l *Log) rotateLocked(now time.Time) error {
	day := now.Format("2006-01-02")
	if l.file != nil && l.day == day {
		return nil
	}
	if l.file != nil {
		if err := l.file.Close(); err != nil {
			slog.Warn("Closing previous day file failed", "day", l.day, "error", err)
		}
	}

	path := filepath.Join(l.dir, day+".jsonl")
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("opening day file %s: %w", day, err)
	}
	l.file = f
	l.day = day
	return nil
}

// restoreHighWater scans the newest day file (live stream first, then
// archive) and resumes numbering above the largest id found.
func (l *Log) restoreHighWater() error {
	days, err := l.Days()
	if err != nil {
		return err
	}
	if len(days) == 0 {
		// Everything may already be archived; resume above the archive.
		days, err = l.archivedDays()
		if err != nil || len(days) == 0 {
			return err
		}
	}

	events, err := l.ReadDay(days[len(days)-1])
	if err != nil {
		return err
	}
	for _, ev := range events {
		if ev.ID >= l.nextID {
			l.nextID = ev.ID + 1
		}
	}
	return nil
}

// archivedDays lists the dates present in the archive, oldest first.
func (l *Log) archivedDays() ([]string, error) {
	entries, err := os.ReadDir(filepath.Join(l.dir, "archive"))
	if err != nil {
		return nil, fmt.Errorf("listing event log archive: %w", err)
	}
	var days []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".jsonl") {
			continue
		}
		days = append(days, strings.TrimSuffix(e.Name(), ".jsonl"))
	}
	sort.Strings(days)
	return days, nil
}

// loadIndex reads every live day file into an id→event map for chain
// walks. Archived days are excluded; chains across the archive boundary
// end at the oldest live record.
func (l *Log) loadIndex() (map[int64]Event, error) {
	days, err := l.Days()
	if err != nil {
		return nil, err
	}
	index := make(map[int64]Event)
	for _, day := range days {
		events, err := l.ReadDay(day)
		if err != nil {
			return nil, err
		}
		for _, ev := range events {
			index[ev.ID] = ev
		}
	}
	return index, nil
}

func truncateRunes(s string, n int) string {
	if len(s) <= n {
		return s
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
