package eventlog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendAssignsMonotonicIDs(t *testing.T) {
	log, err := New(t.TempDir())
	require.NoError(t, err)
	defer log.Close()

	var last int64
	for i := 0; i < 5; i++ {
		id, err := log.Append(Event{
			PipelineID: "p1",
			FromRole:   "pm",
			EventType:  TypeRequest,
			Content:    "work item",
		})
		require.NoError(t, err)
		assert.Greater(t, id, last)
		last = id
	}

	day := time.Now().UTC().Format("2006-01-02")
	events, err := log.ReadDay(day)
	require.NoError(t, err)
	require.Len(t, events, 5)
	for i, ev := range events {
		assert.Equal(t, int64(i+1), ev.ID)
		assert.NotEmpty(t, ev.T)
	}
}

func TestChainEndsWithAppendedEvent(t *testing.T) {
	log, err := New(t.TempDir())
	require.NoError(t, err)
	defer log.Close()

	rootID, err := log.Append(Event{PipelineID: "p1", FromRole: "pm", EventType: TypeRequest, Content: "root"})
	require.NoError(t, err)

	midID, err := log.Append(Event{PipelineID: "p1", FromRole: "coder", EventType: TypeResponse, ParentEventID: &rootID, Content: "mid"})
	require.NoError(t, err)

	leafID, err := log.Append(Event{PipelineID: "p1", FromRole: "qa", EventType: TypeResponse, ParentEventID: &midID, Content: "leaf"})
	require.NoError(t, err)

	chain, err := log.Chain(leafID)
	require.NoError(t, err)
	require.Len(t, chain, 3)
	assert.Equal(t, rootID, chain[0].ID)
	assert.Equal(t, leafID, chain[len(chain)-1].ID)

	// Every parent precedes its child.
	for _, ev := range chain[1:] {
		require.NotNil(t, ev.ParentEventID)
		assert.Less(t, *ev.ParentEventID, ev.ID)
	}
}

func TestChainStopsAtArchiveBoundary(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "archive"), 0o755))

	// The chain root lives in an already-archived day.
	archived := `{"id":1,"t":"2026-08-01T00:00:00Z","pipeline_id":"p1","from_role":"pm","event_type":"request","content":"root"}` + "\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "archive", "2026-08-01.jsonl"), []byte(archived), 0o644))

	log, err := New(dir)
	require.NoError(t, err)
	defer log.Close()

	parent := int64(1)
	midID, err := log.Append(Event{PipelineID: "p1", FromRole: "coder", EventType: TypeResponse, ParentEventID: &parent, Content: "mid"})
	require.NoError(t, err)
	leafID, err := log.Append(Event{PipelineID: "p1", FromRole: "qa", EventType: TypeResponse, ParentEventID: &midID, Content: "leaf"})
	require.NoError(t, err)

	// The walk ends at the oldest live record instead of failing.
	chain, err := log.Chain(leafID)
	require.NoError(t, err)
	require.Len(t, chain, 2)
	assert.Equal(t, midID, chain[0].ID)
	assert.Equal(t, leafID, chain[1].ID)
}

func TestChainUnknownEventFails(t *testing.T) {
	log, err := New(t.TempDir())
	require.NoError(t, err)
	defer log.Close()

	_, err = log.Chain(42)
	assert.Error(t, err)
}

func TestAppendAfterCloseFails(t *testing.T) {
	log, err := New(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, log.Close())

	_, err = log.Append(Event{PipelineID: "p1", FromRole: "pm", EventType: TypeState})
	assert.ErrorContains(t, err, "closed")
}

func TestAppendRejectsForwardParentReference(t *testing.T) {
	log, err := New(t.TempDir())
	require.NoError(t, err)
	defer log.Close()

	future := int64(99)
	_, err = log.Append(Event{PipelineID: "p1", FromRole: "pm", EventType: TypeState, ParentEventID: &future})
	assert.Error(t, err)
}

func TestReadDaySkipsCorruptLines(t *testing.T) {
	dir := t.TempDir()
	log, err := New(dir)
	require.NoError(t, err)
	defer log.Close()

	_, err = log.Append(Event{PipelineID: "p1", FromRole: "pm", EventType: TypeState, Content: "ok"})
	require.NoError(t, err)

	day := time.Now().UTC().Format("2006-01-02")
	path := filepath.Join(dir, day+".jsonl")
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_APPEND, 0o644)
	require.NoError(t, err)
	_, err = f.WriteString("{not json\n")
	require.NoError(t, err)
	require.NoError(t, f.Close())

	_, err = log.Append(Event{PipelineID: "p1", FromRole: "pm", EventType: TypeState, Content: "after"})
	require.NoError(t, err)

	events, err := log.ReadDay(day)
	require.NoError(t, err)
	assert.Len(t, events, 2)
	assert.Equal(t, int64(1), log.CorruptLines())
}

func TestContentTruncation(t *testing.T) {
	log, err := New(t.TempDir())
	require.NoError(t, err)
	defer log.Close()

	id, err := log.Append(Event{
		PipelineID: "p1",
		FromRole:   "coder",
		EventType:  TypeResponse,
		Content:    strings.Repeat("x", maxContentRunes+500),
	})
	require.NoError(t, err)

	day := time.Now().UTC().Format("2006-01-02")
	events, err := log.ReadDay(day)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, id, events[0].ID)
	assert.Len(t, events[0].Content, maxContentRunes)
}

func TestHighWaterRestoredAcrossReopen(t *testing.T) {
	dir := t.TempDir()

	log, err := New(dir)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		_, err := log.Append(Event{PipelineID: "p1", FromRole: "pm", EventType: TypeState})
		require.NoError(t, err)
	}
	require.NoError(t, log.Close())

	reopened, err := New(dir)
	require.NoError(t, err)
	defer reopened.Close()

	id, err := reopened.Append(Event{PipelineID: "p1", FromRole: "pm", EventType: TypeState})
	require.NoError(t, err)
	assert.Equal(t, int64(4), id)
}

func TestArchiveBeforeMovesOldDays(t *testing.T) {
	dir := t.TempDir()
	log, err := New(dir)
	require.NoError(t, err)
	defer log.Close()

	// Fabricate an old day file directly; appends always target today.
	oldDay := time.Now().UTC().AddDate(0, 0, -10).Format("2006-01-02")
	oldPath := filepath.Join(dir, oldDay+".jsonl")
	require.NoError(t, os.WriteFile(oldPath, []byte(`{"id":1,"t":"2026-01-01T00:00:00Z","pipeline_id":"p0","from_role":"pm","event_type":"state","content":""}`+"\n"), 0o644))

	_, err = log.Append(Event{PipelineID: "p1", FromRole: "pm", EventType: TypeState})
	require.NoError(t, err)

	moved, err := log.ArchiveBefore(time.Now().UTC().AddDate(0, 0, -7))
	require.NoError(t, err)
	assert.Equal(t, 1, moved)

	_, err = os.Stat(oldPath)
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(filepath.Join(dir, "archive", oldDay+".jsonl"))
	assert.NoError(t, err)

	// Archived days remain readable.
	events, err := log.ReadDay(oldDay)
	require.NoError(t, err)
	assert.Len(t, events, 1)
}
