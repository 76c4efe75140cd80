package cleanup

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/maestroworks/maestro/pkg/config"
)

type fakePurger struct {
	mu    sync.Mutex
	calls int
	ttl   time.Duration
}

func (p *fakePurger) DeleteOldJobs(_ context.Context, ttl time.Duration) (int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.calls++
	p.ttl = ttl
	return 2, nil
}

type fakeArchiver struct {
	mu     sync.Mutex
	calls  int
	cutoff time.Time
}

func (a *fakeArchiver) ArchiveBefore(cutoff time.Time) (int, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.calls++
	a.cutoff = cutoff
	return 1, nil
}

func TestServiceRunsBothTasksOnStart(t *testing.T) {
	retention := config.DefaultRetentionConfig()
	retention.CleanupInterval = time.Hour // only the startup pass fires
	eventLogCfg := config.DefaultEventLogConfig()

	purger := &fakePurger{}
	archiver := &fakeArchiver{}
	svc := NewService(retention, eventLogCfg, purger, archiver)

	svc.Start(context.Background())
	// The first pass runs synchronously at loop start; give it a moment.
	time.Sleep(50 * time.Millisecond)
	svc.Stop()

	purger.mu.Lock()
	assert.Equal(t, 1, purger.calls)
	assert.Equal(t, retention.JobTTL, purger.ttl)
	purger.mu.Unlock()

	archiver.mu.Lock()
	assert.Equal(t, 1, archiver.calls)
	wantCutoff := time.Now().UTC().AddDate(0, 0, -eventLogCfg.ArchiveAfterDays)
	assert.WithinDuration(t, wantCutoff, archiver.cutoff, time.Minute)
	archiver.mu.Unlock()
}

func TestServiceTicksOnInterval(t *testing.T) {
	retention := config.DefaultRetentionConfig()
	retention.CleanupInterval = 10 * time.Millisecond
	purger := &fakePurger{}
	svc := NewService(retention, config.DefaultEventLogConfig(), purger, nil)

	svc.Start(context.Background())
	time.Sleep(50 * time.Millisecond)
	svc.Stop()

	purger.mu.Lock()
	defer purger.mu.Unlock()
	assert.GreaterOrEqual(t, purger.calls, 2)
}

func TestStopBeforeStartIsNoop(t *testing.T) {
	svc := NewService(config.DefaultRetentionConfig(), config.DefaultEventLogConfig(), &fakePurger{}, nil)
	svc.Stop()
}
