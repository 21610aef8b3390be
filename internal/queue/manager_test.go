package queue

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/capturedesk/capturedesk/constants"
	"github.com/capturedesk/capturedesk/internal/common"
	"github.com/capturedesk/capturedesk/internal/entity"
	"github.com/capturedesk/capturedesk/internal/pipeline"
	"github.com/capturedesk/capturedesk/internal/providers"
	"github.com/capturedesk/capturedesk/internal/reasoning"
	"github.com/capturedesk/capturedesk/internal/repository/repotest"
)

type stubReason struct{}

func (stubReason) Analyze(_ context.Context, _ reasoning.AnalyzeRequest) (reasoning.Analysis, []byte, error) {
	return reasoning.Analysis{Title: "analyzed", Summary: "summary"}, nil, nil
}

func (stubReason) Summarize(_ context.Context, _ reasoning.SummarizeRequest) (string, error) {
	return "", nil
}

type queueEnv struct {
	mgr      *Manager
	proc     *pipeline.Processor
	items    *repotest.MemItems
	captures *repotest.MemCaptures
}

func newQueueEnv(t *testing.T) *queueEnv {
	t.Helper()
	return newQueueEnvWithBundle(t, providers.Bundle{})
}

func newQueueEnvWithBundle(t *testing.T, bundle providers.Bundle) *queueEnv {
	t.Helper()
	items := repotest.NewMemItems()
	captures := repotest.NewMemCaptures()
	sessions := repotest.NewMemSessions()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	cfg := common.PipelineConfig{
		StaleProcessingCutoff: 5 * time.Minute,
		LiveLocationMaxAge:    5 * time.Minute,
		ReprocessBatchSize:    3,
	}
	pcfg := common.ProviderConfig{
		LinkTimeout: time.Second, PlaceTimeout: time.Second, SearchTimeout: time.Second,
		WeatherTimeout: time.Second, ActivityTimeout: time.Second,
		CoverTimeout: time.Second, ProductTimeout: time.Second,
	}
	rcfg := common.ReasoningConfig{ChunkChars: 6000, ChunkOverlap: 400}

	orch := pipeline.NewOrchestrator(bundle, pcfg, 100, logger)
	proc := pipeline.NewProcessor(items, captures, sessions, orch, stubReason{}, bundle, cfg, rcfg, logger)
	mgr := NewManager(captures, items, proc, cfg, logger)
	return &queueEnv{mgr: mgr, proc: proc, items: items, captures: captures}
}

func textCapture(t *testing.T, text string, createdAt time.Time) *entity.CaptureInput {
	t.Helper()
	return &entity.CaptureInput{
		ID:        uuid.New(),
		CreatedAt: createdAt,
		Text:      text,
		InputType: string(constants.InputText),
	}
}

func TestDrainPending_ProcessesBacklogInOrder(t *testing.T) {
	env := newQueueEnv(t)
	ctx := context.Background()

	base := time.Now().Add(-time.Minute)
	for i := 0; i < 3; i++ {
		c := textCapture(t, "note", base.Add(time.Duration(i)*time.Second))
		require.NoError(t, env.captures.Create(ctx, c))
	}

	processed, err := env.mgr.DrainPending(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, processed)

	env.proc.Wait()

	items, err := env.items.List(ctx, nil, 0)
	require.NoError(t, err)
	assert.Len(t, items, 3)
	for _, it := range items {
		assert.Equal(t, constants.StatusReady, it.Status)
	}
	pending, err := env.captures.ListPending(ctx)
	require.NoError(t, err)
	assert.Empty(t, pending, "completed captures are consumed")
}

func TestDrainPending_EmptyBacklog(t *testing.T) {
	env := newQueueEnv(t)
	processed, err := env.mgr.DrainPending(context.Background())
	require.NoError(t, err)
	assert.Zero(t, processed)
}

func TestResumeInterrupted_RecoversStaleAndBacklog(t *testing.T) {
	env := newQueueEnv(t)
	ctx := context.Background()

	// a record orphaned mid-processing by a crash
	stuckID := uuid.New()
	require.NoError(t, env.items.Create(ctx, &entity.ProcessedItem{
		ID:        stuckID,
		Title:     "stuck",
		Status:    constants.StatusProcessing,
		CreatedAt: time.Now().Add(-time.Hour),
	}))
	env.items.SetUpdatedAt(stuckID, time.Now().Add(-30*time.Minute))

	// and an unconsumed capture row
	c := textCapture(t, "survived the crash", time.Now().Add(-time.Hour))
	require.NoError(t, env.captures.Create(ctx, c))

	require.NoError(t, env.mgr.ResumeInterrupted(ctx))
	env.proc.Wait()

	stuck, err := env.items.Get(ctx, stuckID)
	require.NoError(t, err)
	assert.NotEqual(t, constants.StatusProcessing, stuck.Status, "stale processing is reset")

	recovered, err := env.items.Get(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, constants.StatusReady, recovered.Status, "undeleted captures are re-walked")

	pending, err := env.captures.ListPending(ctx)
	require.NoError(t, err)
	assert.Empty(t, pending)
}

func TestResumeInterrupted_FreshProcessingUntouched(t *testing.T) {
	env := newQueueEnv(t)
	ctx := context.Background()

	id := uuid.New()
	require.NoError(t, env.items.Create(ctx, &entity.ProcessedItem{
		ID:        id,
		Status:    constants.StatusProcessing,
		CreatedAt: time.Now(),
	}))

	require.NoError(t, env.mgr.ResumeInterrupted(ctx))

	it, err := env.items.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, constants.StatusProcessing, it.Status,
		"work inside the cutoff window is presumed alive")
}

func TestProcessNow_ReturnsTheItem(t *testing.T) {
	env := newQueueEnv(t)
	ctx := context.Background()

	c := textCapture(t, "priority note", time.Now())

	item, err := env.mgr.ProcessNow(ctx, c)
	require.NoError(t, err)
	require.NotNil(t, item)
	assert.Equal(t, c.ID, item.ID)

	env.proc.Wait()
	got, err := env.items.Get(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, constants.StatusReady, got.Status)
}

func TestReprocessSince_BatchesWithProgress(t *testing.T) {
	env := newQueueEnv(t)
	ctx := context.Background()

	cutoff := time.Now().Add(-time.Hour)
	for i := 0; i < 4; i++ {
		require.NoError(t, env.items.Create(ctx, &entity.ProcessedItem{
			ID:        uuid.New(),
			Title:     "stored",
			Status:    constants.StatusReady,
			CreatedAt: time.Now().Add(-30 * time.Minute),
			Modality:  string(constants.InputText),
		}))
	}
	// one item older than the cutoff stays out of scope
	oldID := uuid.New()
	require.NoError(t, env.items.Create(ctx, &entity.ProcessedItem{
		ID:        oldID,
		Status:    constants.StatusReady,
		CreatedAt: time.Now().Add(-2 * time.Hour),
	}))

	var mu sync.Mutex
	var progress [][2]int
	err := env.mgr.ReprocessSince(ctx, cutoff, func(done, total int) {
		mu.Lock()
		defer mu.Unlock()
		progress = append(progress, [2]int{done, total})
	}, nil)
	require.NoError(t, err)
	env.proc.Wait()

	assert.Equal(t, [][2]int{{3, 4}, {4, 4}}, progress, "fixed-size batches report per batch")
}

// countingActivity records how many provider calls overlap in time.
type countingActivity struct {
	delay time.Duration

	mu     sync.Mutex
	active int
	peak   int
	calls  int
}

func (a *countingActivity) Current(ctx context.Context) (*entity.ActivityContext, error) {
	a.mu.Lock()
	a.active++
	a.calls++
	if a.active > a.peak {
		a.peak = a.active
	}
	a.mu.Unlock()
	defer func() {
		a.mu.Lock()
		a.active--
		a.mu.Unlock()
	}()
	select {
	case <-time.After(a.delay):
	case <-ctx.Done():
	}
	return &entity.ActivityContext{Type: "walking", Confidence: 0.9}, nil
}

func TestReprocessSince_BoundsProviderConcurrency(t *testing.T) {
	act := &countingActivity{delay: 30 * time.Millisecond}
	env := newQueueEnvWithBundle(t, providers.Bundle{Activity: act})
	ctx := context.Background()

	for i := 0; i < 9; i++ {
		require.NoError(t, env.items.Create(ctx, &entity.ProcessedItem{
			ID:        uuid.New(),
			Title:     "stored",
			Status:    constants.StatusReady,
			CreatedAt: time.Now().Add(-30 * time.Minute),
			Modality:  string(constants.InputText),
		}))
	}

	require.NoError(t, env.mgr.ReprocessSince(ctx, time.Now().Add(-time.Hour), nil, nil))
	env.proc.Wait()

	act.mu.Lock()
	defer act.mu.Unlock()
	assert.Equal(t, 9, act.calls, "every item is reprocessed")
	assert.LessOrEqual(t, act.peak, 3, "no more provider fan-outs in flight than the batch size")
}

func TestReprocessSince_CancelledBetweenBatches(t *testing.T) {
	env := newQueueEnv(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.NoError(t, env.items.Create(context.Background(), &entity.ProcessedItem{
		ID:        uuid.New(),
		Status:    constants.StatusReady,
		CreatedAt: time.Now(),
	}))

	err := env.mgr.ReprocessSince(ctx, time.Now().Add(-time.Hour), nil, nil)
	assert.ErrorIs(t, err, context.Canceled)
}
