package session

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/capturedesk/capturedesk/internal/common"
	"github.com/capturedesk/capturedesk/internal/entity"
	"github.com/capturedesk/capturedesk/internal/reasoning"
	"github.com/capturedesk/capturedesk/internal/repository/repotest"
)

type stubReason struct {
	summarize func(req reasoning.SummarizeRequest) (string, error)
}

func (s *stubReason) Analyze(_ context.Context, _ reasoning.AnalyzeRequest) (reasoning.Analysis, []byte, error) {
	return reasoning.Analysis{}, nil, nil
}

func (s *stubReason) Summarize(_ context.Context, req reasoning.SummarizeRequest) (string, error) {
	if s.summarize == nil {
		return "", nil
	}
	return s.summarize(req)
}

type sessionEnv struct {
	agg      *Aggregator
	sessions *repotest.MemSessions
	items    *repotest.MemItems
}

func newSessionEnv(t *testing.T, reason *stubReason) *sessionEnv {
	t.Helper()
	sessions := repotest.NewMemSessions()
	items := repotest.NewMemItems()
	cfg := common.PipelineConfig{
		ConsolidateWindow:  5 * time.Second,
		ConsolidateDegrees: 0.0005,
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return &sessionEnv{
		agg:      NewAggregator(sessions, items, reason, cfg, logger),
		sessions: sessions,
		items:    items,
	}
}

func readyItem(sessionID, title string, place *entity.PlaceContext) *entity.ProcessedItem {
	return &entity.ProcessedItem{
		ID:        uuid.New(),
		Title:     title,
		SessionID: sessionID,
		CreatedAt: time.Now(),
		Place:     place,
	}
}

func TestAttach_CreatesSessionLazily(t *testing.T) {
	env := newSessionEnv(t, &stubReason{
		summarize: func(req reasoning.SummarizeRequest) (string, error) {
			return "rolled up: " + strings.Join(req.Additions, "; "), nil
		},
	})
	ctx := context.Background()

	item := readyItem("walk-1", "Foo Cafe", &entity.PlaceContext{
		Name:       "Foo Cafe",
		PlaceID:    "f-1",
		Coordinate: &entity.LatLng{Lat: 47.6, Lng: -122.3},
	})
	item.Summary = "espresso stop"
	require.NoError(t, env.agg.Attach(ctx, item))

	s, err := env.sessions.Get(ctx, "walk-1")
	require.NoError(t, err)
	assert.Equal(t, "Foo Cafe", s.Title)
	assert.Equal(t, "f-1", s.PlaceID)
	require.NotNil(t, s.Coordinate)
	assert.Equal(t, "Foo Cafe", s.LocationName)
	assert.Contains(t, s.Summary, "Foo Cafe: espresso stop")
}

func TestAttach_KeepsExistingPlaceAndSkipsHome(t *testing.T) {
	env := newSessionEnv(t, &stubReason{})
	ctx := context.Background()

	require.NoError(t, env.sessions.Create(ctx, &entity.Session{
		SessionID:    "walk-1",
		Title:        "Morning walk",
		LocationName: "Pike Place",
		CreatedAt:    time.Now(),
	}))

	item := readyItem("walk-1", "Back door", &entity.PlaceContext{
		Name:       entity.HomeLabel,
		Coordinate: &entity.LatLng{Lat: 1, Lng: 2},
	})
	require.NoError(t, env.agg.Attach(ctx, item))

	s, err := env.sessions.Get(ctx, "walk-1")
	require.NoError(t, err)
	assert.Equal(t, "Pike Place", s.LocationName, "an established name is never replaced")
	require.NotNil(t, s.Coordinate, "a missing coordinate still fills in")
}

func TestAttach_NoSessionIDIsANoOp(t *testing.T) {
	env := newSessionEnv(t, &stubReason{})
	require.NoError(t, env.agg.Attach(context.Background(), readyItem("", "loose item", nil)))
	all, err := env.sessions.ListAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestAttach_SummaryFailureKeepsPrevious(t *testing.T) {
	env := newSessionEnv(t, &stubReason{
		summarize: func(reasoning.SummarizeRequest) (string, error) {
			return "", context.DeadlineExceeded
		},
	})
	ctx := context.Background()
	require.NoError(t, env.sessions.Create(ctx, &entity.Session{
		SessionID: "walk-1",
		Summary:   "what we had so far",
		CreatedAt: time.Now(),
	}))

	require.NoError(t, env.agg.Attach(ctx, readyItem("walk-1", "New stop", nil)))

	s, err := env.sessions.Get(ctx, "walk-1")
	require.NoError(t, err)
	assert.Equal(t, "what we had so far", s.Summary)
}

func TestConsolidate_MergesNearDuplicates(t *testing.T) {
	env := newSessionEnv(t, &stubReason{})
	ctx := context.Background()
	base := time.Now().Add(-time.Minute)
	coord := entity.LatLng{Lat: 47.60000, Lng: -122.30000}
	nearby := entity.LatLng{Lat: 47.60010, Lng: -122.30010}

	require.NoError(t, env.sessions.Create(ctx, &entity.Session{
		SessionID:  "frag-a",
		Title:      "Lunch",
		CreatedAt:  base,
		Coordinate: &coord,
	}))
	require.NoError(t, env.sessions.Create(ctx, &entity.Session{
		SessionID:  "frag-b",
		Summary:    "two captures of the same table",
		CreatedAt:  base.Add(2 * time.Second),
		Coordinate: &nearby,
	}))

	itemA := readyItem("frag-a", "soup", nil)
	itemB := readyItem("frag-b", "salad", nil)
	require.NoError(t, env.items.Create(ctx, itemA))
	require.NoError(t, env.items.Create(ctx, itemB))

	merged, err := env.agg.Consolidate(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, merged)

	_, err = env.sessions.Get(ctx, "frag-b")
	assert.ErrorIs(t, err, common.ErrNotFound, "the loser is gone")

	survivor, err := env.sessions.Get(ctx, "frag-a")
	require.NoError(t, err)
	assert.Equal(t, "Lunch", survivor.Title)
	assert.Equal(t, "two captures of the same table", survivor.Summary, "empty fields fill from the loser")

	members, err := env.items.ListBySession(ctx, "frag-a")
	require.NoError(t, err)
	assert.Len(t, members, 2, "every member of the loser is re-pointed")
	orphans, err := env.items.ListBySession(ctx, "frag-b")
	require.NoError(t, err)
	assert.Empty(t, orphans)
}

func TestConsolidate_CollapsesARunOfFragments(t *testing.T) {
	env := newSessionEnv(t, &stubReason{})
	ctx := context.Background()
	base := time.Now().Add(-time.Minute)
	coord := entity.LatLng{Lat: 10, Lng: 20}

	for i, id := range []string{"run-1", "run-2", "run-3"} {
		require.NoError(t, env.sessions.Create(ctx, &entity.Session{
			SessionID:  id,
			CreatedAt:  base.Add(time.Duration(i) * time.Second),
			Coordinate: &coord,
		}))
	}

	merged, err := env.agg.Consolidate(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, merged)

	all, err := env.sessions.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "run-1", all[0].SessionID)
}

func TestConsolidate_RespectsThresholds(t *testing.T) {
	ctx := context.Background()
	base := time.Now().Add(-time.Minute)
	coord := entity.LatLng{Lat: 10, Lng: 20}
	farCoord := entity.LatLng{Lat: 10.01, Lng: 20}

	tests := []struct {
		name   string
		second *entity.Session
	}{
		{"outside the time window", &entity.Session{
			SessionID: "b", CreatedAt: base.Add(10 * time.Second), Coordinate: &coord,
		}},
		{"outside the degree threshold", &entity.Session{
			SessionID: "b", CreatedAt: base.Add(time.Second), Coordinate: &farCoord,
		}},
		{"missing coordinate", &entity.Session{
			SessionID: "b", CreatedAt: base.Add(time.Second),
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newSessionEnv(t, &stubReason{})
			require.NoError(t, env.sessions.Create(ctx, &entity.Session{
				SessionID: "a", CreatedAt: base, Coordinate: &coord,
			}))
			require.NoError(t, env.sessions.Create(ctx, tt.second))

			merged, err := env.agg.Consolidate(ctx)
			require.NoError(t, err)
			assert.Zero(t, merged)

			all, err := env.sessions.ListAll(ctx)
			require.NoError(t, err)
			assert.Len(t, all, 2)
		})
	}
}
