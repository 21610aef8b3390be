package pipeline

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/capturedesk/capturedesk/internal/common"
	"github.com/capturedesk/capturedesk/internal/entity"
	"github.com/capturedesk/capturedesk/internal/providers"
	"github.com/capturedesk/capturedesk/internal/reasoning"
	"github.com/capturedesk/capturedesk/internal/repository/repotest"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func mustTime(t *testing.T, s string) time.Time {
	t.Helper()
	ts, err := time.Parse(time.RFC3339, s)
	if err != nil {
		t.Fatalf("parse time %q: %v", s, err)
	}
	return ts
}

func testPipelineConfig() common.PipelineConfig {
	return common.PipelineConfig{
		StaleProcessingCutoff: 5 * time.Minute,
		LiveLocationMaxAge:    5 * time.Minute,
		HomeRadiusMeters:      100,
		ConsolidateWindow:     5 * time.Second,
		ConsolidateDegrees:    0.0005,
		ReprocessBatchSize:    3,
		SiblingContextLimit:   5,
	}
}

func testProviderConfig() common.ProviderConfig {
	return common.ProviderConfig{
		LinkTimeout:     2 * time.Second,
		PlaceTimeout:    2 * time.Second,
		SearchTimeout:   2 * time.Second,
		WeatherTimeout:  2 * time.Second,
		ActivityTimeout: 2 * time.Second,
		CoverTimeout:    2 * time.Second,
		ProductTimeout:  2 * time.Second,
	}
}

func testReasoningConfig() common.ReasoningConfig {
	return common.ReasoningConfig{ChunkChars: 6000, ChunkOverlap: 400}
}

// testEnv bundles a processor over in-memory stores with injectable fakes.
type testEnv struct {
	proc     *Processor
	items    *repotest.MemItems
	captures *repotest.MemCaptures
	sessions *repotest.MemSessions
}

func newTestEnv(t *testing.T, bundle providers.Bundle, reason reasoning.Service) *testEnv {
	t.Helper()
	items := repotest.NewMemItems()
	captures := repotest.NewMemCaptures()
	sessions := repotest.NewMemSessions()
	logger := discardLogger()

	orch := NewOrchestrator(bundle, testProviderConfig(), testPipelineConfig().HomeRadiusMeters, logger)
	proc := NewProcessor(items, captures, sessions, orch, reason, bundle,
		testPipelineConfig(), testReasoningConfig(), logger)
	return &testEnv{proc: proc, items: items, captures: captures, sessions: sessions}
}

// fakeReason is a scriptable reasoning.Service.
type fakeReason struct {
	analyze   func(req reasoning.AnalyzeRequest) (reasoning.Analysis, error)
	summarize func(req reasoning.SummarizeRequest) (string, error)
}

func (f *fakeReason) Analyze(_ context.Context, req reasoning.AnalyzeRequest) (reasoning.Analysis, []byte, error) {
	if f.analyze == nil {
		return reasoning.Analysis{Title: "analyzed", Summary: "analysis summary"}, nil, nil
	}
	a, err := f.analyze(req)
	return a, nil, err
}

func (f *fakeReason) Summarize(_ context.Context, req reasoning.SummarizeRequest) (string, error) {
	if f.summarize == nil {
		return "", nil
	}
	return f.summarize(req)
}

type fakeLink struct {
	resolve func(url string) (*entity.LinkResult, error)
}

func (f *fakeLink) Resolve(_ context.Context, url string) (*entity.LinkResult, error) {
	return f.resolve(url)
}

type fakePlaces struct {
	byID    func(placeID string) (*entity.PlaceResult, error)
	nearby  func(coord entity.LatLng) (*entity.PlaceResult, error)
	byQuery func(query string, coord *entity.LatLng) (*entity.PlaceResult, error)
}

func (f *fakePlaces) ByID(_ context.Context, placeID string) (*entity.PlaceResult, error) {
	if f.byID == nil {
		return nil, nil
	}
	return f.byID(placeID)
}

func (f *fakePlaces) Nearby(_ context.Context, coord entity.LatLng, _ int) (*entity.PlaceResult, error) {
	if f.nearby == nil {
		return nil, nil
	}
	return f.nearby(coord)
}

func (f *fakePlaces) ByQuery(_ context.Context, query string, coord *entity.LatLng) (*entity.PlaceResult, error) {
	if f.byQuery == nil {
		return nil, nil
	}
	return f.byQuery(query, coord)
}

type fakeSearch struct {
	search func(query string) (*entity.WebSearchResult, error)
}

func (f *fakeSearch) Search(_ context.Context, query string, _ *entity.LatLng) (*entity.WebSearchResult, error) {
	return f.search(query)
}

type fakeWeather struct {
	current func(coord entity.LatLng) (*entity.WeatherContext, error)
}

func (f *fakeWeather) Current(_ context.Context, coord entity.LatLng) (*entity.WeatherContext, error) {
	return f.current(coord)
}

type fakeDevice struct {
	current func() (*entity.LatLng, error)
}

func (f *fakeDevice) Current(_ context.Context) (*entity.LatLng, error) {
	return f.current()
}

type fakeMedia struct {
	imageGPS func(payload []byte) (*entity.LatLng, error)
	videoGPS func(payload []byte) (*entity.LatLng, error)
	decodeQR func(payload []byte) (string, error)
}

func (f *fakeMedia) ImageGPS(_ context.Context, payload []byte) (*entity.LatLng, error) {
	if f.imageGPS == nil {
		return nil, nil
	}
	return f.imageGPS(payload)
}

func (f *fakeMedia) VideoGPS(_ context.Context, payload []byte) (*entity.LatLng, error) {
	if f.videoGPS == nil {
		return nil, nil
	}
	return f.videoGPS(payload)
}

func (f *fakeMedia) DecodeQR(_ context.Context, payload []byte) (string, error) {
	if f.decodeQR == nil {
		return "", nil
	}
	return f.decodeQR(payload)
}
