package pipeline

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/capturedesk/capturedesk/constants"
	"github.com/capturedesk/capturedesk/internal/common"
	"github.com/capturedesk/capturedesk/internal/entity"
	"github.com/capturedesk/capturedesk/internal/providers"
	"github.com/capturedesk/capturedesk/internal/reasoning"
)

func TestResolveID(t *testing.T) {
	t.Run("same URL converges regardless of capture id", func(t *testing.T) {
		a := &entity.CaptureInput{ID: uuid.New(), URL: "https://Example.com/menu#today"}
		b := &entity.CaptureInput{ID: uuid.New(), URL: "https://example.com/menu"}
		assert.Equal(t, ResolveID(a), ResolveID(b))
	})

	t.Run("descriptor URL counts", func(t *testing.T) {
		a := &entity.CaptureInput{ID: uuid.New(), URL: "https://example.com/menu"}
		b := &entity.CaptureInput{
			ID:         uuid.New(),
			Descriptor: &entity.ItemDescriptor{URL: "https://example.com/menu"},
		}
		assert.Equal(t, ResolveID(a), ResolveID(b))
	})

	t.Run("non-URL captures keep their own id", func(t *testing.T) {
		c := &entity.CaptureInput{ID: uuid.New(), Text: "remember the milk"}
		assert.Equal(t, c.ID, ResolveID(c))
	})
}

func TestProcess_SameURLUnionsTags(t *testing.T) {
	var mu sync.Mutex
	calls := 0
	link := &fakeLink{resolve: func(url string) (*entity.LinkResult, error) {
		mu.Lock()
		defer mu.Unlock()
		calls++
		if calls == 1 {
			return &entity.LinkResult{Title: "Why sourdough needs time", Tags: []string{"baking", "bread"}}, nil
		}
		return &entity.LinkResult{Title: "Why sourdough needs time", Tags: []string{"bread", "fermentation"}}, nil
	}}
	env := newTestEnv(t, providers.Bundle{Link: link}, &fakeReason{})

	first := &entity.CaptureInput{ID: uuid.New(), CreatedAt: time.Now(), URL: "https://example.com/sourdough", InputType: string(constants.InputWeb)}
	second := &entity.CaptureInput{ID: uuid.New(), CreatedAt: time.Now(), URL: "https://example.com/sourdough#comments", InputType: string(constants.InputWeb)}
	require.NoError(t, env.captures.Create(context.Background(), first))
	require.NoError(t, env.captures.Create(context.Background(), second))

	item1, err := env.proc.Process(context.Background(), first)
	require.NoError(t, err)
	env.proc.Wait()

	item2, err := env.proc.Process(context.Background(), second)
	require.NoError(t, err)
	env.proc.Wait()

	assert.Equal(t, item1.ID, item2.ID, "both captures resolve to one record")

	got, err := env.items.Get(context.Background(), item1.ID)
	require.NoError(t, err)
	assert.Equal(t, constants.StatusReady, got.Status)
	assert.Equal(t, "Why sourdough needs time", got.Title)
	assert.Subset(t, got.Tags, []string{"baking", "bread", "fermentation"})

	all, err := env.items.List(context.Background(), nil, 0)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestProcess_ReasoningSuccessDeletesCapture(t *testing.T) {
	env := newTestEnv(t, providers.Bundle{}, &fakeReason{
		analyze: func(req reasoning.AnalyzeRequest) (reasoning.Analysis, error) {
			return reasoning.Analysis{
				Title:    "Grocery note",
				Summary:  "a reminder about milk",
				Tags:     []string{"errand"},
				Purposes: []string{"shopping"},
			}, nil
		},
	})

	c := &entity.CaptureInput{ID: uuid.New(), CreatedAt: time.Now(), Text: "remember the milk", InputType: string(constants.InputText)}
	require.NoError(t, env.captures.Create(context.Background(), c))

	item, err := env.proc.Process(context.Background(), c)
	require.NoError(t, err)
	env.proc.Wait()

	got, err := env.items.Get(context.Background(), item.ID)
	require.NoError(t, err)
	assert.Equal(t, constants.StatusReady, got.Status)
	assert.Equal(t, "Grocery note", got.Title)
	assert.Equal(t, "a reminder about milk", got.Summary)
	assert.Equal(t, []string{"errand"}, got.Tags)
	assert.Equal(t, []string{"shopping"}, got.Purposes)
	assert.Zero(t, got.FailureCount)
	require.NotNil(t, got.LastProcessed)

	_, err = env.captures.Get(context.Background(), c.ID)
	assert.ErrorIs(t, err, common.ErrNotFound, "capture row is gone after a full pass")
}

func TestProcess_FailureEscalationAndEviction(t *testing.T) {
	env := newTestEnv(t, providers.Bundle{}, &fakeReason{
		analyze: func(req reasoning.AnalyzeRequest) (reasoning.Analysis, error) {
			return reasoning.Analysis{}, errors.New("model unavailable")
		},
	})

	c := &entity.CaptureInput{ID: uuid.New(), CreatedAt: time.Now(), Text: "doomed", InputType: string(constants.InputText)}
	require.NoError(t, env.captures.Create(context.Background(), c))

	// first failure: flagged for review, capture kept for retry
	item, err := env.proc.Process(context.Background(), c)
	require.NoError(t, err)
	env.proc.Wait()

	got, err := env.items.Get(context.Background(), item.ID)
	require.NoError(t, err)
	assert.Equal(t, constants.StatusReviewRequired, got.Status)
	assert.Equal(t, 1, got.FailureCount)
	_, err = env.captures.Get(context.Background(), c.ID)
	require.NoError(t, err, "capture survives as the retry record")

	// second failure: still retryable
	_, err = env.proc.Process(context.Background(), c)
	require.NoError(t, err)
	env.proc.Wait()

	got, err = env.items.Get(context.Background(), item.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.FailureCount)

	// third failure crosses the threshold: item and capture are evicted
	_, err = env.proc.Process(context.Background(), c)
	require.NoError(t, err)
	env.proc.Wait()

	_, err = env.items.Get(context.Background(), item.ID)
	assert.ErrorIs(t, err, common.ErrNotFound)
	_, err = env.captures.Get(context.Background(), c.ID)
	assert.ErrorIs(t, err, common.ErrNotFound, "eviction removes the retry record too")
}

func TestProcess_StaleCaptureIgnoresDeviceGPS(t *testing.T) {
	deviceCoord := &entity.LatLng{Lat: 47.6097, Lng: -122.3331}
	device := &fakeDevice{current: func() (*entity.LatLng, error) { return deviceCoord, nil }}

	var mu sync.Mutex
	var nearbyCalls []entity.LatLng
	places := &fakePlaces{nearby: func(coord entity.LatLng) (*entity.PlaceResult, error) {
		mu.Lock()
		defer mu.Unlock()
		nearbyCalls = append(nearbyCalls, coord)
		return &entity.PlaceResult{Name: "Foo Cafe", PlaceID: "f-1", Coordinate: &coord, Source: "nearby"}, nil
	}}
	env := newTestEnv(t, providers.Bundle{Device: device, Places: places}, &fakeReason{})

	stale := &entity.CaptureInput{
		ID: uuid.New(), CreatedAt: time.Now().Add(-2 * time.Hour),
		Text: "old note", InputType: string(constants.InputText),
	}
	require.NoError(t, env.captures.Create(context.Background(), stale))
	item, err := env.proc.Process(context.Background(), stale)
	require.NoError(t, err)
	env.proc.Wait()

	got, err := env.items.Get(context.Background(), item.ID)
	require.NoError(t, err)
	assert.Nil(t, got.Place, "a two-hour-old capture must not inherit the current position")
	assert.Empty(t, nearbyCalls)

	fresh := &entity.CaptureInput{
		ID: uuid.New(), CreatedAt: time.Now(),
		Text: "fresh note", InputType: string(constants.InputText),
	}
	require.NoError(t, env.captures.Create(context.Background(), fresh))
	item, err = env.proc.Process(context.Background(), fresh)
	require.NoError(t, err)
	env.proc.Wait()

	got, err = env.items.Get(context.Background(), item.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Place)
	assert.Equal(t, "Foo Cafe", got.Place.Name)
	require.Len(t, nearbyCalls, 1)
	assert.Equal(t, *deviceCoord, nearbyCalls[0])
}

func TestProcess_PinnedPlaceSurvivesGenericNearby(t *testing.T) {
	places := &fakePlaces{nearby: func(coord entity.LatLng) (*entity.PlaceResult, error) {
		return &entity.PlaceResult{Name: "Generic Bar", PlaceID: "g-2", Rating: 3.9, Source: "nearby"}, nil
	}}
	env := newTestEnv(t, providers.Bundle{Places: places}, &fakeReason{})

	c := &entity.CaptureInput{
		ID: uuid.New(), CreatedAt: time.Now(),
		Text:      "flat white",
		InputType: string(constants.InputText),
		Descriptor: &entity.ItemDescriptor{
			LocationName: "Foo Cafe",
			Coordinate:   &entity.LatLng{Lat: 47.6, Lng: -122.3},
		},
	}
	require.NoError(t, env.captures.Create(context.Background(), c))
	item, err := env.proc.Process(context.Background(), c)
	require.NoError(t, err)
	env.proc.Wait()

	got, err := env.items.Get(context.Background(), item.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Place)
	assert.Equal(t, "Foo Cafe", got.Place.Name, "the pinned identity outranks a generic nearby hit")
	assert.True(t, got.Place.UserPinned)
	assert.Equal(t, 3.9, got.Place.Rating, "non-identity fields still fill in")
	assert.NotEqual(t, constants.StatusReviewRequired, got.Status)
}

func TestProcess_PlaceConflictFlagsReview(t *testing.T) {
	places := &fakePlaces{nearby: func(coord entity.LatLng) (*entity.PlaceResult, error) {
		return &entity.PlaceResult{Name: "Other Place", PlaceID: "p-2", Source: "nearby"}, nil
	}}
	env := newTestEnv(t, providers.Bundle{Places: places}, &fakeReason{})

	id := uuid.New()
	require.NoError(t, env.items.Create(context.Background(), &entity.ProcessedItem{
		ID:        id,
		Title:     "Lunch",
		Status:    constants.StatusReady,
		CreatedAt: time.Now().Add(-time.Hour),
		Place: &entity.PlaceContext{
			Name:       "Foo Cafe",
			PlaceID:    "p-1",
			Coordinate: &entity.LatLng{Lat: 47.6, Lng: -122.3},
		},
	}))

	c := &entity.CaptureInput{ID: id, CreatedAt: time.Now().Add(-time.Hour), Text: "lunch", InputType: string(constants.InputText)}
	require.NoError(t, env.captures.Create(context.Background(), c))
	_, err := env.proc.Process(context.Background(), c)
	require.NoError(t, err)
	env.proc.Wait()

	got, err := env.items.Get(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, constants.StatusReviewRequired, got.Status,
		"a silently changed place identity is surfaced, not accepted")
}

func TestProcess_QRPromotionRunsLinkEnrichment(t *testing.T) {
	media := &fakeMedia{decodeQR: func([]byte) (string, error) { return "https://example.com/menu", nil }}
	var mu sync.Mutex
	var resolved []string
	link := &fakeLink{resolve: func(url string) (*entity.LinkResult, error) {
		mu.Lock()
		defer mu.Unlock()
		resolved = append(resolved, url)
		return &entity.LinkResult{Title: "Foo Cafe Menu"}, nil
	}}
	env := newTestEnv(t, providers.Bundle{Media: media, Link: link}, &fakeReason{})

	c := &entity.CaptureInput{
		ID: uuid.New(), CreatedAt: time.Now(),
		InputType: string(constants.InputQRCode),
		Payload:   []byte{0x01, 0x02},
	}
	require.NoError(t, env.captures.Create(context.Background(), c))
	item, err := env.proc.Process(context.Background(), c)
	require.NoError(t, err)
	env.proc.Wait()

	got, err := env.items.Get(context.Background(), item.ID)
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/menu", got.URL)
	require.NotNil(t, got.QRCode)
	assert.Equal(t, "url", got.QRCode.Kind)
	assert.Equal(t, []string{"https://example.com/menu"}, resolved)
	assert.Equal(t, "Foo Cafe Menu", got.Title)
}

func TestProcess_EndToEndPlaceCapture(t *testing.T) {
	coord := entity.LatLng{Lat: 47.6205, Lng: -122.3493}
	places := &fakePlaces{nearby: func(c entity.LatLng) (*entity.PlaceResult, error) {
		return &entity.PlaceResult{
			Name:       "Foo Cafe",
			PlaceID:    "f-1",
			Address:    "123 Main St, Springfield",
			Categories: []string{"cafe"},
			Rating:     4.6,
			Coordinate: &c,
			Source:     "nearby",
		}, nil
	}}
	search := &fakeSearch{search: func(query string) (*entity.WebSearchResult, error) {
		if strings.HasPrefix(query, "events near ") {
			return &entity.WebSearchResult{Description: "open mic tonight", Tags: []string{"events"}}, nil
		}
		return &entity.WebSearchResult{Title: "foo cafe", Description: "neighborhood espresso bar", Tags: []string{"coffee"}}, nil
	}}
	weather := &fakeWeather{current: func(entity.LatLng) (*entity.WeatherContext, error) {
		return &entity.WeatherContext{Condition: "overcast", TemperatureC: 11}, nil
	}}
	reason := &fakeReason{analyze: func(req reasoning.AnalyzeRequest) (reasoning.Analysis, error) {
		return reasoning.Analysis{
			Title:      "Foo Cafe",
			Summary:    "an espresso stop during the walk",
			EntityType: "place",
			Tags:       []string{"coffee", "espresso"},
			Purposes:   []string{"coffee break"},
		}, nil
	}}

	env := newTestEnv(t, providers.Bundle{Places: places, Search: search, Weather: weather}, reason)
	var handedOff []uuid.UUID
	env.proc.SetSessionHandoff(handoffFunc(func(_ context.Context, it *entity.ProcessedItem) error {
		handedOff = append(handedOff, it.ID)
		return nil
	}))

	c := &entity.CaptureInput{
		ID: uuid.New(), CreatedAt: time.Now(),
		InputType: string(constants.InputPlace),
		Descriptor: &entity.ItemDescriptor{
			Coordinate: &coord,
			SessionID:  "walk-2026-01-05",
		},
	}
	require.NoError(t, env.captures.Create(context.Background(), c))

	item, err := env.proc.Process(context.Background(), c)
	require.NoError(t, err)
	env.proc.Wait()

	got, err := env.items.Get(context.Background(), item.ID)
	require.NoError(t, err)

	assert.Equal(t, constants.StatusReady, got.Status)
	assert.True(t, strings.EqualFold(got.Title, "Foo Cafe"))
	assert.Equal(t, "an espresso stop during the walk", got.Summary)
	assert.Equal(t, "place", got.EntityType)
	require.NotNil(t, got.Place)
	assert.Equal(t, "f-1", got.Place.PlaceID)
	assert.Equal(t, 4.6, got.Place.Rating)
	require.NotNil(t, got.Weather)
	assert.Equal(t, "overcast", got.Weather.Condition)
	assert.Subset(t, got.Tags, []string{"coffee", "espresso", "events"})
	assert.Contains(t, got.Summary, "espresso")
	assert.Equal(t, "walk-2026-01-05", got.SessionID)
	assert.Equal(t, []uuid.UUID{item.ID}, handedOff)

	_, err = env.captures.Get(context.Background(), c.ID)
	assert.ErrorIs(t, err, common.ErrNotFound)
}

// handoffFunc adapts a closure to the SessionHandoff interface.
type handoffFunc func(ctx context.Context, item *entity.ProcessedItem) error

func (f handoffFunc) Attach(ctx context.Context, item *entity.ProcessedItem) error {
	return f(ctx, item)
}

func TestProcess_RefreshReturnsDetachedSnapshot(t *testing.T) {
	var mu sync.Mutex
	passes := 0
	reason := &fakeReason{analyze: func(_ reasoning.AnalyzeRequest) (reasoning.Analysis, error) {
		mu.Lock()
		defer mu.Unlock()
		passes++
		if passes == 1 {
			return reasoning.Analysis{Title: "analyzed", Summary: "first pass"}, nil
		}
		return reasoning.Analysis{Title: "analyzed", Summary: "second pass"}, nil
	}}
	env := newTestEnv(t, providers.Bundle{}, reason)
	ctx := context.Background()

	first := &entity.CaptureInput{ID: uuid.New(), CreatedAt: time.Now(), Text: "a note", InputType: string(constants.InputText)}
	require.NoError(t, env.captures.Create(ctx, first))
	created, err := env.proc.Process(ctx, first)
	require.NoError(t, err)
	env.proc.Wait()

	// same resolved id triggers the refresh path
	second := &entity.CaptureInput{ID: first.ID, CreatedAt: time.Now(), Text: "a note", InputType: string(constants.InputText)}
	require.NoError(t, env.captures.Create(ctx, second))
	returned, err := env.proc.Process(ctx, second)
	require.NoError(t, err)

	assert.Equal(t, constants.StatusProcessing, returned.Status)
	assert.Equal(t, "first pass", returned.Summary, "the caller sees the pre-refresh state")

	env.proc.Wait()

	assert.Equal(t, "first pass", returned.Summary,
		"the returned record is untouched by the detached unit")
	got, err := env.items.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "second pass", got.Summary)
	assert.Equal(t, constants.StatusReady, got.Status)

	// mutating the snapshot cannot reach the store either
	returned.AddTags("scratch")
	got, err = env.items.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.NotContains(t, got.Tags, "scratch")
}
