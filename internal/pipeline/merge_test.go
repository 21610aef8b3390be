package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/capturedesk/capturedesk/internal/entity"
)

func TestWeakTitle(t *testing.T) {
	tests := []struct {
		title string
		want  bool
	}{
		{"", true},
		{"Untitled", true},
		{"Web Link", true},
		{"New Capture", true},
		{"Visual Capture 2026-01-05 14:30", true},
		{"https://example.com/some/page", true},
		{"example.com", true},
		{"123 Main St, Springfield", true},
		{"Starbucks", false},
		{"Why sourdough needs time", false},
		{"Foo Cafe", false},
	}
	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			assert.Equal(t, tt.want, WeakTitle(tt.title))
		})
	}
}

func TestAddressShaped(t *testing.T) {
	tests := []struct {
		s    string
		want bool
	}{
		{"123 Main St", true},
		{"123 Main St, Springfield", true},
		{"45 Elm Street", true},
		{"9000 Sunset Blvd.", true},
		{"77 Massachusetts Ave, Cambridge MA", true},
		{"Starbucks", false},
		{"1 Infinite Loop", false},
		{"2026 was a good year", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.s, func(t *testing.T) {
			assert.Equal(t, tt.want, AddressShaped(tt.s))
		})
	}
}

func TestApplyResult_TitleGate(t *testing.T) {
	link := func(title string) entity.EnrichmentResult {
		return entity.EnrichmentResult{Kind: entity.KindLink, Link: &entity.LinkResult{Title: title}}
	}

	t.Run("fills an empty title", func(t *testing.T) {
		item := &entity.ProcessedItem{}
		ApplyResult(item, link("Starbucks"), MergeOptions{})
		assert.Equal(t, "Starbucks", item.Title)
	})

	t.Run("never replaces a strong title", func(t *testing.T) {
		item := &entity.ProcessedItem{Title: "Starbucks"}
		ApplyResult(item, link("Some Other Name"), MergeOptions{})
		assert.Equal(t, "Starbucks", item.Title)
	})

	t.Run("address never beats a strong title", func(t *testing.T) {
		item := &entity.ProcessedItem{Title: "Starbucks"}
		ApplyResult(item, link("123 Main St, Springfield"), MergeOptions{})
		assert.Equal(t, "Starbucks", item.Title)
	})

	t.Run("address may replace a weak title", func(t *testing.T) {
		item := &entity.ProcessedItem{Title: "Untitled"}
		ApplyResult(item, link("123 Main St, Springfield"), MergeOptions{})
		assert.Equal(t, "123 Main St, Springfield", item.Title)
	})

	t.Run("force overrides a strong title", func(t *testing.T) {
		item := &entity.ProcessedItem{Title: "Starbucks"}
		ApplyResult(item, link("Starbucks Reserve Roastery"), MergeOptions{ForceTitle: true})
		assert.Equal(t, "Starbucks Reserve Roastery", item.Title)
	})

	t.Run("force still rejects an address over a strong title", func(t *testing.T) {
		item := &entity.ProcessedItem{Title: "Starbucks"}
		ApplyResult(item, link("123 Main St, Springfield"), MergeOptions{ForceTitle: true})
		assert.Equal(t, "Starbucks", item.Title)
	})
}

func TestApplyResult_TagUnionIsIdempotent(t *testing.T) {
	item := &entity.ProcessedItem{Tags: []string{"coffee"}}
	res := entity.EnrichmentResult{
		Kind: entity.KindLink,
		Link: &entity.LinkResult{Tags: []string{"coffee", "espresso", "wifi"}},
	}
	ApplyResult(item, res, MergeOptions{})
	ApplyResult(item, res, MergeOptions{})
	assert.Equal(t, []string{"coffee", "espresso", "wifi"}, item.Tags)
}

func TestApplyResult_PlaceReplaceAndPreserve(t *testing.T) {
	coord := &entity.LatLng{Lat: 47.6, Lng: -122.3}
	fresh := entity.EnrichmentResult{
		Kind: entity.KindPlace,
		Place: &entity.PlaceResult{
			Name:       "Generic Bar",
			PlaceID:    "g-2",
			Categories: []string{"bar"},
			Rating:     4.1,
			Coordinate: coord,
		},
	}

	t.Run("wholesale replace by default", func(t *testing.T) {
		item := &entity.ProcessedItem{
			Place: &entity.PlaceContext{Name: "Foo Cafe", PlaceID: "f-1"},
		}
		ApplyResult(item, fresh, MergeOptions{})
		assert.Equal(t, "Generic Bar", item.Place.Name)
		assert.Equal(t, "g-2", item.Place.PlaceID)
	})

	t.Run("replace carries the pinned flag forward", func(t *testing.T) {
		item := &entity.ProcessedItem{
			Place: &entity.PlaceContext{Name: "Foo Cafe", UserPinned: true},
		}
		ApplyResult(item, fresh, MergeOptions{})
		assert.True(t, item.Place.UserPinned)
	})

	t.Run("preserve keeps the identity and fills extras", func(t *testing.T) {
		item := &entity.ProcessedItem{
			Place: &entity.PlaceContext{Name: "Foo Cafe", PlaceID: "f-1", UserPinned: true},
		}
		ApplyResult(item, fresh, MergeOptions{PreserveIdentity: true})
		require.NotNil(t, item.Place)
		assert.Equal(t, "Foo Cafe", item.Place.Name)
		assert.Equal(t, "f-1", item.Place.PlaceID)
		assert.Equal(t, 4.1, item.Place.Rating)
		assert.Equal(t, []string{"bar"}, item.Place.Categories)
	})
}

func TestApplyResult_WebContextBackfill(t *testing.T) {
	item := &entity.ProcessedItem{
		Web: &entity.WebContext{
			SiteName:      "Old Site",
			SnapshotRef:   "snap-1",
			ExtractedText: "old body text",
		},
	}
	res := entity.EnrichmentResult{
		Kind: entity.KindLink,
		Link: &entity.LinkResult{
			Web: &entity.WebContext{ExtractedText: "fresh body text"},
		},
	}
	ApplyResult(item, res, MergeOptions{})

	assert.Equal(t, "fresh body text", item.Web.ExtractedText, "fresh field wins")
	assert.Equal(t, "Old Site", item.Web.SiteName, "missing field backfilled")
	assert.Equal(t, "snap-1", item.Web.SnapshotRef, "missing field backfilled")
}

func TestApplyResult_FillIfZero(t *testing.T) {
	item := &entity.ProcessedItem{Price: 12.50, Rating: 0}
	res := entity.EnrichmentResult{
		Kind: entity.KindProduct,
		Product: &entity.ProductResult{
			Name:   "Moka Pot",
			Brand:  "Bialetti",
			Price:  29.99,
			Rating: 4.5,
		},
	}
	ApplyResult(item, res, MergeOptions{})

	assert.Equal(t, 12.50, item.Price, "existing price is never overwritten")
	assert.Equal(t, 4.5, item.Rating, "zero rating is filled")
	assert.Contains(t, item.Tags, "Bialetti")
	assert.Equal(t, "Moka Pot", item.Title)
}

func TestApplyResult_ContextKinds(t *testing.T) {
	item := &entity.ProcessedItem{
		Weather: &entity.WeatherContext{Condition: "rain", TemperatureC: 8},
	}
	ApplyResult(item, entity.EnrichmentResult{
		Kind:    entity.KindWeather,
		Weather: &entity.WeatherContext{Condition: "clear", TemperatureC: 21},
	}, MergeOptions{})
	assert.Equal(t, "clear", item.Weather.Condition, "weather is replaced, not merged")

	ApplyResult(item, entity.EnrichmentResult{
		Kind:     entity.KindActivity,
		Activity: &entity.ActivityContext{Type: "walking", Confidence: 0.9},
	}, MergeOptions{})
	assert.Equal(t, "walking", item.Activity.Type)

	ApplyResult(item, entity.EnrichmentResult{
		Kind:       entity.KindCoverImage,
		CoverImage: &entity.CoverImageResult{Path: "/covers/a.jpg"},
	}, MergeOptions{})
	ApplyResult(item, entity.EnrichmentResult{
		Kind:       entity.KindCoverImage,
		CoverImage: &entity.CoverImageResult{Path: "/covers/b.jpg"},
	}, MergeOptions{})
	assert.Equal(t, "/covers/a.jpg", item.CoverImagePath, "first cover sticks")
}

func TestApplyResult_LiveEventsNeverTouchTitle(t *testing.T) {
	item := &entity.ProcessedItem{}
	ApplyResult(item, entity.EnrichmentResult{
		Kind: entity.KindLiveEvents,
		WebSearch: &entity.WebSearchResult{
			Title:       "Events this weekend",
			Description: "jazz night on friday",
			Tags:        []string{"events"},
		},
	}, MergeOptions{})

	assert.Empty(t, item.Title)
	assert.Equal(t, "jazz night on friday", item.Summary)
	assert.Equal(t, []string{"events"}, item.Tags)
}

func TestFinalizeTitleLadder(t *testing.T) {
	now := mustTime(t, "2026-01-05T14:30:00Z")

	t.Run("strong title untouched", func(t *testing.T) {
		item := &entity.ProcessedItem{Title: "Foo Cafe"}
		finalizeTitle(item, now)
		assert.Equal(t, "Foo Cafe", item.Title)
	})

	t.Run("tags first", func(t *testing.T) {
		item := &entity.ProcessedItem{Tags: []string{"coffee", "wifi", "quiet", "cheap"}}
		finalizeTitle(item, now)
		assert.Equal(t, "coffee, wifi, quiet", item.Title)
	})

	t.Run("then summary prefix", func(t *testing.T) {
		item := &entity.ProcessedItem{Summary: "A short note about nothing in particular."}
		finalizeTitle(item, now)
		assert.Equal(t, "A short note about nothing in particular.", item.Title)
	})

	t.Run("then the place", func(t *testing.T) {
		item := &entity.ProcessedItem{Place: &entity.PlaceContext{Name: "Foo Cafe"}}
		finalizeTitle(item, now)
		assert.Equal(t, "At: Foo Cafe", item.Title)
	})

	t.Run("timestamped placeholder last", func(t *testing.T) {
		item := &entity.ProcessedItem{}
		finalizeTitle(item, now)
		assert.Equal(t, "Visual Capture 2026-01-05 14:30", item.Title)
	})
}
