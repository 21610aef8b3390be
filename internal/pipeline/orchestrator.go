package pipeline

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/capturedesk/capturedesk/constants"
	"github.com/capturedesk/capturedesk/internal/common"
	"github.com/capturedesk/capturedesk/internal/entity"
	"github.com/capturedesk/capturedesk/internal/providers"
)

// Orchestrator fans a capture out to every applicable provider task, each
// in its own goroutine with its own timeout, and collects whatever lands
// on the fan-in channel. A slow or failing provider contributes nothing;
// it never fails the capture.
type Orchestrator struct {
	providers        providers.Bundle
	timeouts         common.ProviderConfig
	homeRadiusMeters float64
	logger           *slog.Logger
}

func NewOrchestrator(bundle providers.Bundle, timeouts common.ProviderConfig, homeRadiusMeters float64, logger *slog.Logger) *Orchestrator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Orchestrator{
		providers:        bundle,
		timeouts:         timeouts,
		homeRadiusMeters: homeRadiusMeters,
		logger:           logger,
	}
}

// Enrich runs the provider fan-out for one capture and returns every
// result that arrived in time. home is the cached home coordinate, if
// known; it feeds the ~100m Home heuristic at the end of the place chain.
func (o *Orchestrator) Enrich(
	ctx context.Context,
	capture *entity.CaptureInput,
	item *entity.ProcessedItem,
	loc ResolvedLocation,
	home *entity.LatLng,
) []entity.EnrichmentResult {
	start := time.Now()
	results := make(chan entity.EnrichmentResult, 16)
	var wg sync.WaitGroup

	spawn := func(name string, timeout time.Duration, fn func(ctx context.Context)) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tctx, cancel := context.WithTimeout(ctx, timeout)
			defer cancel()
			defer func() {
				if r := recover(); r != nil {
					o.logger.Error("enrich.task_panic", "task", name, "panic", r)
				}
			}()
			fn(tctx)
		}()
	}

	// 1. link metadata, only for non-internal URL schemes
	if o.providers.Link != nil && constants.IsEnrichableURL(item.URL) {
		url := item.URL
		spawn("link", o.timeouts.LinkTimeout, func(ctx context.Context) {
			lr, err := o.providers.Link.Resolve(ctx, url)
			if err != nil {
				o.logger.Warn("enrich.link_failed", "url", url, "error", err)
				return
			}
			if lr != nil {
				results <- entity.EnrichmentResult{Kind: entity.KindLink, Link: lr}
			}
		})
	}

	// 2-4. the place chain, with web search and live events chained off
	// its outcome inside the same worker
	if o.providers.Places != nil && (loc.Coord != nil || loc.PlaceID != "" || loc.Name != "") {
		placeBudget := o.timeouts.PlaceTimeout + o.timeouts.SearchTimeout
		spawn("place_chain", placeBudget, func(ctx context.Context) {
			place := o.resolvePlace(ctx, loc, home)
			if place != nil {
				results <- entity.EnrichmentResult{Kind: entity.KindPlace, Place: place}
				o.chainSearches(ctx, place, loc, results)
			}
		})
	}

	// 5. weather at the resolved coordinate
	if o.providers.Weather != nil && loc.Coord != nil {
		coord := *loc.Coord
		spawn("weather", o.timeouts.WeatherTimeout, func(ctx context.Context) {
			w, err := o.providers.Weather.Current(ctx, coord)
			if err != nil {
				o.logger.Warn("enrich.weather_failed", "error", err)
				return
			}
			if w != nil {
				results <- entity.EnrichmentResult{Kind: entity.KindWeather, Weather: w}
			}
		})
	}

	// 6. current physical activity, independent of location
	if o.providers.Activity != nil {
		spawn("activity", o.timeouts.ActivityTimeout, func(ctx context.Context) {
			a, err := o.providers.Activity.Current(ctx)
			if err != nil {
				o.logger.Warn("enrich.activity_failed", "error", err)
				return
			}
			if a != nil {
				results <- entity.EnrichmentResult{Kind: entity.KindActivity, Activity: a}
			}
		})
	}

	// 7. cover-image persistence, modeled as one more task for uniformity
	if o.providers.Covers != nil {
		if ref := coverRef(capture); ref != "" && item.CoverImagePath == "" {
			spawn("cover", o.timeouts.CoverTimeout, func(ctx context.Context) {
				path, err := o.providers.Covers.Persist(ctx, ref)
				if err != nil {
					o.logger.Warn("enrich.cover_failed", "ref", ref, "error", err)
					return
				}
				if path != "" {
					results <- entity.EnrichmentResult{Kind: entity.KindCoverImage, CoverImage: &entity.CoverImageResult{Path: path}}
				}
			})
		}
	}

	// 8. product-code lookup, product captures only
	if o.providers.Products != nil && capture.InputType == string(constants.InputProduct) && capture.Text != "" {
		code := capture.Text
		spawn("product", o.timeouts.ProductTimeout, func(ctx context.Context) {
			p, err := o.providers.Products.ByCode(ctx, code)
			if err != nil {
				o.logger.Warn("enrich.product_failed", "code", code, "error", err)
				return
			}
			if p != nil {
				results <- entity.EnrichmentResult{Kind: entity.KindProduct, Product: p}
			}
		})
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	var out []entity.EnrichmentResult
	for r := range results {
		out = append(out, r)
	}
	o.logger.Info("enrich.done",
		"item_id", item.ID,
		"results", len(out),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return out
}

// resolvePlace walks the place chain: id lookup, nearby search, query
// fallback, then the Home heuristic when everything else came up generic.
func (o *Orchestrator) resolvePlace(ctx context.Context, loc ResolvedLocation, home *entity.LatLng) *entity.PlaceResult {
	if loc.PlaceID != "" {
		if p, err := o.providers.Places.ByID(ctx, loc.PlaceID); err == nil && p != nil {
			return p
		} else if err != nil {
			o.logger.Warn("enrich.place_by_id_failed", "place_id", loc.PlaceID, "error", err)
		}
	}
	if loc.Coord != nil {
		if p, err := o.providers.Places.Nearby(ctx, *loc.Coord, 1); err == nil && p != nil {
			return o.maybeHome(p, loc, home)
		} else if err != nil {
			o.logger.Warn("enrich.place_nearby_failed", "error", err)
		}
	}
	if loc.Name != "" && loc.Name != entity.HomeLabel {
		if p, err := o.providers.Places.ByQuery(ctx, loc.Name, loc.Coord); err == nil && p != nil {
			return p
		} else if err != nil {
			o.logger.Warn("enrich.place_by_query_failed", "query", loc.Name, "error", err)
		}
	}
	if loc.Coord != nil {
		return o.maybeHome(nil, loc, home)
	}
	return nil
}

// maybeHome applies the Home heuristic: a coordinate within the home
// radius, with no explicit place name given, is labeled "Home".
func (o *Orchestrator) maybeHome(found *entity.PlaceResult, loc ResolvedLocation, home *entity.LatLng) *entity.PlaceResult {
	if loc.Name != "" || home == nil || loc.Coord == nil {
		return found
	}
	if loc.Coord.DistanceMeters(*home) <= o.homeRadiusMeters {
		return &entity.PlaceResult{
			Name:       entity.HomeLabel,
			Coordinate: loc.Coord,
			Source:     "home",
		}
	}
	return found
}

// chainSearches runs the web search keyed by the resolved place's name
// and the date-qualified live-events search, both best effort.
func (o *Orchestrator) chainSearches(ctx context.Context, place *entity.PlaceResult, loc ResolvedLocation, results chan<- entity.EnrichmentResult) {
	if o.providers.Search == nil || place.Name == "" || place.Name == entity.HomeLabel {
		return
	}
	if r, err := o.providers.Search.Search(ctx, place.Name, loc.Coord); err == nil && r != nil {
		results <- entity.EnrichmentResult{Kind: entity.KindWebSearch, WebSearch: r}
	} else if err != nil {
		o.logger.Warn("enrich.search_failed", "query", place.Name, "error", err)
	}

	eventsQuery := "events near " + place.Name + " " + time.Now().Format("2006-01-02")
	if r, err := o.providers.Search.Search(ctx, eventsQuery, loc.Coord); err == nil && r != nil {
		results <- entity.EnrichmentResult{Kind: entity.KindLiveEvents, WebSearch: r}
	} else if err != nil {
		o.logger.Warn("enrich.live_events_failed", "query", eventsQuery, "error", err)
	}
}

// coverRef picks the image asset reference for cover persistence.
func coverRef(capture *entity.CaptureInput) string {
	if d := capture.Descriptor; d != nil && d.CoverImageRef != "" {
		return d.CoverImageRef
	}
	if capture.PayloadPath != "" && capture.InputType == string(constants.InputImage) {
		return capture.PayloadPath
	}
	return ""
}
