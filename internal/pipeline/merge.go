package pipeline

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/capturedesk/capturedesk/internal/entity"
)

// MergeOptions steer the quality gates for one result application.
type MergeOptions struct {
	// ForceTitle lets a later, more specific provider win the title gate.
	ForceTitle bool
	// PreserveIdentity keeps the existing place identity and merges only
	// non-identity fields. Set when the user pinned a place explicitly.
	PreserveIdentity bool
}

var (
	weakTitles = map[string]struct{}{
		"":            {},
		"untitled":    {},
		"web link":    {},
		"new capture": {},
	}

	// "123 Main St", "45 Elm Street, Springfield", unit suffixes etc.
	reAddress = regexp.MustCompile(`(?i)^\d{1,6}\s+\S+.*\b(st|street|ave|avenue|rd|road|blvd|boulevard|dr|drive|ln|lane|way|ct|court|pl|place|hwy|highway)\b\.?`)
)

// WeakTitle reports whether the current title is weak enough to be
// replaced: empty, a known placeholder, a bare URL or host, or an
// address-shaped string.
func WeakTitle(s string) bool {
	t := strings.ToLower(strings.TrimSpace(s))
	if _, ok := weakTitles[t]; ok {
		return true
	}
	if strings.HasPrefix(t, "visual capture") {
		return true
	}
	if strings.HasPrefix(t, "http://") || strings.HasPrefix(t, "https://") {
		return true
	}
	if u, err := url.Parse("https://" + t); err == nil && u.Host == t && strings.Contains(t, ".") && !strings.Contains(t, " ") {
		return true
	}
	return AddressShaped(s)
}

// AddressShaped reports whether s looks like a street address. Address
// strings never overwrite a non-weak title.
func AddressShaped(s string) bool {
	return reAddress.MatchString(strings.TrimSpace(s))
}

// ApplyResult merges one provider result into the item under the quality
// gates. Applying the same set of results in any order converges to the
// same record.
func ApplyResult(item *entity.ProcessedItem, res entity.EnrichmentResult, opts MergeOptions) {
	switch res.Kind {
	case entity.KindLink:
		if res.Link == nil {
			return
		}
		setTitle(item, res.Link.Title, opts.ForceTitle)
		setSummary(item, res.Link.Description)
		item.AddTags(res.Link.Tags...)
		mergeWeb(item, res.Link.Web)

	case entity.KindPlace:
		if res.Place == nil {
			return
		}
		mergePlace(item, res.Place, opts.PreserveIdentity)
		setTitle(item, res.Place.Name, opts.ForceTitle)
		item.AddCategories(res.Place.Categories...)
		if item.Rating == 0 && res.Place.Rating > 0 {
			item.Rating = res.Place.Rating
		}

	case entity.KindWebSearch:
		if res.WebSearch == nil {
			return
		}
		setTitle(item, res.WebSearch.Title, opts.ForceTitle)
		setSummary(item, res.WebSearch.Description)
		item.AddTags(res.WebSearch.Tags...)

	case entity.KindLiveEvents:
		if res.WebSearch == nil {
			return
		}
		// events never touch the title; they only add color
		setSummary(item, res.WebSearch.Description)
		item.AddTags(res.WebSearch.Tags...)

	case entity.KindWeather:
		if res.Weather != nil {
			item.Weather = res.Weather
		}

	case entity.KindActivity:
		if res.Activity != nil {
			item.Activity = res.Activity
		}

	case entity.KindCoverImage:
		if res.CoverImage != nil && item.CoverImagePath == "" {
			item.CoverImagePath = res.CoverImage.Path
		}

	case entity.KindProduct:
		if res.Product == nil {
			return
		}
		setTitle(item, res.Product.Name, opts.ForceTitle)
		item.AddTags(res.Product.Tags...)
		if res.Product.Brand != "" {
			item.AddTags(res.Product.Brand)
		}
		if item.Price == 0 && res.Product.Price > 0 {
			item.Price = res.Product.Price
		}
		if item.Rating == 0 && res.Product.Rating > 0 {
			item.Rating = res.Product.Rating
		}
	}
}

// setTitle applies the title gate: replace only when the current title is
// weak or the caller forces the override, and never accept an
// address-shaped candidate over a non-weak title.
func setTitle(item *entity.ProcessedItem, candidate string, force bool) {
	candidate = strings.TrimSpace(candidate)
	if candidate == "" {
		return
	}
	if !force && !WeakTitle(item.Title) {
		return
	}
	if AddressShaped(candidate) && !WeakTitle(item.Title) {
		return
	}
	item.Title = candidate
}

func setSummary(item *entity.ProcessedItem, candidate string) {
	if item.Summary == "" {
		item.Summary = strings.TrimSpace(candidate)
	}
}

// mergePlace replaces the place context wholesale, unless preserve is set,
// in which case the existing identity survives and only non-identity
// fields are filled in.
func mergePlace(item *entity.ProcessedItem, p *entity.PlaceResult, preserve bool) {
	fresh := &entity.PlaceContext{
		Name:       p.Name,
		Categories: p.Categories,
		PlaceID:    p.PlaceID,
		Address:    p.Address,
		Coordinate: p.Coordinate,
		Rating:     p.Rating,
		OpenNow:    p.OpenNow,
	}
	if !preserve || item.Place == nil {
		if item.Place != nil && item.Place.UserPinned {
			fresh.UserPinned = true
		}
		item.Place = fresh
		return
	}
	// identity preserved: name/id/address/coordinate stay, extras fill in
	if item.Place.Rating == 0 {
		item.Place.Rating = p.Rating
	}
	if item.Place.OpenNow == nil {
		item.Place.OpenNow = p.OpenNow
	}
	if len(item.Place.Categories) == 0 {
		item.Place.Categories = p.Categories
	}
}

// mergeWeb applies the field-wise WebContext merge: the fresh result wins,
// but fields it is missing are backfilled from the previous snapshot.
func mergeWeb(item *entity.ProcessedItem, fresh *entity.WebContext) {
	if fresh == nil {
		return
	}
	merged := *fresh
	merged.Backfill(item.Web)
	item.Web = &merged
}
