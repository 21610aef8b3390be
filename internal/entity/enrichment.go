package entity

// ResultKind discriminates EnrichmentResult variants. One variant per
// provider task; the merge engine switches exhaustively on it.
type ResultKind string

const (
	KindLink       ResultKind = "link"
	KindPlace      ResultKind = "place"
	KindWebSearch  ResultKind = "web_search"
	KindLiveEvents ResultKind = "live_events"
	KindWeather    ResultKind = "weather"
	KindActivity   ResultKind = "activity"
	KindCoverImage ResultKind = "cover_image"
	KindProduct    ResultKind = "product"
)

// LinkResult is the output of the link-metadata provider.
type LinkResult struct {
	Title       string
	Description string
	ImageURL    string
	Tags        []string
	Web         *WebContext
}

// PlaceResult is the output of one step of the place-lookup chain.
// Source records which chain step produced it ("by_id", "nearby",
// "by_query", "home").
type PlaceResult struct {
	Name       string
	Categories []string
	PlaceID    string
	Address    string
	Coordinate *LatLng
	Rating     float64
	OpenNow    *bool
	Source     string
}

// WebSearchResult is the output of the general web-search provider.
type WebSearchResult struct {
	Title       string
	Description string
	Tags        []string
}

// CoverImageResult is the local path a capture's image asset was
// persisted to.
type CoverImageResult struct {
	Path string
}

// ProductResult is the output of a product-code lookup.
type ProductResult struct {
	Name   string
	Brand  string
	Price  float64
	Rating float64
	Tags   []string
}

// EnrichmentResult is the tagged union a provider task hands to the merge
// engine. Exactly one variant matching Kind is non-nil. Results are
// ephemeral: consumed once, never persisted.
type EnrichmentResult struct {
	Kind       ResultKind
	Link       *LinkResult
	Place      *PlaceResult
	WebSearch  *WebSearchResult
	Weather    *WeatherContext
	Activity   *ActivityContext
	CoverImage *CoverImageResult
	Product    *ProductResult
}
