package reasoning

import "context"

// Statement is one intent or activity inference, tagged with its
// evidence source: "visual" for what is visible in the capture itself,
// "location" for inferences that only follow from where it was captured.
type Statement struct {
	Text     string `json:"text"`
	Evidence string `json:"evidence"`
}

// Analysis is the normalized shape we want from the model.
type Analysis struct {
	Title      string      `json:"title"`
	Summary    string      `json:"summary"`
	EntityType string      `json:"entity_type,omitempty"` // place | product | article | event | note | document
	Tags       []string    `json:"tags,omitempty"`
	Categories []string    `json:"categories,omitempty"`
	Purposes   []string    `json:"purposes,omitempty"`
	Questions  []string    `json:"questions,omitempty"` // open questions worth following up
	Statements []Statement `json:"statements,omitempty"`
	Price      float64     `json:"price,omitempty"`
	Rating     float64     `json:"rating,omitempty"`
	Confidence float64     `json:"confidence,omitempty"` // 0..1
}

// AnalyzeRequest carries the capture text plus every situational signal
// already resolved for the item. Signals are plain strings here; the
// prompt builder decides how to phrase them.
type AnalyzeRequest struct {
	Text       string
	URL        string
	Modality   string
	EntityHint string

	PlaceName    string
	PlaceAddress string
	Weather      string
	Activity     string
	SessionTitle string

	// Summaries of items already completed in the same session.
	SiblingSummaries []string
}

// SummarizeRequest asks for a rolling session summary.
type SummarizeRequest struct {
	Title     string
	Existing  string
	Additions []string
}

// Service is the interface the pipeline depends on.
type Service interface {
	Analyze(ctx context.Context, req AnalyzeRequest) (Analysis, []byte /*rawJSON*/, error)
	Summarize(ctx context.Context, req SummarizeRequest) (string, error)
}
