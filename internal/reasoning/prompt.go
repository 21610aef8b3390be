package reasoning

import (
	"strings"
)

// BuildSystemPrompt composes the system message with the entity taxonomy,
// the situational context already resolved for the item, and
// strict-but-practical formatting rules.
func BuildSystemPrompt(req AnalyzeRequest) string {
	var ctxBits []string
	if p := strings.TrimSpace(req.PlaceName); p != "" {
		ctxBits = append(ctxBits, "Captured at: "+p+".")
	}
	if a := strings.TrimSpace(req.PlaceAddress); a != "" {
		ctxBits = append(ctxBits, "Address: "+a+".")
	}
	if w := strings.TrimSpace(req.Weather); w != "" {
		ctxBits = append(ctxBits, "Weather: "+w+".")
	}
	if a := strings.TrimSpace(req.Activity); a != "" {
		ctxBits = append(ctxBits, "User activity: "+a+".")
	}
	if s := strings.TrimSpace(req.SessionTitle); s != "" {
		ctxBits = append(ctxBits, "Part of session: "+s+".")
	}

	parts := []string{
		"You are a personal-capture analyst. Return ONLY JSON that matches the provided JSON Schema.",
		"Pick 'entity_type' from the enum: place, product, article, event, note, document.",
		"For 'title', prefer a proper name (business, product, article headline) over a generic phrase.",
		"For 'summary', write 1-3 plain sentences about what was captured and why it might matter.",
		"For 'tags', use short lowercase topical labels. For 'categories', use broader buckets.",
		"For 'purposes', guess why the user saved this (e.g. 'to visit', 'to buy', 'to read').",
		"For 'questions', list open follow-ups the capture raises, if any.",
		"For 'statements', list short intent or activity inferences; tag each with 'evidence': 'visual' when it comes from the capture content itself, 'location' when it only follows from where it was captured.",
		"Include 'price' and 'rating' only when they are explicit in the content.",
		"Never output null. If a field is not present, omit it.",
	}
	if len(ctxBits) > 0 {
		parts = append(parts, "Situational context: "+strings.Join(ctxBits, " "))
	}
	if h := strings.TrimSpace(req.EntityHint); h != "" {
		parts = append(parts, "A prior pass suggested entity_type '"+h+"'; keep it unless the content clearly contradicts it.")
	}
	return strings.Join(parts, " ")
}

// BuildUserPrompt packages the capture content and sibling summaries.
// Sibling summaries give the model session continuity without exposing
// full sibling content.
func BuildUserPrompt(req AnalyzeRequest) string {
	var b strings.Builder
	if u := strings.TrimSpace(req.URL); u != "" {
		b.WriteString("URL: ")
		b.WriteString(u)
		b.WriteString("\n")
	}
	if m := strings.TrimSpace(req.Modality); m != "" {
		b.WriteString("Capture modality: ")
		b.WriteString(m)
		b.WriteString("\n")
	}
	if len(req.SiblingSummaries) > 0 {
		b.WriteString("\nEarlier captures in the same session:\n")
		for _, s := range req.SiblingSummaries {
			b.WriteString("- ")
			b.WriteString(s)
			b.WriteString("\n")
		}
	}
	b.WriteString("\nCapture content:\n")
	b.WriteString(strings.TrimSpace(req.Text))
	return b.String()
}

// BuildSummarizePrompt asks for an updated rolling summary of a session.
func BuildSummarizePrompt(req SummarizeRequest) (system, user string) {
	system = strings.Join([]string{
		"You maintain a rolling summary of a capture session.",
		"Return ONLY the updated summary as plain text, 2-4 sentences.",
		"Fold the new items into the existing summary; do not enumerate them one by one.",
	}, " ")

	var b strings.Builder
	if t := strings.TrimSpace(req.Title); t != "" {
		b.WriteString("Session: ")
		b.WriteString(t)
		b.WriteString("\n")
	}
	if e := strings.TrimSpace(req.Existing); e != "" {
		b.WriteString("Current summary:\n")
		b.WriteString(e)
		b.WriteString("\n")
	}
	b.WriteString("\nNew items:\n")
	for _, a := range req.Additions {
		b.WriteString("- ")
		b.WriteString(a)
		b.WriteString("\n")
	}
	return system, b.String()
}
