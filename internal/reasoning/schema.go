package reasoning

// BuildAnalysisJSONSchema returns a JSON-Schema (draft 2020-12 subset) as a
// generic map. We pass it to the model as a structured output constraint and
// also use it locally to validate.
func BuildAnalysisJSONSchema() map[string]any {
	props := map[string]any{
		"title":   map[string]any{"type": "string", "minLength": 1},
		"summary": map[string]any{"type": "string", "minLength": 1},
		"entity_type": map[string]any{
			"type": "string",
			"enum": []string{"place", "product", "article", "event", "note", "document"},
		},
		"tags":       stringListProp(),
		"categories": stringListProp(),
		"purposes":   stringListProp(),
		"questions":  stringListProp(),
		"statements": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type":                 "object",
				"additionalProperties": false,
				"properties": map[string]any{
					"text":     map[string]any{"type": "string", "minLength": 1},
					"evidence": map[string]any{"type": "string", "enum": []string{"visual", "location"}},
				},
				"required": []string{"text", "evidence"},
			},
		},
		"price":      map[string]any{"type": "number", "minimum": 0.0},
		"rating":     map[string]any{"type": "number", "minimum": 0.0, "maximum": 5.0},
		"confidence": map[string]any{"type": "number", "minimum": 0.0, "maximum": 1.0},
	}
	required := []string{"title", "summary"}

	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties":           props,
		"required":             required,
	}
}

func stringListProp() map[string]any {
	return map[string]any{
		"type":  "array",
		"items": map[string]any{"type": "string", "minLength": 1},
	}
}
