package reasoning

import (
	"encoding/json"
	"strconv"
	"strings"
)

var listFields = []string{"tags", "categories", "purposes", "questions"}
var numberFields = []string{"price", "rating", "confidence"}

// SanitizeAnalysisJSON removes or normalizes optional fields that don't meet
// the stricter schema, so the overall document can still validate. Only
// optionals are touched; a missing title or summary stays a hard failure.
func SanitizeAnalysisJSON(doc []byte) ([]byte, []string, error) {
	var m map[string]any
	if err := json.Unmarshal(doc, &m); err != nil {
		return nil, nil, err
	}

	var dropped []string

	for _, k := range listFields {
		v, ok := m[k]
		if !ok {
			continue
		}
		switch t := v.(type) {
		case nil:
			delete(m, k)
			dropped = append(dropped, k)
		case []any:
			out := make([]any, 0, len(t))
			for _, e := range t {
				if s, ok := e.(string); ok {
					if s = strings.TrimSpace(s); s != "" {
						out = append(out, s)
					}
				}
			}
			if len(out) == 0 {
				delete(m, k)
				dropped = append(dropped, k)
			} else {
				m[k] = out
			}
		case string:
			// a bare string is treated as a one-element list
			if s := strings.TrimSpace(t); s != "" {
				m[k] = []any{s}
			} else {
				delete(m, k)
				dropped = append(dropped, k)
			}
		default:
			delete(m, k)
			dropped = append(dropped, k)
		}
	}

	// statements are {text, evidence} objects; non-conforming elements
	// are dropped rather than failing the whole document
	if v, ok := m["statements"]; ok {
		switch t := v.(type) {
		case []any:
			out := make([]any, 0, len(t))
			for _, e := range t {
				obj, ok := e.(map[string]any)
				if !ok {
					continue
				}
				text, _ := obj["text"].(string)
				text = strings.TrimSpace(text)
				ev, _ := obj["evidence"].(string)
				ev = strings.ToLower(strings.TrimSpace(ev))
				if text == "" || (ev != "visual" && ev != "location") {
					continue
				}
				out = append(out, map[string]any{"text": text, "evidence": ev})
			}
			if len(out) == 0 {
				delete(m, "statements")
				dropped = append(dropped, "statements")
			} else {
				m["statements"] = out
			}
		default:
			delete(m, "statements")
			dropped = append(dropped, "statements")
		}
	}

	for _, k := range numberFields {
		v, ok := m[k]
		if !ok {
			continue
		}
		switch t := v.(type) {
		case nil:
			delete(m, k)
			dropped = append(dropped, k)
		case float64:
			if t < 0 {
				delete(m, k)
				dropped = append(dropped, k)
			}
		case string:
			if f, err := strconv.ParseFloat(strings.TrimSpace(t), 64); err == nil && f >= 0 {
				m[k] = f
			} else {
				delete(m, k)
				dropped = append(dropped, k)
			}
		default:
			delete(m, k)
			dropped = append(dropped, k)
		}
	}

	if v, ok := m["entity_type"].(string); ok {
		s := strings.ToLower(strings.TrimSpace(v))
		switch s {
		case "place", "product", "article", "event", "note", "document":
			m["entity_type"] = s
		default:
			delete(m, "entity_type")
			dropped = append(dropped, "entity_type")
		}
	}

	for _, k := range []string{"title", "summary"} {
		if v, ok := m[k].(string); ok {
			m[k] = strings.TrimSpace(v)
		}
	}

	b, err := json.Marshal(m)
	if err != nil {
		return nil, nil, err
	}
	return b, dropped, nil
}
