package reasoning

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sanitized(t *testing.T, doc string) (map[string]any, []string) {
	t.Helper()
	out, dropped, err := SanitizeAnalysisJSON([]byte(doc))
	require.NoError(t, err)
	var m map[string]any
	require.NoError(t, json.Unmarshal(out, &m))
	return m, dropped
}

func TestSanitizeAnalysisJSON(t *testing.T) {
	t.Run("bare string becomes a one-element list", func(t *testing.T) {
		m, dropped := sanitized(t, `{"title":"t","summary":"s","tags":"coffee"}`)
		assert.Equal(t, []any{"coffee"}, m["tags"])
		assert.Empty(t, dropped)
	})

	t.Run("blank list entries are pruned", func(t *testing.T) {
		m, _ := sanitized(t, `{"title":"t","summary":"s","tags":["coffee","  ","", "wifi"]}`)
		assert.Equal(t, []any{"coffee", "wifi"}, m["tags"])
	})

	t.Run("empty list is dropped", func(t *testing.T) {
		m, dropped := sanitized(t, `{"title":"t","summary":"s","categories":[]}`)
		_, ok := m["categories"]
		assert.False(t, ok)
		assert.Contains(t, dropped, "categories")
	})

	t.Run("null optional is dropped", func(t *testing.T) {
		m, dropped := sanitized(t, `{"title":"t","summary":"s","purposes":null}`)
		_, ok := m["purposes"]
		assert.False(t, ok)
		assert.Contains(t, dropped, "purposes")
	})

	t.Run("numeric string is coerced", func(t *testing.T) {
		m, _ := sanitized(t, `{"title":"t","summary":"s","price":"12.50"}`)
		assert.Equal(t, 12.5, m["price"])
	})

	t.Run("negative number is dropped", func(t *testing.T) {
		m, dropped := sanitized(t, `{"title":"t","summary":"s","rating":-1}`)
		_, ok := m["rating"]
		assert.False(t, ok)
		assert.Contains(t, dropped, "rating")
	})

	t.Run("entity type is normalized", func(t *testing.T) {
		m, _ := sanitized(t, `{"title":"t","summary":"s","entity_type":" Place "}`)
		assert.Equal(t, "place", m["entity_type"])
	})

	t.Run("unknown entity type is dropped", func(t *testing.T) {
		m, dropped := sanitized(t, `{"title":"t","summary":"s","entity_type":"spaceship"}`)
		_, ok := m["entity_type"]
		assert.False(t, ok)
		assert.Contains(t, dropped, "entity_type")
	})

	t.Run("statements are normalized", func(t *testing.T) {
		m, dropped := sanitized(t, `{"title":"t","summary":"s","statements":[
			{"text":"  ordering espresso ","evidence":" Visual "},
			{"text":"near the waterfront","evidence":"location"},
			{"text":"","evidence":"visual"},
			{"text":"guessing","evidence":"vibes"},
			"not an object"
		]}`)
		assert.Equal(t, []any{
			map[string]any{"text": "ordering espresso", "evidence": "visual"},
			map[string]any{"text": "near the waterfront", "evidence": "location"},
		}, m["statements"])
		assert.Empty(t, dropped)
	})

	t.Run("statements with no valid entries are dropped", func(t *testing.T) {
		m, dropped := sanitized(t, `{"title":"t","summary":"s","statements":[{"text":"x","evidence":"hearsay"}]}`)
		_, ok := m["statements"]
		assert.False(t, ok)
		assert.Contains(t, dropped, "statements")
	})

	t.Run("non-list statements are dropped", func(t *testing.T) {
		m, dropped := sanitized(t, `{"title":"t","summary":"s","statements":"ordering espresso"}`)
		_, ok := m["statements"]
		assert.False(t, ok)
		assert.Contains(t, dropped, "statements")
	})

	t.Run("title and summary are trimmed but kept", func(t *testing.T) {
		m, dropped := sanitized(t, `{"title":"  t  ","summary":" s "}`)
		assert.Equal(t, "t", m["title"])
		assert.Equal(t, "s", m["summary"])
		assert.Empty(t, dropped)
	})

	t.Run("invalid json is an error", func(t *testing.T) {
		_, _, err := SanitizeAnalysisJSON([]byte(`not json`))
		assert.Error(t, err)
	})
}

func TestAnalysisSchemaValidation(t *testing.T) {
	schema := BuildAnalysisJSONSchema()

	t.Run("complete document validates", func(t *testing.T) {
		doc := `{
			"title": "Foo Cafe",
			"summary": "an espresso stop",
			"entity_type": "place",
			"tags": ["coffee"],
			"statements": [{"text":"ordering espresso","evidence":"visual"}],
			"rating": 4.5,
			"confidence": 0.9
		}`
		assert.NoError(t, ValidateJSONAgainstSchema(schema, []byte(doc)))
	})

	t.Run("statement with unknown evidence fails strict validation", func(t *testing.T) {
		doc := `{"title":"t","summary":"s","statements":[{"text":"x","evidence":"hearsay"}]}`
		require.Error(t, ValidateJSONAgainstSchema(schema, []byte(doc)))

		repaired, dropped, err := SanitizeAnalysisJSON([]byte(doc))
		require.NoError(t, err)
		assert.NoError(t, ValidateJSONAgainstSchema(schema, repaired))
		assert.Contains(t, dropped, "statements")
	})

	t.Run("missing title fails", func(t *testing.T) {
		assert.Error(t, ValidateJSONAgainstSchema(schema, []byte(`{"summary":"s"}`)))
	})

	t.Run("unknown field fails", func(t *testing.T) {
		doc := `{"title":"t","summary":"s","mood":"upbeat"}`
		assert.Error(t, ValidateJSONAgainstSchema(schema, []byte(doc)))
	})

	t.Run("sanitize repairs a sloppy document", func(t *testing.T) {
		sloppy := `{
			"title": "Foo Cafe",
			"summary": "an espresso stop",
			"entity_type": "PLACE",
			"tags": "coffee",
			"price": "4.50",
			"questions": []
		}`
		require.Error(t, ValidateJSONAgainstSchema(schema, []byte(sloppy)))

		repaired, dropped, err := SanitizeAnalysisJSON([]byte(sloppy))
		require.NoError(t, err)
		assert.NoError(t, ValidateJSONAgainstSchema(schema, repaired))
		assert.Contains(t, dropped, "questions")
	})
}
