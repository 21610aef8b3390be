package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEnrichableURL(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want bool
	}{
		{"https", "https://example.com/page", true},
		{"http", "http://example.com", true},
		{"with query", "https://example.com/p?q=1", true},
		{"empty", "", false},
		{"whitespace", "   ", false},
		{"relative", "/just/a/path", false},
		{"bare host no scheme", "example.com", false},
		{"file scheme", "file:///tmp/x", false},
		{"data scheme", "data:text/plain,hi", false},
		{"app internal scheme", "captured://item/123", false},
		{"ftp", "ftp://example.com/f", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsEnrichableURL(tt.raw))
		})
	}
}

func TestCanonicalURL(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"lowercases scheme and host", "HTTPS://Example.COM/Path", "https://example.com/Path"},
		{"strips fragment", "https://example.com/a#section", "https://example.com/a"},
		{"strips default http port", "http://example.com:80/a", "http://example.com/a"},
		{"strips default https port", "https://example.com:443/a", "https://example.com/a"},
		{"keeps explicit port", "https://example.com:8443/a", "https://example.com:8443/a"},
		{"strips bare trailing slash", "https://example.com/", "https://example.com"},
		{"keeps deeper path slash", "https://example.com/a/", "https://example.com/a/"},
		{"preserves query order", "https://example.com/a?b=1&a=2", "https://example.com/a?b=1&a=2"},
		{"non-url passthrough", "not a url", "not a url"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanonicalURL(tt.raw))
		})
	}
}

func TestCanonicalURL_EquivalentFormsConverge(t *testing.T) {
	variants := []string{
		"https://Example.com/menu#today",
		"https://example.com/menu",
		"HTTPS://EXAMPLE.COM/menu#other",
	}
	want := CanonicalURL(variants[0])
	for _, v := range variants[1:] {
		assert.Equal(t, want, CanonicalURL(v), "variant %q", v)
	}
}

func TestItemStatusTransitions(t *testing.T) {
	assert.True(t, CanRetry(StatusFailed))
	assert.True(t, CanRetry(StatusReviewRequired))
	assert.False(t, CanRetry(StatusReady))
	assert.False(t, CanRetry(StatusProcessing))

	assert.True(t, IsTerminal(StatusReady))
	assert.True(t, IsTerminal(StatusFailed))
	assert.False(t, IsTerminal(StatusQueued))
	assert.False(t, IsTerminal(StatusProcessing))
}
