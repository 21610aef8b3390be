package reasoning

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitChunks(t *testing.T) {
	t.Run("short text is one chunk", func(t *testing.T) {
		chunks := SplitChunks("hello world", 100, 10)
		assert.Equal(t, []string{"hello world"}, chunks)
	})

	t.Run("zero size is one chunk", func(t *testing.T) {
		chunks := SplitChunks("hello world", 0, 0)
		assert.Equal(t, []string{"hello world"}, chunks)
	})

	t.Run("every chunk stays within the size", func(t *testing.T) {
		text := strings.Repeat("lorem ipsum dolor sit amet ", 100)
		chunks := SplitChunks(text, 200, 40)
		require.Greater(t, len(chunks), 1)
		for i, c := range chunks {
			assert.LessOrEqual(t, len([]rune(c)), 200, "chunk %d", i)
			assert.NotEmpty(t, c)
		}
	})

	t.Run("cuts prefer word boundaries", func(t *testing.T) {
		text := strings.Repeat("alpha beta gamma delta ", 50)
		chunks := SplitChunks(text, 100, 0)
		for i, c := range chunks[:len(chunks)-1] {
			last := c[strings.LastIndex(c, " ")+1:]
			assert.Contains(t, []string{"alpha", "beta", "gamma", "delta"}, last,
				"chunk %d should end on a whole word", i)
		}
	})

	t.Run("no content is lost", func(t *testing.T) {
		words := make([]string, 300)
		for i := range words {
			words[i] = "w" + strings.Repeat("x", i%7)
		}
		text := strings.Join(words, " ")
		chunks := SplitChunks(text, 150, 30)
		joined := " " + strings.Join(chunks, " ") + " "
		for _, w := range words {
			assert.Contains(t, joined, " "+w+" ")
		}
	})

	t.Run("degenerate overlap is ignored", func(t *testing.T) {
		text := strings.Repeat("a b c d e f g h ", 40)
		chunks := SplitChunks(text, 50, 50)
		require.Greater(t, len(chunks), 1)
		total := 0
		for _, c := range chunks {
			total += len(c)
		}
		assert.LessOrEqual(t, total, len(text)+len(chunks), "overlap >= size must not duplicate text")
	})
}
