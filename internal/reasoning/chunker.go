package reasoning

import "strings"

// SplitChunks cuts text into chunks of at most size runes with the given
// overlap carried between consecutive chunks. Cuts prefer whitespace near
// the boundary so words are not split mid-token. Text at or under size
// comes back as a single chunk.
func SplitChunks(text string, size, overlap int) []string {
	if size <= 0 {
		return []string{text}
	}
	if overlap < 0 || overlap >= size {
		overlap = 0
	}
	runes := []rune(text)
	if len(runes) <= size {
		return []string{text}
	}

	var chunks []string
	start := 0
	for {
		end := start + size
		if end >= len(runes) {
			chunks = append(chunks, strings.TrimSpace(string(runes[start:])))
			break
		}
		cut := end
		// back up to the nearest whitespace, but never more than 200 runes
		for i := end; i > end-200 && i > start; i-- {
			if runes[i-1] == ' ' || runes[i-1] == '\n' {
				cut = i
				break
			}
		}
		chunks = append(chunks, strings.TrimSpace(string(runes[start:cut])))
		next := cut - overlap
		if next <= start {
			next = cut
		}
		start = next
	}
	return chunks
}
