package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitTextShortInputIsSingleChunk(t *testing.T) {
	chunks := SplitText("short content", 100, 10)

	assert.Equal(t, []string{"short content"}, chunks)
}

func TestSplitTextOverlapsNeighbours(t *testing.T) {
	text := strings.Repeat("abcdefghij", 10) // 100 chars

	chunks := SplitText(text, 40, 10)

	assert.Greater(t, len(chunks), 1)
	for i := 1; i < len(chunks); i++ {
		prev := chunks[i-1]
		// The tail of each chunk reappears at the head of the next.
		assert.True(t, strings.HasPrefix(chunks[i], prev[len(prev)-10:]))
	}
}

func TestSplitTextCoversWholeInput(t *testing.T) {
	text := strings.Repeat("x", 95)

	chunks := SplitText(text, 40, 0)

	assert.Equal(t, text, strings.Join(chunks, ""))
}
