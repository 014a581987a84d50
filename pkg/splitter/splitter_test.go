package splitter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitMarkdownTopLevelHeaders(t *testing.T) {
	doc := "# Intro\nwelcome text\n\n# Usage\nhow to use it\n\n# FAQ\nanswers"

	chunks := SplitMarkdown(doc)
	require.Len(t, chunks, 3)

	assert.True(t, strings.HasPrefix(chunks[0].Content, "# Intro"))
	assert.True(t, strings.HasPrefix(chunks[1].Content, "# Usage"))
	assert.True(t, strings.HasPrefix(chunks[2].Content, "# FAQ"))

	assert.Equal(t, "Intro", chunks[0].Metadata["h1"])
	assert.Equal(t, "Usage", chunks[1].Metadata["h1"])
	assert.Equal(t, "FAQ", chunks[2].Metadata["h1"])
}

func TestSplitMarkdownNestedHeaders(t *testing.T) {
	doc := "# Guide\nintro\n## Setup\nsteps\n### Linux\napt install\n## Teardown\ncleanup"

	chunks := SplitMarkdown(doc)
	require.Len(t, chunks, 4)

	assert.Equal(t, map[string]string{"h1": "Guide"}, chunks[0].Metadata)
	assert.Equal(t, map[string]string{"h1": "Guide", "h2": "Setup"}, chunks[1].Metadata)
	assert.Equal(t, map[string]string{"h1": "Guide", "h2": "Setup", "h3": "Linux"}, chunks[2].Metadata)
	// A new h2 drops the stale h3
	assert.Equal(t, map[string]string{"h1": "Guide", "h2": "Teardown"}, chunks[3].Metadata)
}

func TestSplitMarkdownPreamble(t *testing.T) {
	doc := "no header yet\n\n# First\nbody"

	chunks := SplitMarkdown(doc)
	require.Len(t, chunks, 2)
	assert.Equal(t, "no header yet", chunks[0].Content)
	assert.Empty(t, chunks[0].Metadata)
}

func TestSplitMarkdownEmpty(t *testing.T) {
	assert.Empty(t, SplitMarkdown(""))
	assert.Empty(t, SplitMarkdown("\n\n\n"))
}

func TestRecursiveSplitShortTextIsOneChunk(t *testing.T) {
	s := NewRecursiveSplitter(100, 0)
	chunks := s.Split("short text")
	require.Len(t, chunks, 1)
	assert.Equal(t, "short text", chunks[0])
}

func TestRecursiveSplitPrefersParagraphBreaks(t *testing.T) {
	s := NewRecursiveSplitter(30, 0)
	text := "first paragraph here\n\nsecond paragraph here\n\nthird one"

	chunks := s.Split(text)
	require.True(t, len(chunks) >= 2)
	for _, c := range chunks {
		assert.LessOrEqual(t, len([]rune(c)), 30)
	}
	assert.Contains(t, chunks[0], "first paragraph")
}

func TestRecursiveSplitNoSeparatorFallsBackToSlicing(t *testing.T) {
	s := NewRecursiveSplitter(10, 0)
	text := strings.Repeat("x", 35)

	chunks := s.Split(text)
	require.Len(t, chunks, 4)
	assert.Equal(t, strings.Repeat("x", 10), chunks[0])
	assert.Equal(t, strings.Repeat("x", 5), chunks[3])
}

func TestRecursiveSplitCjkPunctuation(t *testing.T) {
	s := NewRecursiveSplitter(12, 0)
	text := "你好世界你好世界。再见世界再见世界。还有一句话在这里。"

	chunks := s.Split(text)
	require.True(t, len(chunks) >= 2)
	for _, c := range chunks {
		assert.LessOrEqual(t, len([]rune(c)), 12)
	}
	// Sentence boundaries survive splitting
	assert.True(t, strings.HasSuffix(chunks[0], "。"))
}

func TestRecursiveSplitOverlapCarriesContext(t *testing.T) {
	s := NewRecursiveSplitter(10, 3)
	text := strings.Repeat("a", 25)

	chunks := s.Split(text)
	require.True(t, len(chunks) >= 3)
	// Consecutive hard slices share the overlap window
	assert.Equal(t, 10, len([]rune(chunks[0])))
	assert.Equal(t, 10, len([]rune(chunks[1])))
}

func TestRecursiveSplitNothingButWhitespace(t *testing.T) {
	s := NewRecursiveSplitter(100, 0)
	assert.Empty(t, s.Split("   \n\n  "))
}
