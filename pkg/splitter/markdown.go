package splitter

import "strings"

// Chunk is a piece of a document ready for embedding.
type Chunk struct {
	Content  string
	Metadata map[string]string
}

var headerKeys = map[int]string{1: "h1", 2: "h2", 3: "h3"}

// SplitMarkdown splits on "#", "##" and "###" headers. Each header starts a
// new chunk; the header line stays in the chunk text and the active header
// hierarchy is carried as metadata. Text before the first header becomes its
// own chunk.
func SplitMarkdown(text string) []Chunk {
	lines := strings.Split(text, "\n")

	var chunks []Chunk
	var current []string
	headers := map[string]string{}

	flush := func() {
		content := strings.TrimSpace(strings.Join(current, "\n"))
		current = nil
		if content == "" {
			return
		}
		meta := make(map[string]string, len(headers))
		for k, v := range headers {
			meta[k] = v
		}
		chunks = append(chunks, Chunk{Content: content, Metadata: meta})
	}

	for _, line := range lines {
		if level, title, ok := parseHeader(line); ok {
			flush()
			// A new header invalidates deeper levels from the previous block
			for l := level; l <= 3; l++ {
				delete(headers, headerKeys[l])
			}
			headers[headerKeys[level]] = title
			current = append(current, line)
			continue
		}
		current = append(current, line)
	}
	flush()

	return chunks
}

func parseHeader(line string) (level int, title string, ok bool) {
	trimmed := strings.TrimSpace(line)
	for l := 3; l >= 1; l-- {
		prefix := strings.Repeat("#", l) + " "
		if strings.HasPrefix(trimmed, prefix) {
			return l, strings.TrimSpace(trimmed[l+1:]), true
		}
	}
	return 0, "", false
}
