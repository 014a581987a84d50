package splitter

import "strings"

// DefaultSeparators are tried in order, coarsest first. Sentence punctuation
// covers ASCII and full-width/CJK forms so the splitter degrades sanely on
// mixed-language text. The empty string is the rune-level fallback.
var DefaultSeparators = []string{
	"\n\n",
	"\n",
	" ",
	". ", "! ", "? ",
	"。", "！", "？", "．",
	"—", "–", "…",
	"",
}

// RecursiveSplitter cuts text into chunks of at most ChunkSize runes, trying
// each separator in turn and recursing into oversized pieces with the finer
// separators.
type RecursiveSplitter struct {
	ChunkSize    int
	ChunkOverlap int
	Separators   []string
}

func NewRecursiveSplitter(chunkSize, overlap int) *RecursiveSplitter {
	if chunkSize <= 0 {
		chunkSize = 1000
	}
	if overlap < 0 || overlap >= chunkSize {
		overlap = 0
	}
	return &RecursiveSplitter{
		ChunkSize:    chunkSize,
		ChunkOverlap: overlap,
		Separators:   DefaultSeparators,
	}
}

func (s *RecursiveSplitter) Split(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	pieces := s.split(text, s.Separators)

	out := make([]string, 0, len(pieces))
	for _, p := range pieces {
		if strings.TrimSpace(p) != "" {
			out = append(out, p)
		}
	}
	return out
}

func (s *RecursiveSplitter) split(text string, separators []string) []string {
	if runeLen(text) <= s.ChunkSize {
		return []string{text}
	}

	// Pick the first separator that actually occurs in this text.
	sep := ""
	var rest []string
	for i, candidate := range separators {
		if candidate == "" {
			sep = ""
			break
		}
		if strings.Contains(text, candidate) {
			sep = candidate
			rest = separators[i+1:]
			break
		}
	}

	if sep == "" {
		return s.hardSlice(text)
	}

	splits := splitKeepingSeparator(text, sep)

	var final []string
	var small []string
	for _, piece := range splits {
		if runeLen(piece) <= s.ChunkSize {
			small = append(small, piece)
			continue
		}
		if len(small) > 0 {
			final = append(final, s.merge(small)...)
			small = nil
		}
		final = append(final, s.split(piece, rest)...)
	}
	if len(small) > 0 {
		final = append(final, s.merge(small)...)
	}
	return final
}

// merge greedily packs adjacent small pieces into chunks up to ChunkSize,
// carrying ChunkOverlap runes of trailing context into the next chunk.
func (s *RecursiveSplitter) merge(pieces []string) []string {
	var chunks []string
	var buf strings.Builder

	for _, piece := range pieces {
		if buf.Len() > 0 && runeLen(buf.String())+runeLen(piece) > s.ChunkSize {
			chunk := buf.String()
			chunks = append(chunks, chunk)
			buf.Reset()
			if s.ChunkOverlap > 0 {
				buf.WriteString(tailRunes(chunk, s.ChunkOverlap))
			}
		}
		buf.WriteString(piece)
	}
	if buf.Len() > 0 {
		chunks = append(chunks, buf.String())
	}
	return chunks
}

// hardSlice is the last resort when no separator matches: fixed-size rune
// windows with overlap.
func (s *RecursiveSplitter) hardSlice(text string) []string {
	runes := []rune(text)
	step := s.ChunkSize - s.ChunkOverlap
	if step <= 0 {
		step = s.ChunkSize
	}

	var chunks []string
	for i := 0; i < len(runes); i += step {
		end := i + s.ChunkSize
		if end > len(runes) {
			end = len(runes)
		}
		chunks = append(chunks, string(runes[i:end]))
		if end == len(runes) {
			break
		}
	}
	return chunks
}

func splitKeepingSeparator(text, sep string) []string {
	parts := strings.Split(text, sep)
	out := make([]string, 0, len(parts))
	for i, p := range parts {
		if i < len(parts)-1 {
			p += sep
		}
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func runeLen(s string) int {
	return len([]rune(s))
}

func tailRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[len(runes)-n:])
}
