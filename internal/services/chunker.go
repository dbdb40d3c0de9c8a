package services

import (
	"strings"
	"unicode/utf8"
)

type TextChunker interface {
	ChunkText(text string, maxChunkSize int, overlap int) []string
}

type textChunker struct{}

func NewTextChunker() TextChunker {
	return &textChunker{}
}

// ChunkText splits text on blank lines and packs paragraphs into chunks of at
// most maxChunkSize runes. Paragraphs that are too long on their own are
// split into sentences. Each new chunk starts with the last overlap runes of
// the previous one.
func (tc *textChunker) ChunkText(text string, maxChunkSize int, overlap int) []string {
	if maxChunkSize <= 0 {
		maxChunkSize = 1000
	}
	if overlap < 0 {
		overlap = 0
	}
	if overlap >= maxChunkSize {
		overlap = maxChunkSize / 4
	}

	b := &chunkBuilder{max: maxChunkSize, overlap: overlap}

	for _, para := range strings.Split(text, "\n\n") {
		para = strings.TrimSpace(para)
		if para == "" {
			continue
		}

		if utf8.RuneCountInString(para) <= maxChunkSize {
			b.add(para, "\n\n")
			continue
		}

		for _, sentence := range splitIntoSentences(para) {
			b.add(sentence, " ")
		}
	}

	return b.finish()
}

type chunkBuilder struct {
	max     int
	overlap int
	chunks  []string
	current strings.Builder
	size    int
}

func (b *chunkBuilder) add(piece, sep string) {
	pieceLen := utf8.RuneCountInString(piece)

	if b.size > 0 && b.size+utf8.RuneCountInString(sep)+pieceLen > b.max {
		b.flush()
		if tail := lastNRunes(b.chunks[len(b.chunks)-1], b.overlap); tail != "" {
			b.write(tail)
		}
	}

	if b.size > 0 {
		b.write(sep)
	}
	b.write(piece)
}

func (b *chunkBuilder) write(s string) {
	b.current.WriteString(s)
	b.size += utf8.RuneCountInString(s)
}

func (b *chunkBuilder) flush() {
	b.chunks = append(b.chunks, b.current.String())
	b.current.Reset()
	b.size = 0
}

func (b *chunkBuilder) finish() []string {
	if b.size > 0 {
		b.flush()
	}
	return b.chunks
}

func splitIntoSentences(text string) []string {
	var sentences []string
	start := 0
	for i, r := range text {
		if r == '.' || r == '!' || r == '?' {
			if s := strings.TrimSpace(text[start : i+1]); s != "" {
				sentences = append(sentences, s)
			}
			start = i + 1
		}
	}
	if s := strings.TrimSpace(text[start:]); s != "" {
		sentences = append(sentences, s)
	}
	return sentences
}

func lastNRunes(text string, n int) string {
	if n <= 0 {
		return ""
	}

	runes := []rune(text)
	if len(runes) <= n {
		return text
	}

	return string(runes[len(runes)-n:])
}
