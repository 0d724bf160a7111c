package services

import (
	"strings"
	"unicode/utf8"
)

// TextChunker splits extracted resume text into chunks suitable for
// embedding. Chunks keep paragraph boundaries where possible and carry a
// trailing overlap from the previous chunk so context is not cut mid-topic.
type TextChunker interface {
	Chunk(text string, maxChunkSize int, overlap int) []string
}

type textChunker struct{}

func NewTextChunker() TextChunker {
	return &textChunker{}
}

// Chunk implements TextChunker.
func (tc *textChunker) Chunk(text string, maxChunkSize int, overlap int) []string {
	if maxChunkSize <= 0 {
		maxChunkSize = 1000
	}
	if overlap < 0 || overlap >= maxChunkSize {
		overlap = maxChunkSize / 10
	}

	var pieces []string
	for _, para := range strings.Split(text, "\n\n") {
		para = strings.TrimSpace(para)
		if para == "" {
			continue
		}
		if utf8.RuneCountInString(para) > maxChunkSize {
			pieces = append(pieces, splitSentences(para)...)
		} else {
			pieces = append(pieces, para)
		}
	}

	var chunks []string
	var current strings.Builder
	seedLen := 0

	for _, piece := range pieces {
		if current.Len() > seedLen && current.Len()+len(piece)+1 > maxChunkSize {
			chunks = append(chunks, current.String())
			current.Reset()
			seedLen = 0
			if overlap > 0 {
				tail := lastRunes(chunks[len(chunks)-1], overlap)
				if tail != "" {
					current.WriteString(tail)
					current.WriteString(" ")
					seedLen = current.Len()
				}
			}
		}
		if current.Len() > seedLen {
			current.WriteString("\n")
		}
		current.WriteString(piece)
	}

	if current.Len() > seedLen {
		chunks = append(chunks, current.String())
	}

	return chunks
}

func splitSentences(text string) []string {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return r == '.' || r == '!' || r == '?'
	})

	var sentences []string
	for _, s := range fields {
		s = strings.TrimSpace(s)
		if s != "" {
			sentences = append(sentences, s)
		}
	}
	return sentences
}

func lastRunes(text string, n int) string {
	runes := []rune(text)
	if len(runes) <= n {
		return text
	}
	return string(runes[len(runes)-n:])
}
