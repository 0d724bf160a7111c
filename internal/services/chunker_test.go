package services

import (
	"strings"
	"testing"
)

func TestChunkShortTextSingleChunk(t *testing.T) {
	chunker := NewTextChunker()

	chunks := chunker.Chunk("Short resume.\n\nTwo paragraphs.", 1000, 100)

	if len(chunks) != 1 {
		t.Fatalf("expected one chunk, got %d", len(chunks))
	}
}

func TestChunkRespectsMaxSize(t *testing.T) {
	chunker := NewTextChunker()

	var paragraphs []string
	for i := 0; i < 20; i++ {
		paragraphs = append(paragraphs, strings.Repeat("word ", 40))
	}
	text := strings.Join(paragraphs, "\n\n")

	chunks := chunker.Chunk(text, 500, 50)

	if len(chunks) < 2 {
		t.Fatalf("expected multiple chunks, got %d", len(chunks))
	}
	for i, chunk := range chunks {
		if len(chunk) > 700 {
			t.Fatalf("chunk %d far exceeds max size: %d chars", i, len(chunk))
		}
	}
}

func TestChunkEmptyText(t *testing.T) {
	chunker := NewTextChunker()

	if chunks := chunker.Chunk("   \n\n  ", 1000, 100); len(chunks) != 0 {
		t.Fatalf("expected no chunks for blank text, got %d", len(chunks))
	}
}
