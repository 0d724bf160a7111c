package main

import (
	"context"
	"log"
	"os"
	"path/filepath"
	"strings"

	"hireflow/interview-api/internal/config"
	"hireflow/interview-api/internal/services"
)

// Bulk-ingests a directory of resume PDFs into the vector store. The
// candidate identifier for each resume is its filename without extension.
//
// Usage: go run scripts/ingest_resumes.go <directory>
func main() {
	if len(os.Args) < 2 {
		log.Fatal("Usage: go run scripts/ingest_resumes.go <directory>")
	}
	dir := os.Args[1]

	log.Println("🚀 Starting resume ingestion...")

	cfg := config.Load()

	llmService, err := services.NewGeminiService(cfg.Gemini.APIKey)
	if err != nil {
		log.Fatalf("❌ Failed to initialize Gemini: %v", err)
	}

	vectorService, err := services.NewQdrantService(
		cfg.Qdrant.URL,
		cfg.Qdrant.APIKey,
		cfg.Qdrant.Collection,
	)
	if err != nil {
		log.Fatalf("❌ Failed to initialize Qdrant: %v", err)
	}

	if err := vectorService.InitCollection(); err != nil {
		log.Fatalf("❌ Failed to initialize collection: %v", err)
	}

	resumeService := services.NewResumeService(
		services.NewPDFExtractor(),
		services.NewTextChunker(),
		llmService,
		vectorService,
	)

	entries, err := os.ReadDir(dir)
	if err != nil {
		log.Fatalf("❌ Failed to read directory: %v", err)
	}

	ctx := context.Background()
	ingested := 0

	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".pdf") {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			log.Printf("⚠️  Skipping %s: %v\n", entry.Name(), err)
			continue
		}

		candidateID := strings.TrimSuffix(entry.Name(), filepath.Ext(entry.Name()))

		result, err := resumeService.Ingest(ctx, data, entry.Name(), candidateID)
		if err != nil {
			log.Printf("❌ Failed to ingest %s: %v\n", entry.Name(), err)
			continue
		}

		log.Printf("✅ Ingested %s (%d characters, %d skills)\n", result.ID, result.TextLength, len(result.Skills))
		ingested++
	}

	log.Printf("🎉 Done. Ingested %d resumes\n", ingested)
}
