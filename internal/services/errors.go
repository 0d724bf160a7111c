package services

import "errors"

// Core-path failures. Handlers map these to HTTP statuses; best-effort side
// effects (report rendering, email) are logged and never surfaced as errors.
var (
	// ErrExtraction means the PDF collaborator could not produce text.
	ErrExtraction = errors.New("failed to extract text from document")

	// ErrEmptyDocument means extraction succeeded but the text is below the
	// minimum length threshold. No vector-store write happens in this case.
	ErrEmptyDocument = errors.New("document text is too short to process")

	// ErrGeneration means the LLM collaborator failed or timed out.
	ErrGeneration = errors.New("text generation failed")

	// ErrMalformedEvaluation means the evaluation response was not the
	// expected JSON shape. Fatal to finalization: nothing is persisted.
	ErrMalformedEvaluation = errors.New("evaluation response is not valid JSON")

	// ErrUnauthorized means the bearer token is missing, invalid or expired.
	ErrUnauthorized = errors.New("invalid or expired token")
)
