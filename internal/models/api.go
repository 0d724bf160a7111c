package models

type UploadResponse struct {
	Success    bool          `json:"success"`
	Message    string        `json:"message"`
	ID         string        `json:"id"`
	ParsedData *ParsedResume `json:"parsedData"`
	Skills     []string      `json:"skills"`
	TextLength int           `json:"textLength"`
}

type ChatRequest struct {
	Message     string `json:"message"`
	CandidateID string `json:"candidateId"`
}

type ChatResponse struct {
	Reply       string `json:"reply"`
	ContextUsed string `json:"contextUsed"`
}

// TranscriptMessage is a client-held chat entry as submitted at the end of
// a session. Timestamps are assigned server-side at persistence.
type TranscriptMessage struct {
	Role    MessageRole `json:"role"`
	Content string      `json:"content"`
}

type EndInterviewRequest struct {
	Messages       []TranscriptMessage `json:"messages"`
	CandidateID    string              `json:"candidateId"`
	CandidateName  string              `json:"candidateName"`
	CandidateEmail string              `json:"candidateEmail"`
}

type EndInterviewResponse struct {
	Success     bool     `json:"success"`
	InterviewID string   `json:"interviewId"`
	Feedback    Feedback `json:"feedback"`
}

type HealthResponse struct {
	Status    string `json:"status"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}
