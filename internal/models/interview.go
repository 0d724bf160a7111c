package models

import (
	"time"

	"github.com/google/uuid"
)

type MessageRole string

const (
	RoleUser   MessageRole = "user"
	RoleAI     MessageRole = "ai"
	RoleSystem MessageRole = "system"
)

type Verdict string

const (
	VerdictHire   Verdict = "Hire"
	VerdictNoHire Verdict = "No Hire"
	VerdictReview Verdict = "Review"
)

func (v Verdict) Valid() bool {
	return v == VerdictHire || v == VerdictNoHire || v == VerdictReview
}

// Message is a single transcript entry. Insertion order is chronological
// order; the sequence is immutable once the interview is finalized.
type Message struct {
	Role      MessageRole `json:"role"`
	Content   string      `json:"content"`
	Timestamp time.Time   `json:"timestamp"`
}

// Feedback is the LLM-generated evaluation. It is populated exactly once,
// at finalization, from a single JSON payload.
type Feedback struct {
	TechnicalScore     int      `json:"technicalScore"`
	CommunicationScore int      `json:"communicationScore"`
	Summary            string   `json:"summary"`
	Strengths          []string `json:"strengths"`
	Weaknesses         []string `json:"weaknesses"`
	Verdict            Verdict  `json:"verdict"`
}

// Interview is one record per completed session. Records are append-only;
// no update or delete path exists.
type Interview struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	CandidateID   string    `gorm:"type:text;not null" json:"candidateId"`
	CandidateName string    `gorm:"type:text" json:"candidateName"`
	Date          time.Time `gorm:"type:timestamp;default:now()" json:"date"`
	Messages      []Message `gorm:"type:jsonb;serializer:json" json:"messages"`
	Feedback      Feedback  `gorm:"type:jsonb;serializer:json" json:"feedback"`
}

func (Interview) TableName() string {
	return "interviews"
}
