package services

import (
	"fmt"
	"strings"
)

// NoContextFallback is returned by retrieval when the vector store holds no
// relevant chunks. The turn prompt treats it as "ask general questions".
const NoContextFallback = "No specific resume context found for this topic. Ask general technical questions."

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// BuildInterviewPrompt composes the per-turn prompt: the recruiter persona,
// the retrieved resume context and the candidate's latest message. Prior
// turns are deliberately absent; each turn relies on fresh retrieval only.
func (pb *PromptBuilder) BuildInterviewPrompt(context, userMessage string) string {
	if context == "" {
		context = "No specific resume context found. Ask general technical questions."
	}

	return fmt.Sprintf(`You are an AI Technical Recruiter named "HireFlow".

Your Goal: Conduct a technical screening interview for a Software Engineering role.

CONTEXT FROM CANDIDATE'S RESUME:
"%s"

INSTRUCTIONS:
1. Use the Context above to ask specific questions about their experience.
2. Keep your responses concise (max 2-3 sentences).
3. Be professional but conversational.
4. Do not reveal that you were given this context text directly.
5. If the candidate answers correctly, move to a harder topic.

USER'S LATEST MESSAGE: "%s"

Generate the next interview question or response:`, context, userMessage)
}

// BuildEvaluationPrompt asks for the structured end-of-interview verdict as
// a strict JSON object.
func (pb *PromptBuilder) BuildEvaluationPrompt(transcript string) string {
	return fmt.Sprintf(`Analyze this technical interview transcript.
TRANSCRIPT:
%s

Generate a JSON summary of the candidate's performance.
Strictly follow this JSON format (no markdown, just raw json):
{
  "technicalScore": (0-100),
  "communicationScore": (0-100),
  "summary": "2 sentence summary",
  "strengths": ["point 1", "point 2"],
  "weaknesses": ["point 1", "point 2"],
  "verdict": "Hire" or "No Hire" or "Review"
}`, transcript)
}

// BuildResumeParsePrompt asks for structured resume fields as strict JSON.
func (pb *PromptBuilder) BuildResumeParsePrompt(resumeText string) string {
	return fmt.Sprintf(`You are a resume parser. Extract structured information from the following resume text.

RESUME TEXT:
%s

Return ONLY valid JSON (no markdown, no code fences) in this exact format:
{
  "name": "candidate full name",
  "email": "email if found, else null",
  "phone": "phone if found, else null",
  "skills": {
    "languages": ["JavaScript", "Python", etc.],
    "frameworks": ["React", "Node.js", etc.],
    "tools": ["Git", "Docker", etc.],
    "databases": ["MongoDB", "PostgreSQL", etc.]
  },
  "experience": [
    {
      "company": "Company Name",
      "role": "Job Title",
      "duration": "Jan 2020 - Dec 2022",
      "description": "Brief description"
    }
  ],
  "education": [
    {
      "institution": "University Name",
      "degree": "Bachelor of Technology",
      "field": "Computer Science",
      "year": "2023"
    }
  ],
  "projects": [
    {
      "name": "Project Name",
      "description": "Brief description",
      "technologies": ["React", "Node.js"]
    }
  ],
  "summary": "2-3 sentence professional summary",
  "yearsOfExperience": 2.5
}

If any field is not found, use null or empty array. Be accurate and extract all relevant information.`, resumeText)
}

// StripCodeFences removes markdown code-fence markers an LLM may wrap around
// a JSON payload.
func StripCodeFences(text string) string {
	text = strings.ReplaceAll(text, "```json", "")
	text = strings.ReplaceAll(text, "```", "")
	return strings.TrimSpace(text)
}
