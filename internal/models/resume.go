package models

// ParsedResume holds the structured fields extracted from a resume by the
// LLM. Extraction is best-effort; any of these may be empty.
type ParsedResume struct {
	Name              string             `json:"name"`
	Email             string             `json:"email"`
	Phone             string             `json:"phone"`
	Skills            ResumeSkills       `json:"skills"`
	Experience        []ResumeExperience `json:"experience"`
	Education         []ResumeEducation  `json:"education"`
	Projects          []ResumeProject    `json:"projects"`
	Summary           string             `json:"summary"`
	YearsOfExperience float64            `json:"yearsOfExperience"`
}

type ResumeSkills struct {
	Languages  []string `json:"languages"`
	Frameworks []string `json:"frameworks"`
	Tools      []string `json:"tools"`
	Databases  []string `json:"databases"`
}

// Flatten combines all skill categories into a single list.
func (s ResumeSkills) Flatten() []string {
	skills := make([]string, 0, len(s.Languages)+len(s.Frameworks)+len(s.Tools)+len(s.Databases))
	skills = append(skills, s.Languages...)
	skills = append(skills, s.Frameworks...)
	skills = append(skills, s.Tools...)
	skills = append(skills, s.Databases...)
	return skills
}

type ResumeExperience struct {
	Company     string `json:"company"`
	Role        string `json:"role"`
	Duration    string `json:"duration"`
	Description string `json:"description"`
}

type ResumeEducation struct {
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	Field       string `json:"field"`
	Year        string `json:"year"`
}

type ResumeProject struct {
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
}
