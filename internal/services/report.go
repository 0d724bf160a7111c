package services

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"

	"hireflow/interview-api/internal/models"
)

// ReportService renders the interview report PDF served by the export route
// and attached to the candidate's result email.
type ReportService interface {
	Render(interview *models.Interview) ([]byte, error)
}

type reportService struct{}

func NewReportService() ReportService {
	return &reportService{}
}

type rgb struct{ r, g, b int }

var (
	colorBrand  = rgb{37, 99, 235}
	colorMuted  = rgb{100, 116, 139}
	colorTitle  = rgb{30, 41, 59}
	colorBody   = rgb{71, 85, 105}
	colorGood   = rgb{22, 163, 74}
	colorMiddle = rgb{234, 179, 8}
	colorBad    = rgb{220, 38, 38}
)

func scoreColor(score int) rgb {
	switch {
	case score >= 70:
		return colorGood
	case score >= 50:
		return colorMiddle
	default:
		return colorBad
	}
}

func verdictColor(verdict models.Verdict) rgb {
	switch verdict {
	case models.VerdictHire:
		return colorGood
	case models.VerdictNoHire:
		return colorBad
	default:
		return colorMiddle
	}
}

// Render implements ReportService.
func (s *reportService) Render(interview *models.Interview) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(18, 18, 18)
	pdf.AddPage()

	// Header
	setColor(pdf, colorBrand)
	pdf.SetFont("Helvetica", "B", 24)
	pdf.CellFormat(0, 12, "HireFlow AI", "", 1, "C", false, 0, "")
	setColor(pdf, colorMuted)
	pdf.SetFont("Helvetica", "", 14)
	pdf.CellFormat(0, 8, "Technical Interview Report", "", 1, "C", false, 0, "")
	pdf.Ln(8)

	// Candidate information
	s.sectionTitle(pdf, "Candidate Information")
	setColor(pdf, colorBody)
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 6, fmt.Sprintf("Name: %s", interview.CandidateName), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Candidate ID: %s", interview.CandidateID), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Interview Date: %s", interview.Date.Format("January 2, 2006 15:04")), "", 1, "L", false, 0, "")
	pdf.Ln(8)

	feedback := interview.Feedback

	// Scores
	s.sectionTitle(pdf, "Performance Scores")
	s.scoreLine(pdf, "Technical Score:", feedback.TechnicalScore)
	s.scoreLine(pdf, "Communication Score:", feedback.CommunicationScore)

	setColor(pdf, colorBody)
	pdf.SetFont("Helvetica", "", 12)
	pdf.CellFormat(48, 8, "Final Verdict:", "", 0, "L", false, 0, "")
	setColor(pdf, verdictColor(feedback.Verdict))
	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(0, 8, string(feedback.Verdict), "", 1, "L", false, 0, "")
	pdf.Ln(8)

	if feedback.Summary != "" {
		s.sectionTitle(pdf, "Summary")
		setColor(pdf, colorBody)
		pdf.SetFont("Helvetica", "", 11)
		pdf.MultiCell(0, 6, feedback.Summary, "", "L", false)
		pdf.Ln(6)
	}

	s.bulletSection(pdf, "Strengths", feedback.Strengths, colorGood)
	s.bulletSection(pdf, "Areas for Improvement", feedback.Weaknesses, colorBad)

	// Transcript appendix
	if len(interview.Messages) > 0 {
		pdf.AddPage()
		s.sectionTitle(pdf, "Interview Transcript")
		pdf.SetFont("Helvetica", "", 10)
		for _, msg := range interview.Messages {
			setColor(pdf, colorTitle)
			pdf.SetFont("Helvetica", "B", 10)
			pdf.CellFormat(0, 5, string(msg.Role), "", 1, "L", false, 0, "")
			setColor(pdf, colorBody)
			pdf.SetFont("Helvetica", "", 10)
			pdf.MultiCell(0, 5, msg.Content, "", "L", false)
			pdf.Ln(3)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render report: %w", err)
	}

	return buf.Bytes(), nil
}

func (s *reportService) sectionTitle(pdf *fpdf.Fpdf, title string) {
	setColor(pdf, colorTitle)
	pdf.SetFont("Helvetica", "B", 15)
	pdf.CellFormat(0, 9, title, "", 1, "L", false, 0, "")
	pdf.Ln(1)
}

func (s *reportService) scoreLine(pdf *fpdf.Fpdf, label string, score int) {
	setColor(pdf, colorBody)
	pdf.SetFont("Helvetica", "", 12)
	pdf.CellFormat(48, 8, label, "", 0, "L", false, 0, "")
	setColor(pdf, scoreColor(score))
	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(0, 8, fmt.Sprintf("%d/100", score), "", 1, "L", false, 0, "")
}

func (s *reportService) bulletSection(pdf *fpdf.Fpdf, title string, items []string, color rgb) {
	if len(items) == 0 {
		return
	}

	s.sectionTitle(pdf, title)
	pdf.SetFont("Helvetica", "", 11)
	for _, item := range items {
		setColor(pdf, color)
		pdf.CellFormat(6, 6, "-", "", 0, "L", false, 0, "")
		setColor(pdf, colorBody)
		pdf.MultiCell(0, 6, item, "", "L", false)
	}
	pdf.Ln(6)
}

func setColor(pdf *fpdf.Fpdf, c rgb) {
	pdf.SetTextColor(c.r, c.g, c.b)
}
