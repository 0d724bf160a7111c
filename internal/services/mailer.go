package services

import (
	"bytes"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/wneessen/go-mail"

	"hireflow/interview-api/internal/models"
)

// MailerService delivers interview results. When SMTP is not configured the
// messages are logged instead of sent, matching a development setup.
type MailerService interface {
	SendCandidateResult(to, candidateName string, feedback models.Feedback, pdfReport []byte) error
	SendHRNotification(candidateName string, feedback models.Feedback, interviewID string) error
}

type MailerConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
	HREmail  string
}

type mailerService struct {
	cfg MailerConfig
}

func NewMailerService(cfg MailerConfig) MailerService {
	if cfg.Host == "" {
		log.Println("⚠️  Email credentials not configured. Emails will be logged to console.")
	}
	return &mailerService{cfg: cfg}
}

// SendCandidateResult implements MailerService.
func (m *mailerService) SendCandidateResult(to, candidateName string, feedback models.Feedback, pdfReport []byte) error {
	subject := fmt.Sprintf("Interview Results - %s %s", feedback.Verdict, verdictEmoji(feedback.Verdict))
	html := candidateResultHTML(candidateName, feedback)

	msg := mail.NewMsg()
	if err := msg.From(m.cfg.From); err != nil {
		return fmt.Errorf("invalid sender address: %w", err)
	}
	if err := msg.To(to); err != nil {
		return fmt.Errorf("invalid recipient address: %w", err)
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextHTML, html)

	if pdfReport != nil {
		attachment := fmt.Sprintf("Interview_Report_%s.pdf", strings.ReplaceAll(candidateName, " ", "_"))
		if err := msg.AttachReader(attachment, bytes.NewReader(pdfReport)); err != nil {
			return fmt.Errorf("failed to attach report: %w", err)
		}
	}

	return m.deliver(msg, to, subject)
}

// SendHRNotification implements MailerService.
func (m *mailerService) SendHRNotification(candidateName string, feedback models.Feedback, interviewID string) error {
	subject := fmt.Sprintf("New Interview Completed - %s", candidateName)
	html := hrNotificationHTML(candidateName, feedback, interviewID)

	msg := mail.NewMsg()
	if err := msg.From(m.cfg.From); err != nil {
		return fmt.Errorf("invalid sender address: %w", err)
	}
	if err := msg.To(m.cfg.HREmail); err != nil {
		return fmt.Errorf("invalid HR address: %w", err)
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextHTML, html)

	return m.deliver(msg, m.cfg.HREmail, subject)
}

func (m *mailerService) deliver(msg *mail.Msg, to, subject string) error {
	if m.cfg.Host == "" {
		log.Printf("📧 Email preview (development mode): to=%s subject=%q\n", to, subject)
		return nil
	}

	client, err := mail.NewClient(m.cfg.Host,
		mail.WithPort(m.cfg.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(m.cfg.User),
		mail.WithPassword(m.cfg.Password),
		mail.WithTLSPortPolicy(mail.TLSOpportunistic),
	)
	if err != nil {
		return fmt.Errorf("failed to create mail client: %w", err)
	}

	if err := client.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send mail: %w", err)
	}

	return nil
}

func verdictEmoji(verdict models.Verdict) string {
	switch verdict {
	case models.VerdictHire:
		return "✅"
	case models.VerdictNoHire:
		return "❌"
	default:
		return "⏳"
	}
}

func verdictHexColor(verdict models.Verdict) string {
	switch verdict {
	case models.VerdictHire:
		return "#16a34a"
	case models.VerdictNoHire:
		return "#dc2626"
	default:
		return "#eab308"
	}
}

func candidateResultHTML(candidateName string, feedback models.Feedback) string {
	color := verdictHexColor(feedback.Verdict)

	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
  <div style="background: #2563eb; color: white; padding: 30px; border-radius: 10px 10px 0 0; text-align: center;">
    <h1>🎯 HireFlow AI</h1>
    <p>Technical Interview Results</p>
  </div>
  <div style="background: #f8fafc; padding: 30px; border-radius: 0 0 10px 10px;">
    <h2>Hi %s,</h2>
    <p>Thank you for completing your technical interview with HireFlow AI. Here are your results:</p>
    <div style="background: white; padding: 20px; border-radius: 8px; margin: 20px 0;">
      <h3>Performance Scores</h3>
      <p><strong>Technical Skills:</strong> %d/100</p>
      <p><strong>Communication:</strong> %d/100</p>
      <p><strong>Final Verdict:</strong> <span style="color: %s; font-weight: bold;">%s %s</span></p>
    </div>
    <div style="background: white; padding: 20px; border-radius: 8px; margin: 20px 0;">
      <h3>Summary</h3>
      <p>%s</p>
    </div>
    %s
    %s
    <p>A detailed PDF report is attached to this email for your records.</p>
    <p>Best regards,<br><strong>HireFlow AI Team</strong></p>
  </div>
  <div style="text-align: center; color: #64748b; font-size: 12px; margin-top: 30px;">
    <p>This is an automated email from HireFlow AI Interview Platform</p>
    <p>© %d HireFlow AI. All rights reserved.</p>
  </div>
</body>
</html>`,
		candidateName,
		feedback.TechnicalScore,
		feedback.CommunicationScore,
		color, verdictEmoji(feedback.Verdict), feedback.Verdict,
		feedback.Summary,
		bulletBlock("✅ Strengths", feedback.Strengths),
		bulletBlock("📈 Areas for Improvement", feedback.Weaknesses),
		time.Now().Year(),
	)
}

func hrNotificationHTML(candidateName string, feedback models.Feedback, interviewID string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
  <div style="background: #2563eb; color: white; padding: 20px; border-radius: 8px;">
    <h2>🔔 New Interview Completed</h2>
  </div>
  <div style="background: #f8fafc; padding: 20px; margin-top: 20px; border-radius: 8px;">
    <p><strong>Candidate:</strong> %s</p>
    <p><strong>Technical Score:</strong> %d/100</p>
    <p><strong>Communication Score:</strong> %d/100</p>
    <p><strong>Verdict:</strong> %s</p>
    <div style="background: #fef3c7; padding: 10px; border-left: 4px solid #f59e0b; margin: 15px 0;">
      <p><strong>Quick Summary:</strong> %s</p>
    </div>
    <p><strong>Interview ID:</strong> %s</p>
    <p>View full details in your HireFlow AI dashboard.</p>
  </div>
</body>
</html>`,
		candidateName,
		feedback.TechnicalScore,
		feedback.CommunicationScore,
		feedback.Verdict,
		feedback.Summary,
		interviewID,
	)
}

func bulletBlock(title string, items []string) string {
	if len(items) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(`<div style="background: white; padding: 20px; border-radius: 8px; margin: 20px 0;"><h3>`)
	b.WriteString(title)
	b.WriteString("</h3><ul>")
	for _, item := range items {
		b.WriteString("<li>")
		b.WriteString(item)
		b.WriteString("</li>")
	}
	b.WriteString("</ul></div>")
	return b.String()
}
