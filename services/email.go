package services

import (
	"fmt"
	"log"
	"strings"

	"legal_case_api_go/config"

	"github.com/resend/resend-go/v2"
)

// Email represents an email message
type Email struct {
	To       []string
	Subject  string
	TextBody string
}

// SendEmail delivers an email via Resend. In test mode (the default) the
// message is logged to the console instead of sent.
func SendEmail(cfg *config.Config, email *Email) error {
	if cfg.EmailTestMode {
		logEmailToConsole(email)
		return nil
	}

	if cfg.ResendAPIKey == "" {
		return fmt.Errorf("RESEND_API_KEY not configured")
	}

	client := resend.NewClient(cfg.ResendAPIKey)

	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("%s <%s>", cfg.EmailFromName, cfg.EmailFrom),
		To:      email.To,
		Subject: email.Subject,
		Text:    email.TextBody,
	}

	sent, err := client.Emails.Send(params)
	if err != nil {
		return fmt.Errorf("failed to send email via Resend: %w", err)
	}

	log.Printf("Email sent successfully via Resend (ID: %s) to: %v", sent.Id, email.To)
	return nil
}

// DeadlineReminderData carries the fields rendered into a reminder email
type DeadlineReminderData struct {
	LawyerName  string
	CaseNumber  string
	Description string
	DueDate     string
	Priority    string
}

// BuildDeadlineReminderEmail creates the reminder sent to a case's lawyer
func BuildDeadlineReminderEmail(toEmail string, data DeadlineReminderData) *Email {
	body := fmt.Sprintf(
		"Hello %s,\n\nThe following deadline on case %s is coming up:\n\n"+
			"  %s\n  Due: %s\n  Priority: %s\n\n"+
			"This is an automated reminder.\n",
		data.LawyerName, data.CaseNumber, data.Description, data.DueDate, data.Priority,
	)
	return &Email{
		To:       []string{toEmail},
		Subject:  fmt.Sprintf("Deadline reminder: %s (%s)", data.Description, data.CaseNumber),
		TextBody: body,
	}
}

func logEmailToConsole(email *Email) {
	log.Printf("[EMAIL TEST MODE] To: %s | Subject: %s", strings.Join(email.To, ", "), email.Subject)
	log.Printf("[EMAIL TEST MODE] Body:\n%s", email.TextBody)
}
