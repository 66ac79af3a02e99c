package service

import (
	"fmt"
	"log"

	"github.com/resend/resend-go/v2"
)

// EmailSender sends transactional mail. Implementations must be safe to call
// concurrently; senders are used best-effort and must not block grading.
type EmailSender interface {
	SendGradeNotification(to, studentName, activityTitle string, grade, maxGrade int, comment string) error
}

// NoopEmailSender logs instead of sending. Used when no API key is configured
// and in tests.
type NoopEmailSender struct{}

// SendGradeNotification logs the would-be notification and returns nil.
func (NoopEmailSender) SendGradeNotification(to, studentName, activityTitle string, grade, maxGrade int, comment string) error {
	log.Printf("[Email] (noop) grade notification to %s: %s scored %d/%d on %q", to, studentName, grade, maxGrade, activityTitle)
	return nil
}

// ResendEmailSender sends mail through the Resend API.
type ResendEmailSender struct {
	client *resend.Client
	from   string
}

// NewResendEmailSender creates a sender with the given API key and From address.
func NewResendEmailSender(apiKey, from string) *ResendEmailSender {
	return &ResendEmailSender{
		client: resend.NewClient(apiKey),
		from:   from,
	}
}

// SendGradeNotification emails a student that an activity was graded.
func (s *ResendEmailSender) SendGradeNotification(to, studentName, activityTitle string, grade, maxGrade int, comment string) error {
	html := fmt.Sprintf(
		"<p>Hi %s,</p><p>Your submission for <strong>%s</strong> has been graded: <strong>%d / %d</strong>.</p>",
		studentName, activityTitle, grade, maxGrade,
	)
	if comment != "" {
		html += fmt.Sprintf("<p>Teacher's comment: %s</p>", comment)
	}

	params := &resend.SendEmailRequest{
		From:    s.from,
		To:      []string{to},
		Subject: fmt.Sprintf("Your grade for %s", activityTitle),
		Html:    html,
	}
	if _, err := s.client.Emails.Send(params); err != nil {
		return fmt.Errorf("failed to send grade notification to %s: %w", to, err)
	}
	return nil
}
