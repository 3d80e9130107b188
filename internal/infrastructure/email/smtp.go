package email

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

type SMTPConfig struct {
	Host         string
	Port         int
	Username     string
	Password     string
	FromAddress  string
	FromName     string
	SupportInbox string
}

// SMTPEmailService notifies the support inbox when a ticket escalates
// to on-site help.
type SMTPEmailService struct {
	config SMTPConfig
	dialer *gomail.Dialer
}

func NewSMTPEmailService(config SMTPConfig) *SMTPEmailService {
	dialer := gomail.NewDialer(config.Host, config.Port, config.Username, config.Password)

	return &SMTPEmailService{
		config: config,
		dialer: dialer,
	}
}

func (s *SMTPEmailService) SendOnSiteHelpRequested(ticketID uint, submitterName, severity string) error {
	subject := fmt.Sprintf("On-site help requested for ticket #%d", ticketID)
	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>On-site Help Requested</h2>
			<p>Ticket <strong>#%d</strong> has been flagged for in-person assistance.</p>
			<p>Submitter: %s</p>
			<p>Severity: %s</p>
		</body>
		</html>
	`, ticketID, submitterName, severity)

	plainBody := fmt.Sprintf(`
On-site Help Requested

Ticket #%d has been flagged for in-person assistance.

Submitter: %s
Severity: %s
	`, ticketID, submitterName, severity)

	return s.sendEmail(s.config.SupportInbox, subject, htmlBody, plainBody)
}

func (s *SMTPEmailService) sendEmail(to, subject, htmlBody, plainBody string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.config.FromAddress)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", plainBody)
	m.AddAlternative("text/html", htmlBody)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
