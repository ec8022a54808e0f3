package services

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

type EmailService interface {
	SendWelcomeEmail(email, name string) error
}

type emailService struct {
	dialer *gomail.Dialer
	from   string
}

func NewEmailService(smtpHost string, smtpPort int, smtpUser, smtpPassword, fromEmail string) EmailService {
	return &emailService{
		dialer: gomail.NewDialer(smtpHost, smtpPort, smtpUser, smtpPassword),
		from:   fromEmail,
	}
}

func (s *emailService) SendWelcomeEmail(email, name string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", email)
	m.SetHeader("Subject", "Welcome to WeDo!")

	body := fmt.Sprintf(`
		<h2>Welcome to WeDo, %s!</h2>
		<p>Your account is ready. Add your first task, invite friends and keep your streak going.</p>
		<p>The WeDo Team</p>
	`, name)
	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send welcome email: %w", err)
	}
	return nil
}
