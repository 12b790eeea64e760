package utils

import (
	"fmt"
	"net/smtp"

	"STAYNEST_BACK-END/internal/config"
)

// EmailService handles email sending operations
type EmailService struct {
	config *config.EmailConfig
}

// NewEmailService creates a new email service instance
func NewEmailService(cfg *config.EmailConfig) *EmailService {
	return &EmailService{
		config: cfg,
	}
}

// SendBookingConfirmation sends a confirmation email to the guest
// after a booking is created.
func (e *EmailService) SendBookingConfirmation(to, listingTitle, checkIn, checkOut string, totalPrice float64) error {
	subject := "Booking Confirmation"
	body := fmt.Sprintf(`
Hello,

Your booking at %s has been received.

Check-in:  %s
Check-out: %s
Total:     %.2f

You can view or change the booking from your account.

Best regards,
Staynest Team
	`, listingTitle, checkIn, checkOut, totalPrice)

	return e.sendEmail(to, subject, body)
}

// sendEmail sends an email using SMTP
func (e *EmailService) sendEmail(to, subject, body string) error {
	// Check if credentials are set
	if e.config.SMTPUsername == "" || e.config.SMTPPassword == "" {
		return fmt.Errorf("email credentials not configured")
	}

	// Setup authentication
	auth := smtp.PlainAuth("", e.config.SMTPUsername, e.config.SMTPPassword, e.config.SMTPHost)

	// Compose message
	fromEmail := e.config.FromEmail
	if fromEmail == "" {
		fromEmail = e.config.SMTPUsername
	}

	message := []byte(fmt.Sprintf(
		"From: %s <%s>\r\n"+
			"To: %s\r\n"+
			"Subject: %s\r\n"+
			"\r\n"+
			"%s\r\n",
		e.config.FromName, fromEmail, to, subject, body))

	// Send email
	addr := fmt.Sprintf("%s:%s", e.config.SMTPHost, e.config.SMTPPort)
	return smtp.SendMail(addr, auth, fromEmail, []string{to}, message)
}
