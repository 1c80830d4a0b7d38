package utils

import (
	"fmt"
	"log"
	"net/smtp"
	"os"
	"strings"
)

// SendBookingConfirmationEmail mails the guest their confirmation code.
// Without SMTP configuration it falls back to a mock send (log only) so dev
// setups keep working.
func SendBookingConfirmationEmail(
	recipientEmail,
	guestName,
	hotelName,
	roomType,
	checkInDate,
	checkOutDate,
	confirmationCode string,
) error {

	smtpHost := os.Getenv("SMTP_HOST")
	smtpPort := os.Getenv("SMTP_PORT")
	smtpUser := os.Getenv("SMTP_USERNAME")
	smtpPass := os.Getenv("SMTP_PASSWORD")
	fromName := EnvOrDefault("SMTP_FROM_NAME", hotelName)

	if smtpUser == "" || smtpPass == "" || smtpHost == "" || smtpPort == "" {
		log.Printf("[MOCK EMAIL] to:%s code:%s stay:%s->%s room:%s",
			recipientEmail, confirmationCode, checkInDate, checkOutDate, roomType)
		return nil
	}

	safe := func(s string) string {
		return strings.ReplaceAll(strings.TrimSpace(s), "\r\n", " ")
	}
	guestName = safe(guestName)
	hotelName = safe(hotelName)
	roomType = safe(roomType)
	confirmationCode = safe(confirmationCode)

	subject := fmt.Sprintf("Booking Confirmation — %s", hotelName)
	body := fmt.Sprintf(
		"Dear %s,\n\n"+
			"Thank you for booking with %s! Here are your booking details:\n\n"+
			"Confirmation Code: %s\n"+
			"Room Type: %s\n"+
			"Check-In: %s\n"+
			"Check-Out: %s\n\n"+
			"Please keep the confirmation code; you will need it at the front desk.\n\n"+
			"Best regards,\n%s",
		guestName, hotelName, confirmationCode, roomType, checkInDate, checkOutDate, fromName,
	)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("From: %s <%s>\r\n", fromName, smtpUser))
	sb.WriteString(fmt.Sprintf("To: %s\r\n", recipientEmail))
	sb.WriteString(fmt.Sprintf("Subject: %s\r\n", subject))
	sb.WriteString("MIME-Version: 1.0\r\n")
	sb.WriteString("Content-Type: text/plain; charset=utf-8\r\n\r\n")
	sb.WriteString(body + "\r\n")

	auth := smtp.PlainAuth("", smtpUser, smtpPass, smtpHost)
	addr := fmt.Sprintf("%s:%s", smtpHost, smtpPort)

	if err := smtp.SendMail(addr, auth, smtpUser, []string{recipientEmail}, []byte(sb.String())); err != nil {
		log.Printf("❌ Failed to send email to %s: %v", recipientEmail, err)
		return err
	}

	log.Printf("📨 Confirmation email sent to %s (code: %s)", recipientEmail, confirmationCode)
	return nil
}
