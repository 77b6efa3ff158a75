package utils

import (
	"log"
	"os"
	"strconv"

	"gopkg.in/gomail.v2"
)

// SendResetCodeEmail delivers a password reset code to the given address.
// SMTP settings come from SMTP_HOST, SMTP_PORT, SMTP_USER and SMTP_PASS.
func SendResetCodeEmail(email, code string) error {
	fromEmail := os.Getenv("SMTP_USER")

	m := gomail.NewMessage()
	m.SetHeader("From", fromEmail)
	m.SetHeader("To", email)
	m.SetHeader("Subject", "Password Reset Code")

	m.SetBody("text/plain", "Your password reset code is: "+code)

	htmlBody := `
	<!DOCTYPE html>
	<html>
	<body>
		<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 20px auto; padding: 20px;">
			<h1>Password Reset Code</h1>
			<p>Your password reset code is:</p>
			<p style="font-weight: bold; color: #007bff;">` + code + `</p>
			<p>If you did not request a password reset, please ignore this email.</p>
		</div>
	</body>
	</html>
	`
	m.AddAlternative("text/html", htmlBody)

	smtpHost := os.Getenv("SMTP_HOST")
	smtpPortStr := os.Getenv("SMTP_PORT")
	smtpPort, err := strconv.Atoi(smtpPortStr)
	if err != nil {
		log.Printf("Invalid SMTP_PORT value %q, defaulting to 587", smtpPortStr)
		smtpPort = 587
	}

	d := gomail.NewDialer(smtpHost, smtpPort, fromEmail, os.Getenv("SMTP_PASS"))
	if err := d.DialAndSend(m); err != nil {
		log.Printf("Failed to send reset code email: %v", err)
		return err
	}
	return nil
}
