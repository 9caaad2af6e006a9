// Package mailer sends notification mail over SMTP. All sends are
// best-effort: callers log failures and move on.
package mailer

import (
	"fmt"
	"net/smtp"
	"strings"

	"scheduler-service/pkg/config"
)

type Mailer struct {
	host     string
	port     string
	username string
	password string
	from     string
}

// New creates a mailer from the SMTP configuration.
func New(cfg *config.SMTPConfig) *Mailer {
	return &Mailer{
		host:     cfg.Host,
		port:     cfg.Port,
		username: cfg.Username,
		password: cfg.Password,
		from:     cfg.From,
	}
}

func (m *Mailer) send(to, subject, body string) error {
	addr := m.host + ":" + m.port
	auth := smtp.PlainAuth("", m.username, m.password, m.host)

	msg := strings.Join([]string{
		"From: " + m.from + " <" + m.username + ">",
		"To: " + to,
		"Subject: " + subject,
		"MIME-Version: 1.0",
		"Content-Type: text/html; charset=\"UTF-8\"",
		"",
		body,
	}, "\r\n")

	return smtp.SendMail(addr, auth, m.username, []string{to}, []byte(msg))
}

// SendWelcome greets a newly registered administrator.
func (m *Mailer) SendWelcome(to, name string) error {
	body := fmt.Sprintf(`
		<h2>Welcome to Employee Scheduler, %s!</h2>
		<p>Your account has been successfully created.</p>
		<p>You can now log in to the system and manage your schedule.</p>
		<p>Best regards,<br>Employee Scheduler Team</p>
	`, name)
	return m.send(to, "Welcome to Employee Scheduler", body)
}

// SendShiftReminder notifies an employee of an upcoming shift.
func (m *Mailer) SendShiftReminder(to, details string) error {
	body := fmt.Sprintf(`
		<h2>Shift Reminder</h2>
		<p>This is a reminder about your upcoming shift:</p>
		<p>%s</p>
		<p>Best regards,<br>Employee Scheduler Team</p>
	`, details)
	return m.send(to, "Shift Reminder - Employee Scheduler", body)
}

// SendScheduleUpdate notifies an employee that their schedule changed.
func (m *Mailer) SendScheduleUpdate(to, details string) error {
	body := fmt.Sprintf(`
		<h2>Schedule Update</h2>
		<p>Your schedule has been updated:</p>
		<p>%s</p>
		<p>Please check the system for the latest changes.</p>
		<p>Best regards,<br>Employee Scheduler Team</p>
	`, details)
	return m.send(to, "Schedule Updated - Employee Scheduler", body)
}
