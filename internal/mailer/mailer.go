package mailer

import (
	"fmt"
	"net/smtp"
	"time"

	"airsoft-manager-backend/internal/config"

	"github.com/sirupsen/logrus"
)

// Mailer sends the four notification email kinds over SMTP. Callers treat
// every send as fire and forget: a failure must be logged by the caller and
// never block the action that triggered it.
type Mailer struct {
	host     string
	port     string
	username string
	password string
	from     string
	appURL   string
}

func New(cfg *config.Config) *Mailer {
	return &Mailer{
		host:     cfg.SMTPHost,
		port:     cfg.SMTPPort,
		username: cfg.SMTPUser,
		password: cfg.SMTPPassword,
		from:     cfg.EmailFrom,
		appURL:   cfg.AppURL,
	}
}

func (m *Mailer) send(to, subject, htmlBody string) error {
	msg := fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/html; charset=\"UTF-8\"\r\n\r\n%s",
		m.from, to, subject, htmlBody,
	)

	addr := m.host + ":" + m.port
	auth := smtp.PlainAuth("", m.username, m.password, m.host)

	if err := smtp.SendMail(addr, auth, m.from, []string{to}, []byte(msg)); err != nil {
		return fmt.Errorf("send email to %s: %w", to, err)
	}

	logrus.WithFields(logrus.Fields{"to": to, "subject": subject}).Info("email sent")
	return nil
}

// SendConfirmationEmail asks a new registrant to confirm via the emailed
// link; the same URL is what the registration's QR code encodes.
func (m *Mailer) SendConfirmationEmail(email, firstName string, gameDate time.Time, registrationID string) error {
	subject := "Registration received - Airsoft game day"
	confirmURL := fmt.Sprintf("%s/confirm/%s", m.appURL, registrationID)

	body := wrap(fmt.Sprintf(`
		<h1>Registration received</h1>
		<p>Hello %s,</p>
		<p>Thanks for signing up for the game day!</p>
		<div class="info"><strong>Game date:</strong> %s</div>
		<p>To finalize your registration, please click the button below
		(or scan the QR code shown on your confirmation page):</p>
		<a href="%s" class="button">Confirm my registration</a>
		<p>We will send you a reminder a couple of days before the game.</p>
		<p>See you on the field!</p>`,
		firstName, gameDate.Format("02/01/2006"), confirmURL))

	return m.send(email, subject, body)
}

func (m *Mailer) SendApprovalEmail(email, firstName string, gameDate time.Time) error {
	subject := "Registration approved - Airsoft game day"

	body := wrap(fmt.Sprintf(`
		<h1>Registration approved</h1>
		<p>Hello %s,</p>
		<p>Good news: your registration for the game on
		<strong>%s</strong> has been approved.</p>
		<p>See you on the field!</p>`,
		firstName, gameDate.Format("02/01/2006")))

	return m.send(email, subject, body)
}

func (m *Mailer) SendRejectionEmail(email, firstName string, gameDate time.Time, reason string) error {
	subject := "Registration declined - Airsoft game day"

	reasonBlock := ""
	if reason != "" {
		reasonBlock = fmt.Sprintf(`<div class="info"><strong>Reason:</strong> %s</div>`, reason)
	}

	body := wrap(fmt.Sprintf(`
		<h1>Registration declined</h1>
		<p>Hello %s,</p>
		<p>Unfortunately your registration for the game on
		<strong>%s</strong> could not be accepted.</p>
		%s
		<p>Feel free to sign up for a future game day.</p>`,
		firstName, gameDate.Format("02/01/2006"), reasonBlock))

	return m.send(email, subject, body)
}

func (m *Mailer) SendReminderEmail(email, firstName string, gameDate time.Time) error {
	subject := "Reminder - Airsoft game day"

	body := wrap(fmt.Sprintf(`
		<h1>Game day reminder</h1>
		<p>Hello %s,</p>
		<p>Quick reminder: the game you are registered for takes place on
		<strong>%s</strong>.</p>
		<p>Do not forget your gear and your eye protection.</p>
		<p>See you there!</p>`,
		firstName, gameDate.Format("02/01/2006")))

	return m.send(email, subject, body)
}

// wrap applies the shared dark-theme layout used by all four templates.
func wrap(content string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
<style>
	body { font-family: Arial, sans-serif; background-color: #1a1a1a; color: #e0e0e0; padding: 20px; }
	.container { max-width: 600px; margin: 0 auto; background-color: #2d2d2d; padding: 30px; border-radius: 10px; }
	h1 { color: #4CAF50; border-bottom: 2px solid #4CAF50; padding-bottom: 10px; }
	.info { background-color: #3a3a3a; padding: 15px; border-left: 4px solid #4CAF50; margin: 20px 0; }
	.button { display: inline-block; background-color: #4CAF50; color: white; padding: 12px 30px; text-decoration: none; border-radius: 5px; margin: 20px 0; }
	.footer { margin-top: 30px; font-size: 12px; color: #888; text-align: center; }
</style>
</head>
<body>
<div class="container">
%s
<div class="footer"><p>If you did not expect this email, you can safely ignore it.</p></div>
</div>
</body>
</html>`, content)
}
