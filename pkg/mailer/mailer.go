package mailer

import (
	"github.com/jklassic/logistics/pkg/utils"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

// Message is one outbound notification mail
type Message struct {
	To      []string
	Subject string
	HTML    string
}

// Mailer sends notification mail. Delivery is best-effort: callers dispatch
// in the background and only log failures.
type Mailer interface {
	Send(msg *Message) error
}

type smtpMailer struct {
	dialer *gomail.Dialer
	from   string
	bcc    string
	log    *zap.Logger
}

func NewSMTPMailer(config utils.EmailConfig, log *zap.Logger) Mailer {
	return &smtpMailer{
		dialer: gomail.NewDialer(config.Host, config.Port, config.User, config.Password),
		from:   config.From,
		bcc:    config.BCC,
		log:    log,
	}
}

func (m *smtpMailer) Send(msg *Message) error {
	mail := gomail.NewMessage()
	mail.SetHeader("From", m.from)
	mail.SetHeader("To", msg.To...)
	if m.bcc != "" {
		mail.SetHeader("Bcc", m.bcc)
	}
	mail.SetHeader("Subject", msg.Subject)
	mail.SetBody("text/html", msg.HTML)

	if err := m.dialer.DialAndSend(mail); err != nil {
		m.log.Error("Failed to send mail",
			zap.Error(err),
			zap.Strings("to", msg.To),
			zap.String("subject", msg.Subject),
		)
		return err
	}

	return nil
}
