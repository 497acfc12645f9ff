package utils

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/glowmedspa/medspa-backend/config"
)

func SendEmail(cfg config.Settings, to, subject, body string) error {
	if cfg.SMTPHost == "" {
		return fmt.Errorf("SMTP is not configured")
	}

	m := gomail.NewMessage()
	m.SetHeader("From", cfg.EmailUser)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	d := gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.EmailUser, cfg.EmailPass)

	return d.DialAndSend(m)
}
