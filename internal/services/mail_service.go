package services

import (
	"fmt"
	"net/url"
	"strings"

	"gopkg.in/gomail.v2"
)

type IMailService interface {
	SendMailToResetPassword(to, token string) error
}

// SMTPConfig holds SMTP plus branding config.
type SMTPConfig struct {
	Host     string // e.g. "smtp.gmail.com"
	Port     int    // e.g. 587
	Username string
	Password string
	From     string // e.g. "no-reply@yourapp.com"

	AppName    string
	AppBaseURL string // e.g. "https://yourapp.com"
}

type smtpMailService struct {
	cfg SMTPConfig
}

func NewSMTPMailService(cfg SMTPConfig) IMailService {
	return &smtpMailService{cfg: cfg}
}

func (s *smtpMailService) SendMailToResetPassword(to, token string) error {
	link := fmt.Sprintf("%s/reset-password?token=%s",
		strings.TrimRight(s.cfg.AppBaseURL, "/"), url.QueryEscape(token))

	m := gomail.NewMessage()
	m.SetHeader("From", s.cfg.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", "Reset your password")
	m.SetBody("text/plain", fmt.Sprintf(
		"We received a request to reset your %s password.\n\n"+
			"Open the link below to choose a new one. The link is valid for 15 minutes.\n\n%s\n\n"+
			"If you did not request this, you can safely ignore this email.",
		s.cfg.AppName, link))

	d := gomail.NewDialer(s.cfg.Host, s.cfg.Port, s.cfg.Username, s.cfg.Password)
	return d.DialAndSend(m)
}
