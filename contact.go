package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/smtp"
	"net/url"
	"strings"
	"time"
)

// Delivery channels, also the values counted on the admin dashboard.
const (
	ChannelFormspree = "formspree"
	ChannelSMTP      = "smtp"
	ChannelMailto    = "mailto"
)

type ContactForm struct {
	Name    string `form:"fullName" binding:"required,max=200"`
	Email   string `form:"email" binding:"required,email,max=320"`
	Message string `form:"message" binding:"required,max=5000"`
}

type sendMailFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

// contactSender delivers a submission over the first configured channel:
// Formspree, then SMTP. With neither configured the visitor's own mail client
// is used through a mailto link.
type contactSender struct {
	formspreeURL string
	smtp         SMTPConfig
	mailto       string
	client       *http.Client
	sendMail     sendMailFunc
}

func newContactSender(cfg Config) *contactSender {
	s := &contactSender{
		smtp:     cfg.SMTP,
		mailto:   cfg.ContactEmail,
		client:   &http.Client{Timeout: 10 * time.Second},
		sendMail: smtp.SendMail,
	}
	if cfg.FormspreeID != "" {
		s.formspreeURL = strings.TrimSuffix(cfg.FormspreeEndpoint, "/") + "/" + url.PathEscape(cfg.FormspreeID)
	}
	return s
}

// Channel names the channel Deliver will use.
func (s *contactSender) Channel() string {
	switch {
	case s.formspreeURL != "":
		return ChannelFormspree
	case s.smtp.Configured():
		return ChannelSMTP
	}
	return ChannelMailto
}

// Deliver sends the form. For the mailto channel nothing is sent and the
// returned link is where the visitor should be redirected.
func (s *contactSender) Deliver(ctx context.Context, form ContactForm) (channel, link string, err error) {
	channel = s.Channel()
	switch channel {
	case ChannelFormspree:
		err = s.postFormspree(ctx, form)
	case ChannelSMTP:
		err = s.sendSMTP(form)
	default:
		link = MailtoLink(s.mailto, form)
	}
	return channel, link, err
}

func (s *contactSender) postFormspree(ctx context.Context, form ContactForm) error {
	values := url.Values{
		"name":    {form.Name},
		"email":   {form.Email},
		"message": {form.Message},
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.formspreeURL, strings.NewReader(values.Encode()))
	if err != nil {
		return fmt.Errorf("build formspree request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("post formspree: %w", err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, io.LimitReader(resp.Body, 1<<16))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("formspree answered %s", resp.Status)
	}
	return nil
}

func (s *contactSender) sendSMTP(form ContactForm) error {
	subject := fmt.Sprintf("Portfolio Contact: %s", form.Name)
	body := fmt.Sprintf(`
New contact form submission from your portfolio:

Name: %s
Email: %s
Message:
%s

---
Sent from your portfolio contact form
`, form.Name, form.Email, form.Message)

	msg := []byte("To: " + s.smtp.To + "\r\n" +
		"Subject: " + headerSafe(subject) + "\r\n" +
		"From: " + s.smtp.User + "\r\n" +
		"Reply-To: " + headerSafe(form.Email) + "\r\n" +
		"\r\n" +
		body + "\r\n")

	auth := smtp.PlainAuth("", s.smtp.User, s.smtp.Pass, s.smtp.Host)
	if err := s.sendMail(s.smtp.Host+":"+s.smtp.Port, auth, s.smtp.User, []string{s.smtp.To}, msg); err != nil {
		return fmt.Errorf("send mail: %w", err)
	}
	log.Printf("Email sent successfully from %s", form.Name)
	return nil
}

// headerSafe strips line breaks so form input cannot inject headers.
func headerSafe(s string) string {
	return strings.NewReplacer("\r", " ", "\n", " ").Replace(s)
}

// MailtoLink builds a mailto: URL prefilled with the submission.
func MailtoLink(to string, form ContactForm) string {
	subject := "Contact from " + form.Name
	body := "Name: " + form.Name + "\nEmail: " + form.Email + "\n\nMessage:\n" + form.Message
	return "mailto:" + to + "?subject=" + encodeURIComponent(subject) + "&body=" + encodeURIComponent(body)
}

// encodeURIComponent escapes s for a URI component; spaces become %20 rather
// than the '+' of form encoding, which mail clients would show literally.
func encodeURIComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
