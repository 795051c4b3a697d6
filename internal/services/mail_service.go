// services/mail_service.go
package services

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/base64"
	"fmt"
	"mime"
	"net"
	"net/smtp"
	"strings"
	"time"

	"github.com/krzysztofpiesio89/czystepomniki-app-backend/internal/config"
)

type Attachment struct {
	Filename    string
	ContentID   string
	ContentType string
	Data        []byte
}

type MailMessage struct {
	To          string
	CC          []string
	Subject     string
	HTMLBody    string
	TextBody    string
	Attachments []Attachment
}

// IMailService delivers a fully composed message. The interface exists
// so the workflow can be tested without an SMTP server.
type IMailService interface {
	Send(ctx context.Context, msg MailMessage) error
}

type smtpMailService struct {
	cfg config.SMTPConfig
}

func NewSMTPMailService(cfg config.SMTPConfig) IMailService {
	return &smtpMailService{cfg: cfg}
}

func (s *smtpMailService) Send(ctx context.Context, msg MailMessage) error {
	raw := s.buildMessage(msg)

	deadline := time.Now().Add(30 * time.Second)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}

	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)
	dialer := &net.Dialer{Timeout: 10 * time.Second, Deadline: deadline}

	var conn net.Conn
	var err error
	if s.cfg.UseSSL {
		// SMTPS, implicit TLS (usually port 465)
		conn, err = tls.DialWithDialer(dialer, "tcp", addr, s.tlsConfig())
	} else {
		conn, err = dialer.DialContext(ctx, "tcp", addr)
	}
	if err != nil {
		return err
	}
	defer conn.Close()

	// The dialer deadline covers connect only; the greeting read and
	// every SMTP command after it need one on the connection itself.
	if err = conn.SetDeadline(deadline); err != nil {
		return err
	}

	c, err := smtp.NewClient(conn, s.cfg.Host)
	if err != nil {
		return err
	}
	defer c.Quit()

	if !s.cfg.UseSSL {
		if ok, _ := c.Extension("STARTTLS"); ok {
			if err = c.StartTLS(s.tlsConfig()); err != nil {
				return err
			}
		} else if s.cfg.RequireTLS {
			return fmt.Errorf("server does not support STARTTLS and RequireTLS=true")
		}
	}

	if s.cfg.Username != "" {
		auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
		if err = c.Auth(auth); err != nil {
			return err
		}
	}

	if err = c.Mail(s.cfg.From); err != nil {
		return err
	}
	for _, rcpt := range append([]string{msg.To}, msg.CC...) {
		if err = c.Rcpt(rcpt); err != nil {
			return err
		}
	}

	w, err := c.Data()
	if err != nil {
		return err
	}
	if _, err = w.Write(raw); err != nil {
		return err
	}
	return w.Close()
}

func (s *smtpMailService) tlsConfig() *tls.Config {
	return &tls.Config{ServerName: s.cfg.Host, MinVersion: tls.VersionTLS12}
}

// buildMessage assembles a multipart/related message: an alternative
// part (plain text + HTML) followed by the inline image attachments.
func (s *smtpMailService) buildMessage(msg MailMessage) []byte {
	now := time.Now()
	relBoundary := fmt.Sprintf("rel_%d", now.UnixNano())
	altBoundary := fmt.Sprintf("alt_%d", now.UnixNano())

	var buf bytes.Buffer
	write := func(format string, a ...any) { fmt.Fprintf(&buf, format, a...) }

	write("From: %s\r\n", s.fromHeader())
	write("To: %s\r\n", msg.To)
	if len(msg.CC) > 0 {
		write("Cc: %s\r\n", strings.Join(msg.CC, ", "))
	}
	write("Subject: %s\r\n", encodeHeader(msg.Subject))
	write("Date: %s\r\n", now.Format(time.RFC1123Z))
	write("MIME-Version: 1.0\r\n")
	write("Content-Type: multipart/related; boundary=%q\r\n", relBoundary)
	write("\r\n")

	// Alternative body
	write("--%s\r\n", relBoundary)
	write("Content-Type: multipart/alternative; boundary=%q\r\n\r\n", altBoundary)

	write("--%s\r\n", altBoundary)
	write("Content-Type: text/plain; charset=UTF-8\r\n")
	write("Content-Transfer-Encoding: 8bit\r\n\r\n")
	write("%s\r\n\r\n", msg.TextBody)

	write("--%s\r\n", altBoundary)
	write("Content-Type: text/html; charset=UTF-8\r\n")
	write("Content-Transfer-Encoding: 8bit\r\n\r\n")
	write("%s\r\n\r\n", msg.HTMLBody)

	write("--%s--\r\n", altBoundary)

	// Inline attachments
	for _, att := range msg.Attachments {
		contentType := att.ContentType
		if contentType == "" {
			contentType = "image/jpeg"
		}
		write("--%s\r\n", relBoundary)
		write("Content-Type: %s; name=%q\r\n", contentType, att.Filename)
		write("Content-Transfer-Encoding: base64\r\n")
		write("Content-ID: <%s>\r\n", att.ContentID)
		write("Content-Disposition: inline; filename=%q\r\n\r\n", att.Filename)
		writeBase64(&buf, att.Data)
		write("\r\n")
	}

	write("--%s--\r\n", relBoundary)
	return buf.Bytes()
}

func (s *smtpMailService) fromHeader() string {
	name := strings.TrimSpace(s.cfg.FromName)
	if name == "" {
		return s.cfg.From
	}
	return fmt.Sprintf("%s <%s>", encodeHeader(name), s.cfg.From)
}

// encodeHeader applies RFC 2047 encoding when the value carries
// non-ASCII characters (Polish subjects do). mime.BEncoding splits
// long values across encoded-words to honor the 75-character cap.
func encodeHeader(v string) string {
	return mime.BEncoding.Encode("UTF-8", v)
}

// writeBase64 emits base64 wrapped at 76 columns per RFC 2045.
func writeBase64(buf *bytes.Buffer, data []byte) {
	encoded := base64.StdEncoding.EncodeToString(data)
	for len(encoded) > 76 {
		buf.WriteString(encoded[:76])
		buf.WriteString("\r\n")
		encoded = encoded[76:]
	}
	if len(encoded) > 0 {
		buf.WriteString(encoded)
		buf.WriteString("\r\n")
	}
}
