package services

import (
	"context"
	"io"
	"net"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krzysztofpiesio89/czystepomniki-app-backend/internal/config"
)

func newTestMailService() *smtpMailService {
	return &smtpMailService{cfg: config.SMTPConfig{
		Host:     "smtp.example.com",
		Port:     587,
		From:     "biuro@czystepomniki.pl",
		FromName: "CzystePomniki",
	}}
}

func TestBuildMessageHeaders(t *testing.T) {
	t.Parallel()
	svc := newTestMailService()

	raw := string(svc.buildMessage(MailMessage{
		To:       "anna@example.com",
		CC:       []string{"biuro@czystepomniki.pl", "archiwum@czystepomniki.pl"},
		Subject:  "Podsumowanie prac - Anna",
		HTMLBody: "<p>hello</p>",
		TextBody: "hello",
	}))

	assert.Contains(t, raw, "From: CzystePomniki <biuro@czystepomniki.pl>\r\n")
	assert.Contains(t, raw, "To: anna@example.com\r\n")
	assert.Contains(t, raw, "Cc: biuro@czystepomniki.pl, archiwum@czystepomniki.pl\r\n")
	assert.Contains(t, raw, "Subject: Podsumowanie prac - Anna\r\n")
	assert.Contains(t, raw, "MIME-Version: 1.0\r\n")
	assert.Contains(t, raw, "Content-Type: multipart/related;")
	assert.Contains(t, raw, "Content-Type: multipart/alternative;")
	assert.Contains(t, raw, "Content-Type: text/plain; charset=UTF-8")
	assert.Contains(t, raw, "Content-Type: text/html; charset=UTF-8")
	assert.Contains(t, raw, "<p>hello</p>")
}

func TestBuildMessageInlineAttachments(t *testing.T) {
	t.Parallel()
	svc := newTestMailService()

	raw := string(svc.buildMessage(MailMessage{
		To:       "anna@example.com",
		Subject:  "x",
		HTMLBody: "<img src=\"cid:photo-before-0\">",
		Attachments: []Attachment{
			{Filename: "przed-1.jpg", ContentID: "photo-before-0", ContentType: "image/jpeg", Data: []byte("fakejpeg")},
			{Filename: "po-1.jpg", ContentID: "photo-after-0", Data: []byte("fakejpeg")},
		},
	}))

	assert.Contains(t, raw, "Content-ID: <photo-before-0>\r\n")
	assert.Contains(t, raw, "Content-ID: <photo-after-0>\r\n")
	assert.Contains(t, raw, `Content-Disposition: inline; filename="przed-1.jpg"`)
	// Missing content type falls back to JPEG.
	assert.Contains(t, raw, `Content-Type: image/jpeg; name="po-1.jpg"`)
	assert.Contains(t, raw, "Content-Transfer-Encoding: base64")
}

func TestBuildMessageBase64LineLength(t *testing.T) {
	t.Parallel()
	svc := newTestMailService()

	raw := string(svc.buildMessage(MailMessage{
		To:       "anna@example.com",
		Subject:  "x",
		HTMLBody: "x",
		Attachments: []Attachment{
			{Filename: "przed-1.jpg", ContentID: "photo-before-0", ContentType: "image/jpeg", Data: make([]byte, 4096)},
		},
	}))

	inBody := false
	for _, line := range strings.Split(raw, "\r\n") {
		if strings.HasPrefix(line, "Content-Disposition: inline") {
			inBody = true
			continue
		}
		if inBody && strings.HasPrefix(line, "--") {
			break
		}
		if inBody {
			assert.LessOrEqual(t, len(line), 76)
		}
	}
}

func TestSendTimesOutOnSilentServer(t *testing.T) {
	t.Parallel()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	// Accept the connection but never send the SMTP greeting.
	go func() {
		conn, err := ln.Accept()
		if err != nil {
			return
		}
		defer conn.Close()
		io.Copy(io.Discard, conn)
	}()

	svc := NewSMTPMailService(config.SMTPConfig{
		Host: "127.0.0.1",
		Port: ln.Addr().(*net.TCPAddr).Port,
		From: "biuro@czystepomniki.pl",
	})

	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()

	start := time.Now()
	err = svc.Send(ctx, MailMessage{To: "anna@example.com", Subject: "x", HTMLBody: "x", TextBody: "x"})
	elapsed := time.Since(start)

	require.Error(t, err)
	assert.Less(t, elapsed, 3*time.Second, "the context deadline must bound the whole exchange, not just the dial")
}

func TestEncodeHeader(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Hello", encodeHeader("Hello"))

	encoded := encodeHeader("Podsumowanie prac - Grażyna")
	require.True(t, strings.HasPrefix(encoded, "=?UTF-8?B?"))
	require.True(t, strings.HasSuffix(encoded, "?="))
}

func TestEncodeHeaderSplitsLongSubjects(t *testing.T) {
	t.Parallel()

	long := "Podsumowanie prac - " + strings.Repeat("Grażyna Brzęczyszczykiewicz ", 4)
	encoded := encodeHeader(long)

	words := strings.Split(encoded, " ")
	require.Greater(t, len(words), 1, "long non-ASCII subjects must split into multiple encoded-words")
	for _, word := range words {
		assert.LessOrEqual(t, len(word), 75, word)
		assert.True(t, strings.HasPrefix(word, "=?UTF-8?B?"), word)
		assert.True(t, strings.HasSuffix(word, "?="), word)
	}
}

func TestFromHeaderWithoutName(t *testing.T) {
	t.Parallel()
	svc := &smtpMailService{cfg: config.SMTPConfig{From: "biuro@czystepomniki.pl"}}
	assert.Equal(t, "biuro@czystepomniki.pl", svc.fromHeader())
}
