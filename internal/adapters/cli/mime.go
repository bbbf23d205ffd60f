package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/emersion/go-message"
	_ "github.com/emersion/go-message/charset"
	"github.com/emersion/go-message/mail"
	"github.com/mikey/safe-inbox/internal/core"
)

// ErrNoText is returned for messages without any text/plain or text/html part
var ErrNoText = errors.New("no text content found in message")

// ParseMessage reads an RFC 5322 message into a draft payload. The plain text
// parts are preferred; an HTML body is returned as-is when it is the only
// text, and is stripped before it reaches a model.
func ParseMessage(r io.Reader) (core.EmailPayload, error) {
	mr, err := mail.CreateReader(r)
	if err != nil && !message.IsUnknownCharset(err) {
		return core.EmailPayload{}, fmt.Errorf("failed to parse email: %w", err)
	}
	defer mr.Close()

	var payload core.EmailPayload
	if from, err := mr.Header.AddressList("From"); err == nil && len(from) > 0 {
		payload.Sender = from[0].Name
		payload.SenderEmail = from[0].Address
	} else {
		payload.SenderEmail = strings.TrimSpace(mr.Header.Get("From"))
	}
	if subject, err := mr.Header.Subject(); err == nil {
		payload.Subject = subject
	} else {
		payload.Subject = mr.Header.Get("Subject")
	}

	body, err := extractText(mr)
	if err != nil {
		return core.EmailPayload{}, err
	}
	payload.Body = body
	return payload, nil
}

// extractText concatenates the inline text/plain parts, falling back to the
// first text/html part
func extractText(mr *mail.Reader) (string, error) {
	var plain strings.Builder
	var html string

	for {
		part, err := mr.NextPart()
		if err == io.EOF {
			break
		}
		if err != nil && !message.IsUnknownCharset(err) {
			if plain.Len() > 0 || html != "" {
				break
			}
			return "", fmt.Errorf("failed to read message part: %w", err)
		}

		inline, ok := part.Header.(*mail.InlineHeader)
		if !ok {
			// Attachment
			continue
		}
		contentType, _, _ := inline.ContentType()
		if contentType == "" {
			contentType = "text/plain"
		}

		switch contentType {
		case "text/plain":
			b, err := io.ReadAll(part.Body)
			if err != nil {
				continue
			}
			if plain.Len() > 0 {
				plain.WriteString("\n")
			}
			plain.Write(b)
		case "text/html":
			if html != "" {
				continue
			}
			b, err := io.ReadAll(part.Body)
			if err != nil {
				continue
			}
			html = string(b)
		}
	}

	if plain.Len() > 0 {
		return plain.String(), nil
	}
	if html != "" {
		return html, nil
	}
	return "", ErrNoText
}
