package usecase

import (
	"context"
	"fmt"

	"github.com/m-mizutani/goerr/v2"
	"github.com/nexus-lab/frontdesk/pkg/domain/model"
	"github.com/nexus-lab/frontdesk/pkg/domain/types"
	"github.com/nexus-lab/frontdesk/pkg/store"
)

// DefaultEmailTone is used when a draft request does not specify one.
const DefaultEmailTone = "professional"

// outboundSender is the sender name recorded on system-sent emails.
const outboundSender = "FrontDesk System"

// DraftEmailReply asks the model for a reply draft to an inbound email.
func (uc *UseCases) DraftEmailReply(ctx context.Context, originalContent, tone string) (string, error) {
	if originalContent == "" {
		return "", goerr.New("original email content is required")
	}
	if tone == "" {
		tone = DefaultEmailTone
	}

	prompt := fmt.Sprintf("Draft a %s email reply to: %q", tone, originalContent)
	reply, err := uc.model.Invoke(ctx, prompt, nil, "You are an AI assistant for a business.")
	if err != nil {
		return "", goerr.Wrap(err, "failed to draft email reply")
	}
	if reply.Text == "" {
		return noResponseMessage, nil
	}
	return reply.Text, nil
}

// SendOutboundEmail records a system-sent email in the unified inbox. The
// preview is the first part of the content; sent mail is stored already read.
func (uc *UseCases) SendOutboundEmail(ctx context.Context, toEmail, subject, content string) (*model.EmailMessage, error) {
	if toEmail == "" {
		return nil, goerr.New("recipient email is required")
	}
	if subject == "" {
		return nil, goerr.New("subject is required")
	}

	preview := content
	if runes := []rune(preview); len(runes) > 50 {
		preview = string(runes[:50]) + "..."
	}

	msg := model.EmailMessage{
		ID:      types.NewRecordID(),
		Sender:  outboundSender,
		Email:   toEmail,
		Subject: subject,
		Preview: preview,
		Content: content,
		Date:    "Just now",
		Read:    true,
	}
	if err := store.Append(ctx, uc.store, types.CollectionEmails, msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
