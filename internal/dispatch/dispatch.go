// Copyright (c) 2026 OXONN Technologies <contact@oxonn-tech.com>
// All rights reserved. See LICENSE for details.

// Package dispatch delivers validated form submissions to external
// collaborators: transactional email for contact inquiries and an audience
// list for newsletter signups. Both collaborators are interfaces so
// handlers can run against fakes in tests and log-only fallbacks in
// environments without credentials.
package dispatch

import (
	"context"
	"log/slog"
)

// Email is one outbound message.
type Email struct {
	From    string
	To      []string
	ReplyTo string
	Subject string
	Text    string
}

// Mailer sends transactional email.
type Mailer interface {
	Send(ctx context.Context, email Email) error
}

// Audience registers addresses with a mailing list.
type Audience interface {
	Subscribe(ctx context.Context, email, source string) error
}

// LogMailer is the development fallback when no email provider is
// configured: it logs the payload and reports success.
type LogMailer struct{}

// Send logs the email instead of delivering it.
func (LogMailer) Send(ctx context.Context, email Email) error {
	slog.Info("email provider not configured, logging instead",
		"to", email.To,
		"subject", email.Subject,
	)
	return nil
}

// LogAudience is the development fallback for newsletter registration.
type LogAudience struct{}

// Subscribe logs the subscription instead of registering it.
func (LogAudience) Subscribe(ctx context.Context, email, source string) error {
	slog.Info("audience provider not configured, logging instead",
		"email", email,
		"source", source,
	)
	return nil
}
