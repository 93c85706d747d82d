// Copyright (c) 2026 OXONN Technologies <contact@oxonn-tech.com>
// All rights reserved. See LICENSE for details.

package dispatch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Resend is a client for the Resend HTTP API (transactional email plus
// audience contacts). It implements both Mailer and Audience.
type Resend struct {
	apiKey     string
	audienceID string
	baseURL    string
	client     *http.Client
}

// NewResend creates a Resend client. audienceID may be empty if newsletter
// registration is not used.
func NewResend(apiKey, audienceID string) *Resend {
	return &Resend{
		apiKey:     apiKey,
		audienceID: audienceID,
		baseURL:    "https://api.resend.com",
		client:     &http.Client{Timeout: 15 * time.Second},
	}
}

type resendEmailRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	ReplyTo string   `json:"reply_to,omitempty"`
	Subject string   `json:"subject"`
	Text    string   `json:"text"`
}

type resendContactRequest struct {
	Email        string `json:"email"`
	Unsubscribed bool   `json:"unsubscribed"`
}

// Send delivers one email through POST /emails.
func (r *Resend) Send(ctx context.Context, email Email) error {
	body := resendEmailRequest{
		From:    email.From,
		To:      email.To,
		ReplyTo: email.ReplyTo,
		Subject: email.Subject,
		Text:    email.Text,
	}
	return r.post(ctx, "/emails", body)
}

// Subscribe registers an address with the configured audience through
// POST /audiences/{id}/contacts. The source tag is informational only;
// Resend has no field for it.
func (r *Resend) Subscribe(ctx context.Context, email, source string) error {
	if r.audienceID == "" {
		return fmt.Errorf("resend: no audience configured")
	}
	body := resendContactRequest{Email: email}
	return r.post(ctx, "/audiences/"+r.audienceID+"/contacts", body)
}

// post performs one authenticated JSON call against the Resend API.
func (r *Resend) post(ctx context.Context, path string, body any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("resend marshal: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("resend request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+r.apiKey)

	resp, err := r.client.Do(req)
	if err != nil {
		return fmt.Errorf("resend http: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("resend API error (status %d): %s", resp.StatusCode, string(respBody))
	}
	return nil
}
