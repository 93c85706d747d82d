// Copyright (c) 2026 OXONN Technologies <contact@oxonn-tech.com>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"strings"

	"oxonnsite/internal/dispatch"
	"oxonnsite/internal/middleware"
	"oxonnsite/internal/models"
	"oxonnsite/internal/ratelimit"
	"oxonnsite/internal/store"
	"oxonnsite/internal/validation"
)

// maxBodyBytes bounds form request bodies.
const maxBodyBytes = 1 << 20

// Forms groups the contact and newsletter submission handlers. Each request
// runs the same gate sequence: decode, rate check, validate, dispatch,
// respond. The limiter and delivery collaborators are injected interfaces;
// the CRM stores may be nil when no database is configured.
type Forms struct {
	limiter     ratelimit.Limiter
	mailer      dispatch.Mailer
	audience    dispatch.Audience
	submissions *store.SubmissionStore
	subscribers *store.SubscriberStore

	contactEmail string
	mailFrom     string
}

// NewForms creates the form handler group.
func NewForms(limiter ratelimit.Limiter, mailer dispatch.Mailer, audience dispatch.Audience,
	submissions *store.SubmissionStore, subscribers *store.SubscriberStore,
	contactEmail, mailFrom string) *Forms {
	return &Forms{
		limiter:      limiter,
		mailer:       mailer,
		audience:     audience,
		submissions:  submissions,
		subscribers:  subscribers,
		contactEmail: contactEmail,
		mailFrom:     mailFrom,
	}
}

// Contact handles POST /api/contact.
func (h *Forms) Contact(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var form validation.ContactForm
	if !decodeBody(w, r, &form) {
		return
	}
	if !h.rateCheck(ctx, w, "contact:"+middleware.ClientIP(r)) {
		return
	}

	if fields := form.Validate(); fields != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"error":  "Validation failed",
			"fields": fields,
		})
		return
	}

	if err := h.sendContactEmails(ctx, form); err != nil {
		slog.Error("contact dispatch failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	// CRM recording is best effort; delivery already succeeded.
	if h.submissions != nil {
		_, err := h.submissions.Insert(ctx, models.ContactSubmission{
			Name:            form.Name,
			Email:           form.Email,
			Message:         form.Message,
			Company:         form.Company,
			Role:            form.Role,
			Phone:           form.Phone,
			ServiceInterest: form.ServiceInterest,
			InquiryType:     form.InquiryType,
		})
		if err != nil {
			slog.Error("contact submission not recorded", "error", err)
		}
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Message received",
	})
}

// Newsletter handles POST /api/newsletter.
func (h *Forms) Newsletter(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var form validation.NewsletterForm
	if !decodeBody(w, r, &form) {
		return
	}
	if !h.rateCheck(ctx, w, "newsletter:"+middleware.ClientIP(r)) {
		return
	}

	if fields := form.Validate(); fields != nil {
		writeError(w, http.StatusBadRequest, "Please enter a valid email address")
		return
	}

	if err := h.audience.Subscribe(ctx, form.Email, form.Source); err != nil {
		slog.Error("newsletter dispatch failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	if h.subscribers != nil {
		if _, err := h.subscribers.Upsert(ctx, form.Email, form.Source); err != nil {
			slog.Error("newsletter subscriber not recorded", "error", err)
		}
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Subscribed successfully",
	})
}

// decodeBody parses the JSON request body, answering 400 on malformed
// input. Returns false when the request has already been answered.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return false
	}
	return true
}

// rateCheck consults the limiter. A denied request is answered with 429 and
// a Retry-After hint. A limiter backend failure fails open: the request
// proceeds and the error is logged.
func (h *Forms) rateCheck(ctx context.Context, w http.ResponseWriter, key string) bool {
	res, err := h.limiter.Check(ctx, key)
	if err != nil {
		slog.Warn("rate limiter unavailable, failing open", "key", key, "error", err)
		return true
	}
	if !res.Allowed {
		seconds := int(math.Ceil(res.RetryAfter.Seconds()))
		if seconds < 1 {
			seconds = 1
		}
		w.Header().Set("Retry-After", strconv.Itoa(seconds))
		writeError(w, http.StatusTooManyRequests, "Too many requests. Please try again later.")
		return false
	}
	return true
}

// sendContactEmails composes the operator notification and the submitter
// acknowledgment.
func (h *Forms) sendContactEmails(ctx context.Context, form validation.ContactForm) error {
	subject := fmt.Sprintf("[%s] New inquiry from %s", strings.ToUpper(form.InquiryType), form.Name)
	if form.Company != "" {
		subject += " - " + form.Company
	}

	lines := []string{
		"Name: " + form.Name,
		"Email: " + form.Email,
	}
	if form.Company != "" {
		lines = append(lines, "Company: "+form.Company)
	}
	if form.Role != "" {
		lines = append(lines, "Role: "+form.Role)
	}
	if form.Phone != "" {
		lines = append(lines, "Phone: "+form.Phone)
	}
	lines = append(lines,
		"Service Interest: "+form.ServiceInterest,
		"Inquiry Type: "+form.InquiryType,
		"",
		"Message:",
		form.Message,
	)

	notification := dispatch.Email{
		From:    "OXONN Contact <" + h.mailFrom + ">",
		To:      []string{h.contactEmail},
		ReplyTo: form.Email,
		Subject: subject,
		Text:    strings.Join(lines, "\n"),
	}
	if err := h.mailer.Send(ctx, notification); err != nil {
		return fmt.Errorf("operator notification: %w", err)
	}

	acknowledgment := dispatch.Email{
		From:    "OXONN Technologies <" + h.mailFrom + ">",
		To:      []string{form.Email},
		Subject: "We received your message - OXONN Technologies",
		Text: strings.Join([]string{
			"Hi " + form.Name + ",",
			"",
			"Thank you for reaching out to OXONN Technologies. We have received your message and a member of our team will get back to you within 24 hours.",
			"",
			"For reference, here is a copy of your message:",
			"---",
			form.Message,
			"---",
			"",
			"Best regards,",
			"The OXONN Team",
			"https://oxonn-tech.com",
		}, "\n"),
	}
	if err := h.mailer.Send(ctx, acknowledgment); err != nil {
		return fmt.Errorf("submitter acknowledgment: %w", err)
	}
	return nil
}
