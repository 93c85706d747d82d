// Copyright (c) 2026 OXONN Technologies <contact@oxonn-tech.com>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// SubmissionStatus tracks a contact inquiry through the CRM pipeline.
type SubmissionStatus string

const (
	SubmissionStatusNew       SubmissionStatus = "new"
	SubmissionStatusContacted SubmissionStatus = "contacted"
	SubmissionStatusQualified SubmissionStatus = "qualified"
	SubmissionStatusClosed    SubmissionStatus = "closed"
)

// ContactSubmission is a validated contact-form inquiry as recorded by the
// optional CRM store. The request path itself treats submissions as
// transient; this record exists only on the dispatch side.
type ContactSubmission struct {
	ID              uuid.UUID        `json:"id"`
	CreatedAt       time.Time        `json:"created_at"`
	Name            string           `json:"name"`
	Email           string           `json:"email"`
	Message         string           `json:"message"`
	Company         string           `json:"company,omitempty"`
	Role            string           `json:"role,omitempty"`
	Phone           string           `json:"phone,omitempty"`
	ServiceInterest string           `json:"service_interest"`
	InquiryType     string           `json:"inquiry_type"`
	Status          SubmissionStatus `json:"status"`
}

// SubscriberStatus tracks a newsletter address.
type SubscriberStatus string

const (
	SubscriberStatusActive       SubscriberStatus = "active"
	SubscriberStatusUnsubscribed SubscriberStatus = "unsubscribed"
)

// NewsletterSubscriber is a registered newsletter address in the optional
// CRM store.
type NewsletterSubscriber struct {
	ID           uuid.UUID        `json:"id"`
	Email        string           `json:"email"`
	SubscribedAt time.Time        `json:"subscribed_at"`
	Source       string           `json:"source,omitempty"`
	Status       SubscriberStatus `json:"status"`
}
