// Copyright (c) 2026 OXONN Technologies <contact@oxonn-tech.com>
// All rights reserved. See LICENSE for details.

// Package store persists form submissions in the optional Postgres-backed
// CRM. The request path only ever writes here; reading submissions back is
// an operator concern outside this service.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"oxonnsite/internal/models"
)

// SubmissionStore records contact-form inquiries.
type SubmissionStore struct {
	db *sql.DB
}

// NewSubmissionStore creates a SubmissionStore with the given database connection.
func NewSubmissionStore(db *sql.DB) *SubmissionStore {
	return &SubmissionStore{db: db}
}

// Insert records one validated contact inquiry with status "new" and
// returns the stored record.
func (s *SubmissionStore) Insert(ctx context.Context, sub models.ContactSubmission) (*models.ContactSubmission, error) {
	sub.ID = uuid.New()
	sub.CreatedAt = time.Now().UTC()
	sub.Status = models.SubmissionStatusNew

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO contact_submissions
			(id, created_at, name, email, message, company, role, phone,
			 service_interest, inquiry_type, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`, sub.ID, sub.CreatedAt, sub.Name, sub.Email, sub.Message,
		sub.Company, sub.Role, sub.Phone,
		sub.ServiceInterest, sub.InquiryType, sub.Status)
	if err != nil {
		return nil, fmt.Errorf("insert contact submission: %w", err)
	}
	return &sub, nil
}
