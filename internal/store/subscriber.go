// Copyright (c) 2026 OXONN Technologies <contact@oxonn-tech.com>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"oxonnsite/internal/models"
)

// SubscriberStore records newsletter addresses.
type SubscriberStore struct {
	db *sql.DB
}

// NewSubscriberStore creates a SubscriberStore with the given database connection.
func NewSubscriberStore(db *sql.DB) *SubscriberStore {
	return &SubscriberStore{db: db}
}

// Upsert records a newsletter address. A previously unsubscribed address is
// reactivated; subscribing twice is not an error.
func (s *SubscriberStore) Upsert(ctx context.Context, email, source string) (*models.NewsletterSubscriber, error) {
	sub := models.NewsletterSubscriber{
		ID:           uuid.New(),
		Email:        email,
		SubscribedAt: time.Now().UTC(),
		Source:       source,
		Status:       models.SubscriberStatusActive,
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO newsletter_subscribers (id, email, subscribed_at, source, status)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (email) DO UPDATE
			SET status = 'active', subscribed_at = EXCLUDED.subscribed_at
	`, sub.ID, sub.Email, sub.SubscribedAt, sub.Source, sub.Status)
	if err != nil {
		return nil, fmt.Errorf("upsert newsletter subscriber: %w", err)
	}
	return &sub, nil
}
