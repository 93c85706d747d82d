// Copyright (c) 2026 OXONN Technologies <contact@oxonn-tech.com>
// All rights reserved. See LICENSE for details.

package blog

import (
	"context"
	"log/slog"
	"sort"
	"sync/atomic"
	"time"

	"oxonnsite/internal/models"
)

// DefaultTTL is how long a built post set stays valid in production.
const DefaultTTL = time.Minute

// DefaultRelatedLimit caps related-post results when the caller passes no limit.
const DefaultRelatedLimit = 3

// snapshot is one immutable build of the post collection.
type snapshot struct {
	posts       []models.Post
	refreshedAt time.Time
}

// Library serves the published post collection from a TTL-bounded snapshot,
// rebuilding from the content source on expiry. Concurrent readers racing
// past an expired snapshot may each rebuild; the build is a pure function of
// the source files, so duplicate work is wasteful but never incorrect. Only
// the snapshot publication itself is synchronized.
type Library struct {
	source Source
	ttl    time.Duration
	snap   atomic.Pointer[snapshot]
}

// New creates a Library over source. A ttl of zero disables memoization
// (every call rebuilds), which is the intended development behavior.
func New(source Source, ttl time.Duration) *Library {
	return &Library{source: source, ttl: ttl}
}

// Posts returns every published post, newest first. The caller supplies
// the current time so cache expiry is testable without a wall clock.
func (l *Library) Posts(ctx context.Context, now time.Time) []models.Post {
	if s := l.snap.Load(); s != nil && l.ttl > 0 && now.Sub(s.refreshedAt) < l.ttl {
		return s.posts
	}

	posts, err := l.build(ctx)
	if err != nil {
		slog.Error("post rebuild failed, serving last snapshot", "error", err)
		if s := l.snap.Load(); s != nil {
			return s.posts
		}
		return []models.Post{}
	}

	l.snap.Store(&snapshot{posts: posts, refreshedAt: now})
	return posts
}

// build runs the ingestion pipeline over every source file. A malformed
// file is skipped with a diagnostic; duplicate slugs keep the first file in
// sorted name order and skip the rest.
func (l *Library) build(ctx context.Context) ([]models.Post, error) {
	files, err := l.source.List(ctx)
	if err != nil {
		return nil, err
	}
	sort.Slice(files, func(i, j int) bool { return files[i].Name < files[j].Name })

	posts := []models.Post{}
	bySlug := make(map[string]string) // slug -> first file claiming it

	for _, file := range files {
		post, err := Ingest(file)
		if err != nil {
			slog.Error("insight file skipped", "file", file.Name, "error", err)
			continue
		}
		if post == nil {
			continue
		}
		if first, dup := bySlug[post.Slug]; dup {
			slog.Error("duplicate slug, later file skipped",
				"slug", post.Slug, "kept", first, "skipped", file.Name)
			continue
		}
		bySlug[post.Slug] = file.Name
		posts = append(posts, *post)
	}

	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].PublishDate.After(posts[j].PublishDate)
	})
	return posts, nil
}

// PostBySlug returns the published post with the given slug, or nil. An
// unknown slug is a normal outcome that callers turn into a 404.
func (l *Library) PostBySlug(ctx context.Context, now time.Time, slug string) *models.Post {
	for _, p := range l.Posts(ctx, now) {
		if p.Slug == slug {
			post := p
			return &post
		}
	}
	return nil
}

// PostsByCategory filters the collection by category, preserving the
// newest-first ordering.
func (l *Library) PostsByCategory(ctx context.Context, now time.Time, category models.Category) []models.Post {
	out := []models.Post{}
	for _, p := range l.Posts(ctx, now) {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

// RelatedPosts returns up to limit same-category posts excluding
// currentSlug, newest first. limit <= 0 uses DefaultRelatedLimit.
func (l *Library) RelatedPosts(ctx context.Context, now time.Time, currentSlug string, category models.Category, limit int) []models.Post {
	if limit <= 0 {
		limit = DefaultRelatedLimit
	}
	out := []models.Post{}
	for _, p := range l.Posts(ctx, now) {
		if p.Slug == currentSlug || p.Category != category {
			continue
		}
		out = append(out, p)
		if len(out) == limit {
			break
		}
	}
	return out
}

// Slugs returns every published slug exactly once, newest first. Used for
// static path enumeration.
func (l *Library) Slugs(ctx context.Context, now time.Time) []string {
	posts := l.Posts(ctx, now)
	slugs := make([]string, 0, len(posts))
	for _, p := range posts {
		slugs = append(slugs, p.Slug)
	}
	return slugs
}
