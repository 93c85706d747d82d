// Copyright (c) 2026 OXONN Technologies <contact@oxonn-tech.com>
// All rights reserved. See LICENSE for details.

// Package models defines the domain types shared across the site backend:
// insight posts, static content records, and form submissions.
package models

import "time"

// PostStatus represents the publishing state of an insight post.
type PostStatus string

const (
	PostStatusDraft     PostStatus = "draft"
	PostStatusPublished PostStatus = "published"
	PostStatusArchived  PostStatus = "archived"
)

// Category is the editorial category of an insight post.
type Category string

const (
	CategoryQuantResearch  Category = "quantitative-research"
	CategoryRiskManagement Category = "risk-management"
	CategoryMarketAnalysis Category = "market-analysis"
	CategoryTechnology     Category = "technology"
	CategoryCompanyUpdates Category = "company-updates"
)

// CategoryLabels maps categories to their display names.
var CategoryLabels = map[Category]string{
	CategoryQuantResearch:  "Quantitative Research",
	CategoryRiskManagement: "Risk Management",
	CategoryMarketAnalysis: "Market Analysis",
	CategoryTechnology:     "Technology",
	CategoryCompanyUpdates: "Company Updates",
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	_, ok := CategoryLabels[c]
	return ok
}

// ImageAsset describes an image with its intrinsic dimensions.
type ImageAsset struct {
	Src    string `json:"src"`
	Alt    string `json:"alt"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// SEOMeta holds optional per-post metadata overrides.
type SEOMeta struct {
	MetaTitle       string `json:"metaTitle,omitempty"`
	MetaDescription string `json:"metaDescription,omitempty"`
	OGImage         string `json:"ogImage,omitempty"`
	CanonicalURL    string `json:"canonicalUrl,omitempty"`
	NoIndex         bool   `json:"noIndex,omitempty"`
}

// AuthorRef is an author resolved at ingestion time against the team store.
// Ref keeps the original front-matter identifier; Name and Avatar fall back
// to the shared team identity when the id is unknown.
type AuthorRef struct {
	Ref    string `json:"ref"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

// TOCEntry is one table-of-contents item. ID matches the id attribute the
// markdown renderer assigns to the corresponding heading.
type TOCEntry struct {
	ID    string `json:"id"`
	Text  string `json:"text"`
	Level int    `json:"level"` // 2 or 3
}

// Post is a fully ingested insight article. Body is sanitized HTML; every
// field is populated at ingestion time and never mutated afterwards.
type Post struct {
	ID              string     `json:"id"`
	Title           string     `json:"title"`
	Slug            string     `json:"slug"`
	Excerpt         string     `json:"excerpt"`
	Body            string     `json:"body"`
	Category        Category   `json:"category"`
	Tags            []string   `json:"tags"`
	FeaturedImage   ImageAsset `json:"featuredImage"`
	Author          AuthorRef  `json:"author"`
	SEOMeta         SEOMeta    `json:"seoMeta"`
	PublishDate     time.Time  `json:"publishDate"`
	UpdatedDate     *time.Time `json:"updatedDate,omitempty"`
	Status          PostStatus `json:"status"`
	ReadingTime     int        `json:"readingTime"` // minutes, rounded up
	TableOfContents []TOCEntry `json:"tableOfContents"`
}

// IsPublished returns true if the post is in published status.
func (p *Post) IsPublished() bool {
	return p.Status == PostStatusPublished
}
