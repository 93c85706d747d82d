// Copyright (c) 2026 OXONN Technologies <contact@oxonn-tech.com>
// All rights reserved. See LICENSE for details.

package blog

import (
	"bytes"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/adrg/frontmatter"

	"oxonnsite/internal/content"
	"oxonnsite/internal/markdown"
	"oxonnsite/internal/models"
	"oxonnsite/internal/slug"
)

// wordsPerMinute is the reading-speed constant behind the reading-time
// estimate. 200 wpm is the common editorial default.
const wordsPerMinute = 200

// placeholderImage is used when a post declares no featured image.
var placeholderImage = models.ImageAsset{
	Src:    "/images/insights/placeholder-blog.svg",
	Width:  1200,
	Height: 630,
}

// frontMatter mirrors the YAML metadata block of an insight file. Parsing
// is strict at this boundary: required fields that are missing or invalid
// cause the file to be skipped rather than a half-populated post to leak
// downstream.
type frontMatter struct {
	Title         string    `yaml:"title"`
	Slug          string    `yaml:"slug"`
	Excerpt       string    `yaml:"excerpt"`
	Category      string    `yaml:"category"`
	Tags          []string  `yaml:"tags"`
	FeaturedImage *fmImage  `yaml:"featuredImage"`
	Author        string    `yaml:"author"`
	SEOMeta       fmSEOMeta `yaml:"seoMeta"`
	PublishDate   string    `yaml:"publishDate"`
	UpdatedDate   string    `yaml:"updatedDate"`
	Status        string    `yaml:"status"`
}

type fmImage struct {
	Src    string `yaml:"src"`
	Alt    string `yaml:"alt"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

type fmSEOMeta struct {
	MetaTitle       string `yaml:"metaTitle"`
	MetaDescription string `yaml:"metaDescription"`
	OGImage         string `yaml:"ogImage"`
	CanonicalURL    string `yaml:"canonicalUrl"`
	NoIndex         bool   `yaml:"noIndex"`
}

// Ingest converts one raw content file into a Post. It returns (nil, nil)
// for files whose status is not published; that is a policy outcome, not an
// error. A non-nil error means the file is malformed and should be skipped
// without aborting the rest of the batch.
func Ingest(file File) (*models.Post, error) {
	var fm frontMatter
	body, err := frontmatter.Parse(bytes.NewReader(file.Data), &fm)
	if err != nil {
		return nil, fmt.Errorf("parse front matter: %w", err)
	}

	if models.PostStatus(fm.Status) != models.PostStatusPublished {
		return nil, nil
	}

	if strings.TrimSpace(fm.Title) == "" {
		return nil, fmt.Errorf("missing required field title")
	}
	category := models.Category(fm.Category)
	if !category.Valid() {
		return nil, fmt.Errorf("unknown category %q", fm.Category)
	}
	publishDate, err := parseDate(fm.PublishDate)
	if err != nil {
		return nil, fmt.Errorf("invalid publishDate: %w", err)
	}
	var updatedDate *time.Time
	if fm.UpdatedDate != "" {
		d, err := parseDate(fm.UpdatedDate)
		if err != nil {
			return nil, fmt.Errorf("invalid updatedDate: %w", err)
		}
		updatedDate = &d
	}

	postSlug := fm.Slug
	if postSlug == "" {
		postSlug = strings.TrimSuffix(file.Name, filepath.Ext(file.Name))
	}

	raw := string(body)
	alloc := slug.NewAllocator()
	html, err := markdown.ToHTML(raw, alloc)
	if err != nil {
		return nil, fmt.Errorf("render markdown: %w", err)
	}

	post := &models.Post{
		ID:              postSlug,
		Title:           fm.Title,
		Slug:            postSlug,
		Excerpt:         fm.Excerpt,
		Body:            html,
		Category:        category,
		Tags:            fm.Tags,
		FeaturedImage:   featuredImage(fm),
		Author:          resolveAuthor(fm.Author),
		SEOMeta:         seoMeta(fm),
		PublishDate:     publishDate,
		UpdatedDate:     updatedDate,
		Status:          models.PostStatus(fm.Status),
		ReadingTime:     readingTime(raw),
		TableOfContents: ExtractTOC(raw),
	}
	if post.Tags == nil {
		post.Tags = []string{}
	}
	return post, nil
}

// fencePattern marks code-fence boundaries so fenced lines are never
// mistaken for headings.
var (
	fencePattern   = regexp.MustCompile("^\\s*(```|~~~)")
	headingPattern = regexp.MustCompile(`^(#{1,6})\s+(.+)$`)
)

// ExtractTOC scans raw markdown for level-2 and level-3 headings, in
// document order. Ids come from the same allocator rule the HTML renderer
// uses; all heading levels feed the allocator so the numbering of repeated
// headings stays aligned with the rendered anchors.
func ExtractTOC(raw string) []models.TOCEntry {
	alloc := slug.NewAllocator()
	entries := []models.TOCEntry{}

	inFence := false
	for _, line := range strings.Split(raw, "\n") {
		if fencePattern.MatchString(line) {
			inFence = !inFence
			continue
		}
		if inFence {
			continue
		}
		m := headingPattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		level := len(m[1])
		text := strings.TrimSpace(m[2])
		id := alloc.Anchor(text)
		if level == 2 || level == 3 {
			entries = append(entries, models.TOCEntry{ID: id, Text: text, Level: level})
		}
	}
	return entries
}

// readingTime estimates whole minutes at wordsPerMinute, rounded up.
// Every post reads for at least one minute.
func readingTime(raw string) int {
	words := len(strings.Fields(raw))
	minutes := (words + wordsPerMinute - 1) / wordsPerMinute
	if minutes < 1 {
		minutes = 1
	}
	return minutes
}

// resolveAuthor looks up the front-matter author id against the team store,
// falling back to the shared team identity when unresolved.
func resolveAuthor(ref string) models.AuthorRef {
	if member := content.TeamMemberByID(ref); member != nil {
		return models.AuthorRef{Ref: ref, Name: member.Name, Avatar: member.Image.Src}
	}
	return models.AuthorRef{Ref: ref, Name: content.DefaultAuthorName, Avatar: content.DefaultAuthorAvatar}
}

func featuredImage(fm frontMatter) models.ImageAsset {
	if fm.FeaturedImage == nil || fm.FeaturedImage.Src == "" {
		img := placeholderImage
		img.Alt = fm.Title
		return img
	}
	return models.ImageAsset{
		Src:    fm.FeaturedImage.Src,
		Alt:    fm.FeaturedImage.Alt,
		Width:  fm.FeaturedImage.Width,
		Height: fm.FeaturedImage.Height,
	}
}

func seoMeta(fm frontMatter) models.SEOMeta {
	return models.SEOMeta{
		MetaTitle:       fm.SEOMeta.MetaTitle,
		MetaDescription: fm.SEOMeta.MetaDescription,
		OGImage:         fm.SEOMeta.OGImage,
		CanonicalURL:    fm.SEOMeta.CanonicalURL,
		NoIndex:         fm.SEOMeta.NoIndex,
	}
}

// parseDate accepts the date formats used in insight front matter.
func parseDate(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", value)
}
