// Copyright (c) 2026 OXONN Technologies <contact@oxonn-tech.com>
// All rights reserved. See LICENSE for details.

// Package slug provides heading-anchor generation. The same rule is applied
// by the markdown renderer and the table-of-contents extractor, so TOC ids
// always match the anchors present in the rendered HTML.
package slug

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	// nonWord matches anything that isn't a word character, whitespace, or hyphen.
	nonWord = regexp.MustCompile(`[^\w\s-]`)
	// whitespace collapses runs of whitespace into a single hyphen.
	whitespace = regexp.MustCompile(`\s+`)
)

// Anchor creates a URL-friendly anchor id from heading text.
// Example: "Risk & Hedging, Revisited" → "risk-hedging-revisited"
func Anchor(s string) string {
	result := strings.ToLower(strings.TrimSpace(s))
	result = nonWord.ReplaceAllString(result, "")
	result = whitespace.ReplaceAllString(result, "-")
	return result
}

// Allocator hands out document-unique anchors. Repeated heading text gets a
// numeric suffix, deterministically in document order.
type Allocator struct {
	seen map[string]bool
}

// NewAllocator creates an empty anchor allocator.
func NewAllocator() *Allocator {
	return &Allocator{seen: make(map[string]bool)}
}

// Anchor returns the anchor for text, unique within this allocator.
func (a *Allocator) Anchor(text string) string {
	id := Anchor(text)
	if id == "" {
		id = "heading"
	}
	if !a.seen[id] {
		a.seen[id] = true
		return id
	}
	for n := 1; ; n++ {
		candidate := fmt.Sprintf("%s-%d", id, n)
		if !a.seen[candidate] {
			a.seen[candidate] = true
			return candidate
		}
	}
}
