// Copyright (c) 2026 OXONN Technologies <contact@oxonn-tech.com>
// All rights reserved. See LICENSE for details.

// Package markdown converts insight Markdown into sanitized HTML using
// goldmark. Heading ids are assigned through a caller-supplied slug
// allocator, and the output is filtered against an attribute allow-list so
// no executable content survives ingestion.
package markdown

import (
	"bytes"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/microcosm-cc/bluemonday"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"

	"oxonnsite/internal/slug"
)

// md is the configured goldmark instance, reused across calls.
var md = goldmark.New(
	goldmark.WithExtensions(
		extension.GFM,         // GitHub-Flavored Markdown: tables, strikethrough, autolinks
		extension.Typographer, // Smart quotes and dashes
		highlighting.NewHighlighting( // Syntax highlighting for fenced code blocks
			highlighting.WithStyle("monokai"),
			// Class-based output so the sanitizer's allow-list keeps it.
			highlighting.WithFormatOptions(chromahtml.WithClasses(true)),
		),
	),
	goldmark.WithParserOptions(
		parser.WithAutoHeadingID(), // ids come from the allocator in the parse context
	),
	goldmark.WithRendererOptions(
		html.WithUnsafe(), // raw HTML reaches the sanitizer, which strips anything unsafe
	),
)

// policy is the sanitization allow-list. Ids and classes survive on every
// element (heading anchors, chroma spans); anchors additionally keep
// href/target/rel. Script tags and event-handler attributes never pass.
var policy = buildPolicy()

func buildPolicy() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.AllowAttrs("id", "class").Globally()
	p.AllowAttrs("href", "target", "rel").OnElements("a")
	return p
}

// anchorIDs adapts a slug.Allocator to goldmark's heading id generator.
type anchorIDs struct {
	alloc *slug.Allocator
}

func (ids *anchorIDs) Generate(value []byte, kind ast.NodeKind) []byte {
	return []byte(ids.alloc.Anchor(string(value)))
}

func (ids *anchorIDs) Put(value []byte) {}

// ToHTML converts Markdown source into sanitized HTML. Heading ids are
// drawn from alloc, so a second allocator fed the same heading text (e.g.
// by the TOC extractor) produces matching anchors.
func ToHTML(source string, alloc *slug.Allocator) (string, error) {
	var buf bytes.Buffer
	ctx := parser.NewContext(parser.WithIDs(&anchorIDs{alloc: alloc}))
	if err := md.Convert([]byte(source), &buf, parser.WithContext(ctx)); err != nil {
		return "", err
	}
	return policy.Sanitize(buf.String()), nil
}
