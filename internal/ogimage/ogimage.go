// Copyright (c) 2026 OXONN Technologies <contact@oxonn-tech.com>
// All rights reserved. See LICENSE for details.

// Package ogimage renders the 1200x630 Open Graph preview card: black
// background, cyan brand mark, wrapped title, grey subtitle, and a
// decorative ring in the top-right corner.
package ogimage

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"strings"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Card dimensions, the standard Open Graph size.
const (
	Width  = 1200
	Height = 630
)

// DefaultTitle and DefaultSubtitle are used when the query omits them.
const (
	DefaultTitle    = "OXONN Technologies"
	DefaultSubtitle = "Quantitative Intelligence"
)

var (
	background = color.RGBA{0x00, 0x00, 0x00, 0xff}
	brandCyan  = color.RGBA{0x00, 0xe5, 0xff, 0xff}
	titleWhite = color.RGBA{0xf5, 0xf5, 0xf5, 0xff}
	subtleGrey = color.RGBA{0x9c, 0xa3, 0xaf, 0xff}
	faintCyan  = color.RGBA{0x00, 0x3a, 0x42, 0xff}
)

// Title layout constraints.
const (
	margin        = 60
	titleMaxWidth = 900
	titleMaxLines = 3
)

type faces struct {
	brand    font.Face
	title    font.Face
	subtitle font.Face
}

var (
	loadOnce   sync.Once
	loadedErr  error
	loadedFont faces
)

// loadFaces parses the embedded Go fonts once.
func loadFaces() (faces, error) {
	loadOnce.Do(func() {
		bold, err := opentype.Parse(gobold.TTF)
		if err != nil {
			loadedErr = fmt.Errorf("parse bold font: %w", err)
			return
		}
		regular, err := opentype.Parse(goregular.TTF)
		if err != nil {
			loadedErr = fmt.Errorf("parse regular font: %w", err)
			return
		}

		newFace := func(f *opentype.Font, size float64) (font.Face, error) {
			return opentype.NewFace(f, &opentype.FaceOptions{
				Size:    size,
				DPI:     72,
				Hinting: font.HintingFull,
			})
		}

		if loadedFont.brand, err = newFace(bold, 26); err != nil {
			loadedErr = err
			return
		}
		if loadedFont.title, err = newFace(bold, 58); err != nil {
			loadedErr = err
			return
		}
		if loadedFont.subtitle, err = newFace(regular, 30); err != nil {
			loadedErr = err
			return
		}
	})
	return loadedFont, loadedErr
}

// Render draws the card and returns it PNG-encoded. Empty title or
// subtitle fall back to the brand defaults.
func Render(title, subtitle string) ([]byte, error) {
	if strings.TrimSpace(title) == "" {
		title = DefaultTitle
	}
	if strings.TrimSpace(subtitle) == "" {
		subtitle = DefaultSubtitle
	}

	f, err := loadFaces()
	if err != nil {
		return nil, err
	}

	img := image.NewRGBA(image.Rect(0, 0, Width, Height))
	draw.Draw(img, img.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)

	// Decorative ring, top-right.
	drawRing(img, Width-160, 140, 100, 2, faintCyan)

	// Brand mark with manual letterspacing.
	drawSpaced(img, f.brand, brandCyan, margin, margin+26, "OXONN", 8)

	// Title block, vertically centered.
	lines := wrapText(f.title, title, titleMaxWidth, titleMaxLines)
	lineHeight := f.title.Metrics().Height.Ceil() + 8
	blockHeight := lineHeight * len(lines)
	y := (Height-blockHeight)/2 + f.title.Metrics().Ascent.Ceil()
	for _, line := range lines {
		drawString(img, f.title, titleWhite, margin, y, line)
		y += lineHeight
	}

	// Accent rule and subtitle at the bottom.
	rule := image.Rect(margin, Height-margin-64, margin+96, Height-margin-60)
	draw.Draw(img, rule, image.NewUniform(brandCyan), image.Point{}, draw.Src)
	drawString(img, f.subtitle, subtleGrey, margin, Height-margin, subtitle)

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode og image: %w", err)
	}
	return buf.Bytes(), nil
}

// drawString renders s with its baseline at (x, y).
func drawString(img *image.RGBA, face font.Face, c color.Color, x, y int, s string) {
	d := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}

// drawSpaced renders s rune by rune with extra pixels between glyphs.
func drawSpaced(img *image.RGBA, face font.Face, c color.Color, x, y int, s string, spacing int) {
	d := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.P(x, y),
	}
	for _, r := range s {
		d.DrawString(string(r))
		d.Dot.X += fixed.I(spacing)
	}
}

// wrapText greedily wraps s into at most maxLines lines of maxWidth pixels.
// The final line is ellipsized if text remains.
func wrapText(face font.Face, s string, maxWidth, maxLines int) []string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	current := words[0]
	for _, word := range words[1:] {
		candidate := current + " " + word
		if font.MeasureString(face, candidate).Ceil() > maxWidth && len(lines) < maxLines-1 {
			lines = append(lines, current)
			current = word
			continue
		}
		if font.MeasureString(face, candidate).Ceil() > maxWidth {
			// Last allowed line is full; truncate the rest.
			current += "…"
			break
		}
		current = candidate
	}
	lines = append(lines, current)
	if len(lines) > maxLines {
		lines = lines[:maxLines]
	}
	return lines
}

// drawRing draws a circle outline of the given stroke width centered at
// (cx, cy).
func drawRing(img *image.RGBA, cx, cy, radius, stroke int, c color.Color) {
	outer := radius * radius
	inner := (radius - stroke) * (radius - stroke)
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			d := dx*dx + dy*dy
			if d <= outer && d >= inner {
				img.Set(cx+dx, cy+dy, c)
			}
		}
	}
}
