// Copyright (c) 2026 OXONN Technologies <contact@oxonn-tech.com>
// All rights reserved. See LICENSE for details.

package ogimage

import (
	"bytes"
	"image/png"
	"strings"
	"testing"
)

func TestRender_Dimensions(t *testing.T) {
	img, err := Render("Factor Crowding in Quant Strategies", "Quantitative Research")
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	cfg, err := png.DecodeConfig(bytes.NewReader(img))
	if err != nil {
		t.Fatalf("output is not a PNG: %v", err)
	}
	if cfg.Width != Width || cfg.Height != Height {
		t.Errorf("dimensions = %dx%d, want %dx%d", cfg.Width, cfg.Height, Width, Height)
	}
}

func TestRender_DefaultsWhenEmpty(t *testing.T) {
	img, err := Render("", "")
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if _, err := png.DecodeConfig(bytes.NewReader(img)); err != nil {
		t.Fatalf("output is not a PNG: %v", err)
	}
}

// Long titles must not error; they wrap and truncate instead.
func TestRender_LongTitle(t *testing.T) {
	long := strings.Repeat("Regime Detection Across Asset Classes ", 10)
	img, err := Render(long, "Research")
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	cfg, err := png.DecodeConfig(bytes.NewReader(img))
	if err != nil {
		t.Fatalf("output is not a PNG: %v", err)
	}
	if cfg.Width != Width || cfg.Height != Height {
		t.Errorf("dimensions changed for a long title: %dx%d", cfg.Width, cfg.Height)
	}
}

func TestWrapText(t *testing.T) {
	f, err := loadFaces()
	if err != nil {
		t.Fatalf("loadFaces: %v", err)
	}

	lines := wrapText(f.title, "short", 900, 3)
	if len(lines) != 1 || lines[0] != "short" {
		t.Errorf("short title wrapped: %v", lines)
	}

	long := strings.Repeat("measurement ", 30)
	lines = wrapText(f.title, long, 900, 3)
	if len(lines) > 3 {
		t.Errorf("lines = %d, want at most 3", len(lines))
	}
	last := lines[len(lines)-1]
	if !strings.HasSuffix(last, "…") {
		t.Errorf("truncated last line not ellipsized: %q", last)
	}
}
