package categorizer

import (
	"errors"
	"strings"
	"testing"
)

func TestComposeRejectsEmptySource(t *testing.T) {
	_, err := Compose(Source{Description: "a description alone"}, ModeSingle)
	if !errors.Is(err, ErrNothingToCategorize) {
		t.Fatalf("expected ErrNothingToCategorize, got %v", err)
	}
}

func TestComposeTextModeSelectsTextInstruction(t *testing.T) {
	req, err := Compose(Source{Title: "Moonlit Forest", Content: "a quiet forest at night"}, ModeSingle)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.SystemPrompt == "" {
		t.Fatalf("expected non-empty system prompt")
	}
	if len(req.Parts) != 1 {
		t.Fatalf("expected single text part, got %d parts", len(req.Parts))
	}
	if req.Parts[0].Type != PartText {
		t.Fatalf("expected first part to be text, got %s", req.Parts[0].Type)
	}
	if !strings.Contains(req.Parts[0].Text, "Moonlit Forest") {
		t.Fatalf("expected title interpolated into text part")
	}
	if !strings.Contains(req.Parts[0].Text, "Content:") {
		t.Fatalf("expected content section in text-mode request")
	}
}

func TestComposeVisionModeOmitsContent(t *testing.T) {
	req, err := Compose(Source{
		Title:   "Moonlit Forest",
		Content: "should not appear",
		Images:  []string{"https://cdn.example.com/img1.png"},
	}, ModeSingle)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(req.Parts[0].Text, "should not appear") {
		t.Fatalf("vision mode must not interpolate content")
	}
	if len(req.Parts) != 2 {
		t.Fatalf("expected text part + 1 image part, got %d", len(req.Parts))
	}
	if req.Parts[1].Type != PartImage || req.Parts[1].ImageURL != "https://cdn.example.com/img1.png" {
		t.Fatalf("unexpected image part: %+v", req.Parts[1])
	}
}

func TestComposeImageCaps(t *testing.T) {
	images := []string{"u1", "u2", "u3", "u4", "u5", "u6"}

	single, err := Compose(Source{Title: "t", Images: images}, ModeSingle)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := len(single.Parts) - 1; got != 4 {
		t.Fatalf("single mode: expected 4 image parts, got %d", got)
	}

	batch, err := Compose(Source{Title: "t", Images: images}, ModeBatch)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := len(batch.Parts) - 1; got != 2 {
		t.Fatalf("batch mode: expected 2 image parts, got %d", got)
	}

	// earlier images take priority
	if batch.Parts[1].ImageURL != "u1" || batch.Parts[2].ImageURL != "u2" {
		t.Fatalf("expected first two images kept in order, got %+v", batch.Parts[1:])
	}
}

func TestComposeContentCaps(t *testing.T) {
	content := strings.Repeat("a", 1000)

	single, err := Compose(Source{Title: "t", Content: content}, ModeSingle)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(single.Parts[0].Text, strings.Repeat("a", 801)) {
		t.Fatalf("single mode content must be capped at 800 runes")
	}
	if !strings.Contains(single.Parts[0].Text, strings.Repeat("a", 800)) {
		t.Fatalf("single mode should keep an 800-rune prefix")
	}

	batch, err := Compose(Source{Title: "t", Content: content}, ModeBatch)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(batch.Parts[0].Text, strings.Repeat("a", 601)) {
		t.Fatalf("batch mode content must be capped at 600 runes")
	}
}

func TestComposeImagesAloneAreEnough(t *testing.T) {
	req, err := Compose(Source{Images: []string{"img1.png"}}, ModeBatch)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(req.Parts) != 2 {
		t.Fatalf("expected 2 parts, got %d", len(req.Parts))
	}
}
