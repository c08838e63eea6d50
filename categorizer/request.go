package categorizer

import (
	"errors"
	"fmt"
	"strings"
)

// Mode selects the composition limits. Batch mode trades per-item richness
// for throughput: shorter content prefix and fewer images per request.
type Mode int

const (
	ModeSingle Mode = iota
	ModeBatch
)

const (
	singleContentLimit = 800
	batchContentLimit  = 600
	singleImageLimit   = 4
	batchImageLimit    = 2
)

// ErrNothingToCategorize 는 제목/본문/이미지가 모두 비어 있어
// 분류할 근거가 전혀 없는 경우 반환된다.
var ErrNothingToCategorize = errors.New("nothing to categorize: title, content and images are all empty")

// Source holds the prompt fields the composer reads. Any field may be
// empty, but at least one of title, content or images must be present.
type Source struct {
	Title       string
	Description string
	Content     string
	Images      []string
}

// PartType discriminates Request parts.
type PartType string

const (
	PartText  PartType = "text"
	PartImage PartType = "image"
)

// Part is one entry of the ordered user content sequence.
type Part struct {
	Type     PartType
	Text     string
	ImageURL string
}

// Request is the composed gateway payload: a fixed system instruction and
// one user turn with exactly one text part first, followed by 0..K image
// parts. Never persisted.
type Request struct {
	SystemPrompt string
	Parts        []Part
}

const systemInstruction = `You are a categorization assistant for a prompt-sharing service.
Your task is to propose short descriptive category tags for one submission.

Rules:
- Respond with ONLY comma-separated tag names, nothing else.
- Propose between 1 and 3 tags.
- Each tag is a short noun phrase of at most 30 characters.
- Do NOT number the tags, do NOT quote them, do NOT add explanations.`

const visionInstruction = `Derive 1-3 category tags for the attached image(s).
Judge primarily by visual subject matter, art style and mood.
Use the title and description below only to disambiguate what you see.
Respond with ONLY comma-separated tag names.`

const textInstruction = `Derive 1-3 category tags from the title, description and content below.
Respond with ONLY comma-separated tag names.`

// Compose builds the gateway request for one prompt source. Pure: no
// network, no side effects. Returns ErrNothingToCategorize when title,
// content and images are all empty (a description alone carries too little
// signal to tag).
func Compose(src Source, mode Mode) (Request, error) {
	hasImages := len(src.Images) > 0
	if src.Title == "" && src.Content == "" && !hasImages {
		return Request{}, ErrNothingToCategorize
	}

	contentLimit := singleContentLimit
	imageLimit := singleImageLimit
	if mode == ModeBatch {
		contentLimit = batchContentLimit
		imageLimit = batchImageLimit
	}

	var b strings.Builder
	if hasImages {
		b.WriteString(visionInstruction)
	} else {
		b.WriteString(textInstruction)
	}
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "Title: %s\n", src.Title)
	fmt.Fprintf(&b, "Description: %s\n", src.Description)
	if !hasImages {
		fmt.Fprintf(&b, "Content: %s\n", truncateRunes(src.Content, contentLimit))
	}

	parts := []Part{{Type: PartText, Text: b.String()}}

	// Earlier images take priority; order implies relevance.
	images := src.Images
	if len(images) > imageLimit {
		images = images[:imageLimit]
	}
	for _, url := range images {
		parts = append(parts, Part{Type: PartImage, ImageURL: url})
	}

	return Request{
		SystemPrompt: systemInstruction,
		Parts:        parts,
	}, nil
}

// truncateRunes returns s truncated to max runes.
func truncateRunes(s string, max int) string {
	rs := []rune(s)
	if len(rs) <= max {
		return s
	}
	return string(rs[:max])
}
