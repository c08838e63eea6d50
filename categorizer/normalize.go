package categorizer

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// FallbackTag is attached when the gateway response yields no usable tag,
// so a categorization attempt always converges to a categorized prompt.
const FallbackTag = "AI Generated"

// MaxTags is the maximum number of tags a prompt carries.
const MaxTags = 3

// maxTagLen is the maximum tag length in runes after cleaning.
const maxTagLen = 30

var listPrefixRe = regexp.MustCompile(`^\d+\.\s*`)

// 직선/곱슬 따옴표를 모두 제거한다.
var quoteStripper = strings.NewReplacer(
	`"`, "",
	`'`, "",
	"“", "",
	"”", "",
	"‘", "",
	"’", "",
)

// NormalizeTags turns the gateway's free-form reply into a clean tag list.
//
// The reply is split on literal commas only. Each piece is trimmed, a
// leading numeric list prefix ("1. ") is stripped, quote characters are
// removed anywhere, then pieces that end up empty or longer than 30 runes
// are dropped. Survivors are Title Cased per whitespace token, deduplicated
// case-insensitively preserving first-seen order, and capped at MaxTags.
// An empty result falls back to [FallbackTag], so the output is never empty.
func NormalizeTags(raw string) []string {
	seen := make(map[string]bool)
	var tags []string

	for _, piece := range strings.Split(raw, ",") {
		p := strings.TrimSpace(piece)
		p = listPrefixRe.ReplaceAllString(p, "")
		p = quoteStripper.Replace(p)
		p = strings.TrimSpace(p)
		if p == "" || utf8.RuneCountInString(p) > maxTagLen {
			continue
		}

		// 폴백 태그는 상수 표기 그대로 유지한다. titleCase 를 거치면
		// "AI" 가 "Ai" 로 바뀌어 재정규화 고정점이 깨진다.
		if strings.EqualFold(p, FallbackTag) {
			p = FallbackTag
		} else {
			p = titleCase(p)
		}

		key := strings.ToLower(p)
		if seen[key] {
			continue
		}
		seen[key] = true

		tags = append(tags, p)
		if len(tags) == MaxTags {
			break
		}
	}

	if len(tags) == 0 {
		return []string{FallbackTag}
	}
	return tags
}

// titleCase uppercases the first rune of every whitespace-delimited word
// and lowercases the rest, rejoining with single spaces. Deliberately
// simple: hyphenated words keep their inner casing rule ("cyber-punk" ->
// "Cyber-punk").
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		runes := []rune(w)
		head := string(unicode.ToUpper(runes[0]))
		tail := strings.ToLower(string(runes[1:]))
		words[i] = head + tail
	}
	return strings.Join(words, " ")
}
