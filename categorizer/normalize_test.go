package categorizer

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func assertTags(t *testing.T, got, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestNormalizeTagsFallbackOnEmptyInput(t *testing.T) {
	testCases := []struct {
		name string
		raw  string
	}{
		{name: "empty string", raw: ""},
		{name: "only commas", raw: ",,,"},
		{name: "only quotes", raw: `"",''`},
		{name: "whitespace", raw: "   \t  "},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assertTags(t, NormalizeTags(tc.raw), []string{FallbackTag})
		})
	}
}

func TestNormalizeTagsTitleCase(t *testing.T) {
	got := NormalizeTags("dark FANTASY, cyber-punk city")
	// per-whitespace-token capitalization only: the hyphenated word keeps
	// its tail lowercased as a single token
	assertTags(t, got, []string{"Dark Fantasy", "Cyber-punk City"})
}

func TestNormalizeTagsStripsPrefixesQuotesAndDuplicates(t *testing.T) {
	raw := `1. Fantasy Landscape, "Dreamy Mood" , fantasy landscape`
	assertTags(t, NormalizeTags(raw), []string{"Fantasy Landscape", "Dreamy Mood"})
}

func TestNormalizeTagsStripsCurlyQuotes(t *testing.T) {
	assertTags(t, NormalizeTags("“Moody Light”, ‘Portrait’"), []string{"Moody Light", "Portrait"})
}

func TestNormalizeTagsDropsOverlongPieces(t *testing.T) {
	long := strings.Repeat("x", 31)
	got := NormalizeTags(long + ", Valid Tag")
	assertTags(t, got, []string{"Valid Tag"})

	// exactly 30 runes survives
	edge := strings.Repeat("y", 30)
	got = NormalizeTags(edge)
	if len(got) != 1 || utf8.RuneCountInString(got[0]) != 30 {
		t.Fatalf("expected single 30-rune tag, got %v", got)
	}
}

func TestNormalizeTagsTruncatesToThree(t *testing.T) {
	got := NormalizeTags("alpha, beta, gamma, delta, epsilon")
	assertTags(t, got, []string{"Alpha", "Beta", "Gamma"})
}

func TestNormalizeTagsBoundedOutput(t *testing.T) {
	inputs := []string{
		"",
		"one",
		"a, b, c, d, e, f",
		"SHOUTING, shouting, Shouting",
		"  spaced   out   words  , second",
		"1. first, 2. second, 3. third, 4. fourth",
		strings.Repeat("padding, ", 50),
	}

	for _, raw := range inputs {
		got := NormalizeTags(raw)
		if len(got) < 1 || len(got) > MaxTags {
			t.Fatalf("input %q: expected 1..%d tags, got %d", raw, MaxTags, len(got))
		}
		seen := map[string]bool{}
		for _, tag := range got {
			n := utf8.RuneCountInString(tag)
			if n < 1 || n > 30 {
				t.Fatalf("input %q: tag %q has length %d", raw, tag, n)
			}
			key := strings.ToLower(tag)
			if seen[key] {
				t.Fatalf("input %q: duplicate tag %q", raw, tag)
			}
			seen[key] = true
		}
	}
}

func TestNormalizeTagsIdempotent(t *testing.T) {
	inputs := []string{
		"dark FANTASY, cyber-punk city",
		`1. Fantasy Landscape, "Dreamy Mood" , fantasy landscape`,
		"",
		"alpha, beta, gamma, delta",
		FallbackTag,
	}

	for _, raw := range inputs {
		first := NormalizeTags(raw)
		second := NormalizeTags(strings.Join(first, ","))
		assertTags(t, second, first)
	}
}

func TestNormalizeTagsFallbackTagIsFixedPoint(t *testing.T) {
	// the fallback tag must survive re-normalization byte for byte,
	// regardless of how the gateway cases it
	assertTags(t, NormalizeTags(FallbackTag), []string{FallbackTag})
	assertTags(t, NormalizeTags("ai generated"), []string{FallbackTag})
	assertTags(t, NormalizeTags("AI GENERATED, Other Tag"), []string{FallbackTag, "Other Tag"})
}

func TestNormalizeTagsNormalizesInnerWhitespace(t *testing.T) {
	assertTags(t, NormalizeTags("moonlit   forest   scene"), []string{"Moonlit Forest Scene"})
}
