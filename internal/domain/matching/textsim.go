package matching

import (
	"math"
	"sort"
	"strings"
	"unicode"
)

// Tokenize lower-cases text and splits it into alphanumeric terms; every
// other rune acts as a separator.
func Tokenize(text string) []string {
	text = strings.ToLower(strings.TrimSpace(text))
	if text == "" {
		return nil
	}

	b := strings.Builder{}
	b.Grow(len(text))
	for _, r := range text {
		if unicode.IsLetter(r) || unicode.IsNumber(r) {
			b.WriteRune(r)
			continue
		}
		b.WriteByte(' ')
	}
	return strings.Fields(b.String())
}

// CosineSimilarity computes cosine similarity between the term-frequency
// vectors of two texts. Terms are accumulated in sorted order so the result
// is bit-for-bit reproducible regardless of map iteration.
func CosineSimilarity(a, b string) float64 {
	fa := termFrequencies(a)
	fb := termFrequencies(b)
	if len(fa) == 0 || len(fb) == 0 {
		return 0
	}

	terms := make([]string, 0, len(fa)+len(fb))
	for t := range fa {
		terms = append(terms, t)
	}
	for t := range fb {
		if _, ok := fa[t]; !ok {
			terms = append(terms, t)
		}
	}
	sort.Strings(terms)

	var dot, normA, normB float64
	for _, t := range terms {
		x := float64(fa[t])
		y := float64(fb[t])
		dot += x * y
		normA += x * x
		normB += y * y
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

func termFrequencies(text string) map[string]int {
	tokens := Tokenize(text)
	if len(tokens) == 0 {
		return nil
	}
	freq := make(map[string]int, len(tokens))
	for _, tok := range tokens {
		freq[tok]++
	}
	return freq
}
