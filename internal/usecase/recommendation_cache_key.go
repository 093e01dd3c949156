package usecase

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"sort"

	"github.com/robinlwong/tech-talent-radar/internal/domain/job"
	"github.com/robinlwong/tech-talent-radar/internal/domain/profile"
	"github.com/robinlwong/tech-talent-radar/internal/vocab"
)

type recommendationCacheKeyInput struct {
	Skills       []string `json:"skills"`
	Categories   []string `json:"categories"`
	Position     string   `json:"position"`
	Years        int      `json:"years"`
	TextBlob     string   `json:"text_blob"`
	TopN         int      `json:"top_n"`
	CorpusDigest string   `json:"corpus_digest"`
}

// recommendationCacheKey hashes the normalized profile together with the
// corpus fingerprint, so a corpus reload naturally misses old entries even
// before they are invalidated.
func recommendationCacheKey(norm profile.Normalized, topN int, jobs []job.Record) string {
	skills := make([]string, 0, len(norm.Skills))
	for _, t := range norm.Skills.Tags() {
		skills = append(skills, t.Key())
	}

	cats := make([]string, 0, len(norm.CategoryPref))
	for _, c := range norm.CategoryPref {
		cats = append(cats, string(c))
	}
	sort.Strings(cats)

	in := recommendationCacheKeyInput{
		Skills:       skills,
		Categories:   cats,
		Position:     norm.PositionPref,
		Years:        norm.Years,
		TextBlob:     norm.TextBlob,
		TopN:         topN,
		CorpusDigest: vocab.Fingerprint(jobs),
	}

	b, _ := json.Marshal(in)
	sum := sha256.Sum256(b)
	return "reco:" + hex.EncodeToString(sum[:])
}
