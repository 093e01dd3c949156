package matching

import (
	"strings"

	"github.com/robinlwong/tech-talent-radar/internal/domain/job"
	"github.com/robinlwong/tech-talent-radar/internal/domain/profile"
)

// Relevance signal weights. Skill overlap dominates; preference alignment and
// textual similarity are softer signals. Tunable defaults, not fixed truths.
const (
	WeightSkillOverlap = 0.60
	WeightAlignment    = 0.25
	WeightTextual      = 0.15
)

// Score computes the relevance of a single job for a normalized profile,
// in [0,1]. Pure and deterministic: identical inputs reproduce the score
// bit for bit.
func Score(p profile.Normalized, j job.Record) float64 {
	s := WeightSkillOverlap*SkillOverlap(p.Skills, j) +
		WeightAlignment*Alignment(p, j) +
		WeightTextual*CosineSimilarity(p.TextBlob, j.Text())

	if s < 0 {
		return 0
	}
	if s > 1 {
		return 1
	}
	return s
}

// SkillOverlap measures how much of the job's requirement the profile covers:
// |profile ∩ required| / max(1, |required|). Deliberately not diluted by the
// size of the profile's own skill set.
func SkillOverlap(skills job.SkillSet, j job.Record) float64 {
	required := j.InferredSkills
	if len(required) == 0 {
		return 0
	}
	n := 0
	for _, tag := range required {
		if skills.Has(tag) {
			n++
		}
	}
	return float64(n) / float64(len(required))
}

// Alignment scores category and position-level preference fit. A profile
// that expresses no preference at all contributes nothing here, so its score
// reflects only the skill and textual signals. A preferred category that
// doesn't cover the job zeroes the term; a stated position level that doesn't
// match halves it.
func Alignment(p profile.Normalized, j job.Record) float64 {
	if !p.HasPreference() {
		return 0
	}
	if !p.PrefersCategory(j.Category) {
		return 0
	}
	if p.PositionPref == "" || PositionMatched(p, j) {
		return 1
	}
	return 0.5
}

// CategoryMatched reports an explicit category preference covering the job.
func CategoryMatched(p profile.Normalized, j job.Record) bool {
	if len(p.CategoryPref) == 0 {
		return false
	}
	return p.PrefersCategory(j.Category)
}

// PositionMatched reports an explicit position-level preference matching the
// job's level.
func PositionMatched(p profile.Normalized, j job.Record) bool {
	return p.PositionPref != "" && strings.EqualFold(p.PositionPref, j.PositionLevel)
}
