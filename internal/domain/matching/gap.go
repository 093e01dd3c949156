package matching

import (
	"math"

	"github.com/robinlwong/tech-talent-radar/internal/domain/job"
)

// SkillGap is the difference between a job's inferred requirements and a
// profile's skill set. Derived per request, never stored.
type SkillGap struct {
	MatchingSkills  []job.SkillTag
	MissingSkills   []job.SkillTag
	UserHas         int
	TotalRequired   int
	MatchPercentage int
}

// Gap computes the skill gap between profileSkills and the job's inferred
// skills. A job with zero inferred skills has no requirement and is trivially
// satisfied: TotalRequired 0, MatchPercentage 100, no missing skills.
func Gap(profileSkills job.SkillSet, j job.Record) SkillGap {
	required := j.InferredSkills

	matching := make([]job.SkillTag, 0, len(required))
	missing := make([]job.SkillTag, 0, len(required))
	for _, tag := range required {
		if profileSkills.Has(tag) {
			matching = append(matching, tag)
		} else {
			missing = append(missing, tag)
		}
	}

	total := len(required)
	pct := 100
	if total > 0 {
		pct = int(math.Round(100 * float64(len(matching)) / float64(total)))
	}

	return SkillGap{
		MatchingSkills:  matching,
		MissingSkills:   missing,
		UserHas:         len(matching),
		TotalRequired:   total,
		MatchPercentage: pct,
	}
}
