package usecase

import (
	"strings"

	"github.com/robinlwong/tech-talent-radar/internal/domain/job"
	"github.com/robinlwong/tech-talent-radar/internal/domain/matching"
	"github.com/robinlwong/tech-talent-radar/internal/domain/profile"
)

const maxReasonSkills = 3

// buildReason renders the human-readable justification for one entry: the
// top overlapping skills first, then whichever preference signals fired.
// With no skill overlap it falls back to the signal that produced the
// non-zero score.
func buildReason(norm profile.Normalized, j job.Record, gap matching.SkillGap) string {
	clauses := make([]string, 0, 3)

	if len(gap.MatchingSkills) > 0 {
		names := gap.MatchingSkills
		if len(names) > maxReasonSkills {
			names = names[:maxReasonSkills]
		}
		clauses = append(clauses, "Matches your "+joinSkillNames(names)+" skills")
	}

	if matching.CategoryMatched(norm, j) {
		clauses = append(clauses, "aligns with your preferred "+string(j.Category)+" category")
	}
	if matching.PositionMatched(norm, j) {
		clauses = append(clauses, "fits your preferred "+j.PositionLevel+" position level")
	}

	if len(clauses) == 0 {
		return "Similar to your profile based on the wording of your experience and background."
	}

	reason := strings.Join(clauses, "; ")
	return strings.ToUpper(reason[:1]) + reason[1:] + "."
}

func joinSkillNames(tags []job.SkillTag) string {
	names := make([]string, 0, len(tags))
	for _, t := range tags {
		names = append(names, string(t))
	}
	switch len(names) {
	case 1:
		return names[0]
	case 2:
		return names[0] + " and " + names[1]
	default:
		return strings.Join(names[:len(names)-1], ", ") + " and " + names[len(names)-1]
	}
}
