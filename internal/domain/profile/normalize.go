package profile

import (
	"strings"

	"github.com/robinlwong/tech-talent-radar/internal/domain/job"
	"github.com/robinlwong/tech-talent-radar/internal/domain/lexicon"
)

// Normalize validates a raw profile and derives the effective skill set:
// explicit picks unioned with skills extracted from the free-text experience
// and coursework fields. Extraction is scoped to the preferred categories;
// with no category preference it runs against every sector's table.
func Normalize(p UserProfile, lex *lexicon.Lexicon) (Normalized, error) {
	if p.YearsOfExperience < 0 {
		return Normalized{}, &ValidationError{Field: "years_of_experience", Reason: "must not be negative"}
	}
	if _, ok := ParseEducationLevel(string(p.Education)); !ok {
		return Normalized{}, &ValidationError{Field: "education", Reason: "unrecognized level " + string(p.Education)}
	}

	scope := append([]job.Category(nil), p.PreferredCategories...)

	skills := job.NewSkillSet(p.Skills...)
	skills = skills.Union(lex.Extract(p.Experience, scope...))
	skills = skills.Union(lex.Extract(p.Coursework, scope...))

	parts := make([]string, 0, 3)
	for _, s := range []string{p.Qualification, p.Experience, p.Coursework} {
		if t := strings.TrimSpace(s); t != "" {
			parts = append(parts, t)
		}
	}

	return Normalized{
		Skills:       skills,
		CategoryPref: scope,
		PositionPref: strings.TrimSpace(p.PreferredPositionLevel),
		Years:        p.YearsOfExperience,
		TextBlob:     strings.Join(parts, " "),
	}, nil
}
