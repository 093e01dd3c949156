package job

import (
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Category is the primary job sector. The corpus is filtered to IT and
// Engineering at ETL time; anything else collapses to Other.
type Category string

const (
	CategoryIT          Category = "Information Technology"
	CategoryEngineering Category = "Engineering"
	CategoryOther       Category = "Other"
)

func Categories() []Category {
	return []Category{CategoryIT, CategoryEngineering, CategoryOther}
}

// ParseCategory resolves a category name case-insensitively. It does not
// fall back: unrecognized input is the caller's validation problem.
func ParseCategory(s string) (Category, bool) {
	s = strings.TrimSpace(s)
	for _, c := range Categories() {
		if strings.EqualFold(s, string(c)) {
			return c, true
		}
	}
	return "", false
}

// SkillTag is a canonical skill label, e.g. "Python" or "Cloud/AWS".
// Two tags are equal iff their keys are equal.
type SkillTag string

// Key returns the canonical comparison form: trimmed and lower-cased.
func (t SkillTag) Key() string {
	return strings.ToLower(strings.TrimSpace(string(t)))
}

func (t SkillTag) Equal(other SkillTag) bool {
	return t.Key() == other.Key()
}

// SkillSet is a set of skill tags keyed by SkillTag.Key, preserving the
// display form of the first tag added under each key.
type SkillSet map[string]SkillTag

func NewSkillSet(tags ...SkillTag) SkillSet {
	s := make(SkillSet, len(tags))
	for _, t := range tags {
		s.Add(t)
	}
	return s
}

func (s SkillSet) Add(t SkillTag) {
	k := t.Key()
	if k == "" {
		return
	}
	if _, ok := s[k]; !ok {
		s[k] = t
	}
}

func (s SkillSet) Has(t SkillTag) bool {
	_, ok := s[t.Key()]
	return ok
}

func (s SkillSet) Union(other SkillSet) SkillSet {
	out := make(SkillSet, len(s)+len(other))
	for k, v := range s {
		out[k] = v
	}
	for k, v := range other {
		if _, ok := out[k]; !ok {
			out[k] = v
		}
	}
	return out
}

// Tags returns the set as a slice sorted by key, for deterministic iteration.
func (s SkillSet) Tags() []SkillTag {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]SkillTag, 0, len(keys))
	for _, k := range keys {
		out = append(out, s[k])
	}
	return out
}

// Record is a single job posting. Immutable once loaded: InferredSkills is
// derived from the lexicon exactly once, when the corpus snapshot is built,
// and kept sorted by tag key.
type Record struct {
	ID                 uuid.UUID
	Title              string
	Company            string
	Category           Category
	PositionLevel      string
	EmploymentType     string
	MinYearsExperience int
	SalaryMin          float64
	SalaryMax          float64
	SalaryAvg          float64
	Description        string
	PostedAt           *time.Time
	InferredSkills     []SkillTag
}

// RequiredSkills returns the inferred skills as a set.
func (r Record) RequiredSkills() SkillSet {
	return NewSkillSet(r.InferredSkills...)
}

// Text returns the free text the textual-similarity signal runs over.
func (r Record) Text() string {
	if strings.TrimSpace(r.Description) == "" {
		return r.Title
	}
	return r.Title + " " + r.Description
}
