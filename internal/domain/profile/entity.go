package profile

import (
	"fmt"
	"strings"

	"github.com/robinlwong/tech-talent-radar/internal/domain/job"
)

// EducationLevel is the closed set offered by the profile form. The empty
// value means "not stated" and is always valid.
type EducationLevel string

const (
	EducationNone        EducationLevel = ""
	EducationNITEC       EducationLevel = "NITEC"
	EducationHigherNITEC EducationLevel = "Higher NITEC"
	EducationDiploma     EducationLevel = "Diploma"
	EducationDegree      EducationLevel = "Degree"
	EducationMaster      EducationLevel = "Master"
	EducationPhD         EducationLevel = "PhD"
)

func EducationLevels() []EducationLevel {
	return []EducationLevel{
		EducationNITEC, EducationHigherNITEC, EducationDiploma,
		EducationDegree, EducationMaster, EducationPhD,
	}
}

func ParseEducationLevel(s string) (EducationLevel, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return EducationNone, true
	}
	for _, lvl := range EducationLevels() {
		if strings.EqualFold(s, string(lvl)) {
			return lvl, true
		}
	}
	return "", false
}

// UserProfile is the raw profile as submitted. Every field except
// YearsOfExperience and the enums is optional: partial profiles are a
// legitimate input, not an error.
type UserProfile struct {
	Name                   string
	Education              EducationLevel
	Qualification          string
	Skills                 []job.SkillTag
	Experience             string
	Coursework             string
	PreferredCategories    []job.Category
	PreferredPositionLevel string
	YearsOfExperience      int
}

// Normalized is a profile reduced to what the scorer needs.
type Normalized struct {
	Skills       job.SkillSet
	CategoryPref []job.Category
	PositionPref string
	Years        int
	TextBlob     string
}

// HasPreference reports whether the profile expressed any category or
// position preference at all.
func (n Normalized) HasPreference() bool {
	return len(n.CategoryPref) > 0 || strings.TrimSpace(n.PositionPref) != ""
}

// PrefersCategory reports whether c satisfies the category preference.
// An empty preference set means no preference and is treated as satisfied.
func (n Normalized) PrefersCategory(c job.Category) bool {
	if len(n.CategoryPref) == 0 {
		return true
	}
	for _, pref := range n.CategoryPref {
		if pref == c {
			return true
		}
	}
	return false
}

// ValidationError reports a malformed profile field. It is surfaced to the
// caller at normalization time, never silently corrected.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid profile: %s %s", e.Field, e.Reason)
}
