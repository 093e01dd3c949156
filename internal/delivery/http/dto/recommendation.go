package dto

// ProfileRequest carries the raw profile exactly as the client typed it.
// Parsing into domain enums happens in the handler so a bad category or
// education level can be rejected with a field-level 422.
type ProfileRequest struct {
	Name                   string   `json:"name"`
	Education              string   `json:"education"`
	Qualification          string   `json:"qualification"`
	Skills                 []string `json:"skills"`
	Experience             string   `json:"experience"`
	Coursework             string   `json:"coursework"`
	PreferredCategories    []string `json:"preferred_categories"`
	PreferredPositionLevel string   `json:"preferred_position_level"`
	YearsOfExperience      int      `json:"years_of_experience"`
}

type RecommendationRequest struct {
	Profile ProfileRequest `json:"profile"`
	TopN    int            `json:"top_n"`
}

type SkillGapResponse struct {
	MatchingSkills  []string `json:"matching_skills"`
	MissingSkills   []string `json:"missing_skills"`
	UserHas         int      `json:"user_has"`
	TotalRequired   int      `json:"total_required"`
	MatchPercentage int      `json:"match_percentage"`
}

type RecommendationItemResponse struct {
	Job             JobResponse      `json:"job"`
	SimilarityScore float64          `json:"similarity_score"`
	SkillGap        SkillGapResponse `json:"skill_gap"`
	Reason          string           `json:"reason"`
}

type RecommendationListResponse struct {
	Recommendations []RecommendationItemResponse `json:"recommendations"`
	TotalJobs       int                          `json:"total_jobs"`
}

type ValidationErrorData struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}
