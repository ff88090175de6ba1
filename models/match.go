package models

// Course is an upskilling recommendation attached to a match
type Course struct {
	Title       string `json:"title" example:"Git & GitHub Crash Course"`
	Provider    string `json:"provider" example:"Udemy"`
	Duration    string `json:"duration" example:"4 hours"`
	Cost        string `json:"cost" example:"R199"`
	URL         string `json:"url" example:"https://www.udemy.com/courses/search/?q=git"`
	Description string `json:"description"`
}

// MatchResult is the engine's scored pairing of a profile against one job
// @Description Match between the candidate and a catalog job
type MatchResult struct {
	JobID              string   `json:"jobId" example:"1"`
	MatchScore         float64  `json:"matchScore" example:"88"`
	MissingSkills      []string `json:"missingSkills" example:"Git"`
	Reasoning          string   `json:"reasoning" example:"Strong React fit"`
	RecommendedCourses []Course `json:"recommendedCourses,omitempty"`
}

// MatchResponse is the envelope the match schema asks the engine for
type MatchResponse struct {
	Matches []MatchResult `json:"matches"`
}
