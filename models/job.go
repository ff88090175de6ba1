package models

// JobType describes where the work happens
type JobType string

// JobType constants
const (
	JobTypeRemote JobType = "Remote"
	JobTypeHybrid JobType = "Hybrid"
	JobTypeOnSite JobType = "On-site"
)

// ApplicationSource is the job board an application link points to
type ApplicationSource string

// ApplicationSource constants
const (
	SourceLinkedIn ApplicationSource = "LinkedIn"
	SourcePnet     ApplicationSource = "Pnet"
	SourceIndeed   ApplicationSource = "Indeed"
)

// ApplicationLink is an outbound link to apply for a job on an external board
type ApplicationLink struct {
	Source ApplicationSource `json:"source" firestore:"source" example:"LinkedIn"`
	URL    string            `json:"url" firestore:"url" example:"https://www.linkedin.com/jobs/search/?keywords=Data%20Analyst"`
}

// Job represents a read-only listing from the job catalog
// @Description Job catalog entry
type Job struct {
	ID               string            `json:"id" firestore:"id" example:"1"`
	Title            string            `json:"title" firestore:"title" example:"Junior React Developer"`
	Company          string            `json:"company" firestore:"company" example:"TechCape Solutions"`
	Location         string            `json:"location" firestore:"location" example:"Cape Town, Western Cape"`
	Type             JobType           `json:"type" firestore:"type" example:"Hybrid"`
	SalaryRange      string            `json:"salaryRange" firestore:"salaryRange" example:"R25,000 - R35,000"`
	Description      string            `json:"description" firestore:"description"`
	RequiredSkills   []string          `json:"requiredSkills" firestore:"requiredSkills"`
	ApplicationLinks []ApplicationLink `json:"applicationLinks" firestore:"applicationLinks"`
}

// NormalizeJobType maps loose spellings onto the three catalog job types
func NormalizeJobType(raw string) JobType {
	switch raw {
	case "remote", "Remote", "REMOTE", "wfh", "WFH":
		return JobTypeRemote
	case "hybrid", "Hybrid", "HYBRID":
		return JobTypeHybrid
	case "on-site", "On-site", "On-Site", "onsite", "Onsite", "ONSITE", "office", "wfo", "WFO":
		return JobTypeOnSite
	default:
		return JobType(raw)
	}
}
