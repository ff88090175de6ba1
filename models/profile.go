package models

// SkillLevel is the proficiency the inference engine assigns to an extracted skill
type SkillLevel string

// SkillLevel constants, ordered from weakest to strongest
const (
	SkillLevelBeginner     SkillLevel = "Beginner"
	SkillLevelIntermediate SkillLevel = "Intermediate"
	SkillLevelAdvanced     SkillLevel = "Advanced"
	SkillLevelExpert       SkillLevel = "Expert"
)

// SkillLevels lists every level in ascending order
var SkillLevels = []SkillLevel{
	SkillLevelBeginner,
	SkillLevelIntermediate,
	SkillLevelAdvanced,
	SkillLevelExpert,
}

// Skill represents a single extracted skill
type Skill struct {
	Name  string     `json:"name" example:"React"`
	Level SkillLevel `json:"level" example:"Expert" enums:"Beginner,Intermediate,Advanced,Expert"`
}

// CandidateProfile represents the structured profile extracted from a resume
// @Description Candidate profile extracted by the inference engine
type CandidateProfile struct {
	Summary         string   `json:"summary" example:"Frontend developer with 5 years of React experience"`
	YearsExperience float64  `json:"yearsExperience" example:"5"`
	ExtractedSkills []Skill  `json:"extractedSkills"`
	SuggestedRoles  []string `json:"suggestedRoles" example:"Frontend Developer"`
}

// SkillNames returns the skill names in extraction order
func (p *CandidateProfile) SkillNames() []string {
	names := make([]string, 0, len(p.ExtractedSkills))
	for _, s := range p.ExtractedSkills {
		names = append(names, s.Name)
	}
	return names
}
