package agent

import (
	"sort"
	"strconv"

	"github.com/kusasa/backend/models"
)

// JobLookup resolves catalog jobs by ID
type JobLookup interface {
	Job(id string) (models.Job, bool)
}

// JobIndex reports catalog membership
type JobIndex interface {
	Has(id string) bool
}

// RankMatches orders matches by score, highest first. Ties keep the received
// order. Matches for unknown jobs and repeated job IDs are dropped.
func RankMatches(matches []models.MatchResult, jobs JobIndex) []models.MatchResult {
	ranked := make([]models.MatchResult, 0, len(matches))
	for _, m := range matches {
		if !jobs.Has(m.JobID) {
			continue
		}
		ranked = append(ranked, m)
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].MatchScore > ranked[j].MatchScore
	})

	seen := make(map[string]bool, len(ranked))
	out := ranked[:0]
	for _, m := range ranked {
		if seen[m.JobID] {
			continue
		}
		seen[m.JobID] = true
		out = append(out, m)
	}
	return out
}

// SkillStrength is one bar of the skills chart
type SkillStrength struct {
	Name     string            `json:"name"`
	Level    models.SkillLevel `json:"level"`
	Strength int               `json:"strength"`
}

// LevelCount is one bucket of the skill level histogram
type LevelCount struct {
	Level models.SkillLevel `json:"level"`
	Count int               `json:"count"`
}

const chartSkills = 6

// SkillStrengths maps the first six skills to chart values
func SkillStrengths(profile *models.CandidateProfile) []SkillStrength {
	if profile == nil {
		return []SkillStrength{}
	}

	n := len(profile.ExtractedSkills)
	if n > chartSkills {
		n = chartSkills
	}

	out := make([]SkillStrength, 0, n)
	for _, s := range profile.ExtractedSkills[:n] {
		out = append(out, SkillStrength{Name: s.Name, Level: s.Level, Strength: strength(s.Level)})
	}
	return out
}

func strength(level models.SkillLevel) int {
	switch level {
	case models.SkillLevelExpert:
		return 100
	case models.SkillLevelAdvanced:
		return 75
	case models.SkillLevelIntermediate:
		return 50
	default:
		return 25
	}
}

// LevelHistogram counts skills per level, in level order. Unknown levels are not counted.
func LevelHistogram(profile *models.CandidateProfile) []LevelCount {
	out := make([]LevelCount, len(models.SkillLevels))
	for i, level := range models.SkillLevels {
		out[i].Level = level
	}
	if profile == nil {
		return out
	}

	for _, s := range profile.ExtractedSkills {
		for i, level := range models.SkillLevels {
			if s.Level == level {
				out[i].Count++
				break
			}
		}
	}
	return out
}

// MatchView is a ranked match joined with its catalog job
type MatchView struct {
	Job           models.Job      `json:"job"`
	MatchScore    float64         `json:"matchScore"`
	ScoreLabel    string          `json:"scoreLabel"`
	MissingSkills []string        `json:"missingSkills"`
	Reasoning     string          `json:"reasoning"`
	Courses       []models.Course `json:"recommendedCourses"`
}

// ResultsView is everything the results screen renders
type ResultsView struct {
	Profile        *models.CandidateProfile `json:"profile"`
	Matches        []MatchView              `json:"matches"`
	Selected       *MatchView               `json:"selected,omitempty"`
	ActiveTab      Tab                      `json:"activeTab"`
	SkillChart     []SkillStrength          `json:"skillChart"`
	LevelHistogram []LevelCount             `json:"levelHistogram"`
}

// BuildResultsView derives the results screen from a finished state
func BuildResultsView(s State, jobs JobLookup) (*ResultsView, bool) {
	if s.Stage != StageDone || s.AnalysisData == nil {
		return nil, false
	}

	view := &ResultsView{
		Profile:        s.AnalysisData.Profile,
		Matches:        make([]MatchView, 0, len(s.AnalysisData.Matches)),
		ActiveTab:      s.ActiveTab,
		SkillChart:     SkillStrengths(s.AnalysisData.Profile),
		LevelHistogram: LevelHistogram(s.AnalysisData.Profile),
	}

	for _, m := range s.AnalysisData.Matches {
		job, ok := jobs.Job(m.JobID)
		if !ok {
			continue
		}
		mv := MatchView{
			Job:           job,
			MatchScore:    m.MatchScore,
			ScoreLabel:    strconv.FormatFloat(m.MatchScore, 'f', -1, 64) + "%",
			MissingSkills: m.MissingSkills,
			Reasoning:     m.Reasoning,
			Courses:       m.RecommendedCourses,
		}
		if mv.MissingSkills == nil {
			mv.MissingSkills = []string{}
		}
		if mv.Courses == nil {
			mv.Courses = []models.Course{}
		}
		view.Matches = append(view.Matches, mv)
	}

	for i := range view.Matches {
		if view.Matches[i].Job.ID == s.SelectedJobID {
			view.Selected = &view.Matches[i]
			break
		}
	}
	return view, true
}
