package agent

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kusasa/backend/models"
)

func TestRankMatches(t *testing.T) {
	cat := builtinCatalog(t)

	orders := [][]models.MatchResult{
		{{JobID: "1", MatchScore: 40}, {JobID: "2", MatchScore: 95}, {JobID: "3", MatchScore: 70}},
		{{JobID: "2", MatchScore: 95}, {JobID: "3", MatchScore: 70}, {JobID: "1", MatchScore: 40}},
		{{JobID: "3", MatchScore: 70}, {JobID: "1", MatchScore: 40}, {JobID: "2", MatchScore: 95}},
	}
	for _, in := range orders {
		ranked := RankMatches(in, cat)
		require.Len(t, ranked, 3)
		assert.Equal(t, []float64{95, 70, 40}, []float64{ranked[0].MatchScore, ranked[1].MatchScore, ranked[2].MatchScore})
	}
}

func TestRankMatches_StableTies(t *testing.T) {
	ranked := RankMatches([]models.MatchResult{
		{JobID: "4", MatchScore: 60},
		{JobID: "2", MatchScore: 80},
		{JobID: "1", MatchScore: 60},
	}, builtinCatalog(t))

	assert.Equal(t, []string{"2", "4", "1"}, []string{ranked[0].JobID, ranked[1].JobID, ranked[2].JobID})
}

func TestRankMatches_SkipsUnknownAndDuplicateJobs(t *testing.T) {
	in := []models.MatchResult{
		{JobID: "ghost", MatchScore: 99},
		{JobID: "1", MatchScore: 50},
		{JobID: "1", MatchScore: 70},
	}

	var ranked []models.MatchResult
	assert.NotPanics(t, func() { ranked = RankMatches(in, builtinCatalog(t)) })
	require.Len(t, ranked, 1)
	assert.Equal(t, "1", ranked[0].JobID)
	assert.Equal(t, 70.0, ranked[0].MatchScore)
	assert.Len(t, in, 3)
}

func TestSkillStrengths(t *testing.T) {
	profile := &models.CandidateProfile{ExtractedSkills: []models.Skill{
		{Name: "React", Level: models.SkillLevelExpert},
		{Name: "Go", Level: models.SkillLevelAdvanced},
		{Name: "SQL", Level: models.SkillLevelIntermediate},
		{Name: "Excel", Level: models.SkillLevelBeginner},
		{Name: "Teamwork", Level: "Legendary"},
		{Name: "Docker", Level: models.SkillLevelAdvanced},
		{Name: "Linux", Level: models.SkillLevelExpert},
	}}

	chart := SkillStrengths(profile)
	require.Len(t, chart, 6)
	got := []int{}
	for _, s := range chart {
		got = append(got, s.Strength)
	}
	assert.Equal(t, []int{100, 75, 50, 25, 25, 75}, got)
	assert.Equal(t, "Docker", chart[5].Name)

	assert.Empty(t, SkillStrengths(nil))
	assert.Empty(t, SkillStrengths(&models.CandidateProfile{}))
}

func TestLevelHistogram(t *testing.T) {
	profile := &models.CandidateProfile{ExtractedSkills: []models.Skill{
		{Name: "React", Level: models.SkillLevelExpert},
		{Name: "Go", Level: models.SkillLevelExpert},
		{Name: "SQL", Level: models.SkillLevelBeginner},
		{Name: "Teamwork", Level: "Legendary"},
	}}

	assert.Equal(t, []LevelCount{
		{Level: models.SkillLevelBeginner, Count: 1},
		{Level: models.SkillLevelIntermediate, Count: 0},
		{Level: models.SkillLevelAdvanced, Count: 0},
		{Level: models.SkillLevelExpert, Count: 2},
	}, LevelHistogram(profile))

	assert.Len(t, LevelHistogram(nil), 4)
}

func TestBuildResultsView(t *testing.T) {
	cat := builtinCatalog(t)

	_, ok := BuildResultsView(NewState(), cat)
	assert.False(t, ok)

	s := apply(t, doneState(t), MatchSelected{JobID: "2"}, TabSelected{Tab: TabUpskill})
	view, ok := BuildResultsView(s, cat)
	require.True(t, ok)

	require.Len(t, view.Matches, 2)
	assert.Equal(t, "Junior React Developer", view.Matches[0].Job.Title)
	assert.Equal(t, "90%", view.Matches[0].ScoreLabel)
	assert.Equal(t, TabUpskill, view.ActiveTab)
	require.NotNil(t, view.Selected)
	assert.Equal(t, "Data Analyst", view.Selected.Job.Title)
	assert.NotNil(t, view.Selected.MissingSkills)
	assert.Len(t, view.LevelHistogram, 4)
}
