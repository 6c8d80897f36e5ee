package matching

import (
	"testing"

	"skill-gap/internal/domain/job"
	"skill-gap/internal/domain/skill"
	"skill-gap/internal/domain/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixture() *Recommender {
	users := []user.User{
		{ID: 1, Name: "Alice", Skills: skill.List{"Python", "SQL"}, PrimaryFocus: "Data Science", ExperienceYears: 1},
		{ID: 2, Name: "Bob", Skills: skill.List{"python", "SQL", "Machine Learning"}, PrimaryFocus: "Data Science", ExperienceYears: 4},
		{ID: 3, Name: "Carol", Skills: skill.List{"JavaScript", "React"}, PrimaryFocus: "Frontend", ExperienceYears: 6},
		{ID: 4, Name: "Dan", Skills: skill.List{"Python", "Docker"}, PrimaryFocus: "Backend", ExperienceYears: 3},
	}
	jobs := []job.Job{
		{ID: 10, Title: "Data Scientist", Company: "Acme", Skills: skill.List{"Python", "SQL", "Machine Learning"}, RoleType: "Data Science"},
		{ID: 11, Title: "ML Engineer", Company: "Beta", Skills: skill.List{"Python", "Machine Learning", "Docker"}, RoleType: "data science"},
		{ID: 12, Title: "Frontend Developer", Company: "Gamma", Skills: skill.List{"JavaScript", "React", "CSS"}, RoleType: "Frontend"},
		{ID: 13, Title: "Backend Developer", Company: "Delta", Skills: skill.List{"Go", "Docker", "SQL"}, RoleType: "Backend"},
	}
	return NewRecommender(users, jobs)
}

func TestRecommendForMarket_FocusFirst(t *testing.T) {
	r := fixture()

	got := r.RecommendForMarket(skill.List{"Python", "SQL"}, "Data Science", 1, 3)
	assert.Equal(t, []string{"Machine Learning", "Docker", "Go"}, got)
}

func TestRecommendForMarket_TiesByName(t *testing.T) {
	r := fixture()

	got := r.RecommendForMarket(skill.List{"JavaScript", "React"}, "Frontend", 6, 5)
	assert.Equal(t, []string{"CSS", "Docker", "Machine Learning", "Python", "SQL"}, got)
}

func TestRecommendForMarket_NeverSuggestsOwnedSkills(t *testing.T) {
	r := fixture()

	got := r.RecommendForMarket(skill.List{"python", "DOCKER"}, "Backend", 3, 0)
	for _, s := range got {
		assert.NotEqual(t, "python", skill.Key(s))
		assert.NotEqual(t, "docker", skill.Key(s))
	}
	assert.Len(t, got, 6)
}

func TestRecommendForMarket_EmptyDataset(t *testing.T) {
	r := NewRecommender(nil, nil)
	assert.Empty(t, r.RecommendForMarket(skill.List{"Go"}, "Backend", 2, 5))
}

func TestRecommendCollaborative(t *testing.T) {
	r := fixture()

	got, err := r.RecommendCollaborative(1, 5)
	require.NoError(t, err)
	assert.Equal(t, []string{"Machine Learning", "Docker"}, got)

	got, err = r.RecommendCollaborative(3, 5)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestRecommendCollaborative_UnknownUser(t *testing.T) {
	_, err := fixture().RecommendCollaborative(99, 5)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestFindRelevantJobs_Order(t *testing.T) {
	r := fixture()

	got, err := r.FindRelevantJobs(1, 0)
	require.NoError(t, err)
	require.Len(t, got, 4)

	ids := make([]int, 0, len(got))
	for _, m := range got {
		ids = append(ids, m.Job.ID)
		assert.GreaterOrEqual(t, m.Score, 0.0)
		assert.LessOrEqual(t, m.Score, 1.0)
	}
	assert.Equal(t, []int{10, 11, 13, 12}, ids)
	assert.InDelta(t, 0.7, got[0].Score, 1e-9)
	assert.InDelta(t, 0.3833, got[1].Score, 1e-9)
	assert.Zero(t, got[3].Score)

	top, err := r.FindRelevantJobs(1, 2)
	require.NoError(t, err)
	assert.Len(t, top, 2)
}

func TestFindRelevantJobs_UnknownUser(t *testing.T) {
	_, err := fixture().FindRelevantJobs(42, 5)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestMatchScore_Bounds(t *testing.T) {
	all := skill.List{"Go", "SQL"}.Set()
	assert.Equal(t, 1.0, MatchScore(all, all, true))
	assert.Equal(t, 0.9, MatchScore(all, all, false))
	assert.Equal(t, 0.1, MatchScore(all, map[string]struct{}{}, true))
}

func TestAnalyzeSkillGaps_Market(t *testing.T) {
	got, err := fixture().AnalyzeSkillGaps(1, nil)
	require.NoError(t, err)
	assert.Equal(t, []SkillGap{
		{Skill: "Machine Learning", Importance: 1},
		{Skill: "Docker", Importance: 0.5},
	}, got)
}

func TestAnalyzeSkillGaps_ForJob(t *testing.T) {
	jobID := 13
	got, err := fixture().AnalyzeSkillGaps(1, &jobID)
	require.NoError(t, err)
	assert.Equal(t, []SkillGap{
		{Skill: "Docker", Importance: 0.75},
		{Skill: "Go", Importance: 0.625},
	}, got)
}

func TestAnalyzeSkillGaps_Errors(t *testing.T) {
	r := fixture()

	missing := 99
	_, err := r.AnalyzeSkillGaps(1, &missing)
	assert.ErrorIs(t, err, ErrJobNotFound)

	_, err = r.AnalyzeSkillGaps(7, nil)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestAnalyzeSkillGaps_SortedAndExcludesOwned(t *testing.T) {
	r := fixture()
	for _, u := range r.Users() {
		gaps, err := r.AnalyzeSkillGaps(u.ID, nil)
		require.NoError(t, err)
		for i, g := range gaps {
			assert.False(t, u.Skills.Has(g.Skill), "user %d already has %s", u.ID, g.Skill)
			assert.GreaterOrEqual(t, g.Importance, 0.0)
			assert.LessOrEqual(t, g.Importance, 1.0)
			if i > 0 {
				assert.GreaterOrEqual(t, gaps[i-1].Importance, g.Importance)
			}
		}
	}
}

func TestGenerateRecommendationText(t *testing.T) {
	r := fixture()

	text := r.GenerateRecommendationText(skill.List{"Python", "SQL"}, "Data Science", 1, 2)
	assert.Contains(t, text, "entry-level Data Science profile (1 years of experience)")
	assert.Contains(t, text, "Based on 2 Data Science job postings.")
	assert.Contains(t, text, "Current skills: Python, SQL.")
	assert.Contains(t, text, "1. Machine Learning (required by 100% of relevant postings)")
	assert.Contains(t, text, "2. Docker (required by 50% of relevant postings)")
	assert.NotContains(t, text, "3.")
}

func TestGenerateRecommendationText_UnknownFocusAndFullCoverage(t *testing.T) {
	r := fixture()

	text := r.GenerateRecommendationText(nil, "Security", 7.5, 5)
	assert.Contains(t, text, "senior-level Security profile (7.5 years of experience)")
	assert.Contains(t, text, `No postings match the focus "Security"; based on all 4 job postings.`)
	assert.Contains(t, text, "Current skills: none listed.")

	everything := skill.List{"Python", "SQL", "Machine Learning", "Docker", "JavaScript", "React", "CSS", "Go"}
	text = r.GenerateRecommendationText(everything, "Backend", 3, 5)
	assert.Contains(t, text, "mid-level Backend profile")
	assert.Contains(t, text, "already cover every skill")
}

func TestLevels(t *testing.T) {
	assert.Equal(t, "entry", ExperienceLevel(0))
	assert.Equal(t, "mid", ExperienceLevel(2))
	assert.Equal(t, "mid", ExperienceLevel(5))
	assert.Equal(t, "senior", ExperienceLevel(5.5))

	assert.Equal(t, "Critical", ImportanceLevel(0.8))
	assert.Equal(t, "High", ImportanceLevel(0.6))
	assert.Equal(t, "Medium", ImportanceLevel(0.45))
	assert.Equal(t, "Moderate", ImportanceLevel(0.2))
	assert.Equal(t, "Low", ImportanceLevel(0.19))
}
