package matching

import (
	"sort"

	"skill-gap/internal/domain/skill"
)

const (
	coverageWeight  = 0.7
	jaccardWeight   = 0.2
	roleMatchWeight = 0.1
)

// MatchScore rates how well owned fits a job's required skills, in [0,1].
func MatchScore(owned, required map[string]struct{}, roleMatch bool) float64 {
	score := coverageWeight*coverage(owned, required) + jaccardWeight*jaccard(owned, required)
	if roleMatch {
		score += roleMatchWeight
	}
	return round4(clamp01(score))
}

// FindRelevantJobs returns the topN jobs best matching userID, best first.
// Equal scores keep ascending job id order. topN <= 0 returns every job.
func (r *Recommender) FindRelevantJobs(userID int, topN int) ([]JobMatch, error) {
	target, err := r.findUser(userID)
	if err != nil {
		return nil, err
	}
	owned := target.Skills.Set()
	focus := skill.Key(target.PrimaryFocus)

	out := make([]JobMatch, 0, len(r.jobs))
	for i, j := range r.jobs {
		roleMatch := focus != "" && skill.Key(j.RoleType) == focus
		out = append(out, JobMatch{Job: j, Score: MatchScore(owned, r.jobSkills[i], roleMatch)})
	}

	sort.SliceStable(out, func(a, b int) bool {
		if out[a].Score != out[b].Score {
			return out[a].Score > out[b].Score
		}
		return out[a].Job.ID < out[b].Job.ID
	})

	if topN > 0 && len(out) > topN {
		out = out[:topN]
	}
	return out, nil
}
