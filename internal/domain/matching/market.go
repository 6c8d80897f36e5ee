package matching

import "skill-gap/internal/domain/skill"

const (
	focusDemandWeight  = 0.7
	globalDemandWeight = 0.3

	juniorAdjacencyWeight = 0.2
	seniorAdjacencyWeight = 0.1
	juniorYears           = 3
)

// RecommendForMarket returns up to n skills the user lacks, ordered by how
// much the job market around their focus asks for them. n <= 0 returns all.
func (r *Recommender) RecommendForMarket(skills skill.List, primaryFocus string, experienceYears float64, n int) []string {
	return r.topNames(r.marketRanking(skills, primaryFocus, experienceYears), n)
}

func (r *Recommender) marketRanking(skills skill.List, primaryFocus string, experienceYears float64) []scoredSkill {
	owned := skills.Set()

	focusIdx, _ := r.focusJobs(primaryFocus)
	focusDemand := r.demandAmong(focusIdx)

	// Skills asked for next to what the user already knows are cheaper to
	// pick up; early-career users get a larger nudge towards them.
	adjacent := make([]int, 0, len(r.jobs))
	for i, js := range r.jobSkills {
		if intersects(owned, js) {
			adjacent = append(adjacent, i)
		}
	}
	adjacency := r.demandAmong(adjacent)
	adjWeight := seniorAdjacencyWeight
	if experienceYears < juniorYears {
		adjWeight = juniorAdjacencyWeight
	}

	out := make([]scoredSkill, 0, len(r.demand))
	for k, global := range r.demand {
		if _, ok := owned[k]; ok {
			continue
		}
		score := focusDemandWeight*focusDemand[k] + globalDemandWeight*global + adjWeight*adjacency[k]
		out = append(out, scoredSkill{key: k, score: score})
	}

	r.rank(out)
	return out
}
