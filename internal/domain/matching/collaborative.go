package matching

import (
	"sort"

	"skill-gap/internal/domain/skill"
)

const (
	collaborativeNeighbours = 5
	sameFocusBonus          = 0.1
)

type neighbour struct {
	userID int
	skills map[string]struct{}
	weight float64
}

// RecommendCollaborative suggests skills held by the users most similar to
// userID that userID does not have yet.
func (r *Recommender) RecommendCollaborative(userID int, n int) ([]string, error) {
	target, err := r.findUser(userID)
	if err != nil {
		return nil, err
	}
	owned := target.Skills.Set()
	focus := skill.Key(target.PrimaryFocus)

	neighbours := make([]neighbour, 0, len(r.users))
	for _, u := range r.users {
		if u.ID == target.ID {
			continue
		}
		other := u.Skills.Set()
		sim := jaccard(owned, other)
		if sim <= 0 {
			continue
		}
		if focus != "" && skill.Key(u.PrimaryFocus) == focus {
			sim += sameFocusBonus
		}
		neighbours = append(neighbours, neighbour{userID: u.ID, skills: other, weight: sim})
	}

	sort.SliceStable(neighbours, func(i, j int) bool {
		if neighbours[i].weight != neighbours[j].weight {
			return neighbours[i].weight > neighbours[j].weight
		}
		return neighbours[i].userID < neighbours[j].userID
	})
	if len(neighbours) > collaborativeNeighbours {
		neighbours = neighbours[:collaborativeNeighbours]
	}

	scores := make(map[string]float64)
	for _, nb := range neighbours {
		for k := range nb.skills {
			if _, ok := owned[k]; ok {
				continue
			}
			scores[k] += nb.weight
		}
	}

	ranked := make([]scoredSkill, 0, len(scores))
	for k, s := range scores {
		ranked = append(ranked, scoredSkill{key: k, score: s})
	}
	r.rank(ranked)
	return r.topNames(ranked, n), nil
}
