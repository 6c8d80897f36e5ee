package matching

// AnalyzeSkillGaps lists the skills userID is missing, most important first.
//
// With a jobID the gaps are that job's missing skills; every one is required
// by the job, so importance starts at 0.5 and grows with market demand.
// Without a jobID the gaps come from all jobs in the user's focus and
// importance is the share of those jobs asking for the skill.
func (r *Recommender) AnalyzeSkillGaps(userID int, jobID *int) ([]SkillGap, error) {
	target, err := r.findUser(userID)
	if err != nil {
		return nil, err
	}
	owned := target.Skills.Set()

	var ranked []scoredSkill
	if jobID != nil {
		idx := -1
		for i, j := range r.jobs {
			if j.ID == *jobID {
				idx = i
				break
			}
		}
		if idx < 0 {
			return nil, ErrJobNotFound
		}
		for k := range r.jobSkills[idx] {
			if _, ok := owned[k]; ok {
				continue
			}
			ranked = append(ranked, scoredSkill{key: k, score: 0.5 + 0.5*r.demand[k]})
		}
	} else {
		focusIdx, _ := r.focusJobs(target.PrimaryFocus)
		for k, d := range r.demandAmong(focusIdx) {
			if _, ok := owned[k]; ok {
				continue
			}
			ranked = append(ranked, scoredSkill{key: k, score: d})
		}
	}

	r.rank(ranked)

	out := make([]SkillGap, 0, len(ranked))
	for _, it := range ranked {
		out = append(out, SkillGap{Skill: r.name(it.key), Importance: round4(clamp01(it.score))})
	}
	return out, nil
}

// ImportanceLevel buckets an importance value the way dashboards label it.
func ImportanceLevel(v float64) string {
	switch {
	case v >= 0.8:
		return "Critical"
	case v >= 0.6:
		return "High"
	case v >= 0.4:
		return "Medium"
	case v >= 0.2:
		return "Moderate"
	default:
		return "Low"
	}
}
