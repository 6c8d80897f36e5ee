package matching

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"skill-gap/internal/domain/skill"
)

// ExperienceLevel maps years of experience to entry, mid or senior.
func ExperienceLevel(years float64) string {
	switch {
	case years < 2:
		return "entry"
	case years <= 5:
		return "mid"
	default:
		return "senior"
	}
}

// GenerateRecommendationText explains the market recommendations for a
// profile in a few lines of plain text.
func (r *Recommender) GenerateRecommendationText(skills skill.List, primaryFocus string, experienceYears float64, n int) string {
	focusIdx, matched := r.focusJobs(primaryFocus)
	focusDemand := r.demandAmong(focusIdx)

	ranked := r.marketRanking(skills, primaryFocus, experienceYears)
	if n > 0 && len(ranked) > n {
		ranked = ranked[:n]
	}

	focus := strings.TrimSpace(primaryFocus)
	if focus == "" {
		focus = "general"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Skill analysis for a %s-level %s profile (%s years of experience).\n",
		ExperienceLevel(experienceYears), focus, strconv.FormatFloat(experienceYears, 'f', -1, 64))

	if matched {
		fmt.Fprintf(&b, "Based on %d %s job postings.\n", len(focusIdx), focus)
	} else {
		fmt.Fprintf(&b, "No postings match the focus %q; based on all %d job postings.\n", focus, len(focusIdx))
	}

	if len(skills) == 0 {
		b.WriteString("Current skills: none listed.\n")
	} else {
		fmt.Fprintf(&b, "Current skills: %s.\n", strings.Join(skills, ", "))
	}

	if len(ranked) == 0 {
		b.WriteString("Your skills already cover every skill requested in these postings.")
		return b.String()
	}

	b.WriteString("Recommended skills to learn:")
	for i, it := range ranked {
		pct := int(math.Round(focusDemand[it.key] * 100))
		fmt.Fprintf(&b, "\n%d. %s (required by %d%% of relevant postings)", i+1, r.name(it.key), pct)
	}
	return b.String()
}
