package matching

import (
	"errors"
	"math"
	"sort"

	"skill-gap/internal/domain/job"
	"skill-gap/internal/domain/skill"
	"skill-gap/internal/domain/user"
)

var (
	ErrUserNotFound = errors.New("user not found")
	ErrJobNotFound  = errors.New("job not found")
)

// Recommender scores skills and jobs for users of one dataset. It is built
// once per dataset load and only read afterwards, so it is safe for
// concurrent use.
type Recommender struct {
	users []user.User
	jobs  []job.Job

	// jobSkills[i] holds the skill keys of jobs[i].
	jobSkills []map[string]struct{}

	// display maps a skill key to the first spelling seen, jobs before users.
	display map[string]string

	// demand is the share of all jobs requiring each skill key.
	demand map[string]float64
}

type JobMatch struct {
	Job   job.Job
	Score float64
}

type SkillGap struct {
	Skill      string
	Importance float64
}

type scoredSkill struct {
	key   string
	score float64
}

func NewRecommender(users []user.User, jobs []job.Job) *Recommender {
	r := &Recommender{
		users:     users,
		jobs:      jobs,
		jobSkills: make([]map[string]struct{}, len(jobs)),
		display:   make(map[string]string),
	}

	for i, j := range jobs {
		r.jobSkills[i] = j.Skills.Set()
		r.learnNames(j.Skills)
	}
	for _, u := range users {
		r.learnNames(u.Skills)
	}

	r.demand = r.demandAmong(r.allJobs())
	return r
}

func (r *Recommender) Users() []user.User { return r.users }

func (r *Recommender) Jobs() []job.Job { return r.jobs }

func (r *Recommender) learnNames(l skill.List) {
	for _, s := range l {
		k := skill.Key(s)
		if k == "" {
			continue
		}
		if _, ok := r.display[k]; !ok {
			r.display[k] = s
		}
	}
}

func (r *Recommender) name(key string) string {
	if n, ok := r.display[key]; ok {
		return n
	}
	return key
}

func (r *Recommender) findUser(id int) (user.User, error) {
	u, ok := user.Find(r.users, id)
	if !ok {
		return user.User{}, ErrUserNotFound
	}
	return u, nil
}

func (r *Recommender) allJobs() []int {
	idx := make([]int, len(r.jobs))
	for i := range r.jobs {
		idx[i] = i
	}
	return idx
}

// focusJobs returns the indices of jobs whose role type equals focus. When
// none match, every job is returned and matched is false.
func (r *Recommender) focusJobs(focus string) (idx []int, matched bool) {
	fk := skill.Key(focus)
	if fk != "" {
		for i, j := range r.jobs {
			if skill.Key(j.RoleType) == fk {
				idx = append(idx, i)
			}
		}
	}
	if len(idx) == 0 {
		return r.allJobs(), false
	}
	return idx, true
}

// demandAmong returns, per skill key, the share of the given jobs requiring it.
func (r *Recommender) demandAmong(idx []int) map[string]float64 {
	out := make(map[string]float64)
	if len(idx) == 0 {
		return out
	}
	for _, i := range idx {
		for k := range r.jobSkills[i] {
			out[k]++
		}
	}
	total := float64(len(idx))
	for k, c := range out {
		out[k] = c / total
	}
	return out
}

// rank sorts by score descending, then by display name.
func (r *Recommender) rank(items []scoredSkill) {
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].score != items[j].score {
			return items[i].score > items[j].score
		}
		return r.name(items[i].key) < r.name(items[j].key)
	})
}

func (r *Recommender) topNames(items []scoredSkill, n int) []string {
	if n > 0 && len(items) > n {
		items = items[:n]
	}
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, r.name(it.key))
	}
	return out
}

func round4(v float64) float64 {
	return math.Round(v*1e4) / 1e4
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
