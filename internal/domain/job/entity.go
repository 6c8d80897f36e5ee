package job

import "skill-gap/internal/domain/skill"

// Job is one record of the jobs file.
type Job struct {
	ID       int        `json:"id"`
	Title    string     `json:"title"`
	Company  string     `json:"company"`
	Skills   skill.List `json:"skills"`
	RoleType string     `json:"role_type"`
}

func Find(jobs []Job, id int) (Job, bool) {
	for _, j := range jobs {
		if j.ID == id {
			return j, true
		}
	}
	return Job{}, false
}
