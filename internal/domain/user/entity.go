package user

import "skill-gap/internal/domain/skill"

// User is one record of the users file.
type User struct {
	ID              int        `json:"id"`
	Name            string     `json:"name,omitempty"`
	Skills          skill.List `json:"skills"`
	PrimaryFocus    string     `json:"primary_focus"`
	ExperienceYears float64    `json:"experience_years"`
}

// Find returns the user with id, if present.
func Find(users []User, id int) (User, bool) {
	for _, u := range users {
		if u.ID == id {
			return u, true
		}
	}
	return User{}, false
}
