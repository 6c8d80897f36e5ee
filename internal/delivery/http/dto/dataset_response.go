package dto

import (
	"skill-gap/internal/domain/job"
	"skill-gap/internal/domain/user"
)

type UsersResponse struct {
	Count int         `json:"count"`
	Users []user.User `json:"users"`
}

type JobsResponse struct {
	Count int       `json:"count"`
	Jobs  []job.Job `json:"jobs"`
}

type MessageResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type RefreshResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	HasData bool   `json:"has_data"`
}
