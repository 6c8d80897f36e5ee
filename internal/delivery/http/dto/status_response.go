package dto

import (
	"time"

	"github.com/google/uuid"
)

type StatusNotInitializedResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type StatusReadyResponse struct {
	Status        string                 `json:"status"`
	UsersCount    int                    `json:"users_count"`
	JobsCount     int                    `json:"jobs_count"`
	LoadedAt      time.Time              `json:"loaded_at"`
	RecentUploads []UploadRecordResponse `json:"recent_uploads,omitempty"`
}

type UploadRecordResponse struct {
	ID          uuid.UUID `json:"id"`
	Kind        string    `json:"kind"`
	Filename    string    `json:"filename"`
	RecordCount int       `json:"record_count"`
	SizeBytes   int64     `json:"size_bytes"`
	SnapshotID  uuid.UUID `json:"snapshot_id"`
	UploadedAt  time.Time `json:"uploaded_at"`
}

type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}
