package ws

import (
	"time"

	"github.com/goccy/go-json"
)

const EventDatasetUpdated = "dataset_updated"

type DatasetUpdatedEvent struct {
	Type       string `json:"type"`
	Source     string `json:"source"`
	UsersCount int    `json:"users_count"`
	JobsCount  int    `json:"jobs_count"`
	Ready      bool   `json:"ready"`
	Timestamp  string `json:"timestamp"`
}

// NotifyDatasetUpdated broadcasts a dataset_updated event. source is the
// uploaded kind or "refresh".
func (h *Hub) NotifyDatasetUpdated(source string, usersCount, jobsCount int, ready bool) {
	if h == nil {
		return
	}

	evt := DatasetUpdatedEvent{
		Type:       EventDatasetUpdated,
		Source:     source,
		UsersCount: usersCount,
		JobsCount:  jobsCount,
		Ready:      ready,
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
	}
	b, err := json.Marshal(evt)
	if err != nil {
		h.logger.Error().Err(err).Msg("encode ws event failed")
		return
	}
	h.Broadcast(b)
}
